package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/dnorman/learnchain/internal/ui/components"
	"github.com/dnorman/learnchain/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (s *QuizScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return s.renderError(width)
	case s.confirmQuit:
		return s.renderQuitConfirm(width)
	case s.done:
		return s.renderDone(width)
	case s.asking || s.feedback:
		return s.renderQuestion(width)
	}
	return s.renderGenerating(width)
}

func (s *QuizScreen) renderError(width int) string {
	return center(width,
		lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Something went wrong")+
			"\n\n"+theme.Body.Render(s.errMsg)+
			"\n\n"+theme.Hint.Render("Press any key to go back"))
}

func (s *QuizScreen) renderQuitConfirm(width int) string {
	return center(width,
		theme.Body.Render("End this review?")+
			"\n\n"+theme.Hint.Render("Y to end, N to keep going"))
}

func (s *QuizScreen) renderGenerating(width int) string {
	frame := spinnerFrames[s.spinner%len(spinnerFrames)]
	ready := s.quizzes.Len()
	total := len(s.order)

	line := fmt.Sprintf("%s Generating question %d of %d", frame, s.current+1, total)

	bar := components.NewProgressBar("", progress(ready+len(s.failed), total), false, width/2)

	body := lipgloss.NewStyle().Foreground(theme.Primary).Render(line) +
		"\n\n" + bar.View()
	if n := len(s.failed); n > 0 {
		body += "\n\n" + lipgloss.NewStyle().Foreground(theme.Error).
			Render(fmt.Sprintf("%d could not be generated", n))
	}
	return center(width, body)
}

func (s *QuizScreen) renderQuestion(width int) string {
	var b strings.Builder

	progressLine := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("  Question %d of %d", s.current+1, len(s.order)))
	b.WriteString(progressLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(s.mc.View()))

	if s.feedback {
		b.WriteString("\n")
		b.WriteString(s.renderFeedback(width))
	}

	return b.String()
}

func (s *QuizScreen) renderFeedback(width int) string {
	var verdict string
	if s.mc.IsCorrect() {
		verdict = theme.Correct.Render("Correct!")
	} else {
		verdict = theme.Incorrect.Render("Not quite.")
	}

	fp := s.order[s.current]
	explanation := ""
	if e, ok := s.quizzes.Get(fp); ok {
		explanation = e.Quiz.Explanation
	}

	body := verdict
	if explanation != "" {
		body += "\n\n" + theme.Body.Width(min(width-8, 76)).Render(explanation)
	}
	body += "\n\n" + theme.Hint.Render("Press any key to continue")

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(body)
}

func (s *QuizScreen) renderDone(width int) string {
	correct, answered := s.quizzes.Score()

	body := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Review complete") +
		"\n\n" + theme.Body.Render(fmt.Sprintf("%d of %d correct", correct, answered))
	if n := len(s.failed); n > 0 {
		body += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d question(s) could not be generated", n))
	}
	if s.artifactPath != "" {
		body += "\n\n" + theme.Hint.Render("Saved to "+s.artifactPath)
	}
	if s.artifactErr != "" {
		body += "\n\n" + lipgloss.NewStyle().Foreground(theme.Error).
			Render("Could not save quiz file: "+s.artifactErr)
	}
	body += "\n\n" + theme.Hint.Render("Enter for results")

	return center(width, body)
}

func center(width int, content string) string {
	return "\n\n" + lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(content)
}

func progress(done, total int) float64 {
	if total == 0 {
		return 1
	}
	return float64(done) / float64(total)
}
