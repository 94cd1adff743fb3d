package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dnorman/learnchain/internal/logsrc"
	"github.com/dnorman/learnchain/internal/quizstore"
	"github.com/dnorman/learnchain/internal/router"
	"github.com/dnorman/learnchain/internal/screen"
	"github.com/dnorman/learnchain/internal/ui/layout"
	"github.com/dnorman/learnchain/internal/ui/theme"
)

// ResultsScreen shows the outcome of the most recent review.
type ResultsScreen struct {
	quizzes  *quizstore.Store
	selected int
	expanded bool
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen over the shared quiz store.
func New(quizzes *quizstore.Store) *ResultsScreen {
	return &ResultsScreen{quizzes: quizzes}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Details"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	entries := s.quizzes.List(quizstore.Filter{})

	switch kmsg.String() {
	case "esc":
		if s.expanded {
			s.expanded = false
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(entries)-1 {
			s.selected++
		}
	case "enter":
		if len(entries) > 0 {
			s.expanded = !s.expanded
		}
	}

	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	entries := s.quizzes.List(quizstore.Filter{})
	if len(entries) == 0 {
		return "\n\n" + lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(theme.Body.Render("No review yet")+
				"\n\n"+theme.Hint.Render("Pick a session to generate quizzes"))
	}

	var b strings.Builder
	b.WriteString("\n")

	correct, answered := s.quizzes.Score()
	b.WriteString("  " + theme.Body.Render(fmt.Sprintf("Score: %d / %d correct", correct, answered)))
	if skipped := len(entries) - answered; skipped > 0 {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("   (%d unanswered)", skipped)))
	}
	b.WriteString("\n\n")

	for i, e := range entries {
		b.WriteString(s.renderRow(i, e, width))
		b.WriteString("\n")
		if s.expanded && i == s.selected {
			b.WriteString(renderDetail(e, width))
		}
	}

	return b.String()
}

func (s *ResultsScreen) renderRow(i int, e quizstore.Entry, width int) string {
	var mark string
	switch {
	case e.Answer == nil:
		mark = lipgloss.NewStyle().Foreground(theme.TextDim).Render("·")
	case e.Answer.IsCorrect:
		mark = theme.Correct.Render("✓")
	default:
		mark = theme.Incorrect.Render("✗")
	}

	lang := lipgloss.NewStyle().Foreground(theme.Secondary).
		Render(fmt.Sprintf("%-8s", e.Quiz.Language))

	question := logsrc.Truncate(e.Quiz.Question, max(width-18, 10))

	line := fmt.Sprintf("%s  %s %s", mark, lang, theme.Body.Render(question))
	if i == s.selected {
		return theme.Selected.Render("  ▸ ") + line
	}
	return "    " + line
}

func renderDetail(e quizstore.Entry, width int) string {
	labels := []string{"A", "B", "C", "D"}
	var b strings.Builder

	for i, c := range e.Quiz.Choices {
		line := fmt.Sprintf("        %s)  %s", labels[i], c)
		switch {
		case i == e.Quiz.CorrectIndex:
			b.WriteString(theme.Correct.Render(line))
		case e.Answer != nil && i == e.Answer.ChosenIndex:
			b.WriteString(theme.Incorrect.Render(line))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n        " +
		theme.Hint.Width(max(width-12, 20)).Render(e.Quiz.Explanation) + "\n")

	return b.String()
}
