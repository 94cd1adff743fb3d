package picker

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dnorman/learnchain/internal/concept"
	"github.com/dnorman/learnchain/internal/config"
	"github.com/dnorman/learnchain/internal/logsrc"
	"github.com/dnorman/learnchain/internal/pipeline"
	"github.com/dnorman/learnchain/internal/quizgen"
	"github.com/dnorman/learnchain/internal/quizstore"
	"github.com/dnorman/learnchain/internal/router"
	"github.com/dnorman/learnchain/internal/screen"
	"github.com/dnorman/learnchain/internal/screens/events"
	"github.com/dnorman/learnchain/internal/screens/quiz"
	"github.com/dnorman/learnchain/internal/session"
	"github.com/dnorman/learnchain/internal/store"
	"github.com/dnorman/learnchain/internal/ui/layout"
	"github.com/dnorman/learnchain/internal/ui/theme"
)

// PickerScreen lists discovered transcripts and starts a review on the
// selected one.
type PickerScreen struct {
	genf      func() (quizgen.Generator, error)
	eventRepo store.EventRepo
	cfg       *config.Config
	quizzes   *quizstore.Store
	resume    *pipeline.ResumeCache

	roots      []string
	candidates []logsrc.Candidate
	selected   int
	scanning   bool
	loading    bool
	infoMsg    string
	errMsg     string
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)

// New creates the session picker.
func New(genf func() (quizgen.Generator, error), eventRepo store.EventRepo, cfg *config.Config, quizzes *quizstore.Store, resume *pipeline.ResumeCache) *PickerScreen {
	return &PickerScreen{
		genf:      genf,
		eventRepo: eventRepo,
		cfg:       cfg,
		quizzes:   quizzes,
		resume:    resume,
		roots:     append(logsrc.DefaultRoots(), cfg.ExtraLogPaths...),
		scanning:  true,
	}
}

func (s *PickerScreen) Init() tea.Cmd {
	return s.scan()
}

func (s *PickerScreen) Title() string {
	return "Pick a session"
}

func (s *PickerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Review"},
		{Key: "E", Description: "Events"},
		{Key: "R", Description: "Rescan"},
		{Key: "Esc", Description: "Back"},
	}
}

// scan walks the transcript roots: the tools' standard directories plus
// any configured extras.
func (s *PickerScreen) scan() tea.Cmd {
	roots := s.roots
	return func() tea.Msg {
		return scanDoneMsg{Candidates: logsrc.Scan(roots)}
	}
}

// loadSession parses the chosen transcript and mines it for concepts.
// The generator is built first so a missing credential surfaces before
// any file is touched.
func (s *PickerScreen) loadSession(c logsrc.Candidate) tea.Cmd {
	cfg := s.cfg.ExtractorConfig()
	genf := s.genf
	return func() tea.Msg {
		gen, err := genf()
		if err != nil {
			return loadFailedMsg{Err: err}
		}
		events, err := logsrc.ReadFileAs(c.Path, c.Tool)
		if err != nil {
			return loadFailedMsg{Err: err}
		}
		sess, err := session.Normalize(c.Tool, c.Path, events)
		if err != nil {
			return loadFailedMsg{Err: err}
		}
		return sessionLoadedMsg{
			Gen:      gen,
			Session:  sess,
			Concepts: concept.Extract(sess, cfg),
		}
	}
}

// loadTimeline parses the chosen transcript for the events view only,
// no generator and no concept mining.
func (s *PickerScreen) loadTimeline(c logsrc.Candidate) tea.Cmd {
	return func() tea.Msg {
		events, err := logsrc.ReadFileAs(c.Path, c.Tool)
		if err != nil {
			return loadFailedMsg{Err: err}
		}
		sess, err := session.Normalize(c.Tool, c.Path, events)
		if err != nil {
			return loadFailedMsg{Err: err}
		}
		return timelineLoadedMsg{Session: sess}
	}
}

func (s *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case scanDoneMsg:
		s.scanning = false
		s.candidates = msg.Candidates
		if s.selected >= len(s.candidates) {
			s.selected = 0
		}
		return s, nil

	case sessionLoadedMsg:
		s.loading = false
		if len(msg.Concepts) == 0 {
			s.infoMsg = "Nothing to review in this session"
			return s, nil
		}
		return s, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: quiz.New(msg.Gen, s.eventRepo, s.cfg, s.quizzes, s.resume, msg.Session, msg.Concepts),
			}
		}

	case timelineLoadedMsg:
		s.loading = false
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: events.New(msg.Session)}
		}

	case loadFailedMsg:
		s.loading = false
		if errors.Is(msg.Err, session.ErrEmptySession) {
			s.infoMsg = "Nothing to review in this session"
			return s, nil
		}
		s.errMsg = msg.Err.Error()
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *PickerScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.loading {
		return s, nil
	}

	// Any key clears a previous error or notice.
	if s.errMsg != "" || s.infoMsg != "" {
		s.errMsg = ""
		s.infoMsg = ""
		return s, nil
	}

	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.candidates)-1 {
			s.selected++
		}
	case "r", "R":
		s.scanning = true
		return s, s.scan()
	case "e", "E":
		if s.selected < len(s.candidates) {
			s.loading = true
			return s, s.loadTimeline(s.candidates[s.selected])
		}
	case "enter":
		if s.selected < len(s.candidates) {
			s.loading = true
			return s, s.loadSession(s.candidates[s.selected])
		}
	}

	return s, nil
}

func (s *PickerScreen) View(width, height int) string {
	if s.scanning {
		return centered(width, theme.Hint.Render("Scanning for transcripts..."))
	}
	if s.loading {
		return centered(width, theme.Hint.Render("Reading session..."))
	}
	if s.errMsg != "" {
		return centered(width,
			lipgloss.NewStyle().Foreground(theme.Error).Render("Could not load session")+
				"\n\n"+theme.Body.Render(logsrc.Truncate(s.errMsg, width-8))+
				"\n\n"+theme.Hint.Render("Press any key to continue"))
	}
	if s.infoMsg != "" {
		return centered(width,
			theme.Body.Render(s.infoMsg)+
				"\n\n"+theme.Hint.Render("Press any key to continue"))
	}
	if len(s.candidates) == 0 {
		return centered(width,
			theme.Body.Render("No transcripts found")+
				"\n\n"+theme.Hint.Render("Looked under ~/.claude/projects and ~/.codex/sessions"))
	}

	var b strings.Builder
	b.WriteString("\n")

	visible := height - 3
	if visible < 1 {
		visible = 1
	}
	start := 0
	if s.selected >= visible {
		start = s.selected - visible + 1
	}

	for i := start; i < len(s.candidates) && i < start+visible; i++ {
		b.WriteString(s.renderRow(i, width))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *PickerScreen) renderRow(i, width int) string {
	c := s.candidates[i]

	tool := lipgloss.NewStyle().Foreground(theme.Secondary).Render(fmt.Sprintf("%-7s", string(c.Tool)))
	when := lipgloss.NewStyle().Foreground(theme.TextDim).Render(c.Modified.Format("Jan 02 15:04"))

	summary := c.Summary
	if summary == "" {
		summary = c.Path
	}
	maxSummary := width - 28
	if maxSummary < 10 {
		maxSummary = 10
	}
	summary = logsrc.Truncate(summary, maxSummary)

	line := fmt.Sprintf("%s  %s  %s", tool, when, summary)
	if i == s.selected {
		return theme.Selected.Render("  ▸ ") + line
	}
	return "    " + line
}

func centered(width int, content string) string {
	return "\n\n" + lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(content)
}
