package menu

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dnorman/learnchain/internal/config"
	"github.com/dnorman/learnchain/internal/pipeline"
	"github.com/dnorman/learnchain/internal/quizgen"
	"github.com/dnorman/learnchain/internal/quizstore"
	"github.com/dnorman/learnchain/internal/router"
	"github.com/dnorman/learnchain/internal/screen"
	"github.com/dnorman/learnchain/internal/screens/picker"
	"github.com/dnorman/learnchain/internal/screens/results"
	"github.com/dnorman/learnchain/internal/screens/settings"
	"github.com/dnorman/learnchain/internal/store"
	"github.com/dnorman/learnchain/internal/ui/components"
	"github.com/dnorman/learnchain/internal/ui/theme"
)

// MenuScreen is the top-level navigation menu.
type MenuScreen struct {
	menu    components.Menu
	cfg     *config.Config
	quizzes *quizstore.Store
}

var _ screen.Screen = (*MenuScreen)(nil)

// New creates the main menu. genf builds a quiz generator from the
// current configuration; it is invoked lazily when a review starts.
func New(genf func() (quizgen.Generator, error), eventRepo store.EventRepo, cfg *config.Config, quizzes *quizstore.Store, resume *pipeline.ResumeCache) *MenuScreen {
	s := &MenuScreen{cfg: cfg, quizzes: quizzes}

	items := []components.MenuItem{
		{Label: "Review a session", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: picker.New(genf, eventRepo, cfg, quizzes, resume)}
			}
		}},
		{Label: "Results", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: results.New(quizzes)}
			}
		}},
		{Label: "Settings", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: settings.New(cfg)}
			}
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	s.menu = components.NewMenu(items)
	return s
}

func (s *MenuScreen) Init() tea.Cmd {
	return nil
}

func (s *MenuScreen) Title() string {
	return "Home"
}

func (s *MenuScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *MenuScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Learnchain"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Turn your AI coding sessions into quizzes"))
	b.WriteString("\n\n")

	menuView := s.menu.View()
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(menuView))

	if correct, answered := s.quizzes.Score(); answered > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
			Render(scoreLine(correct, answered)))
	}

	return b.String()
}

func scoreLine(correct, answered int) string {
	return lipgloss.NewStyle().Foreground(theme.TextDim).
		Render("Last review: ") +
		lipgloss.NewStyle().Foreground(theme.Success).
			Render(strconv.Itoa(correct)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(" / "+strconv.Itoa(answered)+" correct")
}
