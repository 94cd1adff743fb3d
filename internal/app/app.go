package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dnorman/learnchain/internal/config"
	"github.com/dnorman/learnchain/internal/llm"
	"github.com/dnorman/learnchain/internal/pipeline"
	"github.com/dnorman/learnchain/internal/quizgen"
	"github.com/dnorman/learnchain/internal/quizstore"
	"github.com/dnorman/learnchain/internal/router"
	"github.com/dnorman/learnchain/internal/screen"
	menuscreen "github.com/dnorman/learnchain/internal/screens/menu"
	"github.com/dnorman/learnchain/internal/store"
	"github.com/dnorman/learnchain/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	cfg    *config.Config
	width  int
	height int
}

// newAppModel wires shared state and mounts the main menu. The generator
// factory is a closure over cfg so provider changes made in settings take
// effect on the next review without restarting.
func newAppModel(cfg *config.Config, eventRepo store.EventRepo) AppModel {
	quizzes := quizstore.New()

	genf := func() (quizgen.Generator, error) {
		provider, err := llm.NewProvider(context.Background(), cfg.LLMConfig(), eventRepo)
		if err != nil {
			return nil, err
		}
		return quizgen.New(provider, quizgen.DefaultConfig()), nil
	}

	root := menuscreen.New(genf, eventRepo, cfg, quizzes, pipeline.NewResumeCache())
	return AppModel{
		router: router.New(root),
		cfg:    cfg,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.statusLine(), m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// statusLine summarizes the active LLM configuration for the header.
func (m AppModel) statusLine() string {
	lcfg := m.cfg.LLMConfig()
	if err := lcfg.Validate(); err != nil {
		return "no API key"
	}
	return lcfg.Provider + " · " + activeModel(lcfg)
}

func activeModel(lcfg llm.Config) string {
	switch lcfg.Provider {
	case "anthropic":
		return lcfg.Anthropic.Model
	case "openai":
		return lcfg.OpenAI.Model
	case "gemini":
		return lcfg.Gemini.Model
	case "openrouter":
		return lcfg.OpenRouter.Model
	case "mock":
		return "mock"
	}
	return ""
}

// Run starts the Bubble Tea program.
func Run(cfg *config.Config, eventRepo store.EventRepo) error {
	p := tea.NewProgram(newAppModel(cfg, eventRepo))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
