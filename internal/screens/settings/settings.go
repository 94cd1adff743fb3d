package settings

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dnorman/learnchain/internal/config"
	"github.com/dnorman/learnchain/internal/router"
	"github.com/dnorman/learnchain/internal/screen"
	"github.com/dnorman/learnchain/internal/ui/components"
	"github.com/dnorman/learnchain/internal/ui/layout"
	"github.com/dnorman/learnchain/internal/ui/theme"
)

var providers = []string{"openai", "anthropic", "gemini", "openrouter", "mock"}

const (
	rowProvider = iota
	rowModel
	rowAPIKey
	rowParallel
	rowArtifacts
	rowSave
	rowCount
)

// SettingsScreen edits and persists the application configuration.
// Changes apply to the shared config immediately; Save writes them to
// disk.
type SettingsScreen struct {
	cfg      *config.Config
	selected int
	editing  bool
	input    components.TextInput
	status   string
	errMsg   string
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates the settings screen over the shared config.
func New(cfg *config.Config) *SettingsScreen {
	return &SettingsScreen{cfg: cfg}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	if s.editing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Edit / Save"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.editing {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.editing {
		return s.handleEditKey(kmsg)
	}
	return s.handleNavKey(kmsg)
}

func (s *SettingsScreen) handleEditKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.editing = false
		return s, nil
	case "enter":
		s.applyEdit(s.input.Value())
		s.editing = false
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SettingsScreen) applyEdit(value string) {
	s.errMsg = ""
	switch s.selected {
	case rowModel:
		s.cfg.Model = strings.TrimSpace(value)
	case rowAPIKey:
		if err := s.cfg.SetKey(strings.TrimSpace(value)); err != nil {
			s.errMsg = err.Error()
		}
	}
}

func (s *SettingsScreen) handleNavKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	s.status = ""

	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < rowCount-1 {
			s.selected++
		}
	case "left", "h":
		s.cycle(-1)
	case "right", "l":
		s.cycle(1)
	case "enter":
		switch s.selected {
		case rowModel:
			s.input = components.NewTextInput("provider default", false, 40)
			s.editing = true
			return s, s.input.Init()
		case rowAPIKey:
			s.input = components.NewTextInput("paste API key", false, 60)
			s.editing = true
			return s, s.input.Init()
		case rowSave:
			s.save()
		}
	}

	return s, nil
}

func (s *SettingsScreen) cycle(dir int) {
	s.errMsg = ""
	switch s.selected {
	case rowProvider:
		i := 0
		for j, p := range providers {
			if p == s.cfg.Provider {
				i = j
				break
			}
		}
		i = (i + dir + len(providers)) % len(providers)
		s.cfg.Provider = providers[i]
		// Model names are provider-specific; drop the override.
		s.cfg.Model = ""
	case rowParallel:
		n := s.cfg.MaxInFlight + dir
		if n >= 1 && n <= 8 {
			s.cfg.MaxInFlight = n
		}
	case rowArtifacts:
		s.cfg.WriteArtifacts = !s.cfg.WriteArtifacts
	}
}

func (s *SettingsScreen) save() {
	if err := s.cfg.Save(); err != nil {
		s.errMsg = err.Error()
		return
	}
	path, _ := config.Path()
	s.status = "Saved to " + path
}

func (s *SettingsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	rows := []struct {
		label string
		value string
	}{
		{"Provider", s.cfg.Provider},
		{"Model", s.modelValue()},
		{"API key", s.keyValue()},
		{"Parallel generation", fmt.Sprintf("%d", s.cfg.MaxInFlight)},
		{"Save quiz files", onOff(s.cfg.WriteArtifacts)},
		{"Save", ""},
	}

	for i, row := range rows {
		b.WriteString(s.renderRow(i, row.label, row.value))
		b.WriteString("\n")
		if s.editing && i == s.selected {
			b.WriteString("        " + s.input.View() + "\n")
		}
	}

	if s.errMsg != "" {
		b.WriteString("\n  " + lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}
	if s.status != "" {
		b.WriteString("\n  " + lipgloss.NewStyle().Foreground(theme.Success).Render(s.status))
	}

	return b.String()
}

func (s *SettingsScreen) renderRow(i int, label, value string) string {
	line := fmt.Sprintf("%-22s", label)
	if value != "" {
		line += lipgloss.NewStyle().Foreground(theme.Secondary).Render(value)
	}
	if i == s.selected && !s.editing {
		return theme.Selected.Render("  ▸ ") + theme.Body.Render(line)
	}
	return "    " + theme.Body.Render(line)
}

func (s *SettingsScreen) modelValue() string {
	if s.cfg.Model != "" {
		return s.cfg.Model
	}
	return "(provider default)"
}

func (s *SettingsScreen) keyValue() string {
	if s.cfg.Provider == "mock" {
		return "(not needed)"
	}
	if s.cfg.Keys[s.cfg.Provider] != "" {
		return "set"
	}
	return "not set"
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
