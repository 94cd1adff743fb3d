package settings

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dnorman/learnchain/internal/config"
)

func testSettings() (*SettingsScreen, *config.Config) {
	cfg := config.Default()
	return New(&cfg), &cfg
}

func TestSettings_CycleProvider(t *testing.T) {
	s, cfg := testSettings()
	if cfg.Provider != "openai" {
		t.Fatalf("default provider = %q", cfg.Provider)
	}

	scr, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	s = scr.(*SettingsScreen)
	if cfg.Provider != "anthropic" {
		t.Errorf("provider = %q, want anthropic", cfg.Provider)
	}

	scr, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	s = scr.(*SettingsScreen)
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q, want openai", cfg.Provider)
	}
}

func TestSettings_CycleProviderDropsModelOverride(t *testing.T) {
	s, cfg := testSettings()
	cfg.Model = "gpt-4o"

	scr, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	_ = scr
	if cfg.Model != "" {
		t.Errorf("model override should be cleared on provider change, got %q", cfg.Model)
	}
}

func TestSettings_EditAPIKey(t *testing.T) {
	s, cfg := testSettings()
	s.selected = rowAPIKey

	scr, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = scr.(*SettingsScreen)
	if !s.editing {
		t.Fatal("expected edit mode")
	}

	s.input.Model.SetValue("sk-test-123")
	scr, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = scr.(*SettingsScreen)

	if s.editing {
		t.Fatal("expected edit mode to end")
	}
	if cfg.Keys["openai"] != "sk-test-123" {
		t.Errorf("key = %q, want sk-test-123", cfg.Keys["openai"])
	}
}

func TestSettings_ParallelBounds(t *testing.T) {
	s, cfg := testSettings()
	s.selected = rowParallel
	cfg.MaxInFlight = 1

	scr, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	s = scr.(*SettingsScreen)
	if cfg.MaxInFlight != 1 {
		t.Errorf("MaxInFlight = %d, should not go below 1", cfg.MaxInFlight)
	}

	scr, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	_ = scr
	if cfg.MaxInFlight != 2 {
		t.Errorf("MaxInFlight = %d, want 2", cfg.MaxInFlight)
	}
}

func TestSettings_ToggleArtifacts(t *testing.T) {
	s, cfg := testSettings()
	s.selected = rowArtifacts

	scr, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	_ = scr
	if !cfg.WriteArtifacts {
		t.Error("expected artifacts enabled")
	}
}

func TestSettings_View(t *testing.T) {
	s, _ := testSettings()
	view := s.View(80, 24)
	for _, want := range []string{"Provider", "Model", "API key", "Save"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSettings_KeyHints(t *testing.T) {
	s, _ := testSettings()
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints")
	}
	s.editing = true
	if len(s.KeyHints()) != 2 {
		t.Error("expected edit-mode key hints")
	}
}
