package menu

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dnorman/learnchain/internal/config"
	"github.com/dnorman/learnchain/internal/pipeline"
	"github.com/dnorman/learnchain/internal/quizgen"
	"github.com/dnorman/learnchain/internal/quizstore"
	"github.com/dnorman/learnchain/internal/router"
	"github.com/dnorman/learnchain/internal/screens/picker"
	"github.com/dnorman/learnchain/internal/screens/results"
	"github.com/dnorman/learnchain/internal/screens/settings"
)

func testMenu() *MenuScreen {
	cfg := config.Default()
	genf := func() (quizgen.Generator, error) { return nil, nil }
	return New(genf, nil, &cfg, quizstore.New(), pipeline.NewResumeCache())
}

func pushTarget(t *testing.T, s *MenuScreen) any {
	t.Helper()
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	return push.Screen
}

func TestMenu_Entries(t *testing.T) {
	s := testMenu()
	view := s.View(80, 24)
	for _, want := range []string{"Review a session", "Results", "Settings", "Quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestMenu_PushesScreens(t *testing.T) {
	s := testMenu()

	if _, ok := pushTarget(t, s).(*picker.PickerScreen); !ok {
		t.Error("first entry should open the session picker")
	}

	scr, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s = scr.(*MenuScreen)
	if _, ok := pushTarget(t, s).(*results.ResultsScreen); !ok {
		t.Error("second entry should open results")
	}

	scr, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s = scr.(*MenuScreen)
	if _, ok := pushTarget(t, s).(*settings.SettingsScreen); !ok {
		t.Error("third entry should open settings")
	}
}

func TestMenu_QuitCommand(t *testing.T) {
	s := testMenu()
	for i := 0; i < 3; i++ {
		scr, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
		s = scr.(*MenuScreen)
	}
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}
