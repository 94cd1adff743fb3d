package results

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/dnorman/learnchain/internal/quizgen"
	"github.com/dnorman/learnchain/internal/quizstore"
	"github.com/dnorman/learnchain/internal/router"
)

func storeWith(t *testing.T) *quizstore.Store {
	t.Helper()
	s := quizstore.New()
	s.Put(&quizgen.Quiz{
		ConceptFingerprint: "fp1",
		Question:           "What does defer do?",
		Choices:            []string{"a", "b", "c", "d"},
		CorrectIndex:       1,
		Explanation:        "Runs at return.",
		Language:           "go",
		Difficulty:         2,
	})
	s.Put(&quizgen.Quiz{
		ConceptFingerprint: "fp2",
		Question:           "What is ownership?",
		Choices:            []string{"a", "b", "c", "d"},
		CorrectIndex:       0,
		Explanation:        "Rust's memory model.",
		Language:           "rust",
		Difficulty:         3,
	})
	if _, err := s.Answer("fp1", 1, time.Now()); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if _, err := s.Answer("fp2", 3, time.Now()); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	return s
}

func TestResults_Empty(t *testing.T) {
	s := New(quizstore.New())
	view := s.View(80, 24)
	if !strings.Contains(view, "No review yet") {
		t.Errorf("expected empty state, got:\n%s", view)
	}
}

func TestResults_ScoreAndRows(t *testing.T) {
	s := New(storeWith(t))
	view := s.View(80, 24)

	if !strings.Contains(view, "1 / 2") {
		t.Errorf("view missing score:\n%s", view)
	}
	if !strings.Contains(view, "What does defer do?") {
		t.Errorf("view missing question row:\n%s", view)
	}
	if !strings.Contains(view, "rust") {
		t.Errorf("view missing language tag:\n%s", view)
	}
}

func TestResults_ExpandDetail(t *testing.T) {
	s := New(storeWith(t))

	scr, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = scr.(*ResultsScreen)
	if !s.expanded {
		t.Fatal("expected detail expanded")
	}

	view := s.View(80, 24)
	if !strings.Contains(view, "Runs at return.") {
		t.Errorf("detail missing explanation:\n%s", view)
	}

	// Esc collapses the detail before popping the screen.
	scr, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	s = scr.(*ResultsScreen)
	if s.expanded {
		t.Fatal("expected detail collapsed")
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestResults_Navigation(t *testing.T) {
	s := New(storeWith(t))

	scr, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s = scr.(*ResultsScreen)
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}
	scr, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s = scr.(*ResultsScreen)
	if s.selected != 1 {
		t.Errorf("selected should stay at last row, got %d", s.selected)
	}
}
