package events

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/dnorman/learnchain/internal/logsrc"
	"github.com/dnorman/learnchain/internal/router"
	"github.com/dnorman/learnchain/internal/session"
)

func testSession(t *testing.T) *session.Session {
	t.Helper()
	base := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	raw := []logsrc.RawEvent{
		{Tool: logsrc.ToolClaude, OccurredAt: base, Kind: logsrc.KindPrompt, Payload: "why does this deadlock"},
		{Tool: logsrc.ToolClaude, OccurredAt: base.Add(5 * time.Second), Kind: logsrc.KindResponse, Payload: "both goroutines hold a lock the other needs"},
		{Tool: logsrc.ToolClaude, OccurredAt: base.Add(9 * time.Second), Kind: logsrc.KindFileEdit, Payload: "main.go\nmu.Lock()"},
	}
	sess, err := session.Normalize(logsrc.ToolClaude, "/tmp/a.jsonl", raw)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	return sess
}

func TestEvents_ViewListsTimeline(t *testing.T) {
	s := New(testSession(t))

	view := s.View(100, 24)
	for _, want := range []string{
		"3 events", "1 prompts", "1 responses", "1 edits",
		"prompt", "response", "file_edit",
		"why does this deadlock",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestEvents_Navigation(t *testing.T) {
	s := New(testSession(t))

	scr, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s = scr.(*EventsScreen)
	if s.selected != 1 {
		t.Fatalf("selected = %d, want 1", s.selected)
	}

	scr, _ = s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	scr, _ = scr.(*EventsScreen).Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	s = scr.(*EventsScreen)
	if s.selected != 2 {
		t.Fatalf("selected = %d, want 2 at bottom", s.selected)
	}

	scr, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	s = scr.(*EventsScreen)
	if s.selected != 1 {
		t.Fatalf("selected = %d, want 1 after up", s.selected)
	}
}

func TestEvents_EscPops(t *testing.T) {
	s := New(testSession(t))

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("expected PopScreenMsg")
	}
}
