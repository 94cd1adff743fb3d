package picker

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/dnorman/learnchain/internal/config"
	"github.com/dnorman/learnchain/internal/pipeline"
	"github.com/dnorman/learnchain/internal/quizgen"
	"github.com/dnorman/learnchain/internal/quizstore"
	"github.com/dnorman/learnchain/internal/router"
	"github.com/dnorman/learnchain/internal/screens/events"
	quizscreen "github.com/dnorman/learnchain/internal/screens/quiz"
)

const claudeTranscript = `{"type":"user","timestamp":"2025-08-01T10:00:00Z","sessionId":"abc","cwd":"/p","message":{"role":"user","content":"how do I memoize fibonacci in go"}}
{"type":"assistant","timestamp":"2025-08-01T10:00:05Z","sessionId":"abc","message":{"role":"assistant","content":[{"type":"text","text":"Cache computed values in a map keyed by n so each subproblem is solved once instead of exponentially many times."},{"type":"tool_use","name":"Write","input":{"file_path":"fib.go","content":"var memo = map[int]int{}\nfunc fib(n int) int {\n if n < 2 { return n }\n if v, ok := memo[n]; ok { return v }\n memo[n] = fib(n-1) + fib(n-2)\n return memo[n]\n}"}}]}}
{"type":"assistant","timestamp":"2025-08-01T10:00:09Z","sessionId":"abc","message":{"role":"assistant","content":[{"type":"text","text":"The memo map turns the exponential recursion into a linear walk because every value above the base case is computed exactly once and then reused."}]}}
`

const toolOnlyTranscript = `{"type":"assistant","timestamp":"2025-08-01T10:00:00Z","sessionId":"abc","message":{"role":"assistant","content":[{"type":"tool_use","name":"Bash","input":{"command":"go test ./..."}}]}}
{"type":"assistant","timestamp":"2025-08-01T10:00:05Z","sessionId":"abc","message":{"role":"assistant","content":[{"type":"tool_use","name":"Bash","input":{"command":"ls"}}]}}
`

type staticGenerator struct{}

func (staticGenerator) Generate(_ context.Context, input quizgen.GenerateInput) (*quizgen.Quiz, error) {
	return &quizgen.Quiz{
		ConceptFingerprint: input.Concept.Fingerprint,
		Question:           "q",
		Choices:            []string{"a", "b", "c", "d"},
		Explanation:        "e",
		Language:           "go",
		Difficulty:         1,
	}, nil
}

func genf() (quizgen.Generator, error) {
	return staticGenerator{}, nil
}

func writeTranscript(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing transcript: %v", err)
	}
}

func testPicker(t *testing.T, dir string) *PickerScreen {
	t.Helper()
	cfg := config.Default()
	s := New(genf, nil, &cfg, quizstore.New(), pipeline.NewResumeCache())
	s.roots = []string{dir}
	return s
}

func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for command")
		return nil
	}
}

func TestPicker_ScanFindsTranscripts(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "a.jsonl", claudeTranscript)

	s := testPicker(t, dir)
	msg := runCmd(t, s.Init())

	scr, _ := s.Update(msg)
	s = scr.(*PickerScreen)

	if s.scanning {
		t.Fatal("scan should be finished")
	}
	if len(s.candidates) != 1 {
		t.Fatalf("candidates = %d, want 1", len(s.candidates))
	}
	if s.candidates[0].Tool != "claude-code" {
		t.Errorf("Tool = %q, want claude-code", s.candidates[0].Tool)
	}
	if view := s.View(80, 24); !strings.Contains(view, "claude-code") {
		t.Errorf("view missing tool tag:\n%s", view)
	}
}

func TestPicker_LoadPushesReview(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "a.jsonl", claudeTranscript)

	s := testPicker(t, dir)
	msg := runCmd(t, s.Init())
	scr, _ := s.Update(msg)
	s = scr.(*PickerScreen)

	scr, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = scr.(*PickerScreen)
	if !s.loading {
		t.Fatal("expected loading state")
	}

	loaded := runCmd(t, cmd)
	lm, ok := loaded.(sessionLoadedMsg)
	if !ok {
		t.Fatalf("expected sessionLoadedMsg, got %T", loaded)
	}
	if len(lm.Concepts) == 0 {
		t.Fatal("expected at least one concept from the transcript")
	}

	scr, cmd = s.Update(loaded)
	s = scr.(*PickerScreen)
	push := runCmd(t, cmd)
	pm, ok := push.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", push)
	}
	if _, ok := pm.Screen.(*quizscreen.QuizScreen); !ok {
		t.Errorf("expected a review screen, got %T", pm.Screen)
	}
}

func TestPicker_EventsPushesTimeline(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "a.jsonl", claudeTranscript)

	s := testPicker(t, dir)
	msg := runCmd(t, s.Init())
	scr, _ := s.Update(msg)
	s = scr.(*PickerScreen)

	scr, cmd := s.Update(tea.KeyPressMsg{Code: 'e', Text: "e"})
	s = scr.(*PickerScreen)
	if !s.loading {
		t.Fatal("expected loading state")
	}

	loaded := runCmd(t, cmd)
	tm, ok := loaded.(timelineLoadedMsg)
	if !ok {
		t.Fatalf("expected timelineLoadedMsg, got %T", loaded)
	}
	if len(tm.Session.Events) != 4 {
		t.Fatalf("Events = %d, want 4", len(tm.Session.Events))
	}

	scr, cmd = s.Update(loaded)
	s = scr.(*PickerScreen)
	push := runCmd(t, cmd)
	pm, ok := push.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", push)
	}
	if _, ok := pm.Screen.(*events.EventsScreen); !ok {
		t.Errorf("expected an events screen, got %T", pm.Screen)
	}
}

func TestPicker_ToolOnlySessionHasNothingToReview(t *testing.T) {
	dir := t.TempDir()
	writeTranscript(t, dir, "tools.jsonl", toolOnlyTranscript)

	s := testPicker(t, dir)
	msg := runCmd(t, s.Init())
	scr, _ := s.Update(msg)
	s = scr.(*PickerScreen)

	if len(s.candidates) != 1 {
		t.Fatalf("candidates = %d, want 1", len(s.candidates))
	}

	scr, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = scr.(*PickerScreen)
	loaded := runCmd(t, cmd)
	scr, _ = s.Update(loaded)
	s = scr.(*PickerScreen)

	if s.infoMsg == "" {
		t.Fatal("expected a nothing-to-review notice")
	}
	if view := s.View(80, 24); !strings.Contains(view, "Nothing to review") {
		t.Errorf("view missing notice:\n%s", view)
	}
}

func TestPicker_NoTranscripts(t *testing.T) {
	s := testPicker(t, t.TempDir())
	msg := runCmd(t, s.Init())
	scr, _ := s.Update(msg)
	s = scr.(*PickerScreen)

	if view := s.View(80, 24); !strings.Contains(view, "No transcripts found") {
		t.Errorf("view missing empty state:\n%s", view)
	}
}
