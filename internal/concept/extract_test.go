package concept

import (
	"strings"
	"testing"
	"time"

	"github.com/dnorman/learnchain/internal/logsrc"
	"github.com/dnorman/learnchain/internal/session"
)

func buildSession(t *testing.T, events []logsrc.RawEvent) *session.Session {
	t.Helper()
	s, err := session.Normalize(logsrc.ToolClaude, "s.jsonl", events)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	return s
}

func raw(kind logsrc.Kind, payload string, offset int) logsrc.RawEvent {
	base := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	return logsrc.RawEvent{
		Tool:       logsrc.ToolClaude,
		Kind:       kind,
		Payload:    payload,
		OccurredAt: base.Add(time.Duration(offset) * time.Second),
	}
}

const recursionResponse = "Recursion is a function that calls itself with a smaller input until it reaches a base case. Here fib(n) recurses on n-1 and n-2."
const recursionEdit = "File: fib.go\nfunc fib(n int) int {\n\tif n < 2 {\n\t\treturn n\n\t}\n\treturn fib(n-1) + fib(n-2)\n}"

func TestExtract_PromptResponseEditIsOneConcept(t *testing.T) {
	s := buildSession(t, []logsrc.RawEvent{
		raw(logsrc.KindPrompt, "explain recursion", 0),
		raw(logsrc.KindResponse, recursionResponse, 5),
		raw(logsrc.KindFileEdit, recursionEdit, 9),
	})

	concepts := Extract(s, DefaultConfig())
	if len(concepts) != 1 {
		t.Fatalf("expected 1 concept, got %d", len(concepts))
	}

	c := concepts[0]
	if c.Title != "explain recursion" {
		t.Fatalf("unexpected title: %q", c.Title)
	}
	if len(c.Events) != 3 {
		t.Fatalf("expected 3 supporting events, got %d", len(c.Events))
	}
	if !strings.Contains(c.Text(), "fib(n-1)") {
		t.Fatal("concept text should include the edit body")
	}
}

func TestExtract_ToolCallsOnlyYieldNothing(t *testing.T) {
	s := buildSession(t, []logsrc.RawEvent{
		raw(logsrc.KindToolCall, "ls -la", 0),
		raw(logsrc.KindToolCall, "go vet ./...", 2),
	})

	if got := Extract(s, DefaultConfig()); len(got) != 0 {
		t.Fatalf("expected 0 concepts, got %d", len(got))
	}
}

func TestExtract_SizeThresholdDropsTrivia(t *testing.T) {
	s := buildSession(t, []logsrc.RawEvent{
		raw(logsrc.KindPrompt, "hi", 0),
		raw(logsrc.KindResponse, "hello!", 1),
	})

	if got := Extract(s, DefaultConfig()); len(got) != 0 {
		t.Fatalf("tiny exchange should be dropped, got %d concepts", len(got))
	}
}

func TestExtract_EditBeyondLookBackStandsAlone(t *testing.T) {
	filler := make([]logsrc.RawEvent, 0, 12)
	filler = append(filler, raw(logsrc.KindPrompt, "please refactor the config loader to be testable", 0))
	filler = append(filler, raw(logsrc.KindResponse, strings.Repeat("Refactoring the loader step by step. ", 4), 1))
	for i := 0; i < 8; i++ {
		filler = append(filler, raw(logsrc.KindToolCall, "go test ./...", 2+i))
	}
	filler = append(filler, raw(logsrc.KindFileEdit, "File: loader.go\n"+strings.Repeat("func Load() error { return nil }\n", 6), 20))

	s := buildSession(t, filler)
	cfg := DefaultConfig()
	cfg.LookBack = 3

	concepts := Extract(s, cfg)
	if len(concepts) != 2 {
		t.Fatalf("expected exchange and standalone edit, got %d concepts", len(concepts))
	}
	if !strings.HasPrefix(concepts[1].Title, "Code change: loader.go") {
		t.Fatalf("unexpected standalone edit title: %q", concepts[1].Title)
	}
}

func TestExtract_DuplicatesMerge(t *testing.T) {
	// The same exchange appears twice; whitespace differs, which the
	// normalized fingerprint ignores.
	s := buildSession(t, []logsrc.RawEvent{
		raw(logsrc.KindPrompt, "what does defer do in go", 0),
		raw(logsrc.KindResponse, "Defer schedules a call to run when the function returns, in LIFO order.", 1),
		raw(logsrc.KindPrompt, "what  does   defer do in go", 100),
		raw(logsrc.KindResponse, "Defer schedules a call to run when the function returns,  in LIFO order.", 101),
	})

	concepts := Extract(s, DefaultConfig())
	if len(concepts) != 1 {
		t.Fatalf("expected merged concept, got %d", len(concepts))
	}
	if len(concepts[0].Events) != 4 {
		t.Fatalf("merged concept should union events, got %d", len(concepts[0].Events))
	}
	if concepts[0].Title != "what does defer do in go" {
		t.Fatalf("first title should win: %q", concepts[0].Title)
	}
}

func TestExtract_Deterministic(t *testing.T) {
	s := buildSession(t, []logsrc.RawEvent{
		raw(logsrc.KindPrompt, "explain recursion", 0),
		raw(logsrc.KindResponse, recursionResponse, 5),
		raw(logsrc.KindFileEdit, recursionEdit, 9),
		raw(logsrc.KindPrompt, "now add memoization to the fib function", 20),
		raw(logsrc.KindResponse, "Memoization caches prior results in a map keyed by n, trading memory for repeated-call speed.", 25),
	})

	first := Extract(s, DefaultConfig())
	second := Extract(s, DefaultConfig())

	if len(first) != len(second) {
		t.Fatalf("concept counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Fingerprint != second[i].Fingerprint {
			t.Fatalf("fingerprint drift at %d", i)
		}
	}
}

func TestExtract_MaxConcepts(t *testing.T) {
	s := buildSession(t, []logsrc.RawEvent{
		raw(logsrc.KindPrompt, "explain recursion please, with a worked example in go", 0),
		raw(logsrc.KindResponse, recursionResponse, 1),
		raw(logsrc.KindPrompt, "explain closures please, with a worked example in go", 10),
		raw(logsrc.KindResponse, "A closure captures variables from its enclosing scope; the counter example returns a func that increments shared state.", 11),
	})

	cfg := DefaultConfig()
	cfg.MaxConcepts = 1
	if got := Extract(s, cfg); len(got) != 1 {
		t.Fatalf("expected cap of 1, got %d", len(got))
	}
}
