package logsrc

import (
	"strings"
	"testing"
)

const claudeSample = `{"type":"user","timestamp":"2025-08-01T10:00:00Z","sessionId":"abc-123","cwd":"/home/u/proj","message":{"role":"user","content":"explain recursion"}}
{"type":"assistant","timestamp":"2025-08-01T10:00:05Z","sessionId":"abc-123","message":{"role":"assistant","content":[{"type":"text","text":"Recursion is a function calling itself with a smaller input."},{"type":"tool_use","name":"Write","input":{"file_path":"fib.go","content":"func fib(n int) int {\n if n < 2 { return n }\n return fib(n-1) + fib(n-2)\n}"}}]}}
{"type":"assistant","timestamp":"2025-08-01T10:00:09Z","sessionId":"abc-123","message":{"role":"assistant","content":[{"type":"tool_use","name":"Bash","input":{"command":"go test ./..."}}]}}
`

func TestClaudeParse(t *testing.T) {
	a := &ClaudeAdapter{}
	events, err := a.Parse("s.jsonl", []byte(claudeSample))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 4 {
		t.Fatalf("expected 4 events, got %d", len(events))
	}

	wantKinds := []Kind{KindPrompt, KindResponse, KindFileEdit, KindToolCall}
	for i, k := range wantKinds {
		if events[i].Kind != k {
			t.Fatalf("event %d: expected kind %s, got %s", i, k, events[i].Kind)
		}
	}

	if events[0].Payload != "explain recursion" {
		t.Fatalf("unexpected prompt payload: %q", events[0].Payload)
	}
	if !strings.Contains(events[2].Payload, "File: fib.go") {
		t.Fatalf("file edit payload missing path: %q", events[2].Payload)
	}
	if events[2].Meta["tool_name"] != "Write" {
		t.Fatalf("expected tool_name Write, got %q", events[2].Meta["tool_name"])
	}
	if events[0].OccurredAt.After(events[1].OccurredAt) {
		t.Fatal("timestamps should be ascending in this sample")
	}
}

func TestClaudeParse_Deterministic(t *testing.T) {
	a := &ClaudeAdapter{}
	first, err := a.Parse("s.jsonl", []byte(claudeSample))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := a.Parse("s.jsonl", []byte(claudeSample))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("event counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Kind != second[i].Kind || first[i].Payload != second[i].Payload {
			t.Fatalf("event %d differs between parses", i)
		}
	}
}

func TestClaudeParse_MalformedLineIsAtomic(t *testing.T) {
	content := claudeSample + "{not json\n"
	a := &ClaudeAdapter{}
	events, err := a.Parse("s.jsonl", []byte(content))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if events != nil {
		t.Fatal("partial events must not be exposed on failure")
	}

	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Line != 4 {
		t.Fatalf("expected failure at line 4, got %d", perr.Line)
	}
}

func TestClaudeParse_ToleratesUnknownFields(t *testing.T) {
	content := `{"type":"user","timestamp":"2025-08-01T10:00:00Z","sessionId":"x","futureField":{"a":1},"message":{"role":"user","content":"hi there, what does defer do?"}}` + "\n"
	a := &ClaudeAdapter{}
	events, err := a.Parse("s.jsonl", []byte(content))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 || events[0].Kind != KindPrompt {
		t.Fatalf("unexpected events: %+v", events)
	}
}

func TestClaudeParse_SkipsToolResults(t *testing.T) {
	content := `{"type":"user","sessionId":"x","message":{"role":"user","content":[{"type":"tool_result","content":"exit 0"}]}}` + "\n"
	a := &ClaudeAdapter{}
	events, err := a.Parse("s.jsonl", []byte(content))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("tool_result lines should produce no events, got %d", len(events))
	}
}

func TestClaudeProbe(t *testing.T) {
	a := &ClaudeAdapter{}
	if !a.Probe([]byte(claudeSample)) {
		t.Fatal("probe should accept a claude transcript")
	}
	if a.Probe([]byte(codexSample)) {
		t.Fatal("probe should reject a codex transcript")
	}
	if a.Probe([]byte("plain text\nnot json\n")) {
		t.Fatal("probe should reject non-JSON content")
	}
}
