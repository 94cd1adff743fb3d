package logsrc

import (
	"errors"
	"strings"
	"testing"
)

const codexSample = `{"timestamp":"2025-08-02T09:00:00.000Z","type":"session_meta","payload":{"id":"sess-9","cwd":"/home/u/proj"}}
{"timestamp":"2025-08-02T09:00:01.000Z","type":"response_item","payload":{"type":"message","role":"user","content":[{"type":"input_text","text":"add a retry helper around the fetch call"}]}}
{"timestamp":"2025-08-02T09:00:07.000Z","type":"response_item","payload":{"type":"message","role":"assistant","content":[{"type":"output_text","text":"I'll wrap fetch in an exponential backoff loop."}]}}
{"timestamp":"2025-08-02T09:00:09.000Z","type":"response_item","payload":{"type":"function_call","name":"shell","call_id":"call-1","arguments":"{\"command\":[\"bash\",\"-lc\",\"apply_patch <<'PATCH'\n*** Begin Patch\n*** Update File: fetch.go\n+func fetchWithRetry() {}\n*** End Patch\nPATCH\"]}"}}
{"timestamp":"2025-08-02T09:00:10.000Z","type":"response_item","payload":{"type":"function_call_output","call_id":"call-1","output":"{\"output\":\"Done\"}"}}
`

func TestCodexParse(t *testing.T) {
	a := &CodexAdapter{}
	events, err := a.Parse("rollout.jsonl", []byte(codexSample))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	if events[0].Kind != KindPrompt {
		t.Fatalf("expected prompt, got %s", events[0].Kind)
	}
	if events[1].Kind != KindResponse {
		t.Fatalf("expected response, got %s", events[1].Kind)
	}
	if events[2].Kind != KindFileEdit {
		t.Fatalf("expected file edit, got %s", events[2].Kind)
	}

	if !strings.HasPrefix(events[2].Payload, "*** Begin Patch") {
		t.Fatalf("patch payload should be unwrapped, got %q", events[2].Payload)
	}
	if events[2].Meta["call_id"] != "call-1" {
		t.Fatalf("expected call_id meta, got %q", events[2].Meta["call_id"])
	}
	if events[0].Meta["session_id"] != "sess-9" {
		t.Fatalf("expected session_id from session_meta, got %q", events[0].Meta["session_id"])
	}
}

func TestCodexParse_SkipsSystemMessages(t *testing.T) {
	content := `{"timestamp":"2025-08-02T09:00:00Z","type":"session_meta","payload":{"id":"s"}}
{"timestamp":"2025-08-02T09:00:01Z","type":"response_item","payload":{"type":"message","role":"user","content":[{"type":"input_text","text":"<environment_context>stuff</environment_context>"}]}}
`
	a := &CodexAdapter{}
	events, err := a.Parse("rollout.jsonl", []byte(content))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("environment context should be skipped, got %d events", len(events))
	}
}

func TestCodexParse_MalformedLine(t *testing.T) {
	content := codexSample + "{{{\n"
	a := &CodexAdapter{}
	events, err := a.Parse("rollout.jsonl", []byte(content))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if events != nil {
		t.Fatal("partial events must not be exposed on failure")
	}
}

func TestDetect(t *testing.T) {
	a, err := Detect([]byte(claudeSample))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Tool() != ToolClaude {
		t.Fatalf("expected claude adapter, got %s", a.Tool())
	}

	a, err = Detect([]byte(codexSample))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Tool() != ToolCodex {
		t.Fatalf("expected codex adapter, got %s", a.Tool())
	}

	_, err = Detect([]byte("just some text\n"))
	if !errors.Is(err, ErrUnrecognizedFormat) {
		t.Fatalf("expected ErrUnrecognizedFormat, got %v", err)
	}
}
