package logsrc

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// CodexAdapter parses Codex CLI rollout files: one JSON object per line
// under ~/.codex/sessions/YYYY/MM/DD/*.jsonl.
type CodexAdapter struct{}

func (a *CodexAdapter) Tool() Tool { return ToolCodex }

type codexLine struct {
	Timestamp string          `json:"timestamp"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
}

type codexPayload struct {
	Type      string          `json:"type"`
	Role      string          `json:"role"`
	Content   []codexFragment `json:"content"`
	Name      string          `json:"name"`
	CallID    string          `json:"call_id"`
	Arguments json.RawMessage `json:"arguments"`
	Output    json.RawMessage `json:"output"`
	ID        string          `json:"id"`
	CWD       string          `json:"cwd"`
}

type codexFragment struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Probe accepts content whose first lines carry the session_meta or
// response_item envelope.
func (a *CodexAdapter) Probe(content []byte) bool {
	sc := bufio.NewScanner(bytes.NewReader(content))
	sc.Buffer(make([]byte, 0, 256*1024), 256*1024)
	for i := 0; i < 10 && sc.Scan(); i++ {
		var line codexLine
		if err := json.Unmarshal(sc.Bytes(), &line); err != nil {
			continue
		}
		switch line.Type {
		case "session_meta", "response_item", "event_msg", "turn_context":
			return true
		}
	}
	return false
}

func (a *CodexAdapter) Parse(path string, content []byte) ([]RawEvent, error) {
	sc := bufio.NewScanner(bytes.NewReader(content))
	sc.Buffer(make([]byte, 0, 256*1024), 10*1024*1024)

	var events []RawEvent
	var sessionID string
	lineNo := 0

	for sc.Scan() {
		lineNo++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}

		var line codexLine
		if err := json.Unmarshal(raw, &line); err != nil {
			return nil, &ParseError{
				Tool: ToolCodex, Path: path, Line: lineNo,
				Reason: "malformed JSON line", Err: err,
			}
		}
		if len(line.Payload) == 0 {
			continue
		}

		var payload codexPayload
		if err := json.Unmarshal(line.Payload, &payload); err != nil {
			return nil, &ParseError{
				Tool: ToolCodex, Path: path, Line: lineNo,
				Reason: "malformed payload", Err: err,
			}
		}

		switch line.Type {
		case "session_meta":
			sessionID = payload.ID
			continue
		case "response_item":
			// Handled below.
		default:
			continue
		}

		at := codexTime(line.Timestamp)
		meta := map[string]string{}
		if sessionID != "" {
			meta["session_id"] = sessionID
		}

		switch payload.Type {
		case "message":
			text := codexText(payload.Content)
			if text == "" || codexSystemText(text) {
				continue
			}
			kind := KindResponse
			if payload.Role == "user" {
				kind = KindPrompt
			}
			events = append(events, RawEvent{
				Tool: ToolCodex, OccurredAt: at, Kind: kind,
				Payload: text, Meta: meta,
			})

		case "function_call":
			args := codexValueText(payload.Arguments)
			kind := KindToolCall
			if codexIsEdit(payload.Name, args) {
				kind = KindFileEdit
				args = codexPatchBody(args)
			}
			meta["call_id"] = payload.CallID
			meta["function"] = payload.Name
			events = append(events, RawEvent{
				Tool: ToolCodex, OccurredAt: at, Kind: kind,
				Payload: args, Meta: meta,
			})

		case "function_call_output":
			// Tool output is the environment talking back; it carries no
			// concept-bearing text of its own.
		}
	}

	if err := sc.Err(); err != nil {
		return nil, &ParseError{
			Tool: ToolCodex, Path: path, Line: lineNo,
			Reason: "read transcript", Err: err,
		}
	}

	return events, nil
}

func codexText(fragments []codexFragment) string {
	var parts []string
	for _, f := range fragments {
		if f.Text != "" {
			parts = append(parts, f.Text)
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}

// codexSystemText filters the instruction boilerplate Codex injects as
// user messages.
func codexSystemText(text string) bool {
	return strings.Contains(text, "<environment_context>") ||
		strings.Contains(text, "<permissions") ||
		strings.Contains(text, "AGENTS.md")
}

// codexValueText unwraps a JSON value into display text: strings are
// unquoted, objects keep their serialized form.
func codexValueText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var str string
	if json.Unmarshal(raw, &str) == nil {
		return str
	}
	return string(raw)
}

// codexIsEdit reports whether a function call modifies files: either the
// dedicated apply_patch tool or a shell invocation wrapping one.
func codexIsEdit(name, args string) bool {
	if name == "apply_patch" {
		return true
	}
	return strings.Contains(args, "apply_patch") || strings.Contains(args, "*** Begin Patch")
}

// codexPatchBody strips the shell envelope around an apply_patch call so
// the payload is the patch text itself.
func codexPatchBody(args string) string {
	start := strings.Index(args, "*** Begin Patch")
	if start < 0 {
		return args
	}
	end := strings.Index(args, "*** End Patch")
	if end < 0 {
		return args[start:]
	}
	return args[start : end+len("*** End Patch")]
}

func codexTime(ts string) time.Time {
	if ts == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, ts); err == nil {
			return t
		}
	}
	return time.Time{}
}
