package logsrc

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ClaudeAdapter parses Claude Code transcript files: one JSON object per
// line under ~/.claude/projects/<project>/<session>.jsonl.
type ClaudeAdapter struct{}

func (a *ClaudeAdapter) Tool() Tool { return ToolClaude }

// claudeLine is the subset of a transcript line this adapter reads.
// Extra fields are preserved via Meta where useful and otherwise ignored
// for forward compatibility.
type claudeLine struct {
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	SessionID string `json:"sessionId"`
	CWD       string `json:"cwd"`
	Message   struct {
		Role    string          `json:"role"`
		Content json.RawMessage `json:"content"`
	} `json:"message"`
}

type claudeBlock struct {
	Type  string          `json:"type"`
	Text  string          `json:"text"`
	Name  string          `json:"name"`
	Input json.RawMessage `json:"input"`
}

// claudeEditTools are the tool names that modify files.
var claudeEditTools = map[string]bool{
	"Edit":         true,
	"Write":        true,
	"MultiEdit":    true,
	"NotebookEdit": true,
}

// Probe looks for a sessionId field within the first few lines. Claude
// transcripts may begin with non-session lines (file history snapshots),
// so more than one line is checked.
func (a *ClaudeAdapter) Probe(content []byte) bool {
	sc := bufio.NewScanner(bytes.NewReader(content))
	sc.Buffer(make([]byte, 0, 256*1024), 256*1024)
	for i := 0; i < 10 && sc.Scan(); i++ {
		var line claudeLine
		if err := json.Unmarshal(sc.Bytes(), &line); err != nil {
			continue
		}
		if line.SessionID != "" {
			return true
		}
	}
	return false
}

func (a *ClaudeAdapter) Parse(path string, content []byte) ([]RawEvent, error) {
	sc := bufio.NewScanner(bytes.NewReader(content))
	// Tool outputs can produce very long lines.
	sc.Buffer(make([]byte, 0, 256*1024), 10*1024*1024)

	var events []RawEvent
	lineNo := 0

	for sc.Scan() {
		lineNo++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}

		var line claudeLine
		if err := json.Unmarshal(raw, &line); err != nil {
			return nil, &ParseError{
				Tool: ToolClaude, Path: path, Line: lineNo,
				Reason: "malformed JSON line", Err: err,
			}
		}

		switch line.Type {
		case "user":
			text, isToolResult, err := claudeUserText(line.Message.Content)
			if err != nil {
				return nil, &ParseError{
					Tool: ToolClaude, Path: path, Line: lineNo,
					Reason: "malformed user content", Err: err,
				}
			}
			if isToolResult || text == "" {
				continue
			}
			events = append(events, RawEvent{
				Tool:       ToolClaude,
				OccurredAt: claudeTime(line.Timestamp),
				Kind:       KindPrompt,
				Payload:    text,
				Meta:       claudeMeta(line),
			})

		case "assistant":
			evs, err := claudeAssistantEvents(line, path, lineNo)
			if err != nil {
				return nil, err
			}
			events = append(events, evs...)

		default:
			// Summaries, snapshots, and future line types are skipped.
		}
	}

	if err := sc.Err(); err != nil {
		return nil, &ParseError{
			Tool: ToolClaude, Path: path, Line: lineNo,
			Reason: "read transcript", Err: err,
		}
	}

	return events, nil
}

// claudeUserText extracts user text. Content is either a plain string or
// an array of blocks; tool_result blocks are echoes of tool output, not
// the user speaking.
func claudeUserText(raw json.RawMessage) (text string, isToolResult bool, err error) {
	if len(raw) == 0 {
		return "", false, nil
	}

	var str string
	if json.Unmarshal(raw, &str) == nil {
		return strings.TrimSpace(str), false, nil
	}

	var blocks []claudeBlock
	if err := json.Unmarshal(raw, &blocks); err != nil {
		return "", false, fmt.Errorf("content is neither string nor block array: %w", err)
	}

	var parts []string
	for _, b := range blocks {
		switch b.Type {
		case "text":
			parts = append(parts, b.Text)
		case "tool_result":
			isToolResult = true
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n")), isToolResult, nil
}

// claudeAssistantEvents emits one Response for the text blocks plus one
// FileEdit or ToolCall per tool_use block, preserving block order.
func claudeAssistantEvents(line claudeLine, path string, lineNo int) ([]RawEvent, error) {
	var blocks []claudeBlock
	if len(line.Message.Content) == 0 {
		return nil, nil
	}

	// Assistant content may be a plain string in older transcripts.
	var str string
	if json.Unmarshal(line.Message.Content, &str) == nil {
		if strings.TrimSpace(str) == "" {
			return nil, nil
		}
		return []RawEvent{{
			Tool:       ToolClaude,
			OccurredAt: claudeTime(line.Timestamp),
			Kind:       KindResponse,
			Payload:    strings.TrimSpace(str),
			Meta:       claudeMeta(line),
		}}, nil
	}

	if err := json.Unmarshal(line.Message.Content, &blocks); err != nil {
		return nil, &ParseError{
			Tool: ToolClaude, Path: path, Line: lineNo,
			Reason: "malformed assistant content", Err: err,
		}
	}

	at := claudeTime(line.Timestamp)
	var events []RawEvent
	var textParts []string

	flushText := func() {
		text := strings.TrimSpace(strings.Join(textParts, "\n"))
		textParts = textParts[:0]
		if text == "" {
			return
		}
		events = append(events, RawEvent{
			Tool: ToolClaude, OccurredAt: at, Kind: KindResponse,
			Payload: text, Meta: claudeMeta(line),
		})
	}

	for _, b := range blocks {
		switch b.Type {
		case "text":
			textParts = append(textParts, b.Text)
		case "tool_use":
			flushText()
			kind := KindToolCall
			if claudeEditTools[b.Name] {
				kind = KindFileEdit
			}
			meta := claudeMeta(line)
			meta["tool_name"] = b.Name
			events = append(events, RawEvent{
				Tool: ToolClaude, OccurredAt: at, Kind: kind,
				Payload: claudeToolPayload(b), Meta: meta,
			})
		}
	}
	flushText()

	return events, nil
}

// claudeToolPayload renders a tool_use input as readable text. File edits
// surface the path and the new content so the extractor sees the change
// itself, not the JSON envelope.
func claudeToolPayload(b claudeBlock) string {
	var input struct {
		FilePath  string `json:"file_path"`
		OldString string `json:"old_string"`
		NewString string `json:"new_string"`
		Content   string `json:"content"`
		Command   string `json:"command"`
	}
	if json.Unmarshal(b.Input, &input) == nil {
		var sb strings.Builder
		if input.FilePath != "" {
			fmt.Fprintf(&sb, "File: %s\n", input.FilePath)
		}
		switch {
		case input.NewString != "":
			if input.OldString != "" {
				fmt.Fprintf(&sb, "--- before\n%s\n+++ after\n%s", input.OldString, input.NewString)
			} else {
				sb.WriteString(input.NewString)
			}
		case input.Content != "":
			sb.WriteString(input.Content)
		case input.Command != "":
			sb.WriteString(input.Command)
		}
		if sb.Len() > 0 {
			return sb.String()
		}
	}
	return string(b.Input)
}

func claudeMeta(line claudeLine) map[string]string {
	meta := map[string]string{"session_id": line.SessionID}
	if line.CWD != "" {
		meta["cwd"] = line.CWD
	}
	return meta
}

// claudeTime parses the RFC3339 timestamp, returning the zero time when
// absent so the normalizer falls back to file order.
func claudeTime(ts string) time.Time {
	if ts == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return time.Time{}
	}
	return t
}
