package logsrc

import "time"

// Kind classifies a raw transcript event.
type Kind string

const (
	KindPrompt   Kind = "prompt"    // user message to the assistant
	KindResponse Kind = "response"  // assistant text turn
	KindFileEdit Kind = "file_edit" // a file create/modify made by the assistant
	KindToolCall Kind = "tool_call" // any other tool invocation
)

// Tool identifies the assistant that produced a transcript.
type Tool string

const (
	ToolClaude Tool = "claude-code"
	ToolCodex  Tool = "codex-cli"
)

// RawEvent is one transcript entry in adapter-neutral shape. Adapters
// preserve tool-specific fields in Meta without interpreting them.
// Immutable once parsed.
type RawEvent struct {
	Tool       Tool
	OccurredAt time.Time
	Kind       Kind

	// Payload is the event text: prompt/response text, or the diff/patch
	// body for file edits, or the serialized arguments for tool calls.
	Payload string

	// Meta carries tool-specific fields (call IDs, file paths, model
	// names) that downstream stages may display but never depend on.
	Meta map[string]string
}
