package logsrc

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedFormat is returned by Detect when no adapter's probe
// accepts the input.
var ErrUnrecognizedFormat = errors.New("transcript format not recognized by any adapter")

// ParseError indicates a transcript did not match its adapter's schema.
// Parsing is atomic: a file that produces a ParseError contributes no
// events at all.
type ParseError struct {
	Tool   Tool
	Path   string
	Line   int // 1-based, 0 when not line-specific
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s:%d: %s", e.Tool, e.Path, e.Line, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", e.Tool, e.Path, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Adapter parses one assistant tool's transcript format.
type Adapter interface {
	// Tool returns the identity of the assistant this adapter handles.
	Tool() Tool

	// Probe reports whether content plausibly matches this adapter's
	// schema. Probes are cheap: they inspect only the first few lines.
	Probe(content []byte) bool

	// Parse converts the full file content into an ordered event
	// sequence, or fails with *ParseError. Unknown fields are ignored;
	// structurally malformed lines abort the whole parse.
	Parse(path string, content []byte) ([]RawEvent, error)
}

// Adapters returns the registered adapters in probe priority order.
func Adapters() []Adapter {
	return []Adapter{&ClaudeAdapter{}, &CodexAdapter{}}
}

// ByTool returns the adapter for a declared tool identity.
func ByTool(tool Tool) (Adapter, error) {
	for _, a := range Adapters() {
		if a.Tool() == tool {
			return a, nil
		}
	}
	return nil, fmt.Errorf("no adapter for tool %q", tool)
}

// Detect tries each adapter's probe in priority order and returns the
// first match, or ErrUnrecognizedFormat.
func Detect(content []byte) (Adapter, error) {
	for _, a := range Adapters() {
		if a.Probe(content) {
			return a, nil
		}
	}
	return nil, ErrUnrecognizedFormat
}
