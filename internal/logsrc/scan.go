package logsrc

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Candidate is a discovered transcript file, with just enough metadata
// for the session picker to render a row without a full parse.
type Candidate struct {
	Path     string
	Tool     Tool
	Modified time.Time
	Summary  string // first user prompt, truncated
}

// DefaultRoots returns the conventional transcript locations for the
// supported tools under the user's home directory.
func DefaultRoots() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return []string{
		filepath.Join(home, ".claude", "projects"),
		filepath.Join(home, ".codex", "sessions"),
	}
}

// Scan walks the given roots for .jsonl transcripts, probes each against
// the registered adapters, and returns candidates newest-first. Files no
// adapter recognizes are skipped; unreadable directories are ignored.
func Scan(roots []string) []Candidate {
	var found []Candidate

	for _, root := range roots {
		if _, err := os.Stat(root); err != nil {
			continue
		}
		filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil || info.IsDir() || !strings.HasSuffix(info.Name(), ".jsonl") {
				return nil
			}
			if c, ok := probeFile(path, info); ok {
				found = append(found, c)
			}
			return nil
		})
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].Modified.After(found[j].Modified)
	})
	return found
}

// probeFile reads the head of a file, identifies the adapter, and pulls
// a one-line summary.
func probeFile(path string, info os.FileInfo) (Candidate, bool) {
	head, err := readHead(path, 64*1024)
	if err != nil {
		return Candidate{}, false
	}

	adapter, err := Detect(head)
	if err != nil {
		return Candidate{}, false
	}

	return Candidate{
		Path:     path,
		Tool:     adapter.Tool(),
		Modified: info.ModTime(),
		Summary:  headSummary(adapter, path, head),
	}, true
}

func readHead(path string, n int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, n)
	read, err := f.Read(buf)
	if read == 0 && err != nil {
		return nil, err
	}
	// Drop a trailing partial line so the head is valid JSONL.
	head := buf[:read]
	if read == n {
		if idx := strings.LastIndexByte(string(head), '\n'); idx > 0 {
			head = head[:idx]
		}
	}
	return head, nil
}

// headSummary parses just the head of the file and returns the first
// prompt text, truncated for display.
func headSummary(adapter Adapter, path string, head []byte) string {
	events, err := adapter.Parse(path, head)
	if err != nil {
		return ""
	}
	for _, e := range events {
		if e.Kind == KindPrompt {
			return Truncate(e.Payload, 120)
		}
	}
	return ""
}

// Truncate collapses whitespace and caps s at maxLen runes.
func Truncate(s string, maxLen int) string {
	fields := strings.Fields(s)
	s = strings.Join(fields, " ")

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-2]) + ".."
}

// ReadFile loads a transcript and parses it with the detected adapter.
func ReadFile(path string) (Tool, []RawEvent, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}

	adapter, err := Detect(content)
	if err != nil {
		return "", nil, err
	}

	events, err := adapter.Parse(path, content)
	if err != nil {
		return "", nil, err
	}
	return adapter.Tool(), events, nil
}

// ReadFileAs loads a transcript with the adapter for a known tool,
// skipping detection. The picker uses it for candidates the scan has
// already probed.
func ReadFileAs(path string, tool Tool) ([]RawEvent, error) {
	adapter, err := ByTool(tool)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return adapter.Parse(path, content)
}
