package logsrc

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScan(t *testing.T) {
	root := t.TempDir()

	write := func(rel, content string) {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	write("proj/claude.jsonl", claudeSample)
	write("2025/08/02/rollout.jsonl", codexSample)
	write("proj/notes.jsonl", "not a transcript\n")
	write("proj/readme.md", "# readme\n")

	found := Scan([]string{root, filepath.Join(root, "missing")})
	if len(found) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(found))
	}

	tools := map[Tool]bool{}
	for _, c := range found {
		tools[c.Tool] = true
		if c.Summary == "" {
			t.Fatalf("candidate %s has no summary", c.Path)
		}
	}
	if !tools[ToolClaude] || !tools[ToolCodex] {
		t.Fatalf("expected one candidate per tool, got %v", tools)
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "s.jsonl")
	if err := os.WriteFile(path, []byte(claudeSample), 0o644); err != nil {
		t.Fatal(err)
	}

	tool, events, err := ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tool != ToolClaude {
		t.Fatalf("expected claude, got %s", tool)
	}
	if len(events) == 0 {
		t.Fatal("expected events")
	}
}

func TestReadFileAs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "s.jsonl")
	if err := os.WriteFile(path, []byte(claudeSample), 0o644); err != nil {
		t.Fatal(err)
	}

	events, err := ReadFileAs(path, ToolClaude)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) == 0 {
		t.Fatal("expected events")
	}

	if _, err := ReadFileAs(path, Tool("vim")); err == nil {
		t.Fatal("expected error for unknown tool")
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("a  b\n c", 100); got != "a b c" {
		t.Fatalf("whitespace not collapsed: %q", got)
	}
	long := Truncate("abcdefghij", 6)
	if long != "abcd.." {
		t.Fatalf("unexpected truncation: %q", long)
	}
}
