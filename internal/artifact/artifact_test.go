package artifact

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnorman/learnchain/internal/logsrc"
	"github.com/dnorman/learnchain/internal/quizgen"
	"github.com/dnorman/learnchain/internal/quizstore"
	"github.com/dnorman/learnchain/internal/session"
)

func testSession() *session.Session {
	return &session.Session{
		ID:         "sess-1",
		Tool:       logsrc.ToolClaude,
		SourcePath: "/home/u/.claude/projects/p/t.jsonl",
	}
}

func testEntries(t *testing.T) []quizstore.Entry {
	t.Helper()
	s := quizstore.New()
	s.Put(&quizgen.Quiz{
		ConceptFingerprint: "aaa",
		Question:           "What does defer do?",
		Choices:            []string{"a", "b", "c", "d"},
		CorrectIndex:       2,
		Explanation:        "Runs at function return.",
		Language:           "go",
		Difficulty:         2,
	})
	s.Put(&quizgen.Quiz{
		ConceptFingerprint: "bbb",
		Question:           "What is a goroutine?",
		Choices:            []string{"a", "b", "c", "d"},
		CorrectIndex:       0,
		Explanation:        "A lightweight thread.",
		Language:           "go",
		Difficulty:         1,
	})
	_, err := s.Answer("aaa", 2, time.Now())
	require.NoError(t, err)
	return s.List(quizstore.Filter{})
}

func TestBuildSet(t *testing.T) {
	set := BuildSet("abcdef123456", testSession(), testEntries(t))

	assert.Equal(t, "claude-code", set.Tool)
	require.Len(t, set.Quizzes, 2)

	answered := set.Quizzes[0]
	require.True(t, answered.Answered)
	require.NotNil(t, answered.ChosenIndex)
	require.NotNil(t, answered.Correct)
	assert.Equal(t, 2, *answered.ChosenIndex)
	assert.True(t, *answered.Correct)

	pending := set.Quizzes[1]
	assert.False(t, pending.Answered)
	assert.Nil(t, pending.ChosenIndex)
	assert.Nil(t, pending.Correct)
}

func TestWriteRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "quizzes")
	set := BuildSet("abcdef123456", testSession(), testEntries(t))

	path, err := Write(dir, set)
	require.NoError(t, err)

	base := filepath.Base(path)
	assert.True(t, strings.HasPrefix(base, "quizzes-"), "name %q", base)
	assert.True(t, strings.HasSuffix(base, "-abcdef12.json"), "name %q", base)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Set
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "abcdef123456", got.SessionID)
	require.Len(t, got.Quizzes, 2)
	assert.Equal(t, "What does defer do?", got.Quizzes[0].Question)
}
