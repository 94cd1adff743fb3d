package concept

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/dnorman/learnchain/internal/session"
)

// Difficulty is a coarse hint passed through to question generation.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Concept is one deduplicated teachable unit extracted from a Session:
// a code change plus its justification, or a substantial prompt/response
// exchange. Read-only after extraction.
type Concept struct {
	// Fingerprint is the hex SHA-256 of the normalized supporting text.
	// Unique within a Session; stable across re-extraction.
	Fingerprint string

	Title string

	// Events is the ordered subsequence of session events backing this
	// concept. Merged units union their events.
	Events []session.Event

	DifficultyHint Difficulty
}

// Text returns the concatenated supporting payloads in timeline order,
// the material sent to question generation.
func (c *Concept) Text() string {
	parts := make([]string, len(c.Events))
	for i, e := range c.Events {
		parts[i] = e.Payload
	}
	return strings.Join(parts, "\n\n")
}

// Fingerprint hashes normalized text: lowercased with runs of whitespace
// collapsed, so formatting-only differences between transcripts do not
// produce distinct concepts.
func fingerprint(text string) string {
	normalized := normalize(text)
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

func normalize(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}
