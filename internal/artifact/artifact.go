package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dnorman/learnchain/internal/quizstore"
	"github.com/dnorman/learnchain/internal/session"
)

// QuizRecord is one generated quiz with its outcome, as written to disk.
type QuizRecord struct {
	ConceptFingerprint string   `json:"concept_fingerprint"`
	Question           string   `json:"question"`
	Choices            []string `json:"choices"`
	CorrectIndex       int      `json:"correct_index"`
	Explanation        string   `json:"explanation"`
	Language           string   `json:"language"`
	Difficulty         int      `json:"difficulty"`
	Answered           bool     `json:"answered"`
	ChosenIndex        *int     `json:"chosen_index,omitempty"`
	Correct            *bool    `json:"correct,omitempty"`
}

// Set is one review's worth of quizzes, traceable back to the transcript
// it was generated from.
type Set struct {
	SessionID   string       `json:"session_id"`
	Tool        string       `json:"tool"`
	SourcePath  string       `json:"source_path"`
	GeneratedAt time.Time    `json:"generated_at"`
	Quizzes     []QuizRecord `json:"quizzes"`
}

// BuildSet assembles a Set from the quizzes stored during a review.
// Entries keep their arrival order.
func BuildSet(sessionID string, sess *session.Session, entries []quizstore.Entry) Set {
	set := Set{
		SessionID:   sessionID,
		Tool:        string(sess.Tool),
		SourcePath:  sess.SourcePath,
		GeneratedAt: time.Now(),
		Quizzes:     make([]QuizRecord, 0, len(entries)),
	}

	for _, e := range entries {
		rec := QuizRecord{
			ConceptFingerprint: e.Quiz.ConceptFingerprint,
			Question:           e.Quiz.Question,
			Choices:            e.Quiz.Choices,
			CorrectIndex:       e.Quiz.CorrectIndex,
			Explanation:        e.Quiz.Explanation,
			Language:           e.Quiz.Language,
			Difficulty:         e.Quiz.Difficulty,
		}
		if e.Answer != nil {
			rec.Answered = true
			chosen := e.Answer.ChosenIndex
			correct := e.Answer.IsCorrect
			rec.ChosenIndex = &chosen
			rec.Correct = &correct
		}
		set.Quizzes = append(set.Quizzes, rec)
	}

	return set
}

// Write serializes the set as indented JSON under dir, creating the
// directory if needed. Returns the path of the written file.
func Write(dir string, set Set) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating artifact dir: %w", err)
	}

	name := fmt.Sprintf("quizzes-%s-%s.json",
		set.GeneratedAt.Format("20060102-150405"), shortID(set.SessionID))
	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding artifact: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing artifact: %w", err)
	}

	return path, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
