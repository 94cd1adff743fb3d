package quizgen

import (
	"strings"
	"testing"
)

func validQuiz() *Quiz {
	return &Quiz{
		ConceptFingerprint: "abc123",
		Question:           "When does a deferred call execute?",
		Choices:            []string{"Immediately", "On return", "At exit", "Never"},
		CorrectIndex:       1,
		Explanation:        "defer runs when the surrounding function returns.",
		Language:           "go",
		Difficulty:         2,
	}
}

func TestStructuralValidator(t *testing.T) {
	v := &StructuralValidator{}

	tests := []struct {
		name   string
		mutate func(*Quiz)
		wantOK bool
	}{
		{"valid", func(q *Quiz) {}, true},
		{"empty question", func(q *Quiz) { q.Question = "" }, false},
		{"question too long", func(q *Quiz) { q.Question = strings.Repeat("x", 601) }, false},
		{"three choices", func(q *Quiz) { q.Choices = q.Choices[:3] }, false},
		{"five choices", func(q *Quiz) { q.Choices = append(q.Choices, "extra") }, false},
		{"empty choice", func(q *Quiz) { q.Choices[0] = "" }, false},
		{"duplicate choice", func(q *Quiz) { q.Choices[3] = q.Choices[0] }, false},
		{"negative index", func(q *Quiz) { q.CorrectIndex = -1 }, false},
		{"index out of range", func(q *Quiz) { q.CorrectIndex = 4 }, false},
		{"empty explanation", func(q *Quiz) { q.Explanation = "" }, false},
		{"difficulty too low", func(q *Quiz) { q.Difficulty = 0 }, false},
		{"difficulty too high", func(q *Quiz) { q.Difficulty = 6 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuiz()
			tt.mutate(q)
			verr := v.Validate(q, GenerateInput{})
			if (verr == nil) != tt.wantOK {
				t.Fatalf("Validate() = %v, wantOK %v", verr, tt.wantOK)
			}
		})
	}
}
