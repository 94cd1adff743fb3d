package quizstore

import (
	"errors"
	"testing"
	"time"

	"github.com/dnorman/learnchain/internal/quizgen"
)

func quiz(fp string, correct int) *quizgen.Quiz {
	return &quizgen.Quiz{
		ConceptFingerprint: fp,
		Question:           "q " + fp,
		Choices:            []string{"a", "b", "c", "d"},
		CorrectIndex:       correct,
		Explanation:        "because",
	}
}

func TestPutAndGet(t *testing.T) {
	s := New()
	s.Put(quiz("fp1", 1))

	e, ok := s.Get("fp1")
	if !ok {
		t.Fatal("expected entry")
	}
	if e.Quiz.Question != "q fp1" {
		t.Errorf("wrong quiz: %+v", e.Quiz)
	}
	if e.Answer != nil {
		t.Error("fresh entry should be unanswered")
	}

	if _, ok := s.Get("missing"); ok {
		t.Error("expected miss for unknown fingerprint")
	}
}

func TestPut_ReplaceDropsAnswer(t *testing.T) {
	s := New()
	s.Put(quiz("fp1", 1))
	if _, err := s.Answer("fp1", 1, time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.Put(quiz("fp1", 2))
	e, _ := s.Get("fp1")
	if e.Answer != nil {
		t.Error("replacing a quiz must drop the stale answer")
	}
}

func TestAnswer(t *testing.T) {
	s := New()
	s.Put(quiz("fp1", 2))

	at := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	a, err := s.Answer("fp1", 2, at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.IsCorrect {
		t.Error("choosing the correct index must be correct")
	}
	if !a.AnsweredAt.Equal(at) {
		t.Errorf("wrong timestamp: %v", a.AnsweredAt)
	}

	// Re-answering overwrites.
	a, err = s.Answer("fp1", 0, at.Add(time.Minute))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.IsCorrect {
		t.Error("wrong choice recorded as correct")
	}
	e, _ := s.Get("fp1")
	if e.Answer.ChosenIndex != 0 {
		t.Errorf("answer not overwritten: %+v", e.Answer)
	}

	if _, err := s.Answer("missing", 0, at); !errors.Is(err, ErrUnknownQuiz) {
		t.Errorf("expected ErrUnknownQuiz, got %v", err)
	}
}

func TestList_FilterAndOrder(t *testing.T) {
	s := New()
	s.Put(quiz("fp1", 0))
	s.Put(quiz("fp2", 0))
	s.Put(quiz("fp3", 0))
	if _, err := s.Answer("fp2", 0, time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all := s.List(Filter{})
	if len(all) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(all))
	}
	for i, want := range []string{"fp1", "fp2", "fp3"} {
		if all[i].Quiz.ConceptFingerprint != want {
			t.Errorf("arrival order broken at %d: got %s", i, all[i].Quiz.ConceptFingerprint)
		}
	}

	answered := true
	got := s.List(Filter{Answered: &answered})
	if len(got) != 1 || got[0].Quiz.ConceptFingerprint != "fp2" {
		t.Errorf("answered filter wrong: %+v", got)
	}

	unanswered := false
	got = s.List(Filter{Answered: &unanswered})
	if len(got) != 2 {
		t.Errorf("expected 2 unanswered, got %d", len(got))
	}
}

func TestScoreAndReset(t *testing.T) {
	s := New()
	s.Put(quiz("fp1", 0))
	s.Put(quiz("fp2", 1))
	s.Put(quiz("fp3", 2))
	now := time.Now()
	s.Answer("fp1", 0, now) // correct
	s.Answer("fp2", 0, now) // wrong

	correct, answered := s.Score()
	if correct != 1 || answered != 2 {
		t.Errorf("score = %d/%d, want 1/2", correct, answered)
	}

	s.Reset()
	if s.Len() != 0 {
		t.Errorf("reset left %d entries", s.Len())
	}
	correct, answered = s.Score()
	if correct != 0 || answered != 0 {
		t.Error("score survived reset")
	}
}
