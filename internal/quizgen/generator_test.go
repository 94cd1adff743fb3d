package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/dnorman/learnchain/internal/concept"
	"github.com/dnorman/learnchain/internal/llm"
	"github.com/dnorman/learnchain/internal/logsrc"
	"github.com/dnorman/learnchain/internal/session"
)

func testConcept() concept.Concept {
	return concept.Concept{
		Fingerprint: "abc123",
		Title:       "Explain how defer works in Go",
		Events: []session.Event{
			{RawEvent: logsrc.RawEvent{Kind: logsrc.KindPrompt, Payload: "Explain how defer works in Go"}, Seq: 0},
			{RawEvent: logsrc.RawEvent{Kind: logsrc.KindResponse, Payload: "defer schedules a call to run when the surrounding function returns."}, Seq: 1},
		},
		DifficultyHint: concept.DifficultyMedium,
	}
}

func validQuizJSON() json.RawMessage {
	return json.RawMessage(`{
		"question_text": "When does a deferred call execute?",
		"choices": ["Immediately", "When the surrounding function returns", "At program exit", "Never"],
		"correct_index": 1,
		"explanation": "defer schedules the call to run when the surrounding function returns.",
		"language": "go",
		"difficulty": 2
	}`)
}

func TestGenerate_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validQuizJSON(),
	})
	gen := New(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), GenerateInput{Concept: testConcept()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.ConceptFingerprint != "abc123" {
		t.Errorf("expected fingerprint abc123, got %q", q.ConceptFingerprint)
	}
	if q.Question != "When does a deferred call execute?" {
		t.Errorf("unexpected question: %q", q.Question)
	}
	if len(q.Choices) != 4 {
		t.Fatalf("expected 4 choices, got %d", len(q.Choices))
	}
	if q.CorrectIndex != 1 {
		t.Errorf("expected correct index 1, got %d", q.CorrectIndex)
	}
	if q.Language != "go" {
		t.Errorf("expected language go, got %q", q.Language)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestGenerate_ReasksOnceOnInvalidStructure(t *testing.T) {
	bad := json.RawMessage(`{
		"question_text": "When does a deferred call execute?",
		"choices": ["Immediately", "When the surrounding function returns"],
		"correct_index": 1,
		"explanation": "Too few choices.",
		"language": "go",
		"difficulty": 2
	}`)

	mock := llm.NewMockProvider(
		llm.MockResponse{Content: bad},
		llm.MockResponse{Content: validQuizJSON()},
	)
	gen := New(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), GenerateInput{Concept: testConcept()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected re-ask, got %d calls", mock.CallCount())
	}
	if q.CorrectIndex != 1 {
		t.Errorf("expected correct index 1, got %d", q.CorrectIndex)
	}
}

func TestGenerate_SecondInvalidIsFatal(t *testing.T) {
	bad := json.RawMessage(`{
		"question_text": "",
		"choices": ["a", "b", "c", "d"],
		"correct_index": 0,
		"explanation": "x",
		"language": "go",
		"difficulty": 2
	}`)

	mock := llm.NewMockProvider(
		llm.MockResponse{Content: bad},
		llm.MockResponse{Content: bad},
	)
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Concept: testConcept()})
	if err == nil {
		t.Fatal("expected error")
	}
	var invErr *llm.ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
	}
	if llm.IsTransient(err) {
		t.Error("invalid response after re-ask should not be transient")
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected exactly 2 calls, got %d", mock.CallCount())
	}
}

func TestGenerate_ProviderErrorPassesThrough(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrRateLimit{},
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Concept: testConcept()})
	if err == nil {
		t.Fatal("expected error")
	}
	var rl *llm.ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
	if !llm.IsTransient(err) {
		t.Error("rate limit should be transient")
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider errors must not be re-asked, got %d calls", mock.CallCount())
	}
}

func TestGenerate_MalformedJSONIsInvalidResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{not json`),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Concept: testConcept()})
	if err == nil {
		t.Fatal("expected error")
	}
	var invErr *llm.ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}
