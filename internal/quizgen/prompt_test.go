package quizgen

import (
	"strings"
	"testing"
)

func TestBuildUserMessage_MinimalContext(t *testing.T) {
	input := GenerateInput{Concept: testConcept()}
	msg := buildUserMessage(input, DefaultConfig())

	if !strings.Contains(msg, "Concept: Explain how defer works in Go") {
		t.Error("missing concept title")
	}
	if !strings.Contains(msg, "Difficulty hint: medium") {
		t.Error("missing difficulty hint")
	}
	if !strings.Contains(msg, "defer schedules a call") {
		t.Error("missing session excerpt")
	}
	if !strings.Contains(msg, "Already asked in this session:\nNone") {
		t.Error("expected 'None' for prior questions")
	}
}

func TestBuildUserMessage_PriorQuestionsCapped(t *testing.T) {
	input := GenerateInput{
		Concept:        testConcept(),
		PriorQuestions: []string{"q1", "q2", "q3", "q4", "q5"},
	}
	cfg := DefaultConfig()
	cfg.MaxPriorQuestions = 3
	msg := buildUserMessage(input, cfg)

	if strings.Contains(msg, "q1") || strings.Contains(msg, "q2") {
		t.Error("oldest questions should be dropped")
	}
	for _, want := range []string{"q3", "q4", "q5"} {
		if !strings.Contains(msg, want) {
			t.Errorf("missing recent question %q", want)
		}
	}
}

func TestTruncateExcerpt(t *testing.T) {
	text := strings.Repeat("line of session text\n", 50)
	out := truncateExcerpt(text, 200)
	if len(out) > 240 {
		t.Errorf("excerpt not truncated, len=%d", len(out))
	}
	if !strings.HasSuffix(out, "[excerpt truncated]") {
		t.Error("missing truncation marker")
	}

	if got := truncateExcerpt("short", 200); got != "short" {
		t.Errorf("short text should pass through, got %q", got)
	}
	if got := truncateExcerpt("anything", 0); got != "anything" {
		t.Errorf("zero max should disable truncation, got %q", got)
	}
}
