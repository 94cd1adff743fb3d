package session

import (
	"errors"
	"testing"
	"time"

	"github.com/dnorman/learnchain/internal/logsrc"
)

func ev(kind logsrc.Kind, payload string, at time.Time) logsrc.RawEvent {
	return logsrc.RawEvent{Tool: logsrc.ToolClaude, Kind: kind, Payload: payload, OccurredAt: at}
}

func TestNormalize_OrdersByTimestamp(t *testing.T) {
	base := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	events := []logsrc.RawEvent{
		ev(logsrc.KindResponse, "second", base.Add(2*time.Second)),
		ev(logsrc.KindPrompt, "first", base),
		ev(logsrc.KindFileEdit, "third", base.Add(5*time.Second)),
	}

	s, err := Normalize(logsrc.ToolClaude, "s.jsonl", events)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"first", "second", "third"}
	for i, w := range want {
		if s.Events[i].Payload != w {
			t.Fatalf("position %d: expected %q, got %q", i, w, s.Events[i].Payload)
		}
		if s.Events[i].Seq != i {
			t.Fatalf("position %d: expected seq %d, got %d", i, i, s.Events[i].Seq)
		}
	}
}

func TestNormalize_TiesKeepFileOrder(t *testing.T) {
	at := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	events := []logsrc.RawEvent{
		ev(logsrc.KindPrompt, "a", at),
		ev(logsrc.KindResponse, "b", at),
		ev(logsrc.KindResponse, "c", at),
	}

	s, err := Normalize(logsrc.ToolClaude, "s.jsonl", events)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, w := range []string{"a", "b", "c"} {
		if s.Events[i].Payload != w {
			t.Fatalf("tie order not preserved at %d: got %q", i, s.Events[i].Payload)
		}
	}
}

func TestNormalize_MissingTimestampsKeepFileOrder(t *testing.T) {
	events := []logsrc.RawEvent{
		ev(logsrc.KindPrompt, "a", time.Time{}),
		ev(logsrc.KindResponse, "b", time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)),
		ev(logsrc.KindResponse, "c", time.Time{}),
	}

	s, err := Normalize(logsrc.ToolCodex, "r.jsonl", events)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, w := range []string{"a", "b", "c"} {
		if s.Events[i].Payload != w {
			t.Fatalf("order changed at %d: got %q", i, s.Events[i].Payload)
		}
	}
}

func TestNormalize_UntimestampedBetweenOutOfOrderEvents(t *testing.T) {
	events := []logsrc.RawEvent{
		ev(logsrc.KindPrompt, "late", time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)),
		ev(logsrc.KindResponse, "follower", time.Time{}),
		ev(logsrc.KindResponse, "early", time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)),
	}

	s, err := Normalize(logsrc.ToolClaude, "s.jsonl", events)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The earlier timestamp moves first; the untimestamped event stays
	// behind the event it followed in the file.
	for i, w := range []string{"early", "late", "follower"} {
		if s.Events[i].Payload != w {
			t.Fatalf("position %d: expected %q, got %q", i, w, s.Events[i].Payload)
		}
	}
}

func TestNormalize_Empty(t *testing.T) {
	_, err := Normalize(logsrc.ToolClaude, "s.jsonl", nil)
	if !errors.Is(err, ErrEmptySession) {
		t.Fatalf("expected ErrEmptySession, got %v", err)
	}
}

func TestFirstPrompt(t *testing.T) {
	at := time.Now()
	s, err := Normalize(logsrc.ToolClaude, "s.jsonl", []logsrc.RawEvent{
		ev(logsrc.KindResponse, "resp", at),
		ev(logsrc.KindPrompt, "the prompt", at.Add(time.Second)),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.FirstPrompt() != "the prompt" {
		t.Fatalf("unexpected first prompt: %q", s.FirstPrompt())
	}
}
