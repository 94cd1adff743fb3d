package concept

import (
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/dnorman/learnchain/internal/logsrc"
	"github.com/dnorman/learnchain/internal/session"
)

func genEvents(t *rapid.T) []logsrc.RawEvent {
	kinds := []logsrc.Kind{logsrc.KindPrompt, logsrc.KindResponse, logsrc.KindFileEdit, logsrc.KindToolCall}
	words := []string{"recursion", "closure", "interface", "goroutine", "channel", "defer", "slice", "map", "pointer", "error"}

	n := rapid.IntRange(1, 40).Draw(t, "eventCount")
	base := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)

	events := make([]logsrc.RawEvent, n)
	for i := range events {
		wordCount := rapid.IntRange(1, 30).Draw(t, "wordCount")
		payload := ""
		for w := 0; w < wordCount; w++ {
			payload += words[rapid.IntRange(0, len(words)-1).Draw(t, "word")] + " "
		}
		events[i] = logsrc.RawEvent{
			Tool:       logsrc.ToolCodex,
			Kind:       kinds[rapid.IntRange(0, len(kinds)-1).Draw(t, "kind")],
			Payload:    payload,
			OccurredAt: base.Add(time.Duration(i) * time.Second),
		}
	}
	return events
}

func genConfig(t *rapid.T) Config {
	return Config{
		LookBack:       rapid.IntRange(1, 10).Draw(t, "lookBack"),
		MinContentSize: rapid.IntRange(0, 120).Draw(t, "minSize"),
	}
}

// Extraction is idempotent: the same session and config always produce
// the same concepts.
func TestExtract_PropertyIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s, err := session.Normalize(logsrc.ToolCodex, "r.jsonl", genEvents(t))
		if err != nil {
			t.Skip("empty session")
		}
		cfg := genConfig(t)

		first := Extract(s, cfg)
		second := Extract(s, cfg)

		if len(first) != len(second) {
			t.Fatalf("concept counts differ: %d vs %d", len(first), len(second))
		}
		for i := range first {
			if first[i].Fingerprint != second[i].Fingerprint {
				t.Fatalf("fingerprint drift at index %d", i)
			}
			if len(first[i].Events) != len(second[i].Events) {
				t.Fatalf("supporting events drift at index %d", i)
			}
		}
	})
}

// Fingerprints are unique within one extraction: duplicates must merge,
// never surface twice.
func TestExtract_PropertyNoDuplicateFingerprints(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s, err := session.Normalize(logsrc.ToolCodex, "r.jsonl", genEvents(t))
		if err != nil {
			t.Skip("empty session")
		}

		concepts := Extract(s, genConfig(t))
		seen := map[string]bool{}
		for _, c := range concepts {
			if seen[c.Fingerprint] {
				t.Fatalf("duplicate fingerprint %s", c.Fingerprint)
			}
			seen[c.Fingerprint] = true
		}
	})
}

// Every concept meets the size threshold and its events stay in timeline
// order.
func TestExtract_PropertyInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s, err := session.Normalize(logsrc.ToolCodex, "r.jsonl", genEvents(t))
		if err != nil {
			t.Skip("empty session")
		}
		cfg := genConfig(t)

		for _, c := range Extract(s, cfg) {
			if len(normalize(c.Text())) < cfg.MinContentSize {
				t.Fatalf("concept %q below size threshold", c.Title)
			}
			if len(c.Events) == 0 {
				t.Fatal("concept with no supporting events")
			}
			for i := 1; i < len(c.Events); i++ {
				if c.Events[i].Seq <= c.Events[i-1].Seq {
					t.Fatal("supporting events out of order")
				}
			}
		}
	})
}
