package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64 = -1
	for range 10 {
		n, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if n <= prev {
			t.Fatalf("sequence went backwards: %d after %d", n, prev)
		}
		prev = n
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := range 3 {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "openai",
			Model:        "gpt-4o-mini",
			Purpose:      "quiz-gen",
			InputTokens:  100 + i,
			OutputTokens: 50,
			LatencyMs:    200,
			Success:      true,
			RequestBody:  "[user]\ngenerate",
			ResponseBody: `{"question_text":"q"}`,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	// Newest first.
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("expected descending sequence, got %d then %d", events[0].Sequence, events[1].Sequence)
	}
	if events[0].InputTokens != 102 {
		t.Errorf("expected newest event first, got input tokens %d", events[0].InputTokens)
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.RequestBody == "" {
		t.Fatalf("expected full event, got %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appendReq := func(purpose, model string, in, out int) {
		t.Helper()
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "openai",
			Model:        model,
			Purpose:      purpose,
			InputTokens:  in,
			OutputTokens: out,
			LatencyMs:    100,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	appendReq("quiz-gen", "gpt-4o-mini", 100, 50)
	appendReq("quiz-gen", "gpt-4o-mini", 200, 60)
	appendReq("probe", "gpt-4o", 10, 5)

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(byPurpose))
	}
	if byPurpose[0].Purpose != "quiz-gen" || byPurpose[0].Calls != 2 {
		t.Errorf("unexpected top purpose: %+v", byPurpose[0])
	}
	if byPurpose[0].InputTokens != 300 {
		t.Errorf("input tokens = %d, want 300", byPurpose[0].InputTokens)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("expected 2 models, got %d", len(byModel))
	}
	if byModel[0].Model != "gpt-4o-mini" || byModel[0].OutputTokens != 110 {
		t.Errorf("unexpected top model: %+v", byModel[0])
	}
}

func TestReviewEventsAndStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendReviewSession(ctx, ReviewSessionEventData{
		SessionID:    "sess-1",
		Action:       "start",
		Tool:         "claude-code",
		SourcePath:   "/tmp/x.jsonl",
		ConceptCount: 3,
	})
	if err != nil {
		t.Fatalf("append session start: %v", err)
	}

	answer := func(fp, lang string, correct, first bool) {
		t.Helper()
		err := repo.AppendQuizAnswer(ctx, QuizAnswerEventData{
			SessionID:          "sess-1",
			ConceptFingerprint: fp,
			QuestionText:       "q " + fp,
			Language:           lang,
			Difficulty:         2,
			ChosenIndex:        0,
			CorrectIndex:       0,
			Correct:            correct,
			FirstAttempt:       first,
			TimeMs:             1500,
		})
		if err != nil {
			t.Fatalf("append answer: %v", err)
		}
	}
	answer("fp1", "go", true, true)
	answer("fp2", "go", false, true)
	answer("fp2", "go", true, false) // re-answer
	answer("fp3", "rust", true, true)

	daily, err := repo.DailyReviewStats(ctx, 7)
	if err != nil {
		t.Fatalf("daily stats: %v", err)
	}
	if len(daily) != 1 {
		t.Fatalf("expected 1 day, got %d", len(daily))
	}
	if daily[0].Answered != 4 || daily[0].Correct != 3 {
		t.Errorf("daily = %+v, want 4 answered 3 correct", daily[0])
	}
	if want := time.Now().Local().Format("2006-01-02"); daily[0].Day != want {
		t.Errorf("day = %q, want %q", daily[0].Day, want)
	}

	langs, err := repo.LanguageStats(ctx)
	if err != nil {
		t.Fatalf("language stats: %v", err)
	}
	if len(langs) != 2 {
		t.Fatalf("expected 2 languages, got %d", len(langs))
	}
	if langs[0].Language != "go" {
		t.Fatalf("expected go first, got %q", langs[0].Language)
	}
	if langs[0].FirstAttempts != 2 || langs[0].FirstTryCorrect != 1 {
		t.Errorf("go first-attempt stats = %+v, want 2 attempts 1 correct", langs[0])
	}
}
