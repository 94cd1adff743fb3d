package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/dnorman/learnchain/ent/quizanswerevent"
)

func (r *eventRepo) AppendReviewSession(ctx context.Context, data ReviewSessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ReviewSessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetTool(data.Tool).
		SetSourcePath(data.SourcePath).
		SetConceptCount(data.ConceptCount).
		SetQuizzesGenerated(data.QuizzesGenerated).
		SetCorrectAnswers(data.CorrectAnswers).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save review session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendQuizAnswer(ctx context.Context, data QuizAnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizAnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetConceptFingerprint(data.ConceptFingerprint).
		SetQuestionText(data.QuestionText).
		SetLanguage(data.Language).
		SetDifficulty(data.Difficulty).
		SetChosenIndex(data.ChosenIndex).
		SetCorrectIndex(data.CorrectIndex).
		SetCorrect(data.Correct).
		SetFirstAttempt(data.FirstAttempt).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz answer event: %w", err)
	}
	return nil
}

// DailyReviewStats groups answer events by local calendar day in Go;
// the timestamp column's storage form is ent's concern, not SQLite's
// date functions'.
func (r *eventRepo) DailyReviewStats(ctx context.Context, days int) ([]DailyReviewStat, error) {
	if days <= 0 {
		days = 30
	}
	cutoff := time.Now().AddDate(0, 0, -days)

	events, err := r.client.QuizAnswerEvent.Query().
		Where(quizanswerevent.TimestampGTE(cutoff)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query daily stats: %w", err)
	}

	byDay := make(map[string]*DailyReviewStat)
	for _, ev := range events {
		day := ev.Timestamp.Local().Format("2006-01-02")
		s, ok := byDay[day]
		if !ok {
			s = &DailyReviewStat{Day: day}
			byDay[day] = s
		}
		s.Answered++
		if ev.Correct {
			s.Correct++
		}
	}

	out := make([]DailyReviewStat, 0, len(byDay))
	for _, s := range byDay {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day > out[j].Day })
	return out, nil
}

func (r *eventRepo) LanguageStats(ctx context.Context) ([]LanguageStat, error) {
	events, err := r.client.QuizAnswerEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query language stats: %w", err)
	}

	byLang := make(map[string]*LanguageStat)
	for _, ev := range events {
		s, ok := byLang[ev.Language]
		if !ok {
			s = &LanguageStat{Language: ev.Language}
			byLang[ev.Language] = s
		}
		s.Answered++
		if ev.Correct {
			s.Correct++
		}
		if ev.FirstAttempt {
			s.FirstAttempts++
			if ev.Correct {
				s.FirstTryCorrect++
			}
		}
	}

	out := make([]LanguageStat, 0, len(byLang))
	for _, s := range byLang {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Answered != out[j].Answered {
			return out[i].Answered > out[j].Answered
		}
		return out[i].Language < out[j].Language
	})
	return out, nil
}
