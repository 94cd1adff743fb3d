package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is the read model for a recorded LLM request.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMPurposeUsage aggregates LLM usage for one purpose label.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// ReviewSessionEventData records a review session starting or ending.
type ReviewSessionEventData struct {
	SessionID        string
	Action           string // "start" or "end"
	Tool             string
	SourcePath       string
	ConceptCount     int
	QuizzesGenerated int
	CorrectAnswers   int
	DurationSecs     int
}

// QuizAnswerEventData records one answered quiz.
type QuizAnswerEventData struct {
	SessionID          string
	ConceptFingerprint string
	QuestionText       string
	Language           string
	Difficulty         int
	ChosenIndex        int
	CorrectIndex       int
	Correct            bool
	FirstAttempt       bool
	TimeMs             int
}

// DailyReviewStat aggregates answered quizzes for one calendar day.
type DailyReviewStat struct {
	Day      string // YYYY-MM-DD, local time
	Answered int
	Correct  int
}

// LanguageStat aggregates first-attempt accuracy per language.
type LanguageStat struct {
	Language        string
	Answered        int
	Correct         int
	FirstAttempts   int
	FirstTryCorrect int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendReviewSession records a review session start or end.
	AppendReviewSession(ctx context.Context, data ReviewSessionEventData) error

	// AppendQuizAnswer records one answered quiz.
	AppendQuizAnswer(ctx context.Context, data QuizAnswerEventData) error

	// QueryLLMEvents returns recorded LLM requests, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMEvent, error)

	// GetLLMEvent returns one LLM request by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// DailyReviewStats returns per-day answer counts for the last N days.
	DailyReviewStats(ctx context.Context, days int) ([]DailyReviewStat, error)

	// LanguageStats returns per-language accuracy, first attempts only
	// counted separately.
	LanguageStats(ctx context.Context) ([]LanguageStat, error)
}
