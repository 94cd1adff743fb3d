package pipeline

import "github.com/dnorman/learnchain/internal/quizgen"

// State is the lifecycle state of a quiz generation job.
type State string

const (
	StateQueued    State = "queued"
	StateInFlight  State = "in_flight"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
	StateCancelled State = "cancelled"
)

// Terminal reports whether the state is final.
func (s State) Terminal() bool {
	switch s {
	case StateSucceeded, StateFailed, StateCancelled:
		return true
	}
	return false
}

// Job tracks one concept's progress through quiz generation.
// Exactly one Job exists per fingerprint at any time.
type Job struct {
	Fingerprint string
	State       State

	// Attempts is the number of external generation calls made so far.
	Attempts int

	// Quiz is set when State is Succeeded.
	Quiz *quizgen.Quiz

	// Err is set when State is Failed.
	Err error
}

// Event is a completion notification delivered on the pipeline's event
// channel. Events arrive in completion order, not submission order.
type Event struct {
	Fingerprint string
	State       State
	Quiz        *quizgen.Quiz
	Err         error
	Attempts    int

	// Cached is true when the event replays an earlier success instead
	// of reporting a new generation call.
	Cached bool
}
