package session

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/dnorman/learnchain/internal/logsrc"
)

// ErrEmptySession indicates a transcript parsed cleanly but contained no
// usable events, so there is nothing to review.
var ErrEmptySession = errors.New("transcript contains no usable events")

// Event is a normalized transcript event with its stable position in the
// session timeline.
type Event struct {
	logsrc.RawEvent

	// Seq is the monotonic sequence index assigned by Normalize.
	// Stable across re-normalization of the same input.
	Seq int
}

// Session is one normalized, ordered transcript from a single tool.
type Session struct {
	ID         string
	Tool       logsrc.Tool
	SourcePath string
	Events     []Event
}

// Normalize orders adapter output into a Session. Ordering is by declared
// timestamp with the original file position as tiebreak, so events with
// colliding or missing timestamps stay deterministic. Pure: no I/O.
func Normalize(tool logsrc.Tool, sourcePath string, events []logsrc.RawEvent) (*Session, error) {
	if len(events) == 0 {
		return nil, ErrEmptySession
	}

	ordered := make([]Event, len(events))
	for i, e := range events {
		ordered[i] = Event{RawEvent: e, Seq: i}
	}

	// Events without a timestamp inherit the previous event's, giving the
	// sort a total key so they travel with their file-order predecessor.
	// Leading untimestamped events keep the zero time and sort first.
	keys := make([]time.Time, len(events))
	var last time.Time
	for i, e := range events {
		if !e.OccurredAt.IsZero() {
			last = e.OccurredAt
		}
		keys[i] = last
	}

	// Seq still holds the original file position here; equal keys keep
	// file order through the stable sort.
	sort.SliceStable(ordered, func(i, j int) bool {
		return keys[ordered[i].Seq].Before(keys[ordered[j].Seq])
	})

	for i := range ordered {
		ordered[i].Seq = i
	}

	return &Session{
		ID:         uuid.New().String(),
		Tool:       tool,
		SourcePath: sourcePath,
		Events:     ordered,
	}, nil
}

// Prompts returns the prompt events, in timeline order.
func (s *Session) Prompts() []Event {
	var out []Event
	for _, e := range s.Events {
		if e.Kind == logsrc.KindPrompt {
			out = append(out, e)
		}
	}
	return out
}

// FirstPrompt returns the first prompt's payload, or "".
func (s *Session) FirstPrompt() string {
	for _, e := range s.Events {
		if e.Kind == logsrc.KindPrompt {
			return e.Payload
		}
	}
	return ""
}
