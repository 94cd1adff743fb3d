package quiz

import (
	"time"

	"github.com/dnorman/learnchain/internal/pipeline"
)

// generationEventMsg carries one pipeline completion notification.
type generationEventMsg pipeline.Event

// generationStoppedMsg is sent when the pipeline has been cancelled and
// no further notifications will arrive.
type generationStoppedMsg struct{}

// submitFailedMsg is sent when enqueueing concepts fails.
type submitFailedMsg struct {
	Err error
}

// spinnerTickMsg animates the generating indicator.
type spinnerTickMsg time.Time

// answerPersistedMsg confirms an answer event was recorded.
type answerPersistedMsg struct {
	Err error
}

// reviewEndedMsg is sent once the end-of-review bookkeeping is done.
type reviewEndedMsg struct {
	ArtifactPath string
	Err          error
}
