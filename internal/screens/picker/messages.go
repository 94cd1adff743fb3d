package picker

import (
	"github.com/dnorman/learnchain/internal/concept"
	"github.com/dnorman/learnchain/internal/logsrc"
	"github.com/dnorman/learnchain/internal/quizgen"
	"github.com/dnorman/learnchain/internal/session"
)

// scanDoneMsg is sent when the transcript scan completes.
type scanDoneMsg struct {
	Candidates []logsrc.Candidate
}

// sessionLoadedMsg is sent when a transcript has been parsed, normalized,
// and mined for concepts.
type sessionLoadedMsg struct {
	Gen      quizgen.Generator
	Session  *session.Session
	Concepts []concept.Concept
}

// timelineLoadedMsg is sent when a transcript has been parsed and
// normalized for the events view.
type timelineLoadedMsg struct {
	Session *session.Session
}

// loadFailedMsg is sent when loading a transcript fails.
type loadFailedMsg struct {
	Err error
}
