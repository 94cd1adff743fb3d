package quiz

import (
	"context"
	"math/rand/v2"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/dnorman/learnchain/internal/artifact"
	"github.com/dnorman/learnchain/internal/concept"
	"github.com/dnorman/learnchain/internal/config"
	"github.com/dnorman/learnchain/internal/pipeline"
	"github.com/dnorman/learnchain/internal/quizgen"
	"github.com/dnorman/learnchain/internal/quizstore"
	"github.com/dnorman/learnchain/internal/router"
	"github.com/dnorman/learnchain/internal/screen"
	"github.com/dnorman/learnchain/internal/screens/results"
	"github.com/dnorman/learnchain/internal/session"
	"github.com/dnorman/learnchain/internal/store"
	"github.com/dnorman/learnchain/internal/ui/components"
	"github.com/dnorman/learnchain/internal/ui/layout"

	"github.com/google/uuid"
)

// QuizScreen runs one review: it feeds extracted concepts through the
// generation pipeline and presents the resulting quizzes in extraction
// order, showing each as soon as it is ready.
type QuizScreen struct {
	eventRepo store.EventRepo
	cfg       *config.Config
	quizzes   *quizstore.Store
	resume    *pipeline.ResumeCache
	sess      *session.Session
	concepts  []concept.Concept
	pl        *pipeline.Pipeline
	rng       *rand.Rand

	sessionID string
	startedAt time.Time
	askedAt   time.Time

	order   []string
	current int
	failed  map[string]error

	mc           components.MultiChoice
	asking       bool
	feedback     bool
	confirmQuit  bool
	done         bool
	spinner      int
	errMsg       string
	artifactPath string
	artifactErr  string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a review screen over the given session and concepts.
// The shared quiz store is reset: one review's results at a time.
// Quizzes already generated for this transcript are replayed from the
// resume cache instead of being regenerated.
func New(gen quizgen.Generator, eventRepo store.EventRepo, cfg *config.Config, quizzes *quizstore.Store, resume *pipeline.ResumeCache, sess *session.Session, concepts []concept.Concept) *QuizScreen {
	s := &QuizScreen{
		eventRepo: eventRepo,
		cfg:       cfg,
		quizzes:   quizzes,
		resume:    resume,
		sess:      sess,
		concepts:  concepts,
		rng:       rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(len(concepts)))),
		sessionID: uuid.New().String(),
		startedAt: time.Now(),
		failed:    make(map[string]error),
	}

	for _, c := range concepts {
		s.order = append(s.order, c.Fingerprint)
	}

	pl, err := pipeline.New(gen, cfg.PipelineConfig())
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.pl = pl
	if resume != nil {
		pl.Seed(resume.Load(sess.SourcePath))
	}

	quizzes.Reset()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.pl == nil {
		return nil
	}
	return tea.Batch(
		s.recordStart(),
		s.submitConcepts(),
		spinnerTick(),
		s.waitEvent(),
	)
}

func (s *QuizScreen) Title() string {
	return "Review"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.confirmQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "End review"},
			{Key: "N", Description: "Keep going"},
		}
	case s.done:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Results"},
			{Key: "Esc", Description: "Back"},
		}
	case s.feedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case s.asking:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "End review"},
		}
	}
	return []layout.KeyHint{
		{Key: "Esc", Description: "End review"},
	}
}

// recordStart persists the review start event.
func (s *QuizScreen) recordStart() tea.Cmd {
	repo := s.eventRepo
	data := store.ReviewSessionEventData{
		SessionID:    s.sessionID,
		Action:       "start",
		Tool:         string(s.sess.Tool),
		SourcePath:   s.sess.SourcePath,
		ConceptCount: len(s.concepts),
	}
	return func() tea.Msg {
		_ = repo.AppendReviewSession(context.Background(), data)
		return nil
	}
}

// submitConcepts enqueues every concept for generation.
func (s *QuizScreen) submitConcepts() tea.Cmd {
	pl := s.pl
	concepts := s.concepts
	return func() tea.Msg {
		for _, c := range concepts {
			if _, err := pl.Submit(c); err != nil {
				return submitFailedMsg{Err: err}
			}
		}
		return nil
	}
}

// waitEvent blocks on the next pipeline notification.
func (s *QuizScreen) waitEvent() tea.Cmd {
	pl := s.pl
	return func() tea.Msg {
		select {
		case ev := <-pl.Events():
			return generationEventMsg(ev)
		case <-pl.Done():
			return generationStoppedMsg{}
		}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generationEventMsg:
		return s.handleGenerationEvent(pipeline.Event(msg))

	case generationStoppedMsg:
		return s, nil

	case submitFailedMsg:
		s.errMsg = msg.Err.Error()
		return s, nil

	case spinnerTickMsg:
		if s.done || s.errMsg != "" {
			return s, nil
		}
		s.spinner++
		return s, spinnerTick()

	case answerPersistedMsg:
		// Persistence failures do not interrupt the review.
		return s, nil

	case reviewEndedMsg:
		s.artifactPath = msg.ArtifactPath
		if msg.Err != nil {
			// Stay on the summary so the failed save is seen; results
			// remain one Enter away.
			s.artifactErr = msg.Err.Error()
			return s, nil
		}
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: results.New(s.quizzes)}
		}

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *QuizScreen) handleGenerationEvent(ev pipeline.Event) (screen.Screen, tea.Cmd) {
	switch ev.State {
	case pipeline.StateSucceeded:
		if ev.Quiz != nil {
			if _, ok := s.quizzes.Get(ev.Fingerprint); !ok {
				if !ev.Cached {
					ev.Quiz.Shuffle(s.rng)
				}
				s.quizzes.Put(ev.Quiz)
			}
		}
	case pipeline.StateFailed:
		s.failed[ev.Fingerprint] = ev.Err
	}

	cmds := []tea.Cmd{s.waitEvent()}
	if !s.asking && !s.feedback && !s.confirmQuit && !s.done {
		if cmd := s.advance(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return s, tea.Batch(cmds...)
}

// advance moves to the next presentable question, skipping failed
// concepts. Returns the end-of-review command once every concept is
// either answered or failed.
func (s *QuizScreen) advance() tea.Cmd {
	for s.current < len(s.order) {
		fp := s.order[s.current]
		if _, bad := s.failed[fp]; bad {
			s.current++
			continue
		}
		e, ok := s.quizzes.Get(fp)
		if !ok {
			// Still generating; the spinner view covers the wait.
			return nil
		}
		s.mc = components.NewMultiChoice(e.Quiz.Question, e.Quiz.Choices, e.Quiz.CorrectIndex)
		s.asking = true
		s.askedAt = time.Now()
		return nil
	}
	return s.endReview()
}

// endReview cancels outstanding generation, persists the end event, and
// writes artifacts when enabled. Idempotent.
func (s *QuizScreen) endReview() tea.Cmd {
	if s.done {
		return nil
	}
	s.done = true
	s.asking = false
	s.feedback = false
	s.confirmQuit = false
	s.pl.Cancel()

	correct, _ := s.quizzes.Score()
	data := store.ReviewSessionEventData{
		SessionID:        s.sessionID,
		Action:           "end",
		Tool:             string(s.sess.Tool),
		SourcePath:       s.sess.SourcePath,
		ConceptCount:     len(s.concepts),
		QuizzesGenerated: s.quizzes.Len(),
		CorrectAnswers:   correct,
		DurationSecs:     int(time.Since(s.startedAt).Seconds()),
	}

	pl := s.pl
	repo := s.eventRepo
	cfg := s.cfg
	quizzes := s.quizzes
	resume := s.resume
	sess := s.sess
	sessionID := s.sessionID

	return func() tea.Msg {
		pl.Close()
		if resume != nil {
			resume.Store(sess.SourcePath, pl.Snapshot())
		}
		_ = repo.AppendReviewSession(context.Background(), data)

		if !cfg.WriteArtifacts {
			return reviewEndedMsg{}
		}
		dir, err := cfg.ArtifactDir()
		if err != nil {
			return reviewEndedMsg{Err: err}
		}
		set := artifact.BuildSet(sessionID, sess, quizzes.List(quizstore.Filter{}))
		path, err := artifact.Write(dir, set)
		if err != nil {
			return reviewEndedMsg{Err: err}
		}
		return reviewEndedMsg{ArtifactPath: path}
	}
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			return s, s.endReview()
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if s.done {
		switch key {
		case "enter":
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: results.New(s.quizzes)}
			}
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	if s.feedback {
		s.feedback = false
		s.current++
		return s, s.advance()
	}

	if s.asking {
		if key == "esc" {
			s.confirmQuit = true
			return s, nil
		}
		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		if s.mc.Submitted {
			return s.recordAnswer()
		}
		return s, cmd
	}

	// Waiting on generation.
	if key == "esc" {
		s.confirmQuit = true
	}
	return s, nil
}

// recordAnswer stores the choice, flips to feedback, and persists the
// answer event in the background.
func (s *QuizScreen) recordAnswer() (screen.Screen, tea.Cmd) {
	fp := s.order[s.current]
	ans, err := s.quizzes.Answer(fp, s.mc.ChosenIndex, time.Now())
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.asking = false
	s.feedback = true

	e, _ := s.quizzes.Get(fp)
	repo := s.eventRepo
	data := store.QuizAnswerEventData{
		SessionID:          s.sessionID,
		ConceptFingerprint: fp,
		QuestionText:       e.Quiz.Question,
		Language:           e.Quiz.Language,
		Difficulty:         e.Quiz.Difficulty,
		ChosenIndex:        ans.ChosenIndex,
		CorrectIndex:       e.Quiz.CorrectIndex,
		Correct:            ans.IsCorrect,
		FirstAttempt:       true,
		TimeMs:             int(time.Since(s.askedAt).Milliseconds()),
	}
	return s, func() tea.Msg {
		return answerPersistedMsg{Err: repo.AppendQuizAnswer(context.Background(), data)}
	}
}
