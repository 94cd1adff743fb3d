package quiz

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/dnorman/learnchain/internal/concept"
	"github.com/dnorman/learnchain/internal/config"
	"github.com/dnorman/learnchain/internal/llm"
	"github.com/dnorman/learnchain/internal/logsrc"
	"github.com/dnorman/learnchain/internal/pipeline"
	"github.com/dnorman/learnchain/internal/quizgen"
	"github.com/dnorman/learnchain/internal/quizstore"
	"github.com/dnorman/learnchain/internal/router"
	"github.com/dnorman/learnchain/internal/screen"
	"github.com/dnorman/learnchain/internal/screens/results"
	"github.com/dnorman/learnchain/internal/session"
	"github.com/dnorman/learnchain/internal/store"
)

// mockGenerator implements quizgen.Generator for testing.
type mockGenerator struct {
	fn func(input quizgen.GenerateInput) (*quizgen.Quiz, error)
}

func (m *mockGenerator) Generate(_ context.Context, input quizgen.GenerateInput) (*quizgen.Quiz, error) {
	return m.fn(input)
}

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	reviewEvents []store.ReviewSessionEventData
	answerEvents []store.QuizAnswerEventData
}

func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) AppendReviewSession(_ context.Context, data store.ReviewSessionEventData) error {
	m.reviewEvents = append(m.reviewEvents, data)
	return nil
}
func (m *mockEventRepo) AppendQuizAnswer(_ context.Context, data store.QuizAnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]*store.LLMEvent, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMEvent, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMPurposeUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) DailyReviewStats(_ context.Context, _ int) ([]store.DailyReviewStat, error) {
	return nil, nil
}
func (m *mockEventRepo) LanguageStats(_ context.Context) ([]store.LanguageStat, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func quizFor(fp string) *quizgen.Quiz {
	return &quizgen.Quiz{
		ConceptFingerprint: fp,
		Question:           "What does defer do?",
		Choices: []string{
			"Runs a call when the function returns",
			"Starts a goroutine",
			"Panics immediately",
			"Skips the next statement",
		},
		CorrectIndex: 0,
		Explanation:  "Deferred calls run when the surrounding function returns.",
		Language:     "go",
		Difficulty:   2,
	}
}

func conceptFor(fp string) concept.Concept {
	return concept.Concept{Fingerprint: fp, Title: "defer usage"}
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Provider = "mock"
	return &cfg
}

func testSession() *session.Session {
	return &session.Session{
		ID:         "t1",
		Tool:       logsrc.ToolClaude,
		SourcePath: "/tmp/t.jsonl",
	}
}

// runCmd executes a command off the update loop with a timeout guard.
func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for command")
		return nil
	}
}

// pumpUntilAsking feeds pipeline events into the screen until a question
// is on display or every concept has resolved.
func pumpUntilAsking(t *testing.T, s *QuizScreen) *QuizScreen {
	t.Helper()
	runCmd(t, s.submitConcepts())
	for i := 0; i < 10; i++ {
		msg := runCmd(t, s.waitEvent())
		scr, _ := s.Update(msg)
		s = scr.(*QuizScreen)
		if s.asking || s.done {
			return s
		}
	}
	t.Fatal("no question became ready")
	return nil
}

func newTestScreen(t *testing.T, gen quizgen.Generator, concepts []concept.Concept) (*QuizScreen, *mockEventRepo) {
	t.Helper()
	repo := &mockEventRepo{}
	s := New(gen, repo, testConfig(), quizstore.New(), pipeline.NewResumeCache(), testSession(), concepts)
	if s.errMsg != "" {
		t.Fatalf("screen setup failed: %s", s.errMsg)
	}
	return s, repo
}

func TestQuizScreen_Title(t *testing.T) {
	gen := &mockGenerator{fn: func(input quizgen.GenerateInput) (*quizgen.Quiz, error) {
		return quizFor(input.Concept.Fingerprint), nil
	}}
	s, _ := newTestScreen(t, gen, []concept.Concept{conceptFor("fp1")})
	defer s.pl.Close()

	if s.Title() != "Review" {
		t.Errorf("Title = %q, want Review", s.Title())
	}
}

func TestQuizScreen_GeneratedQuestionIsAsked(t *testing.T) {
	gen := &mockGenerator{fn: func(input quizgen.GenerateInput) (*quizgen.Quiz, error) {
		return quizFor(input.Concept.Fingerprint), nil
	}}
	s, _ := newTestScreen(t, gen, []concept.Concept{conceptFor("fp1")})
	defer s.pl.Close()

	s = pumpUntilAsking(t, s)
	if !s.asking {
		t.Fatal("expected a question on display")
	}
	if s.mc.Question != "What does defer do?" {
		t.Errorf("question = %q", s.mc.Question)
	}
	if len(s.mc.Options) != 4 {
		t.Errorf("options = %d, want 4", len(s.mc.Options))
	}
}

// Covers the full review flow: one concept, answer the correct choice,
// and see the score from the results screen.
func TestQuizScreen_AnswerCorrectEndToEnd(t *testing.T) {
	gen := &mockGenerator{fn: func(input quizgen.GenerateInput) (*quizgen.Quiz, error) {
		return quizFor(input.Concept.Fingerprint), nil
	}}
	s, repo := newTestScreen(t, gen, []concept.Concept{conceptFor("fp1")})

	s = pumpUntilAsking(t, s)

	// Choices are shuffled on arrival; navigate to the correct one.
	var scr screen.Screen = s
	for i := 0; i < s.mc.CorrectIndex; i++ {
		scr, _ = scr.Update(specialKey(tea.KeyDown))
	}
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	s = scr.(*QuizScreen)

	if !s.feedback {
		t.Fatal("expected feedback after answering")
	}
	if !s.mc.IsCorrect() {
		t.Fatal("expected the chosen answer to be correct")
	}

	// Answer event persists in the background.
	runCmd(t, cmd)
	if len(repo.answerEvents) != 1 {
		t.Fatalf("answer events = %d, want 1", len(repo.answerEvents))
	}
	if !repo.answerEvents[0].Correct {
		t.Error("answer event should record a correct answer")
	}
	if repo.answerEvents[0].Language != "go" {
		t.Errorf("Language = %q, want go", repo.answerEvents[0].Language)
	}

	// Dismissing feedback after the last question ends the review.
	scr, cmd = s.Update(keyPress(' '))
	s = scr.(*QuizScreen)
	if !s.done {
		t.Fatal("expected review to finish after the last question")
	}

	msg := runCmd(t, cmd)
	scr, cmd = s.Update(msg)
	s = scr.(*QuizScreen)

	// The end command pushes the results screen.
	pushMsg := runCmd(t, cmd)
	if _, ok := pushMsg.(router.PushScreenMsg); !ok {
		t.Fatalf("expected a push to results, got %T", pushMsg)
	}

	res := results.New(s.quizzes)
	view := res.View(80, 24)
	if !strings.Contains(view, "1 / 1") {
		t.Errorf("results view should show the score, got:\n%s", view)
	}

	// End event recorded with the final tallies.
	var end *store.ReviewSessionEventData
	for i := range repo.reviewEvents {
		if repo.reviewEvents[i].Action == "end" {
			end = &repo.reviewEvents[i]
		}
	}
	if end == nil {
		t.Fatal("expected an end review event")
	}
	if end.CorrectAnswers != 1 || end.QuizzesGenerated != 1 {
		t.Errorf("end event = %+v", *end)
	}
}

func TestQuizScreen_FailedConceptIsSkipped(t *testing.T) {
	gen := &mockGenerator{fn: func(input quizgen.GenerateInput) (*quizgen.Quiz, error) {
		if input.Concept.Fingerprint == "bad" {
			return nil, &llm.ErrInvalidResponse{Err: errors.New("unusable output")}
		}
		return quizFor(input.Concept.Fingerprint), nil
	}}
	s, _ := newTestScreen(t, gen, []concept.Concept{conceptFor("bad"), conceptFor("good")})
	defer s.pl.Close()

	runCmd(t, s.submitConcepts())
	for i := 0; i < 10 && !s.asking; i++ {
		msg := runCmd(t, s.waitEvent())
		scr, _ := s.Update(msg)
		s = scr.(*QuizScreen)
	}

	if !s.asking {
		t.Fatal("expected the surviving concept's question")
	}
	if s.current != 1 {
		t.Errorf("current = %d, want 1 (failed concept skipped)", s.current)
	}
	if len(s.failed) != 1 {
		t.Errorf("failed = %d, want 1", len(s.failed))
	}
}

func TestQuizScreen_QuitConfirm(t *testing.T) {
	gen := &mockGenerator{fn: func(input quizgen.GenerateInput) (*quizgen.Quiz, error) {
		return quizFor(input.Concept.Fingerprint), nil
	}}
	s, _ := newTestScreen(t, gen, []concept.Concept{conceptFor("fp1")})

	s = pumpUntilAsking(t, s)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	s = scr.(*QuizScreen)
	if !s.confirmQuit {
		t.Fatal("expected quit confirmation")
	}

	scr, _ = s.Update(keyPress('n'))
	s = scr.(*QuizScreen)
	if s.confirmQuit {
		t.Fatal("expected confirmation dismissed")
	}

	scr, _ = s.Update(specialKey(tea.KeyEscape))
	s = scr.(*QuizScreen)
	scr, cmd := s.Update(keyPress('y'))
	s = scr.(*QuizScreen)
	if !s.done {
		t.Fatal("expected review ended after confirming quit")
	}
	runCmd(t, cmd)
}

func TestQuizScreen_ViewStates(t *testing.T) {
	gen := &mockGenerator{fn: func(input quizgen.GenerateInput) (*quizgen.Quiz, error) {
		return quizFor(input.Concept.Fingerprint), nil
	}}
	s, _ := newTestScreen(t, gen, []concept.Concept{conceptFor("fp1")})
	defer s.pl.Close()

	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty generating view")
	}

	s = pumpUntilAsking(t, s)
	if view := s.View(80, 24); !strings.Contains(view, "Question 1 of 1") {
		t.Errorf("question view missing progress line:\n%s", view)
	}
}

func TestQuizScreen_FailedSaveIsShown(t *testing.T) {
	gen := &mockGenerator{fn: func(input quizgen.GenerateInput) (*quizgen.Quiz, error) {
		return quizFor(input.Concept.Fingerprint), nil
	}}
	s, _ := newTestScreen(t, gen, []concept.Concept{conceptFor("fp1")})
	defer s.pl.Close()

	s.done = true
	scr, cmd := s.Update(reviewEndedMsg{Err: errors.New("disk full")})
	s = scr.(*QuizScreen)

	if cmd != nil {
		t.Fatal("a failed save should keep the summary on screen")
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "Could not save quiz file") || !strings.Contains(view, "disk full") {
		t.Errorf("view missing save failure notice:\n%s", view)
	}
}
