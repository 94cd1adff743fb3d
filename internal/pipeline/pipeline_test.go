package pipeline

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dnorman/learnchain/internal/concept"
	"github.com/dnorman/learnchain/internal/llm"
	"github.com/dnorman/learnchain/internal/quizgen"
)

// fakeGen is a controllable Generator for pipeline tests.
type fakeGen struct {
	mu    sync.Mutex
	calls int
	fn    func(ctx context.Context, input quizgen.GenerateInput) (*quizgen.Quiz, error)
}

func (g *fakeGen) Generate(ctx context.Context, input quizgen.GenerateInput) (*quizgen.Quiz, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
	return g.fn(ctx, input)
}

func (g *fakeGen) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

func quizFor(fingerprint string) *quizgen.Quiz {
	return &quizgen.Quiz{
		ConceptFingerprint: fingerprint,
		Question:           "q for " + fingerprint,
		Choices:            []string{"a", "b", "c", "d"},
		CorrectIndex:       0,
		Explanation:        "because",
		Language:           "go",
		Difficulty:         2,
	}
}

func conceptFor(fingerprint string) concept.Concept {
	return concept.Concept{Fingerprint: fingerprint, Title: "t " + fingerprint}
}

// fastConfig keeps retry waits negligible so tests run quickly.
func fastConfig() Config {
	cfg := DefaultConfig()
	cfg.InitialWait = time.Millisecond
	cfg.MaxWait = 2 * time.Millisecond
	return cfg
}

func waitEvent(t *testing.T, p *Pipeline) Event {
	t.Helper()
	select {
	case ev := <-p.Events():
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for pipeline event")
		return Event{}
	}
}

func TestNew_NilGenerator(t *testing.T) {
	_, err := New(nil, DefaultConfig())
	if !errors.Is(err, ErrNoCredential) {
		t.Fatalf("expected ErrNoCredential, got %v", err)
	}
}

func TestSubmit_GeneratesQuiz(t *testing.T) {
	gen := &fakeGen{fn: func(_ context.Context, input quizgen.GenerateInput) (*quizgen.Quiz, error) {
		return quizFor(input.Concept.Fingerprint), nil
	}}
	p, err := New(gen, fastConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer p.Close()

	j, err := p.Submit(conceptFor("fp1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if j.State != StateQueued {
		t.Errorf("expected queued snapshot, got %s", j.State)
	}

	ev := waitEvent(t, p)
	if ev.State != StateSucceeded {
		t.Fatalf("expected succeeded, got %s (%v)", ev.State, ev.Err)
	}
	if ev.Quiz == nil || ev.Quiz.ConceptFingerprint != "fp1" {
		t.Fatalf("event carries wrong quiz: %+v", ev.Quiz)
	}
	if ev.Attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", ev.Attempts)
	}

	got, ok := p.Job("fp1")
	if !ok || got.State != StateSucceeded {
		t.Fatalf("job table not updated: %+v", got)
	}
}

func TestSubmit_DuplicateInFlightIsNoOp(t *testing.T) {
	release := make(chan struct{})
	gen := &fakeGen{fn: func(ctx context.Context, input quizgen.GenerateInput) (*quizgen.Quiz, error) {
		select {
		case <-release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		return quizFor(input.Concept.Fingerprint), nil
	}}
	p, err := New(gen, fastConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer p.Close()

	if _, err := p.Submit(conceptFor("fp1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Wait for the worker to pick the job up.
	deadline := time.Now().Add(2 * time.Second)
	for {
		if j, ok := p.Job("fp1"); ok && j.State == StateInFlight {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("job never went in flight")
		}
		time.Sleep(time.Millisecond)
	}

	// Concurrent duplicate submissions while in flight.
	var wg sync.WaitGroup
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			j, err := p.Submit(conceptFor("fp1"))
			if err != nil {
				t.Errorf("duplicate submit failed: %v", err)
			}
			if j.Fingerprint != "fp1" {
				t.Errorf("wrong job handle: %+v", j)
			}
		}()
	}
	wg.Wait()

	close(release)
	ev := waitEvent(t, p)
	if ev.State != StateSucceeded {
		t.Fatalf("expected succeeded, got %s", ev.State)
	}
	if gen.callCount() != 1 {
		t.Fatalf("expected exactly 1 external call, got %d", gen.callCount())
	}
}

func TestSubmit_SucceededServedFromCache(t *testing.T) {
	gen := &fakeGen{fn: func(_ context.Context, input quizgen.GenerateInput) (*quizgen.Quiz, error) {
		return quizFor(input.Concept.Fingerprint), nil
	}}
	p, err := New(gen, fastConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer p.Close()

	if _, err := p.Submit(conceptFor("fp1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := waitEvent(t, p)
	if first.State != StateSucceeded {
		t.Fatalf("expected succeeded, got %s", first.State)
	}

	j, err := p.Submit(conceptFor("fp1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if j.State != StateSucceeded {
		t.Fatalf("expected cached job snapshot, got %s", j.State)
	}

	replay := waitEvent(t, p)
	if !replay.Cached {
		t.Error("expected cached replay event")
	}
	if replay.Quiz == nil || replay.Quiz.Question != first.Quiz.Question {
		t.Error("cached event carries a different quiz")
	}
	if gen.callCount() != 1 {
		t.Fatalf("cache hit must not call the generator, got %d calls", gen.callCount())
	}
}

func TestRetry_TransientExhaustsCeiling(t *testing.T) {
	gen := &fakeGen{fn: func(context.Context, quizgen.GenerateInput) (*quizgen.Quiz, error) {
		return nil, &llm.ErrRateLimit{}
	}}
	cfg := fastConfig()
	cfg.MaxAttempts = 3
	p, err := New(gen, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer p.Close()

	if _, err := p.Submit(conceptFor("fp1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ev := waitEvent(t, p)
	if ev.State != StateFailed {
		t.Fatalf("expected failed, got %s", ev.State)
	}
	if ev.Attempts != 3 {
		t.Errorf("expected exactly 3 attempts, got %d", ev.Attempts)
	}
	if gen.callCount() != 3 {
		t.Errorf("expected exactly 3 external calls, got %d", gen.callCount())
	}
	var rl *llm.ErrRateLimit
	if !errors.As(ev.Err, &rl) {
		t.Errorf("expected rate limit error, got %v", ev.Err)
	}
}

func TestRetry_FatalFailsImmediately(t *testing.T) {
	gen := &fakeGen{fn: func(context.Context, quizgen.GenerateInput) (*quizgen.Quiz, error) {
		return nil, &llm.ErrInvalidCredential{Err: errors.New("401")}
	}}
	p, err := New(gen, fastConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer p.Close()

	if _, err := p.Submit(conceptFor("fp1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ev := waitEvent(t, p)
	if ev.State != StateFailed {
		t.Fatalf("expected failed, got %s", ev.State)
	}
	if gen.callCount() != 1 {
		t.Errorf("fatal errors must not retry, got %d calls", gen.callCount())
	}
}

func TestFailure_IsolatedPerJob(t *testing.T) {
	gen := &fakeGen{fn: func(_ context.Context, input quizgen.GenerateInput) (*quizgen.Quiz, error) {
		if input.Concept.Fingerprint == "bad" {
			return nil, &llm.ErrContentRejected{Err: errors.New("filtered")}
		}
		return quizFor(input.Concept.Fingerprint), nil
	}}
	p, err := New(gen, fastConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer p.Close()

	for _, fp := range []string{"bad", "good1", "good2"} {
		if _, err := p.Submit(conceptFor(fp)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	states := map[string]State{}
	for range 3 {
		ev := waitEvent(t, p)
		states[ev.Fingerprint] = ev.State
	}
	if states["bad"] != StateFailed {
		t.Errorf("expected bad to fail, got %s", states["bad"])
	}
	if states["good1"] != StateSucceeded || states["good2"] != StateSucceeded {
		t.Errorf("sibling jobs affected by failure: %v", states)
	}
}

func TestConcurrencyBound(t *testing.T) {
	var inFlight, peak atomic.Int32
	gen := &fakeGen{fn: func(ctx context.Context, input quizgen.GenerateInput) (*quizgen.Quiz, error) {
		n := inFlight.Add(1)
		for {
			old := peak.Load()
			if n <= old || peak.CompareAndSwap(old, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		inFlight.Add(-1)
		return quizFor(input.Concept.Fingerprint), nil
	}}
	cfg := fastConfig()
	cfg.MaxInFlight = 2
	p, err := New(gen, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer p.Close()

	fps := []string{"a", "b", "c", "d", "e", "f"}
	for _, fp := range fps {
		if _, err := p.Submit(conceptFor(fp)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	for range fps {
		waitEvent(t, p)
	}

	if got := peak.Load(); got > 2 {
		t.Fatalf("concurrency bound violated: %d in flight", got)
	}
}

func TestCancel_LeavesNoActiveJobs(t *testing.T) {
	gen := &fakeGen{fn: func(ctx context.Context, input quizgen.GenerateInput) (*quizgen.Quiz, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}}
	cfg := fastConfig()
	cfg.MaxInFlight = 2
	p, err := New(gen, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// More jobs than workers so some stay queued.
	for _, fp := range []string{"a", "b", "c", "d", "e"} {
		if _, err := p.Submit(conceptFor(fp)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	p.Cancel()

	for _, j := range p.Jobs() {
		if j.State != StateCancelled {
			t.Errorf("job %s left in state %s after cancel", j.Fingerprint, j.State)
		}
	}
	if p.Active() {
		t.Error("pipeline still active after cancel")
	}

	if _, err := p.Submit(conceptFor("late")); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed after cancel, got %v", err)
	}

	p.Close()
}

func TestCompletionOrder_NotSubmissionOrder(t *testing.T) {
	release := make(chan struct{})
	gen := &fakeGen{fn: func(ctx context.Context, input quizgen.GenerateInput) (*quizgen.Quiz, error) {
		if input.Concept.Fingerprint == "slow" {
			select {
			case <-release:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		return quizFor(input.Concept.Fingerprint), nil
	}}
	p, err := New(gen, fastConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer p.Close()

	if _, err := p.Submit(conceptFor("slow")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.Submit(conceptFor("fast")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := waitEvent(t, p)
	if first.Fingerprint != "fast" {
		t.Fatalf("expected fast job to complete first, got %s", first.Fingerprint)
	}

	close(release)
	second := waitEvent(t, p)
	if second.Fingerprint != "slow" {
		t.Fatalf("expected slow job second, got %s", second.Fingerprint)
	}
}

func TestSeed_ReplaysWithoutExternalCall(t *testing.T) {
	gen := &fakeGen{fn: func(_ context.Context, input quizgen.GenerateInput) (*quizgen.Quiz, error) {
		return quizFor(input.Concept.Fingerprint), nil
	}}
	p, err := New(gen, fastConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer p.Close()

	p.Seed(map[string]*quizgen.Quiz{"fp1": quizFor("fp1")})

	if _, err := p.Submit(conceptFor("fp1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ev := waitEvent(t, p)
	if ev.State != StateSucceeded || !ev.Cached {
		t.Fatalf("expected cached success, got %+v", ev)
	}
	if gen.callCount() != 0 {
		t.Errorf("seeded fingerprint should not reach the generator, got %d calls", gen.callCount())
	}
}

func TestSnapshot_SurvivesCloseAndSeedsNextPipeline(t *testing.T) {
	gen := &fakeGen{fn: func(_ context.Context, input quizgen.GenerateInput) (*quizgen.Quiz, error) {
		return quizFor(input.Concept.Fingerprint), nil
	}}
	p, err := New(gen, fastConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := p.Submit(conceptFor("fp1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev := waitEvent(t, p); ev.State != StateSucceeded {
		t.Fatalf("expected success, got %+v", ev)
	}
	p.Close()

	snap := p.Snapshot()
	if len(snap) != 1 || snap["fp1"] == nil {
		t.Fatalf("snapshot = %v, want fp1", snap)
	}

	p2, err := New(gen, fastConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer p2.Close()
	p2.Seed(snap)

	before := gen.callCount()
	if _, err := p2.Submit(conceptFor("fp1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ev := waitEvent(t, p2)
	if !ev.Cached {
		t.Fatalf("expected cached replay, got %+v", ev)
	}
	if gen.callCount() != before {
		t.Errorf("seeded resubmission made %d extra calls", gen.callCount()-before)
	}
}

func TestResumeCache_DiscardedOnSessionSwitch(t *testing.T) {
	c := NewResumeCache()
	c.Store("/logs/a.jsonl", map[string]*quizgen.Quiz{"fp1": quizFor("fp1")})

	if got := c.Load("/logs/a.jsonl"); len(got) != 1 {
		t.Fatalf("Load same source = %v, want fp1", got)
	}
	if got := c.Load("/logs/b.jsonl"); got != nil {
		t.Fatalf("Load other source = %v, want nil", got)
	}

	c.Store("/logs/b.jsonl", map[string]*quizgen.Quiz{"fp2": quizFor("fp2")})
	if got := c.Load("/logs/a.jsonl"); got != nil {
		t.Fatalf("old source should be discarded, got %v", got)
	}
}
