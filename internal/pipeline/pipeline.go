package pipeline

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/dnorman/learnchain/internal/concept"
	"github.com/dnorman/learnchain/internal/llm"
	"github.com/dnorman/learnchain/internal/quizgen"
)

// ErrNoCredential is returned by New when no generator is available,
// which happens when no API credential is configured. The pipeline
// refuses to exist rather than fail on the first network call.
var ErrNoCredential = errors.New("no API credential configured")

// ErrClosed is returned by Submit after the pipeline has been cancelled.
var ErrClosed = errors.New("pipeline closed")

// ErrQueueFull is returned by Submit when the waiting queue is at capacity.
var ErrQueueFull = errors.New("pipeline queue full")

const maxPriorQuestions = 32

// Pipeline turns concepts into quizzes through an external generator
// under a concurrency bound, with per-fingerprint dedup, a
// session-lifetime success cache, retry with backoff for transient
// errors, and cooperative cancellation.
type Pipeline struct {
	gen quizgen.Generator
	cfg Config

	ctx    context.Context
	cancel context.CancelFunc

	mu    sync.Mutex
	jobs  map[string]*Job
	prior []string // questions of succeeded quizzes, for prompt dedup

	queue  chan concept.Concept
	events chan Event

	dispatch sync.WaitGroup
	workers  *pool.Pool
}

// New creates a Pipeline running up to cfg.MaxInFlight generation calls
// at once. Returns ErrNoCredential if gen is nil.
func New(gen quizgen.Generator, cfg Config) (*Pipeline, error) {
	if gen == nil {
		return nil, ErrNoCredential
	}
	cfg = cfg.withDefaults()

	ctx, cancel := context.WithCancel(context.Background())
	p := &Pipeline{
		gen:     gen,
		cfg:     cfg,
		ctx:     ctx,
		cancel:  cancel,
		jobs:    make(map[string]*Job),
		queue:   make(chan concept.Concept, cfg.QueueSize),
		events:  make(chan Event, cfg.EventBuffer),
		workers: pool.New().WithMaxGoroutines(cfg.MaxInFlight),
	}

	p.dispatch.Add(1)
	go p.dispatchLoop()

	return p, nil
}

// Events returns the completion notification channel. Notifications
// arrive in completion order; consumers must not assume FIFO relative
// to submission.
func (p *Pipeline) Events() <-chan Event {
	return p.events
}

// Done returns a channel closed when the pipeline has been cancelled.
// Event consumers select on it to avoid blocking past shutdown.
func (p *Pipeline) Done() <-chan struct{} {
	return p.ctx.Done()
}

// Submit enqueues a concept for quiz generation and returns a snapshot
// of its job. Submitting a fingerprint that is already queued or in
// flight is a no-op returning the existing job. A succeeded fingerprint
// is served from cache: its success event is replayed and no external
// call is made. Failed and cancelled jobs are resubmitted fresh.
func (p *Pipeline) Submit(c concept.Concept) (Job, error) {
	p.mu.Lock()

	if p.ctx.Err() != nil {
		p.mu.Unlock()
		return Job{}, ErrClosed
	}

	if j, ok := p.jobs[c.Fingerprint]; ok {
		switch j.State {
		case StateQueued, StateInFlight:
			snap := *j
			p.mu.Unlock()
			return snap, nil
		case StateSucceeded:
			snap := *j
			ev := Event{
				Fingerprint: j.Fingerprint,
				State:       StateSucceeded,
				Quiz:        j.Quiz,
				Attempts:    j.Attempts,
				Cached:      true,
			}
			p.mu.Unlock()
			p.emit(ev)
			return snap, nil
		}
		// Failed or cancelled: fall through and start over.
	}

	j := &Job{Fingerprint: c.Fingerprint, State: StateQueued}
	p.jobs[c.Fingerprint] = j
	snap := *j
	p.mu.Unlock()

	select {
	case p.queue <- c:
		return snap, nil
	default:
		p.mu.Lock()
		delete(p.jobs, c.Fingerprint)
		p.mu.Unlock()
		return Job{}, ErrQueueFull
	}
}

// Job returns a snapshot of the job for a fingerprint.
func (p *Pipeline) Job(fingerprint string) (Job, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	j, ok := p.jobs[fingerprint]
	if !ok {
		return Job{}, false
	}
	return *j, true
}

// Jobs returns snapshots of all jobs, in no particular order.
func (p *Pipeline) Jobs() []Job {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Job, 0, len(p.jobs))
	for _, j := range p.jobs {
		out = append(out, *j)
	}
	return out
}

// Snapshot returns the succeeded quizzes keyed by fingerprint. Valid
// after Close; used to seed a later pipeline over the same session so
// completed work is not regenerated.
func (p *Pipeline) Snapshot() map[string]*quizgen.Quiz {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[string]*quizgen.Quiz, len(p.jobs))
	for fp, j := range p.jobs {
		if j.State == StateSucceeded && j.Quiz != nil {
			out[fp] = j.Quiz
		}
	}
	return out
}

// Seed preloads succeeded results, typically a Snapshot from an earlier
// pipeline over the same session. Submitting a seeded fingerprint
// replays its success as a cached event without an external call.
func (p *Pipeline) Seed(quizzes map[string]*quizgen.Quiz) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for fp, q := range quizzes {
		if q == nil {
			continue
		}
		if _, ok := p.jobs[fp]; ok {
			continue
		}
		p.jobs[fp] = &Job{Fingerprint: fp, State: StateSucceeded, Quiz: q}
		p.prior = append(p.prior, q.Question)
	}
	if len(p.prior) > maxPriorQuestions {
		p.prior = p.prior[len(p.prior)-maxPriorQuestions:]
	}
}

// Active reports whether any job is queued or in flight.
func (p *Pipeline) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, j := range p.jobs {
		if !j.State.Terminal() {
			return true
		}
	}
	return false
}

// Cancel transitions every queued and in-flight job to Cancelled and
// abandons their external calls. The state change is synchronous;
// underlying network calls may linger briefly and their results are
// discarded on arrival. The pipeline accepts no further submissions.
func (p *Pipeline) Cancel() {
	p.cancel()

	p.mu.Lock()
	for _, j := range p.jobs {
		if !j.State.Terminal() {
			j.State = StateCancelled
		}
	}
	p.mu.Unlock()
}

// Close cancels the pipeline and blocks until all worker goroutines
// have wound down. Call before discarding the pipeline.
func (p *Pipeline) Close() {
	p.Cancel()
	p.dispatch.Wait()
	p.workers.Wait()
}

// dispatchLoop feeds queued concepts to the bounded worker pool.
// pool.Go blocks while MaxInFlight workers are busy, so jobs sit in
// Queued until a worker frees up.
func (p *Pipeline) dispatchLoop() {
	defer p.dispatch.Done()
	for {
		select {
		case <-p.ctx.Done():
			return
		case c := <-p.queue:
			p.workers.Go(func() {
				p.run(c)
			})
		}
	}
}

// run executes one job: mark in flight, attempt generation with retry
// for transient errors, record the terminal state, emit an event.
func (p *Pipeline) run(c concept.Concept) {
	p.mu.Lock()
	j, ok := p.jobs[c.Fingerprint]
	if !ok || j.State != StateQueued {
		// Cancelled (or superseded) while waiting for a worker.
		p.mu.Unlock()
		return
	}
	j.State = StateInFlight
	prior := append([]string(nil), p.prior...)
	p.mu.Unlock()

	input := quizgen.GenerateInput{Concept: c, PriorQuestions: prior}

	var lastErr error
	for attempt := 0; attempt < p.cfg.MaxAttempts; attempt++ {
		if p.ctx.Err() != nil {
			p.finish(c.Fingerprint, StateCancelled, nil, nil)
			return
		}

		p.bumpAttempts(c.Fingerprint)
		quiz, err := p.gen.Generate(p.ctx, input)
		if err == nil {
			quiz.ConceptFingerprint = c.Fingerprint
			p.finish(c.Fingerprint, StateSucceeded, quiz, nil)
			return
		}
		lastErr = err

		if errors.Is(err, context.Canceled) || p.ctx.Err() != nil {
			p.finish(c.Fingerprint, StateCancelled, nil, nil)
			return
		}
		if !llm.IsTransient(err) {
			p.finish(c.Fingerprint, StateFailed, nil, err)
			return
		}
		if attempt == p.cfg.MaxAttempts-1 {
			break
		}

		select {
		case <-p.ctx.Done():
			p.finish(c.Fingerprint, StateCancelled, nil, nil)
			return
		case <-time.After(p.backoff(attempt, err)):
		}
	}

	p.finish(c.Fingerprint, StateFailed, nil, lastErr)
}

func (p *Pipeline) bumpAttempts(fingerprint string) {
	p.mu.Lock()
	if j, ok := p.jobs[fingerprint]; ok {
		j.Attempts++
	}
	p.mu.Unlock()
}

// finish records a terminal state and emits the completion event.
// A job already cancelled keeps its cancellation; a late result for it
// is discarded.
func (p *Pipeline) finish(fingerprint string, state State, quiz *quizgen.Quiz, err error) {
	p.mu.Lock()
	j, ok := p.jobs[fingerprint]
	if !ok || j.State.Terminal() {
		p.mu.Unlock()
		return
	}
	j.State = state
	j.Quiz = quiz
	j.Err = err
	if state == StateSucceeded && quiz != nil {
		p.prior = append(p.prior, quiz.Question)
		if len(p.prior) > maxPriorQuestions {
			p.prior = p.prior[len(p.prior)-maxPriorQuestions:]
		}
	}
	ev := Event{
		Fingerprint: fingerprint,
		State:       state,
		Quiz:        quiz,
		Err:         err,
		Attempts:    j.Attempts,
	}
	p.mu.Unlock()

	if state != StateCancelled {
		p.emit(ev)
	}
}

func (p *Pipeline) emit(ev Event) {
	select {
	case p.events <- ev:
	case <-p.ctx.Done():
	}
}

// backoff computes the wait before the next retry: exponential growth
// capped at MaxWait with ±20% jitter, overridden by the provider's
// retry-after hint when one was given.
func (p *Pipeline) backoff(attempt int, err error) time.Duration {
	if after := llm.RetryAfter(err); after > 0 {
		return after
	}

	wait := float64(p.cfg.InitialWait) * math.Pow(p.cfg.Multiplier, float64(attempt))
	if wait > float64(p.cfg.MaxWait) {
		wait = float64(p.cfg.MaxWait)
	}

	jitter := wait * 0.2 * (2*rand.Float64() - 1)
	wait += jitter

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
