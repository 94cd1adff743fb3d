package quizstore

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/dnorman/learnchain/internal/quizgen"
)

// ErrUnknownQuiz is returned when answering a fingerprint the store
// does not hold.
var ErrUnknownQuiz = errors.New("unknown quiz fingerprint")

// Answer records the learner's response to one quiz. Re-answering the
// same quiz overwrites the previous answer.
type Answer struct {
	ConceptFingerprint string
	ChosenIndex        int
	IsCorrect          bool
	AnsweredAt         time.Time
}

// Entry pairs a quiz with its answer, if any.
type Entry struct {
	Quiz   *quizgen.Quiz
	Answer *Answer
	seq    int
}

// Store is the session-scoped collection of quizzes and answers.
// Quizzes arrive from the pipeline's completion handler; the render
// path only reads. Discarded wholesale on session switch.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*Entry
	nextSeq int
}

// New creates an empty Store.
func New() *Store {
	return &Store{entries: make(map[string]*Entry)}
}

// Put inserts a completed quiz, replacing any previous quiz for the
// same fingerprint. A replaced quiz loses its answer.
func (s *Store) Put(q *quizgen.Quiz) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[q.ConceptFingerprint] = &Entry{Quiz: q, seq: s.nextSeq}
	s.nextSeq++
}

// Get returns the entry for a fingerprint.
func (s *Store) Get(fingerprint string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[fingerprint]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Answer records the learner's choice for a quiz and returns the
// resulting Answer. Returns ErrUnknownQuiz for an unknown fingerprint.
func (s *Store) Answer(fingerprint string, chosenIndex int, at time.Time) (Answer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[fingerprint]
	if !ok {
		return Answer{}, ErrUnknownQuiz
	}
	a := &Answer{
		ConceptFingerprint: fingerprint,
		ChosenIndex:        chosenIndex,
		IsCorrect:          chosenIndex == e.Quiz.CorrectIndex,
		AnsweredAt:         at,
	}
	e.Answer = a
	return *a, nil
}

// Filter selects entries for enumeration. Zero value matches all.
type Filter struct {
	// Answered, when set, keeps only answered (true) or unanswered
	// (false) entries.
	Answered *bool
}

// List returns entries matching the filter in arrival order.
func (s *Store) List(f Filter) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if f.Answered != nil && (e.Answer != nil) != *f.Answered {
			continue
		}
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

// Len returns the number of stored quizzes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Score returns the number of correct answers and the number answered.
func (s *Store) Score() (correct, answered int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.Answer == nil {
			continue
		}
		answered++
		if e.Answer.IsCorrect {
			correct++
		}
	}
	return correct, answered
}

// Reset discards all quizzes and answers. Called on session switch so
// no cached result leaks across sessions.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*Entry)
	s.nextSeq = 0
}
