package pipeline

import (
	"sync"

	"github.com/dnorman/learnchain/internal/quizgen"
)

// ResumeCache holds the succeeded quizzes of the most recent review so
// re-reviewing the same transcript does not regenerate them. Switching
// to a different transcript discards the cache wholesale.
type ResumeCache struct {
	mu      sync.Mutex
	source  string
	quizzes map[string]*quizgen.Quiz
}

// NewResumeCache creates an empty cache.
func NewResumeCache() *ResumeCache {
	return &ResumeCache{}
}

// Load returns the cached quizzes for source, or nil when the cache
// belongs to a different transcript.
func (c *ResumeCache) Load(source string) map[string]*quizgen.Quiz {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.source != source {
		return nil
	}
	return c.quizzes
}

// Store replaces the cache with the given transcript's quizzes.
func (c *ResumeCache) Store(source string, quizzes map[string]*quizgen.Quiz) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.source = source
	c.quizzes = quizzes
}
