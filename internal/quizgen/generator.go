package quizgen

import "context"

// Generator produces quizzes from concepts using an LLM provider.
type Generator interface {
	// Generate produces a single quiz for the given input context.
	// Returns a validated Quiz or an error.
	// All configured validators are run before returning.
	Generate(ctx context.Context, input GenerateInput) (*Quiz, error)
}
