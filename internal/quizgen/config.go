package quizgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated quiz. They execute in order; the first failure
	// stops the chain.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxPriorQuestions is the maximum number of prior questions
	// to include in the prompt for deduplication.
	MaxPriorQuestions int

	// MaxExcerptSize is the maximum number of bytes of concept text
	// included in the prompt. Longer excerpts are cut on a line boundary.
	MaxExcerptSize int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
		},
		MaxTokens:         512,
		Temperature:       0.7,
		MaxPriorQuestions: 8,
		MaxExcerptSize:    6000,
	}
}
