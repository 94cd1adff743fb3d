package quizgen

import "github.com/dnorman/learnchain/internal/concept"

// Quiz represents a generated multiple-choice question tied to one concept.
type Quiz struct {
	// ConceptFingerprint identifies the concept this quiz was generated for.
	ConceptFingerprint string

	// Question is the prompt displayed to the learner. Plain ASCII text.
	Question string

	// Choices contains exactly 4 options, one of which is correct.
	Choices []string

	// CorrectIndex is the position of the correct option within Choices.
	CorrectIndex int

	// Explanation is a brief justification shown after the learner answers.
	// Always present.
	Explanation string

	// Language is the programming language the question concerns,
	// e.g. "go", "rust", "python". Used for analytics grouping.
	Language string

	// Difficulty is the LLM's self-assessed difficulty (1-5).
	// Used for analytics, not for gating.
	Difficulty int
}

// GenerateInput holds all context needed to generate a quiz.
type GenerateInput struct {
	// Concept is the teachable unit to build a question around.
	Concept concept.Concept

	// PriorQuestions contains the Question text of quizzes already
	// generated in this session. Used for deduplication in the prompt.
	PriorQuestions []string
}
