package quizgen

import "github.com/dnorman/learnchain/internal/llm"

// QuizSchema defines the JSON schema for LLM quiz generation responses.
var QuizSchema = &llm.Schema{
	Name:        "quiz-item",
	Description: "A single multiple-choice question about a coding concept",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_text": map[string]any{
				"type":        "string",
				"description": "The question shown to the learner, in plain ASCII text",
			},
			"choices": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"minItems":    4,
				"maxItems":    4,
				"description": "Exactly 4 answer options. Exactly one is correct.",
			},
			"correct_index": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     3,
				"description": "Zero-based position of the correct option within choices",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "A brief justification of the correct answer, referencing the session context",
			},
			"language": map[string]any{
				"type":        "string",
				"description": "The programming language this question concerns, lowercase, e.g. \"go\"",
			},
			"difficulty": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     5,
				"description": "Self-assessed difficulty from 1 (easy) to 5 (hard)",
			},
		},
		"required":             []any{"question_text", "choices", "correct_index", "explanation", "language", "difficulty"},
		"additionalProperties": false,
	},
}
