package quizgen

import "fmt"

// StructuralValidator checks that required fields are present, within
// length limits, and internally consistent.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Quiz, _ GenerateInput) *ValidationError {
	if q.Question == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text is empty",
			Retryable: true,
		}
	}
	if len(q.Question) > 600 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text exceeds 600 characters",
			Retryable: true,
		}
	}
	if len(q.Choices) != 4 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected 4 choices, got %d", len(q.Choices)),
			Retryable: true,
		}
	}
	seen := make(map[string]bool, len(q.Choices))
	for i, c := range q.Choices {
		if c == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("choice %d is empty", i),
				Retryable: true,
			}
		}
		if seen[c] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("duplicate choice %q", c),
				Retryable: true,
			}
		}
		seen[c] = true
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Choices) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("correct_index %d out of range", q.CorrectIndex),
			Retryable: true,
		}
	}
	if q.Explanation == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation is empty",
			Retryable: true,
		}
	}
	if len(q.Explanation) > 1000 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation exceeds 1000 characters",
			Retryable: true,
		}
	}
	if q.Difficulty < 1 || q.Difficulty > 5 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "difficulty must be between 1 and 5",
			Retryable: true,
		}
	}
	return nil
}
