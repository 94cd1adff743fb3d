package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dnorman/learnchain/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// quizOutput is the raw LLM response before validation.
type quizOutput struct {
	QuestionText string   `json:"question_text"`
	Choices      []string `json:"choices"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
	Language     string   `json:"language"`
	Difficulty   int      `json:"difficulty"`
}

// Generate produces a single quiz for the given input context.
// A response that fails a retryable validator is re-asked once; a second
// failure is reported as an invalid-response error, which the pipeline
// treats as fatal.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Quiz, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	q, verr, err := g.generateOnce(ctx, input)
	if err != nil {
		return nil, err
	}
	if verr != nil && verr.Retryable {
		q, verr, err = g.generateOnce(ctx, input)
		if err != nil {
			return nil, err
		}
	}
	if verr != nil {
		return nil, &llm.ErrInvalidResponse{Err: verr}
	}
	return q, nil
}

func (g *LLMGenerator) generateOnce(ctx context.Context, input GenerateInput) (*Quiz, *ValidationError, error) {
	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw quizOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}

	q := &Quiz{
		ConceptFingerprint: input.Concept.Fingerprint,
		Question:           raw.QuestionText,
		Choices:            raw.Choices,
		CorrectIndex:       raw.CorrectIndex,
		Explanation:        raw.Explanation,
		Language:           raw.Language,
		Difficulty:         raw.Difficulty,
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(q, input); verr != nil {
			return nil, verr, nil
		}
	}

	return q, nil, nil
}
