package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a precise curriculum planner that helps a developer learn from their own AI-assisted coding sessions.

Rules:
- Generate a single multiple-choice question that tests understanding of the concept shown in the session excerpt.
- Base the question on the actual code and discussion in the excerpt, not on generic trivia. Test the language feature, library, or technique the excerpt demonstrates.
- Excerpts may contain patch blocks ("*** Begin Patch" .. "*** End Patch" or unified diffs). The contents of the patch are what the developer wrote and are the primary material for the question.
- Use plain ASCII text. Keep code snippets inside the question short.
- Provide exactly 4 options where exactly one is correct. Distractors should be plausible misunderstandings, not random values.
- The explanation should state why the correct option is right in one or two sentences.
- Set "language" to the programming language the excerpt is written in, lowercase.
- Do not repeat any question from the "already asked" list.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Concept: %s\n", input.Concept.Title)
	fmt.Fprintf(&b, "Difficulty hint: %s\n", input.Concept.DifficultyHint)

	b.WriteString("\nSession excerpt:\n```\n")
	b.WriteString(truncateExcerpt(input.Concept.Text(), cfg.MaxExcerptSize))
	b.WriteString("\n```\n")

	b.WriteString("\nAlready asked in this session:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))

	return b.String()
}

// buildDedup formats prior questions for the prompt, respecting the max limit.
// Returns "None" if there are no prior questions.
func buildDedup(priorQuestions []string, max int) string {
	if len(priorQuestions) == 0 {
		return "None"
	}

	// Keep only the most recent N questions.
	if max > 0 && len(priorQuestions) > max {
		priorQuestions = priorQuestions[len(priorQuestions)-max:]
	}

	var b strings.Builder
	for i, q := range priorQuestions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}

// truncateExcerpt caps the excerpt at max bytes on a line boundary so a
// long session does not blow the token budget.
func truncateExcerpt(text string, max int) string {
	if max <= 0 || len(text) <= max {
		return text
	}
	cut := text[:max]
	if i := strings.LastIndexByte(cut, '\n'); i > 0 {
		cut = cut[:i]
	}
	return cut + "\n[excerpt truncated]"
}
