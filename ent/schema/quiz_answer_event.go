package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizAnswerEvent records a single answered quiz within a review session.
type QuizAnswerEvent struct {
	ent.Schema
}

func (QuizAnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizAnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to ReviewSessionEvent"),
		field.String("concept_fingerprint").
			NotEmpty().
			Comment("Concept this quiz was generated for"),
		field.String("question_text").
			NotEmpty().
			Comment("The question shown"),
		field.String("language").
			Default("").
			Comment("Programming language of the concept"),
		field.Int("difficulty").
			Default(0).
			Comment("LLM self-assessed difficulty, 1-5"),
		field.Int("chosen_index").
			Comment("Option the learner picked"),
		field.Int("correct_index").
			Comment("Option that was correct"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Bool("first_attempt").
			Default(true).
			Comment("False when the learner re-answered the same quiz"),
		field.Int("time_ms").
			Default(0).
			Comment("Milliseconds to answer"),
	}
}

func (QuizAnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("concept_fingerprint"),
		index.Fields("language"),
		index.Fields("correct"),
	}
}
