package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewSessionEvent records review session lifecycle events (start/end).
type ReviewSessionEvent struct {
	ent.Schema
}

func (ReviewSessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewSessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a review session"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("tool").
			Default("").
			Comment("Source tool of the transcript: claude-code or codex-cli"),
		field.String("source_path").
			Default("").
			Comment("Transcript file the session was built from"),
		field.Int("concept_count").
			Default(0).
			Comment("Concepts extracted (on start)"),
		field.Int("quizzes_generated").
			Default(0).
			Comment("Quizzes produced (on end)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Total correct (on end)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Session duration in seconds (on end)"),
	}
}

func (ReviewSessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
