// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// QuizAnswerEventsColumns holds the columns for the "quiz_answer_events" table.
	QuizAnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "concept_fingerprint", Type: field.TypeString},
		{Name: "question_text", Type: field.TypeString},
		{Name: "language", Type: field.TypeString, Default: ""},
		{Name: "difficulty", Type: field.TypeInt, Default: 0},
		{Name: "chosen_index", Type: field.TypeInt},
		{Name: "correct_index", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool},
		{Name: "first_attempt", Type: field.TypeBool, Default: true},
		{Name: "time_ms", Type: field.TypeInt, Default: 0},
	}
	// QuizAnswerEventsTable holds the schema information for the "quiz_answer_events" table.
	QuizAnswerEventsTable = &schema.Table{
		Name:       "quiz_answer_events",
		Columns:    QuizAnswerEventsColumns,
		PrimaryKey: []*schema.Column{QuizAnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizanswerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuizAnswerEventsColumns[1]},
			},
			{
				Name:    "quizanswerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuizAnswerEventsColumns[2]},
			},
			{
				Name:    "quizanswerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{QuizAnswerEventsColumns[3]},
			},
			{
				Name:    "quizanswerevent_concept_fingerprint",
				Unique:  false,
				Columns: []*schema.Column{QuizAnswerEventsColumns[4]},
			},
			{
				Name:    "quizanswerevent_language",
				Unique:  false,
				Columns: []*schema.Column{QuizAnswerEventsColumns[6]},
			},
			{
				Name:    "quizanswerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{QuizAnswerEventsColumns[10]},
			},
		},
	}
	// ReviewSessionEventsColumns holds the columns for the "review_session_events" table.
	ReviewSessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "tool", Type: field.TypeString, Default: ""},
		{Name: "source_path", Type: field.TypeString, Default: ""},
		{Name: "concept_count", Type: field.TypeInt, Default: 0},
		{Name: "quizzes_generated", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// ReviewSessionEventsTable holds the schema information for the "review_session_events" table.
	ReviewSessionEventsTable = &schema.Table{
		Name:       "review_session_events",
		Columns:    ReviewSessionEventsColumns,
		PrimaryKey: []*schema.Column{ReviewSessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewsessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ReviewSessionEventsColumns[1]},
			},
			{
				Name:    "reviewsessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ReviewSessionEventsColumns[2]},
			},
			{
				Name:    "reviewsessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewSessionEventsColumns[3]},
			},
			{
				Name:    "reviewsessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{ReviewSessionEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		QuizAnswerEventsTable,
		ReviewSessionEventsTable,
	}
)

func init() {
}
