// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dnorman/learnchain/ent/quizanswerevent"
)

// QuizAnswerEvent is the model entity for the QuizAnswerEvent schema.
type QuizAnswerEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Links to ReviewSessionEvent
	SessionID string `json:"session_id,omitempty"`
	// Concept this quiz was generated for
	ConceptFingerprint string `json:"concept_fingerprint,omitempty"`
	// The question shown
	QuestionText string `json:"question_text,omitempty"`
	// Programming language of the concept
	Language string `json:"language,omitempty"`
	// LLM self-assessed difficulty, 1-5
	Difficulty int `json:"difficulty,omitempty"`
	// Option the learner picked
	ChosenIndex int `json:"chosen_index,omitempty"`
	// Option that was correct
	CorrectIndex int `json:"correct_index,omitempty"`
	// Whether the answer was correct
	Correct bool `json:"correct,omitempty"`
	// False when the learner re-answered the same quiz
	FirstAttempt bool `json:"first_attempt,omitempty"`
	// Milliseconds to answer
	TimeMs       int `json:"time_ms,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuizAnswerEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quizanswerevent.FieldCorrect, quizanswerevent.FieldFirstAttempt:
			values[i] = new(sql.NullBool)
		case quizanswerevent.FieldID, quizanswerevent.FieldSequence, quizanswerevent.FieldDifficulty, quizanswerevent.FieldChosenIndex, quizanswerevent.FieldCorrectIndex, quizanswerevent.FieldTimeMs:
			values[i] = new(sql.NullInt64)
		case quizanswerevent.FieldSessionID, quizanswerevent.FieldConceptFingerprint, quizanswerevent.FieldQuestionText, quizanswerevent.FieldLanguage:
			values[i] = new(sql.NullString)
		case quizanswerevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuizAnswerEvent fields.
func (_m *QuizAnswerEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quizanswerevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case quizanswerevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case quizanswerevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case quizanswerevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case quizanswerevent.FieldConceptFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept_fingerprint", values[i])
			} else if value.Valid {
				_m.ConceptFingerprint = value.String
			}
		case quizanswerevent.FieldQuestionText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_text", values[i])
			} else if value.Valid {
				_m.QuestionText = value.String
			}
		case quizanswerevent.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case quizanswerevent.FieldDifficulty:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = int(value.Int64)
			}
		case quizanswerevent.FieldChosenIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chosen_index", values[i])
			} else if value.Valid {
				_m.ChosenIndex = int(value.Int64)
			}
		case quizanswerevent.FieldCorrectIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_index", values[i])
			} else if value.Valid {
				_m.CorrectIndex = int(value.Int64)
			}
		case quizanswerevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case quizanswerevent.FieldFirstAttempt:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field first_attempt", values[i])
			} else if value.Valid {
				_m.FirstAttempt = value.Bool
			}
		case quizanswerevent.FieldTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_ms", values[i])
			} else if value.Valid {
				_m.TimeMs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuizAnswerEvent.
// This includes values selected through modifiers, order, etc.
func (_m *QuizAnswerEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuizAnswerEvent.
// Note that you need to call QuizAnswerEvent.Unwrap() before calling this method if this QuizAnswerEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuizAnswerEvent) Update() *QuizAnswerEventUpdateOne {
	return NewQuizAnswerEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuizAnswerEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuizAnswerEvent) Unwrap() *QuizAnswerEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuizAnswerEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuizAnswerEvent) String() string {
	var builder strings.Builder
	builder.WriteString("QuizAnswerEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("concept_fingerprint=")
	builder.WriteString(_m.ConceptFingerprint)
	builder.WriteString(", ")
	builder.WriteString("question_text=")
	builder.WriteString(_m.QuestionText)
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("chosen_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChosenIndex))
	builder.WriteString(", ")
	builder.WriteString("correct_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectIndex))
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("first_attempt=")
	builder.WriteString(fmt.Sprintf("%v", _m.FirstAttempt))
	builder.WriteString(", ")
	builder.WriteString("time_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeMs))
	builder.WriteByte(')')
	return builder.String()
}

// QuizAnswerEvents is a parsable slice of QuizAnswerEvent.
type QuizAnswerEvents []*QuizAnswerEvent
