// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dnorman/learnchain/ent/reviewsessionevent"
)

// ReviewSessionEvent is the model entity for the ReviewSessionEvent schema.
type ReviewSessionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID grouping events in a review session
	SessionID string `json:"session_id,omitempty"`
	// start or end
	Action string `json:"action,omitempty"`
	// Source tool of the transcript: claude-code or codex-cli
	Tool string `json:"tool,omitempty"`
	// Transcript file the session was built from
	SourcePath string `json:"source_path,omitempty"`
	// Concepts extracted (on start)
	ConceptCount int `json:"concept_count,omitempty"`
	// Quizzes produced (on end)
	QuizzesGenerated int `json:"quizzes_generated,omitempty"`
	// Total correct (on end)
	CorrectAnswers int `json:"correct_answers,omitempty"`
	// Session duration in seconds (on end)
	DurationSecs int `json:"duration_secs,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReviewSessionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reviewsessionevent.FieldID, reviewsessionevent.FieldSequence, reviewsessionevent.FieldConceptCount, reviewsessionevent.FieldQuizzesGenerated, reviewsessionevent.FieldCorrectAnswers, reviewsessionevent.FieldDurationSecs:
			values[i] = new(sql.NullInt64)
		case reviewsessionevent.FieldSessionID, reviewsessionevent.FieldAction, reviewsessionevent.FieldTool, reviewsessionevent.FieldSourcePath:
			values[i] = new(sql.NullString)
		case reviewsessionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReviewSessionEvent fields.
func (_m *ReviewSessionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reviewsessionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case reviewsessionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case reviewsessionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case reviewsessionevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case reviewsessionevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case reviewsessionevent.FieldTool:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool", values[i])
			} else if value.Valid {
				_m.Tool = value.String
			}
		case reviewsessionevent.FieldSourcePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_path", values[i])
			} else if value.Valid {
				_m.SourcePath = value.String
			}
		case reviewsessionevent.FieldConceptCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field concept_count", values[i])
			} else if value.Valid {
				_m.ConceptCount = int(value.Int64)
			}
		case reviewsessionevent.FieldQuizzesGenerated:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quizzes_generated", values[i])
			} else if value.Valid {
				_m.QuizzesGenerated = int(value.Int64)
			}
		case reviewsessionevent.FieldCorrectAnswers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answers", values[i])
			} else if value.Valid {
				_m.CorrectAnswers = int(value.Int64)
			}
		case reviewsessionevent.FieldDurationSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_secs", values[i])
			} else if value.Valid {
				_m.DurationSecs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReviewSessionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ReviewSessionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReviewSessionEvent.
// Note that you need to call ReviewSessionEvent.Unwrap() before calling this method if this ReviewSessionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReviewSessionEvent) Update() *ReviewSessionEventUpdateOne {
	return NewReviewSessionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReviewSessionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReviewSessionEvent) Unwrap() *ReviewSessionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReviewSessionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReviewSessionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ReviewSessionEvent(")
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
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("tool=")
	builder.WriteString(_m.Tool)
	builder.WriteString(", ")
	builder.WriteString("source_path=")
	builder.WriteString(_m.SourcePath)
	builder.WriteString(", ")
	builder.WriteString("concept_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConceptCount))
	builder.WriteString(", ")
	builder.WriteString("quizzes_generated=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuizzesGenerated))
	builder.WriteString(", ")
	builder.WriteString("correct_answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectAnswers))
	builder.WriteString(", ")
	builder.WriteString("duration_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSecs))
	builder.WriteByte(')')
	return builder.String()
}

// ReviewSessionEvents is a parsable slice of ReviewSessionEvent.
type ReviewSessionEvents []*ReviewSessionEvent
