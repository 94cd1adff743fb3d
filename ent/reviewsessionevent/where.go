// Code generated by ent, DO NOT EDIT.

package reviewsessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dnorman/learnchain/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldEQ(FieldSessionID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldEQ(FieldAction, v))
}

// Tool applies equality check predicate on the "tool" field. It's identical to ToolEQ.
func Tool(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldEQ(FieldTool, v))
}

// SourcePath applies equality check predicate on the "source_path" field. It's identical to SourcePathEQ.
func SourcePath(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldEQ(FieldSourcePath, v))
}

// ConceptCount applies equality check predicate on the "concept_count" field. It's identical to ConceptCountEQ.
func ConceptCount(v int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldEQ(FieldConceptCount, v))
}

// QuizzesGenerated applies equality check predicate on the "quizzes_generated" field. It's identical to QuizzesGeneratedEQ.
func QuizzesGenerated(v int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldEQ(FieldQuizzesGenerated, v))
}

// CorrectAnswers applies equality check predicate on the "correct_answers" field. It's identical to CorrectAnswersEQ.
func CorrectAnswers(v int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldEQ(FieldCorrectAnswers, v))
}

// DurationSecs applies equality check predicate on the "duration_secs" field. It's identical to DurationSecsEQ.
func DurationSecs(v int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldContainsFold(FieldAction, v))
}

// ToolEQ applies the EQ predicate on the "tool" field.
func ToolEQ(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldEQ(FieldTool, v))
}

// ToolNEQ applies the NEQ predicate on the "tool" field.
func ToolNEQ(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldNEQ(FieldTool, v))
}

// ToolIn applies the In predicate on the "tool" field.
func ToolIn(vs ...string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldIn(FieldTool, vs...))
}

// ToolNotIn applies the NotIn predicate on the "tool" field.
func ToolNotIn(vs ...string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldNotIn(FieldTool, vs...))
}

// ToolGT applies the GT predicate on the "tool" field.
func ToolGT(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldGT(FieldTool, v))
}

// ToolGTE applies the GTE predicate on the "tool" field.
func ToolGTE(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldGTE(FieldTool, v))
}

// ToolLT applies the LT predicate on the "tool" field.
func ToolLT(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldLT(FieldTool, v))
}

// ToolLTE applies the LTE predicate on the "tool" field.
func ToolLTE(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldLTE(FieldTool, v))
}

// ToolContains applies the Contains predicate on the "tool" field.
func ToolContains(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldContains(FieldTool, v))
}

// ToolHasPrefix applies the HasPrefix predicate on the "tool" field.
func ToolHasPrefix(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldHasPrefix(FieldTool, v))
}

// ToolHasSuffix applies the HasSuffix predicate on the "tool" field.
func ToolHasSuffix(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldHasSuffix(FieldTool, v))
}

// ToolEqualFold applies the EqualFold predicate on the "tool" field.
func ToolEqualFold(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldEqualFold(FieldTool, v))
}

// ToolContainsFold applies the ContainsFold predicate on the "tool" field.
func ToolContainsFold(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldContainsFold(FieldTool, v))
}

// SourcePathEQ applies the EQ predicate on the "source_path" field.
func SourcePathEQ(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldEQ(FieldSourcePath, v))
}

// SourcePathNEQ applies the NEQ predicate on the "source_path" field.
func SourcePathNEQ(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldNEQ(FieldSourcePath, v))
}

// SourcePathIn applies the In predicate on the "source_path" field.
func SourcePathIn(vs ...string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldIn(FieldSourcePath, vs...))
}

// SourcePathNotIn applies the NotIn predicate on the "source_path" field.
func SourcePathNotIn(vs ...string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldNotIn(FieldSourcePath, vs...))
}

// SourcePathGT applies the GT predicate on the "source_path" field.
func SourcePathGT(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldGT(FieldSourcePath, v))
}

// SourcePathGTE applies the GTE predicate on the "source_path" field.
func SourcePathGTE(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldGTE(FieldSourcePath, v))
}

// SourcePathLT applies the LT predicate on the "source_path" field.
func SourcePathLT(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldLT(FieldSourcePath, v))
}

// SourcePathLTE applies the LTE predicate on the "source_path" field.
func SourcePathLTE(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldLTE(FieldSourcePath, v))
}

// SourcePathContains applies the Contains predicate on the "source_path" field.
func SourcePathContains(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldContains(FieldSourcePath, v))
}

// SourcePathHasPrefix applies the HasPrefix predicate on the "source_path" field.
func SourcePathHasPrefix(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldHasPrefix(FieldSourcePath, v))
}

// SourcePathHasSuffix applies the HasSuffix predicate on the "source_path" field.
func SourcePathHasSuffix(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldHasSuffix(FieldSourcePath, v))
}

// SourcePathEqualFold applies the EqualFold predicate on the "source_path" field.
func SourcePathEqualFold(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldEqualFold(FieldSourcePath, v))
}

// SourcePathContainsFold applies the ContainsFold predicate on the "source_path" field.
func SourcePathContainsFold(v string) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldContainsFold(FieldSourcePath, v))
}

// ConceptCountEQ applies the EQ predicate on the "concept_count" field.
func ConceptCountEQ(v int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldEQ(FieldConceptCount, v))
}

// ConceptCountNEQ applies the NEQ predicate on the "concept_count" field.
func ConceptCountNEQ(v int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldNEQ(FieldConceptCount, v))
}

// ConceptCountIn applies the In predicate on the "concept_count" field.
func ConceptCountIn(vs ...int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldIn(FieldConceptCount, vs...))
}

// ConceptCountNotIn applies the NotIn predicate on the "concept_count" field.
func ConceptCountNotIn(vs ...int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldNotIn(FieldConceptCount, vs...))
}

// ConceptCountGT applies the GT predicate on the "concept_count" field.
func ConceptCountGT(v int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldGT(FieldConceptCount, v))
}

// ConceptCountGTE applies the GTE predicate on the "concept_count" field.
func ConceptCountGTE(v int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldGTE(FieldConceptCount, v))
}

// ConceptCountLT applies the LT predicate on the "concept_count" field.
func ConceptCountLT(v int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldLT(FieldConceptCount, v))
}

// ConceptCountLTE applies the LTE predicate on the "concept_count" field.
func ConceptCountLTE(v int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldLTE(FieldConceptCount, v))
}

// QuizzesGeneratedEQ applies the EQ predicate on the "quizzes_generated" field.
func QuizzesGeneratedEQ(v int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldEQ(FieldQuizzesGenerated, v))
}

// QuizzesGeneratedNEQ applies the NEQ predicate on the "quizzes_generated" field.
func QuizzesGeneratedNEQ(v int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldNEQ(FieldQuizzesGenerated, v))
}

// QuizzesGeneratedIn applies the In predicate on the "quizzes_generated" field.
func QuizzesGeneratedIn(vs ...int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldIn(FieldQuizzesGenerated, vs...))
}

// QuizzesGeneratedNotIn applies the NotIn predicate on the "quizzes_generated" field.
func QuizzesGeneratedNotIn(vs ...int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldNotIn(FieldQuizzesGenerated, vs...))
}

// QuizzesGeneratedGT applies the GT predicate on the "quizzes_generated" field.
func QuizzesGeneratedGT(v int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldGT(FieldQuizzesGenerated, v))
}

// QuizzesGeneratedGTE applies the GTE predicate on the "quizzes_generated" field.
func QuizzesGeneratedGTE(v int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldGTE(FieldQuizzesGenerated, v))
}

// QuizzesGeneratedLT applies the LT predicate on the "quizzes_generated" field.
func QuizzesGeneratedLT(v int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldLT(FieldQuizzesGenerated, v))
}

// QuizzesGeneratedLTE applies the LTE predicate on the "quizzes_generated" field.
func QuizzesGeneratedLTE(v int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldLTE(FieldQuizzesGenerated, v))
}

// CorrectAnswersEQ applies the EQ predicate on the "correct_answers" field.
func CorrectAnswersEQ(v int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersNEQ applies the NEQ predicate on the "correct_answers" field.
func CorrectAnswersNEQ(v int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldNEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersIn applies the In predicate on the "correct_answers" field.
func CorrectAnswersIn(vs ...int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersNotIn applies the NotIn predicate on the "correct_answers" field.
func CorrectAnswersNotIn(vs ...int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldNotIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersGT applies the GT predicate on the "correct_answers" field.
func CorrectAnswersGT(v int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldGT(FieldCorrectAnswers, v))
}

// CorrectAnswersGTE applies the GTE predicate on the "correct_answers" field.
func CorrectAnswersGTE(v int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldGTE(FieldCorrectAnswers, v))
}

// CorrectAnswersLT applies the LT predicate on the "correct_answers" field.
func CorrectAnswersLT(v int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldLT(FieldCorrectAnswers, v))
}

// CorrectAnswersLTE applies the LTE predicate on the "correct_answers" field.
func CorrectAnswersLTE(v int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldLTE(FieldCorrectAnswers, v))
}

// DurationSecsEQ applies the EQ predicate on the "duration_secs" field.
func DurationSecsEQ(v int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// DurationSecsNEQ applies the NEQ predicate on the "duration_secs" field.
func DurationSecsNEQ(v int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldNEQ(FieldDurationSecs, v))
}

// DurationSecsIn applies the In predicate on the "duration_secs" field.
func DurationSecsIn(vs ...int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldIn(FieldDurationSecs, vs...))
}

// DurationSecsNotIn applies the NotIn predicate on the "duration_secs" field.
func DurationSecsNotIn(vs ...int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldNotIn(FieldDurationSecs, vs...))
}

// DurationSecsGT applies the GT predicate on the "duration_secs" field.
func DurationSecsGT(v int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldGT(FieldDurationSecs, v))
}

// DurationSecsGTE applies the GTE predicate on the "duration_secs" field.
func DurationSecsGTE(v int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldGTE(FieldDurationSecs, v))
}

// DurationSecsLT applies the LT predicate on the "duration_secs" field.
func DurationSecsLT(v int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldLT(FieldDurationSecs, v))
}

// DurationSecsLTE applies the LTE predicate on the "duration_secs" field.
func DurationSecsLTE(v int) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.FieldLTE(FieldDurationSecs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReviewSessionEvent) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReviewSessionEvent) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReviewSessionEvent) predicate.ReviewSessionEvent {
	return predicate.ReviewSessionEvent(sql.NotPredicates(p))
}
