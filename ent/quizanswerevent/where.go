// Code generated by ent, DO NOT EDIT.

package quizanswerevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dnorman/learnchain/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldSessionID, v))
}

// ConceptFingerprint applies equality check predicate on the "concept_fingerprint" field. It's identical to ConceptFingerprintEQ.
func ConceptFingerprint(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldConceptFingerprint, v))
}

// QuestionText applies equality check predicate on the "question_text" field. It's identical to QuestionTextEQ.
func QuestionText(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldQuestionText, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldLanguage, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldDifficulty, v))
}

// ChosenIndex applies equality check predicate on the "chosen_index" field. It's identical to ChosenIndexEQ.
func ChosenIndex(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldChosenIndex, v))
}

// CorrectIndex applies equality check predicate on the "correct_index" field. It's identical to CorrectIndexEQ.
func CorrectIndex(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldCorrectIndex, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldCorrect, v))
}

// FirstAttempt applies equality check predicate on the "first_attempt" field. It's identical to FirstAttemptEQ.
func FirstAttempt(v bool) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldFirstAttempt, v))
}

// TimeMs applies equality check predicate on the "time_ms" field. It's identical to TimeMsEQ.
func TimeMs(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldTimeMs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ConceptFingerprintEQ applies the EQ predicate on the "concept_fingerprint" field.
func ConceptFingerprintEQ(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldConceptFingerprint, v))
}

// ConceptFingerprintNEQ applies the NEQ predicate on the "concept_fingerprint" field.
func ConceptFingerprintNEQ(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldConceptFingerprint, v))
}

// ConceptFingerprintIn applies the In predicate on the "concept_fingerprint" field.
func ConceptFingerprintIn(vs ...string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldConceptFingerprint, vs...))
}

// ConceptFingerprintNotIn applies the NotIn predicate on the "concept_fingerprint" field.
func ConceptFingerprintNotIn(vs ...string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldConceptFingerprint, vs...))
}

// ConceptFingerprintGT applies the GT predicate on the "concept_fingerprint" field.
func ConceptFingerprintGT(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldConceptFingerprint, v))
}

// ConceptFingerprintGTE applies the GTE predicate on the "concept_fingerprint" field.
func ConceptFingerprintGTE(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldConceptFingerprint, v))
}

// ConceptFingerprintLT applies the LT predicate on the "concept_fingerprint" field.
func ConceptFingerprintLT(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldConceptFingerprint, v))
}

// ConceptFingerprintLTE applies the LTE predicate on the "concept_fingerprint" field.
func ConceptFingerprintLTE(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldConceptFingerprint, v))
}

// ConceptFingerprintContains applies the Contains predicate on the "concept_fingerprint" field.
func ConceptFingerprintContains(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldContains(FieldConceptFingerprint, v))
}

// ConceptFingerprintHasPrefix applies the HasPrefix predicate on the "concept_fingerprint" field.
func ConceptFingerprintHasPrefix(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldHasPrefix(FieldConceptFingerprint, v))
}

// ConceptFingerprintHasSuffix applies the HasSuffix predicate on the "concept_fingerprint" field.
func ConceptFingerprintHasSuffix(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldHasSuffix(FieldConceptFingerprint, v))
}

// ConceptFingerprintEqualFold applies the EqualFold predicate on the "concept_fingerprint" field.
func ConceptFingerprintEqualFold(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEqualFold(FieldConceptFingerprint, v))
}

// ConceptFingerprintContainsFold applies the ContainsFold predicate on the "concept_fingerprint" field.
func ConceptFingerprintContainsFold(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldContainsFold(FieldConceptFingerprint, v))
}

// QuestionTextEQ applies the EQ predicate on the "question_text" field.
func QuestionTextEQ(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldQuestionText, v))
}

// QuestionTextNEQ applies the NEQ predicate on the "question_text" field.
func QuestionTextNEQ(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldQuestionText, v))
}

// QuestionTextIn applies the In predicate on the "question_text" field.
func QuestionTextIn(vs ...string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldQuestionText, vs...))
}

// QuestionTextNotIn applies the NotIn predicate on the "question_text" field.
func QuestionTextNotIn(vs ...string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldQuestionText, vs...))
}

// QuestionTextGT applies the GT predicate on the "question_text" field.
func QuestionTextGT(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldQuestionText, v))
}

// QuestionTextGTE applies the GTE predicate on the "question_text" field.
func QuestionTextGTE(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldQuestionText, v))
}

// QuestionTextLT applies the LT predicate on the "question_text" field.
func QuestionTextLT(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldQuestionText, v))
}

// QuestionTextLTE applies the LTE predicate on the "question_text" field.
func QuestionTextLTE(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldQuestionText, v))
}

// QuestionTextContains applies the Contains predicate on the "question_text" field.
func QuestionTextContains(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldContains(FieldQuestionText, v))
}

// QuestionTextHasPrefix applies the HasPrefix predicate on the "question_text" field.
func QuestionTextHasPrefix(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldHasPrefix(FieldQuestionText, v))
}

// QuestionTextHasSuffix applies the HasSuffix predicate on the "question_text" field.
func QuestionTextHasSuffix(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldHasSuffix(FieldQuestionText, v))
}

// QuestionTextEqualFold applies the EqualFold predicate on the "question_text" field.
func QuestionTextEqualFold(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEqualFold(FieldQuestionText, v))
}

// QuestionTextContainsFold applies the ContainsFold predicate on the "question_text" field.
func QuestionTextContainsFold(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldContainsFold(FieldQuestionText, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldContainsFold(FieldLanguage, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldDifficulty, v))
}

// ChosenIndexEQ applies the EQ predicate on the "chosen_index" field.
func ChosenIndexEQ(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldChosenIndex, v))
}

// ChosenIndexNEQ applies the NEQ predicate on the "chosen_index" field.
func ChosenIndexNEQ(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldChosenIndex, v))
}

// ChosenIndexIn applies the In predicate on the "chosen_index" field.
func ChosenIndexIn(vs ...int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldChosenIndex, vs...))
}

// ChosenIndexNotIn applies the NotIn predicate on the "chosen_index" field.
func ChosenIndexNotIn(vs ...int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldChosenIndex, vs...))
}

// ChosenIndexGT applies the GT predicate on the "chosen_index" field.
func ChosenIndexGT(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldChosenIndex, v))
}

// ChosenIndexGTE applies the GTE predicate on the "chosen_index" field.
func ChosenIndexGTE(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldChosenIndex, v))
}

// ChosenIndexLT applies the LT predicate on the "chosen_index" field.
func ChosenIndexLT(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldChosenIndex, v))
}

// ChosenIndexLTE applies the LTE predicate on the "chosen_index" field.
func ChosenIndexLTE(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldChosenIndex, v))
}

// CorrectIndexEQ applies the EQ predicate on the "correct_index" field.
func CorrectIndexEQ(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldCorrectIndex, v))
}

// CorrectIndexNEQ applies the NEQ predicate on the "correct_index" field.
func CorrectIndexNEQ(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldCorrectIndex, v))
}

// CorrectIndexIn applies the In predicate on the "correct_index" field.
func CorrectIndexIn(vs ...int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldCorrectIndex, vs...))
}

// CorrectIndexNotIn applies the NotIn predicate on the "correct_index" field.
func CorrectIndexNotIn(vs ...int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldCorrectIndex, vs...))
}

// CorrectIndexGT applies the GT predicate on the "correct_index" field.
func CorrectIndexGT(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldCorrectIndex, v))
}

// CorrectIndexGTE applies the GTE predicate on the "correct_index" field.
func CorrectIndexGTE(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldCorrectIndex, v))
}

// CorrectIndexLT applies the LT predicate on the "correct_index" field.
func CorrectIndexLT(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldCorrectIndex, v))
}

// CorrectIndexLTE applies the LTE predicate on the "correct_index" field.
func CorrectIndexLTE(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldCorrectIndex, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldCorrect, v))
}

// FirstAttemptEQ applies the EQ predicate on the "first_attempt" field.
func FirstAttemptEQ(v bool) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldFirstAttempt, v))
}

// FirstAttemptNEQ applies the NEQ predicate on the "first_attempt" field.
func FirstAttemptNEQ(v bool) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldFirstAttempt, v))
}

// TimeMsEQ applies the EQ predicate on the "time_ms" field.
func TimeMsEQ(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldTimeMs, v))
}

// TimeMsNEQ applies the NEQ predicate on the "time_ms" field.
func TimeMsNEQ(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldTimeMs, v))
}

// TimeMsIn applies the In predicate on the "time_ms" field.
func TimeMsIn(vs ...int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldTimeMs, vs...))
}

// TimeMsNotIn applies the NotIn predicate on the "time_ms" field.
func TimeMsNotIn(vs ...int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldTimeMs, vs...))
}

// TimeMsGT applies the GT predicate on the "time_ms" field.
func TimeMsGT(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldTimeMs, v))
}

// TimeMsGTE applies the GTE predicate on the "time_ms" field.
func TimeMsGTE(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldTimeMs, v))
}

// TimeMsLT applies the LT predicate on the "time_ms" field.
func TimeMsLT(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldTimeMs, v))
}

// TimeMsLTE applies the LTE predicate on the "time_ms" field.
func TimeMsLTE(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldTimeMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizAnswerEvent) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizAnswerEvent) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizAnswerEvent) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.NotPredicates(p))
}
