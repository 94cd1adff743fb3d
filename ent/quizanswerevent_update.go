// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dnorman/learnchain/ent/predicate"
	"github.com/dnorman/learnchain/ent/quizanswerevent"
)

// QuizAnswerEventUpdate is the builder for updating QuizAnswerEvent entities.
type QuizAnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *QuizAnswerEventMutation
}

// Where appends a list predicates to the QuizAnswerEventUpdate builder.
func (_u *QuizAnswerEventUpdate) Where(ps ...predicate.QuizAnswerEvent) *QuizAnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *QuizAnswerEventUpdate) SetSessionID(v string) *QuizAnswerEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuizAnswerEventUpdate) SetNillableSessionID(v *string) *QuizAnswerEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetConceptFingerprint sets the "concept_fingerprint" field.
func (_u *QuizAnswerEventUpdate) SetConceptFingerprint(v string) *QuizAnswerEventUpdate {
	_u.mutation.SetConceptFingerprint(v)
	return _u
}

// SetNillableConceptFingerprint sets the "concept_fingerprint" field if the given value is not nil.
func (_u *QuizAnswerEventUpdate) SetNillableConceptFingerprint(v *string) *QuizAnswerEventUpdate {
	if v != nil {
		_u.SetConceptFingerprint(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *QuizAnswerEventUpdate) SetQuestionText(v string) *QuizAnswerEventUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *QuizAnswerEventUpdate) SetNillableQuestionText(v *string) *QuizAnswerEventUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *QuizAnswerEventUpdate) SetLanguage(v string) *QuizAnswerEventUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *QuizAnswerEventUpdate) SetNillableLanguage(v *string) *QuizAnswerEventUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuizAnswerEventUpdate) SetDifficulty(v int) *QuizAnswerEventUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuizAnswerEventUpdate) SetNillableDifficulty(v *int) *QuizAnswerEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *QuizAnswerEventUpdate) AddDifficulty(v int) *QuizAnswerEventUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetChosenIndex sets the "chosen_index" field.
func (_u *QuizAnswerEventUpdate) SetChosenIndex(v int) *QuizAnswerEventUpdate {
	_u.mutation.ResetChosenIndex()
	_u.mutation.SetChosenIndex(v)
	return _u
}

// SetNillableChosenIndex sets the "chosen_index" field if the given value is not nil.
func (_u *QuizAnswerEventUpdate) SetNillableChosenIndex(v *int) *QuizAnswerEventUpdate {
	if v != nil {
		_u.SetChosenIndex(*v)
	}
	return _u
}

// AddChosenIndex adds value to the "chosen_index" field.
func (_u *QuizAnswerEventUpdate) AddChosenIndex(v int) *QuizAnswerEventUpdate {
	_u.mutation.AddChosenIndex(v)
	return _u
}

// SetCorrectIndex sets the "correct_index" field.
func (_u *QuizAnswerEventUpdate) SetCorrectIndex(v int) *QuizAnswerEventUpdate {
	_u.mutation.ResetCorrectIndex()
	_u.mutation.SetCorrectIndex(v)
	return _u
}

// SetNillableCorrectIndex sets the "correct_index" field if the given value is not nil.
func (_u *QuizAnswerEventUpdate) SetNillableCorrectIndex(v *int) *QuizAnswerEventUpdate {
	if v != nil {
		_u.SetCorrectIndex(*v)
	}
	return _u
}

// AddCorrectIndex adds value to the "correct_index" field.
func (_u *QuizAnswerEventUpdate) AddCorrectIndex(v int) *QuizAnswerEventUpdate {
	_u.mutation.AddCorrectIndex(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *QuizAnswerEventUpdate) SetCorrect(v bool) *QuizAnswerEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *QuizAnswerEventUpdate) SetNillableCorrect(v *bool) *QuizAnswerEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetFirstAttempt sets the "first_attempt" field.
func (_u *QuizAnswerEventUpdate) SetFirstAttempt(v bool) *QuizAnswerEventUpdate {
	_u.mutation.SetFirstAttempt(v)
	return _u
}

// SetNillableFirstAttempt sets the "first_attempt" field if the given value is not nil.
func (_u *QuizAnswerEventUpdate) SetNillableFirstAttempt(v *bool) *QuizAnswerEventUpdate {
	if v != nil {
		_u.SetFirstAttempt(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *QuizAnswerEventUpdate) SetTimeMs(v int) *QuizAnswerEventUpdate {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *QuizAnswerEventUpdate) SetNillableTimeMs(v *int) *QuizAnswerEventUpdate {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *QuizAnswerEventUpdate) AddTimeMs(v int) *QuizAnswerEventUpdate {
	_u.mutation.AddTimeMs(v)
	return _u
}

// Mutation returns the QuizAnswerEventMutation object of the builder.
func (_u *QuizAnswerEventUpdate) Mutation() *QuizAnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizAnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizAnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizAnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizAnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizAnswerEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := quizanswerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizAnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptFingerprint(); ok {
		if err := quizanswerevent.ConceptFingerprintValidator(v); err != nil {
			return &ValidationError{Name: "concept_fingerprint", err: fmt.Errorf(`ent: validator failed for field "QuizAnswerEvent.concept_fingerprint": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := quizanswerevent.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "QuizAnswerEvent.question_text": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizAnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizanswerevent.Table, quizanswerevent.Columns, sqlgraph.NewFieldSpec(quizanswerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(quizanswerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptFingerprint(); ok {
		_spec.SetField(quizanswerevent.FieldConceptFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(quizanswerevent.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(quizanswerevent.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(quizanswerevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(quizanswerevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChosenIndex(); ok {
		_spec.SetField(quizanswerevent.FieldChosenIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChosenIndex(); ok {
		_spec.AddField(quizanswerevent.FieldChosenIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectIndex(); ok {
		_spec.SetField(quizanswerevent.FieldCorrectIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectIndex(); ok {
		_spec.AddField(quizanswerevent.FieldCorrectIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(quizanswerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FirstAttempt(); ok {
		_spec.SetField(quizanswerevent.FieldFirstAttempt, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(quizanswerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(quizanswerevent.FieldTimeMs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizanswerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizAnswerEventUpdateOne is the builder for updating a single QuizAnswerEvent entity.
type QuizAnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizAnswerEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *QuizAnswerEventUpdateOne) SetSessionID(v string) *QuizAnswerEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuizAnswerEventUpdateOne) SetNillableSessionID(v *string) *QuizAnswerEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetConceptFingerprint sets the "concept_fingerprint" field.
func (_u *QuizAnswerEventUpdateOne) SetConceptFingerprint(v string) *QuizAnswerEventUpdateOne {
	_u.mutation.SetConceptFingerprint(v)
	return _u
}

// SetNillableConceptFingerprint sets the "concept_fingerprint" field if the given value is not nil.
func (_u *QuizAnswerEventUpdateOne) SetNillableConceptFingerprint(v *string) *QuizAnswerEventUpdateOne {
	if v != nil {
		_u.SetConceptFingerprint(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *QuizAnswerEventUpdateOne) SetQuestionText(v string) *QuizAnswerEventUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *QuizAnswerEventUpdateOne) SetNillableQuestionText(v *string) *QuizAnswerEventUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *QuizAnswerEventUpdateOne) SetLanguage(v string) *QuizAnswerEventUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *QuizAnswerEventUpdateOne) SetNillableLanguage(v *string) *QuizAnswerEventUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuizAnswerEventUpdateOne) SetDifficulty(v int) *QuizAnswerEventUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuizAnswerEventUpdateOne) SetNillableDifficulty(v *int) *QuizAnswerEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *QuizAnswerEventUpdateOne) AddDifficulty(v int) *QuizAnswerEventUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetChosenIndex sets the "chosen_index" field.
func (_u *QuizAnswerEventUpdateOne) SetChosenIndex(v int) *QuizAnswerEventUpdateOne {
	_u.mutation.ResetChosenIndex()
	_u.mutation.SetChosenIndex(v)
	return _u
}

// SetNillableChosenIndex sets the "chosen_index" field if the given value is not nil.
func (_u *QuizAnswerEventUpdateOne) SetNillableChosenIndex(v *int) *QuizAnswerEventUpdateOne {
	if v != nil {
		_u.SetChosenIndex(*v)
	}
	return _u
}

// AddChosenIndex adds value to the "chosen_index" field.
func (_u *QuizAnswerEventUpdateOne) AddChosenIndex(v int) *QuizAnswerEventUpdateOne {
	_u.mutation.AddChosenIndex(v)
	return _u
}

// SetCorrectIndex sets the "correct_index" field.
func (_u *QuizAnswerEventUpdateOne) SetCorrectIndex(v int) *QuizAnswerEventUpdateOne {
	_u.mutation.ResetCorrectIndex()
	_u.mutation.SetCorrectIndex(v)
	return _u
}

// SetNillableCorrectIndex sets the "correct_index" field if the given value is not nil.
func (_u *QuizAnswerEventUpdateOne) SetNillableCorrectIndex(v *int) *QuizAnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrectIndex(*v)
	}
	return _u
}

// AddCorrectIndex adds value to the "correct_index" field.
func (_u *QuizAnswerEventUpdateOne) AddCorrectIndex(v int) *QuizAnswerEventUpdateOne {
	_u.mutation.AddCorrectIndex(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *QuizAnswerEventUpdateOne) SetCorrect(v bool) *QuizAnswerEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *QuizAnswerEventUpdateOne) SetNillableCorrect(v *bool) *QuizAnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetFirstAttempt sets the "first_attempt" field.
func (_u *QuizAnswerEventUpdateOne) SetFirstAttempt(v bool) *QuizAnswerEventUpdateOne {
	_u.mutation.SetFirstAttempt(v)
	return _u
}

// SetNillableFirstAttempt sets the "first_attempt" field if the given value is not nil.
func (_u *QuizAnswerEventUpdateOne) SetNillableFirstAttempt(v *bool) *QuizAnswerEventUpdateOne {
	if v != nil {
		_u.SetFirstAttempt(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *QuizAnswerEventUpdateOne) SetTimeMs(v int) *QuizAnswerEventUpdateOne {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *QuizAnswerEventUpdateOne) SetNillableTimeMs(v *int) *QuizAnswerEventUpdateOne {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *QuizAnswerEventUpdateOne) AddTimeMs(v int) *QuizAnswerEventUpdateOne {
	_u.mutation.AddTimeMs(v)
	return _u
}

// Mutation returns the QuizAnswerEventMutation object of the builder.
func (_u *QuizAnswerEventUpdateOne) Mutation() *QuizAnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizAnswerEventUpdate builder.
func (_u *QuizAnswerEventUpdateOne) Where(ps ...predicate.QuizAnswerEvent) *QuizAnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizAnswerEventUpdateOne) Select(field string, fields ...string) *QuizAnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizAnswerEvent entity.
func (_u *QuizAnswerEventUpdateOne) Save(ctx context.Context) (*QuizAnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizAnswerEventUpdateOne) SaveX(ctx context.Context) *QuizAnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizAnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizAnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizAnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := quizanswerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizAnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptFingerprint(); ok {
		if err := quizanswerevent.ConceptFingerprintValidator(v); err != nil {
			return &ValidationError{Name: "concept_fingerprint", err: fmt.Errorf(`ent: validator failed for field "QuizAnswerEvent.concept_fingerprint": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := quizanswerevent.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "QuizAnswerEvent.question_text": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizAnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *QuizAnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizanswerevent.Table, quizanswerevent.Columns, sqlgraph.NewFieldSpec(quizanswerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizAnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizanswerevent.FieldID)
		for _, f := range fields {
			if !quizanswerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizanswerevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(quizanswerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptFingerprint(); ok {
		_spec.SetField(quizanswerevent.FieldConceptFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(quizanswerevent.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(quizanswerevent.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(quizanswerevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(quizanswerevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChosenIndex(); ok {
		_spec.SetField(quizanswerevent.FieldChosenIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChosenIndex(); ok {
		_spec.AddField(quizanswerevent.FieldChosenIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectIndex(); ok {
		_spec.SetField(quizanswerevent.FieldCorrectIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectIndex(); ok {
		_spec.AddField(quizanswerevent.FieldCorrectIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(quizanswerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FirstAttempt(); ok {
		_spec.SetField(quizanswerevent.FieldFirstAttempt, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(quizanswerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(quizanswerevent.FieldTimeMs, field.TypeInt, value)
	}
	_node = &QuizAnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizanswerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
