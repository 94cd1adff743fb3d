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
	"github.com/dnorman/learnchain/ent/reviewsessionevent"
)

// ReviewSessionEventUpdate is the builder for updating ReviewSessionEvent entities.
type ReviewSessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewSessionEventMutation
}

// Where appends a list predicates to the ReviewSessionEventUpdate builder.
func (_u *ReviewSessionEventUpdate) Where(ps ...predicate.ReviewSessionEvent) *ReviewSessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ReviewSessionEventUpdate) SetSessionID(v string) *ReviewSessionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ReviewSessionEventUpdate) SetNillableSessionID(v *string) *ReviewSessionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ReviewSessionEventUpdate) SetAction(v string) *ReviewSessionEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ReviewSessionEventUpdate) SetNillableAction(v *string) *ReviewSessionEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetTool sets the "tool" field.
func (_u *ReviewSessionEventUpdate) SetTool(v string) *ReviewSessionEventUpdate {
	_u.mutation.SetTool(v)
	return _u
}

// SetNillableTool sets the "tool" field if the given value is not nil.
func (_u *ReviewSessionEventUpdate) SetNillableTool(v *string) *ReviewSessionEventUpdate {
	if v != nil {
		_u.SetTool(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *ReviewSessionEventUpdate) SetSourcePath(v string) *ReviewSessionEventUpdate {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *ReviewSessionEventUpdate) SetNillableSourcePath(v *string) *ReviewSessionEventUpdate {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetConceptCount sets the "concept_count" field.
func (_u *ReviewSessionEventUpdate) SetConceptCount(v int) *ReviewSessionEventUpdate {
	_u.mutation.ResetConceptCount()
	_u.mutation.SetConceptCount(v)
	return _u
}

// SetNillableConceptCount sets the "concept_count" field if the given value is not nil.
func (_u *ReviewSessionEventUpdate) SetNillableConceptCount(v *int) *ReviewSessionEventUpdate {
	if v != nil {
		_u.SetConceptCount(*v)
	}
	return _u
}

// AddConceptCount adds value to the "concept_count" field.
func (_u *ReviewSessionEventUpdate) AddConceptCount(v int) *ReviewSessionEventUpdate {
	_u.mutation.AddConceptCount(v)
	return _u
}

// SetQuizzesGenerated sets the "quizzes_generated" field.
func (_u *ReviewSessionEventUpdate) SetQuizzesGenerated(v int) *ReviewSessionEventUpdate {
	_u.mutation.ResetQuizzesGenerated()
	_u.mutation.SetQuizzesGenerated(v)
	return _u
}

// SetNillableQuizzesGenerated sets the "quizzes_generated" field if the given value is not nil.
func (_u *ReviewSessionEventUpdate) SetNillableQuizzesGenerated(v *int) *ReviewSessionEventUpdate {
	if v != nil {
		_u.SetQuizzesGenerated(*v)
	}
	return _u
}

// AddQuizzesGenerated adds value to the "quizzes_generated" field.
func (_u *ReviewSessionEventUpdate) AddQuizzesGenerated(v int) *ReviewSessionEventUpdate {
	_u.mutation.AddQuizzesGenerated(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *ReviewSessionEventUpdate) SetCorrectAnswers(v int) *ReviewSessionEventUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *ReviewSessionEventUpdate) SetNillableCorrectAnswers(v *int) *ReviewSessionEventUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *ReviewSessionEventUpdate) AddCorrectAnswers(v int) *ReviewSessionEventUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *ReviewSessionEventUpdate) SetDurationSecs(v int) *ReviewSessionEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *ReviewSessionEventUpdate) SetNillableDurationSecs(v *int) *ReviewSessionEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *ReviewSessionEventUpdate) AddDurationSecs(v int) *ReviewSessionEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the ReviewSessionEventMutation object of the builder.
func (_u *ReviewSessionEventUpdate) Mutation() *ReviewSessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewSessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewSessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewSessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewSessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewSessionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := reviewsessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ReviewSessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := reviewsessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ReviewSessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewSessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewsessionevent.Table, reviewsessionevent.Columns, sqlgraph.NewFieldSpec(reviewsessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(reviewsessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(reviewsessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tool(); ok {
		_spec.SetField(reviewsessionevent.FieldTool, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(reviewsessionevent.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptCount(); ok {
		_spec.SetField(reviewsessionevent.FieldConceptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConceptCount(); ok {
		_spec.AddField(reviewsessionevent.FieldConceptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuizzesGenerated(); ok {
		_spec.SetField(reviewsessionevent.FieldQuizzesGenerated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizzesGenerated(); ok {
		_spec.AddField(reviewsessionevent.FieldQuizzesGenerated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(reviewsessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(reviewsessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(reviewsessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(reviewsessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewsessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewSessionEventUpdateOne is the builder for updating a single ReviewSessionEvent entity.
type ReviewSessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewSessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ReviewSessionEventUpdateOne) SetSessionID(v string) *ReviewSessionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ReviewSessionEventUpdateOne) SetNillableSessionID(v *string) *ReviewSessionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ReviewSessionEventUpdateOne) SetAction(v string) *ReviewSessionEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ReviewSessionEventUpdateOne) SetNillableAction(v *string) *ReviewSessionEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetTool sets the "tool" field.
func (_u *ReviewSessionEventUpdateOne) SetTool(v string) *ReviewSessionEventUpdateOne {
	_u.mutation.SetTool(v)
	return _u
}

// SetNillableTool sets the "tool" field if the given value is not nil.
func (_u *ReviewSessionEventUpdateOne) SetNillableTool(v *string) *ReviewSessionEventUpdateOne {
	if v != nil {
		_u.SetTool(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *ReviewSessionEventUpdateOne) SetSourcePath(v string) *ReviewSessionEventUpdateOne {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *ReviewSessionEventUpdateOne) SetNillableSourcePath(v *string) *ReviewSessionEventUpdateOne {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetConceptCount sets the "concept_count" field.
func (_u *ReviewSessionEventUpdateOne) SetConceptCount(v int) *ReviewSessionEventUpdateOne {
	_u.mutation.ResetConceptCount()
	_u.mutation.SetConceptCount(v)
	return _u
}

// SetNillableConceptCount sets the "concept_count" field if the given value is not nil.
func (_u *ReviewSessionEventUpdateOne) SetNillableConceptCount(v *int) *ReviewSessionEventUpdateOne {
	if v != nil {
		_u.SetConceptCount(*v)
	}
	return _u
}

// AddConceptCount adds value to the "concept_count" field.
func (_u *ReviewSessionEventUpdateOne) AddConceptCount(v int) *ReviewSessionEventUpdateOne {
	_u.mutation.AddConceptCount(v)
	return _u
}

// SetQuizzesGenerated sets the "quizzes_generated" field.
func (_u *ReviewSessionEventUpdateOne) SetQuizzesGenerated(v int) *ReviewSessionEventUpdateOne {
	_u.mutation.ResetQuizzesGenerated()
	_u.mutation.SetQuizzesGenerated(v)
	return _u
}

// SetNillableQuizzesGenerated sets the "quizzes_generated" field if the given value is not nil.
func (_u *ReviewSessionEventUpdateOne) SetNillableQuizzesGenerated(v *int) *ReviewSessionEventUpdateOne {
	if v != nil {
		_u.SetQuizzesGenerated(*v)
	}
	return _u
}

// AddQuizzesGenerated adds value to the "quizzes_generated" field.
func (_u *ReviewSessionEventUpdateOne) AddQuizzesGenerated(v int) *ReviewSessionEventUpdateOne {
	_u.mutation.AddQuizzesGenerated(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *ReviewSessionEventUpdateOne) SetCorrectAnswers(v int) *ReviewSessionEventUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *ReviewSessionEventUpdateOne) SetNillableCorrectAnswers(v *int) *ReviewSessionEventUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *ReviewSessionEventUpdateOne) AddCorrectAnswers(v int) *ReviewSessionEventUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *ReviewSessionEventUpdateOne) SetDurationSecs(v int) *ReviewSessionEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *ReviewSessionEventUpdateOne) SetNillableDurationSecs(v *int) *ReviewSessionEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *ReviewSessionEventUpdateOne) AddDurationSecs(v int) *ReviewSessionEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the ReviewSessionEventMutation object of the builder.
func (_u *ReviewSessionEventUpdateOne) Mutation() *ReviewSessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewSessionEventUpdate builder.
func (_u *ReviewSessionEventUpdateOne) Where(ps ...predicate.ReviewSessionEvent) *ReviewSessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewSessionEventUpdateOne) Select(field string, fields ...string) *ReviewSessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewSessionEvent entity.
func (_u *ReviewSessionEventUpdateOne) Save(ctx context.Context) (*ReviewSessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewSessionEventUpdateOne) SaveX(ctx context.Context) *ReviewSessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewSessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewSessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewSessionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := reviewsessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ReviewSessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := reviewsessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ReviewSessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewSessionEventUpdateOne) sqlSave(ctx context.Context) (_node *ReviewSessionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewsessionevent.Table, reviewsessionevent.Columns, sqlgraph.NewFieldSpec(reviewsessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewSessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewsessionevent.FieldID)
		for _, f := range fields {
			if !reviewsessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewsessionevent.FieldID {
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
		_spec.SetField(reviewsessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(reviewsessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tool(); ok {
		_spec.SetField(reviewsessionevent.FieldTool, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(reviewsessionevent.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptCount(); ok {
		_spec.SetField(reviewsessionevent.FieldConceptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConceptCount(); ok {
		_spec.AddField(reviewsessionevent.FieldConceptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuizzesGenerated(); ok {
		_spec.SetField(reviewsessionevent.FieldQuizzesGenerated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizzesGenerated(); ok {
		_spec.AddField(reviewsessionevent.FieldQuizzesGenerated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(reviewsessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(reviewsessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(reviewsessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(reviewsessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &ReviewSessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewsessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
