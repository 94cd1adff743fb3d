// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dnorman/learnchain/ent/reviewsessionevent"
)

// ReviewSessionEventCreate is the builder for creating a ReviewSessionEvent entity.
type ReviewSessionEventCreate struct {
	config
	mutation *ReviewSessionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ReviewSessionEventCreate) SetSequence(v int64) *ReviewSessionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ReviewSessionEventCreate) SetTimestamp(v time.Time) *ReviewSessionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ReviewSessionEventCreate) SetNillableTimestamp(v *time.Time) *ReviewSessionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ReviewSessionEventCreate) SetSessionID(v string) *ReviewSessionEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *ReviewSessionEventCreate) SetAction(v string) *ReviewSessionEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetTool sets the "tool" field.
func (_c *ReviewSessionEventCreate) SetTool(v string) *ReviewSessionEventCreate {
	_c.mutation.SetTool(v)
	return _c
}

// SetNillableTool sets the "tool" field if the given value is not nil.
func (_c *ReviewSessionEventCreate) SetNillableTool(v *string) *ReviewSessionEventCreate {
	if v != nil {
		_c.SetTool(*v)
	}
	return _c
}

// SetSourcePath sets the "source_path" field.
func (_c *ReviewSessionEventCreate) SetSourcePath(v string) *ReviewSessionEventCreate {
	_c.mutation.SetSourcePath(v)
	return _c
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_c *ReviewSessionEventCreate) SetNillableSourcePath(v *string) *ReviewSessionEventCreate {
	if v != nil {
		_c.SetSourcePath(*v)
	}
	return _c
}

// SetConceptCount sets the "concept_count" field.
func (_c *ReviewSessionEventCreate) SetConceptCount(v int) *ReviewSessionEventCreate {
	_c.mutation.SetConceptCount(v)
	return _c
}

// SetNillableConceptCount sets the "concept_count" field if the given value is not nil.
func (_c *ReviewSessionEventCreate) SetNillableConceptCount(v *int) *ReviewSessionEventCreate {
	if v != nil {
		_c.SetConceptCount(*v)
	}
	return _c
}

// SetQuizzesGenerated sets the "quizzes_generated" field.
func (_c *ReviewSessionEventCreate) SetQuizzesGenerated(v int) *ReviewSessionEventCreate {
	_c.mutation.SetQuizzesGenerated(v)
	return _c
}

// SetNillableQuizzesGenerated sets the "quizzes_generated" field if the given value is not nil.
func (_c *ReviewSessionEventCreate) SetNillableQuizzesGenerated(v *int) *ReviewSessionEventCreate {
	if v != nil {
		_c.SetQuizzesGenerated(*v)
	}
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *ReviewSessionEventCreate) SetCorrectAnswers(v int) *ReviewSessionEventCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_c *ReviewSessionEventCreate) SetNillableCorrectAnswers(v *int) *ReviewSessionEventCreate {
	if v != nil {
		_c.SetCorrectAnswers(*v)
	}
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *ReviewSessionEventCreate) SetDurationSecs(v int) *ReviewSessionEventCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *ReviewSessionEventCreate) SetNillableDurationSecs(v *int) *ReviewSessionEventCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// Mutation returns the ReviewSessionEventMutation object of the builder.
func (_c *ReviewSessionEventCreate) Mutation() *ReviewSessionEventMutation {
	return _c.mutation
}

// Save creates the ReviewSessionEvent in the database.
func (_c *ReviewSessionEventCreate) Save(ctx context.Context) (*ReviewSessionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewSessionEventCreate) SaveX(ctx context.Context) *ReviewSessionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewSessionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewSessionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewSessionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := reviewsessionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Tool(); !ok {
		v := reviewsessionevent.DefaultTool
		_c.mutation.SetTool(v)
	}
	if _, ok := _c.mutation.SourcePath(); !ok {
		v := reviewsessionevent.DefaultSourcePath
		_c.mutation.SetSourcePath(v)
	}
	if _, ok := _c.mutation.ConceptCount(); !ok {
		v := reviewsessionevent.DefaultConceptCount
		_c.mutation.SetConceptCount(v)
	}
	if _, ok := _c.mutation.QuizzesGenerated(); !ok {
		v := reviewsessionevent.DefaultQuizzesGenerated
		_c.mutation.SetQuizzesGenerated(v)
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		v := reviewsessionevent.DefaultCorrectAnswers
		_c.mutation.SetCorrectAnswers(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := reviewsessionevent.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewSessionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ReviewSessionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ReviewSessionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ReviewSessionEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := reviewsessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ReviewSessionEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "ReviewSessionEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := reviewsessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ReviewSessionEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Tool(); !ok {
		return &ValidationError{Name: "tool", err: errors.New(`ent: missing required field "ReviewSessionEvent.tool"`)}
	}
	if _, ok := _c.mutation.SourcePath(); !ok {
		return &ValidationError{Name: "source_path", err: errors.New(`ent: missing required field "ReviewSessionEvent.source_path"`)}
	}
	if _, ok := _c.mutation.ConceptCount(); !ok {
		return &ValidationError{Name: "concept_count", err: errors.New(`ent: missing required field "ReviewSessionEvent.concept_count"`)}
	}
	if _, ok := _c.mutation.QuizzesGenerated(); !ok {
		return &ValidationError{Name: "quizzes_generated", err: errors.New(`ent: missing required field "ReviewSessionEvent.quizzes_generated"`)}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "ReviewSessionEvent.correct_answers"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "ReviewSessionEvent.duration_secs"`)}
	}
	return nil
}

func (_c *ReviewSessionEventCreate) sqlSave(ctx context.Context) (*ReviewSessionEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReviewSessionEventCreate) createSpec() (*ReviewSessionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewSessionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewsessionevent.Table, sqlgraph.NewFieldSpec(reviewsessionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(reviewsessionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(reviewsessionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(reviewsessionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(reviewsessionevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Tool(); ok {
		_spec.SetField(reviewsessionevent.FieldTool, field.TypeString, value)
		_node.Tool = value
	}
	if value, ok := _c.mutation.SourcePath(); ok {
		_spec.SetField(reviewsessionevent.FieldSourcePath, field.TypeString, value)
		_node.SourcePath = value
	}
	if value, ok := _c.mutation.ConceptCount(); ok {
		_spec.SetField(reviewsessionevent.FieldConceptCount, field.TypeInt, value)
		_node.ConceptCount = value
	}
	if value, ok := _c.mutation.QuizzesGenerated(); ok {
		_spec.SetField(reviewsessionevent.FieldQuizzesGenerated, field.TypeInt, value)
		_node.QuizzesGenerated = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(reviewsessionevent.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(reviewsessionevent.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	return _node, _spec
}

// ReviewSessionEventCreateBulk is the builder for creating many ReviewSessionEvent entities in bulk.
type ReviewSessionEventCreateBulk struct {
	config
	err      error
	builders []*ReviewSessionEventCreate
}

// Save creates the ReviewSessionEvent entities in the database.
func (_c *ReviewSessionEventCreateBulk) Save(ctx context.Context) ([]*ReviewSessionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewSessionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewSessionEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ReviewSessionEventCreateBulk) SaveX(ctx context.Context) []*ReviewSessionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewSessionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewSessionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
