// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dnorman/learnchain/ent/predicate"
	"github.com/dnorman/learnchain/ent/reviewsessionevent"
)

// ReviewSessionEventDelete is the builder for deleting a ReviewSessionEvent entity.
type ReviewSessionEventDelete struct {
	config
	hooks    []Hook
	mutation *ReviewSessionEventMutation
}

// Where appends a list predicates to the ReviewSessionEventDelete builder.
func (_d *ReviewSessionEventDelete) Where(ps ...predicate.ReviewSessionEvent) *ReviewSessionEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ReviewSessionEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ReviewSessionEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ReviewSessionEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(reviewsessionevent.Table, sqlgraph.NewFieldSpec(reviewsessionevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ReviewSessionEventDeleteOne is the builder for deleting a single ReviewSessionEvent entity.
type ReviewSessionEventDeleteOne struct {
	_d *ReviewSessionEventDelete
}

// Where appends a list predicates to the ReviewSessionEventDelete builder.
func (_d *ReviewSessionEventDeleteOne) Where(ps ...predicate.ReviewSessionEvent) *ReviewSessionEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ReviewSessionEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{reviewsessionevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ReviewSessionEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
