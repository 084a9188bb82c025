// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"charterdesk.io/charterdesk/ent/addendum"
	"charterdesk.io/charterdesk/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// AddendumDelete is the builder for deleting a Addendum entity.
type AddendumDelete struct {
	config
	hooks    []Hook
	mutation *AddendumMutation
}

// Where appends a list predicates to the AddendumDelete builder.
func (_d *AddendumDelete) Where(ps ...predicate.Addendum) *AddendumDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AddendumDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AddendumDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AddendumDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(addendum.Table, sqlgraph.NewFieldSpec(addendum.FieldID, field.TypeString))
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

// AddendumDeleteOne is the builder for deleting a single Addendum entity.
type AddendumDeleteOne struct {
	_d *AddendumDelete
}

// Where appends a list predicates to the AddendumDelete builder.
func (_d *AddendumDeleteOne) Where(ps ...predicate.Addendum) *AddendumDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AddendumDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{addendum.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AddendumDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
