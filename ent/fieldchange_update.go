// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"charterdesk.io/charterdesk/ent/fieldchange"
	"charterdesk.io/charterdesk/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// FieldChangeUpdate is the builder for updating FieldChange entities.
type FieldChangeUpdate struct {
	config
	hooks    []Hook
	mutation *FieldChangeMutation
}

// Where appends a list predicates to the FieldChangeUpdate builder.
func (_u *FieldChangeUpdate) Where(ps ...predicate.FieldChange) *FieldChangeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the FieldChangeMutation object of the builder.
func (_u *FieldChangeUpdate) Mutation() *FieldChangeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FieldChangeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FieldChangeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FieldChangeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FieldChangeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *FieldChangeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(fieldchange.Table, fieldchange.Columns, sqlgraph.NewFieldSpec(fieldchange.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.OldValueCleared() {
		_spec.ClearField(fieldchange.FieldOldValue, field.TypeString)
	}
	if _u.mutation.NewValueCleared() {
		_spec.ClearField(fieldchange.FieldNewValue, field.TypeString)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(fieldchange.FieldUserID, field.TypeString)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(fieldchange.FieldReason, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fieldchange.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FieldChangeUpdateOne is the builder for updating a single FieldChange entity.
type FieldChangeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FieldChangeMutation
}

// Mutation returns the FieldChangeMutation object of the builder.
func (_u *FieldChangeUpdateOne) Mutation() *FieldChangeMutation {
	return _u.mutation
}

// Where appends a list predicates to the FieldChangeUpdate builder.
func (_u *FieldChangeUpdateOne) Where(ps ...predicate.FieldChange) *FieldChangeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FieldChangeUpdateOne) Select(field string, fields ...string) *FieldChangeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FieldChange entity.
func (_u *FieldChangeUpdateOne) Save(ctx context.Context) (*FieldChange, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FieldChangeUpdateOne) SaveX(ctx context.Context) *FieldChange {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FieldChangeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FieldChangeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *FieldChangeUpdateOne) sqlSave(ctx context.Context) (_node *FieldChange, err error) {
	_spec := sqlgraph.NewUpdateSpec(fieldchange.Table, fieldchange.Columns, sqlgraph.NewFieldSpec(fieldchange.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FieldChange.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fieldchange.FieldID)
		for _, f := range fields {
			if !fieldchange.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fieldchange.FieldID {
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
	if _u.mutation.OldValueCleared() {
		_spec.ClearField(fieldchange.FieldOldValue, field.TypeString)
	}
	if _u.mutation.NewValueCleared() {
		_spec.ClearField(fieldchange.FieldNewValue, field.TypeString)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(fieldchange.FieldUserID, field.TypeString)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(fieldchange.FieldReason, field.TypeString)
	}
	_node = &FieldChange{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fieldchange.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
