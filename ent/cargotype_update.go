// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charterdesk.io/charterdesk/ent/cargotype"
	"charterdesk.io/charterdesk/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// CargoTypeUpdate is the builder for updating CargoType entities.
type CargoTypeUpdate struct {
	config
	hooks    []Hook
	mutation *CargoTypeMutation
}

// Where appends a list predicates to the CargoTypeUpdate builder.
func (_u *CargoTypeUpdate) Where(ps ...predicate.CargoType) *CargoTypeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CargoTypeUpdate) SetUpdatedAt(v time.Time) *CargoTypeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *CargoTypeUpdate) SetName(v string) *CargoTypeUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CargoTypeUpdate) SetNillableName(v *string) *CargoTypeUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *CargoTypeUpdate) SetCategory(v string) *CargoTypeUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CargoTypeUpdate) SetNillableCategory(v *string) *CargoTypeUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *CargoTypeUpdate) ClearCategory() *CargoTypeUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetActive sets the "active" field.
func (_u *CargoTypeUpdate) SetActive(v bool) *CargoTypeUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *CargoTypeUpdate) SetNillableActive(v *bool) *CargoTypeUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the CargoTypeMutation object of the builder.
func (_u *CargoTypeUpdate) Mutation() *CargoTypeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CargoTypeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CargoTypeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CargoTypeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CargoTypeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CargoTypeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cargotype.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CargoTypeUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := cargotype.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "CargoType.name": %w`, err)}
		}
	}
	return nil
}

func (_u *CargoTypeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cargotype.Table, cargotype.Columns, sqlgraph.NewFieldSpec(cargotype.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(cargotype.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(cargotype.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(cargotype.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(cargotype.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(cargotype.FieldActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cargotype.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CargoTypeUpdateOne is the builder for updating a single CargoType entity.
type CargoTypeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CargoTypeMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CargoTypeUpdateOne) SetUpdatedAt(v time.Time) *CargoTypeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *CargoTypeUpdateOne) SetName(v string) *CargoTypeUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CargoTypeUpdateOne) SetNillableName(v *string) *CargoTypeUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *CargoTypeUpdateOne) SetCategory(v string) *CargoTypeUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CargoTypeUpdateOne) SetNillableCategory(v *string) *CargoTypeUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *CargoTypeUpdateOne) ClearCategory() *CargoTypeUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetActive sets the "active" field.
func (_u *CargoTypeUpdateOne) SetActive(v bool) *CargoTypeUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *CargoTypeUpdateOne) SetNillableActive(v *bool) *CargoTypeUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the CargoTypeMutation object of the builder.
func (_u *CargoTypeUpdateOne) Mutation() *CargoTypeMutation {
	return _u.mutation
}

// Where appends a list predicates to the CargoTypeUpdate builder.
func (_u *CargoTypeUpdateOne) Where(ps ...predicate.CargoType) *CargoTypeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CargoTypeUpdateOne) Select(field string, fields ...string) *CargoTypeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CargoType entity.
func (_u *CargoTypeUpdateOne) Save(ctx context.Context) (*CargoType, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CargoTypeUpdateOne) SaveX(ctx context.Context) *CargoType {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CargoTypeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CargoTypeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CargoTypeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := cargotype.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CargoTypeUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := cargotype.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "CargoType.name": %w`, err)}
		}
	}
	return nil
}

func (_u *CargoTypeUpdateOne) sqlSave(ctx context.Context) (_node *CargoType, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cargotype.Table, cargotype.Columns, sqlgraph.NewFieldSpec(cargotype.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CargoType.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cargotype.FieldID)
		for _, f := range fields {
			if !cargotype.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cargotype.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(cargotype.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(cargotype.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(cargotype.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(cargotype.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(cargotype.FieldActive, field.TypeBool, value)
	}
	_node = &CargoType{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cargotype.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
