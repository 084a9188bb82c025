// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charterdesk.io/charterdesk/ent/port"
	"charterdesk.io/charterdesk/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// PortUpdate is the builder for updating Port entities.
type PortUpdate struct {
	config
	hooks    []Hook
	mutation *PortMutation
}

// Where appends a list predicates to the PortUpdate builder.
func (_u *PortUpdate) Where(ps ...predicate.Port) *PortUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PortUpdate) SetUpdatedAt(v time.Time) *PortUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *PortUpdate) SetName(v string) *PortUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PortUpdate) SetNillableName(v *string) *PortUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCountry sets the "country" field.
func (_u *PortUpdate) SetCountry(v string) *PortUpdate {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *PortUpdate) SetNillableCountry(v *string) *PortUpdate {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// ClearCountry clears the value of the "country" field.
func (_u *PortUpdate) ClearCountry() *PortUpdate {
	_u.mutation.ClearCountry()
	return _u
}

// SetUnlocode sets the "unlocode" field.
func (_u *PortUpdate) SetUnlocode(v string) *PortUpdate {
	_u.mutation.SetUnlocode(v)
	return _u
}

// SetNillableUnlocode sets the "unlocode" field if the given value is not nil.
func (_u *PortUpdate) SetNillableUnlocode(v *string) *PortUpdate {
	if v != nil {
		_u.SetUnlocode(*v)
	}
	return _u
}

// ClearUnlocode clears the value of the "unlocode" field.
func (_u *PortUpdate) ClearUnlocode() *PortUpdate {
	_u.mutation.ClearUnlocode()
	return _u
}

// SetActive sets the "active" field.
func (_u *PortUpdate) SetActive(v bool) *PortUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *PortUpdate) SetNillableActive(v *bool) *PortUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the PortMutation object of the builder.
func (_u *PortUpdate) Mutation() *PortMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PortUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PortUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PortUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PortUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PortUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := port.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PortUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := port.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Port.name": %w`, err)}
		}
	}
	return nil
}

func (_u *PortUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(port.Table, port.Columns, sqlgraph.NewFieldSpec(port.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(port.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(port.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(port.FieldCountry, field.TypeString, value)
	}
	if _u.mutation.CountryCleared() {
		_spec.ClearField(port.FieldCountry, field.TypeString)
	}
	if value, ok := _u.mutation.Unlocode(); ok {
		_spec.SetField(port.FieldUnlocode, field.TypeString, value)
	}
	if _u.mutation.UnlocodeCleared() {
		_spec.ClearField(port.FieldUnlocode, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(port.FieldActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{port.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PortUpdateOne is the builder for updating a single Port entity.
type PortUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PortMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PortUpdateOne) SetUpdatedAt(v time.Time) *PortUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *PortUpdateOne) SetName(v string) *PortUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PortUpdateOne) SetNillableName(v *string) *PortUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCountry sets the "country" field.
func (_u *PortUpdateOne) SetCountry(v string) *PortUpdateOne {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *PortUpdateOne) SetNillableCountry(v *string) *PortUpdateOne {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// ClearCountry clears the value of the "country" field.
func (_u *PortUpdateOne) ClearCountry() *PortUpdateOne {
	_u.mutation.ClearCountry()
	return _u
}

// SetUnlocode sets the "unlocode" field.
func (_u *PortUpdateOne) SetUnlocode(v string) *PortUpdateOne {
	_u.mutation.SetUnlocode(v)
	return _u
}

// SetNillableUnlocode sets the "unlocode" field if the given value is not nil.
func (_u *PortUpdateOne) SetNillableUnlocode(v *string) *PortUpdateOne {
	if v != nil {
		_u.SetUnlocode(*v)
	}
	return _u
}

// ClearUnlocode clears the value of the "unlocode" field.
func (_u *PortUpdateOne) ClearUnlocode() *PortUpdateOne {
	_u.mutation.ClearUnlocode()
	return _u
}

// SetActive sets the "active" field.
func (_u *PortUpdateOne) SetActive(v bool) *PortUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *PortUpdateOne) SetNillableActive(v *bool) *PortUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// Mutation returns the PortMutation object of the builder.
func (_u *PortUpdateOne) Mutation() *PortMutation {
	return _u.mutation
}

// Where appends a list predicates to the PortUpdate builder.
func (_u *PortUpdateOne) Where(ps ...predicate.Port) *PortUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PortUpdateOne) Select(field string, fields ...string) *PortUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Port entity.
func (_u *PortUpdateOne) Save(ctx context.Context) (*Port, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PortUpdateOne) SaveX(ctx context.Context) *Port {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PortUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PortUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PortUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := port.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PortUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := port.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Port.name": %w`, err)}
		}
	}
	return nil
}

func (_u *PortUpdateOne) sqlSave(ctx context.Context) (_node *Port, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(port.Table, port.Columns, sqlgraph.NewFieldSpec(port.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Port.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, port.FieldID)
		for _, f := range fields {
			if !port.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != port.FieldID {
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
		_spec.SetField(port.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(port.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(port.FieldCountry, field.TypeString, value)
	}
	if _u.mutation.CountryCleared() {
		_spec.ClearField(port.FieldCountry, field.TypeString)
	}
	if value, ok := _u.mutation.Unlocode(); ok {
		_spec.SetField(port.FieldUnlocode, field.TypeString, value)
	}
	if _u.mutation.UnlocodeCleared() {
		_spec.ClearField(port.FieldUnlocode, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(port.FieldActive, field.TypeBool, value)
	}
	_node = &Port{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{port.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
