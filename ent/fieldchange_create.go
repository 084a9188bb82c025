// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charterdesk.io/charterdesk/ent/fieldchange"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// FieldChangeCreate is the builder for creating a FieldChange entity.
type FieldChangeCreate struct {
	config
	mutation *FieldChangeMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *FieldChangeCreate) SetCreatedAt(v time.Time) *FieldChangeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FieldChangeCreate) SetNillableCreatedAt(v *time.Time) *FieldChangeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetEntityType sets the "entity_type" field.
func (_c *FieldChangeCreate) SetEntityType(v string) *FieldChangeCreate {
	_c.mutation.SetEntityType(v)
	return _c
}

// SetEntityID sets the "entity_id" field.
func (_c *FieldChangeCreate) SetEntityID(v string) *FieldChangeCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetFieldName sets the "field_name" field.
func (_c *FieldChangeCreate) SetFieldName(v string) *FieldChangeCreate {
	_c.mutation.SetFieldName(v)
	return _c
}

// SetOldValue sets the "old_value" field.
func (_c *FieldChangeCreate) SetOldValue(v string) *FieldChangeCreate {
	_c.mutation.SetOldValue(v)
	return _c
}

// SetNillableOldValue sets the "old_value" field if the given value is not nil.
func (_c *FieldChangeCreate) SetNillableOldValue(v *string) *FieldChangeCreate {
	if v != nil {
		_c.SetOldValue(*v)
	}
	return _c
}

// SetNewValue sets the "new_value" field.
func (_c *FieldChangeCreate) SetNewValue(v string) *FieldChangeCreate {
	_c.mutation.SetNewValue(v)
	return _c
}

// SetNillableNewValue sets the "new_value" field if the given value is not nil.
func (_c *FieldChangeCreate) SetNillableNewValue(v *string) *FieldChangeCreate {
	if v != nil {
		_c.SetNewValue(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *FieldChangeCreate) SetUserID(v string) *FieldChangeCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *FieldChangeCreate) SetNillableUserID(v *string) *FieldChangeCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *FieldChangeCreate) SetReason(v string) *FieldChangeCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *FieldChangeCreate) SetNillableReason(v *string) *FieldChangeCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FieldChangeCreate) SetID(v string) *FieldChangeCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the FieldChangeMutation object of the builder.
func (_c *FieldChangeCreate) Mutation() *FieldChangeMutation {
	return _c.mutation
}

// Save creates the FieldChange in the database.
func (_c *FieldChangeCreate) Save(ctx context.Context) (*FieldChange, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FieldChangeCreate) SaveX(ctx context.Context) *FieldChange {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FieldChangeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FieldChangeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FieldChangeCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := fieldchange.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FieldChangeCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FieldChange.created_at"`)}
	}
	if _, ok := _c.mutation.EntityType(); !ok {
		return &ValidationError{Name: "entity_type", err: errors.New(`ent: missing required field "FieldChange.entity_type"`)}
	}
	if v, ok := _c.mutation.EntityType(); ok {
		if err := fieldchange.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "FieldChange.entity_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`ent: missing required field "FieldChange.entity_id"`)}
	}
	if v, ok := _c.mutation.EntityID(); ok {
		if err := fieldchange.EntityIDValidator(v); err != nil {
			return &ValidationError{Name: "entity_id", err: fmt.Errorf(`ent: validator failed for field "FieldChange.entity_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FieldName(); !ok {
		return &ValidationError{Name: "field_name", err: errors.New(`ent: missing required field "FieldChange.field_name"`)}
	}
	if v, ok := _c.mutation.FieldName(); ok {
		if err := fieldchange.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "FieldChange.field_name": %w`, err)}
		}
	}
	return nil
}

func (_c *FieldChangeCreate) sqlSave(ctx context.Context) (*FieldChange, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected FieldChange.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FieldChangeCreate) createSpec() (*FieldChange, *sqlgraph.CreateSpec) {
	var (
		_node = &FieldChange{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fieldchange.Table, sqlgraph.NewFieldSpec(fieldchange.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(fieldchange.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.EntityType(); ok {
		_spec.SetField(fieldchange.FieldEntityType, field.TypeString, value)
		_node.EntityType = value
	}
	if value, ok := _c.mutation.EntityID(); ok {
		_spec.SetField(fieldchange.FieldEntityID, field.TypeString, value)
		_node.EntityID = value
	}
	if value, ok := _c.mutation.FieldName(); ok {
		_spec.SetField(fieldchange.FieldFieldName, field.TypeString, value)
		_node.FieldName = value
	}
	if value, ok := _c.mutation.OldValue(); ok {
		_spec.SetField(fieldchange.FieldOldValue, field.TypeString, value)
		_node.OldValue = &value
	}
	if value, ok := _c.mutation.NewValue(); ok {
		_spec.SetField(fieldchange.FieldNewValue, field.TypeString, value)
		_node.NewValue = &value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(fieldchange.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(fieldchange.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	return _node, _spec
}

// FieldChangeCreateBulk is the builder for creating many FieldChange entities in bulk.
type FieldChangeCreateBulk struct {
	config
	err      error
	builders []*FieldChangeCreate
}

// Save creates the FieldChange entities in the database.
func (_c *FieldChangeCreateBulk) Save(ctx context.Context) ([]*FieldChange, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FieldChange, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FieldChangeMutation)
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
func (_c *FieldChangeCreateBulk) SaveX(ctx context.Context) []*FieldChange {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FieldChangeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FieldChangeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
