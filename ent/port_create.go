// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charterdesk.io/charterdesk/ent/port"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// PortCreate is the builder for creating a Port entity.
type PortCreate struct {
	config
	mutation *PortMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *PortCreate) SetCreatedAt(v time.Time) *PortCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PortCreate) SetNillableCreatedAt(v *time.Time) *PortCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PortCreate) SetUpdatedAt(v time.Time) *PortCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PortCreate) SetNillableUpdatedAt(v *time.Time) *PortCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *PortCreate) SetName(v string) *PortCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCountry sets the "country" field.
func (_c *PortCreate) SetCountry(v string) *PortCreate {
	_c.mutation.SetCountry(v)
	return _c
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_c *PortCreate) SetNillableCountry(v *string) *PortCreate {
	if v != nil {
		_c.SetCountry(*v)
	}
	return _c
}

// SetUnlocode sets the "unlocode" field.
func (_c *PortCreate) SetUnlocode(v string) *PortCreate {
	_c.mutation.SetUnlocode(v)
	return _c
}

// SetNillableUnlocode sets the "unlocode" field if the given value is not nil.
func (_c *PortCreate) SetNillableUnlocode(v *string) *PortCreate {
	if v != nil {
		_c.SetUnlocode(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *PortCreate) SetActive(v bool) *PortCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *PortCreate) SetNillableActive(v *bool) *PortCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PortCreate) SetID(v string) *PortCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PortMutation object of the builder.
func (_c *PortCreate) Mutation() *PortMutation {
	return _c.mutation
}

// Save creates the Port in the database.
func (_c *PortCreate) Save(ctx context.Context) (*Port, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PortCreate) SaveX(ctx context.Context) *Port {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PortCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PortCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PortCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := port.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := port.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := port.DefaultActive
		_c.mutation.SetActive(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PortCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Port.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Port.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Port.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := port.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Port.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Port.active"`)}
	}
	return nil
}

func (_c *PortCreate) sqlSave(ctx context.Context) (*Port, error) {
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
			return nil, fmt.Errorf("unexpected Port.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PortCreate) createSpec() (*Port, *sqlgraph.CreateSpec) {
	var (
		_node = &Port{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(port.Table, sqlgraph.NewFieldSpec(port.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(port.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(port.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(port.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Country(); ok {
		_spec.SetField(port.FieldCountry, field.TypeString, value)
		_node.Country = value
	}
	if value, ok := _c.mutation.Unlocode(); ok {
		_spec.SetField(port.FieldUnlocode, field.TypeString, value)
		_node.Unlocode = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(port.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	return _node, _spec
}

// PortCreateBulk is the builder for creating many Port entities in bulk.
type PortCreateBulk struct {
	config
	err      error
	builders []*PortCreate
}

// Save creates the Port entities in the database.
func (_c *PortCreateBulk) Save(ctx context.Context) ([]*Port, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Port, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PortMutation)
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
func (_c *PortCreateBulk) SaveX(ctx context.Context) []*Port {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PortCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PortCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
