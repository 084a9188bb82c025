// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charterdesk.io/charterdesk/ent/addendum"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// AddendumCreate is the builder for creating a Addendum entity.
type AddendumCreate struct {
	config
	mutation *AddendumMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AddendumCreate) SetCreatedAt(v time.Time) *AddendumCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AddendumCreate) SetNillableCreatedAt(v *time.Time) *AddendumCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AddendumCreate) SetUpdatedAt(v time.Time) *AddendumCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AddendumCreate) SetNillableUpdatedAt(v *time.Time) *AddendumCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetAddendumNumber sets the "addendum_number" field.
func (_c *AddendumCreate) SetAddendumNumber(v string) *AddendumCreate {
	_c.mutation.SetAddendumNumber(v)
	return _c
}

// SetContractID sets the "contract_id" field.
func (_c *AddendumCreate) SetContractID(v string) *AddendumCreate {
	_c.mutation.SetContractID(v)
	return _c
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_c *AddendumCreate) SetNillableContractID(v *string) *AddendumCreate {
	if v != nil {
		_c.SetContractID(*v)
	}
	return _c
}

// SetRecapID sets the "recap_id" field.
func (_c *AddendumCreate) SetRecapID(v string) *AddendumCreate {
	_c.mutation.SetRecapID(v)
	return _c
}

// SetNillableRecapID sets the "recap_id" field if the given value is not nil.
func (_c *AddendumCreate) SetNillableRecapID(v *string) *AddendumCreate {
	if v != nil {
		_c.SetRecapID(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *AddendumCreate) SetDescription(v string) *AddendumCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *AddendumCreate) SetNillableDescription(v *string) *AddendumCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AddendumCreate) SetStatus(v addendum.Status) *AddendumCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AddendumCreate) SetNillableStatus(v *addendum.Status) *AddendumCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *AddendumCreate) SetCreatedBy(v string) *AddendumCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetID sets the "id" field.
func (_c *AddendumCreate) SetID(v string) *AddendumCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AddendumMutation object of the builder.
func (_c *AddendumCreate) Mutation() *AddendumMutation {
	return _c.mutation
}

// Save creates the Addendum in the database.
func (_c *AddendumCreate) Save(ctx context.Context) (*Addendum, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AddendumCreate) SaveX(ctx context.Context) *Addendum {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AddendumCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AddendumCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AddendumCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := addendum.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := addendum.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := addendum.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AddendumCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Addendum.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Addendum.updated_at"`)}
	}
	if _, ok := _c.mutation.AddendumNumber(); !ok {
		return &ValidationError{Name: "addendum_number", err: errors.New(`ent: missing required field "Addendum.addendum_number"`)}
	}
	if v, ok := _c.mutation.AddendumNumber(); ok {
		if err := addendum.AddendumNumberValidator(v); err != nil {
			return &ValidationError{Name: "addendum_number", err: fmt.Errorf(`ent: validator failed for field "Addendum.addendum_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Addendum.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := addendum.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Addendum.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "Addendum.created_by"`)}
	}
	if v, ok := _c.mutation.CreatedBy(); ok {
		if err := addendum.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Addendum.created_by": %w`, err)}
		}
	}
	return nil
}

func (_c *AddendumCreate) sqlSave(ctx context.Context) (*Addendum, error) {
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
			return nil, fmt.Errorf("unexpected Addendum.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AddendumCreate) createSpec() (*Addendum, *sqlgraph.CreateSpec) {
	var (
		_node = &Addendum{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(addendum.Table, sqlgraph.NewFieldSpec(addendum.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(addendum.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(addendum.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.AddendumNumber(); ok {
		_spec.SetField(addendum.FieldAddendumNumber, field.TypeString, value)
		_node.AddendumNumber = value
	}
	if value, ok := _c.mutation.ContractID(); ok {
		_spec.SetField(addendum.FieldContractID, field.TypeString, value)
		_node.ContractID = value
	}
	if value, ok := _c.mutation.RecapID(); ok {
		_spec.SetField(addendum.FieldRecapID, field.TypeString, value)
		_node.RecapID = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(addendum.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(addendum.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(addendum.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	return _node, _spec
}

// AddendumCreateBulk is the builder for creating many Addendum entities in bulk.
type AddendumCreateBulk struct {
	config
	err      error
	builders []*AddendumCreate
}

// Save creates the Addendum entities in the database.
func (_c *AddendumCreateBulk) Save(ctx context.Context) ([]*Addendum, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Addendum, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AddendumMutation)
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
func (_c *AddendumCreateBulk) SaveX(ctx context.Context) []*Addendum {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AddendumCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AddendumCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
