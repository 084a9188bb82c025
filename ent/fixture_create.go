// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charterdesk.io/charterdesk/ent/contract"
	"charterdesk.io/charterdesk/ent/fixture"
	"charterdesk.io/charterdesk/ent/order"
	"charterdesk.io/charterdesk/ent/recapmanager"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// FixtureCreate is the builder for creating a Fixture entity.
type FixtureCreate struct {
	config
	mutation *FixtureMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *FixtureCreate) SetCreatedAt(v time.Time) *FixtureCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FixtureCreate) SetNillableCreatedAt(v *time.Time) *FixtureCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FixtureCreate) SetUpdatedAt(v time.Time) *FixtureCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FixtureCreate) SetNillableUpdatedAt(v *time.Time) *FixtureCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetFixtureNumber sets the "fixture_number" field.
func (_c *FixtureCreate) SetFixtureNumber(v string) *FixtureCreate {
	_c.mutation.SetFixtureNumber(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *FixtureCreate) SetStatus(v fixture.Status) *FixtureCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *FixtureCreate) SetNillableStatus(v *fixture.Status) *FixtureCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetLastUpdated sets the "last_updated" field.
func (_c *FixtureCreate) SetLastUpdated(v time.Time) *FixtureCreate {
	_c.mutation.SetLastUpdated(v)
	return _c
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_c *FixtureCreate) SetNillableLastUpdated(v *time.Time) *FixtureCreate {
	if v != nil {
		_c.SetLastUpdated(*v)
	}
	return _c
}

// SetSearchText sets the "search_text" field.
func (_c *FixtureCreate) SetSearchText(v string) *FixtureCreate {
	_c.mutation.SetSearchText(v)
	return _c
}

// SetNillableSearchText sets the "search_text" field if the given value is not nil.
func (_c *FixtureCreate) SetNillableSearchText(v *string) *FixtureCreate {
	if v != nil {
		_c.SetSearchText(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FixtureCreate) SetID(v string) *FixtureCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetOrderID sets the "order" edge to the Order entity by ID.
func (_c *FixtureCreate) SetOrderID(id string) *FixtureCreate {
	_c.mutation.SetOrderID(id)
	return _c
}

// SetNillableOrderID sets the "order" edge to the Order entity by ID if the given value is not nil.
func (_c *FixtureCreate) SetNillableOrderID(id *string) *FixtureCreate {
	if id != nil {
		_c = _c.SetOrderID(*id)
	}
	return _c
}

// SetOrder sets the "order" edge to the Order entity.
func (_c *FixtureCreate) SetOrder(v *Order) *FixtureCreate {
	return _c.SetOrderID(v.ID)
}

// AddContractIDs adds the "contracts" edge to the Contract entity by IDs.
func (_c *FixtureCreate) AddContractIDs(ids ...string) *FixtureCreate {
	_c.mutation.AddContractIDs(ids...)
	return _c
}

// AddContracts adds the "contracts" edges to the Contract entity.
func (_c *FixtureCreate) AddContracts(v ...*Contract) *FixtureCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddContractIDs(ids...)
}

// AddRecapIDs adds the "recaps" edge to the RecapManager entity by IDs.
func (_c *FixtureCreate) AddRecapIDs(ids ...string) *FixtureCreate {
	_c.mutation.AddRecapIDs(ids...)
	return _c
}

// AddRecaps adds the "recaps" edges to the RecapManager entity.
func (_c *FixtureCreate) AddRecaps(v ...*RecapManager) *FixtureCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRecapIDs(ids...)
}

// Mutation returns the FixtureMutation object of the builder.
func (_c *FixtureCreate) Mutation() *FixtureMutation {
	return _c.mutation
}

// Save creates the Fixture in the database.
func (_c *FixtureCreate) Save(ctx context.Context) (*Fixture, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FixtureCreate) SaveX(ctx context.Context) *Fixture {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FixtureCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FixtureCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FixtureCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := fixture.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := fixture.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := fixture.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FixtureCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Fixture.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Fixture.updated_at"`)}
	}
	if _, ok := _c.mutation.FixtureNumber(); !ok {
		return &ValidationError{Name: "fixture_number", err: errors.New(`ent: missing required field "Fixture.fixture_number"`)}
	}
	if v, ok := _c.mutation.FixtureNumber(); ok {
		if err := fixture.FixtureNumberValidator(v); err != nil {
			return &ValidationError{Name: "fixture_number", err: fmt.Errorf(`ent: validator failed for field "Fixture.fixture_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Fixture.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := fixture.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Fixture.status": %w`, err)}
		}
	}
	return nil
}

func (_c *FixtureCreate) sqlSave(ctx context.Context) (*Fixture, error) {
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
			return nil, fmt.Errorf("unexpected Fixture.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FixtureCreate) createSpec() (*Fixture, *sqlgraph.CreateSpec) {
	var (
		_node = &Fixture{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fixture.Table, sqlgraph.NewFieldSpec(fixture.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(fixture.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(fixture.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.FixtureNumber(); ok {
		_spec.SetField(fixture.FieldFixtureNumber, field.TypeString, value)
		_node.FixtureNumber = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(fixture.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.LastUpdated(); ok {
		_spec.SetField(fixture.FieldLastUpdated, field.TypeTime, value)
		_node.LastUpdated = &value
	}
	if value, ok := _c.mutation.SearchText(); ok {
		_spec.SetField(fixture.FieldSearchText, field.TypeString, value)
		_node.SearchText = &value
	}
	if nodes := _c.mutation.OrderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fixture.OrderTable,
			Columns: []string{fixture.OrderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.order_fixtures = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ContractsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fixture.ContractsTable,
			Columns: []string{fixture.ContractsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RecapsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fixture.RecapsTable,
			Columns: []string{fixture.RecapsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recapmanager.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FixtureCreateBulk is the builder for creating many Fixture entities in bulk.
type FixtureCreateBulk struct {
	config
	err      error
	builders []*FixtureCreate
}

// Save creates the Fixture entities in the database.
func (_c *FixtureCreateBulk) Save(ctx context.Context) ([]*Fixture, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Fixture, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FixtureMutation)
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
func (_c *FixtureCreateBulk) SaveX(ctx context.Context) []*Fixture {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FixtureCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FixtureCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
