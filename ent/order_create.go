// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charterdesk.io/charterdesk/ent/fixture"
	"charterdesk.io/charterdesk/ent/negotiation"
	"charterdesk.io/charterdesk/ent/order"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// OrderCreate is the builder for creating a Order entity.
type OrderCreate struct {
	config
	mutation *OrderMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *OrderCreate) SetCreatedAt(v time.Time) *OrderCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OrderCreate) SetNillableCreatedAt(v *time.Time) *OrderCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *OrderCreate) SetUpdatedAt(v time.Time) *OrderCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *OrderCreate) SetNillableUpdatedAt(v *time.Time) *OrderCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetOrderNumber sets the "order_number" field.
func (_c *OrderCreate) SetOrderNumber(v string) *OrderCreate {
	_c.mutation.SetOrderNumber(v)
	return _c
}

// SetOrganizationID sets the "organization_id" field.
func (_c *OrderCreate) SetOrganizationID(v string) *OrderCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_c *OrderCreate) SetNillableOrganizationID(v *string) *OrderCreate {
	if v != nil {
		_c.SetOrganizationID(*v)
	}
	return _c
}

// SetMarket sets the "market" field.
func (_c *OrderCreate) SetMarket(v order.Market) *OrderCreate {
	_c.mutation.SetMarket(v)
	return _c
}

// SetNillableMarket sets the "market" field if the given value is not nil.
func (_c *OrderCreate) SetNillableMarket(v *order.Market) *OrderCreate {
	if v != nil {
		_c.SetMarket(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *OrderCreate) SetStatus(v order.Status) *OrderCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *OrderCreate) SetNillableStatus(v *order.Status) *OrderCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCargoTypeID sets the "cargo_type_id" field.
func (_c *OrderCreate) SetCargoTypeID(v string) *OrderCreate {
	_c.mutation.SetCargoTypeID(v)
	return _c
}

// SetNillableCargoTypeID sets the "cargo_type_id" field if the given value is not nil.
func (_c *OrderCreate) SetNillableCargoTypeID(v *string) *OrderCreate {
	if v != nil {
		_c.SetCargoTypeID(*v)
	}
	return _c
}

// SetLoadPortID sets the "load_port_id" field.
func (_c *OrderCreate) SetLoadPortID(v string) *OrderCreate {
	_c.mutation.SetLoadPortID(v)
	return _c
}

// SetNillableLoadPortID sets the "load_port_id" field if the given value is not nil.
func (_c *OrderCreate) SetNillableLoadPortID(v *string) *OrderCreate {
	if v != nil {
		_c.SetLoadPortID(*v)
	}
	return _c
}

// SetDischargePortID sets the "discharge_port_id" field.
func (_c *OrderCreate) SetDischargePortID(v string) *OrderCreate {
	_c.mutation.SetDischargePortID(v)
	return _c
}

// SetNillableDischargePortID sets the "discharge_port_id" field if the given value is not nil.
func (_c *OrderCreate) SetNillableDischargePortID(v *string) *OrderCreate {
	if v != nil {
		_c.SetDischargePortID(*v)
	}
	return _c
}

// SetLaycanStart sets the "laycan_start" field.
func (_c *OrderCreate) SetLaycanStart(v time.Time) *OrderCreate {
	_c.mutation.SetLaycanStart(v)
	return _c
}

// SetNillableLaycanStart sets the "laycan_start" field if the given value is not nil.
func (_c *OrderCreate) SetNillableLaycanStart(v *time.Time) *OrderCreate {
	if v != nil {
		_c.SetLaycanStart(*v)
	}
	return _c
}

// SetLaycanEnd sets the "laycan_end" field.
func (_c *OrderCreate) SetLaycanEnd(v time.Time) *OrderCreate {
	_c.mutation.SetLaycanEnd(v)
	return _c
}

// SetNillableLaycanEnd sets the "laycan_end" field if the given value is not nil.
func (_c *OrderCreate) SetNillableLaycanEnd(v *time.Time) *OrderCreate {
	if v != nil {
		_c.SetLaycanEnd(*v)
	}
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *OrderCreate) SetQuantity(v float64) *OrderCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_c *OrderCreate) SetNillableQuantity(v *float64) *OrderCreate {
	if v != nil {
		_c.SetQuantity(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *OrderCreate) SetNotes(v string) *OrderCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *OrderCreate) SetNillableNotes(v *string) *OrderCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *OrderCreate) SetCreatedBy(v string) *OrderCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetID sets the "id" field.
func (_c *OrderCreate) SetID(v string) *OrderCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddNegotiationIDs adds the "negotiations" edge to the Negotiation entity by IDs.
func (_c *OrderCreate) AddNegotiationIDs(ids ...string) *OrderCreate {
	_c.mutation.AddNegotiationIDs(ids...)
	return _c
}

// AddNegotiations adds the "negotiations" edges to the Negotiation entity.
func (_c *OrderCreate) AddNegotiations(v ...*Negotiation) *OrderCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddNegotiationIDs(ids...)
}

// AddFixtureIDs adds the "fixtures" edge to the Fixture entity by IDs.
func (_c *OrderCreate) AddFixtureIDs(ids ...string) *OrderCreate {
	_c.mutation.AddFixtureIDs(ids...)
	return _c
}

// AddFixtures adds the "fixtures" edges to the Fixture entity.
func (_c *OrderCreate) AddFixtures(v ...*Fixture) *OrderCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFixtureIDs(ids...)
}

// Mutation returns the OrderMutation object of the builder.
func (_c *OrderCreate) Mutation() *OrderMutation {
	return _c.mutation
}

// Save creates the Order in the database.
func (_c *OrderCreate) Save(ctx context.Context) (*Order, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrderCreate) SaveX(ctx context.Context) *Order {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OrderCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := order.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := order.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Market(); !ok {
		v := order.DefaultMarket
		_c.mutation.SetMarket(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := order.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrderCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Order.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Order.updated_at"`)}
	}
	if _, ok := _c.mutation.OrderNumber(); !ok {
		return &ValidationError{Name: "order_number", err: errors.New(`ent: missing required field "Order.order_number"`)}
	}
	if v, ok := _c.mutation.OrderNumber(); ok {
		if err := order.OrderNumberValidator(v); err != nil {
			return &ValidationError{Name: "order_number", err: fmt.Errorf(`ent: validator failed for field "Order.order_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Market(); !ok {
		return &ValidationError{Name: "market", err: errors.New(`ent: missing required field "Order.market"`)}
	}
	if v, ok := _c.mutation.Market(); ok {
		if err := order.MarketValidator(v); err != nil {
			return &ValidationError{Name: "market", err: fmt.Errorf(`ent: validator failed for field "Order.market": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Order.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := order.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Order.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "Order.created_by"`)}
	}
	if v, ok := _c.mutation.CreatedBy(); ok {
		if err := order.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Order.created_by": %w`, err)}
		}
	}
	return nil
}

func (_c *OrderCreate) sqlSave(ctx context.Context) (*Order, error) {
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
			return nil, fmt.Errorf("unexpected Order.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OrderCreate) createSpec() (*Order, *sqlgraph.CreateSpec) {
	var (
		_node = &Order{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(order.Table, sqlgraph.NewFieldSpec(order.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(order.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(order.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.OrderNumber(); ok {
		_spec.SetField(order.FieldOrderNumber, field.TypeString, value)
		_node.OrderNumber = value
	}
	if value, ok := _c.mutation.OrganizationID(); ok {
		_spec.SetField(order.FieldOrganizationID, field.TypeString, value)
		_node.OrganizationID = value
	}
	if value, ok := _c.mutation.Market(); ok {
		_spec.SetField(order.FieldMarket, field.TypeEnum, value)
		_node.Market = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(order.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CargoTypeID(); ok {
		_spec.SetField(order.FieldCargoTypeID, field.TypeString, value)
		_node.CargoTypeID = value
	}
	if value, ok := _c.mutation.LoadPortID(); ok {
		_spec.SetField(order.FieldLoadPortID, field.TypeString, value)
		_node.LoadPortID = value
	}
	if value, ok := _c.mutation.DischargePortID(); ok {
		_spec.SetField(order.FieldDischargePortID, field.TypeString, value)
		_node.DischargePortID = value
	}
	if value, ok := _c.mutation.LaycanStart(); ok {
		_spec.SetField(order.FieldLaycanStart, field.TypeTime, value)
		_node.LaycanStart = &value
	}
	if value, ok := _c.mutation.LaycanEnd(); ok {
		_spec.SetField(order.FieldLaycanEnd, field.TypeTime, value)
		_node.LaycanEnd = &value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(order.FieldQuantity, field.TypeFloat64, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(order.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(order.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if nodes := _c.mutation.NegotiationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   order.NegotiationsTable,
			Columns: []string{order.NegotiationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(negotiation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FixturesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   order.FixturesTable,
			Columns: []string{order.FixturesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fixture.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OrderCreateBulk is the builder for creating many Order entities in bulk.
type OrderCreateBulk struct {
	config
	err      error
	builders []*OrderCreate
}

// Save creates the Order entities in the database.
func (_c *OrderCreateBulk) Save(ctx context.Context) ([]*Order, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Order, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrderMutation)
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
func (_c *OrderCreateBulk) SaveX(ctx context.Context) []*Order {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
