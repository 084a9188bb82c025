// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charterdesk.io/charterdesk/ent/negotiation"
	"charterdesk.io/charterdesk/ent/order"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// NegotiationCreate is the builder for creating a Negotiation entity.
type NegotiationCreate struct {
	config
	mutation *NegotiationMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *NegotiationCreate) SetCreatedAt(v time.Time) *NegotiationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NegotiationCreate) SetNillableCreatedAt(v *time.Time) *NegotiationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *NegotiationCreate) SetUpdatedAt(v time.Time) *NegotiationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *NegotiationCreate) SetNillableUpdatedAt(v *time.Time) *NegotiationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetNegotiationNumber sets the "negotiation_number" field.
func (_c *NegotiationCreate) SetNegotiationNumber(v string) *NegotiationCreate {
	_c.mutation.SetNegotiationNumber(v)
	return _c
}

// SetCompanyID sets the "company_id" field.
func (_c *NegotiationCreate) SetCompanyID(v string) *NegotiationCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_c *NegotiationCreate) SetNillableCompanyID(v *string) *NegotiationCreate {
	if v != nil {
		_c.SetCompanyID(*v)
	}
	return _c
}

// SetVesselID sets the "vessel_id" field.
func (_c *NegotiationCreate) SetVesselID(v string) *NegotiationCreate {
	_c.mutation.SetVesselID(v)
	return _c
}

// SetNillableVesselID sets the "vessel_id" field if the given value is not nil.
func (_c *NegotiationCreate) SetNillableVesselID(v *string) *NegotiationCreate {
	if v != nil {
		_c.SetVesselID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *NegotiationCreate) SetStatus(v negotiation.Status) *NegotiationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *NegotiationCreate) SetNillableStatus(v *negotiation.Status) *NegotiationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetFreightRate sets the "freight_rate" field.
func (_c *NegotiationCreate) SetFreightRate(v float64) *NegotiationCreate {
	_c.mutation.SetFreightRate(v)
	return _c
}

// SetNillableFreightRate sets the "freight_rate" field if the given value is not nil.
func (_c *NegotiationCreate) SetNillableFreightRate(v *float64) *NegotiationCreate {
	if v != nil {
		_c.SetFreightRate(*v)
	}
	return _c
}

// SetFirstIndication sets the "first_indication" field.
func (_c *NegotiationCreate) SetFirstIndication(v float64) *NegotiationCreate {
	_c.mutation.SetFirstIndication(v)
	return _c
}

// SetNillableFirstIndication sets the "first_indication" field if the given value is not nil.
func (_c *NegotiationCreate) SetNillableFirstIndication(v *float64) *NegotiationCreate {
	if v != nil {
		_c.SetFirstIndication(*v)
	}
	return _c
}

// SetHighestIndication sets the "highest_indication" field.
func (_c *NegotiationCreate) SetHighestIndication(v float64) *NegotiationCreate {
	_c.mutation.SetHighestIndication(v)
	return _c
}

// SetNillableHighestIndication sets the "highest_indication" field if the given value is not nil.
func (_c *NegotiationCreate) SetNillableHighestIndication(v *float64) *NegotiationCreate {
	if v != nil {
		_c.SetHighestIndication(*v)
	}
	return _c
}

// SetLowestIndication sets the "lowest_indication" field.
func (_c *NegotiationCreate) SetLowestIndication(v float64) *NegotiationCreate {
	_c.mutation.SetLowestIndication(v)
	return _c
}

// SetNillableLowestIndication sets the "lowest_indication" field if the given value is not nil.
func (_c *NegotiationCreate) SetNillableLowestIndication(v *float64) *NegotiationCreate {
	if v != nil {
		_c.SetLowestIndication(*v)
	}
	return _c
}

// SetMarketIndex sets the "market_index" field.
func (_c *NegotiationCreate) SetMarketIndex(v string) *NegotiationCreate {
	_c.mutation.SetMarketIndex(v)
	return _c
}

// SetNillableMarketIndex sets the "market_index" field if the given value is not nil.
func (_c *NegotiationCreate) SetNillableMarketIndex(v *string) *NegotiationCreate {
	if v != nil {
		_c.SetMarketIndex(*v)
	}
	return _c
}

// SetDeliveryType sets the "delivery_type" field.
func (_c *NegotiationCreate) SetDeliveryType(v string) *NegotiationCreate {
	_c.mutation.SetDeliveryType(v)
	return _c
}

// SetNillableDeliveryType sets the "delivery_type" field if the given value is not nil.
func (_c *NegotiationCreate) SetNillableDeliveryType(v *string) *NegotiationCreate {
	if v != nil {
		_c.SetDeliveryType(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *NegotiationCreate) SetCreatedBy(v string) *NegotiationCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetID sets the "id" field.
func (_c *NegotiationCreate) SetID(v string) *NegotiationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetOrderID sets the "order" edge to the Order entity by ID.
func (_c *NegotiationCreate) SetOrderID(id string) *NegotiationCreate {
	_c.mutation.SetOrderID(id)
	return _c
}

// SetOrder sets the "order" edge to the Order entity.
func (_c *NegotiationCreate) SetOrder(v *Order) *NegotiationCreate {
	return _c.SetOrderID(v.ID)
}

// Mutation returns the NegotiationMutation object of the builder.
func (_c *NegotiationCreate) Mutation() *NegotiationMutation {
	return _c.mutation
}

// Save creates the Negotiation in the database.
func (_c *NegotiationCreate) Save(ctx context.Context) (*Negotiation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NegotiationCreate) SaveX(ctx context.Context) *Negotiation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NegotiationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NegotiationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NegotiationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := negotiation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := negotiation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := negotiation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NegotiationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Negotiation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Negotiation.updated_at"`)}
	}
	if _, ok := _c.mutation.NegotiationNumber(); !ok {
		return &ValidationError{Name: "negotiation_number", err: errors.New(`ent: missing required field "Negotiation.negotiation_number"`)}
	}
	if v, ok := _c.mutation.NegotiationNumber(); ok {
		if err := negotiation.NegotiationNumberValidator(v); err != nil {
			return &ValidationError{Name: "negotiation_number", err: fmt.Errorf(`ent: validator failed for field "Negotiation.negotiation_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Negotiation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := negotiation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Negotiation.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "Negotiation.created_by"`)}
	}
	if v, ok := _c.mutation.CreatedBy(); ok {
		if err := negotiation.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Negotiation.created_by": %w`, err)}
		}
	}
	if len(_c.mutation.OrderIDs()) == 0 {
		return &ValidationError{Name: "order", err: errors.New(`ent: missing required edge "Negotiation.order"`)}
	}
	return nil
}

func (_c *NegotiationCreate) sqlSave(ctx context.Context) (*Negotiation, error) {
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
			return nil, fmt.Errorf("unexpected Negotiation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *NegotiationCreate) createSpec() (*Negotiation, *sqlgraph.CreateSpec) {
	var (
		_node = &Negotiation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(negotiation.Table, sqlgraph.NewFieldSpec(negotiation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(negotiation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(negotiation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.NegotiationNumber(); ok {
		_spec.SetField(negotiation.FieldNegotiationNumber, field.TypeString, value)
		_node.NegotiationNumber = value
	}
	if value, ok := _c.mutation.CompanyID(); ok {
		_spec.SetField(negotiation.FieldCompanyID, field.TypeString, value)
		_node.CompanyID = value
	}
	if value, ok := _c.mutation.VesselID(); ok {
		_spec.SetField(negotiation.FieldVesselID, field.TypeString, value)
		_node.VesselID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(negotiation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.FreightRate(); ok {
		_spec.SetField(negotiation.FieldFreightRate, field.TypeFloat64, value)
		_node.FreightRate = value
	}
	if value, ok := _c.mutation.FirstIndication(); ok {
		_spec.SetField(negotiation.FieldFirstIndication, field.TypeFloat64, value)
		_node.FirstIndication = value
	}
	if value, ok := _c.mutation.HighestIndication(); ok {
		_spec.SetField(negotiation.FieldHighestIndication, field.TypeFloat64, value)
		_node.HighestIndication = value
	}
	if value, ok := _c.mutation.LowestIndication(); ok {
		_spec.SetField(negotiation.FieldLowestIndication, field.TypeFloat64, value)
		_node.LowestIndication = value
	}
	if value, ok := _c.mutation.MarketIndex(); ok {
		_spec.SetField(negotiation.FieldMarketIndex, field.TypeString, value)
		_node.MarketIndex = value
	}
	if value, ok := _c.mutation.DeliveryType(); ok {
		_spec.SetField(negotiation.FieldDeliveryType, field.TypeString, value)
		_node.DeliveryType = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(negotiation.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if nodes := _c.mutation.OrderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   negotiation.OrderTable,
			Columns: []string{negotiation.OrderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.order_negotiations = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// NegotiationCreateBulk is the builder for creating many Negotiation entities in bulk.
type NegotiationCreateBulk struct {
	config
	err      error
	builders []*NegotiationCreate
}

// Save creates the Negotiation entities in the database.
func (_c *NegotiationCreateBulk) Save(ctx context.Context) ([]*Negotiation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Negotiation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NegotiationMutation)
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
func (_c *NegotiationCreateBulk) SaveX(ctx context.Context) []*Negotiation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NegotiationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NegotiationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
