// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charterdesk.io/charterdesk/ent/fixture"
	"charterdesk.io/charterdesk/ent/recapmanager"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// RecapManagerCreate is the builder for creating a RecapManager entity.
type RecapManagerCreate struct {
	config
	mutation *RecapManagerMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *RecapManagerCreate) SetCreatedAt(v time.Time) *RecapManagerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RecapManagerCreate) SetNillableCreatedAt(v *time.Time) *RecapManagerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RecapManagerCreate) SetUpdatedAt(v time.Time) *RecapManagerCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RecapManagerCreate) SetNillableUpdatedAt(v *time.Time) *RecapManagerCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetRecapNumber sets the "recap_number" field.
func (_c *RecapManagerCreate) SetRecapNumber(v string) *RecapManagerCreate {
	_c.mutation.SetRecapNumber(v)
	return _c
}

// SetOrderID sets the "order_id" field.
func (_c *RecapManagerCreate) SetOrderID(v string) *RecapManagerCreate {
	_c.mutation.SetOrderID(v)
	return _c
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_c *RecapManagerCreate) SetNillableOrderID(v *string) *RecapManagerCreate {
	if v != nil {
		_c.SetOrderID(*v)
	}
	return _c
}

// SetNegotiationID sets the "negotiation_id" field.
func (_c *RecapManagerCreate) SetNegotiationID(v string) *RecapManagerCreate {
	_c.mutation.SetNegotiationID(v)
	return _c
}

// SetNillableNegotiationID sets the "negotiation_id" field if the given value is not nil.
func (_c *RecapManagerCreate) SetNillableNegotiationID(v *string) *RecapManagerCreate {
	if v != nil {
		_c.SetNegotiationID(*v)
	}
	return _c
}

// SetParentRecapID sets the "parent_recap_id" field.
func (_c *RecapManagerCreate) SetParentRecapID(v string) *RecapManagerCreate {
	_c.mutation.SetParentRecapID(v)
	return _c
}

// SetNillableParentRecapID sets the "parent_recap_id" field if the given value is not nil.
func (_c *RecapManagerCreate) SetNillableParentRecapID(v *string) *RecapManagerCreate {
	if v != nil {
		_c.SetParentRecapID(*v)
	}
	return _c
}

// SetContractType sets the "contract_type" field.
func (_c *RecapManagerCreate) SetContractType(v string) *RecapManagerCreate {
	_c.mutation.SetContractType(v)
	return _c
}

// SetNillableContractType sets the "contract_type" field if the given value is not nil.
func (_c *RecapManagerCreate) SetNillableContractType(v *string) *RecapManagerCreate {
	if v != nil {
		_c.SetContractType(*v)
	}
	return _c
}

// SetDeliveryType sets the "delivery_type" field.
func (_c *RecapManagerCreate) SetDeliveryType(v string) *RecapManagerCreate {
	_c.mutation.SetDeliveryType(v)
	return _c
}

// SetNillableDeliveryType sets the "delivery_type" field if the given value is not nil.
func (_c *RecapManagerCreate) SetNillableDeliveryType(v *string) *RecapManagerCreate {
	if v != nil {
		_c.SetDeliveryType(*v)
	}
	return _c
}

// SetMarketIndex sets the "market_index" field.
func (_c *RecapManagerCreate) SetMarketIndex(v string) *RecapManagerCreate {
	_c.mutation.SetMarketIndex(v)
	return _c
}

// SetNillableMarketIndex sets the "market_index" field if the given value is not nil.
func (_c *RecapManagerCreate) SetNillableMarketIndex(v *string) *RecapManagerCreate {
	if v != nil {
		_c.SetMarketIndex(*v)
	}
	return _c
}

// SetVesselID sets the "vessel_id" field.
func (_c *RecapManagerCreate) SetVesselID(v string) *RecapManagerCreate {
	_c.mutation.SetVesselID(v)
	return _c
}

// SetNillableVesselID sets the "vessel_id" field if the given value is not nil.
func (_c *RecapManagerCreate) SetNillableVesselID(v *string) *RecapManagerCreate {
	if v != nil {
		_c.SetVesselID(*v)
	}
	return _c
}

// SetCompanyID sets the "company_id" field.
func (_c *RecapManagerCreate) SetCompanyID(v string) *RecapManagerCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_c *RecapManagerCreate) SetNillableCompanyID(v *string) *RecapManagerCreate {
	if v != nil {
		_c.SetCompanyID(*v)
	}
	return _c
}

// SetLoadPortID sets the "load_port_id" field.
func (_c *RecapManagerCreate) SetLoadPortID(v string) *RecapManagerCreate {
	_c.mutation.SetLoadPortID(v)
	return _c
}

// SetNillableLoadPortID sets the "load_port_id" field if the given value is not nil.
func (_c *RecapManagerCreate) SetNillableLoadPortID(v *string) *RecapManagerCreate {
	if v != nil {
		_c.SetLoadPortID(*v)
	}
	return _c
}

// SetDischargePortID sets the "discharge_port_id" field.
func (_c *RecapManagerCreate) SetDischargePortID(v string) *RecapManagerCreate {
	_c.mutation.SetDischargePortID(v)
	return _c
}

// SetNillableDischargePortID sets the "discharge_port_id" field if the given value is not nil.
func (_c *RecapManagerCreate) SetNillableDischargePortID(v *string) *RecapManagerCreate {
	if v != nil {
		_c.SetDischargePortID(*v)
	}
	return _c
}

// SetCargoTypeID sets the "cargo_type_id" field.
func (_c *RecapManagerCreate) SetCargoTypeID(v string) *RecapManagerCreate {
	_c.mutation.SetCargoTypeID(v)
	return _c
}

// SetNillableCargoTypeID sets the "cargo_type_id" field if the given value is not nil.
func (_c *RecapManagerCreate) SetNillableCargoTypeID(v *string) *RecapManagerCreate {
	if v != nil {
		_c.SetCargoTypeID(*v)
	}
	return _c
}

// SetFreightRate sets the "freight_rate" field.
func (_c *RecapManagerCreate) SetFreightRate(v float64) *RecapManagerCreate {
	_c.mutation.SetFreightRate(v)
	return _c
}

// SetNillableFreightRate sets the "freight_rate" field if the given value is not nil.
func (_c *RecapManagerCreate) SetNillableFreightRate(v *float64) *RecapManagerCreate {
	if v != nil {
		_c.SetFreightRate(*v)
	}
	return _c
}

// SetLaycanStart sets the "laycan_start" field.
func (_c *RecapManagerCreate) SetLaycanStart(v time.Time) *RecapManagerCreate {
	_c.mutation.SetLaycanStart(v)
	return _c
}

// SetNillableLaycanStart sets the "laycan_start" field if the given value is not nil.
func (_c *RecapManagerCreate) SetNillableLaycanStart(v *time.Time) *RecapManagerCreate {
	if v != nil {
		_c.SetLaycanStart(*v)
	}
	return _c
}

// SetLaycanEnd sets the "laycan_end" field.
func (_c *RecapManagerCreate) SetLaycanEnd(v time.Time) *RecapManagerCreate {
	_c.mutation.SetLaycanEnd(v)
	return _c
}

// SetNillableLaycanEnd sets the "laycan_end" field if the given value is not nil.
func (_c *RecapManagerCreate) SetNillableLaycanEnd(v *time.Time) *RecapManagerCreate {
	if v != nil {
		_c.SetLaycanEnd(*v)
	}
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *RecapManagerCreate) SetQuantity(v float64) *RecapManagerCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_c *RecapManagerCreate) SetNillableQuantity(v *float64) *RecapManagerCreate {
	if v != nil {
		_c.SetQuantity(*v)
	}
	return _c
}

// SetDemurrageRate sets the "demurrage_rate" field.
func (_c *RecapManagerCreate) SetDemurrageRate(v float64) *RecapManagerCreate {
	_c.mutation.SetDemurrageRate(v)
	return _c
}

// SetNillableDemurrageRate sets the "demurrage_rate" field if the given value is not nil.
func (_c *RecapManagerCreate) SetNillableDemurrageRate(v *float64) *RecapManagerCreate {
	if v != nil {
		_c.SetDemurrageRate(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *RecapManagerCreate) SetStatus(v recapmanager.Status) *RecapManagerCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RecapManagerCreate) SetNillableStatus(v *recapmanager.Status) *RecapManagerCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *RecapManagerCreate) SetCreatedBy(v string) *RecapManagerCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetID sets the "id" field.
func (_c *RecapManagerCreate) SetID(v string) *RecapManagerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetFixtureID sets the "fixture" edge to the Fixture entity by ID.
func (_c *RecapManagerCreate) SetFixtureID(id string) *RecapManagerCreate {
	_c.mutation.SetFixtureID(id)
	return _c
}

// SetNillableFixtureID sets the "fixture" edge to the Fixture entity by ID if the given value is not nil.
func (_c *RecapManagerCreate) SetNillableFixtureID(id *string) *RecapManagerCreate {
	if id != nil {
		_c = _c.SetFixtureID(*id)
	}
	return _c
}

// SetFixture sets the "fixture" edge to the Fixture entity.
func (_c *RecapManagerCreate) SetFixture(v *Fixture) *RecapManagerCreate {
	return _c.SetFixtureID(v.ID)
}

// Mutation returns the RecapManagerMutation object of the builder.
func (_c *RecapManagerCreate) Mutation() *RecapManagerMutation {
	return _c.mutation
}

// Save creates the RecapManager in the database.
func (_c *RecapManagerCreate) Save(ctx context.Context) (*RecapManager, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RecapManagerCreate) SaveX(ctx context.Context) *RecapManager {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecapManagerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecapManagerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RecapManagerCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := recapmanager.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := recapmanager.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := recapmanager.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RecapManagerCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RecapManager.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "RecapManager.updated_at"`)}
	}
	if _, ok := _c.mutation.RecapNumber(); !ok {
		return &ValidationError{Name: "recap_number", err: errors.New(`ent: missing required field "RecapManager.recap_number"`)}
	}
	if v, ok := _c.mutation.RecapNumber(); ok {
		if err := recapmanager.RecapNumberValidator(v); err != nil {
			return &ValidationError{Name: "recap_number", err: fmt.Errorf(`ent: validator failed for field "RecapManager.recap_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "RecapManager.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := recapmanager.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RecapManager.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "RecapManager.created_by"`)}
	}
	if v, ok := _c.mutation.CreatedBy(); ok {
		if err := recapmanager.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "RecapManager.created_by": %w`, err)}
		}
	}
	return nil
}

func (_c *RecapManagerCreate) sqlSave(ctx context.Context) (*RecapManager, error) {
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
			return nil, fmt.Errorf("unexpected RecapManager.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RecapManagerCreate) createSpec() (*RecapManager, *sqlgraph.CreateSpec) {
	var (
		_node = &RecapManager{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(recapmanager.Table, sqlgraph.NewFieldSpec(recapmanager.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(recapmanager.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(recapmanager.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.RecapNumber(); ok {
		_spec.SetField(recapmanager.FieldRecapNumber, field.TypeString, value)
		_node.RecapNumber = value
	}
	if value, ok := _c.mutation.OrderID(); ok {
		_spec.SetField(recapmanager.FieldOrderID, field.TypeString, value)
		_node.OrderID = value
	}
	if value, ok := _c.mutation.NegotiationID(); ok {
		_spec.SetField(recapmanager.FieldNegotiationID, field.TypeString, value)
		_node.NegotiationID = value
	}
	if value, ok := _c.mutation.ParentRecapID(); ok {
		_spec.SetField(recapmanager.FieldParentRecapID, field.TypeString, value)
		_node.ParentRecapID = value
	}
	if value, ok := _c.mutation.ContractType(); ok {
		_spec.SetField(recapmanager.FieldContractType, field.TypeString, value)
		_node.ContractType = value
	}
	if value, ok := _c.mutation.DeliveryType(); ok {
		_spec.SetField(recapmanager.FieldDeliveryType, field.TypeString, value)
		_node.DeliveryType = value
	}
	if value, ok := _c.mutation.MarketIndex(); ok {
		_spec.SetField(recapmanager.FieldMarketIndex, field.TypeString, value)
		_node.MarketIndex = value
	}
	if value, ok := _c.mutation.VesselID(); ok {
		_spec.SetField(recapmanager.FieldVesselID, field.TypeString, value)
		_node.VesselID = value
	}
	if value, ok := _c.mutation.CompanyID(); ok {
		_spec.SetField(recapmanager.FieldCompanyID, field.TypeString, value)
		_node.CompanyID = value
	}
	if value, ok := _c.mutation.LoadPortID(); ok {
		_spec.SetField(recapmanager.FieldLoadPortID, field.TypeString, value)
		_node.LoadPortID = value
	}
	if value, ok := _c.mutation.DischargePortID(); ok {
		_spec.SetField(recapmanager.FieldDischargePortID, field.TypeString, value)
		_node.DischargePortID = value
	}
	if value, ok := _c.mutation.CargoTypeID(); ok {
		_spec.SetField(recapmanager.FieldCargoTypeID, field.TypeString, value)
		_node.CargoTypeID = value
	}
	if value, ok := _c.mutation.FreightRate(); ok {
		_spec.SetField(recapmanager.FieldFreightRate, field.TypeFloat64, value)
		_node.FreightRate = value
	}
	if value, ok := _c.mutation.LaycanStart(); ok {
		_spec.SetField(recapmanager.FieldLaycanStart, field.TypeTime, value)
		_node.LaycanStart = &value
	}
	if value, ok := _c.mutation.LaycanEnd(); ok {
		_spec.SetField(recapmanager.FieldLaycanEnd, field.TypeTime, value)
		_node.LaycanEnd = &value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(recapmanager.FieldQuantity, field.TypeFloat64, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.DemurrageRate(); ok {
		_spec.SetField(recapmanager.FieldDemurrageRate, field.TypeFloat64, value)
		_node.DemurrageRate = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(recapmanager.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(recapmanager.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if nodes := _c.mutation.FixtureIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recapmanager.FixtureTable,
			Columns: []string{recapmanager.FixtureColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fixture.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.fixture_recaps = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RecapManagerCreateBulk is the builder for creating many RecapManager entities in bulk.
type RecapManagerCreateBulk struct {
	config
	err      error
	builders []*RecapManagerCreate
}

// Save creates the RecapManager entities in the database.
func (_c *RecapManagerCreateBulk) Save(ctx context.Context) ([]*RecapManager, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RecapManager, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecapManagerMutation)
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
func (_c *RecapManagerCreateBulk) SaveX(ctx context.Context) []*RecapManager {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecapManagerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecapManagerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
