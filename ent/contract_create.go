// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charterdesk.io/charterdesk/ent/contract"
	"charterdesk.io/charterdesk/ent/fixture"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ContractCreate is the builder for creating a Contract entity.
type ContractCreate struct {
	config
	mutation *ContractMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContractCreate) SetCreatedAt(v time.Time) *ContractCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContractCreate) SetNillableCreatedAt(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ContractCreate) SetUpdatedAt(v time.Time) *ContractCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ContractCreate) SetNillableUpdatedAt(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCpNumber sets the "cp_number" field.
func (_c *ContractCreate) SetCpNumber(v string) *ContractCreate {
	_c.mutation.SetCpNumber(v)
	return _c
}

// SetOrderID sets the "order_id" field.
func (_c *ContractCreate) SetOrderID(v string) *ContractCreate {
	_c.mutation.SetOrderID(v)
	return _c
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_c *ContractCreate) SetNillableOrderID(v *string) *ContractCreate {
	if v != nil {
		_c.SetOrderID(*v)
	}
	return _c
}

// SetNegotiationID sets the "negotiation_id" field.
func (_c *ContractCreate) SetNegotiationID(v string) *ContractCreate {
	_c.mutation.SetNegotiationID(v)
	return _c
}

// SetNillableNegotiationID sets the "negotiation_id" field if the given value is not nil.
func (_c *ContractCreate) SetNillableNegotiationID(v *string) *ContractCreate {
	if v != nil {
		_c.SetNegotiationID(*v)
	}
	return _c
}

// SetParentContractID sets the "parent_contract_id" field.
func (_c *ContractCreate) SetParentContractID(v string) *ContractCreate {
	_c.mutation.SetParentContractID(v)
	return _c
}

// SetNillableParentContractID sets the "parent_contract_id" field if the given value is not nil.
func (_c *ContractCreate) SetNillableParentContractID(v *string) *ContractCreate {
	if v != nil {
		_c.SetParentContractID(*v)
	}
	return _c
}

// SetContractType sets the "contract_type" field.
func (_c *ContractCreate) SetContractType(v string) *ContractCreate {
	_c.mutation.SetContractType(v)
	return _c
}

// SetNillableContractType sets the "contract_type" field if the given value is not nil.
func (_c *ContractCreate) SetNillableContractType(v *string) *ContractCreate {
	if v != nil {
		_c.SetContractType(*v)
	}
	return _c
}

// SetDeliveryType sets the "delivery_type" field.
func (_c *ContractCreate) SetDeliveryType(v string) *ContractCreate {
	_c.mutation.SetDeliveryType(v)
	return _c
}

// SetNillableDeliveryType sets the "delivery_type" field if the given value is not nil.
func (_c *ContractCreate) SetNillableDeliveryType(v *string) *ContractCreate {
	if v != nil {
		_c.SetDeliveryType(*v)
	}
	return _c
}

// SetVesselID sets the "vessel_id" field.
func (_c *ContractCreate) SetVesselID(v string) *ContractCreate {
	_c.mutation.SetVesselID(v)
	return _c
}

// SetNillableVesselID sets the "vessel_id" field if the given value is not nil.
func (_c *ContractCreate) SetNillableVesselID(v *string) *ContractCreate {
	if v != nil {
		_c.SetVesselID(*v)
	}
	return _c
}

// SetCompanyID sets the "company_id" field.
func (_c *ContractCreate) SetCompanyID(v string) *ContractCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_c *ContractCreate) SetNillableCompanyID(v *string) *ContractCreate {
	if v != nil {
		_c.SetCompanyID(*v)
	}
	return _c
}

// SetLoadPortID sets the "load_port_id" field.
func (_c *ContractCreate) SetLoadPortID(v string) *ContractCreate {
	_c.mutation.SetLoadPortID(v)
	return _c
}

// SetNillableLoadPortID sets the "load_port_id" field if the given value is not nil.
func (_c *ContractCreate) SetNillableLoadPortID(v *string) *ContractCreate {
	if v != nil {
		_c.SetLoadPortID(*v)
	}
	return _c
}

// SetDischargePortID sets the "discharge_port_id" field.
func (_c *ContractCreate) SetDischargePortID(v string) *ContractCreate {
	_c.mutation.SetDischargePortID(v)
	return _c
}

// SetNillableDischargePortID sets the "discharge_port_id" field if the given value is not nil.
func (_c *ContractCreate) SetNillableDischargePortID(v *string) *ContractCreate {
	if v != nil {
		_c.SetDischargePortID(*v)
	}
	return _c
}

// SetCargoTypeID sets the "cargo_type_id" field.
func (_c *ContractCreate) SetCargoTypeID(v string) *ContractCreate {
	_c.mutation.SetCargoTypeID(v)
	return _c
}

// SetNillableCargoTypeID sets the "cargo_type_id" field if the given value is not nil.
func (_c *ContractCreate) SetNillableCargoTypeID(v *string) *ContractCreate {
	if v != nil {
		_c.SetCargoTypeID(*v)
	}
	return _c
}

// SetFreightRate sets the "freight_rate" field.
func (_c *ContractCreate) SetFreightRate(v float64) *ContractCreate {
	_c.mutation.SetFreightRate(v)
	return _c
}

// SetNillableFreightRate sets the "freight_rate" field if the given value is not nil.
func (_c *ContractCreate) SetNillableFreightRate(v *float64) *ContractCreate {
	if v != nil {
		_c.SetFreightRate(*v)
	}
	return _c
}

// SetLaycanStart sets the "laycan_start" field.
func (_c *ContractCreate) SetLaycanStart(v time.Time) *ContractCreate {
	_c.mutation.SetLaycanStart(v)
	return _c
}

// SetNillableLaycanStart sets the "laycan_start" field if the given value is not nil.
func (_c *ContractCreate) SetNillableLaycanStart(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetLaycanStart(*v)
	}
	return _c
}

// SetLaycanEnd sets the "laycan_end" field.
func (_c *ContractCreate) SetLaycanEnd(v time.Time) *ContractCreate {
	_c.mutation.SetLaycanEnd(v)
	return _c
}

// SetNillableLaycanEnd sets the "laycan_end" field if the given value is not nil.
func (_c *ContractCreate) SetNillableLaycanEnd(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetLaycanEnd(*v)
	}
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *ContractCreate) SetQuantity(v float64) *ContractCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_c *ContractCreate) SetNillableQuantity(v *float64) *ContractCreate {
	if v != nil {
		_c.SetQuantity(*v)
	}
	return _c
}

// SetDemurrageRate sets the "demurrage_rate" field.
func (_c *ContractCreate) SetDemurrageRate(v float64) *ContractCreate {
	_c.mutation.SetDemurrageRate(v)
	return _c
}

// SetNillableDemurrageRate sets the "demurrage_rate" field if the given value is not nil.
func (_c *ContractCreate) SetNillableDemurrageRate(v *float64) *ContractCreate {
	if v != nil {
		_c.SetDemurrageRate(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ContractCreate) SetStatus(v contract.Status) *ContractCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ContractCreate) SetNillableStatus(v *contract.Status) *ContractCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *ContractCreate) SetCreatedBy(v string) *ContractCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ContractCreate) SetID(v string) *ContractCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetFixtureID sets the "fixture" edge to the Fixture entity by ID.
func (_c *ContractCreate) SetFixtureID(id string) *ContractCreate {
	_c.mutation.SetFixtureID(id)
	return _c
}

// SetNillableFixtureID sets the "fixture" edge to the Fixture entity by ID if the given value is not nil.
func (_c *ContractCreate) SetNillableFixtureID(id *string) *ContractCreate {
	if id != nil {
		_c = _c.SetFixtureID(*id)
	}
	return _c
}

// SetFixture sets the "fixture" edge to the Fixture entity.
func (_c *ContractCreate) SetFixture(v *Fixture) *ContractCreate {
	return _c.SetFixtureID(v.ID)
}

// Mutation returns the ContractMutation object of the builder.
func (_c *ContractCreate) Mutation() *ContractMutation {
	return _c.mutation
}

// Save creates the Contract in the database.
func (_c *ContractCreate) Save(ctx context.Context) (*Contract, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContractCreate) SaveX(ctx context.Context) *Contract {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContractCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContractCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContractCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contract.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := contract.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := contract.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContractCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Contract.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Contract.updated_at"`)}
	}
	if _, ok := _c.mutation.CpNumber(); !ok {
		return &ValidationError{Name: "cp_number", err: errors.New(`ent: missing required field "Contract.cp_number"`)}
	}
	if v, ok := _c.mutation.CpNumber(); ok {
		if err := contract.CpNumberValidator(v); err != nil {
			return &ValidationError{Name: "cp_number", err: fmt.Errorf(`ent: validator failed for field "Contract.cp_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Contract.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := contract.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Contract.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "Contract.created_by"`)}
	}
	if v, ok := _c.mutation.CreatedBy(); ok {
		if err := contract.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Contract.created_by": %w`, err)}
		}
	}
	return nil
}

func (_c *ContractCreate) sqlSave(ctx context.Context) (*Contract, error) {
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
			return nil, fmt.Errorf("unexpected Contract.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ContractCreate) createSpec() (*Contract, *sqlgraph.CreateSpec) {
	var (
		_node = &Contract{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contract.Table, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contract.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CpNumber(); ok {
		_spec.SetField(contract.FieldCpNumber, field.TypeString, value)
		_node.CpNumber = value
	}
	if value, ok := _c.mutation.OrderID(); ok {
		_spec.SetField(contract.FieldOrderID, field.TypeString, value)
		_node.OrderID = value
	}
	if value, ok := _c.mutation.NegotiationID(); ok {
		_spec.SetField(contract.FieldNegotiationID, field.TypeString, value)
		_node.NegotiationID = value
	}
	if value, ok := _c.mutation.ParentContractID(); ok {
		_spec.SetField(contract.FieldParentContractID, field.TypeString, value)
		_node.ParentContractID = value
	}
	if value, ok := _c.mutation.ContractType(); ok {
		_spec.SetField(contract.FieldContractType, field.TypeString, value)
		_node.ContractType = value
	}
	if value, ok := _c.mutation.DeliveryType(); ok {
		_spec.SetField(contract.FieldDeliveryType, field.TypeString, value)
		_node.DeliveryType = value
	}
	if value, ok := _c.mutation.VesselID(); ok {
		_spec.SetField(contract.FieldVesselID, field.TypeString, value)
		_node.VesselID = value
	}
	if value, ok := _c.mutation.CompanyID(); ok {
		_spec.SetField(contract.FieldCompanyID, field.TypeString, value)
		_node.CompanyID = value
	}
	if value, ok := _c.mutation.LoadPortID(); ok {
		_spec.SetField(contract.FieldLoadPortID, field.TypeString, value)
		_node.LoadPortID = value
	}
	if value, ok := _c.mutation.DischargePortID(); ok {
		_spec.SetField(contract.FieldDischargePortID, field.TypeString, value)
		_node.DischargePortID = value
	}
	if value, ok := _c.mutation.CargoTypeID(); ok {
		_spec.SetField(contract.FieldCargoTypeID, field.TypeString, value)
		_node.CargoTypeID = value
	}
	if value, ok := _c.mutation.FreightRate(); ok {
		_spec.SetField(contract.FieldFreightRate, field.TypeFloat64, value)
		_node.FreightRate = value
	}
	if value, ok := _c.mutation.LaycanStart(); ok {
		_spec.SetField(contract.FieldLaycanStart, field.TypeTime, value)
		_node.LaycanStart = &value
	}
	if value, ok := _c.mutation.LaycanEnd(); ok {
		_spec.SetField(contract.FieldLaycanEnd, field.TypeTime, value)
		_node.LaycanEnd = &value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(contract.FieldQuantity, field.TypeFloat64, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.DemurrageRate(); ok {
		_spec.SetField(contract.FieldDemurrageRate, field.TypeFloat64, value)
		_node.DemurrageRate = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(contract.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(contract.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if nodes := _c.mutation.FixtureIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contract.FixtureTable,
			Columns: []string{contract.FixtureColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fixture.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.fixture_contracts = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ContractCreateBulk is the builder for creating many Contract entities in bulk.
type ContractCreateBulk struct {
	config
	err      error
	builders []*ContractCreate
}

// Save creates the Contract entities in the database.
func (_c *ContractCreateBulk) Save(ctx context.Context) ([]*Contract, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Contract, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContractMutation)
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
func (_c *ContractCreateBulk) SaveX(ctx context.Context) []*Contract {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContractCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContractCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
