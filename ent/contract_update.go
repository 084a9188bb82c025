// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charterdesk.io/charterdesk/ent/contract"
	"charterdesk.io/charterdesk/ent/fixture"
	"charterdesk.io/charterdesk/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ContractUpdate is the builder for updating Contract entities.
type ContractUpdate struct {
	config
	hooks    []Hook
	mutation *ContractMutation
}

// Where appends a list predicates to the ContractUpdate builder.
func (_u *ContractUpdate) Where(ps ...predicate.Contract) *ContractUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContractUpdate) SetUpdatedAt(v time.Time) *ContractUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *ContractUpdate) SetOrderID(v string) *ContractUpdate {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableOrderID(v *string) *ContractUpdate {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// ClearOrderID clears the value of the "order_id" field.
func (_u *ContractUpdate) ClearOrderID() *ContractUpdate {
	_u.mutation.ClearOrderID()
	return _u
}

// SetNegotiationID sets the "negotiation_id" field.
func (_u *ContractUpdate) SetNegotiationID(v string) *ContractUpdate {
	_u.mutation.SetNegotiationID(v)
	return _u
}

// SetNillableNegotiationID sets the "negotiation_id" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableNegotiationID(v *string) *ContractUpdate {
	if v != nil {
		_u.SetNegotiationID(*v)
	}
	return _u
}

// ClearNegotiationID clears the value of the "negotiation_id" field.
func (_u *ContractUpdate) ClearNegotiationID() *ContractUpdate {
	_u.mutation.ClearNegotiationID()
	return _u
}

// SetParentContractID sets the "parent_contract_id" field.
func (_u *ContractUpdate) SetParentContractID(v string) *ContractUpdate {
	_u.mutation.SetParentContractID(v)
	return _u
}

// SetNillableParentContractID sets the "parent_contract_id" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableParentContractID(v *string) *ContractUpdate {
	if v != nil {
		_u.SetParentContractID(*v)
	}
	return _u
}

// ClearParentContractID clears the value of the "parent_contract_id" field.
func (_u *ContractUpdate) ClearParentContractID() *ContractUpdate {
	_u.mutation.ClearParentContractID()
	return _u
}

// SetContractType sets the "contract_type" field.
func (_u *ContractUpdate) SetContractType(v string) *ContractUpdate {
	_u.mutation.SetContractType(v)
	return _u
}

// SetNillableContractType sets the "contract_type" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableContractType(v *string) *ContractUpdate {
	if v != nil {
		_u.SetContractType(*v)
	}
	return _u
}

// ClearContractType clears the value of the "contract_type" field.
func (_u *ContractUpdate) ClearContractType() *ContractUpdate {
	_u.mutation.ClearContractType()
	return _u
}

// SetDeliveryType sets the "delivery_type" field.
func (_u *ContractUpdate) SetDeliveryType(v string) *ContractUpdate {
	_u.mutation.SetDeliveryType(v)
	return _u
}

// SetNillableDeliveryType sets the "delivery_type" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableDeliveryType(v *string) *ContractUpdate {
	if v != nil {
		_u.SetDeliveryType(*v)
	}
	return _u
}

// ClearDeliveryType clears the value of the "delivery_type" field.
func (_u *ContractUpdate) ClearDeliveryType() *ContractUpdate {
	_u.mutation.ClearDeliveryType()
	return _u
}

// SetVesselID sets the "vessel_id" field.
func (_u *ContractUpdate) SetVesselID(v string) *ContractUpdate {
	_u.mutation.SetVesselID(v)
	return _u
}

// SetNillableVesselID sets the "vessel_id" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableVesselID(v *string) *ContractUpdate {
	if v != nil {
		_u.SetVesselID(*v)
	}
	return _u
}

// ClearVesselID clears the value of the "vessel_id" field.
func (_u *ContractUpdate) ClearVesselID() *ContractUpdate {
	_u.mutation.ClearVesselID()
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *ContractUpdate) SetCompanyID(v string) *ContractUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableCompanyID(v *string) *ContractUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// ClearCompanyID clears the value of the "company_id" field.
func (_u *ContractUpdate) ClearCompanyID() *ContractUpdate {
	_u.mutation.ClearCompanyID()
	return _u
}

// SetLoadPortID sets the "load_port_id" field.
func (_u *ContractUpdate) SetLoadPortID(v string) *ContractUpdate {
	_u.mutation.SetLoadPortID(v)
	return _u
}

// SetNillableLoadPortID sets the "load_port_id" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableLoadPortID(v *string) *ContractUpdate {
	if v != nil {
		_u.SetLoadPortID(*v)
	}
	return _u
}

// ClearLoadPortID clears the value of the "load_port_id" field.
func (_u *ContractUpdate) ClearLoadPortID() *ContractUpdate {
	_u.mutation.ClearLoadPortID()
	return _u
}

// SetDischargePortID sets the "discharge_port_id" field.
func (_u *ContractUpdate) SetDischargePortID(v string) *ContractUpdate {
	_u.mutation.SetDischargePortID(v)
	return _u
}

// SetNillableDischargePortID sets the "discharge_port_id" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableDischargePortID(v *string) *ContractUpdate {
	if v != nil {
		_u.SetDischargePortID(*v)
	}
	return _u
}

// ClearDischargePortID clears the value of the "discharge_port_id" field.
func (_u *ContractUpdate) ClearDischargePortID() *ContractUpdate {
	_u.mutation.ClearDischargePortID()
	return _u
}

// SetCargoTypeID sets the "cargo_type_id" field.
func (_u *ContractUpdate) SetCargoTypeID(v string) *ContractUpdate {
	_u.mutation.SetCargoTypeID(v)
	return _u
}

// SetNillableCargoTypeID sets the "cargo_type_id" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableCargoTypeID(v *string) *ContractUpdate {
	if v != nil {
		_u.SetCargoTypeID(*v)
	}
	return _u
}

// ClearCargoTypeID clears the value of the "cargo_type_id" field.
func (_u *ContractUpdate) ClearCargoTypeID() *ContractUpdate {
	_u.mutation.ClearCargoTypeID()
	return _u
}

// SetFreightRate sets the "freight_rate" field.
func (_u *ContractUpdate) SetFreightRate(v float64) *ContractUpdate {
	_u.mutation.ResetFreightRate()
	_u.mutation.SetFreightRate(v)
	return _u
}

// SetNillableFreightRate sets the "freight_rate" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableFreightRate(v *float64) *ContractUpdate {
	if v != nil {
		_u.SetFreightRate(*v)
	}
	return _u
}

// AddFreightRate adds value to the "freight_rate" field.
func (_u *ContractUpdate) AddFreightRate(v float64) *ContractUpdate {
	_u.mutation.AddFreightRate(v)
	return _u
}

// ClearFreightRate clears the value of the "freight_rate" field.
func (_u *ContractUpdate) ClearFreightRate() *ContractUpdate {
	_u.mutation.ClearFreightRate()
	return _u
}

// SetLaycanStart sets the "laycan_start" field.
func (_u *ContractUpdate) SetLaycanStart(v time.Time) *ContractUpdate {
	_u.mutation.SetLaycanStart(v)
	return _u
}

// SetNillableLaycanStart sets the "laycan_start" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableLaycanStart(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetLaycanStart(*v)
	}
	return _u
}

// ClearLaycanStart clears the value of the "laycan_start" field.
func (_u *ContractUpdate) ClearLaycanStart() *ContractUpdate {
	_u.mutation.ClearLaycanStart()
	return _u
}

// SetLaycanEnd sets the "laycan_end" field.
func (_u *ContractUpdate) SetLaycanEnd(v time.Time) *ContractUpdate {
	_u.mutation.SetLaycanEnd(v)
	return _u
}

// SetNillableLaycanEnd sets the "laycan_end" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableLaycanEnd(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetLaycanEnd(*v)
	}
	return _u
}

// ClearLaycanEnd clears the value of the "laycan_end" field.
func (_u *ContractUpdate) ClearLaycanEnd() *ContractUpdate {
	_u.mutation.ClearLaycanEnd()
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *ContractUpdate) SetQuantity(v float64) *ContractUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableQuantity(v *float64) *ContractUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *ContractUpdate) AddQuantity(v float64) *ContractUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// ClearQuantity clears the value of the "quantity" field.
func (_u *ContractUpdate) ClearQuantity() *ContractUpdate {
	_u.mutation.ClearQuantity()
	return _u
}

// SetDemurrageRate sets the "demurrage_rate" field.
func (_u *ContractUpdate) SetDemurrageRate(v float64) *ContractUpdate {
	_u.mutation.ResetDemurrageRate()
	_u.mutation.SetDemurrageRate(v)
	return _u
}

// SetNillableDemurrageRate sets the "demurrage_rate" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableDemurrageRate(v *float64) *ContractUpdate {
	if v != nil {
		_u.SetDemurrageRate(*v)
	}
	return _u
}

// AddDemurrageRate adds value to the "demurrage_rate" field.
func (_u *ContractUpdate) AddDemurrageRate(v float64) *ContractUpdate {
	_u.mutation.AddDemurrageRate(v)
	return _u
}

// ClearDemurrageRate clears the value of the "demurrage_rate" field.
func (_u *ContractUpdate) ClearDemurrageRate() *ContractUpdate {
	_u.mutation.ClearDemurrageRate()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ContractUpdate) SetStatus(v contract.Status) *ContractUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableStatus(v *contract.Status) *ContractUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *ContractUpdate) SetCreatedBy(v string) *ContractUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableCreatedBy(v *string) *ContractUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetFixtureID sets the "fixture" edge to the Fixture entity by ID.
func (_u *ContractUpdate) SetFixtureID(id string) *ContractUpdate {
	_u.mutation.SetFixtureID(id)
	return _u
}

// SetNillableFixtureID sets the "fixture" edge to the Fixture entity by ID if the given value is not nil.
func (_u *ContractUpdate) SetNillableFixtureID(id *string) *ContractUpdate {
	if id != nil {
		_u = _u.SetFixtureID(*id)
	}
	return _u
}

// SetFixture sets the "fixture" edge to the Fixture entity.
func (_u *ContractUpdate) SetFixture(v *Fixture) *ContractUpdate {
	return _u.SetFixtureID(v.ID)
}

// Mutation returns the ContractMutation object of the builder.
func (_u *ContractUpdate) Mutation() *ContractMutation {
	return _u.mutation
}

// ClearFixture clears the "fixture" edge to the Fixture entity.
func (_u *ContractUpdate) ClearFixture() *ContractUpdate {
	_u.mutation.ClearFixture()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContractUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContractUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContractUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contract.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := contract.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Contract.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := contract.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Contract.created_by": %w`, err)}
		}
	}
	return nil
}

func (_u *ContractUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contract.Table, contract.Columns, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OrderID(); ok {
		_spec.SetField(contract.FieldOrderID, field.TypeString, value)
	}
	if _u.mutation.OrderIDCleared() {
		_spec.ClearField(contract.FieldOrderID, field.TypeString)
	}
	if value, ok := _u.mutation.NegotiationID(); ok {
		_spec.SetField(contract.FieldNegotiationID, field.TypeString, value)
	}
	if _u.mutation.NegotiationIDCleared() {
		_spec.ClearField(contract.FieldNegotiationID, field.TypeString)
	}
	if value, ok := _u.mutation.ParentContractID(); ok {
		_spec.SetField(contract.FieldParentContractID, field.TypeString, value)
	}
	if _u.mutation.ParentContractIDCleared() {
		_spec.ClearField(contract.FieldParentContractID, field.TypeString)
	}
	if value, ok := _u.mutation.ContractType(); ok {
		_spec.SetField(contract.FieldContractType, field.TypeString, value)
	}
	if _u.mutation.ContractTypeCleared() {
		_spec.ClearField(contract.FieldContractType, field.TypeString)
	}
	if value, ok := _u.mutation.DeliveryType(); ok {
		_spec.SetField(contract.FieldDeliveryType, field.TypeString, value)
	}
	if _u.mutation.DeliveryTypeCleared() {
		_spec.ClearField(contract.FieldDeliveryType, field.TypeString)
	}
	if value, ok := _u.mutation.VesselID(); ok {
		_spec.SetField(contract.FieldVesselID, field.TypeString, value)
	}
	if _u.mutation.VesselIDCleared() {
		_spec.ClearField(contract.FieldVesselID, field.TypeString)
	}
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(contract.FieldCompanyID, field.TypeString, value)
	}
	if _u.mutation.CompanyIDCleared() {
		_spec.ClearField(contract.FieldCompanyID, field.TypeString)
	}
	if value, ok := _u.mutation.LoadPortID(); ok {
		_spec.SetField(contract.FieldLoadPortID, field.TypeString, value)
	}
	if _u.mutation.LoadPortIDCleared() {
		_spec.ClearField(contract.FieldLoadPortID, field.TypeString)
	}
	if value, ok := _u.mutation.DischargePortID(); ok {
		_spec.SetField(contract.FieldDischargePortID, field.TypeString, value)
	}
	if _u.mutation.DischargePortIDCleared() {
		_spec.ClearField(contract.FieldDischargePortID, field.TypeString)
	}
	if value, ok := _u.mutation.CargoTypeID(); ok {
		_spec.SetField(contract.FieldCargoTypeID, field.TypeString, value)
	}
	if _u.mutation.CargoTypeIDCleared() {
		_spec.ClearField(contract.FieldCargoTypeID, field.TypeString)
	}
	if value, ok := _u.mutation.FreightRate(); ok {
		_spec.SetField(contract.FieldFreightRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFreightRate(); ok {
		_spec.AddField(contract.FieldFreightRate, field.TypeFloat64, value)
	}
	if _u.mutation.FreightRateCleared() {
		_spec.ClearField(contract.FieldFreightRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LaycanStart(); ok {
		_spec.SetField(contract.FieldLaycanStart, field.TypeTime, value)
	}
	if _u.mutation.LaycanStartCleared() {
		_spec.ClearField(contract.FieldLaycanStart, field.TypeTime)
	}
	if value, ok := _u.mutation.LaycanEnd(); ok {
		_spec.SetField(contract.FieldLaycanEnd, field.TypeTime, value)
	}
	if _u.mutation.LaycanEndCleared() {
		_spec.ClearField(contract.FieldLaycanEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(contract.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(contract.FieldQuantity, field.TypeFloat64, value)
	}
	if _u.mutation.QuantityCleared() {
		_spec.ClearField(contract.FieldQuantity, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DemurrageRate(); ok {
		_spec.SetField(contract.FieldDemurrageRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDemurrageRate(); ok {
		_spec.AddField(contract.FieldDemurrageRate, field.TypeFloat64, value)
	}
	if _u.mutation.DemurrageRateCleared() {
		_spec.ClearField(contract.FieldDemurrageRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(contract.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(contract.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.FixtureCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FixtureIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contract.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContractUpdateOne is the builder for updating a single Contract entity.
type ContractUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContractMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContractUpdateOne) SetUpdatedAt(v time.Time) *ContractUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *ContractUpdateOne) SetOrderID(v string) *ContractUpdateOne {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableOrderID(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// ClearOrderID clears the value of the "order_id" field.
func (_u *ContractUpdateOne) ClearOrderID() *ContractUpdateOne {
	_u.mutation.ClearOrderID()
	return _u
}

// SetNegotiationID sets the "negotiation_id" field.
func (_u *ContractUpdateOne) SetNegotiationID(v string) *ContractUpdateOne {
	_u.mutation.SetNegotiationID(v)
	return _u
}

// SetNillableNegotiationID sets the "negotiation_id" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableNegotiationID(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetNegotiationID(*v)
	}
	return _u
}

// ClearNegotiationID clears the value of the "negotiation_id" field.
func (_u *ContractUpdateOne) ClearNegotiationID() *ContractUpdateOne {
	_u.mutation.ClearNegotiationID()
	return _u
}

// SetParentContractID sets the "parent_contract_id" field.
func (_u *ContractUpdateOne) SetParentContractID(v string) *ContractUpdateOne {
	_u.mutation.SetParentContractID(v)
	return _u
}

// SetNillableParentContractID sets the "parent_contract_id" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableParentContractID(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetParentContractID(*v)
	}
	return _u
}

// ClearParentContractID clears the value of the "parent_contract_id" field.
func (_u *ContractUpdateOne) ClearParentContractID() *ContractUpdateOne {
	_u.mutation.ClearParentContractID()
	return _u
}

// SetContractType sets the "contract_type" field.
func (_u *ContractUpdateOne) SetContractType(v string) *ContractUpdateOne {
	_u.mutation.SetContractType(v)
	return _u
}

// SetNillableContractType sets the "contract_type" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableContractType(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetContractType(*v)
	}
	return _u
}

// ClearContractType clears the value of the "contract_type" field.
func (_u *ContractUpdateOne) ClearContractType() *ContractUpdateOne {
	_u.mutation.ClearContractType()
	return _u
}

// SetDeliveryType sets the "delivery_type" field.
func (_u *ContractUpdateOne) SetDeliveryType(v string) *ContractUpdateOne {
	_u.mutation.SetDeliveryType(v)
	return _u
}

// SetNillableDeliveryType sets the "delivery_type" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableDeliveryType(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetDeliveryType(*v)
	}
	return _u
}

// ClearDeliveryType clears the value of the "delivery_type" field.
func (_u *ContractUpdateOne) ClearDeliveryType() *ContractUpdateOne {
	_u.mutation.ClearDeliveryType()
	return _u
}

// SetVesselID sets the "vessel_id" field.
func (_u *ContractUpdateOne) SetVesselID(v string) *ContractUpdateOne {
	_u.mutation.SetVesselID(v)
	return _u
}

// SetNillableVesselID sets the "vessel_id" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableVesselID(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetVesselID(*v)
	}
	return _u
}

// ClearVesselID clears the value of the "vessel_id" field.
func (_u *ContractUpdateOne) ClearVesselID() *ContractUpdateOne {
	_u.mutation.ClearVesselID()
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *ContractUpdateOne) SetCompanyID(v string) *ContractUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableCompanyID(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// ClearCompanyID clears the value of the "company_id" field.
func (_u *ContractUpdateOne) ClearCompanyID() *ContractUpdateOne {
	_u.mutation.ClearCompanyID()
	return _u
}

// SetLoadPortID sets the "load_port_id" field.
func (_u *ContractUpdateOne) SetLoadPortID(v string) *ContractUpdateOne {
	_u.mutation.SetLoadPortID(v)
	return _u
}

// SetNillableLoadPortID sets the "load_port_id" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableLoadPortID(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetLoadPortID(*v)
	}
	return _u
}

// ClearLoadPortID clears the value of the "load_port_id" field.
func (_u *ContractUpdateOne) ClearLoadPortID() *ContractUpdateOne {
	_u.mutation.ClearLoadPortID()
	return _u
}

// SetDischargePortID sets the "discharge_port_id" field.
func (_u *ContractUpdateOne) SetDischargePortID(v string) *ContractUpdateOne {
	_u.mutation.SetDischargePortID(v)
	return _u
}

// SetNillableDischargePortID sets the "discharge_port_id" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableDischargePortID(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetDischargePortID(*v)
	}
	return _u
}

// ClearDischargePortID clears the value of the "discharge_port_id" field.
func (_u *ContractUpdateOne) ClearDischargePortID() *ContractUpdateOne {
	_u.mutation.ClearDischargePortID()
	return _u
}

// SetCargoTypeID sets the "cargo_type_id" field.
func (_u *ContractUpdateOne) SetCargoTypeID(v string) *ContractUpdateOne {
	_u.mutation.SetCargoTypeID(v)
	return _u
}

// SetNillableCargoTypeID sets the "cargo_type_id" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableCargoTypeID(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetCargoTypeID(*v)
	}
	return _u
}

// ClearCargoTypeID clears the value of the "cargo_type_id" field.
func (_u *ContractUpdateOne) ClearCargoTypeID() *ContractUpdateOne {
	_u.mutation.ClearCargoTypeID()
	return _u
}

// SetFreightRate sets the "freight_rate" field.
func (_u *ContractUpdateOne) SetFreightRate(v float64) *ContractUpdateOne {
	_u.mutation.ResetFreightRate()
	_u.mutation.SetFreightRate(v)
	return _u
}

// SetNillableFreightRate sets the "freight_rate" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableFreightRate(v *float64) *ContractUpdateOne {
	if v != nil {
		_u.SetFreightRate(*v)
	}
	return _u
}

// AddFreightRate adds value to the "freight_rate" field.
func (_u *ContractUpdateOne) AddFreightRate(v float64) *ContractUpdateOne {
	_u.mutation.AddFreightRate(v)
	return _u
}

// ClearFreightRate clears the value of the "freight_rate" field.
func (_u *ContractUpdateOne) ClearFreightRate() *ContractUpdateOne {
	_u.mutation.ClearFreightRate()
	return _u
}

// SetLaycanStart sets the "laycan_start" field.
func (_u *ContractUpdateOne) SetLaycanStart(v time.Time) *ContractUpdateOne {
	_u.mutation.SetLaycanStart(v)
	return _u
}

// SetNillableLaycanStart sets the "laycan_start" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableLaycanStart(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetLaycanStart(*v)
	}
	return _u
}

// ClearLaycanStart clears the value of the "laycan_start" field.
func (_u *ContractUpdateOne) ClearLaycanStart() *ContractUpdateOne {
	_u.mutation.ClearLaycanStart()
	return _u
}

// SetLaycanEnd sets the "laycan_end" field.
func (_u *ContractUpdateOne) SetLaycanEnd(v time.Time) *ContractUpdateOne {
	_u.mutation.SetLaycanEnd(v)
	return _u
}

// SetNillableLaycanEnd sets the "laycan_end" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableLaycanEnd(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetLaycanEnd(*v)
	}
	return _u
}

// ClearLaycanEnd clears the value of the "laycan_end" field.
func (_u *ContractUpdateOne) ClearLaycanEnd() *ContractUpdateOne {
	_u.mutation.ClearLaycanEnd()
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *ContractUpdateOne) SetQuantity(v float64) *ContractUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableQuantity(v *float64) *ContractUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *ContractUpdateOne) AddQuantity(v float64) *ContractUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// ClearQuantity clears the value of the "quantity" field.
func (_u *ContractUpdateOne) ClearQuantity() *ContractUpdateOne {
	_u.mutation.ClearQuantity()
	return _u
}

// SetDemurrageRate sets the "demurrage_rate" field.
func (_u *ContractUpdateOne) SetDemurrageRate(v float64) *ContractUpdateOne {
	_u.mutation.ResetDemurrageRate()
	_u.mutation.SetDemurrageRate(v)
	return _u
}

// SetNillableDemurrageRate sets the "demurrage_rate" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableDemurrageRate(v *float64) *ContractUpdateOne {
	if v != nil {
		_u.SetDemurrageRate(*v)
	}
	return _u
}

// AddDemurrageRate adds value to the "demurrage_rate" field.
func (_u *ContractUpdateOne) AddDemurrageRate(v float64) *ContractUpdateOne {
	_u.mutation.AddDemurrageRate(v)
	return _u
}

// ClearDemurrageRate clears the value of the "demurrage_rate" field.
func (_u *ContractUpdateOne) ClearDemurrageRate() *ContractUpdateOne {
	_u.mutation.ClearDemurrageRate()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ContractUpdateOne) SetStatus(v contract.Status) *ContractUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableStatus(v *contract.Status) *ContractUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *ContractUpdateOne) SetCreatedBy(v string) *ContractUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableCreatedBy(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetFixtureID sets the "fixture" edge to the Fixture entity by ID.
func (_u *ContractUpdateOne) SetFixtureID(id string) *ContractUpdateOne {
	_u.mutation.SetFixtureID(id)
	return _u
}

// SetNillableFixtureID sets the "fixture" edge to the Fixture entity by ID if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableFixtureID(id *string) *ContractUpdateOne {
	if id != nil {
		_u = _u.SetFixtureID(*id)
	}
	return _u
}

// SetFixture sets the "fixture" edge to the Fixture entity.
func (_u *ContractUpdateOne) SetFixture(v *Fixture) *ContractUpdateOne {
	return _u.SetFixtureID(v.ID)
}

// Mutation returns the ContractMutation object of the builder.
func (_u *ContractUpdateOne) Mutation() *ContractMutation {
	return _u.mutation
}

// ClearFixture clears the "fixture" edge to the Fixture entity.
func (_u *ContractUpdateOne) ClearFixture() *ContractUpdateOne {
	_u.mutation.ClearFixture()
	return _u
}

// Where appends a list predicates to the ContractUpdate builder.
func (_u *ContractUpdateOne) Where(ps ...predicate.Contract) *ContractUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContractUpdateOne) Select(field string, fields ...string) *ContractUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Contract entity.
func (_u *ContractUpdateOne) Save(ctx context.Context) (*Contract, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractUpdateOne) SaveX(ctx context.Context) *Contract {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContractUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContractUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contract.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := contract.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Contract.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := contract.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Contract.created_by": %w`, err)}
		}
	}
	return nil
}

func (_u *ContractUpdateOne) sqlSave(ctx context.Context) (_node *Contract, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contract.Table, contract.Columns, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Contract.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contract.FieldID)
		for _, f := range fields {
			if !contract.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contract.FieldID {
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
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OrderID(); ok {
		_spec.SetField(contract.FieldOrderID, field.TypeString, value)
	}
	if _u.mutation.OrderIDCleared() {
		_spec.ClearField(contract.FieldOrderID, field.TypeString)
	}
	if value, ok := _u.mutation.NegotiationID(); ok {
		_spec.SetField(contract.FieldNegotiationID, field.TypeString, value)
	}
	if _u.mutation.NegotiationIDCleared() {
		_spec.ClearField(contract.FieldNegotiationID, field.TypeString)
	}
	if value, ok := _u.mutation.ParentContractID(); ok {
		_spec.SetField(contract.FieldParentContractID, field.TypeString, value)
	}
	if _u.mutation.ParentContractIDCleared() {
		_spec.ClearField(contract.FieldParentContractID, field.TypeString)
	}
	if value, ok := _u.mutation.ContractType(); ok {
		_spec.SetField(contract.FieldContractType, field.TypeString, value)
	}
	if _u.mutation.ContractTypeCleared() {
		_spec.ClearField(contract.FieldContractType, field.TypeString)
	}
	if value, ok := _u.mutation.DeliveryType(); ok {
		_spec.SetField(contract.FieldDeliveryType, field.TypeString, value)
	}
	if _u.mutation.DeliveryTypeCleared() {
		_spec.ClearField(contract.FieldDeliveryType, field.TypeString)
	}
	if value, ok := _u.mutation.VesselID(); ok {
		_spec.SetField(contract.FieldVesselID, field.TypeString, value)
	}
	if _u.mutation.VesselIDCleared() {
		_spec.ClearField(contract.FieldVesselID, field.TypeString)
	}
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(contract.FieldCompanyID, field.TypeString, value)
	}
	if _u.mutation.CompanyIDCleared() {
		_spec.ClearField(contract.FieldCompanyID, field.TypeString)
	}
	if value, ok := _u.mutation.LoadPortID(); ok {
		_spec.SetField(contract.FieldLoadPortID, field.TypeString, value)
	}
	if _u.mutation.LoadPortIDCleared() {
		_spec.ClearField(contract.FieldLoadPortID, field.TypeString)
	}
	if value, ok := _u.mutation.DischargePortID(); ok {
		_spec.SetField(contract.FieldDischargePortID, field.TypeString, value)
	}
	if _u.mutation.DischargePortIDCleared() {
		_spec.ClearField(contract.FieldDischargePortID, field.TypeString)
	}
	if value, ok := _u.mutation.CargoTypeID(); ok {
		_spec.SetField(contract.FieldCargoTypeID, field.TypeString, value)
	}
	if _u.mutation.CargoTypeIDCleared() {
		_spec.ClearField(contract.FieldCargoTypeID, field.TypeString)
	}
	if value, ok := _u.mutation.FreightRate(); ok {
		_spec.SetField(contract.FieldFreightRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFreightRate(); ok {
		_spec.AddField(contract.FieldFreightRate, field.TypeFloat64, value)
	}
	if _u.mutation.FreightRateCleared() {
		_spec.ClearField(contract.FieldFreightRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LaycanStart(); ok {
		_spec.SetField(contract.FieldLaycanStart, field.TypeTime, value)
	}
	if _u.mutation.LaycanStartCleared() {
		_spec.ClearField(contract.FieldLaycanStart, field.TypeTime)
	}
	if value, ok := _u.mutation.LaycanEnd(); ok {
		_spec.SetField(contract.FieldLaycanEnd, field.TypeTime, value)
	}
	if _u.mutation.LaycanEndCleared() {
		_spec.ClearField(contract.FieldLaycanEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(contract.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(contract.FieldQuantity, field.TypeFloat64, value)
	}
	if _u.mutation.QuantityCleared() {
		_spec.ClearField(contract.FieldQuantity, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DemurrageRate(); ok {
		_spec.SetField(contract.FieldDemurrageRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDemurrageRate(); ok {
		_spec.AddField(contract.FieldDemurrageRate, field.TypeFloat64, value)
	}
	if _u.mutation.DemurrageRateCleared() {
		_spec.ClearField(contract.FieldDemurrageRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(contract.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(contract.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.FixtureCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FixtureIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Contract{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contract.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
