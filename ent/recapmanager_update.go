// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charterdesk.io/charterdesk/ent/fixture"
	"charterdesk.io/charterdesk/ent/predicate"
	"charterdesk.io/charterdesk/ent/recapmanager"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// RecapManagerUpdate is the builder for updating RecapManager entities.
type RecapManagerUpdate struct {
	config
	hooks    []Hook
	mutation *RecapManagerMutation
}

// Where appends a list predicates to the RecapManagerUpdate builder.
func (_u *RecapManagerUpdate) Where(ps ...predicate.RecapManager) *RecapManagerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecapManagerUpdate) SetUpdatedAt(v time.Time) *RecapManagerUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *RecapManagerUpdate) SetOrderID(v string) *RecapManagerUpdate {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *RecapManagerUpdate) SetNillableOrderID(v *string) *RecapManagerUpdate {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// ClearOrderID clears the value of the "order_id" field.
func (_u *RecapManagerUpdate) ClearOrderID() *RecapManagerUpdate {
	_u.mutation.ClearOrderID()
	return _u
}

// SetNegotiationID sets the "negotiation_id" field.
func (_u *RecapManagerUpdate) SetNegotiationID(v string) *RecapManagerUpdate {
	_u.mutation.SetNegotiationID(v)
	return _u
}

// SetNillableNegotiationID sets the "negotiation_id" field if the given value is not nil.
func (_u *RecapManagerUpdate) SetNillableNegotiationID(v *string) *RecapManagerUpdate {
	if v != nil {
		_u.SetNegotiationID(*v)
	}
	return _u
}

// ClearNegotiationID clears the value of the "negotiation_id" field.
func (_u *RecapManagerUpdate) ClearNegotiationID() *RecapManagerUpdate {
	_u.mutation.ClearNegotiationID()
	return _u
}

// SetParentRecapID sets the "parent_recap_id" field.
func (_u *RecapManagerUpdate) SetParentRecapID(v string) *RecapManagerUpdate {
	_u.mutation.SetParentRecapID(v)
	return _u
}

// SetNillableParentRecapID sets the "parent_recap_id" field if the given value is not nil.
func (_u *RecapManagerUpdate) SetNillableParentRecapID(v *string) *RecapManagerUpdate {
	if v != nil {
		_u.SetParentRecapID(*v)
	}
	return _u
}

// ClearParentRecapID clears the value of the "parent_recap_id" field.
func (_u *RecapManagerUpdate) ClearParentRecapID() *RecapManagerUpdate {
	_u.mutation.ClearParentRecapID()
	return _u
}

// SetContractType sets the "contract_type" field.
func (_u *RecapManagerUpdate) SetContractType(v string) *RecapManagerUpdate {
	_u.mutation.SetContractType(v)
	return _u
}

// SetNillableContractType sets the "contract_type" field if the given value is not nil.
func (_u *RecapManagerUpdate) SetNillableContractType(v *string) *RecapManagerUpdate {
	if v != nil {
		_u.SetContractType(*v)
	}
	return _u
}

// ClearContractType clears the value of the "contract_type" field.
func (_u *RecapManagerUpdate) ClearContractType() *RecapManagerUpdate {
	_u.mutation.ClearContractType()
	return _u
}

// SetDeliveryType sets the "delivery_type" field.
func (_u *RecapManagerUpdate) SetDeliveryType(v string) *RecapManagerUpdate {
	_u.mutation.SetDeliveryType(v)
	return _u
}

// SetNillableDeliveryType sets the "delivery_type" field if the given value is not nil.
func (_u *RecapManagerUpdate) SetNillableDeliveryType(v *string) *RecapManagerUpdate {
	if v != nil {
		_u.SetDeliveryType(*v)
	}
	return _u
}

// ClearDeliveryType clears the value of the "delivery_type" field.
func (_u *RecapManagerUpdate) ClearDeliveryType() *RecapManagerUpdate {
	_u.mutation.ClearDeliveryType()
	return _u
}

// SetMarketIndex sets the "market_index" field.
func (_u *RecapManagerUpdate) SetMarketIndex(v string) *RecapManagerUpdate {
	_u.mutation.SetMarketIndex(v)
	return _u
}

// SetNillableMarketIndex sets the "market_index" field if the given value is not nil.
func (_u *RecapManagerUpdate) SetNillableMarketIndex(v *string) *RecapManagerUpdate {
	if v != nil {
		_u.SetMarketIndex(*v)
	}
	return _u
}

// ClearMarketIndex clears the value of the "market_index" field.
func (_u *RecapManagerUpdate) ClearMarketIndex() *RecapManagerUpdate {
	_u.mutation.ClearMarketIndex()
	return _u
}

// SetVesselID sets the "vessel_id" field.
func (_u *RecapManagerUpdate) SetVesselID(v string) *RecapManagerUpdate {
	_u.mutation.SetVesselID(v)
	return _u
}

// SetNillableVesselID sets the "vessel_id" field if the given value is not nil.
func (_u *RecapManagerUpdate) SetNillableVesselID(v *string) *RecapManagerUpdate {
	if v != nil {
		_u.SetVesselID(*v)
	}
	return _u
}

// ClearVesselID clears the value of the "vessel_id" field.
func (_u *RecapManagerUpdate) ClearVesselID() *RecapManagerUpdate {
	_u.mutation.ClearVesselID()
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *RecapManagerUpdate) SetCompanyID(v string) *RecapManagerUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *RecapManagerUpdate) SetNillableCompanyID(v *string) *RecapManagerUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// ClearCompanyID clears the value of the "company_id" field.
func (_u *RecapManagerUpdate) ClearCompanyID() *RecapManagerUpdate {
	_u.mutation.ClearCompanyID()
	return _u
}

// SetLoadPortID sets the "load_port_id" field.
func (_u *RecapManagerUpdate) SetLoadPortID(v string) *RecapManagerUpdate {
	_u.mutation.SetLoadPortID(v)
	return _u
}

// SetNillableLoadPortID sets the "load_port_id" field if the given value is not nil.
func (_u *RecapManagerUpdate) SetNillableLoadPortID(v *string) *RecapManagerUpdate {
	if v != nil {
		_u.SetLoadPortID(*v)
	}
	return _u
}

// ClearLoadPortID clears the value of the "load_port_id" field.
func (_u *RecapManagerUpdate) ClearLoadPortID() *RecapManagerUpdate {
	_u.mutation.ClearLoadPortID()
	return _u
}

// SetDischargePortID sets the "discharge_port_id" field.
func (_u *RecapManagerUpdate) SetDischargePortID(v string) *RecapManagerUpdate {
	_u.mutation.SetDischargePortID(v)
	return _u
}

// SetNillableDischargePortID sets the "discharge_port_id" field if the given value is not nil.
func (_u *RecapManagerUpdate) SetNillableDischargePortID(v *string) *RecapManagerUpdate {
	if v != nil {
		_u.SetDischargePortID(*v)
	}
	return _u
}

// ClearDischargePortID clears the value of the "discharge_port_id" field.
func (_u *RecapManagerUpdate) ClearDischargePortID() *RecapManagerUpdate {
	_u.mutation.ClearDischargePortID()
	return _u
}

// SetCargoTypeID sets the "cargo_type_id" field.
func (_u *RecapManagerUpdate) SetCargoTypeID(v string) *RecapManagerUpdate {
	_u.mutation.SetCargoTypeID(v)
	return _u
}

// SetNillableCargoTypeID sets the "cargo_type_id" field if the given value is not nil.
func (_u *RecapManagerUpdate) SetNillableCargoTypeID(v *string) *RecapManagerUpdate {
	if v != nil {
		_u.SetCargoTypeID(*v)
	}
	return _u
}

// ClearCargoTypeID clears the value of the "cargo_type_id" field.
func (_u *RecapManagerUpdate) ClearCargoTypeID() *RecapManagerUpdate {
	_u.mutation.ClearCargoTypeID()
	return _u
}

// SetFreightRate sets the "freight_rate" field.
func (_u *RecapManagerUpdate) SetFreightRate(v float64) *RecapManagerUpdate {
	_u.mutation.ResetFreightRate()
	_u.mutation.SetFreightRate(v)
	return _u
}

// SetNillableFreightRate sets the "freight_rate" field if the given value is not nil.
func (_u *RecapManagerUpdate) SetNillableFreightRate(v *float64) *RecapManagerUpdate {
	if v != nil {
		_u.SetFreightRate(*v)
	}
	return _u
}

// AddFreightRate adds value to the "freight_rate" field.
func (_u *RecapManagerUpdate) AddFreightRate(v float64) *RecapManagerUpdate {
	_u.mutation.AddFreightRate(v)
	return _u
}

// ClearFreightRate clears the value of the "freight_rate" field.
func (_u *RecapManagerUpdate) ClearFreightRate() *RecapManagerUpdate {
	_u.mutation.ClearFreightRate()
	return _u
}

// SetLaycanStart sets the "laycan_start" field.
func (_u *RecapManagerUpdate) SetLaycanStart(v time.Time) *RecapManagerUpdate {
	_u.mutation.SetLaycanStart(v)
	return _u
}

// SetNillableLaycanStart sets the "laycan_start" field if the given value is not nil.
func (_u *RecapManagerUpdate) SetNillableLaycanStart(v *time.Time) *RecapManagerUpdate {
	if v != nil {
		_u.SetLaycanStart(*v)
	}
	return _u
}

// ClearLaycanStart clears the value of the "laycan_start" field.
func (_u *RecapManagerUpdate) ClearLaycanStart() *RecapManagerUpdate {
	_u.mutation.ClearLaycanStart()
	return _u
}

// SetLaycanEnd sets the "laycan_end" field.
func (_u *RecapManagerUpdate) SetLaycanEnd(v time.Time) *RecapManagerUpdate {
	_u.mutation.SetLaycanEnd(v)
	return _u
}

// SetNillableLaycanEnd sets the "laycan_end" field if the given value is not nil.
func (_u *RecapManagerUpdate) SetNillableLaycanEnd(v *time.Time) *RecapManagerUpdate {
	if v != nil {
		_u.SetLaycanEnd(*v)
	}
	return _u
}

// ClearLaycanEnd clears the value of the "laycan_end" field.
func (_u *RecapManagerUpdate) ClearLaycanEnd() *RecapManagerUpdate {
	_u.mutation.ClearLaycanEnd()
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *RecapManagerUpdate) SetQuantity(v float64) *RecapManagerUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *RecapManagerUpdate) SetNillableQuantity(v *float64) *RecapManagerUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *RecapManagerUpdate) AddQuantity(v float64) *RecapManagerUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// ClearQuantity clears the value of the "quantity" field.
func (_u *RecapManagerUpdate) ClearQuantity() *RecapManagerUpdate {
	_u.mutation.ClearQuantity()
	return _u
}

// SetDemurrageRate sets the "demurrage_rate" field.
func (_u *RecapManagerUpdate) SetDemurrageRate(v float64) *RecapManagerUpdate {
	_u.mutation.ResetDemurrageRate()
	_u.mutation.SetDemurrageRate(v)
	return _u
}

// SetNillableDemurrageRate sets the "demurrage_rate" field if the given value is not nil.
func (_u *RecapManagerUpdate) SetNillableDemurrageRate(v *float64) *RecapManagerUpdate {
	if v != nil {
		_u.SetDemurrageRate(*v)
	}
	return _u
}

// AddDemurrageRate adds value to the "demurrage_rate" field.
func (_u *RecapManagerUpdate) AddDemurrageRate(v float64) *RecapManagerUpdate {
	_u.mutation.AddDemurrageRate(v)
	return _u
}

// ClearDemurrageRate clears the value of the "demurrage_rate" field.
func (_u *RecapManagerUpdate) ClearDemurrageRate() *RecapManagerUpdate {
	_u.mutation.ClearDemurrageRate()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RecapManagerUpdate) SetStatus(v recapmanager.Status) *RecapManagerUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RecapManagerUpdate) SetNillableStatus(v *recapmanager.Status) *RecapManagerUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *RecapManagerUpdate) SetCreatedBy(v string) *RecapManagerUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *RecapManagerUpdate) SetNillableCreatedBy(v *string) *RecapManagerUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetFixtureID sets the "fixture" edge to the Fixture entity by ID.
func (_u *RecapManagerUpdate) SetFixtureID(id string) *RecapManagerUpdate {
	_u.mutation.SetFixtureID(id)
	return _u
}

// SetNillableFixtureID sets the "fixture" edge to the Fixture entity by ID if the given value is not nil.
func (_u *RecapManagerUpdate) SetNillableFixtureID(id *string) *RecapManagerUpdate {
	if id != nil {
		_u = _u.SetFixtureID(*id)
	}
	return _u
}

// SetFixture sets the "fixture" edge to the Fixture entity.
func (_u *RecapManagerUpdate) SetFixture(v *Fixture) *RecapManagerUpdate {
	return _u.SetFixtureID(v.ID)
}

// Mutation returns the RecapManagerMutation object of the builder.
func (_u *RecapManagerUpdate) Mutation() *RecapManagerMutation {
	return _u.mutation
}

// ClearFixture clears the "fixture" edge to the Fixture entity.
func (_u *RecapManagerUpdate) ClearFixture() *RecapManagerUpdate {
	_u.mutation.ClearFixture()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecapManagerUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecapManagerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecapManagerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecapManagerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RecapManagerUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := recapmanager.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecapManagerUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := recapmanager.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RecapManager.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := recapmanager.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "RecapManager.created_by": %w`, err)}
		}
	}
	return nil
}

func (_u *RecapManagerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recapmanager.Table, recapmanager.Columns, sqlgraph.NewFieldSpec(recapmanager.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(recapmanager.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OrderID(); ok {
		_spec.SetField(recapmanager.FieldOrderID, field.TypeString, value)
	}
	if _u.mutation.OrderIDCleared() {
		_spec.ClearField(recapmanager.FieldOrderID, field.TypeString)
	}
	if value, ok := _u.mutation.NegotiationID(); ok {
		_spec.SetField(recapmanager.FieldNegotiationID, field.TypeString, value)
	}
	if _u.mutation.NegotiationIDCleared() {
		_spec.ClearField(recapmanager.FieldNegotiationID, field.TypeString)
	}
	if value, ok := _u.mutation.ParentRecapID(); ok {
		_spec.SetField(recapmanager.FieldParentRecapID, field.TypeString, value)
	}
	if _u.mutation.ParentRecapIDCleared() {
		_spec.ClearField(recapmanager.FieldParentRecapID, field.TypeString)
	}
	if value, ok := _u.mutation.ContractType(); ok {
		_spec.SetField(recapmanager.FieldContractType, field.TypeString, value)
	}
	if _u.mutation.ContractTypeCleared() {
		_spec.ClearField(recapmanager.FieldContractType, field.TypeString)
	}
	if value, ok := _u.mutation.DeliveryType(); ok {
		_spec.SetField(recapmanager.FieldDeliveryType, field.TypeString, value)
	}
	if _u.mutation.DeliveryTypeCleared() {
		_spec.ClearField(recapmanager.FieldDeliveryType, field.TypeString)
	}
	if value, ok := _u.mutation.MarketIndex(); ok {
		_spec.SetField(recapmanager.FieldMarketIndex, field.TypeString, value)
	}
	if _u.mutation.MarketIndexCleared() {
		_spec.ClearField(recapmanager.FieldMarketIndex, field.TypeString)
	}
	if value, ok := _u.mutation.VesselID(); ok {
		_spec.SetField(recapmanager.FieldVesselID, field.TypeString, value)
	}
	if _u.mutation.VesselIDCleared() {
		_spec.ClearField(recapmanager.FieldVesselID, field.TypeString)
	}
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(recapmanager.FieldCompanyID, field.TypeString, value)
	}
	if _u.mutation.CompanyIDCleared() {
		_spec.ClearField(recapmanager.FieldCompanyID, field.TypeString)
	}
	if value, ok := _u.mutation.LoadPortID(); ok {
		_spec.SetField(recapmanager.FieldLoadPortID, field.TypeString, value)
	}
	if _u.mutation.LoadPortIDCleared() {
		_spec.ClearField(recapmanager.FieldLoadPortID, field.TypeString)
	}
	if value, ok := _u.mutation.DischargePortID(); ok {
		_spec.SetField(recapmanager.FieldDischargePortID, field.TypeString, value)
	}
	if _u.mutation.DischargePortIDCleared() {
		_spec.ClearField(recapmanager.FieldDischargePortID, field.TypeString)
	}
	if value, ok := _u.mutation.CargoTypeID(); ok {
		_spec.SetField(recapmanager.FieldCargoTypeID, field.TypeString, value)
	}
	if _u.mutation.CargoTypeIDCleared() {
		_spec.ClearField(recapmanager.FieldCargoTypeID, field.TypeString)
	}
	if value, ok := _u.mutation.FreightRate(); ok {
		_spec.SetField(recapmanager.FieldFreightRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFreightRate(); ok {
		_spec.AddField(recapmanager.FieldFreightRate, field.TypeFloat64, value)
	}
	if _u.mutation.FreightRateCleared() {
		_spec.ClearField(recapmanager.FieldFreightRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LaycanStart(); ok {
		_spec.SetField(recapmanager.FieldLaycanStart, field.TypeTime, value)
	}
	if _u.mutation.LaycanStartCleared() {
		_spec.ClearField(recapmanager.FieldLaycanStart, field.TypeTime)
	}
	if value, ok := _u.mutation.LaycanEnd(); ok {
		_spec.SetField(recapmanager.FieldLaycanEnd, field.TypeTime, value)
	}
	if _u.mutation.LaycanEndCleared() {
		_spec.ClearField(recapmanager.FieldLaycanEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(recapmanager.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(recapmanager.FieldQuantity, field.TypeFloat64, value)
	}
	if _u.mutation.QuantityCleared() {
		_spec.ClearField(recapmanager.FieldQuantity, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DemurrageRate(); ok {
		_spec.SetField(recapmanager.FieldDemurrageRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDemurrageRate(); ok {
		_spec.AddField(recapmanager.FieldDemurrageRate, field.TypeFloat64, value)
	}
	if _u.mutation.DemurrageRateCleared() {
		_spec.ClearField(recapmanager.FieldDemurrageRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(recapmanager.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(recapmanager.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.FixtureCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FixtureIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recapmanager.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecapManagerUpdateOne is the builder for updating a single RecapManager entity.
type RecapManagerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecapManagerMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecapManagerUpdateOne) SetUpdatedAt(v time.Time) *RecapManagerUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *RecapManagerUpdateOne) SetOrderID(v string) *RecapManagerUpdateOne {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *RecapManagerUpdateOne) SetNillableOrderID(v *string) *RecapManagerUpdateOne {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// ClearOrderID clears the value of the "order_id" field.
func (_u *RecapManagerUpdateOne) ClearOrderID() *RecapManagerUpdateOne {
	_u.mutation.ClearOrderID()
	return _u
}

// SetNegotiationID sets the "negotiation_id" field.
func (_u *RecapManagerUpdateOne) SetNegotiationID(v string) *RecapManagerUpdateOne {
	_u.mutation.SetNegotiationID(v)
	return _u
}

// SetNillableNegotiationID sets the "negotiation_id" field if the given value is not nil.
func (_u *RecapManagerUpdateOne) SetNillableNegotiationID(v *string) *RecapManagerUpdateOne {
	if v != nil {
		_u.SetNegotiationID(*v)
	}
	return _u
}

// ClearNegotiationID clears the value of the "negotiation_id" field.
func (_u *RecapManagerUpdateOne) ClearNegotiationID() *RecapManagerUpdateOne {
	_u.mutation.ClearNegotiationID()
	return _u
}

// SetParentRecapID sets the "parent_recap_id" field.
func (_u *RecapManagerUpdateOne) SetParentRecapID(v string) *RecapManagerUpdateOne {
	_u.mutation.SetParentRecapID(v)
	return _u
}

// SetNillableParentRecapID sets the "parent_recap_id" field if the given value is not nil.
func (_u *RecapManagerUpdateOne) SetNillableParentRecapID(v *string) *RecapManagerUpdateOne {
	if v != nil {
		_u.SetParentRecapID(*v)
	}
	return _u
}

// ClearParentRecapID clears the value of the "parent_recap_id" field.
func (_u *RecapManagerUpdateOne) ClearParentRecapID() *RecapManagerUpdateOne {
	_u.mutation.ClearParentRecapID()
	return _u
}

// SetContractType sets the "contract_type" field.
func (_u *RecapManagerUpdateOne) SetContractType(v string) *RecapManagerUpdateOne {
	_u.mutation.SetContractType(v)
	return _u
}

// SetNillableContractType sets the "contract_type" field if the given value is not nil.
func (_u *RecapManagerUpdateOne) SetNillableContractType(v *string) *RecapManagerUpdateOne {
	if v != nil {
		_u.SetContractType(*v)
	}
	return _u
}

// ClearContractType clears the value of the "contract_type" field.
func (_u *RecapManagerUpdateOne) ClearContractType() *RecapManagerUpdateOne {
	_u.mutation.ClearContractType()
	return _u
}

// SetDeliveryType sets the "delivery_type" field.
func (_u *RecapManagerUpdateOne) SetDeliveryType(v string) *RecapManagerUpdateOne {
	_u.mutation.SetDeliveryType(v)
	return _u
}

// SetNillableDeliveryType sets the "delivery_type" field if the given value is not nil.
func (_u *RecapManagerUpdateOne) SetNillableDeliveryType(v *string) *RecapManagerUpdateOne {
	if v != nil {
		_u.SetDeliveryType(*v)
	}
	return _u
}

// ClearDeliveryType clears the value of the "delivery_type" field.
func (_u *RecapManagerUpdateOne) ClearDeliveryType() *RecapManagerUpdateOne {
	_u.mutation.ClearDeliveryType()
	return _u
}

// SetMarketIndex sets the "market_index" field.
func (_u *RecapManagerUpdateOne) SetMarketIndex(v string) *RecapManagerUpdateOne {
	_u.mutation.SetMarketIndex(v)
	return _u
}

// SetNillableMarketIndex sets the "market_index" field if the given value is not nil.
func (_u *RecapManagerUpdateOne) SetNillableMarketIndex(v *string) *RecapManagerUpdateOne {
	if v != nil {
		_u.SetMarketIndex(*v)
	}
	return _u
}

// ClearMarketIndex clears the value of the "market_index" field.
func (_u *RecapManagerUpdateOne) ClearMarketIndex() *RecapManagerUpdateOne {
	_u.mutation.ClearMarketIndex()
	return _u
}

// SetVesselID sets the "vessel_id" field.
func (_u *RecapManagerUpdateOne) SetVesselID(v string) *RecapManagerUpdateOne {
	_u.mutation.SetVesselID(v)
	return _u
}

// SetNillableVesselID sets the "vessel_id" field if the given value is not nil.
func (_u *RecapManagerUpdateOne) SetNillableVesselID(v *string) *RecapManagerUpdateOne {
	if v != nil {
		_u.SetVesselID(*v)
	}
	return _u
}

// ClearVesselID clears the value of the "vessel_id" field.
func (_u *RecapManagerUpdateOne) ClearVesselID() *RecapManagerUpdateOne {
	_u.mutation.ClearVesselID()
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *RecapManagerUpdateOne) SetCompanyID(v string) *RecapManagerUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *RecapManagerUpdateOne) SetNillableCompanyID(v *string) *RecapManagerUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// ClearCompanyID clears the value of the "company_id" field.
func (_u *RecapManagerUpdateOne) ClearCompanyID() *RecapManagerUpdateOne {
	_u.mutation.ClearCompanyID()
	return _u
}

// SetLoadPortID sets the "load_port_id" field.
func (_u *RecapManagerUpdateOne) SetLoadPortID(v string) *RecapManagerUpdateOne {
	_u.mutation.SetLoadPortID(v)
	return _u
}

// SetNillableLoadPortID sets the "load_port_id" field if the given value is not nil.
func (_u *RecapManagerUpdateOne) SetNillableLoadPortID(v *string) *RecapManagerUpdateOne {
	if v != nil {
		_u.SetLoadPortID(*v)
	}
	return _u
}

// ClearLoadPortID clears the value of the "load_port_id" field.
func (_u *RecapManagerUpdateOne) ClearLoadPortID() *RecapManagerUpdateOne {
	_u.mutation.ClearLoadPortID()
	return _u
}

// SetDischargePortID sets the "discharge_port_id" field.
func (_u *RecapManagerUpdateOne) SetDischargePortID(v string) *RecapManagerUpdateOne {
	_u.mutation.SetDischargePortID(v)
	return _u
}

// SetNillableDischargePortID sets the "discharge_port_id" field if the given value is not nil.
func (_u *RecapManagerUpdateOne) SetNillableDischargePortID(v *string) *RecapManagerUpdateOne {
	if v != nil {
		_u.SetDischargePortID(*v)
	}
	return _u
}

// ClearDischargePortID clears the value of the "discharge_port_id" field.
func (_u *RecapManagerUpdateOne) ClearDischargePortID() *RecapManagerUpdateOne {
	_u.mutation.ClearDischargePortID()
	return _u
}

// SetCargoTypeID sets the "cargo_type_id" field.
func (_u *RecapManagerUpdateOne) SetCargoTypeID(v string) *RecapManagerUpdateOne {
	_u.mutation.SetCargoTypeID(v)
	return _u
}

// SetNillableCargoTypeID sets the "cargo_type_id" field if the given value is not nil.
func (_u *RecapManagerUpdateOne) SetNillableCargoTypeID(v *string) *RecapManagerUpdateOne {
	if v != nil {
		_u.SetCargoTypeID(*v)
	}
	return _u
}

// ClearCargoTypeID clears the value of the "cargo_type_id" field.
func (_u *RecapManagerUpdateOne) ClearCargoTypeID() *RecapManagerUpdateOne {
	_u.mutation.ClearCargoTypeID()
	return _u
}

// SetFreightRate sets the "freight_rate" field.
func (_u *RecapManagerUpdateOne) SetFreightRate(v float64) *RecapManagerUpdateOne {
	_u.mutation.ResetFreightRate()
	_u.mutation.SetFreightRate(v)
	return _u
}

// SetNillableFreightRate sets the "freight_rate" field if the given value is not nil.
func (_u *RecapManagerUpdateOne) SetNillableFreightRate(v *float64) *RecapManagerUpdateOne {
	if v != nil {
		_u.SetFreightRate(*v)
	}
	return _u
}

// AddFreightRate adds value to the "freight_rate" field.
func (_u *RecapManagerUpdateOne) AddFreightRate(v float64) *RecapManagerUpdateOne {
	_u.mutation.AddFreightRate(v)
	return _u
}

// ClearFreightRate clears the value of the "freight_rate" field.
func (_u *RecapManagerUpdateOne) ClearFreightRate() *RecapManagerUpdateOne {
	_u.mutation.ClearFreightRate()
	return _u
}

// SetLaycanStart sets the "laycan_start" field.
func (_u *RecapManagerUpdateOne) SetLaycanStart(v time.Time) *RecapManagerUpdateOne {
	_u.mutation.SetLaycanStart(v)
	return _u
}

// SetNillableLaycanStart sets the "laycan_start" field if the given value is not nil.
func (_u *RecapManagerUpdateOne) SetNillableLaycanStart(v *time.Time) *RecapManagerUpdateOne {
	if v != nil {
		_u.SetLaycanStart(*v)
	}
	return _u
}

// ClearLaycanStart clears the value of the "laycan_start" field.
func (_u *RecapManagerUpdateOne) ClearLaycanStart() *RecapManagerUpdateOne {
	_u.mutation.ClearLaycanStart()
	return _u
}

// SetLaycanEnd sets the "laycan_end" field.
func (_u *RecapManagerUpdateOne) SetLaycanEnd(v time.Time) *RecapManagerUpdateOne {
	_u.mutation.SetLaycanEnd(v)
	return _u
}

// SetNillableLaycanEnd sets the "laycan_end" field if the given value is not nil.
func (_u *RecapManagerUpdateOne) SetNillableLaycanEnd(v *time.Time) *RecapManagerUpdateOne {
	if v != nil {
		_u.SetLaycanEnd(*v)
	}
	return _u
}

// ClearLaycanEnd clears the value of the "laycan_end" field.
func (_u *RecapManagerUpdateOne) ClearLaycanEnd() *RecapManagerUpdateOne {
	_u.mutation.ClearLaycanEnd()
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *RecapManagerUpdateOne) SetQuantity(v float64) *RecapManagerUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *RecapManagerUpdateOne) SetNillableQuantity(v *float64) *RecapManagerUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *RecapManagerUpdateOne) AddQuantity(v float64) *RecapManagerUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// ClearQuantity clears the value of the "quantity" field.
func (_u *RecapManagerUpdateOne) ClearQuantity() *RecapManagerUpdateOne {
	_u.mutation.ClearQuantity()
	return _u
}

// SetDemurrageRate sets the "demurrage_rate" field.
func (_u *RecapManagerUpdateOne) SetDemurrageRate(v float64) *RecapManagerUpdateOne {
	_u.mutation.ResetDemurrageRate()
	_u.mutation.SetDemurrageRate(v)
	return _u
}

// SetNillableDemurrageRate sets the "demurrage_rate" field if the given value is not nil.
func (_u *RecapManagerUpdateOne) SetNillableDemurrageRate(v *float64) *RecapManagerUpdateOne {
	if v != nil {
		_u.SetDemurrageRate(*v)
	}
	return _u
}

// AddDemurrageRate adds value to the "demurrage_rate" field.
func (_u *RecapManagerUpdateOne) AddDemurrageRate(v float64) *RecapManagerUpdateOne {
	_u.mutation.AddDemurrageRate(v)
	return _u
}

// ClearDemurrageRate clears the value of the "demurrage_rate" field.
func (_u *RecapManagerUpdateOne) ClearDemurrageRate() *RecapManagerUpdateOne {
	_u.mutation.ClearDemurrageRate()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RecapManagerUpdateOne) SetStatus(v recapmanager.Status) *RecapManagerUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RecapManagerUpdateOne) SetNillableStatus(v *recapmanager.Status) *RecapManagerUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *RecapManagerUpdateOne) SetCreatedBy(v string) *RecapManagerUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *RecapManagerUpdateOne) SetNillableCreatedBy(v *string) *RecapManagerUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetFixtureID sets the "fixture" edge to the Fixture entity by ID.
func (_u *RecapManagerUpdateOne) SetFixtureID(id string) *RecapManagerUpdateOne {
	_u.mutation.SetFixtureID(id)
	return _u
}

// SetNillableFixtureID sets the "fixture" edge to the Fixture entity by ID if the given value is not nil.
func (_u *RecapManagerUpdateOne) SetNillableFixtureID(id *string) *RecapManagerUpdateOne {
	if id != nil {
		_u = _u.SetFixtureID(*id)
	}
	return _u
}

// SetFixture sets the "fixture" edge to the Fixture entity.
func (_u *RecapManagerUpdateOne) SetFixture(v *Fixture) *RecapManagerUpdateOne {
	return _u.SetFixtureID(v.ID)
}

// Mutation returns the RecapManagerMutation object of the builder.
func (_u *RecapManagerUpdateOne) Mutation() *RecapManagerMutation {
	return _u.mutation
}

// ClearFixture clears the "fixture" edge to the Fixture entity.
func (_u *RecapManagerUpdateOne) ClearFixture() *RecapManagerUpdateOne {
	_u.mutation.ClearFixture()
	return _u
}

// Where appends a list predicates to the RecapManagerUpdate builder.
func (_u *RecapManagerUpdateOne) Where(ps ...predicate.RecapManager) *RecapManagerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecapManagerUpdateOne) Select(field string, fields ...string) *RecapManagerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RecapManager entity.
func (_u *RecapManagerUpdateOne) Save(ctx context.Context) (*RecapManager, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecapManagerUpdateOne) SaveX(ctx context.Context) *RecapManager {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecapManagerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecapManagerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RecapManagerUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := recapmanager.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecapManagerUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := recapmanager.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RecapManager.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := recapmanager.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "RecapManager.created_by": %w`, err)}
		}
	}
	return nil
}

func (_u *RecapManagerUpdateOne) sqlSave(ctx context.Context) (_node *RecapManager, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recapmanager.Table, recapmanager.Columns, sqlgraph.NewFieldSpec(recapmanager.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RecapManager.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recapmanager.FieldID)
		for _, f := range fields {
			if !recapmanager.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != recapmanager.FieldID {
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
		_spec.SetField(recapmanager.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OrderID(); ok {
		_spec.SetField(recapmanager.FieldOrderID, field.TypeString, value)
	}
	if _u.mutation.OrderIDCleared() {
		_spec.ClearField(recapmanager.FieldOrderID, field.TypeString)
	}
	if value, ok := _u.mutation.NegotiationID(); ok {
		_spec.SetField(recapmanager.FieldNegotiationID, field.TypeString, value)
	}
	if _u.mutation.NegotiationIDCleared() {
		_spec.ClearField(recapmanager.FieldNegotiationID, field.TypeString)
	}
	if value, ok := _u.mutation.ParentRecapID(); ok {
		_spec.SetField(recapmanager.FieldParentRecapID, field.TypeString, value)
	}
	if _u.mutation.ParentRecapIDCleared() {
		_spec.ClearField(recapmanager.FieldParentRecapID, field.TypeString)
	}
	if value, ok := _u.mutation.ContractType(); ok {
		_spec.SetField(recapmanager.FieldContractType, field.TypeString, value)
	}
	if _u.mutation.ContractTypeCleared() {
		_spec.ClearField(recapmanager.FieldContractType, field.TypeString)
	}
	if value, ok := _u.mutation.DeliveryType(); ok {
		_spec.SetField(recapmanager.FieldDeliveryType, field.TypeString, value)
	}
	if _u.mutation.DeliveryTypeCleared() {
		_spec.ClearField(recapmanager.FieldDeliveryType, field.TypeString)
	}
	if value, ok := _u.mutation.MarketIndex(); ok {
		_spec.SetField(recapmanager.FieldMarketIndex, field.TypeString, value)
	}
	if _u.mutation.MarketIndexCleared() {
		_spec.ClearField(recapmanager.FieldMarketIndex, field.TypeString)
	}
	if value, ok := _u.mutation.VesselID(); ok {
		_spec.SetField(recapmanager.FieldVesselID, field.TypeString, value)
	}
	if _u.mutation.VesselIDCleared() {
		_spec.ClearField(recapmanager.FieldVesselID, field.TypeString)
	}
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(recapmanager.FieldCompanyID, field.TypeString, value)
	}
	if _u.mutation.CompanyIDCleared() {
		_spec.ClearField(recapmanager.FieldCompanyID, field.TypeString)
	}
	if value, ok := _u.mutation.LoadPortID(); ok {
		_spec.SetField(recapmanager.FieldLoadPortID, field.TypeString, value)
	}
	if _u.mutation.LoadPortIDCleared() {
		_spec.ClearField(recapmanager.FieldLoadPortID, field.TypeString)
	}
	if value, ok := _u.mutation.DischargePortID(); ok {
		_spec.SetField(recapmanager.FieldDischargePortID, field.TypeString, value)
	}
	if _u.mutation.DischargePortIDCleared() {
		_spec.ClearField(recapmanager.FieldDischargePortID, field.TypeString)
	}
	if value, ok := _u.mutation.CargoTypeID(); ok {
		_spec.SetField(recapmanager.FieldCargoTypeID, field.TypeString, value)
	}
	if _u.mutation.CargoTypeIDCleared() {
		_spec.ClearField(recapmanager.FieldCargoTypeID, field.TypeString)
	}
	if value, ok := _u.mutation.FreightRate(); ok {
		_spec.SetField(recapmanager.FieldFreightRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFreightRate(); ok {
		_spec.AddField(recapmanager.FieldFreightRate, field.TypeFloat64, value)
	}
	if _u.mutation.FreightRateCleared() {
		_spec.ClearField(recapmanager.FieldFreightRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LaycanStart(); ok {
		_spec.SetField(recapmanager.FieldLaycanStart, field.TypeTime, value)
	}
	if _u.mutation.LaycanStartCleared() {
		_spec.ClearField(recapmanager.FieldLaycanStart, field.TypeTime)
	}
	if value, ok := _u.mutation.LaycanEnd(); ok {
		_spec.SetField(recapmanager.FieldLaycanEnd, field.TypeTime, value)
	}
	if _u.mutation.LaycanEndCleared() {
		_spec.ClearField(recapmanager.FieldLaycanEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(recapmanager.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(recapmanager.FieldQuantity, field.TypeFloat64, value)
	}
	if _u.mutation.QuantityCleared() {
		_spec.ClearField(recapmanager.FieldQuantity, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DemurrageRate(); ok {
		_spec.SetField(recapmanager.FieldDemurrageRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDemurrageRate(); ok {
		_spec.AddField(recapmanager.FieldDemurrageRate, field.TypeFloat64, value)
	}
	if _u.mutation.DemurrageRateCleared() {
		_spec.ClearField(recapmanager.FieldDemurrageRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(recapmanager.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(recapmanager.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.FixtureCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FixtureIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RecapManager{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recapmanager.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
