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
	"charterdesk.io/charterdesk/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// OrderUpdate is the builder for updating Order entities.
type OrderUpdate struct {
	config
	hooks    []Hook
	mutation *OrderMutation
}

// Where appends a list predicates to the OrderUpdate builder.
func (_u *OrderUpdate) Where(ps ...predicate.Order) *OrderUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OrderUpdate) SetUpdatedAt(v time.Time) *OrderUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *OrderUpdate) SetOrganizationID(v string) *OrderUpdate {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableOrganizationID(v *string) *OrderUpdate {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// ClearOrganizationID clears the value of the "organization_id" field.
func (_u *OrderUpdate) ClearOrganizationID() *OrderUpdate {
	_u.mutation.ClearOrganizationID()
	return _u
}

// SetMarket sets the "market" field.
func (_u *OrderUpdate) SetMarket(v order.Market) *OrderUpdate {
	_u.mutation.SetMarket(v)
	return _u
}

// SetNillableMarket sets the "market" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableMarket(v *order.Market) *OrderUpdate {
	if v != nil {
		_u.SetMarket(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *OrderUpdate) SetStatus(v order.Status) *OrderUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableStatus(v *order.Status) *OrderUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCargoTypeID sets the "cargo_type_id" field.
func (_u *OrderUpdate) SetCargoTypeID(v string) *OrderUpdate {
	_u.mutation.SetCargoTypeID(v)
	return _u
}

// SetNillableCargoTypeID sets the "cargo_type_id" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableCargoTypeID(v *string) *OrderUpdate {
	if v != nil {
		_u.SetCargoTypeID(*v)
	}
	return _u
}

// ClearCargoTypeID clears the value of the "cargo_type_id" field.
func (_u *OrderUpdate) ClearCargoTypeID() *OrderUpdate {
	_u.mutation.ClearCargoTypeID()
	return _u
}

// SetLoadPortID sets the "load_port_id" field.
func (_u *OrderUpdate) SetLoadPortID(v string) *OrderUpdate {
	_u.mutation.SetLoadPortID(v)
	return _u
}

// SetNillableLoadPortID sets the "load_port_id" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableLoadPortID(v *string) *OrderUpdate {
	if v != nil {
		_u.SetLoadPortID(*v)
	}
	return _u
}

// ClearLoadPortID clears the value of the "load_port_id" field.
func (_u *OrderUpdate) ClearLoadPortID() *OrderUpdate {
	_u.mutation.ClearLoadPortID()
	return _u
}

// SetDischargePortID sets the "discharge_port_id" field.
func (_u *OrderUpdate) SetDischargePortID(v string) *OrderUpdate {
	_u.mutation.SetDischargePortID(v)
	return _u
}

// SetNillableDischargePortID sets the "discharge_port_id" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableDischargePortID(v *string) *OrderUpdate {
	if v != nil {
		_u.SetDischargePortID(*v)
	}
	return _u
}

// ClearDischargePortID clears the value of the "discharge_port_id" field.
func (_u *OrderUpdate) ClearDischargePortID() *OrderUpdate {
	_u.mutation.ClearDischargePortID()
	return _u
}

// SetLaycanStart sets the "laycan_start" field.
func (_u *OrderUpdate) SetLaycanStart(v time.Time) *OrderUpdate {
	_u.mutation.SetLaycanStart(v)
	return _u
}

// SetNillableLaycanStart sets the "laycan_start" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableLaycanStart(v *time.Time) *OrderUpdate {
	if v != nil {
		_u.SetLaycanStart(*v)
	}
	return _u
}

// ClearLaycanStart clears the value of the "laycan_start" field.
func (_u *OrderUpdate) ClearLaycanStart() *OrderUpdate {
	_u.mutation.ClearLaycanStart()
	return _u
}

// SetLaycanEnd sets the "laycan_end" field.
func (_u *OrderUpdate) SetLaycanEnd(v time.Time) *OrderUpdate {
	_u.mutation.SetLaycanEnd(v)
	return _u
}

// SetNillableLaycanEnd sets the "laycan_end" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableLaycanEnd(v *time.Time) *OrderUpdate {
	if v != nil {
		_u.SetLaycanEnd(*v)
	}
	return _u
}

// ClearLaycanEnd clears the value of the "laycan_end" field.
func (_u *OrderUpdate) ClearLaycanEnd() *OrderUpdate {
	_u.mutation.ClearLaycanEnd()
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *OrderUpdate) SetQuantity(v float64) *OrderUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableQuantity(v *float64) *OrderUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *OrderUpdate) AddQuantity(v float64) *OrderUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// ClearQuantity clears the value of the "quantity" field.
func (_u *OrderUpdate) ClearQuantity() *OrderUpdate {
	_u.mutation.ClearQuantity()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *OrderUpdate) SetNotes(v string) *OrderUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableNotes(v *string) *OrderUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *OrderUpdate) ClearNotes() *OrderUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *OrderUpdate) SetCreatedBy(v string) *OrderUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableCreatedBy(v *string) *OrderUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// AddNegotiationIDs adds the "negotiations" edge to the Negotiation entity by IDs.
func (_u *OrderUpdate) AddNegotiationIDs(ids ...string) *OrderUpdate {
	_u.mutation.AddNegotiationIDs(ids...)
	return _u
}

// AddNegotiations adds the "negotiations" edges to the Negotiation entity.
func (_u *OrderUpdate) AddNegotiations(v ...*Negotiation) *OrderUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNegotiationIDs(ids...)
}

// AddFixtureIDs adds the "fixtures" edge to the Fixture entity by IDs.
func (_u *OrderUpdate) AddFixtureIDs(ids ...string) *OrderUpdate {
	_u.mutation.AddFixtureIDs(ids...)
	return _u
}

// AddFixtures adds the "fixtures" edges to the Fixture entity.
func (_u *OrderUpdate) AddFixtures(v ...*Fixture) *OrderUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFixtureIDs(ids...)
}

// Mutation returns the OrderMutation object of the builder.
func (_u *OrderUpdate) Mutation() *OrderMutation {
	return _u.mutation
}

// ClearNegotiations clears all "negotiations" edges to the Negotiation entity.
func (_u *OrderUpdate) ClearNegotiations() *OrderUpdate {
	_u.mutation.ClearNegotiations()
	return _u
}

// RemoveNegotiationIDs removes the "negotiations" edge to Negotiation entities by IDs.
func (_u *OrderUpdate) RemoveNegotiationIDs(ids ...string) *OrderUpdate {
	_u.mutation.RemoveNegotiationIDs(ids...)
	return _u
}

// RemoveNegotiations removes "negotiations" edges to Negotiation entities.
func (_u *OrderUpdate) RemoveNegotiations(v ...*Negotiation) *OrderUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNegotiationIDs(ids...)
}

// ClearFixtures clears all "fixtures" edges to the Fixture entity.
func (_u *OrderUpdate) ClearFixtures() *OrderUpdate {
	_u.mutation.ClearFixtures()
	return _u
}

// RemoveFixtureIDs removes the "fixtures" edge to Fixture entities by IDs.
func (_u *OrderUpdate) RemoveFixtureIDs(ids ...string) *OrderUpdate {
	_u.mutation.RemoveFixtureIDs(ids...)
	return _u
}

// RemoveFixtures removes "fixtures" edges to Fixture entities.
func (_u *OrderUpdate) RemoveFixtures(v ...*Fixture) *OrderUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFixtureIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrderUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrderUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrderUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := order.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderUpdate) check() error {
	if v, ok := _u.mutation.Market(); ok {
		if err := order.MarketValidator(v); err != nil {
			return &ValidationError{Name: "market", err: fmt.Errorf(`ent: validator failed for field "Order.market": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := order.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Order.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := order.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Order.created_by": %w`, err)}
		}
	}
	return nil
}

func (_u *OrderUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(order.Table, order.Columns, sqlgraph.NewFieldSpec(order.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(order.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OrganizationID(); ok {
		_spec.SetField(order.FieldOrganizationID, field.TypeString, value)
	}
	if _u.mutation.OrganizationIDCleared() {
		_spec.ClearField(order.FieldOrganizationID, field.TypeString)
	}
	if value, ok := _u.mutation.Market(); ok {
		_spec.SetField(order.FieldMarket, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(order.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CargoTypeID(); ok {
		_spec.SetField(order.FieldCargoTypeID, field.TypeString, value)
	}
	if _u.mutation.CargoTypeIDCleared() {
		_spec.ClearField(order.FieldCargoTypeID, field.TypeString)
	}
	if value, ok := _u.mutation.LoadPortID(); ok {
		_spec.SetField(order.FieldLoadPortID, field.TypeString, value)
	}
	if _u.mutation.LoadPortIDCleared() {
		_spec.ClearField(order.FieldLoadPortID, field.TypeString)
	}
	if value, ok := _u.mutation.DischargePortID(); ok {
		_spec.SetField(order.FieldDischargePortID, field.TypeString, value)
	}
	if _u.mutation.DischargePortIDCleared() {
		_spec.ClearField(order.FieldDischargePortID, field.TypeString)
	}
	if value, ok := _u.mutation.LaycanStart(); ok {
		_spec.SetField(order.FieldLaycanStart, field.TypeTime, value)
	}
	if _u.mutation.LaycanStartCleared() {
		_spec.ClearField(order.FieldLaycanStart, field.TypeTime)
	}
	if value, ok := _u.mutation.LaycanEnd(); ok {
		_spec.SetField(order.FieldLaycanEnd, field.TypeTime, value)
	}
	if _u.mutation.LaycanEndCleared() {
		_spec.ClearField(order.FieldLaycanEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(order.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(order.FieldQuantity, field.TypeFloat64, value)
	}
	if _u.mutation.QuantityCleared() {
		_spec.ClearField(order.FieldQuantity, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(order.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(order.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(order.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.NegotiationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNegotiationsIDs(); len(nodes) > 0 && !_u.mutation.NegotiationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NegotiationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FixturesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFixturesIDs(); len(nodes) > 0 && !_u.mutation.FixturesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FixturesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{order.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrderUpdateOne is the builder for updating a single Order entity.
type OrderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrderMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OrderUpdateOne) SetUpdatedAt(v time.Time) *OrderUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *OrderUpdateOne) SetOrganizationID(v string) *OrderUpdateOne {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableOrganizationID(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// ClearOrganizationID clears the value of the "organization_id" field.
func (_u *OrderUpdateOne) ClearOrganizationID() *OrderUpdateOne {
	_u.mutation.ClearOrganizationID()
	return _u
}

// SetMarket sets the "market" field.
func (_u *OrderUpdateOne) SetMarket(v order.Market) *OrderUpdateOne {
	_u.mutation.SetMarket(v)
	return _u
}

// SetNillableMarket sets the "market" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableMarket(v *order.Market) *OrderUpdateOne {
	if v != nil {
		_u.SetMarket(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *OrderUpdateOne) SetStatus(v order.Status) *OrderUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableStatus(v *order.Status) *OrderUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCargoTypeID sets the "cargo_type_id" field.
func (_u *OrderUpdateOne) SetCargoTypeID(v string) *OrderUpdateOne {
	_u.mutation.SetCargoTypeID(v)
	return _u
}

// SetNillableCargoTypeID sets the "cargo_type_id" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableCargoTypeID(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetCargoTypeID(*v)
	}
	return _u
}

// ClearCargoTypeID clears the value of the "cargo_type_id" field.
func (_u *OrderUpdateOne) ClearCargoTypeID() *OrderUpdateOne {
	_u.mutation.ClearCargoTypeID()
	return _u
}

// SetLoadPortID sets the "load_port_id" field.
func (_u *OrderUpdateOne) SetLoadPortID(v string) *OrderUpdateOne {
	_u.mutation.SetLoadPortID(v)
	return _u
}

// SetNillableLoadPortID sets the "load_port_id" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableLoadPortID(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetLoadPortID(*v)
	}
	return _u
}

// ClearLoadPortID clears the value of the "load_port_id" field.
func (_u *OrderUpdateOne) ClearLoadPortID() *OrderUpdateOne {
	_u.mutation.ClearLoadPortID()
	return _u
}

// SetDischargePortID sets the "discharge_port_id" field.
func (_u *OrderUpdateOne) SetDischargePortID(v string) *OrderUpdateOne {
	_u.mutation.SetDischargePortID(v)
	return _u
}

// SetNillableDischargePortID sets the "discharge_port_id" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableDischargePortID(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetDischargePortID(*v)
	}
	return _u
}

// ClearDischargePortID clears the value of the "discharge_port_id" field.
func (_u *OrderUpdateOne) ClearDischargePortID() *OrderUpdateOne {
	_u.mutation.ClearDischargePortID()
	return _u
}

// SetLaycanStart sets the "laycan_start" field.
func (_u *OrderUpdateOne) SetLaycanStart(v time.Time) *OrderUpdateOne {
	_u.mutation.SetLaycanStart(v)
	return _u
}

// SetNillableLaycanStart sets the "laycan_start" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableLaycanStart(v *time.Time) *OrderUpdateOne {
	if v != nil {
		_u.SetLaycanStart(*v)
	}
	return _u
}

// ClearLaycanStart clears the value of the "laycan_start" field.
func (_u *OrderUpdateOne) ClearLaycanStart() *OrderUpdateOne {
	_u.mutation.ClearLaycanStart()
	return _u
}

// SetLaycanEnd sets the "laycan_end" field.
func (_u *OrderUpdateOne) SetLaycanEnd(v time.Time) *OrderUpdateOne {
	_u.mutation.SetLaycanEnd(v)
	return _u
}

// SetNillableLaycanEnd sets the "laycan_end" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableLaycanEnd(v *time.Time) *OrderUpdateOne {
	if v != nil {
		_u.SetLaycanEnd(*v)
	}
	return _u
}

// ClearLaycanEnd clears the value of the "laycan_end" field.
func (_u *OrderUpdateOne) ClearLaycanEnd() *OrderUpdateOne {
	_u.mutation.ClearLaycanEnd()
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *OrderUpdateOne) SetQuantity(v float64) *OrderUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableQuantity(v *float64) *OrderUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *OrderUpdateOne) AddQuantity(v float64) *OrderUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// ClearQuantity clears the value of the "quantity" field.
func (_u *OrderUpdateOne) ClearQuantity() *OrderUpdateOne {
	_u.mutation.ClearQuantity()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *OrderUpdateOne) SetNotes(v string) *OrderUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableNotes(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *OrderUpdateOne) ClearNotes() *OrderUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *OrderUpdateOne) SetCreatedBy(v string) *OrderUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableCreatedBy(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// AddNegotiationIDs adds the "negotiations" edge to the Negotiation entity by IDs.
func (_u *OrderUpdateOne) AddNegotiationIDs(ids ...string) *OrderUpdateOne {
	_u.mutation.AddNegotiationIDs(ids...)
	return _u
}

// AddNegotiations adds the "negotiations" edges to the Negotiation entity.
func (_u *OrderUpdateOne) AddNegotiations(v ...*Negotiation) *OrderUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNegotiationIDs(ids...)
}

// AddFixtureIDs adds the "fixtures" edge to the Fixture entity by IDs.
func (_u *OrderUpdateOne) AddFixtureIDs(ids ...string) *OrderUpdateOne {
	_u.mutation.AddFixtureIDs(ids...)
	return _u
}

// AddFixtures adds the "fixtures" edges to the Fixture entity.
func (_u *OrderUpdateOne) AddFixtures(v ...*Fixture) *OrderUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFixtureIDs(ids...)
}

// Mutation returns the OrderMutation object of the builder.
func (_u *OrderUpdateOne) Mutation() *OrderMutation {
	return _u.mutation
}

// ClearNegotiations clears all "negotiations" edges to the Negotiation entity.
func (_u *OrderUpdateOne) ClearNegotiations() *OrderUpdateOne {
	_u.mutation.ClearNegotiations()
	return _u
}

// RemoveNegotiationIDs removes the "negotiations" edge to Negotiation entities by IDs.
func (_u *OrderUpdateOne) RemoveNegotiationIDs(ids ...string) *OrderUpdateOne {
	_u.mutation.RemoveNegotiationIDs(ids...)
	return _u
}

// RemoveNegotiations removes "negotiations" edges to Negotiation entities.
func (_u *OrderUpdateOne) RemoveNegotiations(v ...*Negotiation) *OrderUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNegotiationIDs(ids...)
}

// ClearFixtures clears all "fixtures" edges to the Fixture entity.
func (_u *OrderUpdateOne) ClearFixtures() *OrderUpdateOne {
	_u.mutation.ClearFixtures()
	return _u
}

// RemoveFixtureIDs removes the "fixtures" edge to Fixture entities by IDs.
func (_u *OrderUpdateOne) RemoveFixtureIDs(ids ...string) *OrderUpdateOne {
	_u.mutation.RemoveFixtureIDs(ids...)
	return _u
}

// RemoveFixtures removes "fixtures" edges to Fixture entities.
func (_u *OrderUpdateOne) RemoveFixtures(v ...*Fixture) *OrderUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFixtureIDs(ids...)
}

// Where appends a list predicates to the OrderUpdate builder.
func (_u *OrderUpdateOne) Where(ps ...predicate.Order) *OrderUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrderUpdateOne) Select(field string, fields ...string) *OrderUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Order entity.
func (_u *OrderUpdateOne) Save(ctx context.Context) (*Order, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderUpdateOne) SaveX(ctx context.Context) *Order {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrderUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrderUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := order.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderUpdateOne) check() error {
	if v, ok := _u.mutation.Market(); ok {
		if err := order.MarketValidator(v); err != nil {
			return &ValidationError{Name: "market", err: fmt.Errorf(`ent: validator failed for field "Order.market": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := order.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Order.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := order.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Order.created_by": %w`, err)}
		}
	}
	return nil
}

func (_u *OrderUpdateOne) sqlSave(ctx context.Context) (_node *Order, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(order.Table, order.Columns, sqlgraph.NewFieldSpec(order.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Order.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, order.FieldID)
		for _, f := range fields {
			if !order.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != order.FieldID {
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
		_spec.SetField(order.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OrganizationID(); ok {
		_spec.SetField(order.FieldOrganizationID, field.TypeString, value)
	}
	if _u.mutation.OrganizationIDCleared() {
		_spec.ClearField(order.FieldOrganizationID, field.TypeString)
	}
	if value, ok := _u.mutation.Market(); ok {
		_spec.SetField(order.FieldMarket, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(order.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CargoTypeID(); ok {
		_spec.SetField(order.FieldCargoTypeID, field.TypeString, value)
	}
	if _u.mutation.CargoTypeIDCleared() {
		_spec.ClearField(order.FieldCargoTypeID, field.TypeString)
	}
	if value, ok := _u.mutation.LoadPortID(); ok {
		_spec.SetField(order.FieldLoadPortID, field.TypeString, value)
	}
	if _u.mutation.LoadPortIDCleared() {
		_spec.ClearField(order.FieldLoadPortID, field.TypeString)
	}
	if value, ok := _u.mutation.DischargePortID(); ok {
		_spec.SetField(order.FieldDischargePortID, field.TypeString, value)
	}
	if _u.mutation.DischargePortIDCleared() {
		_spec.ClearField(order.FieldDischargePortID, field.TypeString)
	}
	if value, ok := _u.mutation.LaycanStart(); ok {
		_spec.SetField(order.FieldLaycanStart, field.TypeTime, value)
	}
	if _u.mutation.LaycanStartCleared() {
		_spec.ClearField(order.FieldLaycanStart, field.TypeTime)
	}
	if value, ok := _u.mutation.LaycanEnd(); ok {
		_spec.SetField(order.FieldLaycanEnd, field.TypeTime, value)
	}
	if _u.mutation.LaycanEndCleared() {
		_spec.ClearField(order.FieldLaycanEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(order.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(order.FieldQuantity, field.TypeFloat64, value)
	}
	if _u.mutation.QuantityCleared() {
		_spec.ClearField(order.FieldQuantity, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(order.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(order.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(order.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.NegotiationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNegotiationsIDs(); len(nodes) > 0 && !_u.mutation.NegotiationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NegotiationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FixturesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFixturesIDs(); len(nodes) > 0 && !_u.mutation.FixturesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FixturesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Order{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{order.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
