// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charterdesk.io/charterdesk/ent/negotiation"
	"charterdesk.io/charterdesk/ent/order"
	"charterdesk.io/charterdesk/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// NegotiationUpdate is the builder for updating Negotiation entities.
type NegotiationUpdate struct {
	config
	hooks    []Hook
	mutation *NegotiationMutation
}

// Where appends a list predicates to the NegotiationUpdate builder.
func (_u *NegotiationUpdate) Where(ps ...predicate.Negotiation) *NegotiationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NegotiationUpdate) SetUpdatedAt(v time.Time) *NegotiationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *NegotiationUpdate) SetCompanyID(v string) *NegotiationUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *NegotiationUpdate) SetNillableCompanyID(v *string) *NegotiationUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// ClearCompanyID clears the value of the "company_id" field.
func (_u *NegotiationUpdate) ClearCompanyID() *NegotiationUpdate {
	_u.mutation.ClearCompanyID()
	return _u
}

// SetVesselID sets the "vessel_id" field.
func (_u *NegotiationUpdate) SetVesselID(v string) *NegotiationUpdate {
	_u.mutation.SetVesselID(v)
	return _u
}

// SetNillableVesselID sets the "vessel_id" field if the given value is not nil.
func (_u *NegotiationUpdate) SetNillableVesselID(v *string) *NegotiationUpdate {
	if v != nil {
		_u.SetVesselID(*v)
	}
	return _u
}

// ClearVesselID clears the value of the "vessel_id" field.
func (_u *NegotiationUpdate) ClearVesselID() *NegotiationUpdate {
	_u.mutation.ClearVesselID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *NegotiationUpdate) SetStatus(v negotiation.Status) *NegotiationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *NegotiationUpdate) SetNillableStatus(v *negotiation.Status) *NegotiationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFreightRate sets the "freight_rate" field.
func (_u *NegotiationUpdate) SetFreightRate(v float64) *NegotiationUpdate {
	_u.mutation.ResetFreightRate()
	_u.mutation.SetFreightRate(v)
	return _u
}

// SetNillableFreightRate sets the "freight_rate" field if the given value is not nil.
func (_u *NegotiationUpdate) SetNillableFreightRate(v *float64) *NegotiationUpdate {
	if v != nil {
		_u.SetFreightRate(*v)
	}
	return _u
}

// AddFreightRate adds value to the "freight_rate" field.
func (_u *NegotiationUpdate) AddFreightRate(v float64) *NegotiationUpdate {
	_u.mutation.AddFreightRate(v)
	return _u
}

// ClearFreightRate clears the value of the "freight_rate" field.
func (_u *NegotiationUpdate) ClearFreightRate() *NegotiationUpdate {
	_u.mutation.ClearFreightRate()
	return _u
}

// SetFirstIndication sets the "first_indication" field.
func (_u *NegotiationUpdate) SetFirstIndication(v float64) *NegotiationUpdate {
	_u.mutation.ResetFirstIndication()
	_u.mutation.SetFirstIndication(v)
	return _u
}

// SetNillableFirstIndication sets the "first_indication" field if the given value is not nil.
func (_u *NegotiationUpdate) SetNillableFirstIndication(v *float64) *NegotiationUpdate {
	if v != nil {
		_u.SetFirstIndication(*v)
	}
	return _u
}

// AddFirstIndication adds value to the "first_indication" field.
func (_u *NegotiationUpdate) AddFirstIndication(v float64) *NegotiationUpdate {
	_u.mutation.AddFirstIndication(v)
	return _u
}

// ClearFirstIndication clears the value of the "first_indication" field.
func (_u *NegotiationUpdate) ClearFirstIndication() *NegotiationUpdate {
	_u.mutation.ClearFirstIndication()
	return _u
}

// SetHighestIndication sets the "highest_indication" field.
func (_u *NegotiationUpdate) SetHighestIndication(v float64) *NegotiationUpdate {
	_u.mutation.ResetHighestIndication()
	_u.mutation.SetHighestIndication(v)
	return _u
}

// SetNillableHighestIndication sets the "highest_indication" field if the given value is not nil.
func (_u *NegotiationUpdate) SetNillableHighestIndication(v *float64) *NegotiationUpdate {
	if v != nil {
		_u.SetHighestIndication(*v)
	}
	return _u
}

// AddHighestIndication adds value to the "highest_indication" field.
func (_u *NegotiationUpdate) AddHighestIndication(v float64) *NegotiationUpdate {
	_u.mutation.AddHighestIndication(v)
	return _u
}

// ClearHighestIndication clears the value of the "highest_indication" field.
func (_u *NegotiationUpdate) ClearHighestIndication() *NegotiationUpdate {
	_u.mutation.ClearHighestIndication()
	return _u
}

// SetLowestIndication sets the "lowest_indication" field.
func (_u *NegotiationUpdate) SetLowestIndication(v float64) *NegotiationUpdate {
	_u.mutation.ResetLowestIndication()
	_u.mutation.SetLowestIndication(v)
	return _u
}

// SetNillableLowestIndication sets the "lowest_indication" field if the given value is not nil.
func (_u *NegotiationUpdate) SetNillableLowestIndication(v *float64) *NegotiationUpdate {
	if v != nil {
		_u.SetLowestIndication(*v)
	}
	return _u
}

// AddLowestIndication adds value to the "lowest_indication" field.
func (_u *NegotiationUpdate) AddLowestIndication(v float64) *NegotiationUpdate {
	_u.mutation.AddLowestIndication(v)
	return _u
}

// ClearLowestIndication clears the value of the "lowest_indication" field.
func (_u *NegotiationUpdate) ClearLowestIndication() *NegotiationUpdate {
	_u.mutation.ClearLowestIndication()
	return _u
}

// SetMarketIndex sets the "market_index" field.
func (_u *NegotiationUpdate) SetMarketIndex(v string) *NegotiationUpdate {
	_u.mutation.SetMarketIndex(v)
	return _u
}

// SetNillableMarketIndex sets the "market_index" field if the given value is not nil.
func (_u *NegotiationUpdate) SetNillableMarketIndex(v *string) *NegotiationUpdate {
	if v != nil {
		_u.SetMarketIndex(*v)
	}
	return _u
}

// ClearMarketIndex clears the value of the "market_index" field.
func (_u *NegotiationUpdate) ClearMarketIndex() *NegotiationUpdate {
	_u.mutation.ClearMarketIndex()
	return _u
}

// SetDeliveryType sets the "delivery_type" field.
func (_u *NegotiationUpdate) SetDeliveryType(v string) *NegotiationUpdate {
	_u.mutation.SetDeliveryType(v)
	return _u
}

// SetNillableDeliveryType sets the "delivery_type" field if the given value is not nil.
func (_u *NegotiationUpdate) SetNillableDeliveryType(v *string) *NegotiationUpdate {
	if v != nil {
		_u.SetDeliveryType(*v)
	}
	return _u
}

// ClearDeliveryType clears the value of the "delivery_type" field.
func (_u *NegotiationUpdate) ClearDeliveryType() *NegotiationUpdate {
	_u.mutation.ClearDeliveryType()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *NegotiationUpdate) SetCreatedBy(v string) *NegotiationUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *NegotiationUpdate) SetNillableCreatedBy(v *string) *NegotiationUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetOrderID sets the "order" edge to the Order entity by ID.
func (_u *NegotiationUpdate) SetOrderID(id string) *NegotiationUpdate {
	_u.mutation.SetOrderID(id)
	return _u
}

// SetOrder sets the "order" edge to the Order entity.
func (_u *NegotiationUpdate) SetOrder(v *Order) *NegotiationUpdate {
	return _u.SetOrderID(v.ID)
}

// Mutation returns the NegotiationMutation object of the builder.
func (_u *NegotiationUpdate) Mutation() *NegotiationMutation {
	return _u.mutation
}

// ClearOrder clears the "order" edge to the Order entity.
func (_u *NegotiationUpdate) ClearOrder() *NegotiationUpdate {
	_u.mutation.ClearOrder()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NegotiationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NegotiationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NegotiationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NegotiationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NegotiationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := negotiation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NegotiationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := negotiation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Negotiation.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := negotiation.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Negotiation.created_by": %w`, err)}
		}
	}
	if _u.mutation.OrderCleared() && len(_u.mutation.OrderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Negotiation.order"`)
	}
	return nil
}

func (_u *NegotiationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(negotiation.Table, negotiation.Columns, sqlgraph.NewFieldSpec(negotiation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(negotiation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(negotiation.FieldCompanyID, field.TypeString, value)
	}
	if _u.mutation.CompanyIDCleared() {
		_spec.ClearField(negotiation.FieldCompanyID, field.TypeString)
	}
	if value, ok := _u.mutation.VesselID(); ok {
		_spec.SetField(negotiation.FieldVesselID, field.TypeString, value)
	}
	if _u.mutation.VesselIDCleared() {
		_spec.ClearField(negotiation.FieldVesselID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(negotiation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FreightRate(); ok {
		_spec.SetField(negotiation.FieldFreightRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFreightRate(); ok {
		_spec.AddField(negotiation.FieldFreightRate, field.TypeFloat64, value)
	}
	if _u.mutation.FreightRateCleared() {
		_spec.ClearField(negotiation.FieldFreightRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FirstIndication(); ok {
		_spec.SetField(negotiation.FieldFirstIndication, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFirstIndication(); ok {
		_spec.AddField(negotiation.FieldFirstIndication, field.TypeFloat64, value)
	}
	if _u.mutation.FirstIndicationCleared() {
		_spec.ClearField(negotiation.FieldFirstIndication, field.TypeFloat64)
	}
	if value, ok := _u.mutation.HighestIndication(); ok {
		_spec.SetField(negotiation.FieldHighestIndication, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHighestIndication(); ok {
		_spec.AddField(negotiation.FieldHighestIndication, field.TypeFloat64, value)
	}
	if _u.mutation.HighestIndicationCleared() {
		_spec.ClearField(negotiation.FieldHighestIndication, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LowestIndication(); ok {
		_spec.SetField(negotiation.FieldLowestIndication, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLowestIndication(); ok {
		_spec.AddField(negotiation.FieldLowestIndication, field.TypeFloat64, value)
	}
	if _u.mutation.LowestIndicationCleared() {
		_spec.ClearField(negotiation.FieldLowestIndication, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MarketIndex(); ok {
		_spec.SetField(negotiation.FieldMarketIndex, field.TypeString, value)
	}
	if _u.mutation.MarketIndexCleared() {
		_spec.ClearField(negotiation.FieldMarketIndex, field.TypeString)
	}
	if value, ok := _u.mutation.DeliveryType(); ok {
		_spec.SetField(negotiation.FieldDeliveryType, field.TypeString, value)
	}
	if _u.mutation.DeliveryTypeCleared() {
		_spec.ClearField(negotiation.FieldDeliveryType, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(negotiation.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.OrderCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrderIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{negotiation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NegotiationUpdateOne is the builder for updating a single Negotiation entity.
type NegotiationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NegotiationMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NegotiationUpdateOne) SetUpdatedAt(v time.Time) *NegotiationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *NegotiationUpdateOne) SetCompanyID(v string) *NegotiationUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *NegotiationUpdateOne) SetNillableCompanyID(v *string) *NegotiationUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// ClearCompanyID clears the value of the "company_id" field.
func (_u *NegotiationUpdateOne) ClearCompanyID() *NegotiationUpdateOne {
	_u.mutation.ClearCompanyID()
	return _u
}

// SetVesselID sets the "vessel_id" field.
func (_u *NegotiationUpdateOne) SetVesselID(v string) *NegotiationUpdateOne {
	_u.mutation.SetVesselID(v)
	return _u
}

// SetNillableVesselID sets the "vessel_id" field if the given value is not nil.
func (_u *NegotiationUpdateOne) SetNillableVesselID(v *string) *NegotiationUpdateOne {
	if v != nil {
		_u.SetVesselID(*v)
	}
	return _u
}

// ClearVesselID clears the value of the "vessel_id" field.
func (_u *NegotiationUpdateOne) ClearVesselID() *NegotiationUpdateOne {
	_u.mutation.ClearVesselID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *NegotiationUpdateOne) SetStatus(v negotiation.Status) *NegotiationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *NegotiationUpdateOne) SetNillableStatus(v *negotiation.Status) *NegotiationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFreightRate sets the "freight_rate" field.
func (_u *NegotiationUpdateOne) SetFreightRate(v float64) *NegotiationUpdateOne {
	_u.mutation.ResetFreightRate()
	_u.mutation.SetFreightRate(v)
	return _u
}

// SetNillableFreightRate sets the "freight_rate" field if the given value is not nil.
func (_u *NegotiationUpdateOne) SetNillableFreightRate(v *float64) *NegotiationUpdateOne {
	if v != nil {
		_u.SetFreightRate(*v)
	}
	return _u
}

// AddFreightRate adds value to the "freight_rate" field.
func (_u *NegotiationUpdateOne) AddFreightRate(v float64) *NegotiationUpdateOne {
	_u.mutation.AddFreightRate(v)
	return _u
}

// ClearFreightRate clears the value of the "freight_rate" field.
func (_u *NegotiationUpdateOne) ClearFreightRate() *NegotiationUpdateOne {
	_u.mutation.ClearFreightRate()
	return _u
}

// SetFirstIndication sets the "first_indication" field.
func (_u *NegotiationUpdateOne) SetFirstIndication(v float64) *NegotiationUpdateOne {
	_u.mutation.ResetFirstIndication()
	_u.mutation.SetFirstIndication(v)
	return _u
}

// SetNillableFirstIndication sets the "first_indication" field if the given value is not nil.
func (_u *NegotiationUpdateOne) SetNillableFirstIndication(v *float64) *NegotiationUpdateOne {
	if v != nil {
		_u.SetFirstIndication(*v)
	}
	return _u
}

// AddFirstIndication adds value to the "first_indication" field.
func (_u *NegotiationUpdateOne) AddFirstIndication(v float64) *NegotiationUpdateOne {
	_u.mutation.AddFirstIndication(v)
	return _u
}

// ClearFirstIndication clears the value of the "first_indication" field.
func (_u *NegotiationUpdateOne) ClearFirstIndication() *NegotiationUpdateOne {
	_u.mutation.ClearFirstIndication()
	return _u
}

// SetHighestIndication sets the "highest_indication" field.
func (_u *NegotiationUpdateOne) SetHighestIndication(v float64) *NegotiationUpdateOne {
	_u.mutation.ResetHighestIndication()
	_u.mutation.SetHighestIndication(v)
	return _u
}

// SetNillableHighestIndication sets the "highest_indication" field if the given value is not nil.
func (_u *NegotiationUpdateOne) SetNillableHighestIndication(v *float64) *NegotiationUpdateOne {
	if v != nil {
		_u.SetHighestIndication(*v)
	}
	return _u
}

// AddHighestIndication adds value to the "highest_indication" field.
func (_u *NegotiationUpdateOne) AddHighestIndication(v float64) *NegotiationUpdateOne {
	_u.mutation.AddHighestIndication(v)
	return _u
}

// ClearHighestIndication clears the value of the "highest_indication" field.
func (_u *NegotiationUpdateOne) ClearHighestIndication() *NegotiationUpdateOne {
	_u.mutation.ClearHighestIndication()
	return _u
}

// SetLowestIndication sets the "lowest_indication" field.
func (_u *NegotiationUpdateOne) SetLowestIndication(v float64) *NegotiationUpdateOne {
	_u.mutation.ResetLowestIndication()
	_u.mutation.SetLowestIndication(v)
	return _u
}

// SetNillableLowestIndication sets the "lowest_indication" field if the given value is not nil.
func (_u *NegotiationUpdateOne) SetNillableLowestIndication(v *float64) *NegotiationUpdateOne {
	if v != nil {
		_u.SetLowestIndication(*v)
	}
	return _u
}

// AddLowestIndication adds value to the "lowest_indication" field.
func (_u *NegotiationUpdateOne) AddLowestIndication(v float64) *NegotiationUpdateOne {
	_u.mutation.AddLowestIndication(v)
	return _u
}

// ClearLowestIndication clears the value of the "lowest_indication" field.
func (_u *NegotiationUpdateOne) ClearLowestIndication() *NegotiationUpdateOne {
	_u.mutation.ClearLowestIndication()
	return _u
}

// SetMarketIndex sets the "market_index" field.
func (_u *NegotiationUpdateOne) SetMarketIndex(v string) *NegotiationUpdateOne {
	_u.mutation.SetMarketIndex(v)
	return _u
}

// SetNillableMarketIndex sets the "market_index" field if the given value is not nil.
func (_u *NegotiationUpdateOne) SetNillableMarketIndex(v *string) *NegotiationUpdateOne {
	if v != nil {
		_u.SetMarketIndex(*v)
	}
	return _u
}

// ClearMarketIndex clears the value of the "market_index" field.
func (_u *NegotiationUpdateOne) ClearMarketIndex() *NegotiationUpdateOne {
	_u.mutation.ClearMarketIndex()
	return _u
}

// SetDeliveryType sets the "delivery_type" field.
func (_u *NegotiationUpdateOne) SetDeliveryType(v string) *NegotiationUpdateOne {
	_u.mutation.SetDeliveryType(v)
	return _u
}

// SetNillableDeliveryType sets the "delivery_type" field if the given value is not nil.
func (_u *NegotiationUpdateOne) SetNillableDeliveryType(v *string) *NegotiationUpdateOne {
	if v != nil {
		_u.SetDeliveryType(*v)
	}
	return _u
}

// ClearDeliveryType clears the value of the "delivery_type" field.
func (_u *NegotiationUpdateOne) ClearDeliveryType() *NegotiationUpdateOne {
	_u.mutation.ClearDeliveryType()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *NegotiationUpdateOne) SetCreatedBy(v string) *NegotiationUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *NegotiationUpdateOne) SetNillableCreatedBy(v *string) *NegotiationUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetOrderID sets the "order" edge to the Order entity by ID.
func (_u *NegotiationUpdateOne) SetOrderID(id string) *NegotiationUpdateOne {
	_u.mutation.SetOrderID(id)
	return _u
}

// SetOrder sets the "order" edge to the Order entity.
func (_u *NegotiationUpdateOne) SetOrder(v *Order) *NegotiationUpdateOne {
	return _u.SetOrderID(v.ID)
}

// Mutation returns the NegotiationMutation object of the builder.
func (_u *NegotiationUpdateOne) Mutation() *NegotiationMutation {
	return _u.mutation
}

// ClearOrder clears the "order" edge to the Order entity.
func (_u *NegotiationUpdateOne) ClearOrder() *NegotiationUpdateOne {
	_u.mutation.ClearOrder()
	return _u
}

// Where appends a list predicates to the NegotiationUpdate builder.
func (_u *NegotiationUpdateOne) Where(ps ...predicate.Negotiation) *NegotiationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NegotiationUpdateOne) Select(field string, fields ...string) *NegotiationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Negotiation entity.
func (_u *NegotiationUpdateOne) Save(ctx context.Context) (*Negotiation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NegotiationUpdateOne) SaveX(ctx context.Context) *Negotiation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NegotiationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NegotiationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NegotiationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := negotiation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NegotiationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := negotiation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Negotiation.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := negotiation.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Negotiation.created_by": %w`, err)}
		}
	}
	if _u.mutation.OrderCleared() && len(_u.mutation.OrderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Negotiation.order"`)
	}
	return nil
}

func (_u *NegotiationUpdateOne) sqlSave(ctx context.Context) (_node *Negotiation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(negotiation.Table, negotiation.Columns, sqlgraph.NewFieldSpec(negotiation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Negotiation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, negotiation.FieldID)
		for _, f := range fields {
			if !negotiation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != negotiation.FieldID {
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
		_spec.SetField(negotiation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(negotiation.FieldCompanyID, field.TypeString, value)
	}
	if _u.mutation.CompanyIDCleared() {
		_spec.ClearField(negotiation.FieldCompanyID, field.TypeString)
	}
	if value, ok := _u.mutation.VesselID(); ok {
		_spec.SetField(negotiation.FieldVesselID, field.TypeString, value)
	}
	if _u.mutation.VesselIDCleared() {
		_spec.ClearField(negotiation.FieldVesselID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(negotiation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FreightRate(); ok {
		_spec.SetField(negotiation.FieldFreightRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFreightRate(); ok {
		_spec.AddField(negotiation.FieldFreightRate, field.TypeFloat64, value)
	}
	if _u.mutation.FreightRateCleared() {
		_spec.ClearField(negotiation.FieldFreightRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FirstIndication(); ok {
		_spec.SetField(negotiation.FieldFirstIndication, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFirstIndication(); ok {
		_spec.AddField(negotiation.FieldFirstIndication, field.TypeFloat64, value)
	}
	if _u.mutation.FirstIndicationCleared() {
		_spec.ClearField(negotiation.FieldFirstIndication, field.TypeFloat64)
	}
	if value, ok := _u.mutation.HighestIndication(); ok {
		_spec.SetField(negotiation.FieldHighestIndication, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHighestIndication(); ok {
		_spec.AddField(negotiation.FieldHighestIndication, field.TypeFloat64, value)
	}
	if _u.mutation.HighestIndicationCleared() {
		_spec.ClearField(negotiation.FieldHighestIndication, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LowestIndication(); ok {
		_spec.SetField(negotiation.FieldLowestIndication, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLowestIndication(); ok {
		_spec.AddField(negotiation.FieldLowestIndication, field.TypeFloat64, value)
	}
	if _u.mutation.LowestIndicationCleared() {
		_spec.ClearField(negotiation.FieldLowestIndication, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MarketIndex(); ok {
		_spec.SetField(negotiation.FieldMarketIndex, field.TypeString, value)
	}
	if _u.mutation.MarketIndexCleared() {
		_spec.ClearField(negotiation.FieldMarketIndex, field.TypeString)
	}
	if value, ok := _u.mutation.DeliveryType(); ok {
		_spec.SetField(negotiation.FieldDeliveryType, field.TypeString, value)
	}
	if _u.mutation.DeliveryTypeCleared() {
		_spec.ClearField(negotiation.FieldDeliveryType, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(negotiation.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.OrderCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrderIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Negotiation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{negotiation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
