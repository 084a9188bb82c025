// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charterdesk.io/charterdesk/ent/predicate"
	"charterdesk.io/charterdesk/ent/vessel"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// VesselUpdate is the builder for updating Vessel entities.
type VesselUpdate struct {
	config
	hooks    []Hook
	mutation *VesselMutation
}

// Where appends a list predicates to the VesselUpdate builder.
func (_u *VesselUpdate) Where(ps ...predicate.Vessel) *VesselUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VesselUpdate) SetUpdatedAt(v time.Time) *VesselUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *VesselUpdate) SetName(v string) *VesselUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *VesselUpdate) SetNillableName(v *string) *VesselUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetImoNumber sets the "imo_number" field.
func (_u *VesselUpdate) SetImoNumber(v string) *VesselUpdate {
	_u.mutation.SetImoNumber(v)
	return _u
}

// SetNillableImoNumber sets the "imo_number" field if the given value is not nil.
func (_u *VesselUpdate) SetNillableImoNumber(v *string) *VesselUpdate {
	if v != nil {
		_u.SetImoNumber(*v)
	}
	return _u
}

// ClearImoNumber clears the value of the "imo_number" field.
func (_u *VesselUpdate) ClearImoNumber() *VesselUpdate {
	_u.mutation.ClearImoNumber()
	return _u
}

// SetVesselType sets the "vessel_type" field.
func (_u *VesselUpdate) SetVesselType(v string) *VesselUpdate {
	_u.mutation.SetVesselType(v)
	return _u
}

// SetNillableVesselType sets the "vessel_type" field if the given value is not nil.
func (_u *VesselUpdate) SetNillableVesselType(v *string) *VesselUpdate {
	if v != nil {
		_u.SetVesselType(*v)
	}
	return _u
}

// ClearVesselType clears the value of the "vessel_type" field.
func (_u *VesselUpdate) ClearVesselType() *VesselUpdate {
	_u.mutation.ClearVesselType()
	return _u
}

// SetDwt sets the "dwt" field.
func (_u *VesselUpdate) SetDwt(v float64) *VesselUpdate {
	_u.mutation.ResetDwt()
	_u.mutation.SetDwt(v)
	return _u
}

// SetNillableDwt sets the "dwt" field if the given value is not nil.
func (_u *VesselUpdate) SetNillableDwt(v *float64) *VesselUpdate {
	if v != nil {
		_u.SetDwt(*v)
	}
	return _u
}

// AddDwt adds value to the "dwt" field.
func (_u *VesselUpdate) AddDwt(v float64) *VesselUpdate {
	_u.mutation.AddDwt(v)
	return _u
}

// ClearDwt clears the value of the "dwt" field.
func (_u *VesselUpdate) ClearDwt() *VesselUpdate {
	_u.mutation.ClearDwt()
	return _u
}

// SetBuiltYear sets the "built_year" field.
func (_u *VesselUpdate) SetBuiltYear(v int) *VesselUpdate {
	_u.mutation.ResetBuiltYear()
	_u.mutation.SetBuiltYear(v)
	return _u
}

// SetNillableBuiltYear sets the "built_year" field if the given value is not nil.
func (_u *VesselUpdate) SetNillableBuiltYear(v *int) *VesselUpdate {
	if v != nil {
		_u.SetBuiltYear(*v)
	}
	return _u
}

// AddBuiltYear adds value to the "built_year" field.
func (_u *VesselUpdate) AddBuiltYear(v int) *VesselUpdate {
	_u.mutation.AddBuiltYear(v)
	return _u
}

// ClearBuiltYear clears the value of the "built_year" field.
func (_u *VesselUpdate) ClearBuiltYear() *VesselUpdate {
	_u.mutation.ClearBuiltYear()
	return _u
}

// SetFlag sets the "flag" field.
func (_u *VesselUpdate) SetFlag(v string) *VesselUpdate {
	_u.mutation.SetFlag(v)
	return _u
}

// SetNillableFlag sets the "flag" field if the given value is not nil.
func (_u *VesselUpdate) SetNillableFlag(v *string) *VesselUpdate {
	if v != nil {
		_u.SetFlag(*v)
	}
	return _u
}

// ClearFlag clears the value of the "flag" field.
func (_u *VesselUpdate) ClearFlag() *VesselUpdate {
	_u.mutation.ClearFlag()
	return _u
}

// SetVerified sets the "verified" field.
func (_u *VesselUpdate) SetVerified(v bool) *VesselUpdate {
	_u.mutation.SetVerified(v)
	return _u
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_u *VesselUpdate) SetNillableVerified(v *bool) *VesselUpdate {
	if v != nil {
		_u.SetVerified(*v)
	}
	return _u
}

// Mutation returns the VesselMutation object of the builder.
func (_u *VesselUpdate) Mutation() *VesselMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VesselUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VesselUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VesselUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VesselUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VesselUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := vessel.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VesselUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := vessel.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Vessel.name": %w`, err)}
		}
	}
	return nil
}

func (_u *VesselUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vessel.Table, vessel.Columns, sqlgraph.NewFieldSpec(vessel.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(vessel.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(vessel.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImoNumber(); ok {
		_spec.SetField(vessel.FieldImoNumber, field.TypeString, value)
	}
	if _u.mutation.ImoNumberCleared() {
		_spec.ClearField(vessel.FieldImoNumber, field.TypeString)
	}
	if value, ok := _u.mutation.VesselType(); ok {
		_spec.SetField(vessel.FieldVesselType, field.TypeString, value)
	}
	if _u.mutation.VesselTypeCleared() {
		_spec.ClearField(vessel.FieldVesselType, field.TypeString)
	}
	if value, ok := _u.mutation.Dwt(); ok {
		_spec.SetField(vessel.FieldDwt, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDwt(); ok {
		_spec.AddField(vessel.FieldDwt, field.TypeFloat64, value)
	}
	if _u.mutation.DwtCleared() {
		_spec.ClearField(vessel.FieldDwt, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BuiltYear(); ok {
		_spec.SetField(vessel.FieldBuiltYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBuiltYear(); ok {
		_spec.AddField(vessel.FieldBuiltYear, field.TypeInt, value)
	}
	if _u.mutation.BuiltYearCleared() {
		_spec.ClearField(vessel.FieldBuiltYear, field.TypeInt)
	}
	if value, ok := _u.mutation.Flag(); ok {
		_spec.SetField(vessel.FieldFlag, field.TypeString, value)
	}
	if _u.mutation.FlagCleared() {
		_spec.ClearField(vessel.FieldFlag, field.TypeString)
	}
	if value, ok := _u.mutation.Verified(); ok {
		_spec.SetField(vessel.FieldVerified, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vessel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VesselUpdateOne is the builder for updating a single Vessel entity.
type VesselUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VesselMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VesselUpdateOne) SetUpdatedAt(v time.Time) *VesselUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *VesselUpdateOne) SetName(v string) *VesselUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *VesselUpdateOne) SetNillableName(v *string) *VesselUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetImoNumber sets the "imo_number" field.
func (_u *VesselUpdateOne) SetImoNumber(v string) *VesselUpdateOne {
	_u.mutation.SetImoNumber(v)
	return _u
}

// SetNillableImoNumber sets the "imo_number" field if the given value is not nil.
func (_u *VesselUpdateOne) SetNillableImoNumber(v *string) *VesselUpdateOne {
	if v != nil {
		_u.SetImoNumber(*v)
	}
	return _u
}

// ClearImoNumber clears the value of the "imo_number" field.
func (_u *VesselUpdateOne) ClearImoNumber() *VesselUpdateOne {
	_u.mutation.ClearImoNumber()
	return _u
}

// SetVesselType sets the "vessel_type" field.
func (_u *VesselUpdateOne) SetVesselType(v string) *VesselUpdateOne {
	_u.mutation.SetVesselType(v)
	return _u
}

// SetNillableVesselType sets the "vessel_type" field if the given value is not nil.
func (_u *VesselUpdateOne) SetNillableVesselType(v *string) *VesselUpdateOne {
	if v != nil {
		_u.SetVesselType(*v)
	}
	return _u
}

// ClearVesselType clears the value of the "vessel_type" field.
func (_u *VesselUpdateOne) ClearVesselType() *VesselUpdateOne {
	_u.mutation.ClearVesselType()
	return _u
}

// SetDwt sets the "dwt" field.
func (_u *VesselUpdateOne) SetDwt(v float64) *VesselUpdateOne {
	_u.mutation.ResetDwt()
	_u.mutation.SetDwt(v)
	return _u
}

// SetNillableDwt sets the "dwt" field if the given value is not nil.
func (_u *VesselUpdateOne) SetNillableDwt(v *float64) *VesselUpdateOne {
	if v != nil {
		_u.SetDwt(*v)
	}
	return _u
}

// AddDwt adds value to the "dwt" field.
func (_u *VesselUpdateOne) AddDwt(v float64) *VesselUpdateOne {
	_u.mutation.AddDwt(v)
	return _u
}

// ClearDwt clears the value of the "dwt" field.
func (_u *VesselUpdateOne) ClearDwt() *VesselUpdateOne {
	_u.mutation.ClearDwt()
	return _u
}

// SetBuiltYear sets the "built_year" field.
func (_u *VesselUpdateOne) SetBuiltYear(v int) *VesselUpdateOne {
	_u.mutation.ResetBuiltYear()
	_u.mutation.SetBuiltYear(v)
	return _u
}

// SetNillableBuiltYear sets the "built_year" field if the given value is not nil.
func (_u *VesselUpdateOne) SetNillableBuiltYear(v *int) *VesselUpdateOne {
	if v != nil {
		_u.SetBuiltYear(*v)
	}
	return _u
}

// AddBuiltYear adds value to the "built_year" field.
func (_u *VesselUpdateOne) AddBuiltYear(v int) *VesselUpdateOne {
	_u.mutation.AddBuiltYear(v)
	return _u
}

// ClearBuiltYear clears the value of the "built_year" field.
func (_u *VesselUpdateOne) ClearBuiltYear() *VesselUpdateOne {
	_u.mutation.ClearBuiltYear()
	return _u
}

// SetFlag sets the "flag" field.
func (_u *VesselUpdateOne) SetFlag(v string) *VesselUpdateOne {
	_u.mutation.SetFlag(v)
	return _u
}

// SetNillableFlag sets the "flag" field if the given value is not nil.
func (_u *VesselUpdateOne) SetNillableFlag(v *string) *VesselUpdateOne {
	if v != nil {
		_u.SetFlag(*v)
	}
	return _u
}

// ClearFlag clears the value of the "flag" field.
func (_u *VesselUpdateOne) ClearFlag() *VesselUpdateOne {
	_u.mutation.ClearFlag()
	return _u
}

// SetVerified sets the "verified" field.
func (_u *VesselUpdateOne) SetVerified(v bool) *VesselUpdateOne {
	_u.mutation.SetVerified(v)
	return _u
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_u *VesselUpdateOne) SetNillableVerified(v *bool) *VesselUpdateOne {
	if v != nil {
		_u.SetVerified(*v)
	}
	return _u
}

// Mutation returns the VesselMutation object of the builder.
func (_u *VesselUpdateOne) Mutation() *VesselMutation {
	return _u.mutation
}

// Where appends a list predicates to the VesselUpdate builder.
func (_u *VesselUpdateOne) Where(ps ...predicate.Vessel) *VesselUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VesselUpdateOne) Select(field string, fields ...string) *VesselUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Vessel entity.
func (_u *VesselUpdateOne) Save(ctx context.Context) (*Vessel, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VesselUpdateOne) SaveX(ctx context.Context) *Vessel {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VesselUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VesselUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VesselUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := vessel.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VesselUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := vessel.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Vessel.name": %w`, err)}
		}
	}
	return nil
}

func (_u *VesselUpdateOne) sqlSave(ctx context.Context) (_node *Vessel, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vessel.Table, vessel.Columns, sqlgraph.NewFieldSpec(vessel.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Vessel.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vessel.FieldID)
		for _, f := range fields {
			if !vessel.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vessel.FieldID {
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
		_spec.SetField(vessel.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(vessel.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImoNumber(); ok {
		_spec.SetField(vessel.FieldImoNumber, field.TypeString, value)
	}
	if _u.mutation.ImoNumberCleared() {
		_spec.ClearField(vessel.FieldImoNumber, field.TypeString)
	}
	if value, ok := _u.mutation.VesselType(); ok {
		_spec.SetField(vessel.FieldVesselType, field.TypeString, value)
	}
	if _u.mutation.VesselTypeCleared() {
		_spec.ClearField(vessel.FieldVesselType, field.TypeString)
	}
	if value, ok := _u.mutation.Dwt(); ok {
		_spec.SetField(vessel.FieldDwt, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDwt(); ok {
		_spec.AddField(vessel.FieldDwt, field.TypeFloat64, value)
	}
	if _u.mutation.DwtCleared() {
		_spec.ClearField(vessel.FieldDwt, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BuiltYear(); ok {
		_spec.SetField(vessel.FieldBuiltYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBuiltYear(); ok {
		_spec.AddField(vessel.FieldBuiltYear, field.TypeInt, value)
	}
	if _u.mutation.BuiltYearCleared() {
		_spec.ClearField(vessel.FieldBuiltYear, field.TypeInt)
	}
	if value, ok := _u.mutation.Flag(); ok {
		_spec.SetField(vessel.FieldFlag, field.TypeString, value)
	}
	if _u.mutation.FlagCleared() {
		_spec.ClearField(vessel.FieldFlag, field.TypeString)
	}
	if value, ok := _u.mutation.Verified(); ok {
		_spec.SetField(vessel.FieldVerified, field.TypeBool, value)
	}
	_node = &Vessel{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vessel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
