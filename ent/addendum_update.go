// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charterdesk.io/charterdesk/ent/addendum"
	"charterdesk.io/charterdesk/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// AddendumUpdate is the builder for updating Addendum entities.
type AddendumUpdate struct {
	config
	hooks    []Hook
	mutation *AddendumMutation
}

// Where appends a list predicates to the AddendumUpdate builder.
func (_u *AddendumUpdate) Where(ps ...predicate.Addendum) *AddendumUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AddendumUpdate) SetUpdatedAt(v time.Time) *AddendumUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAddendumNumber sets the "addendum_number" field.
func (_u *AddendumUpdate) SetAddendumNumber(v string) *AddendumUpdate {
	_u.mutation.SetAddendumNumber(v)
	return _u
}

// SetNillableAddendumNumber sets the "addendum_number" field if the given value is not nil.
func (_u *AddendumUpdate) SetNillableAddendumNumber(v *string) *AddendumUpdate {
	if v != nil {
		_u.SetAddendumNumber(*v)
	}
	return _u
}

// SetContractID sets the "contract_id" field.
func (_u *AddendumUpdate) SetContractID(v string) *AddendumUpdate {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *AddendumUpdate) SetNillableContractID(v *string) *AddendumUpdate {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// ClearContractID clears the value of the "contract_id" field.
func (_u *AddendumUpdate) ClearContractID() *AddendumUpdate {
	_u.mutation.ClearContractID()
	return _u
}

// SetRecapID sets the "recap_id" field.
func (_u *AddendumUpdate) SetRecapID(v string) *AddendumUpdate {
	_u.mutation.SetRecapID(v)
	return _u
}

// SetNillableRecapID sets the "recap_id" field if the given value is not nil.
func (_u *AddendumUpdate) SetNillableRecapID(v *string) *AddendumUpdate {
	if v != nil {
		_u.SetRecapID(*v)
	}
	return _u
}

// ClearRecapID clears the value of the "recap_id" field.
func (_u *AddendumUpdate) ClearRecapID() *AddendumUpdate {
	_u.mutation.ClearRecapID()
	return _u
}

// SetDescription sets the "description" field.
func (_u *AddendumUpdate) SetDescription(v string) *AddendumUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AddendumUpdate) SetNillableDescription(v *string) *AddendumUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AddendumUpdate) ClearDescription() *AddendumUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AddendumUpdate) SetStatus(v addendum.Status) *AddendumUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AddendumUpdate) SetNillableStatus(v *addendum.Status) *AddendumUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *AddendumUpdate) SetCreatedBy(v string) *AddendumUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *AddendumUpdate) SetNillableCreatedBy(v *string) *AddendumUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// Mutation returns the AddendumMutation object of the builder.
func (_u *AddendumUpdate) Mutation() *AddendumMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AddendumUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AddendumUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AddendumUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AddendumUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AddendumUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := addendum.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AddendumUpdate) check() error {
	if v, ok := _u.mutation.AddendumNumber(); ok {
		if err := addendum.AddendumNumberValidator(v); err != nil {
			return &ValidationError{Name: "addendum_number", err: fmt.Errorf(`ent: validator failed for field "Addendum.addendum_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := addendum.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Addendum.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := addendum.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Addendum.created_by": %w`, err)}
		}
	}
	return nil
}

func (_u *AddendumUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(addendum.Table, addendum.Columns, sqlgraph.NewFieldSpec(addendum.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(addendum.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AddendumNumber(); ok {
		_spec.SetField(addendum.FieldAddendumNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContractID(); ok {
		_spec.SetField(addendum.FieldContractID, field.TypeString, value)
	}
	if _u.mutation.ContractIDCleared() {
		_spec.ClearField(addendum.FieldContractID, field.TypeString)
	}
	if value, ok := _u.mutation.RecapID(); ok {
		_spec.SetField(addendum.FieldRecapID, field.TypeString, value)
	}
	if _u.mutation.RecapIDCleared() {
		_spec.ClearField(addendum.FieldRecapID, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(addendum.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(addendum.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(addendum.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(addendum.FieldCreatedBy, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{addendum.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AddendumUpdateOne is the builder for updating a single Addendum entity.
type AddendumUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AddendumMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AddendumUpdateOne) SetUpdatedAt(v time.Time) *AddendumUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAddendumNumber sets the "addendum_number" field.
func (_u *AddendumUpdateOne) SetAddendumNumber(v string) *AddendumUpdateOne {
	_u.mutation.SetAddendumNumber(v)
	return _u
}

// SetNillableAddendumNumber sets the "addendum_number" field if the given value is not nil.
func (_u *AddendumUpdateOne) SetNillableAddendumNumber(v *string) *AddendumUpdateOne {
	if v != nil {
		_u.SetAddendumNumber(*v)
	}
	return _u
}

// SetContractID sets the "contract_id" field.
func (_u *AddendumUpdateOne) SetContractID(v string) *AddendumUpdateOne {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *AddendumUpdateOne) SetNillableContractID(v *string) *AddendumUpdateOne {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// ClearContractID clears the value of the "contract_id" field.
func (_u *AddendumUpdateOne) ClearContractID() *AddendumUpdateOne {
	_u.mutation.ClearContractID()
	return _u
}

// SetRecapID sets the "recap_id" field.
func (_u *AddendumUpdateOne) SetRecapID(v string) *AddendumUpdateOne {
	_u.mutation.SetRecapID(v)
	return _u
}

// SetNillableRecapID sets the "recap_id" field if the given value is not nil.
func (_u *AddendumUpdateOne) SetNillableRecapID(v *string) *AddendumUpdateOne {
	if v != nil {
		_u.SetRecapID(*v)
	}
	return _u
}

// ClearRecapID clears the value of the "recap_id" field.
func (_u *AddendumUpdateOne) ClearRecapID() *AddendumUpdateOne {
	_u.mutation.ClearRecapID()
	return _u
}

// SetDescription sets the "description" field.
func (_u *AddendumUpdateOne) SetDescription(v string) *AddendumUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AddendumUpdateOne) SetNillableDescription(v *string) *AddendumUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AddendumUpdateOne) ClearDescription() *AddendumUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AddendumUpdateOne) SetStatus(v addendum.Status) *AddendumUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AddendumUpdateOne) SetNillableStatus(v *addendum.Status) *AddendumUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *AddendumUpdateOne) SetCreatedBy(v string) *AddendumUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *AddendumUpdateOne) SetNillableCreatedBy(v *string) *AddendumUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// Mutation returns the AddendumMutation object of the builder.
func (_u *AddendumUpdateOne) Mutation() *AddendumMutation {
	return _u.mutation
}

// Where appends a list predicates to the AddendumUpdate builder.
func (_u *AddendumUpdateOne) Where(ps ...predicate.Addendum) *AddendumUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AddendumUpdateOne) Select(field string, fields ...string) *AddendumUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Addendum entity.
func (_u *AddendumUpdateOne) Save(ctx context.Context) (*Addendum, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AddendumUpdateOne) SaveX(ctx context.Context) *Addendum {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AddendumUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AddendumUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AddendumUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := addendum.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AddendumUpdateOne) check() error {
	if v, ok := _u.mutation.AddendumNumber(); ok {
		if err := addendum.AddendumNumberValidator(v); err != nil {
			return &ValidationError{Name: "addendum_number", err: fmt.Errorf(`ent: validator failed for field "Addendum.addendum_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := addendum.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Addendum.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := addendum.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Addendum.created_by": %w`, err)}
		}
	}
	return nil
}

func (_u *AddendumUpdateOne) sqlSave(ctx context.Context) (_node *Addendum, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(addendum.Table, addendum.Columns, sqlgraph.NewFieldSpec(addendum.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Addendum.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, addendum.FieldID)
		for _, f := range fields {
			if !addendum.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != addendum.FieldID {
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
		_spec.SetField(addendum.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AddendumNumber(); ok {
		_spec.SetField(addendum.FieldAddendumNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContractID(); ok {
		_spec.SetField(addendum.FieldContractID, field.TypeString, value)
	}
	if _u.mutation.ContractIDCleared() {
		_spec.ClearField(addendum.FieldContractID, field.TypeString)
	}
	if value, ok := _u.mutation.RecapID(); ok {
		_spec.SetField(addendum.FieldRecapID, field.TypeString, value)
	}
	if _u.mutation.RecapIDCleared() {
		_spec.ClearField(addendum.FieldRecapID, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(addendum.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(addendum.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(addendum.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(addendum.FieldCreatedBy, field.TypeString, value)
	}
	_node = &Addendum{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{addendum.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
