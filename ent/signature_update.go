// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charterdesk.io/charterdesk/ent/predicate"
	"charterdesk.io/charterdesk/ent/signature"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// SignatureUpdate is the builder for updating Signature entities.
type SignatureUpdate struct {
	config
	hooks    []Hook
	mutation *SignatureMutation
}

// Where appends a list predicates to the SignatureUpdate builder.
func (_u *SignatureUpdate) Where(ps ...predicate.Signature) *SignatureUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SignatureUpdate) SetUpdatedAt(v time.Time) *SignatureUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSignerName sets the "signer_name" field.
func (_u *SignatureUpdate) SetSignerName(v string) *SignatureUpdate {
	_u.mutation.SetSignerName(v)
	return _u
}

// SetNillableSignerName sets the "signer_name" field if the given value is not nil.
func (_u *SignatureUpdate) SetNillableSignerName(v *string) *SignatureUpdate {
	if v != nil {
		_u.SetSignerName(*v)
	}
	return _u
}

// SetSignerEmail sets the "signer_email" field.
func (_u *SignatureUpdate) SetSignerEmail(v string) *SignatureUpdate {
	_u.mutation.SetSignerEmail(v)
	return _u
}

// SetNillableSignerEmail sets the "signer_email" field if the given value is not nil.
func (_u *SignatureUpdate) SetNillableSignerEmail(v *string) *SignatureUpdate {
	if v != nil {
		_u.SetSignerEmail(*v)
	}
	return _u
}

// ClearSignerEmail clears the value of the "signer_email" field.
func (_u *SignatureUpdate) ClearSignerEmail() *SignatureUpdate {
	_u.mutation.ClearSignerEmail()
	return _u
}

// SetParty sets the "party" field.
func (_u *SignatureUpdate) SetParty(v signature.Party) *SignatureUpdate {
	_u.mutation.SetParty(v)
	return _u
}

// SetNillableParty sets the "party" field if the given value is not nil.
func (_u *SignatureUpdate) SetNillableParty(v *signature.Party) *SignatureUpdate {
	if v != nil {
		_u.SetParty(*v)
	}
	return _u
}

// SetSignedAt sets the "signed_at" field.
func (_u *SignatureUpdate) SetSignedAt(v time.Time) *SignatureUpdate {
	_u.mutation.SetSignedAt(v)
	return _u
}

// SetNillableSignedAt sets the "signed_at" field if the given value is not nil.
func (_u *SignatureUpdate) SetNillableSignedAt(v *time.Time) *SignatureUpdate {
	if v != nil {
		_u.SetSignedAt(*v)
	}
	return _u
}

// ClearSignedAt clears the value of the "signed_at" field.
func (_u *SignatureUpdate) ClearSignedAt() *SignatureUpdate {
	_u.mutation.ClearSignedAt()
	return _u
}

// SetDocumentStorageID sets the "document_storage_id" field.
func (_u *SignatureUpdate) SetDocumentStorageID(v string) *SignatureUpdate {
	_u.mutation.SetDocumentStorageID(v)
	return _u
}

// SetNillableDocumentStorageID sets the "document_storage_id" field if the given value is not nil.
func (_u *SignatureUpdate) SetNillableDocumentStorageID(v *string) *SignatureUpdate {
	if v != nil {
		_u.SetDocumentStorageID(*v)
	}
	return _u
}

// ClearDocumentStorageID clears the value of the "document_storage_id" field.
func (_u *SignatureUpdate) ClearDocumentStorageID() *SignatureUpdate {
	_u.mutation.ClearDocumentStorageID()
	return _u
}

// Mutation returns the SignatureMutation object of the builder.
func (_u *SignatureUpdate) Mutation() *SignatureMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SignatureUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SignatureUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SignatureUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SignatureUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SignatureUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := signature.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SignatureUpdate) check() error {
	if v, ok := _u.mutation.SignerName(); ok {
		if err := signature.SignerNameValidator(v); err != nil {
			return &ValidationError{Name: "signer_name", err: fmt.Errorf(`ent: validator failed for field "Signature.signer_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Party(); ok {
		if err := signature.PartyValidator(v); err != nil {
			return &ValidationError{Name: "party", err: fmt.Errorf(`ent: validator failed for field "Signature.party": %w`, err)}
		}
	}
	return nil
}

func (_u *SignatureUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(signature.Table, signature.Columns, sqlgraph.NewFieldSpec(signature.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(signature.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SignerName(); ok {
		_spec.SetField(signature.FieldSignerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SignerEmail(); ok {
		_spec.SetField(signature.FieldSignerEmail, field.TypeString, value)
	}
	if _u.mutation.SignerEmailCleared() {
		_spec.ClearField(signature.FieldSignerEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Party(); ok {
		_spec.SetField(signature.FieldParty, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SignedAt(); ok {
		_spec.SetField(signature.FieldSignedAt, field.TypeTime, value)
	}
	if _u.mutation.SignedAtCleared() {
		_spec.ClearField(signature.FieldSignedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DocumentStorageID(); ok {
		_spec.SetField(signature.FieldDocumentStorageID, field.TypeString, value)
	}
	if _u.mutation.DocumentStorageIDCleared() {
		_spec.ClearField(signature.FieldDocumentStorageID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{signature.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SignatureUpdateOne is the builder for updating a single Signature entity.
type SignatureUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SignatureMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SignatureUpdateOne) SetUpdatedAt(v time.Time) *SignatureUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSignerName sets the "signer_name" field.
func (_u *SignatureUpdateOne) SetSignerName(v string) *SignatureUpdateOne {
	_u.mutation.SetSignerName(v)
	return _u
}

// SetNillableSignerName sets the "signer_name" field if the given value is not nil.
func (_u *SignatureUpdateOne) SetNillableSignerName(v *string) *SignatureUpdateOne {
	if v != nil {
		_u.SetSignerName(*v)
	}
	return _u
}

// SetSignerEmail sets the "signer_email" field.
func (_u *SignatureUpdateOne) SetSignerEmail(v string) *SignatureUpdateOne {
	_u.mutation.SetSignerEmail(v)
	return _u
}

// SetNillableSignerEmail sets the "signer_email" field if the given value is not nil.
func (_u *SignatureUpdateOne) SetNillableSignerEmail(v *string) *SignatureUpdateOne {
	if v != nil {
		_u.SetSignerEmail(*v)
	}
	return _u
}

// ClearSignerEmail clears the value of the "signer_email" field.
func (_u *SignatureUpdateOne) ClearSignerEmail() *SignatureUpdateOne {
	_u.mutation.ClearSignerEmail()
	return _u
}

// SetParty sets the "party" field.
func (_u *SignatureUpdateOne) SetParty(v signature.Party) *SignatureUpdateOne {
	_u.mutation.SetParty(v)
	return _u
}

// SetNillableParty sets the "party" field if the given value is not nil.
func (_u *SignatureUpdateOne) SetNillableParty(v *signature.Party) *SignatureUpdateOne {
	if v != nil {
		_u.SetParty(*v)
	}
	return _u
}

// SetSignedAt sets the "signed_at" field.
func (_u *SignatureUpdateOne) SetSignedAt(v time.Time) *SignatureUpdateOne {
	_u.mutation.SetSignedAt(v)
	return _u
}

// SetNillableSignedAt sets the "signed_at" field if the given value is not nil.
func (_u *SignatureUpdateOne) SetNillableSignedAt(v *time.Time) *SignatureUpdateOne {
	if v != nil {
		_u.SetSignedAt(*v)
	}
	return _u
}

// ClearSignedAt clears the value of the "signed_at" field.
func (_u *SignatureUpdateOne) ClearSignedAt() *SignatureUpdateOne {
	_u.mutation.ClearSignedAt()
	return _u
}

// SetDocumentStorageID sets the "document_storage_id" field.
func (_u *SignatureUpdateOne) SetDocumentStorageID(v string) *SignatureUpdateOne {
	_u.mutation.SetDocumentStorageID(v)
	return _u
}

// SetNillableDocumentStorageID sets the "document_storage_id" field if the given value is not nil.
func (_u *SignatureUpdateOne) SetNillableDocumentStorageID(v *string) *SignatureUpdateOne {
	if v != nil {
		_u.SetDocumentStorageID(*v)
	}
	return _u
}

// ClearDocumentStorageID clears the value of the "document_storage_id" field.
func (_u *SignatureUpdateOne) ClearDocumentStorageID() *SignatureUpdateOne {
	_u.mutation.ClearDocumentStorageID()
	return _u
}

// Mutation returns the SignatureMutation object of the builder.
func (_u *SignatureUpdateOne) Mutation() *SignatureMutation {
	return _u.mutation
}

// Where appends a list predicates to the SignatureUpdate builder.
func (_u *SignatureUpdateOne) Where(ps ...predicate.Signature) *SignatureUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SignatureUpdateOne) Select(field string, fields ...string) *SignatureUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Signature entity.
func (_u *SignatureUpdateOne) Save(ctx context.Context) (*Signature, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SignatureUpdateOne) SaveX(ctx context.Context) *Signature {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SignatureUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SignatureUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SignatureUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := signature.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SignatureUpdateOne) check() error {
	if v, ok := _u.mutation.SignerName(); ok {
		if err := signature.SignerNameValidator(v); err != nil {
			return &ValidationError{Name: "signer_name", err: fmt.Errorf(`ent: validator failed for field "Signature.signer_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Party(); ok {
		if err := signature.PartyValidator(v); err != nil {
			return &ValidationError{Name: "party", err: fmt.Errorf(`ent: validator failed for field "Signature.party": %w`, err)}
		}
	}
	return nil
}

func (_u *SignatureUpdateOne) sqlSave(ctx context.Context) (_node *Signature, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(signature.Table, signature.Columns, sqlgraph.NewFieldSpec(signature.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Signature.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, signature.FieldID)
		for _, f := range fields {
			if !signature.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != signature.FieldID {
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
		_spec.SetField(signature.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SignerName(); ok {
		_spec.SetField(signature.FieldSignerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SignerEmail(); ok {
		_spec.SetField(signature.FieldSignerEmail, field.TypeString, value)
	}
	if _u.mutation.SignerEmailCleared() {
		_spec.ClearField(signature.FieldSignerEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Party(); ok {
		_spec.SetField(signature.FieldParty, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SignedAt(); ok {
		_spec.SetField(signature.FieldSignedAt, field.TypeTime, value)
	}
	if _u.mutation.SignedAtCleared() {
		_spec.ClearField(signature.FieldSignedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DocumentStorageID(); ok {
		_spec.SetField(signature.FieldDocumentStorageID, field.TypeString, value)
	}
	if _u.mutation.DocumentStorageIDCleared() {
		_spec.ClearField(signature.FieldDocumentStorageID, field.TypeString)
	}
	_node = &Signature{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{signature.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
