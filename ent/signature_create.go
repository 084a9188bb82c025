// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charterdesk.io/charterdesk/ent/signature"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// SignatureCreate is the builder for creating a Signature entity.
type SignatureCreate struct {
	config
	mutation *SignatureMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *SignatureCreate) SetCreatedAt(v time.Time) *SignatureCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SignatureCreate) SetNillableCreatedAt(v *time.Time) *SignatureCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SignatureCreate) SetUpdatedAt(v time.Time) *SignatureCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SignatureCreate) SetNillableUpdatedAt(v *time.Time) *SignatureCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetEntityType sets the "entity_type" field.
func (_c *SignatureCreate) SetEntityType(v signature.EntityType) *SignatureCreate {
	_c.mutation.SetEntityType(v)
	return _c
}

// SetEntityID sets the "entity_id" field.
func (_c *SignatureCreate) SetEntityID(v string) *SignatureCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetSignerName sets the "signer_name" field.
func (_c *SignatureCreate) SetSignerName(v string) *SignatureCreate {
	_c.mutation.SetSignerName(v)
	return _c
}

// SetSignerEmail sets the "signer_email" field.
func (_c *SignatureCreate) SetSignerEmail(v string) *SignatureCreate {
	_c.mutation.SetSignerEmail(v)
	return _c
}

// SetNillableSignerEmail sets the "signer_email" field if the given value is not nil.
func (_c *SignatureCreate) SetNillableSignerEmail(v *string) *SignatureCreate {
	if v != nil {
		_c.SetSignerEmail(*v)
	}
	return _c
}

// SetParty sets the "party" field.
func (_c *SignatureCreate) SetParty(v signature.Party) *SignatureCreate {
	_c.mutation.SetParty(v)
	return _c
}

// SetNillableParty sets the "party" field if the given value is not nil.
func (_c *SignatureCreate) SetNillableParty(v *signature.Party) *SignatureCreate {
	if v != nil {
		_c.SetParty(*v)
	}
	return _c
}

// SetSignedAt sets the "signed_at" field.
func (_c *SignatureCreate) SetSignedAt(v time.Time) *SignatureCreate {
	_c.mutation.SetSignedAt(v)
	return _c
}

// SetNillableSignedAt sets the "signed_at" field if the given value is not nil.
func (_c *SignatureCreate) SetNillableSignedAt(v *time.Time) *SignatureCreate {
	if v != nil {
		_c.SetSignedAt(*v)
	}
	return _c
}

// SetDocumentStorageID sets the "document_storage_id" field.
func (_c *SignatureCreate) SetDocumentStorageID(v string) *SignatureCreate {
	_c.mutation.SetDocumentStorageID(v)
	return _c
}

// SetNillableDocumentStorageID sets the "document_storage_id" field if the given value is not nil.
func (_c *SignatureCreate) SetNillableDocumentStorageID(v *string) *SignatureCreate {
	if v != nil {
		_c.SetDocumentStorageID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SignatureCreate) SetID(v string) *SignatureCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SignatureMutation object of the builder.
func (_c *SignatureCreate) Mutation() *SignatureMutation {
	return _c.mutation
}

// Save creates the Signature in the database.
func (_c *SignatureCreate) Save(ctx context.Context) (*Signature, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SignatureCreate) SaveX(ctx context.Context) *Signature {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SignatureCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SignatureCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SignatureCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := signature.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := signature.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Party(); !ok {
		v := signature.DefaultParty
		_c.mutation.SetParty(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SignatureCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Signature.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Signature.updated_at"`)}
	}
	if _, ok := _c.mutation.EntityType(); !ok {
		return &ValidationError{Name: "entity_type", err: errors.New(`ent: missing required field "Signature.entity_type"`)}
	}
	if v, ok := _c.mutation.EntityType(); ok {
		if err := signature.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "Signature.entity_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`ent: missing required field "Signature.entity_id"`)}
	}
	if v, ok := _c.mutation.EntityID(); ok {
		if err := signature.EntityIDValidator(v); err != nil {
			return &ValidationError{Name: "entity_id", err: fmt.Errorf(`ent: validator failed for field "Signature.entity_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SignerName(); !ok {
		return &ValidationError{Name: "signer_name", err: errors.New(`ent: missing required field "Signature.signer_name"`)}
	}
	if v, ok := _c.mutation.SignerName(); ok {
		if err := signature.SignerNameValidator(v); err != nil {
			return &ValidationError{Name: "signer_name", err: fmt.Errorf(`ent: validator failed for field "Signature.signer_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Party(); !ok {
		return &ValidationError{Name: "party", err: errors.New(`ent: missing required field "Signature.party"`)}
	}
	if v, ok := _c.mutation.Party(); ok {
		if err := signature.PartyValidator(v); err != nil {
			return &ValidationError{Name: "party", err: fmt.Errorf(`ent: validator failed for field "Signature.party": %w`, err)}
		}
	}
	return nil
}

func (_c *SignatureCreate) sqlSave(ctx context.Context) (*Signature, error) {
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
			return nil, fmt.Errorf("unexpected Signature.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SignatureCreate) createSpec() (*Signature, *sqlgraph.CreateSpec) {
	var (
		_node = &Signature{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(signature.Table, sqlgraph.NewFieldSpec(signature.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(signature.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(signature.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.EntityType(); ok {
		_spec.SetField(signature.FieldEntityType, field.TypeEnum, value)
		_node.EntityType = value
	}
	if value, ok := _c.mutation.EntityID(); ok {
		_spec.SetField(signature.FieldEntityID, field.TypeString, value)
		_node.EntityID = value
	}
	if value, ok := _c.mutation.SignerName(); ok {
		_spec.SetField(signature.FieldSignerName, field.TypeString, value)
		_node.SignerName = value
	}
	if value, ok := _c.mutation.SignerEmail(); ok {
		_spec.SetField(signature.FieldSignerEmail, field.TypeString, value)
		_node.SignerEmail = value
	}
	if value, ok := _c.mutation.Party(); ok {
		_spec.SetField(signature.FieldParty, field.TypeEnum, value)
		_node.Party = value
	}
	if value, ok := _c.mutation.SignedAt(); ok {
		_spec.SetField(signature.FieldSignedAt, field.TypeTime, value)
		_node.SignedAt = &value
	}
	if value, ok := _c.mutation.DocumentStorageID(); ok {
		_spec.SetField(signature.FieldDocumentStorageID, field.TypeString, value)
		_node.DocumentStorageID = value
	}
	return _node, _spec
}

// SignatureCreateBulk is the builder for creating many Signature entities in bulk.
type SignatureCreateBulk struct {
	config
	err      error
	builders []*SignatureCreate
}

// Save creates the Signature entities in the database.
func (_c *SignatureCreateBulk) Save(ctx context.Context) ([]*Signature, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Signature, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SignatureMutation)
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
func (_c *SignatureCreateBulk) SaveX(ctx context.Context) []*Signature {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SignatureCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SignatureCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
