// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charterdesk.io/charterdesk/ent/passwordresettoken"
	"charterdesk.io/charterdesk/ent/user"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// PasswordResetTokenCreate is the builder for creating a PasswordResetToken entity.
type PasswordResetTokenCreate struct {
	config
	mutation *PasswordResetTokenMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *PasswordResetTokenCreate) SetCreatedAt(v time.Time) *PasswordResetTokenCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PasswordResetTokenCreate) SetNillableCreatedAt(v *time.Time) *PasswordResetTokenCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PasswordResetTokenCreate) SetUpdatedAt(v time.Time) *PasswordResetTokenCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PasswordResetTokenCreate) SetNillableUpdatedAt(v *time.Time) *PasswordResetTokenCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetToken sets the "token" field.
func (_c *PasswordResetTokenCreate) SetToken(v string) *PasswordResetTokenCreate {
	_c.mutation.SetToken(v)
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *PasswordResetTokenCreate) SetExpiresAt(v time.Time) *PasswordResetTokenCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetUsed sets the "used" field.
func (_c *PasswordResetTokenCreate) SetUsed(v bool) *PasswordResetTokenCreate {
	_c.mutation.SetUsed(v)
	return _c
}

// SetNillableUsed sets the "used" field if the given value is not nil.
func (_c *PasswordResetTokenCreate) SetNillableUsed(v *bool) *PasswordResetTokenCreate {
	if v != nil {
		_c.SetUsed(*v)
	}
	return _c
}

// SetUsedAt sets the "used_at" field.
func (_c *PasswordResetTokenCreate) SetUsedAt(v time.Time) *PasswordResetTokenCreate {
	_c.mutation.SetUsedAt(v)
	return _c
}

// SetNillableUsedAt sets the "used_at" field if the given value is not nil.
func (_c *PasswordResetTokenCreate) SetNillableUsedAt(v *time.Time) *PasswordResetTokenCreate {
	if v != nil {
		_c.SetUsedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PasswordResetTokenCreate) SetID(v string) *PasswordResetTokenCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_c *PasswordResetTokenCreate) SetUserID(id string) *PasswordResetTokenCreate {
	_c.mutation.SetUserID(id)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *PasswordResetTokenCreate) SetUser(v *User) *PasswordResetTokenCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the PasswordResetTokenMutation object of the builder.
func (_c *PasswordResetTokenCreate) Mutation() *PasswordResetTokenMutation {
	return _c.mutation
}

// Save creates the PasswordResetToken in the database.
func (_c *PasswordResetTokenCreate) Save(ctx context.Context) (*PasswordResetToken, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PasswordResetTokenCreate) SaveX(ctx context.Context) *PasswordResetToken {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PasswordResetTokenCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PasswordResetTokenCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PasswordResetTokenCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := passwordresettoken.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := passwordresettoken.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Used(); !ok {
		v := passwordresettoken.DefaultUsed
		_c.mutation.SetUsed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PasswordResetTokenCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PasswordResetToken.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PasswordResetToken.updated_at"`)}
	}
	if _, ok := _c.mutation.Token(); !ok {
		return &ValidationError{Name: "token", err: errors.New(`ent: missing required field "PasswordResetToken.token"`)}
	}
	if v, ok := _c.mutation.Token(); ok {
		if err := passwordresettoken.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`ent: validator failed for field "PasswordResetToken.token": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "PasswordResetToken.expires_at"`)}
	}
	if _, ok := _c.mutation.Used(); !ok {
		return &ValidationError{Name: "used", err: errors.New(`ent: missing required field "PasswordResetToken.used"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "PasswordResetToken.user"`)}
	}
	return nil
}

func (_c *PasswordResetTokenCreate) sqlSave(ctx context.Context) (*PasswordResetToken, error) {
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
			return nil, fmt.Errorf("unexpected PasswordResetToken.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PasswordResetTokenCreate) createSpec() (*PasswordResetToken, *sqlgraph.CreateSpec) {
	var (
		_node = &PasswordResetToken{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(passwordresettoken.Table, sqlgraph.NewFieldSpec(passwordresettoken.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(passwordresettoken.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(passwordresettoken.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Token(); ok {
		_spec.SetField(passwordresettoken.FieldToken, field.TypeString, value)
		_node.Token = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(passwordresettoken.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.Used(); ok {
		_spec.SetField(passwordresettoken.FieldUsed, field.TypeBool, value)
		_node.Used = value
	}
	if value, ok := _c.mutation.UsedAt(); ok {
		_spec.SetField(passwordresettoken.FieldUsedAt, field.TypeTime, value)
		_node.UsedAt = &value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   passwordresettoken.UserTable,
			Columns: []string{passwordresettoken.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.user_reset_tokens = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PasswordResetTokenCreateBulk is the builder for creating many PasswordResetToken entities in bulk.
type PasswordResetTokenCreateBulk struct {
	config
	err      error
	builders []*PasswordResetTokenCreate
}

// Save creates the PasswordResetToken entities in the database.
func (_c *PasswordResetTokenCreateBulk) Save(ctx context.Context) ([]*PasswordResetToken, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PasswordResetToken, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PasswordResetTokenMutation)
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
func (_c *PasswordResetTokenCreateBulk) SaveX(ctx context.Context) []*PasswordResetToken {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PasswordResetTokenCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PasswordResetTokenCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
