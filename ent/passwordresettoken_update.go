// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charterdesk.io/charterdesk/ent/passwordresettoken"
	"charterdesk.io/charterdesk/ent/predicate"
	"charterdesk.io/charterdesk/ent/user"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// PasswordResetTokenUpdate is the builder for updating PasswordResetToken entities.
type PasswordResetTokenUpdate struct {
	config
	hooks    []Hook
	mutation *PasswordResetTokenMutation
}

// Where appends a list predicates to the PasswordResetTokenUpdate builder.
func (_u *PasswordResetTokenUpdate) Where(ps ...predicate.PasswordResetToken) *PasswordResetTokenUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PasswordResetTokenUpdate) SetUpdatedAt(v time.Time) *PasswordResetTokenUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetToken sets the "token" field.
func (_u *PasswordResetTokenUpdate) SetToken(v string) *PasswordResetTokenUpdate {
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *PasswordResetTokenUpdate) SetNillableToken(v *string) *PasswordResetTokenUpdate {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *PasswordResetTokenUpdate) SetExpiresAt(v time.Time) *PasswordResetTokenUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *PasswordResetTokenUpdate) SetNillableExpiresAt(v *time.Time) *PasswordResetTokenUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetUsed sets the "used" field.
func (_u *PasswordResetTokenUpdate) SetUsed(v bool) *PasswordResetTokenUpdate {
	_u.mutation.SetUsed(v)
	return _u
}

// SetNillableUsed sets the "used" field if the given value is not nil.
func (_u *PasswordResetTokenUpdate) SetNillableUsed(v *bool) *PasswordResetTokenUpdate {
	if v != nil {
		_u.SetUsed(*v)
	}
	return _u
}

// SetUsedAt sets the "used_at" field.
func (_u *PasswordResetTokenUpdate) SetUsedAt(v time.Time) *PasswordResetTokenUpdate {
	_u.mutation.SetUsedAt(v)
	return _u
}

// SetNillableUsedAt sets the "used_at" field if the given value is not nil.
func (_u *PasswordResetTokenUpdate) SetNillableUsedAt(v *time.Time) *PasswordResetTokenUpdate {
	if v != nil {
		_u.SetUsedAt(*v)
	}
	return _u
}

// ClearUsedAt clears the value of the "used_at" field.
func (_u *PasswordResetTokenUpdate) ClearUsedAt() *PasswordResetTokenUpdate {
	_u.mutation.ClearUsedAt()
	return _u
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_u *PasswordResetTokenUpdate) SetUserID(id string) *PasswordResetTokenUpdate {
	_u.mutation.SetUserID(id)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *PasswordResetTokenUpdate) SetUser(v *User) *PasswordResetTokenUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the PasswordResetTokenMutation object of the builder.
func (_u *PasswordResetTokenUpdate) Mutation() *PasswordResetTokenMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *PasswordResetTokenUpdate) ClearUser() *PasswordResetTokenUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PasswordResetTokenUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PasswordResetTokenUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PasswordResetTokenUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PasswordResetTokenUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PasswordResetTokenUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := passwordresettoken.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PasswordResetTokenUpdate) check() error {
	if v, ok := _u.mutation.Token(); ok {
		if err := passwordresettoken.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`ent: validator failed for field "PasswordResetToken.token": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PasswordResetToken.user"`)
	}
	return nil
}

func (_u *PasswordResetTokenUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(passwordresettoken.Table, passwordresettoken.Columns, sqlgraph.NewFieldSpec(passwordresettoken.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(passwordresettoken.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(passwordresettoken.FieldToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(passwordresettoken.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Used(); ok {
		_spec.SetField(passwordresettoken.FieldUsed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UsedAt(); ok {
		_spec.SetField(passwordresettoken.FieldUsedAt, field.TypeTime, value)
	}
	if _u.mutation.UsedAtCleared() {
		_spec.ClearField(passwordresettoken.FieldUsedAt, field.TypeTime)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{passwordresettoken.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PasswordResetTokenUpdateOne is the builder for updating a single PasswordResetToken entity.
type PasswordResetTokenUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PasswordResetTokenMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PasswordResetTokenUpdateOne) SetUpdatedAt(v time.Time) *PasswordResetTokenUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetToken sets the "token" field.
func (_u *PasswordResetTokenUpdateOne) SetToken(v string) *PasswordResetTokenUpdateOne {
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *PasswordResetTokenUpdateOne) SetNillableToken(v *string) *PasswordResetTokenUpdateOne {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *PasswordResetTokenUpdateOne) SetExpiresAt(v time.Time) *PasswordResetTokenUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *PasswordResetTokenUpdateOne) SetNillableExpiresAt(v *time.Time) *PasswordResetTokenUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetUsed sets the "used" field.
func (_u *PasswordResetTokenUpdateOne) SetUsed(v bool) *PasswordResetTokenUpdateOne {
	_u.mutation.SetUsed(v)
	return _u
}

// SetNillableUsed sets the "used" field if the given value is not nil.
func (_u *PasswordResetTokenUpdateOne) SetNillableUsed(v *bool) *PasswordResetTokenUpdateOne {
	if v != nil {
		_u.SetUsed(*v)
	}
	return _u
}

// SetUsedAt sets the "used_at" field.
func (_u *PasswordResetTokenUpdateOne) SetUsedAt(v time.Time) *PasswordResetTokenUpdateOne {
	_u.mutation.SetUsedAt(v)
	return _u
}

// SetNillableUsedAt sets the "used_at" field if the given value is not nil.
func (_u *PasswordResetTokenUpdateOne) SetNillableUsedAt(v *time.Time) *PasswordResetTokenUpdateOne {
	if v != nil {
		_u.SetUsedAt(*v)
	}
	return _u
}

// ClearUsedAt clears the value of the "used_at" field.
func (_u *PasswordResetTokenUpdateOne) ClearUsedAt() *PasswordResetTokenUpdateOne {
	_u.mutation.ClearUsedAt()
	return _u
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_u *PasswordResetTokenUpdateOne) SetUserID(id string) *PasswordResetTokenUpdateOne {
	_u.mutation.SetUserID(id)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *PasswordResetTokenUpdateOne) SetUser(v *User) *PasswordResetTokenUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the PasswordResetTokenMutation object of the builder.
func (_u *PasswordResetTokenUpdateOne) Mutation() *PasswordResetTokenMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *PasswordResetTokenUpdateOne) ClearUser() *PasswordResetTokenUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the PasswordResetTokenUpdate builder.
func (_u *PasswordResetTokenUpdateOne) Where(ps ...predicate.PasswordResetToken) *PasswordResetTokenUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PasswordResetTokenUpdateOne) Select(field string, fields ...string) *PasswordResetTokenUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PasswordResetToken entity.
func (_u *PasswordResetTokenUpdateOne) Save(ctx context.Context) (*PasswordResetToken, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PasswordResetTokenUpdateOne) SaveX(ctx context.Context) *PasswordResetToken {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PasswordResetTokenUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PasswordResetTokenUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PasswordResetTokenUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := passwordresettoken.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PasswordResetTokenUpdateOne) check() error {
	if v, ok := _u.mutation.Token(); ok {
		if err := passwordresettoken.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`ent: validator failed for field "PasswordResetToken.token": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PasswordResetToken.user"`)
	}
	return nil
}

func (_u *PasswordResetTokenUpdateOne) sqlSave(ctx context.Context) (_node *PasswordResetToken, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(passwordresettoken.Table, passwordresettoken.Columns, sqlgraph.NewFieldSpec(passwordresettoken.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PasswordResetToken.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, passwordresettoken.FieldID)
		for _, f := range fields {
			if !passwordresettoken.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != passwordresettoken.FieldID {
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
		_spec.SetField(passwordresettoken.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(passwordresettoken.FieldToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(passwordresettoken.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Used(); ok {
		_spec.SetField(passwordresettoken.FieldUsed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UsedAt(); ok {
		_spec.SetField(passwordresettoken.FieldUsedAt, field.TypeTime, value)
	}
	if _u.mutation.UsedAtCleared() {
		_spec.ClearField(passwordresettoken.FieldUsedAt, field.TypeTime)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PasswordResetToken{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{passwordresettoken.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
