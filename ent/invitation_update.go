// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charterdesk.io/charterdesk/ent/invitation"
	"charterdesk.io/charterdesk/ent/organization"
	"charterdesk.io/charterdesk/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// InvitationUpdate is the builder for updating Invitation entities.
type InvitationUpdate struct {
	config
	hooks    []Hook
	mutation *InvitationMutation
}

// Where appends a list predicates to the InvitationUpdate builder.
func (_u *InvitationUpdate) Where(ps ...predicate.Invitation) *InvitationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvitationUpdate) SetUpdatedAt(v time.Time) *InvitationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEmail sets the "email" field.
func (_u *InvitationUpdate) SetEmail(v string) *InvitationUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *InvitationUpdate) SetNillableEmail(v *string) *InvitationUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *InvitationUpdate) SetRole(v invitation.Role) *InvitationUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *InvitationUpdate) SetNillableRole(v *invitation.Role) *InvitationUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvitationUpdate) SetStatus(v invitation.Status) *InvitationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvitationUpdate) SetNillableStatus(v *invitation.Status) *InvitationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetToken sets the "token" field.
func (_u *InvitationUpdate) SetToken(v string) *InvitationUpdate {
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *InvitationUpdate) SetNillableToken(v *string) *InvitationUpdate {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *InvitationUpdate) SetExpiresAt(v time.Time) *InvitationUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *InvitationUpdate) SetNillableExpiresAt(v *time.Time) *InvitationUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetInvitedBy sets the "invited_by" field.
func (_u *InvitationUpdate) SetInvitedBy(v string) *InvitationUpdate {
	_u.mutation.SetInvitedBy(v)
	return _u
}

// SetNillableInvitedBy sets the "invited_by" field if the given value is not nil.
func (_u *InvitationUpdate) SetNillableInvitedBy(v *string) *InvitationUpdate {
	if v != nil {
		_u.SetInvitedBy(*v)
	}
	return _u
}

// SetAcceptedAt sets the "accepted_at" field.
func (_u *InvitationUpdate) SetAcceptedAt(v time.Time) *InvitationUpdate {
	_u.mutation.SetAcceptedAt(v)
	return _u
}

// SetNillableAcceptedAt sets the "accepted_at" field if the given value is not nil.
func (_u *InvitationUpdate) SetNillableAcceptedAt(v *time.Time) *InvitationUpdate {
	if v != nil {
		_u.SetAcceptedAt(*v)
	}
	return _u
}

// ClearAcceptedAt clears the value of the "accepted_at" field.
func (_u *InvitationUpdate) ClearAcceptedAt() *InvitationUpdate {
	_u.mutation.ClearAcceptedAt()
	return _u
}

// SetOrganizationID sets the "organization" edge to the Organization entity by ID.
func (_u *InvitationUpdate) SetOrganizationID(id string) *InvitationUpdate {
	_u.mutation.SetOrganizationID(id)
	return _u
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_u *InvitationUpdate) SetOrganization(v *Organization) *InvitationUpdate {
	return _u.SetOrganizationID(v.ID)
}

// Mutation returns the InvitationMutation object of the builder.
func (_u *InvitationUpdate) Mutation() *InvitationMutation {
	return _u.mutation
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (_u *InvitationUpdate) ClearOrganization() *InvitationUpdate {
	_u.mutation.ClearOrganization()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvitationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvitationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvitationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvitationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvitationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invitation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvitationUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := invitation.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Invitation.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := invitation.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Invitation.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := invitation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Invitation.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Token(); ok {
		if err := invitation.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`ent: validator failed for field "Invitation.token": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InvitedBy(); ok {
		if err := invitation.InvitedByValidator(v); err != nil {
			return &ValidationError{Name: "invited_by", err: fmt.Errorf(`ent: validator failed for field "Invitation.invited_by": %w`, err)}
		}
	}
	if _u.mutation.OrganizationCleared() && len(_u.mutation.OrganizationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Invitation.organization"`)
	}
	return nil
}

func (_u *InvitationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invitation.Table, invitation.Columns, sqlgraph.NewFieldSpec(invitation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invitation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(invitation.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(invitation.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(invitation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(invitation.FieldToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(invitation.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.InvitedBy(); ok {
		_spec.SetField(invitation.FieldInvitedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.AcceptedAt(); ok {
		_spec.SetField(invitation.FieldAcceptedAt, field.TypeTime, value)
	}
	if _u.mutation.AcceptedAtCleared() {
		_spec.ClearField(invitation.FieldAcceptedAt, field.TypeTime)
	}
	if _u.mutation.OrganizationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invitation.OrganizationTable,
			Columns: []string{invitation.OrganizationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrganizationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invitation.OrganizationTable,
			Columns: []string{invitation.OrganizationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invitation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvitationUpdateOne is the builder for updating a single Invitation entity.
type InvitationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvitationMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvitationUpdateOne) SetUpdatedAt(v time.Time) *InvitationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEmail sets the "email" field.
func (_u *InvitationUpdateOne) SetEmail(v string) *InvitationUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *InvitationUpdateOne) SetNillableEmail(v *string) *InvitationUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *InvitationUpdateOne) SetRole(v invitation.Role) *InvitationUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *InvitationUpdateOne) SetNillableRole(v *invitation.Role) *InvitationUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvitationUpdateOne) SetStatus(v invitation.Status) *InvitationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvitationUpdateOne) SetNillableStatus(v *invitation.Status) *InvitationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetToken sets the "token" field.
func (_u *InvitationUpdateOne) SetToken(v string) *InvitationUpdateOne {
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *InvitationUpdateOne) SetNillableToken(v *string) *InvitationUpdateOne {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *InvitationUpdateOne) SetExpiresAt(v time.Time) *InvitationUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *InvitationUpdateOne) SetNillableExpiresAt(v *time.Time) *InvitationUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetInvitedBy sets the "invited_by" field.
func (_u *InvitationUpdateOne) SetInvitedBy(v string) *InvitationUpdateOne {
	_u.mutation.SetInvitedBy(v)
	return _u
}

// SetNillableInvitedBy sets the "invited_by" field if the given value is not nil.
func (_u *InvitationUpdateOne) SetNillableInvitedBy(v *string) *InvitationUpdateOne {
	if v != nil {
		_u.SetInvitedBy(*v)
	}
	return _u
}

// SetAcceptedAt sets the "accepted_at" field.
func (_u *InvitationUpdateOne) SetAcceptedAt(v time.Time) *InvitationUpdateOne {
	_u.mutation.SetAcceptedAt(v)
	return _u
}

// SetNillableAcceptedAt sets the "accepted_at" field if the given value is not nil.
func (_u *InvitationUpdateOne) SetNillableAcceptedAt(v *time.Time) *InvitationUpdateOne {
	if v != nil {
		_u.SetAcceptedAt(*v)
	}
	return _u
}

// ClearAcceptedAt clears the value of the "accepted_at" field.
func (_u *InvitationUpdateOne) ClearAcceptedAt() *InvitationUpdateOne {
	_u.mutation.ClearAcceptedAt()
	return _u
}

// SetOrganizationID sets the "organization" edge to the Organization entity by ID.
func (_u *InvitationUpdateOne) SetOrganizationID(id string) *InvitationUpdateOne {
	_u.mutation.SetOrganizationID(id)
	return _u
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_u *InvitationUpdateOne) SetOrganization(v *Organization) *InvitationUpdateOne {
	return _u.SetOrganizationID(v.ID)
}

// Mutation returns the InvitationMutation object of the builder.
func (_u *InvitationUpdateOne) Mutation() *InvitationMutation {
	return _u.mutation
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (_u *InvitationUpdateOne) ClearOrganization() *InvitationUpdateOne {
	_u.mutation.ClearOrganization()
	return _u
}

// Where appends a list predicates to the InvitationUpdate builder.
func (_u *InvitationUpdateOne) Where(ps ...predicate.Invitation) *InvitationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvitationUpdateOne) Select(field string, fields ...string) *InvitationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Invitation entity.
func (_u *InvitationUpdateOne) Save(ctx context.Context) (*Invitation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvitationUpdateOne) SaveX(ctx context.Context) *Invitation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvitationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvitationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvitationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invitation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvitationUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := invitation.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Invitation.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := invitation.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Invitation.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := invitation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Invitation.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Token(); ok {
		if err := invitation.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`ent: validator failed for field "Invitation.token": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InvitedBy(); ok {
		if err := invitation.InvitedByValidator(v); err != nil {
			return &ValidationError{Name: "invited_by", err: fmt.Errorf(`ent: validator failed for field "Invitation.invited_by": %w`, err)}
		}
	}
	if _u.mutation.OrganizationCleared() && len(_u.mutation.OrganizationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Invitation.organization"`)
	}
	return nil
}

func (_u *InvitationUpdateOne) sqlSave(ctx context.Context) (_node *Invitation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invitation.Table, invitation.Columns, sqlgraph.NewFieldSpec(invitation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Invitation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invitation.FieldID)
		for _, f := range fields {
			if !invitation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invitation.FieldID {
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
		_spec.SetField(invitation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(invitation.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(invitation.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(invitation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(invitation.FieldToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(invitation.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.InvitedBy(); ok {
		_spec.SetField(invitation.FieldInvitedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.AcceptedAt(); ok {
		_spec.SetField(invitation.FieldAcceptedAt, field.TypeTime, value)
	}
	if _u.mutation.AcceptedAtCleared() {
		_spec.ClearField(invitation.FieldAcceptedAt, field.TypeTime)
	}
	if _u.mutation.OrganizationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invitation.OrganizationTable,
			Columns: []string{invitation.OrganizationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrganizationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invitation.OrganizationTable,
			Columns: []string{invitation.OrganizationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Invitation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invitation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
