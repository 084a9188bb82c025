// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charterdesk.io/charterdesk/ent/contract"
	"charterdesk.io/charterdesk/ent/fixture"
	"charterdesk.io/charterdesk/ent/order"
	"charterdesk.io/charterdesk/ent/predicate"
	"charterdesk.io/charterdesk/ent/recapmanager"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// FixtureUpdate is the builder for updating Fixture entities.
type FixtureUpdate struct {
	config
	hooks    []Hook
	mutation *FixtureMutation
}

// Where appends a list predicates to the FixtureUpdate builder.
func (_u *FixtureUpdate) Where(ps ...predicate.Fixture) *FixtureUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FixtureUpdate) SetUpdatedAt(v time.Time) *FixtureUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *FixtureUpdate) SetStatus(v fixture.Status) *FixtureUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FixtureUpdate) SetNillableStatus(v *fixture.Status) *FixtureUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *FixtureUpdate) SetLastUpdated(v time.Time) *FixtureUpdate {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_u *FixtureUpdate) SetNillableLastUpdated(v *time.Time) *FixtureUpdate {
	if v != nil {
		_u.SetLastUpdated(*v)
	}
	return _u
}

// ClearLastUpdated clears the value of the "last_updated" field.
func (_u *FixtureUpdate) ClearLastUpdated() *FixtureUpdate {
	_u.mutation.ClearLastUpdated()
	return _u
}

// SetSearchText sets the "search_text" field.
func (_u *FixtureUpdate) SetSearchText(v string) *FixtureUpdate {
	_u.mutation.SetSearchText(v)
	return _u
}

// SetNillableSearchText sets the "search_text" field if the given value is not nil.
func (_u *FixtureUpdate) SetNillableSearchText(v *string) *FixtureUpdate {
	if v != nil {
		_u.SetSearchText(*v)
	}
	return _u
}

// ClearSearchText clears the value of the "search_text" field.
func (_u *FixtureUpdate) ClearSearchText() *FixtureUpdate {
	_u.mutation.ClearSearchText()
	return _u
}

// SetOrderID sets the "order" edge to the Order entity by ID.
func (_u *FixtureUpdate) SetOrderID(id string) *FixtureUpdate {
	_u.mutation.SetOrderID(id)
	return _u
}

// SetNillableOrderID sets the "order" edge to the Order entity by ID if the given value is not nil.
func (_u *FixtureUpdate) SetNillableOrderID(id *string) *FixtureUpdate {
	if id != nil {
		_u = _u.SetOrderID(*id)
	}
	return _u
}

// SetOrder sets the "order" edge to the Order entity.
func (_u *FixtureUpdate) SetOrder(v *Order) *FixtureUpdate {
	return _u.SetOrderID(v.ID)
}

// AddContractIDs adds the "contracts" edge to the Contract entity by IDs.
func (_u *FixtureUpdate) AddContractIDs(ids ...string) *FixtureUpdate {
	_u.mutation.AddContractIDs(ids...)
	return _u
}

// AddContracts adds the "contracts" edges to the Contract entity.
func (_u *FixtureUpdate) AddContracts(v ...*Contract) *FixtureUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddContractIDs(ids...)
}

// AddRecapIDs adds the "recaps" edge to the RecapManager entity by IDs.
func (_u *FixtureUpdate) AddRecapIDs(ids ...string) *FixtureUpdate {
	_u.mutation.AddRecapIDs(ids...)
	return _u
}

// AddRecaps adds the "recaps" edges to the RecapManager entity.
func (_u *FixtureUpdate) AddRecaps(v ...*RecapManager) *FixtureUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecapIDs(ids...)
}

// Mutation returns the FixtureMutation object of the builder.
func (_u *FixtureUpdate) Mutation() *FixtureMutation {
	return _u.mutation
}

// ClearOrder clears the "order" edge to the Order entity.
func (_u *FixtureUpdate) ClearOrder() *FixtureUpdate {
	_u.mutation.ClearOrder()
	return _u
}

// ClearContracts clears all "contracts" edges to the Contract entity.
func (_u *FixtureUpdate) ClearContracts() *FixtureUpdate {
	_u.mutation.ClearContracts()
	return _u
}

// RemoveContractIDs removes the "contracts" edge to Contract entities by IDs.
func (_u *FixtureUpdate) RemoveContractIDs(ids ...string) *FixtureUpdate {
	_u.mutation.RemoveContractIDs(ids...)
	return _u
}

// RemoveContracts removes "contracts" edges to Contract entities.
func (_u *FixtureUpdate) RemoveContracts(v ...*Contract) *FixtureUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveContractIDs(ids...)
}

// ClearRecaps clears all "recaps" edges to the RecapManager entity.
func (_u *FixtureUpdate) ClearRecaps() *FixtureUpdate {
	_u.mutation.ClearRecaps()
	return _u
}

// RemoveRecapIDs removes the "recaps" edge to RecapManager entities by IDs.
func (_u *FixtureUpdate) RemoveRecapIDs(ids ...string) *FixtureUpdate {
	_u.mutation.RemoveRecapIDs(ids...)
	return _u
}

// RemoveRecaps removes "recaps" edges to RecapManager entities.
func (_u *FixtureUpdate) RemoveRecaps(v ...*RecapManager) *FixtureUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecapIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FixtureUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FixtureUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FixtureUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FixtureUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FixtureUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := fixture.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FixtureUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := fixture.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Fixture.status": %w`, err)}
		}
	}
	return nil
}

func (_u *FixtureUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fixture.Table, fixture.Columns, sqlgraph.NewFieldSpec(fixture.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(fixture.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(fixture.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(fixture.FieldLastUpdated, field.TypeTime, value)
	}
	if _u.mutation.LastUpdatedCleared() {
		_spec.ClearField(fixture.FieldLastUpdated, field.TypeTime)
	}
	if value, ok := _u.mutation.SearchText(); ok {
		_spec.SetField(fixture.FieldSearchText, field.TypeString, value)
	}
	if _u.mutation.SearchTextCleared() {
		_spec.ClearField(fixture.FieldSearchText, field.TypeString)
	}
	if _u.mutation.OrderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fixture.OrderTable,
			Columns: []string{fixture.OrderColumn},
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
			Table:   fixture.OrderTable,
			Columns: []string{fixture.OrderColumn},
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
	if _u.mutation.ContractsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fixture.ContractsTable,
			Columns: []string{fixture.ContractsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedContractsIDs(); len(nodes) > 0 && !_u.mutation.ContractsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fixture.ContractsTable,
			Columns: []string{fixture.ContractsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContractsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fixture.ContractsTable,
			Columns: []string{fixture.ContractsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecapsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fixture.RecapsTable,
			Columns: []string{fixture.RecapsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recapmanager.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecapsIDs(); len(nodes) > 0 && !_u.mutation.RecapsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fixture.RecapsTable,
			Columns: []string{fixture.RecapsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recapmanager.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecapsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fixture.RecapsTable,
			Columns: []string{fixture.RecapsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recapmanager.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fixture.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FixtureUpdateOne is the builder for updating a single Fixture entity.
type FixtureUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FixtureMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FixtureUpdateOne) SetUpdatedAt(v time.Time) *FixtureUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *FixtureUpdateOne) SetStatus(v fixture.Status) *FixtureUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FixtureUpdateOne) SetNillableStatus(v *fixture.Status) *FixtureUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *FixtureUpdateOne) SetLastUpdated(v time.Time) *FixtureUpdateOne {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_u *FixtureUpdateOne) SetNillableLastUpdated(v *time.Time) *FixtureUpdateOne {
	if v != nil {
		_u.SetLastUpdated(*v)
	}
	return _u
}

// ClearLastUpdated clears the value of the "last_updated" field.
func (_u *FixtureUpdateOne) ClearLastUpdated() *FixtureUpdateOne {
	_u.mutation.ClearLastUpdated()
	return _u
}

// SetSearchText sets the "search_text" field.
func (_u *FixtureUpdateOne) SetSearchText(v string) *FixtureUpdateOne {
	_u.mutation.SetSearchText(v)
	return _u
}

// SetNillableSearchText sets the "search_text" field if the given value is not nil.
func (_u *FixtureUpdateOne) SetNillableSearchText(v *string) *FixtureUpdateOne {
	if v != nil {
		_u.SetSearchText(*v)
	}
	return _u
}

// ClearSearchText clears the value of the "search_text" field.
func (_u *FixtureUpdateOne) ClearSearchText() *FixtureUpdateOne {
	_u.mutation.ClearSearchText()
	return _u
}

// SetOrderID sets the "order" edge to the Order entity by ID.
func (_u *FixtureUpdateOne) SetOrderID(id string) *FixtureUpdateOne {
	_u.mutation.SetOrderID(id)
	return _u
}

// SetNillableOrderID sets the "order" edge to the Order entity by ID if the given value is not nil.
func (_u *FixtureUpdateOne) SetNillableOrderID(id *string) *FixtureUpdateOne {
	if id != nil {
		_u = _u.SetOrderID(*id)
	}
	return _u
}

// SetOrder sets the "order" edge to the Order entity.
func (_u *FixtureUpdateOne) SetOrder(v *Order) *FixtureUpdateOne {
	return _u.SetOrderID(v.ID)
}

// AddContractIDs adds the "contracts" edge to the Contract entity by IDs.
func (_u *FixtureUpdateOne) AddContractIDs(ids ...string) *FixtureUpdateOne {
	_u.mutation.AddContractIDs(ids...)
	return _u
}

// AddContracts adds the "contracts" edges to the Contract entity.
func (_u *FixtureUpdateOne) AddContracts(v ...*Contract) *FixtureUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddContractIDs(ids...)
}

// AddRecapIDs adds the "recaps" edge to the RecapManager entity by IDs.
func (_u *FixtureUpdateOne) AddRecapIDs(ids ...string) *FixtureUpdateOne {
	_u.mutation.AddRecapIDs(ids...)
	return _u
}

// AddRecaps adds the "recaps" edges to the RecapManager entity.
func (_u *FixtureUpdateOne) AddRecaps(v ...*RecapManager) *FixtureUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecapIDs(ids...)
}

// Mutation returns the FixtureMutation object of the builder.
func (_u *FixtureUpdateOne) Mutation() *FixtureMutation {
	return _u.mutation
}

// ClearOrder clears the "order" edge to the Order entity.
func (_u *FixtureUpdateOne) ClearOrder() *FixtureUpdateOne {
	_u.mutation.ClearOrder()
	return _u
}

// ClearContracts clears all "contracts" edges to the Contract entity.
func (_u *FixtureUpdateOne) ClearContracts() *FixtureUpdateOne {
	_u.mutation.ClearContracts()
	return _u
}

// RemoveContractIDs removes the "contracts" edge to Contract entities by IDs.
func (_u *FixtureUpdateOne) RemoveContractIDs(ids ...string) *FixtureUpdateOne {
	_u.mutation.RemoveContractIDs(ids...)
	return _u
}

// RemoveContracts removes "contracts" edges to Contract entities.
func (_u *FixtureUpdateOne) RemoveContracts(v ...*Contract) *FixtureUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveContractIDs(ids...)
}

// ClearRecaps clears all "recaps" edges to the RecapManager entity.
func (_u *FixtureUpdateOne) ClearRecaps() *FixtureUpdateOne {
	_u.mutation.ClearRecaps()
	return _u
}

// RemoveRecapIDs removes the "recaps" edge to RecapManager entities by IDs.
func (_u *FixtureUpdateOne) RemoveRecapIDs(ids ...string) *FixtureUpdateOne {
	_u.mutation.RemoveRecapIDs(ids...)
	return _u
}

// RemoveRecaps removes "recaps" edges to RecapManager entities.
func (_u *FixtureUpdateOne) RemoveRecaps(v ...*RecapManager) *FixtureUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecapIDs(ids...)
}

// Where appends a list predicates to the FixtureUpdate builder.
func (_u *FixtureUpdateOne) Where(ps ...predicate.Fixture) *FixtureUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FixtureUpdateOne) Select(field string, fields ...string) *FixtureUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Fixture entity.
func (_u *FixtureUpdateOne) Save(ctx context.Context) (*Fixture, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FixtureUpdateOne) SaveX(ctx context.Context) *Fixture {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FixtureUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FixtureUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FixtureUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := fixture.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FixtureUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := fixture.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Fixture.status": %w`, err)}
		}
	}
	return nil
}

func (_u *FixtureUpdateOne) sqlSave(ctx context.Context) (_node *Fixture, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fixture.Table, fixture.Columns, sqlgraph.NewFieldSpec(fixture.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Fixture.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fixture.FieldID)
		for _, f := range fields {
			if !fixture.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fixture.FieldID {
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
		_spec.SetField(fixture.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(fixture.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(fixture.FieldLastUpdated, field.TypeTime, value)
	}
	if _u.mutation.LastUpdatedCleared() {
		_spec.ClearField(fixture.FieldLastUpdated, field.TypeTime)
	}
	if value, ok := _u.mutation.SearchText(); ok {
		_spec.SetField(fixture.FieldSearchText, field.TypeString, value)
	}
	if _u.mutation.SearchTextCleared() {
		_spec.ClearField(fixture.FieldSearchText, field.TypeString)
	}
	if _u.mutation.OrderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fixture.OrderTable,
			Columns: []string{fixture.OrderColumn},
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
			Table:   fixture.OrderTable,
			Columns: []string{fixture.OrderColumn},
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
	if _u.mutation.ContractsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fixture.ContractsTable,
			Columns: []string{fixture.ContractsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedContractsIDs(); len(nodes) > 0 && !_u.mutation.ContractsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fixture.ContractsTable,
			Columns: []string{fixture.ContractsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContractsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fixture.ContractsTable,
			Columns: []string{fixture.ContractsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecapsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fixture.RecapsTable,
			Columns: []string{fixture.RecapsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recapmanager.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecapsIDs(); len(nodes) > 0 && !_u.mutation.RecapsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fixture.RecapsTable,
			Columns: []string{fixture.RecapsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recapmanager.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecapsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fixture.RecapsTable,
			Columns: []string{fixture.RecapsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recapmanager.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Fixture{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fixture.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
