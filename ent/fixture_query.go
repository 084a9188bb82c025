// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"charterdesk.io/charterdesk/ent/contract"
	"charterdesk.io/charterdesk/ent/fixture"
	"charterdesk.io/charterdesk/ent/order"
	"charterdesk.io/charterdesk/ent/predicate"
	"charterdesk.io/charterdesk/ent/recapmanager"
	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// FixtureQuery is the builder for querying Fixture entities.
type FixtureQuery struct {
	config
	ctx           *QueryContext
	order         []fixture.OrderOption
	inters        []Interceptor
	predicates    []predicate.Fixture
	withOrder     *OrderQuery
	withContracts *ContractQuery
	withRecaps    *RecapManagerQuery
	withFKs       bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the FixtureQuery builder.
func (_q *FixtureQuery) Where(ps ...predicate.Fixture) *FixtureQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *FixtureQuery) Limit(limit int) *FixtureQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *FixtureQuery) Offset(offset int) *FixtureQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *FixtureQuery) Unique(unique bool) *FixtureQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *FixtureQuery) Order(o ...fixture.OrderOption) *FixtureQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryOrder chains the current query on the "order" edge.
func (_q *FixtureQuery) QueryOrder() *OrderQuery {
	query := (&OrderClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(fixture.Table, fixture.FieldID, selector),
			sqlgraph.To(order.Table, order.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, fixture.OrderTable, fixture.OrderColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryContracts chains the current query on the "contracts" edge.
func (_q *FixtureQuery) QueryContracts() *ContractQuery {
	query := (&ContractClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(fixture.Table, fixture.FieldID, selector),
			sqlgraph.To(contract.Table, contract.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, fixture.ContractsTable, fixture.ContractsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRecaps chains the current query on the "recaps" edge.
func (_q *FixtureQuery) QueryRecaps() *RecapManagerQuery {
	query := (&RecapManagerClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(fixture.Table, fixture.FieldID, selector),
			sqlgraph.To(recapmanager.Table, recapmanager.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, fixture.RecapsTable, fixture.RecapsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Fixture entity from the query.
// Returns a *NotFoundError when no Fixture was found.
func (_q *FixtureQuery) First(ctx context.Context) (*Fixture, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{fixture.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *FixtureQuery) FirstX(ctx context.Context) *Fixture {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Fixture ID from the query.
// Returns a *NotFoundError when no Fixture ID was found.
func (_q *FixtureQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{fixture.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *FixtureQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Fixture entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Fixture entity is found.
// Returns a *NotFoundError when no Fixture entities are found.
func (_q *FixtureQuery) Only(ctx context.Context) (*Fixture, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{fixture.Label}
	default:
		return nil, &NotSingularError{fixture.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *FixtureQuery) OnlyX(ctx context.Context) *Fixture {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Fixture ID in the query.
// Returns a *NotSingularError when more than one Fixture ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *FixtureQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{fixture.Label}
	default:
		err = &NotSingularError{fixture.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *FixtureQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Fixtures.
func (_q *FixtureQuery) All(ctx context.Context) ([]*Fixture, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Fixture, *FixtureQuery]()
	return withInterceptors[[]*Fixture](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *FixtureQuery) AllX(ctx context.Context) []*Fixture {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Fixture IDs.
func (_q *FixtureQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(fixture.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *FixtureQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *FixtureQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*FixtureQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *FixtureQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *FixtureQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *FixtureQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the FixtureQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *FixtureQuery) Clone() *FixtureQuery {
	if _q == nil {
		return nil
	}
	return &FixtureQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]fixture.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.Fixture{}, _q.predicates...),
		withOrder:     _q.withOrder.Clone(),
		withContracts: _q.withContracts.Clone(),
		withRecaps:    _q.withRecaps.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithOrder tells the query-builder to eager-load the nodes that are connected to
// the "order" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FixtureQuery) WithOrder(opts ...func(*OrderQuery)) *FixtureQuery {
	query := (&OrderClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOrder = query
	return _q
}

// WithContracts tells the query-builder to eager-load the nodes that are connected to
// the "contracts" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FixtureQuery) WithContracts(opts ...func(*ContractQuery)) *FixtureQuery {
	query := (&ContractClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withContracts = query
	return _q
}

// WithRecaps tells the query-builder to eager-load the nodes that are connected to
// the "recaps" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FixtureQuery) WithRecaps(opts ...func(*RecapManagerQuery)) *FixtureQuery {
	query := (&RecapManagerClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRecaps = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Fixture.Query().
//		GroupBy(fixture.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *FixtureQuery) GroupBy(field string, fields ...string) *FixtureGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &FixtureGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = fixture.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.Fixture.Query().
//		Select(fixture.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *FixtureQuery) Select(fields ...string) *FixtureSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &FixtureSelect{FixtureQuery: _q}
	sbuild.label = fixture.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a FixtureSelect configured with the given aggregations.
func (_q *FixtureQuery) Aggregate(fns ...AggregateFunc) *FixtureSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *FixtureQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !fixture.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *FixtureQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Fixture, error) {
	var (
		nodes       = []*Fixture{}
		withFKs     = _q.withFKs
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withOrder != nil,
			_q.withContracts != nil,
			_q.withRecaps != nil,
		}
	)
	if _q.withOrder != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, fixture.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Fixture).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Fixture{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withOrder; query != nil {
		if err := _q.loadOrder(ctx, query, nodes, nil,
			func(n *Fixture, e *Order) { n.Edges.Order = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withContracts; query != nil {
		if err := _q.loadContracts(ctx, query, nodes,
			func(n *Fixture) { n.Edges.Contracts = []*Contract{} },
			func(n *Fixture, e *Contract) { n.Edges.Contracts = append(n.Edges.Contracts, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRecaps; query != nil {
		if err := _q.loadRecaps(ctx, query, nodes,
			func(n *Fixture) { n.Edges.Recaps = []*RecapManager{} },
			func(n *Fixture, e *RecapManager) { n.Edges.Recaps = append(n.Edges.Recaps, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *FixtureQuery) loadOrder(ctx context.Context, query *OrderQuery, nodes []*Fixture, init func(*Fixture), assign func(*Fixture, *Order)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*Fixture)
	for i := range nodes {
		if nodes[i].order_fixtures == nil {
			continue
		}
		fk := *nodes[i].order_fixtures
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(order.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "order_fixtures" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *FixtureQuery) loadContracts(ctx context.Context, query *ContractQuery, nodes []*Fixture, init func(*Fixture), assign func(*Fixture, *Contract)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Fixture)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.Contract(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(fixture.ContractsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.fixture_contracts
		if fk == nil {
			return fmt.Errorf(`foreign-key "fixture_contracts" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "fixture_contracts" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *FixtureQuery) loadRecaps(ctx context.Context, query *RecapManagerQuery, nodes []*Fixture, init func(*Fixture), assign func(*Fixture, *RecapManager)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Fixture)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.RecapManager(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(fixture.RecapsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.fixture_recaps
		if fk == nil {
			return fmt.Errorf(`foreign-key "fixture_recaps" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "fixture_recaps" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *FixtureQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *FixtureQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(fixture.Table, fixture.Columns, sqlgraph.NewFieldSpec(fixture.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fixture.FieldID)
		for i := range fields {
			if fields[i] != fixture.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *FixtureQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(fixture.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = fixture.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// FixtureGroupBy is the group-by builder for Fixture entities.
type FixtureGroupBy struct {
	selector
	build *FixtureQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *FixtureGroupBy) Aggregate(fns ...AggregateFunc) *FixtureGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *FixtureGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*FixtureQuery, *FixtureGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *FixtureGroupBy) sqlScan(ctx context.Context, root *FixtureQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// FixtureSelect is the builder for selecting fields of Fixture entities.
type FixtureSelect struct {
	*FixtureQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *FixtureSelect) Aggregate(fns ...AggregateFunc) *FixtureSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *FixtureSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*FixtureQuery, *FixtureSelect](ctx, _s.FixtureQuery, _s, _s.inters, v)
}

func (_s *FixtureSelect) sqlScan(ctx context.Context, root *FixtureQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
