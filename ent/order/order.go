// Code generated by ent, DO NOT EDIT.

package order

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the order type in the database.
	Label = "order"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldOrderNumber holds the string denoting the order_number field in the database.
	FieldOrderNumber = "order_number"
	// FieldOrganizationID holds the string denoting the organization_id field in the database.
	FieldOrganizationID = "organization_id"
	// FieldMarket holds the string denoting the market field in the database.
	FieldMarket = "market"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCargoTypeID holds the string denoting the cargo_type_id field in the database.
	FieldCargoTypeID = "cargo_type_id"
	// FieldLoadPortID holds the string denoting the load_port_id field in the database.
	FieldLoadPortID = "load_port_id"
	// FieldDischargePortID holds the string denoting the discharge_port_id field in the database.
	FieldDischargePortID = "discharge_port_id"
	// FieldLaycanStart holds the string denoting the laycan_start field in the database.
	FieldLaycanStart = "laycan_start"
	// FieldLaycanEnd holds the string denoting the laycan_end field in the database.
	FieldLaycanEnd = "laycan_end"
	// FieldQuantity holds the string denoting the quantity field in the database.
	FieldQuantity = "quantity"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// EdgeNegotiations holds the string denoting the negotiations edge name in mutations.
	EdgeNegotiations = "negotiations"
	// EdgeFixtures holds the string denoting the fixtures edge name in mutations.
	EdgeFixtures = "fixtures"
	// Table holds the table name of the order in the database.
	Table = "orders"
	// NegotiationsTable is the table that holds the negotiations relation/edge.
	NegotiationsTable = "negotiations"
	// NegotiationsInverseTable is the table name for the Negotiation entity.
	// It exists in this package in order to avoid circular dependency with the "negotiation" package.
	NegotiationsInverseTable = "negotiations"
	// NegotiationsColumn is the table column denoting the negotiations relation/edge.
	NegotiationsColumn = "order_negotiations"
	// FixturesTable is the table that holds the fixtures relation/edge.
	FixturesTable = "fixtures"
	// FixturesInverseTable is the table name for the Fixture entity.
	// It exists in this package in order to avoid circular dependency with the "fixture" package.
	FixturesInverseTable = "fixtures"
	// FixturesColumn is the table column denoting the fixtures relation/edge.
	FixturesColumn = "order_fixtures"
)

// Columns holds all SQL columns for order fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldOrderNumber,
	FieldOrganizationID,
	FieldMarket,
	FieldStatus,
	FieldCargoTypeID,
	FieldLoadPortID,
	FieldDischargePortID,
	FieldLaycanStart,
	FieldLaycanEnd,
	FieldQuantity,
	FieldNotes,
	FieldCreatedBy,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// OrderNumberValidator is a validator for the "order_number" field. It is called by the builders before save.
	OrderNumberValidator func(string) error
	// CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	CreatedByValidator func(string) error
)

// Market defines the type for the "market" enum field.
type Market string

// MarketDry is the default value of the Market enum.
const DefaultMarket = MarketDry

// Market values.
const (
	MarketDry Market = "dry"
	MarketWet Market = "wet"
)

func (m Market) String() string {
	return string(m)
}

// MarketValidator is a validator for the "market" field enum values. It is called by the builders before save.
func MarketValidator(m Market) error {
	switch m {
	case MarketDry, MarketWet:
		return nil
	default:
		return fmt.Errorf("order: invalid enum value for market field: %q", m)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusDraft is the default value of the Status enum.
const DefaultStatus = StatusDraft

// Status values.
const (
	StatusDraft    Status = "draft"
	StatusActive   Status = "active"
	StatusClosed   Status = "closed"
	StatusCanceled Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDraft, StatusActive, StatusClosed, StatusCanceled:
		return nil
	default:
		return fmt.Errorf("order: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Order queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByOrderNumber orders the results by the order_number field.
func ByOrderNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderNumber, opts...).ToFunc()
}

// ByOrganizationID orders the results by the organization_id field.
func ByOrganizationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrganizationID, opts...).ToFunc()
}

// ByMarket orders the results by the market field.
func ByMarket(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarket, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCargoTypeID orders the results by the cargo_type_id field.
func ByCargoTypeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCargoTypeID, opts...).ToFunc()
}

// ByLoadPortID orders the results by the load_port_id field.
func ByLoadPortID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoadPortID, opts...).ToFunc()
}

// ByDischargePortID orders the results by the discharge_port_id field.
func ByDischargePortID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDischargePortID, opts...).ToFunc()
}

// ByLaycanStart orders the results by the laycan_start field.
func ByLaycanStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLaycanStart, opts...).ToFunc()
}

// ByLaycanEnd orders the results by the laycan_end field.
func ByLaycanEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLaycanEnd, opts...).ToFunc()
}

// ByQuantity orders the results by the quantity field.
func ByQuantity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuantity, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByNegotiationsCount orders the results by negotiations count.
func ByNegotiationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newNegotiationsStep(), opts...)
	}
}

// ByNegotiations orders the results by negotiations terms.
func ByNegotiations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newNegotiationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByFixturesCount orders the results by fixtures count.
func ByFixturesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFixturesStep(), opts...)
	}
}

// ByFixtures orders the results by fixtures terms.
func ByFixtures(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFixturesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newNegotiationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NegotiationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, NegotiationsTable, NegotiationsColumn),
	)
}
func newFixturesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FixturesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FixturesTable, FixturesColumn),
	)
}
