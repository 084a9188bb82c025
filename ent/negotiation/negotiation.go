// Code generated by ent, DO NOT EDIT.

package negotiation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the negotiation type in the database.
	Label = "negotiation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldNegotiationNumber holds the string denoting the negotiation_number field in the database.
	FieldNegotiationNumber = "negotiation_number"
	// FieldCompanyID holds the string denoting the company_id field in the database.
	FieldCompanyID = "company_id"
	// FieldVesselID holds the string denoting the vessel_id field in the database.
	FieldVesselID = "vessel_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldFreightRate holds the string denoting the freight_rate field in the database.
	FieldFreightRate = "freight_rate"
	// FieldFirstIndication holds the string denoting the first_indication field in the database.
	FieldFirstIndication = "first_indication"
	// FieldHighestIndication holds the string denoting the highest_indication field in the database.
	FieldHighestIndication = "highest_indication"
	// FieldLowestIndication holds the string denoting the lowest_indication field in the database.
	FieldLowestIndication = "lowest_indication"
	// FieldMarketIndex holds the string denoting the market_index field in the database.
	FieldMarketIndex = "market_index"
	// FieldDeliveryType holds the string denoting the delivery_type field in the database.
	FieldDeliveryType = "delivery_type"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// EdgeOrder holds the string denoting the order edge name in mutations.
	EdgeOrder = "order"
	// Table holds the table name of the negotiation in the database.
	Table = "negotiations"
	// OrderTable is the table that holds the order relation/edge.
	OrderTable = "negotiations"
	// OrderInverseTable is the table name for the Order entity.
	// It exists in this package in order to avoid circular dependency with the "order" package.
	OrderInverseTable = "orders"
	// OrderColumn is the table column denoting the order relation/edge.
	OrderColumn = "order_negotiations"
)

// Columns holds all SQL columns for negotiation fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldNegotiationNumber,
	FieldCompanyID,
	FieldVesselID,
	FieldStatus,
	FieldFreightRate,
	FieldFirstIndication,
	FieldHighestIndication,
	FieldLowestIndication,
	FieldMarketIndex,
	FieldDeliveryType,
	FieldCreatedBy,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "negotiations"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"order_negotiations",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
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
	// NegotiationNumberValidator is a validator for the "negotiation_number" field. It is called by the builders before save.
	NegotiationNumberValidator func(string) error
	// CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	CreatedByValidator func(string) error
)

// Status defines the type for the "status" enum field.
type Status string

// StatusIndication is the default value of the Status enum.
const DefaultStatus = StatusIndication

// Status values.
const (
	StatusIndication Status = "indication"
	StatusFirm       Status = "firm"
	StatusOnSubs     Status = "on-subs"
	StatusFixed      Status = "fixed"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusIndication, StatusFirm, StatusOnSubs, StatusFixed, StatusFailed:
		return nil
	default:
		return fmt.Errorf("negotiation: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Negotiation queries.
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

// ByNegotiationNumber orders the results by the negotiation_number field.
func ByNegotiationNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNegotiationNumber, opts...).ToFunc()
}

// ByCompanyID orders the results by the company_id field.
func ByCompanyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyID, opts...).ToFunc()
}

// ByVesselID orders the results by the vessel_id field.
func ByVesselID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVesselID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByFreightRate orders the results by the freight_rate field.
func ByFreightRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFreightRate, opts...).ToFunc()
}

// ByFirstIndication orders the results by the first_indication field.
func ByFirstIndication(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstIndication, opts...).ToFunc()
}

// ByHighestIndication orders the results by the highest_indication field.
func ByHighestIndication(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHighestIndication, opts...).ToFunc()
}

// ByLowestIndication orders the results by the lowest_indication field.
func ByLowestIndication(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLowestIndication, opts...).ToFunc()
}

// ByMarketIndex orders the results by the market_index field.
func ByMarketIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarketIndex, opts...).ToFunc()
}

// ByDeliveryType orders the results by the delivery_type field.
func ByDeliveryType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveryType, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByOrderField orders the results by order field.
func ByOrderField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOrderStep(), sql.OrderByField(field, opts...))
	}
}
func newOrderStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OrderInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, OrderTable, OrderColumn),
	)
}
