// Code generated by ent, DO NOT EDIT.

package recapmanager

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the recapmanager type in the database.
	Label = "recap_manager"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldRecapNumber holds the string denoting the recap_number field in the database.
	FieldRecapNumber = "recap_number"
	// FieldOrderID holds the string denoting the order_id field in the database.
	FieldOrderID = "order_id"
	// FieldNegotiationID holds the string denoting the negotiation_id field in the database.
	FieldNegotiationID = "negotiation_id"
	// FieldParentRecapID holds the string denoting the parent_recap_id field in the database.
	FieldParentRecapID = "parent_recap_id"
	// FieldContractType holds the string denoting the contract_type field in the database.
	FieldContractType = "contract_type"
	// FieldDeliveryType holds the string denoting the delivery_type field in the database.
	FieldDeliveryType = "delivery_type"
	// FieldMarketIndex holds the string denoting the market_index field in the database.
	FieldMarketIndex = "market_index"
	// FieldVesselID holds the string denoting the vessel_id field in the database.
	FieldVesselID = "vessel_id"
	// FieldCompanyID holds the string denoting the company_id field in the database.
	FieldCompanyID = "company_id"
	// FieldLoadPortID holds the string denoting the load_port_id field in the database.
	FieldLoadPortID = "load_port_id"
	// FieldDischargePortID holds the string denoting the discharge_port_id field in the database.
	FieldDischargePortID = "discharge_port_id"
	// FieldCargoTypeID holds the string denoting the cargo_type_id field in the database.
	FieldCargoTypeID = "cargo_type_id"
	// FieldFreightRate holds the string denoting the freight_rate field in the database.
	FieldFreightRate = "freight_rate"
	// FieldLaycanStart holds the string denoting the laycan_start field in the database.
	FieldLaycanStart = "laycan_start"
	// FieldLaycanEnd holds the string denoting the laycan_end field in the database.
	FieldLaycanEnd = "laycan_end"
	// FieldQuantity holds the string denoting the quantity field in the database.
	FieldQuantity = "quantity"
	// FieldDemurrageRate holds the string denoting the demurrage_rate field in the database.
	FieldDemurrageRate = "demurrage_rate"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// EdgeFixture holds the string denoting the fixture edge name in mutations.
	EdgeFixture = "fixture"
	// Table holds the table name of the recapmanager in the database.
	Table = "recap_managers"
	// FixtureTable is the table that holds the fixture relation/edge.
	FixtureTable = "recap_managers"
	// FixtureInverseTable is the table name for the Fixture entity.
	// It exists in this package in order to avoid circular dependency with the "fixture" package.
	FixtureInverseTable = "fixtures"
	// FixtureColumn is the table column denoting the fixture relation/edge.
	FixtureColumn = "fixture_recaps"
)

// Columns holds all SQL columns for recapmanager fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldRecapNumber,
	FieldOrderID,
	FieldNegotiationID,
	FieldParentRecapID,
	FieldContractType,
	FieldDeliveryType,
	FieldMarketIndex,
	FieldVesselID,
	FieldCompanyID,
	FieldLoadPortID,
	FieldDischargePortID,
	FieldCargoTypeID,
	FieldFreightRate,
	FieldLaycanStart,
	FieldLaycanEnd,
	FieldQuantity,
	FieldDemurrageRate,
	FieldStatus,
	FieldCreatedBy,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "recap_managers"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"fixture_recaps",
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
	// RecapNumberValidator is a validator for the "recap_number" field. It is called by the builders before save.
	RecapNumberValidator func(string) error
	// CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	CreatedByValidator func(string) error
)

// Status defines the type for the "status" enum field.
type Status string

// StatusDrafting is the default value of the Status enum.
const DefaultStatus = StatusDrafting

// Status values.
const (
	StatusDrafting Status = "drafting"
	StatusReview   Status = "review"
	StatusFinal    Status = "final"
	StatusSigned   Status = "signed"
	StatusCanceled Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDrafting, StatusReview, StatusFinal, StatusSigned, StatusCanceled:
		return nil
	default:
		return fmt.Errorf("recapmanager: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the RecapManager queries.
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

// ByRecapNumber orders the results by the recap_number field.
func ByRecapNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecapNumber, opts...).ToFunc()
}

// ByOrderID orders the results by the order_id field.
func ByOrderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderID, opts...).ToFunc()
}

// ByNegotiationID orders the results by the negotiation_id field.
func ByNegotiationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNegotiationID, opts...).ToFunc()
}

// ByParentRecapID orders the results by the parent_recap_id field.
func ByParentRecapID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentRecapID, opts...).ToFunc()
}

// ByContractType orders the results by the contract_type field.
func ByContractType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContractType, opts...).ToFunc()
}

// ByDeliveryType orders the results by the delivery_type field.
func ByDeliveryType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveryType, opts...).ToFunc()
}

// ByMarketIndex orders the results by the market_index field.
func ByMarketIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarketIndex, opts...).ToFunc()
}

// ByVesselID orders the results by the vessel_id field.
func ByVesselID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVesselID, opts...).ToFunc()
}

// ByCompanyID orders the results by the company_id field.
func ByCompanyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyID, opts...).ToFunc()
}

// ByLoadPortID orders the results by the load_port_id field.
func ByLoadPortID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoadPortID, opts...).ToFunc()
}

// ByDischargePortID orders the results by the discharge_port_id field.
func ByDischargePortID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDischargePortID, opts...).ToFunc()
}

// ByCargoTypeID orders the results by the cargo_type_id field.
func ByCargoTypeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCargoTypeID, opts...).ToFunc()
}

// ByFreightRate orders the results by the freight_rate field.
func ByFreightRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFreightRate, opts...).ToFunc()
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

// ByDemurrageRate orders the results by the demurrage_rate field.
func ByDemurrageRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDemurrageRate, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByFixtureField orders the results by fixture field.
func ByFixtureField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFixtureStep(), sql.OrderByField(field, opts...))
	}
}
func newFixtureStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FixtureInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FixtureTable, FixtureColumn),
	)
}
