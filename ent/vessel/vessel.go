// Code generated by ent, DO NOT EDIT.

package vessel

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the vessel type in the database.
	Label = "vessel"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldImoNumber holds the string denoting the imo_number field in the database.
	FieldImoNumber = "imo_number"
	// FieldVesselType holds the string denoting the vessel_type field in the database.
	FieldVesselType = "vessel_type"
	// FieldDwt holds the string denoting the dwt field in the database.
	FieldDwt = "dwt"
	// FieldBuiltYear holds the string denoting the built_year field in the database.
	FieldBuiltYear = "built_year"
	// FieldFlag holds the string denoting the flag field in the database.
	FieldFlag = "flag"
	// FieldVerified holds the string denoting the verified field in the database.
	FieldVerified = "verified"
	// Table holds the table name of the vessel in the database.
	Table = "vessels"
)

// Columns holds all SQL columns for vessel fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldName,
	FieldImoNumber,
	FieldVesselType,
	FieldDwt,
	FieldBuiltYear,
	FieldFlag,
	FieldVerified,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultVerified holds the default value on creation for the "verified" field.
	DefaultVerified bool
)

// OrderOption defines the ordering options for the Vessel queries.
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

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByImoNumber orders the results by the imo_number field.
func ByImoNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImoNumber, opts...).ToFunc()
}

// ByVesselType orders the results by the vessel_type field.
func ByVesselType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVesselType, opts...).ToFunc()
}

// ByDwt orders the results by the dwt field.
func ByDwt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDwt, opts...).ToFunc()
}

// ByBuiltYear orders the results by the built_year field.
func ByBuiltYear(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuiltYear, opts...).ToFunc()
}

// ByFlag orders the results by the flag field.
func ByFlag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlag, opts...).ToFunc()
}

// ByVerified orders the results by the verified field.
func ByVerified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerified, opts...).ToFunc()
}
