// Code generated by ent, DO NOT EDIT.

package signature

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the signature type in the database.
	Label = "signature"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldEntityType holds the string denoting the entity_type field in the database.
	FieldEntityType = "entity_type"
	// FieldEntityID holds the string denoting the entity_id field in the database.
	FieldEntityID = "entity_id"
	// FieldSignerName holds the string denoting the signer_name field in the database.
	FieldSignerName = "signer_name"
	// FieldSignerEmail holds the string denoting the signer_email field in the database.
	FieldSignerEmail = "signer_email"
	// FieldParty holds the string denoting the party field in the database.
	FieldParty = "party"
	// FieldSignedAt holds the string denoting the signed_at field in the database.
	FieldSignedAt = "signed_at"
	// FieldDocumentStorageID holds the string denoting the document_storage_id field in the database.
	FieldDocumentStorageID = "document_storage_id"
	// Table holds the table name of the signature in the database.
	Table = "signatures"
)

// Columns holds all SQL columns for signature fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldEntityType,
	FieldEntityID,
	FieldSignerName,
	FieldSignerEmail,
	FieldParty,
	FieldSignedAt,
	FieldDocumentStorageID,
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
	// EntityIDValidator is a validator for the "entity_id" field. It is called by the builders before save.
	EntityIDValidator func(string) error
	// SignerNameValidator is a validator for the "signer_name" field. It is called by the builders before save.
	SignerNameValidator func(string) error
)

// EntityType defines the type for the "entity_type" enum field.
type EntityType string

// EntityType values.
const (
	EntityTypeContract EntityType = "contract"
	EntityTypeRecap    EntityType = "recap"
)

func (et EntityType) String() string {
	return string(et)
}

// EntityTypeValidator is a validator for the "entity_type" field enum values. It is called by the builders before save.
func EntityTypeValidator(et EntityType) error {
	switch et {
	case EntityTypeContract, EntityTypeRecap:
		return nil
	default:
		return fmt.Errorf("signature: invalid enum value for entity_type field: %q", et)
	}
}

// Party defines the type for the "party" enum field.
type Party string

// PartyBroker is the default value of the Party enum.
const DefaultParty = PartyBroker

// Party values.
const (
	PartyOwner     Party = "owner"
	PartyCharterer Party = "charterer"
	PartyBroker    Party = "broker"
)

func (pa Party) String() string {
	return string(pa)
}

// PartyValidator is a validator for the "party" field enum values. It is called by the builders before save.
func PartyValidator(pa Party) error {
	switch pa {
	case PartyOwner, PartyCharterer, PartyBroker:
		return nil
	default:
		return fmt.Errorf("signature: invalid enum value for party field: %q", pa)
	}
}

// OrderOption defines the ordering options for the Signature queries.
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

// ByEntityType orders the results by the entity_type field.
func ByEntityType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityType, opts...).ToFunc()
}

// ByEntityID orders the results by the entity_id field.
func ByEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityID, opts...).ToFunc()
}

// BySignerName orders the results by the signer_name field.
func BySignerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignerName, opts...).ToFunc()
}

// BySignerEmail orders the results by the signer_email field.
func BySignerEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignerEmail, opts...).ToFunc()
}

// ByParty orders the results by the party field.
func ByParty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParty, opts...).ToFunc()
}

// BySignedAt orders the results by the signed_at field.
func BySignedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignedAt, opts...).ToFunc()
}

// ByDocumentStorageID orders the results by the document_storage_id field.
func ByDocumentStorageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentStorageID, opts...).ToFunc()
}
