// Code generated by ent, DO NOT EDIT.

package port

import (
	"time"

	"charterdesk.io/charterdesk/ent/predicate"
	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Port {
	return predicate.Port(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Port {
	return predicate.Port(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Port {
	return predicate.Port(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Port {
	return predicate.Port(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Port {
	return predicate.Port(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Port {
	return predicate.Port(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Port {
	return predicate.Port(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Port {
	return predicate.Port(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Port {
	return predicate.Port(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Port {
	return predicate.Port(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Port {
	return predicate.Port(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Port {
	return predicate.Port(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Port {
	return predicate.Port(sql.FieldEQ(FieldUpdatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Port {
	return predicate.Port(sql.FieldEQ(FieldName, v))
}

// Country applies equality check predicate on the "country" field. It's identical to CountryEQ.
func Country(v string) predicate.Port {
	return predicate.Port(sql.FieldEQ(FieldCountry, v))
}

// Unlocode applies equality check predicate on the "unlocode" field. It's identical to UnlocodeEQ.
func Unlocode(v string) predicate.Port {
	return predicate.Port(sql.FieldEQ(FieldUnlocode, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.Port {
	return predicate.Port(sql.FieldEQ(FieldActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Port {
	return predicate.Port(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Port {
	return predicate.Port(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Port {
	return predicate.Port(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Port {
	return predicate.Port(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Port {
	return predicate.Port(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Port {
	return predicate.Port(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Port {
	return predicate.Port(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Port {
	return predicate.Port(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Port {
	return predicate.Port(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Port {
	return predicate.Port(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Port {
	return predicate.Port(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Port {
	return predicate.Port(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Port {
	return predicate.Port(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Port {
	return predicate.Port(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Port {
	return predicate.Port(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Port {
	return predicate.Port(sql.FieldLTE(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Port {
	return predicate.Port(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Port {
	return predicate.Port(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Port {
	return predicate.Port(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Port {
	return predicate.Port(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Port {
	return predicate.Port(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Port {
	return predicate.Port(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Port {
	return predicate.Port(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Port {
	return predicate.Port(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Port {
	return predicate.Port(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Port {
	return predicate.Port(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Port {
	return predicate.Port(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Port {
	return predicate.Port(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Port {
	return predicate.Port(sql.FieldContainsFold(FieldName, v))
}

// CountryEQ applies the EQ predicate on the "country" field.
func CountryEQ(v string) predicate.Port {
	return predicate.Port(sql.FieldEQ(FieldCountry, v))
}

// CountryNEQ applies the NEQ predicate on the "country" field.
func CountryNEQ(v string) predicate.Port {
	return predicate.Port(sql.FieldNEQ(FieldCountry, v))
}

// CountryIn applies the In predicate on the "country" field.
func CountryIn(vs ...string) predicate.Port {
	return predicate.Port(sql.FieldIn(FieldCountry, vs...))
}

// CountryNotIn applies the NotIn predicate on the "country" field.
func CountryNotIn(vs ...string) predicate.Port {
	return predicate.Port(sql.FieldNotIn(FieldCountry, vs...))
}

// CountryGT applies the GT predicate on the "country" field.
func CountryGT(v string) predicate.Port {
	return predicate.Port(sql.FieldGT(FieldCountry, v))
}

// CountryGTE applies the GTE predicate on the "country" field.
func CountryGTE(v string) predicate.Port {
	return predicate.Port(sql.FieldGTE(FieldCountry, v))
}

// CountryLT applies the LT predicate on the "country" field.
func CountryLT(v string) predicate.Port {
	return predicate.Port(sql.FieldLT(FieldCountry, v))
}

// CountryLTE applies the LTE predicate on the "country" field.
func CountryLTE(v string) predicate.Port {
	return predicate.Port(sql.FieldLTE(FieldCountry, v))
}

// CountryContains applies the Contains predicate on the "country" field.
func CountryContains(v string) predicate.Port {
	return predicate.Port(sql.FieldContains(FieldCountry, v))
}

// CountryHasPrefix applies the HasPrefix predicate on the "country" field.
func CountryHasPrefix(v string) predicate.Port {
	return predicate.Port(sql.FieldHasPrefix(FieldCountry, v))
}

// CountryHasSuffix applies the HasSuffix predicate on the "country" field.
func CountryHasSuffix(v string) predicate.Port {
	return predicate.Port(sql.FieldHasSuffix(FieldCountry, v))
}

// CountryIsNil applies the IsNil predicate on the "country" field.
func CountryIsNil() predicate.Port {
	return predicate.Port(sql.FieldIsNull(FieldCountry))
}

// CountryNotNil applies the NotNil predicate on the "country" field.
func CountryNotNil() predicate.Port {
	return predicate.Port(sql.FieldNotNull(FieldCountry))
}

// CountryEqualFold applies the EqualFold predicate on the "country" field.
func CountryEqualFold(v string) predicate.Port {
	return predicate.Port(sql.FieldEqualFold(FieldCountry, v))
}

// CountryContainsFold applies the ContainsFold predicate on the "country" field.
func CountryContainsFold(v string) predicate.Port {
	return predicate.Port(sql.FieldContainsFold(FieldCountry, v))
}

// UnlocodeEQ applies the EQ predicate on the "unlocode" field.
func UnlocodeEQ(v string) predicate.Port {
	return predicate.Port(sql.FieldEQ(FieldUnlocode, v))
}

// UnlocodeNEQ applies the NEQ predicate on the "unlocode" field.
func UnlocodeNEQ(v string) predicate.Port {
	return predicate.Port(sql.FieldNEQ(FieldUnlocode, v))
}

// UnlocodeIn applies the In predicate on the "unlocode" field.
func UnlocodeIn(vs ...string) predicate.Port {
	return predicate.Port(sql.FieldIn(FieldUnlocode, vs...))
}

// UnlocodeNotIn applies the NotIn predicate on the "unlocode" field.
func UnlocodeNotIn(vs ...string) predicate.Port {
	return predicate.Port(sql.FieldNotIn(FieldUnlocode, vs...))
}

// UnlocodeGT applies the GT predicate on the "unlocode" field.
func UnlocodeGT(v string) predicate.Port {
	return predicate.Port(sql.FieldGT(FieldUnlocode, v))
}

// UnlocodeGTE applies the GTE predicate on the "unlocode" field.
func UnlocodeGTE(v string) predicate.Port {
	return predicate.Port(sql.FieldGTE(FieldUnlocode, v))
}

// UnlocodeLT applies the LT predicate on the "unlocode" field.
func UnlocodeLT(v string) predicate.Port {
	return predicate.Port(sql.FieldLT(FieldUnlocode, v))
}

// UnlocodeLTE applies the LTE predicate on the "unlocode" field.
func UnlocodeLTE(v string) predicate.Port {
	return predicate.Port(sql.FieldLTE(FieldUnlocode, v))
}

// UnlocodeContains applies the Contains predicate on the "unlocode" field.
func UnlocodeContains(v string) predicate.Port {
	return predicate.Port(sql.FieldContains(FieldUnlocode, v))
}

// UnlocodeHasPrefix applies the HasPrefix predicate on the "unlocode" field.
func UnlocodeHasPrefix(v string) predicate.Port {
	return predicate.Port(sql.FieldHasPrefix(FieldUnlocode, v))
}

// UnlocodeHasSuffix applies the HasSuffix predicate on the "unlocode" field.
func UnlocodeHasSuffix(v string) predicate.Port {
	return predicate.Port(sql.FieldHasSuffix(FieldUnlocode, v))
}

// UnlocodeIsNil applies the IsNil predicate on the "unlocode" field.
func UnlocodeIsNil() predicate.Port {
	return predicate.Port(sql.FieldIsNull(FieldUnlocode))
}

// UnlocodeNotNil applies the NotNil predicate on the "unlocode" field.
func UnlocodeNotNil() predicate.Port {
	return predicate.Port(sql.FieldNotNull(FieldUnlocode))
}

// UnlocodeEqualFold applies the EqualFold predicate on the "unlocode" field.
func UnlocodeEqualFold(v string) predicate.Port {
	return predicate.Port(sql.FieldEqualFold(FieldUnlocode, v))
}

// UnlocodeContainsFold applies the ContainsFold predicate on the "unlocode" field.
func UnlocodeContainsFold(v string) predicate.Port {
	return predicate.Port(sql.FieldContainsFold(FieldUnlocode, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.Port {
	return predicate.Port(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.Port {
	return predicate.Port(sql.FieldNEQ(FieldActive, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Port) predicate.Port {
	return predicate.Port(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Port) predicate.Port {
	return predicate.Port(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Port) predicate.Port {
	return predicate.Port(sql.NotPredicates(p))
}
