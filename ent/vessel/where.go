// Code generated by ent, DO NOT EDIT.

package vessel

import (
	"time"

	"charterdesk.io/charterdesk/ent/predicate"
	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Vessel {
	return predicate.Vessel(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Vessel {
	return predicate.Vessel(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Vessel {
	return predicate.Vessel(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Vessel {
	return predicate.Vessel(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Vessel {
	return predicate.Vessel(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Vessel {
	return predicate.Vessel(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Vessel {
	return predicate.Vessel(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Vessel {
	return predicate.Vessel(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Vessel {
	return predicate.Vessel(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Vessel {
	return predicate.Vessel(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Vessel {
	return predicate.Vessel(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldEQ(FieldUpdatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldEQ(FieldName, v))
}

// ImoNumber applies equality check predicate on the "imo_number" field. It's identical to ImoNumberEQ.
func ImoNumber(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldEQ(FieldImoNumber, v))
}

// VesselType applies equality check predicate on the "vessel_type" field. It's identical to VesselTypeEQ.
func VesselType(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldEQ(FieldVesselType, v))
}

// Dwt applies equality check predicate on the "dwt" field. It's identical to DwtEQ.
func Dwt(v float64) predicate.Vessel {
	return predicate.Vessel(sql.FieldEQ(FieldDwt, v))
}

// BuiltYear applies equality check predicate on the "built_year" field. It's identical to BuiltYearEQ.
func BuiltYear(v int) predicate.Vessel {
	return predicate.Vessel(sql.FieldEQ(FieldBuiltYear, v))
}

// Flag applies equality check predicate on the "flag" field. It's identical to FlagEQ.
func Flag(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldEQ(FieldFlag, v))
}

// Verified applies equality check predicate on the "verified" field. It's identical to VerifiedEQ.
func Verified(v bool) predicate.Vessel {
	return predicate.Vessel(sql.FieldEQ(FieldVerified, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldLTE(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Vessel {
	return predicate.Vessel(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Vessel {
	return predicate.Vessel(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldContainsFold(FieldName, v))
}

// ImoNumberEQ applies the EQ predicate on the "imo_number" field.
func ImoNumberEQ(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldEQ(FieldImoNumber, v))
}

// ImoNumberNEQ applies the NEQ predicate on the "imo_number" field.
func ImoNumberNEQ(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldNEQ(FieldImoNumber, v))
}

// ImoNumberIn applies the In predicate on the "imo_number" field.
func ImoNumberIn(vs ...string) predicate.Vessel {
	return predicate.Vessel(sql.FieldIn(FieldImoNumber, vs...))
}

// ImoNumberNotIn applies the NotIn predicate on the "imo_number" field.
func ImoNumberNotIn(vs ...string) predicate.Vessel {
	return predicate.Vessel(sql.FieldNotIn(FieldImoNumber, vs...))
}

// ImoNumberGT applies the GT predicate on the "imo_number" field.
func ImoNumberGT(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldGT(FieldImoNumber, v))
}

// ImoNumberGTE applies the GTE predicate on the "imo_number" field.
func ImoNumberGTE(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldGTE(FieldImoNumber, v))
}

// ImoNumberLT applies the LT predicate on the "imo_number" field.
func ImoNumberLT(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldLT(FieldImoNumber, v))
}

// ImoNumberLTE applies the LTE predicate on the "imo_number" field.
func ImoNumberLTE(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldLTE(FieldImoNumber, v))
}

// ImoNumberContains applies the Contains predicate on the "imo_number" field.
func ImoNumberContains(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldContains(FieldImoNumber, v))
}

// ImoNumberHasPrefix applies the HasPrefix predicate on the "imo_number" field.
func ImoNumberHasPrefix(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldHasPrefix(FieldImoNumber, v))
}

// ImoNumberHasSuffix applies the HasSuffix predicate on the "imo_number" field.
func ImoNumberHasSuffix(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldHasSuffix(FieldImoNumber, v))
}

// ImoNumberIsNil applies the IsNil predicate on the "imo_number" field.
func ImoNumberIsNil() predicate.Vessel {
	return predicate.Vessel(sql.FieldIsNull(FieldImoNumber))
}

// ImoNumberNotNil applies the NotNil predicate on the "imo_number" field.
func ImoNumberNotNil() predicate.Vessel {
	return predicate.Vessel(sql.FieldNotNull(FieldImoNumber))
}

// ImoNumberEqualFold applies the EqualFold predicate on the "imo_number" field.
func ImoNumberEqualFold(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldEqualFold(FieldImoNumber, v))
}

// ImoNumberContainsFold applies the ContainsFold predicate on the "imo_number" field.
func ImoNumberContainsFold(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldContainsFold(FieldImoNumber, v))
}

// VesselTypeEQ applies the EQ predicate on the "vessel_type" field.
func VesselTypeEQ(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldEQ(FieldVesselType, v))
}

// VesselTypeNEQ applies the NEQ predicate on the "vessel_type" field.
func VesselTypeNEQ(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldNEQ(FieldVesselType, v))
}

// VesselTypeIn applies the In predicate on the "vessel_type" field.
func VesselTypeIn(vs ...string) predicate.Vessel {
	return predicate.Vessel(sql.FieldIn(FieldVesselType, vs...))
}

// VesselTypeNotIn applies the NotIn predicate on the "vessel_type" field.
func VesselTypeNotIn(vs ...string) predicate.Vessel {
	return predicate.Vessel(sql.FieldNotIn(FieldVesselType, vs...))
}

// VesselTypeGT applies the GT predicate on the "vessel_type" field.
func VesselTypeGT(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldGT(FieldVesselType, v))
}

// VesselTypeGTE applies the GTE predicate on the "vessel_type" field.
func VesselTypeGTE(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldGTE(FieldVesselType, v))
}

// VesselTypeLT applies the LT predicate on the "vessel_type" field.
func VesselTypeLT(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldLT(FieldVesselType, v))
}

// VesselTypeLTE applies the LTE predicate on the "vessel_type" field.
func VesselTypeLTE(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldLTE(FieldVesselType, v))
}

// VesselTypeContains applies the Contains predicate on the "vessel_type" field.
func VesselTypeContains(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldContains(FieldVesselType, v))
}

// VesselTypeHasPrefix applies the HasPrefix predicate on the "vessel_type" field.
func VesselTypeHasPrefix(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldHasPrefix(FieldVesselType, v))
}

// VesselTypeHasSuffix applies the HasSuffix predicate on the "vessel_type" field.
func VesselTypeHasSuffix(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldHasSuffix(FieldVesselType, v))
}

// VesselTypeIsNil applies the IsNil predicate on the "vessel_type" field.
func VesselTypeIsNil() predicate.Vessel {
	return predicate.Vessel(sql.FieldIsNull(FieldVesselType))
}

// VesselTypeNotNil applies the NotNil predicate on the "vessel_type" field.
func VesselTypeNotNil() predicate.Vessel {
	return predicate.Vessel(sql.FieldNotNull(FieldVesselType))
}

// VesselTypeEqualFold applies the EqualFold predicate on the "vessel_type" field.
func VesselTypeEqualFold(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldEqualFold(FieldVesselType, v))
}

// VesselTypeContainsFold applies the ContainsFold predicate on the "vessel_type" field.
func VesselTypeContainsFold(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldContainsFold(FieldVesselType, v))
}

// DwtEQ applies the EQ predicate on the "dwt" field.
func DwtEQ(v float64) predicate.Vessel {
	return predicate.Vessel(sql.FieldEQ(FieldDwt, v))
}

// DwtNEQ applies the NEQ predicate on the "dwt" field.
func DwtNEQ(v float64) predicate.Vessel {
	return predicate.Vessel(sql.FieldNEQ(FieldDwt, v))
}

// DwtIn applies the In predicate on the "dwt" field.
func DwtIn(vs ...float64) predicate.Vessel {
	return predicate.Vessel(sql.FieldIn(FieldDwt, vs...))
}

// DwtNotIn applies the NotIn predicate on the "dwt" field.
func DwtNotIn(vs ...float64) predicate.Vessel {
	return predicate.Vessel(sql.FieldNotIn(FieldDwt, vs...))
}

// DwtGT applies the GT predicate on the "dwt" field.
func DwtGT(v float64) predicate.Vessel {
	return predicate.Vessel(sql.FieldGT(FieldDwt, v))
}

// DwtGTE applies the GTE predicate on the "dwt" field.
func DwtGTE(v float64) predicate.Vessel {
	return predicate.Vessel(sql.FieldGTE(FieldDwt, v))
}

// DwtLT applies the LT predicate on the "dwt" field.
func DwtLT(v float64) predicate.Vessel {
	return predicate.Vessel(sql.FieldLT(FieldDwt, v))
}

// DwtLTE applies the LTE predicate on the "dwt" field.
func DwtLTE(v float64) predicate.Vessel {
	return predicate.Vessel(sql.FieldLTE(FieldDwt, v))
}

// DwtIsNil applies the IsNil predicate on the "dwt" field.
func DwtIsNil() predicate.Vessel {
	return predicate.Vessel(sql.FieldIsNull(FieldDwt))
}

// DwtNotNil applies the NotNil predicate on the "dwt" field.
func DwtNotNil() predicate.Vessel {
	return predicate.Vessel(sql.FieldNotNull(FieldDwt))
}

// BuiltYearEQ applies the EQ predicate on the "built_year" field.
func BuiltYearEQ(v int) predicate.Vessel {
	return predicate.Vessel(sql.FieldEQ(FieldBuiltYear, v))
}

// BuiltYearNEQ applies the NEQ predicate on the "built_year" field.
func BuiltYearNEQ(v int) predicate.Vessel {
	return predicate.Vessel(sql.FieldNEQ(FieldBuiltYear, v))
}

// BuiltYearIn applies the In predicate on the "built_year" field.
func BuiltYearIn(vs ...int) predicate.Vessel {
	return predicate.Vessel(sql.FieldIn(FieldBuiltYear, vs...))
}

// BuiltYearNotIn applies the NotIn predicate on the "built_year" field.
func BuiltYearNotIn(vs ...int) predicate.Vessel {
	return predicate.Vessel(sql.FieldNotIn(FieldBuiltYear, vs...))
}

// BuiltYearGT applies the GT predicate on the "built_year" field.
func BuiltYearGT(v int) predicate.Vessel {
	return predicate.Vessel(sql.FieldGT(FieldBuiltYear, v))
}

// BuiltYearGTE applies the GTE predicate on the "built_year" field.
func BuiltYearGTE(v int) predicate.Vessel {
	return predicate.Vessel(sql.FieldGTE(FieldBuiltYear, v))
}

// BuiltYearLT applies the LT predicate on the "built_year" field.
func BuiltYearLT(v int) predicate.Vessel {
	return predicate.Vessel(sql.FieldLT(FieldBuiltYear, v))
}

// BuiltYearLTE applies the LTE predicate on the "built_year" field.
func BuiltYearLTE(v int) predicate.Vessel {
	return predicate.Vessel(sql.FieldLTE(FieldBuiltYear, v))
}

// BuiltYearIsNil applies the IsNil predicate on the "built_year" field.
func BuiltYearIsNil() predicate.Vessel {
	return predicate.Vessel(sql.FieldIsNull(FieldBuiltYear))
}

// BuiltYearNotNil applies the NotNil predicate on the "built_year" field.
func BuiltYearNotNil() predicate.Vessel {
	return predicate.Vessel(sql.FieldNotNull(FieldBuiltYear))
}

// FlagEQ applies the EQ predicate on the "flag" field.
func FlagEQ(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldEQ(FieldFlag, v))
}

// FlagNEQ applies the NEQ predicate on the "flag" field.
func FlagNEQ(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldNEQ(FieldFlag, v))
}

// FlagIn applies the In predicate on the "flag" field.
func FlagIn(vs ...string) predicate.Vessel {
	return predicate.Vessel(sql.FieldIn(FieldFlag, vs...))
}

// FlagNotIn applies the NotIn predicate on the "flag" field.
func FlagNotIn(vs ...string) predicate.Vessel {
	return predicate.Vessel(sql.FieldNotIn(FieldFlag, vs...))
}

// FlagGT applies the GT predicate on the "flag" field.
func FlagGT(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldGT(FieldFlag, v))
}

// FlagGTE applies the GTE predicate on the "flag" field.
func FlagGTE(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldGTE(FieldFlag, v))
}

// FlagLT applies the LT predicate on the "flag" field.
func FlagLT(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldLT(FieldFlag, v))
}

// FlagLTE applies the LTE predicate on the "flag" field.
func FlagLTE(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldLTE(FieldFlag, v))
}

// FlagContains applies the Contains predicate on the "flag" field.
func FlagContains(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldContains(FieldFlag, v))
}

// FlagHasPrefix applies the HasPrefix predicate on the "flag" field.
func FlagHasPrefix(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldHasPrefix(FieldFlag, v))
}

// FlagHasSuffix applies the HasSuffix predicate on the "flag" field.
func FlagHasSuffix(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldHasSuffix(FieldFlag, v))
}

// FlagIsNil applies the IsNil predicate on the "flag" field.
func FlagIsNil() predicate.Vessel {
	return predicate.Vessel(sql.FieldIsNull(FieldFlag))
}

// FlagNotNil applies the NotNil predicate on the "flag" field.
func FlagNotNil() predicate.Vessel {
	return predicate.Vessel(sql.FieldNotNull(FieldFlag))
}

// FlagEqualFold applies the EqualFold predicate on the "flag" field.
func FlagEqualFold(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldEqualFold(FieldFlag, v))
}

// FlagContainsFold applies the ContainsFold predicate on the "flag" field.
func FlagContainsFold(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldContainsFold(FieldFlag, v))
}

// VerifiedEQ applies the EQ predicate on the "verified" field.
func VerifiedEQ(v bool) predicate.Vessel {
	return predicate.Vessel(sql.FieldEQ(FieldVerified, v))
}

// VerifiedNEQ applies the NEQ predicate on the "verified" field.
func VerifiedNEQ(v bool) predicate.Vessel {
	return predicate.Vessel(sql.FieldNEQ(FieldVerified, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Vessel) predicate.Vessel {
	return predicate.Vessel(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Vessel) predicate.Vessel {
	return predicate.Vessel(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Vessel) predicate.Vessel {
	return predicate.Vessel(sql.NotPredicates(p))
}
