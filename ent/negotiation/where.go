// Code generated by ent, DO NOT EDIT.

package negotiation

import (
	"time"

	"charterdesk.io/charterdesk/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldEQ(FieldUpdatedAt, v))
}

// NegotiationNumber applies equality check predicate on the "negotiation_number" field. It's identical to NegotiationNumberEQ.
func NegotiationNumber(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldEQ(FieldNegotiationNumber, v))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldEQ(FieldCompanyID, v))
}

// VesselID applies equality check predicate on the "vessel_id" field. It's identical to VesselIDEQ.
func VesselID(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldEQ(FieldVesselID, v))
}

// FreightRate applies equality check predicate on the "freight_rate" field. It's identical to FreightRateEQ.
func FreightRate(v float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldEQ(FieldFreightRate, v))
}

// FirstIndication applies equality check predicate on the "first_indication" field. It's identical to FirstIndicationEQ.
func FirstIndication(v float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldEQ(FieldFirstIndication, v))
}

// HighestIndication applies equality check predicate on the "highest_indication" field. It's identical to HighestIndicationEQ.
func HighestIndication(v float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldEQ(FieldHighestIndication, v))
}

// LowestIndication applies equality check predicate on the "lowest_indication" field. It's identical to LowestIndicationEQ.
func LowestIndication(v float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldEQ(FieldLowestIndication, v))
}

// MarketIndex applies equality check predicate on the "market_index" field. It's identical to MarketIndexEQ.
func MarketIndex(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldEQ(FieldMarketIndex, v))
}

// DeliveryType applies equality check predicate on the "delivery_type" field. It's identical to DeliveryTypeEQ.
func DeliveryType(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldEQ(FieldDeliveryType, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldLTE(FieldUpdatedAt, v))
}

// NegotiationNumberEQ applies the EQ predicate on the "negotiation_number" field.
func NegotiationNumberEQ(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldEQ(FieldNegotiationNumber, v))
}

// NegotiationNumberNEQ applies the NEQ predicate on the "negotiation_number" field.
func NegotiationNumberNEQ(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNEQ(FieldNegotiationNumber, v))
}

// NegotiationNumberIn applies the In predicate on the "negotiation_number" field.
func NegotiationNumberIn(vs ...string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldIn(FieldNegotiationNumber, vs...))
}

// NegotiationNumberNotIn applies the NotIn predicate on the "negotiation_number" field.
func NegotiationNumberNotIn(vs ...string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNotIn(FieldNegotiationNumber, vs...))
}

// NegotiationNumberGT applies the GT predicate on the "negotiation_number" field.
func NegotiationNumberGT(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldGT(FieldNegotiationNumber, v))
}

// NegotiationNumberGTE applies the GTE predicate on the "negotiation_number" field.
func NegotiationNumberGTE(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldGTE(FieldNegotiationNumber, v))
}

// NegotiationNumberLT applies the LT predicate on the "negotiation_number" field.
func NegotiationNumberLT(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldLT(FieldNegotiationNumber, v))
}

// NegotiationNumberLTE applies the LTE predicate on the "negotiation_number" field.
func NegotiationNumberLTE(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldLTE(FieldNegotiationNumber, v))
}

// NegotiationNumberContains applies the Contains predicate on the "negotiation_number" field.
func NegotiationNumberContains(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldContains(FieldNegotiationNumber, v))
}

// NegotiationNumberHasPrefix applies the HasPrefix predicate on the "negotiation_number" field.
func NegotiationNumberHasPrefix(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldHasPrefix(FieldNegotiationNumber, v))
}

// NegotiationNumberHasSuffix applies the HasSuffix predicate on the "negotiation_number" field.
func NegotiationNumberHasSuffix(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldHasSuffix(FieldNegotiationNumber, v))
}

// NegotiationNumberEqualFold applies the EqualFold predicate on the "negotiation_number" field.
func NegotiationNumberEqualFold(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldEqualFold(FieldNegotiationNumber, v))
}

// NegotiationNumberContainsFold applies the ContainsFold predicate on the "negotiation_number" field.
func NegotiationNumberContainsFold(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldContainsFold(FieldNegotiationNumber, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNotIn(FieldCompanyID, vs...))
}

// CompanyIDGT applies the GT predicate on the "company_id" field.
func CompanyIDGT(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldGT(FieldCompanyID, v))
}

// CompanyIDGTE applies the GTE predicate on the "company_id" field.
func CompanyIDGTE(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldGTE(FieldCompanyID, v))
}

// CompanyIDLT applies the LT predicate on the "company_id" field.
func CompanyIDLT(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldLT(FieldCompanyID, v))
}

// CompanyIDLTE applies the LTE predicate on the "company_id" field.
func CompanyIDLTE(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldLTE(FieldCompanyID, v))
}

// CompanyIDContains applies the Contains predicate on the "company_id" field.
func CompanyIDContains(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldContains(FieldCompanyID, v))
}

// CompanyIDHasPrefix applies the HasPrefix predicate on the "company_id" field.
func CompanyIDHasPrefix(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldHasPrefix(FieldCompanyID, v))
}

// CompanyIDHasSuffix applies the HasSuffix predicate on the "company_id" field.
func CompanyIDHasSuffix(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldHasSuffix(FieldCompanyID, v))
}

// CompanyIDIsNil applies the IsNil predicate on the "company_id" field.
func CompanyIDIsNil() predicate.Negotiation {
	return predicate.Negotiation(sql.FieldIsNull(FieldCompanyID))
}

// CompanyIDNotNil applies the NotNil predicate on the "company_id" field.
func CompanyIDNotNil() predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNotNull(FieldCompanyID))
}

// CompanyIDEqualFold applies the EqualFold predicate on the "company_id" field.
func CompanyIDEqualFold(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldEqualFold(FieldCompanyID, v))
}

// CompanyIDContainsFold applies the ContainsFold predicate on the "company_id" field.
func CompanyIDContainsFold(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldContainsFold(FieldCompanyID, v))
}

// VesselIDEQ applies the EQ predicate on the "vessel_id" field.
func VesselIDEQ(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldEQ(FieldVesselID, v))
}

// VesselIDNEQ applies the NEQ predicate on the "vessel_id" field.
func VesselIDNEQ(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNEQ(FieldVesselID, v))
}

// VesselIDIn applies the In predicate on the "vessel_id" field.
func VesselIDIn(vs ...string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldIn(FieldVesselID, vs...))
}

// VesselIDNotIn applies the NotIn predicate on the "vessel_id" field.
func VesselIDNotIn(vs ...string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNotIn(FieldVesselID, vs...))
}

// VesselIDGT applies the GT predicate on the "vessel_id" field.
func VesselIDGT(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldGT(FieldVesselID, v))
}

// VesselIDGTE applies the GTE predicate on the "vessel_id" field.
func VesselIDGTE(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldGTE(FieldVesselID, v))
}

// VesselIDLT applies the LT predicate on the "vessel_id" field.
func VesselIDLT(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldLT(FieldVesselID, v))
}

// VesselIDLTE applies the LTE predicate on the "vessel_id" field.
func VesselIDLTE(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldLTE(FieldVesselID, v))
}

// VesselIDContains applies the Contains predicate on the "vessel_id" field.
func VesselIDContains(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldContains(FieldVesselID, v))
}

// VesselIDHasPrefix applies the HasPrefix predicate on the "vessel_id" field.
func VesselIDHasPrefix(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldHasPrefix(FieldVesselID, v))
}

// VesselIDHasSuffix applies the HasSuffix predicate on the "vessel_id" field.
func VesselIDHasSuffix(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldHasSuffix(FieldVesselID, v))
}

// VesselIDIsNil applies the IsNil predicate on the "vessel_id" field.
func VesselIDIsNil() predicate.Negotiation {
	return predicate.Negotiation(sql.FieldIsNull(FieldVesselID))
}

// VesselIDNotNil applies the NotNil predicate on the "vessel_id" field.
func VesselIDNotNil() predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNotNull(FieldVesselID))
}

// VesselIDEqualFold applies the EqualFold predicate on the "vessel_id" field.
func VesselIDEqualFold(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldEqualFold(FieldVesselID, v))
}

// VesselIDContainsFold applies the ContainsFold predicate on the "vessel_id" field.
func VesselIDContainsFold(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldContainsFold(FieldVesselID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNotIn(FieldStatus, vs...))
}

// FreightRateEQ applies the EQ predicate on the "freight_rate" field.
func FreightRateEQ(v float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldEQ(FieldFreightRate, v))
}

// FreightRateNEQ applies the NEQ predicate on the "freight_rate" field.
func FreightRateNEQ(v float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNEQ(FieldFreightRate, v))
}

// FreightRateIn applies the In predicate on the "freight_rate" field.
func FreightRateIn(vs ...float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldIn(FieldFreightRate, vs...))
}

// FreightRateNotIn applies the NotIn predicate on the "freight_rate" field.
func FreightRateNotIn(vs ...float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNotIn(FieldFreightRate, vs...))
}

// FreightRateGT applies the GT predicate on the "freight_rate" field.
func FreightRateGT(v float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldGT(FieldFreightRate, v))
}

// FreightRateGTE applies the GTE predicate on the "freight_rate" field.
func FreightRateGTE(v float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldGTE(FieldFreightRate, v))
}

// FreightRateLT applies the LT predicate on the "freight_rate" field.
func FreightRateLT(v float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldLT(FieldFreightRate, v))
}

// FreightRateLTE applies the LTE predicate on the "freight_rate" field.
func FreightRateLTE(v float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldLTE(FieldFreightRate, v))
}

// FreightRateIsNil applies the IsNil predicate on the "freight_rate" field.
func FreightRateIsNil() predicate.Negotiation {
	return predicate.Negotiation(sql.FieldIsNull(FieldFreightRate))
}

// FreightRateNotNil applies the NotNil predicate on the "freight_rate" field.
func FreightRateNotNil() predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNotNull(FieldFreightRate))
}

// FirstIndicationEQ applies the EQ predicate on the "first_indication" field.
func FirstIndicationEQ(v float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldEQ(FieldFirstIndication, v))
}

// FirstIndicationNEQ applies the NEQ predicate on the "first_indication" field.
func FirstIndicationNEQ(v float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNEQ(FieldFirstIndication, v))
}

// FirstIndicationIn applies the In predicate on the "first_indication" field.
func FirstIndicationIn(vs ...float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldIn(FieldFirstIndication, vs...))
}

// FirstIndicationNotIn applies the NotIn predicate on the "first_indication" field.
func FirstIndicationNotIn(vs ...float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNotIn(FieldFirstIndication, vs...))
}

// FirstIndicationGT applies the GT predicate on the "first_indication" field.
func FirstIndicationGT(v float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldGT(FieldFirstIndication, v))
}

// FirstIndicationGTE applies the GTE predicate on the "first_indication" field.
func FirstIndicationGTE(v float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldGTE(FieldFirstIndication, v))
}

// FirstIndicationLT applies the LT predicate on the "first_indication" field.
func FirstIndicationLT(v float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldLT(FieldFirstIndication, v))
}

// FirstIndicationLTE applies the LTE predicate on the "first_indication" field.
func FirstIndicationLTE(v float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldLTE(FieldFirstIndication, v))
}

// FirstIndicationIsNil applies the IsNil predicate on the "first_indication" field.
func FirstIndicationIsNil() predicate.Negotiation {
	return predicate.Negotiation(sql.FieldIsNull(FieldFirstIndication))
}

// FirstIndicationNotNil applies the NotNil predicate on the "first_indication" field.
func FirstIndicationNotNil() predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNotNull(FieldFirstIndication))
}

// HighestIndicationEQ applies the EQ predicate on the "highest_indication" field.
func HighestIndicationEQ(v float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldEQ(FieldHighestIndication, v))
}

// HighestIndicationNEQ applies the NEQ predicate on the "highest_indication" field.
func HighestIndicationNEQ(v float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNEQ(FieldHighestIndication, v))
}

// HighestIndicationIn applies the In predicate on the "highest_indication" field.
func HighestIndicationIn(vs ...float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldIn(FieldHighestIndication, vs...))
}

// HighestIndicationNotIn applies the NotIn predicate on the "highest_indication" field.
func HighestIndicationNotIn(vs ...float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNotIn(FieldHighestIndication, vs...))
}

// HighestIndicationGT applies the GT predicate on the "highest_indication" field.
func HighestIndicationGT(v float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldGT(FieldHighestIndication, v))
}

// HighestIndicationGTE applies the GTE predicate on the "highest_indication" field.
func HighestIndicationGTE(v float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldGTE(FieldHighestIndication, v))
}

// HighestIndicationLT applies the LT predicate on the "highest_indication" field.
func HighestIndicationLT(v float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldLT(FieldHighestIndication, v))
}

// HighestIndicationLTE applies the LTE predicate on the "highest_indication" field.
func HighestIndicationLTE(v float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldLTE(FieldHighestIndication, v))
}

// HighestIndicationIsNil applies the IsNil predicate on the "highest_indication" field.
func HighestIndicationIsNil() predicate.Negotiation {
	return predicate.Negotiation(sql.FieldIsNull(FieldHighestIndication))
}

// HighestIndicationNotNil applies the NotNil predicate on the "highest_indication" field.
func HighestIndicationNotNil() predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNotNull(FieldHighestIndication))
}

// LowestIndicationEQ applies the EQ predicate on the "lowest_indication" field.
func LowestIndicationEQ(v float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldEQ(FieldLowestIndication, v))
}

// LowestIndicationNEQ applies the NEQ predicate on the "lowest_indication" field.
func LowestIndicationNEQ(v float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNEQ(FieldLowestIndication, v))
}

// LowestIndicationIn applies the In predicate on the "lowest_indication" field.
func LowestIndicationIn(vs ...float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldIn(FieldLowestIndication, vs...))
}

// LowestIndicationNotIn applies the NotIn predicate on the "lowest_indication" field.
func LowestIndicationNotIn(vs ...float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNotIn(FieldLowestIndication, vs...))
}

// LowestIndicationGT applies the GT predicate on the "lowest_indication" field.
func LowestIndicationGT(v float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldGT(FieldLowestIndication, v))
}

// LowestIndicationGTE applies the GTE predicate on the "lowest_indication" field.
func LowestIndicationGTE(v float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldGTE(FieldLowestIndication, v))
}

// LowestIndicationLT applies the LT predicate on the "lowest_indication" field.
func LowestIndicationLT(v float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldLT(FieldLowestIndication, v))
}

// LowestIndicationLTE applies the LTE predicate on the "lowest_indication" field.
func LowestIndicationLTE(v float64) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldLTE(FieldLowestIndication, v))
}

// LowestIndicationIsNil applies the IsNil predicate on the "lowest_indication" field.
func LowestIndicationIsNil() predicate.Negotiation {
	return predicate.Negotiation(sql.FieldIsNull(FieldLowestIndication))
}

// LowestIndicationNotNil applies the NotNil predicate on the "lowest_indication" field.
func LowestIndicationNotNil() predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNotNull(FieldLowestIndication))
}

// MarketIndexEQ applies the EQ predicate on the "market_index" field.
func MarketIndexEQ(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldEQ(FieldMarketIndex, v))
}

// MarketIndexNEQ applies the NEQ predicate on the "market_index" field.
func MarketIndexNEQ(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNEQ(FieldMarketIndex, v))
}

// MarketIndexIn applies the In predicate on the "market_index" field.
func MarketIndexIn(vs ...string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldIn(FieldMarketIndex, vs...))
}

// MarketIndexNotIn applies the NotIn predicate on the "market_index" field.
func MarketIndexNotIn(vs ...string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNotIn(FieldMarketIndex, vs...))
}

// MarketIndexGT applies the GT predicate on the "market_index" field.
func MarketIndexGT(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldGT(FieldMarketIndex, v))
}

// MarketIndexGTE applies the GTE predicate on the "market_index" field.
func MarketIndexGTE(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldGTE(FieldMarketIndex, v))
}

// MarketIndexLT applies the LT predicate on the "market_index" field.
func MarketIndexLT(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldLT(FieldMarketIndex, v))
}

// MarketIndexLTE applies the LTE predicate on the "market_index" field.
func MarketIndexLTE(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldLTE(FieldMarketIndex, v))
}

// MarketIndexContains applies the Contains predicate on the "market_index" field.
func MarketIndexContains(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldContains(FieldMarketIndex, v))
}

// MarketIndexHasPrefix applies the HasPrefix predicate on the "market_index" field.
func MarketIndexHasPrefix(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldHasPrefix(FieldMarketIndex, v))
}

// MarketIndexHasSuffix applies the HasSuffix predicate on the "market_index" field.
func MarketIndexHasSuffix(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldHasSuffix(FieldMarketIndex, v))
}

// MarketIndexIsNil applies the IsNil predicate on the "market_index" field.
func MarketIndexIsNil() predicate.Negotiation {
	return predicate.Negotiation(sql.FieldIsNull(FieldMarketIndex))
}

// MarketIndexNotNil applies the NotNil predicate on the "market_index" field.
func MarketIndexNotNil() predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNotNull(FieldMarketIndex))
}

// MarketIndexEqualFold applies the EqualFold predicate on the "market_index" field.
func MarketIndexEqualFold(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldEqualFold(FieldMarketIndex, v))
}

// MarketIndexContainsFold applies the ContainsFold predicate on the "market_index" field.
func MarketIndexContainsFold(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldContainsFold(FieldMarketIndex, v))
}

// DeliveryTypeEQ applies the EQ predicate on the "delivery_type" field.
func DeliveryTypeEQ(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldEQ(FieldDeliveryType, v))
}

// DeliveryTypeNEQ applies the NEQ predicate on the "delivery_type" field.
func DeliveryTypeNEQ(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNEQ(FieldDeliveryType, v))
}

// DeliveryTypeIn applies the In predicate on the "delivery_type" field.
func DeliveryTypeIn(vs ...string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldIn(FieldDeliveryType, vs...))
}

// DeliveryTypeNotIn applies the NotIn predicate on the "delivery_type" field.
func DeliveryTypeNotIn(vs ...string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNotIn(FieldDeliveryType, vs...))
}

// DeliveryTypeGT applies the GT predicate on the "delivery_type" field.
func DeliveryTypeGT(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldGT(FieldDeliveryType, v))
}

// DeliveryTypeGTE applies the GTE predicate on the "delivery_type" field.
func DeliveryTypeGTE(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldGTE(FieldDeliveryType, v))
}

// DeliveryTypeLT applies the LT predicate on the "delivery_type" field.
func DeliveryTypeLT(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldLT(FieldDeliveryType, v))
}

// DeliveryTypeLTE applies the LTE predicate on the "delivery_type" field.
func DeliveryTypeLTE(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldLTE(FieldDeliveryType, v))
}

// DeliveryTypeContains applies the Contains predicate on the "delivery_type" field.
func DeliveryTypeContains(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldContains(FieldDeliveryType, v))
}

// DeliveryTypeHasPrefix applies the HasPrefix predicate on the "delivery_type" field.
func DeliveryTypeHasPrefix(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldHasPrefix(FieldDeliveryType, v))
}

// DeliveryTypeHasSuffix applies the HasSuffix predicate on the "delivery_type" field.
func DeliveryTypeHasSuffix(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldHasSuffix(FieldDeliveryType, v))
}

// DeliveryTypeIsNil applies the IsNil predicate on the "delivery_type" field.
func DeliveryTypeIsNil() predicate.Negotiation {
	return predicate.Negotiation(sql.FieldIsNull(FieldDeliveryType))
}

// DeliveryTypeNotNil applies the NotNil predicate on the "delivery_type" field.
func DeliveryTypeNotNil() predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNotNull(FieldDeliveryType))
}

// DeliveryTypeEqualFold applies the EqualFold predicate on the "delivery_type" field.
func DeliveryTypeEqualFold(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldEqualFold(FieldDeliveryType, v))
}

// DeliveryTypeContainsFold applies the ContainsFold predicate on the "delivery_type" field.
func DeliveryTypeContainsFold(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldContainsFold(FieldDeliveryType, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.Negotiation {
	return predicate.Negotiation(sql.FieldContainsFold(FieldCreatedBy, v))
}

// HasOrder applies the HasEdge predicate on the "order" edge.
func HasOrder() predicate.Negotiation {
	return predicate.Negotiation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OrderTable, OrderColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOrderWith applies the HasEdge predicate on the "order" edge with a given conditions (other predicates).
func HasOrderWith(preds ...predicate.Order) predicate.Negotiation {
	return predicate.Negotiation(func(s *sql.Selector) {
		step := newOrderStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Negotiation) predicate.Negotiation {
	return predicate.Negotiation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Negotiation) predicate.Negotiation {
	return predicate.Negotiation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Negotiation) predicate.Negotiation {
	return predicate.Negotiation(sql.NotPredicates(p))
}
