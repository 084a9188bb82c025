// Code generated by ent, DO NOT EDIT.

package recapmanager

import (
	"time"

	"charterdesk.io/charterdesk/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldUpdatedAt, v))
}

// RecapNumber applies equality check predicate on the "recap_number" field. It's identical to RecapNumberEQ.
func RecapNumber(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldRecapNumber, v))
}

// OrderID applies equality check predicate on the "order_id" field. It's identical to OrderIDEQ.
func OrderID(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldOrderID, v))
}

// NegotiationID applies equality check predicate on the "negotiation_id" field. It's identical to NegotiationIDEQ.
func NegotiationID(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldNegotiationID, v))
}

// ParentRecapID applies equality check predicate on the "parent_recap_id" field. It's identical to ParentRecapIDEQ.
func ParentRecapID(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldParentRecapID, v))
}

// ContractType applies equality check predicate on the "contract_type" field. It's identical to ContractTypeEQ.
func ContractType(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldContractType, v))
}

// DeliveryType applies equality check predicate on the "delivery_type" field. It's identical to DeliveryTypeEQ.
func DeliveryType(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldDeliveryType, v))
}

// MarketIndex applies equality check predicate on the "market_index" field. It's identical to MarketIndexEQ.
func MarketIndex(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldMarketIndex, v))
}

// VesselID applies equality check predicate on the "vessel_id" field. It's identical to VesselIDEQ.
func VesselID(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldVesselID, v))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldCompanyID, v))
}

// LoadPortID applies equality check predicate on the "load_port_id" field. It's identical to LoadPortIDEQ.
func LoadPortID(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldLoadPortID, v))
}

// DischargePortID applies equality check predicate on the "discharge_port_id" field. It's identical to DischargePortIDEQ.
func DischargePortID(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldDischargePortID, v))
}

// CargoTypeID applies equality check predicate on the "cargo_type_id" field. It's identical to CargoTypeIDEQ.
func CargoTypeID(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldCargoTypeID, v))
}

// FreightRate applies equality check predicate on the "freight_rate" field. It's identical to FreightRateEQ.
func FreightRate(v float64) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldFreightRate, v))
}

// LaycanStart applies equality check predicate on the "laycan_start" field. It's identical to LaycanStartEQ.
func LaycanStart(v time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldLaycanStart, v))
}

// LaycanEnd applies equality check predicate on the "laycan_end" field. It's identical to LaycanEndEQ.
func LaycanEnd(v time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldLaycanEnd, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v float64) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldQuantity, v))
}

// DemurrageRate applies equality check predicate on the "demurrage_rate" field. It's identical to DemurrageRateEQ.
func DemurrageRate(v float64) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldDemurrageRate, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLTE(FieldUpdatedAt, v))
}

// RecapNumberEQ applies the EQ predicate on the "recap_number" field.
func RecapNumberEQ(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldRecapNumber, v))
}

// RecapNumberNEQ applies the NEQ predicate on the "recap_number" field.
func RecapNumberNEQ(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNEQ(FieldRecapNumber, v))
}

// RecapNumberIn applies the In predicate on the "recap_number" field.
func RecapNumberIn(vs ...string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIn(FieldRecapNumber, vs...))
}

// RecapNumberNotIn applies the NotIn predicate on the "recap_number" field.
func RecapNumberNotIn(vs ...string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotIn(FieldRecapNumber, vs...))
}

// RecapNumberGT applies the GT predicate on the "recap_number" field.
func RecapNumberGT(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGT(FieldRecapNumber, v))
}

// RecapNumberGTE applies the GTE predicate on the "recap_number" field.
func RecapNumberGTE(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGTE(FieldRecapNumber, v))
}

// RecapNumberLT applies the LT predicate on the "recap_number" field.
func RecapNumberLT(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLT(FieldRecapNumber, v))
}

// RecapNumberLTE applies the LTE predicate on the "recap_number" field.
func RecapNumberLTE(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLTE(FieldRecapNumber, v))
}

// RecapNumberContains applies the Contains predicate on the "recap_number" field.
func RecapNumberContains(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldContains(FieldRecapNumber, v))
}

// RecapNumberHasPrefix applies the HasPrefix predicate on the "recap_number" field.
func RecapNumberHasPrefix(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldHasPrefix(FieldRecapNumber, v))
}

// RecapNumberHasSuffix applies the HasSuffix predicate on the "recap_number" field.
func RecapNumberHasSuffix(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldHasSuffix(FieldRecapNumber, v))
}

// RecapNumberEqualFold applies the EqualFold predicate on the "recap_number" field.
func RecapNumberEqualFold(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEqualFold(FieldRecapNumber, v))
}

// RecapNumberContainsFold applies the ContainsFold predicate on the "recap_number" field.
func RecapNumberContainsFold(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldContainsFold(FieldRecapNumber, v))
}

// OrderIDEQ applies the EQ predicate on the "order_id" field.
func OrderIDEQ(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldOrderID, v))
}

// OrderIDNEQ applies the NEQ predicate on the "order_id" field.
func OrderIDNEQ(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNEQ(FieldOrderID, v))
}

// OrderIDIn applies the In predicate on the "order_id" field.
func OrderIDIn(vs ...string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIn(FieldOrderID, vs...))
}

// OrderIDNotIn applies the NotIn predicate on the "order_id" field.
func OrderIDNotIn(vs ...string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotIn(FieldOrderID, vs...))
}

// OrderIDGT applies the GT predicate on the "order_id" field.
func OrderIDGT(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGT(FieldOrderID, v))
}

// OrderIDGTE applies the GTE predicate on the "order_id" field.
func OrderIDGTE(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGTE(FieldOrderID, v))
}

// OrderIDLT applies the LT predicate on the "order_id" field.
func OrderIDLT(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLT(FieldOrderID, v))
}

// OrderIDLTE applies the LTE predicate on the "order_id" field.
func OrderIDLTE(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLTE(FieldOrderID, v))
}

// OrderIDContains applies the Contains predicate on the "order_id" field.
func OrderIDContains(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldContains(FieldOrderID, v))
}

// OrderIDHasPrefix applies the HasPrefix predicate on the "order_id" field.
func OrderIDHasPrefix(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldHasPrefix(FieldOrderID, v))
}

// OrderIDHasSuffix applies the HasSuffix predicate on the "order_id" field.
func OrderIDHasSuffix(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldHasSuffix(FieldOrderID, v))
}

// OrderIDIsNil applies the IsNil predicate on the "order_id" field.
func OrderIDIsNil() predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIsNull(FieldOrderID))
}

// OrderIDNotNil applies the NotNil predicate on the "order_id" field.
func OrderIDNotNil() predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotNull(FieldOrderID))
}

// OrderIDEqualFold applies the EqualFold predicate on the "order_id" field.
func OrderIDEqualFold(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEqualFold(FieldOrderID, v))
}

// OrderIDContainsFold applies the ContainsFold predicate on the "order_id" field.
func OrderIDContainsFold(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldContainsFold(FieldOrderID, v))
}

// NegotiationIDEQ applies the EQ predicate on the "negotiation_id" field.
func NegotiationIDEQ(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldNegotiationID, v))
}

// NegotiationIDNEQ applies the NEQ predicate on the "negotiation_id" field.
func NegotiationIDNEQ(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNEQ(FieldNegotiationID, v))
}

// NegotiationIDIn applies the In predicate on the "negotiation_id" field.
func NegotiationIDIn(vs ...string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIn(FieldNegotiationID, vs...))
}

// NegotiationIDNotIn applies the NotIn predicate on the "negotiation_id" field.
func NegotiationIDNotIn(vs ...string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotIn(FieldNegotiationID, vs...))
}

// NegotiationIDGT applies the GT predicate on the "negotiation_id" field.
func NegotiationIDGT(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGT(FieldNegotiationID, v))
}

// NegotiationIDGTE applies the GTE predicate on the "negotiation_id" field.
func NegotiationIDGTE(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGTE(FieldNegotiationID, v))
}

// NegotiationIDLT applies the LT predicate on the "negotiation_id" field.
func NegotiationIDLT(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLT(FieldNegotiationID, v))
}

// NegotiationIDLTE applies the LTE predicate on the "negotiation_id" field.
func NegotiationIDLTE(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLTE(FieldNegotiationID, v))
}

// NegotiationIDContains applies the Contains predicate on the "negotiation_id" field.
func NegotiationIDContains(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldContains(FieldNegotiationID, v))
}

// NegotiationIDHasPrefix applies the HasPrefix predicate on the "negotiation_id" field.
func NegotiationIDHasPrefix(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldHasPrefix(FieldNegotiationID, v))
}

// NegotiationIDHasSuffix applies the HasSuffix predicate on the "negotiation_id" field.
func NegotiationIDHasSuffix(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldHasSuffix(FieldNegotiationID, v))
}

// NegotiationIDIsNil applies the IsNil predicate on the "negotiation_id" field.
func NegotiationIDIsNil() predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIsNull(FieldNegotiationID))
}

// NegotiationIDNotNil applies the NotNil predicate on the "negotiation_id" field.
func NegotiationIDNotNil() predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotNull(FieldNegotiationID))
}

// NegotiationIDEqualFold applies the EqualFold predicate on the "negotiation_id" field.
func NegotiationIDEqualFold(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEqualFold(FieldNegotiationID, v))
}

// NegotiationIDContainsFold applies the ContainsFold predicate on the "negotiation_id" field.
func NegotiationIDContainsFold(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldContainsFold(FieldNegotiationID, v))
}

// ParentRecapIDEQ applies the EQ predicate on the "parent_recap_id" field.
func ParentRecapIDEQ(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldParentRecapID, v))
}

// ParentRecapIDNEQ applies the NEQ predicate on the "parent_recap_id" field.
func ParentRecapIDNEQ(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNEQ(FieldParentRecapID, v))
}

// ParentRecapIDIn applies the In predicate on the "parent_recap_id" field.
func ParentRecapIDIn(vs ...string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIn(FieldParentRecapID, vs...))
}

// ParentRecapIDNotIn applies the NotIn predicate on the "parent_recap_id" field.
func ParentRecapIDNotIn(vs ...string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotIn(FieldParentRecapID, vs...))
}

// ParentRecapIDGT applies the GT predicate on the "parent_recap_id" field.
func ParentRecapIDGT(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGT(FieldParentRecapID, v))
}

// ParentRecapIDGTE applies the GTE predicate on the "parent_recap_id" field.
func ParentRecapIDGTE(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGTE(FieldParentRecapID, v))
}

// ParentRecapIDLT applies the LT predicate on the "parent_recap_id" field.
func ParentRecapIDLT(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLT(FieldParentRecapID, v))
}

// ParentRecapIDLTE applies the LTE predicate on the "parent_recap_id" field.
func ParentRecapIDLTE(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLTE(FieldParentRecapID, v))
}

// ParentRecapIDContains applies the Contains predicate on the "parent_recap_id" field.
func ParentRecapIDContains(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldContains(FieldParentRecapID, v))
}

// ParentRecapIDHasPrefix applies the HasPrefix predicate on the "parent_recap_id" field.
func ParentRecapIDHasPrefix(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldHasPrefix(FieldParentRecapID, v))
}

// ParentRecapIDHasSuffix applies the HasSuffix predicate on the "parent_recap_id" field.
func ParentRecapIDHasSuffix(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldHasSuffix(FieldParentRecapID, v))
}

// ParentRecapIDIsNil applies the IsNil predicate on the "parent_recap_id" field.
func ParentRecapIDIsNil() predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIsNull(FieldParentRecapID))
}

// ParentRecapIDNotNil applies the NotNil predicate on the "parent_recap_id" field.
func ParentRecapIDNotNil() predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotNull(FieldParentRecapID))
}

// ParentRecapIDEqualFold applies the EqualFold predicate on the "parent_recap_id" field.
func ParentRecapIDEqualFold(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEqualFold(FieldParentRecapID, v))
}

// ParentRecapIDContainsFold applies the ContainsFold predicate on the "parent_recap_id" field.
func ParentRecapIDContainsFold(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldContainsFold(FieldParentRecapID, v))
}

// ContractTypeEQ applies the EQ predicate on the "contract_type" field.
func ContractTypeEQ(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldContractType, v))
}

// ContractTypeNEQ applies the NEQ predicate on the "contract_type" field.
func ContractTypeNEQ(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNEQ(FieldContractType, v))
}

// ContractTypeIn applies the In predicate on the "contract_type" field.
func ContractTypeIn(vs ...string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIn(FieldContractType, vs...))
}

// ContractTypeNotIn applies the NotIn predicate on the "contract_type" field.
func ContractTypeNotIn(vs ...string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotIn(FieldContractType, vs...))
}

// ContractTypeGT applies the GT predicate on the "contract_type" field.
func ContractTypeGT(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGT(FieldContractType, v))
}

// ContractTypeGTE applies the GTE predicate on the "contract_type" field.
func ContractTypeGTE(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGTE(FieldContractType, v))
}

// ContractTypeLT applies the LT predicate on the "contract_type" field.
func ContractTypeLT(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLT(FieldContractType, v))
}

// ContractTypeLTE applies the LTE predicate on the "contract_type" field.
func ContractTypeLTE(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLTE(FieldContractType, v))
}

// ContractTypeContains applies the Contains predicate on the "contract_type" field.
func ContractTypeContains(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldContains(FieldContractType, v))
}

// ContractTypeHasPrefix applies the HasPrefix predicate on the "contract_type" field.
func ContractTypeHasPrefix(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldHasPrefix(FieldContractType, v))
}

// ContractTypeHasSuffix applies the HasSuffix predicate on the "contract_type" field.
func ContractTypeHasSuffix(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldHasSuffix(FieldContractType, v))
}

// ContractTypeIsNil applies the IsNil predicate on the "contract_type" field.
func ContractTypeIsNil() predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIsNull(FieldContractType))
}

// ContractTypeNotNil applies the NotNil predicate on the "contract_type" field.
func ContractTypeNotNil() predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotNull(FieldContractType))
}

// ContractTypeEqualFold applies the EqualFold predicate on the "contract_type" field.
func ContractTypeEqualFold(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEqualFold(FieldContractType, v))
}

// ContractTypeContainsFold applies the ContainsFold predicate on the "contract_type" field.
func ContractTypeContainsFold(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldContainsFold(FieldContractType, v))
}

// DeliveryTypeEQ applies the EQ predicate on the "delivery_type" field.
func DeliveryTypeEQ(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldDeliveryType, v))
}

// DeliveryTypeNEQ applies the NEQ predicate on the "delivery_type" field.
func DeliveryTypeNEQ(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNEQ(FieldDeliveryType, v))
}

// DeliveryTypeIn applies the In predicate on the "delivery_type" field.
func DeliveryTypeIn(vs ...string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIn(FieldDeliveryType, vs...))
}

// DeliveryTypeNotIn applies the NotIn predicate on the "delivery_type" field.
func DeliveryTypeNotIn(vs ...string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotIn(FieldDeliveryType, vs...))
}

// DeliveryTypeGT applies the GT predicate on the "delivery_type" field.
func DeliveryTypeGT(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGT(FieldDeliveryType, v))
}

// DeliveryTypeGTE applies the GTE predicate on the "delivery_type" field.
func DeliveryTypeGTE(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGTE(FieldDeliveryType, v))
}

// DeliveryTypeLT applies the LT predicate on the "delivery_type" field.
func DeliveryTypeLT(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLT(FieldDeliveryType, v))
}

// DeliveryTypeLTE applies the LTE predicate on the "delivery_type" field.
func DeliveryTypeLTE(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLTE(FieldDeliveryType, v))
}

// DeliveryTypeContains applies the Contains predicate on the "delivery_type" field.
func DeliveryTypeContains(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldContains(FieldDeliveryType, v))
}

// DeliveryTypeHasPrefix applies the HasPrefix predicate on the "delivery_type" field.
func DeliveryTypeHasPrefix(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldHasPrefix(FieldDeliveryType, v))
}

// DeliveryTypeHasSuffix applies the HasSuffix predicate on the "delivery_type" field.
func DeliveryTypeHasSuffix(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldHasSuffix(FieldDeliveryType, v))
}

// DeliveryTypeIsNil applies the IsNil predicate on the "delivery_type" field.
func DeliveryTypeIsNil() predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIsNull(FieldDeliveryType))
}

// DeliveryTypeNotNil applies the NotNil predicate on the "delivery_type" field.
func DeliveryTypeNotNil() predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotNull(FieldDeliveryType))
}

// DeliveryTypeEqualFold applies the EqualFold predicate on the "delivery_type" field.
func DeliveryTypeEqualFold(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEqualFold(FieldDeliveryType, v))
}

// DeliveryTypeContainsFold applies the ContainsFold predicate on the "delivery_type" field.
func DeliveryTypeContainsFold(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldContainsFold(FieldDeliveryType, v))
}

// MarketIndexEQ applies the EQ predicate on the "market_index" field.
func MarketIndexEQ(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldMarketIndex, v))
}

// MarketIndexNEQ applies the NEQ predicate on the "market_index" field.
func MarketIndexNEQ(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNEQ(FieldMarketIndex, v))
}

// MarketIndexIn applies the In predicate on the "market_index" field.
func MarketIndexIn(vs ...string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIn(FieldMarketIndex, vs...))
}

// MarketIndexNotIn applies the NotIn predicate on the "market_index" field.
func MarketIndexNotIn(vs ...string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotIn(FieldMarketIndex, vs...))
}

// MarketIndexGT applies the GT predicate on the "market_index" field.
func MarketIndexGT(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGT(FieldMarketIndex, v))
}

// MarketIndexGTE applies the GTE predicate on the "market_index" field.
func MarketIndexGTE(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGTE(FieldMarketIndex, v))
}

// MarketIndexLT applies the LT predicate on the "market_index" field.
func MarketIndexLT(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLT(FieldMarketIndex, v))
}

// MarketIndexLTE applies the LTE predicate on the "market_index" field.
func MarketIndexLTE(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLTE(FieldMarketIndex, v))
}

// MarketIndexContains applies the Contains predicate on the "market_index" field.
func MarketIndexContains(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldContains(FieldMarketIndex, v))
}

// MarketIndexHasPrefix applies the HasPrefix predicate on the "market_index" field.
func MarketIndexHasPrefix(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldHasPrefix(FieldMarketIndex, v))
}

// MarketIndexHasSuffix applies the HasSuffix predicate on the "market_index" field.
func MarketIndexHasSuffix(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldHasSuffix(FieldMarketIndex, v))
}

// MarketIndexIsNil applies the IsNil predicate on the "market_index" field.
func MarketIndexIsNil() predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIsNull(FieldMarketIndex))
}

// MarketIndexNotNil applies the NotNil predicate on the "market_index" field.
func MarketIndexNotNil() predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotNull(FieldMarketIndex))
}

// MarketIndexEqualFold applies the EqualFold predicate on the "market_index" field.
func MarketIndexEqualFold(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEqualFold(FieldMarketIndex, v))
}

// MarketIndexContainsFold applies the ContainsFold predicate on the "market_index" field.
func MarketIndexContainsFold(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldContainsFold(FieldMarketIndex, v))
}

// VesselIDEQ applies the EQ predicate on the "vessel_id" field.
func VesselIDEQ(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldVesselID, v))
}

// VesselIDNEQ applies the NEQ predicate on the "vessel_id" field.
func VesselIDNEQ(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNEQ(FieldVesselID, v))
}

// VesselIDIn applies the In predicate on the "vessel_id" field.
func VesselIDIn(vs ...string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIn(FieldVesselID, vs...))
}

// VesselIDNotIn applies the NotIn predicate on the "vessel_id" field.
func VesselIDNotIn(vs ...string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotIn(FieldVesselID, vs...))
}

// VesselIDGT applies the GT predicate on the "vessel_id" field.
func VesselIDGT(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGT(FieldVesselID, v))
}

// VesselIDGTE applies the GTE predicate on the "vessel_id" field.
func VesselIDGTE(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGTE(FieldVesselID, v))
}

// VesselIDLT applies the LT predicate on the "vessel_id" field.
func VesselIDLT(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLT(FieldVesselID, v))
}

// VesselIDLTE applies the LTE predicate on the "vessel_id" field.
func VesselIDLTE(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLTE(FieldVesselID, v))
}

// VesselIDContains applies the Contains predicate on the "vessel_id" field.
func VesselIDContains(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldContains(FieldVesselID, v))
}

// VesselIDHasPrefix applies the HasPrefix predicate on the "vessel_id" field.
func VesselIDHasPrefix(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldHasPrefix(FieldVesselID, v))
}

// VesselIDHasSuffix applies the HasSuffix predicate on the "vessel_id" field.
func VesselIDHasSuffix(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldHasSuffix(FieldVesselID, v))
}

// VesselIDIsNil applies the IsNil predicate on the "vessel_id" field.
func VesselIDIsNil() predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIsNull(FieldVesselID))
}

// VesselIDNotNil applies the NotNil predicate on the "vessel_id" field.
func VesselIDNotNil() predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotNull(FieldVesselID))
}

// VesselIDEqualFold applies the EqualFold predicate on the "vessel_id" field.
func VesselIDEqualFold(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEqualFold(FieldVesselID, v))
}

// VesselIDContainsFold applies the ContainsFold predicate on the "vessel_id" field.
func VesselIDContainsFold(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldContainsFold(FieldVesselID, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotIn(FieldCompanyID, vs...))
}

// CompanyIDGT applies the GT predicate on the "company_id" field.
func CompanyIDGT(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGT(FieldCompanyID, v))
}

// CompanyIDGTE applies the GTE predicate on the "company_id" field.
func CompanyIDGTE(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGTE(FieldCompanyID, v))
}

// CompanyIDLT applies the LT predicate on the "company_id" field.
func CompanyIDLT(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLT(FieldCompanyID, v))
}

// CompanyIDLTE applies the LTE predicate on the "company_id" field.
func CompanyIDLTE(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLTE(FieldCompanyID, v))
}

// CompanyIDContains applies the Contains predicate on the "company_id" field.
func CompanyIDContains(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldContains(FieldCompanyID, v))
}

// CompanyIDHasPrefix applies the HasPrefix predicate on the "company_id" field.
func CompanyIDHasPrefix(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldHasPrefix(FieldCompanyID, v))
}

// CompanyIDHasSuffix applies the HasSuffix predicate on the "company_id" field.
func CompanyIDHasSuffix(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldHasSuffix(FieldCompanyID, v))
}

// CompanyIDIsNil applies the IsNil predicate on the "company_id" field.
func CompanyIDIsNil() predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIsNull(FieldCompanyID))
}

// CompanyIDNotNil applies the NotNil predicate on the "company_id" field.
func CompanyIDNotNil() predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotNull(FieldCompanyID))
}

// CompanyIDEqualFold applies the EqualFold predicate on the "company_id" field.
func CompanyIDEqualFold(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEqualFold(FieldCompanyID, v))
}

// CompanyIDContainsFold applies the ContainsFold predicate on the "company_id" field.
func CompanyIDContainsFold(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldContainsFold(FieldCompanyID, v))
}

// LoadPortIDEQ applies the EQ predicate on the "load_port_id" field.
func LoadPortIDEQ(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldLoadPortID, v))
}

// LoadPortIDNEQ applies the NEQ predicate on the "load_port_id" field.
func LoadPortIDNEQ(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNEQ(FieldLoadPortID, v))
}

// LoadPortIDIn applies the In predicate on the "load_port_id" field.
func LoadPortIDIn(vs ...string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIn(FieldLoadPortID, vs...))
}

// LoadPortIDNotIn applies the NotIn predicate on the "load_port_id" field.
func LoadPortIDNotIn(vs ...string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotIn(FieldLoadPortID, vs...))
}

// LoadPortIDGT applies the GT predicate on the "load_port_id" field.
func LoadPortIDGT(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGT(FieldLoadPortID, v))
}

// LoadPortIDGTE applies the GTE predicate on the "load_port_id" field.
func LoadPortIDGTE(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGTE(FieldLoadPortID, v))
}

// LoadPortIDLT applies the LT predicate on the "load_port_id" field.
func LoadPortIDLT(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLT(FieldLoadPortID, v))
}

// LoadPortIDLTE applies the LTE predicate on the "load_port_id" field.
func LoadPortIDLTE(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLTE(FieldLoadPortID, v))
}

// LoadPortIDContains applies the Contains predicate on the "load_port_id" field.
func LoadPortIDContains(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldContains(FieldLoadPortID, v))
}

// LoadPortIDHasPrefix applies the HasPrefix predicate on the "load_port_id" field.
func LoadPortIDHasPrefix(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldHasPrefix(FieldLoadPortID, v))
}

// LoadPortIDHasSuffix applies the HasSuffix predicate on the "load_port_id" field.
func LoadPortIDHasSuffix(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldHasSuffix(FieldLoadPortID, v))
}

// LoadPortIDIsNil applies the IsNil predicate on the "load_port_id" field.
func LoadPortIDIsNil() predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIsNull(FieldLoadPortID))
}

// LoadPortIDNotNil applies the NotNil predicate on the "load_port_id" field.
func LoadPortIDNotNil() predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotNull(FieldLoadPortID))
}

// LoadPortIDEqualFold applies the EqualFold predicate on the "load_port_id" field.
func LoadPortIDEqualFold(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEqualFold(FieldLoadPortID, v))
}

// LoadPortIDContainsFold applies the ContainsFold predicate on the "load_port_id" field.
func LoadPortIDContainsFold(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldContainsFold(FieldLoadPortID, v))
}

// DischargePortIDEQ applies the EQ predicate on the "discharge_port_id" field.
func DischargePortIDEQ(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldDischargePortID, v))
}

// DischargePortIDNEQ applies the NEQ predicate on the "discharge_port_id" field.
func DischargePortIDNEQ(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNEQ(FieldDischargePortID, v))
}

// DischargePortIDIn applies the In predicate on the "discharge_port_id" field.
func DischargePortIDIn(vs ...string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIn(FieldDischargePortID, vs...))
}

// DischargePortIDNotIn applies the NotIn predicate on the "discharge_port_id" field.
func DischargePortIDNotIn(vs ...string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotIn(FieldDischargePortID, vs...))
}

// DischargePortIDGT applies the GT predicate on the "discharge_port_id" field.
func DischargePortIDGT(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGT(FieldDischargePortID, v))
}

// DischargePortIDGTE applies the GTE predicate on the "discharge_port_id" field.
func DischargePortIDGTE(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGTE(FieldDischargePortID, v))
}

// DischargePortIDLT applies the LT predicate on the "discharge_port_id" field.
func DischargePortIDLT(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLT(FieldDischargePortID, v))
}

// DischargePortIDLTE applies the LTE predicate on the "discharge_port_id" field.
func DischargePortIDLTE(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLTE(FieldDischargePortID, v))
}

// DischargePortIDContains applies the Contains predicate on the "discharge_port_id" field.
func DischargePortIDContains(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldContains(FieldDischargePortID, v))
}

// DischargePortIDHasPrefix applies the HasPrefix predicate on the "discharge_port_id" field.
func DischargePortIDHasPrefix(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldHasPrefix(FieldDischargePortID, v))
}

// DischargePortIDHasSuffix applies the HasSuffix predicate on the "discharge_port_id" field.
func DischargePortIDHasSuffix(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldHasSuffix(FieldDischargePortID, v))
}

// DischargePortIDIsNil applies the IsNil predicate on the "discharge_port_id" field.
func DischargePortIDIsNil() predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIsNull(FieldDischargePortID))
}

// DischargePortIDNotNil applies the NotNil predicate on the "discharge_port_id" field.
func DischargePortIDNotNil() predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotNull(FieldDischargePortID))
}

// DischargePortIDEqualFold applies the EqualFold predicate on the "discharge_port_id" field.
func DischargePortIDEqualFold(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEqualFold(FieldDischargePortID, v))
}

// DischargePortIDContainsFold applies the ContainsFold predicate on the "discharge_port_id" field.
func DischargePortIDContainsFold(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldContainsFold(FieldDischargePortID, v))
}

// CargoTypeIDEQ applies the EQ predicate on the "cargo_type_id" field.
func CargoTypeIDEQ(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldCargoTypeID, v))
}

// CargoTypeIDNEQ applies the NEQ predicate on the "cargo_type_id" field.
func CargoTypeIDNEQ(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNEQ(FieldCargoTypeID, v))
}

// CargoTypeIDIn applies the In predicate on the "cargo_type_id" field.
func CargoTypeIDIn(vs ...string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIn(FieldCargoTypeID, vs...))
}

// CargoTypeIDNotIn applies the NotIn predicate on the "cargo_type_id" field.
func CargoTypeIDNotIn(vs ...string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotIn(FieldCargoTypeID, vs...))
}

// CargoTypeIDGT applies the GT predicate on the "cargo_type_id" field.
func CargoTypeIDGT(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGT(FieldCargoTypeID, v))
}

// CargoTypeIDGTE applies the GTE predicate on the "cargo_type_id" field.
func CargoTypeIDGTE(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGTE(FieldCargoTypeID, v))
}

// CargoTypeIDLT applies the LT predicate on the "cargo_type_id" field.
func CargoTypeIDLT(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLT(FieldCargoTypeID, v))
}

// CargoTypeIDLTE applies the LTE predicate on the "cargo_type_id" field.
func CargoTypeIDLTE(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLTE(FieldCargoTypeID, v))
}

// CargoTypeIDContains applies the Contains predicate on the "cargo_type_id" field.
func CargoTypeIDContains(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldContains(FieldCargoTypeID, v))
}

// CargoTypeIDHasPrefix applies the HasPrefix predicate on the "cargo_type_id" field.
func CargoTypeIDHasPrefix(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldHasPrefix(FieldCargoTypeID, v))
}

// CargoTypeIDHasSuffix applies the HasSuffix predicate on the "cargo_type_id" field.
func CargoTypeIDHasSuffix(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldHasSuffix(FieldCargoTypeID, v))
}

// CargoTypeIDIsNil applies the IsNil predicate on the "cargo_type_id" field.
func CargoTypeIDIsNil() predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIsNull(FieldCargoTypeID))
}

// CargoTypeIDNotNil applies the NotNil predicate on the "cargo_type_id" field.
func CargoTypeIDNotNil() predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotNull(FieldCargoTypeID))
}

// CargoTypeIDEqualFold applies the EqualFold predicate on the "cargo_type_id" field.
func CargoTypeIDEqualFold(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEqualFold(FieldCargoTypeID, v))
}

// CargoTypeIDContainsFold applies the ContainsFold predicate on the "cargo_type_id" field.
func CargoTypeIDContainsFold(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldContainsFold(FieldCargoTypeID, v))
}

// FreightRateEQ applies the EQ predicate on the "freight_rate" field.
func FreightRateEQ(v float64) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldFreightRate, v))
}

// FreightRateNEQ applies the NEQ predicate on the "freight_rate" field.
func FreightRateNEQ(v float64) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNEQ(FieldFreightRate, v))
}

// FreightRateIn applies the In predicate on the "freight_rate" field.
func FreightRateIn(vs ...float64) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIn(FieldFreightRate, vs...))
}

// FreightRateNotIn applies the NotIn predicate on the "freight_rate" field.
func FreightRateNotIn(vs ...float64) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotIn(FieldFreightRate, vs...))
}

// FreightRateGT applies the GT predicate on the "freight_rate" field.
func FreightRateGT(v float64) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGT(FieldFreightRate, v))
}

// FreightRateGTE applies the GTE predicate on the "freight_rate" field.
func FreightRateGTE(v float64) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGTE(FieldFreightRate, v))
}

// FreightRateLT applies the LT predicate on the "freight_rate" field.
func FreightRateLT(v float64) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLT(FieldFreightRate, v))
}

// FreightRateLTE applies the LTE predicate on the "freight_rate" field.
func FreightRateLTE(v float64) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLTE(FieldFreightRate, v))
}

// FreightRateIsNil applies the IsNil predicate on the "freight_rate" field.
func FreightRateIsNil() predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIsNull(FieldFreightRate))
}

// FreightRateNotNil applies the NotNil predicate on the "freight_rate" field.
func FreightRateNotNil() predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotNull(FieldFreightRate))
}

// LaycanStartEQ applies the EQ predicate on the "laycan_start" field.
func LaycanStartEQ(v time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldLaycanStart, v))
}

// LaycanStartNEQ applies the NEQ predicate on the "laycan_start" field.
func LaycanStartNEQ(v time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNEQ(FieldLaycanStart, v))
}

// LaycanStartIn applies the In predicate on the "laycan_start" field.
func LaycanStartIn(vs ...time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIn(FieldLaycanStart, vs...))
}

// LaycanStartNotIn applies the NotIn predicate on the "laycan_start" field.
func LaycanStartNotIn(vs ...time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotIn(FieldLaycanStart, vs...))
}

// LaycanStartGT applies the GT predicate on the "laycan_start" field.
func LaycanStartGT(v time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGT(FieldLaycanStart, v))
}

// LaycanStartGTE applies the GTE predicate on the "laycan_start" field.
func LaycanStartGTE(v time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGTE(FieldLaycanStart, v))
}

// LaycanStartLT applies the LT predicate on the "laycan_start" field.
func LaycanStartLT(v time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLT(FieldLaycanStart, v))
}

// LaycanStartLTE applies the LTE predicate on the "laycan_start" field.
func LaycanStartLTE(v time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLTE(FieldLaycanStart, v))
}

// LaycanStartIsNil applies the IsNil predicate on the "laycan_start" field.
func LaycanStartIsNil() predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIsNull(FieldLaycanStart))
}

// LaycanStartNotNil applies the NotNil predicate on the "laycan_start" field.
func LaycanStartNotNil() predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotNull(FieldLaycanStart))
}

// LaycanEndEQ applies the EQ predicate on the "laycan_end" field.
func LaycanEndEQ(v time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldLaycanEnd, v))
}

// LaycanEndNEQ applies the NEQ predicate on the "laycan_end" field.
func LaycanEndNEQ(v time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNEQ(FieldLaycanEnd, v))
}

// LaycanEndIn applies the In predicate on the "laycan_end" field.
func LaycanEndIn(vs ...time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIn(FieldLaycanEnd, vs...))
}

// LaycanEndNotIn applies the NotIn predicate on the "laycan_end" field.
func LaycanEndNotIn(vs ...time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotIn(FieldLaycanEnd, vs...))
}

// LaycanEndGT applies the GT predicate on the "laycan_end" field.
func LaycanEndGT(v time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGT(FieldLaycanEnd, v))
}

// LaycanEndGTE applies the GTE predicate on the "laycan_end" field.
func LaycanEndGTE(v time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGTE(FieldLaycanEnd, v))
}

// LaycanEndLT applies the LT predicate on the "laycan_end" field.
func LaycanEndLT(v time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLT(FieldLaycanEnd, v))
}

// LaycanEndLTE applies the LTE predicate on the "laycan_end" field.
func LaycanEndLTE(v time.Time) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLTE(FieldLaycanEnd, v))
}

// LaycanEndIsNil applies the IsNil predicate on the "laycan_end" field.
func LaycanEndIsNil() predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIsNull(FieldLaycanEnd))
}

// LaycanEndNotNil applies the NotNil predicate on the "laycan_end" field.
func LaycanEndNotNil() predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotNull(FieldLaycanEnd))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v float64) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v float64) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...float64) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...float64) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v float64) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v float64) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v float64) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v float64) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLTE(FieldQuantity, v))
}

// QuantityIsNil applies the IsNil predicate on the "quantity" field.
func QuantityIsNil() predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIsNull(FieldQuantity))
}

// QuantityNotNil applies the NotNil predicate on the "quantity" field.
func QuantityNotNil() predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotNull(FieldQuantity))
}

// DemurrageRateEQ applies the EQ predicate on the "demurrage_rate" field.
func DemurrageRateEQ(v float64) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldDemurrageRate, v))
}

// DemurrageRateNEQ applies the NEQ predicate on the "demurrage_rate" field.
func DemurrageRateNEQ(v float64) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNEQ(FieldDemurrageRate, v))
}

// DemurrageRateIn applies the In predicate on the "demurrage_rate" field.
func DemurrageRateIn(vs ...float64) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIn(FieldDemurrageRate, vs...))
}

// DemurrageRateNotIn applies the NotIn predicate on the "demurrage_rate" field.
func DemurrageRateNotIn(vs ...float64) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotIn(FieldDemurrageRate, vs...))
}

// DemurrageRateGT applies the GT predicate on the "demurrage_rate" field.
func DemurrageRateGT(v float64) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGT(FieldDemurrageRate, v))
}

// DemurrageRateGTE applies the GTE predicate on the "demurrage_rate" field.
func DemurrageRateGTE(v float64) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGTE(FieldDemurrageRate, v))
}

// DemurrageRateLT applies the LT predicate on the "demurrage_rate" field.
func DemurrageRateLT(v float64) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLT(FieldDemurrageRate, v))
}

// DemurrageRateLTE applies the LTE predicate on the "demurrage_rate" field.
func DemurrageRateLTE(v float64) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLTE(FieldDemurrageRate, v))
}

// DemurrageRateIsNil applies the IsNil predicate on the "demurrage_rate" field.
func DemurrageRateIsNil() predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIsNull(FieldDemurrageRate))
}

// DemurrageRateNotNil applies the NotNil predicate on the "demurrage_rate" field.
func DemurrageRateNotNil() predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotNull(FieldDemurrageRate))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.RecapManager {
	return predicate.RecapManager(sql.FieldContainsFold(FieldCreatedBy, v))
}

// HasFixture applies the HasEdge predicate on the "fixture" edge.
func HasFixture() predicate.RecapManager {
	return predicate.RecapManager(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FixtureTable, FixtureColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFixtureWith applies the HasEdge predicate on the "fixture" edge with a given conditions (other predicates).
func HasFixtureWith(preds ...predicate.Fixture) predicate.RecapManager {
	return predicate.RecapManager(func(s *sql.Selector) {
		step := newFixtureStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RecapManager) predicate.RecapManager {
	return predicate.RecapManager(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RecapManager) predicate.RecapManager {
	return predicate.RecapManager(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RecapManager) predicate.RecapManager {
	return predicate.RecapManager(sql.NotPredicates(p))
}
