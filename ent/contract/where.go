// Code generated by ent, DO NOT EDIT.

package contract

import (
	"time"

	"charterdesk.io/charterdesk/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldUpdatedAt, v))
}

// CpNumber applies equality check predicate on the "cp_number" field. It's identical to CpNumberEQ.
func CpNumber(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCpNumber, v))
}

// OrderID applies equality check predicate on the "order_id" field. It's identical to OrderIDEQ.
func OrderID(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldOrderID, v))
}

// NegotiationID applies equality check predicate on the "negotiation_id" field. It's identical to NegotiationIDEQ.
func NegotiationID(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldNegotiationID, v))
}

// ParentContractID applies equality check predicate on the "parent_contract_id" field. It's identical to ParentContractIDEQ.
func ParentContractID(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldParentContractID, v))
}

// ContractType applies equality check predicate on the "contract_type" field. It's identical to ContractTypeEQ.
func ContractType(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldContractType, v))
}

// DeliveryType applies equality check predicate on the "delivery_type" field. It's identical to DeliveryTypeEQ.
func DeliveryType(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldDeliveryType, v))
}

// VesselID applies equality check predicate on the "vessel_id" field. It's identical to VesselIDEQ.
func VesselID(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldVesselID, v))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCompanyID, v))
}

// LoadPortID applies equality check predicate on the "load_port_id" field. It's identical to LoadPortIDEQ.
func LoadPortID(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldLoadPortID, v))
}

// DischargePortID applies equality check predicate on the "discharge_port_id" field. It's identical to DischargePortIDEQ.
func DischargePortID(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldDischargePortID, v))
}

// CargoTypeID applies equality check predicate on the "cargo_type_id" field. It's identical to CargoTypeIDEQ.
func CargoTypeID(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCargoTypeID, v))
}

// FreightRate applies equality check predicate on the "freight_rate" field. It's identical to FreightRateEQ.
func FreightRate(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldFreightRate, v))
}

// LaycanStart applies equality check predicate on the "laycan_start" field. It's identical to LaycanStartEQ.
func LaycanStart(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldLaycanStart, v))
}

// LaycanEnd applies equality check predicate on the "laycan_end" field. It's identical to LaycanEndEQ.
func LaycanEnd(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldLaycanEnd, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldQuantity, v))
}

// DemurrageRate applies equality check predicate on the "demurrage_rate" field. It's identical to DemurrageRateEQ.
func DemurrageRate(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldDemurrageRate, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldUpdatedAt, v))
}

// CpNumberEQ applies the EQ predicate on the "cp_number" field.
func CpNumberEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCpNumber, v))
}

// CpNumberNEQ applies the NEQ predicate on the "cp_number" field.
func CpNumberNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldCpNumber, v))
}

// CpNumberIn applies the In predicate on the "cp_number" field.
func CpNumberIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldCpNumber, vs...))
}

// CpNumberNotIn applies the NotIn predicate on the "cp_number" field.
func CpNumberNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldCpNumber, vs...))
}

// CpNumberGT applies the GT predicate on the "cp_number" field.
func CpNumberGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldCpNumber, v))
}

// CpNumberGTE applies the GTE predicate on the "cp_number" field.
func CpNumberGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldCpNumber, v))
}

// CpNumberLT applies the LT predicate on the "cp_number" field.
func CpNumberLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldCpNumber, v))
}

// CpNumberLTE applies the LTE predicate on the "cp_number" field.
func CpNumberLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldCpNumber, v))
}

// CpNumberContains applies the Contains predicate on the "cp_number" field.
func CpNumberContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldCpNumber, v))
}

// CpNumberHasPrefix applies the HasPrefix predicate on the "cp_number" field.
func CpNumberHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldCpNumber, v))
}

// CpNumberHasSuffix applies the HasSuffix predicate on the "cp_number" field.
func CpNumberHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldCpNumber, v))
}

// CpNumberEqualFold applies the EqualFold predicate on the "cp_number" field.
func CpNumberEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldCpNumber, v))
}

// CpNumberContainsFold applies the ContainsFold predicate on the "cp_number" field.
func CpNumberContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldCpNumber, v))
}

// OrderIDEQ applies the EQ predicate on the "order_id" field.
func OrderIDEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldOrderID, v))
}

// OrderIDNEQ applies the NEQ predicate on the "order_id" field.
func OrderIDNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldOrderID, v))
}

// OrderIDIn applies the In predicate on the "order_id" field.
func OrderIDIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldOrderID, vs...))
}

// OrderIDNotIn applies the NotIn predicate on the "order_id" field.
func OrderIDNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldOrderID, vs...))
}

// OrderIDGT applies the GT predicate on the "order_id" field.
func OrderIDGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldOrderID, v))
}

// OrderIDGTE applies the GTE predicate on the "order_id" field.
func OrderIDGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldOrderID, v))
}

// OrderIDLT applies the LT predicate on the "order_id" field.
func OrderIDLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldOrderID, v))
}

// OrderIDLTE applies the LTE predicate on the "order_id" field.
func OrderIDLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldOrderID, v))
}

// OrderIDContains applies the Contains predicate on the "order_id" field.
func OrderIDContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldOrderID, v))
}

// OrderIDHasPrefix applies the HasPrefix predicate on the "order_id" field.
func OrderIDHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldOrderID, v))
}

// OrderIDHasSuffix applies the HasSuffix predicate on the "order_id" field.
func OrderIDHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldOrderID, v))
}

// OrderIDIsNil applies the IsNil predicate on the "order_id" field.
func OrderIDIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldOrderID))
}

// OrderIDNotNil applies the NotNil predicate on the "order_id" field.
func OrderIDNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldOrderID))
}

// OrderIDEqualFold applies the EqualFold predicate on the "order_id" field.
func OrderIDEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldOrderID, v))
}

// OrderIDContainsFold applies the ContainsFold predicate on the "order_id" field.
func OrderIDContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldOrderID, v))
}

// NegotiationIDEQ applies the EQ predicate on the "negotiation_id" field.
func NegotiationIDEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldNegotiationID, v))
}

// NegotiationIDNEQ applies the NEQ predicate on the "negotiation_id" field.
func NegotiationIDNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldNegotiationID, v))
}

// NegotiationIDIn applies the In predicate on the "negotiation_id" field.
func NegotiationIDIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldNegotiationID, vs...))
}

// NegotiationIDNotIn applies the NotIn predicate on the "negotiation_id" field.
func NegotiationIDNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldNegotiationID, vs...))
}

// NegotiationIDGT applies the GT predicate on the "negotiation_id" field.
func NegotiationIDGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldNegotiationID, v))
}

// NegotiationIDGTE applies the GTE predicate on the "negotiation_id" field.
func NegotiationIDGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldNegotiationID, v))
}

// NegotiationIDLT applies the LT predicate on the "negotiation_id" field.
func NegotiationIDLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldNegotiationID, v))
}

// NegotiationIDLTE applies the LTE predicate on the "negotiation_id" field.
func NegotiationIDLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldNegotiationID, v))
}

// NegotiationIDContains applies the Contains predicate on the "negotiation_id" field.
func NegotiationIDContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldNegotiationID, v))
}

// NegotiationIDHasPrefix applies the HasPrefix predicate on the "negotiation_id" field.
func NegotiationIDHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldNegotiationID, v))
}

// NegotiationIDHasSuffix applies the HasSuffix predicate on the "negotiation_id" field.
func NegotiationIDHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldNegotiationID, v))
}

// NegotiationIDIsNil applies the IsNil predicate on the "negotiation_id" field.
func NegotiationIDIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldNegotiationID))
}

// NegotiationIDNotNil applies the NotNil predicate on the "negotiation_id" field.
func NegotiationIDNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldNegotiationID))
}

// NegotiationIDEqualFold applies the EqualFold predicate on the "negotiation_id" field.
func NegotiationIDEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldNegotiationID, v))
}

// NegotiationIDContainsFold applies the ContainsFold predicate on the "negotiation_id" field.
func NegotiationIDContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldNegotiationID, v))
}

// ParentContractIDEQ applies the EQ predicate on the "parent_contract_id" field.
func ParentContractIDEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldParentContractID, v))
}

// ParentContractIDNEQ applies the NEQ predicate on the "parent_contract_id" field.
func ParentContractIDNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldParentContractID, v))
}

// ParentContractIDIn applies the In predicate on the "parent_contract_id" field.
func ParentContractIDIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldParentContractID, vs...))
}

// ParentContractIDNotIn applies the NotIn predicate on the "parent_contract_id" field.
func ParentContractIDNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldParentContractID, vs...))
}

// ParentContractIDGT applies the GT predicate on the "parent_contract_id" field.
func ParentContractIDGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldParentContractID, v))
}

// ParentContractIDGTE applies the GTE predicate on the "parent_contract_id" field.
func ParentContractIDGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldParentContractID, v))
}

// ParentContractIDLT applies the LT predicate on the "parent_contract_id" field.
func ParentContractIDLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldParentContractID, v))
}

// ParentContractIDLTE applies the LTE predicate on the "parent_contract_id" field.
func ParentContractIDLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldParentContractID, v))
}

// ParentContractIDContains applies the Contains predicate on the "parent_contract_id" field.
func ParentContractIDContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldParentContractID, v))
}

// ParentContractIDHasPrefix applies the HasPrefix predicate on the "parent_contract_id" field.
func ParentContractIDHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldParentContractID, v))
}

// ParentContractIDHasSuffix applies the HasSuffix predicate on the "parent_contract_id" field.
func ParentContractIDHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldParentContractID, v))
}

// ParentContractIDIsNil applies the IsNil predicate on the "parent_contract_id" field.
func ParentContractIDIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldParentContractID))
}

// ParentContractIDNotNil applies the NotNil predicate on the "parent_contract_id" field.
func ParentContractIDNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldParentContractID))
}

// ParentContractIDEqualFold applies the EqualFold predicate on the "parent_contract_id" field.
func ParentContractIDEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldParentContractID, v))
}

// ParentContractIDContainsFold applies the ContainsFold predicate on the "parent_contract_id" field.
func ParentContractIDContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldParentContractID, v))
}

// ContractTypeEQ applies the EQ predicate on the "contract_type" field.
func ContractTypeEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldContractType, v))
}

// ContractTypeNEQ applies the NEQ predicate on the "contract_type" field.
func ContractTypeNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldContractType, v))
}

// ContractTypeIn applies the In predicate on the "contract_type" field.
func ContractTypeIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldContractType, vs...))
}

// ContractTypeNotIn applies the NotIn predicate on the "contract_type" field.
func ContractTypeNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldContractType, vs...))
}

// ContractTypeGT applies the GT predicate on the "contract_type" field.
func ContractTypeGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldContractType, v))
}

// ContractTypeGTE applies the GTE predicate on the "contract_type" field.
func ContractTypeGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldContractType, v))
}

// ContractTypeLT applies the LT predicate on the "contract_type" field.
func ContractTypeLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldContractType, v))
}

// ContractTypeLTE applies the LTE predicate on the "contract_type" field.
func ContractTypeLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldContractType, v))
}

// ContractTypeContains applies the Contains predicate on the "contract_type" field.
func ContractTypeContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldContractType, v))
}

// ContractTypeHasPrefix applies the HasPrefix predicate on the "contract_type" field.
func ContractTypeHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldContractType, v))
}

// ContractTypeHasSuffix applies the HasSuffix predicate on the "contract_type" field.
func ContractTypeHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldContractType, v))
}

// ContractTypeIsNil applies the IsNil predicate on the "contract_type" field.
func ContractTypeIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldContractType))
}

// ContractTypeNotNil applies the NotNil predicate on the "contract_type" field.
func ContractTypeNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldContractType))
}

// ContractTypeEqualFold applies the EqualFold predicate on the "contract_type" field.
func ContractTypeEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldContractType, v))
}

// ContractTypeContainsFold applies the ContainsFold predicate on the "contract_type" field.
func ContractTypeContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldContractType, v))
}

// DeliveryTypeEQ applies the EQ predicate on the "delivery_type" field.
func DeliveryTypeEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldDeliveryType, v))
}

// DeliveryTypeNEQ applies the NEQ predicate on the "delivery_type" field.
func DeliveryTypeNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldDeliveryType, v))
}

// DeliveryTypeIn applies the In predicate on the "delivery_type" field.
func DeliveryTypeIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldDeliveryType, vs...))
}

// DeliveryTypeNotIn applies the NotIn predicate on the "delivery_type" field.
func DeliveryTypeNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldDeliveryType, vs...))
}

// DeliveryTypeGT applies the GT predicate on the "delivery_type" field.
func DeliveryTypeGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldDeliveryType, v))
}

// DeliveryTypeGTE applies the GTE predicate on the "delivery_type" field.
func DeliveryTypeGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldDeliveryType, v))
}

// DeliveryTypeLT applies the LT predicate on the "delivery_type" field.
func DeliveryTypeLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldDeliveryType, v))
}

// DeliveryTypeLTE applies the LTE predicate on the "delivery_type" field.
func DeliveryTypeLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldDeliveryType, v))
}

// DeliveryTypeContains applies the Contains predicate on the "delivery_type" field.
func DeliveryTypeContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldDeliveryType, v))
}

// DeliveryTypeHasPrefix applies the HasPrefix predicate on the "delivery_type" field.
func DeliveryTypeHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldDeliveryType, v))
}

// DeliveryTypeHasSuffix applies the HasSuffix predicate on the "delivery_type" field.
func DeliveryTypeHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldDeliveryType, v))
}

// DeliveryTypeIsNil applies the IsNil predicate on the "delivery_type" field.
func DeliveryTypeIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldDeliveryType))
}

// DeliveryTypeNotNil applies the NotNil predicate on the "delivery_type" field.
func DeliveryTypeNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldDeliveryType))
}

// DeliveryTypeEqualFold applies the EqualFold predicate on the "delivery_type" field.
func DeliveryTypeEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldDeliveryType, v))
}

// DeliveryTypeContainsFold applies the ContainsFold predicate on the "delivery_type" field.
func DeliveryTypeContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldDeliveryType, v))
}

// VesselIDEQ applies the EQ predicate on the "vessel_id" field.
func VesselIDEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldVesselID, v))
}

// VesselIDNEQ applies the NEQ predicate on the "vessel_id" field.
func VesselIDNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldVesselID, v))
}

// VesselIDIn applies the In predicate on the "vessel_id" field.
func VesselIDIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldVesselID, vs...))
}

// VesselIDNotIn applies the NotIn predicate on the "vessel_id" field.
func VesselIDNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldVesselID, vs...))
}

// VesselIDGT applies the GT predicate on the "vessel_id" field.
func VesselIDGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldVesselID, v))
}

// VesselIDGTE applies the GTE predicate on the "vessel_id" field.
func VesselIDGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldVesselID, v))
}

// VesselIDLT applies the LT predicate on the "vessel_id" field.
func VesselIDLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldVesselID, v))
}

// VesselIDLTE applies the LTE predicate on the "vessel_id" field.
func VesselIDLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldVesselID, v))
}

// VesselIDContains applies the Contains predicate on the "vessel_id" field.
func VesselIDContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldVesselID, v))
}

// VesselIDHasPrefix applies the HasPrefix predicate on the "vessel_id" field.
func VesselIDHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldVesselID, v))
}

// VesselIDHasSuffix applies the HasSuffix predicate on the "vessel_id" field.
func VesselIDHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldVesselID, v))
}

// VesselIDIsNil applies the IsNil predicate on the "vessel_id" field.
func VesselIDIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldVesselID))
}

// VesselIDNotNil applies the NotNil predicate on the "vessel_id" field.
func VesselIDNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldVesselID))
}

// VesselIDEqualFold applies the EqualFold predicate on the "vessel_id" field.
func VesselIDEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldVesselID, v))
}

// VesselIDContainsFold applies the ContainsFold predicate on the "vessel_id" field.
func VesselIDContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldVesselID, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldCompanyID, vs...))
}

// CompanyIDGT applies the GT predicate on the "company_id" field.
func CompanyIDGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldCompanyID, v))
}

// CompanyIDGTE applies the GTE predicate on the "company_id" field.
func CompanyIDGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldCompanyID, v))
}

// CompanyIDLT applies the LT predicate on the "company_id" field.
func CompanyIDLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldCompanyID, v))
}

// CompanyIDLTE applies the LTE predicate on the "company_id" field.
func CompanyIDLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldCompanyID, v))
}

// CompanyIDContains applies the Contains predicate on the "company_id" field.
func CompanyIDContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldCompanyID, v))
}

// CompanyIDHasPrefix applies the HasPrefix predicate on the "company_id" field.
func CompanyIDHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldCompanyID, v))
}

// CompanyIDHasSuffix applies the HasSuffix predicate on the "company_id" field.
func CompanyIDHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldCompanyID, v))
}

// CompanyIDIsNil applies the IsNil predicate on the "company_id" field.
func CompanyIDIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldCompanyID))
}

// CompanyIDNotNil applies the NotNil predicate on the "company_id" field.
func CompanyIDNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldCompanyID))
}

// CompanyIDEqualFold applies the EqualFold predicate on the "company_id" field.
func CompanyIDEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldCompanyID, v))
}

// CompanyIDContainsFold applies the ContainsFold predicate on the "company_id" field.
func CompanyIDContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldCompanyID, v))
}

// LoadPortIDEQ applies the EQ predicate on the "load_port_id" field.
func LoadPortIDEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldLoadPortID, v))
}

// LoadPortIDNEQ applies the NEQ predicate on the "load_port_id" field.
func LoadPortIDNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldLoadPortID, v))
}

// LoadPortIDIn applies the In predicate on the "load_port_id" field.
func LoadPortIDIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldLoadPortID, vs...))
}

// LoadPortIDNotIn applies the NotIn predicate on the "load_port_id" field.
func LoadPortIDNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldLoadPortID, vs...))
}

// LoadPortIDGT applies the GT predicate on the "load_port_id" field.
func LoadPortIDGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldLoadPortID, v))
}

// LoadPortIDGTE applies the GTE predicate on the "load_port_id" field.
func LoadPortIDGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldLoadPortID, v))
}

// LoadPortIDLT applies the LT predicate on the "load_port_id" field.
func LoadPortIDLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldLoadPortID, v))
}

// LoadPortIDLTE applies the LTE predicate on the "load_port_id" field.
func LoadPortIDLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldLoadPortID, v))
}

// LoadPortIDContains applies the Contains predicate on the "load_port_id" field.
func LoadPortIDContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldLoadPortID, v))
}

// LoadPortIDHasPrefix applies the HasPrefix predicate on the "load_port_id" field.
func LoadPortIDHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldLoadPortID, v))
}

// LoadPortIDHasSuffix applies the HasSuffix predicate on the "load_port_id" field.
func LoadPortIDHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldLoadPortID, v))
}

// LoadPortIDIsNil applies the IsNil predicate on the "load_port_id" field.
func LoadPortIDIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldLoadPortID))
}

// LoadPortIDNotNil applies the NotNil predicate on the "load_port_id" field.
func LoadPortIDNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldLoadPortID))
}

// LoadPortIDEqualFold applies the EqualFold predicate on the "load_port_id" field.
func LoadPortIDEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldLoadPortID, v))
}

// LoadPortIDContainsFold applies the ContainsFold predicate on the "load_port_id" field.
func LoadPortIDContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldLoadPortID, v))
}

// DischargePortIDEQ applies the EQ predicate on the "discharge_port_id" field.
func DischargePortIDEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldDischargePortID, v))
}

// DischargePortIDNEQ applies the NEQ predicate on the "discharge_port_id" field.
func DischargePortIDNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldDischargePortID, v))
}

// DischargePortIDIn applies the In predicate on the "discharge_port_id" field.
func DischargePortIDIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldDischargePortID, vs...))
}

// DischargePortIDNotIn applies the NotIn predicate on the "discharge_port_id" field.
func DischargePortIDNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldDischargePortID, vs...))
}

// DischargePortIDGT applies the GT predicate on the "discharge_port_id" field.
func DischargePortIDGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldDischargePortID, v))
}

// DischargePortIDGTE applies the GTE predicate on the "discharge_port_id" field.
func DischargePortIDGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldDischargePortID, v))
}

// DischargePortIDLT applies the LT predicate on the "discharge_port_id" field.
func DischargePortIDLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldDischargePortID, v))
}

// DischargePortIDLTE applies the LTE predicate on the "discharge_port_id" field.
func DischargePortIDLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldDischargePortID, v))
}

// DischargePortIDContains applies the Contains predicate on the "discharge_port_id" field.
func DischargePortIDContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldDischargePortID, v))
}

// DischargePortIDHasPrefix applies the HasPrefix predicate on the "discharge_port_id" field.
func DischargePortIDHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldDischargePortID, v))
}

// DischargePortIDHasSuffix applies the HasSuffix predicate on the "discharge_port_id" field.
func DischargePortIDHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldDischargePortID, v))
}

// DischargePortIDIsNil applies the IsNil predicate on the "discharge_port_id" field.
func DischargePortIDIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldDischargePortID))
}

// DischargePortIDNotNil applies the NotNil predicate on the "discharge_port_id" field.
func DischargePortIDNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldDischargePortID))
}

// DischargePortIDEqualFold applies the EqualFold predicate on the "discharge_port_id" field.
func DischargePortIDEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldDischargePortID, v))
}

// DischargePortIDContainsFold applies the ContainsFold predicate on the "discharge_port_id" field.
func DischargePortIDContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldDischargePortID, v))
}

// CargoTypeIDEQ applies the EQ predicate on the "cargo_type_id" field.
func CargoTypeIDEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCargoTypeID, v))
}

// CargoTypeIDNEQ applies the NEQ predicate on the "cargo_type_id" field.
func CargoTypeIDNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldCargoTypeID, v))
}

// CargoTypeIDIn applies the In predicate on the "cargo_type_id" field.
func CargoTypeIDIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldCargoTypeID, vs...))
}

// CargoTypeIDNotIn applies the NotIn predicate on the "cargo_type_id" field.
func CargoTypeIDNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldCargoTypeID, vs...))
}

// CargoTypeIDGT applies the GT predicate on the "cargo_type_id" field.
func CargoTypeIDGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldCargoTypeID, v))
}

// CargoTypeIDGTE applies the GTE predicate on the "cargo_type_id" field.
func CargoTypeIDGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldCargoTypeID, v))
}

// CargoTypeIDLT applies the LT predicate on the "cargo_type_id" field.
func CargoTypeIDLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldCargoTypeID, v))
}

// CargoTypeIDLTE applies the LTE predicate on the "cargo_type_id" field.
func CargoTypeIDLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldCargoTypeID, v))
}

// CargoTypeIDContains applies the Contains predicate on the "cargo_type_id" field.
func CargoTypeIDContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldCargoTypeID, v))
}

// CargoTypeIDHasPrefix applies the HasPrefix predicate on the "cargo_type_id" field.
func CargoTypeIDHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldCargoTypeID, v))
}

// CargoTypeIDHasSuffix applies the HasSuffix predicate on the "cargo_type_id" field.
func CargoTypeIDHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldCargoTypeID, v))
}

// CargoTypeIDIsNil applies the IsNil predicate on the "cargo_type_id" field.
func CargoTypeIDIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldCargoTypeID))
}

// CargoTypeIDNotNil applies the NotNil predicate on the "cargo_type_id" field.
func CargoTypeIDNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldCargoTypeID))
}

// CargoTypeIDEqualFold applies the EqualFold predicate on the "cargo_type_id" field.
func CargoTypeIDEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldCargoTypeID, v))
}

// CargoTypeIDContainsFold applies the ContainsFold predicate on the "cargo_type_id" field.
func CargoTypeIDContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldCargoTypeID, v))
}

// FreightRateEQ applies the EQ predicate on the "freight_rate" field.
func FreightRateEQ(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldFreightRate, v))
}

// FreightRateNEQ applies the NEQ predicate on the "freight_rate" field.
func FreightRateNEQ(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldFreightRate, v))
}

// FreightRateIn applies the In predicate on the "freight_rate" field.
func FreightRateIn(vs ...float64) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldFreightRate, vs...))
}

// FreightRateNotIn applies the NotIn predicate on the "freight_rate" field.
func FreightRateNotIn(vs ...float64) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldFreightRate, vs...))
}

// FreightRateGT applies the GT predicate on the "freight_rate" field.
func FreightRateGT(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldFreightRate, v))
}

// FreightRateGTE applies the GTE predicate on the "freight_rate" field.
func FreightRateGTE(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldFreightRate, v))
}

// FreightRateLT applies the LT predicate on the "freight_rate" field.
func FreightRateLT(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldFreightRate, v))
}

// FreightRateLTE applies the LTE predicate on the "freight_rate" field.
func FreightRateLTE(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldFreightRate, v))
}

// FreightRateIsNil applies the IsNil predicate on the "freight_rate" field.
func FreightRateIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldFreightRate))
}

// FreightRateNotNil applies the NotNil predicate on the "freight_rate" field.
func FreightRateNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldFreightRate))
}

// LaycanStartEQ applies the EQ predicate on the "laycan_start" field.
func LaycanStartEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldLaycanStart, v))
}

// LaycanStartNEQ applies the NEQ predicate on the "laycan_start" field.
func LaycanStartNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldLaycanStart, v))
}

// LaycanStartIn applies the In predicate on the "laycan_start" field.
func LaycanStartIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldLaycanStart, vs...))
}

// LaycanStartNotIn applies the NotIn predicate on the "laycan_start" field.
func LaycanStartNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldLaycanStart, vs...))
}

// LaycanStartGT applies the GT predicate on the "laycan_start" field.
func LaycanStartGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldLaycanStart, v))
}

// LaycanStartGTE applies the GTE predicate on the "laycan_start" field.
func LaycanStartGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldLaycanStart, v))
}

// LaycanStartLT applies the LT predicate on the "laycan_start" field.
func LaycanStartLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldLaycanStart, v))
}

// LaycanStartLTE applies the LTE predicate on the "laycan_start" field.
func LaycanStartLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldLaycanStart, v))
}

// LaycanStartIsNil applies the IsNil predicate on the "laycan_start" field.
func LaycanStartIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldLaycanStart))
}

// LaycanStartNotNil applies the NotNil predicate on the "laycan_start" field.
func LaycanStartNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldLaycanStart))
}

// LaycanEndEQ applies the EQ predicate on the "laycan_end" field.
func LaycanEndEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldLaycanEnd, v))
}

// LaycanEndNEQ applies the NEQ predicate on the "laycan_end" field.
func LaycanEndNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldLaycanEnd, v))
}

// LaycanEndIn applies the In predicate on the "laycan_end" field.
func LaycanEndIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldLaycanEnd, vs...))
}

// LaycanEndNotIn applies the NotIn predicate on the "laycan_end" field.
func LaycanEndNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldLaycanEnd, vs...))
}

// LaycanEndGT applies the GT predicate on the "laycan_end" field.
func LaycanEndGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldLaycanEnd, v))
}

// LaycanEndGTE applies the GTE predicate on the "laycan_end" field.
func LaycanEndGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldLaycanEnd, v))
}

// LaycanEndLT applies the LT predicate on the "laycan_end" field.
func LaycanEndLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldLaycanEnd, v))
}

// LaycanEndLTE applies the LTE predicate on the "laycan_end" field.
func LaycanEndLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldLaycanEnd, v))
}

// LaycanEndIsNil applies the IsNil predicate on the "laycan_end" field.
func LaycanEndIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldLaycanEnd))
}

// LaycanEndNotNil applies the NotNil predicate on the "laycan_end" field.
func LaycanEndNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldLaycanEnd))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...float64) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...float64) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldQuantity, v))
}

// QuantityIsNil applies the IsNil predicate on the "quantity" field.
func QuantityIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldQuantity))
}

// QuantityNotNil applies the NotNil predicate on the "quantity" field.
func QuantityNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldQuantity))
}

// DemurrageRateEQ applies the EQ predicate on the "demurrage_rate" field.
func DemurrageRateEQ(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldDemurrageRate, v))
}

// DemurrageRateNEQ applies the NEQ predicate on the "demurrage_rate" field.
func DemurrageRateNEQ(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldDemurrageRate, v))
}

// DemurrageRateIn applies the In predicate on the "demurrage_rate" field.
func DemurrageRateIn(vs ...float64) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldDemurrageRate, vs...))
}

// DemurrageRateNotIn applies the NotIn predicate on the "demurrage_rate" field.
func DemurrageRateNotIn(vs ...float64) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldDemurrageRate, vs...))
}

// DemurrageRateGT applies the GT predicate on the "demurrage_rate" field.
func DemurrageRateGT(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldDemurrageRate, v))
}

// DemurrageRateGTE applies the GTE predicate on the "demurrage_rate" field.
func DemurrageRateGTE(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldDemurrageRate, v))
}

// DemurrageRateLT applies the LT predicate on the "demurrage_rate" field.
func DemurrageRateLT(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldDemurrageRate, v))
}

// DemurrageRateLTE applies the LTE predicate on the "demurrage_rate" field.
func DemurrageRateLTE(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldDemurrageRate, v))
}

// DemurrageRateIsNil applies the IsNil predicate on the "demurrage_rate" field.
func DemurrageRateIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldDemurrageRate))
}

// DemurrageRateNotNil applies the NotNil predicate on the "demurrage_rate" field.
func DemurrageRateNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldDemurrageRate))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldCreatedBy, v))
}

// HasFixture applies the HasEdge predicate on the "fixture" edge.
func HasFixture() predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FixtureTable, FixtureColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFixtureWith applies the HasEdge predicate on the "fixture" edge with a given conditions (other predicates).
func HasFixtureWith(preds ...predicate.Fixture) predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := newFixtureStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.NotPredicates(p))
}
