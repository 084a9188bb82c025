// Code generated by ent, DO NOT EDIT.

package order

import (
	"time"

	"charterdesk.io/charterdesk/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldUpdatedAt, v))
}

// OrderNumber applies equality check predicate on the "order_number" field. It's identical to OrderNumberEQ.
func OrderNumber(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldOrderNumber, v))
}

// OrganizationID applies equality check predicate on the "organization_id" field. It's identical to OrganizationIDEQ.
func OrganizationID(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldOrganizationID, v))
}

// CargoTypeID applies equality check predicate on the "cargo_type_id" field. It's identical to CargoTypeIDEQ.
func CargoTypeID(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCargoTypeID, v))
}

// LoadPortID applies equality check predicate on the "load_port_id" field. It's identical to LoadPortIDEQ.
func LoadPortID(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldLoadPortID, v))
}

// DischargePortID applies equality check predicate on the "discharge_port_id" field. It's identical to DischargePortIDEQ.
func DischargePortID(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldDischargePortID, v))
}

// LaycanStart applies equality check predicate on the "laycan_start" field. It's identical to LaycanStartEQ.
func LaycanStart(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldLaycanStart, v))
}

// LaycanEnd applies equality check predicate on the "laycan_end" field. It's identical to LaycanEndEQ.
func LaycanEnd(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldLaycanEnd, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v float64) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldQuantity, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldNotes, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldUpdatedAt, v))
}

// OrderNumberEQ applies the EQ predicate on the "order_number" field.
func OrderNumberEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldOrderNumber, v))
}

// OrderNumberNEQ applies the NEQ predicate on the "order_number" field.
func OrderNumberNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldOrderNumber, v))
}

// OrderNumberIn applies the In predicate on the "order_number" field.
func OrderNumberIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldOrderNumber, vs...))
}

// OrderNumberNotIn applies the NotIn predicate on the "order_number" field.
func OrderNumberNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldOrderNumber, vs...))
}

// OrderNumberGT applies the GT predicate on the "order_number" field.
func OrderNumberGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldOrderNumber, v))
}

// OrderNumberGTE applies the GTE predicate on the "order_number" field.
func OrderNumberGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldOrderNumber, v))
}

// OrderNumberLT applies the LT predicate on the "order_number" field.
func OrderNumberLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldOrderNumber, v))
}

// OrderNumberLTE applies the LTE predicate on the "order_number" field.
func OrderNumberLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldOrderNumber, v))
}

// OrderNumberContains applies the Contains predicate on the "order_number" field.
func OrderNumberContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldOrderNumber, v))
}

// OrderNumberHasPrefix applies the HasPrefix predicate on the "order_number" field.
func OrderNumberHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldOrderNumber, v))
}

// OrderNumberHasSuffix applies the HasSuffix predicate on the "order_number" field.
func OrderNumberHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldOrderNumber, v))
}

// OrderNumberEqualFold applies the EqualFold predicate on the "order_number" field.
func OrderNumberEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldOrderNumber, v))
}

// OrderNumberContainsFold applies the ContainsFold predicate on the "order_number" field.
func OrderNumberContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldOrderNumber, v))
}

// OrganizationIDEQ applies the EQ predicate on the "organization_id" field.
func OrganizationIDEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldOrganizationID, v))
}

// OrganizationIDNEQ applies the NEQ predicate on the "organization_id" field.
func OrganizationIDNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldOrganizationID, v))
}

// OrganizationIDIn applies the In predicate on the "organization_id" field.
func OrganizationIDIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldOrganizationID, vs...))
}

// OrganizationIDNotIn applies the NotIn predicate on the "organization_id" field.
func OrganizationIDNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldOrganizationID, vs...))
}

// OrganizationIDGT applies the GT predicate on the "organization_id" field.
func OrganizationIDGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldOrganizationID, v))
}

// OrganizationIDGTE applies the GTE predicate on the "organization_id" field.
func OrganizationIDGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldOrganizationID, v))
}

// OrganizationIDLT applies the LT predicate on the "organization_id" field.
func OrganizationIDLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldOrganizationID, v))
}

// OrganizationIDLTE applies the LTE predicate on the "organization_id" field.
func OrganizationIDLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldOrganizationID, v))
}

// OrganizationIDContains applies the Contains predicate on the "organization_id" field.
func OrganizationIDContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldOrganizationID, v))
}

// OrganizationIDHasPrefix applies the HasPrefix predicate on the "organization_id" field.
func OrganizationIDHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldOrganizationID, v))
}

// OrganizationIDHasSuffix applies the HasSuffix predicate on the "organization_id" field.
func OrganizationIDHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldOrganizationID, v))
}

// OrganizationIDIsNil applies the IsNil predicate on the "organization_id" field.
func OrganizationIDIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldOrganizationID))
}

// OrganizationIDNotNil applies the NotNil predicate on the "organization_id" field.
func OrganizationIDNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldOrganizationID))
}

// OrganizationIDEqualFold applies the EqualFold predicate on the "organization_id" field.
func OrganizationIDEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldOrganizationID, v))
}

// OrganizationIDContainsFold applies the ContainsFold predicate on the "organization_id" field.
func OrganizationIDContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldOrganizationID, v))
}

// MarketEQ applies the EQ predicate on the "market" field.
func MarketEQ(v Market) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldMarket, v))
}

// MarketNEQ applies the NEQ predicate on the "market" field.
func MarketNEQ(v Market) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldMarket, v))
}

// MarketIn applies the In predicate on the "market" field.
func MarketIn(vs ...Market) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldMarket, vs...))
}

// MarketNotIn applies the NotIn predicate on the "market" field.
func MarketNotIn(vs ...Market) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldMarket, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldStatus, vs...))
}

// CargoTypeIDEQ applies the EQ predicate on the "cargo_type_id" field.
func CargoTypeIDEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCargoTypeID, v))
}

// CargoTypeIDNEQ applies the NEQ predicate on the "cargo_type_id" field.
func CargoTypeIDNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldCargoTypeID, v))
}

// CargoTypeIDIn applies the In predicate on the "cargo_type_id" field.
func CargoTypeIDIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldCargoTypeID, vs...))
}

// CargoTypeIDNotIn applies the NotIn predicate on the "cargo_type_id" field.
func CargoTypeIDNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldCargoTypeID, vs...))
}

// CargoTypeIDGT applies the GT predicate on the "cargo_type_id" field.
func CargoTypeIDGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldCargoTypeID, v))
}

// CargoTypeIDGTE applies the GTE predicate on the "cargo_type_id" field.
func CargoTypeIDGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldCargoTypeID, v))
}

// CargoTypeIDLT applies the LT predicate on the "cargo_type_id" field.
func CargoTypeIDLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldCargoTypeID, v))
}

// CargoTypeIDLTE applies the LTE predicate on the "cargo_type_id" field.
func CargoTypeIDLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldCargoTypeID, v))
}

// CargoTypeIDContains applies the Contains predicate on the "cargo_type_id" field.
func CargoTypeIDContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldCargoTypeID, v))
}

// CargoTypeIDHasPrefix applies the HasPrefix predicate on the "cargo_type_id" field.
func CargoTypeIDHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldCargoTypeID, v))
}

// CargoTypeIDHasSuffix applies the HasSuffix predicate on the "cargo_type_id" field.
func CargoTypeIDHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldCargoTypeID, v))
}

// CargoTypeIDIsNil applies the IsNil predicate on the "cargo_type_id" field.
func CargoTypeIDIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldCargoTypeID))
}

// CargoTypeIDNotNil applies the NotNil predicate on the "cargo_type_id" field.
func CargoTypeIDNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldCargoTypeID))
}

// CargoTypeIDEqualFold applies the EqualFold predicate on the "cargo_type_id" field.
func CargoTypeIDEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldCargoTypeID, v))
}

// CargoTypeIDContainsFold applies the ContainsFold predicate on the "cargo_type_id" field.
func CargoTypeIDContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldCargoTypeID, v))
}

// LoadPortIDEQ applies the EQ predicate on the "load_port_id" field.
func LoadPortIDEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldLoadPortID, v))
}

// LoadPortIDNEQ applies the NEQ predicate on the "load_port_id" field.
func LoadPortIDNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldLoadPortID, v))
}

// LoadPortIDIn applies the In predicate on the "load_port_id" field.
func LoadPortIDIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldLoadPortID, vs...))
}

// LoadPortIDNotIn applies the NotIn predicate on the "load_port_id" field.
func LoadPortIDNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldLoadPortID, vs...))
}

// LoadPortIDGT applies the GT predicate on the "load_port_id" field.
func LoadPortIDGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldLoadPortID, v))
}

// LoadPortIDGTE applies the GTE predicate on the "load_port_id" field.
func LoadPortIDGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldLoadPortID, v))
}

// LoadPortIDLT applies the LT predicate on the "load_port_id" field.
func LoadPortIDLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldLoadPortID, v))
}

// LoadPortIDLTE applies the LTE predicate on the "load_port_id" field.
func LoadPortIDLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldLoadPortID, v))
}

// LoadPortIDContains applies the Contains predicate on the "load_port_id" field.
func LoadPortIDContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldLoadPortID, v))
}

// LoadPortIDHasPrefix applies the HasPrefix predicate on the "load_port_id" field.
func LoadPortIDHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldLoadPortID, v))
}

// LoadPortIDHasSuffix applies the HasSuffix predicate on the "load_port_id" field.
func LoadPortIDHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldLoadPortID, v))
}

// LoadPortIDIsNil applies the IsNil predicate on the "load_port_id" field.
func LoadPortIDIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldLoadPortID))
}

// LoadPortIDNotNil applies the NotNil predicate on the "load_port_id" field.
func LoadPortIDNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldLoadPortID))
}

// LoadPortIDEqualFold applies the EqualFold predicate on the "load_port_id" field.
func LoadPortIDEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldLoadPortID, v))
}

// LoadPortIDContainsFold applies the ContainsFold predicate on the "load_port_id" field.
func LoadPortIDContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldLoadPortID, v))
}

// DischargePortIDEQ applies the EQ predicate on the "discharge_port_id" field.
func DischargePortIDEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldDischargePortID, v))
}

// DischargePortIDNEQ applies the NEQ predicate on the "discharge_port_id" field.
func DischargePortIDNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldDischargePortID, v))
}

// DischargePortIDIn applies the In predicate on the "discharge_port_id" field.
func DischargePortIDIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldDischargePortID, vs...))
}

// DischargePortIDNotIn applies the NotIn predicate on the "discharge_port_id" field.
func DischargePortIDNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldDischargePortID, vs...))
}

// DischargePortIDGT applies the GT predicate on the "discharge_port_id" field.
func DischargePortIDGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldDischargePortID, v))
}

// DischargePortIDGTE applies the GTE predicate on the "discharge_port_id" field.
func DischargePortIDGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldDischargePortID, v))
}

// DischargePortIDLT applies the LT predicate on the "discharge_port_id" field.
func DischargePortIDLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldDischargePortID, v))
}

// DischargePortIDLTE applies the LTE predicate on the "discharge_port_id" field.
func DischargePortIDLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldDischargePortID, v))
}

// DischargePortIDContains applies the Contains predicate on the "discharge_port_id" field.
func DischargePortIDContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldDischargePortID, v))
}

// DischargePortIDHasPrefix applies the HasPrefix predicate on the "discharge_port_id" field.
func DischargePortIDHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldDischargePortID, v))
}

// DischargePortIDHasSuffix applies the HasSuffix predicate on the "discharge_port_id" field.
func DischargePortIDHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldDischargePortID, v))
}

// DischargePortIDIsNil applies the IsNil predicate on the "discharge_port_id" field.
func DischargePortIDIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldDischargePortID))
}

// DischargePortIDNotNil applies the NotNil predicate on the "discharge_port_id" field.
func DischargePortIDNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldDischargePortID))
}

// DischargePortIDEqualFold applies the EqualFold predicate on the "discharge_port_id" field.
func DischargePortIDEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldDischargePortID, v))
}

// DischargePortIDContainsFold applies the ContainsFold predicate on the "discharge_port_id" field.
func DischargePortIDContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldDischargePortID, v))
}

// LaycanStartEQ applies the EQ predicate on the "laycan_start" field.
func LaycanStartEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldLaycanStart, v))
}

// LaycanStartNEQ applies the NEQ predicate on the "laycan_start" field.
func LaycanStartNEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldLaycanStart, v))
}

// LaycanStartIn applies the In predicate on the "laycan_start" field.
func LaycanStartIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldLaycanStart, vs...))
}

// LaycanStartNotIn applies the NotIn predicate on the "laycan_start" field.
func LaycanStartNotIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldLaycanStart, vs...))
}

// LaycanStartGT applies the GT predicate on the "laycan_start" field.
func LaycanStartGT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldLaycanStart, v))
}

// LaycanStartGTE applies the GTE predicate on the "laycan_start" field.
func LaycanStartGTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldLaycanStart, v))
}

// LaycanStartLT applies the LT predicate on the "laycan_start" field.
func LaycanStartLT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldLaycanStart, v))
}

// LaycanStartLTE applies the LTE predicate on the "laycan_start" field.
func LaycanStartLTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldLaycanStart, v))
}

// LaycanStartIsNil applies the IsNil predicate on the "laycan_start" field.
func LaycanStartIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldLaycanStart))
}

// LaycanStartNotNil applies the NotNil predicate on the "laycan_start" field.
func LaycanStartNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldLaycanStart))
}

// LaycanEndEQ applies the EQ predicate on the "laycan_end" field.
func LaycanEndEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldLaycanEnd, v))
}

// LaycanEndNEQ applies the NEQ predicate on the "laycan_end" field.
func LaycanEndNEQ(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldLaycanEnd, v))
}

// LaycanEndIn applies the In predicate on the "laycan_end" field.
func LaycanEndIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldLaycanEnd, vs...))
}

// LaycanEndNotIn applies the NotIn predicate on the "laycan_end" field.
func LaycanEndNotIn(vs ...time.Time) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldLaycanEnd, vs...))
}

// LaycanEndGT applies the GT predicate on the "laycan_end" field.
func LaycanEndGT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldLaycanEnd, v))
}

// LaycanEndGTE applies the GTE predicate on the "laycan_end" field.
func LaycanEndGTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldLaycanEnd, v))
}

// LaycanEndLT applies the LT predicate on the "laycan_end" field.
func LaycanEndLT(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldLaycanEnd, v))
}

// LaycanEndLTE applies the LTE predicate on the "laycan_end" field.
func LaycanEndLTE(v time.Time) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldLaycanEnd, v))
}

// LaycanEndIsNil applies the IsNil predicate on the "laycan_end" field.
func LaycanEndIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldLaycanEnd))
}

// LaycanEndNotNil applies the NotNil predicate on the "laycan_end" field.
func LaycanEndNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldLaycanEnd))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v float64) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v float64) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...float64) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...float64) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v float64) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v float64) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v float64) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v float64) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldQuantity, v))
}

// QuantityIsNil applies the IsNil predicate on the "quantity" field.
func QuantityIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldQuantity))
}

// QuantityNotNil applies the NotNil predicate on the "quantity" field.
func QuantityNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldQuantity))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Order {
	return predicate.Order(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Order {
	return predicate.Order(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldNotes, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.Order {
	return predicate.Order(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.Order {
	return predicate.Order(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.Order {
	return predicate.Order(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.Order {
	return predicate.Order(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.Order {
	return predicate.Order(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.Order {
	return predicate.Order(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.Order {
	return predicate.Order(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.Order {
	return predicate.Order(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.Order {
	return predicate.Order(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.Order {
	return predicate.Order(sql.FieldContainsFold(FieldCreatedBy, v))
}

// HasNegotiations applies the HasEdge predicate on the "negotiations" edge.
func HasNegotiations() predicate.Order {
	return predicate.Order(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, NegotiationsTable, NegotiationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasNegotiationsWith applies the HasEdge predicate on the "negotiations" edge with a given conditions (other predicates).
func HasNegotiationsWith(preds ...predicate.Negotiation) predicate.Order {
	return predicate.Order(func(s *sql.Selector) {
		step := newNegotiationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFixtures applies the HasEdge predicate on the "fixtures" edge.
func HasFixtures() predicate.Order {
	return predicate.Order(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FixturesTable, FixturesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFixturesWith applies the HasEdge predicate on the "fixtures" edge with a given conditions (other predicates).
func HasFixturesWith(preds ...predicate.Fixture) predicate.Order {
	return predicate.Order(func(s *sql.Selector) {
		step := newFixturesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Order) predicate.Order {
	return predicate.Order(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Order) predicate.Order {
	return predicate.Order(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Order) predicate.Order {
	return predicate.Order(sql.NotPredicates(p))
}
