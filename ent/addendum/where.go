// Code generated by ent, DO NOT EDIT.

package addendum

import (
	"time"

	"charterdesk.io/charterdesk/ent/predicate"
	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Addendum {
	return predicate.Addendum(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Addendum {
	return predicate.Addendum(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Addendum {
	return predicate.Addendum(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Addendum {
	return predicate.Addendum(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Addendum {
	return predicate.Addendum(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Addendum {
	return predicate.Addendum(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Addendum {
	return predicate.Addendum(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Addendum {
	return predicate.Addendum(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Addendum {
	return predicate.Addendum(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Addendum {
	return predicate.Addendum(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Addendum {
	return predicate.Addendum(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Addendum {
	return predicate.Addendum(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Addendum {
	return predicate.Addendum(sql.FieldEQ(FieldUpdatedAt, v))
}

// AddendumNumber applies equality check predicate on the "addendum_number" field. It's identical to AddendumNumberEQ.
func AddendumNumber(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldEQ(FieldAddendumNumber, v))
}

// ContractID applies equality check predicate on the "contract_id" field. It's identical to ContractIDEQ.
func ContractID(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldEQ(FieldContractID, v))
}

// RecapID applies equality check predicate on the "recap_id" field. It's identical to RecapIDEQ.
func RecapID(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldEQ(FieldRecapID, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldEQ(FieldDescription, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Addendum {
	return predicate.Addendum(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Addendum {
	return predicate.Addendum(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Addendum {
	return predicate.Addendum(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Addendum {
	return predicate.Addendum(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Addendum {
	return predicate.Addendum(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Addendum {
	return predicate.Addendum(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Addendum {
	return predicate.Addendum(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Addendum {
	return predicate.Addendum(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Addendum {
	return predicate.Addendum(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Addendum {
	return predicate.Addendum(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Addendum {
	return predicate.Addendum(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Addendum {
	return predicate.Addendum(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Addendum {
	return predicate.Addendum(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Addendum {
	return predicate.Addendum(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Addendum {
	return predicate.Addendum(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Addendum {
	return predicate.Addendum(sql.FieldLTE(FieldUpdatedAt, v))
}

// AddendumNumberEQ applies the EQ predicate on the "addendum_number" field.
func AddendumNumberEQ(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldEQ(FieldAddendumNumber, v))
}

// AddendumNumberNEQ applies the NEQ predicate on the "addendum_number" field.
func AddendumNumberNEQ(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldNEQ(FieldAddendumNumber, v))
}

// AddendumNumberIn applies the In predicate on the "addendum_number" field.
func AddendumNumberIn(vs ...string) predicate.Addendum {
	return predicate.Addendum(sql.FieldIn(FieldAddendumNumber, vs...))
}

// AddendumNumberNotIn applies the NotIn predicate on the "addendum_number" field.
func AddendumNumberNotIn(vs ...string) predicate.Addendum {
	return predicate.Addendum(sql.FieldNotIn(FieldAddendumNumber, vs...))
}

// AddendumNumberGT applies the GT predicate on the "addendum_number" field.
func AddendumNumberGT(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldGT(FieldAddendumNumber, v))
}

// AddendumNumberGTE applies the GTE predicate on the "addendum_number" field.
func AddendumNumberGTE(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldGTE(FieldAddendumNumber, v))
}

// AddendumNumberLT applies the LT predicate on the "addendum_number" field.
func AddendumNumberLT(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldLT(FieldAddendumNumber, v))
}

// AddendumNumberLTE applies the LTE predicate on the "addendum_number" field.
func AddendumNumberLTE(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldLTE(FieldAddendumNumber, v))
}

// AddendumNumberContains applies the Contains predicate on the "addendum_number" field.
func AddendumNumberContains(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldContains(FieldAddendumNumber, v))
}

// AddendumNumberHasPrefix applies the HasPrefix predicate on the "addendum_number" field.
func AddendumNumberHasPrefix(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldHasPrefix(FieldAddendumNumber, v))
}

// AddendumNumberHasSuffix applies the HasSuffix predicate on the "addendum_number" field.
func AddendumNumberHasSuffix(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldHasSuffix(FieldAddendumNumber, v))
}

// AddendumNumberEqualFold applies the EqualFold predicate on the "addendum_number" field.
func AddendumNumberEqualFold(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldEqualFold(FieldAddendumNumber, v))
}

// AddendumNumberContainsFold applies the ContainsFold predicate on the "addendum_number" field.
func AddendumNumberContainsFold(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldContainsFold(FieldAddendumNumber, v))
}

// ContractIDEQ applies the EQ predicate on the "contract_id" field.
func ContractIDEQ(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldEQ(FieldContractID, v))
}

// ContractIDNEQ applies the NEQ predicate on the "contract_id" field.
func ContractIDNEQ(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldNEQ(FieldContractID, v))
}

// ContractIDIn applies the In predicate on the "contract_id" field.
func ContractIDIn(vs ...string) predicate.Addendum {
	return predicate.Addendum(sql.FieldIn(FieldContractID, vs...))
}

// ContractIDNotIn applies the NotIn predicate on the "contract_id" field.
func ContractIDNotIn(vs ...string) predicate.Addendum {
	return predicate.Addendum(sql.FieldNotIn(FieldContractID, vs...))
}

// ContractIDGT applies the GT predicate on the "contract_id" field.
func ContractIDGT(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldGT(FieldContractID, v))
}

// ContractIDGTE applies the GTE predicate on the "contract_id" field.
func ContractIDGTE(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldGTE(FieldContractID, v))
}

// ContractIDLT applies the LT predicate on the "contract_id" field.
func ContractIDLT(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldLT(FieldContractID, v))
}

// ContractIDLTE applies the LTE predicate on the "contract_id" field.
func ContractIDLTE(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldLTE(FieldContractID, v))
}

// ContractIDContains applies the Contains predicate on the "contract_id" field.
func ContractIDContains(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldContains(FieldContractID, v))
}

// ContractIDHasPrefix applies the HasPrefix predicate on the "contract_id" field.
func ContractIDHasPrefix(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldHasPrefix(FieldContractID, v))
}

// ContractIDHasSuffix applies the HasSuffix predicate on the "contract_id" field.
func ContractIDHasSuffix(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldHasSuffix(FieldContractID, v))
}

// ContractIDIsNil applies the IsNil predicate on the "contract_id" field.
func ContractIDIsNil() predicate.Addendum {
	return predicate.Addendum(sql.FieldIsNull(FieldContractID))
}

// ContractIDNotNil applies the NotNil predicate on the "contract_id" field.
func ContractIDNotNil() predicate.Addendum {
	return predicate.Addendum(sql.FieldNotNull(FieldContractID))
}

// ContractIDEqualFold applies the EqualFold predicate on the "contract_id" field.
func ContractIDEqualFold(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldEqualFold(FieldContractID, v))
}

// ContractIDContainsFold applies the ContainsFold predicate on the "contract_id" field.
func ContractIDContainsFold(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldContainsFold(FieldContractID, v))
}

// RecapIDEQ applies the EQ predicate on the "recap_id" field.
func RecapIDEQ(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldEQ(FieldRecapID, v))
}

// RecapIDNEQ applies the NEQ predicate on the "recap_id" field.
func RecapIDNEQ(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldNEQ(FieldRecapID, v))
}

// RecapIDIn applies the In predicate on the "recap_id" field.
func RecapIDIn(vs ...string) predicate.Addendum {
	return predicate.Addendum(sql.FieldIn(FieldRecapID, vs...))
}

// RecapIDNotIn applies the NotIn predicate on the "recap_id" field.
func RecapIDNotIn(vs ...string) predicate.Addendum {
	return predicate.Addendum(sql.FieldNotIn(FieldRecapID, vs...))
}

// RecapIDGT applies the GT predicate on the "recap_id" field.
func RecapIDGT(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldGT(FieldRecapID, v))
}

// RecapIDGTE applies the GTE predicate on the "recap_id" field.
func RecapIDGTE(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldGTE(FieldRecapID, v))
}

// RecapIDLT applies the LT predicate on the "recap_id" field.
func RecapIDLT(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldLT(FieldRecapID, v))
}

// RecapIDLTE applies the LTE predicate on the "recap_id" field.
func RecapIDLTE(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldLTE(FieldRecapID, v))
}

// RecapIDContains applies the Contains predicate on the "recap_id" field.
func RecapIDContains(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldContains(FieldRecapID, v))
}

// RecapIDHasPrefix applies the HasPrefix predicate on the "recap_id" field.
func RecapIDHasPrefix(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldHasPrefix(FieldRecapID, v))
}

// RecapIDHasSuffix applies the HasSuffix predicate on the "recap_id" field.
func RecapIDHasSuffix(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldHasSuffix(FieldRecapID, v))
}

// RecapIDIsNil applies the IsNil predicate on the "recap_id" field.
func RecapIDIsNil() predicate.Addendum {
	return predicate.Addendum(sql.FieldIsNull(FieldRecapID))
}

// RecapIDNotNil applies the NotNil predicate on the "recap_id" field.
func RecapIDNotNil() predicate.Addendum {
	return predicate.Addendum(sql.FieldNotNull(FieldRecapID))
}

// RecapIDEqualFold applies the EqualFold predicate on the "recap_id" field.
func RecapIDEqualFold(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldEqualFold(FieldRecapID, v))
}

// RecapIDContainsFold applies the ContainsFold predicate on the "recap_id" field.
func RecapIDContainsFold(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldContainsFold(FieldRecapID, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Addendum {
	return predicate.Addendum(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Addendum {
	return predicate.Addendum(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Addendum {
	return predicate.Addendum(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Addendum {
	return predicate.Addendum(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldContainsFold(FieldDescription, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Addendum {
	return predicate.Addendum(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Addendum {
	return predicate.Addendum(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Addendum {
	return predicate.Addendum(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Addendum {
	return predicate.Addendum(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.Addendum {
	return predicate.Addendum(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.Addendum {
	return predicate.Addendum(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.Addendum {
	return predicate.Addendum(sql.FieldContainsFold(FieldCreatedBy, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Addendum) predicate.Addendum {
	return predicate.Addendum(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Addendum) predicate.Addendum {
	return predicate.Addendum(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Addendum) predicate.Addendum {
	return predicate.Addendum(sql.NotPredicates(p))
}
