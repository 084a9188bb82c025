// Code generated by ent, DO NOT EDIT.

package signature

import (
	"time"

	"charterdesk.io/charterdesk/ent/predicate"
	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Signature {
	return predicate.Signature(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Signature {
	return predicate.Signature(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Signature {
	return predicate.Signature(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Signature {
	return predicate.Signature(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Signature {
	return predicate.Signature(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Signature {
	return predicate.Signature(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Signature {
	return predicate.Signature(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Signature {
	return predicate.Signature(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Signature {
	return predicate.Signature(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Signature {
	return predicate.Signature(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Signature {
	return predicate.Signature(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Signature {
	return predicate.Signature(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Signature {
	return predicate.Signature(sql.FieldEQ(FieldUpdatedAt, v))
}

// EntityID applies equality check predicate on the "entity_id" field. It's identical to EntityIDEQ.
func EntityID(v string) predicate.Signature {
	return predicate.Signature(sql.FieldEQ(FieldEntityID, v))
}

// SignerName applies equality check predicate on the "signer_name" field. It's identical to SignerNameEQ.
func SignerName(v string) predicate.Signature {
	return predicate.Signature(sql.FieldEQ(FieldSignerName, v))
}

// SignerEmail applies equality check predicate on the "signer_email" field. It's identical to SignerEmailEQ.
func SignerEmail(v string) predicate.Signature {
	return predicate.Signature(sql.FieldEQ(FieldSignerEmail, v))
}

// SignedAt applies equality check predicate on the "signed_at" field. It's identical to SignedAtEQ.
func SignedAt(v time.Time) predicate.Signature {
	return predicate.Signature(sql.FieldEQ(FieldSignedAt, v))
}

// DocumentStorageID applies equality check predicate on the "document_storage_id" field. It's identical to DocumentStorageIDEQ.
func DocumentStorageID(v string) predicate.Signature {
	return predicate.Signature(sql.FieldEQ(FieldDocumentStorageID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Signature {
	return predicate.Signature(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Signature {
	return predicate.Signature(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Signature {
	return predicate.Signature(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Signature {
	return predicate.Signature(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Signature {
	return predicate.Signature(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Signature {
	return predicate.Signature(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Signature {
	return predicate.Signature(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Signature {
	return predicate.Signature(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Signature {
	return predicate.Signature(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Signature {
	return predicate.Signature(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Signature {
	return predicate.Signature(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Signature {
	return predicate.Signature(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Signature {
	return predicate.Signature(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Signature {
	return predicate.Signature(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Signature {
	return predicate.Signature(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Signature {
	return predicate.Signature(sql.FieldLTE(FieldUpdatedAt, v))
}

// EntityTypeEQ applies the EQ predicate on the "entity_type" field.
func EntityTypeEQ(v EntityType) predicate.Signature {
	return predicate.Signature(sql.FieldEQ(FieldEntityType, v))
}

// EntityTypeNEQ applies the NEQ predicate on the "entity_type" field.
func EntityTypeNEQ(v EntityType) predicate.Signature {
	return predicate.Signature(sql.FieldNEQ(FieldEntityType, v))
}

// EntityTypeIn applies the In predicate on the "entity_type" field.
func EntityTypeIn(vs ...EntityType) predicate.Signature {
	return predicate.Signature(sql.FieldIn(FieldEntityType, vs...))
}

// EntityTypeNotIn applies the NotIn predicate on the "entity_type" field.
func EntityTypeNotIn(vs ...EntityType) predicate.Signature {
	return predicate.Signature(sql.FieldNotIn(FieldEntityType, vs...))
}

// EntityIDEQ applies the EQ predicate on the "entity_id" field.
func EntityIDEQ(v string) predicate.Signature {
	return predicate.Signature(sql.FieldEQ(FieldEntityID, v))
}

// EntityIDNEQ applies the NEQ predicate on the "entity_id" field.
func EntityIDNEQ(v string) predicate.Signature {
	return predicate.Signature(sql.FieldNEQ(FieldEntityID, v))
}

// EntityIDIn applies the In predicate on the "entity_id" field.
func EntityIDIn(vs ...string) predicate.Signature {
	return predicate.Signature(sql.FieldIn(FieldEntityID, vs...))
}

// EntityIDNotIn applies the NotIn predicate on the "entity_id" field.
func EntityIDNotIn(vs ...string) predicate.Signature {
	return predicate.Signature(sql.FieldNotIn(FieldEntityID, vs...))
}

// EntityIDGT applies the GT predicate on the "entity_id" field.
func EntityIDGT(v string) predicate.Signature {
	return predicate.Signature(sql.FieldGT(FieldEntityID, v))
}

// EntityIDGTE applies the GTE predicate on the "entity_id" field.
func EntityIDGTE(v string) predicate.Signature {
	return predicate.Signature(sql.FieldGTE(FieldEntityID, v))
}

// EntityIDLT applies the LT predicate on the "entity_id" field.
func EntityIDLT(v string) predicate.Signature {
	return predicate.Signature(sql.FieldLT(FieldEntityID, v))
}

// EntityIDLTE applies the LTE predicate on the "entity_id" field.
func EntityIDLTE(v string) predicate.Signature {
	return predicate.Signature(sql.FieldLTE(FieldEntityID, v))
}

// EntityIDContains applies the Contains predicate on the "entity_id" field.
func EntityIDContains(v string) predicate.Signature {
	return predicate.Signature(sql.FieldContains(FieldEntityID, v))
}

// EntityIDHasPrefix applies the HasPrefix predicate on the "entity_id" field.
func EntityIDHasPrefix(v string) predicate.Signature {
	return predicate.Signature(sql.FieldHasPrefix(FieldEntityID, v))
}

// EntityIDHasSuffix applies the HasSuffix predicate on the "entity_id" field.
func EntityIDHasSuffix(v string) predicate.Signature {
	return predicate.Signature(sql.FieldHasSuffix(FieldEntityID, v))
}

// EntityIDEqualFold applies the EqualFold predicate on the "entity_id" field.
func EntityIDEqualFold(v string) predicate.Signature {
	return predicate.Signature(sql.FieldEqualFold(FieldEntityID, v))
}

// EntityIDContainsFold applies the ContainsFold predicate on the "entity_id" field.
func EntityIDContainsFold(v string) predicate.Signature {
	return predicate.Signature(sql.FieldContainsFold(FieldEntityID, v))
}

// SignerNameEQ applies the EQ predicate on the "signer_name" field.
func SignerNameEQ(v string) predicate.Signature {
	return predicate.Signature(sql.FieldEQ(FieldSignerName, v))
}

// SignerNameNEQ applies the NEQ predicate on the "signer_name" field.
func SignerNameNEQ(v string) predicate.Signature {
	return predicate.Signature(sql.FieldNEQ(FieldSignerName, v))
}

// SignerNameIn applies the In predicate on the "signer_name" field.
func SignerNameIn(vs ...string) predicate.Signature {
	return predicate.Signature(sql.FieldIn(FieldSignerName, vs...))
}

// SignerNameNotIn applies the NotIn predicate on the "signer_name" field.
func SignerNameNotIn(vs ...string) predicate.Signature {
	return predicate.Signature(sql.FieldNotIn(FieldSignerName, vs...))
}

// SignerNameGT applies the GT predicate on the "signer_name" field.
func SignerNameGT(v string) predicate.Signature {
	return predicate.Signature(sql.FieldGT(FieldSignerName, v))
}

// SignerNameGTE applies the GTE predicate on the "signer_name" field.
func SignerNameGTE(v string) predicate.Signature {
	return predicate.Signature(sql.FieldGTE(FieldSignerName, v))
}

// SignerNameLT applies the LT predicate on the "signer_name" field.
func SignerNameLT(v string) predicate.Signature {
	return predicate.Signature(sql.FieldLT(FieldSignerName, v))
}

// SignerNameLTE applies the LTE predicate on the "signer_name" field.
func SignerNameLTE(v string) predicate.Signature {
	return predicate.Signature(sql.FieldLTE(FieldSignerName, v))
}

// SignerNameContains applies the Contains predicate on the "signer_name" field.
func SignerNameContains(v string) predicate.Signature {
	return predicate.Signature(sql.FieldContains(FieldSignerName, v))
}

// SignerNameHasPrefix applies the HasPrefix predicate on the "signer_name" field.
func SignerNameHasPrefix(v string) predicate.Signature {
	return predicate.Signature(sql.FieldHasPrefix(FieldSignerName, v))
}

// SignerNameHasSuffix applies the HasSuffix predicate on the "signer_name" field.
func SignerNameHasSuffix(v string) predicate.Signature {
	return predicate.Signature(sql.FieldHasSuffix(FieldSignerName, v))
}

// SignerNameEqualFold applies the EqualFold predicate on the "signer_name" field.
func SignerNameEqualFold(v string) predicate.Signature {
	return predicate.Signature(sql.FieldEqualFold(FieldSignerName, v))
}

// SignerNameContainsFold applies the ContainsFold predicate on the "signer_name" field.
func SignerNameContainsFold(v string) predicate.Signature {
	return predicate.Signature(sql.FieldContainsFold(FieldSignerName, v))
}

// SignerEmailEQ applies the EQ predicate on the "signer_email" field.
func SignerEmailEQ(v string) predicate.Signature {
	return predicate.Signature(sql.FieldEQ(FieldSignerEmail, v))
}

// SignerEmailNEQ applies the NEQ predicate on the "signer_email" field.
func SignerEmailNEQ(v string) predicate.Signature {
	return predicate.Signature(sql.FieldNEQ(FieldSignerEmail, v))
}

// SignerEmailIn applies the In predicate on the "signer_email" field.
func SignerEmailIn(vs ...string) predicate.Signature {
	return predicate.Signature(sql.FieldIn(FieldSignerEmail, vs...))
}

// SignerEmailNotIn applies the NotIn predicate on the "signer_email" field.
func SignerEmailNotIn(vs ...string) predicate.Signature {
	return predicate.Signature(sql.FieldNotIn(FieldSignerEmail, vs...))
}

// SignerEmailGT applies the GT predicate on the "signer_email" field.
func SignerEmailGT(v string) predicate.Signature {
	return predicate.Signature(sql.FieldGT(FieldSignerEmail, v))
}

// SignerEmailGTE applies the GTE predicate on the "signer_email" field.
func SignerEmailGTE(v string) predicate.Signature {
	return predicate.Signature(sql.FieldGTE(FieldSignerEmail, v))
}

// SignerEmailLT applies the LT predicate on the "signer_email" field.
func SignerEmailLT(v string) predicate.Signature {
	return predicate.Signature(sql.FieldLT(FieldSignerEmail, v))
}

// SignerEmailLTE applies the LTE predicate on the "signer_email" field.
func SignerEmailLTE(v string) predicate.Signature {
	return predicate.Signature(sql.FieldLTE(FieldSignerEmail, v))
}

// SignerEmailContains applies the Contains predicate on the "signer_email" field.
func SignerEmailContains(v string) predicate.Signature {
	return predicate.Signature(sql.FieldContains(FieldSignerEmail, v))
}

// SignerEmailHasPrefix applies the HasPrefix predicate on the "signer_email" field.
func SignerEmailHasPrefix(v string) predicate.Signature {
	return predicate.Signature(sql.FieldHasPrefix(FieldSignerEmail, v))
}

// SignerEmailHasSuffix applies the HasSuffix predicate on the "signer_email" field.
func SignerEmailHasSuffix(v string) predicate.Signature {
	return predicate.Signature(sql.FieldHasSuffix(FieldSignerEmail, v))
}

// SignerEmailIsNil applies the IsNil predicate on the "signer_email" field.
func SignerEmailIsNil() predicate.Signature {
	return predicate.Signature(sql.FieldIsNull(FieldSignerEmail))
}

// SignerEmailNotNil applies the NotNil predicate on the "signer_email" field.
func SignerEmailNotNil() predicate.Signature {
	return predicate.Signature(sql.FieldNotNull(FieldSignerEmail))
}

// SignerEmailEqualFold applies the EqualFold predicate on the "signer_email" field.
func SignerEmailEqualFold(v string) predicate.Signature {
	return predicate.Signature(sql.FieldEqualFold(FieldSignerEmail, v))
}

// SignerEmailContainsFold applies the ContainsFold predicate on the "signer_email" field.
func SignerEmailContainsFold(v string) predicate.Signature {
	return predicate.Signature(sql.FieldContainsFold(FieldSignerEmail, v))
}

// PartyEQ applies the EQ predicate on the "party" field.
func PartyEQ(v Party) predicate.Signature {
	return predicate.Signature(sql.FieldEQ(FieldParty, v))
}

// PartyNEQ applies the NEQ predicate on the "party" field.
func PartyNEQ(v Party) predicate.Signature {
	return predicate.Signature(sql.FieldNEQ(FieldParty, v))
}

// PartyIn applies the In predicate on the "party" field.
func PartyIn(vs ...Party) predicate.Signature {
	return predicate.Signature(sql.FieldIn(FieldParty, vs...))
}

// PartyNotIn applies the NotIn predicate on the "party" field.
func PartyNotIn(vs ...Party) predicate.Signature {
	return predicate.Signature(sql.FieldNotIn(FieldParty, vs...))
}

// SignedAtEQ applies the EQ predicate on the "signed_at" field.
func SignedAtEQ(v time.Time) predicate.Signature {
	return predicate.Signature(sql.FieldEQ(FieldSignedAt, v))
}

// SignedAtNEQ applies the NEQ predicate on the "signed_at" field.
func SignedAtNEQ(v time.Time) predicate.Signature {
	return predicate.Signature(sql.FieldNEQ(FieldSignedAt, v))
}

// SignedAtIn applies the In predicate on the "signed_at" field.
func SignedAtIn(vs ...time.Time) predicate.Signature {
	return predicate.Signature(sql.FieldIn(FieldSignedAt, vs...))
}

// SignedAtNotIn applies the NotIn predicate on the "signed_at" field.
func SignedAtNotIn(vs ...time.Time) predicate.Signature {
	return predicate.Signature(sql.FieldNotIn(FieldSignedAt, vs...))
}

// SignedAtGT applies the GT predicate on the "signed_at" field.
func SignedAtGT(v time.Time) predicate.Signature {
	return predicate.Signature(sql.FieldGT(FieldSignedAt, v))
}

// SignedAtGTE applies the GTE predicate on the "signed_at" field.
func SignedAtGTE(v time.Time) predicate.Signature {
	return predicate.Signature(sql.FieldGTE(FieldSignedAt, v))
}

// SignedAtLT applies the LT predicate on the "signed_at" field.
func SignedAtLT(v time.Time) predicate.Signature {
	return predicate.Signature(sql.FieldLT(FieldSignedAt, v))
}

// SignedAtLTE applies the LTE predicate on the "signed_at" field.
func SignedAtLTE(v time.Time) predicate.Signature {
	return predicate.Signature(sql.FieldLTE(FieldSignedAt, v))
}

// SignedAtIsNil applies the IsNil predicate on the "signed_at" field.
func SignedAtIsNil() predicate.Signature {
	return predicate.Signature(sql.FieldIsNull(FieldSignedAt))
}

// SignedAtNotNil applies the NotNil predicate on the "signed_at" field.
func SignedAtNotNil() predicate.Signature {
	return predicate.Signature(sql.FieldNotNull(FieldSignedAt))
}

// DocumentStorageIDEQ applies the EQ predicate on the "document_storage_id" field.
func DocumentStorageIDEQ(v string) predicate.Signature {
	return predicate.Signature(sql.FieldEQ(FieldDocumentStorageID, v))
}

// DocumentStorageIDNEQ applies the NEQ predicate on the "document_storage_id" field.
func DocumentStorageIDNEQ(v string) predicate.Signature {
	return predicate.Signature(sql.FieldNEQ(FieldDocumentStorageID, v))
}

// DocumentStorageIDIn applies the In predicate on the "document_storage_id" field.
func DocumentStorageIDIn(vs ...string) predicate.Signature {
	return predicate.Signature(sql.FieldIn(FieldDocumentStorageID, vs...))
}

// DocumentStorageIDNotIn applies the NotIn predicate on the "document_storage_id" field.
func DocumentStorageIDNotIn(vs ...string) predicate.Signature {
	return predicate.Signature(sql.FieldNotIn(FieldDocumentStorageID, vs...))
}

// DocumentStorageIDGT applies the GT predicate on the "document_storage_id" field.
func DocumentStorageIDGT(v string) predicate.Signature {
	return predicate.Signature(sql.FieldGT(FieldDocumentStorageID, v))
}

// DocumentStorageIDGTE applies the GTE predicate on the "document_storage_id" field.
func DocumentStorageIDGTE(v string) predicate.Signature {
	return predicate.Signature(sql.FieldGTE(FieldDocumentStorageID, v))
}

// DocumentStorageIDLT applies the LT predicate on the "document_storage_id" field.
func DocumentStorageIDLT(v string) predicate.Signature {
	return predicate.Signature(sql.FieldLT(FieldDocumentStorageID, v))
}

// DocumentStorageIDLTE applies the LTE predicate on the "document_storage_id" field.
func DocumentStorageIDLTE(v string) predicate.Signature {
	return predicate.Signature(sql.FieldLTE(FieldDocumentStorageID, v))
}

// DocumentStorageIDContains applies the Contains predicate on the "document_storage_id" field.
func DocumentStorageIDContains(v string) predicate.Signature {
	return predicate.Signature(sql.FieldContains(FieldDocumentStorageID, v))
}

// DocumentStorageIDHasPrefix applies the HasPrefix predicate on the "document_storage_id" field.
func DocumentStorageIDHasPrefix(v string) predicate.Signature {
	return predicate.Signature(sql.FieldHasPrefix(FieldDocumentStorageID, v))
}

// DocumentStorageIDHasSuffix applies the HasSuffix predicate on the "document_storage_id" field.
func DocumentStorageIDHasSuffix(v string) predicate.Signature {
	return predicate.Signature(sql.FieldHasSuffix(FieldDocumentStorageID, v))
}

// DocumentStorageIDIsNil applies the IsNil predicate on the "document_storage_id" field.
func DocumentStorageIDIsNil() predicate.Signature {
	return predicate.Signature(sql.FieldIsNull(FieldDocumentStorageID))
}

// DocumentStorageIDNotNil applies the NotNil predicate on the "document_storage_id" field.
func DocumentStorageIDNotNil() predicate.Signature {
	return predicate.Signature(sql.FieldNotNull(FieldDocumentStorageID))
}

// DocumentStorageIDEqualFold applies the EqualFold predicate on the "document_storage_id" field.
func DocumentStorageIDEqualFold(v string) predicate.Signature {
	return predicate.Signature(sql.FieldEqualFold(FieldDocumentStorageID, v))
}

// DocumentStorageIDContainsFold applies the ContainsFold predicate on the "document_storage_id" field.
func DocumentStorageIDContainsFold(v string) predicate.Signature {
	return predicate.Signature(sql.FieldContainsFold(FieldDocumentStorageID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Signature) predicate.Signature {
	return predicate.Signature(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Signature) predicate.Signature {
	return predicate.Signature(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Signature) predicate.Signature {
	return predicate.Signature(sql.NotPredicates(p))
}
