package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Signature holds the schema definition for the Signature entity.
// One row per signing party on a contract or recap.
type Signature struct {
	ent.Schema
}

// Mixin of the Signature.
func (Signature) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Signature.
func (Signature) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Enum("entity_type").
			Values("contract", "recap").
			Immutable(),
		field.String("entity_id").
			NotEmpty().
			Immutable(),
		field.String("signer_name").
			NotEmpty(),
		field.String("signer_email").
			Optional(),
		field.Enum("party").
			Values("owner", "charterer", "broker").
			Default("broker"),
		field.Time("signed_at").
			Optional().
			Nillable(),
		field.String("document_storage_id").
			Optional(), // Signed document in object storage
	}
}

// Indexes of the Signature.
func (Signature) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_type", "entity_id"),
	}
}
