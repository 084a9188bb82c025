package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FieldChange holds the schema definition for the FieldChange entity.
// Append-only per-field audit record. Never mutated; deleted only by the
// administrative bulk-clear mutation.
type FieldChange struct {
	ent.Schema
}

// Mixin of the FieldChange.
func (FieldChange) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // Append-only: created_at only
	}
}

// Fields of the FieldChange.
func (FieldChange) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("entity_type").
			NotEmpty().
			Immutable(), // e.g. "contract", "recap", "negotiation"
		field.String("entity_id").
			NotEmpty().
			Immutable(),
		field.String("field_name").
			NotEmpty().
			Immutable(),
		field.String("old_value").
			Optional().
			Nillable().
			Immutable(),
		field.String("new_value").
			Optional().
			Nillable().
			Immutable(),
		field.String("user_id").
			Optional().
			Immutable(),
		field.String("reason").
			Optional().
			Immutable(),
	}
}

// Indexes of the FieldChange.
func (FieldChange) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_type", "entity_id"),
		index.Fields("user_id"),
		index.Fields("created_at"),
	}
}
