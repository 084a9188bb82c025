package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Approval holds the schema definition for the Approval entity.
// Simple flow: pending → approved or pending → rejected.
type Approval struct {
	ent.Schema
}

// Mixin of the Approval.
func (Approval) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Approval.
func (Approval) Fields() []ent.Field {
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
		field.Enum("status").
			Values("pending", "approved", "rejected").
			Default("pending"),
		field.String("requested_by").
			NotEmpty().
			Immutable(),
		field.String("decided_by").
			Optional(),
		field.Text("note").
			Optional(),
		field.Time("decided_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Approval.
func (Approval) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_type", "entity_id"),
		index.Fields("status"),
	}
}
