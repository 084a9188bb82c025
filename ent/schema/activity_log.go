package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActivityLog holds the schema definition for the ActivityLog entity.
// Append-only human-readable event log. The snapshot column carries the
// point-in-time contract terms for negotiation events; it is a display
// convenience, absent whenever the lookup fails.
type ActivityLog struct {
	ent.Schema
}

// Mixin of the ActivityLog.
func (ActivityLog) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the ActivityLog.
func (ActivityLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("entity_type").
			NotEmpty().
			Immutable(),
		field.String("entity_id").
			NotEmpty().
			Immutable(),
		field.String("action").
			NotEmpty().
			Immutable(), // e.g. "contract.create", "negotiation.status_change"
		field.Text("description").
			NotEmpty().
			Immutable(),
		field.String("status").
			Optional().
			Immutable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(), // Residual free-form context
		field.JSON("snapshot", map[string]interface{}{}).
			Optional(), // Typed audit.ContractSnapshot, serialized
		field.String("user_id").
			Optional().
			Immutable(),
	}
}

// Indexes of the ActivityLog.
func (ActivityLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_type", "entity_id"),
		index.Fields("user_id"),
		index.Fields("created_at"),
	}
}
