package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Notification holds the schema definition for the Notification entity.
// Database-backed in-app inbox. Notifications are synchronous writes within
// the same transaction as the business operation that triggers them.
type Notification struct {
	ent.Schema
}

// Mixin of the Notification.
func (Notification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // created_at only; read/read_at are the only mutable bits
	}
}

// Fields of the Notification.
func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Enum("type").
			Values(
				"APPROVAL_REQUESTED",
				"APPROVAL_DECIDED",
				"INVITATION_ACCEPTED",
				"CONTRACT_SIGNED",
			),
		field.String("title").
			NotEmpty().
			MaxLen(255),
		field.String("message").
			NotEmpty().
			MaxLen(2048),
		field.String("resource_type").
			Optional(), // Related entity type for navigation
		field.String("resource_id").
			Optional(),
		field.Bool("read").
			Default(false),
		field.Time("read_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Notification.
func (Notification) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("notifications").
			Unique().
			Required(),
	}
}

// Indexes of the Notification.
func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("user").Fields("read"),
		index.Edges("user").Fields("created_at"),
		index.Fields("created_at"),
	}
}
