package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Invitation holds the schema definition for the Invitation entity.
// State machine: pending → accepted | expired | revoked. Expiry is lazy,
// checked on read/accept rather than by a background sweep.
type Invitation struct {
	ent.Schema
}

// Mixin of the Invitation.
func (Invitation) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Invitation.
func (Invitation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("email").
			NotEmpty().
			MaxLen(255),
		field.Enum("role").
			Values("admin", "broker", "operator").
			Default("broker"),
		field.Enum("status").
			Values("pending", "accepted", "expired", "revoked").
			Default("pending"),
		field.String("token").
			NotEmpty().
			Sensitive(),
		field.Time("expires_at"),
		field.String("invited_by").
			NotEmpty(),
		field.Time("accepted_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Invitation.
func (Invitation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("organization", Organization.Type).
			Ref("invitations").
			Unique().
			Required(),
	}
}

// Indexes of the Invitation.
func (Invitation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("token").Unique(),
		index.Fields("email"),
		index.Fields("status"),
	}
}
