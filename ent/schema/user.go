package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
// Local accounts only: one identity provider (bcrypt + JWT), no SSO shims.
type User struct {
	ent.Schema
}

// Mixin of the User.
func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("email").
			NotEmpty().
			MaxLen(255),
		field.String("name").
			NotEmpty().
			MaxLen(255),
		field.String("password_hash").
			Optional().
			Sensitive(),
		field.Enum("role").
			Values("admin", "broker", "operator").
			Default("broker"),
		field.String("avatar_storage_id").
			Optional(), // Opaque object storage reference
		field.Bool("active").
			Default(true),
		field.Time("last_login_at").
			Optional().
			Nillable(),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("organization", Organization.Type).
			Ref("users").
			Unique(),
		edge.To("notifications", Notification.Type),
		edge.To("reset_tokens", PasswordResetToken.Type),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
	}
}
