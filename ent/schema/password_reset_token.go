package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PasswordResetToken holds the schema definition for the PasswordResetToken
// entity. Single-use with expiry; requesting a new token marks all prior
// unused tokens for the user as used, so at most one token is live per user.
type PasswordResetToken struct {
	ent.Schema
}

// Mixin of the PasswordResetToken.
func (PasswordResetToken) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the PasswordResetToken.
func (PasswordResetToken) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("token").
			NotEmpty().
			Sensitive(),
		field.Time("expires_at"),
		field.Bool("used").
			Default(false),
		field.Time("used_at").
			Optional().
			Nillable(),
	}
}

// Edges of the PasswordResetToken.
func (PasswordResetToken) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("reset_tokens").
			Unique().
			Required(),
	}
}

// Indexes of the PasswordResetToken.
func (PasswordResetToken) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("token").Unique(),
		index.Fields("used"),
	}
}
