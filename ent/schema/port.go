package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Port holds the schema definition for the Port entity.
type Port struct {
	ent.Schema
}

// Mixin of the Port.
func (Port) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Port.
func (Port) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty().
			MaxLen(255),
		field.String("country").
			Optional(),
		field.String("unlocode").
			Optional(), // UN/LOCODE, e.g. "NLRTM"
		field.Bool("active").
			Default(true),
	}
}

// Indexes of the Port.
func (Port) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("unlocode"),
		index.Fields("name"),
	}
}
