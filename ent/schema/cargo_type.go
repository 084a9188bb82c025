package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CargoType holds the schema definition for the CargoType entity.
type CargoType struct {
	ent.Schema
}

// Mixin of the CargoType.
func (CargoType) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the CargoType.
func (CargoType) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty().
			MaxLen(255),
		field.String("category").
			Optional(), // e.g. "grain", "coal", "crude", "clean products"
		field.Bool("active").
			Default(true),
	}
}

// Indexes of the CargoType.
func (CargoType) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").Unique(),
	}
}
