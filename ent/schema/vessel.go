package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Vessel holds the schema definition for the Vessel entity.
type Vessel struct {
	ent.Schema
}

// Mixin of the Vessel.
func (Vessel) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Vessel.
func (Vessel) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty().
			MaxLen(255),
		field.String("imo_number").
			Optional(), // 7-digit IMO; verified vessels always carry one
		field.String("vessel_type").
			Optional(), // e.g. "panamax", "aframax", "handysize"
		field.Float("dwt").
			Optional(), // Deadweight tonnage
		field.Int("built_year").
			Optional(),
		field.String("flag").
			Optional(),
		field.Bool("verified").
			Default(false),
	}
}

// Indexes of the Vessel.
func (Vessel) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("imo_number").Unique(),
		index.Fields("name"),
	}
}
