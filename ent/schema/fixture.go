package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Fixture holds the schema definition for the Fixture entity.
// Groups contracts and recap managers originating from at most one order.
//
// last_updated and search_text are derived columns maintained by
// service.RecomputeFixtureDerived. They stay nil until the first recompute.
type Fixture struct {
	ent.Schema
}

// Mixin of the Fixture.
func (Fixture) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Fixture.
func (Fixture) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("fixture_number").
			NotEmpty().
			Immutable(),
		field.Enum("status").
			Values("draft", "working-copy", "final", "on-subs", "fully-fixed", "canceled").
			Default("draft"),
		field.Time("last_updated").
			Optional().
			Nillable(),
		field.Text("search_text").
			Optional().
			Nillable(),
	}
}

// Edges of the Fixture.
func (Fixture) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("order", Order.Type).
			Ref("fixtures").
			Unique(),
		edge.To("contracts", Contract.Type),
		edge.To("recaps", RecapManager.Type),
	}
}

// Indexes of the Fixture.
func (Fixture) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("fixture_number").Unique(),
		index.Fields("status"),
	}
}
