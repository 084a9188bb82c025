package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Order holds the schema definition for the Order entity.
// Top-level trading intent; parents negotiations and fixtures.
type Order struct {
	ent.Schema
}

// Mixin of the Order.
func (Order) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Order.
func (Order) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("order_number").
			NotEmpty().
			Immutable(),
		field.String("organization_id").
			Optional(),
		field.Enum("market").
			Values("dry", "wet").
			Default("dry"),
		field.Enum("status").
			Values("draft", "active", "closed", "canceled").
			Default("draft"),
		field.String("cargo_type_id").
			Optional(),
		field.String("load_port_id").
			Optional(),
		field.String("discharge_port_id").
			Optional(),
		field.Time("laycan_start").
			Optional().
			Nillable(),
		field.Time("laycan_end").
			Optional().
			Nillable(),
		field.Float("quantity").
			Optional(), // Metric tons
		field.Text("notes").
			Optional(),
		field.String("created_by").
			NotEmpty(),
	}
}

// Edges of the Order.
func (Order) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("negotiations", Negotiation.Type),
		edge.To("fixtures", Fixture.Type),
	}
}

// Indexes of the Order.
func (Order) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("order_number").Unique(),
		index.Fields("status"),
		index.Fields("organization_id"),
	}
}
