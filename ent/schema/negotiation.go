package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Negotiation holds the schema definition for the Negotiation entity.
// One counterparty's bid/offer against an order. The first/highest/lowest
// indication analytics are populated by out-of-scope logic and never
// recomputed by the fixture rollup.
type Negotiation struct {
	ent.Schema
}

// Mixin of the Negotiation.
func (Negotiation) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Negotiation.
func (Negotiation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("negotiation_number").
			NotEmpty().
			Immutable(),
		field.String("company_id").
			Optional(), // Counterparty
		field.String("vessel_id").
			Optional(),
		field.Enum("status").
			Values("indication", "firm", "on-subs", "fixed", "failed").
			Default("indication"),
		field.Float("freight_rate").
			Optional(), // Current indication, USD/mt or WS points
		field.Float("first_indication").
			Optional(),
		field.Float("highest_indication").
			Optional(),
		field.Float("lowest_indication").
			Optional(),
		field.String("market_index").
			Optional(), // e.g. "BDI", "WS"
		field.String("delivery_type").
			Optional(), // e.g. "DOP", "APS"
		field.String("created_by").
			NotEmpty(),
	}
}

// Edges of the Negotiation.
func (Negotiation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("order", Order.Type).
			Ref("negotiations").
			Unique().
			Required(),
	}
}

// Indexes of the Negotiation.
func (Negotiation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("negotiation_number"),
		index.Fields("status"),
	}
}
