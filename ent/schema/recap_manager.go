package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RecapManager holds the schema definition for the RecapManager entity.
// Wet-market (spot/voyage) agreement, structurally parallel to Contract.
type RecapManager struct {
	ent.Schema
}

// Mixin of the RecapManager.
func (RecapManager) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the RecapManager.
func (RecapManager) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("recap_number").
			NotEmpty().
			Immutable(),
		field.String("order_id").
			Optional(),
		field.String("negotiation_id").
			Optional(),
		field.String("parent_recap_id").
			Optional(), // Voyage-under-COA hierarchy
		field.String("contract_type").
			Optional(),
		field.String("delivery_type").
			Optional(),
		field.String("market_index").
			Optional(), // e.g. "WS" flat-rate basis
		field.String("vessel_id").
			Optional(),
		field.String("company_id").
			Optional(),
		field.String("load_port_id").
			Optional(),
		field.String("discharge_port_id").
			Optional(),
		field.String("cargo_type_id").
			Optional(),
		field.Float("freight_rate").
			Optional(),
		field.Time("laycan_start").
			Optional().
			Nillable(),
		field.Time("laycan_end").
			Optional().
			Nillable(),
		field.Float("quantity").
			Optional(),
		field.Float("demurrage_rate").
			Optional(),
		field.Enum("status").
			Values("drafting", "review", "final", "signed", "canceled").
			Default("drafting"),
		field.String("created_by").
			NotEmpty(),
	}
}

// Edges of the RecapManager.
func (RecapManager) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("fixture", Fixture.Type).
			Ref("recaps").
			Unique(),
	}
}

// Indexes of the RecapManager.
func (RecapManager) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("recap_number"),
		index.Fields("status"),
		index.Fields("order_id"),
	}
}
