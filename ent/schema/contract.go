package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Contract holds the schema definition for the Contract entity.
// Dry-market charter party. parent_contract_id links a voyage contract to
// its COA parent.
type Contract struct {
	ent.Schema
}

// Mixin of the Contract.
func (Contract) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Contract.
func (Contract) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("cp_number").
			NotEmpty().
			Immutable(),
		field.String("order_id").
			Optional(),
		field.String("negotiation_id").
			Optional(),
		field.String("parent_contract_id").
			Optional(),
		field.String("contract_type").
			Optional(), // e.g. "voyage", "time-charter", "coa"
		field.String("delivery_type").
			Optional(),
		field.String("vessel_id").
			Optional(),
		field.String("company_id").
			Optional(), // Counterparty
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
			Optional(), // USD/day
		field.Enum("status").
			Values("drafting", "review", "final", "signed", "canceled").
			Default("drafting"),
		field.String("created_by").
			NotEmpty(),
	}
}

// Edges of the Contract.
func (Contract) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("fixture", Fixture.Type).
			Ref("contracts").
			Unique(),
	}
}

// Indexes of the Contract.
func (Contract) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("cp_number"),
		index.Fields("status"),
		index.Fields("order_id"),
	}
}
