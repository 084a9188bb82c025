package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Addendum holds the schema definition for the Addendum entity.
// Amendment to a contract or recap manager. Not part of the fixture rollup.
type Addendum struct {
	ent.Schema
}

// Mixin of the Addendum.
func (Addendum) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Addendum.
func (Addendum) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("addendum_number").
			NotEmpty(),
		field.String("contract_id").
			Optional(),
		field.String("recap_id").
			Optional(),
		field.Text("description").
			Optional(),
		field.Enum("status").
			Values("draft", "final").
			Default("draft"),
		field.String("created_by").
			NotEmpty(),
	}
}

// Indexes of the Addendum.
func (Addendum) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("contract_id"),
		index.Fields("recap_id"),
	}
}
