// Code generated by ent, DO NOT EDIT.

package fixture

import (
	"time"

	"charterdesk.io/charterdesk/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Fixture {
	return predicate.Fixture(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Fixture {
	return predicate.Fixture(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Fixture {
	return predicate.Fixture(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Fixture {
	return predicate.Fixture(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Fixture {
	return predicate.Fixture(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Fixture {
	return predicate.Fixture(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Fixture {
	return predicate.Fixture(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Fixture {
	return predicate.Fixture(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Fixture {
	return predicate.Fixture(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Fixture {
	return predicate.Fixture(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Fixture {
	return predicate.Fixture(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Fixture {
	return predicate.Fixture(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Fixture {
	return predicate.Fixture(sql.FieldEQ(FieldUpdatedAt, v))
}

// FixtureNumber applies equality check predicate on the "fixture_number" field. It's identical to FixtureNumberEQ.
func FixtureNumber(v string) predicate.Fixture {
	return predicate.Fixture(sql.FieldEQ(FieldFixtureNumber, v))
}

// LastUpdated applies equality check predicate on the "last_updated" field. It's identical to LastUpdatedEQ.
func LastUpdated(v time.Time) predicate.Fixture {
	return predicate.Fixture(sql.FieldEQ(FieldLastUpdated, v))
}

// SearchText applies equality check predicate on the "search_text" field. It's identical to SearchTextEQ.
func SearchText(v string) predicate.Fixture {
	return predicate.Fixture(sql.FieldEQ(FieldSearchText, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Fixture {
	return predicate.Fixture(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Fixture {
	return predicate.Fixture(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Fixture {
	return predicate.Fixture(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Fixture {
	return predicate.Fixture(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Fixture {
	return predicate.Fixture(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Fixture {
	return predicate.Fixture(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Fixture {
	return predicate.Fixture(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Fixture {
	return predicate.Fixture(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Fixture {
	return predicate.Fixture(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Fixture {
	return predicate.Fixture(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Fixture {
	return predicate.Fixture(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Fixture {
	return predicate.Fixture(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Fixture {
	return predicate.Fixture(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Fixture {
	return predicate.Fixture(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Fixture {
	return predicate.Fixture(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Fixture {
	return predicate.Fixture(sql.FieldLTE(FieldUpdatedAt, v))
}

// FixtureNumberEQ applies the EQ predicate on the "fixture_number" field.
func FixtureNumberEQ(v string) predicate.Fixture {
	return predicate.Fixture(sql.FieldEQ(FieldFixtureNumber, v))
}

// FixtureNumberNEQ applies the NEQ predicate on the "fixture_number" field.
func FixtureNumberNEQ(v string) predicate.Fixture {
	return predicate.Fixture(sql.FieldNEQ(FieldFixtureNumber, v))
}

// FixtureNumberIn applies the In predicate on the "fixture_number" field.
func FixtureNumberIn(vs ...string) predicate.Fixture {
	return predicate.Fixture(sql.FieldIn(FieldFixtureNumber, vs...))
}

// FixtureNumberNotIn applies the NotIn predicate on the "fixture_number" field.
func FixtureNumberNotIn(vs ...string) predicate.Fixture {
	return predicate.Fixture(sql.FieldNotIn(FieldFixtureNumber, vs...))
}

// FixtureNumberGT applies the GT predicate on the "fixture_number" field.
func FixtureNumberGT(v string) predicate.Fixture {
	return predicate.Fixture(sql.FieldGT(FieldFixtureNumber, v))
}

// FixtureNumberGTE applies the GTE predicate on the "fixture_number" field.
func FixtureNumberGTE(v string) predicate.Fixture {
	return predicate.Fixture(sql.FieldGTE(FieldFixtureNumber, v))
}

// FixtureNumberLT applies the LT predicate on the "fixture_number" field.
func FixtureNumberLT(v string) predicate.Fixture {
	return predicate.Fixture(sql.FieldLT(FieldFixtureNumber, v))
}

// FixtureNumberLTE applies the LTE predicate on the "fixture_number" field.
func FixtureNumberLTE(v string) predicate.Fixture {
	return predicate.Fixture(sql.FieldLTE(FieldFixtureNumber, v))
}

// FixtureNumberContains applies the Contains predicate on the "fixture_number" field.
func FixtureNumberContains(v string) predicate.Fixture {
	return predicate.Fixture(sql.FieldContains(FieldFixtureNumber, v))
}

// FixtureNumberHasPrefix applies the HasPrefix predicate on the "fixture_number" field.
func FixtureNumberHasPrefix(v string) predicate.Fixture {
	return predicate.Fixture(sql.FieldHasPrefix(FieldFixtureNumber, v))
}

// FixtureNumberHasSuffix applies the HasSuffix predicate on the "fixture_number" field.
func FixtureNumberHasSuffix(v string) predicate.Fixture {
	return predicate.Fixture(sql.FieldHasSuffix(FieldFixtureNumber, v))
}

// FixtureNumberEqualFold applies the EqualFold predicate on the "fixture_number" field.
func FixtureNumberEqualFold(v string) predicate.Fixture {
	return predicate.Fixture(sql.FieldEqualFold(FieldFixtureNumber, v))
}

// FixtureNumberContainsFold applies the ContainsFold predicate on the "fixture_number" field.
func FixtureNumberContainsFold(v string) predicate.Fixture {
	return predicate.Fixture(sql.FieldContainsFold(FieldFixtureNumber, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Fixture {
	return predicate.Fixture(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Fixture {
	return predicate.Fixture(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Fixture {
	return predicate.Fixture(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Fixture {
	return predicate.Fixture(sql.FieldNotIn(FieldStatus, vs...))
}

// LastUpdatedEQ applies the EQ predicate on the "last_updated" field.
func LastUpdatedEQ(v time.Time) predicate.Fixture {
	return predicate.Fixture(sql.FieldEQ(FieldLastUpdated, v))
}

// LastUpdatedNEQ applies the NEQ predicate on the "last_updated" field.
func LastUpdatedNEQ(v time.Time) predicate.Fixture {
	return predicate.Fixture(sql.FieldNEQ(FieldLastUpdated, v))
}

// LastUpdatedIn applies the In predicate on the "last_updated" field.
func LastUpdatedIn(vs ...time.Time) predicate.Fixture {
	return predicate.Fixture(sql.FieldIn(FieldLastUpdated, vs...))
}

// LastUpdatedNotIn applies the NotIn predicate on the "last_updated" field.
func LastUpdatedNotIn(vs ...time.Time) predicate.Fixture {
	return predicate.Fixture(sql.FieldNotIn(FieldLastUpdated, vs...))
}

// LastUpdatedGT applies the GT predicate on the "last_updated" field.
func LastUpdatedGT(v time.Time) predicate.Fixture {
	return predicate.Fixture(sql.FieldGT(FieldLastUpdated, v))
}

// LastUpdatedGTE applies the GTE predicate on the "last_updated" field.
func LastUpdatedGTE(v time.Time) predicate.Fixture {
	return predicate.Fixture(sql.FieldGTE(FieldLastUpdated, v))
}

// LastUpdatedLT applies the LT predicate on the "last_updated" field.
func LastUpdatedLT(v time.Time) predicate.Fixture {
	return predicate.Fixture(sql.FieldLT(FieldLastUpdated, v))
}

// LastUpdatedLTE applies the LTE predicate on the "last_updated" field.
func LastUpdatedLTE(v time.Time) predicate.Fixture {
	return predicate.Fixture(sql.FieldLTE(FieldLastUpdated, v))
}

// LastUpdatedIsNil applies the IsNil predicate on the "last_updated" field.
func LastUpdatedIsNil() predicate.Fixture {
	return predicate.Fixture(sql.FieldIsNull(FieldLastUpdated))
}

// LastUpdatedNotNil applies the NotNil predicate on the "last_updated" field.
func LastUpdatedNotNil() predicate.Fixture {
	return predicate.Fixture(sql.FieldNotNull(FieldLastUpdated))
}

// SearchTextEQ applies the EQ predicate on the "search_text" field.
func SearchTextEQ(v string) predicate.Fixture {
	return predicate.Fixture(sql.FieldEQ(FieldSearchText, v))
}

// SearchTextNEQ applies the NEQ predicate on the "search_text" field.
func SearchTextNEQ(v string) predicate.Fixture {
	return predicate.Fixture(sql.FieldNEQ(FieldSearchText, v))
}

// SearchTextIn applies the In predicate on the "search_text" field.
func SearchTextIn(vs ...string) predicate.Fixture {
	return predicate.Fixture(sql.FieldIn(FieldSearchText, vs...))
}

// SearchTextNotIn applies the NotIn predicate on the "search_text" field.
func SearchTextNotIn(vs ...string) predicate.Fixture {
	return predicate.Fixture(sql.FieldNotIn(FieldSearchText, vs...))
}

// SearchTextGT applies the GT predicate on the "search_text" field.
func SearchTextGT(v string) predicate.Fixture {
	return predicate.Fixture(sql.FieldGT(FieldSearchText, v))
}

// SearchTextGTE applies the GTE predicate on the "search_text" field.
func SearchTextGTE(v string) predicate.Fixture {
	return predicate.Fixture(sql.FieldGTE(FieldSearchText, v))
}

// SearchTextLT applies the LT predicate on the "search_text" field.
func SearchTextLT(v string) predicate.Fixture {
	return predicate.Fixture(sql.FieldLT(FieldSearchText, v))
}

// SearchTextLTE applies the LTE predicate on the "search_text" field.
func SearchTextLTE(v string) predicate.Fixture {
	return predicate.Fixture(sql.FieldLTE(FieldSearchText, v))
}

// SearchTextContains applies the Contains predicate on the "search_text" field.
func SearchTextContains(v string) predicate.Fixture {
	return predicate.Fixture(sql.FieldContains(FieldSearchText, v))
}

// SearchTextHasPrefix applies the HasPrefix predicate on the "search_text" field.
func SearchTextHasPrefix(v string) predicate.Fixture {
	return predicate.Fixture(sql.FieldHasPrefix(FieldSearchText, v))
}

// SearchTextHasSuffix applies the HasSuffix predicate on the "search_text" field.
func SearchTextHasSuffix(v string) predicate.Fixture {
	return predicate.Fixture(sql.FieldHasSuffix(FieldSearchText, v))
}

// SearchTextIsNil applies the IsNil predicate on the "search_text" field.
func SearchTextIsNil() predicate.Fixture {
	return predicate.Fixture(sql.FieldIsNull(FieldSearchText))
}

// SearchTextNotNil applies the NotNil predicate on the "search_text" field.
func SearchTextNotNil() predicate.Fixture {
	return predicate.Fixture(sql.FieldNotNull(FieldSearchText))
}

// SearchTextEqualFold applies the EqualFold predicate on the "search_text" field.
func SearchTextEqualFold(v string) predicate.Fixture {
	return predicate.Fixture(sql.FieldEqualFold(FieldSearchText, v))
}

// SearchTextContainsFold applies the ContainsFold predicate on the "search_text" field.
func SearchTextContainsFold(v string) predicate.Fixture {
	return predicate.Fixture(sql.FieldContainsFold(FieldSearchText, v))
}

// HasOrder applies the HasEdge predicate on the "order" edge.
func HasOrder() predicate.Fixture {
	return predicate.Fixture(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OrderTable, OrderColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOrderWith applies the HasEdge predicate on the "order" edge with a given conditions (other predicates).
func HasOrderWith(preds ...predicate.Order) predicate.Fixture {
	return predicate.Fixture(func(s *sql.Selector) {
		step := newOrderStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasContracts applies the HasEdge predicate on the "contracts" edge.
func HasContracts() predicate.Fixture {
	return predicate.Fixture(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ContractsTable, ContractsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContractsWith applies the HasEdge predicate on the "contracts" edge with a given conditions (other predicates).
func HasContractsWith(preds ...predicate.Contract) predicate.Fixture {
	return predicate.Fixture(func(s *sql.Selector) {
		step := newContractsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRecaps applies the HasEdge predicate on the "recaps" edge.
func HasRecaps() predicate.Fixture {
	return predicate.Fixture(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RecapsTable, RecapsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecapsWith applies the HasEdge predicate on the "recaps" edge with a given conditions (other predicates).
func HasRecapsWith(preds ...predicate.RecapManager) predicate.Fixture {
	return predicate.Fixture(func(s *sql.Selector) {
		step := newRecapsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Fixture) predicate.Fixture {
	return predicate.Fixture(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Fixture) predicate.Fixture {
	return predicate.Fixture(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Fixture) predicate.Fixture {
	return predicate.Fixture(sql.NotPredicates(p))
}
