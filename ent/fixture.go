// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"charterdesk.io/charterdesk/ent/fixture"
	"charterdesk.io/charterdesk/ent/order"
	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// Fixture is the model entity for the Fixture schema.
type Fixture struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FixtureNumber holds the value of the "fixture_number" field.
	FixtureNumber string `json:"fixture_number,omitempty"`
	// Status holds the value of the "status" field.
	Status fixture.Status `json:"status,omitempty"`
	// LastUpdated holds the value of the "last_updated" field.
	LastUpdated *time.Time `json:"last_updated,omitempty"`
	// SearchText holds the value of the "search_text" field.
	SearchText *string `json:"search_text,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FixtureQuery when eager-loading is set.
	Edges          FixtureEdges `json:"edges"`
	order_fixtures *string
	selectValues   sql.SelectValues
}

// FixtureEdges holds the relations/edges for other nodes in the graph.
type FixtureEdges struct {
	// Order holds the value of the order edge.
	Order *Order `json:"order,omitempty"`
	// Contracts holds the value of the contracts edge.
	Contracts []*Contract `json:"contracts,omitempty"`
	// Recaps holds the value of the recaps edge.
	Recaps []*RecapManager `json:"recaps,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// OrderOrErr returns the Order value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FixtureEdges) OrderOrErr() (*Order, error) {
	if e.Order != nil {
		return e.Order, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: order.Label}
	}
	return nil, &NotLoadedError{edge: "order"}
}

// ContractsOrErr returns the Contracts value or an error if the edge
// was not loaded in eager-loading.
func (e FixtureEdges) ContractsOrErr() ([]*Contract, error) {
	if e.loadedTypes[1] {
		return e.Contracts, nil
	}
	return nil, &NotLoadedError{edge: "contracts"}
}

// RecapsOrErr returns the Recaps value or an error if the edge
// was not loaded in eager-loading.
func (e FixtureEdges) RecapsOrErr() ([]*RecapManager, error) {
	if e.loadedTypes[2] {
		return e.Recaps, nil
	}
	return nil, &NotLoadedError{edge: "recaps"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Fixture) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case fixture.FieldID, fixture.FieldFixtureNumber, fixture.FieldStatus, fixture.FieldSearchText:
			values[i] = new(sql.NullString)
		case fixture.FieldCreatedAt, fixture.FieldUpdatedAt, fixture.FieldLastUpdated:
			values[i] = new(sql.NullTime)
		case fixture.ForeignKeys[0]: // order_fixtures
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Fixture fields.
func (_m *Fixture) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case fixture.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case fixture.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case fixture.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case fixture.FieldFixtureNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fixture_number", values[i])
			} else if value.Valid {
				_m.FixtureNumber = value.String
			}
		case fixture.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = fixture.Status(value.String)
			}
		case fixture.FieldLastUpdated:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_updated", values[i])
			} else if value.Valid {
				_m.LastUpdated = new(time.Time)
				*_m.LastUpdated = value.Time
			}
		case fixture.FieldSearchText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field search_text", values[i])
			} else if value.Valid {
				_m.SearchText = new(string)
				*_m.SearchText = value.String
			}
		case fixture.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field order_fixtures", values[i])
			} else if value.Valid {
				_m.order_fixtures = new(string)
				*_m.order_fixtures = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Fixture.
// This includes values selected through modifiers, order, etc.
func (_m *Fixture) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOrder queries the "order" edge of the Fixture entity.
func (_m *Fixture) QueryOrder() *OrderQuery {
	return NewFixtureClient(_m.config).QueryOrder(_m)
}

// QueryContracts queries the "contracts" edge of the Fixture entity.
func (_m *Fixture) QueryContracts() *ContractQuery {
	return NewFixtureClient(_m.config).QueryContracts(_m)
}

// QueryRecaps queries the "recaps" edge of the Fixture entity.
func (_m *Fixture) QueryRecaps() *RecapManagerQuery {
	return NewFixtureClient(_m.config).QueryRecaps(_m)
}

// Update returns a builder for updating this Fixture.
// Note that you need to call Fixture.Unwrap() before calling this method if this Fixture
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Fixture) Update() *FixtureUpdateOne {
	return NewFixtureClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Fixture entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Fixture) Unwrap() *Fixture {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Fixture is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Fixture) String() string {
	var builder strings.Builder
	builder.WriteString("Fixture(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("fixture_number=")
	builder.WriteString(_m.FixtureNumber)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.LastUpdated; v != nil {
		builder.WriteString("last_updated=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.SearchText; v != nil {
		builder.WriteString("search_text=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Fixtures is a parsable slice of Fixture.
type Fixtures []*Fixture
