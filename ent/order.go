// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"charterdesk.io/charterdesk/ent/order"
	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// Order is the model entity for the Order schema.
type Order struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// OrderNumber holds the value of the "order_number" field.
	OrderNumber string `json:"order_number,omitempty"`
	// OrganizationID holds the value of the "organization_id" field.
	OrganizationID string `json:"organization_id,omitempty"`
	// Market holds the value of the "market" field.
	Market order.Market `json:"market,omitempty"`
	// Status holds the value of the "status" field.
	Status order.Status `json:"status,omitempty"`
	// CargoTypeID holds the value of the "cargo_type_id" field.
	CargoTypeID string `json:"cargo_type_id,omitempty"`
	// LoadPortID holds the value of the "load_port_id" field.
	LoadPortID string `json:"load_port_id,omitempty"`
	// DischargePortID holds the value of the "discharge_port_id" field.
	DischargePortID string `json:"discharge_port_id,omitempty"`
	// LaycanStart holds the value of the "laycan_start" field.
	LaycanStart *time.Time `json:"laycan_start,omitempty"`
	// LaycanEnd holds the value of the "laycan_end" field.
	LaycanEnd *time.Time `json:"laycan_end,omitempty"`
	// Quantity holds the value of the "quantity" field.
	Quantity float64 `json:"quantity,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes string `json:"notes,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OrderQuery when eager-loading is set.
	Edges        OrderEdges `json:"edges"`
	selectValues sql.SelectValues
}

// OrderEdges holds the relations/edges for other nodes in the graph.
type OrderEdges struct {
	// Negotiations holds the value of the negotiations edge.
	Negotiations []*Negotiation `json:"negotiations,omitempty"`
	// Fixtures holds the value of the fixtures edge.
	Fixtures []*Fixture `json:"fixtures,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// NegotiationsOrErr returns the Negotiations value or an error if the edge
// was not loaded in eager-loading.
func (e OrderEdges) NegotiationsOrErr() ([]*Negotiation, error) {
	if e.loadedTypes[0] {
		return e.Negotiations, nil
	}
	return nil, &NotLoadedError{edge: "negotiations"}
}

// FixturesOrErr returns the Fixtures value or an error if the edge
// was not loaded in eager-loading.
func (e OrderEdges) FixturesOrErr() ([]*Fixture, error) {
	if e.loadedTypes[1] {
		return e.Fixtures, nil
	}
	return nil, &NotLoadedError{edge: "fixtures"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Order) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case order.FieldQuantity:
			values[i] = new(sql.NullFloat64)
		case order.FieldID, order.FieldOrderNumber, order.FieldOrganizationID, order.FieldMarket, order.FieldStatus, order.FieldCargoTypeID, order.FieldLoadPortID, order.FieldDischargePortID, order.FieldNotes, order.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case order.FieldCreatedAt, order.FieldUpdatedAt, order.FieldLaycanStart, order.FieldLaycanEnd:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Order fields.
func (_m *Order) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case order.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case order.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case order.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case order.FieldOrderNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field order_number", values[i])
			} else if value.Valid {
				_m.OrderNumber = value.String
			}
		case order.FieldOrganizationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field organization_id", values[i])
			} else if value.Valid {
				_m.OrganizationID = value.String
			}
		case order.FieldMarket:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field market", values[i])
			} else if value.Valid {
				_m.Market = order.Market(value.String)
			}
		case order.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = order.Status(value.String)
			}
		case order.FieldCargoTypeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cargo_type_id", values[i])
			} else if value.Valid {
				_m.CargoTypeID = value.String
			}
		case order.FieldLoadPortID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field load_port_id", values[i])
			} else if value.Valid {
				_m.LoadPortID = value.String
			}
		case order.FieldDischargePortID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field discharge_port_id", values[i])
			} else if value.Valid {
				_m.DischargePortID = value.String
			}
		case order.FieldLaycanStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field laycan_start", values[i])
			} else if value.Valid {
				_m.LaycanStart = new(time.Time)
				*_m.LaycanStart = value.Time
			}
		case order.FieldLaycanEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field laycan_end", values[i])
			} else if value.Valid {
				_m.LaycanEnd = new(time.Time)
				*_m.LaycanEnd = value.Time
			}
		case order.FieldQuantity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity", values[i])
			} else if value.Valid {
				_m.Quantity = value.Float64
			}
		case order.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case order.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Order.
// This includes values selected through modifiers, order, etc.
func (_m *Order) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryNegotiations queries the "negotiations" edge of the Order entity.
func (_m *Order) QueryNegotiations() *NegotiationQuery {
	return NewOrderClient(_m.config).QueryNegotiations(_m)
}

// QueryFixtures queries the "fixtures" edge of the Order entity.
func (_m *Order) QueryFixtures() *FixtureQuery {
	return NewOrderClient(_m.config).QueryFixtures(_m)
}

// Update returns a builder for updating this Order.
// Note that you need to call Order.Unwrap() before calling this method if this Order
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Order) Update() *OrderUpdateOne {
	return NewOrderClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Order entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Order) Unwrap() *Order {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Order is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Order) String() string {
	var builder strings.Builder
	builder.WriteString("Order(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("order_number=")
	builder.WriteString(_m.OrderNumber)
	builder.WriteString(", ")
	builder.WriteString("organization_id=")
	builder.WriteString(_m.OrganizationID)
	builder.WriteString(", ")
	builder.WriteString("market=")
	builder.WriteString(fmt.Sprintf("%v", _m.Market))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("cargo_type_id=")
	builder.WriteString(_m.CargoTypeID)
	builder.WriteString(", ")
	builder.WriteString("load_port_id=")
	builder.WriteString(_m.LoadPortID)
	builder.WriteString(", ")
	builder.WriteString("discharge_port_id=")
	builder.WriteString(_m.DischargePortID)
	builder.WriteString(", ")
	if v := _m.LaycanStart; v != nil {
		builder.WriteString("laycan_start=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LaycanEnd; v != nil {
		builder.WriteString("laycan_end=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("quantity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quantity))
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteByte(')')
	return builder.String()
}

// Orders is a parsable slice of Order.
type Orders []*Order
