// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"charterdesk.io/charterdesk/ent/negotiation"
	"charterdesk.io/charterdesk/ent/order"
	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// Negotiation is the model entity for the Negotiation schema.
type Negotiation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// NegotiationNumber holds the value of the "negotiation_number" field.
	NegotiationNumber string `json:"negotiation_number,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID string `json:"company_id,omitempty"`
	// VesselID holds the value of the "vessel_id" field.
	VesselID string `json:"vessel_id,omitempty"`
	// Status holds the value of the "status" field.
	Status negotiation.Status `json:"status,omitempty"`
	// FreightRate holds the value of the "freight_rate" field.
	FreightRate float64 `json:"freight_rate,omitempty"`
	// FirstIndication holds the value of the "first_indication" field.
	FirstIndication float64 `json:"first_indication,omitempty"`
	// HighestIndication holds the value of the "highest_indication" field.
	HighestIndication float64 `json:"highest_indication,omitempty"`
	// LowestIndication holds the value of the "lowest_indication" field.
	LowestIndication float64 `json:"lowest_indication,omitempty"`
	// MarketIndex holds the value of the "market_index" field.
	MarketIndex string `json:"market_index,omitempty"`
	// DeliveryType holds the value of the "delivery_type" field.
	DeliveryType string `json:"delivery_type,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the NegotiationQuery when eager-loading is set.
	Edges              NegotiationEdges `json:"edges"`
	order_negotiations *string
	selectValues       sql.SelectValues
}

// NegotiationEdges holds the relations/edges for other nodes in the graph.
type NegotiationEdges struct {
	// Order holds the value of the order edge.
	Order *Order `json:"order,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// OrderOrErr returns the Order value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e NegotiationEdges) OrderOrErr() (*Order, error) {
	if e.Order != nil {
		return e.Order, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: order.Label}
	}
	return nil, &NotLoadedError{edge: "order"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Negotiation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case negotiation.FieldFreightRate, negotiation.FieldFirstIndication, negotiation.FieldHighestIndication, negotiation.FieldLowestIndication:
			values[i] = new(sql.NullFloat64)
		case negotiation.FieldID, negotiation.FieldNegotiationNumber, negotiation.FieldCompanyID, negotiation.FieldVesselID, negotiation.FieldStatus, negotiation.FieldMarketIndex, negotiation.FieldDeliveryType, negotiation.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case negotiation.FieldCreatedAt, negotiation.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case negotiation.ForeignKeys[0]: // order_negotiations
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Negotiation fields.
func (_m *Negotiation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case negotiation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case negotiation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case negotiation.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case negotiation.FieldNegotiationNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field negotiation_number", values[i])
			} else if value.Valid {
				_m.NegotiationNumber = value.String
			}
		case negotiation.FieldCompanyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value.Valid {
				_m.CompanyID = value.String
			}
		case negotiation.FieldVesselID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vessel_id", values[i])
			} else if value.Valid {
				_m.VesselID = value.String
			}
		case negotiation.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = negotiation.Status(value.String)
			}
		case negotiation.FieldFreightRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field freight_rate", values[i])
			} else if value.Valid {
				_m.FreightRate = value.Float64
			}
		case negotiation.FieldFirstIndication:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field first_indication", values[i])
			} else if value.Valid {
				_m.FirstIndication = value.Float64
			}
		case negotiation.FieldHighestIndication:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field highest_indication", values[i])
			} else if value.Valid {
				_m.HighestIndication = value.Float64
			}
		case negotiation.FieldLowestIndication:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field lowest_indication", values[i])
			} else if value.Valid {
				_m.LowestIndication = value.Float64
			}
		case negotiation.FieldMarketIndex:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field market_index", values[i])
			} else if value.Valid {
				_m.MarketIndex = value.String
			}
		case negotiation.FieldDeliveryType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field delivery_type", values[i])
			} else if value.Valid {
				_m.DeliveryType = value.String
			}
		case negotiation.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case negotiation.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field order_negotiations", values[i])
			} else if value.Valid {
				_m.order_negotiations = new(string)
				*_m.order_negotiations = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Negotiation.
// This includes values selected through modifiers, order, etc.
func (_m *Negotiation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOrder queries the "order" edge of the Negotiation entity.
func (_m *Negotiation) QueryOrder() *OrderQuery {
	return NewNegotiationClient(_m.config).QueryOrder(_m)
}

// Update returns a builder for updating this Negotiation.
// Note that you need to call Negotiation.Unwrap() before calling this method if this Negotiation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Negotiation) Update() *NegotiationUpdateOne {
	return NewNegotiationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Negotiation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Negotiation) Unwrap() *Negotiation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Negotiation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Negotiation) String() string {
	var builder strings.Builder
	builder.WriteString("Negotiation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("negotiation_number=")
	builder.WriteString(_m.NegotiationNumber)
	builder.WriteString(", ")
	builder.WriteString("company_id=")
	builder.WriteString(_m.CompanyID)
	builder.WriteString(", ")
	builder.WriteString("vessel_id=")
	builder.WriteString(_m.VesselID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("freight_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.FreightRate))
	builder.WriteString(", ")
	builder.WriteString("first_indication=")
	builder.WriteString(fmt.Sprintf("%v", _m.FirstIndication))
	builder.WriteString(", ")
	builder.WriteString("highest_indication=")
	builder.WriteString(fmt.Sprintf("%v", _m.HighestIndication))
	builder.WriteString(", ")
	builder.WriteString("lowest_indication=")
	builder.WriteString(fmt.Sprintf("%v", _m.LowestIndication))
	builder.WriteString(", ")
	builder.WriteString("market_index=")
	builder.WriteString(_m.MarketIndex)
	builder.WriteString(", ")
	builder.WriteString("delivery_type=")
	builder.WriteString(_m.DeliveryType)
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteByte(')')
	return builder.String()
}

// Negotiations is a parsable slice of Negotiation.
type Negotiations []*Negotiation
