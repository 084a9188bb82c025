// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"charterdesk.io/charterdesk/ent/vessel"
	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// Vessel is the model entity for the Vessel schema.
type Vessel struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// ImoNumber holds the value of the "imo_number" field.
	ImoNumber string `json:"imo_number,omitempty"`
	// VesselType holds the value of the "vessel_type" field.
	VesselType string `json:"vessel_type,omitempty"`
	// Dwt holds the value of the "dwt" field.
	Dwt float64 `json:"dwt,omitempty"`
	// BuiltYear holds the value of the "built_year" field.
	BuiltYear int `json:"built_year,omitempty"`
	// Flag holds the value of the "flag" field.
	Flag string `json:"flag,omitempty"`
	// Verified holds the value of the "verified" field.
	Verified     bool `json:"verified,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Vessel) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case vessel.FieldVerified:
			values[i] = new(sql.NullBool)
		case vessel.FieldDwt:
			values[i] = new(sql.NullFloat64)
		case vessel.FieldBuiltYear:
			values[i] = new(sql.NullInt64)
		case vessel.FieldID, vessel.FieldName, vessel.FieldImoNumber, vessel.FieldVesselType, vessel.FieldFlag:
			values[i] = new(sql.NullString)
		case vessel.FieldCreatedAt, vessel.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Vessel fields.
func (_m *Vessel) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case vessel.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case vessel.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case vessel.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case vessel.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case vessel.FieldImoNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field imo_number", values[i])
			} else if value.Valid {
				_m.ImoNumber = value.String
			}
		case vessel.FieldVesselType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vessel_type", values[i])
			} else if value.Valid {
				_m.VesselType = value.String
			}
		case vessel.FieldDwt:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field dwt", values[i])
			} else if value.Valid {
				_m.Dwt = value.Float64
			}
		case vessel.FieldBuiltYear:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field built_year", values[i])
			} else if value.Valid {
				_m.BuiltYear = int(value.Int64)
			}
		case vessel.FieldFlag:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field flag", values[i])
			} else if value.Valid {
				_m.Flag = value.String
			}
		case vessel.FieldVerified:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field verified", values[i])
			} else if value.Valid {
				_m.Verified = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Vessel.
// This includes values selected through modifiers, order, etc.
func (_m *Vessel) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Vessel.
// Note that you need to call Vessel.Unwrap() before calling this method if this Vessel
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Vessel) Update() *VesselUpdateOne {
	return NewVesselClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Vessel entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Vessel) Unwrap() *Vessel {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Vessel is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Vessel) String() string {
	var builder strings.Builder
	builder.WriteString("Vessel(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("imo_number=")
	builder.WriteString(_m.ImoNumber)
	builder.WriteString(", ")
	builder.WriteString("vessel_type=")
	builder.WriteString(_m.VesselType)
	builder.WriteString(", ")
	builder.WriteString("dwt=")
	builder.WriteString(fmt.Sprintf("%v", _m.Dwt))
	builder.WriteString(", ")
	builder.WriteString("built_year=")
	builder.WriteString(fmt.Sprintf("%v", _m.BuiltYear))
	builder.WriteString(", ")
	builder.WriteString("flag=")
	builder.WriteString(_m.Flag)
	builder.WriteString(", ")
	builder.WriteString("verified=")
	builder.WriteString(fmt.Sprintf("%v", _m.Verified))
	builder.WriteByte(')')
	return builder.String()
}

// Vessels is a parsable slice of Vessel.
type Vessels []*Vessel
