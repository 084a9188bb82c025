// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"charterdesk.io/charterdesk/ent/addendum"
	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// Addendum is the model entity for the Addendum schema.
type Addendum struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// AddendumNumber holds the value of the "addendum_number" field.
	AddendumNumber string `json:"addendum_number,omitempty"`
	// ContractID holds the value of the "contract_id" field.
	ContractID string `json:"contract_id,omitempty"`
	// RecapID holds the value of the "recap_id" field.
	RecapID string `json:"recap_id,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Status holds the value of the "status" field.
	Status addendum.Status `json:"status,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy    string `json:"created_by,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Addendum) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case addendum.FieldID, addendum.FieldAddendumNumber, addendum.FieldContractID, addendum.FieldRecapID, addendum.FieldDescription, addendum.FieldStatus, addendum.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case addendum.FieldCreatedAt, addendum.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Addendum fields.
func (_m *Addendum) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case addendum.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case addendum.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case addendum.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case addendum.FieldAddendumNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field addendum_number", values[i])
			} else if value.Valid {
				_m.AddendumNumber = value.String
			}
		case addendum.FieldContractID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contract_id", values[i])
			} else if value.Valid {
				_m.ContractID = value.String
			}
		case addendum.FieldRecapID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recap_id", values[i])
			} else if value.Valid {
				_m.RecapID = value.String
			}
		case addendum.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case addendum.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = addendum.Status(value.String)
			}
		case addendum.FieldCreatedBy:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Addendum.
// This includes values selected through modifiers, order, etc.
func (_m *Addendum) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Addendum.
// Note that you need to call Addendum.Unwrap() before calling this method if this Addendum
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Addendum) Update() *AddendumUpdateOne {
	return NewAddendumClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Addendum entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Addendum) Unwrap() *Addendum {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Addendum is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Addendum) String() string {
	var builder strings.Builder
	builder.WriteString("Addendum(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("addendum_number=")
	builder.WriteString(_m.AddendumNumber)
	builder.WriteString(", ")
	builder.WriteString("contract_id=")
	builder.WriteString(_m.ContractID)
	builder.WriteString(", ")
	builder.WriteString("recap_id=")
	builder.WriteString(_m.RecapID)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteByte(')')
	return builder.String()
}

// Addendums is a parsable slice of Addendum.
type Addendums []*Addendum
