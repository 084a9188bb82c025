// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"charterdesk.io/charterdesk/ent/fixture"
	"charterdesk.io/charterdesk/ent/recapmanager"
	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// RecapManager is the model entity for the RecapManager schema.
type RecapManager struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// RecapNumber holds the value of the "recap_number" field.
	RecapNumber string `json:"recap_number,omitempty"`
	// OrderID holds the value of the "order_id" field.
	OrderID string `json:"order_id,omitempty"`
	// NegotiationID holds the value of the "negotiation_id" field.
	NegotiationID string `json:"negotiation_id,omitempty"`
	// ParentRecapID holds the value of the "parent_recap_id" field.
	ParentRecapID string `json:"parent_recap_id,omitempty"`
	// ContractType holds the value of the "contract_type" field.
	ContractType string `json:"contract_type,omitempty"`
	// DeliveryType holds the value of the "delivery_type" field.
	DeliveryType string `json:"delivery_type,omitempty"`
	// MarketIndex holds the value of the "market_index" field.
	MarketIndex string `json:"market_index,omitempty"`
	// VesselID holds the value of the "vessel_id" field.
	VesselID string `json:"vessel_id,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID string `json:"company_id,omitempty"`
	// LoadPortID holds the value of the "load_port_id" field.
	LoadPortID string `json:"load_port_id,omitempty"`
	// DischargePortID holds the value of the "discharge_port_id" field.
	DischargePortID string `json:"discharge_port_id,omitempty"`
	// CargoTypeID holds the value of the "cargo_type_id" field.
	CargoTypeID string `json:"cargo_type_id,omitempty"`
	// FreightRate holds the value of the "freight_rate" field.
	FreightRate float64 `json:"freight_rate,omitempty"`
	// LaycanStart holds the value of the "laycan_start" field.
	LaycanStart *time.Time `json:"laycan_start,omitempty"`
	// LaycanEnd holds the value of the "laycan_end" field.
	LaycanEnd *time.Time `json:"laycan_end,omitempty"`
	// Quantity holds the value of the "quantity" field.
	Quantity float64 `json:"quantity,omitempty"`
	// DemurrageRate holds the value of the "demurrage_rate" field.
	DemurrageRate float64 `json:"demurrage_rate,omitempty"`
	// Status holds the value of the "status" field.
	Status recapmanager.Status `json:"status,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RecapManagerQuery when eager-loading is set.
	Edges          RecapManagerEdges `json:"edges"`
	fixture_recaps *string
	selectValues   sql.SelectValues
}

// RecapManagerEdges holds the relations/edges for other nodes in the graph.
type RecapManagerEdges struct {
	// Fixture holds the value of the fixture edge.
	Fixture *Fixture `json:"fixture,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FixtureOrErr returns the Fixture value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RecapManagerEdges) FixtureOrErr() (*Fixture, error) {
	if e.Fixture != nil {
		return e.Fixture, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: fixture.Label}
	}
	return nil, &NotLoadedError{edge: "fixture"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RecapManager) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case recapmanager.FieldFreightRate, recapmanager.FieldQuantity, recapmanager.FieldDemurrageRate:
			values[i] = new(sql.NullFloat64)
		case recapmanager.FieldID, recapmanager.FieldRecapNumber, recapmanager.FieldOrderID, recapmanager.FieldNegotiationID, recapmanager.FieldParentRecapID, recapmanager.FieldContractType, recapmanager.FieldDeliveryType, recapmanager.FieldMarketIndex, recapmanager.FieldVesselID, recapmanager.FieldCompanyID, recapmanager.FieldLoadPortID, recapmanager.FieldDischargePortID, recapmanager.FieldCargoTypeID, recapmanager.FieldStatus, recapmanager.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case recapmanager.FieldCreatedAt, recapmanager.FieldUpdatedAt, recapmanager.FieldLaycanStart, recapmanager.FieldLaycanEnd:
			values[i] = new(sql.NullTime)
		case recapmanager.ForeignKeys[0]: // fixture_recaps
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RecapManager fields.
func (_m *RecapManager) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case recapmanager.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case recapmanager.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case recapmanager.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case recapmanager.FieldRecapNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recap_number", values[i])
			} else if value.Valid {
				_m.RecapNumber = value.String
			}
		case recapmanager.FieldOrderID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field order_id", values[i])
			} else if value.Valid {
				_m.OrderID = value.String
			}
		case recapmanager.FieldNegotiationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field negotiation_id", values[i])
			} else if value.Valid {
				_m.NegotiationID = value.String
			}
		case recapmanager.FieldParentRecapID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_recap_id", values[i])
			} else if value.Valid {
				_m.ParentRecapID = value.String
			}
		case recapmanager.FieldContractType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contract_type", values[i])
			} else if value.Valid {
				_m.ContractType = value.String
			}
		case recapmanager.FieldDeliveryType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field delivery_type", values[i])
			} else if value.Valid {
				_m.DeliveryType = value.String
			}
		case recapmanager.FieldMarketIndex:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field market_index", values[i])
			} else if value.Valid {
				_m.MarketIndex = value.String
			}
		case recapmanager.FieldVesselID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vessel_id", values[i])
			} else if value.Valid {
				_m.VesselID = value.String
			}
		case recapmanager.FieldCompanyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value.Valid {
				_m.CompanyID = value.String
			}
		case recapmanager.FieldLoadPortID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field load_port_id", values[i])
			} else if value.Valid {
				_m.LoadPortID = value.String
			}
		case recapmanager.FieldDischargePortID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field discharge_port_id", values[i])
			} else if value.Valid {
				_m.DischargePortID = value.String
			}
		case recapmanager.FieldCargoTypeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cargo_type_id", values[i])
			} else if value.Valid {
				_m.CargoTypeID = value.String
			}
		case recapmanager.FieldFreightRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field freight_rate", values[i])
			} else if value.Valid {
				_m.FreightRate = value.Float64
			}
		case recapmanager.FieldLaycanStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field laycan_start", values[i])
			} else if value.Valid {
				_m.LaycanStart = new(time.Time)
				*_m.LaycanStart = value.Time
			}
		case recapmanager.FieldLaycanEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field laycan_end", values[i])
			} else if value.Valid {
				_m.LaycanEnd = new(time.Time)
				*_m.LaycanEnd = value.Time
			}
		case recapmanager.FieldQuantity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity", values[i])
			} else if value.Valid {
				_m.Quantity = value.Float64
			}
		case recapmanager.FieldDemurrageRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field demurrage_rate", values[i])
			} else if value.Valid {
				_m.DemurrageRate = value.Float64
			}
		case recapmanager.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = recapmanager.Status(value.String)
			}
		case recapmanager.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case recapmanager.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fixture_recaps", values[i])
			} else if value.Valid {
				_m.fixture_recaps = new(string)
				*_m.fixture_recaps = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RecapManager.
// This includes values selected through modifiers, order, etc.
func (_m *RecapManager) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFixture queries the "fixture" edge of the RecapManager entity.
func (_m *RecapManager) QueryFixture() *FixtureQuery {
	return NewRecapManagerClient(_m.config).QueryFixture(_m)
}

// Update returns a builder for updating this RecapManager.
// Note that you need to call RecapManager.Unwrap() before calling this method if this RecapManager
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RecapManager) Update() *RecapManagerUpdateOne {
	return NewRecapManagerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RecapManager entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RecapManager) Unwrap() *RecapManager {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RecapManager is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RecapManager) String() string {
	var builder strings.Builder
	builder.WriteString("RecapManager(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("recap_number=")
	builder.WriteString(_m.RecapNumber)
	builder.WriteString(", ")
	builder.WriteString("order_id=")
	builder.WriteString(_m.OrderID)
	builder.WriteString(", ")
	builder.WriteString("negotiation_id=")
	builder.WriteString(_m.NegotiationID)
	builder.WriteString(", ")
	builder.WriteString("parent_recap_id=")
	builder.WriteString(_m.ParentRecapID)
	builder.WriteString(", ")
	builder.WriteString("contract_type=")
	builder.WriteString(_m.ContractType)
	builder.WriteString(", ")
	builder.WriteString("delivery_type=")
	builder.WriteString(_m.DeliveryType)
	builder.WriteString(", ")
	builder.WriteString("market_index=")
	builder.WriteString(_m.MarketIndex)
	builder.WriteString(", ")
	builder.WriteString("vessel_id=")
	builder.WriteString(_m.VesselID)
	builder.WriteString(", ")
	builder.WriteString("company_id=")
	builder.WriteString(_m.CompanyID)
	builder.WriteString(", ")
	builder.WriteString("load_port_id=")
	builder.WriteString(_m.LoadPortID)
	builder.WriteString(", ")
	builder.WriteString("discharge_port_id=")
	builder.WriteString(_m.DischargePortID)
	builder.WriteString(", ")
	builder.WriteString("cargo_type_id=")
	builder.WriteString(_m.CargoTypeID)
	builder.WriteString(", ")
	builder.WriteString("freight_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.FreightRate))
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
	builder.WriteString("demurrage_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.DemurrageRate))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteByte(')')
	return builder.String()
}

// RecapManagers is a parsable slice of RecapManager.
type RecapManagers []*RecapManager
