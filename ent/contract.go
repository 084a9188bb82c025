// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"charterdesk.io/charterdesk/ent/contract"
	"charterdesk.io/charterdesk/ent/fixture"
	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// Contract is the model entity for the Contract schema.
type Contract struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// CpNumber holds the value of the "cp_number" field.
	CpNumber string `json:"cp_number,omitempty"`
	// OrderID holds the value of the "order_id" field.
	OrderID string `json:"order_id,omitempty"`
	// NegotiationID holds the value of the "negotiation_id" field.
	NegotiationID string `json:"negotiation_id,omitempty"`
	// ParentContractID holds the value of the "parent_contract_id" field.
	ParentContractID string `json:"parent_contract_id,omitempty"`
	// ContractType holds the value of the "contract_type" field.
	ContractType string `json:"contract_type,omitempty"`
	// DeliveryType holds the value of the "delivery_type" field.
	DeliveryType string `json:"delivery_type,omitempty"`
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
	Status contract.Status `json:"status,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ContractQuery when eager-loading is set.
	Edges             ContractEdges `json:"edges"`
	fixture_contracts *string
	selectValues      sql.SelectValues
}

// ContractEdges holds the relations/edges for other nodes in the graph.
type ContractEdges struct {
	// Fixture holds the value of the fixture edge.
	Fixture *Fixture `json:"fixture,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FixtureOrErr returns the Fixture value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ContractEdges) FixtureOrErr() (*Fixture, error) {
	if e.Fixture != nil {
		return e.Fixture, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: fixture.Label}
	}
	return nil, &NotLoadedError{edge: "fixture"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Contract) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contract.FieldFreightRate, contract.FieldQuantity, contract.FieldDemurrageRate:
			values[i] = new(sql.NullFloat64)
		case contract.FieldID, contract.FieldCpNumber, contract.FieldOrderID, contract.FieldNegotiationID, contract.FieldParentContractID, contract.FieldContractType, contract.FieldDeliveryType, contract.FieldVesselID, contract.FieldCompanyID, contract.FieldLoadPortID, contract.FieldDischargePortID, contract.FieldCargoTypeID, contract.FieldStatus, contract.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case contract.FieldCreatedAt, contract.FieldUpdatedAt, contract.FieldLaycanStart, contract.FieldLaycanEnd:
			values[i] = new(sql.NullTime)
		case contract.ForeignKeys[0]: // fixture_contracts
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Contract fields.
func (_m *Contract) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contract.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case contract.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case contract.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case contract.FieldCpNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cp_number", values[i])
			} else if value.Valid {
				_m.CpNumber = value.String
			}
		case contract.FieldOrderID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field order_id", values[i])
			} else if value.Valid {
				_m.OrderID = value.String
			}
		case contract.FieldNegotiationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field negotiation_id", values[i])
			} else if value.Valid {
				_m.NegotiationID = value.String
			}
		case contract.FieldParentContractID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_contract_id", values[i])
			} else if value.Valid {
				_m.ParentContractID = value.String
			}
		case contract.FieldContractType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contract_type", values[i])
			} else if value.Valid {
				_m.ContractType = value.String
			}
		case contract.FieldDeliveryType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field delivery_type", values[i])
			} else if value.Valid {
				_m.DeliveryType = value.String
			}
		case contract.FieldVesselID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vessel_id", values[i])
			} else if value.Valid {
				_m.VesselID = value.String
			}
		case contract.FieldCompanyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value.Valid {
				_m.CompanyID = value.String
			}
		case contract.FieldLoadPortID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field load_port_id", values[i])
			} else if value.Valid {
				_m.LoadPortID = value.String
			}
		case contract.FieldDischargePortID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field discharge_port_id", values[i])
			} else if value.Valid {
				_m.DischargePortID = value.String
			}
		case contract.FieldCargoTypeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cargo_type_id", values[i])
			} else if value.Valid {
				_m.CargoTypeID = value.String
			}
		case contract.FieldFreightRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field freight_rate", values[i])
			} else if value.Valid {
				_m.FreightRate = value.Float64
			}
		case contract.FieldLaycanStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field laycan_start", values[i])
			} else if value.Valid {
				_m.LaycanStart = new(time.Time)
				*_m.LaycanStart = value.Time
			}
		case contract.FieldLaycanEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field laycan_end", values[i])
			} else if value.Valid {
				_m.LaycanEnd = new(time.Time)
				*_m.LaycanEnd = value.Time
			}
		case contract.FieldQuantity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity", values[i])
			} else if value.Valid {
				_m.Quantity = value.Float64
			}
		case contract.FieldDemurrageRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field demurrage_rate", values[i])
			} else if value.Valid {
				_m.DemurrageRate = value.Float64
			}
		case contract.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = contract.Status(value.String)
			}
		case contract.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case contract.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fixture_contracts", values[i])
			} else if value.Valid {
				_m.fixture_contracts = new(string)
				*_m.fixture_contracts = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Contract.
// This includes values selected through modifiers, order, etc.
func (_m *Contract) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFixture queries the "fixture" edge of the Contract entity.
func (_m *Contract) QueryFixture() *FixtureQuery {
	return NewContractClient(_m.config).QueryFixture(_m)
}

// Update returns a builder for updating this Contract.
// Note that you need to call Contract.Unwrap() before calling this method if this Contract
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Contract) Update() *ContractUpdateOne {
	return NewContractClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Contract entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Contract) Unwrap() *Contract {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Contract is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Contract) String() string {
	var builder strings.Builder
	builder.WriteString("Contract(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("cp_number=")
	builder.WriteString(_m.CpNumber)
	builder.WriteString(", ")
	builder.WriteString("order_id=")
	builder.WriteString(_m.OrderID)
	builder.WriteString(", ")
	builder.WriteString("negotiation_id=")
	builder.WriteString(_m.NegotiationID)
	builder.WriteString(", ")
	builder.WriteString("parent_contract_id=")
	builder.WriteString(_m.ParentContractID)
	builder.WriteString(", ")
	builder.WriteString("contract_type=")
	builder.WriteString(_m.ContractType)
	builder.WriteString(", ")
	builder.WriteString("delivery_type=")
	builder.WriteString(_m.DeliveryType)
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

// Contracts is a parsable slice of Contract.
type Contracts []*Contract
