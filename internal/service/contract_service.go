package service

import (
	"context"
	"fmt"
	"time"

	"charterdesk.io/charterdesk/ent"
	"charterdesk.io/charterdesk/ent/contract"
	entfixture "charterdesk.io/charterdesk/ent/fixture"
	"charterdesk.io/charterdesk/internal/governance/audit"
	apperrors "charterdesk.io/charterdesk/internal/pkg/errors"
)

// ContractService manages dry-market charter parties. Every mutation that
// carries a fixture id ends by recomputing that fixture's derived fields
// inside the same transaction.
type ContractService struct {
	client *ent.Client
	audit  *audit.Logger
}

// NewContractService creates a new ContractService.
func NewContractService(client *ent.Client, auditLog *audit.Logger) *ContractService {
	return &ContractService{client: client, audit: auditLog}
}

// CreateContractInput holds fields for drafting a contract.
type CreateContractInput struct {
	CpNumber         string
	FixtureID        string
	OrderID          string
	NegotiationID    string
	ParentContractID string
	ContractType     string
	DeliveryType     string
	VesselID         string
	CompanyID        string
	LoadPortID       string
	DischargePortID  string
	CargoTypeID      string
	FreightRate      float64
	LaycanStart      *time.Time
	LaycanEnd        *time.Time
	Quantity         float64
	DemurrageRate    float64
	CreatedBy        string
}

// Create drafts a new contract.
func (s *ContractService) Create(ctx context.Context, in CreateContractInput) (*ent.Contract, error) {
	taken, err := s.client.Contract.Query().
		Where(contract.CpNumberEQ(in.CpNumber)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check cp number: %w", err)
	}
	if taken {
		return nil, apperrors.Conflict(apperrors.CodeNumberTaken,
			fmt.Sprintf("CP number %q is already in use", in.CpNumber))
	}
	if in.FixtureID != "" {
		exists, err := s.client.Fixture.Query().
			Where(entfixture.IDEQ(in.FixtureID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check fixture: %w", err)
		}
		if !exists {
			return nil, apperrors.NotFound(apperrors.CodeFixtureNotFound, "Fixture not found")
		}
	}

	var created *ent.Contract
	err = WithTx(ctx, s.client, func(tx *ent.Client) error {
		create := tx.Contract.Create().
			SetID(NewID(PrefixContract)).
			SetCpNumber(in.CpNumber).
			SetCreatedBy(in.CreatedBy)
		if in.FixtureID != "" {
			create = create.SetFixtureID(in.FixtureID)
		}
		if in.OrderID != "" {
			create = create.SetOrderID(in.OrderID)
		}
		if in.NegotiationID != "" {
			create = create.SetNegotiationID(in.NegotiationID)
		}
		if in.ParentContractID != "" {
			create = create.SetParentContractID(in.ParentContractID)
		}
		if in.ContractType != "" {
			create = create.SetContractType(in.ContractType)
		}
		if in.DeliveryType != "" {
			create = create.SetDeliveryType(in.DeliveryType)
		}
		if in.VesselID != "" {
			create = create.SetVesselID(in.VesselID)
		}
		if in.CompanyID != "" {
			create = create.SetCompanyID(in.CompanyID)
		}
		if in.LoadPortID != "" {
			create = create.SetLoadPortID(in.LoadPortID)
		}
		if in.DischargePortID != "" {
			create = create.SetDischargePortID(in.DischargePortID)
		}
		if in.CargoTypeID != "" {
			create = create.SetCargoTypeID(in.CargoTypeID)
		}
		if in.FreightRate != 0 {
			create = create.SetFreightRate(in.FreightRate)
		}
		if in.Quantity != 0 {
			create = create.SetQuantity(in.Quantity)
		}
		if in.DemurrageRate != 0 {
			create = create.SetDemurrageRate(in.DemurrageRate)
		}
		create = create.SetNillableLaycanStart(in.LaycanStart).
			SetNillableLaycanEnd(in.LaycanEnd)

		c, err := create.Save(ctx)
		if err != nil {
			return fmt.Errorf("create contract: %w", err)
		}
		created = c
		if err := s.audit.WithClient(tx).RecordActivity(ctx, audit.ActivityInput{
			EntityType:  "contract",
			EntityID:    c.ID,
			Action:      "created",
			Description: fmt.Sprintf("Contract %s drafted", c.CpNumber),
			UserID:      in.CreatedBy,
		}); err != nil {
			return err
		}
		if in.FixtureID != "" {
			return RecomputeFixtureDerived(ctx, tx, in.FixtureID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Get returns one contract by id.
func (s *ContractService) Get(ctx context.Context, id string) (*ent.Contract, error) {
	c, err := s.client.Contract.Query().
		Where(contract.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeContractNotFound, "Contract not found")
		}
		return nil, fmt.Errorf("get contract: %w", err)
	}
	return c, nil
}

// ListContractsFilter restricts List results.
type ListContractsFilter struct {
	FixtureID string
	OrderID   string
	Status    string
	Limit     int
	Offset    int
}

// List returns contracts, newest first.
func (s *ContractService) List(ctx context.Context, f ListContractsFilter) ([]*ent.Contract, error) {
	limit, offset := clampPage(f.Limit, f.Offset)
	q := s.client.Contract.Query()
	if f.FixtureID != "" {
		q = q.Where(contract.HasFixtureWith(entfixture.IDEQ(f.FixtureID)))
	}
	if f.OrderID != "" {
		q = q.Where(contract.OrderIDEQ(f.OrderID))
	}
	if f.Status != "" {
		q = q.Where(contract.StatusEQ(contract.Status(f.Status)))
	}
	contracts, err := q.
		Order(ent.Desc(contract.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	return contracts, nil
}

// UpdateContractInput holds the partial-update fields of a contract.
type UpdateContractInput struct {
	ContractType    *string
	DeliveryType    *string
	VesselID        *string
	CompanyID       *string
	LoadPortID      *string
	DischargePortID *string
	CargoTypeID     *string
	FreightRate     *float64
	LaycanStart     *time.Time
	LaycanEnd       *time.Time
	Quantity        *float64
	DemurrageRate   *float64
	UserID          string
	Reason          string
}

// Update applies a partial update, writing one field-change row per changed
// field and recomputing the fixture's derived columns.
func (s *ContractService) Update(ctx context.Context, id string, in UpdateContractInput) (*ent.Contract, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	rec := newChangeRecorder("contract", id, in.UserID)
	rec.Str("contract_type", c.ContractType, in.ContractType)
	rec.Str("delivery_type", c.DeliveryType, in.DeliveryType)
	rec.Str("vessel_id", c.VesselID, in.VesselID)
	rec.Str("company_id", c.CompanyID, in.CompanyID)
	rec.Str("load_port_id", c.LoadPortID, in.LoadPortID)
	rec.Str("discharge_port_id", c.DischargePortID, in.DischargePortID)
	rec.Str("cargo_type_id", c.CargoTypeID, in.CargoTypeID)
	rec.Float("freight_rate", c.FreightRate, in.FreightRate)
	rec.Time("laycan_start", c.LaycanStart, in.LaycanStart)
	rec.Time("laycan_end", c.LaycanEnd, in.LaycanEnd)
	rec.Float("quantity", c.Quantity, in.Quantity)
	rec.Float("demurrage_rate", c.DemurrageRate, in.DemurrageRate)
	if rec.empty() {
		return c, nil
	}
	for i := range rec.changes {
		rec.changes[i].Reason = in.Reason
	}

	var updated *ent.Contract
	err = WithTx(ctx, s.client, func(tx *ent.Client) error {
		upd := tx.Contract.UpdateOneID(id)
		if in.ContractType != nil {
			upd = upd.SetContractType(*in.ContractType)
		}
		if in.DeliveryType != nil {
			upd = upd.SetDeliveryType(*in.DeliveryType)
		}
		if in.VesselID != nil {
			upd = upd.SetVesselID(*in.VesselID)
		}
		if in.CompanyID != nil {
			upd = upd.SetCompanyID(*in.CompanyID)
		}
		if in.LoadPortID != nil {
			upd = upd.SetLoadPortID(*in.LoadPortID)
		}
		if in.DischargePortID != nil {
			upd = upd.SetDischargePortID(*in.DischargePortID)
		}
		if in.CargoTypeID != nil {
			upd = upd.SetCargoTypeID(*in.CargoTypeID)
		}
		if in.FreightRate != nil {
			upd = upd.SetFreightRate(*in.FreightRate)
		}
		if in.Quantity != nil {
			upd = upd.SetQuantity(*in.Quantity)
		}
		if in.DemurrageRate != nil {
			upd = upd.SetDemurrageRate(*in.DemurrageRate)
		}
		upd = upd.SetNillableLaycanStart(in.LaycanStart).
			SetNillableLaycanEnd(in.LaycanEnd)

		out, err := upd.Save(ctx)
		if err != nil {
			return fmt.Errorf("update contract: %w", err)
		}
		updated = out

		txAudit := s.audit.WithClient(tx)
		if err := rec.flush(ctx, txAudit); err != nil {
			return err
		}
		if err := txAudit.RecordActivity(ctx, audit.ActivityInput{
			EntityType:  "contract",
			EntityID:    id,
			Action:      "updated",
			Description: fmt.Sprintf("Contract %s updated", c.CpNumber),
			Metadata:    map[string]interface{}{"changed_fields": len(rec.changes)},
			UserID:      in.UserID,
		}); err != nil {
			return err
		}
		return s.recomputeFixture(ctx, tx, out)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateStatus transitions a contract.
func (s *ContractService) UpdateStatus(ctx context.Context, id, status, userID string) (*ent.Contract, error) {
	next := contract.Status(status)
	if err := contract.StatusValidator(next); err != nil {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidStatus,
			fmt.Sprintf("Unknown contract status %q", status))
	}
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var updated *ent.Contract
	err = WithTx(ctx, s.client, func(tx *ent.Client) error {
		out, err := tx.Contract.UpdateOneID(id).
			SetStatus(next).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update contract status: %w", err)
		}
		updated = out

		txAudit := s.audit.WithClient(tx)
		old := string(c.Status)
		now := string(next)
		if err := txAudit.RecordFieldChange(ctx, audit.FieldChangeInput{
			EntityType: "contract",
			EntityID:   id,
			FieldName:  "status",
			OldValue:   &old,
			NewValue:   &now,
			UserID:     userID,
		}); err != nil {
			return err
		}
		if err := txAudit.RecordActivity(ctx, audit.ActivityInput{
			EntityType:  "contract",
			EntityID:    id,
			Action:      "status-changed",
			Description: fmt.Sprintf("Contract %s moved from %s to %s", c.CpNumber, c.Status, next),
			Status:      now,
			UserID:      userID,
		}); err != nil {
			return err
		}
		return s.recomputeFixture(ctx, tx, out)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// recomputeFixture triggers the rollup when the contract belongs to a
// fixture. Contracts without a fixture skip it.
func (s *ContractService) recomputeFixture(ctx context.Context, tx *ent.Client, c *ent.Contract) error {
	fx, err := tx.Contract.QueryFixture(c).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("load contract fixture: %w", err)
	}
	return RecomputeFixtureDerived(ctx, tx, fx.ID)
}
