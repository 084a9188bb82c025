package service

import (
	"context"
	"fmt"
	"time"

	"charterdesk.io/charterdesk/ent"
	entfixture "charterdesk.io/charterdesk/ent/fixture"
	"charterdesk.io/charterdesk/ent/recapmanager"
	"charterdesk.io/charterdesk/internal/governance/audit"
	apperrors "charterdesk.io/charterdesk/internal/pkg/errors"
)

// RecapService manages wet-market recap managers. Mirrors ContractService,
// including the fixture rollup trigger.
type RecapService struct {
	client *ent.Client
	audit  *audit.Logger
}

// NewRecapService creates a new RecapService.
func NewRecapService(client *ent.Client, auditLog *audit.Logger) *RecapService {
	return &RecapService{client: client, audit: auditLog}
}

// CreateRecapInput holds fields for drafting a recap manager.
type CreateRecapInput struct {
	RecapNumber     string
	FixtureID       string
	OrderID         string
	NegotiationID   string
	ParentRecapID   string
	ContractType    string
	DeliveryType    string
	MarketIndex     string
	VesselID        string
	CompanyID       string
	LoadPortID      string
	DischargePortID string
	CargoTypeID     string
	FreightRate     float64
	LaycanStart     *time.Time
	LaycanEnd       *time.Time
	Quantity        float64
	DemurrageRate   float64
	CreatedBy       string
}

// Create drafts a new recap manager.
func (s *RecapService) Create(ctx context.Context, in CreateRecapInput) (*ent.RecapManager, error) {
	taken, err := s.client.RecapManager.Query().
		Where(recapmanager.RecapNumberEQ(in.RecapNumber)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check recap number: %w", err)
	}
	if taken {
		return nil, apperrors.Conflict(apperrors.CodeNumberTaken,
			fmt.Sprintf("Recap number %q is already in use", in.RecapNumber))
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

	var created *ent.RecapManager
	err = WithTx(ctx, s.client, func(tx *ent.Client) error {
		create := tx.RecapManager.Create().
			SetID(NewID(PrefixRecap)).
			SetRecapNumber(in.RecapNumber).
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
		if in.ParentRecapID != "" {
			create = create.SetParentRecapID(in.ParentRecapID)
		}
		if in.ContractType != "" {
			create = create.SetContractType(in.ContractType)
		}
		if in.DeliveryType != "" {
			create = create.SetDeliveryType(in.DeliveryType)
		}
		if in.MarketIndex != "" {
			create = create.SetMarketIndex(in.MarketIndex)
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

		r, err := create.Save(ctx)
		if err != nil {
			return fmt.Errorf("create recap: %w", err)
		}
		created = r
		if err := s.audit.WithClient(tx).RecordActivity(ctx, audit.ActivityInput{
			EntityType:  "recap",
			EntityID:    r.ID,
			Action:      "created",
			Description: fmt.Sprintf("Recap %s drafted", r.RecapNumber),
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

// Get returns one recap manager by id.
func (s *RecapService) Get(ctx context.Context, id string) (*ent.RecapManager, error) {
	r, err := s.client.RecapManager.Query().
		Where(recapmanager.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeRecapNotFound, "Recap not found")
		}
		return nil, fmt.Errorf("get recap: %w", err)
	}
	return r, nil
}

// ListRecapsFilter restricts List results.
type ListRecapsFilter struct {
	FixtureID string
	OrderID   string
	Status    string
	Limit     int
	Offset    int
}

// List returns recap managers, newest first.
func (s *RecapService) List(ctx context.Context, f ListRecapsFilter) ([]*ent.RecapManager, error) {
	limit, offset := clampPage(f.Limit, f.Offset)
	q := s.client.RecapManager.Query()
	if f.FixtureID != "" {
		q = q.Where(recapmanager.HasFixtureWith(entfixture.IDEQ(f.FixtureID)))
	}
	if f.OrderID != "" {
		q = q.Where(recapmanager.OrderIDEQ(f.OrderID))
	}
	if f.Status != "" {
		q = q.Where(recapmanager.StatusEQ(recapmanager.Status(f.Status)))
	}
	recaps, err := q.
		Order(ent.Desc(recapmanager.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recaps: %w", err)
	}
	return recaps, nil
}

// UpdateRecapInput holds the partial-update fields of a recap manager.
type UpdateRecapInput struct {
	ContractType    *string
	DeliveryType    *string
	MarketIndex     *string
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
func (s *RecapService) Update(ctx context.Context, id string, in UpdateRecapInput) (*ent.RecapManager, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	rec := newChangeRecorder("recap", id, in.UserID)
	rec.Str("contract_type", r.ContractType, in.ContractType)
	rec.Str("delivery_type", r.DeliveryType, in.DeliveryType)
	rec.Str("market_index", r.MarketIndex, in.MarketIndex)
	rec.Str("vessel_id", r.VesselID, in.VesselID)
	rec.Str("company_id", r.CompanyID, in.CompanyID)
	rec.Str("load_port_id", r.LoadPortID, in.LoadPortID)
	rec.Str("discharge_port_id", r.DischargePortID, in.DischargePortID)
	rec.Str("cargo_type_id", r.CargoTypeID, in.CargoTypeID)
	rec.Float("freight_rate", r.FreightRate, in.FreightRate)
	rec.Time("laycan_start", r.LaycanStart, in.LaycanStart)
	rec.Time("laycan_end", r.LaycanEnd, in.LaycanEnd)
	rec.Float("quantity", r.Quantity, in.Quantity)
	rec.Float("demurrage_rate", r.DemurrageRate, in.DemurrageRate)
	if rec.empty() {
		return r, nil
	}
	for i := range rec.changes {
		rec.changes[i].Reason = in.Reason
	}

	var updated *ent.RecapManager
	err = WithTx(ctx, s.client, func(tx *ent.Client) error {
		upd := tx.RecapManager.UpdateOneID(id)
		if in.ContractType != nil {
			upd = upd.SetContractType(*in.ContractType)
		}
		if in.DeliveryType != nil {
			upd = upd.SetDeliveryType(*in.DeliveryType)
		}
		if in.MarketIndex != nil {
			upd = upd.SetMarketIndex(*in.MarketIndex)
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
			return fmt.Errorf("update recap: %w", err)
		}
		updated = out

		txAudit := s.audit.WithClient(tx)
		if err := rec.flush(ctx, txAudit); err != nil {
			return err
		}
		if err := txAudit.RecordActivity(ctx, audit.ActivityInput{
			EntityType:  "recap",
			EntityID:    id,
			Action:      "updated",
			Description: fmt.Sprintf("Recap %s updated", r.RecapNumber),
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

// UpdateStatus transitions a recap manager.
func (s *RecapService) UpdateStatus(ctx context.Context, id, status, userID string) (*ent.RecapManager, error) {
	next := recapmanager.Status(status)
	if err := recapmanager.StatusValidator(next); err != nil {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidStatus,
			fmt.Sprintf("Unknown recap status %q", status))
	}
	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var updated *ent.RecapManager
	err = WithTx(ctx, s.client, func(tx *ent.Client) error {
		out, err := tx.RecapManager.UpdateOneID(id).
			SetStatus(next).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update recap status: %w", err)
		}
		updated = out

		txAudit := s.audit.WithClient(tx)
		old := string(r.Status)
		now := string(next)
		if err := txAudit.RecordFieldChange(ctx, audit.FieldChangeInput{
			EntityType: "recap",
			EntityID:   id,
			FieldName:  "status",
			OldValue:   &old,
			NewValue:   &now,
			UserID:     userID,
		}); err != nil {
			return err
		}
		if err := txAudit.RecordActivity(ctx, audit.ActivityInput{
			EntityType:  "recap",
			EntityID:    id,
			Action:      "status-changed",
			Description: fmt.Sprintf("Recap %s moved from %s to %s", r.RecapNumber, r.Status, next),
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

func (s *RecapService) recomputeFixture(ctx context.Context, tx *ent.Client, r *ent.RecapManager) error {
	fx, err := tx.RecapManager.QueryFixture(r).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("load recap fixture: %w", err)
	}
	return RecomputeFixtureDerived(ctx, tx, fx.ID)
}
