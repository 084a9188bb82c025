package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charterdesk.io/charterdesk/ent"
	"charterdesk.io/charterdesk/ent/contract"
	entfixture "charterdesk.io/charterdesk/ent/fixture"
	"charterdesk.io/charterdesk/ent/negotiation"
	entorder "charterdesk.io/charterdesk/ent/order"
	"charterdesk.io/charterdesk/ent/recapmanager"
	"charterdesk.io/charterdesk/internal/governance/audit"
	apperrors "charterdesk.io/charterdesk/internal/pkg/errors"
)

// FixtureService manages fixtures and their derived overview rows.
type FixtureService struct {
	client *ent.Client
	audit  *audit.Logger
}

// NewFixtureService creates a new FixtureService.
func NewFixtureService(client *ent.Client, auditLog *audit.Logger) *FixtureService {
	return &FixtureService{client: client, audit: auditLog}
}

// CreateFixtureInput holds fields for creating a fixture.
type CreateFixtureInput struct {
	FixtureNumber string
	OrderID       string
	CreatedBy     string
}

// Create inserts a new fixture. Fixture numbers are unique.
func (s *FixtureService) Create(ctx context.Context, in CreateFixtureInput) (*ent.Fixture, error) {
	taken, err := s.client.Fixture.Query().
		Where(entfixture.FixtureNumberEQ(in.FixtureNumber)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check fixture number: %w", err)
	}
	if taken {
		return nil, apperrors.Conflict(apperrors.CodeNumberTaken,
			fmt.Sprintf("Fixture number %q is already in use", in.FixtureNumber))
	}
	if in.OrderID != "" {
		exists, err := s.client.Order.Query().
			Where(entorder.IDEQ(in.OrderID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check order: %w", err)
		}
		if !exists {
			return nil, apperrors.NotFound(apperrors.CodeOrderNotFound, "Order not found")
		}
	}

	var created *ent.Fixture
	err = WithTx(ctx, s.client, func(tx *ent.Client) error {
		create := tx.Fixture.Create().
			SetID(NewID(PrefixFixture)).
			SetFixtureNumber(in.FixtureNumber)
		if in.OrderID != "" {
			create = create.SetOrderID(in.OrderID)
		}
		fx, err := create.Save(ctx)
		if err != nil {
			return fmt.Errorf("create fixture: %w", err)
		}
		created = fx
		return s.audit.WithClient(tx).RecordActivity(ctx, audit.ActivityInput{
			EntityType:  "fixture",
			EntityID:    fx.ID,
			Action:      "created",
			Description: fmt.Sprintf("Fixture %s created", fx.FixtureNumber),
			UserID:      in.CreatedBy,
		})
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Get returns one fixture by id.
func (s *FixtureService) Get(ctx context.Context, id string) (*ent.Fixture, error) {
	fx, err := s.client.Fixture.Query().
		Where(entfixture.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeFixtureNotFound, "Fixture not found")
		}
		return nil, fmt.Errorf("get fixture: %w", err)
	}
	return fx, nil
}

// ListFixturesFilter restricts List results. Search matches against the
// derived search_text column, case-insensitive.
type ListFixturesFilter struct {
	Status string
	Search string
	Limit  int
	Offset int
}

// List returns fixtures ordered by last activity, newest first. Fixtures
// that never had a rollup sort by creation time.
func (s *FixtureService) List(ctx context.Context, f ListFixturesFilter) ([]*ent.Fixture, error) {
	limit, offset := clampPage(f.Limit, f.Offset)
	q := s.client.Fixture.Query()
	if f.Status != "" {
		q = q.Where(entfixture.StatusEQ(entfixture.Status(f.Status)))
	}
	if f.Search != "" {
		q = q.Where(entfixture.SearchTextContains(strings.ToLower(strings.TrimSpace(f.Search))))
	}
	fixtures, err := q.
		Order(ent.Desc(entfixture.FieldLastUpdated), ent.Desc(entfixture.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}
	return fixtures, nil
}

// UpdateStatus transitions a fixture and recomputes its derived fields.
func (s *FixtureService) UpdateStatus(ctx context.Context, id, status, userID string) (*ent.Fixture, error) {
	next := entfixture.Status(status)
	if err := entfixture.StatusValidator(next); err != nil {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidStatus,
			fmt.Sprintf("Unknown fixture status %q", status))
	}
	fx, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var updated *ent.Fixture
	err = WithTx(ctx, s.client, func(tx *ent.Client) error {
		out, err := tx.Fixture.UpdateOneID(id).
			SetStatus(next).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update fixture status: %w", err)
		}
		if err := s.audit.WithClient(tx).RecordActivity(ctx, audit.ActivityInput{
			EntityType:  "fixture",
			EntityID:    id,
			Action:      "status-changed",
			Description: fmt.Sprintf("Fixture %s moved from %s to %s", fx.FixtureNumber, fx.Status, next),
			Status:      string(next),
			UserID:      userID,
		}); err != nil {
			return err
		}
		if err := RecomputeFixtureDerived(ctx, tx, id); err != nil {
			return err
		}
		updated = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Reindex recomputes derived fields for one fixture on demand.
func (s *FixtureService) Reindex(ctx context.Context, id string) error {
	return WithTx(ctx, s.client, func(tx *ent.Client) error {
		return RecomputeFixtureDerived(ctx, tx, id)
	})
}

// FixtureOverviewRow is the wide per-fixture row backing the UI table.
// When a fixture groups several agreements the commercial terms collapse
// to min/max envelopes.
type FixtureOverviewRow struct {
	FixtureID        string     `json:"fixture_id"`
	FixtureNumber    string     `json:"fixture_number"`
	Status           string     `json:"status"`
	OrderNumber      string     `json:"order_number,omitempty"`
	LastUpdated      *time.Time `json:"last_updated,omitempty"`
	SearchText       string     `json:"search_text,omitempty"`
	ContractCount    int        `json:"contract_count"`
	RecapCount       int        `json:"recap_count"`
	NegotiationCount int        `json:"negotiation_count"`
	FreightRateMin   float64    `json:"freight_rate_min,omitempty"`
	FreightRateMax   float64    `json:"freight_rate_max,omitempty"`
	QuantityMin      float64    `json:"quantity_min,omitempty"`
	QuantityMax      float64    `json:"quantity_max,omitempty"`
	DemurrageMin     float64    `json:"demurrage_min,omitempty"`
	DemurrageMax     float64    `json:"demurrage_max,omitempty"`
}

// Overview assembles one wide row per fixture matching the filter.
func (s *FixtureService) Overview(ctx context.Context, f ListFixturesFilter) ([]FixtureOverviewRow, error) {
	fixtures, err := s.List(ctx, f)
	if err != nil {
		return nil, err
	}

	rows := make([]FixtureOverviewRow, 0, len(fixtures))
	for _, fx := range fixtures {
		row := FixtureOverviewRow{
			FixtureID:     fx.ID,
			FixtureNumber: fx.FixtureNumber,
			Status:        string(fx.Status),
			LastUpdated:   fx.LastUpdated,
		}
		if fx.SearchText != nil {
			row.SearchText = *fx.SearchText
		}
		if ord, err := fx.QueryOrder().Only(ctx); err == nil {
			row.OrderNumber = ord.OrderNumber
			count, err := s.client.Negotiation.Query().
				Where(negotiation.HasOrderWith(entorder.IDEQ(ord.ID))).
				Count(ctx)
			if err != nil {
				return nil, fmt.Errorf("count negotiations: %w", err)
			}
			row.NegotiationCount = count
		} else if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("load fixture order: %w", err)
		}

		contracts, err := s.client.Contract.Query().
			Where(contract.HasFixtureWith(entfixture.IDEQ(fx.ID))).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("load fixture contracts: %w", err)
		}
		recaps, err := s.client.RecapManager.Query().
			Where(recapmanager.HasFixtureWith(entfixture.IDEQ(fx.ID))).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("load fixture recaps: %w", err)
		}

		row.ContractCount = len(contracts)
		row.RecapCount = len(recaps)
		env := envelope{}
		for _, c := range contracts {
			env.observe(c.FreightRate, c.Quantity, c.DemurrageRate)
		}
		for _, r := range recaps {
			env.observe(r.FreightRate, r.Quantity, r.DemurrageRate)
		}
		row.FreightRateMin, row.FreightRateMax = env.freight.minMax()
		row.QuantityMin, row.QuantityMax = env.quantity.minMax()
		row.DemurrageMin, row.DemurrageMax = env.demurrage.minMax()
		rows = append(rows, row)
	}
	return rows, nil
}

// envelope tracks min/max per commercial term, ignoring unset zero values.
type envelope struct {
	freight   bounds
	quantity  bounds
	demurrage bounds
}

func (e *envelope) observe(freight, quantity, demurrage float64) {
	e.freight.observe(freight)
	e.quantity.observe(quantity)
	e.demurrage.observe(demurrage)
}

type bounds struct {
	set bool
	min float64
	max float64
}

func (b *bounds) observe(v float64) {
	if v == 0 {
		return
	}
	if !b.set {
		b.set, b.min, b.max = true, v, v
		return
	}
	if v < b.min {
		b.min = v
	}
	if v > b.max {
		b.max = v
	}
}

func (b bounds) minMax() (float64, float64) {
	return b.min, b.max
}
