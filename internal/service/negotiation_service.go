package service

import (
	"context"
	"fmt"

	"charterdesk.io/charterdesk/ent"
	"charterdesk.io/charterdesk/ent/negotiation"
	entorder "charterdesk.io/charterdesk/ent/order"
	"charterdesk.io/charterdesk/internal/governance/audit"
	apperrors "charterdesk.io/charterdesk/internal/pkg/errors"
)

// NegotiationService manages counterparty negotiations against orders.
//
// Negotiation edits do not trigger the fixture rollup; derived fixture
// fields catch up on the next contract or recap mutation.
type NegotiationService struct {
	client *ent.Client
	audit  *audit.Logger
}

// NewNegotiationService creates a new NegotiationService.
func NewNegotiationService(client *ent.Client, auditLog *audit.Logger) *NegotiationService {
	return &NegotiationService{client: client, audit: auditLog}
}

// CreateNegotiationInput holds fields for opening a negotiation.
type CreateNegotiationInput struct {
	NegotiationNumber string
	OrderID           string
	CompanyID         string
	VesselID          string
	FreightRate       float64
	MarketIndex       string
	DeliveryType      string
	CreatedBy         string
}

// Create opens a negotiation under an order.
func (s *NegotiationService) Create(ctx context.Context, in CreateNegotiationInput) (*ent.Negotiation, error) {
	exists, err := s.client.Order.Query().
		Where(entorder.IDEQ(in.OrderID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check order: %w", err)
	}
	if !exists {
		return nil, apperrors.NotFound(apperrors.CodeOrderNotFound, "Order not found")
	}

	var created *ent.Negotiation
	err = WithTx(ctx, s.client, func(tx *ent.Client) error {
		create := tx.Negotiation.Create().
			SetID(NewID(PrefixNegotiation)).
			SetNegotiationNumber(in.NegotiationNumber).
			SetOrderID(in.OrderID).
			SetCreatedBy(in.CreatedBy)
		if in.CompanyID != "" {
			create = create.SetCompanyID(in.CompanyID)
		}
		if in.VesselID != "" {
			create = create.SetVesselID(in.VesselID)
		}
		if in.FreightRate != 0 {
			// The opening rate doubles as the first indication.
			create = create.SetFreightRate(in.FreightRate).
				SetFirstIndication(in.FreightRate).
				SetHighestIndication(in.FreightRate).
				SetLowestIndication(in.FreightRate)
		}
		if in.MarketIndex != "" {
			create = create.SetMarketIndex(in.MarketIndex)
		}
		if in.DeliveryType != "" {
			create = create.SetDeliveryType(in.DeliveryType)
		}

		neg, err := create.Save(ctx)
		if err != nil {
			return fmt.Errorf("create negotiation: %w", err)
		}
		created = neg
		return s.audit.WithClient(tx).RecordActivity(ctx, audit.ActivityInput{
			EntityType:  "negotiation",
			EntityID:    neg.ID,
			Action:      "created",
			Description: fmt.Sprintf("Negotiation %s opened", neg.NegotiationNumber),
			UserID:      in.CreatedBy,
		})
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Get returns one negotiation by id.
func (s *NegotiationService) Get(ctx context.Context, id string) (*ent.Negotiation, error) {
	neg, err := s.client.Negotiation.Query().
		Where(negotiation.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeNegotiationNotFound, "Negotiation not found")
		}
		return nil, fmt.Errorf("get negotiation: %w", err)
	}
	return neg, nil
}

// ListNegotiationsFilter restricts List results.
type ListNegotiationsFilter struct {
	OrderID string
	Status  string
	Limit   int
	Offset  int
}

// List returns negotiations, newest first.
func (s *NegotiationService) List(ctx context.Context, f ListNegotiationsFilter) ([]*ent.Negotiation, error) {
	limit, offset := clampPage(f.Limit, f.Offset)
	q := s.client.Negotiation.Query()
	if f.OrderID != "" {
		q = q.Where(negotiation.HasOrderWith(entorder.IDEQ(f.OrderID)))
	}
	if f.Status != "" {
		q = q.Where(negotiation.StatusEQ(negotiation.Status(f.Status)))
	}
	negotiations, err := q.
		Order(ent.Desc(negotiation.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list negotiations: %w", err)
	}
	return negotiations, nil
}

// UpdateNegotiationInput holds the partial-update fields of a negotiation.
type UpdateNegotiationInput struct {
	CompanyID    *string
	VesselID     *string
	FreightRate  *float64
	MarketIndex  *string
	DeliveryType *string
	UserID       string
}

// Update applies a partial update. A freight-rate edit also widens the
// highest/lowest indication envelope.
func (s *NegotiationService) Update(ctx context.Context, id string, in UpdateNegotiationInput) (*ent.Negotiation, error) {
	neg, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var updated *ent.Negotiation
	err = WithTx(ctx, s.client, func(tx *ent.Client) error {
		upd := tx.Negotiation.UpdateOneID(id)
		if in.CompanyID != nil {
			upd = upd.SetCompanyID(*in.CompanyID)
		}
		if in.VesselID != nil {
			upd = upd.SetVesselID(*in.VesselID)
		}
		if in.MarketIndex != nil {
			upd = upd.SetMarketIndex(*in.MarketIndex)
		}
		if in.DeliveryType != nil {
			upd = upd.SetDeliveryType(*in.DeliveryType)
		}
		if in.FreightRate != nil {
			rate := *in.FreightRate
			upd = upd.SetFreightRate(rate)
			if neg.FirstIndication == 0 {
				upd = upd.SetFirstIndication(rate)
			}
			if rate > neg.HighestIndication {
				upd = upd.SetHighestIndication(rate)
			}
			if neg.LowestIndication == 0 || rate < neg.LowestIndication {
				upd = upd.SetLowestIndication(rate)
			}
		}

		out, err := upd.Save(ctx)
		if err != nil {
			return fmt.Errorf("update negotiation: %w", err)
		}
		updated = out
		return s.audit.WithClient(tx).RecordActivity(ctx, audit.ActivityInput{
			EntityType:  "negotiation",
			EntityID:    id,
			Action:      "updated",
			Description: fmt.Sprintf("Negotiation %s updated", neg.NegotiationNumber),
			UserID:      in.UserID,
		})
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateStatus transitions a negotiation.
func (s *NegotiationService) UpdateStatus(ctx context.Context, id, status, userID string) (*ent.Negotiation, error) {
	next := negotiation.Status(status)
	if err := negotiation.StatusValidator(next); err != nil {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidStatus,
			fmt.Sprintf("Unknown negotiation status %q", status))
	}
	neg, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var updated *ent.Negotiation
	err = WithTx(ctx, s.client, func(tx *ent.Client) error {
		out, err := tx.Negotiation.UpdateOneID(id).
			SetStatus(next).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update negotiation status: %w", err)
		}
		updated = out
		return s.audit.WithClient(tx).RecordActivity(ctx, audit.ActivityInput{
			EntityType:  "negotiation",
			EntityID:    id,
			Action:      "status-changed",
			Description: fmt.Sprintf("Negotiation %s moved from %s to %s", neg.NegotiationNumber, neg.Status, next),
			Status:      string(next),
			UserID:      userID,
		})
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
