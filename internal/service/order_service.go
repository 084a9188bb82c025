package service

import (
	"context"
	"fmt"
	"time"

	"charterdesk.io/charterdesk/ent"
	entorder "charterdesk.io/charterdesk/ent/order"
	"charterdesk.io/charterdesk/internal/governance/audit"
	apperrors "charterdesk.io/charterdesk/internal/pkg/errors"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// clampPage normalizes list pagination parameters.
func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// OrderService manages trading orders.
type OrderService struct {
	client *ent.Client
	audit  *audit.Logger
}

// NewOrderService creates a new OrderService.
func NewOrderService(client *ent.Client, auditLog *audit.Logger) *OrderService {
	return &OrderService{client: client, audit: auditLog}
}

// CreateOrderInput holds fields for creating an order.
type CreateOrderInput struct {
	OrderNumber     string
	OrganizationID  string
	Market          string
	CargoTypeID     string
	LoadPortID      string
	DischargePortID string
	LaycanStart     *time.Time
	LaycanEnd       *time.Time
	Quantity        float64
	Notes           string
	CreatedBy       string
}

// Create inserts a new order. Order numbers are unique across the system.
func (s *OrderService) Create(ctx context.Context, in CreateOrderInput) (*ent.Order, error) {
	taken, err := s.client.Order.Query().
		Where(entorder.OrderNumberEQ(in.OrderNumber)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check order number: %w", err)
	}
	if taken {
		return nil, apperrors.Conflict(apperrors.CodeNumberTaken,
			fmt.Sprintf("Order number %q is already in use", in.OrderNumber))
	}

	var created *ent.Order
	err = WithTx(ctx, s.client, func(tx *ent.Client) error {
		create := tx.Order.Create().
			SetID(NewID(PrefixOrder)).
			SetOrderNumber(in.OrderNumber).
			SetCreatedBy(in.CreatedBy)
		if in.OrganizationID != "" {
			create = create.SetOrganizationID(in.OrganizationID)
		}
		if in.Market != "" {
			market := entorder.Market(in.Market)
			if err := entorder.MarketValidator(market); err != nil {
				return apperrors.BadRequest(apperrors.CodeInvalidRequestField,
					fmt.Sprintf("Unknown market %q", in.Market))
			}
			create = create.SetMarket(market)
		}
		if in.CargoTypeID != "" {
			create = create.SetCargoTypeID(in.CargoTypeID)
		}
		if in.LoadPortID != "" {
			create = create.SetLoadPortID(in.LoadPortID)
		}
		if in.DischargePortID != "" {
			create = create.SetDischargePortID(in.DischargePortID)
		}
		if in.Quantity != 0 {
			create = create.SetQuantity(in.Quantity)
		}
		if in.Notes != "" {
			create = create.SetNotes(in.Notes)
		}
		create = create.SetNillableLaycanStart(in.LaycanStart).
			SetNillableLaycanEnd(in.LaycanEnd)

		ord, err := create.Save(ctx)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		created = ord
		return s.audit.WithClient(tx).RecordActivity(ctx, audit.ActivityInput{
			EntityType:  "order",
			EntityID:    ord.ID,
			Action:      "created",
			Description: fmt.Sprintf("Order %s created", ord.OrderNumber),
			UserID:      in.CreatedBy,
		})
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Get returns one order by id.
func (s *OrderService) Get(ctx context.Context, id string) (*ent.Order, error) {
	ord, err := s.client.Order.Query().
		Where(entorder.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeOrderNotFound, "Order not found")
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return ord, nil
}

// ListOrdersFilter restricts List results.
type ListOrdersFilter struct {
	Status         string
	OrganizationID string
	Market         string
	Limit          int
	Offset         int
}

// List returns orders, newest first.
func (s *OrderService) List(ctx context.Context, f ListOrdersFilter) ([]*ent.Order, error) {
	limit, offset := clampPage(f.Limit, f.Offset)
	q := s.client.Order.Query()
	if f.Status != "" {
		q = q.Where(entorder.StatusEQ(entorder.Status(f.Status)))
	}
	if f.OrganizationID != "" {
		q = q.Where(entorder.OrganizationIDEQ(f.OrganizationID))
	}
	if f.Market != "" {
		q = q.Where(entorder.MarketEQ(entorder.Market(f.Market)))
	}
	orders, err := q.
		Order(ent.Desc(entorder.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// UpdateOrderInput holds the partial-update fields of an order. Nil means
// the field is left untouched.
type UpdateOrderInput struct {
	CargoTypeID     *string
	LoadPortID      *string
	DischargePortID *string
	LaycanStart     *time.Time
	LaycanEnd       *time.Time
	Quantity        *float64
	Notes           *string
	UserID          string
}

// Update applies a partial update to an order.
func (s *OrderService) Update(ctx context.Context, id string, in UpdateOrderInput) (*ent.Order, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	var updated *ent.Order
	err := WithTx(ctx, s.client, func(tx *ent.Client) error {
		upd := tx.Order.UpdateOneID(id)
		if in.CargoTypeID != nil {
			upd = upd.SetCargoTypeID(*in.CargoTypeID)
		}
		if in.LoadPortID != nil {
			upd = upd.SetLoadPortID(*in.LoadPortID)
		}
		if in.DischargePortID != nil {
			upd = upd.SetDischargePortID(*in.DischargePortID)
		}
		if in.Quantity != nil {
			upd = upd.SetQuantity(*in.Quantity)
		}
		if in.Notes != nil {
			upd = upd.SetNotes(*in.Notes)
		}
		upd = upd.SetNillableLaycanStart(in.LaycanStart).
			SetNillableLaycanEnd(in.LaycanEnd)

		ord, err := upd.Save(ctx)
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		updated = ord
		return s.audit.WithClient(tx).RecordActivity(ctx, audit.ActivityInput{
			EntityType:  "order",
			EntityID:    ord.ID,
			Action:      "updated",
			Description: fmt.Sprintf("Order %s updated", ord.OrderNumber),
			UserID:      in.UserID,
		})
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateStatus transitions an order to the given status.
func (s *OrderService) UpdateStatus(ctx context.Context, id, status, userID string) (*ent.Order, error) {
	next := entorder.Status(status)
	if err := entorder.StatusValidator(next); err != nil {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidStatus,
			fmt.Sprintf("Unknown order status %q", status))
	}
	ord, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var updated *ent.Order
	err = WithTx(ctx, s.client, func(tx *ent.Client) error {
		out, err := tx.Order.UpdateOneID(id).
			SetStatus(next).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		updated = out
		return s.audit.WithClient(tx).RecordActivity(ctx, audit.ActivityInput{
			EntityType:  "order",
			EntityID:    id,
			Action:      "status-changed",
			Description: fmt.Sprintf("Order %s moved from %s to %s", ord.OrderNumber, ord.Status, next),
			Status:      string(next),
			UserID:      userID,
		})
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
