package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"charterdesk.io/charterdesk/internal/governance/audit"
	apperrors "charterdesk.io/charterdesk/internal/pkg/errors"
	"charterdesk.io/charterdesk/internal/testutil"
)

func TestOrderCreate_RejectsDuplicateNumber(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "order_dup")
	ctx := context.Background()
	orders := NewOrderService(client, audit.NewLogger(client))

	_, err := orders.Create(ctx, CreateOrderInput{
		OrderNumber: "ORD-100",
		Market:      "dry",
		CreatedBy:   "usr-test",
	})
	require.NoError(t, err)

	_, err = orders.Create(ctx, CreateOrderInput{
		OrderNumber: "ORD-100",
		CreatedBy:   "usr-test",
	})
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeNumberTaken, appErr.Code)
}

func TestOrderList_FiltersByMarketAndStatus(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "order_list")
	ctx := context.Background()
	orders := NewOrderService(client, audit.NewLogger(client))

	dry, err := orders.Create(ctx, CreateOrderInput{
		OrderNumber: "ORD-200",
		Market:      "dry",
		CreatedBy:   "usr-test",
	})
	require.NoError(t, err)
	_, err = orders.Create(ctx, CreateOrderInput{
		OrderNumber: "ORD-201",
		Market:      "wet",
		CreatedBy:   "usr-test",
	})
	require.NoError(t, err)
	_, err = orders.UpdateStatus(ctx, dry.ID, "active", "usr-test")
	require.NoError(t, err)

	byMarket, err := orders.List(ctx, ListOrdersFilter{Market: "dry"})
	require.NoError(t, err)
	require.Len(t, byMarket, 1)
	require.Equal(t, "ORD-200", byMarket[0].OrderNumber)

	byStatus, err := orders.List(ctx, ListOrdersFilter{Status: "active"})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	require.Equal(t, dry.ID, byStatus[0].ID)

	_, err = orders.UpdateStatus(ctx, dry.ID, "open", "usr-test")
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
}

func TestNegotiationCreate_RequiresExistingOrder(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "neg_noorder")
	ctx := context.Background()
	negotiations := NewNegotiationService(client, audit.NewLogger(client))

	_, err := negotiations.Create(ctx, CreateNegotiationInput{
		NegotiationNumber: "NEG-100",
		OrderID:           "ord-missing",
		CreatedBy:         "usr-test",
	})
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeOrderNotFound, appErr.Code)
}

func TestNegotiationUpdate_WidensIndicationEnvelope(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "neg_envelope")
	ctx := context.Background()
	auditLog := audit.NewLogger(client)
	orders := NewOrderService(client, auditLog)
	negotiations := NewNegotiationService(client, auditLog)

	ord, err := orders.Create(ctx, CreateOrderInput{
		OrderNumber: "ORD-300",
		CreatedBy:   "usr-test",
	})
	require.NoError(t, err)

	neg, err := negotiations.Create(ctx, CreateNegotiationInput{
		NegotiationNumber: "NEG-300",
		OrderID:           ord.ID,
		FreightRate:       12,
		CreatedBy:         "usr-test",
	})
	require.NoError(t, err)
	require.Equal(t, 12.0, neg.FirstIndication)
	require.Equal(t, 12.0, neg.HighestIndication)
	require.Equal(t, 12.0, neg.LowestIndication)

	// A higher counter raises the highest indication only.
	neg, err = negotiations.Update(ctx, neg.ID, UpdateNegotiationInput{
		FreightRate: floatPtr(15),
		UserID:      "usr-test",
	})
	require.NoError(t, err)
	require.Equal(t, 12.0, neg.FirstIndication)
	require.Equal(t, 15.0, neg.HighestIndication)
	require.Equal(t, 12.0, neg.LowestIndication)

	neg, err = negotiations.Update(ctx, neg.ID, UpdateNegotiationInput{
		FreightRate: floatPtr(10.5),
		UserID:      "usr-test",
	})
	require.NoError(t, err)
	require.Equal(t, 15.0, neg.HighestIndication)
	require.Equal(t, 10.5, neg.LowestIndication)

	listed, err := negotiations.List(ctx, ListNegotiationsFilter{OrderID: ord.ID})
	require.NoError(t, err)
	require.Len(t, listed, 1)
}

func TestNegotiationUpdateStatus_ValidatesTransitionName(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "neg_status")
	ctx := context.Background()
	auditLog := audit.NewLogger(client)
	orders := NewOrderService(client, auditLog)
	negotiations := NewNegotiationService(client, auditLog)

	ord, err := orders.Create(ctx, CreateOrderInput{
		OrderNumber: "ORD-301",
		CreatedBy:   "usr-test",
	})
	require.NoError(t, err)
	neg, err := negotiations.Create(ctx, CreateNegotiationInput{
		NegotiationNumber: "NEG-301",
		OrderID:           ord.ID,
		CreatedBy:         "usr-test",
	})
	require.NoError(t, err)

	_, err = negotiations.UpdateStatus(ctx, neg.ID, "sunk", "usr-test")
	require.Error(t, err)

	updated, err := negotiations.UpdateStatus(ctx, neg.ID, "firm", "usr-test")
	require.NoError(t, err)
	require.Equal(t, "firm", string(updated.Status))
}
