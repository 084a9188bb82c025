package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"charterdesk.io/charterdesk/internal/governance/audit"
	apperrors "charterdesk.io/charterdesk/internal/pkg/errors"
	"charterdesk.io/charterdesk/internal/testutil"
)

func TestFixtureCreate_RejectsDuplicateNumber(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "fixture_dup")
	ctx := context.Background()
	fixtures := NewFixtureService(client, audit.NewLogger(client))

	_, err := fixtures.Create(ctx, CreateFixtureInput{FixtureNumber: "FX-100"})
	require.NoError(t, err)

	_, err = fixtures.Create(ctx, CreateFixtureInput{FixtureNumber: "FX-100"})
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeNumberTaken, appErr.Code)
}

func TestFixtureUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "fixture_status")
	ctx := context.Background()
	fixtures := NewFixtureService(client, audit.NewLogger(client))

	fx, err := fixtures.Create(ctx, CreateFixtureInput{FixtureNumber: "FX-200"})
	require.NoError(t, err)

	_, err = fixtures.UpdateStatus(ctx, fx.ID, "floating", "usr-test")
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)

	updated, err := fixtures.UpdateStatus(ctx, fx.ID, "on-subs", "usr-test")
	require.NoError(t, err)
	require.Equal(t, "on-subs", string(updated.Status))
}

func TestFixtureOverview_CollapsesTermsToEnvelopes(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "fixture_overview")
	ctx := context.Background()
	auditLog := audit.NewLogger(client)
	fixtures := NewFixtureService(client, auditLog)
	contracts := NewContractService(client, auditLog)
	recaps := NewRecapService(client, auditLog)

	fx, err := fixtures.Create(ctx, CreateFixtureInput{FixtureNumber: "FX-300"})
	require.NoError(t, err)

	_, err = contracts.Create(ctx, CreateContractInput{
		CpNumber:      "CP-300-A",
		FixtureID:     fx.ID,
		FreightRate:   10,
		Quantity:      55000,
		DemurrageRate: 18000,
		CreatedBy:     "usr-test",
	})
	require.NoError(t, err)
	_, err = contracts.Create(ctx, CreateContractInput{
		CpNumber:    "CP-300-B",
		FixtureID:   fx.ID,
		FreightRate: 14,
		Quantity:    60000,
		CreatedBy:   "usr-test",
	})
	require.NoError(t, err)
	_, err = recaps.Create(ctx, CreateRecapInput{
		RecapNumber: "RCP-300-A",
		FixtureID:   fx.ID,
		FreightRate: 12,
		CreatedBy:   "usr-test",
	})
	require.NoError(t, err)

	rows, err := fixtures.Overview(ctx, ListFixturesFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	require.Equal(t, fx.ID, row.FixtureID)
	require.Equal(t, 2, row.ContractCount)
	require.Equal(t, 1, row.RecapCount)
	require.Equal(t, 10.0, row.FreightRateMin)
	require.Equal(t, 14.0, row.FreightRateMax)
	require.Equal(t, 55000.0, row.QuantityMin)
	require.Equal(t, 60000.0, row.QuantityMax)
	// Only one agreement sets demurrage; unset zero values do not widen
	// the envelope.
	require.Equal(t, 18000.0, row.DemurrageMin)
	require.Equal(t, 18000.0, row.DemurrageMax)
}

func TestFixtureOverview_EmptyFixtureHasZeroEnvelopes(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "fixture_overview_empty")
	ctx := context.Background()
	fixtures := NewFixtureService(client, audit.NewLogger(client))

	_, err := fixtures.Create(ctx, CreateFixtureInput{FixtureNumber: "FX-400"})
	require.NoError(t, err)

	rows, err := fixtures.Overview(ctx, ListFixturesFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Zero(t, rows[0].ContractCount)
	require.Zero(t, rows[0].FreightRateMin)
	require.Zero(t, rows[0].FreightRateMax)
}
