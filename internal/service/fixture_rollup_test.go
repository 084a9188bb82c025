package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"charterdesk.io/charterdesk/internal/governance/audit"
	"charterdesk.io/charterdesk/internal/pkg/logger"
	"charterdesk.io/charterdesk/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

func TestRecomputeFixtureDerived_MissingFixtureIsNoop(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "rollup_missing")
	err := RecomputeFixtureDerived(context.Background(), client, "fix-does-not-exist")
	require.NoError(t, err)
}

func TestRecomputeFixtureDerived_CollectsRelatedNames(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "rollup_names")
	ctx := context.Background()
	auditLog := audit.NewLogger(client)
	fixtures := NewFixtureService(client, auditLog)
	contracts := NewContractService(client, auditLog)
	reference := NewReferenceService(client)

	vessel, err := reference.CreateVessel(ctx, CreateVesselInput{
		Name:      "MV Aegean Spirit",
		ImoNumber: "9434761",
	})
	require.NoError(t, err)
	port, err := reference.CreatePort(ctx, CreatePortInput{
		Name:    "Rotterdam",
		Country: "Netherlands",
	})
	require.NoError(t, err)
	cargo, err := reference.CreateCargoType(ctx, CreateCargoTypeInput{Name: "Iron Ore"})
	require.NoError(t, err)

	fx, err := fixtures.Create(ctx, CreateFixtureInput{FixtureNumber: "FX-1001"})
	require.NoError(t, err)

	_, err = contracts.Create(ctx, CreateContractInput{
		CpNumber:     "CP-2026-001",
		FixtureID:    fx.ID,
		ContractType: "voyage",
		VesselID:     vessel.ID,
		LoadPortID:   port.ID,
		CargoTypeID:  cargo.ID,
		FreightRate:  14.25,
		CreatedBy:    "usr-test",
	})
	require.NoError(t, err)

	got, err := fixtures.Get(ctx, fx.ID)
	require.NoError(t, err)
	require.NotNil(t, got.SearchText)
	require.NotNil(t, got.LastUpdated)

	text := *got.SearchText
	require.Contains(t, text, "fx-1001")
	require.Contains(t, text, "cp-2026-001")
	require.Contains(t, text, "voyage")
	require.Contains(t, text, "mv aegean spirit")
	require.Contains(t, text, "9434761")
	require.Contains(t, text, "rotterdam")
	require.Contains(t, text, "netherlands")
	require.Contains(t, text, "iron ore")

	// Everything is lowercased.
	require.Equal(t, strings.ToLower(text), text)
}

func TestRecomputeFixtureDerived_IsIdempotent(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "rollup_idem")
	ctx := context.Background()
	auditLog := audit.NewLogger(client)
	fixtures := NewFixtureService(client, auditLog)
	contracts := NewContractService(client, auditLog)

	fx, err := fixtures.Create(ctx, CreateFixtureInput{FixtureNumber: "FX-2002"})
	require.NoError(t, err)
	_, err = contracts.Create(ctx, CreateContractInput{
		CpNumber:  "CP-2026-002",
		FixtureID: fx.ID,
		CreatedBy: "usr-test",
	})
	require.NoError(t, err)

	require.NoError(t, fixtures.Reindex(ctx, fx.ID))
	first, err := fixtures.Get(ctx, fx.ID)
	require.NoError(t, err)

	require.NoError(t, fixtures.Reindex(ctx, fx.ID))
	second, err := fixtures.Get(ctx, fx.ID)
	require.NoError(t, err)

	require.NotNil(t, first.SearchText)
	require.NotNil(t, second.SearchText)
	require.Equal(t, *first.SearchText, *second.SearchText)
}

func TestRecomputeFixtureDerived_ContractUpdateBumpsLastUpdated(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "rollup_bump")
	ctx := context.Background()
	auditLog := audit.NewLogger(client)
	fixtures := NewFixtureService(client, auditLog)
	contracts := NewContractService(client, auditLog)

	fx, err := fixtures.Create(ctx, CreateFixtureInput{FixtureNumber: "FX-3003"})
	require.NoError(t, err)
	c, err := contracts.Create(ctx, CreateContractInput{
		CpNumber:    "CP-2026-003",
		FixtureID:   fx.ID,
		FreightRate: 10,
		CreatedBy:   "usr-test",
	})
	require.NoError(t, err)

	before, err := fixtures.Get(ctx, fx.ID)
	require.NoError(t, err)
	require.NotNil(t, before.LastUpdated)

	_, err = contracts.Update(ctx, c.ID, UpdateContractInput{
		FreightRate: floatPtr(11.5),
		UserID:      "usr-test",
	})
	require.NoError(t, err)

	after, err := fixtures.Get(ctx, fx.ID)
	require.NoError(t, err)
	require.NotNil(t, after.LastUpdated)
	require.False(t, after.LastUpdated.Before(*before.LastUpdated))

	// The new freight is not part of search text but the rollup reran, so
	// search text still reflects the current children set.
	require.Contains(t, *after.SearchText, "cp-2026-003")
}

func TestFixtureList_SearchMatchesDerivedText(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "rollup_search")
	ctx := context.Background()
	auditLog := audit.NewLogger(client)
	fixtures := NewFixtureService(client, auditLog)
	contracts := NewContractService(client, auditLog)
	reference := NewReferenceService(client)

	vessel, err := reference.CreateVessel(ctx, CreateVesselInput{Name: "MV Coral Harvest"})
	require.NoError(t, err)

	fx, err := fixtures.Create(ctx, CreateFixtureInput{FixtureNumber: "FX-4004"})
	require.NoError(t, err)
	_, err = contracts.Create(ctx, CreateContractInput{
		CpNumber:  "CP-2026-004",
		FixtureID: fx.ID,
		VesselID:  vessel.ID,
		CreatedBy: "usr-test",
	})
	require.NoError(t, err)

	other, err := fixtures.Create(ctx, CreateFixtureInput{FixtureNumber: "FX-5005"})
	require.NoError(t, err)
	require.NoError(t, fixtures.Reindex(ctx, other.ID))

	// Case-insensitive substring match against the derived column.
	rows, err := fixtures.List(ctx, ListFixturesFilter{Search: "Coral"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, fx.ID, rows[0].ID)
}
