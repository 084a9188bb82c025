package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"charterdesk.io/charterdesk/ent"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func timePtr(t time.Time) *time.Time { return &t }

func TestChangeRecorder_NilMeansUntouched(t *testing.T) {
	rec := newChangeRecorder("contract", "cp-1", "usr-1")
	rec.Str("contract_type", "voyage", nil)
	rec.Float("freight_rate", 12.5, nil)
	rec.Time("laycan_start", nil, nil)
	require.True(t, rec.empty())
}

func TestChangeRecorder_UnchangedValueProducesNoRow(t *testing.T) {
	rec := newChangeRecorder("contract", "cp-1", "usr-1")
	rec.Str("contract_type", "voyage", strPtr("voyage"))
	rec.Float("quantity", 55000, floatPtr(55000))
	require.True(t, rec.empty())
}

func TestChangeRecorder_RecordsOldAndNew(t *testing.T) {
	rec := newChangeRecorder("contract", "cp-1", "usr-1")
	rec.Str("delivery_type", "aps", strPtr("dop"))
	rec.Float("freight_rate", 0, floatPtr(14.25))

	require.Len(t, rec.changes, 2)

	require.Equal(t, "delivery_type", rec.changes[0].FieldName)
	require.Equal(t, "aps", *rec.changes[0].OldValue)
	require.Equal(t, "dop", *rec.changes[0].NewValue)

	// A zero prior value renders as absent, not "0".
	require.Equal(t, "freight_rate", rec.changes[1].FieldName)
	require.Nil(t, rec.changes[1].OldValue)
	require.Equal(t, "14.25", *rec.changes[1].NewValue)
}

func TestChangeRecorder_TimeRendersUTCRFC3339(t *testing.T) {
	loc := time.FixedZone("CEST", 2*60*60)
	old := time.Date(2026, 3, 10, 14, 0, 0, 0, loc)
	upd := time.Date(2026, 3, 12, 8, 30, 0, 0, time.UTC)

	rec := newChangeRecorder("recap", "rcp-1", "usr-1")
	rec.Time("laycan_start", timePtr(old), timePtr(upd))

	require.Len(t, rec.changes, 1)
	require.Equal(t, "2026-03-10T12:00:00Z", *rec.changes[0].OldValue)
	require.Equal(t, "2026-03-12T08:30:00Z", *rec.changes[0].NewValue)
}

func TestChangeRecorder_TimeEqualInstantIsNoop(t *testing.T) {
	instant := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	other := instant.In(time.FixedZone("X", 3*60*60))

	rec := newChangeRecorder("recap", "rcp-1", "usr-1")
	rec.Time("laycan_end", timePtr(instant), timePtr(other))
	require.True(t, rec.empty())
}

func TestTokenSet_LowercasesTrimsAndDedupes(t *testing.T) {
	s := newTokenSet()
	s.add("  MV Aegean Spirit ", "mv aegean spirit", "", "ROTTERDAM")
	require.Equal(t, "mv aegean spirit rotterdam", s.join())
}

func TestTokenSet_JoinIsDeterministic(t *testing.T) {
	first := newTokenSet()
	first.add("zeta", "alpha", "mid")
	second := newTokenSet()
	second.add("mid", "zeta", "alpha")
	require.Equal(t, first.join(), second.join())
	require.Equal(t, "alpha mid zeta", first.join())
}

func TestBounds_IgnoresZeroObservations(t *testing.T) {
	var b bounds
	b.observe(0)
	min, max := b.minMax()
	require.Zero(t, min)
	require.Zero(t, max)

	b.observe(12.5)
	b.observe(0)
	b.observe(9.75)
	b.observe(15)
	min, max = b.minMax()
	require.Equal(t, 9.75, min)
	require.Equal(t, 15.0, max)
}

func TestRollupLastUpdated_TakesNewestChildTimestamp(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	fx := &ent.Fixture{CreatedAt: base, UpdatedAt: base.Add(time.Hour)}
	contracts := []*ent.Contract{
		{CreatedAt: base.Add(2 * time.Hour), UpdatedAt: base.Add(5 * time.Hour)},
		{CreatedAt: base.Add(3 * time.Hour)}, // updated_at never set
	}
	recaps := []*ent.RecapManager{
		{CreatedAt: base.Add(30 * time.Minute), UpdatedAt: base.Add(4 * time.Hour)},
	}
	negotiations := []*ent.Negotiation{
		{CreatedAt: base.Add(6 * time.Hour)},
	}

	got := rollupLastUpdated(fx, contracts, recaps, negotiations)
	require.Equal(t, base.Add(6*time.Hour), got)
}

func TestRollupLastUpdated_FixtureOwnTimestampWins(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	fx := &ent.Fixture{CreatedAt: base, UpdatedAt: base.Add(10 * time.Hour)}
	contracts := []*ent.Contract{
		{CreatedAt: base.Add(time.Hour), UpdatedAt: base.Add(2 * time.Hour)},
	}

	got := rollupLastUpdated(fx, contracts, nil, nil)
	require.Equal(t, base.Add(10*time.Hour), got)
}
