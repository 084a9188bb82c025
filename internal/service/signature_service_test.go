package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"charterdesk.io/charterdesk/ent/contract"
	"charterdesk.io/charterdesk/internal/governance/audit"
	"charterdesk.io/charterdesk/internal/notification"
	apperrors "charterdesk.io/charterdesk/internal/pkg/errors"
	"charterdesk.io/charterdesk/internal/testutil"
)

func TestSignatureRecord_RejectsUnknownParent(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "sig_orphan")
	signatures := NewSignatureService(client, audit.NewLogger(client), notification.NewSender(client))

	_, err := signatures.Record(context.Background(), RecordSignatureInput{
		EntityType: "contract",
		EntityID:   "ctr-missing",
		SignerName: "Captain Haddock",
		Party:      "owner",
	})
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeContractNotFound, appErr.Code)
}

func TestSignatureSign_MarksContractSigned(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "sig_sign")
	ctx := context.Background()
	auditLog := audit.NewLogger(client)
	contracts := NewContractService(client, auditLog)
	signatures := NewSignatureService(client, auditLog, notification.NewSender(client))

	c, err := contracts.Create(ctx, CreateContractInput{
		CpNumber:  "CP-900",
		CreatedBy: "usr-test",
	})
	require.NoError(t, err)

	sig, err := signatures.Record(ctx, RecordSignatureInput{
		EntityType:  "contract",
		EntityID:    c.ID,
		SignerName:  "Anna Lindqvist",
		SignerEmail: "anna@owner.example",
		Party:       "owner",
	})
	require.NoError(t, err)
	require.Nil(t, sig.SignedAt)

	signed, err := signatures.Sign(ctx, sig.ID, "usr-test")
	require.NoError(t, err)
	require.NotNil(t, signed.SignedAt)

	after, err := client.Contract.Get(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, contract.StatusSigned, after.Status)

	// Signing twice is a no-op that keeps the original timestamp.
	again, err := signatures.Sign(ctx, sig.ID, "usr-test")
	require.NoError(t, err)
	require.Equal(t, signed.SignedAt.Unix(), again.SignedAt.Unix())

	listed, err := signatures.ListForEntity(ctx, "contract", c.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
}

func TestSignatureRecord_ValidatesParty(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "sig_party")
	ctx := context.Background()
	auditLog := audit.NewLogger(client)
	contracts := NewContractService(client, auditLog)
	signatures := NewSignatureService(client, auditLog, notification.NewSender(client))

	c, err := contracts.Create(ctx, CreateContractInput{
		CpNumber:  "CP-901",
		CreatedBy: "usr-test",
	})
	require.NoError(t, err)

	_, err = signatures.Record(ctx, RecordSignatureInput{
		EntityType: "contract",
		EntityID:   c.ID,
		SignerName: "Nobody",
		Party:      "stowaway",
	})
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeInvalidRequestField, appErr.Code)
}
