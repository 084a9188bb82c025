package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"charterdesk.io/charterdesk/internal/governance/audit"
	apperrors "charterdesk.io/charterdesk/internal/pkg/errors"
	"charterdesk.io/charterdesk/internal/testutil"
)

func TestContractUpdate_WritesOneFieldChangePerEditedField(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "contract_changes")
	ctx := context.Background()
	auditLog := audit.NewLogger(client)
	contracts := NewContractService(client, auditLog)

	c, err := contracts.Create(ctx, CreateContractInput{
		CpNumber:     "CP-500",
		ContractType: "voyage",
		FreightRate:  10,
		CreatedBy:    "usr-test",
	})
	require.NoError(t, err)

	_, err = contracts.Update(ctx, c.ID, UpdateContractInput{
		ContractType: strPtr("coa"),
		FreightRate:  floatPtr(12.5),
		UserID:       "usr-test",
		Reason:       "renegotiated after subs",
	})
	require.NoError(t, err)

	rows, err := auditLog.ListFieldChanges(ctx, "contract", c.ID, 50, 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byField := map[string]bool{}
	for _, row := range rows {
		byField[row.FieldName] = true
		require.Equal(t, "renegotiated after subs", row.Reason)
	}
	require.True(t, byField["contract_type"])
	require.True(t, byField["freight_rate"])
}

func TestContractUpdate_NoopProducesNoRows(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "contract_noop")
	ctx := context.Background()
	auditLog := audit.NewLogger(client)
	contracts := NewContractService(client, auditLog)

	c, err := contracts.Create(ctx, CreateContractInput{
		CpNumber:     "CP-501",
		ContractType: "voyage",
		CreatedBy:    "usr-test",
	})
	require.NoError(t, err)

	// Same value and nil pointers: nothing changed.
	_, err = contracts.Update(ctx, c.ID, UpdateContractInput{
		ContractType: strPtr("voyage"),
		UserID:       "usr-test",
	})
	require.NoError(t, err)

	rows, err := auditLog.ListFieldChanges(ctx, "contract", c.ID, 50, 0)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestFieldChanges_EnrichedWithActingUser(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "contract_enrich")
	ctx := context.Background()
	auditLog := audit.NewLogger(client)
	contracts := NewContractService(client, auditLog)
	accounts := NewAccountService(client, testPolicy())

	editor, err := accounts.CreateUser(ctx, CreateUserInput{
		Email:    "editor@example.com",
		Name:     "Edith Editor",
		Password: "long-enough-password",
	})
	require.NoError(t, err)

	c, err := contracts.Create(ctx, CreateContractInput{
		CpNumber:    "CP-510",
		FreightRate: 10,
		CreatedBy:   editor.ID,
	})
	require.NoError(t, err)
	_, err = contracts.Update(ctx, c.ID, UpdateContractInput{
		FreightRate: floatPtr(11),
		UserID:      editor.ID,
	})
	require.NoError(t, err)
	_, err = contracts.Update(ctx, c.ID, UpdateContractInput{
		FreightRate: floatPtr(12),
		UserID:      "usr-gone",
	})
	require.NoError(t, err)

	rows, err := auditLog.ListFieldChanges(ctx, "contract", c.ID, 50, 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// The known editor carries name and email for display; the unknown id
	// renders a null user instead of failing the read.
	for _, row := range rows {
		if row.UserID == editor.ID {
			require.NotNil(t, row.User)
			require.Equal(t, "Edith Editor", row.User.Name)
			require.Equal(t, "editor@example.com", row.User.Email)
		} else {
			require.Equal(t, "usr-gone", row.UserID)
			require.Nil(t, row.User)
		}
	}
}

func TestContractUpdateStatus_WritesStatusChangeAndActivity(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "contract_status")
	ctx := context.Background()
	auditLog := audit.NewLogger(client)
	contracts := NewContractService(client, auditLog)

	c, err := contracts.Create(ctx, CreateContractInput{
		CpNumber:  "CP-502",
		CreatedBy: "usr-test",
	})
	require.NoError(t, err)

	updated, err := contracts.UpdateStatus(ctx, c.ID, "review", "usr-test")
	require.NoError(t, err)
	require.Equal(t, "review", string(updated.Status))

	changes, err := auditLog.ListFieldChanges(ctx, "contract", c.ID, 50, 0)
	require.NoError(t, err)
	require.Len(t, changes, 1)
	require.Equal(t, "status", changes[0].FieldName)
	require.Equal(t, "drafting", *changes[0].OldValue)
	require.Equal(t, "review", *changes[0].NewValue)

	activities, err := auditLog.ListActivities(ctx, "contract", c.ID, 50, 0)
	require.NoError(t, err)
	// One row from the create, one from the status change, newest first.
	require.Len(t, activities, 2)
	require.Equal(t, "status-changed", activities[0].Action)
	require.Equal(t, "created", activities[1].Action)
}

func TestContractCreate_RejectsUnknownFixture(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "contract_badfx")
	ctx := context.Background()
	contracts := NewContractService(client, audit.NewLogger(client))

	_, err := contracts.Create(ctx, CreateContractInput{
		CpNumber:  "CP-503",
		FixtureID: "fix-missing",
		CreatedBy: "usr-test",
	})
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeFixtureNotFound, appErr.Code)
}
