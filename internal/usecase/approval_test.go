package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"charterdesk.io/charterdesk/ent"
	"charterdesk.io/charterdesk/ent/approval"
	"charterdesk.io/charterdesk/ent/contract"
	"charterdesk.io/charterdesk/internal/config"
	"charterdesk.io/charterdesk/internal/governance/audit"
	"charterdesk.io/charterdesk/internal/notification"
	apperrors "charterdesk.io/charterdesk/internal/pkg/errors"
	"charterdesk.io/charterdesk/internal/pkg/logger"
	"charterdesk.io/charterdesk/internal/service"
	"charterdesk.io/charterdesk/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

func approvalFixture(t *testing.T, prefix string) (*ent.Client, *ApprovalUsecase, *service.ContractService, *notification.Sender) {
	t.Helper()

	client := testutil.OpenEntPostgres(t, prefix)
	auditLog := audit.NewLogger(client)
	sender := notification.NewSender(client)
	return client,
		NewApprovalUsecase(client, auditLog, sender),
		service.NewContractService(client, auditLog),
		sender
}

func TestApprovalRequest_RejectsSecondPending(t *testing.T) {
	t.Parallel()

	_, approvals, contracts, _ := approvalFixture(t, "approval_dup")
	ctx := context.Background()

	c, err := contracts.Create(ctx, service.CreateContractInput{
		CpNumber:  "CP-700",
		CreatedBy: "usr-requester",
	})
	require.NoError(t, err)

	apr, err := approvals.Request(ctx, "contract", c.ID, "usr-requester")
	require.NoError(t, err)
	require.Equal(t, approval.StatusPending, apr.Status)

	_, err = approvals.Request(ctx, "contract", c.ID, "usr-requester")
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeDuplicateRequest, appErr.Code)
}

func TestApprovalDecide_ApproveFinalizesContract(t *testing.T) {
	t.Parallel()

	client, approvals, contracts, _ := approvalFixture(t, "approval_approve")
	ctx := context.Background()

	c, err := contracts.Create(ctx, service.CreateContractInput{
		CpNumber:  "CP-701",
		CreatedBy: "usr-requester",
	})
	require.NoError(t, err)

	apr, err := approvals.Request(ctx, "contract", c.ID, "usr-requester")
	require.NoError(t, err)

	decided, err := approvals.Decide(ctx, apr.ID, true, "looks good", "usr-requester")
	require.NoError(t, err)
	require.Equal(t, approval.StatusApproved, decided.Status)
	require.NotNil(t, decided.DecidedAt)

	after, err := client.Contract.Get(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, contract.StatusFinal, after.Status)

	// A settled approval cannot be decided twice.
	_, err = approvals.Decide(ctx, apr.ID, false, "", "usr-requester")
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeApprovalDecided, appErr.Code)
}

func TestApprovalDecide_RejectReturnsContractToDrafting(t *testing.T) {
	t.Parallel()

	client, approvals, contracts, _ := approvalFixture(t, "approval_reject")
	ctx := context.Background()

	c, err := contracts.Create(ctx, service.CreateContractInput{
		CpNumber:  "CP-702",
		CreatedBy: "usr-requester",
	})
	require.NoError(t, err)
	_, err = contracts.UpdateStatus(ctx, c.ID, "review", "usr-requester")
	require.NoError(t, err)

	apr, err := approvals.Request(ctx, "contract", c.ID, "usr-requester")
	require.NoError(t, err)

	decided, err := approvals.Decide(ctx, apr.ID, false, "terms changed", "usr-requester")
	require.NoError(t, err)
	require.Equal(t, approval.StatusRejected, decided.Status)

	after, err := client.Contract.Get(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, contract.StatusDrafting, after.Status)
}

func TestApprovalDecide_NotifiesRequester(t *testing.T) {
	t.Parallel()

	client, approvals, contracts, sender := approvalFixture(t, "approval_notify")
	ctx := context.Background()

	accounts := service.NewAccountService(client, config.PasswordPolicy{MinLength: 10})
	requester, err := accounts.CreateUser(ctx, service.CreateUserInput{
		Email:    "requester@example.com",
		Name:     "Requester",
		Password: "long-enough-password",
	})
	require.NoError(t, err)
	approver, err := accounts.CreateUser(ctx, service.CreateUserInput{
		Email:    "approver@example.com",
		Name:     "Approver",
		Password: "long-enough-password",
	})
	require.NoError(t, err)

	c, err := contracts.Create(ctx, service.CreateContractInput{
		CpNumber:  "CP-703",
		CreatedBy: requester.ID,
	})
	require.NoError(t, err)

	apr, err := approvals.Request(ctx, "contract", c.ID, requester.ID)
	require.NoError(t, err)
	_, err = approvals.Decide(ctx, apr.ID, true, "", approver.ID)
	require.NoError(t, err)

	inbox, err := sender.ListForUser(ctx, requester.ID, true, 10, 0)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	require.Contains(t, inbox[0].Title, "CP-703")

	// The approver made the decision, so their own inbox stays empty.
	count, err := sender.UnreadCount(ctx, approver.ID)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestApprovalRequest_UnknownEntityType(t *testing.T) {
	t.Parallel()

	_, approvals, _, _ := approvalFixture(t, "approval_badtype")

	_, err := approvals.Request(context.Background(), "order", "ord-1", "usr-requester")
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeInvalidRequestField, appErr.Code)
}
