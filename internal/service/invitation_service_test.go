package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"charterdesk.io/charterdesk/ent"
	"charterdesk.io/charterdesk/ent/invitation"
	"charterdesk.io/charterdesk/internal/config"
	"charterdesk.io/charterdesk/internal/notification"
	apperrors "charterdesk.io/charterdesk/internal/pkg/errors"
	"charterdesk.io/charterdesk/internal/testutil"
)

func testPolicy() config.PasswordPolicy {
	return config.PasswordPolicy{MinLength: 10}
}

func invitationFixture(t *testing.T, prefix string) (*ent.Client, *InvitationService, *AccountService, *ent.Organization, *ent.User) {
	t.Helper()

	client := testutil.OpenEntPostgres(t, prefix)
	ctx := context.Background()
	accounts := NewAccountService(client, testPolicy())
	invitations := NewInvitationService(client, notification.NewSender(client), testPolicy(), 7*24*time.Hour)

	org, err := accounts.CreateOrganization(ctx, "Meridian Chartering")
	require.NoError(t, err)
	inviter, err := accounts.CreateUser(ctx, CreateUserInput{
		OrganizationID: org.ID,
		Email:          "desk@meridian.example",
		Name:           "Desk Admin",
		Password:       "long-enough-password",
		Role:           "admin",
	})
	require.NoError(t, err)
	return client, invitations, accounts, org, inviter
}

func TestInvite_RejectsSecondPendingForSameEmail(t *testing.T) {
	t.Parallel()

	_, invitations, _, org, inviter := invitationFixture(t, "invite_dup")
	ctx := context.Background()

	_, err := invitations.Invite(ctx, InviteInput{
		OrganizationID: org.ID,
		Email:          "Broker@Example.com",
		InvitedBy:      inviter.ID,
	})
	require.NoError(t, err)

	// Same address with different casing is still the same invitation.
	_, err = invitations.Invite(ctx, InviteInput{
		OrganizationID: org.ID,
		Email:          "broker@example.com",
		InvitedBy:      inviter.ID,
	})
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeInvitationSent, appErr.Code)
}

func TestInvite_SameEmailDifferentOrganization(t *testing.T) {
	t.Parallel()

	_, invitations, accounts, org, inviter := invitationFixture(t, "invite_crossorg")
	ctx := context.Background()

	_, err := invitations.Invite(ctx, InviteInput{
		OrganizationID: org.ID,
		Email:          "shared@example.com",
		InvitedBy:      inviter.ID,
	})
	require.NoError(t, err)

	other, err := accounts.CreateOrganization(ctx, "Baltic Brokers")
	require.NoError(t, err)
	_, err = invitations.Invite(ctx, InviteInput{
		OrganizationID: other.ID,
		Email:          "shared@example.com",
		InvitedBy:      inviter.ID,
	})
	require.NoError(t, err)
}

func TestInvite_ExpiredPendingDoesNotBlockReinvite(t *testing.T) {
	t.Parallel()

	client, invitations, _, org, inviter := invitationFixture(t, "invite_expired")
	ctx := context.Background()

	inv, err := invitations.Invite(ctx, InviteInput{
		OrganizationID: org.ID,
		Email:          "late@example.com",
		InvitedBy:      inviter.ID,
	})
	require.NoError(t, err)

	// Push the deadline into the past; the next invite lazily expires it.
	_, err = client.Invitation.UpdateOneID(inv.ID).
		SetExpiresAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = invitations.Invite(ctx, InviteInput{
		OrganizationID: org.ID,
		Email:          "late@example.com",
		InvitedBy:      inviter.ID,
	})
	require.NoError(t, err)

	old, err := client.Invitation.Get(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, invitation.StatusExpired, old.Status)
}

func TestAccept_ExpiredInvitationFailsAndFlipsStatus(t *testing.T) {
	t.Parallel()

	client, invitations, _, org, inviter := invitationFixture(t, "accept_expired")
	ctx := context.Background()

	inv, err := invitations.Invite(ctx, InviteInput{
		OrganizationID: org.ID,
		Email:          "slow@example.com",
		InvitedBy:      inviter.ID,
	})
	require.NoError(t, err)

	_, err = client.Invitation.UpdateOneID(inv.ID).
		SetExpiresAt(time.Now().Add(-time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	_, err = invitations.Accept(ctx, AcceptInput{
		Token:    inv.Token,
		Email:    "slow@example.com",
		Name:     "Slow Accepter",
		Password: "long-enough-password",
	})
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeInvitationExpired, appErr.Code)

	// The failed accept is what flips the row to its terminal state.
	after, err := client.Invitation.Get(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, invitation.StatusExpired, after.Status)
}

func TestAccept_EmailMismatchIsForbidden(t *testing.T) {
	t.Parallel()

	_, invitations, _, org, inviter := invitationFixture(t, "accept_mismatch")
	ctx := context.Background()

	inv, err := invitations.Invite(ctx, InviteInput{
		OrganizationID: org.ID,
		Email:          "invited@example.com",
		InvitedBy:      inviter.ID,
	})
	require.NoError(t, err)

	_, err = invitations.Accept(ctx, AcceptInput{
		Token:    inv.Token,
		Email:    "somebody-else@example.com",
		Name:     "Somebody Else",
		Password: "long-enough-password",
	})
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeEmailMismatch, appErr.Code)
}

func TestAccept_CreatesAccountAndConsumesInvitation(t *testing.T) {
	t.Parallel()

	client, invitations, accounts, org, inviter := invitationFixture(t, "accept_new")
	ctx := context.Background()

	inv, err := invitations.Invite(ctx, InviteInput{
		OrganizationID: org.ID,
		Email:          "newbroker@example.com",
		Role:           "broker",
		InvitedBy:      inviter.ID,
	})
	require.NoError(t, err)

	result, err := invitations.Accept(ctx, AcceptInput{
		Token:    inv.Token,
		Email:    "NewBroker@example.com",
		Name:     "New Broker",
		Password: "long-enough-password",
	})
	require.NoError(t, err)
	require.False(t, result.AlreadyMember)
	require.NotNil(t, result.User)
	require.Equal(t, "newbroker@example.com", result.User.Email)

	members, err := accounts.ListUsers(ctx, org.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)

	consumed, err := client.Invitation.Get(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, invitation.StatusAccepted, consumed.Status)

	// A second accept with the same token reports membership instead of
	// failing.
	again, err := invitations.Accept(ctx, AcceptInput{
		Token: inv.Token,
		Email: "newbroker@example.com",
	})
	require.NoError(t, err)
	require.True(t, again.AlreadyMember)
}

func TestAccept_RequiresNameAndPasswordForNewAccounts(t *testing.T) {
	t.Parallel()

	_, invitations, _, org, inviter := invitationFixture(t, "accept_incomplete")
	ctx := context.Background()

	inv, err := invitations.Invite(ctx, InviteInput{
		OrganizationID: org.ID,
		Email:          "incomplete@example.com",
		InvitedBy:      inviter.ID,
	})
	require.NoError(t, err)

	_, err = invitations.Accept(ctx, AcceptInput{
		Token: inv.Token,
		Email: "incomplete@example.com",
	})
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeInvalidRequestField, appErr.Code)
}

func TestRevoke_OnlyPendingInvitations(t *testing.T) {
	t.Parallel()

	_, invitations, _, org, inviter := invitationFixture(t, "invite_revoke")
	ctx := context.Background()

	inv, err := invitations.Invite(ctx, InviteInput{
		OrganizationID: org.ID,
		Email:          "revoked@example.com",
		InvitedBy:      inviter.ID,
	})
	require.NoError(t, err)

	revoked, err := invitations.Revoke(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, invitation.StatusRevoked, revoked.Status)

	_, err = invitations.Revoke(ctx, inv.ID)
	require.Error(t, err)

	_, err = invitations.GetByToken(ctx, inv.Token)
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeInvitationRevoked, appErr.Code)
}
