package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"charterdesk.io/charterdesk/ent"
	apperrors "charterdesk.io/charterdesk/internal/pkg/errors"
	"charterdesk.io/charterdesk/internal/testutil"
)

func resetFixture(t *testing.T, prefix string) (*ent.Client, *PasswordResetService, *AuthService, *ent.User) {
	t.Helper()

	client := testutil.OpenEntPostgres(t, prefix)
	ctx := context.Background()
	accounts := NewAccountService(client, testPolicy())
	resets := NewPasswordResetService(client, testPolicy(), time.Hour)
	auth := NewAuthService(client, testJWTConfig())

	u, err := accounts.CreateUser(ctx, CreateUserInput{
		Email:    "reset@example.com",
		Name:     "Reset User",
		Password: "original-password",
	})
	require.NoError(t, err)
	return client, resets, auth, u
}

func TestPasswordResetRequest_UnknownEmailIsSilent(t *testing.T) {
	t.Parallel()

	_, resets, _, _ := resetFixture(t, "reset_unknown")
	token, err := resets.Request(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	require.Empty(t, token)
}

func TestPasswordResetRequest_InvalidatesPriorTokens(t *testing.T) {
	t.Parallel()

	_, resets, _, _ := resetFixture(t, "reset_invalidate")
	ctx := context.Background()

	first, err := resets.Request(ctx, "reset@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := resets.Request(ctx, "reset@example.com")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	// The older token is dead; only the newest one verifies.
	err = resets.Verify(ctx, first)
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeResetTokenInvalid, appErr.Code)

	require.NoError(t, resets.Verify(ctx, second))
}

func TestPasswordReset_ConsumesTokenAndChangesPassword(t *testing.T) {
	t.Parallel()

	_, resets, auth, _ := resetFixture(t, "reset_consume")
	ctx := context.Background()

	token, err := resets.Request(ctx, "reset@example.com")
	require.NoError(t, err)

	require.NoError(t, resets.Reset(ctx, token, "brand-new-password"))

	// Old password stops working, new one logs in.
	_, err = auth.Login(ctx, "reset@example.com", "original-password")
	require.Error(t, err)
	result, err := auth.Login(ctx, "reset@example.com", "brand-new-password")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)

	// Single use.
	err = resets.Reset(ctx, token, "yet-another-password")
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeResetTokenInvalid, appErr.Code)
}

func TestPasswordReset_ExpiredTokenRejected(t *testing.T) {
	t.Parallel()

	client, resets, _, u := resetFixture(t, "reset_expired")
	ctx := context.Background()

	token, err := resets.Request(ctx, u.Email)
	require.NoError(t, err)

	rows, err := client.PasswordResetToken.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	_, err = client.PasswordResetToken.UpdateOneID(rows[0].ID).
		SetExpiresAt(time.Now().Add(-time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	err = resets.Verify(ctx, token)
	require.Error(t, err)

	err = resets.Reset(ctx, token, "brand-new-password")
	require.Error(t, err)
}

func TestPasswordReset_EnforcesPolicy(t *testing.T) {
	t.Parallel()

	_, resets, _, _ := resetFixture(t, "reset_policy")
	ctx := context.Background()

	token, err := resets.Request(ctx, "reset@example.com")
	require.NoError(t, err)

	err = resets.Reset(ctx, token, "short")
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeWeakPassword, appErr.Code)

	// Policy rejection does not consume the token.
	require.NoError(t, resets.Verify(ctx, token))
}
