package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"charterdesk.io/charterdesk/internal/api/middleware"
	apperrors "charterdesk.io/charterdesk/internal/pkg/errors"
	"charterdesk.io/charterdesk/internal/testutil"
)

func testJWTConfig() middleware.JWTConfig {
	return middleware.JWTConfig{
		SigningKey: []byte("test-signing-key-0123456789abcdef"),
		Issuer:     "charterdesk-test",
		ExpiresIn:  time.Hour,
	}
}

func TestLogin_IssuesTokenWithIdentityClaims(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "auth_login")
	ctx := context.Background()
	accounts := NewAccountService(client, testPolicy())
	auth := NewAuthService(client, testJWTConfig())

	org, err := accounts.CreateOrganization(ctx, "Pacific Desk")
	require.NoError(t, err)
	u, err := accounts.CreateUser(ctx, CreateUserInput{
		OrganizationID: org.ID,
		Email:          "Trader@Example.com",
		Name:           "Trader",
		Password:       "long-enough-password",
		Role:           "broker",
	})
	require.NoError(t, err)

	// Login is case-insensitive on the email.
	result, err := auth.Login(ctx, "trader@example.com", "long-enough-password")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	require.True(t, result.ExpiresAt.After(time.Now()))

	claims := &middleware.JWTClaims{}
	parsed, err := jwt.ParseWithClaims(result.Token, claims, func(*jwt.Token) (interface{}, error) {
		return testJWTConfig().SigningKey, nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	require.Equal(t, u.ID, claims.UserID)
	require.Equal(t, "broker", claims.Role)
	require.Equal(t, org.ID, claims.OrganizationID)

	// Successful login stamps last_login_at.
	refreshed, err := accounts.GetUser(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, refreshed.LastLoginAt)
}

func TestLogin_WrongCredentialsAreIndistinguishable(t *testing.T) {
	t.Parallel()

	client := testutil.OpenEntPostgres(t, "auth_generic")
	ctx := context.Background()
	accounts := NewAccountService(client, testPolicy())
	auth := NewAuthService(client, testJWTConfig())

	u, err := accounts.CreateUser(ctx, CreateUserInput{
		Email:    "known@example.com",
		Name:     "Known",
		Password: "long-enough-password",
	})
	require.NoError(t, err)

	_, wrongPassword := auth.Login(ctx, "known@example.com", "not-the-password")
	_, unknownEmail := auth.Login(ctx, "unknown@example.com", "long-enough-password")

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	require.Equal(t, wrongPassword.Error(), unknownEmail.Error())

	// Disabled accounts get the same answer.
	_, err = accounts.UpdateUser(ctx, u.ID, UpdateUserInput{Active: boolPtr(false)})
	require.NoError(t, err)
	_, disabled := auth.Login(ctx, "known@example.com", "long-enough-password")
	require.Error(t, disabled)
	require.Equal(t, wrongPassword.Error(), disabled.Error())

	appErr, ok := apperrors.IsAppError(disabled)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeAuthFailed, appErr.Code)
}

func boolPtr(b bool) *bool { return &b }
