package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"charterdesk.io/charterdesk/ent"
	entuser "charterdesk.io/charterdesk/ent/user"
	"charterdesk.io/charterdesk/internal/api/middleware"
	apperrors "charterdesk.io/charterdesk/internal/pkg/errors"
	"charterdesk.io/charterdesk/internal/pkg/logger"
)

// AuthService implements the single identity provider: local email and
// password accounts with bearer tokens.
type AuthService struct {
	client *ent.Client
	jwt    middleware.JWTConfig
}

// NewAuthService creates a new AuthService.
func NewAuthService(client *ent.Client, jwtCfg middleware.JWTConfig) *AuthService {
	return &AuthService{client: client, jwt: jwtCfg}
}

// LoginResult carries the authenticated user and their bearer token.
type LoginResult struct {
	User      *ent.User `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login verifies credentials and issues a JWT. Wrong email, wrong password
// and disabled accounts all return the same generic error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	failed := apperrors.Unauthorized(apperrors.CodeAuthFailed, "Invalid email or password")

	u, err := s.client.User.Query().
		Where(entuser.EmailEQ(NormalizeEmail(email))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, failed
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	if !u.Active || u.PasswordHash == "" {
		return nil, failed
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, failed
	}

	orgID := ""
	if org, err := u.QueryOrganization().Only(ctx); err == nil {
		orgID = org.ID
	} else if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("get user organization: %w", err)
	}

	token, expiresAt, err := middleware.GenerateToken(s.jwt, u.ID, u.Email, string(u.Role), orgID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	// Best effort; a failed stamp must not block the login.
	if _, err := s.client.User.UpdateOneID(u.ID).
		SetLastLoginAt(time.Now()).
		Save(ctx); err != nil {
		logger.Warn("record last login failed", zap.String("user_id", u.ID), zap.Error(err))
	}

	return &LoginResult{User: u, Token: token, ExpiresAt: expiresAt}, nil
}

// Me returns the account behind the authenticated caller.
func (s *AuthService) Me(ctx context.Context, userID string) (*ent.User, error) {
	u, err := s.client.User.Query().
		Where(entuser.IDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeUserNotFound, "User not found")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}
