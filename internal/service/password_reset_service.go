package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"charterdesk.io/charterdesk/ent"
	"charterdesk.io/charterdesk/ent/passwordresettoken"
	entuser "charterdesk.io/charterdesk/ent/user"
	"charterdesk.io/charterdesk/internal/config"
	apperrors "charterdesk.io/charterdesk/internal/pkg/errors"
	"charterdesk.io/charterdesk/internal/pkg/logger"
)

// PasswordResetService implements the single-use reset token flow. At most
// one live token per user: requesting a new one marks all prior unused
// tokens as used.
type PasswordResetService struct {
	client *ent.Client
	policy config.PasswordPolicy
	ttl    time.Duration
}

// NewPasswordResetService creates a new PasswordResetService.
func NewPasswordResetService(client *ent.Client, policy config.PasswordPolicy, ttl time.Duration) *PasswordResetService {
	return &PasswordResetService{client: client, policy: policy, ttl: ttl}
}

// Request issues a reset token for the account behind email. An unknown
// email returns an empty token with no error, so the endpoint does not leak
// which addresses have accounts. Delivery is an external collaborator; the
// token is only surfaced directly in dev mode.
func (s *PasswordResetService) Request(ctx context.Context, email string) (string, error) {
	u, err := s.client.User.Query().
		Where(entuser.EmailEQ(NormalizeEmail(email))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			logger.Info("password reset requested for unknown email")
			return "", nil
		}
		return "", fmt.Errorf("get user by email: %w", err)
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	token := hex.EncodeToString(buf)
	now := time.Now()

	err = WithTx(ctx, s.client, func(tx *ent.Client) error {
		invalidated, err := tx.PasswordResetToken.Update().
			Where(
				passwordresettoken.HasUserWith(entuser.IDEQ(u.ID)),
				passwordresettoken.UsedEQ(false),
			).
			SetUsed(true).
			SetUsedAt(now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("invalidate prior tokens: %w", err)
		}
		if invalidated > 0 {
			logger.Debug("invalidated prior reset tokens",
				zap.String("user_id", u.ID),
				zap.Int("count", invalidated),
			)
		}
		if _, err := tx.PasswordResetToken.Create().
			SetID(NewID(PrefixResetToken)).
			SetUserID(u.ID).
			SetToken(token).
			SetExpiresAt(now.Add(s.ttl)).
			Save(ctx); err != nil {
			return fmt.Errorf("create reset token: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return token, nil
}

// Verify reports whether a token is usable, with a descriptive error when
// it is not: not found, already used, or expired.
func (s *PasswordResetService) Verify(ctx context.Context, token string) error {
	row, err := s.client.PasswordResetToken.Query().
		Where(passwordresettoken.TokenEQ(token)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return apperrors.NotFound(apperrors.CodeResetTokenInvalid, "Reset token not found")
		}
		return fmt.Errorf("get reset token: %w", err)
	}
	if row.Used {
		return apperrors.Conflict(apperrors.CodeResetTokenInvalid, "Reset token already used")
	}
	if time.Now().After(row.ExpiresAt) {
		return apperrors.Conflict(apperrors.CodeResetTokenInvalid, "Reset token expired")
	}
	return nil
}

// Reset consumes a token and stores the new password hash.
func (s *PasswordResetService) Reset(ctx context.Context, token, newPassword string) error {
	if err := s.Verify(ctx, token); err != nil {
		return err
	}
	if err := ValidatePassword(s.policy, newPassword); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	row, err := s.client.PasswordResetToken.Query().
		Where(passwordresettoken.TokenEQ(token)).
		WithUser().
		Only(ctx)
	if err != nil {
		return fmt.Errorf("get reset token: %w", err)
	}
	u, err := row.Edges.UserOrErr()
	if err != nil {
		return fmt.Errorf("get token user: %w", err)
	}

	return WithTx(ctx, s.client, func(tx *ent.Client) error {
		if _, err := tx.User.UpdateOneID(u.ID).
			SetPasswordHash(string(hash)).
			Save(ctx); err != nil {
			return fmt.Errorf("update password: %w", err)
		}
		if _, err := tx.PasswordResetToken.UpdateOneID(row.ID).
			SetUsed(true).
			SetUsedAt(time.Now()).
			Save(ctx); err != nil {
			return fmt.Errorf("consume reset token: %w", err)
		}
		return nil
	})
}
