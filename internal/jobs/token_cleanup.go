// Package jobs defines River Queue job types for background maintenance.
//
// Request-path behavior stays synchronous; these jobs only prune storage
// and backfill derived columns.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"charterdesk.io/charterdesk/ent"
	"charterdesk.io/charterdesk/ent/invitation"
	"charterdesk.io/charterdesk/ent/passwordresettoken"
	"charterdesk.io/charterdesk/internal/pkg/logger"
)

// DefaultTokenRetention is how long dead invitation and reset token rows
// are kept before pruning. Lazy expiry remains the semantic authority;
// this only reclaims storage.
const DefaultTokenRetention = 30 * 24 * time.Hour

// TokenCleanupArgs is a periodic maintenance job that prunes long-dead
// invitations and password reset tokens.
type TokenCleanupArgs struct{}

// Kind returns the job kind identifier for periodic token cleanup.
func (TokenCleanupArgs) Kind() string { return "token_cleanup" }

// InsertOpts ensures at most one cleanup job is enqueued within the same day.
func (TokenCleanupArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: 24 * time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// TokenCleanupWorker deletes invitation and reset token rows that have been
// dead longer than the retention window.
type TokenCleanupWorker struct {
	river.WorkerDefaults[TokenCleanupArgs]
	entClient *ent.Client
	retention time.Duration
}

// NewTokenCleanupWorker creates a cleanup worker. Non-positive retention
// falls back to the 30-day default.
func NewTokenCleanupWorker(entClient *ent.Client, retention time.Duration) *TokenCleanupWorker {
	if retention <= 0 {
		retention = DefaultTokenRetention
	}
	return &TokenCleanupWorker{
		entClient: entClient,
		retention: retention,
	}
}

// Work removes dead token rows. Pending invitations inside their expiry
// window are never touched; they expire lazily on read.
func (w *TokenCleanupWorker) Work(ctx context.Context, _ *river.Job[TokenCleanupArgs]) error {
	if w == nil || w.entClient == nil {
		return fmt.Errorf("token cleanup worker is not initialized")
	}

	cutoff := time.Now().UTC().Add(-w.retention)

	invitations, err := w.entClient.Invitation.Delete().
		Where(
			invitation.ExpiresAtLT(cutoff),
			invitation.StatusNEQ(invitation.StatusAccepted),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete dead invitations before %s: %w", cutoff.Format(time.RFC3339), err)
	}

	resetTokens, err := w.entClient.PasswordResetToken.Delete().
		Where(passwordresettoken.ExpiresAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete dead reset tokens before %s: %w", cutoff.Format(time.RFC3339), err)
	}

	logger.Info("token cleanup completed",
		zap.Int("deleted_invitations", invitations),
		zap.Int("deleted_reset_tokens", resetTokens),
		zap.String("cutoff", cutoff.Format(time.RFC3339)),
		zap.Duration("retention", w.retention),
	)
	return nil
}
