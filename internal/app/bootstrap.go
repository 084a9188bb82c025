// Package app is the composition root. Bootstrap stays orchestration-only;
// construction logic lives in the packages being wired.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/riverqueue/river"

	"charterdesk.io/charterdesk/internal/api/handlers"
	"charterdesk.io/charterdesk/internal/api/middleware"
	"charterdesk.io/charterdesk/internal/config"
	"charterdesk.io/charterdesk/internal/governance/audit"
	"charterdesk.io/charterdesk/internal/infrastructure"
	"charterdesk.io/charterdesk/internal/jobs"
	"charterdesk.io/charterdesk/internal/notification"
	"charterdesk.io/charterdesk/internal/pkg/worker"
	"charterdesk.io/charterdesk/internal/service"
	"charterdesk.io/charterdesk/internal/usecase"
)

// Application holds composed application dependencies.
type Application struct {
	Config *config.Config
	Router *gin.Engine
	DB     *infrastructure.DatabaseClients
	Pools  *worker.Pools
}

// Bootstrap initializes all dependencies using manual DI.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	pools, err := worker.NewPools(ctx, worker.PoolConfig{
		GeneralPoolSize: cfg.Worker.GeneralPoolSize,
		ReindexPoolSize: cfg.Worker.ReindexPoolSize,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init worker pools: %w", err)
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, jobs.NewTokenCleanupWorker(db.EntClient, cfg.River.TokenRetention))
	river.AddWorker(workers, jobs.NewFixtureReindexWorker(db.EntClient, pools))
	if err := db.InitRiverClient(workers, cfg.River); err != nil {
		pools.Shutdown()
		db.Close()
		return nil, fmt.Errorf("init river client: %w", err)
	}

	// Expired invitations and stale reset tokens are pruned daily; run once
	// on startup so a long-stopped instance catches up immediately.
	db.RiverClient.PeriodicJobs().Add(
		river.NewPeriodicJob(
			river.PeriodicInterval(24*time.Hour),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.TokenCleanupArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	)

	jwtCfg := middleware.JWTConfig{
		SigningKey: []byte(cfg.Auth.JWTSecret),
		Issuer:     cfg.Auth.JWTIssuer,
		ExpiresIn:  cfg.Auth.TokenLifetime,
	}

	auditLog := audit.NewLogger(db.EntClient)
	sender := notification.NewSender(db.EntClient)

	server := handlers.NewServer(handlers.ServerDeps{
		EntClient:    db.EntClient,
		Pool:         db.Pool,
		Audit:        auditLog,
		Sender:       sender,
		Auth:         service.NewAuthService(db.EntClient, jwtCfg),
		Accounts:     service.NewAccountService(db.EntClient, cfg.Auth.PasswordPolicy),
		Invitations:  service.NewInvitationService(db.EntClient, sender, cfg.Auth.PasswordPolicy, cfg.Auth.InvitationTTL),
		PasswordRst:  service.NewPasswordResetService(db.EntClient, cfg.Auth.PasswordPolicy, cfg.Auth.ResetTokenTTL),
		Orders:       service.NewOrderService(db.EntClient, auditLog),
		Negotiations: service.NewNegotiationService(db.EntClient, auditLog),
		Fixtures:     service.NewFixtureService(db.EntClient, auditLog),
		Contracts:    service.NewContractService(db.EntClient, auditLog),
		Recaps:       service.NewRecapService(db.EntClient, auditLog),
		Addenda:      service.NewAddendumService(db.EntClient, auditLog),
		Signatures:   service.NewSignatureService(db.EntClient, auditLog, sender),
		Reference:    service.NewReferenceService(db.EntClient),
		Approvals:    usecase.NewApprovalUsecase(db.EntClient, auditLog, sender),
		RiverClient:  db.RiverClient,
		Pools:        pools,
		DevMode:      cfg.Dev.ExposeResetTokens,
	})

	return &Application{
		Config: cfg,
		Router: newRouter(cfg, server, jwtCfg),
		DB:     db,
		Pools:  pools,
	}, nil
}
