// Package handlers implements the HTTP API.
//
// Handlers bind and delegate; business rules live in the service and
// usecase packages. Errors flow through c.Error into the centralized
// error-handler middleware, so a handler that fails writes no body.
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"

	"charterdesk.io/charterdesk/ent"
	"charterdesk.io/charterdesk/internal/governance/audit"
	"charterdesk.io/charterdesk/internal/notification"
	"charterdesk.io/charterdesk/internal/pkg/worker"
	"charterdesk.io/charterdesk/internal/service"
	"charterdesk.io/charterdesk/internal/usecase"
)

// Server carries the handler dependencies.
type Server struct {
	client       *ent.Client
	pool         *pgxpool.Pool
	audit        *audit.Logger
	sender       *notification.Sender
	auth         *service.AuthService
	accounts     *service.AccountService
	invitations  *service.InvitationService
	passwordRst  *service.PasswordResetService
	orders       *service.OrderService
	negotiations *service.NegotiationService
	fixtures     *service.FixtureService
	contracts    *service.ContractService
	recaps       *service.RecapService
	addenda      *service.AddendumService
	signatures   *service.SignatureService
	reference    *service.ReferenceService
	approvals    *usecase.ApprovalUsecase
	riverClient  *river.Client[pgx.Tx]
	pools        *worker.Pools
	devMode      bool
}

// ServerDeps holds all dependencies for creating a Server. Manual DI.
type ServerDeps struct {
	EntClient    *ent.Client
	Pool         *pgxpool.Pool
	Audit        *audit.Logger
	Sender       *notification.Sender
	Auth         *service.AuthService
	Accounts     *service.AccountService
	Invitations  *service.InvitationService
	PasswordRst  *service.PasswordResetService
	Orders       *service.OrderService
	Negotiations *service.NegotiationService
	Fixtures     *service.FixtureService
	Contracts    *service.ContractService
	Recaps       *service.RecapService
	Addenda      *service.AddendumService
	Signatures   *service.SignatureService
	Reference    *service.ReferenceService
	Approvals    *usecase.ApprovalUsecase
	RiverClient  *river.Client[pgx.Tx]
	Pools        *worker.Pools
	DevMode      bool
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client:       deps.EntClient,
		pool:         deps.Pool,
		audit:        deps.Audit,
		sender:       deps.Sender,
		auth:         deps.Auth,
		accounts:     deps.Accounts,
		invitations:  deps.Invitations,
		passwordRst:  deps.PasswordRst,
		orders:       deps.Orders,
		negotiations: deps.Negotiations,
		fixtures:     deps.Fixtures,
		contracts:    deps.Contracts,
		recaps:       deps.Recaps,
		addenda:      deps.Addenda,
		signatures:   deps.Signatures,
		reference:    deps.Reference,
		approvals:    deps.Approvals,
		riverClient:  deps.RiverClient,
		pools:        deps.Pools,
		devMode:      deps.DevMode,
	}
}

// pageParams reads limit/offset query parameters. Services clamp the values.
func pageParams(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	return limit, offset
}
