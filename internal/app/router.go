package app

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"charterdesk.io/charterdesk/internal/api/handlers"
	"charterdesk.io/charterdesk/internal/api/middleware"
	"charterdesk.io/charterdesk/internal/config"
	"charterdesk.io/charterdesk/internal/pkg/logger"
)

func newRouter(cfg *config.Config, server *handlers.Server, jwtCfg middleware.JWTConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.CORS.AllowOrigins
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "X-Request-ID")
	router.Use(cors.New(corsCfg))

	// Request validation against the OpenAPI document. The contract grows
	// endpoint by endpoint, so a missing or broken document only disables
	// validation instead of blocking startup.
	if validator, err := middleware.NewOpenAPIValidator(cfg.Server.OpenAPISpec); err != nil {
		logger.Warn("openapi validation disabled",
			zap.String("spec", cfg.Server.OpenAPISpec),
			zap.Error(err),
		)
	} else {
		router.Use(validator)
	}

	router.GET("/health/live", server.GetLiveness)
	router.GET("/health/ready", server.GetReadiness)

	v1 := router.Group("/api/v1")

	// Public routes: login, password reset, invitation acceptance.
	v1.POST("/auth/login", server.Login)
	v1.POST("/auth/password-reset/request", server.RequestPasswordReset)
	v1.GET("/auth/password-reset/verify", server.VerifyPasswordReset)
	v1.POST("/auth/password-reset/confirm", server.ConfirmPasswordReset)
	v1.GET("/invitations/lookup", server.GetInvitationByToken)
	v1.POST("/invitations/accept", server.AcceptInvitation)

	authed := v1.Group("", middleware.JWTAuth(jwtCfg.SigningKey))

	authed.GET("/auth/me", server.Me)

	authed.POST("/orders", server.CreateOrder)
	authed.GET("/orders", server.ListOrders)
	authed.GET("/orders/:id", server.GetOrder)
	authed.PATCH("/orders/:id", server.UpdateOrder)
	authed.POST("/orders/:id/status", server.UpdateOrderStatus)

	authed.POST("/negotiations", server.CreateNegotiation)
	authed.GET("/negotiations", server.ListNegotiations)
	authed.GET("/negotiations/:id", server.GetNegotiation)
	authed.PATCH("/negotiations/:id", server.UpdateNegotiation)
	authed.POST("/negotiations/:id/status", server.UpdateNegotiationStatus)

	authed.POST("/fixtures", server.CreateFixture)
	authed.GET("/fixtures", server.ListFixtures)
	authed.GET("/fixtures/overview", server.FixtureOverview)
	authed.GET("/fixtures/:id", server.GetFixture)
	authed.POST("/fixtures/:id/status", server.UpdateFixtureStatus)
	authed.POST("/fixtures/:id/reindex", server.ReindexFixture)

	authed.POST("/contracts", server.CreateContract)
	authed.GET("/contracts", server.ListContracts)
	authed.GET("/contracts/:id", server.GetContract)
	authed.PATCH("/contracts/:id", server.UpdateContract)
	authed.POST("/contracts/:id/status", server.UpdateContractStatus)

	authed.POST("/recaps", server.CreateRecap)
	authed.GET("/recaps", server.ListRecaps)
	authed.GET("/recaps/:id", server.GetRecap)
	authed.PATCH("/recaps/:id", server.UpdateRecap)
	authed.POST("/recaps/:id/status", server.UpdateRecapStatus)

	authed.POST("/addenda", server.CreateAddendum)
	authed.GET("/addenda", server.ListAddenda)
	authed.GET("/addenda/:id", server.GetAddendum)
	authed.PATCH("/addenda/:id", server.UpdateAddendum)

	authed.POST("/approvals", server.RequestApproval)
	authed.GET("/approvals", server.ListApprovals)
	authed.POST("/approvals/:id/decide", server.DecideApproval)

	authed.POST("/signatures", server.RecordSignature)
	authed.GET("/signatures", server.ListSignatures)
	authed.POST("/signatures/:id/sign", server.SignSignature)

	authed.GET("/audit/field-changes", server.ListFieldChanges)
	authed.GET("/audit/activities", server.ListActivities)

	authed.POST("/companies", server.CreateCompany)
	authed.GET("/companies", server.ListCompanies)
	authed.GET("/companies/:id", server.GetCompany)
	authed.POST("/companies/:id/verified", server.SetCompanyVerified)

	authed.POST("/vessels", server.CreateVessel)
	authed.GET("/vessels", server.ListVessels)
	authed.GET("/vessels/:id", server.GetVessel)
	authed.POST("/vessels/:id/verified", server.SetVesselVerified)

	authed.POST("/ports", server.CreatePort)
	authed.GET("/ports", server.ListPorts)
	authed.GET("/ports/:id", server.GetPort)
	authed.POST("/ports/:id/active", server.SetPortActive)

	authed.POST("/cargo-types", server.CreateCargoType)
	authed.GET("/cargo-types", server.ListCargoTypes)
	authed.GET("/cargo-types/:id", server.GetCargoType)
	authed.POST("/cargo-types/:id/active", server.SetCargoTypeActive)

	authed.GET("/organizations", server.ListOrganizations)
	authed.GET("/organizations/:id", server.GetOrganization)
	authed.GET("/organizations/:id/users", server.ListUsers)
	authed.GET("/organizations/:id/invitations", server.ListInvitations)
	authed.GET("/users/:id", server.GetUser)

	authed.GET("/notifications", server.ListNotifications)
	authed.GET("/notifications/unread-count", server.GetUnreadCount)
	authed.POST("/notifications/:id/read", server.MarkNotificationRead)
	authed.POST("/notifications/read-all", server.MarkAllNotificationsRead)

	// Tenant and platform administration.
	admin := authed.Group("", middleware.RequireRole("admin"))
	admin.POST("/organizations", server.CreateOrganization)
	admin.PATCH("/users/:id", server.UpdateUser)
	admin.POST("/organizations/:id/invitations", server.CreateInvitation)
	admin.POST("/invitations/:id/revoke", server.RevokeInvitation)
	admin.POST("/admin/fixtures/reindex", server.ReindexAllFixtures)
	admin.DELETE("/admin/audit", server.ClearAuditEntity)

	return router
}
