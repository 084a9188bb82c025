package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"charterdesk.io/charterdesk/internal/api/middleware"
	apperrors "charterdesk.io/charterdesk/internal/pkg/errors"
	"charterdesk.io/charterdesk/internal/service"
)

type createOrganizationRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateOrganization handles POST /organizations.
func (s *Server) CreateOrganization(c *gin.Context) {
	var req createOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	org, err := s.accounts.CreateOrganization(c.Request.Context(), req.Name)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, org)
}

// GetOrganization handles GET /organizations/:id.
func (s *Server) GetOrganization(c *gin.Context) {
	org, err := s.accounts.GetOrganization(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, org)
}

// ListOrganizations handles GET /organizations.
func (s *Server) ListOrganizations(c *gin.Context) {
	orgs, err := s.accounts.ListOrganizations(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": orgs})
}

// ListUsers handles GET /organizations/:id/users.
func (s *Server) ListUsers(c *gin.Context) {
	users, err := s.accounts.ListUsers(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": users})
}

// GetUser handles GET /users/:id.
func (s *Server) GetUser(c *gin.Context) {
	u, err := s.accounts.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, u)
}

type updateUserRequest struct {
	Name            *string `json:"name"`
	Role            *string `json:"role"`
	Active          *bool   `json:"active"`
	AvatarStorageID *string `json:"avatar_storage_id"`
}

// UpdateUser handles PATCH /users/:id. Admin only.
func (s *Server) UpdateUser(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	u, err := s.accounts.UpdateUser(c.Request.Context(), c.Param("id"), service.UpdateUserInput{
		Name:            req.Name,
		Role:            req.Role,
		Active:          req.Active,
		AvatarStorageID: req.AvatarStorageID,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, u)
}

type inviteRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role"`
}

// CreateInvitation handles POST /organizations/:id/invitations.
func (s *Server) CreateInvitation(c *gin.Context) {
	var req inviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	ctx := c.Request.Context()
	inv, err := s.invitations.Invite(ctx, service.InviteInput{
		OrganizationID: c.Param("id"),
		Email:          req.Email,
		Role:           req.Role,
		InvitedBy:      middleware.GetUserID(ctx),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, inv)
}

// ListInvitations handles GET /organizations/:id/invitations.
func (s *Server) ListInvitations(c *gin.Context) {
	limit, offset := pageParams(c)
	rows, err := s.invitations.List(c.Request.Context(), c.Param("id"), limit, offset)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": rows})
}

// RevokeInvitation handles POST /invitations/:id/revoke.
func (s *Server) RevokeInvitation(c *gin.Context) {
	inv, err := s.invitations.Revoke(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// GetInvitationByToken handles GET /invitations/lookup. Public endpoint
// backing the acceptance page.
func (s *Server) GetInvitationByToken(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "token query parameter is required"))
		return
	}
	inv, err := s.invitations.GetByToken(c.Request.Context(), token)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

type acceptInvitationRequest struct {
	Token    string `json:"token" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// AcceptInvitation handles POST /invitations/accept. Public endpoint.
func (s *Server) AcceptInvitation(c *gin.Context) {
	var req acceptInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	result, err := s.invitations.Accept(c.Request.Context(), service.AcceptInput{
		Token:    req.Token,
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListNotifications handles GET /notifications.
func (s *Server) ListNotifications(c *gin.Context) {
	limit, offset := pageParams(c)
	ctx := c.Request.Context()
	rows, err := s.sender.ListForUser(ctx, middleware.GetUserID(ctx), c.Query("unread_only") == "true", limit, offset)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": rows})
}

// GetUnreadCount handles GET /notifications/unread-count.
func (s *Server) GetUnreadCount(c *gin.Context) {
	ctx := c.Request.Context()
	count, err := s.sender.UnreadCount(ctx, middleware.GetUserID(ctx))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkNotificationRead handles POST /notifications/:id/read.
func (s *Server) MarkNotificationRead(c *gin.Context) {
	ctx := c.Request.Context()
	if err := s.sender.MarkRead(ctx, middleware.GetUserID(ctx), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MarkAllNotificationsRead handles POST /notifications/read-all.
func (s *Server) MarkAllNotificationsRead(c *gin.Context) {
	ctx := c.Request.Context()
	if _, err := s.sender.MarkAllRead(ctx, middleware.GetUserID(ctx)); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
