package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"charterdesk.io/charterdesk/internal/api/middleware"
	apperrors "charterdesk.io/charterdesk/internal/pkg/errors"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /auth/login.
func (s *Server) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	result, err := s.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Me handles GET /auth/me.
func (s *Server) Me(c *gin.Context) {
	userID := middleware.GetUserID(c.Request.Context())
	u, err := s.auth.Me(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, u)
}

type passwordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// RequestPasswordReset handles POST /auth/password-reset/request.
// Always returns 202 so the endpoint does not leak which emails exist;
// the token is echoed back in dev mode only.
func (s *Server) RequestPasswordReset(c *gin.Context) {
	var req passwordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	token, err := s.passwordRst.Request(c.Request.Context(), req.Email)
	if err != nil {
		_ = c.Error(err)
		return
	}
	resp := gin.H{"status": "accepted"}
	if s.devMode && token != "" {
		resp["token"] = token
	}
	c.JSON(http.StatusAccepted, resp)
}

// VerifyPasswordReset handles GET /auth/password-reset/verify.
func (s *Server) VerifyPasswordReset(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, "token query parameter is required"))
		return
	}
	if err := s.passwordRst.Verify(c.Request.Context(), token); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true})
}

type passwordResetConfirm struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ConfirmPasswordReset handles POST /auth/password-reset/confirm.
func (s *Server) ConfirmPasswordReset(c *gin.Context) {
	var req passwordResetConfirm
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	if err := s.passwordRst.Reset(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}
