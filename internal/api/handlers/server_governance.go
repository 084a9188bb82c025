package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"charterdesk.io/charterdesk/internal/api/middleware"
	apperrors "charterdesk.io/charterdesk/internal/pkg/errors"
	"charterdesk.io/charterdesk/internal/service"
)

type requestApprovalRequest struct {
	EntityType string `json:"entity_type" binding:"required"`
	EntityID   string `json:"entity_id" binding:"required"`
}

// RequestApproval handles POST /approvals.
func (s *Server) RequestApproval(c *gin.Context) {
	var req requestApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	ctx := c.Request.Context()
	apr, err := s.approvals.Request(ctx, req.EntityType, req.EntityID, middleware.GetUserID(ctx))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, apr)
}

// ListApprovals handles GET /approvals.
func (s *Server) ListApprovals(c *gin.Context) {
	entityType := c.Query("entity_type")
	entityID := c.Query("entity_id")
	if entityType == "" || entityID == "" {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed,
			"entity_type and entity_id query parameters are required"))
		return
	}
	rows, err := s.approvals.ListForEntity(c.Request.Context(), entityType, entityID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": rows})
}

type decideApprovalRequest struct {
	Approve bool   `json:"approve"`
	Note    string `json:"note"`
}

// DecideApproval handles POST /approvals/:id/decide.
func (s *Server) DecideApproval(c *gin.Context) {
	var req decideApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	ctx := c.Request.Context()
	apr, err := s.approvals.Decide(ctx, c.Param("id"), req.Approve, req.Note, middleware.GetUserID(ctx))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, apr)
}

type recordSignatureRequest struct {
	EntityType        string `json:"entity_type" binding:"required"`
	EntityID          string `json:"entity_id" binding:"required"`
	SignerName        string `json:"signer_name" binding:"required"`
	SignerEmail       string `json:"signer_email"`
	Party             string `json:"party"`
	DocumentStorageID string `json:"document_storage_id"`
}

// RecordSignature handles POST /signatures.
func (s *Server) RecordSignature(c *gin.Context) {
	var req recordSignatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	ctx := c.Request.Context()
	sig, err := s.signatures.Record(ctx, service.RecordSignatureInput{
		EntityType:        req.EntityType,
		EntityID:          req.EntityID,
		SignerName:        req.SignerName,
		SignerEmail:       req.SignerEmail,
		Party:             req.Party,
		DocumentStorageID: req.DocumentStorageID,
		UserID:            middleware.GetUserID(ctx),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, sig)
}

// ListSignatures handles GET /signatures.
func (s *Server) ListSignatures(c *gin.Context) {
	entityType := c.Query("entity_type")
	entityID := c.Query("entity_id")
	if entityType == "" || entityID == "" {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed,
			"entity_type and entity_id query parameters are required"))
		return
	}
	sigs, err := s.signatures.ListForEntity(c.Request.Context(), entityType, entityID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": sigs})
}

// SignSignature handles POST /signatures/:id/sign.
func (s *Server) SignSignature(c *gin.Context) {
	ctx := c.Request.Context()
	sig, err := s.signatures.Sign(ctx, c.Param("id"), middleware.GetUserID(ctx))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, sig)
}

// ListFieldChanges handles GET /audit/field-changes. Without entity
// filters it returns the global stream.
func (s *Server) ListFieldChanges(c *gin.Context) {
	limit, offset := pageParams(c)
	if limit <= 0 {
		limit = 50
	}
	ctx := c.Request.Context()
	entityType := c.Query("entity_type")
	entityID := c.Query("entity_id")

	if entityType != "" && entityID != "" {
		rows, err := s.audit.ListFieldChanges(ctx, entityType, entityID, limit, offset)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": rows})
		return
	}
	rows, err := s.audit.ListAllFieldChanges(ctx, limit, offset)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": rows})
}

// ListActivities handles GET /audit/activities.
func (s *Server) ListActivities(c *gin.Context) {
	limit, offset := pageParams(c)
	if limit <= 0 {
		limit = 50
	}
	ctx := c.Request.Context()
	entityType := c.Query("entity_type")
	entityID := c.Query("entity_id")

	if entityType != "" && entityID != "" {
		rows, err := s.audit.ListActivities(ctx, entityType, entityID, limit, offset)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": rows})
		return
	}
	rows, err := s.audit.ListAllActivities(ctx, limit, offset)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": rows})
}

// ClearAuditEntity handles DELETE /admin/audit. Admin-only bulk clear of
// one entity's audit rows.
func (s *Server) ClearAuditEntity(c *gin.Context) {
	entityType := c.Query("entity_type")
	entityID := c.Query("entity_id")
	if entityType == "" || entityID == "" {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed,
			"entity_type and entity_id query parameters are required"))
		return
	}
	deleted, err := s.audit.ClearEntity(c.Request.Context(), entityType, entityID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
