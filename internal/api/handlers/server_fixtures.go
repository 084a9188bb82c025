package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"charterdesk.io/charterdesk/internal/api/middleware"
	"charterdesk.io/charterdesk/internal/jobs"
	apperrors "charterdesk.io/charterdesk/internal/pkg/errors"
	"charterdesk.io/charterdesk/internal/pkg/logger"
	"charterdesk.io/charterdesk/internal/service"
)

type createFixtureRequest struct {
	FixtureNumber string `json:"fixture_number" binding:"required"`
	OrderID       string `json:"order_id"`
}

// CreateFixture handles POST /fixtures.
func (s *Server) CreateFixture(c *gin.Context) {
	var req createFixtureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	ctx := c.Request.Context()
	fx, err := s.fixtures.Create(ctx, service.CreateFixtureInput{
		FixtureNumber: req.FixtureNumber,
		OrderID:       req.OrderID,
		CreatedBy:     middleware.GetUserID(ctx),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, fx)
}

// GetFixture handles GET /fixtures/:id.
func (s *Server) GetFixture(c *gin.Context) {
	fx, err := s.fixtures.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, fx)
}

func fixtureFilter(c *gin.Context) service.ListFixturesFilter {
	limit, offset := pageParams(c)
	return service.ListFixturesFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
		Limit:  limit,
		Offset: offset,
	}
}

// ListFixtures handles GET /fixtures.
func (s *Server) ListFixtures(c *gin.Context) {
	fixtures, err := s.fixtures.List(c.Request.Context(), fixtureFilter(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": fixtures})
}

// FixtureOverview handles GET /fixtures/overview.
func (s *Server) FixtureOverview(c *gin.Context) {
	rows, err := s.fixtures.Overview(c.Request.Context(), fixtureFilter(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": rows})
}

// UpdateFixtureStatus handles POST /fixtures/:id/status.
func (s *Server) UpdateFixtureStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	ctx := c.Request.Context()
	fx, err := s.fixtures.UpdateStatus(ctx, c.Param("id"), req.Status, middleware.GetUserID(ctx))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, fx)
}

// ReindexFixture handles POST /fixtures/:id/reindex. Admin utility for one
// fixture; the bulk variant goes through River.
func (s *Server) ReindexFixture(c *gin.Context) {
	id := c.Param("id")
	if _, err := s.fixtures.Get(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	if err := s.fixtures.Reindex(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	fx, err := s.fixtures.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, fx)
}

// ReindexAllFixtures handles POST /admin/fixtures/reindex. Enqueues the
// River backfill job; duplicates while one is queued or running collapse.
func (s *Server) ReindexAllFixtures(c *gin.Context) {
	res, err := s.riverClient.Insert(c.Request.Context(), jobs.FixtureReindexArgs{}, nil)
	if err != nil {
		logger.Error("enqueue fixture reindex failed", zap.Error(err))
		_ = c.Error(apperrors.Internal("REINDEX_ENQUEUE_FAILED", "Could not enqueue the reindex job"))
		return
	}
	c.JSON(http.StatusAccepted, gin.H{
		"job_id":            res.Job.ID,
		"already_scheduled": res.UniqueSkippedAsDuplicate,
	})
}
