package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"charterdesk.io/charterdesk/internal/api/middleware"
	apperrors "charterdesk.io/charterdesk/internal/pkg/errors"
	"charterdesk.io/charterdesk/internal/service"
)

type createOrderRequest struct {
	OrderNumber     string     `json:"order_number" binding:"required"`
	Market          string     `json:"market"`
	CargoTypeID     string     `json:"cargo_type_id"`
	LoadPortID      string     `json:"load_port_id"`
	DischargePortID string     `json:"discharge_port_id"`
	LaycanStart     *time.Time `json:"laycan_start"`
	LaycanEnd       *time.Time `json:"laycan_end"`
	Quantity        float64    `json:"quantity"`
	Notes           string     `json:"notes"`
}

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	ctx := c.Request.Context()
	ord, err := s.orders.Create(ctx, service.CreateOrderInput{
		OrderNumber:     req.OrderNumber,
		OrganizationID:  middleware.GetOrganizationID(ctx),
		Market:          req.Market,
		CargoTypeID:     req.CargoTypeID,
		LoadPortID:      req.LoadPortID,
		DischargePortID: req.DischargePortID,
		LaycanStart:     req.LaycanStart,
		LaycanEnd:       req.LaycanEnd,
		Quantity:        req.Quantity,
		Notes:           req.Notes,
		CreatedBy:       middleware.GetUserID(ctx),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ord)
}

// GetOrder handles GET /orders/:id.
func (s *Server) GetOrder(c *gin.Context) {
	ord, err := s.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ord)
}

// ListOrders handles GET /orders.
func (s *Server) ListOrders(c *gin.Context) {
	limit, offset := pageParams(c)
	orders, err := s.orders.List(c.Request.Context(), service.ListOrdersFilter{
		Status:         c.Query("status"),
		OrganizationID: c.Query("organization_id"),
		Market:         c.Query("market"),
		Limit:          limit,
		Offset:         offset,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": orders})
}

type updateOrderRequest struct {
	CargoTypeID     *string    `json:"cargo_type_id"`
	LoadPortID      *string    `json:"load_port_id"`
	DischargePortID *string    `json:"discharge_port_id"`
	LaycanStart     *time.Time `json:"laycan_start"`
	LaycanEnd       *time.Time `json:"laycan_end"`
	Quantity        *float64   `json:"quantity"`
	Notes           *string    `json:"notes"`
}

// UpdateOrder handles PATCH /orders/:id.
func (s *Server) UpdateOrder(c *gin.Context) {
	var req updateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	ctx := c.Request.Context()
	ord, err := s.orders.Update(ctx, c.Param("id"), service.UpdateOrderInput{
		CargoTypeID:     req.CargoTypeID,
		LoadPortID:      req.LoadPortID,
		DischargePortID: req.DischargePortID,
		LaycanStart:     req.LaycanStart,
		LaycanEnd:       req.LaycanEnd,
		Quantity:        req.Quantity,
		Notes:           req.Notes,
		UserID:          middleware.GetUserID(ctx),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ord)
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus handles POST /orders/:id/status.
func (s *Server) UpdateOrderStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	ctx := c.Request.Context()
	ord, err := s.orders.UpdateStatus(ctx, c.Param("id"), req.Status, middleware.GetUserID(ctx))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ord)
}

type createNegotiationRequest struct {
	NegotiationNumber string  `json:"negotiation_number" binding:"required"`
	OrderID           string  `json:"order_id" binding:"required"`
	CompanyID         string  `json:"company_id"`
	VesselID          string  `json:"vessel_id"`
	FreightRate       float64 `json:"freight_rate"`
	MarketIndex       string  `json:"market_index"`
	DeliveryType      string  `json:"delivery_type"`
}

// CreateNegotiation handles POST /negotiations.
func (s *Server) CreateNegotiation(c *gin.Context) {
	var req createNegotiationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	ctx := c.Request.Context()
	neg, err := s.negotiations.Create(ctx, service.CreateNegotiationInput{
		NegotiationNumber: req.NegotiationNumber,
		OrderID:           req.OrderID,
		CompanyID:         req.CompanyID,
		VesselID:          req.VesselID,
		FreightRate:       req.FreightRate,
		MarketIndex:       req.MarketIndex,
		DeliveryType:      req.DeliveryType,
		CreatedBy:         middleware.GetUserID(ctx),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, neg)
}

// GetNegotiation handles GET /negotiations/:id.
func (s *Server) GetNegotiation(c *gin.Context) {
	neg, err := s.negotiations.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, neg)
}

// ListNegotiations handles GET /negotiations.
func (s *Server) ListNegotiations(c *gin.Context) {
	limit, offset := pageParams(c)
	negotiations, err := s.negotiations.List(c.Request.Context(), service.ListNegotiationsFilter{
		OrderID: c.Query("order_id"),
		Status:  c.Query("status"),
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": negotiations})
}

type updateNegotiationRequest struct {
	CompanyID    *string  `json:"company_id"`
	VesselID     *string  `json:"vessel_id"`
	FreightRate  *float64 `json:"freight_rate"`
	MarketIndex  *string  `json:"market_index"`
	DeliveryType *string  `json:"delivery_type"`
}

// UpdateNegotiation handles PATCH /negotiations/:id.
func (s *Server) UpdateNegotiation(c *gin.Context) {
	var req updateNegotiationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	ctx := c.Request.Context()
	neg, err := s.negotiations.Update(ctx, c.Param("id"), service.UpdateNegotiationInput{
		CompanyID:    req.CompanyID,
		VesselID:     req.VesselID,
		FreightRate:  req.FreightRate,
		MarketIndex:  req.MarketIndex,
		DeliveryType: req.DeliveryType,
		UserID:       middleware.GetUserID(ctx),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, neg)
}

// UpdateNegotiationStatus handles POST /negotiations/:id/status.
func (s *Server) UpdateNegotiationStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	ctx := c.Request.Context()
	neg, err := s.negotiations.UpdateStatus(ctx, c.Param("id"), req.Status, middleware.GetUserID(ctx))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, neg)
}
