package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"charterdesk.io/charterdesk/internal/api/middleware"
	apperrors "charterdesk.io/charterdesk/internal/pkg/errors"
	"charterdesk.io/charterdesk/internal/service"
)

type createContractRequest struct {
	CpNumber         string     `json:"cp_number" binding:"required"`
	FixtureID        string     `json:"fixture_id"`
	OrderID          string     `json:"order_id"`
	NegotiationID    string     `json:"negotiation_id"`
	ParentContractID string     `json:"parent_contract_id"`
	ContractType     string     `json:"contract_type"`
	DeliveryType     string     `json:"delivery_type"`
	VesselID         string     `json:"vessel_id"`
	CompanyID        string     `json:"company_id"`
	LoadPortID       string     `json:"load_port_id"`
	DischargePortID  string     `json:"discharge_port_id"`
	CargoTypeID      string     `json:"cargo_type_id"`
	FreightRate      float64    `json:"freight_rate"`
	LaycanStart      *time.Time `json:"laycan_start"`
	LaycanEnd        *time.Time `json:"laycan_end"`
	Quantity         float64    `json:"quantity"`
	DemurrageRate    float64    `json:"demurrage_rate"`
}

// CreateContract handles POST /contracts.
func (s *Server) CreateContract(c *gin.Context) {
	var req createContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	ctx := c.Request.Context()
	contract, err := s.contracts.Create(ctx, service.CreateContractInput{
		CpNumber:         req.CpNumber,
		FixtureID:        req.FixtureID,
		OrderID:          req.OrderID,
		NegotiationID:    req.NegotiationID,
		ParentContractID: req.ParentContractID,
		ContractType:     req.ContractType,
		DeliveryType:     req.DeliveryType,
		VesselID:         req.VesselID,
		CompanyID:        req.CompanyID,
		LoadPortID:       req.LoadPortID,
		DischargePortID:  req.DischargePortID,
		CargoTypeID:      req.CargoTypeID,
		FreightRate:      req.FreightRate,
		LaycanStart:      req.LaycanStart,
		LaycanEnd:        req.LaycanEnd,
		Quantity:         req.Quantity,
		DemurrageRate:    req.DemurrageRate,
		CreatedBy:        middleware.GetUserID(ctx),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, contract)
}

// GetContract handles GET /contracts/:id.
func (s *Server) GetContract(c *gin.Context) {
	contract, err := s.contracts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, contract)
}

// ListContracts handles GET /contracts.
func (s *Server) ListContracts(c *gin.Context) {
	limit, offset := pageParams(c)
	contracts, err := s.contracts.List(c.Request.Context(), service.ListContractsFilter{
		FixtureID: c.Query("fixture_id"),
		OrderID:   c.Query("order_id"),
		Status:    c.Query("status"),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": contracts})
}

type updateAgreementRequest struct {
	ContractType    *string    `json:"contract_type"`
	DeliveryType    *string    `json:"delivery_type"`
	MarketIndex     *string    `json:"market_index"`
	VesselID        *string    `json:"vessel_id"`
	CompanyID       *string    `json:"company_id"`
	LoadPortID      *string    `json:"load_port_id"`
	DischargePortID *string    `json:"discharge_port_id"`
	CargoTypeID     *string    `json:"cargo_type_id"`
	FreightRate     *float64   `json:"freight_rate"`
	LaycanStart     *time.Time `json:"laycan_start"`
	LaycanEnd       *time.Time `json:"laycan_end"`
	Quantity        *float64   `json:"quantity"`
	DemurrageRate   *float64   `json:"demurrage_rate"`
	Reason          string     `json:"reason"`
}

// UpdateContract handles PATCH /contracts/:id.
func (s *Server) UpdateContract(c *gin.Context) {
	var req updateAgreementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	ctx := c.Request.Context()
	contract, err := s.contracts.Update(ctx, c.Param("id"), service.UpdateContractInput{
		ContractType:    req.ContractType,
		DeliveryType:    req.DeliveryType,
		VesselID:        req.VesselID,
		CompanyID:       req.CompanyID,
		LoadPortID:      req.LoadPortID,
		DischargePortID: req.DischargePortID,
		CargoTypeID:     req.CargoTypeID,
		FreightRate:     req.FreightRate,
		LaycanStart:     req.LaycanStart,
		LaycanEnd:       req.LaycanEnd,
		Quantity:        req.Quantity,
		DemurrageRate:   req.DemurrageRate,
		UserID:          middleware.GetUserID(ctx),
		Reason:          req.Reason,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, contract)
}

// UpdateContractStatus handles POST /contracts/:id/status.
func (s *Server) UpdateContractStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	ctx := c.Request.Context()
	contract, err := s.contracts.UpdateStatus(ctx, c.Param("id"), req.Status, middleware.GetUserID(ctx))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, contract)
}

type createRecapRequest struct {
	RecapNumber     string     `json:"recap_number" binding:"required"`
	FixtureID       string     `json:"fixture_id"`
	OrderID         string     `json:"order_id"`
	NegotiationID   string     `json:"negotiation_id"`
	ParentRecapID   string     `json:"parent_recap_id"`
	ContractType    string     `json:"contract_type"`
	DeliveryType    string     `json:"delivery_type"`
	MarketIndex     string     `json:"market_index"`
	VesselID        string     `json:"vessel_id"`
	CompanyID       string     `json:"company_id"`
	LoadPortID      string     `json:"load_port_id"`
	DischargePortID string     `json:"discharge_port_id"`
	CargoTypeID     string     `json:"cargo_type_id"`
	FreightRate     float64    `json:"freight_rate"`
	LaycanStart     *time.Time `json:"laycan_start"`
	LaycanEnd       *time.Time `json:"laycan_end"`
	Quantity        float64    `json:"quantity"`
	DemurrageRate   float64    `json:"demurrage_rate"`
}

// CreateRecap handles POST /recaps.
func (s *Server) CreateRecap(c *gin.Context) {
	var req createRecapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	ctx := c.Request.Context()
	recap, err := s.recaps.Create(ctx, service.CreateRecapInput{
		RecapNumber:     req.RecapNumber,
		FixtureID:       req.FixtureID,
		OrderID:         req.OrderID,
		NegotiationID:   req.NegotiationID,
		ParentRecapID:   req.ParentRecapID,
		ContractType:    req.ContractType,
		DeliveryType:    req.DeliveryType,
		MarketIndex:     req.MarketIndex,
		VesselID:        req.VesselID,
		CompanyID:       req.CompanyID,
		LoadPortID:      req.LoadPortID,
		DischargePortID: req.DischargePortID,
		CargoTypeID:     req.CargoTypeID,
		FreightRate:     req.FreightRate,
		LaycanStart:     req.LaycanStart,
		LaycanEnd:       req.LaycanEnd,
		Quantity:        req.Quantity,
		DemurrageRate:   req.DemurrageRate,
		CreatedBy:       middleware.GetUserID(ctx),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, recap)
}

// GetRecap handles GET /recaps/:id.
func (s *Server) GetRecap(c *gin.Context) {
	recap, err := s.recaps.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, recap)
}

// ListRecaps handles GET /recaps.
func (s *Server) ListRecaps(c *gin.Context) {
	limit, offset := pageParams(c)
	recaps, err := s.recaps.List(c.Request.Context(), service.ListRecapsFilter{
		FixtureID: c.Query("fixture_id"),
		OrderID:   c.Query("order_id"),
		Status:    c.Query("status"),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": recaps})
}

// UpdateRecap handles PATCH /recaps/:id.
func (s *Server) UpdateRecap(c *gin.Context) {
	var req updateAgreementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	ctx := c.Request.Context()
	recap, err := s.recaps.Update(ctx, c.Param("id"), service.UpdateRecapInput{
		ContractType:    req.ContractType,
		DeliveryType:    req.DeliveryType,
		MarketIndex:     req.MarketIndex,
		VesselID:        req.VesselID,
		CompanyID:       req.CompanyID,
		LoadPortID:      req.LoadPortID,
		DischargePortID: req.DischargePortID,
		CargoTypeID:     req.CargoTypeID,
		FreightRate:     req.FreightRate,
		LaycanStart:     req.LaycanStart,
		LaycanEnd:       req.LaycanEnd,
		Quantity:        req.Quantity,
		DemurrageRate:   req.DemurrageRate,
		UserID:          middleware.GetUserID(ctx),
		Reason:          req.Reason,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, recap)
}

// UpdateRecapStatus handles POST /recaps/:id/status.
func (s *Server) UpdateRecapStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	ctx := c.Request.Context()
	recap, err := s.recaps.UpdateStatus(ctx, c.Param("id"), req.Status, middleware.GetUserID(ctx))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, recap)
}

type createAddendumRequest struct {
	AddendumNumber string `json:"addendum_number" binding:"required"`
	ContractID     string `json:"contract_id"`
	RecapID        string `json:"recap_id"`
	Description    string `json:"description"`
}

// CreateAddendum handles POST /addenda.
func (s *Server) CreateAddendum(c *gin.Context) {
	var req createAddendumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	ctx := c.Request.Context()
	a, err := s.addenda.Create(ctx, service.CreateAddendumInput{
		AddendumNumber: req.AddendumNumber,
		ContractID:     req.ContractID,
		RecapID:        req.RecapID,
		Description:    req.Description,
		CreatedBy:      middleware.GetUserID(ctx),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// GetAddendum handles GET /addenda/:id.
func (s *Server) GetAddendum(c *gin.Context) {
	a, err := s.addenda.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// ListAddenda handles GET /addenda.
func (s *Server) ListAddenda(c *gin.Context) {
	limit, offset := pageParams(c)
	addenda, err := s.addenda.List(c.Request.Context(), service.ListAddendaFilter{
		ContractID: c.Query("contract_id"),
		RecapID:    c.Query("recap_id"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": addenda})
}

type updateAddendumRequest struct {
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// UpdateAddendum handles PATCH /addenda/:id.
func (s *Server) UpdateAddendum(c *gin.Context) {
	var req updateAddendumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	ctx := c.Request.Context()
	a, err := s.addenda.Update(ctx, c.Param("id"), service.UpdateAddendumInput{
		Description: req.Description,
		Status:      req.Status,
		UserID:      middleware.GetUserID(ctx),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, a)
}
