package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "charterdesk.io/charterdesk/internal/pkg/errors"
	"charterdesk.io/charterdesk/internal/service"
)

type createCompanyRequest struct {
	Name    string `json:"name" binding:"required"`
	Type    string `json:"type"`
	Country string `json:"country"`
}

// CreateCompany handles POST /companies.
func (s *Server) CreateCompany(c *gin.Context) {
	var req createCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	company, err := s.reference.CreateCompany(c.Request.Context(), service.CreateCompanyInput{
		Name:    req.Name,
		Type:    req.Type,
		Country: req.Country,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, company)
}

// GetCompany handles GET /companies/:id.
func (s *Server) GetCompany(c *gin.Context) {
	company, err := s.reference.GetCompany(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// ListCompanies handles GET /companies.
func (s *Server) ListCompanies(c *gin.Context) {
	limit, offset := pageParams(c)
	companies, err := s.reference.ListCompanies(c.Request.Context(), c.Query("type"), c.Query("search"), limit, offset)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": companies})
}

type verifiedRequest struct {
	Verified bool `json:"verified"`
}

// SetCompanyVerified handles POST /companies/:id/verified.
func (s *Server) SetCompanyVerified(c *gin.Context) {
	var req verifiedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	company, err := s.reference.SetCompanyVerified(c.Request.Context(), c.Param("id"), req.Verified)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, company)
}

type createVesselRequest struct {
	Name       string  `json:"name" binding:"required"`
	ImoNumber  string  `json:"imo_number"`
	VesselType string  `json:"vessel_type"`
	Dwt        float64 `json:"dwt"`
	BuiltYear  int     `json:"built_year"`
	Flag       string  `json:"flag"`
}

// CreateVessel handles POST /vessels.
func (s *Server) CreateVessel(c *gin.Context) {
	var req createVesselRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	vessel, err := s.reference.CreateVessel(c.Request.Context(), service.CreateVesselInput{
		Name:       req.Name,
		ImoNumber:  req.ImoNumber,
		VesselType: req.VesselType,
		Dwt:        req.Dwt,
		BuiltYear:  req.BuiltYear,
		Flag:       req.Flag,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, vessel)
}

// GetVessel handles GET /vessels/:id.
func (s *Server) GetVessel(c *gin.Context) {
	vessel, err := s.reference.GetVessel(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, vessel)
}

// ListVessels handles GET /vessels.
func (s *Server) ListVessels(c *gin.Context) {
	limit, offset := pageParams(c)
	vessels, err := s.reference.ListVessels(c.Request.Context(), c.Query("search"), limit, offset)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": vessels})
}

// SetVesselVerified handles POST /vessels/:id/verified.
func (s *Server) SetVesselVerified(c *gin.Context) {
	var req verifiedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	vessel, err := s.reference.SetVesselVerified(c.Request.Context(), c.Param("id"), req.Verified)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, vessel)
}

type createPortRequest struct {
	Name     string `json:"name" binding:"required"`
	Country  string `json:"country"`
	Unlocode string `json:"unlocode"`
}

// CreatePort handles POST /ports.
func (s *Server) CreatePort(c *gin.Context) {
	var req createPortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	port, err := s.reference.CreatePort(c.Request.Context(), service.CreatePortInput{
		Name:     req.Name,
		Country:  req.Country,
		Unlocode: req.Unlocode,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, port)
}

// GetPort handles GET /ports/:id.
func (s *Server) GetPort(c *gin.Context) {
	port, err := s.reference.GetPort(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, port)
}

// ListPorts handles GET /ports.
func (s *Server) ListPorts(c *gin.Context) {
	limit, offset := pageParams(c)
	ports, err := s.reference.ListPorts(c.Request.Context(), c.Query("search"), limit, offset)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": ports})
}

type activeRequest struct {
	Active bool `json:"active"`
}

// SetPortActive handles POST /ports/:id/active.
func (s *Server) SetPortActive(c *gin.Context) {
	var req activeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	port, err := s.reference.SetPortActive(c.Request.Context(), c.Param("id"), req.Active)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, port)
}

type createCargoTypeRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
}

// CreateCargoType handles POST /cargo-types.
func (s *Server) CreateCargoType(c *gin.Context) {
	var req createCargoTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	ct, err := s.reference.CreateCargoType(c.Request.Context(), service.CreateCargoTypeInput{
		Name:     req.Name,
		Category: req.Category,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ct)
}

// GetCargoType handles GET /cargo-types/:id.
func (s *Server) GetCargoType(c *gin.Context) {
	ct, err := s.reference.GetCargoType(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ct)
}

// ListCargoTypes handles GET /cargo-types.
func (s *Server) ListCargoTypes(c *gin.Context) {
	limit, offset := pageParams(c)
	types, err := s.reference.ListCargoTypes(c.Request.Context(), c.Query("search"), limit, offset)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": types})
}

// SetCargoTypeActive handles POST /cargo-types/:id/active.
func (s *Server) SetCargoTypeActive(c *gin.Context) {
	var req activeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	ct, err := s.reference.SetCargoTypeActive(c.Request.Context(), c.Param("id"), req.Active)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ct)
}
