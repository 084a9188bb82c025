package service

import (
	"context"
	"fmt"
	"strings"

	"charterdesk.io/charterdesk/ent"
	"charterdesk.io/charterdesk/ent/cargotype"
	"charterdesk.io/charterdesk/ent/company"
	entport "charterdesk.io/charterdesk/ent/port"
	entvessel "charterdesk.io/charterdesk/ent/vessel"
	apperrors "charterdesk.io/charterdesk/internal/pkg/errors"
)

// ReferenceService manages the lookup tables: companies, vessels, ports and
// cargo types. Reference rows are toggled inactive or unverified, never
// deleted.
type ReferenceService struct {
	client *ent.Client
}

// NewReferenceService creates a new ReferenceService.
func NewReferenceService(client *ent.Client) *ReferenceService {
	return &ReferenceService{client: client}
}

// Companies

// CreateCompanyInput holds fields for registering a counterparty.
type CreateCompanyInput struct {
	Name    string
	Type    string
	Country string
}

// CreateCompany registers a counterparty company.
func (s *ReferenceService) CreateCompany(ctx context.Context, in CreateCompanyInput) (*ent.Company, error) {
	create := s.client.Company.Create().
		SetID(NewID(PrefixCompany)).
		SetName(in.Name)
	if in.Type != "" {
		t := company.Type(in.Type)
		if err := company.TypeValidator(t); err != nil {
			return nil, apperrors.BadRequest(apperrors.CodeInvalidRequestField,
				fmt.Sprintf("Unknown company type %q", in.Type))
		}
		create = create.SetType(t)
	}
	if in.Country != "" {
		create = create.SetCountry(in.Country)
	}
	c, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	}
	return c, nil
}

// GetCompany returns one company by id.
func (s *ReferenceService) GetCompany(ctx context.Context, id string) (*ent.Company, error) {
	c, err := s.client.Company.Query().
		Where(company.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeCompanyNotFound, "Company not found")
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// ListCompanies returns companies sorted by name, optionally filtered by
// type or a name prefix.
func (s *ReferenceService) ListCompanies(ctx context.Context, companyType, search string, limit, offset int) ([]*ent.Company, error) {
	limit, offset = clampPage(limit, offset)
	q := s.client.Company.Query()
	if companyType != "" {
		q = q.Where(company.TypeEQ(company.Type(companyType)))
	}
	if search != "" {
		q = q.Where(company.NameContainsFold(strings.TrimSpace(search)))
	}
	companies, err := q.
		Order(ent.Asc(company.FieldName)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return companies, nil
}

// SetCompanyVerified toggles the verified flag.
func (s *ReferenceService) SetCompanyVerified(ctx context.Context, id string, verified bool) (*ent.Company, error) {
	if _, err := s.GetCompany(ctx, id); err != nil {
		return nil, err
	}
	c, err := s.client.Company.UpdateOneID(id).
		SetVerified(verified).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update company: %w", err)
	}
	return c, nil
}

// Vessels

// CreateVesselInput holds fields for registering a vessel.
type CreateVesselInput struct {
	Name       string
	ImoNumber  string
	VesselType string
	Dwt        float64
	BuiltYear  int
	Flag       string
}

// CreateVessel registers a vessel. IMO numbers are unique when present.
func (s *ReferenceService) CreateVessel(ctx context.Context, in CreateVesselInput) (*ent.Vessel, error) {
	if in.ImoNumber != "" {
		taken, err := s.client.Vessel.Query().
			Where(entvessel.ImoNumberEQ(in.ImoNumber)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check imo number: %w", err)
		}
		if taken {
			return nil, apperrors.Conflict(apperrors.CodeNumberTaken,
				fmt.Sprintf("A vessel with IMO number %q already exists", in.ImoNumber))
		}
	}
	create := s.client.Vessel.Create().
		SetID(NewID(PrefixVessel)).
		SetName(in.Name)
	if in.ImoNumber != "" {
		create = create.SetImoNumber(in.ImoNumber)
	}
	if in.VesselType != "" {
		create = create.SetVesselType(in.VesselType)
	}
	if in.Dwt != 0 {
		create = create.SetDwt(in.Dwt)
	}
	if in.BuiltYear != 0 {
		create = create.SetBuiltYear(in.BuiltYear)
	}
	if in.Flag != "" {
		create = create.SetFlag(in.Flag)
	}
	v, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create vessel: %w", err)
	}
	return v, nil
}

// GetVessel returns one vessel by id.
func (s *ReferenceService) GetVessel(ctx context.Context, id string) (*ent.Vessel, error) {
	v, err := s.client.Vessel.Query().
		Where(entvessel.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeVesselNotFound, "Vessel not found")
		}
		return nil, fmt.Errorf("get vessel: %w", err)
	}
	return v, nil
}

// ListVessels returns vessels sorted by name, optionally name-filtered.
func (s *ReferenceService) ListVessels(ctx context.Context, search string, limit, offset int) ([]*ent.Vessel, error) {
	limit, offset = clampPage(limit, offset)
	q := s.client.Vessel.Query()
	if search != "" {
		q = q.Where(entvessel.NameContainsFold(strings.TrimSpace(search)))
	}
	vessels, err := q.
		Order(ent.Asc(entvessel.FieldName)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vessels: %w", err)
	}
	return vessels, nil
}

// SetVesselVerified toggles the verified flag. Verification requires an IMO
// number on file.
func (s *ReferenceService) SetVesselVerified(ctx context.Context, id string, verified bool) (*ent.Vessel, error) {
	v, err := s.GetVessel(ctx, id)
	if err != nil {
		return nil, err
	}
	if verified && v.ImoNumber == "" {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed,
			"A vessel cannot be verified without an IMO number")
	}
	v, err = s.client.Vessel.UpdateOneID(id).
		SetVerified(verified).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update vessel: %w", err)
	}
	return v, nil
}

// Ports

// CreatePortInput holds fields for registering a port.
type CreatePortInput struct {
	Name     string
	Country  string
	Unlocode string
}

// CreatePort registers a port.
func (s *ReferenceService) CreatePort(ctx context.Context, in CreatePortInput) (*ent.Port, error) {
	create := s.client.Port.Create().
		SetID(NewID(PrefixPort)).
		SetName(in.Name)
	if in.Country != "" {
		create = create.SetCountry(in.Country)
	}
	if in.Unlocode != "" {
		create = create.SetUnlocode(strings.ToUpper(in.Unlocode))
	}
	p, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create port: %w", err)
	}
	return p, nil
}

// GetPort returns one port by id.
func (s *ReferenceService) GetPort(ctx context.Context, id string) (*ent.Port, error) {
	p, err := s.client.Port.Query().
		Where(entport.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodePortNotFound, "Port not found")
		}
		return nil, fmt.Errorf("get port: %w", err)
	}
	return p, nil
}

// ListPorts returns ports sorted by name, optionally name-filtered.
// Inactive ports are included so historical records still resolve.
func (s *ReferenceService) ListPorts(ctx context.Context, search string, limit, offset int) ([]*ent.Port, error) {
	limit, offset = clampPage(limit, offset)
	q := s.client.Port.Query()
	if search != "" {
		q = q.Where(entport.NameContainsFold(strings.TrimSpace(search)))
	}
	ports, err := q.
		Order(ent.Asc(entport.FieldName)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ports: %w", err)
	}
	return ports, nil
}

// SetPortActive toggles a port's active flag.
func (s *ReferenceService) SetPortActive(ctx context.Context, id string, active bool) (*ent.Port, error) {
	if _, err := s.GetPort(ctx, id); err != nil {
		return nil, err
	}
	p, err := s.client.Port.UpdateOneID(id).
		SetActive(active).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update port: %w", err)
	}
	return p, nil
}

// Cargo types

// CreateCargoTypeInput holds fields for registering a cargo type.
type CreateCargoTypeInput struct {
	Name     string
	Category string
}

// CreateCargoType registers a cargo type. Names are unique.
func (s *ReferenceService) CreateCargoType(ctx context.Context, in CreateCargoTypeInput) (*ent.CargoType, error) {
	taken, err := s.client.CargoType.Query().
		Where(cargotype.NameEQ(in.Name)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check cargo type name: %w", err)
	}
	if taken {
		return nil, apperrors.Conflict(apperrors.CodeNumberTaken,
			fmt.Sprintf("Cargo type %q already exists", in.Name))
	}
	create := s.client.CargoType.Create().
		SetID(NewID(PrefixCargoType)).
		SetName(in.Name)
	if in.Category != "" {
		create = create.SetCategory(in.Category)
	}
	ct, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create cargo type: %w", err)
	}
	return ct, nil
}

// GetCargoType returns one cargo type by id.
func (s *ReferenceService) GetCargoType(ctx context.Context, id string) (*ent.CargoType, error) {
	ct, err := s.client.CargoType.Query().
		Where(cargotype.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeCargoTypeNotFound, "Cargo type not found")
		}
		return nil, fmt.Errorf("get cargo type: %w", err)
	}
	return ct, nil
}

// ListCargoTypes returns cargo types sorted by name.
func (s *ReferenceService) ListCargoTypes(ctx context.Context, search string, limit, offset int) ([]*ent.CargoType, error) {
	limit, offset = clampPage(limit, offset)
	q := s.client.CargoType.Query()
	if search != "" {
		q = q.Where(cargotype.NameContainsFold(strings.TrimSpace(search)))
	}
	types, err := q.
		Order(ent.Asc(cargotype.FieldName)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cargo types: %w", err)
	}
	return types, nil
}

// SetCargoTypeActive toggles a cargo type's active flag.
func (s *ReferenceService) SetCargoTypeActive(ctx context.Context, id string, active bool) (*ent.CargoType, error) {
	if _, err := s.GetCargoType(ctx, id); err != nil {
		return nil, err
	}
	ct, err := s.client.CargoType.UpdateOneID(id).
		SetActive(active).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update cargo type: %w", err)
	}
	return ct, nil
}
