// Package main provides data seeding for CharterDesk.
//
// Reads a seed document (seed.yaml by default) with reference data and an
// optional bootstrap organization plus admin user. Every step is idempotent,
// so the command can run on every deploy.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"charterdesk.io/charterdesk/ent"
	"charterdesk.io/charterdesk/ent/cargotype"
	"charterdesk.io/charterdesk/ent/company"
	entorganization "charterdesk.io/charterdesk/ent/organization"
	entport "charterdesk.io/charterdesk/ent/port"
	entuser "charterdesk.io/charterdesk/ent/user"
	entvessel "charterdesk.io/charterdesk/ent/vessel"
	"charterdesk.io/charterdesk/internal/config"
	"charterdesk.io/charterdesk/internal/infrastructure"
	"charterdesk.io/charterdesk/internal/pkg/logger"
	"charterdesk.io/charterdesk/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

// seedDocument is the on-disk seed format.
type seedDocument struct {
	Organization struct {
		Name string `yaml:"name"`
	} `yaml:"organization"`
	Admin struct {
		Email    string `yaml:"email"`
		Name     string `yaml:"name"`
		Password string `yaml:"password"`
	} `yaml:"admin"`
	Ports []struct {
		Name     string `yaml:"name"`
		Country  string `yaml:"country"`
		Unlocode string `yaml:"unlocode"`
	} `yaml:"ports"`
	CargoTypes []struct {
		Name     string `yaml:"name"`
		Category string `yaml:"category"`
	} `yaml:"cargo_types"`
	Companies []struct {
		Name    string `yaml:"name"`
		Type    string `yaml:"type"`
		Country string `yaml:"country"`
	} `yaml:"companies"`
	Vessels []struct {
		Name       string  `yaml:"name"`
		ImoNumber  string  `yaml:"imo_number"`
		VesselType string  `yaml:"vessel_type"`
		Dwt        float64 `yaml:"dwt"`
		BuiltYear  int     `yaml:"built_year"`
		Flag       string  `yaml:"flag"`
	} `yaml:"vessels"`
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	seedPath := "seed.yaml"
	if len(os.Args) > 1 {
		seedPath = os.Args[1]
	}
	raw, err := os.ReadFile(seedPath)
	if err != nil {
		return fmt.Errorf("read seed file %s: %w", seedPath, err)
	}
	var doc seedDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	client := db.EntClient

	logger.Info("Starting data seeding...", zap.String("file", seedPath))

	// Schema and River migrations are expected to run before seeding. This
	// command only performs idempotent data bootstrap.

	if err := seedReferenceData(ctx, client, doc); err != nil {
		return fmt.Errorf("seed reference data: %w", err)
	}

	if doc.Organization.Name != "" {
		if err := seedBootstrapAccount(ctx, client, doc); err != nil {
			return fmt.Errorf("seed bootstrap account: %w", err)
		}
	}

	logger.Info("Data seeding completed successfully")
	return nil
}

func seedReferenceData(ctx context.Context, client *ent.Client, doc seedDocument) error {
	for _, p := range doc.Ports {
		exists, err := client.Port.Query().Where(entport.NameEQ(p.Name)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("check port %s: %w", p.Name, err)
		}
		if exists {
			continue
		}
		create := client.Port.Create().
			SetID(service.NewID(service.PrefixPort)).
			SetName(p.Name)
		if p.Country != "" {
			create.SetCountry(p.Country)
		}
		if p.Unlocode != "" {
			create.SetUnlocode(p.Unlocode)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("create port %s: %w", p.Name, err)
		}
		logger.Info("Seeded port", zap.String("name", p.Name))
	}

	for _, ct := range doc.CargoTypes {
		exists, err := client.CargoType.Query().Where(cargotype.NameEQ(ct.Name)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("check cargo type %s: %w", ct.Name, err)
		}
		if exists {
			continue
		}
		create := client.CargoType.Create().
			SetID(service.NewID(service.PrefixCargoType)).
			SetName(ct.Name)
		if ct.Category != "" {
			create.SetCategory(ct.Category)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("create cargo type %s: %w", ct.Name, err)
		}
		logger.Info("Seeded cargo type", zap.String("name", ct.Name))
	}

	for _, c := range doc.Companies {
		exists, err := client.Company.Query().Where(company.NameEQ(c.Name)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("check company %s: %w", c.Name, err)
		}
		if exists {
			continue
		}
		create := client.Company.Create().
			SetID(service.NewID(service.PrefixCompany)).
			SetName(c.Name)
		if c.Type != "" {
			create.SetType(company.Type(c.Type))
		}
		if c.Country != "" {
			create.SetCountry(c.Country)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("create company %s: %w", c.Name, err)
		}
		logger.Info("Seeded company", zap.String("name", c.Name))
	}

	for _, v := range doc.Vessels {
		exists, err := client.Vessel.Query().Where(entvessel.NameEQ(v.Name)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("check vessel %s: %w", v.Name, err)
		}
		if exists {
			continue
		}
		create := client.Vessel.Create().
			SetID(service.NewID(service.PrefixVessel)).
			SetName(v.Name)
		if v.ImoNumber != "" {
			create.SetImoNumber(v.ImoNumber)
		}
		if v.VesselType != "" {
			create.SetVesselType(v.VesselType)
		}
		if v.Dwt > 0 {
			create.SetDwt(v.Dwt)
		}
		if v.BuiltYear > 0 {
			create.SetBuiltYear(v.BuiltYear)
		}
		if v.Flag != "" {
			create.SetFlag(v.Flag)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("create vessel %s: %w", v.Name, err)
		}
		logger.Info("Seeded vessel", zap.String("name", v.Name))
	}

	return nil
}

// seedBootstrapAccount creates the first organization and its admin user so
// a fresh install can log in and invite everyone else.
func seedBootstrapAccount(ctx context.Context, client *ent.Client, doc seedDocument) error {
	org, err := client.Organization.Query().
		Where(entorganization.NameEQ(doc.Organization.Name)).
		Only(ctx)
	if ent.IsNotFound(err) {
		org, err = client.Organization.Create().
			SetID(service.NewID(service.PrefixOrganization)).
			SetName(doc.Organization.Name).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create organization: %w", err)
		}
		logger.Info("Seeded organization", zap.String("name", org.Name))
	} else if err != nil {
		return fmt.Errorf("query organization: %w", err)
	}

	if doc.Admin.Email == "" {
		return nil
	}
	email := service.NormalizeEmail(doc.Admin.Email)

	exists, err := client.User.Query().Where(entuser.EmailEQ(email)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("check admin user: %w", err)
	}
	if exists {
		logger.Info("Admin user already exists, skipping", zap.String("email", email))
		return nil
	}

	password := doc.Admin.Password
	if password == "" {
		return fmt.Errorf("admin.password is required when seeding the admin user")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	name := doc.Admin.Name
	if name == "" {
		name = "Administrator"
	}

	if _, err := client.User.Create().
		SetID(service.NewID(service.PrefixUser)).
		SetEmail(email).
		SetName(name).
		SetPasswordHash(string(hash)).
		SetRole(entuser.RoleAdmin).
		SetOrganizationID(org.ID).
		Save(ctx); err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	logger.Info("Seeded admin user", zap.String("email", email))
	return nil
}
