package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"charterdesk.io/charterdesk/ent"
	entorganization "charterdesk.io/charterdesk/ent/organization"
	entuser "charterdesk.io/charterdesk/ent/user"
	"charterdesk.io/charterdesk/internal/config"
	apperrors "charterdesk.io/charterdesk/internal/pkg/errors"
)

// AccountService manages organizations and their users.
type AccountService struct {
	client *ent.Client
	policy config.PasswordPolicy
}

// NewAccountService creates a new AccountService.
func NewAccountService(client *ent.Client, policy config.PasswordPolicy) *AccountService {
	return &AccountService{client: client, policy: policy}
}

// CreateOrganization registers a chartering desk. Names are unique.
func (s *AccountService) CreateOrganization(ctx context.Context, name string) (*ent.Organization, error) {
	taken, err := s.client.Organization.Query().
		Where(entorganization.NameEQ(name)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check organization name: %w", err)
	}
	if taken {
		return nil, apperrors.Conflict(apperrors.CodeNumberTaken,
			fmt.Sprintf("Organization %q already exists", name))
	}
	org, err := s.client.Organization.Create().
		SetID(NewID(PrefixOrganization)).
		SetName(name).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create organization: %w", err)
	}
	return org, nil
}

// GetOrganization returns one organization by id.
func (s *AccountService) GetOrganization(ctx context.Context, id string) (*ent.Organization, error) {
	org, err := s.client.Organization.Query().
		Where(entorganization.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeOrgNotFound, "Organization not found")
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return org, nil
}

// ListOrganizations returns all organizations sorted by name.
func (s *AccountService) ListOrganizations(ctx context.Context) ([]*ent.Organization, error) {
	orgs, err := s.client.Organization.Query().
		Order(ent.Asc(entorganization.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	return orgs, nil
}

// CreateUserInput holds fields for creating a user account.
type CreateUserInput struct {
	OrganizationID string
	Email          string
	Name           string
	Password       string
	Role           string
}

// CreateUser creates a user inside an organization. Emails are unique and
// stored lowercase.
func (s *AccountService) CreateUser(ctx context.Context, in CreateUserInput) (*ent.User, error) {
	email := NormalizeEmail(in.Email)
	taken, err := s.client.User.Query().
		Where(entuser.EmailEQ(email)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, apperrors.Conflict(apperrors.CodeNumberTaken,
			fmt.Sprintf("A user with email %q already exists", email))
	}
	if err := ValidatePassword(s.policy, in.Password); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	create := s.client.User.Create().
		SetID(NewID(PrefixUser)).
		SetEmail(email).
		SetName(in.Name).
		SetPasswordHash(string(hash))
	if in.OrganizationID != "" {
		create = create.SetOrganizationID(in.OrganizationID)
	}
	if in.Role != "" {
		role := entuser.Role(in.Role)
		if err := entuser.RoleValidator(role); err != nil {
			return nil, apperrors.BadRequest(apperrors.CodeInvalidRequestField,
				fmt.Sprintf("Unknown role %q", in.Role))
		}
		create = create.SetRole(role)
	}
	u, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// GetUser returns one user by id.
func (s *AccountService) GetUser(ctx context.Context, id string) (*ent.User, error) {
	u, err := s.client.User.Query().
		Where(entuser.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeUserNotFound, "User not found")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetUserByEmail returns one user by email, case-insensitive.
func (s *AccountService) GetUserByEmail(ctx context.Context, email string) (*ent.User, error) {
	u, err := s.client.User.Query().
		Where(entuser.EmailEQ(NormalizeEmail(email))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeUserNotFound, "User not found")
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// ListUsers returns the members of an organization sorted by name.
func (s *AccountService) ListUsers(ctx context.Context, organizationID string) ([]*ent.User, error) {
	users, err := s.client.User.Query().
		Where(entuser.HasOrganizationWith(entorganization.IDEQ(organizationID))).
		Order(ent.Asc(entuser.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// UpdateUserInput holds the partial-update fields of a user.
type UpdateUserInput struct {
	Name            *string
	Role            *string
	Active          *bool
	AvatarStorageID *string
}

// UpdateUser applies a partial update to a user account.
func (s *AccountService) UpdateUser(ctx context.Context, id string, in UpdateUserInput) (*ent.User, error) {
	if _, err := s.GetUser(ctx, id); err != nil {
		return nil, err
	}
	upd := s.client.User.UpdateOneID(id)
	if in.Name != nil {
		upd = upd.SetName(*in.Name)
	}
	if in.Role != nil {
		role := entuser.Role(*in.Role)
		if err := entuser.RoleValidator(role); err != nil {
			return nil, apperrors.BadRequest(apperrors.CodeInvalidRequestField,
				fmt.Sprintf("Unknown role %q", *in.Role))
		}
		upd = upd.SetRole(role)
	}
	if in.Active != nil {
		upd = upd.SetActive(*in.Active)
	}
	if in.AvatarStorageID != nil {
		upd = upd.SetAvatarStorageID(*in.AvatarStorageID)
	}
	u, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

// NormalizeEmail lowercases and trims an email address. All email
// comparisons in invitation and login flows go through this.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidatePassword checks a candidate password against the configured
// policy. The returned errors are user-displayable.
func ValidatePassword(policy config.PasswordPolicy, password string) error {
	if len(password) < policy.MinLength {
		return apperrors.BadRequest(apperrors.CodeWeakPassword,
			fmt.Sprintf("Password must be at least %d characters long", policy.MinLength))
	}
	if policy.RequireUppercase && !strings.ContainsFunc(password, isUpper) {
		return apperrors.BadRequest(apperrors.CodeWeakPassword,
			"Password must contain an uppercase letter")
	}
	if policy.RequireLowercase && !strings.ContainsFunc(password, isLower) {
		return apperrors.BadRequest(apperrors.CodeWeakPassword,
			"Password must contain a lowercase letter")
	}
	if policy.RequireDigit && !strings.ContainsAny(password, "0123456789") {
		return apperrors.BadRequest(apperrors.CodeWeakPassword,
			"Password must contain a digit")
	}
	return nil
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
