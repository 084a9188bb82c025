package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"charterdesk.io/charterdesk/ent"
	"charterdesk.io/charterdesk/ent/invitation"
	entnotification "charterdesk.io/charterdesk/ent/notification"
	entorganization "charterdesk.io/charterdesk/ent/organization"
	entuser "charterdesk.io/charterdesk/ent/user"
	"charterdesk.io/charterdesk/internal/config"
	"charterdesk.io/charterdesk/internal/notification"
	apperrors "charterdesk.io/charterdesk/internal/pkg/errors"
)

// InvitationService manages organization membership invitations.
//
// State machine: pending → accepted | expired | revoked. Expiry is lazy:
// an expired pending invitation flips to expired when it is read or
// accepted, not by a background sweep. The cleanup job only prunes rows
// long after they expired.
type InvitationService struct {
	client *ent.Client
	sender *notification.Sender
	policy config.PasswordPolicy
	ttl    time.Duration
}

// NewInvitationService creates a new InvitationService.
func NewInvitationService(client *ent.Client, sender *notification.Sender, policy config.PasswordPolicy, ttl time.Duration) *InvitationService {
	return &InvitationService{client: client, sender: sender, policy: policy, ttl: ttl}
}

// newInviteToken returns a URL-safe random token. Delivery (email) is an
// external collaborator; the token itself is the only secret.
func newInviteToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// InviteInput holds fields for issuing an invitation.
type InviteInput struct {
	OrganizationID string
	Email          string
	Role           string
	InvitedBy      string
}

// Invite issues a pending invitation. At most one pending invitation per
// email and organization; a second request is rejected as already sent.
func (s *InvitationService) Invite(ctx context.Context, in InviteInput) (*ent.Invitation, error) {
	email := NormalizeEmail(in.Email)
	if _, err := s.client.Organization.Query().
		Where(entorganization.IDEQ(in.OrganizationID)).
		Only(ctx); err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeOrgNotFound, "Organization not found")
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}

	pending, err := s.client.Invitation.Query().
		Where(
			invitation.HasOrganizationWith(entorganization.IDEQ(in.OrganizationID)),
			invitation.EmailEqualFold(email),
			invitation.StatusEQ(invitation.StatusPending),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("check pending invitations: %w", err)
	}
	now := time.Now()
	for _, inv := range pending {
		live, err := s.lazyExpire(ctx, s.client, inv, now)
		if err != nil {
			return nil, err
		}
		if live {
			return nil, apperrors.Conflict(apperrors.CodeInvitationSent,
				fmt.Sprintf("An invitation for %s is already pending", email))
		}
	}

	token, err := newInviteToken()
	if err != nil {
		return nil, err
	}
	create := s.client.Invitation.Create().
		SetID(NewID(PrefixInvitation)).
		SetOrganizationID(in.OrganizationID).
		SetEmail(email).
		SetToken(token).
		SetExpiresAt(now.Add(s.ttl)).
		SetInvitedBy(in.InvitedBy)
	if in.Role != "" {
		role := invitation.Role(in.Role)
		if err := invitation.RoleValidator(role); err != nil {
			return nil, apperrors.BadRequest(apperrors.CodeInvalidRequestField,
				fmt.Sprintf("Unknown role %q", in.Role))
		}
		create = create.SetRole(role)
	}
	inv, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create invitation: %w", err)
	}
	return inv, nil
}

// lazyExpire flips a pending invitation past its deadline to expired.
// Returns whether the invitation is still live.
func (s *InvitationService) lazyExpire(ctx context.Context, client *ent.Client, inv *ent.Invitation, now time.Time) (bool, error) {
	if inv.Status != invitation.StatusPending {
		return false, nil
	}
	if now.Before(inv.ExpiresAt) {
		return true, nil
	}
	if _, err := client.Invitation.UpdateOneID(inv.ID).
		SetStatus(invitation.StatusExpired).
		Save(ctx); err != nil {
		return false, fmt.Errorf("expire invitation: %w", err)
	}
	return false, nil
}

// List returns an organization's invitations, newest first, applying lazy
// expiry to stale pending rows.
func (s *InvitationService) List(ctx context.Context, organizationID string, limit, offset int) ([]*ent.Invitation, error) {
	limit, offset = clampPage(limit, offset)
	rows, err := s.client.Invitation.Query().
		Where(invitation.HasOrganizationWith(entorganization.IDEQ(organizationID))).
		Order(ent.Desc(invitation.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	now := time.Now()
	for _, inv := range rows {
		live, err := s.lazyExpire(ctx, s.client, inv, now)
		if err != nil {
			return nil, err
		}
		if !live && inv.Status == invitation.StatusPending {
			inv.Status = invitation.StatusExpired
		}
	}
	return rows, nil
}

// GetByToken resolves an invitation for the acceptance page. Expired and
// revoked invitations surface descriptive errors.
func (s *InvitationService) GetByToken(ctx context.Context, token string) (*ent.Invitation, error) {
	inv, err := s.client.Invitation.Query().
		Where(invitation.TokenEQ(token)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeInvitationNotFound, "Invitation not found")
		}
		return nil, fmt.Errorf("get invitation: %w", err)
	}
	switch inv.Status {
	case invitation.StatusRevoked:
		return nil, apperrors.Conflict(apperrors.CodeInvitationRevoked, "This invitation has been revoked")
	case invitation.StatusExpired:
		return nil, apperrors.Conflict(apperrors.CodeInvitationExpired, "This invitation has expired")
	}
	live, err := s.lazyExpire(ctx, s.client, inv, time.Now())
	if err != nil {
		return nil, err
	}
	if !live && inv.Status == invitation.StatusPending {
		return nil, apperrors.Conflict(apperrors.CodeInvitationExpired, "This invitation has expired")
	}
	return inv, nil
}

// Revoke cancels a pending invitation.
func (s *InvitationService) Revoke(ctx context.Context, id string) (*ent.Invitation, error) {
	inv, err := s.client.Invitation.Query().
		Where(invitation.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeInvitationNotFound, "Invitation not found")
		}
		return nil, fmt.Errorf("get invitation: %w", err)
	}
	if inv.Status != invitation.StatusPending {
		return nil, apperrors.Conflict(apperrors.CodeInvalidStatus,
			fmt.Sprintf("Only pending invitations can be revoked, this one is %s", inv.Status))
	}
	inv, err = s.client.Invitation.UpdateOneID(id).
		SetStatus(invitation.StatusRevoked).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("revoke invitation: %w", err)
	}
	return inv, nil
}

// AcceptInput holds fields for accepting an invitation. Name and Password
// are required only when the email has no account yet.
type AcceptInput struct {
	Token    string
	Email    string
	Name     string
	Password string
}

// AcceptResult reports the outcome of an acceptance.
type AcceptResult struct {
	AlreadyMember bool      `json:"alreadyMember"`
	User          *ent.User `json:"user,omitempty"`
}

// Accept consumes an invitation. The presented email must match the
// invitation case-insensitively. Accepting when already a member of the
// organization is idempotent and reports alreadyMember.
func (s *InvitationService) Accept(ctx context.Context, in AcceptInput) (*AcceptResult, error) {
	inv, err := s.client.Invitation.Query().
		Where(invitation.TokenEQ(in.Token)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeInvitationNotFound, "Invitation not found")
		}
		return nil, fmt.Errorf("get invitation: %w", err)
	}

	email := NormalizeEmail(in.Email)
	if NormalizeEmail(inv.Email) != email {
		return nil, apperrors.Forbidden(apperrors.CodeEmailMismatch,
			fmt.Sprintf("This invitation was issued to %s, not %s", inv.Email, in.Email))
	}

	org, err := inv.QueryOrganization().Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("get invitation organization: %w", err)
	}

	existing, err := s.client.User.Query().
		Where(entuser.EmailEQ(email)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	isMember := false
	if existing != nil {
		if memberOrg, err := existing.QueryOrganization().Only(ctx); err == nil {
			if memberOrg.ID == org.ID {
				isMember = true
			} else {
				return nil, apperrors.Conflict(apperrors.CodeValidationFailed,
					"This account already belongs to another organization")
			}
		} else if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("get user organization: %w", err)
		}
	}

	switch inv.Status {
	case invitation.StatusRevoked:
		return nil, apperrors.Conflict(apperrors.CodeInvitationRevoked, "This invitation has been revoked")
	case invitation.StatusExpired:
		return nil, apperrors.Conflict(apperrors.CodeInvitationExpired, "This invitation has expired")
	case invitation.StatusAccepted:
		if isMember {
			return &AcceptResult{AlreadyMember: true, User: existing}, nil
		}
		return nil, apperrors.Conflict(apperrors.CodeInvitationNotFound,
			"This invitation has already been used")
	}

	live, err := s.lazyExpire(ctx, s.client, inv, time.Now())
	if err != nil {
		return nil, err
	}
	if !live {
		return nil, apperrors.Conflict(apperrors.CodeInvitationExpired, "This invitation has expired")
	}

	// Already a member: mark accepted so a retry stays idempotent.
	if isMember {
		if _, err := s.client.Invitation.UpdateOneID(inv.ID).
			SetStatus(invitation.StatusAccepted).
			SetAcceptedAt(time.Now()).
			Save(ctx); err != nil {
			return nil, fmt.Errorf("accept invitation: %w", err)
		}
		return &AcceptResult{AlreadyMember: true, User: existing}, nil
	}

	var result *AcceptResult
	err = WithTx(ctx, s.client, func(tx *ent.Client) error {
		user := existing
		if user == nil {
			if in.Name == "" || in.Password == "" {
				return apperrors.BadRequest(apperrors.CodeInvalidRequestField,
					"Name and password are required to create your account")
			}
			if err := ValidatePassword(s.policy, in.Password); err != nil {
				return err
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			user, err = tx.User.Create().
				SetID(NewID(PrefixUser)).
				SetEmail(email).
				SetName(in.Name).
				SetPasswordHash(string(hash)).
				SetRole(entuser.Role(inv.Role)).
				SetOrganizationID(org.ID).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("create user: %w", err)
			}
		} else {
			user, err = tx.User.UpdateOneID(user.ID).
				SetOrganizationID(org.ID).
				SetRole(entuser.Role(inv.Role)).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("join organization: %w", err)
			}
		}

		if _, err := tx.Invitation.UpdateOneID(inv.ID).
			SetStatus(invitation.StatusAccepted).
			SetAcceptedAt(time.Now()).
			Save(ctx); err != nil {
			return fmt.Errorf("accept invitation: %w", err)
		}

		if err := s.sender.WithClient(tx).Notify(ctx, notification.Input{
			UserID:       inv.InvitedBy,
			Type:         entnotification.TypeINVITATION_ACCEPTED,
			Title:        "Invitation accepted",
			Message:      fmt.Sprintf("%s joined %s", user.Name, org.Name),
			ResourceType: "user",
			ResourceID:   user.ID,
		}); err != nil {
			return err
		}
		result = &AcceptResult{User: user}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
