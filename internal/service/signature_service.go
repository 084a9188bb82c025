package service

import (
	"context"
	"fmt"
	"time"

	"charterdesk.io/charterdesk/ent"
	"charterdesk.io/charterdesk/ent/contract"
	entnotification "charterdesk.io/charterdesk/ent/notification"
	"charterdesk.io/charterdesk/ent/recapmanager"
	"charterdesk.io/charterdesk/ent/signature"
	"charterdesk.io/charterdesk/internal/governance/audit"
	"charterdesk.io/charterdesk/internal/notification"
	apperrors "charterdesk.io/charterdesk/internal/pkg/errors"
)

// SignatureService records signing parties on contracts and recaps.
type SignatureService struct {
	client *ent.Client
	audit  *audit.Logger
	sender *notification.Sender
}

// NewSignatureService creates a new SignatureService.
func NewSignatureService(client *ent.Client, auditLog *audit.Logger, sender *notification.Sender) *SignatureService {
	return &SignatureService{client: client, audit: auditLog, sender: sender}
}

// RecordSignatureInput holds fields for registering a signing party.
type RecordSignatureInput struct {
	EntityType        string
	EntityID          string
	SignerName        string
	SignerEmail       string
	Party             string
	DocumentStorageID string
	UserID            string
}

// Record registers a signing party on a contract or recap. The row starts
// unsigned; Sign sets the timestamp.
func (s *SignatureService) Record(ctx context.Context, in RecordSignatureInput) (*ent.Signature, error) {
	entityType := signature.EntityType(in.EntityType)
	if err := signature.EntityTypeValidator(entityType); err != nil {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequestField,
			fmt.Sprintf("Unknown signature entity type %q", in.EntityType))
	}
	if _, _, err := s.agreementNumber(ctx, in.EntityType, in.EntityID); err != nil {
		return nil, err
	}

	create := s.client.Signature.Create().
		SetID(NewID(PrefixSignature)).
		SetEntityType(entityType).
		SetEntityID(in.EntityID).
		SetSignerName(in.SignerName)
	if in.SignerEmail != "" {
		create = create.SetSignerEmail(in.SignerEmail)
	}
	if in.Party != "" {
		party := signature.Party(in.Party)
		if err := signature.PartyValidator(party); err != nil {
			return nil, apperrors.BadRequest(apperrors.CodeInvalidRequestField,
				fmt.Sprintf("Unknown signing party %q", in.Party))
		}
		create = create.SetParty(party)
	}
	if in.DocumentStorageID != "" {
		create = create.SetDocumentStorageID(in.DocumentStorageID)
	}

	sig, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create signature: %w", err)
	}
	return sig, nil
}

// ListForEntity returns the signing parties of one contract or recap.
func (s *SignatureService) ListForEntity(ctx context.Context, entityType, entityID string) ([]*ent.Signature, error) {
	sigs, err := s.client.Signature.Query().
		Where(
			signature.EntityTypeEQ(signature.EntityType(entityType)),
			signature.EntityIDEQ(entityID),
		).
		Order(ent.Asc(signature.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list signatures: %w", err)
	}
	return sigs, nil
}

// Sign stamps a signature row and moves the parent agreement to signed,
// recomputing the fixture's derived fields in the same transaction. The
// agreement's creator gets an inbox notification.
func (s *SignatureService) Sign(ctx context.Context, id, userID string) (*ent.Signature, error) {
	sig, err := s.client.Signature.Query().
		Where(signature.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeSignatureNotFound, "Signature not found")
		}
		return nil, fmt.Errorf("get signature: %w", err)
	}
	if sig.SignedAt != nil {
		return sig, nil
	}

	entityType := string(sig.EntityType)
	number, createdBy, err := s.agreementNumber(ctx, entityType, sig.EntityID)
	if err != nil {
		return nil, err
	}

	var signed *ent.Signature
	err = WithTx(ctx, s.client, func(tx *ent.Client) error {
		out, err := tx.Signature.UpdateOneID(id).
			SetSignedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("sign signature: %w", err)
		}
		signed = out

		var fixtureID string
		switch entityType {
		case "contract":
			c, err := tx.Contract.UpdateOneID(sig.EntityID).
				SetStatus(contract.StatusSigned).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("mark contract signed: %w", err)
			}
			if fx, err := tx.Contract.QueryFixture(c).Only(ctx); err == nil {
				fixtureID = fx.ID
			} else if !ent.IsNotFound(err) {
				return fmt.Errorf("load contract fixture: %w", err)
			}
		case "recap":
			r, err := tx.RecapManager.UpdateOneID(sig.EntityID).
				SetStatus(recapmanager.StatusSigned).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("mark recap signed: %w", err)
			}
			if fx, err := tx.RecapManager.QueryFixture(r).Only(ctx); err == nil {
				fixtureID = fx.ID
			} else if !ent.IsNotFound(err) {
				return fmt.Errorf("load recap fixture: %w", err)
			}
		}

		if err := s.audit.WithClient(tx).RecordActivity(ctx, audit.ActivityInput{
			EntityType:  entityType,
			EntityID:    sig.EntityID,
			Action:      "signed",
			Description: fmt.Sprintf("%s signed by %s (%s)", number, sig.SignerName, sig.Party),
			Status:      "signed",
			UserID:      userID,
		}); err != nil {
			return err
		}
		if createdBy != "" && createdBy != userID {
			if err := s.sender.WithClient(tx).Notify(ctx, notification.Input{
				UserID:       createdBy,
				Type:         entnotification.TypeCONTRACT_SIGNED,
				Title:        fmt.Sprintf("%s signed", number),
				Message:      fmt.Sprintf("%s was signed by %s (%s)", number, sig.SignerName, sig.Party),
				ResourceType: entityType,
				ResourceID:   sig.EntityID,
			}); err != nil {
				return err
			}
		}
		if fixtureID != "" {
			return RecomputeFixtureDerived(ctx, tx, fixtureID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return signed, nil
}

// agreementNumber resolves the display number and creator of the parent
// contract or recap.
func (s *SignatureService) agreementNumber(ctx context.Context, entityType, entityID string) (string, string, error) {
	switch entityType {
	case "contract":
		c, err := s.client.Contract.Query().
			Where(contract.IDEQ(entityID)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return "", "", apperrors.NotFound(apperrors.CodeContractNotFound, "Contract not found")
			}
			return "", "", fmt.Errorf("get contract: %w", err)
		}
		return c.CpNumber, c.CreatedBy, nil
	case "recap":
		r, err := s.client.RecapManager.Query().
			Where(recapmanager.IDEQ(entityID)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return "", "", apperrors.NotFound(apperrors.CodeRecapNotFound, "Recap not found")
			}
			return "", "", fmt.Errorf("get recap: %w", err)
		}
		return r.RecapNumber, r.CreatedBy, nil
	default:
		return "", "", apperrors.BadRequest(apperrors.CodeInvalidRequestField,
			fmt.Sprintf("Unknown signature entity type %q", entityType))
	}
}
