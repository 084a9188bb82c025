// Package usecase holds multi-service workflows.
package usecase

import (
	"context"
	"fmt"
	"time"

	"charterdesk.io/charterdesk/ent"
	"charterdesk.io/charterdesk/ent/approval"
	"charterdesk.io/charterdesk/ent/contract"
	entnotification "charterdesk.io/charterdesk/ent/notification"
	"charterdesk.io/charterdesk/ent/recapmanager"
	"charterdesk.io/charterdesk/internal/governance/audit"
	"charterdesk.io/charterdesk/internal/notification"
	apperrors "charterdesk.io/charterdesk/internal/pkg/errors"
	"charterdesk.io/charterdesk/internal/service"
)

// ApprovalUsecase drives the review workflow for contracts and recaps.
// A decision updates the approval, the agreement status, the audit trail
// and the requester's inbox in one transaction.
type ApprovalUsecase struct {
	client *ent.Client
	audit  *audit.Logger
	sender *notification.Sender
}

// NewApprovalUsecase creates a new ApprovalUsecase.
func NewApprovalUsecase(client *ent.Client, auditLog *audit.Logger, sender *notification.Sender) *ApprovalUsecase {
	return &ApprovalUsecase{client: client, audit: auditLog, sender: sender}
}

// Request opens a pending approval for a contract or recap. At most one
// pending approval per agreement.
func (u *ApprovalUsecase) Request(ctx context.Context, entityType, entityID, requestedBy string) (*ent.Approval, error) {
	et := approval.EntityType(entityType)
	if err := approval.EntityTypeValidator(et); err != nil {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequestField,
			fmt.Sprintf("Unknown approval entity type %q", entityType))
	}
	number, createdBy, err := u.agreement(ctx, u.client, entityType, entityID)
	if err != nil {
		return nil, err
	}

	pending, err := u.client.Approval.Query().
		Where(
			approval.EntityTypeEQ(et),
			approval.EntityIDEQ(entityID),
			approval.StatusEQ(approval.StatusPending),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check pending approvals: %w", err)
	}
	if pending {
		return nil, apperrors.Conflict(apperrors.CodeDuplicateRequest,
			fmt.Sprintf("An approval request for %s is already pending", number))
	}

	var created *ent.Approval
	err = service.WithTx(ctx, u.client, func(tx *ent.Client) error {
		apr, err := tx.Approval.Create().
			SetID(service.NewID(service.PrefixApproval)).
			SetEntityType(et).
			SetEntityID(entityID).
			SetRequestedBy(requestedBy).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create approval: %w", err)
		}
		created = apr

		if err := u.audit.WithClient(tx).RecordActivity(ctx, audit.ActivityInput{
			EntityType:  entityType,
			EntityID:    entityID,
			Action:      "approval-requested",
			Description: fmt.Sprintf("Approval requested for %s", number),
			UserID:      requestedBy,
		}); err != nil {
			return err
		}
		if createdBy != "" && createdBy != requestedBy {
			return u.sender.WithClient(tx).Notify(ctx, notification.Input{
				UserID:       createdBy,
				Type:         entnotification.TypeAPPROVAL_REQUESTED,
				Title:        fmt.Sprintf("Approval requested for %s", number),
				Message:      fmt.Sprintf("An approval was requested for %s", number),
				ResourceType: entityType,
				ResourceID:   entityID,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Get returns one approval by id.
func (u *ApprovalUsecase) Get(ctx context.Context, id string) (*ent.Approval, error) {
	apr, err := u.client.Approval.Query().
		Where(approval.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeApprovalNotFound, "Approval not found")
		}
		return nil, fmt.Errorf("get approval: %w", err)
	}
	return apr, nil
}

// ListForEntity returns an agreement's approvals, newest first.
func (u *ApprovalUsecase) ListForEntity(ctx context.Context, entityType, entityID string) ([]*ent.Approval, error) {
	rows, err := u.client.Approval.Query().
		Where(
			approval.EntityTypeEQ(approval.EntityType(entityType)),
			approval.EntityIDEQ(entityID),
		).
		Order(ent.Desc(approval.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list approvals: %w", err)
	}
	return rows, nil
}

// Decide resolves a pending approval. Approving moves the agreement to
// final; rejecting sends it back to drafting. Both recompute the fixture.
func (u *ApprovalUsecase) Decide(ctx context.Context, id string, approve bool, note, decidedBy string) (*ent.Approval, error) {
	apr, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if apr.Status != approval.StatusPending {
		return nil, apperrors.Conflict(apperrors.CodeApprovalDecided,
			fmt.Sprintf("This approval was already %s", apr.Status))
	}

	entityType := string(apr.EntityType)
	number, _, err := u.agreement(ctx, u.client, entityType, apr.EntityID)
	if err != nil {
		return nil, err
	}

	decision := approval.StatusRejected
	verb := "rejected"
	if approve {
		decision = approval.StatusApproved
		verb = "approved"
	}

	var decided *ent.Approval
	err = service.WithTx(ctx, u.client, func(tx *ent.Client) error {
		upd := tx.Approval.UpdateOneID(id).
			SetStatus(decision).
			SetDecidedBy(decidedBy).
			SetDecidedAt(time.Now())
		if note != "" {
			upd = upd.SetNote(note)
		}
		out, err := upd.Save(ctx)
		if err != nil {
			return fmt.Errorf("decide approval: %w", err)
		}
		decided = out

		var fixtureID string
		switch entityType {
		case "contract":
			next := contract.StatusDrafting
			if approve {
				next = contract.StatusFinal
			}
			c, err := tx.Contract.UpdateOneID(apr.EntityID).
				SetStatus(next).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("update contract status: %w", err)
			}
			if fx, err := tx.Contract.QueryFixture(c).Only(ctx); err == nil {
				fixtureID = fx.ID
			} else if !ent.IsNotFound(err) {
				return fmt.Errorf("load contract fixture: %w", err)
			}
		case "recap":
			next := recapmanager.StatusDrafting
			if approve {
				next = recapmanager.StatusFinal
			}
			r, err := tx.RecapManager.UpdateOneID(apr.EntityID).
				SetStatus(next).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("update recap status: %w", err)
			}
			if fx, err := tx.RecapManager.QueryFixture(r).Only(ctx); err == nil {
				fixtureID = fx.ID
			} else if !ent.IsNotFound(err) {
				return fmt.Errorf("load recap fixture: %w", err)
			}
		}

		if err := u.audit.WithClient(tx).RecordActivity(ctx, audit.ActivityInput{
			EntityType:  entityType,
			EntityID:    apr.EntityID,
			Action:      "approval-decided",
			Description: fmt.Sprintf("%s was %s", number, verb),
			Status:      string(decision),
			UserID:      decidedBy,
		}); err != nil {
			return err
		}
		if apr.RequestedBy != decidedBy {
			if err := u.sender.WithClient(tx).Notify(ctx, notification.Input{
				UserID:       apr.RequestedBy,
				Type:         entnotification.TypeAPPROVAL_DECIDED,
				Title:        fmt.Sprintf("%s %s", number, verb),
				Message:      fmt.Sprintf("Your approval request for %s was %s", number, verb),
				ResourceType: entityType,
				ResourceID:   apr.EntityID,
			}); err != nil {
				return err
			}
		}
		if fixtureID != "" {
			return service.RecomputeFixtureDerived(ctx, tx, fixtureID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return decided, nil
}

// agreement resolves the display number and creator of the target contract
// or recap.
func (u *ApprovalUsecase) agreement(ctx context.Context, client *ent.Client, entityType, entityID string) (string, string, error) {
	switch entityType {
	case "contract":
		c, err := client.Contract.Query().
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
		r, err := client.RecapManager.Query().
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
			fmt.Sprintf("Unknown approval entity type %q", entityType))
	}
}
