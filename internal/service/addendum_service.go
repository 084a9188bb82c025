package service

import (
	"context"
	"fmt"

	"charterdesk.io/charterdesk/ent"
	"charterdesk.io/charterdesk/ent/addendum"
	"charterdesk.io/charterdesk/ent/contract"
	"charterdesk.io/charterdesk/ent/recapmanager"
	"charterdesk.io/charterdesk/internal/governance/audit"
	apperrors "charterdesk.io/charterdesk/internal/pkg/errors"
)

// AddendumService manages amendments to contracts and recaps. Addenda are
// deliberately excluded from the fixture rollup.
type AddendumService struct {
	client *ent.Client
	audit  *audit.Logger
}

// NewAddendumService creates a new AddendumService.
func NewAddendumService(client *ent.Client, auditLog *audit.Logger) *AddendumService {
	return &AddendumService{client: client, audit: auditLog}
}

// CreateAddendumInput holds fields for creating an addendum. Exactly one of
// ContractID/RecapID must be set.
type CreateAddendumInput struct {
	AddendumNumber string
	ContractID     string
	RecapID        string
	Description    string
	CreatedBy      string
}

// Create inserts a new addendum against its parent agreement.
func (s *AddendumService) Create(ctx context.Context, in CreateAddendumInput) (*ent.Addendum, error) {
	if (in.ContractID == "") == (in.RecapID == "") {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequestField,
			"An addendum must reference exactly one contract or recap")
	}
	if in.ContractID != "" {
		exists, err := s.client.Contract.Query().
			Where(contract.IDEQ(in.ContractID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check contract: %w", err)
		}
		if !exists {
			return nil, apperrors.NotFound(apperrors.CodeContractNotFound, "Contract not found")
		}
	}
	if in.RecapID != "" {
		exists, err := s.client.RecapManager.Query().
			Where(recapmanager.IDEQ(in.RecapID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check recap: %w", err)
		}
		if !exists {
			return nil, apperrors.NotFound(apperrors.CodeRecapNotFound, "Recap not found")
		}
	}

	var created *ent.Addendum
	err := WithTx(ctx, s.client, func(tx *ent.Client) error {
		create := tx.Addendum.Create().
			SetID(NewID(PrefixAddendum)).
			SetAddendumNumber(in.AddendumNumber).
			SetCreatedBy(in.CreatedBy)
		if in.ContractID != "" {
			create = create.SetContractID(in.ContractID)
		}
		if in.RecapID != "" {
			create = create.SetRecapID(in.RecapID)
		}
		if in.Description != "" {
			create = create.SetDescription(in.Description)
		}
		a, err := create.Save(ctx)
		if err != nil {
			return fmt.Errorf("create addendum: %w", err)
		}
		created = a

		parentType, parentID := "contract", in.ContractID
		if in.RecapID != "" {
			parentType, parentID = "recap", in.RecapID
		}
		return s.audit.WithClient(tx).RecordActivity(ctx, audit.ActivityInput{
			EntityType:  parentType,
			EntityID:    parentID,
			Action:      "addendum-added",
			Description: fmt.Sprintf("Addendum %s added", a.AddendumNumber),
			UserID:      in.CreatedBy,
		})
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Get returns one addendum by id.
func (s *AddendumService) Get(ctx context.Context, id string) (*ent.Addendum, error) {
	a, err := s.client.Addendum.Query().
		Where(addendum.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeAddendumNotFound, "Addendum not found")
		}
		return nil, fmt.Errorf("get addendum: %w", err)
	}
	return a, nil
}

// ListAddendaFilter restricts List results.
type ListAddendaFilter struct {
	ContractID string
	RecapID    string
	Limit      int
	Offset     int
}

// List returns addenda, newest first.
func (s *AddendumService) List(ctx context.Context, f ListAddendaFilter) ([]*ent.Addendum, error) {
	limit, offset := clampPage(f.Limit, f.Offset)
	q := s.client.Addendum.Query()
	if f.ContractID != "" {
		q = q.Where(addendum.ContractIDEQ(f.ContractID))
	}
	if f.RecapID != "" {
		q = q.Where(addendum.RecapIDEQ(f.RecapID))
	}
	addenda, err := q.
		Order(ent.Desc(addendum.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list addenda: %w", err)
	}
	return addenda, nil
}

// UpdateAddendumInput holds the partial-update fields of an addendum.
type UpdateAddendumInput struct {
	Description *string
	Status      *string
	UserID      string
}

// Update edits an addendum's description or finalizes it.
func (s *AddendumService) Update(ctx context.Context, id string, in UpdateAddendumInput) (*ent.Addendum, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var updated *ent.Addendum
	err = WithTx(ctx, s.client, func(tx *ent.Client) error {
		upd := tx.Addendum.UpdateOneID(id)
		if in.Description != nil {
			upd = upd.SetDescription(*in.Description)
		}
		if in.Status != nil {
			next := addendum.Status(*in.Status)
			if err := addendum.StatusValidator(next); err != nil {
				return apperrors.BadRequest(apperrors.CodeInvalidStatus,
					fmt.Sprintf("Unknown addendum status %q", *in.Status))
			}
			upd = upd.SetStatus(next)
		}
		out, err := upd.Save(ctx)
		if err != nil {
			return fmt.Errorf("update addendum: %w", err)
		}
		updated = out

		parentType, parentID := "contract", a.ContractID
		if a.RecapID != "" {
			parentType, parentID = "recap", a.RecapID
		}
		return s.audit.WithClient(tx).RecordActivity(ctx, audit.ActivityInput{
			EntityType:  parentType,
			EntityID:    parentID,
			Action:      "addendum-updated",
			Description: fmt.Sprintf("Addendum %s updated", a.AddendumNumber),
			UserID:      in.UserID,
		})
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
