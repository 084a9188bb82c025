// Package audit implements the field-change and activity logging service.
//
// Both tables are append-only. Rows are never mutated; only the
// administrative bulk-clear mutation may delete them.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"charterdesk.io/charterdesk/ent"
	"charterdesk.io/charterdesk/ent/activitylog"
	"charterdesk.io/charterdesk/ent/contract"
	"charterdesk.io/charterdesk/ent/fieldchange"
	entuser "charterdesk.io/charterdesk/ent/user"
	"charterdesk.io/charterdesk/internal/pkg/logger"
)

// Logger writes audit records to the database.
type Logger struct {
	client *ent.Client
}

// NewLogger creates a new audit Logger.
func NewLogger(client *ent.Client) *Logger {
	return &Logger{client: client}
}

// WithClient returns a Logger bound to the given client, typically a
// transactional client so audit rows commit with the triggering mutation.
func (l *Logger) WithClient(client *ent.Client) *Logger {
	return &Logger{client: client}
}

// FieldChangeInput describes one field edit.
type FieldChangeInput struct {
	EntityType string
	EntityID   string
	FieldName  string
	OldValue   *string // nil when the field had no prior value
	NewValue   *string // nil when the field was cleared
	UserID     string
	Reason     string
}

// RecordFieldChange appends one per-field change record. No business
// validation beyond schema typing; only infrastructure errors fail it.
func (l *Logger) RecordFieldChange(ctx context.Context, in FieldChangeInput) error {
	create := l.client.FieldChange.Create().
		SetID(newAuditID("fc")).
		SetEntityType(in.EntityType).
		SetEntityID(in.EntityID).
		SetFieldName(in.FieldName).
		SetNillableOldValue(in.OldValue).
		SetNillableNewValue(in.NewValue)
	if in.UserID != "" {
		create = create.SetUserID(in.UserID)
	}
	if in.Reason != "" {
		create = create.SetReason(in.Reason)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("write field change: %w", err)
	}
	return nil
}

// ActivityInput describes one human-readable event.
type ActivityInput struct {
	EntityType  string
	EntityID    string
	Action      string
	Description string
	Status      string
	Metadata    map[string]interface{}
	UserID      string
}

// RecordActivity appends one activity record. For negotiation events it
// attempts to enrich the row with a snapshot of the linked contract's
// commercial terms; any lookup failure logs a warning and the row is
// written without the snapshot rather than rejecting the write.
func (l *Logger) RecordActivity(ctx context.Context, in ActivityInput) error {
	create := l.client.ActivityLog.Create().
		SetID(newAuditID("act")).
		SetEntityType(in.EntityType).
		SetEntityID(in.EntityID).
		SetAction(in.Action).
		SetDescription(in.Description)
	if in.Status != "" {
		create = create.SetStatus(in.Status)
	}
	if len(in.Metadata) > 0 {
		create = create.SetMetadata(in.Metadata)
	}
	if in.UserID != "" {
		create = create.SetUserID(in.UserID)
	}

	if in.EntityType == "negotiation" {
		if snap, ok := l.contractSnapshot(ctx, in.EntityID); ok {
			create = create.SetSnapshot(snap.toMap())
		}
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("write activity log: %w", err)
	}
	return nil
}

// ContractSnapshot is the point-in-time view of a contract's commercial
// terms attached to negotiation activity rows. Display convenience only.
type ContractSnapshot struct {
	ContractID    string     `json:"contract_id"`
	CpNumber      string     `json:"cp_number"`
	FreightRate   float64    `json:"freight_rate,omitempty"`
	LaycanStart   *time.Time `json:"laycan_start,omitempty"`
	LaycanEnd     *time.Time `json:"laycan_end,omitempty"`
	Quantity      float64    `json:"quantity,omitempty"`
	DemurrageRate float64    `json:"demurrage_rate,omitempty"`
}

func (s ContractSnapshot) toMap() map[string]interface{} {
	m := map[string]interface{}{
		"contract_id": s.ContractID,
		"cp_number":   s.CpNumber,
	}
	if s.FreightRate != 0 {
		m["freight_rate"] = s.FreightRate
	}
	if s.LaycanStart != nil {
		m["laycan_start"] = s.LaycanStart.Format(time.RFC3339)
	}
	if s.LaycanEnd != nil {
		m["laycan_end"] = s.LaycanEnd.Format(time.RFC3339)
	}
	if s.Quantity != 0 {
		m["quantity"] = s.Quantity
	}
	if s.DemurrageRate != 0 {
		m["demurrage_rate"] = s.DemurrageRate
	}
	return m
}

// contractSnapshot resolves the contract linked to a negotiation. The ok
// return makes the degrade-on-failure policy visible at the call site.
func (l *Logger) contractSnapshot(ctx context.Context, negotiationID string) (ContractSnapshot, bool) {
	c, err := l.client.Contract.Query().
		Where(contract.NegotiationIDEQ(negotiationID)).
		Order(ent.Desc(contract.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			logger.Warn("activity snapshot lookup failed",
				zap.String("negotiation_id", negotiationID),
				zap.Error(err),
			)
		}
		return ContractSnapshot{}, false
	}
	return ContractSnapshot{
		ContractID:    c.ID,
		CpNumber:      c.CpNumber,
		FreightRate:   c.FreightRate,
		LaycanStart:   c.LaycanStart,
		LaycanEnd:     c.LaycanEnd,
		Quantity:      c.Quantity,
		DemurrageRate: c.DemurrageRate,
	}, true
}

// UserRef is the shallow user projection attached to audit rows for display.
type UserRef struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

// FieldChangeRecord is a field change enriched for display.
type FieldChangeRecord struct {
	*ent.FieldChange
	User *UserRef `json:"user"`
}

// ActivityRecord is an activity row enriched for display.
type ActivityRecord struct {
	*ent.ActivityLog
	User *UserRef `json:"user"`
}

// ListFieldChanges returns field changes for one entity, most recent first.
func (l *Logger) ListFieldChanges(ctx context.Context, entityType, entityID string, limit, offset int) ([]FieldChangeRecord, error) {
	rows, err := l.client.FieldChange.Query().
		Where(
			fieldchange.EntityTypeEQ(entityType),
			fieldchange.EntityIDEQ(entityID),
		).
		Order(ent.Desc(fieldchange.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list field changes: %w", err)
	}
	return l.enrichFieldChanges(ctx, rows), nil
}

// ListAllFieldChanges returns field changes across all entities.
func (l *Logger) ListAllFieldChanges(ctx context.Context, limit, offset int) ([]FieldChangeRecord, error) {
	rows, err := l.client.FieldChange.Query().
		Order(ent.Desc(fieldchange.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list field changes: %w", err)
	}
	return l.enrichFieldChanges(ctx, rows), nil
}

// ListActivities returns activity rows for one entity, most recent first.
func (l *Logger) ListActivities(ctx context.Context, entityType, entityID string, limit, offset int) ([]ActivityRecord, error) {
	rows, err := l.client.ActivityLog.Query().
		Where(
			activitylog.EntityTypeEQ(entityType),
			activitylog.EntityIDEQ(entityID),
		).
		Order(ent.Desc(activitylog.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return l.enrichActivities(ctx, rows), nil
}

// ListAllActivities returns activity rows across all entities.
func (l *Logger) ListAllActivities(ctx context.Context, limit, offset int) ([]ActivityRecord, error) {
	rows, err := l.client.ActivityLog.Query().
		Order(ent.Desc(activitylog.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return l.enrichActivities(ctx, rows), nil
}

// ClearEntity bulk-deletes audit rows for one entity. Administrative
// utility only; normal operation never deletes audit rows.
func (l *Logger) ClearEntity(ctx context.Context, entityType, entityID string) (int, error) {
	fc, err := l.client.FieldChange.Delete().
		Where(
			fieldchange.EntityTypeEQ(entityType),
			fieldchange.EntityIDEQ(entityID),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear field changes: %w", err)
	}
	act, err := l.client.ActivityLog.Delete().
		Where(
			activitylog.EntityTypeEQ(entityType),
			activitylog.EntityIDEQ(entityID),
		).
		Exec(ctx)
	if err != nil {
		return fc, fmt.Errorf("clear activities: %w", err)
	}
	return fc + act, nil
}

func (l *Logger) enrichFieldChanges(ctx context.Context, rows []*ent.FieldChange) []FieldChangeRecord {
	cache := map[string]*UserRef{}
	out := make([]FieldChangeRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, FieldChangeRecord{
			FieldChange: row,
			User:        l.lookupUser(ctx, cache, row.UserID),
		})
	}
	return out
}

func (l *Logger) enrichActivities(ctx context.Context, rows []*ent.ActivityLog) []ActivityRecord {
	cache := map[string]*UserRef{}
	out := make([]ActivityRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, ActivityRecord{
			ActivityLog: row,
			User:        l.lookupUser(ctx, cache, row.UserID),
		})
	}
	return out
}

// lookupUser resolves a shallow user reference. Enrichment failures render
// as a nil user rather than failing the read.
func (l *Logger) lookupUser(ctx context.Context, cache map[string]*UserRef, userID string) *UserRef {
	if userID == "" {
		return nil
	}
	if ref, ok := cache[userID]; ok {
		return ref
	}
	u, err := l.client.User.Query().
		Where(entuser.IDEQ(userID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			logger.Warn("audit user enrichment failed",
				zap.String("user_id", userID),
				zap.Error(err),
			)
		}
		cache[userID] = nil
		return nil
	}
	ref := &UserRef{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Avatar: u.AvatarStorageID,
	}
	cache[userID] = ref
	return ref
}

func newAuditID(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("%s-%s", prefix, uuid.New().String())
	}
	return fmt.Sprintf("%s-%s", prefix, id.String())
}
