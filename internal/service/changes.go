package service

import (
	"context"
	"strconv"
	"time"

	"charterdesk.io/charterdesk/internal/governance/audit"
)

// changeRecorder accumulates per-field diffs during an update so they can be
// written as field-change rows in the same transaction as the mutation.
// Pointer update fields follow the partial-update convention: nil means
// "not provided", so absent fields never produce a row.
type changeRecorder struct {
	entityType string
	entityID   string
	userID     string
	changes    []audit.FieldChangeInput
}

func newChangeRecorder(entityType, entityID, userID string) *changeRecorder {
	return &changeRecorder{entityType: entityType, entityID: entityID, userID: userID}
}

func (r *changeRecorder) add(field string, oldVal, newVal *string) {
	r.changes = append(r.changes, audit.FieldChangeInput{
		EntityType: r.entityType,
		EntityID:   r.entityID,
		FieldName:  field,
		OldValue:   oldVal,
		NewValue:   newVal,
		UserID:     r.userID,
	})
}

// Str records a string field edit. Empty strings render as absent values.
func (r *changeRecorder) Str(field, old string, upd *string) {
	if upd == nil || *upd == old {
		return
	}
	r.add(field, optStr(old), optStr(*upd))
}

// Float records a numeric field edit.
func (r *changeRecorder) Float(field string, old float64, upd *float64) {
	if upd == nil || *upd == old {
		return
	}
	r.add(field, optStr(formatFloat(old)), optStr(formatFloat(*upd)))
}

// Time records a timestamp field edit. A nil stored value renders as absent.
func (r *changeRecorder) Time(field string, old, upd *time.Time) {
	if upd == nil {
		return
	}
	if old != nil && old.Equal(*upd) {
		return
	}
	var oldVal *string
	if old != nil {
		s := old.UTC().Format(time.RFC3339)
		oldVal = &s
	}
	newVal := upd.UTC().Format(time.RFC3339)
	r.add(field, oldVal, &newVal)
}

func (r *changeRecorder) empty() bool {
	return len(r.changes) == 0
}

func (r *changeRecorder) flush(ctx context.Context, log *audit.Logger) error {
	for _, ch := range r.changes {
		if err := log.RecordFieldChange(ctx, ch); err != nil {
			return err
		}
	}
	return nil
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func formatFloat(f float64) string {
	if f == 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
