// Package notification implements the in-app notification inbox.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"charterdesk.io/charterdesk/ent"
	entnotification "charterdesk.io/charterdesk/ent/notification"
	entuser "charterdesk.io/charterdesk/ent/user"
	apperrors "charterdesk.io/charterdesk/internal/pkg/errors"
)

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return fmt.Sprintf("ntf-%s", id.String())
}

// Sender writes and reads in-app notifications. Writes happen inside the
// triggering business transaction via WithClient.
type Sender struct {
	client *ent.Client
}

// NewSender creates a new Sender.
func NewSender(client *ent.Client) *Sender {
	return &Sender{client: client}
}

// WithClient returns a Sender bound to the given (usually transactional)
// client.
func (s *Sender) WithClient(client *ent.Client) *Sender {
	return &Sender{client: client}
}

// Input describes one notification to deliver.
type Input struct {
	UserID       string
	Type         entnotification.Type
	Title        string
	Message      string
	ResourceType string
	ResourceID   string
}

// Notify inserts one notification row for the target user.
func (s *Sender) Notify(ctx context.Context, in Input) error {
	create := s.client.Notification.Create().
		SetID(newID()).
		SetUserID(in.UserID).
		SetType(in.Type).
		SetTitle(in.Title).
		SetMessage(in.Message)
	if in.ResourceType != "" {
		create = create.SetResourceType(in.ResourceType)
	}
	if in.ResourceID != "" {
		create = create.SetResourceID(in.ResourceID)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("write notification: %w", err)
	}
	return nil
}

// ListForUser returns a user's notifications, newest first.
func (s *Sender) ListForUser(ctx context.Context, userID string, unreadOnly bool, limit, offset int) ([]*ent.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	q := s.client.Notification.Query().
		Where(entnotification.HasUserWith(entuser.IDEQ(userID)))
	if unreadOnly {
		q = q.Where(entnotification.ReadEQ(false))
	}
	rows, err := q.
		Order(ent.Desc(entnotification.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return rows, nil
}

// UnreadCount returns the number of unread notifications for a user.
func (s *Sender) UnreadCount(ctx context.Context, userID string) (int, error) {
	count, err := s.client.Notification.Query().
		Where(
			entnotification.HasUserWith(entuser.IDEQ(userID)),
			entnotification.ReadEQ(false),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead marks one of the user's notifications as read. Marking a row that
// belongs to another user reads as not found.
func (s *Sender) MarkRead(ctx context.Context, userID, notificationID string) error {
	n, err := s.client.Notification.Query().
		Where(
			entnotification.IDEQ(notificationID),
			entnotification.HasUserWith(entuser.IDEQ(userID)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return apperrors.NotFound("NOTIFICATION_NOT_FOUND", "Notification not found")
		}
		return fmt.Errorf("get notification: %w", err)
	}
	if n.Read {
		return nil
	}
	if _, err := s.client.Notification.UpdateOneID(n.ID).
		SetRead(true).
		SetReadAt(time.Now()).
		Save(ctx); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

// MarkAllRead marks every unread notification for a user as read and
// returns how many rows were touched.
func (s *Sender) MarkAllRead(ctx context.Context, userID string) (int, error) {
	n, err := s.client.Notification.Update().
		Where(
			entnotification.HasUserWith(entuser.IDEQ(userID)),
			entnotification.ReadEQ(false),
		).
		SetRead(true).
		SetReadAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	return n, nil
}
