package domain

import (
	"context"
	"time"
)

// Notification is an in-app message for one recipient, created by the system
// on domain events. Only the read flag is ever mutated.
// swagger:model Notification
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	UserID    string    `json:"user_id"`
	EventID   *string   `json:"event_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewNotification returns a new unread Notification. ID is set by the repository on create.
func NewNotification(title, message, userID string, eventID *string, createdAt time.Time) *Notification {
	return &Notification{
		Title:     title,
		Message:   message,
		UserID:    userID,
		EventID:   eventID,
		CreatedAt: createdAt,
	}
}

// NotificationRepository defines the interface for notification storage.
// MarkRead only affects rows owned by userID; zero rows affected means the
// notification does not exist or belongs to someone else.
type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	ListByUserID(ctx context.Context, userID string, unreadOnly bool, p PaginationParams) (notifications []*Notification, total int, err error)
	MarkRead(ctx context.Context, notificationID, userID string) (*Notification, error)
	MarkAllRead(ctx context.Context, userID string) (count int64, err error)
	UnreadCount(ctx context.Context, userID string) (int, error)
}

// NotificationService defines notification creation and bookkeeping.
// Fan-out is best-effort: a failure on one recipient is logged and does not
// block the others, and fan-out never fails the triggering request.
type NotificationService interface {
	NotifyUser(ctx context.Context, userID, title, message string, eventID *string) (*Notification, error)
	NotifyEventParticipants(ctx context.Context, eventID, title, message string, excludeUserID string) []*Notification
	Broadcast(ctx context.Context, actorID, title, message string, eventID *string) ([]*Notification, error)
	ListNotifications(ctx context.Context, userID string, unreadOnly bool, p PaginationParams) ([]*Notification, int, error)
	MarkRead(ctx context.Context, notificationID, userID string) (*Notification, error)
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
}
