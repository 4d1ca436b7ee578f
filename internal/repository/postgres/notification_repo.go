package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventease/internal/domain"
)

type notificationRepository struct {
	DB *sql.DB
}

func NewNotificationRepository(db *sql.DB) domain.NotificationRepository {
	return &notificationRepository{DB: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	query := `
		INSERT INTO notifications (title, message, read, user_id, event_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, n.Title, n.Message, n.Read, n.UserID, n.EventID, n.CreatedAt).Scan(&n.ID)
}

func (r *notificationRepository) ListByUserID(ctx context.Context, userID string, unreadOnly bool, p domain.PaginationParams) ([]*domain.Notification, int, error) {
	where := `user_id = $1`
	if unreadOnly {
		where += ` AND read = FALSE`
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM notifications WHERE `+where, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, title, message, read, user_id, event_id, created_at
		FROM notifications
		WHERE ` + where + `
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, userID, p.PageSize, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		n := &domain.Notification{}
		var eventIDNull sql.NullString
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.Read, &n.UserID, &eventIDNull, &n.CreatedAt); err != nil {
			return nil, 0, err
		}
		if eventIDNull.Valid {
			n.EventID = &eventIDNull.String
		}
		notifications = append(notifications, n)
	}
	return notifications, total, rows.Err()
}

// MarkRead flips the read flag only when the notification belongs to userID,
// so an ownership violation is indistinguishable from a missing row.
func (r *notificationRepository) MarkRead(ctx context.Context, notificationID, userID string) (*domain.Notification, error) {
	query := `
		UPDATE notifications SET read = TRUE
		WHERE id = $1 AND user_id = $2
		RETURNING id, title, message, read, user_id, event_id, created_at
	`
	n := &domain.Notification{}
	var eventIDNull sql.NullString
	err := r.DB.QueryRowContext(ctx, query, notificationID, userID).
		Scan(&n.ID, &n.Title, &n.Message, &n.Read, &n.UserID, &eventIDNull, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if eventIDNull.Valid {
		n.EventID = &eventIDNull.String
	}
	return n, nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `UPDATE notifications SET read = TRUE WHERE user_id = $1 AND read = FALSE`, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *notificationRepository) UnreadCount(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read = FALSE`, userID).Scan(&count)
	return count, err
}
