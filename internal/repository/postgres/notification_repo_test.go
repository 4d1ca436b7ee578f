package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"eventease/internal/domain"
)

func TestNotificationRepository_ListByUserID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

	t.Run("unread only filters and returns total", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM notifications WHERE user_id = \$1 AND read = FALSE`).
			WithArgs("user-uuid-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		rows := sqlmock.NewRows([]string{"id", "title", "message", "read", "user_id", "event_id", "created_at"}).
			AddRow("notif-uuid-1", "Registration Confirmed", "See you there", false, "user-uuid-1", "event-uuid-1", now)
		mock.ExpectQuery(`SELECT id, title, message, read, user_id, event_id, created_at`).
			WithArgs("user-uuid-1", 20, 0).
			WillReturnRows(rows)

		repo := NewNotificationRepository(db)
		notifications, total, err := repo.ListByUserID(ctx, "user-uuid-1", true, domain.PaginationParams{Page: 1, PageSize: 20})
		require.NoError(t, err)
		require.Equal(t, 1, total)
		require.Len(t, notifications, 1)
		require.False(t, notifications[0].Read)
		require.NotNil(t, notifications[0].EventID)
		require.Equal(t, "event-uuid-1", *notifications[0].EventID)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNotificationRepository_MarkRead(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

	t.Run("recipient marks own notification", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows([]string{"id", "title", "message", "read", "user_id", "event_id", "created_at"}).
			AddRow("notif-uuid-1", "Registration Confirmed", "See you there", true, "user-uuid-1", nil, now)
		mock.ExpectQuery(`UPDATE notifications SET read = TRUE`).
			WithArgs("notif-uuid-1", "user-uuid-1").
			WillReturnRows(rows)

		repo := NewNotificationRepository(db)
		n, err := repo.MarkRead(ctx, "notif-uuid-1", "user-uuid-1")
		require.NoError(t, err)
		require.True(t, n.Read)
		require.Nil(t, n.EventID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("someone else's notification looks missing", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`UPDATE notifications SET read = TRUE`).
			WithArgs("notif-uuid-1", "intruder-uuid").
			WillReturnError(sql.ErrNoRows)

		repo := NewNotificationRepository(db)
		_, err = repo.MarkRead(ctx, "notif-uuid-1", "intruder-uuid")
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNotificationRepository_MarkAllRead(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE notifications SET read = TRUE WHERE user_id`).
		WithArgs("user-uuid-1").
		WillReturnResult(sqlmock.NewResult(0, 4))

	repo := NewNotificationRepository(db)
	updated, err := repo.MarkAllRead(ctx, "user-uuid-1")
	require.NoError(t, err)
	require.EqualValues(t, 4, updated)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_UnreadCount(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM notifications WHERE user_id = \$1 AND read = FALSE`).
		WithArgs("user-uuid-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	repo := NewNotificationRepository(db)
	count, err := repo.UnreadCount(ctx, "user-uuid-1")
	require.NoError(t, err)
	require.Equal(t, 2, count)
	require.NoError(t, mock.ExpectationsWereMet())
}
