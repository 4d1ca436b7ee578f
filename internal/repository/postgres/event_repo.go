package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventease/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{DB: db}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (title, description, date, organizer_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, e.Title, e.Description, e.Date, e.OrganizerID, e.CreatedAt, e.UpdatedAt).
		Scan(&e.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT id, title, description, date, organizer_id, created_at, updated_at
		FROM events
		WHERE id = $1
	`
	e := &domain.Event{}
	var descNull sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&e.ID, &e.Title, &descNull, &e.Date, &e.OrganizerID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if descNull.Valid {
		e.Description = &descNull.String
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context, filter domain.EventFilter, p domain.PaginationParams) ([]*domain.Event, int, error) {
	where := []string{"1=1"}
	args := []any{}
	n := 1
	if s := strings.TrimSpace(filter.Search); s != "" {
		where = append(where, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", n, n))
		args = append(args, "%"+s+"%")
		n++
	}
	if filter.From != nil {
		where = append(where, fmt.Sprintf("date >= $%d", n))
		args = append(args, *filter.From)
		n++
	}
	if filter.To != nil {
		where = append(where, fmt.Sprintf("date <= $%d", n))
		args = append(args, *filter.To)
		n++
	}
	whereClause := strings.Join(where, " AND ")

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM events WHERE %s`, whereClause)
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id, title, description, date, organizer_id, created_at, updated_at
		FROM events
		WHERE %s
		ORDER BY date ASC
		LIMIT $%d OFFSET $%d
	`, whereClause, n, n+1)
	args = append(args, p.PageSize, p.Offset())

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e := &domain.Event{}
		var descNull sql.NullString
		if err := rows.Scan(&e.ID, &e.Title, &descNull, &e.Date, &e.OrganizerID, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, 0, err
		}
		if descNull.Valid {
			e.Description = &descNull.String
		}
		events = append(events, e)
	}
	return events, total, rows.Err()
}

func (r *eventRepository) ListByOrganizerID(ctx context.Context, organizerID string) ([]*domain.Event, error) {
	query := `
		SELECT id, title, description, date, organizer_id, created_at, updated_at
		FROM events
		WHERE organizer_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, organizerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e := &domain.Event{}
		var descNull sql.NullString
		if err := rows.Scan(&e.ID, &e.Title, &descNull, &e.Date, &e.OrganizerID, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		if descNull.Valid {
			e.Description = &descNull.String
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, eventID string, title *string, description *string, date *time.Time) (*domain.Event, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []any{}
	n := 1
	if title != nil {
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", n))
		args = append(args, *title)
		n++
	}
	if description != nil {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", n))
		args = append(args, *description)
		n++
	}
	if date != nil {
		setClauses = append(setClauses, fmt.Sprintf("date = $%d", n))
		args = append(args, *date)
		n++
	}
	if n == 1 {
		// No fields to update; just fetch current row
		return r.GetByID(ctx, eventID)
	}
	args = append(args, eventID)
	query := fmt.Sprintf(`
		UPDATE events SET %s
		WHERE id = $%d
		RETURNING id, title, description, date, organizer_id, created_at, updated_at
	`, strings.Join(setClauses, ", "), n)

	e := &domain.Event{}
	var descNull sql.NullString
	err := r.DB.QueryRowContext(ctx, query, args...).
		Scan(&e.ID, &e.Title, &descNull, &e.Date, &e.OrganizerID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if descNull.Valid {
		e.Description = &descNull.String
	}
	return e, nil
}

// Delete removes the event and every dependent row in one transaction.
// Children first: notifications referencing the event, comments, tickets of
// the event's registrations, the registrations, then the event row.
func (r *eventRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	steps := []string{
		`DELETE FROM notifications WHERE event_id = $1`,
		`DELETE FROM comments WHERE event_id = $1`,
		`DELETE FROM tickets WHERE registration_id IN (SELECT id FROM registrations WHERE event_id = $1)`,
		`DELETE FROM registrations WHERE event_id = $1`,
	}
	for _, q := range steps {
		if _, err := tx.ExecContext(ctx, q, id); err != nil {
			return err
		}
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit()
}
