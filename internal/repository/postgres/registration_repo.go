package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventease/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{DB: db}
}

func (r *registrationRepository) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	query := `
		SELECT id, user_id, event_id, created_at
		FROM registrations
		WHERE event_id = $1 AND user_id = $2
	`
	reg := &domain.Registration{}
	err := r.DB.QueryRowContext(ctx, query, eventID, userID).
		Scan(&reg.ID, &reg.UserID, &reg.EventID, &reg.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	query := `
		SELECT id, user_id, event_id, created_at
		FROM registrations
		WHERE event_id = $1
		ORDER BY created_at ASC
	`
	return r.list(ctx, query, eventID)
}

func (r *registrationRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Registration, error) {
	query := `
		SELECT id, user_id, event_id, created_at
		FROM registrations
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, userID)
}

func (r *registrationRepository) list(ctx context.Context, query string, arg any) ([]*domain.Registration, error) {
	rows, err := r.DB.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := make([]*domain.Registration, 0)
	for rows.Next() {
		reg := &domain.Registration{}
		if err := rows.Scan(&reg.ID, &reg.UserID, &reg.EventID, &reg.CreatedAt); err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

func (r *registrationRepository) ListAttendeesByEventID(ctx context.Context, eventID string) ([]*domain.Attendee, error) {
	query := `
		SELECT r.id, r.user_id, u.name, u.email, t.code, r.created_at
		FROM registrations r
		JOIN users u ON u.id = r.user_id
		JOIN tickets t ON t.registration_id = r.id
		WHERE r.event_id = $1
		ORDER BY r.created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attendees := make([]*domain.Attendee, 0)
	for rows.Next() {
		a := &domain.Attendee{}
		if err := rows.Scan(&a.RegistrationID, &a.UserID, &a.Name, &a.Email, &a.TicketCode, &a.RegisteredAt); err != nil {
			return nil, err
		}
		attendees = append(attendees, a)
	}
	return attendees, rows.Err()
}
