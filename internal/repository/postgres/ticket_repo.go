package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventease/internal/domain"
)

type ticketRepository struct {
	DB *sql.DB
}

func NewTicketRepository(db *sql.DB) domain.TicketRepository {
	return &ticketRepository{DB: db}
}

func (r *ticketRepository) GetByCode(ctx context.Context, code string) (*domain.Ticket, error) {
	query := `
		SELECT id, code, registration_id, issued_at
		FROM tickets
		WHERE code = $1
	`
	t := &domain.Ticket{}
	err := r.DB.QueryRowContext(ctx, query, code).
		Scan(&t.ID, &t.Code, &t.RegistrationID, &t.IssuedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *ticketRepository) GetByRegistrationID(ctx context.Context, registrationID string) (*domain.Ticket, error) {
	query := `
		SELECT id, code, registration_id, issued_at
		FROM tickets
		WHERE registration_id = $1
	`
	t := &domain.Ticket{}
	err := r.DB.QueryRowContext(ctx, query, registrationID).
		Scan(&t.ID, &t.Code, &t.RegistrationID, &t.IssuedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}
