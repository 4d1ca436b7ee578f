package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"eventease/internal/domain"
)

// registrationUnitOfWork runs registration writes inside one database
// transaction. The registration row, its ticket row, and (via the caller's
// closure) the QR artifact commit or roll back as a unit.
type registrationUnitOfWork struct {
	DB *sql.DB
}

func NewRegistrationUnitOfWork(db *sql.DB) domain.RegistrationUnitOfWork {
	return &registrationUnitOfWork{DB: db}
}

func (u *registrationUnitOfWork) WithinTx(ctx context.Context, fn func(tx domain.RegistrationTx) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(&registrationTx{tx: tx}); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// registrationTx implements domain.RegistrationTx on an open *sql.Tx.
type registrationTx struct {
	tx *sql.Tx
}

func (t *registrationTx) CreateRegistration(ctx context.Context, reg *domain.Registration) error {
	query := `
		INSERT INTO registrations (user_id, event_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := t.tx.QueryRowContext(ctx, query, reg.UserID, reg.EventID, reg.CreatedAt).Scan(&reg.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			// Lost the race against a concurrent registration for the
			// same (user, event) pair.
			return domain.ErrAlreadyRegistered
		}
		return err
	}
	return nil
}

func (t *registrationTx) CreateTicket(ctx context.Context, ticket *domain.Ticket) error {
	query := `
		INSERT INTO tickets (code, registration_id, issued_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return t.tx.QueryRowContext(ctx, query, ticket.Code, ticket.RegistrationID, ticket.IssuedAt).Scan(&ticket.ID)
}

func (t *registrationTx) DeleteTicketByRegistrationID(ctx context.Context, registrationID string) error {
	_, err := t.tx.ExecContext(ctx, `DELETE FROM tickets WHERE registration_id = $1`, registrationID)
	return err
}

func (t *registrationTx) DeleteRegistration(ctx context.Context, registrationID string) error {
	result, err := t.tx.ExecContext(ctx, `DELETE FROM registrations WHERE id = $1`, registrationID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
