package domain

import (
	"context"
	"time"
)

// Registration records a user's intent to attend an event. At most one live
// registration exists per (user, event) pair; the store enforces this with a
// uniqueness constraint so one of two racing attempts always fails.
// swagger:model Registration
type Registration struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	EventID   string    `json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRegistration returns a new Registration. ID is set by the repository on create.
func NewRegistration(userID, eventID string, createdAt time.Time) *Registration {
	return &Registration{
		UserID:    userID,
		EventID:   eventID,
		CreatedAt: createdAt,
	}
}

// Attendee is a registration joined with the registrant's name and ticket
// code, as shown to the event organizer.
type Attendee struct {
	RegistrationID string    `json:"registration_id"`
	UserID         string    `json:"user_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	TicketCode     string    `json:"ticket_code"`
	RegisteredAt   time.Time `json:"registered_at"`
}

// RegistrationRepository defines read access to the registration ledger.
// Writes happen through the RegistrationUnitOfWork so the registration and its
// ticket commit or roll back together.
type RegistrationRepository interface {
	GetByEventAndUser(ctx context.Context, eventID, userID string) (*Registration, error)
	ListByEventID(ctx context.Context, eventID string) ([]*Registration, error)
	ListByUserID(ctx context.Context, userID string) ([]*Registration, error)
	ListAttendeesByEventID(ctx context.Context, eventID string) ([]*Attendee, error)
}

// RegistrationTx is the set of writes available inside one registration
// transaction.
type RegistrationTx interface {
	CreateRegistration(ctx context.Context, reg *Registration) error
	CreateTicket(ctx context.Context, ticket *Ticket) error
	DeleteTicketByRegistrationID(ctx context.Context, registrationID string) error
	DeleteRegistration(ctx context.Context, registrationID string) error
}

// RegistrationUnitOfWork runs fn inside a single database transaction.
// An error from fn rolls the transaction back and is returned unchanged.
type RegistrationUnitOfWork interface {
	WithinTx(ctx context.Context, fn func(tx RegistrationTx) error) error
}

// RegistrationResult is what a successful registration returns to the caller.
type RegistrationResult struct {
	Registration *Registration `json:"registration"`
	Ticket       *Ticket       `json:"ticket"`
}

// RegistrationService orchestrates the registration workflow:
// event check, duplicate check, one transaction covering registration row,
// ticket row, and QR artifact, then best-effort notification fan-out after
// the transaction commits.
type RegistrationService interface {
	Register(ctx context.Context, userID, eventID string) (*RegistrationResult, error)
	Cancel(ctx context.Context, userID, eventID string) (*Registration, error)
	ListMyRegistrations(ctx context.Context, userID string) ([]*RegistrationWithEvent, error)
}

// RegistrationWithEvent bundles a registration with its event for listings.
type RegistrationWithEvent struct {
	Registration *Registration `json:"registration"`
	Event        *Event        `json:"event"`
	TicketCode   string        `json:"ticket_code"`
}
