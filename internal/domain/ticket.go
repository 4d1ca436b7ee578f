package domain

import (
	"context"
	"time"
)

// Ticket is the proof-of-registration issued once per registration. The code
// is globally unique and unguessable (128-bit random, string form); the QR
// artifact encodes the code and is written when the ticket row is created.
// swagger:model Ticket
type Ticket struct {
	ID             string    `json:"id"`
	Code           string    `json:"code"`
	RegistrationID string    `json:"registration_id"`
	IssuedAt       time.Time `json:"issued_at"`
}

// NewTicket returns a new Ticket. ID is set by the repository on create.
func NewTicket(code, registrationID string, issuedAt time.Time) *Ticket {
	return &Ticket{
		Code:           code,
		RegistrationID: registrationID,
		IssuedAt:       issuedAt,
	}
}

// TicketRepository defines read access to tickets. Ticket rows are created
// only inside the registration transaction (RegistrationTx.CreateTicket) and
// never mutated afterwards.
type TicketRepository interface {
	GetByCode(ctx context.Context, code string) (*Ticket, error)
	GetByRegistrationID(ctx context.Context, registrationID string) (*Ticket, error)
}

// QRRenderer renders a ticket code into image bytes. Pure function of the code.
type QRRenderer interface {
	Render(code string) ([]byte, error)
}

// ArtifactStore persists ticket artifacts under a path derived
// deterministically from the ticket code.
type ArtifactStore interface {
	Write(code string, data []byte) error
	Path(code string) (string, error)
	Remove(code string) error
}

// TicketService resolves issued tickets and their artifacts by code.
type TicketService interface {
	GetByCode(ctx context.Context, code string) (*Ticket, error)
	ArtifactPath(ctx context.Context, code string) (string, error)
}
