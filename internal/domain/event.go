package domain

import (
	"context"
	"time"
)

// Event represents an event users can register for.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	OrganizerID string    `json:"organizer_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID is set by the repository on create.
func NewEvent(title string, description *string, date time.Time, organizerID string, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Title:       title,
		Description: description,
		Date:        date,
		OrganizerID: organizerID,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// EventFilter holds the optional search and date filters for event listings.
type EventFilter struct {
	Search string
	From   *time.Time
	To     *time.Time
}

// EventRepository defines the interface for event storage.
// Delete removes the event together with all dependent rows (registrations and
// their tickets, comments, notifications referencing the event) in one
// transaction.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context, filter EventFilter, p PaginationParams) (events []*Event, total int, err error)
	ListByOrganizerID(ctx context.Context, organizerID string) ([]*Event, error)
	Update(ctx context.Context, eventID string, title *string, description *string, date *time.Time) (*Event, error)
	Delete(ctx context.Context, id string) error
}

// EventService defines event management operations. Mutations are gated by
// role: create requires organizer or admin, update the owning organizer,
// delete the owning organizer or admin.
type EventService interface {
	CreateEvent(ctx context.Context, actorID, title string, description *string, date time.Time) (*Event, error)
	GetEvent(ctx context.Context, id string) (*Event, error)
	ListEvents(ctx context.Context, filter EventFilter, p PaginationParams) ([]*Event, int, error)
	ListMyEvents(ctx context.Context, actorID string) ([]*Event, error)
	UpdateEvent(ctx context.Context, actorID, eventID string, title *string, description *string, date *time.Time) (*Event, error)
	DeleteEvent(ctx context.Context, actorID, eventID string) error
	ListAttendees(ctx context.Context, actorID, eventID string) ([]*Attendee, error)
}
