package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"eventease/internal/domain"
)

type eventService struct {
	eventRepo        domain.EventRepository
	userRepo         domain.UserRepository
	registrationRepo domain.RegistrationRepository
	notifications    domain.NotificationService
	logger           *slog.Logger
}

// NewEventService creates an EventService with the given repositories.
// Registrants are notified when an event they hold a ticket for is updated
// or cancelled; those notices are best-effort.
func NewEventService(eventRepo domain.EventRepository, userRepo domain.UserRepository, registrationRepo domain.RegistrationRepository, notifications domain.NotificationService, logger *slog.Logger) domain.EventService {
	return &eventService{
		eventRepo:        eventRepo,
		userRepo:         userRepo,
		registrationRepo: registrationRepo,
		notifications:    notifications,
		logger:           logger,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, actorID, title string, description *string, date time.Time) (*domain.Event, error) {
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get actor: %w", err)
	}
	if actor.Role != domain.RoleOrganizer && actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	title = strings.TrimSpace(title)
	if len(title) < 3 {
		return nil, fmt.Errorf("%w: title must be at least 3 characters", domain.ErrInvalidInput)
	}
	// Future-date rule lives here at the boundary, not in the store.
	if !date.After(time.Now()) {
		return nil, fmt.Errorf("%w: event date must be in the future", domain.ErrInvalidInput)
	}

	now := time.Now()
	event := domain.NewEvent(title, description, date, actor.ID, now, now)
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context, filter domain.EventFilter, p domain.PaginationParams) ([]*domain.Event, int, error) {
	events, total, err := s.eventRepo.List(ctx, filter, p)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	return events, total, nil
}

func (s *eventService) ListMyEvents(ctx context.Context, actorID string) ([]*domain.Event, error) {
	events, err := s.eventRepo.ListByOrganizerID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("list events by organizer: %w", err)
	}
	return events, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, actorID, eventID string, title *string, description *string, date *time.Time) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.OrganizerID != actorID {
		return nil, domain.ErrForbidden
	}
	if title != nil {
		t := strings.TrimSpace(*title)
		if len(t) < 3 {
			return nil, fmt.Errorf("%w: title must be at least 3 characters", domain.ErrInvalidInput)
		}
		title = &t
	}
	if date != nil && !date.After(time.Now()) {
		return nil, fmt.Errorf("%w: event date must be in the future", domain.ErrInvalidInput)
	}

	updated, err := s.eventRepo.Update(ctx, eventID, title, description, date)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}

	s.notifications.NotifyEventParticipants(ctx, eventID,
		"Event Updated",
		fmt.Sprintf("The event '%s' has been updated. Check the new details.", updated.Title),
		updated.OrganizerID,
	)

	return updated, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, actorID, eventID string) error {
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get actor: %w", err)
	}
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	if event.OrganizerID != actor.ID && actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	// The cascade removes the registrations, so capture the recipients of
	// the cancellation notices first.
	regs, regsErr := s.registrationRepo.ListByEventID(ctx, eventID)
	if regsErr != nil {
		s.logger.ErrorContext(ctx, "list registrants for cancellation notices failed", "event_id", eventID, "err", regsErr)
	}

	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}

	// The cascade also removed every notification referencing the event,
	// so the cancellation notices carry no event reference.
	for _, reg := range regs {
		if reg.UserID == event.OrganizerID {
			continue
		}
		if _, err := s.notifications.NotifyUser(ctx, reg.UserID,
			"Event Cancelled",
			fmt.Sprintf("The event '%s' has been cancelled.", event.Title),
			nil,
		); err != nil {
			s.logger.ErrorContext(ctx, "cancellation notice failed", "event_id", eventID, "user_id", reg.UserID, "err", err)
		}
	}
	return nil
}

func (s *eventService) ListAttendees(ctx context.Context, actorID, eventID string) ([]*domain.Attendee, error) {
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get actor: %w", err)
	}
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.OrganizerID != actor.ID && actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	attendees, err := s.registrationRepo.ListAttendeesByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	return attendees, nil
}
