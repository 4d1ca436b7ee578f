package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"eventease/internal/domain"
)

// registrationService orchestrates the registration workflow. The atomic unit
// is the registration row + ticket row + QR artifact: an artifact write
// failure rolls the database transaction back so no orphaned ticket survives.
// Notification fan-out and the confirmation email run only after the
// transaction commits and are best-effort.
type registrationService struct {
	eventRepo        domain.EventRepository
	registrationRepo domain.RegistrationRepository
	ticketRepo       domain.TicketRepository
	userRepo         domain.UserRepository
	uow              domain.RegistrationUnitOfWork
	qrRenderer       domain.QRRenderer
	artifacts        domain.ArtifactStore
	notifications    domain.NotificationService
	emails           domain.EmailService
	logger           *slog.Logger
}

// NewRegistrationService creates the registration workflow orchestrator.
// emails may be nil when outbound email is disabled.
func NewRegistrationService(
	eventRepo domain.EventRepository,
	registrationRepo domain.RegistrationRepository,
	ticketRepo domain.TicketRepository,
	userRepo domain.UserRepository,
	uow domain.RegistrationUnitOfWork,
	qrRenderer domain.QRRenderer,
	artifacts domain.ArtifactStore,
	notifications domain.NotificationService,
	emails domain.EmailService,
	logger *slog.Logger,
) domain.RegistrationService {
	return &registrationService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		ticketRepo:       ticketRepo,
		userRepo:         userRepo,
		uow:              uow,
		qrRenderer:       qrRenderer,
		artifacts:        artifacts,
		notifications:    notifications,
		emails:           emails,
		logger:           logger,
	}
}

func (s *registrationService) Register(ctx context.Context, userID, eventID string) (*domain.RegistrationResult, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	// Friendly duplicate check. The uniqueness constraint on
	// (user_id, event_id) still catches the race between two concurrent
	// attempts that both pass this check.
	if _, err := s.registrationRepo.GetByEventAndUser(ctx, eventID, userID); err == nil {
		return nil, domain.ErrAlreadyRegistered
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get registration: %w", err)
	}

	now := time.Now()
	reg := domain.NewRegistration(userID, eventID, now)
	ticket := domain.NewTicket(uuid.NewString(), "", now)

	err = s.uow.WithinTx(ctx, func(tx domain.RegistrationTx) error {
		if err := tx.CreateRegistration(ctx, reg); err != nil {
			if errors.Is(err, domain.ErrAlreadyRegistered) {
				return domain.ErrAlreadyRegistered
			}
			return fmt.Errorf("create registration: %w", err)
		}
		ticket.RegistrationID = reg.ID
		if err := tx.CreateTicket(ctx, ticket); err != nil {
			return fmt.Errorf("create ticket: %w", err)
		}
		png, err := s.qrRenderer.Render(ticket.Code)
		if err != nil {
			return fmt.Errorf("render qr: %w", err)
		}
		if err := s.artifacts.Write(ticket.Code, png); err != nil {
			// Rolls back the registration and ticket rows.
			return fmt.Errorf("%w: %v", domain.ErrArtifactWrite, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.fanOutRegistered(ctx, event, userID, ticket)

	return &domain.RegistrationResult{Registration: reg, Ticket: ticket}, nil
}

// fanOutRegistered delivers the post-commit side effects of a successful
// registration. All of them are best-effort: failures are logged, never
// surfaced to the registering user.
func (s *registrationService) fanOutRegistered(ctx context.Context, event *domain.Event, userID string, ticket *domain.Ticket) {
	eventDate := event.Date.Format("Jan 2, 2006 15:04")

	if _, err := s.notifications.NotifyUser(ctx, userID,
		"Registration Confirmed",
		fmt.Sprintf("You are registered for '%s' on %s. Your ticket code is %s.", event.Title, eventDate, ticket.Code),
		&event.ID,
	); err != nil {
		s.logger.ErrorContext(ctx, "notify registrant failed", "event_id", event.ID, "user_id", userID, "err", err)
	}

	if event.OrganizerID != userID {
		if _, err := s.notifications.NotifyUser(ctx, event.OrganizerID,
			"New Registration",
			fmt.Sprintf("A new attendee registered for your event '%s'.", event.Title),
			&event.ID,
		); err != nil {
			s.logger.ErrorContext(ctx, "notify organizer failed", "event_id", event.ID, "organizer_id", event.OrganizerID, "err", err)
		}
	}

	if s.emails != nil {
		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			s.logger.ErrorContext(ctx, "load registrant for email failed", "user_id", userID, "err", err)
			return
		}
		data := &domain.TicketIssuedEmailData{
			Email:      user.Email,
			Name:       user.Name,
			EventTitle: event.Title,
			EventDate:  eventDate,
			TicketCode: ticket.Code,
			TicketURL:  "/tickets/" + ticket.Code + "/qr",
		}
		if err := s.emails.SendTicketIssued(ctx, data); err != nil {
			s.logger.ErrorContext(ctx, "ticket email failed", "user_id", userID, "err", err)
		}
	}
}

func (s *registrationService) Cancel(ctx context.Context, userID, eventID string) (*domain.Registration, error) {
	reg, err := s.registrationRepo.GetByEventAndUser(ctx, eventID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get registration: %w", err)
	}

	// Ticket goes with its registration. The artifact file is swept
	// separately; the store keeps Remove for that.
	err = s.uow.WithinTx(ctx, func(tx domain.RegistrationTx) error {
		if err := tx.DeleteTicketByRegistrationID(ctx, reg.ID); err != nil {
			return fmt.Errorf("delete ticket: %w", err)
		}
		if err := tx.DeleteRegistration(ctx, reg.ID); err != nil {
			return fmt.Errorf("delete registration: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if event, err := s.eventRepo.GetByID(ctx, eventID); err == nil {
		if _, err := s.notifications.NotifyUser(ctx, userID,
			"Registration Cancelled",
			fmt.Sprintf("Your registration for '%s' has been cancelled.", event.Title),
			&event.ID,
		); err != nil {
			s.logger.ErrorContext(ctx, "notify canceling user failed", "event_id", eventID, "user_id", userID, "err", err)
		}
		if event.OrganizerID != userID {
			if _, err := s.notifications.NotifyUser(ctx, event.OrganizerID,
				"Registration Cancelled",
				fmt.Sprintf("An attendee cancelled their registration for your event '%s'.", event.Title),
				&event.ID,
			); err != nil {
				s.logger.ErrorContext(ctx, "notify organizer failed", "event_id", eventID, "organizer_id", event.OrganizerID, "err", err)
			}
		}
	} else {
		s.logger.ErrorContext(ctx, "load event for cancel notifications failed", "event_id", eventID, "err", err)
	}

	return reg, nil
}

func (s *registrationService) ListMyRegistrations(ctx context.Context, userID string) ([]*domain.RegistrationWithEvent, error) {
	regs, err := s.registrationRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}

	result := make([]*domain.RegistrationWithEvent, 0, len(regs))
	for _, reg := range regs {
		event, err := s.eventRepo.GetByID(ctx, reg.EventID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Event deleted but registration remains; skip this entry.
				continue
			}
			return nil, fmt.Errorf("get event for registration: %w", err)
		}
		item := &domain.RegistrationWithEvent{Registration: reg, Event: event}
		if ticket, err := s.ticketRepo.GetByRegistrationID(ctx, reg.ID); err == nil {
			item.TicketCode = ticket.Code
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("get ticket for registration: %w", err)
		}
		result = append(result, item)
	}
	return result, nil
}
