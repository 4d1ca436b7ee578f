package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"eventease/internal/domain"
)

func futureEvent(id, organizerID string) *domain.Event {
	desc := "talks and hallway track"
	return &domain.Event{
		ID:          id,
		Title:       "GopherCon",
		Description: &desc,
		Date:        time.Now().AddDate(0, 1, 0),
		OrganizerID: organizerID,
	}
}

func newRegistrationFixture() (*mockEventRepo, *mockRegistrationRepo, *mockTicketRepo, *mockUserRepo, *mockUnitOfWork, *mockQRRenderer, *mockArtifactStore, *mockNotificationService, *mockEmailService) {
	events := &mockEventRepo{events: map[string]*domain.Event{
		"event-1": futureEvent("event-1", "organizer-1"),
	}}
	regs := &mockRegistrationRepo{byEventAndUser: map[string]*domain.Registration{}}
	tickets := &mockTicketRepo{}
	users := &mockUserRepo{users: map[string]*domain.User{
		"attendee-1":  {ID: "attendee-1", Name: "Alice", Email: "alice@example.com", Role: domain.RoleAttendee},
		"organizer-1": {ID: "organizer-1", Name: "Olga", Email: "olga@example.com", Role: domain.RoleOrganizer},
	}}
	uow := &mockUnitOfWork{}
	qr := &mockQRRenderer{png: []byte("png-bytes")}
	artifacts := &mockArtifactStore{}
	notifications := &mockNotificationService{}
	emails := &mockEmailService{}
	return events, regs, tickets, users, uow, qr, artifacts, notifications, emails
}

func TestRegistrationService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("issues ticket and notifies both parties", func(t *testing.T) {
		events, regs, tickets, users, uow, qr, artifacts, notifications, emails := newRegistrationFixture()
		svc := NewRegistrationService(events, regs, tickets, users, uow, qr, artifacts, notifications, emails, testLogger)

		result, err := svc.Register(ctx, "attendee-1", "event-1")
		require.NoError(t, err)
		require.True(t, uow.committed)
		require.Equal(t, "reg-created", result.Registration.ID)
		require.NotEmpty(t, result.Ticket.Code)
		require.Equal(t, "reg-created", result.Ticket.RegistrationID)

		// QR artifact written under the ticket code.
		require.Contains(t, artifacts.written, result.Ticket.Code)
		require.Equal(t, []byte("png-bytes"), artifacts.written[result.Ticket.Code])

		// Registrant and organizer each got a notification.
		require.Len(t, notifications.notified, 2)
		require.Equal(t, "attendee-1", notifications.notified[0].UserID)
		require.Equal(t, "Registration Confirmed", notifications.notified[0].Title)
		require.Equal(t, "organizer-1", notifications.notified[1].UserID)
		require.Equal(t, "New Registration", notifications.notified[1].Title)

		// Confirmation email to the registrant.
		require.Len(t, emails.sent, 1)
		require.Equal(t, "alice@example.com", emails.sent[0].Email)
		require.Equal(t, result.Ticket.Code, emails.sent[0].TicketCode)
	})

	t.Run("organizer registering for own event gets one notification", func(t *testing.T) {
		events, regs, tickets, users, uow, qr, artifacts, notifications, emails := newRegistrationFixture()
		svc := NewRegistrationService(events, regs, tickets, users, uow, qr, artifacts, notifications, emails, testLogger)

		_, err := svc.Register(ctx, "organizer-1", "event-1")
		require.NoError(t, err)
		require.Len(t, notifications.notified, 1)
		require.Equal(t, "organizer-1", notifications.notified[0].UserID)
	})

	t.Run("unknown event", func(t *testing.T) {
		events, regs, tickets, users, uow, qr, artifacts, notifications, emails := newRegistrationFixture()
		svc := NewRegistrationService(events, regs, tickets, users, uow, qr, artifacts, notifications, emails, testLogger)

		_, err := svc.Register(ctx, "attendee-1", "no-such-event")
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.False(t, uow.committed)
	})

	t.Run("duplicate registration", func(t *testing.T) {
		events, regs, tickets, users, uow, qr, artifacts, notifications, emails := newRegistrationFixture()
		regs.byEventAndUser["event-1/attendee-1"] = &domain.Registration{ID: "reg-existing", UserID: "attendee-1", EventID: "event-1"}
		svc := NewRegistrationService(events, regs, tickets, users, uow, qr, artifacts, notifications, emails, testLogger)

		_, err := svc.Register(ctx, "attendee-1", "event-1")
		require.ErrorIs(t, err, domain.ErrAlreadyRegistered)
		require.False(t, uow.committed)
		require.Empty(t, notifications.notified)
	})

	t.Run("insert race surfaces as already registered", func(t *testing.T) {
		events, regs, tickets, users, uow, qr, artifacts, notifications, emails := newRegistrationFixture()
		uow.tx.createRegErr = domain.ErrAlreadyRegistered
		svc := NewRegistrationService(events, regs, tickets, users, uow, qr, artifacts, notifications, emails, testLogger)

		_, err := svc.Register(ctx, "attendee-1", "event-1")
		require.ErrorIs(t, err, domain.ErrAlreadyRegistered)
		require.True(t, uow.rolledBack)
	})

	t.Run("artifact write failure rolls the whole unit back", func(t *testing.T) {
		events, regs, tickets, users, uow, qr, artifacts, notifications, emails := newRegistrationFixture()
		artifacts.writeErr = errors.New("disk full")
		svc := NewRegistrationService(events, regs, tickets, users, uow, qr, artifacts, notifications, emails, testLogger)

		_, err := svc.Register(ctx, "attendee-1", "event-1")
		require.ErrorIs(t, err, domain.ErrArtifactWrite)
		require.True(t, uow.rolledBack)
		require.False(t, uow.committed)
		require.Empty(t, notifications.notified)
		require.Empty(t, emails.sent)
	})

	t.Run("notification failure does not fail the registration", func(t *testing.T) {
		events, regs, tickets, users, uow, qr, artifacts, notifications, emails := newRegistrationFixture()
		notifications.notifyErr = errors.New("notification store down")
		svc := NewRegistrationService(events, regs, tickets, users, uow, qr, artifacts, notifications, emails, testLogger)

		result, err := svc.Register(ctx, "attendee-1", "event-1")
		require.NoError(t, err)
		require.NotNil(t, result)
		require.True(t, uow.committed)
	})

	t.Run("email failure does not fail the registration", func(t *testing.T) {
		events, regs, tickets, users, uow, qr, artifacts, notifications, emails := newRegistrationFixture()
		emails.sendErr = errors.New("smtp down")
		svc := NewRegistrationService(events, regs, tickets, users, uow, qr, artifacts, notifications, emails, testLogger)

		_, err := svc.Register(ctx, "attendee-1", "event-1")
		require.NoError(t, err)
	})

	t.Run("nil email service skips email", func(t *testing.T) {
		events, regs, tickets, users, uow, qr, artifacts, notifications, _ := newRegistrationFixture()
		svc := NewRegistrationService(events, regs, tickets, users, uow, qr, artifacts, notifications, nil, testLogger)

		_, err := svc.Register(ctx, "attendee-1", "event-1")
		require.NoError(t, err)
	})
}

func TestRegistrationService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("removes ticket and registration, notifies organizer", func(t *testing.T) {
		events, regs, tickets, users, uow, qr, artifacts, notifications, emails := newRegistrationFixture()
		regs.byEventAndUser["event-1/attendee-1"] = &domain.Registration{ID: "reg-1", UserID: "attendee-1", EventID: "event-1"}
		svc := NewRegistrationService(events, regs, tickets, users, uow, qr, artifacts, notifications, emails, testLogger)

		reg, err := svc.Cancel(ctx, "attendee-1", "event-1")
		require.NoError(t, err)
		require.Equal(t, "reg-1", reg.ID)
		require.True(t, uow.committed)
		require.Equal(t, "reg-1", uow.tx.deletedTicketRegID)
		require.Equal(t, "reg-1", uow.tx.deletedRegID)

		require.Len(t, notifications.notified, 2)
		require.Equal(t, "attendee-1", notifications.notified[0].UserID)
		require.Equal(t, "organizer-1", notifications.notified[1].UserID)
	})

	t.Run("not registered", func(t *testing.T) {
		events, regs, tickets, users, uow, qr, artifacts, notifications, emails := newRegistrationFixture()
		svc := NewRegistrationService(events, regs, tickets, users, uow, qr, artifacts, notifications, emails, testLogger)

		_, err := svc.Cancel(ctx, "attendee-1", "event-1")
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.False(t, uow.committed)
	})

	t.Run("registering again after cancel succeeds", func(t *testing.T) {
		events, regs, tickets, users, uow, qr, artifacts, notifications, emails := newRegistrationFixture()
		regs.byEventAndUser["event-1/attendee-1"] = &domain.Registration{ID: "reg-1", UserID: "attendee-1", EventID: "event-1"}
		svc := NewRegistrationService(events, regs, tickets, users, uow, qr, artifacts, notifications, emails, testLogger)

		_, err := svc.Cancel(ctx, "attendee-1", "event-1")
		require.NoError(t, err)

		delete(regs.byEventAndUser, "event-1/attendee-1")
		result, err := svc.Register(ctx, "attendee-1", "event-1")
		require.NoError(t, err)
		require.NotNil(t, result.Ticket)
	})
}

func TestRegistrationService_ListMyRegistrations(t *testing.T) {
	ctx := context.Background()

	t.Run("attaches events and ticket codes, skips deleted events", func(t *testing.T) {
		events, regs, tickets, users, uow, qr, artifacts, notifications, emails := newRegistrationFixture()
		regs.byUser = map[string][]*domain.Registration{
			"attendee-1": {
				{ID: "reg-1", UserID: "attendee-1", EventID: "event-1"},
				{ID: "reg-2", UserID: "attendee-1", EventID: "event-gone"},
			},
		}
		tickets.byRegistrationID = map[string]*domain.Ticket{
			"reg-1": {ID: "ticket-1", Code: "code-1", RegistrationID: "reg-1"},
		}
		svc := NewRegistrationService(events, regs, tickets, users, uow, qr, artifacts, notifications, emails, testLogger)

		result, err := svc.ListMyRegistrations(ctx, "attendee-1")
		require.NoError(t, err)
		require.Len(t, result, 1)
		require.Equal(t, "reg-1", result[0].Registration.ID)
		require.Equal(t, "GopherCon", result[0].Event.Title)
		require.Equal(t, "code-1", result[0].TicketCode)
	})
}
