package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventease/internal/domain"
)

type notificationService struct {
	notificationRepo domain.NotificationRepository
	registrationRepo domain.RegistrationRepository
	userRepo         domain.UserRepository
	logger           *slog.Logger
}

// NewNotificationService creates a NotificationService with the given repositories.
func NewNotificationService(notificationRepo domain.NotificationRepository, registrationRepo domain.RegistrationRepository, userRepo domain.UserRepository, logger *slog.Logger) domain.NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		registrationRepo: registrationRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

func (s *notificationService) NotifyUser(ctx context.Context, userID, title, message string, eventID *string) (*domain.Notification, error) {
	n := domain.NewNotification(title, message, userID, eventID, time.Now())
	if err := s.notificationRepo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return n, nil
}

// NotifyEventParticipants creates one notification per registrant of the
// event, skipping excludeUserID. Each creation is independent: a failure on
// one recipient is logged and the loop continues.
func (s *notificationService) NotifyEventParticipants(ctx context.Context, eventID, title, message string, excludeUserID string) []*domain.Notification {
	regs, err := s.registrationRepo.ListByEventID(ctx, eventID)
	if err != nil {
		s.logger.ErrorContext(ctx, "list registrants for fan-out failed", "event_id", eventID, "err", err)
		return nil
	}

	created := make([]*domain.Notification, 0, len(regs))
	for _, reg := range regs {
		if reg.UserID == excludeUserID {
			continue
		}
		n := domain.NewNotification(title, message, reg.UserID, &eventID, time.Now())
		if err := s.notificationRepo.Create(ctx, n); err != nil {
			s.logger.ErrorContext(ctx, "fan-out recipient failed", "event_id", eventID, "user_id", reg.UserID, "err", err)
			continue
		}
		created = append(created, n)
	}
	return created
}

// Broadcast creates one notification per user in the system. Admin only.
func (s *notificationService) Broadcast(ctx context.Context, actorID, title, message string, eventID *string) ([]*domain.Notification, error) {
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get actor: %w", err)
	}
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	created := make([]*domain.Notification, 0, len(users))
	for _, u := range users {
		n := domain.NewNotification(title, message, u.ID, eventID, time.Now())
		if err := s.notificationRepo.Create(ctx, n); err != nil {
			s.logger.ErrorContext(ctx, "broadcast recipient failed", "user_id", u.ID, "err", err)
			continue
		}
		created = append(created, n)
	}
	return created, nil
}

func (s *notificationService) ListNotifications(ctx context.Context, userID string, unreadOnly bool, p domain.PaginationParams) ([]*domain.Notification, int, error) {
	notifications, total, err := s.notificationRepo.ListByUserID(ctx, userID, unreadOnly, p)
	if err != nil {
		return nil, 0, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, total, nil
}

func (s *notificationService) MarkRead(ctx context.Context, notificationID, userID string) (*domain.Notification, error) {
	n, err := s.notificationRepo.MarkRead(ctx, notificationID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("mark read: %w", err)
	}
	return n, nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	count, err := s.notificationRepo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("mark all read: %w", err)
	}
	return count, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	count, err := s.notificationRepo.UnreadCount(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("unread count: %w", err)
	}
	return count, nil
}
