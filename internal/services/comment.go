package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"eventease/internal/domain"
)

const maxCommentLen = 1000

type commentService struct {
	commentRepo   domain.CommentRepository
	eventRepo     domain.EventRepository
	userRepo      domain.UserRepository
	notifications domain.NotificationService
	logger        *slog.Logger
}

// NewCommentService creates a CommentService with the given repositories.
func NewCommentService(commentRepo domain.CommentRepository, eventRepo domain.EventRepository, userRepo domain.UserRepository, notifications domain.NotificationService, logger *slog.Logger) domain.CommentService {
	return &commentService{
		commentRepo:   commentRepo,
		eventRepo:     eventRepo,
		userRepo:      userRepo,
		notifications: notifications,
		logger:        logger,
	}
}

func (s *commentService) CreateComment(ctx context.Context, actorID, eventID, content string) (*domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(content) > maxCommentLen {
		return nil, fmt.Errorf("%w: content must be at most %d characters", domain.ErrInvalidInput, maxCommentLen)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	comment := domain.NewComment(content, actorID, eventID, time.Now())
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	// Tell the organizer, unless they commented on their own event.
	// Best-effort: the comment stands even if the notification fails.
	if event.OrganizerID != actorID {
		actor, err := s.userRepo.GetByID(ctx, actorID)
		name := "Someone"
		if err == nil {
			name = actor.Name
		}
		preview := content
		if runes := []rune(preview); len(runes) > 50 {
			preview = string(runes[:50]) + "..."
		}
		if _, err := s.notifications.NotifyUser(ctx, event.OrganizerID,
			"New Comment on Your Event",
			fmt.Sprintf("%s commented on your event '%s': %s", name, event.Title, preview),
			&event.ID,
		); err != nil {
			s.logger.ErrorContext(ctx, "comment notification failed", "event_id", eventID, "organizer_id", event.OrganizerID, "err", err)
		}
	}

	return comment, nil
}

func (s *commentService) ListComments(ctx context.Context, eventID string, p domain.PaginationParams) ([]*domain.Comment, int, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, 0, domain.ErrNotFound
		}
		return nil, 0, fmt.Errorf("get event: %w", err)
	}
	comments, total, err := s.commentRepo.ListByEventID(ctx, eventID, p)
	if err != nil {
		return nil, 0, fmt.Errorf("list comments: %w", err)
	}
	return comments, total, nil
}

func (s *commentService) DeleteComment(ctx context.Context, actorID, commentID string) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get comment: %w", err)
	}
	if comment.UserID != actorID {
		actor, err := s.userRepo.GetByID(ctx, actorID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrForbidden
			}
			return fmt.Errorf("get actor: %w", err)
		}
		if actor.Role != domain.RoleAdmin {
			return domain.ErrForbidden
		}
	}
	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
