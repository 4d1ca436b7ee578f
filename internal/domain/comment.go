package domain

import (
	"context"
	"time"
)

// Comment is a user comment on an event.
// swagger:model Comment
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	UserID    string    `json:"user_id"`
	EventID   string    `json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewComment returns a new Comment. ID is set by the repository on create.
func NewComment(content, userID, eventID string, createdAt time.Time) *Comment {
	return &Comment{
		Content:   content,
		UserID:    userID,
		EventID:   eventID,
		CreatedAt: createdAt,
	}
}

// CommentRepository defines the interface for comment storage.
type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	GetByID(ctx context.Context, id string) (*Comment, error)
	ListByEventID(ctx context.Context, eventID string, p PaginationParams) (comments []*Comment, total int, err error)
	Delete(ctx context.Context, id string) error
}

// CommentService defines comment operations. Deletion is allowed to the
// comment author or an admin.
type CommentService interface {
	CreateComment(ctx context.Context, actorID, eventID, content string) (*Comment, error)
	ListComments(ctx context.Context, eventID string, p PaginationParams) ([]*Comment, int, error)
	DeleteComment(ctx context.Context, actorID, commentID string) error
}
