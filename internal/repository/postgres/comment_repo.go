package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventease/internal/domain"
)

type commentRepository struct {
	DB *sql.DB
}

func NewCommentRepository(db *sql.DB) domain.CommentRepository {
	return &commentRepository{DB: db}
}

func (r *commentRepository) Create(ctx context.Context, c *domain.Comment) error {
	query := `
		INSERT INTO comments (content, user_id, event_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, c.Content, c.UserID, c.EventID, c.CreatedAt).Scan(&c.ID)
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	query := `
		SELECT id, content, user_id, event_id, created_at
		FROM comments
		WHERE id = $1
	`
	c := &domain.Comment{}
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&c.ID, &c.Content, &c.UserID, &c.EventID, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *commentRepository) ListByEventID(ctx context.Context, eventID string, p domain.PaginationParams) ([]*domain.Comment, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM comments WHERE event_id = $1`, eventID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, content, user_id, event_id, created_at
		FROM comments
		WHERE event_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID, p.PageSize, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	comments := make([]*domain.Comment, 0)
	for rows.Next() {
		c := &domain.Comment{}
		if err := rows.Scan(&c.ID, &c.Content, &c.UserID, &c.EventID, &c.CreatedAt); err != nil {
			return nil, 0, err
		}
		comments = append(comments, c)
	}
	return comments, total, rows.Err()
}

func (r *commentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
