package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/eventify-app/backend/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const commentColumns = `c.id, c.event_id, c.author_id, c.content, c.is_active,
		c.disabled_at, c.disabled_by, c.created_at, c.updated_at`

type CommentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCommentRepo(db *dbpg.DB) *CommentRepository {
	return &CommentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	query := `INSERT INTO comments (id, event_id, author_id, content, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, TRUE, $5, $5)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.EventID, c.AuthorID, c.Content, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments c WHERE c.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}

	c, err := scanComment(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("scan comment: %w", err)
	}

	return c, nil
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id, content string, updatedAt time.Time) error {
	query := `UPDATE comments SET content = $2, updated_at = $3 WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, content, updatedAt)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update comment rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete comment rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (r *CommentRepository) ListActiveByEvent(ctx context.Context, eventID string) ([]*domain.Comment, error) {
	query := `SELECT ` + commentColumns + `
			  FROM comments c
			  WHERE c.event_id = $1 AND c.is_active
			  ORDER BY c.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var res []*domain.Comment
	for rows.Next() {
		c, err := scanComment(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		res = append(res, c)
	}

	return res, rows.Err()
}

// Disable: модерация отключает комментарий независимо от автора; повторное
// отключение даёт конфликт.
func (r *CommentRepository) Disable(ctx context.Context, id, by string, at time.Time) error {
	query := `UPDATE comments
			  SET is_active = FALSE, disabled_at = $2, disabled_by = $3, updated_at = now()
			  WHERE id = $1 AND is_active`
	return r.toggle(ctx, id, query, domain.ErrAlreadyDisabled, at, by)
}

func (r *CommentRepository) Restore(ctx context.Context, id string) error {
	query := `UPDATE comments
			  SET is_active = TRUE, disabled_at = NULL, disabled_by = NULL, updated_at = now()
			  WHERE id = $1 AND NOT is_active`
	return r.toggle(ctx, id, query, domain.ErrNotDisabled)
}

func (r *CommentRepository) toggle(ctx context.Context, id, query string, conflict error, extra ...any) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, append([]any{id}, extra...)...)
	if err != nil {
		return fmt.Errorf("toggle comment lifecycle: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("toggle comment rows affected: %w", err)
	}
	if rows == 0 {
		var exists bool
		row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
			`SELECT EXISTS(SELECT 1 FROM comments WHERE id = $1)`, id)
		if err != nil {
			return fmt.Errorf("check comment exists: %w", err)
		}
		if err = row.Scan(&exists); err != nil {
			return fmt.Errorf("scan comment exists: %w", err)
		}
		if !exists {
			return domain.ErrCommentNotFound
		}
		return conflict
	}
	return nil
}

func scanComment(scan scanFunc) (*domain.Comment, error) {
	var (
		c          domain.Comment
		disabledAt sql.NullTime
		disabledBy sql.NullString
	)

	err := scan(
		&c.ID, &c.EventID, &c.AuthorID, &c.Content, &c.IsActive,
		&disabledAt, &disabledBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if disabledAt.Valid {
		t := disabledAt.Time
		c.DisabledAt = &t
	}
	if disabledBy.Valid {
		s := disabledBy.String
		c.DisabledBy = &s
	}

	return &c, nil
}
