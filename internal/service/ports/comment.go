package ports

import (
	"context"
	"time"

	"github.com/eventify-app/backend/internal/domain"
)

type CommentRepo interface {
	Create(ctx context.Context, c *domain.Comment) error
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	UpdateContent(ctx context.Context, id, content string, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
	ListActiveByEvent(ctx context.Context, eventID string) ([]*domain.Comment, error)
	Disable(ctx context.Context, id, by string, at time.Time) error
	Restore(ctx context.Context, id string) error
}
