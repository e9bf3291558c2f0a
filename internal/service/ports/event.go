package ports

import (
	"context"
	"time"

	"github.com/eventify-app/backend/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	Update(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	GetDetails(ctx context.Context, id, viewerID string) (*domain.EventDetails, error)
	List(ctx context.Context, viewerID string, f domain.EventFilter) ([]*domain.EventDetails, error)
	Disable(ctx context.Context, id, by string, at time.Time) error
	Restore(ctx context.Context, id string) error
	CountByCreator(ctx context.Context, creatorID string) (int, error)
}
