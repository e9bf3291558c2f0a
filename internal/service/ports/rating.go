package ports

import (
	"context"

	"github.com/eventify-app/backend/internal/domain"
)

type RatingRepo interface {
	Create(ctx context.Context, r *domain.Rating) error
	Summary(ctx context.Context, eventID string) (*domain.RatingSummary, error)
}
