package ports

import (
	"context"

	"github.com/eventify-app/backend/internal/domain"
)

type CategoryRepo interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	GetByIDs(ctx context.Context, ids []string) ([]domain.Category, error)
}
