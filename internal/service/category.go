package service

import (
	"context"

	"github.com/eventify-app/backend/internal/domain"
	"github.com/eventify-app/backend/internal/service/ports"
)

type CategoryService struct {
	categories ports.CategoryRepo
}

func NewCategoryService(categories ports.CategoryRepo) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.categories.GetByID(ctx, id)
}
