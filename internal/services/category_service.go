package services

import (
	"context"

	"rest-playground/internal/models"
)

type CategoryService struct {
	categories CategoryStore
}

func NewCategoryService(categories CategoryStore) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.categories.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*models.Category, error) {
	return s.categories.GetByID(ctx, id)
}

func (s *CategoryService) Rename(ctx context.Context, id int64, name string) (*models.Category, error) {
	return s.categories.UpdateName(ctx, id, name)
}
