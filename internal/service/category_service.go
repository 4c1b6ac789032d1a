package service

import (
	"context"

	"github.com/RoyceAzure/lab/productmgt/internal/domain/model"
	"github.com/RoyceAzure/lab/productmgt/internal/infra/repository/db"
)

type ICategoryService interface {
	CreateCategory(ctx context.Context, name, description string) (*model.Category, error)
	GetAllCategories(ctx context.Context) ([]model.Category, error)
}

type CategoryService struct {
	categoryRepo db.ICategoryRepository
}

func NewCategoryService(categoryRepo db.ICategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) CreateCategory(ctx context.Context, name, description string) (*model.Category, error) {
	if name == "" {
		return nil, &ValidationError{Field: "name", Message: "category name is required"}
	}

	category := &model.Category{
		Name:        name,
		Description: description,
		IsActive:    true,
	}
	if err := s.categoryRepo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) GetAllCategories(ctx context.Context) ([]model.Category, error) {
	return s.categoryRepo.GetAllCategories(ctx)
}

var _ ICategoryService = (*CategoryService)(nil)
