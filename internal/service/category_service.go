package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/PS-gitpro/myblog/internal/domain"
	"github.com/PS-gitpro/myblog/internal/repository"
	"github.com/PS-gitpro/myblog/internal/validator"
)

// CategoryService implements the admin category workflows.
type CategoryService struct {
	categories repository.CategoryRepository
	validator  *validator.Validator
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categories repository.CategoryRepository, v *validator.Validator) *CategoryService {
	return &CategoryService{categories: categories, validator: v}
}

// Create validates and persists a new category.
func (s *CategoryService) Create(ctx context.Context, f *validator.CategoryForm) (*domain.Category, error) {
	if err := s.validator.ValidateCategory(f); err != nil {
		return nil, err
	}

	category := &domain.Category{
		ID:   uuid.New().String(),
		Name: f.Name,
	}
	if f.Description != "" {
		category.Description = &f.Description
	}

	if err := s.categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

// Delete removes the category. Its posts go with it; that cascade is
// this application's documented, if blunt, policy.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	deleted, err := s.categories.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
