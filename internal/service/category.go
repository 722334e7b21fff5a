package service

import (
	"context"
	"fmt"

	"github.com/dtroode/contacts-server/internal/logger"
	"github.com/dtroode/contacts-server/internal/model"
	"github.com/dtroode/contacts-server/internal/pipeline"
	"github.com/dtroode/contacts-server/internal/validation"
)

type Category struct {
	categoryStore model.CategoryStore
	logger        *logger.Logger
}

func NewCategory(categoryStore model.CategoryStore, logger *logger.Logger) *Category {
	return &Category{
		categoryStore: categoryStore,
		logger:        logger,
	}
}

func (s *Category) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	return categories, nil
}

func (s *Category) GetCategory(ctx context.Context, id int64) (model.Category, error) {
	category, err := s.categoryStore.GetByID(ctx, id)
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

// GetByName returns the category with exactly this name.
func (s *Category) GetByName(ctx context.Context, name string) (model.Category, error) {
	categories, err := s.ListCategories(ctx)
	if err != nil {
		return model.Category{}, err
	}

	for _, c := range categories {
		if c.Name == name {
			return c, nil
		}
	}

	return model.Category{}, fmt.Errorf("category %q: %w", name, model.ErrNotFound)
}

// Colors maps every category name to its display color.
func (s *Category) Colors(ctx context.Context) (map[string]string, error) {
	categories, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	return pipeline.ColorsByName(categories), nil
}

// CreateCategory rejects names that collide with an existing category,
// ignoring case. Empty color and icon fall back to the defaults.
func (s *Category) CreateCategory(ctx context.Context, in model.CategoryInput) (model.Category, error) {
	if _, err := validation.Category(in, nil, 0); err != nil {
		return model.Category{}, err
	}

	existing, err := s.categoryStore.GetAll(ctx)
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to get categories: %w", err)
	}

	valid, err := validation.Category(in, existing, 0)
	if err != nil {
		return model.Category{}, err
	}

	category := model.Category{
		Name:  valid.Name,
		Color: valid.Color,
		Icon:  valid.Icon,
	}
	if category.Color == "" {
		category.Color = model.DefaultCategoryColor
	}
	if category.Icon == "" {
		category.Icon = model.DefaultCategoryIcon
	}

	category, err = s.categoryStore.Create(ctx, category)
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.Info("Category service: category created", "category_id", category.ID, "name", category.Name)
	return category, nil
}

// UpdateCategory replaces the name. Empty color and icon keep the stored values.
func (s *Category) UpdateCategory(ctx context.Context, id int64, in model.CategoryInput) (model.Category, error) {
	if _, err := validation.Category(in, nil, id); err != nil {
		return model.Category{}, err
	}

	existing, err := s.categoryStore.GetAll(ctx)
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to get categories: %w", err)
	}

	valid, err := validation.Category(in, existing, id)
	if err != nil {
		return model.Category{}, err
	}

	current, err := s.categoryStore.GetByID(ctx, id)
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to get category by id: %w", err)
	}

	current.Name = valid.Name
	if valid.Color != "" {
		current.Color = valid.Color
	}
	if valid.Icon != "" {
		current.Icon = valid.Icon
	}

	category, err := s.categoryStore.Update(ctx, id, current)
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

func (s *Category) DeleteCategory(ctx context.Context, id int64) (model.Category, error) {
	category, err := s.categoryStore.Delete(ctx, id)
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to delete category: %w", err)
	}

	s.logger.Info("Category service: category deleted", "category_id", id)
	return category, nil
}
