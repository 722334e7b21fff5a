package handler

import (
	"context"

	"github.com/dtroode/contacts-server/internal/api/grpc/contactsapi"
	"github.com/dtroode/contacts-server/internal/logger"
	"github.com/dtroode/contacts-server/internal/model"
)

// CategoryService defines business operations for category management.
type CategoryService interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, id int64) (model.Category, error)
	CreateCategory(ctx context.Context, in model.CategoryInput) (model.Category, error)
	UpdateCategory(ctx context.Context, id int64, in model.CategoryInput) (model.Category, error)
	DeleteCategory(ctx context.Context, id int64) (model.Category, error)
}

// Category handles gRPC endpoints for categories.
type Category struct {
	contactsapi.UnimplementedCategoriesServer
	categoryService CategoryService
	logger          *logger.Logger
}

var _ contactsapi.CategoriesServer = (*Category)(nil)

func NewCategory(categoryService CategoryService, logger *logger.Logger) *Category {
	return &Category{
		categoryService: categoryService,
		logger:          logger,
	}
}

func (h *Category) ListCategories(ctx context.Context, _ *contactsapi.ListCategoriesRequest) (*contactsapi.ListCategoriesResponse, error) {
	categories, err := h.categoryService.ListCategories(ctx)
	if err != nil {
		h.logger.Error("Category handler: list categories failed", "error", err.Error())
		return nil, handleError(err)
	}

	return &contactsapi.ListCategoriesResponse{Categories: toWireCategories(categories)}, nil
}

func (h *Category) GetCategory(ctx context.Context, req *contactsapi.GetCategoryRequest) (*contactsapi.CategoryResponse, error) {
	category, err := h.categoryService.GetCategory(ctx, req.ID)
	if err != nil {
		h.logger.Error("Category handler: get category failed", "category_id", req.ID, "error", err.Error())
		return nil, handleError(err)
	}

	return &contactsapi.CategoryResponse{Category: toWireCategory(category)}, nil
}

func (h *Category) CreateCategory(ctx context.Context, req *contactsapi.CreateCategoryRequest) (*contactsapi.CategoryResponse, error) {
	category, err := h.categoryService.CreateCategory(ctx, model.CategoryInput{
		Name:  req.Category.Name,
		Color: req.Category.Color,
		Icon:  req.Category.Icon,
	})
	if err != nil {
		h.logger.Error("Category handler: create category failed", "name", req.Category.Name, "error", err.Error())
		return nil, handleError(err)
	}

	return &contactsapi.CategoryResponse{Category: toWireCategory(category)}, nil
}

func (h *Category) UpdateCategory(ctx context.Context, req *contactsapi.UpdateCategoryRequest) (*contactsapi.CategoryResponse, error) {
	category, err := h.categoryService.UpdateCategory(ctx, req.ID, model.CategoryInput{
		Name:  req.Category.Name,
		Color: req.Category.Color,
		Icon:  req.Category.Icon,
	})
	if err != nil {
		h.logger.Error("Category handler: update category failed", "category_id", req.ID, "error", err.Error())
		return nil, handleError(err)
	}

	return &contactsapi.CategoryResponse{Category: toWireCategory(category)}, nil
}

func (h *Category) DeleteCategory(ctx context.Context, req *contactsapi.DeleteCategoryRequest) (*contactsapi.CategoryResponse, error) {
	category, err := h.categoryService.DeleteCategory(ctx, req.ID)
	if err != nil {
		h.logger.Error("Category handler: delete category failed", "category_id", req.ID, "error", err.Error())
		return nil, handleError(err)
	}

	return &contactsapi.CategoryResponse{Category: toWireCategory(category)}, nil
}
