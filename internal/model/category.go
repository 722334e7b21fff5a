package model

import "context"

const (
	// DefaultCategoryColor is used when a category is created without a color.
	DefaultCategoryColor = "#6366F1"
	// DefaultCategoryIcon is used when a category is created without an icon.
	DefaultCategoryIcon = "Tag"
)

// CategoryStore defines persistence operations for categories.
type CategoryStore interface {
	GetAll(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id int64) (Category, error)
	Create(ctx context.Context, category Category) (Category, error)
	Update(ctx context.Context, id int64, category Category) (Category, error)
	Delete(ctx context.Context, id int64) (Category, error)
}

// Category represents a contact category.
type Category struct {
	ID    int64
	Name  string
	Color string
	Icon  string
}

// CategoryInput carries user-supplied category fields.
type CategoryInput struct {
	Name  string
	Color string
	Icon  string
}
