package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/dtroode/contacts-server/internal/model"
)

var _ model.CategoryStore = (*CategoryRepository)(nil)

// CategoryRepository owns an in-memory category collection.
type CategoryRepository struct {
	mu         sync.Mutex
	categories []model.Category
}

// NewCategoryRepository creates a repository seeded with seed.
func NewCategoryRepository(seed ...model.Category) *CategoryRepository {
	return &CategoryRepository{categories: slices.Clone(seed)}
}

func (r *CategoryRepository) GetAll(_ context.Context) ([]model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.categories == nil {
		return []model.Category{}, nil
	}
	return slices.Clone(r.categories), nil
}

func (r *CategoryRepository) GetByID(_ context.Context, id int64) (model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Category{}, model.NewNotFoundError("category", id)
	}
	return r.categories[i], nil
}

func (r *CategoryRepository) Create(_ context.Context, category model.Category) (model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkName(category.Name, 0); err != nil {
		return model.Category{}, err
	}

	var maxID int64
	for _, c := range r.categories {
		maxID = max(maxID, c.ID)
	}

	category.ID = maxID + 1
	r.categories = append(r.categories, category)
	return category, nil
}

func (r *CategoryRepository) Update(_ context.Context, id int64, category model.Category) (model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Category{}, model.NewNotFoundError("category", id)
	}
	if err := r.checkName(category.Name, id); err != nil {
		return model.Category{}, err
	}

	category.ID = id
	r.categories[i] = category
	return category, nil
}

func (r *CategoryRepository) Delete(_ context.Context, id int64) (model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Category{}, model.NewNotFoundError("category", id)
	}

	deleted := r.categories[i]
	r.categories = slices.Delete(r.categories, i, i+1)
	return deleted, nil
}

func (r *CategoryRepository) indexOf(id int64) int {
	return slices.IndexFunc(r.categories, func(c model.Category) bool { return c.ID == id })
}

// checkName rejects a name held by another category, ignoring case.
// Callers hold r.mu.
func (r *CategoryRepository) checkName(name string, selfID int64) error {
	for _, c := range r.categories {
		if c.ID != selfID && strings.EqualFold(c.Name, name) {
			return model.NewDuplicateCategoryError(c.Name)
		}
	}
	return nil
}
