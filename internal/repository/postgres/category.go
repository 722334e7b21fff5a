package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/contacts-server/internal/model"
)

var _ model.CategoryStore = (*CategoryRepository)(nil)

type CategoryRepository struct {
	db *Connection
}

func NewCategoryRepository(db *Connection) *CategoryRepository {
	return &CategoryRepository{
		db: db,
	}
}

func (r *CategoryRepository) GetAll(ctx context.Context) ([]model.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, color, icon FROM categories ORDER BY id`)
	if err != nil {
		return nil, storeError("categories.getAll", "failed to load categories", err)
	}
	defer rows.Close()

	categories := make([]model.Category, 0)
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Color, &c.Icon); err != nil {
			return nil, storeError("categories.getAll", "failed to load categories", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("categories.getAll", "failed to load categories", err)
	}

	return categories, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (model.Category, error) {
	var c model.Category
	err := r.db.QueryRow(ctx, `SELECT id, name, color, icon FROM categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Color, &c.Icon)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Category{}, model.NewNotFoundError("category", id)
		}
		return model.Category{}, storeError("categories.getById", "failed to load category", err)
	}

	return c, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category model.Category) (model.Category, error) {
	query := `INSERT INTO categories (name, color, icon) VALUES ($1, $2, $3) RETURNING id, name, color, icon`

	var c model.Category
	err := r.db.QueryRow(ctx, query, category.Name, category.Color, category.Icon).
		Scan(&c.ID, &c.Name, &c.Color, &c.Icon)
	if err != nil {
		return model.Category{}, categoryWriteError("categories.create", category.Name, err)
	}

	return c, nil
}

func (r *CategoryRepository) Update(ctx context.Context, id int64, category model.Category) (model.Category, error) {
	query := `UPDATE categories SET name = $2, color = $3, icon = $4 WHERE id = $1 RETURNING id, name, color, icon`

	var c model.Category
	err := r.db.QueryRow(ctx, query, id, category.Name, category.Color, category.Icon).
		Scan(&c.ID, &c.Name, &c.Color, &c.Icon)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Category{}, model.NewNotFoundError("category", id)
		}
		return model.Category{}, categoryWriteError("categories.update", category.Name, err)
	}

	return c, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) (model.Category, error) {
	var c model.Category
	err := r.db.QueryRow(ctx, `DELETE FROM categories WHERE id = $1 RETURNING id, name, color, icon`, id).
		Scan(&c.ID, &c.Name, &c.Color, &c.Icon)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Category{}, model.NewNotFoundError("category", id)
		}
		return model.Category{}, storeError("categories.delete", "failed to delete category", err)
	}

	return c, nil
}

// categoryWriteError turns the lower(name) index violation into the same
// validation failure the service raises, covering concurrent writers.
func categoryWriteError(op, name string, err error) error {
	if isUniqueViolation(err) {
		return model.NewDuplicateCategoryError(name)
	}
	return storeError(op, "failed to save category", err)
}
