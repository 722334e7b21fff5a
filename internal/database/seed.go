package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dtroode/contacts-server/internal/model"
)

const (
	insertCategory = `INSERT INTO categories (id, name, color, icon) VALUES ($1, $2, $3, $4)`

	insertContact = `
		INSERT INTO contacts (id, first_name, last_name, phone, email, company, job_title, notes,
		                      categories, is_favorite, photo_url, attachments, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8,
		        ARRAY(SELECT jsonb_array_elements_text($9::jsonb)), $10, $11, $12::jsonb, $13, $14)`

	// Explicit ids leave the bigserial sequences behind.
	resetSequences = `
		SELECT setval(pg_get_serial_sequence('categories', 'id'), COALESCE((SELECT MAX(id) FROM categories), 0) + 1, false),
		       setval(pg_get_serial_sequence('contacts', 'id'), COALESCE((SELECT MAX(id) FROM contacts), 0) + 1, false)`
)

// Seed loads fixtures into an empty database. It is a no-op when any contact
// or category already exists. Returns whether rows were inserted.
func Seed(ctx context.Context, db *sql.DB, contacts []model.Contact, categories []model.Category) (bool, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var existing int
	if err := tx.QueryRowContext(ctx, `SELECT (SELECT COUNT(*) FROM contacts) + (SELECT COUNT(*) FROM categories)`).Scan(&existing); err != nil {
		return false, fmt.Errorf("failed to count existing rows: %w", err)
	}
	if existing > 0 {
		return false, nil
	}

	for _, c := range categories {
		if _, err := tx.ExecContext(ctx, insertCategory, c.ID, c.Name, c.Color, c.Icon); err != nil {
			return false, fmt.Errorf("failed to insert category %q: %w", c.Name, err)
		}
	}

	for _, c := range contacts {
		categoriesJSON, err := json.Marshal(nonNil(c.Categories))
		if err != nil {
			return false, fmt.Errorf("failed to encode categories: %w", err)
		}
		attachmentsJSON, err := json.Marshal(nonNil(c.Attachments))
		if err != nil {
			return false, fmt.Errorf("failed to encode attachments: %w", err)
		}

		_, err = tx.ExecContext(ctx, insertContact,
			c.ID, c.FirstName, c.LastName, c.Phone, c.Email, c.Company, c.JobTitle, c.Notes,
			string(categoriesJSON), c.IsFavorite, c.PhotoURL, string(attachmentsJSON), c.CreatedAt, c.UpdatedAt,
		)
		if err != nil {
			return false, fmt.Errorf("failed to insert contact %d: %w", c.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, resetSequences); err != nil {
		return false, fmt.Errorf("failed to reset id sequences: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit seed: %w", err)
	}

	return true, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
