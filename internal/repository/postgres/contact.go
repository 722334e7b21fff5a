package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/contacts-server/internal/model"
)

var _ model.ContactStore = (*ContactRepository)(nil)

const contactColumns = `id, first_name, last_name, phone, email, company, job_title, notes,
	categories, is_favorite, photo_url, attachments, created_at, updated_at`

type ContactRepository struct {
	db *Connection
}

func NewContactRepository(db *Connection) *ContactRepository {
	return &ContactRepository{
		db: db,
	}
}

func (r *ContactRepository) GetAll(ctx context.Context) ([]model.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, storeError("contacts.getAll", "failed to load contacts", err)
	}
	defer rows.Close()

	contacts := make([]model.Contact, 0)
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, storeError("contacts.getAll", "failed to load contacts", err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("contacts.getAll", "failed to load contacts", err)
	}

	return contacts, nil
}

func (r *ContactRepository) GetByID(ctx context.Context, id int64) (model.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`

	contact, err := scanContact(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Contact{}, model.NewNotFoundError("contact", id)
		}
		return model.Contact{}, storeError("contacts.getById", "failed to load contact", err)
	}

	return contact, nil
}

func (r *ContactRepository) Create(ctx context.Context, contact model.Contact) (model.Contact, error) {
	query := `
		INSERT INTO contacts (first_name, last_name, phone, email, company, job_title, notes,
		                      categories, is_favorite, photo_url, attachments)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + contactColumns

	saved, err := scanContact(r.db.QueryRow(ctx, query,
		contact.FirstName, contact.LastName, contact.Phone, contact.Email, contact.Company,
		contact.JobTitle, contact.Notes, nonNil(contact.Categories), contact.IsFavorite,
		contact.PhotoURL, nonNil(contact.Attachments),
	))
	if err != nil {
		return model.Contact{}, storeError("contacts.create", "failed to create contact", err)
	}

	return saved, nil
}

func (r *ContactRepository) Update(ctx context.Context, id int64, contact model.Contact) (model.Contact, error) {
	query := `
		UPDATE contacts
		SET first_name = $2, last_name = $3, phone = $4, email = $5, company = $6, job_title = $7,
		    notes = $8, categories = $9, is_favorite = $10, photo_url = $11, attachments = $12,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + contactColumns

	saved, err := scanContact(r.db.QueryRow(ctx, query, id,
		contact.FirstName, contact.LastName, contact.Phone, contact.Email, contact.Company,
		contact.JobTitle, contact.Notes, nonNil(contact.Categories), contact.IsFavorite,
		contact.PhotoURL, nonNil(contact.Attachments),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Contact{}, model.NewNotFoundError("contact", id)
		}
		return model.Contact{}, storeError("contacts.update", "failed to update contact", err)
	}

	return saved, nil
}

func (r *ContactRepository) Delete(ctx context.Context, id int64) (model.Contact, error) {
	query := `DELETE FROM contacts WHERE id = $1 RETURNING ` + contactColumns

	deleted, err := scanContact(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Contact{}, model.NewNotFoundError("contact", id)
		}
		return model.Contact{}, storeError("contacts.delete", "failed to delete contact", err)
	}

	return deleted, nil
}

func scanContact(row pgx.Row) (model.Contact, error) {
	var c model.Contact
	err := row.Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Phone, &c.Email, &c.Company, &c.JobTitle, &c.Notes,
		&c.Categories, &c.IsFavorite, &c.PhotoURL, &c.Attachments, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return model.Contact{}, err
	}

	c.Categories = nonNil(c.Categories)
	c.Attachments = nonNil(c.Attachments)
	return c, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
