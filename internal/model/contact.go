package model

import (
	"context"
	"io"
	"slices"
	"time"
)

// ContactStore defines persistence operations for contacts.
type ContactStore interface {
	GetAll(ctx context.Context) ([]Contact, error)
	GetByID(ctx context.Context, id int64) (Contact, error)
	Create(ctx context.Context, contact Contact) (Contact, error)
	Update(ctx context.Context, id int64, contact Contact) (Contact, error)
	Delete(ctx context.Context, id int64) (Contact, error)
}

// Contact represents a stored contact entity.
type Contact struct {
	ID          int64
	FirstName   string
	LastName    string
	Phone       string
	Email       string
	Company     string
	JobTitle    string
	Notes       string
	Categories  []string
	IsFavorite  bool
	PhotoURL    string
	Attachments []Attachment
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FullName returns first and last name joined by a single space.
func (c Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Clone returns a copy that shares no slices with c.
func (c Contact) Clone() Contact {
	out := c
	out.Categories = slices.Clone(c.Categories)
	out.Attachments = slices.Clone(c.Attachments)
	return out
}

// Attachment is a reference to a file kept in object storage.
type Attachment struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ContentType string    `json:"contentType,omitempty"`
	Size        int64     `json:"size"`
	Key         string    `json:"key"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// ContactInput carries user-supplied contact fields for create and update.
// Nil optional fields are stored as empty strings.
type ContactInput struct {
	FirstName   string
	LastName    string
	Phone       *string
	Email       *string
	Company     *string
	JobTitle    *string
	Notes       *string
	Categories  []string
	IsFavorite  bool
	PhotoURL    *string
	Attachments []Attachment
}

// ToContact builds a contact from validated input. Store-assigned fields stay zero.
func (in ContactInput) ToContact() Contact {
	categories := in.Categories
	if categories == nil {
		categories = []string{}
	}
	attachments := in.Attachments
	if attachments == nil {
		attachments = []Attachment{}
	}

	return Contact{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Phone:       deref(in.Phone),
		Email:       deref(in.Email),
		Company:     deref(in.Company),
		JobTitle:    deref(in.JobTitle),
		Notes:       deref(in.Notes),
		Categories:  slices.Clone(categories),
		IsFavorite:  in.IsFavorite,
		PhotoURL:    deref(in.PhotoURL),
		Attachments: slices.Clone(attachments),
	}
}

// InputFromContact is the inverse of ToContact, used when a service rewrites a
// stored contact through the regular update path.
func InputFromContact(c Contact) ContactInput {
	return ContactInput{
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Phone:       &c.Phone,
		Email:       &c.Email,
		Company:     &c.Company,
		JobTitle:    &c.JobTitle,
		Notes:       &c.Notes,
		Categories:  c.Categories,
		IsFavorite:  c.IsFavorite,
		PhotoURL:    &c.PhotoURL,
		Attachments: c.Attachments,
	}
}

// ContactQuery selects the visible subset of contacts.
type ContactQuery struct {
	Query         string
	Categories    []string
	Letter        string
	FavoritesOnly bool
}

// AttachmentUpload describes a file to attach to a contact.
type AttachmentUpload struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
