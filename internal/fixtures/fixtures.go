// Package fixtures holds the static seed data for the contact and category stores.
package fixtures

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dtroode/contacts-server/internal/model"
)

var (
	//go:embed contacts.yaml
	contactsYAML []byte
	//go:embed categories.yaml
	categoriesYAML []byte
)

type contactFixture struct {
	ID         int64     `yaml:"id"`
	FirstName  string    `yaml:"firstName"`
	LastName   string    `yaml:"lastName"`
	Phone      string    `yaml:"phone"`
	Email      string    `yaml:"email"`
	Company    string    `yaml:"company"`
	JobTitle   string    `yaml:"jobTitle"`
	Categories []string  `yaml:"categories"`
	Notes      string    `yaml:"notes"`
	IsFavorite bool      `yaml:"isFavorite"`
	PhotoURL   string    `yaml:"photoUrl"`
	CreatedAt  time.Time `yaml:"createdAt"`
	UpdatedAt  time.Time `yaml:"updatedAt"`
}

type categoryFixture struct {
	ID    int64  `yaml:"id"`
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
	Icon  string `yaml:"icon"`
}

// Contacts returns a fresh copy of the seed contacts.
func Contacts() ([]model.Contact, error) {
	var raw []contactFixture
	if err := yaml.Unmarshal(contactsYAML, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode contact fixtures: %w", err)
	}

	contacts := make([]model.Contact, 0, len(raw))
	for _, f := range raw {
		categories := f.Categories
		if categories == nil {
			categories = []string{}
		}
		contacts = append(contacts, model.Contact{
			ID:          f.ID,
			FirstName:   f.FirstName,
			LastName:    f.LastName,
			Phone:       f.Phone,
			Email:       f.Email,
			Company:     f.Company,
			JobTitle:    f.JobTitle,
			Notes:       f.Notes,
			Categories:  categories,
			IsFavorite:  f.IsFavorite,
			PhotoURL:    f.PhotoURL,
			Attachments: []model.Attachment{},
			CreatedAt:   f.CreatedAt,
			UpdatedAt:   f.UpdatedAt,
		})
	}

	return contacts, nil
}

// Categories returns a fresh copy of the seed categories.
func Categories() ([]model.Category, error) {
	var raw []categoryFixture
	if err := yaml.Unmarshal(categoriesYAML, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode category fixtures: %w", err)
	}

	categories := make([]model.Category, 0, len(raw))
	for _, f := range raw {
		categories = append(categories, model.Category(f))
	}

	return categories, nil
}
