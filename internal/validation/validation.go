// Package validation checks contact and category input before it reaches a store.
package validation

import (
	"regexp"
	"strings"

	"github.com/dtroode/contacts-server/internal/model"
)

// categorySeparator joins category lists in the hosted record store, so it
// cannot appear inside a name.
const categorySeparator = ","

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[+]?[\d\s()\-.]{10,}$`)
)

// IsValidEmail reports whether s looks like an email address. Empty is valid.
func IsValidEmail(s string) bool {
	if s == "" {
		return true
	}
	return emailRegex.MatchString(s)
}

// IsValidPhone reports whether s looks like a phone number. Empty is valid.
func IsValidPhone(s string) bool {
	if s == "" {
		return true
	}
	return phoneRegex.MatchString(s)
}

// Contact trims the input and checks required fields and formats.
// The returned input is what gets persisted.
func Contact(in model.ContactInput) (model.ContactInput, error) {
	out := model.ContactInput{
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		Phone:       trimmed(in.Phone),
		Email:       trimmed(in.Email),
		Company:     trimmed(in.Company),
		JobTitle:    trimmed(in.JobTitle),
		Notes:       trimmed(in.Notes),
		Categories:  in.Categories,
		IsFavorite:  in.IsFavorite,
		PhotoURL:    in.PhotoURL,
		Attachments: in.Attachments,
	}

	if out.FirstName == "" {
		return model.ContactInput{}, model.NewValidationError("firstName", model.ReasonRequired, "first name is required")
	}
	if out.LastName == "" {
		return model.ContactInput{}, model.NewValidationError("lastName", model.ReasonRequired, "last name is required")
	}
	if out.Email != nil && !IsValidEmail(*out.Email) {
		return model.ContactInput{}, model.NewValidationError("email", model.ReasonInvalidEmail, "please enter a valid email address")
	}
	if out.Phone != nil && !IsValidPhone(*out.Phone) {
		return model.ContactInput{}, model.NewValidationError("phone", model.ReasonInvalidPhone, "please enter a valid phone number")
	}
	for _, c := range out.Categories {
		if strings.Contains(c, categorySeparator) {
			return model.ContactInput{}, model.NewValidationError("categories", model.ReasonInvalidName, "category names cannot contain commas")
		}
	}

	return out, nil
}

// Category trims the name and rejects a case-insensitive collision with any
// existing category other than selfID. Pass selfID 0 on create.
func Category(in model.CategoryInput, existing []model.Category, selfID int64) (model.CategoryInput, error) {
	out := model.CategoryInput{
		Name:  strings.TrimSpace(in.Name),
		Color: strings.TrimSpace(in.Color),
		Icon:  strings.TrimSpace(in.Icon),
	}

	if out.Name == "" {
		return model.CategoryInput{}, model.NewValidationError("name", model.ReasonRequired, "category name is required")
	}
	if strings.Contains(out.Name, categorySeparator) {
		return model.CategoryInput{}, model.NewValidationError("name", model.ReasonInvalidName, "category names cannot contain commas")
	}

	for _, c := range existing {
		if c.ID == selfID {
			continue
		}
		if strings.EqualFold(c.Name, out.Name) {
			return model.CategoryInput{}, model.NewDuplicateCategoryError(c.Name)
		}
	}

	return out, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
