package handler

import (
	"github.com/dtroode/contacts-server/internal/api/grpc/contactsapi"
	"github.com/dtroode/contacts-server/internal/model"
	"github.com/dtroode/contacts-server/internal/pipeline"
)

func toWireContact(c model.Contact) contactsapi.Contact {
	categories := c.Categories
	if categories == nil {
		categories = []string{}
	}
	attachments := make([]contactsapi.Attachment, 0, len(c.Attachments))
	for _, a := range c.Attachments {
		attachments = append(attachments, toWireAttachment(a))
	}

	return contactsapi.Contact{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Initials:    pipeline.Initials(c.FullName()),
		Phone:       c.Phone,
		Email:       c.Email,
		Company:     c.Company,
		JobTitle:    c.JobTitle,
		Notes:       c.Notes,
		Categories:  categories,
		IsFavorite:  c.IsFavorite,
		PhotoURL:    c.PhotoURL,
		Attachments: attachments,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toWireContacts(cs []model.Contact) []contactsapi.Contact {
	out := make([]contactsapi.Contact, 0, len(cs))
	for _, c := range cs {
		out = append(out, toWireContact(c))
	}
	return out
}

// Object keys stay server-side.
func toWireAttachment(a model.Attachment) contactsapi.Attachment {
	return contactsapi.Attachment{
		ID:          a.ID,
		Name:        a.Name,
		ContentType: a.ContentType,
		Size:        a.Size,
		UploadedAt:  a.UploadedAt,
	}
}

// toModelInput converts wire input. Attachments stay nil so updates keep the
// stored list; they change only through the attachment calls.
func toModelInput(in contactsapi.ContactInput) model.ContactInput {
	return model.ContactInput{
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Phone:      in.Phone,
		Email:      in.Email,
		Company:    in.Company,
		JobTitle:   in.JobTitle,
		Notes:      in.Notes,
		Categories: in.Categories,
		IsFavorite: in.IsFavorite,
		PhotoURL:   in.PhotoURL,
	}
}

func toWireCategory(c model.Category) contactsapi.Category {
	return contactsapi.Category{ID: c.ID, Name: c.Name, Color: c.Color, Icon: c.Icon}
}

func toWireCategories(cs []model.Category) []contactsapi.Category {
	out := make([]contactsapi.Category, 0, len(cs))
	for _, c := range cs {
		out = append(out, toWireCategory(c))
	}
	return out
}

func toWireStats(s model.Stats) contactsapi.Stats {
	counts := make([]contactsapi.CategoryCount, 0, len(s.CategoryCounts))
	for _, c := range s.CategoryCounts {
		counts = append(counts, contactsapi.CategoryCount{Name: c.Name, Count: c.Count})
	}

	out := contactsapi.Stats{
		Total:            s.Total,
		Favorites:        s.Favorites,
		WithPhone:        s.WithPhone,
		WithEmail:        s.WithEmail,
		FavoritesPercent: s.FavoritesPercent,
		WithPhonePercent: s.WithPhonePercent,
		WithEmailPercent: s.WithEmailPercent,
		CategoryCounts:   counts,
	}
	if s.TopCategory != nil {
		out.TopCategory = &contactsapi.CategoryCount{Name: s.TopCategory.Name, Count: s.TopCategory.Count}
	}
	return out
}
