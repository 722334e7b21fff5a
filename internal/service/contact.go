package service

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/contacts-server/internal/logger"
	"github.com/dtroode/contacts-server/internal/model"
	"github.com/dtroode/contacts-server/internal/pipeline"
	"github.com/dtroode/contacts-server/internal/validation"
)

// Contact coordinates validation, the contact store and attachment storage.
type Contact struct {
	contactStore model.ContactStore
	storage      model.Storage
	logger       *logger.Logger
	now          func() time.Time
}

// NewContact creates a contact service. storage may be nil, which disables attachments.
func NewContact(
	contactStore model.ContactStore,
	storage model.Storage,
	logger *logger.Logger,
) *Contact {
	return &Contact{
		contactStore: contactStore,
		storage:      storage,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *Contact) ListContacts(ctx context.Context, q model.ContactQuery) ([]model.Contact, error) {
	contacts, err := s.contactStore.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get contacts: %w", err)
	}

	visible := pipeline.Filter(contacts, q.Query, q.Categories)
	visible = pipeline.FilterByLetter(visible, q.Letter)
	if q.FavoritesOnly {
		visible = pipeline.Favorites(visible)
	}

	return visible, nil
}

func (s *Contact) GetContact(ctx context.Context, id int64) (model.Contact, error) {
	contact, err := s.contactStore.GetByID(ctx, id)
	if err != nil {
		return model.Contact{}, fmt.Errorf("failed to get contact by id: %w", err)
	}

	return contact, nil
}

func (s *Contact) CreateContact(ctx context.Context, in model.ContactInput) (model.Contact, error) {
	valid, err := validation.Contact(in)
	if err != nil {
		return model.Contact{}, err
	}

	contact, err := s.contactStore.Create(ctx, valid.ToContact())
	if err != nil {
		return model.Contact{}, fmt.Errorf("failed to create contact: %w", err)
	}

	s.logger.Info("Contact service: contact created", "contact_id", contact.ID)
	return contact, nil
}

// UpdateContact replaces the mutable fields. A nil attachment list keeps the
// stored attachments.
func (s *Contact) UpdateContact(ctx context.Context, id int64, in model.ContactInput) (model.Contact, error) {
	valid, err := validation.Contact(in)
	if err != nil {
		return model.Contact{}, err
	}

	if valid.Attachments == nil {
		current, err := s.contactStore.GetByID(ctx, id)
		if err != nil {
			return model.Contact{}, fmt.Errorf("failed to get contact by id: %w", err)
		}
		valid.Attachments = current.Attachments
	}

	contact, err := s.contactStore.Update(ctx, id, valid.ToContact())
	if err != nil {
		return model.Contact{}, fmt.Errorf("failed to update contact: %w", err)
	}

	return contact, nil
}

// DeleteContact removes the contact and then its attachment objects. Object
// removal failures are logged and do not fail the call.
func (s *Contact) DeleteContact(ctx context.Context, id int64) (model.Contact, error) {
	contact, err := s.contactStore.Delete(ctx, id)
	if err != nil {
		return model.Contact{}, fmt.Errorf("failed to delete contact: %w", err)
	}

	if s.storage != nil {
		for _, a := range contact.Attachments {
			if err := s.storage.Remove(ctx, a.Key); err != nil {
				s.logger.Error("Failed to delete attachment from storage", "contact_id", id, "key", a.Key, "error", err)
			}
		}
	}

	s.logger.Info("Contact service: contact deleted", "contact_id", id, "attachments", len(contact.Attachments))
	return contact, nil
}

func (s *Contact) ToggleFavorite(ctx context.Context, id int64) (model.Contact, error) {
	contact, err := s.contactStore.GetByID(ctx, id)
	if err != nil {
		return model.Contact{}, fmt.Errorf("failed to get contact by id: %w", err)
	}

	contact.IsFavorite = !contact.IsFavorite
	contact, err = s.contactStore.Update(ctx, id, contact)
	if err != nil {
		return model.Contact{}, fmt.Errorf("failed to update contact: %w", err)
	}

	return contact, nil
}

func (s *Contact) GetFavorites(ctx context.Context) ([]model.Contact, error) {
	return s.ListContacts(ctx, model.ContactQuery{FavoritesOnly: true})
}

func (s *Contact) Search(ctx context.Context, query string) ([]model.Contact, error) {
	return s.ListContacts(ctx, model.ContactQuery{Query: query})
}

// FilterByCategory returns contacts tagged with category. An empty category returns all.
func (s *Contact) FilterByCategory(ctx context.Context, category string) ([]model.Contact, error) {
	if category == "" {
		return s.ListContacts(ctx, model.ContactQuery{})
	}
	return s.ListContacts(ctx, model.ContactQuery{Categories: []string{category}})
}

// AddAttachment uploads the object first and then records it on the contact.
func (s *Contact) AddAttachment(ctx context.Context, contactID int64, upload model.AttachmentUpload) (model.Contact, model.Attachment, error) {
	if s.storage == nil {
		return model.Contact{}, model.Attachment{}, model.ErrAttachmentsDisabled
	}

	name := strings.TrimSpace(upload.Name)
	if name == "" {
		return model.Contact{}, model.Attachment{}, model.NewValidationError("name", model.ReasonRequired, "attachment name is required")
	}

	contact, err := s.contactStore.GetByID(ctx, contactID)
	if err != nil {
		return model.Contact{}, model.Attachment{}, fmt.Errorf("failed to get contact by id: %w", err)
	}

	id := uuid.NewString()
	attachment := model.Attachment{
		ID:          id,
		Name:        name,
		ContentType: upload.ContentType,
		Key:         fmt.Sprintf("contacts/%d/%s", contactID, id),
		UploadedAt:  s.now().UTC(),
	}

	size, err := s.storage.Put(ctx, attachment.Key, upload)
	if err != nil {
		return model.Contact{}, model.Attachment{}, fmt.Errorf("failed to upload to storage: %w", err)
	}
	attachment.Size = size

	contact.Attachments = append(contact.Attachments, attachment)
	contact, err = s.contactStore.Update(ctx, contactID, contact)
	if err != nil {
		if err := s.storage.Remove(ctx, attachment.Key); err != nil {
			s.logger.Error("Failed to delete attachment from storage", "key", attachment.Key, "error", err)
		}
		return model.Contact{}, model.Attachment{}, fmt.Errorf("failed to update contact: %w", err)
	}

	s.logger.Info("Contact service: attachment added",
		"contact_id", contactID,
		"attachment_id", attachment.ID,
		"size", attachment.Size)
	return contact, attachment, nil
}

// OpenAttachment returns the attachment reference and a reader over its
// content. The caller closes the reader.
func (s *Contact) OpenAttachment(ctx context.Context, contactID int64, attachmentID string) (model.Attachment, io.ReadCloser, error) {
	if s.storage == nil {
		return model.Attachment{}, nil, model.ErrAttachmentsDisabled
	}

	contact, err := s.contactStore.GetByID(ctx, contactID)
	if err != nil {
		return model.Attachment{}, nil, fmt.Errorf("failed to get contact by id: %w", err)
	}

	idx, err := findAttachment(contact, attachmentID)
	if err != nil {
		return model.Attachment{}, nil, err
	}
	attachment := contact.Attachments[idx]

	reader, err := s.storage.Open(ctx, attachment.Key)
	if err != nil {
		return model.Attachment{}, nil, fmt.Errorf("failed to download from storage: %w", err)
	}

	return attachment, reader, nil
}

func (s *Contact) RemoveAttachment(ctx context.Context, contactID int64, attachmentID string) (model.Contact, error) {
	if s.storage == nil {
		return model.Contact{}, model.ErrAttachmentsDisabled
	}

	contact, err := s.contactStore.GetByID(ctx, contactID)
	if err != nil {
		return model.Contact{}, fmt.Errorf("failed to get contact by id: %w", err)
	}

	idx, err := findAttachment(contact, attachmentID)
	if err != nil {
		return model.Contact{}, err
	}
	removed := contact.Attachments[idx]

	contact.Attachments = slices.Delete(slices.Clone(contact.Attachments), idx, idx+1)
	contact, err = s.contactStore.Update(ctx, contactID, contact)
	if err != nil {
		return model.Contact{}, fmt.Errorf("failed to update contact: %w", err)
	}

	if err := s.storage.Remove(ctx, removed.Key); err != nil {
		s.logger.Error("Failed to delete attachment from storage", "key", removed.Key, "error", err)
	}

	return contact, nil
}

func findAttachment(contact model.Contact, attachmentID string) (int, error) {
	idx := slices.IndexFunc(contact.Attachments, func(a model.Attachment) bool {
		return a.ID == attachmentID
	})
	if idx < 0 {
		return -1, fmt.Errorf("attachment %q on contact %d: %w", attachmentID, contact.ID, model.ErrNotFound)
	}
	return idx, nil
}
