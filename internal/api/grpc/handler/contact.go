package handler

import (
	"bytes"
	"context"
	"io"

	"github.com/dtroode/contacts-server/internal/api/grpc/contactsapi"
	"github.com/dtroode/contacts-server/internal/logger"
	"github.com/dtroode/contacts-server/internal/model"
	"github.com/dtroode/contacts-server/internal/pipeline"
)

// ContactService defines business operations for contact management.
type ContactService interface {
	ListContacts(ctx context.Context, q model.ContactQuery) ([]model.Contact, error)
	GetContact(ctx context.Context, id int64) (model.Contact, error)
	CreateContact(ctx context.Context, in model.ContactInput) (model.Contact, error)
	UpdateContact(ctx context.Context, id int64, in model.ContactInput) (model.Contact, error)
	DeleteContact(ctx context.Context, id int64) (model.Contact, error)
	ToggleFavorite(ctx context.Context, id int64) (model.Contact, error)
	AddAttachment(ctx context.Context, contactID int64, upload model.AttachmentUpload) (model.Contact, model.Attachment, error)
	OpenAttachment(ctx context.Context, contactID int64, attachmentID string) (model.Attachment, io.ReadCloser, error)
	RemoveAttachment(ctx context.Context, contactID int64, attachmentID string) (model.Contact, error)
}

// DirectoryService builds the directory overview.
type DirectoryService interface {
	Overview(ctx context.Context) (model.Overview, error)
}

// Contact handles gRPC endpoints for contacts.
type Contact struct {
	contactsapi.UnimplementedContactsServer
	contactService   ContactService
	directoryService DirectoryService
	logger           *logger.Logger
}

var _ contactsapi.ContactsServer = (*Contact)(nil)

// NewContact creates a new Contact handler.
func NewContact(contactService ContactService, directoryService DirectoryService, logger *logger.Logger) *Contact {
	return &Contact{
		contactService:   contactService,
		directoryService: directoryService,
		logger:           logger,
	}
}

func (h *Contact) ListContacts(ctx context.Context, req *contactsapi.ListContactsRequest) (*contactsapi.ListContactsResponse, error) {
	h.logger.Debug("Contact handler: processing list contacts request",
		"query", req.Query,
		"categories", req.Categories,
		"letter", req.Letter,
		"active_letter", req.ActiveLetter,
		"favorites_only", req.FavoritesOnly)

	letter := pipeline.ToggleLetter(req.ActiveLetter, req.Letter)
	contacts, err := h.contactService.ListContacts(ctx, model.ContactQuery{
		Query:         req.Query,
		Categories:    req.Categories,
		Letter:        letter,
		FavoritesOnly: req.FavoritesOnly,
	})
	if err != nil {
		h.logger.Error("Contact handler: list contacts failed", "error", err.Error())
		return nil, handleError(err)
	}

	return &contactsapi.ListContactsResponse{Contacts: toWireContacts(contacts), Letter: letter}, nil
}

func (h *Contact) GetContact(ctx context.Context, req *contactsapi.GetContactRequest) (*contactsapi.ContactResponse, error) {
	contact, err := h.contactService.GetContact(ctx, req.ID)
	if err != nil {
		h.logger.Error("Contact handler: get contact failed", "contact_id", req.ID, "error", err.Error())
		return nil, handleError(err)
	}

	return &contactsapi.ContactResponse{Contact: toWireContact(contact)}, nil
}

func (h *Contact) CreateContact(ctx context.Context, req *contactsapi.CreateContactRequest) (*contactsapi.ContactResponse, error) {
	contact, err := h.contactService.CreateContact(ctx, toModelInput(req.Contact))
	if err != nil {
		h.logger.Error("Contact handler: create contact failed", "error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Contact handler: contact created", "contact_id", contact.ID)
	return &contactsapi.ContactResponse{Contact: toWireContact(contact)}, nil
}

func (h *Contact) UpdateContact(ctx context.Context, req *contactsapi.UpdateContactRequest) (*contactsapi.ContactResponse, error) {
	contact, err := h.contactService.UpdateContact(ctx, req.ID, toModelInput(req.Contact))
	if err != nil {
		h.logger.Error("Contact handler: update contact failed", "contact_id", req.ID, "error", err.Error())
		return nil, handleError(err)
	}

	return &contactsapi.ContactResponse{Contact: toWireContact(contact)}, nil
}

func (h *Contact) DeleteContact(ctx context.Context, req *contactsapi.DeleteContactRequest) (*contactsapi.ContactResponse, error) {
	contact, err := h.contactService.DeleteContact(ctx, req.ID)
	if err != nil {
		h.logger.Error("Contact handler: delete contact failed", "contact_id", req.ID, "error", err.Error())
		return nil, handleError(err)
	}

	return &contactsapi.ContactResponse{Contact: toWireContact(contact)}, nil
}

func (h *Contact) ToggleFavorite(ctx context.Context, req *contactsapi.ToggleFavoriteRequest) (*contactsapi.ContactResponse, error) {
	contact, err := h.contactService.ToggleFavorite(ctx, req.ID)
	if err != nil {
		h.logger.Error("Contact handler: toggle favorite failed", "contact_id", req.ID, "error", err.Error())
		return nil, handleError(err)
	}

	return &contactsapi.ContactResponse{Contact: toWireContact(contact)}, nil
}

func (h *Contact) GetOverview(ctx context.Context, _ *contactsapi.GetOverviewRequest) (*contactsapi.OverviewResponse, error) {
	overview, err := h.directoryService.Overview(ctx)
	if err != nil {
		h.logger.Error("Contact handler: overview failed", "error", err.Error())
		return nil, handleError(err)
	}

	letters := overview.Letters
	if letters == nil {
		letters = []string{}
	}
	return &contactsapi.OverviewResponse{
		Stats:      toWireStats(overview.Stats),
		Letters:    letters,
		Colors:     overview.Colors,
		Categories: toWireCategories(overview.Categories),
	}, nil
}

func (h *Contact) UploadAttachment(ctx context.Context, req *contactsapi.UploadAttachmentRequest) (*contactsapi.UploadAttachmentResponse, error) {
	h.logger.Debug("Contact handler: processing upload attachment request",
		"contact_id", req.ContactID,
		"name", req.Name,
		"size", len(req.Data))

	contact, attachment, err := h.contactService.AddAttachment(ctx, req.ContactID, model.AttachmentUpload{
		Name:        req.Name,
		ContentType: req.ContentType,
		Size:        int64(len(req.Data)),
		Reader:      bytes.NewReader(req.Data),
	})
	if err != nil {
		h.logger.Error("Contact handler: upload attachment failed", "contact_id", req.ContactID, "error", err.Error())
		return nil, handleError(err)
	}

	return &contactsapi.UploadAttachmentResponse{
		Contact:    toWireContact(contact),
		Attachment: toWireAttachment(attachment),
	}, nil
}

func (h *Contact) DownloadAttachment(ctx context.Context, req *contactsapi.DownloadAttachmentRequest) (*contactsapi.DownloadAttachmentResponse, error) {
	attachment, reader, err := h.contactService.OpenAttachment(ctx, req.ContactID, req.AttachmentID)
	if err != nil {
		h.logger.Error("Contact handler: open attachment failed",
			"contact_id", req.ContactID,
			"attachment_id", req.AttachmentID,
			"error", err.Error())
		return nil, handleError(err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		h.logger.Error("Contact handler: read attachment failed", "attachment_id", req.AttachmentID, "error", err.Error())
		return nil, handleError(err)
	}

	return &contactsapi.DownloadAttachmentResponse{
		Attachment: toWireAttachment(attachment),
		Data:       data,
	}, nil
}

func (h *Contact) DeleteAttachment(ctx context.Context, req *contactsapi.DeleteAttachmentRequest) (*contactsapi.ContactResponse, error) {
	contact, err := h.contactService.RemoveAttachment(ctx, req.ContactID, req.AttachmentID)
	if err != nil {
		h.logger.Error("Contact handler: delete attachment failed",
			"contact_id", req.ContactID,
			"attachment_id", req.AttachmentID,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &contactsapi.ContactResponse{Contact: toWireContact(contact)}, nil
}
