package handler

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/contacts-server/internal/model"
)

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) ListContacts(ctx context.Context, q model.ContactQuery) ([]model.Contact, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]model.Contact), args.Error(1)
}

func (m *MockContactService) GetContact(ctx context.Context, id int64) (model.Contact, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Contact), args.Error(1)
}

func (m *MockContactService) CreateContact(ctx context.Context, in model.ContactInput) (model.Contact, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(model.Contact), args.Error(1)
}

func (m *MockContactService) UpdateContact(ctx context.Context, id int64, in model.ContactInput) (model.Contact, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(model.Contact), args.Error(1)
}

func (m *MockContactService) DeleteContact(ctx context.Context, id int64) (model.Contact, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Contact), args.Error(1)
}

func (m *MockContactService) ToggleFavorite(ctx context.Context, id int64) (model.Contact, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Contact), args.Error(1)
}

func (m *MockContactService) AddAttachment(ctx context.Context, contactID int64, upload model.AttachmentUpload) (model.Contact, model.Attachment, error) {
	args := m.Called(ctx, contactID, upload)
	return args.Get(0).(model.Contact), args.Get(1).(model.Attachment), args.Error(2)
}

func (m *MockContactService) OpenAttachment(ctx context.Context, contactID int64, attachmentID string) (model.Attachment, io.ReadCloser, error) {
	args := m.Called(ctx, contactID, attachmentID)
	var rc io.ReadCloser
	if v := args.Get(1); v != nil {
		rc = v.(io.ReadCloser)
	}
	return args.Get(0).(model.Attachment), rc, args.Error(2)
}

func (m *MockContactService) RemoveAttachment(ctx context.Context, contactID int64, attachmentID string) (model.Contact, error) {
	args := m.Called(ctx, contactID, attachmentID)
	return args.Get(0).(model.Contact), args.Error(1)
}

type MockDirectoryService struct {
	mock.Mock
}

func (m *MockDirectoryService) Overview(ctx context.Context) (model.Overview, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.Overview), args.Error(1)
}

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) ListCategories(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategoryService) GetCategory(ctx context.Context, id int64) (model.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, in model.CategoryInput) (model.Category, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *MockCategoryService) UpdateCategory(ctx context.Context, id int64, in model.CategoryInput) (model.Category, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *MockCategoryService) DeleteCategory(ctx context.Context, id int64) (model.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Category), args.Error(1)
}
