package service

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/contacts-server/internal/model"
)

// MockContactStore mocks the ContactStore interface
type MockContactStore struct {
	mock.Mock
}

func (m *MockContactStore) GetAll(ctx context.Context) ([]model.Contact, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Contact), args.Error(1)
}

func (m *MockContactStore) GetByID(ctx context.Context, id int64) (model.Contact, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Contact), args.Error(1)
}

func (m *MockContactStore) Create(ctx context.Context, contact model.Contact) (model.Contact, error) {
	args := m.Called(ctx, contact)
	return args.Get(0).(model.Contact), args.Error(1)
}

func (m *MockContactStore) Update(ctx context.Context, id int64, contact model.Contact) (model.Contact, error) {
	args := m.Called(ctx, id, contact)
	return args.Get(0).(model.Contact), args.Error(1)
}

func (m *MockContactStore) Delete(ctx context.Context, id int64) (model.Contact, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Contact), args.Error(1)
}

// MockCategoryStore mocks the CategoryStore interface
type MockCategoryStore struct {
	mock.Mock
}

func (m *MockCategoryStore) GetAll(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategoryStore) GetByID(ctx context.Context, id int64) (model.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *MockCategoryStore) Create(ctx context.Context, category model.Category) (model.Category, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *MockCategoryStore) Update(ctx context.Context, id int64, category model.Category) (model.Category, error) {
	args := m.Called(ctx, id, category)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *MockCategoryStore) Delete(ctx context.Context, id int64) (model.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Category), args.Error(1)
}

// MockStorage mocks the Storage interface
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Put(ctx context.Context, key string, upload model.AttachmentUpload) (int64, error) {
	args := m.Called(ctx, key, upload)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockStorage) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
