package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every NotFoundError.
	ErrNotFound = errors.New("record not found")
	// ErrAttachmentsDisabled is returned when no object storage is configured.
	ErrAttachmentsDisabled = errors.New("attachment storage is not configured")
)

// Reason enumerates validation failures.
type Reason string

const (
	ReasonRequired     Reason = "required"
	ReasonInvalidEmail Reason = "invalid_email"
	ReasonInvalidPhone Reason = "invalid_phone"
	ReasonDuplicate    Reason = "duplicate"
	ReasonInvalidName  Reason = "invalid_name"
)

// ValidationError reports bad input. It is always raised before any store call.
type ValidationError struct {
	Field   string
	Reason  Reason
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError.
func NewValidationError(field string, reason Reason, message string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason, Message: message}
}

// NewDuplicateCategoryError reports a category name that collides, ignoring
// case, with the existing category name.
func NewDuplicateCategoryError(name string) *ValidationError {
	return NewValidationError("name", ReasonDuplicate, fmt.Sprintf("category name %q already exists", name))
}

// NotFoundError reports an id absent from a store.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

// Is makes errors.Is(err, ErrNotFound) hold.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(entity string, id int64) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// StoreError reports a failure of the underlying store. Message is shown to
// callers verbatim.
type StoreError struct {
	Op      string
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	return e.Message
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a StoreError.
func NewStoreError(op, message string, err error) *StoreError {
	return &StoreError{Op: op, Message: message, Err: err}
}
