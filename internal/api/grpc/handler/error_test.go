package handler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/contacts-server/internal/model"
)

func TestHandleError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       error
		wantCode codes.Code
		wantMsg  string
	}{
		{
			name:     "validation -> InvalidArgument",
			in:       model.NewValidationError("email", model.ReasonInvalidEmail, "please enter a valid email address"),
			wantCode: codes.InvalidArgument,
			wantMsg:  "please enter a valid email address",
		},
		{
			name:     "wrapped not found -> NotFound",
			in:       fmt.Errorf("failed to get contact by id: %w", model.NewNotFoundError("contact", 7)),
			wantCode: codes.NotFound,
			wantMsg:  "contact with id 7 not found",
		},
		{
			name:     "sentinel not found -> NotFound",
			in:       fmt.Errorf("category %q: %w", "x", model.ErrNotFound),
			wantCode: codes.NotFound,
			wantMsg:  "record not found",
		},
		{
			name:     "store failure -> Unavailable with message",
			in:       fmt.Errorf("failed to get contacts: %w", model.NewStoreError("contacts.getAll", "quota exceeded", nil)),
			wantCode: codes.Unavailable,
			wantMsg:  "quota exceeded",
		},
		{
			name:     "attachments disabled -> FailedPrecondition",
			in:       model.ErrAttachmentsDisabled,
			wantCode: codes.FailedPrecondition,
			wantMsg:  model.ErrAttachmentsDisabled.Error(),
		},
		{
			name:     "other -> Internal",
			in:       errors.New("boom"),
			wantCode: codes.Internal,
			wantMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := handleError(tt.in)
			st, ok := status.FromError(err)
			assert.True(t, ok)
			assert.Equal(t, tt.wantCode, st.Code())
			assert.Equal(t, tt.wantMsg, st.Message())
		})
	}
}
