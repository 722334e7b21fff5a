package handler

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/contacts-server/internal/model"
)

func handleError(err error) error {
	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		return status.Error(codes.InvalidArgument, validationErr.Message)
	}

	var notFoundErr *model.NotFoundError
	if errors.As(err, &notFoundErr) {
		return status.Error(codes.NotFound, notFoundErr.Error())
	}
	if errors.Is(err, model.ErrNotFound) {
		return status.Error(codes.NotFound, "record not found")
	}

	var storeErr *model.StoreError
	if errors.As(err, &storeErr) {
		return status.Error(codes.Unavailable, storeErr.Message)
	}

	if errors.Is(err, model.ErrAttachmentsDisabled) {
		return status.Error(codes.FailedPrecondition, model.ErrAttachmentsDisabled.Error())
	}

	return status.Error(codes.Internal, "internal server error")
}
