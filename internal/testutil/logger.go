// Package testutil holds helpers shared by package tests.
package testutil

import (
	"io"

	"github.com/dtroode/contacts-server/internal/logger"
)

// MakeNoopLogger returns a logger that discards everything.
func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, 0)
}
