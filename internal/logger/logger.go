package logger

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the application logger. Levels follow slog: -4 debug, 0 info, 4 warn, 8 error.
type Logger struct {
	*slog.Logger
}

// New creates a text logger on stdout at the given level.
func New(level int) *Logger {
	return NewWithWriter(os.Stdout, level)
}

// NewWithWriter creates a text logger writing to w.
func NewWithWriter(w io.Writer, level int) *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.Level(level)})),
	}
}

// With returns a logger that adds args to every record.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}
