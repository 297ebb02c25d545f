package logger

import (
	"io"
	"log/slog"
)

// NewTestHandler encodes records like production and discards them.
func NewTestHandler(level slog.Level) slog.Handler {
	return NewJSONLineHandler(io.Discard)(level)
}
