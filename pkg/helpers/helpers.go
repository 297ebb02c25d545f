package helpers

import (
	"context"
	"log/slog"

	"github.com/GregMSThompson/hsbooks/pkg/logger"
)

func Ptr[T any](val T) *T {
	return &val
}

// Value dereferences val, yielding the zero value for nil.
func Value[T any](val *T) T {
	var zero T
	return ValueOr(val, zero)
}

func ValueOr[T any](val *T, fallback T) T {
	if val == nil {
		return fallback
	}
	return *val
}

// TestLogger discards everything at info and above.
func TestLogger() *slog.Logger {
	return slog.New(logger.NewTestHandler(slog.LevelInfo))
}

// TestCtx returns a background context carrying TestLogger.
func TestCtx() context.Context {
	return logger.ToContext(context.Background(), TestLogger())
}
