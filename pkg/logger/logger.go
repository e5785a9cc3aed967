// Package logger builds the process-wide slog logger.
//
// LOG_LEVEL selects the minimum level (debug, info, warn/warning, error;
// case-insensitive, default info). GO_ENV=production switches to JSON output.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// NewLogger returns a logger writing to stderr, configured from the environment
func NewLogger() *slog.Logger {
	return New(os.Stderr)
}

// New returns a logger writing to w, configured from the environment
func New(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: levelFromEnv()}

	var handler slog.Handler
	if strings.EqualFold(os.Getenv("GO_ENV"), "production") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Scope tags a log line with the component that produced it
func Scope(scope string) slog.Attr {
	return slog.String("scope", scope)
}

// Error wraps err as an attribute
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}
