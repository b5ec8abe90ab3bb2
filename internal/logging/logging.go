// Package logging constructs the diagnostic logger. All persistence and
// parse diagnostics go through slog so they never interrupt the
// interactive loop.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New creates a text-format *slog.Logger writing to w. Valid levels are
// "debug", "info", "warn", and "error"; anything else defaults to info.
func New(level string, w io.Writer) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
