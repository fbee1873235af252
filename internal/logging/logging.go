package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup creates and sets the package-level default slog logger. Reports
// may occupy stdout as NDJSON, so diagnostics always go to stderr: as
// JSON when stdout carries machine output, as text otherwise.
func Setup(outputFormat string, level slog.Level) {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch outputFormat {
	case "stdout", "both":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// ParseLevel converts a string ("debug", "info", "warn", "error") to
// slog.Level. Unknown strings default to LevelInfo.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
