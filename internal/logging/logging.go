// Package logging configures the process-wide structured logger. Output
// goes to stderr so it never mixes with rendered storefront output.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

type Options struct {
	Level string
}

func New(w io.Writer, opts Options) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(opts.Level),
	})

	logger := slog.New(h).With("service", "warung")
	slog.SetDefault(logger)
	return logger
}

func parseLevel(lvl string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
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
