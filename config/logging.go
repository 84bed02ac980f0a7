package config

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger in development and a JSON logger otherwise.
func NewLogger(env Environment, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: env.LogLevel}
	if env.IsDevelopment {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
