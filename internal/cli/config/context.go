package config

import (
	"context"
	"log/slog"
)

// Context keys owned by this package so that the cli and commands packages
// can share values without importing each other.
type settingsKey struct{}
type loggerKey struct{}

// WithSettings stores the settings in the context.
func WithSettings(ctx context.Context, s *Settings) context.Context {
	return context.WithValue(ctx, settingsKey{}, s)
}

// GetSettings retrieves the settings from the context, falling back to
// defaults when absent.
func GetSettings(ctx context.Context) *Settings {
	if s, ok := ctx.Value(settingsKey{}).(*Settings); ok {
		return s
	}
	return &Settings{Dialect: DefaultDialect, Output: DefaultOutput}
}

// WithLogger stores the logger in the context.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// GetLogger retrieves the logger from the context. Returns a discard
// logger as safe fallback.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.DiscardHandler)
}
