package logging

import (
	"context"
	"log/slog"
)

// SlogLogger adapts a *slog.Logger to the Logger interface. The zero value is
// not usable; construct it with NewSlogLogger.
type SlogLogger struct {
	base *slog.Logger
}

// NewSlogLogger wraps an already-configured slog logger. Handler choice
// (JSON for the server, text for the CLI) stays with the caller.
func NewSlogLogger(base *slog.Logger) *SlogLogger {
	return &SlogLogger{base: base}
}

func (s *SlogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.base.DebugContext(ctx, msg, args...)
}

func (s *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.base.InfoContext(ctx, msg, args...)
}

func (s *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.base.WarnContext(ctx, msg, args...)
}

func (s *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.base.ErrorContext(ctx, msg, args...)
}

// With returns a child logger whose entries always carry the given key-value
// pairs.
func (s *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{base: s.base.With(args...)}
}
