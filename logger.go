package vxgo

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/vxgo/kernel"
)

// Logger wraps slog.Logger with vxgo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithKernel adds a kernel field to the logger.
func (l *Logger) WithKernel(id kernel.ID) *Logger {
	return &Logger{
		Logger: l.Logger.With("kernel", id.String()),
	}
}

// WithName adds a name field to the logger.
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("name", name),
	}
}

// LogRegister logs a kernel registration.
func (l *Logger) LogRegister(ctx context.Context, id kernel.ID, name string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "register failed",
			"kernel", id.String(),
			"name", name,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "register completed",
			"kernel", id.String(),
			"name", name,
		)
	}
}

// LogResolve logs a name resolution.
func (l *Logger) LogResolve(ctx context.Context, name string, id kernel.ID, err error) {
	if err != nil {
		l.ErrorContext(ctx, "resolve failed",
			"name", name,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "resolve completed",
			"name", name,
			"kernel", id.String(),
		)
	}
}

// LogValidate logs a graph description validation.
func (l *Logger) LogValidate(ctx context.Context, nodes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "validation failed",
			"nodes", nodes,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "validation completed",
			"nodes", nodes,
		)
	}
}

// LogSnapshot logs a manifest snapshot operation.
func (l *Logger) LogSnapshot(ctx context.Context, kernels int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot failed",
			"kernels", kernels,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot saved",
			"kernels", kernels,
		)
	}
}
