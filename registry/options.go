package registry

import (
	"io"
	"log/slog"
)

type options struct {
	standard bool
	logger   *slog.Logger
}

func defaultOptions() options {
	return options{
		standard: true,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option configures registry construction.
type Option func(*options)

// WithoutStandardKernels creates a registry without the pre-seeded base
// kernel table. Used for replaying manifests and for tests.
func WithoutStandardKernels() Option {
	return func(o *options) {
		o.standard = false
	}
}

// WithLogger configures structured logging of registrations.
// If nil is passed, logging stays disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
