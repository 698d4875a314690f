package vxgo

import (
	"log/slog"

	"github.com/hupe1980/vxgo/kernel"
	"github.com/hupe1980/vxgo/registry"
)

type options struct {
	registry           *registry.Registry
	logger             *Logger
	vendorID           kernel.VendorID
	implementationName string
}

// Option configures Context constructor behavior.
type Option func(*options)

// WithRegistry configures the kernel registry backing the context.
//
// If nil is passed, a fresh registry seeded with the standard kernel
// table is used.
func WithRegistry(r *registry.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := vxgo.NewJSONLogger(slog.LevelInfo)
//	ctx, _ := vxgo.New(vxgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithVendorID configures the vendor ID reported by the context.
func WithVendorID(id kernel.VendorID) Option {
	return func(o *options) {
		o.vendorID = id
	}
}

// WithImplementationName configures the implementation name reported
// by the context. Names longer than MaxImplementationName are
// truncated.
func WithImplementationName(name string) Option {
	return func(o *options) {
		o.implementationName = name
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:             NoopLogger(),
		vendorID:           kernel.VendorKhronos,
		implementationName: DefaultImplementationName,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
