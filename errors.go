package vxgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/vxgo/registry"
)

var (
	// ErrNotFound is returned when a kernel cannot be resolved.
	ErrNotFound = errors.New("not found")

	// ErrClosed is returned when operating on a released context.
	ErrClosed = errors.New("context is closed")

	// ErrUnsupportedHint is returned for hints the implementation
	// does not understand. Unknown hints are an error here rather
	// than silently ignored so callers notice typos.
	ErrUnsupportedHint = errors.New("unsupported hint")

	// ErrUnsupportedDirective is returned for directives the
	// implementation does not understand.
	ErrUnsupportedDirective = errors.New("unsupported directive")
)

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Not found unification.
	var uk *registry.ErrUnknownKernel
	if errors.As(err, &uk) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	var un *registry.ErrUnknownKernelName
	if errors.As(err, &un) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	return err
}
