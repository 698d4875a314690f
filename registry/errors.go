package registry

import (
	"errors"
	"fmt"

	"github.com/hupe1980/vxgo/kernel"
)

var (
	// ErrInvalidName is returned when a kernel name is empty or not a
	// dotted reverse-domain name.
	ErrInvalidName = errors.New("invalid kernel name")

	// ErrLibraryFull is returned when a library has no offsets left.
	ErrLibraryFull = errors.New("kernel library exhausted")
)

// ErrUnknownKernel indicates a lookup for an identifier no one registered.
type ErrUnknownKernel struct {
	ID kernel.ID
}

func (e *ErrUnknownKernel) Error() string {
	return fmt.Sprintf("unknown kernel identifier %s", e.ID)
}

// ErrUnknownKernelName indicates a lookup for an unregistered name.
type ErrUnknownKernelName struct {
	Name string
}

func (e *ErrUnknownKernelName) Error() string {
	return fmt.Sprintf("unknown kernel name %q", e.Name)
}

// ErrDuplicateKernel indicates a registration that collides with an
// existing identifier or name.
type ErrDuplicateKernel struct {
	ID   kernel.ID
	Name string
}

func (e *ErrDuplicateKernel) Error() string {
	return fmt.Sprintf("kernel already registered: %s (%q)", e.ID, e.Name)
}

// ErrNotAppendable indicates a registration whose offset is not the next
// free slot of its library. Offsets are append-only so published values
// never move.
type ErrNotAppendable struct {
	ID       kernel.ID
	Expected kernel.Offset
}

func (e *ErrNotAppendable) Error() string {
	return fmt.Sprintf("kernel %s: offset 0x%x is not the next free offset (expected 0x%x)",
		e.ID, e.ID.Offset(), e.Expected)
}
