// Package kernel defines the identifier model for standardized vision kernels.
//
// A kernel identifier is an opaque 32-bit integer that uniquely names a
// vision operation within a vendor/library namespace:
//
//	bits [31:20]  vendor    (12 bits, see VendorID)
//	bits [19:12]  library   (8 bits, see LibraryID)
//	bits [11:0]   offset    (12 bits, sequential within the library)
//
// Identifier values are frozen once published: new kernels are appended at
// the end of a library, existing offsets are never renumbered. Consumers
// (kernel registries, serialized graph descriptions) rely on the numeric
// values being bit-exact across implementations and versions.
package kernel

import (
	"fmt"
	"strconv"
	"strings"
)

// ID is an opaque kernel identifier.
type ID uint32

// VendorID identifies the organization that defines a kernel library.
// Vendor identifiers are assigned by the standard and never reused.
type VendorID uint16

// LibraryID selects a named group of kernels within a vendor's namespace.
type LibraryID uint8

// Offset is the sequential index of a kernel within its library.
type Offset uint16

// Bit layout masks and shifts for ID.
const (
	VendorMask  ID = 0xFFF00000
	LibraryMask ID = 0x000FF000
	OffsetMask  ID = 0x00000FFF

	vendorShift  = 20
	libraryShift = 12
)

// MaxOffset is the largest offset a library can hold.
const MaxOffset Offset = 0xFFF

// Base computes the identifier base for a vendor/library pair. Every kernel
// in that library is Base(vendor, library) + offset.
func Base(vendor VendorID, library LibraryID) ID {
	return ID(vendor)<<vendorShift | ID(library)<<libraryShift
}

// New composes an identifier from its three components.
func New(vendor VendorID, library LibraryID, offset Offset) ID {
	return Base(vendor, library) + ID(offset&0xFFF)
}

// Vendor extracts the vendor component.
func (id ID) Vendor() VendorID {
	return VendorID((id & VendorMask) >> vendorShift)
}

// Library extracts the library component.
func (id ID) Library() LibraryID {
	return LibraryID((id & LibraryMask) >> libraryShift)
}

// Offset extracts the library-local offset.
func (id ID) Offset() Offset {
	return Offset(id & OffsetMask)
}

// InRange reports whether id is below the sentinel max. A range check
// against the library sentinel never rejects a defined kernel.
func (id ID) InRange(max ID) bool {
	return id < max
}

// IsStandard reports whether id names one of the defined base kernels
// (KernelInvalid and the sentinel are not kernels).
func (id ID) IsStandard() bool {
	_, ok := standardNames[id]
	return ok
}

// String returns the canonical dotted kernel name for standard identifiers
// ("org.khronos.openvx.sobel_3x3") and a hex form for everything else.
func (id ID) String() string {
	if name, ok := standardNames[id]; ok {
		return name
	}
	return fmt.Sprintf("0x%08x", uint32(id))
}

// Parse resolves a canonical dotted kernel name or a hex identifier
// ("0x...") to an ID.
func Parse(s string) (ID, error) {
	if id, ok := standardIDs[s]; ok {
		return id, nil
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return Invalid, fmt.Errorf("parse kernel id %q: %w", s, err)
		}
		return ID(v), nil
	}
	return Invalid, fmt.Errorf("unknown kernel name %q", s)
}

// MarshalText implements encoding.TextMarshaler using the String form.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, the inverse of
// MarshalText.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
