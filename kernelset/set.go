// Package kernelset provides compact sets of kernel identifiers.
//
// An implementation advertises the kernels it supports as a Set; a consumer
// intersects the set with the kernels a graph description references to
// decide whether the graph can run there. Sets are backed by Roaring
// Bitmaps, so sparse vendor namespaces far above the base library cost
// almost nothing.
package kernelset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/vxgo/kernel"
)

// Set is a mutable set of kernel identifiers.
// It is not safe for concurrent mutation.
type Set struct {
	rb *roaring.Bitmap
}

// New creates an empty set.
func New() *Set {
	return &Set{rb: roaring.New()}
}

// FromIDs creates a set holding the given identifiers.
func FromIDs(ids ...kernel.ID) *Set {
	s := New()
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Standard returns a set of all defined base kernels.
func Standard() *Set {
	s := New()
	for id := range kernel.Standard() {
		s.Add(id)
	}
	return s
}

// Add adds an identifier to the set.
func (s *Set) Add(id kernel.ID) {
	s.rb.Add(uint32(id))
}

// Remove removes an identifier from the set.
func (s *Set) Remove(id kernel.ID) {
	s.rb.Remove(uint32(id))
}

// Contains checks if an identifier is in the set.
func (s *Set) Contains(id kernel.ID) bool {
	return s.rb.Contains(uint32(id))
}

// IsEmpty returns true if the set is empty.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Cardinality returns the number of identifiers in the set.
func (s *Set) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	return &Set{rb: s.rb.Clone()}
}

// Union merges other into s.
func (s *Set) Union(other *Set) {
	s.rb.Or(other.rb)
}

// Intersect keeps only identifiers present in both sets.
func (s *Set) Intersect(other *Set) {
	s.rb.And(other.rb)
}

// Difference removes identifiers present in other.
func (s *Set) Difference(other *Set) {
	s.rb.AndNot(other.rb)
}

// Supports reports whether every identifier of required is present in s.
func (s *Set) Supports(required *Set) bool {
	missing := required.Clone()
	missing.Difference(s)
	return missing.IsEmpty()
}

// Iterator returns an iterator over the set in ascending identifier order.
func (s *Set) Iterator() iter.Seq[kernel.ID] {
	return func(yield func(kernel.ID) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(kernel.ID(it.Next())) {
				return
			}
		}
	}
}

// MarshalBinary implements encoding.BinaryMarshaler using the portable
// roaring serialization format.
func (s *Set) MarshalBinary() ([]byte, error) {
	return s.rb.ToBytes()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *Set) UnmarshalBinary(data []byte) error {
	rb := roaring.New()
	if err := rb.UnmarshalBinary(data); err != nil {
		return err
	}
	s.rb = rb
	return nil
}
