package kernelset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vxgo/kernel"
)

func TestSetBasics(t *testing.T) {
	s := New()
	assert.True(t, s.IsEmpty())

	s.Add(kernel.Sobel3x3)
	s.Add(kernel.Gaussian3x3)
	assert.True(t, s.Contains(kernel.Sobel3x3))
	assert.False(t, s.Contains(kernel.CannyEdgeDetector))
	assert.Equal(t, uint64(2), s.Cardinality())

	s.Remove(kernel.Sobel3x3)
	assert.False(t, s.Contains(kernel.Sobel3x3))
	assert.Equal(t, uint64(1), s.Cardinality())
}

func TestStandardSet(t *testing.T) {
	s := Standard()
	assert.Equal(t, uint64(kernel.StandardCount), s.Cardinality())
	assert.True(t, s.Contains(kernel.ColorConvert))
	assert.True(t, s.Contains(kernel.HalfscaleGaussian))
	assert.False(t, s.Contains(kernel.Invalid))
	assert.False(t, s.Contains(kernel.Max10))
}

func TestSetAlgebra(t *testing.T) {
	edge := FromIDs(kernel.Sobel3x3, kernel.CannyEdgeDetector)
	blur := FromIDs(kernel.Gaussian3x3, kernel.Box3x3, kernel.Sobel3x3)

	u := edge.Clone()
	u.Union(blur)
	assert.Equal(t, uint64(4), u.Cardinality())

	i := edge.Clone()
	i.Intersect(blur)
	assert.Equal(t, uint64(1), i.Cardinality())
	assert.True(t, i.Contains(kernel.Sobel3x3))

	d := blur.Clone()
	d.Difference(edge)
	assert.Equal(t, uint64(2), d.Cardinality())
	assert.False(t, d.Contains(kernel.Sobel3x3))
}

func TestSupports(t *testing.T) {
	impl := Standard()
	needs := FromIDs(kernel.Sobel3x3, kernel.Magnitude, kernel.Phase)
	assert.True(t, impl.Supports(needs))

	needs.Add(kernel.New(kernel.VendorARM, kernel.LibraryKHRBase, 0x1))
	assert.False(t, impl.Supports(needs))
}

func TestIteratorOrder(t *testing.T) {
	s := FromIDs(kernel.Phase, kernel.ColorConvert, kernel.Remap)

	var got []kernel.ID
	for id := range s.Iterator() {
		got = append(got, id)
	}
	assert.Equal(t, []kernel.ID{kernel.ColorConvert, kernel.Phase, kernel.Remap}, got)
}

func TestBinaryRoundTrip(t *testing.T) {
	s := FromIDs(kernel.Sobel3x3, kernel.New(kernel.VendorIntel, 0x2, 0x7))
	data, err := s.MarshalBinary()
	require.NoError(t, err)

	restored := New()
	require.NoError(t, restored.UnmarshalBinary(data))
	assert.Equal(t, s.Cardinality(), restored.Cardinality())
	assert.True(t, restored.Contains(kernel.Sobel3x3))
	assert.True(t, restored.Contains(kernel.New(kernel.VendorIntel, 0x2, 0x7)))
}
