package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseComposition(t *testing.T) {
	tests := []struct {
		name    string
		vendor  VendorID
		library LibraryID
		offset  Offset
		want    ID
	}{
		{"khronos base", VendorKhronos, LibraryKHRBase, 0x0, 0x00000000},
		{"khronos sobel", VendorKhronos, LibraryKHRBase, 0x4, 0x00000004},
		{"vendor shifted", VendorNVIDIA, LibraryKHRBase, 0x1, 0x00300001},
		{"library shifted", VendorKhronos, 0x2, 0x7, 0x00002007},
		{"default vendor", VendorDefault, 0xFF, 0xFFF, 0xFFFFFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.vendor, tt.library, tt.offset)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.vendor, got.Vendor())
			assert.Equal(t, tt.library, got.Library())
			assert.Equal(t, tt.offset, got.Offset())
		})
	}
}

func TestStandardKernelValues(t *testing.T) {
	// Every defined constant must equal Base(vendor, library) + its
	// declared offset from the published table.
	declared := map[ID]Offset{
		Invalid:            0x0,
		ColorConvert:       0x1,
		ChannelExtract:     0x2,
		ChannelCombine:     0x3,
		Sobel3x3:           0x4,
		Magnitude:          0x5,
		Phase:              0x6,
		ScaleImage:         0x7,
		TableLookup:        0x8,
		Histogram:          0x9,
		EqualizeHistogram:  0xA,
		AbsDiff:            0xB,
		MeanStdDev:         0xC,
		Threshold:          0xD,
		IntegralImage:      0xE,
		Dilate3x3:          0xF,
		Erode3x3:           0x10,
		Median3x3:          0x11,
		Box3x3:             0x12,
		Gaussian3x3:        0x13,
		CustomConvolution:  0x14,
		GaussianPyramid:    0x15,
		Accumulate:         0x16,
		AccumulateWeighted: 0x17,
		AccumulateSquare:   0x18,
		MinMaxLoc:          0x19,
		ConvertDepth:       0x1A,
		CannyEdgeDetector:  0x1B,
		And:                0x1C,
		Or:                 0x1D,
		Xor:                0x1E,
		Not:                0x1F,
		Multiply:           0x20,
		Add:                0x21,
		Subtract:           0x22,
		WarpAffine:         0x23,
		WarpPerspective:    0x24,
		HarrisCorners:      0x25,
		FastCorners:        0x26,
		OpticalFlowPyrLK:   0x27,
		Remap:              0x28,
		HalfscaleGaussian:  0x29,
	}

	for id, offset := range declared {
		assert.Equal(t, Base(VendorKhronos, LibraryKHRBase)+ID(offset), id)
		assert.Equal(t, VendorKhronos, id.Vendor())
		assert.Equal(t, LibraryKHRBase, id.Library())
		assert.Equal(t, offset, id.Offset())
	}
}

func TestIdentifiersPairwiseDistinct(t *testing.T) {
	seen := make(map[ID]bool)
	for id := range Standard() {
		require.False(t, seen[id], "duplicate kernel identifier %v", id)
		seen[id] = true
	}
	assert.Len(t, seen, StandardCount)
}

func TestSentinel(t *testing.T) {
	// The sentinel follows the last defined kernel by exactly one, so a
	// range check against it never rejects a valid kernel.
	assert.Equal(t, HalfscaleGaussian+1, Max10)

	for id := range Standard() {
		assert.True(t, id.InRange(Max10), "kernel %v rejected by range check", id)
	}
	assert.False(t, Max10.InRange(Max10))
	assert.True(t, Invalid.InRange(Max10))
}

func TestAppendDoesNotRenumber(t *testing.T) {
	// Simulates appending a kernel at the sentinel position: all existing
	// values stay put and the new entry lands directly after the last one.
	next := New(VendorKhronos, LibraryKHRBase, Max10.Offset())
	assert.Equal(t, Max10, next)
	assert.Equal(t, HalfscaleGaussian, next-1)
}

func TestStringAndParseRoundTrip(t *testing.T) {
	for id := range Standard() {
		name := id.String()
		require.NotEmpty(t, name)

		parsed, err := Parse(name)
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	}
}

func TestParseHex(t *testing.T) {
	id, err := Parse("0x00300001")
	require.NoError(t, err)
	assert.Equal(t, New(VendorNVIDIA, LibraryKHRBase, 0x1), id)

	_, err = Parse("no.such.kernel")
	assert.Error(t, err)

	_, err = Parse("0xZZZ")
	assert.Error(t, err)
}

func TestStringUnknownIsHex(t *testing.T) {
	id := New(VendorIntel, 0x3, 0x42)
	assert.Equal(t, "0x00f03042", id.String())
}

func TestTextMarshaling(t *testing.T) {
	b, err := Sobel3x3.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "org.khronos.openvx.sobel_3x3", string(b))

	var id ID
	require.NoError(t, id.UnmarshalText(b))
	assert.Equal(t, Sobel3x3, id)

	assert.Error(t, id.UnmarshalText([]byte("bogus")))
}

func TestIsStandard(t *testing.T) {
	assert.True(t, Sobel3x3.IsStandard())
	assert.True(t, HalfscaleGaussian.IsStandard())
	assert.False(t, Invalid.IsStandard())
	assert.False(t, Max10.IsStandard())
	assert.False(t, New(VendorARM, LibraryKHRBase, 0x1).IsStandard())
}
