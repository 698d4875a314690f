package registry

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vxgo/kernel"
)

func TestNewSeedsStandardTable(t *testing.T) {
	r := New()
	assert.Equal(t, kernel.StandardCount, r.Len())

	d, err := r.Lookup(kernel.Sobel3x3)
	require.NoError(t, err)
	assert.Equal(t, "org.khronos.openvx.sobel_3x3", d.Name)
	assert.Equal(t, 3, d.Signature.Arity())

	// The invalid marker occupies its offset but is not a kernel.
	assert.False(t, r.Registered(kernel.Invalid))
	_, err = r.Lookup(kernel.Invalid)
	var unknown *ErrUnknownKernel
	assert.ErrorAs(t, err, &unknown)
}

func TestLookupUnknown(t *testing.T) {
	r := New()

	id := kernel.New(kernel.VendorARM, kernel.LibraryKHRBase, 0x5)
	_, err := r.Lookup(id)

	var unknown *ErrUnknownKernel
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, id, unknown.ID)
}

func TestResolveName(t *testing.T) {
	r := New()

	d, err := r.ResolveName("org.khronos.openvx.canny_edge_detector")
	require.NoError(t, err)
	assert.Equal(t, kernel.CannyEdgeDetector, d.ID)

	_, err = r.ResolveName("org.example.missing")
	var unknown *ErrUnknownKernelName
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "org.example.missing", unknown.Name)
}

func TestRegisterAppendOnly(t *testing.T) {
	r := New()

	// The standard library's next position is the 1.0 sentinel.
	assert.Equal(t, kernel.Max10.Offset(), r.NextOffset(kernel.VendorKhronos, kernel.LibraryKHRBase))

	// Appending at the sentinel position works and does not disturb any
	// published value.
	before, err := r.Lookup(kernel.HalfscaleGaussian)
	require.NoError(t, err)

	d := Descriptor{
		ID:   kernel.New(kernel.VendorKhronos, kernel.LibraryKHRBase, kernel.Max10.Offset()),
		Name: "org.khronos.openvx.extras.edge_trace",
	}
	require.NoError(t, r.Register(d))

	after, err := r.Lookup(kernel.HalfscaleGaussian)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	// Skipping ahead is rejected.
	err = r.Register(Descriptor{
		ID:   kernel.New(kernel.VendorKhronos, kernel.LibraryKHRBase, kernel.Max10.Offset()+5),
		Name: "org.khronos.openvx.extras.too_far",
	})
	var gap *ErrNotAppendable
	require.ErrorAs(t, err, &gap)
	assert.Equal(t, kernel.Max10.Offset()+1, gap.Expected)
}

func TestRegisterVendorLibrary(t *testing.T) {
	r := New()

	id0 := kernel.New(kernel.VendorNVIDIA, 0x1, 0x0)
	require.NoError(t, r.Register(Descriptor{ID: id0, Name: "com.nvidia.vision.nms"}))

	id1 := kernel.New(kernel.VendorNVIDIA, 0x1, 0x1)
	require.NoError(t, r.Register(Descriptor{ID: id1, Name: "com.nvidia.vision.tracker"}))

	assert.Equal(t, kernel.Offset(0x2), r.NextOffset(kernel.VendorNVIDIA, 0x1))

	d, err := r.Lookup(id1)
	require.NoError(t, err)
	assert.Equal(t, "com.nvidia.vision.tracker", d.Name)
}

func TestRegisterDuplicates(t *testing.T) {
	r := New()

	id := kernel.New(kernel.VendorARM, 0x0, 0x0)
	require.NoError(t, r.Register(Descriptor{ID: id, Name: "com.arm.vision.a"}))

	err := r.Register(Descriptor{ID: id, Name: "com.arm.vision.b"})
	var dup *ErrDuplicateKernel
	assert.ErrorAs(t, err, &dup)

	err = r.Register(Descriptor{
		ID:   kernel.New(kernel.VendorARM, 0x0, 0x1),
		Name: "com.arm.vision.a",
	})
	assert.ErrorAs(t, err, &dup)
}

func TestRegisterInvalidName(t *testing.T) {
	r := New()
	id := kernel.New(kernel.VendorARM, 0x0, 0x0)

	for _, name := range []string{"", "nodots", "trailing.", ".leading", "a..b"} {
		err := r.Register(Descriptor{ID: id, Name: name})
		assert.ErrorIs(t, err, ErrInvalidName, "name %q", name)
	}
}

func TestKernelsIterationOrder(t *testing.T) {
	r := New()

	var prev kernel.ID
	count := 0
	for d := range r.Kernels() {
		if count > 0 {
			assert.Greater(t, d.ID, prev)
		}
		prev = d.ID
		count++
	}
	assert.Equal(t, kernel.StandardCount, count)
}

func TestSnapshotRestore(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(Descriptor{
		ID:   kernel.New(kernel.VendorIntel, 0x0, 0x0),
		Name: "com.intel.vision.census",
		Signature: kernel.Signature{
			{Name: "input", Direction: kernel.Input, Type: kernel.TypeImage},
			{Name: "output", Direction: kernel.Output, Type: kernel.TypeImage},
		},
	}))

	m := r.Snapshot()
	assert.Len(t, m.Kernels, kernel.StandardCount+1)

	restored, err := Restore(m)
	require.NoError(t, err)
	assert.Equal(t, r.Len(), restored.Len())

	d, err := restored.ResolveName("com.intel.vision.census")
	require.NoError(t, err)
	assert.Equal(t, kernel.New(kernel.VendorIntel, 0x0, 0x0), d.ID)
	assert.Equal(t, 2, d.Signature.Arity())

	// Standard values survived the round trip untouched.
	d, err = restored.Lookup(kernel.Remap)
	require.NoError(t, err)
	assert.Equal(t, "org.khronos.openvx.remap", d.Name)
}

func TestConcurrentLookups(t *testing.T) {
	r := New()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, err := r.Lookup(kernel.Gaussian3x3)
				if err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestErrorsUnwrapCleanly(t *testing.T) {
	r := New()
	_, err := r.Lookup(kernel.Max10)
	assert.False(t, errors.Is(err, ErrInvalidName))
	assert.Contains(t, err.Error(), "unknown kernel identifier")
}
