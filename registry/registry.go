// Package registry maintains the mapping from kernel identifiers to kernel
// descriptors for a running system.
//
// The registry enforces the numbering contract of the identifier model:
// identifiers are globally unique, and registration within a library is
// append-only, so a kernel published at an offset keeps its numeric value
// forever. Consumers resolve identifiers (or canonical names) to
// descriptors; resolving something unregistered yields ErrUnknownKernel,
// the registry's side of the contract with serialized graph descriptions.
package registry

import (
	"iter"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/vxgo/kernel"
	"github.com/hupe1980/vxgo/manifest"
)

// Descriptor is the registered record of a kernel: its frozen identifier,
// canonical dotted name and declarative parameter list.
type Descriptor struct {
	ID        kernel.ID
	Name      string
	Signature kernel.Signature
}

// Registry is a thread-safe kernel registry.
type Registry struct {
	mu      sync.RWMutex
	byID    map[kernel.ID]Descriptor
	byName  map[string]kernel.ID
	ids     *roaring.Bitmap             // all registered identifier values
	nextOff map[kernel.ID]kernel.Offset // library base -> next free offset

	logger *slog.Logger
}

// New creates a registry. Unless WithoutStandardKernels is given, it is
// pre-seeded with the base kernel table and its published offsets.
func New(opts ...Option) *Registry {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	r := &Registry{
		byID:    make(map[kernel.ID]Descriptor),
		byName:  make(map[string]kernel.ID),
		ids:     roaring.New(),
		nextOff: make(map[kernel.ID]kernel.Offset),
		logger:  o.logger,
	}

	if o.standard {
		r.seedStandard()
	}

	return r
}

// seedStandard installs the base kernel table. Offset 0x0 (the invalid
// marker) is occupied but carries no descriptor, and the next free offset
// is the sentinel position.
func (r *Registry) seedStandard() {
	base := kernel.Base(kernel.VendorKhronos, kernel.LibraryKHRBase)
	r.ids.Add(uint32(kernel.Invalid))

	for id := range kernel.Standard() {
		sig, _ := kernel.SignatureOf(id)
		d := Descriptor{ID: id, Name: id.String(), Signature: sig}
		r.byID[id] = d
		r.byName[d.Name] = id
		r.ids.Add(uint32(id))
	}
	r.nextOff[base] = kernel.Max10.Offset()
}

// Register adds a vendor/custom kernel descriptor.
//
// The identifier's offset must be the next free offset of its library:
// registration is append-only, which is what keeps previously published
// identifier values stable.
func (r *Registry) Register(d Descriptor) error {
	if !validName(d.Name) {
		return ErrInvalidName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ids.Contains(uint32(d.ID)) {
		return &ErrDuplicateKernel{ID: d.ID, Name: d.Name}
	}
	if _, ok := r.byName[d.Name]; ok {
		return &ErrDuplicateKernel{ID: d.ID, Name: d.Name}
	}

	base := kernel.Base(d.ID.Vendor(), d.ID.Library())
	next := r.nextOff[base]
	if next > kernel.MaxOffset {
		return ErrLibraryFull
	}
	if d.ID.Offset() != next {
		return &ErrNotAppendable{ID: d.ID, Expected: next}
	}

	r.byID[d.ID] = d
	r.byName[d.Name] = d.ID
	r.ids.Add(uint32(d.ID))
	r.nextOff[base] = next + 1

	r.logger.Debug("kernel registered",
		"id", d.ID.String(),
		"name", d.Name,
		"vendor", uint16(d.ID.Vendor()),
		"library", uint8(d.ID.Library()),
		"offset", uint16(d.ID.Offset()),
	)

	return nil
}

// Lookup resolves an identifier to its descriptor.
func (r *Registry) Lookup(id kernel.ID) (Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[id]
	if !ok {
		return Descriptor{}, &ErrUnknownKernel{ID: id}
	}
	return d, nil
}

// ResolveName resolves a canonical dotted name to its descriptor.
func (r *Registry) ResolveName(name string) (Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[name]
	if !ok {
		return Descriptor{}, &ErrUnknownKernelName{Name: name}
	}
	return r.byID[id], nil
}

// Registered reports whether id names a registered kernel. The invalid
// marker occupies its slot but is never a registered kernel.
func (r *Registry) Registered(id kernel.ID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byID[id]
	return ok
}

// NextOffset returns the next free offset of a library. This is the only
// offset Register accepts for that library.
func (r *Registry) NextOffset(vendor kernel.VendorID, library kernel.LibraryID) kernel.Offset {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.nextOff[kernel.Base(vendor, library)]
}

// Len returns the number of registered kernels.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// Kernels iterates registered descriptors in ascending identifier order.
func (r *Registry) Kernels() iter.Seq[Descriptor] {
	r.mu.RLock()
	ids := make([]kernel.ID, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return func(yield func(Descriptor) bool) {
		for _, id := range ids {
			r.mu.RLock()
			d, ok := r.byID[id]
			r.mu.RUnlock()
			if !ok {
				continue
			}
			if !yield(d) {
				return
			}
		}
	}
}

// Snapshot captures the registry as a manifest.
func (r *Registry) Snapshot() *manifest.Manifest {
	m := &manifest.Manifest{Version: manifest.CurrentVersion}
	for d := range r.Kernels() {
		info := manifest.KernelInfo{
			ID:   uint32(d.ID),
			Name: d.Name,
		}
		for _, p := range d.Signature {
			info.Params = append(info.Params, manifest.ParamInfo{
				Name:      p.Name,
				Direction: p.Direction.String(),
				Type:      p.Type.String(),
				Optional:  p.Optional,
			})
		}
		m.Kernels = append(m.Kernels, info)
	}
	return m
}

// Restore builds a registry from a manifest snapshot. Kernels are replayed
// in ascending identifier order so the append-only rule holds.
func Restore(m *manifest.Manifest, opts ...Option) (*Registry, error) {
	r := New(append(opts, WithoutStandardKernels())...)
	r.mu.Lock()
	r.ids.Add(uint32(kernel.Invalid))
	r.mu.Unlock()

	infos := make([]manifest.KernelInfo, len(m.Kernels))
	copy(infos, m.Kernels)
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })

	for _, info := range infos {
		d := Descriptor{
			ID:        kernel.ID(info.ID),
			Name:      info.Name,
			Signature: paramsToSignature(info.Params),
		}
		// Offsets occupied by reserved markers are skipped during replay.
		base := kernel.Base(d.ID.Vendor(), d.ID.Library())
		r.mu.Lock()
		if next := r.nextOff[base]; d.ID.Offset() > next {
			r.nextOff[base] = d.ID.Offset()
		}
		r.mu.Unlock()

		if err := r.Register(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func paramsToSignature(params []manifest.ParamInfo) kernel.Signature {
	if len(params) == 0 {
		return nil
	}
	sig := make(kernel.Signature, 0, len(params))
	for _, p := range params {
		sig = append(sig, kernel.Param{
			Name:      p.Name,
			Direction: parseDirection(p.Direction),
			Type:      parseParamType(p.Type),
			Optional:  p.Optional,
		})
	}
	return sig
}

func parseDirection(s string) kernel.Direction {
	switch s {
	case "out":
		return kernel.Output
	case "inout":
		return kernel.Bidirectional
	default:
		return kernel.Input
	}
}

func parseParamType(s string) kernel.ParamType {
	types := map[string]kernel.ParamType{
		"Image":        kernel.TypeImage,
		"Scalar":       kernel.TypeScalar,
		"Enum":         kernel.TypeEnum,
		"LUT":          kernel.TypeLUT,
		"Distribution": kernel.TypeDistribution,
		"Threshold":    kernel.TypeThreshold,
		"Convolution":  kernel.TypeConvolution,
		"Matrix":       kernel.TypeMatrix,
		"Pyramid":      kernel.TypePyramid,
		"Array":        kernel.TypeArray,
		"Remap":        kernel.TypeRemap,
	}
	if t, ok := types[s]; ok {
		return t
	}
	return kernel.TypeScalar
}

// validName requires a dotted reverse-domain name with at least one dot and
// no empty segments.
func validName(name string) bool {
	if name == "" {
		return false
	}
	segs := strings.Split(name, ".")
	if len(segs) < 2 {
		return false
	}
	for _, seg := range segs {
		if seg == "" {
			return false
		}
	}
	return true
}
