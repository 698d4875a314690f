package vxgo

import (
	"context"
	"sync"

	"github.com/hupe1980/vxgo/graphdesc"
	"github.com/hupe1980/vxgo/kernel"
	"github.com/hupe1980/vxgo/kernelset"
	"github.com/hupe1980/vxgo/manifest"
	"github.com/hupe1980/vxgo/registry"
)

const (
	// DefaultImplementationName is reported when no name is configured.
	DefaultImplementationName = "vxgo"

	// MaxImplementationName bounds the implementation name length,
	// matching VX_MAX_IMPLEMENTATION_NAME.
	MaxImplementationName = 64
)

// Hint is a non-binding suggestion to the implementation.
type Hint uint32

const (
	// HintSerialize suggests that graph work be serialized rather
	// than parallelized.
	HintSerialize Hint = 0x1
)

// Directive is a binding instruction to the implementation.
type Directive uint32

const (
	// DirectiveDisableLogging turns off operation logging.
	DirectiveDisableLogging Directive = 0x1
	// DirectiveEnableLogging turns operation logging back on.
	DirectiveEnableLogging Directive = 0x2
)

// Context is the top-level handle. It owns a kernel registry and the
// implementation attributes, and mediates all resolution and
// validation operations.
//
// A Context holds no image data and executes no graphs.
type Context struct {
	mu sync.RWMutex

	reg        *registry.Registry
	logger     *Logger // active logger, swapped by directives
	baseLogger *Logger // configured logger, restored on enable

	vendorID  kernel.VendorID
	implName  string
	serialize bool
	closed    bool
}

// New creates a Context. Without options it is backed by a fresh
// registry seeded with the standard kernel table.
func New(optFns ...Option) (*Context, error) {
	opts := applyOptions(optFns)

	if opts.logger == nil {
		opts.logger = NoopLogger()
	}
	if opts.registry == nil {
		opts.registry = registry.New(registry.WithLogger(opts.logger.Logger))
	}
	if len(opts.implementationName) > MaxImplementationName {
		opts.implementationName = opts.implementationName[:MaxImplementationName]
	}

	return &Context{
		reg:        opts.registry,
		logger:     opts.logger,
		baseLogger: opts.logger,
		vendorID:   opts.vendorID,
		implName:   opts.implementationName,
	}, nil
}

// Close releases the context. It is idempotent; all other operations
// fail with ErrClosed afterwards.
func (c *Context) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	return nil
}

// VendorID returns the configured vendor ID attribute.
func (c *Context) VendorID() kernel.VendorID {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.vendorID
}

// Implementation returns the implementation name attribute.
func (c *Context) Implementation() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.implName
}

// Registry returns the backing kernel registry.
func (c *Context) Registry() *registry.Registry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.reg
}

// Serialized reports whether HintSerialize has been given.
func (c *Context) Serialized() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.serialize
}

// Hint gives the context a non-binding suggestion.
func (c *Context) Hint(h Hint) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}

	switch h {
	case HintSerialize:
		c.serialize = true
		return nil
	default:
		return ErrUnsupportedHint
	}
}

// Directive gives the context a binding instruction.
func (c *Context) Directive(d Directive) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}

	switch d {
	case DirectiveDisableLogging:
		c.logger = NoopLogger()
		return nil
	case DirectiveEnableLogging:
		c.logger = c.baseLogger
		return nil
	default:
		return ErrUnsupportedDirective
	}
}

// Register adds a kernel to the backing registry.
func (c *Context) Register(ctx context.Context, id kernel.ID, name string, sig kernel.Signature) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return ErrClosed
	}

	err := translateError(c.reg.Register(registry.Descriptor{ID: id, Name: name, Signature: sig}))
	c.logger.LogRegister(ctx, id, name, err)
	return err
}

// Lookup resolves a kernel identifier to its descriptor.
func (c *Context) Lookup(id kernel.ID) (registry.Descriptor, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return registry.Descriptor{}, ErrClosed
	}

	desc, err := c.reg.Lookup(id)
	return desc, translateError(err)
}

// ResolveName resolves a canonical dotted kernel name.
func (c *Context) ResolveName(ctx context.Context, name string) (registry.Descriptor, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return registry.Descriptor{}, ErrClosed
	}

	desc, err := c.reg.ResolveName(name)
	err = translateError(err)
	c.logger.LogResolve(ctx, name, desc.ID, err)
	return desc, err
}

// Capabilities returns the set of kernels the context supports.
func (c *Context) Capabilities() (*kernelset.Set, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, ErrClosed
	}

	set := kernelset.New()
	for desc := range c.reg.Kernels() {
		set.Add(desc.ID)
	}
	return set, nil
}

// ValidateGraph checks a graph description against the registry.
func (c *Context) ValidateGraph(ctx context.Context, g *graphdesc.Graph) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return ErrClosed
	}

	err := translateError(g.Validate(c.reg))
	c.logger.LogValidate(ctx, g.NodeCount(), err)
	return err
}

// Snapshot captures the registry contents as a manifest.
func (c *Context) Snapshot(ctx context.Context) (*manifest.Manifest, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, ErrClosed
	}

	m := c.reg.Snapshot()
	c.logger.LogSnapshot(ctx, len(m.Kernels), nil)
	return m, nil
}
