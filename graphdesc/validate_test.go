package graphdesc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vxgo/kernel"
	"github.com/hupe1980/vxgo/registry"
)

// edgePipeline describes the classic blur -> sobel -> magnitude/phase
// pipeline over virtual intermediates.
func edgePipeline() *Graph {
	return &Graph{
		Data: []DataObject{
			{ID: 1, Kind: kernel.TypeImage},
			{ID: 2, Kind: kernel.TypeImage, Virtual: true},
			{ID: 3, Kind: kernel.TypeImage, Virtual: true},
			{ID: 4, Kind: kernel.TypeImage, Virtual: true},
			{ID: 5, Kind: kernel.TypeImage},
			{ID: 6, Kind: kernel.TypeImage},
		},
		Nodes: []Node{
			{ID: 10, Kernel: kernel.Gaussian3x3, Refs: []PortRef{{Param: 0, Data: 1}, {Param: 1, Data: 2}}},
			{ID: 11, Kernel: kernel.Sobel3x3, Refs: []PortRef{{Param: 0, Data: 2}, {Param: 1, Data: 3}, {Param: 2, Data: 4}}},
			{ID: 12, Kernel: kernel.Magnitude, Refs: []PortRef{{Param: 0, Data: 3}, {Param: 1, Data: 4}, {Param: 2, Data: 5}}},
			{ID: 13, Kernel: kernel.Phase, Refs: []PortRef{{Param: 0, Data: 3}, {Param: 1, Data: 4}, {Param: 2, Data: 6}}},
		},
		Attrs: map[string]any{"name": "edge-pipeline"},
	}
}

func TestValidatePipeline(t *testing.T) {
	reg := registry.New()
	require.NoError(t, edgePipeline().Validate(reg))
}

func TestValidateEmptyGraph(t *testing.T) {
	reg := registry.New()
	g := &Graph{}
	assert.ErrorIs(t, g.Validate(reg), ErrEmptyGraph)
}

func TestValidateUnknownKernel(t *testing.T) {
	reg := registry.New()
	g := edgePipeline()
	g.Nodes[0].Kernel = kernel.New(kernel.VendorARM, 0x7, 0x3)

	err := g.Validate(reg)
	var unknown *registry.ErrUnknownKernel
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, g.Nodes[0].Kernel, unknown.ID)
}

func TestValidateDuplicateIDs(t *testing.T) {
	reg := registry.New()

	g := edgePipeline()
	g.Nodes[1].ID = g.Nodes[0].ID
	assert.ErrorIs(t, g.Validate(reg), ErrDuplicateID)

	g = edgePipeline()
	g.Data[1].ID = g.Data[0].ID
	assert.ErrorIs(t, g.Validate(reg), ErrDuplicateID)
}

func TestValidateDanglingRef(t *testing.T) {
	reg := registry.New()
	g := edgePipeline()
	g.Nodes[0].Refs[0].Data = 99
	assert.ErrorIs(t, g.Validate(reg), ErrDanglingRef)
}

func TestValidateArity(t *testing.T) {
	reg := registry.New()

	// Unbound required parameter.
	g := edgePipeline()
	g.Nodes[2].Refs = g.Nodes[2].Refs[:2]
	assert.ErrorIs(t, g.Validate(reg), ErrBadArity)

	// Out-of-range parameter index.
	g = edgePipeline()
	g.Nodes[0].Refs[1].Param = 7
	assert.ErrorIs(t, g.Validate(reg), ErrBadArity)

	// Double-bound parameter.
	g = edgePipeline()
	g.Nodes[0].Refs = append(g.Nodes[0].Refs, PortRef{Param: 0, Data: 1})
	assert.ErrorIs(t, g.Validate(reg), ErrBadArity)
}

func TestValidateOptionalParamsMayStayUnbound(t *testing.T) {
	reg := registry.New()
	g := &Graph{
		Data: []DataObject{
			{ID: 1, Kind: kernel.TypeImage},
			{ID: 2, Kind: kernel.TypeImage},
		},
		Nodes: []Node{
			// Sobel with only the x gradient bound; output_y is optional.
			{ID: 10, Kernel: kernel.Sobel3x3, Refs: []PortRef{{Param: 0, Data: 1}, {Param: 1, Data: 2}}},
		},
	}
	require.NoError(t, g.Validate(reg))
}

func TestValidateTypeMismatch(t *testing.T) {
	reg := registry.New()
	g := edgePipeline()
	g.Data[4].Kind = kernel.TypeArray
	assert.ErrorIs(t, g.Validate(reg), ErrTypeMismatch)
}

func TestValidateMultipleWriters(t *testing.T) {
	reg := registry.New()
	g := edgePipeline()
	// Phase writes the same output as Magnitude.
	g.Nodes[3].Refs[2].Data = 5
	assert.ErrorIs(t, g.Validate(reg), ErrMultipleWriters)
}

func TestValidateVirtualNeverProduced(t *testing.T) {
	reg := registry.New()
	g := edgePipeline()
	// Drop the producer of the blurred intermediate.
	g.Nodes = g.Nodes[1:]
	assert.ErrorIs(t, g.Validate(reg), ErrVirtualNeverProduced)
}

func TestValidateCycle(t *testing.T) {
	reg := registry.New()
	g := &Graph{
		Data: []DataObject{
			{ID: 1, Kind: kernel.TypeImage, Virtual: true},
			{ID: 2, Kind: kernel.TypeImage, Virtual: true},
		},
		Nodes: []Node{
			{ID: 10, Kernel: kernel.Gaussian3x3, Refs: []PortRef{{Param: 0, Data: 2}, {Param: 1, Data: 1}}},
			{ID: 11, Kernel: kernel.Not, Refs: []PortRef{{Param: 0, Data: 1}, {Param: 1, Data: 2}}},
		},
	}
	assert.ErrorIs(t, g.Validate(reg), ErrCycle)
}

func TestValidateBidirectionalIsNotACycle(t *testing.T) {
	reg := registry.New()
	g := &Graph{
		Data: []DataObject{
			{ID: 1, Kind: kernel.TypeImage},
			{ID: 2, Kind: kernel.TypeImage},
		},
		Nodes: []Node{
			{ID: 10, Kernel: kernel.Accumulate, Refs: []PortRef{{Param: 0, Data: 1}, {Param: 1, Data: 2}}},
		},
	}
	require.NoError(t, g.Validate(reg))
}

func TestKernelsFirstUseOrder(t *testing.T) {
	g := edgePipeline()
	assert.Equal(t, []kernel.ID{
		kernel.Gaussian3x3,
		kernel.Sobel3x3,
		kernel.Magnitude,
		kernel.Phase,
	}, g.Kernels())
}
