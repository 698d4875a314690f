// Package graphdesc models serialized vision-graph descriptions.
//
// A graph description is declarative data: nodes referencing kernels by
// identifier, wired to data objects through the kernels' parameter slots.
// The package validates descriptions against a kernel registry and
// round-trips them through a checksummed binary format. It deliberately
// knows nothing about executing a graph, image memory or devices; it is
// one of the downstream consumers the identifier model exists for.
package graphdesc

import (
	"github.com/hupe1980/vxgo/kernel"
)

// DataObject declares a value a graph's nodes read or write. Virtual
// objects are intermediates that only exist between nodes; they must be
// produced by exactly one node.
type DataObject struct {
	ID      uint32
	Kind    kernel.ParamType
	Virtual bool
}

// PortRef binds one parameter slot of a node's kernel to a data object.
type PortRef struct {
	Param int
	Data  uint32
}

// Node is one kernel invocation in a graph description.
type Node struct {
	ID     uint32
	Kernel kernel.ID
	Refs   []PortRef
}

// Graph is an immutable description of a vision graph.
type Graph struct {
	Nodes []Node
	Data  []DataObject
	Attrs map[string]any
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	return len(g.Nodes)
}

// Kernels returns the distinct kernel identifiers the graph references,
// in first-use order. Consumers intersect this with a capability set.
func (g *Graph) Kernels() []kernel.ID {
	seen := make(map[kernel.ID]bool, len(g.Nodes))
	var out []kernel.ID
	for _, n := range g.Nodes {
		if !seen[n.Kernel] {
			seen[n.Kernel] = true
			out = append(out, n.Kernel)
		}
	}
	return out
}
