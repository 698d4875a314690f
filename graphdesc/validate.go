package graphdesc

import (
	"errors"
	"fmt"

	"github.com/hupe1980/vxgo/kernel"
	"github.com/hupe1980/vxgo/registry"
)

var (
	// ErrEmptyGraph is returned for a description with no nodes.
	ErrEmptyGraph = errors.New("graph has no nodes")

	// ErrDuplicateID is returned when two nodes or two data objects share
	// an identifier.
	ErrDuplicateID = errors.New("duplicate identifier")

	// ErrDanglingRef is returned when a port references a data object the
	// graph does not declare.
	ErrDanglingRef = errors.New("reference to undeclared data object")

	// ErrBadArity is returned when a node's port bindings do not fit its
	// kernel's signature.
	ErrBadArity = errors.New("port bindings do not match kernel signature")

	// ErrTypeMismatch is returned when a data object's kind differs from
	// the parameter type it is bound to.
	ErrTypeMismatch = errors.New("data object kind does not match parameter type")

	// ErrMultipleWriters is returned when more than one node writes the
	// same data object.
	ErrMultipleWriters = errors.New("data object has multiple writers")

	// ErrVirtualNeverProduced is returned when a virtual data object has
	// no producing node.
	ErrVirtualNeverProduced = errors.New("virtual data never produced")

	// ErrCycle is returned when the description contains a dependency
	// loop.
	ErrCycle = errors.New("loops not allowed in the graph")
)

// Validate checks the structural integrity of the description against a
// kernel registry. It reports the first violation found. A nil error means
// every referenced kernel is registered, every binding fits its signature,
// each data object has at most one writer, virtual objects are produced,
// and the node dependencies are acyclic.
func (g *Graph) Validate(reg *registry.Registry) error {
	if len(g.Nodes) == 0 {
		return ErrEmptyGraph
	}

	data := make(map[uint32]DataObject, len(g.Data))
	for _, d := range g.Data {
		if _, ok := data[d.ID]; ok {
			return fmt.Errorf("%w: data %d", ErrDuplicateID, d.ID)
		}
		data[d.ID] = d
	}

	nodes := make(map[uint32]bool, len(g.Nodes))
	producer := make(map[uint32]uint32) // data ID -> writing node ID
	sigs := make(map[uint32]kernel.Signature, len(g.Nodes))

	for _, n := range g.Nodes {
		if nodes[n.ID] {
			return fmt.Errorf("%w: node %d", ErrDuplicateID, n.ID)
		}
		nodes[n.ID] = true

		d, err := reg.Lookup(n.Kernel)
		if err != nil {
			return fmt.Errorf("node %d: %w", n.ID, err)
		}
		sigs[n.ID] = d.Signature

		if err := checkBindings(n, d.Signature, data, producer); err != nil {
			return err
		}
	}

	for _, d := range g.Data {
		if d.Virtual {
			if _, ok := producer[d.ID]; !ok {
				return fmt.Errorf("%w: data %d", ErrVirtualNeverProduced, d.ID)
			}
		}
	}

	return g.checkAcyclic(producer, sigs)
}

// checkBindings verifies a single node's port bindings against its
// kernel's signature and records the data objects it writes.
func checkBindings(n Node, sig kernel.Signature, data map[uint32]DataObject, producer map[uint32]uint32) error {
	bound := make(map[int]bool, len(n.Refs))

	for _, ref := range n.Refs {
		if ref.Param < 0 || ref.Param >= sig.Arity() {
			return fmt.Errorf("%w: node %d binds parameter %d of %s (arity %d)",
				ErrBadArity, n.ID, ref.Param, n.Kernel, sig.Arity())
		}
		if bound[ref.Param] {
			return fmt.Errorf("%w: node %d binds parameter %d twice",
				ErrBadArity, n.ID, ref.Param)
		}
		bound[ref.Param] = true

		obj, ok := data[ref.Data]
		if !ok {
			return fmt.Errorf("%w: node %d parameter %d references data %d",
				ErrDanglingRef, n.ID, ref.Param, ref.Data)
		}

		p := sig[ref.Param]
		if obj.Kind != p.Type {
			return fmt.Errorf("%w: node %d parameter %q wants %s, data %d is %s",
				ErrTypeMismatch, n.ID, p.Name, p.Type, ref.Data, obj.Kind)
		}

		if p.Direction == kernel.Output || p.Direction == kernel.Bidirectional {
			if w, ok := producer[ref.Data]; ok && w != n.ID {
				return fmt.Errorf("%w: data %d written by nodes %d and %d",
					ErrMultipleWriters, ref.Data, w, n.ID)
			}
			producer[ref.Data] = n.ID
		}
	}

	for i, p := range sig {
		if !p.Optional && !bound[i] {
			return fmt.Errorf("%w: node %d leaves required parameter %q unbound",
				ErrBadArity, n.ID, p.Name)
		}
	}

	return nil
}

// checkAcyclic runs Kahn's algorithm over the producer/consumer edges.
// Bidirectional bindings count as produced data, matching the scheduling
// rule that a node becomes ready once its pure inputs exist.
func (g *Graph) checkAcyclic(producer map[uint32]uint32, sigs map[uint32]kernel.Signature) error {
	adj := make(map[uint32][]uint32)
	inDegree := make(map[uint32]int, len(g.Nodes))
	for _, n := range g.Nodes {
		inDegree[n.ID] = 0
	}

	for _, n := range g.Nodes {
		sig := sigs[n.ID]
		for _, ref := range n.Refs {
			if ref.Param >= len(sig) {
				continue
			}
			if sig[ref.Param].Direction != kernel.Input {
				continue
			}
			if w, ok := producer[ref.Data]; ok && w != n.ID {
				adj[w] = append(adj[w], n.ID)
				inDegree[n.ID]++
			}
		}
	}

	queue := make([]uint32, 0, len(g.Nodes))
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}

	processed := 0
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		processed++

		for _, next := range adj[current] {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if processed != len(g.Nodes) {
		return ErrCycle
	}
	return nil
}
