package camera

import (
	"log"

	"github.com/Carmen-Shannon/oxy-camera/common"
	"github.com/Carmen-Shannon/oxy-camera/engine/clock"
)

// transformStrategy is how a node computes its matrix. It is fixed by topology at construction.
type transformStrategy int

const (
	strategyIdentity  transformStrategy = iota // src == dst
	strategyDirect                             // adjacent, forward: the base matrix itself
	strategyInverse                            // adjacent, backward: inverse of the base matrix
	strategyComposite                          // two or more hops: step * span
)

// transformNode caches the matrix mapping points in src coordinates to dst coordinates.
// value is valid whenever computed >= the node's current dependency version.
type transformNode struct {
	src, dst System
	strategy transformStrategy

	value    [16]float32
	computed uint64

	// slot backs direct and inverse nodes.
	slot *slot
	// span maps src to the system one hop before dst, step maps that system to dst.
	// Both back composite nodes.
	span, step *transformNode

	recomputes uint64
	logger     *log.Logger
}

func newIdentityNode(s System) *transformNode {
	return &transformNode{src: s, dst: s, strategy: strategyIdentity, value: common.IdentityMatrix, computed: clock.Initial}
}

func newAdjacentNode(src, dst System, sl *slot, logger *log.Logger) *transformNode {
	n := &transformNode{src: src, dst: dst, strategy: strategyDirect, slot: sl, logger: logger}
	if dst < src {
		n.strategy = strategyInverse
	}
	return n
}

func newCompositeNode(src, dst System, span, step *transformNode) *transformNode {
	return &transformNode{src: src, dst: dst, strategy: strategyComposite, span: span, step: step}
}

// refresh brings the cached value up to date and returns the dependency version it reflects.
// The value is recomputed at most once per change of that version.
//
// Returns:
//   - uint64: the maximum version among the base matrices this node depends on
func (n *transformNode) refresh() uint64 {
	switch n.strategy {
	case strategyIdentity:
		return clock.Initial

	case strategyDirect:
		v := n.slot.refresh()
		if n.computed < v {
			n.value = n.slot.matrix
			n.mark(v)
		}
		return v

	case strategyInverse:
		v := n.slot.refresh()
		if n.computed < v {
			if !common.Invert4(n.value[:], n.slot.matrix[:]) {
				n.logger.Printf("[Camera] %s matrix is singular, %s->%s holds non-finite values", n.slot.name, n.src, n.dst)
			}
			n.mark(v)
		}
		return v

	default:
		v := max(n.span.refresh(), n.step.refresh())
		if n.computed < v {
			common.Mul4(n.value[:], n.step.value[:], n.span.value[:])
			n.mark(v)
		}
		return v
	}
}

func (n *transformNode) mark(v uint64) {
	n.computed = v
	n.recomputes++
}

// Value returns an up-to-date copy of the cached matrix.
//
// Returns:
//   - [16]float32: the src-to-dst matrix (column-major)
func (n *transformNode) Value() [16]float32 {
	n.refresh()
	return n.value
}

// buildTransforms wires the 16 transform nodes over the fixed linear topology. Adjacent nodes
// wrap a slot; longer spans compose the span one hop shorter with the final adjacent step, so
// data->clip is projection * (view * model).
func buildTransforms(slots [systemCount - 1]*slot, logger *log.Logger) [systemCount][systemCount]*transformNode {
	var t [systemCount][systemCount]*transformNode
	for i := range systemCount {
		t[i][i] = newIdentityNode(System(i))
	}
	for i := range systemCount - 1 {
		t[i][i+1] = newAdjacentNode(System(i), System(i+1), slots[i], logger)
		t[i+1][i] = newAdjacentNode(System(i+1), System(i), slots[i], logger)
	}
	for hops := 2; hops < systemCount; hops++ {
		for i := 0; i+hops < systemCount; i++ {
			j := i + hops
			t[i][j] = newCompositeNode(System(i), System(j), t[i][j-1], t[j-1][j])
			t[j][i] = newCompositeNode(System(j), System(i), t[j][i+1], t[i+1][i])
		}
	}
	return t
}
