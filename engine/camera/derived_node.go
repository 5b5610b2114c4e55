package camera

import (
	"github.com/Carmen-Shannon/oxy-camera/common"
)

// derivedNode caches a quantity computed from one transform node. It recomputes only when the
// source's dependency version moves past the version it last computed against.
type derivedNode[T any] struct {
	source  *transformNode
	compute func(m *[16]float32, out *T)

	value    T
	computed uint64

	recomputes uint64
}

func newDerivedNode[T any](source *transformNode, compute func(m *[16]float32, out *T)) *derivedNode[T] {
	return &derivedNode[T]{source: source, compute: compute}
}

// Value returns an up-to-date copy of the cached quantity.
func (n *derivedNode[T]) Value() T {
	v := n.source.refresh()
	if n.computed < v {
		n.compute(&n.source.value, &n.value)
		n.computed = v
		n.recomputes++
	}
	return n.value
}

// computeOrigin perspective-divides the translation column. A zero m[15] yields Inf/NaN.
func computeOrigin(m *[16]float32, out *[3]float32) {
	*out = common.PerspectiveDivide(m[12], m[13], m[14], m[15])
}

// axisCompute returns a compute func extracting the xyz part of the axis' basis column, signed.
func axisCompute(a Axis) func(m *[16]float32, out *[3]float32) {
	col, sign := a.component()
	return func(m *[16]float32, out *[3]float32) {
		out[0] = sign * m[col*4]
		out[1] = sign * m[col*4+1]
		out[2] = sign * m[col*4+2]
	}
}
