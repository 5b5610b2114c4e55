package camera

import (
	"github.com/Carmen-Shannon/oxy-camera/common"
)

// Frame bundles every accessor relevant to one coordinate system. All accessors are read-only,
// evaluate lazily and return copies.
type Frame interface {
	// System returns the coordinate system this frame describes.
	//
	// Returns:
	//   - System: the frame's coordinate system
	System() System

	// To returns the matrix mapping this frame's coordinates into dst.
	//
	// Parameters:
	//   - dst: the target coordinate system
	//
	// Returns:
	//   - [16]float32: the transform (column-major)
	To(dst System) [16]float32

	// ToData returns the matrix mapping this frame into data coordinates.
	ToData() [16]float32

	// ToWorld returns the matrix mapping this frame into world coordinates.
	ToWorld() [16]float32

	// ToCamera returns the matrix mapping this frame into camera (view) coordinates.
	ToCamera() [16]float32

	// ToClip returns the matrix mapping this frame into clip coordinates.
	ToClip() [16]float32

	// Origin returns the reference system's origin expressed in this frame, perspective-divided.
	//
	// Returns:
	//   - [3]float32: the origin position
	Origin() [3]float32

	// Axis returns one signed basis direction of the reference system expressed in this frame.
	//
	// Parameters:
	//   - a: the axis to read
	//
	// Returns:
	//   - [3]float32: the direction, not normalized
	Axis(a Axis) [3]float32

	Left() [3]float32
	Right() [3]float32
	Up() [3]float32
	Down() [3]float32
	Forward() [3]float32
	Backward() [3]float32

	// Frustum returns the frame's frustum accessors.
	//
	// Returns:
	//   - Frustum: planes and vertices of the clip volume in this frame
	Frustum() Frustum
}

type frameImpl struct {
	system     System
	transforms [systemCount]*transformNode

	origin  *derivedNode[[3]float32]
	axes    [axisCount]*derivedNode[[3]float32]
	frustum *frustumImpl
}

var _ Frame = &frameImpl{}

// newFrame wires the derived nodes of system s. Origin and axes read the reference->s transform.
func newFrame(s System, t *[systemCount][systemCount]*transformNode, reference System, depth common.DepthRange) *frameImpl {
	f := &frameImpl{system: s, transforms: t[s]}
	fromReference := t[reference][s]
	f.origin = newDerivedNode(fromReference, computeOrigin)
	for a := range Axis(axisCount) {
		f.axes[a] = newDerivedNode(fromReference, axisCompute(a))
	}
	f.frustum = newFrustum(t[s][SystemClip], t[SystemClip][s], depth)
	return f
}

func (f *frameImpl) System() System {
	return f.system
}

func (f *frameImpl) To(dst System) [16]float32 {
	if !dst.valid() {
		return common.IdentityMatrix
	}
	return f.transforms[dst].Value()
}

func (f *frameImpl) ToData() [16]float32 {
	return f.transforms[SystemData].Value()
}

func (f *frameImpl) ToWorld() [16]float32 {
	return f.transforms[SystemWorld].Value()
}

func (f *frameImpl) ToCamera() [16]float32 {
	return f.transforms[SystemCamera].Value()
}

func (f *frameImpl) ToClip() [16]float32 {
	return f.transforms[SystemClip].Value()
}

func (f *frameImpl) Origin() [3]float32 {
	return f.origin.Value()
}

func (f *frameImpl) Axis(a Axis) [3]float32 {
	if a < 0 || a >= axisCount {
		return [3]float32{}
	}
	return f.axes[a].Value()
}

func (f *frameImpl) Left() [3]float32     { return f.axes[AxisLeft].Value() }
func (f *frameImpl) Right() [3]float32    { return f.axes[AxisRight].Value() }
func (f *frameImpl) Up() [3]float32       { return f.axes[AxisUp].Value() }
func (f *frameImpl) Down() [3]float32     { return f.axes[AxisDown].Value() }
func (f *frameImpl) Forward() [3]float32  { return f.axes[AxisForward].Value() }
func (f *frameImpl) Backward() [3]float32 { return f.axes[AxisBackward].Value() }

func (f *frameImpl) Frustum() Frustum {
	return f.frustum
}
