package camera

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-camera/common"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

// perspective90 is a 90 degree, square, near 1 / far 10 projection.
func perspective90() [16]float32 {
	var p [16]float32
	common.Perspective(p[:], math32.Pi/2, 1, 1, 10)
	return p
}

func TestClipFrustumIsTheClipCube(t *testing.T) {
	r := newRig(t)
	v := r.cam.Clip().Frustum().Vertices()
	assertVector(t, [3]float32{-1, -1, 0}, v[0])
	assertVector(t, [3]float32{1, -1, 0}, v[1])
	assertVector(t, [3]float32{-1, 1, 0}, v[2])
	assertVector(t, [3]float32{1, 1, 1}, v[7])

	gl := newRig(t, WithDepthRange(common.DepthNegOneToOne))
	v = gl.cam.Clip().Frustum().Vertices()
	assertVector(t, [3]float32{-1, -1, -1}, v[0])
	assertVector(t, [3]float32{1, 1, 1}, v[7])
}

func TestCameraFrustumVertices(t *testing.T) {
	r := newRig(t)
	r.controllers[2].Set(perspective90())

	v := r.cam.Camera().Frustum().Vertices()
	assertVector(t, [3]float32{-1, -1, -1}, v[0])
	assertVector(t, [3]float32{1, 1, -1}, v[3])
	// Far corners amplify float32 rounding by the far/near ratio.
	for i, want := range map[int][3]float32{4: {-10, -10, -10}, 7: {10, 10, -10}} {
		for k := range want {
			assert.InDelta(t, want[k], v[i][k], 1e-3, "corner %d", i)
		}
	}
}

func TestCameraFrustumPlanes(t *testing.T) {
	r := newRig(t)
	r.controllers[2].Set(perspective90())

	f := r.cam.Camera().Frustum().Planes()
	near := f.Planes[common.FrustumNear]
	assertVector(t, [3]float32{0, 0, -1}, near.Normal)
	assert.InDelta(t, -1, near.Distance, matrixTol)

	far := f.Planes[common.FrustumFar]
	assertVector(t, [3]float32{0, 0, 1}, far.Normal)
	assert.InDelta(t, 10, far.Distance, matrixTol)

	assert.True(t, f.IntersectsSphere([3]float32{0, 0, -5}, 0))
	assert.False(t, f.IntersectsSphere([3]float32{0, 0, -20}, 0))
	assert.False(t, f.IntersectsSphere([3]float32{0, 0, 0}, 0.5))
	assert.True(t, f.IntersectsSphere([3]float32{0, 0, 0}, 2))
	assert.False(t, f.IntersectsSphere([3]float32{20, 0, -5}, 1))
}

func TestWorldFrustumFollowsView(t *testing.T) {
	r := newRig(t)
	r.controllers[2].Set(perspective90())
	r.controllers[1].Set(translation(0, 0, -5))

	// The camera sits at z = +5 in world space looking down -Z.
	f := r.cam.World().Frustum().Planes()
	assert.True(t, f.IntersectsSphere([3]float32{0, 0, 0}, 0))
	assert.False(t, f.IntersectsSphere([3]float32{0, 0, 10}, 0))

	v := r.cam.World().Frustum().Vertices()
	assertVector(t, [3]float32{-1, -1, 4}, v[0])
}

func TestFrustumPlanesAndVerticesAreIndependent(t *testing.T) {
	r := newRig(t)
	fr := r.cam.frames[SystemData].frustum

	r.cam.Data().Frustum().Planes()
	r.cam.Data().Frustum().Planes()
	assert.Equal(t, uint64(1), fr.planes.recomputes)
	assert.Zero(t, fr.vertices.recomputes)

	r.controllers[2].Set(perspective90())
	r.cam.Data().Frustum().Vertices()
	assert.Equal(t, uint64(1), fr.planes.recomputes)
	assert.Equal(t, uint64(1), fr.vertices.recomputes)

	r.cam.Data().Frustum().Planes()
	assert.Equal(t, uint64(2), fr.planes.recomputes)
}

func TestFrustumVerticesWithZeroW(t *testing.T) {
	swap := [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 1, 0, 0, 1, 0}
	r := newRig(t)
	r.controllers[2].Set(swap)

	var v [8][3]float32
	assert.NotPanics(t, func() { v = r.cam.Camera().Frustum().Vertices() })
	// The near corners map to w = 0 under the z/w swap with depth range [0, 1].
	assert.False(t, common.IsFinite(v[0][:]))
	assert.True(t, common.IsFinite(v[7][:]))
}
