package camera

import (
	"github.com/Carmen-Shannon/oxy-camera/common"
)

// Frustum exposes the clipping volume of one frame, expressed in that frame's coordinates.
// Planes and vertices are cached independently; reading one never recomputes the other.
type Frustum interface {
	// Planes returns the six inward-facing, normalized clip planes.
	// Indexed by common.FrustumLeft through common.FrustumFar.
	//
	// Returns:
	//   - common.Frustum: the frustum planes
	Planes() common.Frustum

	// Vertices returns the eight frustum corners. Corner i takes x from bit 0, y from bit 1 and
	// near/far from bit 2 (0 = -1 or near).
	//
	// Returns:
	//   - [8][3]float32: the corners, perspective-divided
	Vertices() [8][3]float32
}

type frustumImpl struct {
	planes   *derivedNode[common.Frustum]
	vertices *derivedNode[[8][3]float32]
}

var _ Frustum = &frustumImpl{}

// newFrustum builds the frustum nodes of a frame. toClip maps the frame into clip space and
// fromClip maps clip space back into the frame.
func newFrustum(toClip, fromClip *transformNode, depth common.DepthRange) *frustumImpl {
	return &frustumImpl{
		planes: newDerivedNode(toClip, func(m *[16]float32, out *common.Frustum) {
			*out = common.ExtractFrustumFromMatrix(m[:], depth)
		}),
		vertices: newDerivedNode(fromClip, func(m *[16]float32, out *[8][3]float32) {
			*out = common.FrustumVertices(m[:], depth)
		}),
	}
}

func (f *frustumImpl) Planes() common.Frustum {
	return f.planes.Value()
}

func (f *frustumImpl) Vertices() [8][3]float32 {
	return f.vertices.Value()
}
