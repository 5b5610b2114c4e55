package common

import (
	"github.com/chewxy/math32"
)

// DepthRange selects the clip space depth convention used when extracting frustum planes and corners.
type DepthRange int

const (
	// DepthZeroToOne is the WebGPU/Vulkan/D3D convention: near maps to z = 0, far to z = 1.
	DepthZeroToOne DepthRange = iota
	// DepthNegOneToOne is the OpenGL convention: near maps to z = -1, far to z = 1.
	DepthNegOneToOne
)

// NearZ returns the clip space z of the near plane for this depth range.
func (d DepthRange) NearZ() float32 {
	if d == DepthNegOneToOne {
		return -1
	}
	return 0
}

func (d DepthRange) String() string {
	if d == DepthNegOneToOne {
		return "[-1,1]"
	}
	return "[0,1]"
}

// Plane represents a plane in 3D space using the equation: ax + by + cz + d = 0
// where (a, b, c) is the normal and d is the distance from origin.
type Plane struct {
	Normal   [3]float32
	Distance float32
}

// DistanceTo returns the signed distance from a point to the plane.
// Positive means on the inside (same side as Normal).
//
// Parameters:
//   - p: the point to test
//
// Returns:
//   - float32: signed distance, in units of the plane's normal length
func (pl Plane) DistanceTo(p [3]float32) float32 {
	return pl.Normal[0]*p[0] + pl.Normal[1]*p[1] + pl.Normal[2]*p[2] + pl.Distance
}

// Frustum represents the six planes of a view frustum for culling.
// Planes are oriented so that positive half-space is inside the frustum.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

// FrustumPlane indices for clarity
const (
	FrustumLeft   = 0
	FrustumRight  = 1
	FrustumBottom = 2
	FrustumTop    = 3
	FrustumNear   = 4
	FrustumFar    = 5
)

// ExtractFrustumFromMatrix extracts frustum planes from a matrix mapping some space into clip space.
// The planes are expressed in that source space. Uses the Gribb/Hartmann method for plane extraction.
//
// Reference: https://www8.cs.umu.se/kurser/5DV051/HT12/lab/plane_extraction.pdf
//
// Parameters:
//   - m: 16 float32 values representing the source-to-clip matrix (column-major)
//   - depth: clip space depth convention, decides how the near plane is formed
//
// Returns:
//   - Frustum: the extracted frustum with normalized planes
func ExtractFrustumFromMatrix(m []float32, depth DepthRange) Frustum {
	var f Frustum

	// For column-major matrix M, element M[row][col] is at index col*4 + row,
	// so row r is (m[r], m[4+r], m[8+r], m[12+r]).
	row := func(r int) [4]float32 {
		return [4]float32{m[r], m[4+r], m[8+r], m[12+r]}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)

	f.Planes[FrustumLeft] = planeFrom(r3, r0, 1)
	f.Planes[FrustumRight] = planeFrom(r3, r0, -1)
	f.Planes[FrustumBottom] = planeFrom(r3, r1, 1)
	f.Planes[FrustumTop] = planeFrom(r3, r1, -1)
	if depth == DepthNegOneToOne {
		f.Planes[FrustumNear] = planeFrom(r3, r2, 1)
	} else {
		f.Planes[FrustumNear] = planeFrom([4]float32{}, r2, 1)
	}
	f.Planes[FrustumFar] = planeFrom(r3, r2, -1)

	// Normalize all planes
	for i := range f.Planes {
		f.normalizePlane(i)
	}

	return f
}

// planeFrom builds base + sign*other as a plane.
func planeFrom(base, other [4]float32, sign float32) Plane {
	return Plane{
		Normal: [3]float32{
			base[0] + sign*other[0],
			base[1] + sign*other[1],
			base[2] + sign*other[2],
		},
		Distance: base[3] + sign*other[3],
	}
}

// normalizePlane normalizes a frustum plane so that the normal has unit length.
// Planes with a zero (or NaN) normal length are left untouched.
func (f *Frustum) normalizePlane(index int) {
	p := &f.Planes[index]
	length := math32.Sqrt(
		p.Normal[0]*p.Normal[0] +
			p.Normal[1]*p.Normal[1] +
			p.Normal[2]*p.Normal[2],
	)

	if length > 0 {
		invLen := 1.0 / length
		p.Normal[0] *= invLen
		p.Normal[1] *= invLen
		p.Normal[2] *= invLen
		p.Distance *= invLen
	}
}

// IntersectsSphere reports whether a sphere is at least partially inside the frustum.
//
// Parameters:
//   - center: sphere center in the frustum's space
//   - radius: sphere radius
//
// Returns:
//   - bool: false only when the sphere lies entirely outside one of the planes
func (f *Frustum) IntersectsSphere(center [3]float32, radius float32) bool {
	for i := range f.Planes {
		if f.Planes[i].DistanceTo(center) < -radius {
			return false
		}
	}
	return true
}

// FrustumVertices maps the eight clip space cube corners through a clip-to-target matrix and perspective-divides
// each. Corner i uses x = -1/+1 from bit 0, y from bit 1 and z (near/far) from bit 2, so corner 0 is
// left-bottom-near and corner 7 is right-top-far. A corner whose w maps to zero comes out as Inf/NaN.
//
// Parameters:
//   - inv: 16 float32 values representing the clip-to-target matrix (column-major)
//   - depth: clip space depth convention, decides the near corner z
//
// Returns:
//   - [8][3]float32: the corners in the target space
func FrustumVertices(inv []float32, depth DepthRange) [8][3]float32 {
	var out [8][3]float32
	nearZ := depth.NearZ()
	for i := range out {
		x, y, z := float32(-1), float32(-1), nearZ
		if i&1 != 0 {
			x = 1
		}
		if i&2 != 0 {
			y = 1
		}
		if i&4 != 0 {
			z = 1
		}
		out[i] = PerspectiveDivide(TransformPoint(inv, x, y, z, 1))
	}
	return out
}
