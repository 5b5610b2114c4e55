package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestDepthRange(t *testing.T) {
	assert.Equal(t, float32(0), DepthZeroToOne.NearZ())
	assert.Equal(t, float32(-1), DepthNegOneToOne.NearZ())
	assert.Equal(t, "[0,1]", DepthZeroToOne.String())
	assert.Equal(t, "[-1,1]", DepthNegOneToOne.String())
}

func TestExtractFrustumFromIdentity(t *testing.T) {
	tests := []struct {
		name     string
		depth    DepthRange
		nearDist float32
	}{
		{"zero to one", DepthZeroToOne, 0},
		{"negative one to one", DepthNegOneToOne, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ExtractFrustumFromMatrix(IdentityMatrix[:], tt.depth)

			assert.Equal(t, Plane{Normal: [3]float32{1, 0, 0}, Distance: 1}, f.Planes[FrustumLeft])
			assert.Equal(t, Plane{Normal: [3]float32{-1, 0, 0}, Distance: 1}, f.Planes[FrustumRight])
			assert.Equal(t, Plane{Normal: [3]float32{0, 1, 0}, Distance: 1}, f.Planes[FrustumBottom])
			assert.Equal(t, Plane{Normal: [3]float32{0, -1, 0}, Distance: 1}, f.Planes[FrustumTop])
			assert.Equal(t, Plane{Normal: [3]float32{0, 0, 1}, Distance: tt.nearDist}, f.Planes[FrustumNear])
			assert.Equal(t, Plane{Normal: [3]float32{0, 0, -1}, Distance: 1}, f.Planes[FrustumFar])
		})
	}
}

func TestExtractFrustumNormalizesPlanes(t *testing.T) {
	var p [16]float32
	Perspective(p[:], math32.Pi/3, 1.5, 0.5, 50)
	f := ExtractFrustumFromMatrix(p[:], DepthZeroToOne)

	for i, pl := range f.Planes {
		n := pl.Normal
		assert.InDelta(t, 1, math32.Sqrt(n[0]*n[0]+n[1]*n[1]+n[2]*n[2]), tol, "plane %d", i)
	}
	assert.InDelta(t, -0.5, f.Planes[FrustumNear].Distance, tol)
	assert.InDelta(t, 50, f.Planes[FrustumFar].Distance, 1e-2)
}

func TestExtractFrustumDegeneratePlaneUntouched(t *testing.T) {
	var zero [16]float32
	f := ExtractFrustumFromMatrix(zero[:], DepthZeroToOne)
	for _, pl := range f.Planes {
		assert.Equal(t, Plane{}, pl)
	}
}

func TestPlaneDistanceTo(t *testing.T) {
	pl := Plane{Normal: [3]float32{0, 1, 0}, Distance: -2}
	assert.Equal(t, float32(1), pl.DistanceTo([3]float32{5, 3, -4}))
	assert.Equal(t, float32(-2), pl.DistanceTo([3]float32{0, 0, 0}))
}

func TestIntersectsSphere(t *testing.T) {
	f := ExtractFrustumFromMatrix(IdentityMatrix[:], DepthZeroToOne)

	tests := []struct {
		name   string
		center [3]float32
		radius float32
		want   bool
	}{
		{"inside", [3]float32{0, 0, 0.5}, 0.1, true},
		{"touching left", [3]float32{-1.5, 0, 0.5}, 0.5, true},
		{"outside left", [3]float32{-1.5, 0, 0.5}, 0.4, false},
		{"behind near", [3]float32{0, 0, -0.5}, 0.25, false},
		{"beyond far", [3]float32{0, 0, 3}, 1, false},
		{"enclosing", [3]float32{0, 0, 0.5}, 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.IntersectsSphere(tt.center, tt.radius))
		})
	}
}

func TestFrustumVerticesCornerOrder(t *testing.T) {
	v := FrustumVertices(IdentityMatrix[:], DepthZeroToOne)
	assert.Equal(t, [8][3]float32{
		{-1, -1, 0}, {1, -1, 0}, {-1, 1, 0}, {1, 1, 0},
		{-1, -1, 1}, {1, -1, 1}, {-1, 1, 1}, {1, 1, 1},
	}, v)

	v = FrustumVertices(IdentityMatrix[:], DepthNegOneToOne)
	assert.Equal(t, [3]float32{-1, -1, -1}, v[0])
	assert.Equal(t, [3]float32{1, 1, -1}, v[3])
	assert.Equal(t, [3]float32{1, 1, 1}, v[7])
}

func TestFrustumVerticesPerspective(t *testing.T) {
	var p, inv [16]float32
	Perspective(p[:], math32.Pi/2, 1, 1, 10)
	Invert4(inv[:], p[:])

	v := FrustumVertices(inv[:], DepthZeroToOne)
	assertMatrix(t, []float32{-1, -1, -1}, v[0][:], 1e-4)
	assertMatrix(t, []float32{10, 10, -10}, v[7][:], 1e-3)
}
