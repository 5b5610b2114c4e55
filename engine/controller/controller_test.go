package controller

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-camera/common"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-5

func TestIdentityControllerIsDirtyUntilFirstRead(t *testing.T) {
	c := NewIdentityController()
	assert.True(t, c.Dirty())

	m := [16]float32{9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9}
	c.WriteInto(m[:])
	assert.Equal(t, common.IdentityMatrix, m)
	assert.False(t, c.Dirty())
}

func TestStaticControllerSetMarksDirty(t *testing.T) {
	c := NewStaticController(common.IdentityMatrix)
	assert.False(t, c.Dirty())

	c.Set(common.IdentityMatrix)
	assert.True(t, c.Dirty())

	var m [16]float32
	c.WriteInto(m[:])
	assert.Equal(t, common.IdentityMatrix, m)
	assert.False(t, c.Dirty())
	assert.Equal(t, 1, c.Reads())

	next := [16]float32{2, 0, 0, 0, 0, 2, 0, 0, 0, 0, 2, 0, 1, 2, 3, 1}
	c.Set(next)
	assert.Equal(t, next, c.Matrix())
	c.WriteInto(m[:])
	assert.Equal(t, next, m)
	assert.Equal(t, 2, c.Reads())
}

func TestViewControllerWritesLookAt(t *testing.T) {
	c := NewViewController(WithRadius(5), WithElevation(0), WithAzimuth(0))
	assert.True(t, c.Dirty())

	x, y, z := c.Position()
	assert.InDelta(t, 0, x, tol)
	assert.InDelta(t, 0, y, tol)
	assert.InDelta(t, 5, z, tol)

	var m [16]float32
	c.WriteInto(m[:])
	assert.False(t, c.Dirty())

	// The eye maps to the view space origin and the target lies straight ahead.
	ex, ey, ez, ew := common.TransformPoint(m[:], x, y, z, 1)
	assert.InDelta(t, 0, ex, tol)
	assert.InDelta(t, 0, ey, tol)
	assert.InDelta(t, 0, ez, tol)
	assert.InDelta(t, 1, ew, tol)

	_, _, tz, _ := common.TransformPoint(m[:], 0, 0, 0, 1)
	assert.InDelta(t, -5, tz, tol)
}

func TestViewControllerMutationsMarkDirty(t *testing.T) {
	c := NewViewController(WithRadius(10), WithRadiusBounds(2, 20), WithElevationBounds(-1, 1), WithOrbitSpeed(0.5))
	var m [16]float32

	mutations := map[string]func(){
		"OrbitLeft":    c.OrbitLeft,
		"OrbitRight":   c.OrbitRight,
		"OrbitUp":      c.OrbitUp,
		"OrbitDown":    c.OrbitDown,
		"Zoom":         func() { c.Zoom(1) },
		"SetRadius":    func() { c.SetRadius(4) },
		"SetAzimuth":   func() { c.SetAzimuth(1) },
		"SetElevation": func() { c.SetElevation(0.2) },
		"SetTarget":    func() { c.SetTarget(1, 2, 3) },
		"SetPosition":  func() { c.SetPosition(4, 5, 6) },
		"SetUp":        func() { c.SetUp(0, 1, 0) },
		"PanRight":     func() { c.PanRight(1) },
		"PanUp":        func() { c.PanUp(1) },
		"PanForward":   func() { c.PanForward(1) },
	}
	for name, mutate := range mutations {
		c.WriteInto(m[:])
		assert.False(t, c.Dirty(), name)
		mutate()
		assert.True(t, c.Dirty(), name)
	}
}

func TestViewControllerClamps(t *testing.T) {
	c := NewViewController(WithRadius(10), WithRadiusBounds(2, 20), WithElevationBounds(-1, 1), WithOrbitSpeed(0.75))

	c.SetRadius(100)
	assert.Equal(t, float32(20), c.Radius())
	c.Zoom(1000)
	assert.Equal(t, float32(2), c.Radius())

	c.SetElevation(3)
	assert.Equal(t, float32(1), c.Elevation())
	c.OrbitDown()
	c.OrbitDown()
	c.OrbitDown()
	assert.Equal(t, float32(-1), c.Elevation())
	c.OrbitUp()
	assert.InDelta(t, -0.25, c.Elevation(), tol)
}

func TestViewControllerPanPreservesOffset(t *testing.T) {
	c := NewViewController(WithRadius(5), WithElevation(0), WithPanSpeed(2))
	c.PanRight(1)

	px, py, pz := c.Position()
	tx, ty, tz := c.Target()
	assert.InDelta(t, 2, px, tol)
	assert.InDelta(t, 2, tx, tol)
	assert.InDelta(t, 0, py-ty, tol)
	assert.InDelta(t, 5, pz-tz, tol)

	c.PanForward(1)
	_, _, pz2 := c.Position()
	assert.InDelta(t, pz-2, pz2, tol)
}

func TestProjectionControllerWritesPerspective(t *testing.T) {
	c := NewProjectionController(WithFov(math32.Pi/2), WithAspect(2), WithNear(1), WithFar(10))
	assert.True(t, c.Dirty())
	assert.Equal(t, float32(2), c.Aspect())
	assert.Equal(t, float32(1), c.Near())
	assert.Equal(t, float32(10), c.Far())
	assert.InDelta(t, math32.Pi/2, c.Fov(), tol)

	var m, expected [16]float32
	c.WriteInto(m[:])
	common.Perspective(expected[:], math32.Pi/2, 2, 1, 10)
	assert.Equal(t, expected, m)
	assert.False(t, c.Dirty())

	for _, set := range []func(){
		func() { c.SetFov(1) },
		func() { c.SetAspect(1) },
		func() { c.SetNear(0.5) },
		func() { c.SetFar(50) },
	} {
		set()
		assert.True(t, c.Dirty())
		c.WriteInto(m[:])
	}
}

func TestTransformControllerWritesModelMatrix(t *testing.T) {
	c := NewTransformController(WithPosition(1, 2, 3), WithScale(2, 2, 2))
	assert.True(t, c.Dirty())

	var m [16]float32
	c.WriteInto(m[:])
	assert.Equal(t, [16]float32{2, 0, 0, 0, 0, 2, 0, 0, 0, 0, 2, 0, 1, 2, 3, 1}, m)
	assert.False(t, c.Dirty())

	c.SetRotation(0, math32.Pi/2, 0)
	assert.True(t, c.Dirty())
	c.WriteInto(m[:])
	// +X rotates onto -Z about the Y axis.
	x, y, z, _ := common.TransformPoint(m[:], 1, 0, 0, 0)
	assert.InDelta(t, 0, x, tol)
	assert.InDelta(t, 0, y, tol)
	assert.InDelta(t, -2, z, tol)

	c.SetPosition(0, 0, 0)
	assert.True(t, c.Dirty())
	c.WriteInto(m[:])
	c.SetScale(1, 1, 1)
	assert.True(t, c.Dirty())

	px, py, pz := c.Position()
	assert.Equal(t, [3]float32{0, 0, 0}, [3]float32{px, py, pz})
	_, ry, _ := c.Rotation()
	assert.InDelta(t, math32.Pi/2, ry, tol)
	sx, _, _ := c.Scale()
	assert.Equal(t, float32(1), sx)
}
