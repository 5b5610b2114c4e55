package cull

import (
	"io"
	"log"
	"testing"

	"github.com/Carmen-Shannon/oxy-camera/common"
	"github.com/Carmen-Shannon/oxy-camera/engine/camera"
	"github.com/Carmen-Shannon/oxy-camera/engine/controller"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPerspectiveCamera() camera.Camera {
	var p [16]float32
	common.Perspective(p[:], math32.Pi/2, 1, 1, 10)
	return camera.NewCamera(
		camera.WithLogger(log.New(io.Discard, "", 0)),
		camera.WithController(camera.MatrixProjection, controller.NewStaticController(p)),
	)
}

func TestCullFrame(t *testing.T) {
	c := NewCuller(WithWorkers(2), WithBatchSize(1))
	defer c.Close()

	cam := newPerspectiveCamera()
	spheres := []Sphere{
		{Center: [3]float32{0, 0, -5}, Radius: 0.5},
		{Center: [3]float32{0, 0, 5}, Radius: 0.5},
		{Center: [3]float32{0, 0, -20}, Radius: 1},
		{Center: [3]float32{0, 0, -11}, Radius: 2},
	}

	visible, err := c.Cull(cam.Camera(), spheres)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false, true}, visible)
}

func TestCullMatchesSerialTest(t *testing.T) {
	c := NewCuller(WithWorkers(3), WithBatchSize(7))
	defer c.Close()

	var p [16]float32
	common.Perspective(p[:], math32.Pi/3, 1.5, 0.5, 40)
	frustum := common.ExtractFrustumFromMatrix(p[:], common.DepthZeroToOne)

	spheres := make([]Sphere, 100)
	for i := range spheres {
		f := float32(i)
		spheres[i] = Sphere{Center: [3]float32{f - 50, (f - 50) / 4, -f / 2}, Radius: 1}
	}

	visible, err := c.CullPlanes(frustum, spheres)
	require.NoError(t, err)
	require.Len(t, visible, len(spheres))
	for i, s := range spheres {
		assert.Equal(t, frustum.IntersectsSphere(s.Center, s.Radius), visible[i], "sphere %d", i)
	}
}

func TestCullEmpty(t *testing.T) {
	c := NewCuller()
	defer c.Close()

	visible, err := c.CullPlanes(common.Frustum{}, nil)
	require.NoError(t, err)
	assert.Empty(t, visible)
}

func TestCullNilFrame(t *testing.T) {
	c := NewCuller()
	defer c.Close()

	_, err := c.Cull(nil, []Sphere{{}})
	assert.Error(t, err)
}

func TestCullAfterClose(t *testing.T) {
	c := NewCuller(WithWorkers(1))
	c.Close()
	c.Close()

	_, err := c.Cull(newPerspectiveCamera().Clip(), []Sphere{{}})
	assert.ErrorIs(t, err, ErrClosed)
	_, err = c.CullPlanes(common.Frustum{}, []Sphere{{}})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestCullerOptionsClamp(t *testing.T) {
	c := NewCuller(WithWorkers(0), WithBatchSize(-3)).(*cullerImpl)
	defer c.Close()

	assert.Equal(t, 1, c.workers)
	assert.Equal(t, 1, c.batchSize)
}
