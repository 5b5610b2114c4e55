// Package cull tests batches of bounding spheres against a camera frame's frustum planes on a worker pool.
package cull

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-camera/common"
	"github.com/Carmen-Shannon/oxy-camera/engine/camera"
)

// Sphere is a bounding sphere expressed in the coordinates of the frame it is tested against.
type Sphere struct {
	Center [3]float32
	Radius float32
}

type cullerImpl struct {
	mu *sync.Mutex

	workers   int
	batchSize int
	pool      worker.DynamicWorkerPool
	closed    bool
}

// Culler decides which spheres intersect a frustum. Sphere batches are spread over a worker pool;
// only a copy of the planes is shared with the workers.
type Culler interface {
	// Cull tests every sphere against the frustum of the given frame.
	// The frame is read on the calling goroutine.
	//
	// Parameters:
	//   - frame: the camera frame the spheres are expressed in
	//   - spheres: the bounding spheres to test
	//
	// Returns:
	//   - []bool: visible[i] reports whether spheres[i] intersects the frustum
	//   - error: error if the culler has been closed
	Cull(frame camera.Frame, spheres []Sphere) ([]bool, error)

	// CullPlanes tests every sphere against an explicit set of planes.
	//
	// Parameters:
	//   - frustum: the frustum planes
	//   - spheres: the bounding spheres to test
	//
	// Returns:
	//   - []bool: visible[i] reports whether spheres[i] intersects the frustum
	//   - error: error if the culler has been closed or a batch failed
	CullPlanes(frustum common.Frustum, spheres []Sphere) ([]bool, error)

	// Close stops the worker pool. Further calls to Cull return an error.
	Close()
}

var _ Culler = &cullerImpl{}

// ErrClosed is returned by Cull and CullPlanes after Close.
var ErrClosed = errors.New("culler is closed")

// NewCuller creates a Culler backed by a dynamic worker pool.
//
// Parameters:
//   - options: functional options to configure the culler
//
// Returns:
//   - Culler: the newly created culler
func NewCuller(options ...CullerBuilderOption) Culler {
	c := &cullerImpl{
		mu:        &sync.Mutex{},
		workers:   4,
		batchSize: 256,
	}
	for _, option := range options {
		option(c)
	}
	// Queue size of 256 batches leaves headroom for large scenes before SubmitTask blocks.
	c.pool = worker.NewDynamicWorkerPool(c.workers, 256, 1*time.Second)
	return c
}

func (c *cullerImpl) Cull(frame camera.Frame, spheres []Sphere) ([]bool, error) {
	if frame == nil {
		return nil, errors.New("cannot cull against a nil frame")
	}
	return c.CullPlanes(frame.Frustum().Planes(), spheres)
}

func (c *cullerImpl) CullPlanes(frustum common.Frustum, spheres []Sphere) ([]bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrClosed
	}

	visible := make([]bool, len(spheres))
	if len(spheres) == 0 {
		return visible, nil
	}

	// pool.Wait tracks the whole pool, so each call waits on its own batches.
	var wg sync.WaitGroup
	var errMu sync.Mutex
	var errs []error
	taskID := 0
	for start := 0; start < len(spheres); start += c.batchSize {
		end := min(start+c.batchSize, len(spheres))
		wg.Add(1)
		id := taskID
		taskID++
		c.pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				defer func() {
					if r := recover(); r != nil {
						errMu.Lock()
						errs = append(errs, fmt.Errorf("cull batch %d: %v", id, r))
						errMu.Unlock()
					}
				}()
				for i := start; i < end; i++ {
					visible[i] = frustum.IntersectsSphere(spheres[i].Center, spheres[i].Radius)
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return visible, nil
}

func (c *cullerImpl) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.pool.Stop()
}
