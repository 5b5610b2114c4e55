package controller

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-camera/common"
	"github.com/chewxy/math32"
)

// ProjectionController holds perspective settings and writes the projection matrix built from them.
type ProjectionController interface {
	MatrixController

	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// SetFov sets the field of view in radians and marks the matrix dirty.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// SetAspect sets the aspect ratio (width / height) and marks the matrix dirty.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetNear sets the near clipping plane distance and marks the matrix dirty.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near float32)

	// SetFar sets the far clipping plane distance and marks the matrix dirty.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far float32)
}

type projectionControllerImpl struct {
	mu *sync.Mutex

	dirty bool

	fov    float32
	aspect float32
	near   float32
	far    float32
}

var _ ProjectionController = &projectionControllerImpl{}

// NewProjectionController creates a perspective projection controller with default settings
// (45 degree fov, aspect 1, near 0.1, far 100).
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - ProjectionController: the newly created controller
func NewProjectionController(options ...ProjectionControllerOption) ProjectionController {
	p := &projectionControllerImpl{
		mu:     &sync.Mutex{},
		dirty:  true,
		fov:    45.0 * (math32.Pi / 180.0), // radians
		aspect: 1.0,
		near:   0.1,
		far:    100.0,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

func (p *projectionControllerImpl) Dirty() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dirty
}

func (p *projectionControllerImpl) WriteInto(out []float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	common.Perspective(out, p.fov, p.aspect, p.near, p.far)
	p.dirty = false
}

func (p *projectionControllerImpl) Fov() float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fov
}

func (p *projectionControllerImpl) Aspect() float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.aspect
}

func (p *projectionControllerImpl) Near() float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.near
}

func (p *projectionControllerImpl) Far() float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.far
}

func (p *projectionControllerImpl) SetFov(fov float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fov = fov
	p.dirty = true
}

func (p *projectionControllerImpl) SetAspect(aspect float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.aspect = aspect
	p.dirty = true
}

func (p *projectionControllerImpl) SetNear(near float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.near = near
	p.dirty = true
}

func (p *projectionControllerImpl) SetFar(far float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.far = far
	p.dirty = true
}

// ProjectionControllerOption is a functional option for configuring a ProjectionController.
type ProjectionControllerOption func(*projectionControllerImpl)

// WithFov sets the vertical field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - ProjectionControllerOption: a function that sets the field of view
func WithFov(fov float32) ProjectionControllerOption {
	return func(p *projectionControllerImpl) {
		p.fov = fov
	}
}

// WithAspect sets the aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - ProjectionControllerOption: a function that sets the aspect ratio
func WithAspect(aspect float32) ProjectionControllerOption {
	return func(p *projectionControllerImpl) {
		p.aspect = aspect
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - ProjectionControllerOption: a function that sets the near plane
func WithNear(near float32) ProjectionControllerOption {
	return func(p *projectionControllerImpl) {
		p.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - ProjectionControllerOption: a function that sets the far plane
func WithFar(far float32) ProjectionControllerOption {
	return func(p *projectionControllerImpl) {
		p.far = far
	}
}
