package controller

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-camera/common"
)

// TransformController holds a position, Euler rotation and scale and writes the model matrix built from them.
type TransformController interface {
	MatrixController

	// Position returns the translation.
	//
	// Returns:
	//   - x, y, z: translation in world space
	Position() (x, y, z float32)

	// Rotation returns the Euler rotation (applied Y * X * Z).
	//
	// Returns:
	//   - x, y, z: rotation angles in radians
	Rotation() (x, y, z float32)

	// Scale returns the per-axis scale.
	//
	// Returns:
	//   - x, y, z: scale factors
	Scale() (x, y, z float32)

	// SetPosition sets the translation and marks the matrix dirty.
	//
	// Parameters:
	//   - x, y, z: translation in world space
	SetPosition(x, y, z float32)

	// SetRotation sets the Euler rotation and marks the matrix dirty.
	//
	// Parameters:
	//   - x, y, z: rotation angles in radians
	SetRotation(x, y, z float32)

	// SetScale sets the per-axis scale and marks the matrix dirty.
	//
	// Parameters:
	//   - x, y, z: scale factors
	SetScale(x, y, z float32)
}

type transformControllerImpl struct {
	mu *sync.Mutex

	dirty bool

	position [3]float32
	rotation [3]float32
	scale    [3]float32
}

var _ TransformController = &transformControllerImpl{}

// NewTransformController creates a model matrix controller at the origin with no rotation and unit scale.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - TransformController: the newly created controller
func NewTransformController(options ...TransformControllerOption) TransformController {
	tc := &transformControllerImpl{
		mu:    &sync.Mutex{},
		dirty: true,
		scale: [3]float32{1, 1, 1},
	}
	for _, option := range options {
		option(tc)
	}
	return tc
}

func (tc *transformControllerImpl) Dirty() bool {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return tc.dirty
}

func (tc *transformControllerImpl) WriteInto(out []float32) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	common.BuildModelMatrix(out,
		tc.position[0], tc.position[1], tc.position[2],
		tc.rotation[0], tc.rotation[1], tc.rotation[2],
		tc.scale[0], tc.scale[1], tc.scale[2],
	)
	tc.dirty = false
}

func (tc *transformControllerImpl) Position() (x, y, z float32) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return tc.position[0], tc.position[1], tc.position[2]
}

func (tc *transformControllerImpl) Rotation() (x, y, z float32) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return tc.rotation[0], tc.rotation[1], tc.rotation[2]
}

func (tc *transformControllerImpl) Scale() (x, y, z float32) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return tc.scale[0], tc.scale[1], tc.scale[2]
}

func (tc *transformControllerImpl) SetPosition(x, y, z float32) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.position = [3]float32{x, y, z}
	tc.dirty = true
}

func (tc *transformControllerImpl) SetRotation(x, y, z float32) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.rotation = [3]float32{x, y, z}
	tc.dirty = true
}

func (tc *transformControllerImpl) SetScale(x, y, z float32) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.scale = [3]float32{x, y, z}
	tc.dirty = true
}

// TransformControllerOption is a functional option for configuring a TransformController.
type TransformControllerOption func(*transformControllerImpl)

// WithPosition sets the initial translation.
//
// Parameters:
//   - x, y, z: translation in world space
//
// Returns:
//   - TransformControllerOption: functional option to set the translation
func WithPosition(x, y, z float32) TransformControllerOption {
	return func(tc *transformControllerImpl) {
		tc.position = [3]float32{x, y, z}
	}
}

// WithRotation sets the initial Euler rotation.
//
// Parameters:
//   - x, y, z: rotation angles in radians
//
// Returns:
//   - TransformControllerOption: functional option to set the rotation
func WithRotation(x, y, z float32) TransformControllerOption {
	return func(tc *transformControllerImpl) {
		tc.rotation = [3]float32{x, y, z}
	}
}

// WithScale sets the initial per-axis scale.
//
// Parameters:
//   - x, y, z: scale factors
//
// Returns:
//   - TransformControllerOption: functional option to set the scale
func WithScale(x, y, z float32) TransformControllerOption {
	return func(tc *transformControllerImpl) {
		tc.scale = [3]float32{x, y, z}
	}
}
