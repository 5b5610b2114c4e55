// Package controller holds the sources of the camera's base matrices. A controller owns one 4x4 matrix
// (model, view or projection), reports when it changed and writes its current value on request.
package controller

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-camera/common"
)

// MatrixController is the capability a camera matrix slot depends on.
//
// Implementations must keep Dirty cheap and free of side effects. WriteInto writes the current value
// and clears the pending dirty state as a side effect.
type MatrixController interface {
	// Dirty reports whether the matrix changed since the last WriteInto.
	//
	// Returns:
	//   - bool: true if a new value is pending
	Dirty() bool

	// WriteInto writes the current matrix into out and clears the dirty state.
	//
	// Parameters:
	//   - out: destination slice of 16 elements, column-major
	WriteInto(out []float32)
}

// identityController produces the identity matrix and is dirty only until its first read.
type identityController struct {
	mu    *sync.Mutex
	dirty bool
}

var _ MatrixController = &identityController{}

// NewIdentityController creates the default controller used for any matrix that has no controller of its own.
//
// Returns:
//   - MatrixController: a controller that always writes the identity matrix
func NewIdentityController() MatrixController {
	return &identityController{mu: &sync.Mutex{}, dirty: true}
}

func (c *identityController) Dirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dirty
}

func (c *identityController) WriteInto(out []float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	common.Identity(out[:16])
	c.dirty = false
}
