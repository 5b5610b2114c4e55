package controller

import (
	"sync"
)

// StaticController holds an explicitly assigned matrix. Every Set marks it dirty, even when the new
// value equals the old one.
type StaticController interface {
	MatrixController

	// Set replaces the held matrix and marks the controller dirty.
	//
	// Parameters:
	//   - m: the new matrix (column-major)
	Set(m [16]float32)

	// Matrix returns the held matrix.
	//
	// Returns:
	//   - [16]float32: the current matrix (column-major)
	Matrix() [16]float32

	// Reads returns how many times WriteInto has been called.
	//
	// Returns:
	//   - int: the number of reads so far
	Reads() int
}

type staticController struct {
	mu     *sync.Mutex
	matrix [16]float32
	dirty  bool
	reads  int
}

var _ StaticController = &staticController{}

// NewStaticController creates a controller holding the given matrix. The controller starts clean;
// whoever installs it pulls its value once regardless.
//
// Parameters:
//   - m: the initial matrix (column-major)
//
// Returns:
//   - StaticController: the newly created controller
func NewStaticController(m [16]float32) StaticController {
	return &staticController{mu: &sync.Mutex{}, matrix: m}
}

func (c *staticController) Dirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dirty
}

func (c *staticController) WriteInto(out []float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	copy(out[:16], c.matrix[:])
	c.dirty = false
	c.reads++
}

func (c *staticController) Set(m [16]float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.matrix = m
	c.dirty = true
}

func (c *staticController) Matrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.matrix
}

func (c *staticController) Reads() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reads
}
