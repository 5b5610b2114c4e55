package camera

import (
	"log"

	"github.com/Carmen-Shannon/oxy-camera/common"
	"github.com/Carmen-Shannon/oxy-camera/engine/clock"
	"github.com/Carmen-Shannon/oxy-camera/engine/controller"
)

type cameraImpl struct {
	clock *clock.Clock

	slots      [systemCount - 1]*slot
	transforms [systemCount][systemCount]*transformNode
	frames     [systemCount]*frameImpl

	reference System
	depth     common.DepthRange
	logger    *log.Logger

	// pending holds controllers supplied through options until the slots are built.
	pending map[MatrixName]controller.MatrixController
}

// Stats is a snapshot of a camera's cache activity.
type Stats struct {
	// Version is the current value of the camera's version clock.
	Version uint64
	// ControllerReads counts WriteInto calls across all base matrices.
	ControllerReads uint64
	// TransformRecomputes counts recomputations of non-identity transform nodes.
	TransformRecomputes uint64
	// DerivedRecomputes counts recomputations of origin, axis and frustum nodes.
	DerivedRecomputes uint64
}

// Camera maintains the model, view and projection matrices and derives, on demand, every
// transform between the data, world, camera and clip coordinate systems.
//
// Evaluation is pull-based: reading an accessor refreshes exactly the cache nodes it depends on,
// and each node recomputes at most once per change of its inputs. Cached buffers are mutated
// during reads, so a Camera must not be used from more than one goroutine at a time without
// external synchronization.
type Camera interface {
	// Data returns the frame of the data (object) coordinate system.
	Data() Frame

	// World returns the frame of the world coordinate system.
	World() Frame

	// Camera returns the frame of the camera (view) coordinate system.
	Camera() Frame

	// Clip returns the frame of the clip coordinate system.
	Clip() Frame

	// Frame returns the frame of the given coordinate system, or nil if s is not one of the four systems.
	//
	// Parameters:
	//   - s: the coordinate system
	//
	// Returns:
	//   - Frame: the frame of s
	Frame(s System) Frame

	// Transform returns the matrix mapping src coordinates into dst coordinates.
	// Unknown systems yield the identity.
	//
	// Parameters:
	//   - src: the source coordinate system
	//   - dst: the target coordinate system
	//
	// Returns:
	//   - [16]float32: the transform (column-major)
	Transform(src, dst System) [16]float32

	// Controller returns the controller currently supplying the named matrix, or nil for an unknown name.
	//
	// Parameters:
	//   - name: the matrix name
	//
	// Returns:
	//   - controller.MatrixController: the installed controller
	Controller(name MatrixName) controller.MatrixController

	// SetController replaces the controller of the named matrix, pulls its value immediately and
	// invalidates every dependent node. A nil controller installs the identity controller.
	// Unknown names are ignored.
	//
	// Parameters:
	//   - name: the matrix name
	//   - ctrl: the new controller
	SetController(name MatrixName, ctrl controller.MatrixController)

	// MarkDirty invalidates every node depending on the named matrix without reading its controller.
	// Unknown names are ignored.
	//
	// Parameters:
	//   - name: the matrix name
	MarkDirty(name MatrixName)

	// Stats returns a snapshot of the cache counters.
	//
	// Returns:
	//   - Stats: the counters
	Stats() Stats
}

var _ Camera = &cameraImpl{}

// NewCamera creates a Camera. Matrices without a controller use the identity controller.
// Every controller is read exactly once during construction.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		clock:     clock.NewClock(),
		reference: SystemClip,
		depth:     common.DepthZeroToOne,
		logger:    log.Default(),
		pending:   make(map[MatrixName]controller.MatrixController),
	}
	for _, option := range options {
		option(c)
	}

	for i, name := range matrixNames {
		c.slots[i] = newSlot(name, c.pending[name], c.clock)
	}
	c.pending = nil

	c.transforms = buildTransforms(c.slots, c.logger)
	for _, s := range Systems() {
		c.frames[s] = newFrame(s, &c.transforms, c.reference, c.depth)
	}
	return c
}

func (c *cameraImpl) Data() Frame {
	return c.frames[SystemData]
}

func (c *cameraImpl) World() Frame {
	return c.frames[SystemWorld]
}

func (c *cameraImpl) Camera() Frame {
	return c.frames[SystemCamera]
}

func (c *cameraImpl) Clip() Frame {
	return c.frames[SystemClip]
}

func (c *cameraImpl) Frame(s System) Frame {
	if !s.valid() {
		return nil
	}
	return c.frames[s]
}

func (c *cameraImpl) Transform(src, dst System) [16]float32 {
	if !src.valid() || !dst.valid() {
		return common.IdentityMatrix
	}
	return c.transforms[src][dst].Value()
}

func (c *cameraImpl) Controller(name MatrixName) controller.MatrixController {
	i := name.index()
	if i < 0 {
		return nil
	}
	return c.slots[i].controller
}

func (c *cameraImpl) SetController(name MatrixName, ctrl controller.MatrixController) {
	i := name.index()
	if i < 0 {
		c.logger.Printf("[Camera] ignoring SetController for unknown matrix %q", name)
		return
	}
	c.slots[i].replaceController(ctrl)
}

func (c *cameraImpl) MarkDirty(name MatrixName) {
	i := name.index()
	if i < 0 {
		c.logger.Printf("[Camera] ignoring MarkDirty for unknown matrix %q", name)
		return
	}
	c.slots[i].markDirty()
}

func (c *cameraImpl) Stats() Stats {
	st := Stats{Version: c.clock.Current()}
	for _, s := range c.slots {
		st.ControllerReads += s.reads
	}
	for i := range c.transforms {
		for _, n := range c.transforms[i] {
			st.TransformRecomputes += n.recomputes
		}
	}
	for _, f := range c.frames {
		st.DerivedRecomputes += f.origin.recomputes
		for _, a := range f.axes {
			st.DerivedRecomputes += a.recomputes
		}
		st.DerivedRecomputes += f.frustum.planes.recomputes + f.frustum.vertices.recomputes
	}
	return st
}
