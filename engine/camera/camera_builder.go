package camera

import (
	"log"

	"github.com/Carmen-Shannon/oxy-camera/common"
	"github.com/Carmen-Shannon/oxy-camera/engine/controller"
)

// CameraBuilderOption is a functional option for configuring a Camera.
// Options are applied before any controller is read.
type CameraBuilderOption func(*cameraImpl)

// WithController sets the controller supplying one base matrix. Unknown names are ignored.
//
// Parameters:
//   - name: the matrix name (model, view or projection)
//   - ctrl: the controller to attach
//
// Returns:
//   - CameraBuilderOption: functional option to set the controller
func WithController(name MatrixName, ctrl controller.MatrixController) CameraBuilderOption {
	return func(c *cameraImpl) {
		if name.index() < 0 {
			c.logger.Printf("[Camera] ignoring controller for unknown matrix %q", name)
			return
		}
		c.pending[name] = ctrl
	}
}

// WithControllers sets the controllers of several base matrices at once. Missing entries keep the
// identity controller and unknown names are ignored.
//
// Parameters:
//   - controllers: mapping of matrix name to controller
//
// Returns:
//   - CameraBuilderOption: functional option to set the controllers
func WithControllers(controllers map[MatrixName]controller.MatrixController) CameraBuilderOption {
	return func(c *cameraImpl) {
		for name, ctrl := range controllers {
			WithController(name, ctrl)(c)
		}
	}
}

// WithReference sets the system whose origin and axes each frame's Origin and Axis accessors report.
// Defaults to SystemClip.
//
// Parameters:
//   - s: the reference coordinate system
//
// Returns:
//   - CameraBuilderOption: functional option to set the reference system
func WithReference(s System) CameraBuilderOption {
	return func(c *cameraImpl) {
		if s.valid() {
			c.reference = s
		}
	}
}

// WithDepthRange sets the clip space depth convention used for frustum planes and vertices.
// Defaults to common.DepthZeroToOne.
//
// Parameters:
//   - depth: the depth range
//
// Returns:
//   - CameraBuilderOption: functional option to set the depth range
func WithDepthRange(depth common.DepthRange) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.depth = depth
	}
}

// WithLogger sets the logger used for ignored operations and singular matrices.
// Defaults to log.Default().
//
// Parameters:
//   - logger: the logger to use
//
// Returns:
//   - CameraBuilderOption: functional option to set the logger
func WithLogger(logger *log.Logger) CameraBuilderOption {
	return func(c *cameraImpl) {
		if logger != nil {
			c.logger = logger
		}
	}
}
