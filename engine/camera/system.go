package camera

// System is one stage of the fixed coordinate pipeline data -> world -> camera -> clip.
// Moving toward SystemClip is the forward direction.
type System int

const (
	SystemData System = iota
	SystemWorld
	SystemCamera
	SystemClip

	systemCount = 4
)

// Systems returns every coordinate system in pipeline order.
//
// Returns:
//   - []System: data, world, camera, clip
func Systems() []System {
	return []System{SystemData, SystemWorld, SystemCamera, SystemClip}
}

func (s System) String() string {
	switch s {
	case SystemData:
		return "data"
	case SystemWorld:
		return "world"
	case SystemCamera:
		return "camera"
	case SystemClip:
		return "clip"
	}
	return "unknown"
}

func (s System) valid() bool {
	return s >= SystemData && s <= SystemClip
}

// MatrixName names one of the three base matrices. Each connects two adjacent systems.
type MatrixName string

const (
	MatrixModel      MatrixName = "model"      // data -> world
	MatrixView       MatrixName = "view"       // world -> camera
	MatrixProjection MatrixName = "projection" // camera -> clip
)

// matrixNames is ordered so that matrixNames[i] maps system i to system i+1.
var matrixNames = [systemCount - 1]MatrixName{MatrixModel, MatrixView, MatrixProjection}

// index returns the slot index of a matrix name, or -1 when the name is unknown.
func (m MatrixName) index() int {
	for i, n := range matrixNames {
		if n == m {
			return i
		}
	}
	return -1
}

// Axis names one of the six signed basis directions of a frame.
type Axis int

const (
	AxisLeft     Axis = iota // -X
	AxisRight                // +X
	AxisUp                   // +Y
	AxisDown                 // -Y
	AxisForward              // -Z, the direction a right-handed camera looks
	AxisBackward             // +Z

	axisCount = 6
)

// component returns the basis column and sign of an axis.
func (a Axis) component() (column int, sign float32) {
	switch a {
	case AxisLeft:
		return 0, -1
	case AxisRight:
		return 0, 1
	case AxisUp:
		return 1, 1
	case AxisDown:
		return 1, -1
	case AxisForward:
		return 2, -1
	default:
		return 2, 1
	}
}

func (a Axis) String() string {
	switch a {
	case AxisLeft:
		return "left"
	case AxisRight:
		return "right"
	case AxisUp:
		return "up"
	case AxisDown:
		return "down"
	case AxisForward:
		return "forward"
	case AxisBackward:
		return "backward"
	}
	return "unknown"
}
