package controller

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-camera/common"
	"github.com/chewxy/math32"
)

// ViewController defines the union interface for view matrix controllers.
// Controllers own positional state (position, target, up) and write the LookAt view matrix
// derived from it. Embeds both orbitController and planarController, enabling orbit and
// planar controls to work simultaneously from a single controller instance.
type ViewController interface {
	MatrixController
	orbitController
	planarController

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z float32)

	// Target returns the look-at point.
	//
	// Returns:
	//   - x, y, z: world-space target position
	Target() (x, y, z float32)

	// Up returns the up vector used to build the view matrix.
	//
	// Returns:
	//   - x, y, z: up vector components
	Up() (x, y, z float32)

	// SetTarget sets the look-at/pivot point and recomputes position from spherical coordinates.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetTarget(x, y, z float32)

	// SetPosition sets the camera's world-space position directly.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetPosition(x, y, z float32)

	// SetUp sets the up vector.
	//
	// Parameters:
	//   - x, y, z: up vector components
	SetUp(x, y, z float32)

	// Zoom adjusts the camera's distance by modifying orbit radius.
	// Positive delta zooms in (closer to target).
	//
	// Parameters:
	//   - delta: zoom amount scaled by ZoomSpeed
	Zoom(delta float32)
}

// orbitController defines orbit-specific control methods.
// Provides third-person orbit controls using spherical coordinates (radius, azimuth, elevation)
// relative to the target/pivot point.
type orbitController interface {
	// OrbitLeft rotates the camera left around the target by one orbit speed step.
	OrbitLeft()

	// OrbitRight rotates the camera right around the target by one orbit speed step.
	OrbitRight()

	// OrbitUp tilts the camera upward by one orbit speed step, clamped to max elevation.
	OrbitUp()

	// OrbitDown tilts the camera downward by one orbit speed step, clamped to min elevation.
	OrbitDown()

	// Radius returns the current orbit radius (distance from target).
	//
	// Returns:
	//   - float32: current distance from target
	Radius() float32

	// SetRadius sets the orbit radius directly, clamped to min/max bounds.
	//
	// Parameters:
	//   - radius: new distance from target
	SetRadius(radius float32)

	// Azimuth returns the current horizontal angle around the Y axis.
	//
	// Returns:
	//   - float32: azimuth in radians
	Azimuth() float32

	// SetAzimuth sets the horizontal angle directly and recomputes position.
	//
	// Parameters:
	//   - azimuth: new horizontal angle in radians
	SetAzimuth(azimuth float32)

	// Elevation returns the current vertical angle from the horizontal plane.
	//
	// Returns:
	//   - float32: elevation in radians
	Elevation() float32

	// SetElevation sets the vertical angle directly, clamped to min/max bounds.
	//
	// Parameters:
	//   - elevation: new vertical angle in radians
	SetElevation(elevation float32)
}

// planarController defines planar translation control methods.
// Panning shifts both position and target by the same offset, preserving the orbit relationship.
type planarController interface {
	// PanRight translates the camera along its local right axis.
	// Positive delta moves right, negative moves left.
	//
	// Parameters:
	//   - delta: pan amount scaled by PanSpeed
	PanRight(delta float32)

	// PanUp translates the camera along its local up axis.
	// Positive delta moves up, negative moves down.
	//
	// Parameters:
	//   - delta: pan amount scaled by PanSpeed
	PanUp(delta float32)

	// PanForward translates the camera along its local forward axis (dolly).
	// Positive delta moves toward the target, negative moves away.
	//
	// Parameters:
	//   - delta: pan amount scaled by PanSpeed
	PanForward(delta float32)
}

// viewControllerImpl is the single implementation of ViewController.
// Orbit methods modify spherical coordinates and recompute position; planar methods translate both
// position and target along local camera axes. Every mutation marks the view matrix dirty.
type viewControllerImpl struct {
	mu *sync.Mutex

	dirty bool

	// Camera position (computed from target + spherical coords)
	position [3]float32
	target   [3]float32
	up       [3]float32

	// Spherical coordinates (offset from target)
	radius    float32
	azimuth   float32 // Horizontal angle around Y axis
	elevation float32 // Vertical angle from horizontal plane

	minRadius    float32
	maxRadius    float32
	minElevation float32
	maxElevation float32

	orbitSpeed float32
	zoomSpeed  float32
	panSpeed   float32
}

var _ ViewController = &viewControllerImpl{}

// NewViewController creates a new view controller with sensible defaults.
// The returned controller supports both orbit and planar controls simultaneously.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - ViewController: the newly created controller
func NewViewController(options ...ViewControllerOption) ViewController {
	cc := &viewControllerImpl{
		mu:     &sync.Mutex{},
		dirty:  true,
		target: [3]float32{0, 0, 0},
		up:     [3]float32{0, 1, 0},

		radius:    10.0,
		azimuth:   0.0,
		elevation: math32.Pi / 6,

		minRadius:    0.1,
		maxRadius:    2000.0,
		minElevation: -(math32.Pi/2 - 0.1),
		maxElevation: math32.Pi/2 - 0.1,

		orbitSpeed: 0.03,
		zoomSpeed:  1.0,
		panSpeed:   1.0,
	}

	for _, option := range options {
		option(cc)
	}

	cc.updatePosition()
	return cc
}

// --- internal helpers ---

// updatePosition recomputes the camera position from spherical coordinates and marks the matrix dirty.
// Caller must hold the mutex.
func (cc *viewControllerImpl) updatePosition() {
	sinElev, cosElev := math32.Sincos(cc.elevation)
	sinAzim, cosAzim := math32.Sincos(cc.azimuth)

	cc.position[0] = cc.target[0] + cc.radius*cosElev*sinAzim
	cc.position[1] = cc.target[1] + cc.radius*sinElev
	cc.position[2] = cc.target[2] + cc.radius*cosElev*cosAzim
	cc.dirty = true
}

// clampRadius keeps the radius inside its bounds.
// Caller must hold the mutex.
func (cc *viewControllerImpl) clampRadius() {
	cc.radius = min(max(cc.radius, cc.minRadius), cc.maxRadius)
}

// localAxes computes the camera's local coordinate axes consistent with the LookAt matrix.
// Returns right (rx,ry,rz), up (ux,uy,uz), and forward (fx,fy,fz) vectors.
// If position and target coincide, all returned components are zero.
// Caller must hold the mutex.
func (cc *viewControllerImpl) localAxes() (rx, ry, rz, ux, uy, uz, fx, fy, fz float32) {
	// backward = normalize(position - target), matching LookAt's z-axis
	bx := cc.position[0] - cc.target[0]
	by := cc.position[1] - cc.target[1]
	bz := cc.position[2] - cc.target[2]
	bLen := math32.Sqrt(bx*bx + by*by + bz*bz)
	if bLen < 1e-8 {
		return
	}
	bx /= bLen
	by /= bLen
	bz /= bLen

	// right = normalize(cross(up, backward))
	wx, wy, wz := cc.up[0], cc.up[1], cc.up[2]
	rx = wy*bz - wz*by
	ry = wz*bx - wx*bz
	rz = wx*by - wy*bx
	rLen := math32.Sqrt(rx*rx + ry*ry + rz*rz)
	if rLen < 1e-8 {
		return 0, 0, 0, 0, 0, 0, 0, 0, 0
	}
	rx /= rLen
	ry /= rLen
	rz /= rLen

	// up = cross(backward, right), matching LookAt's y-axis
	ux = by*rz - bz*ry
	uy = bz*rx - bx*rz
	uz = bx*ry - by*rx

	fx = -bx
	fy = -by
	fz = -bz
	return
}

// translate shifts position and target by the same offset.
// Caller must hold the mutex.
func (cc *viewControllerImpl) translate(x, y, z, offset float32) {
	cc.target[0] += x * offset
	cc.target[1] += y * offset
	cc.target[2] += z * offset
	cc.position[0] += x * offset
	cc.position[1] += y * offset
	cc.position[2] += z * offset
	cc.dirty = true
}

// --- MatrixController ---

func (cc *viewControllerImpl) Dirty() bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.dirty
}

func (cc *viewControllerImpl) WriteInto(out []float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	common.LookAt(out,
		cc.position[0], cc.position[1], cc.position[2],
		cc.target[0], cc.target[1], cc.target[2],
		cc.up[0], cc.up[1], cc.up[2],
	)
	cc.dirty = false
}

// --- ViewController shared methods ---

func (cc *viewControllerImpl) Position() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position[0], cc.position[1], cc.position[2]
}

func (cc *viewControllerImpl) SetPosition(x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.position = [3]float32{x, y, z}
	cc.dirty = true
}

func (cc *viewControllerImpl) Target() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.target[0], cc.target[1], cc.target[2]
}

func (cc *viewControllerImpl) SetTarget(x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.target = [3]float32{x, y, z}
	cc.updatePosition()
}

func (cc *viewControllerImpl) Up() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.up[0], cc.up[1], cc.up[2]
}

func (cc *viewControllerImpl) SetUp(x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.up = [3]float32{x, y, z}
	cc.dirty = true
}

func (cc *viewControllerImpl) Zoom(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.radius -= delta * cc.zoomSpeed
	cc.clampRadius()
	cc.updatePosition()
}

// --- orbitController implementation ---

func (cc *viewControllerImpl) OrbitLeft() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.azimuth -= cc.orbitSpeed
	cc.updatePosition()
}

func (cc *viewControllerImpl) OrbitRight() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.azimuth += cc.orbitSpeed
	cc.updatePosition()
}

func (cc *viewControllerImpl) OrbitUp() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.elevation = min(cc.elevation+cc.orbitSpeed, cc.maxElevation)
	cc.updatePosition()
}

func (cc *viewControllerImpl) OrbitDown() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.elevation = max(cc.elevation-cc.orbitSpeed, cc.minElevation)
	cc.updatePosition()
}

func (cc *viewControllerImpl) Radius() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.radius
}

func (cc *viewControllerImpl) SetRadius(radius float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.radius = radius
	cc.clampRadius()
	cc.updatePosition()
}

func (cc *viewControllerImpl) Azimuth() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.azimuth
}

func (cc *viewControllerImpl) SetAzimuth(azimuth float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.azimuth = azimuth
	cc.updatePosition()
}

func (cc *viewControllerImpl) Elevation() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.elevation
}

func (cc *viewControllerImpl) SetElevation(elevation float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.elevation = min(max(elevation, cc.minElevation), cc.maxElevation)
	cc.updatePosition()
}

// --- planarController implementation ---

func (cc *viewControllerImpl) PanRight(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	rx, ry, rz, _, _, _, _, _, _ := cc.localAxes()
	cc.translate(rx, ry, rz, delta*cc.panSpeed)
}

func (cc *viewControllerImpl) PanUp(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	_, _, _, ux, uy, uz, _, _, _ := cc.localAxes()
	cc.translate(ux, uy, uz, delta*cc.panSpeed)
}

func (cc *viewControllerImpl) PanForward(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	_, _, _, _, _, _, fx, fy, fz := cc.localAxes()
	cc.translate(fx, fy, fz, delta*cc.panSpeed)
}
