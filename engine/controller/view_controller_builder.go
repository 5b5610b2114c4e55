package controller

// ViewControllerOption is a functional option for configuring a ViewController.
type ViewControllerOption func(*viewControllerImpl)

// WithRadius sets the initial orbit radius (distance from target).
//
// Parameters:
//   - radius: distance from the orbit target
//
// Returns:
//   - ViewControllerOption: functional option to set the radius
func WithRadius(radius float32) ViewControllerOption {
	return func(cc *viewControllerImpl) {
		cc.radius = radius
	}
}

// WithAzimuth sets the initial horizontal angle around the Y axis.
//
// Parameters:
//   - azimuth: horizontal angle in radians (0 = +Z axis)
//
// Returns:
//   - ViewControllerOption: functional option to set the azimuth
func WithAzimuth(azimuth float32) ViewControllerOption {
	return func(cc *viewControllerImpl) {
		cc.azimuth = azimuth
	}
}

// WithElevation sets the initial vertical angle from the horizontal plane.
//
// Parameters:
//   - elevation: vertical angle in radians (0 = horizontal)
//
// Returns:
//   - ViewControllerOption: functional option to set the elevation
func WithElevation(elevation float32) ViewControllerOption {
	return func(cc *viewControllerImpl) {
		cc.elevation = elevation
	}
}

// WithTarget sets the look-at/pivot point.
//
// Parameters:
//   - x, y, z: coordinates of the target
//
// Returns:
//   - ViewControllerOption: functional option to set the target position
func WithTarget(x, y, z float32) ViewControllerOption {
	return func(cc *viewControllerImpl) {
		cc.target = [3]float32{x, y, z}
	}
}

// WithUp sets the up vector used by the LookAt view matrix.
//
// Parameters:
//   - x, y, z: up vector components
//
// Returns:
//   - ViewControllerOption: functional option to set the up vector
func WithUp(x, y, z float32) ViewControllerOption {
	return func(cc *viewControllerImpl) {
		cc.up = [3]float32{x, y, z}
	}
}

// WithRadiusBounds sets the minimum and maximum orbit radius.
//
// Parameters:
//   - min: minimum zoom distance
//   - max: maximum zoom distance
//
// Returns:
//   - ViewControllerOption: functional option to set radius bounds
func WithRadiusBounds(min, max float32) ViewControllerOption {
	return func(cc *viewControllerImpl) {
		cc.minRadius = min
		cc.maxRadius = max
	}
}

// WithElevationBounds sets the minimum and maximum elevation angles.
//
// Parameters:
//   - min: minimum vertical angle in radians
//   - max: maximum vertical angle in radians (keep below Pi/2 to avoid flipping over)
//
// Returns:
//   - ViewControllerOption: functional option to set elevation bounds
func WithElevationBounds(min, max float32) ViewControllerOption {
	return func(cc *viewControllerImpl) {
		cc.minElevation = min
		cc.maxElevation = max
	}
}

// WithOrbitSpeed sets the orbit step size.
//
// Parameters:
//   - speed: radians per orbit call
//
// Returns:
//   - ViewControllerOption: functional option to set orbit speed
func WithOrbitSpeed(speed float32) ViewControllerOption {
	return func(cc *viewControllerImpl) {
		cc.orbitSpeed = speed
	}
}

// WithZoomSpeed sets the zoom speed multiplier.
//
// Parameters:
//   - speed: multiplier for zoom input
//
// Returns:
//   - ViewControllerOption: functional option to set zoom speed
func WithZoomSpeed(speed float32) ViewControllerOption {
	return func(cc *viewControllerImpl) {
		cc.zoomSpeed = speed
	}
}

// WithPanSpeed sets the planar pan speed multiplier.
//
// Parameters:
//   - speed: multiplier for pan input
//
// Returns:
//   - ViewControllerOption: functional option to set pan speed
func WithPanSpeed(speed float32) ViewControllerOption {
	return func(cc *viewControllerImpl) {
		cc.panSpeed = speed
	}
}
