// Package clock provides the version counter shared by every cache node of one camera.
package clock

import (
	"math"
)

// Initial is the value a new Clock starts at. The first Tick returns Initial+1, so any cache
// node whose computed version is still zero is stale against every dependency.
const Initial uint64 = 1

// Clock is a monotonically increasing version counter. Every mutation event is stamped with the
// value returned by one call to Tick. A Clock is owned by a single camera and is not safe for
// concurrent use.
type Clock struct {
	counter uint64
}

// NewClock creates a Clock positioned at Initial.
//
// Returns:
//   - *Clock: the newly created clock
func NewClock() *Clock {
	return &Clock{counter: Initial}
}

// Tick advances the clock and returns the new version.
// Wrapping around would make stale caches look fresh, so overflow panics instead.
//
// Returns:
//   - uint64: the new version, strictly greater than every version returned before
func (c *Clock) Tick() uint64 {
	if c.counter == math.MaxUint64 {
		panic("clock: version counter overflow")
	}
	c.counter++
	return c.counter
}

// Current returns the most recently issued version without advancing the clock.
//
// Returns:
//   - uint64: the current version
func (c *Clock) Current() uint64 {
	return c.counter
}
