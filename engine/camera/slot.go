package camera

import (
	"github.com/Carmen-Shannon/oxy-camera/engine/clock"
	"github.com/Carmen-Shannon/oxy-camera/engine/controller"
)

// slot holds one base matrix together with the controller that supplies it.
// version changes exactly once per dirty event and never decreases.
type slot struct {
	name       MatrixName
	matrix     [16]float32
	version    uint64
	controller controller.MatrixController
	clock      *clock.Clock

	// reads counts WriteInto calls made on behalf of this slot.
	reads uint64
}

// newSlot creates a slot and pulls the controller's value once, stamping the first version.
func newSlot(name MatrixName, ctrl controller.MatrixController, c *clock.Clock) *slot {
	s := &slot{name: name, clock: c}
	s.replaceController(ctrl)
	return s
}

// refresh pulls the controller's value if it reports dirty.
// Dirtiness is taken at the controller's word: an unchanged value still gets a new version.
//
// Returns:
//   - uint64: the slot's (possibly updated) version
func (s *slot) refresh() uint64 {
	if s.controller.Dirty() {
		s.pull()
	}
	return s.version
}

// replaceController swaps the controller, pulls its current value and stamps a fresh version.
// A nil controller installs the identity controller.
func (s *slot) replaceController(ctrl controller.MatrixController) {
	if ctrl == nil {
		ctrl = controller.NewIdentityController()
	}
	s.controller = ctrl
	s.pull()
}

// markDirty stamps a fresh version without touching the matrix or the controller.
func (s *slot) markDirty() {
	s.version = s.clock.Tick()
}

func (s *slot) pull() {
	s.controller.WriteInto(s.matrix[:])
	s.reads++
	s.version = s.clock.Tick()
}
