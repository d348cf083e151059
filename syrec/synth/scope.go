package synth

import "github.com/kegliz/syrecgo/gate"

// withControl runs fn with l registered as an extra control for every
// gate fn emits (on top of whatever enclosing If/For scopes already
// propagate), then restores the circuit's control stack to its prior
// state - a temporary addition rather than a mutation of whatever
// frame was already active.
func (s *Synth) withControl(l gate.Line, fn func() bool) bool {
	return s.withControls([]gate.Line{l}, fn)
}

// withControls is withControl for a whole set of lines at once.
func (s *Synth) withControls(ls []gate.Line, fn func() bool) bool {
	s.Circuit.ActivateScope()
	for _, l := range ls {
		s.Circuit.RegisterControl(l)
	}
	ok := fn()
	s.Circuit.DeactivateScope()
	return ok
}

// withoutControl runs fn with l masked out of propagation even though
// an enclosing scope registered it (e.g. flipping a line that is
// itself the active control of an enclosing If), then restores
// whatever that enclosing scope was propagating.
func (s *Synth) withoutControl(l gate.Line, fn func() bool) bool {
	s.Circuit.ActivateScope()
	s.Circuit.DeregisterControl(l)
	ok := fn()
	s.Circuit.DeactivateScope()
	return ok
}
