package circuit

import "github.com/kegliz/syrecgo/gate"

// scopeFrame is one level of the control-line propagation-scope stack.
// registered/deregistered are sets of lines local to this frame.
type scopeFrame struct {
	registered   map[gate.Line]struct{}
	deregistered map[gate.Line]struct{}
}

func newScopeFrame() *scopeFrame {
	return &scopeFrame{
		registered:   make(map[gate.Line]struct{}),
		deregistered: make(map[gate.Line]struct{}),
	}
}

// ActivateScope pushes a fresh scope frame.
func (c *Circuit) ActivateScope() {
	c.scopes = append(c.scopes, newScopeFrame())
}

// DeactivateScope pops the current scope frame, restoring whatever
// propagation was visible before it was pushed.
func (c *Circuit) DeactivateScope() {
	if len(c.scopes) == 0 {
		return
	}
	c.scopes = c.scopes[:len(c.scopes)-1]
}

// RegisterControl adds l to the top scope frame's registered set. A no-op
// if l is already registered there.
func (c *Circuit) RegisterControl(l gate.Line) {
	if len(c.scopes) == 0 {
		return
	}
	top := c.scopes[len(c.scopes)-1]
	top.registered[l] = struct{}{}
}

// DeregisterControl masks l's propagation from all outer frames for the
// lifetime of the top frame. It is a no-op if l is not registered in any
// currently active frame.
func (c *Circuit) DeregisterControl(l gate.Line) {
	if len(c.scopes) == 0 {
		return
	}
	if !c.registeredAnywhere(l) {
		return
	}
	top := c.scopes[len(c.scopes)-1]
	top.deregistered[l] = struct{}{}
}

// registeredAnywhere reports whether l is in the registered set of any
// frame currently on the stack, ignoring deregistration.
func (c *Circuit) registeredAnywhere(l gate.Line) bool {
	for _, f := range c.scopes {
		if _, ok := f.registered[l]; ok {
			return true
		}
	}
	return false
}

// allRegisteredAcrossFrames unions the registered sets of every active
// frame, regardless of any inner-frame deregistration. Used only by the
// Fredkin emission rule, which must see a line as "still visible further
// out" even if a deeper frame has locally masked it.
func (c *Circuit) allRegisteredAcrossFrames() map[gate.Line]struct{} {
	out := make(map[gate.Line]struct{})
	for _, f := range c.scopes {
		for l := range f.registered {
			out[l] = struct{}{}
		}
	}
	return out
}

// propagated computes the set of implicitly propagated control lines:
//
//	Propagated = ⋃_f (f.registered \ ⋃_{g deeper than f} g.deregistered)
func (c *Circuit) propagated() map[gate.Line]struct{} {
	out := make(map[gate.Line]struct{})
	deregisteredSoFar := make(map[gate.Line]struct{})
	for i := len(c.scopes) - 1; i >= 0; i-- {
		f := c.scopes[i]
		for l := range f.registered {
			if _, masked := deregisteredSoFar[l]; !masked {
				out[l] = struct{}{}
			}
		}
		for l := range f.deregistered {
			deregisteredSoFar[l] = struct{}{}
		}
	}
	return out
}
