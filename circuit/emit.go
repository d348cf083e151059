package circuit

import "github.com/kegliz/syrecgo/gate"

// CreateAndAddToffoli emits a two-control Toffoli. Duplicate controls
// (c1 == c2) collapse to a single control.
func (c *Circuit) CreateAndAddToffoli(c1, c2, target gate.Line) (GateRef, bool) {
	return c.createAndAddMultiControlToffoli([]gate.Line{c1, c2}, target)
}

// CreateAndAddCnot emits a single-control Toffoli (a CNOT).
func (c *Circuit) CreateAndAddCnot(control, target gate.Line) (GateRef, bool) {
	return c.createAndAddMultiControlToffoli([]gate.Line{control}, target)
}

// CreateAndAddNot emits a zero-control Toffoli (a NOT).
func (c *Circuit) CreateAndAddNot(target gate.Line) (GateRef, bool) {
	return c.createAndAddMultiControlToffoli(nil, target)
}

// CreateAndAddMultiControlToffoli emits a Toffoli with an arbitrary
// control set.
func (c *Circuit) CreateAndAddMultiControlToffoli(controls []gate.Line, target gate.Line) (GateRef, bool) {
	return c.createAndAddMultiControlToffoli(controls, target)
}

func (c *Circuit) createAndAddMultiControlToffoli(controls []gate.Line, target gate.Line) (GateRef, bool) {
	if !c.inRange(target) || !c.allInRange(controls) {
		return 0, false
	}
	if containsLine(controls, target) {
		return 0, false
	}
	propagated := c.propagated()
	effective := unionWith(propagated, controls)
	if _, overlap := effective[target]; overlap {
		return 0, false
	}
	g := gate.NewToffoli(setToSlice(effective), target)
	return c.append(g), true
}

// CreateAndAddFredkin emits a controlled swap of t1/t2. Its controls come
// entirely from scope propagation - there is no caller-supplied control
// parameter.
func (c *Circuit) CreateAndAddFredkin(t1, t2 gate.Line) (GateRef, bool) {
	if !c.inRange(t1) || !c.inRange(t2) {
		return 0, false
	}
	if t1 == t2 {
		return 0, false
	}
	// Stricter than the general self-referential check: a Fredkin target
	// may not cross a line registered in any active frame, even one a
	// deeper frame has since deregistered.
	allRegistered := c.allRegisteredAcrossFrames()
	if _, cross := allRegistered[t1]; cross {
		return 0, false
	}
	if _, cross := allRegistered[t2]; cross {
		return 0, false
	}
	g := gate.NewFredkin(setToSlice(c.propagated()), t1, t2)
	return c.append(g), true
}

// append records g as a new gate, snapshots the current global
// annotations onto it, and returns its reference.
func (c *Circuit) append(g gate.Gate) GateRef {
	ref := GateRef(len(c.gates))
	c.gates = append(c.gates, g)
	if len(c.globalAnnotations) > 0 {
		snapshot := make(map[string]string, len(c.globalAnnotations))
		for k, v := range c.globalAnnotations {
			snapshot[k] = v
		}
		c.annotations[ref] = snapshot
	}
	return ref
}

func (c *Circuit) inRange(l gate.Line) bool {
	return l >= 0 && int(l) < c.numLines
}

func (c *Circuit) allInRange(ls []gate.Line) bool {
	for _, l := range ls {
		if !c.inRange(l) {
			return false
		}
	}
	return true
}

func containsLine(ls []gate.Line, target gate.Line) bool {
	for _, l := range ls {
		if l == target {
			return true
		}
	}
	return false
}

func unionWith(set map[gate.Line]struct{}, extra []gate.Line) map[gate.Line]struct{} {
	out := make(map[gate.Line]struct{}, len(set)+len(extra))
	for l := range set {
		out[l] = struct{}{}
	}
	for _, l := range extra {
		out[l] = struct{}{}
	}
	return out
}

func setToSlice(set map[gate.Line]struct{}) []gate.Line {
	out := make([]gate.Line, 0, len(set))
	for l := range set {
		out = append(out, l)
	}
	return out
}
