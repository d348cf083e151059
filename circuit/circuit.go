// Package circuit implements the gate container at the heart of the core:
// an ordered gate stream, per-line metadata, an annotation map, and the
// control-line propagation-scope stack that lets the SyReC synthesizer
// express "every gate emitted inside this if/for body also carries this
// extra control" without threading a control set through every call.
package circuit

import "github.com/kegliz/syrecgo/gate"

// GateRef identifies a gate by its position in the circuit's gate stream.
// Gates are only ever appended, never removed or reordered, so a GateRef
// stays valid for the lifetime of the Circuit it came from.
type GateRef int

// Circuit is an ordered sequence of gates plus per-line metadata. It is
// mutated by its owner (typically a synthesizer) over the course of one
// synthesis run and then handed to the caller as a finished artefact.
type Circuit struct {
	numLines int
	gates    []gate.Gate

	inputName  []string
	outputName []string
	constant   []*bool // nil = no constant; non-nil = Some(value)
	garbage    []bool

	annotations       map[GateRef]map[string]string
	globalAnnotations map[string]string

	scopes []*scopeFrame
}

// New returns an empty circuit with zero lines.
func New() *Circuit {
	return &Circuit{
		annotations:       make(map[GateRef]map[string]string),
		globalAnnotations: make(map[string]string),
	}
}

// NumLines returns the number of wires in the circuit.
func (c *Circuit) NumLines() int { return c.numLines }

// SetLines grows or shrinks the line metadata slices to exactly n entries.
// Existing gates are not revalidated - shrinking below a line a gate
// already references leaves that gate dangling; that is the caller's
// responsibility.
func (c *Circuit) SetLines(n int) {
	c.numLines = n
	c.inputName = resize(c.inputName, n, "")
	c.outputName = resize(c.outputName, n, "")
	c.garbage = resizeBool(c.garbage, n, false)
	if len(c.constant) < n {
		grown := make([]*bool, n)
		copy(grown, c.constant)
		c.constant = grown
	} else {
		c.constant = c.constant[:n]
	}
}

// AddLine appends one new line and returns its index.
func (c *Circuit) AddLine(input, output string, constant *bool, garbage bool) gate.Line {
	l := gate.Line(c.numLines)
	c.numLines++
	c.inputName = append(c.inputName, input)
	c.outputName = append(c.outputName, output)
	c.constant = append(c.constant, constant)
	c.garbage = append(c.garbage, garbage)
	return l
}

// InputName, OutputName, Constant and Garbage read a line's metadata.
func (c *Circuit) InputName(l gate.Line) string  { return c.inputName[l] }
func (c *Circuit) OutputName(l gate.Line) string { return c.outputName[l] }
func (c *Circuit) Constant(l gate.Line) *bool    { return c.constant[l] }
func (c *Circuit) Garbage(l gate.Line) bool      { return c.garbage[l] }

// SetInputName, SetOutputName, SetConstant and SetGarbage overwrite a
// line's metadata in place.
func (c *Circuit) SetInputName(l gate.Line, name string)  { c.inputName[l] = name }
func (c *Circuit) SetOutputName(l gate.Line, name string) { c.outputName[l] = name }
func (c *Circuit) SetConstant(l gate.Line, v *bool)       { c.constant[l] = v }
func (c *Circuit) SetGarbage(l gate.Line, g bool)         { c.garbage[l] = g }

// NumGates returns len(Gates()) without an allocation.
func (c *Circuit) NumGates() int { return len(c.gates) }

// Gates returns the gate stream in emission order. The returned slice must
// not be mutated by the caller.
func (c *Circuit) Gates() []gate.Gate { return c.gates }

// Gate looks up a gate by reference.
func (c *Circuit) Gate(ref GateRef) gate.Gate { return c.gates[ref] }

// Annotate attaches key=value to the gate identified by ref.
func (c *Circuit) Annotate(ref GateRef, key, value string) {
	m, ok := c.annotations[ref]
	if !ok {
		m = make(map[string]string)
		c.annotations[ref] = m
	}
	m[key] = value
}

// Annotations returns the annotation map for a gate, or nil if it has
// none.
func (c *Circuit) Annotations(ref GateRef) map[string]string {
	return c.annotations[ref]
}

// SetOrUpdateGlobalAnnotation sets key=value in the global annotation map,
// applied to every gate emitted from now on (not retroactively). Reports
// whether the key already existed.
func (c *Circuit) SetOrUpdateGlobalAnnotation(key, value string) (existed bool) {
	_, existed = c.globalAnnotations[key]
	c.globalAnnotations[key] = value
	return existed
}

// RemoveGlobalAnnotation removes key from the global annotation map.
// Per-gate copies already attached by a prior emission are untouched.
// Reports whether the key existed.
func (c *Circuit) RemoveGlobalAnnotation(key string) (existed bool) {
	_, existed = c.globalAnnotations[key]
	delete(c.globalAnnotations, key)
	return existed
}

func resize(s []string, n int, fill string) []string {
	if len(s) >= n {
		return s[:n]
	}
	grown := make([]string, n)
	copy(grown, s)
	for i := len(s); i < n; i++ {
		grown[i] = fill
	}
	return grown
}

func resizeBool(s []bool, n int, fill bool) []bool {
	if len(s) >= n {
		return s[:n]
	}
	grown := make([]bool, n)
	copy(grown, s)
	for i := len(s); i < n; i++ {
		grown[i] = fill
	}
	return grown
}
