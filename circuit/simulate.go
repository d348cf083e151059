package circuit

import "github.com/kegliz/syrecgo/gate"

// Simulate runs the gate stream once over a full assignment of line
// values and returns the resulting assignment. This is a plain
// bit-flipping evaluator; there is no statevector backend here.
func (c *Circuit) Simulate(input []bool) []bool {
	values := make([]bool, c.numLines)
	copy(values, input)
	for _, g := range c.gates {
		g.ApplyIfEnabled(values)
	}
	return values
}

// Reverse returns a new Circuit whose gate stream is the structural
// inverse of c: gates in reverse order. Every gate this core emits
// (Toffoli, Fredkin) is self-inverse, so reversing the order alone
// suffices - this is the circuit-level analogue of a SyReC uncall.
func (c *Circuit) Reverse() *Circuit {
	r := New()
	r.SetLines(c.numLines)
	for i := 0; i < c.numLines; i++ {
		l := gate.Line(i)
		r.SetInputName(l, c.outputName[i])
		r.SetOutputName(l, c.inputName[i])
		r.SetConstant(l, c.constant[i])
		r.SetGarbage(l, c.garbage[i])
	}
	for i := len(c.gates) - 1; i >= 0; i-- {
		r.gates = append(r.gates, c.gates[i])
	}
	return r
}
