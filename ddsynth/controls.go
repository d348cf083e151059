package ddsynth

import (
	"github.com/kegliz/syrecgo/circuit"
	"github.com/kegliz/syrecgo/cube"
	"github.com/kegliz/syrecgo/gate"
)

// emitControlledNot emits one multi-control NOT on target, with
// controls drawn from pattern (a ternary cube over the given lines,
// MSB first): a concrete 0 becomes a negative control (sandwiched
// between two NOTs so the gate fires when the line reads 0), a
// concrete 1 a positive control, and a don't-care contributes no
// control at all.
func emitControlledNot(c *circuit.Circuit, pattern cube.Cube, lines []gate.Line, target gate.Line) {
	var positive, negative []gate.Line
	for i, l := range lines {
		switch pattern.At(i) {
		case cube.One:
			positive = append(positive, l)
		case cube.Zero:
			negative = append(negative, l)
		}
	}
	for _, l := range negative {
		c.CreateAndAddNot(l)
	}
	controls := append(append([]gate.Line(nil), positive...), negative...)
	c.CreateAndAddMultiControlToffoli(controls, target)
	for _, l := range negative {
		c.CreateAndAddNot(l)
	}
}
