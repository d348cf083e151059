package ddsynth

import (
	"fmt"

	"github.com/kegliz/syrecgo/circuit"
	"github.com/kegliz/syrecgo/cube"
	"github.com/kegliz/syrecgo/dd"
	"github.com/kegliz/syrecgo/encoding"
	"github.com/kegliz/syrecgo/gate"
)

// SynthesizeCodingTechniques realizes a truth table - non-reversible,
// partially specified, or both - as a reversible circuit via the
// coding-technique family: tt's outputs are first encoded into a
// collision-free code (with extra lines if withAdditionalLine, or
// packed into the existing width otherwise), the resulting relation is
// completed into a genuine permutation, that permutation is driven to
// the identity with Reshape, and a final decoding stage recovers tt's
// original output values onto dedicated fresh lines.
func SynthesizeCodingTechniques(tt *cube.TruthTable, withAdditionalLine bool) *circuit.Circuit {
	tt.Extend()
	original := tt.Entries()

	var encoded *cube.TruthTable
	if withAdditionalLine {
		encoded = encoding.EncodeWithAdditionalLines(tt)
	} else {
		encoded = encoding.EncodeWithoutAdditionalLines(tt)
	}
	encoded = resolveDontCare(encoded)

	codeTable := cube.New()
	for i, e := range encoded.Entries() {
		codeTable.Insert(e.Output, original[i].Output)
	}

	n := encoded.NInputs()
	if encoded.NOutputs() > n {
		n = encoded.NOutputs()
	}
	augmented, _, _ := encoding.AugmentWithConstants(encoded, n, false)

	c, lines := newSquareCircuit(n)
	copyLineMetadata(augmented, c, lines, n)

	working := completePermutation(augmented, n)
	m := dd.New()
	root := m.BuildFromTruthTable(working)
	m.IncRef(root)
	Reshape(m, root, n, c, lines)

	for _, l := range lines {
		c.SetGarbage(l, true)
	}
	appendDecoder(c, codeTable, lines)
	return c
}

// SynthesizeOnePass realizes an already-reversible (or already
// width-completable) specification directly, without a separate
// coding/decoding stage: callers whose table has output collisions or
// missing rows should go through SynthesizeCodingTechniques instead,
// since this entry point only closes an input/output width mismatch
// with constant ancilla lines before driving the result to the
// identity.
func SynthesizeOnePass(tt *cube.TruthTable) *circuit.Circuit {
	tt.Extend()
	n := tt.NInputs()
	if tt.NOutputs() > n {
		n = tt.NOutputs()
	}
	augmented, _, _ := encoding.AugmentWithConstants(tt, n, false)

	c, lines := newSquareCircuit(n)
	copyLineMetadata(augmented, c, lines, n)

	working := completePermutation(augmented, n)
	m := dd.New()
	root := m.BuildFromTruthTable(working)
	m.IncRef(root)
	Reshape(m, root, n, c, lines)
	return c
}

func newSquareCircuit(n int) (*circuit.Circuit, []gate.Line) {
	c := circuit.New()
	c.SetLines(n)
	lines := make([]gate.Line, n)
	for i := range lines {
		lines[i] = gate.Line(i)
		c.SetInputName(lines[i], fmt.Sprintf("x%d", i))
		c.SetOutputName(lines[i], fmt.Sprintf("y%d", i))
	}
	return c, lines
}

func copyLineMetadata(tt *cube.TruthTable, c *circuit.Circuit, lines []gate.Line, n int) {
	for i := 0; i < n; i++ {
		if v := tt.Constant(i); v != nil {
			c.SetConstant(lines[i], v)
		}
		if tt.Garbage(i) {
			c.SetGarbage(lines[i], true)
		}
	}
}

func resolveDontCare(t *cube.TruthTable) *cube.TruthTable {
	out := cube.New()
	for _, e := range t.Entries() {
		out.Insert(concretize(e.Input), concretize(e.Output))
	}
	return out
}

func concretize(c cube.Cube) cube.Cube {
	vals := c.Values()
	for i, v := range vals {
		if v == cube.DontCare {
			vals[i] = cube.Zero
		}
	}
	return cube.New(vals...)
}
