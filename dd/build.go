package dd

import "github.com/kegliz/syrecgo/cube"

// row is one (input, output) pair reduced to the bits still under
// consideration at the current recursion level.
type row struct {
	input  cube.Cube
	output cube.Cube
}

// BuildFromTruthTable constructs the diagram representing tt's
// input/output relation. The table should already be extended (every
// concrete input present) and have equal input/output width, the
// precondition for the result to denote a square 0/1 relation.
func (m *Manager) BuildFromTruthTable(tt *cube.TruthTable) Edge {
	n := tt.NInputs()
	rows := make([]row, 0, tt.Size())
	for _, e := range tt.Entries() {
		rows = append(rows, row{input: e.Input, output: e.Output})
	}
	return m.build(rows, n)
}

// build recurses on the number of bits remaining, n. At n = 0 a
// nonempty row set collapses to the one-terminal (some (input,output)
// pair survived down to this leaf); an empty set is the zero-terminal.
// Otherwise every row is expanded over its own don't-cares (input and
// output) and routed into one of four quadrants by the MSB of its
// input/output bit pair, recursed on, and combined into a node at
// level n.
func (m *Manager) build(rows []row, n int) Edge {
	if n == 0 {
		if len(rows) == 0 {
			return ZeroTerminal
		}
		return OneTerminal
	}

	var sub [4][]row
	for _, r := range rows {
		for _, concreteIn := range r.input.CompleteCubes() {
			for _, concreteOut := range r.output.CompleteCubes() {
				msbIn := bitAt(concreteIn, 0)
				msbOut := bitAt(concreteOut, 0)
				idx := 2*msbOut + msbIn
				sub[idx] = append(sub[idx], row{input: dropMSB(concreteIn), output: dropMSB(concreteOut)})
			}
		}
	}

	var children [4]Edge
	for i := 0; i < 4; i++ {
		children[i] = m.build(sub[i], n-1)
	}
	return m.MakeNode(n, children)
}

func bitAt(c cube.Cube, pos int) int {
	if c.At(pos) == cube.One {
		return 1
	}
	return 0
}

func dropMSB(c cube.Cube) cube.Cube {
	if c.Width() == 0 {
		return c
	}
	return cube.New(c.Values()[1:]...)
}
