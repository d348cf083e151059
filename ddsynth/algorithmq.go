package ddsynth

import (
	"github.com/kegliz/syrecgo/circuit"
	"github.com/kegliz/syrecgo/cube"
	"github.com/kegliz/syrecgo/dd"
	"github.com/kegliz/syrecgo/gate"
	"github.com/kegliz/syrecgo/qmc"
)

// Reshape drives root, a height-n permutation diagram managed by m,
// to the identity, appending one multi-control NOT to c per corrective
// step and returning the final (by then identity) edge. lines gives
// the n physical wires in the same top-down order as the diagram's
// variable numbering (lines[0] is variable n, lines[n-1] is variable
// 1).
//
// This is transformation-based synthesis (Miller, Maslov, Dueck: drive
// a permutation to the identity one mismatched row at a time, keeping
// every corrective gate) carried out directly against the decision
// diagram's shape instead of a materialized row table: the control
// pattern above an off-diagonal node is already fixed by the path that
// reached it, and the pattern below it is read off the node's own
// off-diagonal child and compacted with qmc.Minimize instead of
// listing one row per mismatched input.
func Reshape(m *dd.Manager, root dd.Edge, n int, c *circuit.Circuit, lines []gate.Line) dd.Edge {
	working := root
	m.IncRef(working)

	for {
		node, rootPath, offIndex, found := findOffDiagonal(working, cube.New())
		if !found {
			break
		}

		targetVar := node.Target.Variable()
		lowerWidth := targetVar - 1
		lowerControl := minimizedLowerControl(node.Target.Child(offIndex), lowerWidth)

		pattern := make([]cube.Value, n)
		copy(pattern, rootPath.Values())
		pattern[n-targetVar] = cube.DontCare
		copy(pattern[n-targetVar+1:], lowerControl.Values())

		targetLine := lines[n-targetVar]
		emitControlledNot(c, cube.New(pattern...), lines, targetLine)

		gateEdge := buildControlledNot(m, pattern, targetVar, n)
		m.IncRef(gateEdge)
		next := m.Multiply(gateEdge, working)
		m.IncRef(next)
		m.DecRef(working)
		m.DecRef(gateEdge)
		m.GarbageCollect()
		working = next
	}

	return working
}

// findOffDiagonal performs a depth-first, root-first search for the
// first node whose off-diagonal children (index 1 or 2: input and
// output bit disagree) aren't both the zero terminal. rootPath
// accumulates the diagonal bit chosen at each level above the
// returned node, in root-to-node order - the search restarts from the
// root after every gate anyway (a global multiply can touch any node
// through hash-consed sharing), so a depth-first order costs nothing
// over a breadth-first one; it only changes which offending node a
// given pass repairs first.
func findOffDiagonal(e dd.Edge, rootPath cube.Cube) (node dd.Edge, path cube.Cube, offIndex int, found bool) {
	if e.IsTerminal() {
		return dd.Edge{}, cube.Cube{}, 0, false
	}
	n := e.Target
	if !n.Child(1).IsZeroTerminal() {
		return e, rootPath, 1, true
	}
	if !n.Child(2).IsZeroTerminal() {
		return e, rootPath, 2, true
	}
	if t, p, idx, ok := findOffDiagonal(n.Child(0), rootPath.AppendZero()); ok {
		return t, p, idx, true
	}
	return findOffDiagonal(n.Child(3), rootPath.AppendOne())
}

// minimizedLowerControl reads off the set of input patterns reachable
// below an off-diagonal child and returns one ESOP prime cube covering
// part (or all) of it. Only the first prime is used per call: the
// repair loop simply revisits the same node on its next pass if one
// prime wasn't enough, which costs at most one extra gate per
// remaining prime and avoids the risk of two overlapping primes
// double-flipping the same input.
func minimizedLowerControl(child dd.Edge, width int) cube.Cube {
	if width == 0 {
		return cube.New()
	}

	seen := make(map[uint64]bool)
	var onSet []uint64
	for _, sig := range pathSignature(child, width) {
		for _, concrete := range sig.CompleteCubes() {
			v, _ := concrete.ToInteger()
			if !seen[v] {
				seen[v] = true
				onSet = append(onSet, v)
			}
		}
	}

	minimized := qmc.Minimize(onSet, width)
	return minimized[0]
}
