// Package ddsynth implements the identity-reshaping synthesis
// algorithm (Algorithm Q): given a matrix decision diagram
// representing a reversible function, it emits a gate sequence that
// transforms the diagram into the identity of the same height, and
// the coding-technique entry points that wrap it for non-reversible
// truth tables.
package ddsynth

import (
	"github.com/kegliz/syrecgo/cube"
	"github.com/kegliz/syrecgo/dd"
)

// pathSignature enumerates the input-bit cubes, width levels, of every
// one-terminal reachable below e; a level the diagram skips appears as
// a don't-care position, so the cubes are not necessarily concrete. At each node along
// the way only the "in" dimension of its 2*out+in child index is
// recorded - by the time Algorithm Q examines a node, every ancestor
// level has already been reduced to diagonal (in == out) shape, so
// the in-bit alone identifies the path taken. A reduced diagram can
// skip levels (don't-care elimination merges them away); a skipped
// level contributes both 0 and 1 to the enumerated set, matching the
// "padded to cur.variable bits" requirement.
func pathSignature(e dd.Edge, levels int) []cube.Cube {
	if levels == 0 {
		if e.IsOneTerminal() {
			return []cube.Cube{cube.New()}
		}
		return nil
	}
	if e.IsZeroTerminal() {
		return nil
	}
	if e.IsOneTerminal() {
		// the diagram ends before `levels` is exhausted: every
		// remaining level is a don't-care, contributing both values.
		return padDontCare(levels)
	}

	node := e.Target
	expected := levels
	if node.Variable() == expected {
		var out []cube.Cube
		for idx := 0; idx < 4; idx++ {
			in := idx % 2
			child := node.Child(idx)
			for _, tail := range pathSignature(child, expected-1) {
				out = append(out, prependBit(in, tail))
			}
		}
		return out
	}

	// the diagram skipped one or more levels above node.Variable():
	// every skipped level is a don't-care.
	var out []cube.Cube
	for _, tail := range pathSignature(e, node.Variable()) {
		out = append(out, padAndAppend(tail, levels-node.Variable())...)
	}
	return out
}

func prependBit(bit int, tail cube.Cube) cube.Cube {
	v := cube.Zero
	if bit == 1 {
		v = cube.One
	}
	return cube.New(append([]cube.Value{v}, tail.Values()...)...)
}

func padDontCare(levels int) []cube.Cube {
	vals := make([]cube.Value, levels)
	for i := range vals {
		vals[i] = cube.DontCare
	}
	return []cube.Cube{cube.New(vals...)}
}

func padAndAppend(tail cube.Cube, extraLevelsAbove int) []cube.Cube {
	vals := make([]cube.Value, extraLevelsAbove)
	for i := range vals {
		vals[i] = cube.DontCare
	}
	return []cube.Cube{cube.New(append(vals, tail.Values()...)...)}
}
