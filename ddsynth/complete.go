package ddsynth

import "github.com/kegliz/syrecgo/cube"

// completePermutation extends a partial, input-injective n-bit to
// n-bit table into a full permutation over all 2^n values: every
// input value already present keeps its assigned output, and every
// absent input value is paired, in ascending order, with an output
// value no present entry already uses. Because the table is
// input-injective by construction (it comes from an encoding pass
// that never reuses an input, widened with fresh constant-valued
// columns), the free-input and free-output sets are always the same
// size, so this always produces a genuine bijection.
func completePermutation(tt *cube.TruthTable, n int) *cube.TruthTable {
	total := uint64(1) << uint(n)
	usedIn := make(map[uint64]bool, tt.Size())
	usedOut := make(map[uint64]bool, tt.Size())

	out := cube.New()
	for _, e := range tt.Entries() {
		iv, _ := e.Input.ToInteger()
		ov, _ := e.Output.ToInteger()
		usedIn[iv] = true
		usedOut[ov] = true
		out.Insert(e.Input, e.Output)
	}

	var freeOut []uint64
	for v := uint64(0); v < total; v++ {
		if !usedOut[v] {
			freeOut = append(freeOut, v)
		}
	}

	idx := 0
	for v := uint64(0); v < total; v++ {
		if usedIn[v] {
			continue
		}
		out.Insert(cube.FromInteger(v, n), cube.FromInteger(freeOut[idx], n))
		idx++
	}
	return out
}
