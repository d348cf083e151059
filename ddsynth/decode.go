package ddsynth

import (
	"fmt"

	"github.com/kegliz/syrecgo/circuit"
	"github.com/kegliz/syrecgo/cube"
	"github.com/kegliz/syrecgo/gate"
	"github.com/kegliz/syrecgo/qmc"
)

// appendDecoder adds one fresh line per output bit of codeTable (a
// code -> original-output mapping) and emits, for each such bit, one
// ESOP-minimized multi-control NOT per prime implicant of the code
// values that should set it. codeTable's inputs must be read off the
// same physical lines the reshaped permutation circuit leaves them on.
func appendDecoder(c *circuit.Circuit, codeTable *cube.TruthTable, codeLines []gate.Line) []gate.Line {
	k := codeTable.NOutputs()
	n := codeTable.NInputs()
	outLines := make([]gate.Line, k)
	for bit := 0; bit < k; bit++ {
		outLines[bit] = c.AddLine("", fmt.Sprintf("out%d", bit), nil, false)
	}

	for bit := 0; bit < k; bit++ {
		seen := make(map[uint64]bool)
		var onSet []uint64
		for _, e := range codeTable.Entries() {
			if e.Output.At(bit) != cube.One {
				continue
			}
			for _, concrete := range e.Input.CompleteCubes() {
				v, _ := concrete.ToInteger()
				if !seen[v] {
					seen[v] = true
					onSet = append(onSet, v)
				}
			}
		}
		if len(onSet) == 0 {
			continue
		}
		for _, prime := range qmc.Minimize(onSet, n) {
			emitControlledNot(c, prime, codeLines, outLines[bit])
		}
	}
	return outLines
}
