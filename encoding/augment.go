package encoding

import "github.com/kegliz/syrecgo/cube"

// AugmentWithConstants widens every input and output cube of tt to
// width n by prepending constants to the inputs (default) or, when
// appendZero is true, by appending a zero instead. Returns the new
// table along with the number of columns that were added on each
// side, so the caller can mark the corresponding circuit lines
// constant/garbage.
func AugmentWithConstants(tt *cube.TruthTable, n int, appendZero bool) (augmented *cube.TruthTable, addedInputs, addedOutputs int) {
	entries := tt.Entries()
	addedInputs = n - tt.NInputs()
	addedOutputs = n - tt.NOutputs()
	if addedInputs < 0 {
		addedInputs = 0
	}
	if addedOutputs < 0 {
		addedOutputs = 0
	}

	out := cube.New()
	for _, e := range entries {
		in := growCube(e.Input, addedInputs, appendZero)
		output := growCube(e.Output, addedOutputs, appendZero)
		out.Insert(in, output)
	}
	for i := 0; i < addedInputs; i++ {
		out.SetConstant(columnIndex(tt.NInputs(), i, appendZero), constBoolFalse())
	}
	for i := 0; i < addedOutputs; i++ {
		out.SetGarbage(columnIndex(tt.NOutputs(), i, appendZero), true)
	}
	return out, addedInputs, addedOutputs
}

func growCube(c cube.Cube, extra int, appendZero bool) cube.Cube {
	for i := 0; i < extra; i++ {
		if appendZero {
			c = c.AppendZero()
		} else {
			c = c.InsertZero()
		}
	}
	return c
}

// columnIndex maps the i-th added column back to its position in the
// widened cube: appended columns land at the end (original width + i),
// prepended columns land at the front (i), which shifts every
// original column's index by the total added count - but since we
// only need the *added* columns' own indices here, prepended columns
// are simply 0..extra-1.
func columnIndex(originalWidth, i int, appendZero bool) int {
	if appendZero {
		return originalWidth + i
	}
	return i
}

func constBoolFalse() *bool {
	b := false
	return &b
}
