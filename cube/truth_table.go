package cube

// entry pairs one input cube with its output cube in insertion order.
type entry struct {
	input  Cube
	output Cube
}

// TruthTable is an ordered, possibly partially-specified and
// incompletely-defined mapping from input cubes to output cubes. Both
// cubes share a fixed width across all entries: nInputs is fixed by the
// first Insert and every later Insert must match it, likewise
// nOutputs.
type TruthTable struct {
	entries  []entry
	index    map[string]int // input.String() -> index into entries, for dedup and Find
	nInputs  int
	nOutputs int

	constant []*bool
	garbage  []bool
}

// New returns an empty truth table. Its width is fixed by the first
// Insert.
func New() *TruthTable {
	return &TruthTable{index: make(map[string]int)}
}

// NInputs returns the fixed input cube width, or 0 if nothing has been
// inserted yet (Clear keeps the width).
func (t *TruthTable) NInputs() int { return t.nInputs }

// NOutputs returns the fixed output cube width, or 0 if nothing has
// been inserted yet (Clear keeps the width).
func (t *TruthTable) NOutputs() int { return t.nOutputs }

// Size returns the number of entries.
func (t *TruthTable) Size() int { return len(t.entries) }

// Insert adds (in, out) to the table. The first call fixes nInputs and
// nOutputs to in.Width()/out.Width(); later calls with mismatched
// widths are rejected. A duplicate input cube (by exact string
// representation, including don't-care positions) is a no-op: the
// first insertion wins.
func (t *TruthTable) Insert(in, out Cube) bool {
	if len(t.entries) == 0 {
		t.nInputs = in.Width()
		t.nOutputs = out.Width()
	} else if in.Width() != t.nInputs || out.Width() != t.nOutputs {
		return false
	}
	key := in.String()
	if _, exists := t.index[key]; exists {
		return false
	}
	t.index[key] = len(t.entries)
	t.entries = append(t.entries, entry{input: in, output: out})
	return true
}

// Entries returns the table's (input, output) pairs in insertion
// order. The caller must not mutate the returned slice's backing
// cubes; cubes are themselves immutable value types.
func (t *TruthTable) Entries() []struct{ Input, Output Cube } {
	out := make([]struct{ Input, Output Cube }, len(t.entries))
	for i, e := range t.entries {
		out[i] = struct{ Input, Output Cube }{Input: e.input, Output: e.output}
	}
	return out
}

// Find looks up the output cube for a fully-concrete input integer,
// matching against don't-care input patterns. Returns the output of
// the first matching entry in insertion order, or false if none match.
func (t *TruthTable) Find(value uint64, width int) (Cube, bool) {
	concrete := FromInteger(value, width)
	for _, e := range t.entries {
		if e.input.Matches(concrete) {
			return e.output, true
		}
	}
	return Cube{}, false
}

// Clear empties the table but preserves its fixed widths and per-line
// metadata capacity.
func (t *TruthTable) Clear() {
	t.entries = nil
	t.index = make(map[string]int)
}

// Constant returns the constant-input flag for input column i, or nil
// if that column is not a constant.
func (t *TruthTable) Constant(i int) *bool {
	if i < 0 || i >= len(t.constant) {
		return nil
	}
	return t.constant[i]
}

// SetConstant marks input column i as fed by a fixed value (or nil to
// clear the flag), growing the backing slice as needed.
func (t *TruthTable) SetConstant(i int, v *bool) {
	t.constant = growConstants(t.constant, i+1)
	t.constant[i] = v
}

// Garbage reports whether output column i is discarded (garbage).
func (t *TruthTable) Garbage(i int) bool {
	if i < 0 || i >= len(t.garbage) {
		return false
	}
	return t.garbage[i]
}

// SetGarbage marks output column i as garbage, growing the backing
// slice as needed.
func (t *TruthTable) SetGarbage(i int, g bool) {
	t.garbage = growBools(t.garbage, i+1)
	t.garbage[i] = g
}

// Extend expands every input cube containing don't-cares into the set
// of concrete assignments it covers, then fills in any concrete input
// integer missing from the resulting table with an all-zero output.
// The table's own nInputs/nOutputs are unchanged; only entries and
// index are rebuilt.
func (t *TruthTable) Extend() {
	if t.nInputs == 0 {
		return
	}
	expanded := New()
	expanded.nInputs = t.nInputs
	expanded.nOutputs = t.nOutputs
	for _, e := range t.entries {
		for _, concreteIn := range e.input.CompleteCubes() {
			expanded.Insert(concreteIn, e.output)
		}
	}
	total := uint64(1) << uint(t.nInputs)
	zeroOut := New(make([]Value, t.nOutputs)...)
	for v := uint64(0); v < total; v++ {
		candidate := FromInteger(v, t.nInputs)
		if _, ok := expanded.index[candidate.String()]; !ok {
			expanded.Insert(candidate, zeroOut)
		}
	}
	expanded.constant = t.constant
	expanded.garbage = t.garbage
	*t = *expanded
}

func growConstants(s []*bool, n int) []*bool {
	if len(s) >= n {
		return s
	}
	grown := make([]*bool, n)
	copy(grown, s)
	return grown
}

func growBools(s []bool, n int) []bool {
	if len(s) >= n {
		return s
	}
	grown := make([]bool, n)
	copy(grown, s)
	return grown
}
