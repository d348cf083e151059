package ddsynth

import (
	"testing"

	"github.com/kegliz/syrecgo/circuit"
	"github.com/kegliz/syrecgo/cube"
	"github.com/kegliz/syrecgo/dd"
	"github.com/kegliz/syrecgo/gate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bitsOf(s string) cube.Cube {
	vals := make([]cube.Value, len(s))
	for i, r := range s {
		if r == '1' {
			vals[i] = cube.One
		} else {
			vals[i] = cube.Zero
		}
	}
	return cube.New(vals...)
}

func swapTable(t *testing.T) *cube.TruthTable {
	t.Helper()
	tt := cube.New()
	rows := [][2]string{{"00", "00"}, {"01", "10"}, {"10", "01"}, {"11", "11"}}
	for _, r := range rows {
		require.True(t, tt.Insert(bitsOf(r[0]), bitsOf(r[1])))
	}
	return tt
}

func TestReshapeDrivesSwapPermutationToIdentity(t *testing.T) {
	m := dd.New()
	tt := swapTable(t)
	root := m.BuildFromTruthTable(tt)
	m.IncRef(root)

	c := circuit.New()
	c.SetLines(2)
	lines := []gate.Line{0, 1}

	final := Reshape(m, root, 2, c, lines)
	assert.True(t, m.IsIdentity(final))

	for _, in := range [][2]bool{{false, false}, {false, true}, {true, false}, {true, true}} {
		got := c.Simulate([]bool{in[0], in[1]})
		assert.Equal(t, []bool{in[1], in[0]}, got, "input %v", in)
	}
}

func TestReshapeLeavesAlreadyIdentityDiagramUnchanged(t *testing.T) {
	m := dd.New()
	tt := cube.New()
	for _, r := range [][2]string{{"00", "00"}, {"01", "01"}, {"10", "10"}, {"11", "11"}} {
		require.True(t, tt.Insert(bitsOf(r[0]), bitsOf(r[1])))
	}
	root := m.BuildFromTruthTable(tt)
	m.IncRef(root)

	c := circuit.New()
	c.SetLines(2)
	final := Reshape(m, root, 2, c, []gate.Line{0, 1})

	assert.True(t, m.IsIdentity(final))
	assert.Equal(t, 0, c.NumGates())
}

func TestPathSignatureTerminalCases(t *testing.T) {
	sig := pathSignature(dd.ZeroTerminal, 0)
	assert.Nil(t, sig)

	sig = pathSignature(dd.OneTerminal, 0)
	require.Len(t, sig, 1)
	assert.Equal(t, 0, sig[0].Width())

	// reaching the one-terminal before levels is exhausted means every
	// remaining level is a don't-care.
	sig = pathSignature(dd.OneTerminal, 2)
	require.Len(t, sig, 1)
	assert.Equal(t, "--", sig[0].String())
}

func TestPathSignatureOfIdentityReachesBothBranches(t *testing.T) {
	m := dd.New()
	tt := cube.New()
	for _, r := range [][2]string{{"00", "00"}, {"01", "01"}, {"10", "10"}, {"11", "11"}} {
		require.True(t, tt.Insert(bitsOf(r[0]), bitsOf(r[1])))
	}
	root := m.BuildFromTruthTable(tt)

	// root's own (out=0,in=0) branch is itself a full identity block
	// over the remaining variable, so both its own in=0 and in=1
	// branches reach the one-terminal.
	sig := pathSignature(root.Target.Child(0), 1)
	got := make(map[string]bool)
	for _, c := range sig {
		got[c.String()] = true
	}
	assert.Equal(t, map[string]bool{"0": true, "1": true}, got)
}

func TestCompletePermutationFillsMissingRowsBijectively(t *testing.T) {
	tt := cube.New()
	require.True(t, tt.Insert(bitsOf("00"), bitsOf("01")))
	require.True(t, tt.Insert(bitsOf("01"), bitsOf("10")))

	full := completePermutation(tt, 2)
	assert.Equal(t, 4, full.Size())

	seenOut := make(map[string]bool)
	for _, e := range full.Entries() {
		assert.False(t, seenOut[e.Output.String()], "output %s reused", e.Output.String())
		seenOut[e.Output.String()] = true
	}
}

func TestSynthesizeOnePassRealizesACleanPermutation(t *testing.T) {
	// the 2-bit CNOT relation: line1 flips iff line0 is 1.
	tt := cube.New()
	rows := [][2]string{{"00", "00"}, {"01", "01"}, {"10", "11"}, {"11", "10"}}
	for _, r := range rows {
		require.True(t, tt.Insert(bitsOf(r[0]), bitsOf(r[1])))
	}

	c := SynthesizeOnePass(tt)
	assert.Equal(t, 2, c.NumLines())
	for _, r := range rows {
		in := bitsOf(r[0])
		want := bitsOf(r[1])
		got := c.Simulate([]bool{in.At(0) == cube.One, in.At(1) == cube.One})
		assert.Equal(t, want.At(0) == cube.One, got[0], "row %s", r[0])
		assert.Equal(t, want.At(1) == cube.One, got[1], "row %s", r[0])
	}
}

// evalGate walks e level by level against remaining (input bits, MSB
// first) and returns the matching output bits. A terminal reached
// before remaining is exhausted means every leftover level is skipped
// by reduction and passes its input straight through.
func evalGate(e dd.Edge, remaining []int) ([]int, bool) {
	if e.IsTerminal() {
		if e.Weight != 1 {
			return nil, false
		}
		return append([]int(nil), remaining...), true
	}
	n := e.Target
	in := remaining[0]
	for _, out := range []int{0, 1} {
		child := n.Child(2*out + in)
		if rest, ok := evalGate(child, remaining[1:]); ok {
			return append([]int{out}, rest...), true
		}
	}
	return nil, false
}

func TestBuildControlledNotTargetAboveControl(t *testing.T) {
	m := dd.New()
	// line0 is the target, line1 the control: line0 flips iff line1==1.
	pattern := []cube.Value{cube.DontCare, cube.One}
	e := buildControlledNot(m, pattern, 2, 2)

	for _, in := range [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
		got, ok := evalGate(e, []int{in[0], in[1]})
		require.True(t, ok, "input %v", in)
		want := []int{in[0] ^ in[1], in[1]}
		assert.Equal(t, want, got, "input %v", in)
	}
}

func TestBuildControlledNotTargetBelowControl(t *testing.T) {
	m := dd.New()
	// line0 is the control, line1 the target: line1 flips iff line0==1.
	pattern := []cube.Value{cube.One, cube.DontCare}
	e := buildControlledNot(m, pattern, 1, 2)

	for _, in := range [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
		got, ok := evalGate(e, []int{in[0], in[1]})
		require.True(t, ok, "input %v", in)
		want := []int{in[0], in[1] ^ in[0]}
		assert.Equal(t, want, got, "input %v", in)
	}
}

func TestSynthesizeCodingTechniquesMarksWorkingLinesGarbage(t *testing.T) {
	// AND: irreversible, three rows collide on output "0".
	tt := cube.New()
	rows := [][2]string{{"00", "0"}, {"01", "0"}, {"10", "0"}, {"11", "1"}}
	for _, r := range rows {
		require.True(t, tt.Insert(bitsOf(r[0]), bitsOf(r[1])))
	}

	c := SynthesizeCodingTechniques(tt, true)
	assert.GreaterOrEqual(t, c.NumLines(), 2)

	garbageCount := 0
	for i := 0; i < c.NumLines(); i++ {
		if c.Garbage(gate.Line(i)) {
			garbageCount++
		}
	}
	assert.Greater(t, garbageCount, 0, "the working permutation lines should all be marked garbage ahead of the decoder's own outputs")
}
