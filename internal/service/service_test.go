package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kegliz/syrecgo/pla"
	"github.com/kegliz/syrecgo/syrec/ir"
	"github.com/kegliz/syrecgo/syrec/synth"
)

func readForTest(src string) (*pla.Result, error) {
	return pla.Read(strings.NewReader(src))
}

const notPLA = `.i 1
.o 1
.ilb a
.ob a
.p 2
0 1
1 0
.e
`

const cnotPLA = `.i 2
.o 2
.ilb a b
.ob a b
.type fd
.p 2
00 00
01 11
.e
`

func TestSynthesizePLAFullySpecifiedBijectionUsesOnePass(t *testing.T) {
	svc := NewService(Options{})

	id, err := svc.SynthesizePLA(nil, strings.NewReader(notPLA), PLAOptions{})
	require.NoError(t, err)

	circ, err := svc.Circuit(id)
	require.NoError(t, err)
	assert.Equal(t, 1, circ.NumLines())

	qasm, err := svc.QASM(id)
	require.NoError(t, err)
	assert.Contains(t, qasm, "OPENQASM")
}

func TestSynthesizePLAPartialTableUsesCodingTechniques(t *testing.T) {
	svc := NewService(Options{})

	id, err := svc.SynthesizePLA(nil, strings.NewReader(cnotPLA), PLAOptions{AdditionalLine: true})
	require.NoError(t, err)

	circ, err := svc.Circuit(id)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, circ.NumLines(), 2)
}

func TestSynthesizePLAInvalidInputFails(t *testing.T) {
	svc := NewService(Options{})

	_, err := svc.SynthesizePLA(nil, strings.NewReader("not a pla file"), PLAOptions{})
	assert.Error(t, err)
}

func TestCircuitAndQASMUnknownIDFail(t *testing.T) {
	svc := NewService(Options{})

	_, err := svc.Circuit("does-not-exist")
	assert.Error(t, err)

	_, err = svc.QASM("does-not-exist")
	assert.Error(t, err)
}

func TestSynthesizePLAAssignsDistinctIDs(t *testing.T) {
	svc := NewService(Options{})

	id1, err := svc.SynthesizePLA(nil, strings.NewReader(notPLA), PLAOptions{})
	require.NoError(t, err)
	id2, err := svc.SynthesizePLA(nil, strings.NewReader(notPLA), PLAOptions{})
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)
}

func TestSynthesizeProgram(t *testing.T) {
	svc := NewService(Options{})

	x := &ir.Variable{Type: ir.Inout, Name: "x", Bitwidth: 4}
	y := &ir.Variable{Type: ir.In, Name: "y", Bitwidth: 4}
	stmt := &ir.AssignStatement{
		LHS: &ir.VariableAccess{Var: x},
		Op:  ir.AssignAdd,
		RHS: &ir.VariableExpression{Var: &ir.VariableAccess{Var: y}},
	}
	main := &ir.Module{Name: "main", Parameters: []*ir.Variable{x, y}, Statements: []ir.Statement{stmt}}
	program := &ir.Program{Modules: []*ir.Module{main}}

	id, err := svc.SynthesizeProgram(nil, program, synth.CostAwareSynthesis{}, synth.DefaultSettings())
	require.NoError(t, err)

	circ, err := svc.Circuit(id)
	require.NoError(t, err)
	assert.Equal(t, 8, circ.NumLines())
}

func TestSynthesizeProgramFailsForUnknownMainModule(t *testing.T) {
	svc := NewService(Options{})

	program := &ir.Program{Modules: []*ir.Module{{Name: "other"}}}
	settings := synth.DefaultSettings()
	settings.MainModule = "main"

	_, err := svc.SynthesizeProgram(nil, program, synth.CostAwareSynthesis{}, settings)
	assert.Error(t, err)
}

func TestIsReversibleDetectsBijectionsOnly(t *testing.T) {
	res, err := readForTest(notPLA)
	require.NoError(t, err)
	assert.True(t, isReversible(res.Table))

	res, err = readForTest(cnotPLA)
	require.NoError(t, err)
	assert.False(t, isReversible(res.Table))
}
