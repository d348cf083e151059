package synth

import (
	"testing"

	"github.com/kegliz/syrecgo/circuit"
	"github.com/kegliz/syrecgo/syrec/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// intToBits returns v's bits LSB-first, matching the line layout
// addVariableLines gives a scalar variable.
func intToBits(v uint64, width int) []bool {
	bits := make([]bool, width)
	for i := 0; i < width; i++ {
		bits[i] = v&(1<<uint(i)) != 0
	}
	return bits
}

func bitsToInt(bits []bool) uint64 {
	var v uint64
	for i, b := range bits {
		if b {
			v |= 1 << uint(i)
		}
	}
	return v
}

func newVar(typ ir.VarType, name string, bitwidth int) *ir.Variable {
	return &ir.Variable{Type: typ, Name: name, Bitwidth: bitwidth}
}

func access(v *ir.Variable) *ir.VariableAccess { return &ir.VariableAccess{Var: v} }

func varExpr(v *ir.Variable) ir.Expression {
	return &ir.VariableExpression{Var: access(v)}
}

// runModule synthesizes a single-module program ("main") with the given
// parameters and body under backend, and simulates it against input
// (one uint64 per parameter, in declaration order). It returns the
// resulting per-parameter values in the same order, plus the finished
// circuit (so callers can inspect NumLines/NumGates).
func runModule(t *testing.T, backend Backend, params []*ir.Variable, body []ir.Statement, input []uint64) ([]uint64, *circuit.Circuit) {
	t.Helper()

	main := &ir.Module{Name: "main", Parameters: params, Statements: body}
	program := &ir.Program{Modules: []*ir.Module{main}}

	c := circuit.New()
	ok, err := Synthesize(backend, c, program, DefaultSettings())
	require.NoError(t, err)
	require.True(t, ok)

	values := make([]bool, c.NumLines())
	offset := 0
	for i, p := range params {
		copy(values[offset:offset+p.Bitwidth], intToBits(input[i], p.Bitwidth))
		offset += p.Bitwidth
	}

	result := c.Simulate(values)

	out := make([]uint64, len(params))
	offset = 0
	for i, p := range params {
		out[i] = bitsToInt(result[offset : offset+p.Bitwidth])
		offset += p.Bitwidth
	}
	return out, c
}

func TestAssignAddBothBackends(t *testing.T) {
	for _, backend := range []Backend{CostAwareSynthesis{}, LineAwareSynthesis{}} {
		x := newVar(ir.Inout, "x", 4)
		y := newVar(ir.In, "y", 4)
		stmt := &ir.AssignStatement{LHS: access(x), Op: ir.AssignAdd, RHS: varExpr(y)}

		out, _ := runModule(t, backend, []*ir.Variable{x, y}, []ir.Statement{stmt}, []uint64{5, 3})
		assert.Equal(t, uint64(8), out[0])
		assert.Equal(t, uint64(3), out[1], "y must be restored unchanged")
	}
}

func TestAssignSubtractBothBackends(t *testing.T) {
	for _, backend := range []Backend{CostAwareSynthesis{}, LineAwareSynthesis{}} {
		x := newVar(ir.Inout, "x", 4)
		y := newVar(ir.In, "y", 4)
		stmt := &ir.AssignStatement{LHS: access(x), Op: ir.AssignSubtract, RHS: varExpr(y)}

		out, _ := runModule(t, backend, []*ir.Variable{x, y}, []ir.Statement{stmt}, []uint64{9, 3})
		assert.Equal(t, uint64(6), out[0])
		assert.Equal(t, uint64(3), out[1])
	}
}

func TestAssignExorBothBackends(t *testing.T) {
	for _, backend := range []Backend{CostAwareSynthesis{}, LineAwareSynthesis{}} {
		x := newVar(ir.Inout, "x", 4)
		y := newVar(ir.In, "y", 4)
		stmt := &ir.AssignStatement{LHS: access(x), Op: ir.AssignExor, RHS: varExpr(y)}

		out, _ := runModule(t, backend, []*ir.Variable{x, y}, []ir.Statement{stmt}, []uint64{0b1010, 0b0110})
		assert.Equal(t, uint64(0b1100), out[0])
		assert.Equal(t, uint64(0b0110), out[1])
	}
}

// TestLineAwareChainFoldMatchesCostAwareResultWithFewerLines exercises
// `x += y + z`: the line-aware backend's TryFold consumes y then z
// straight into x without ever materialising `y + z` on its own fresh
// lines, so it should reach the same answer as the cost-aware backend
// while allocating fewer circuit lines.
func TestLineAwareChainFoldMatchesCostAwareResultWithFewerLines(t *testing.T) {
	buildStmt := func() (x, y, z *ir.Variable, stmt ir.Statement) {
		x = newVar(ir.Inout, "x", 4)
		y = newVar(ir.In, "y", 4)
		z = newVar(ir.In, "z", 4)
		rhs := &ir.BinaryExpression{LHS: varExpr(y), RHS: varExpr(z), Op: ir.Add, BitWidth: 4}
		stmt = &ir.AssignStatement{LHS: access(x), Op: ir.AssignAdd, RHS: rhs}
		return
	}

	xc, yc, zc, stmtCost := buildStmt()
	costOut, costCircuit := runModule(t, CostAwareSynthesis{}, []*ir.Variable{xc, yc, zc}, []ir.Statement{stmtCost}, []uint64{1, 2, 3})

	xl, yl, zl, stmtLine := buildStmt()
	lineOut, lineCircuit := runModule(t, LineAwareSynthesis{}, []*ir.Variable{xl, yl, zl}, []ir.Statement{stmtLine}, []uint64{1, 2, 3})

	assert.Equal(t, uint64(6), costOut[0])
	assert.Equal(t, costOut, lineOut)
	assert.Less(t, lineCircuit.NumLines(), costCircuit.NumLines())
}

// TestIfStatementGatesBranchOnCondition exercises the deregister/
// reregister fix in onIf: the condition's own line is the control
// registered for the whole construct, and flipping it between
// branches must not trip the circuit's rejection of a gate targeting
// one of its own active controls.
func TestIfStatementGatesBranchOnCondition(t *testing.T) {
	cond := newVar(ir.In, "cond", 1)
	x := newVar(ir.Inout, "x", 4)

	ifStmt := &ir.IfStatement{
		Cond:   varExpr(cond),
		FiCond: varExpr(cond),
		Then:   []ir.Statement{&ir.UnaryStatement{Op: ir.Increment, Var: access(x)}},
		Else:   []ir.Statement{&ir.UnaryStatement{Op: ir.Decrement, Var: access(x)}},
	}

	outTrue, _ := runModule(t, CostAwareSynthesis{}, []*ir.Variable{cond, x}, []ir.Statement{ifStmt}, []uint64{1, 5})
	assert.Equal(t, uint64(1), outTrue[0], "condition line must be restored")
	assert.Equal(t, uint64(6), outTrue[1])

	outFalse, _ := runModule(t, CostAwareSynthesis{}, []*ir.Variable{cond, x}, []ir.Statement{ifStmt}, []uint64{0, 5})
	assert.Equal(t, uint64(0), outFalse[0])
	assert.Equal(t, uint64(4), outFalse[1])
}

func TestUnaryIncrementAndDecrement(t *testing.T) {
	x := newVar(ir.Inout, "x", 4)
	inc := &ir.UnaryStatement{Op: ir.Increment, Var: access(x)}
	out, _ := runModule(t, CostAwareSynthesis{}, []*ir.Variable{x}, []ir.Statement{inc}, []uint64{5})
	assert.Equal(t, uint64(6), out[0])

	dec := &ir.UnaryStatement{Op: ir.Decrement, Var: access(x)}
	out, _ = runModule(t, CostAwareSynthesis{}, []*ir.Variable{x}, []ir.Statement{dec}, []uint64{5})
	assert.Equal(t, uint64(4), out[0])
}

func TestUnaryIncrementWrapsAtWidth(t *testing.T) {
	x := newVar(ir.Inout, "x", 4)
	inc := &ir.UnaryStatement{Op: ir.Increment, Var: access(x)}
	out, _ := runModule(t, CostAwareSynthesis{}, []*ir.Variable{x}, []ir.Statement{inc}, []uint64{15})
	assert.Equal(t, uint64(0), out[0])
}

func TestSwapStatementExchangesValues(t *testing.T) {
	x := newVar(ir.Inout, "x", 4)
	y := newVar(ir.Inout, "y", 4)
	stmt := &ir.SwapStatement{LHS: access(x), RHS: access(y)}

	out, _ := runModule(t, CostAwareSynthesis{}, []*ir.Variable{x, y}, []ir.Statement{stmt}, []uint64{5, 9})
	assert.Equal(t, uint64(9), out[0])
	assert.Equal(t, uint64(5), out[1])
}

func TestForStatementUnrollsIncrements(t *testing.T) {
	x := newVar(ir.Inout, "x", 4)
	loop := &ir.ForStatement{
		LoopVariable: "i",
		Range:        ir.Range{From: ir.Const(1), To: ir.Const(3)},
		Step:         ir.Const(1),
		Statements:   []ir.Statement{&ir.UnaryStatement{Op: ir.Increment, Var: access(x)}},
	}
	out, _ := runModule(t, CostAwareSynthesis{}, []*ir.Variable{x}, []ir.Statement{loop}, []uint64{0})
	assert.Equal(t, uint64(3), out[0])
}

// TestCallThenUncallIsIdentity builds a helper module that increments
// its one parameter, calls it once, then uncalls it once; the uncall
// runs the helper's body reversed (a single decrement), so the net
// effect on x is zero.
func TestCallThenUncallIsIdentity(t *testing.T) {
	p := newVar(ir.Inout, "p", 4)
	helper := &ir.Module{
		Name:       "inc",
		Parameters: []*ir.Variable{p},
		Statements: []ir.Statement{&ir.UnaryStatement{Op: ir.Increment, Var: access(p)}},
	}

	x := newVar(ir.Inout, "x", 4)
	main := &ir.Module{
		Name:       "main",
		Parameters: []*ir.Variable{x},
		Statements: []ir.Statement{
			&ir.CallStatement{Target: helper, Args: []string{"x"}},
			&ir.UncallStatement{Target: helper, Args: []string{"x"}},
		},
	}
	program := &ir.Program{Modules: []*ir.Module{main, helper}}

	c := circuit.New()
	ok, err := Synthesize(CostAwareSynthesis{}, c, program, DefaultSettings())
	require.NoError(t, err)
	require.True(t, ok)

	values := make([]bool, c.NumLines())
	copy(values, intToBits(5, 4))
	result := c.Simulate(values)
	assert.Equal(t, uint64(5), bitsToInt(result[0:4]))
}

func TestSynthesizeFailsOnArgCountMismatch(t *testing.T) {
	p := newVar(ir.Inout, "p", 4)
	q := newVar(ir.Inout, "q", 4)
	helper := &ir.Module{
		Name:       "two",
		Parameters: []*ir.Variable{p, q},
		Statements: []ir.Statement{&ir.UnaryStatement{Op: ir.Increment, Var: access(p)}},
	}
	x := newVar(ir.Inout, "x", 4)
	main := &ir.Module{
		Name:       "main",
		Parameters: []*ir.Variable{x},
		Statements: []ir.Statement{&ir.CallStatement{Target: helper, Args: []string{"x"}}},
	}
	program := &ir.Program{Modules: []*ir.Module{main, helper}}

	c := circuit.New()
	ok, err := Synthesize(CostAwareSynthesis{}, c, program, DefaultSettings())
	assert.False(t, ok)
	require.Error(t, err)
}
