package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssignStatementReverseNegatesOperator(t *testing.T) {
	access := &VariableAccess{Var: &Variable{Name: "a"}}
	stmt := &AssignStatement{LHS: access, Op: AssignAdd, RHS: &NumericExpression{Value: Const(1)}}

	rev := stmt.Reverse().(*AssignStatement)
	assert.Equal(t, AssignSubtract, rev.Op)
	assert.Same(t, access, rev.LHS)
	assert.Same(t, stmt.RHS, rev.RHS)

	// Exor is its own inverse.
	xorStmt := &AssignStatement{LHS: access, Op: AssignExor, RHS: stmt.RHS}
	assert.Equal(t, AssignExor, xorStmt.Reverse().(*AssignStatement).Op)
}

func TestUnaryStatementReverseSwapsIncrementDecrement(t *testing.T) {
	v := &VariableAccess{Var: &Variable{Name: "a"}}
	inc := &UnaryStatement{Op: Increment, Var: v}
	assert.Equal(t, Decrement, inc.Reverse().(*UnaryStatement).Op)

	dec := &UnaryStatement{Op: Decrement, Var: v}
	assert.Equal(t, Increment, dec.Reverse().(*UnaryStatement).Op)

	inv := &UnaryStatement{Op: Invert, Var: v}
	assert.Equal(t, Invert, inv.Reverse().(*UnaryStatement).Op)
}

func TestSwapStatementIsSelfInverse(t *testing.T) {
	stmt := &SwapStatement{LHS: &VariableAccess{Var: &Variable{Name: "a"}}, RHS: &VariableAccess{Var: &Variable{Name: "b"}}}
	assert.Same(t, Statement(stmt), stmt.Reverse())
}

func TestIfStatementReverseSwapsConditionsAndReversesBranches(t *testing.T) {
	v := &VariableAccess{Var: &Variable{Name: "a"}}
	first := &UnaryStatement{Op: Increment, Var: v}
	second := &UnaryStatement{Op: Invert, Var: v}
	cond := &NumericExpression{Value: Const(1)}
	fi := &NumericExpression{Value: Const(0)}

	stmt := &IfStatement{Cond: cond, FiCond: fi, Then: []Statement{first, second}, Else: []Statement{second}}
	rev := stmt.Reverse().(*IfStatement)

	assert.Same(t, fi, rev.Cond)
	assert.Same(t, cond, rev.FiCond)
	assert.Len(t, rev.Then, 2)
	assert.Equal(t, Invert, rev.Then[0].(*UnaryStatement).Op)
	assert.Equal(t, Decrement, rev.Then[1].(*UnaryStatement).Op)
	assert.Len(t, rev.Else, 1)
}

func TestForStatementReverseSwapsBoundsAndReversesBody(t *testing.T) {
	v := &VariableAccess{Var: &Variable{Name: "a"}}
	body := []Statement{
		&UnaryStatement{Op: Increment, Var: v},
		&UnaryStatement{Op: Decrement, Var: v},
	}
	stmt := &ForStatement{LoopVariable: "i", Range: Range{From: Const(0), To: Const(9)}, Step: Const(1), Statements: body}
	rev := stmt.Reverse().(*ForStatement)

	assert.Equal(t, Const(9), rev.Range.From)
	assert.Equal(t, Const(0), rev.Range.To)
	assert.Len(t, rev.Statements, 2)
	assert.Equal(t, Increment, rev.Statements[0].(*UnaryStatement).Op)
	assert.Equal(t, Decrement, rev.Statements[1].(*UnaryStatement).Op)
}

func TestCallUncallAreReversesOfEachOther(t *testing.T) {
	mod := &Module{Name: "double"}
	call := &CallStatement{Target: mod, Args: []string{"a"}}

	uncall := call.Reverse().(*UncallStatement)
	assert.Same(t, mod, uncall.Target)
	assert.Equal(t, []string{"a"}, uncall.Args)

	backToCall := uncall.Reverse().(*CallStatement)
	assert.Same(t, mod, backToCall.Target)
}

func TestSkipStatementIsSelfInverse(t *testing.T) {
	var stmt SkipStatement
	assert.Equal(t, stmt, stmt.Reverse())
}
