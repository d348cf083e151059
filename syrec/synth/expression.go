package synth

import (
	"github.com/kegliz/syrecgo/gate"
	"github.com/kegliz/syrecgo/syrec/ir"
)

// onExpression synthesizes expr and returns the line list holding its
// value. lhsStat and assignOp describe the enclosing assignment (its
// lhs lines and its own reversible operator); no case consults them,
// a BinaryExpression only passes them down to its operands. Folding a
// chain into the assignment is done before onExpression is reached, by
// a backend's TryFold (see chainFolder).
func (s *Synth) onExpression(expr ir.Expression, lhsStat []gate.Line, assignOp ir.BinaryOp) ([]gate.Line, bool) {
	switch e := expr.(type) {
	case *ir.NumericExpression:
		value := uint64(e.Value.Evaluate(s.loopMap))
		return s.getConstantLines(e.BitWidth, value), true
	case *ir.VariableExpression:
		return s.getVariables(e.Var), true
	case *ir.BinaryExpression:
		return s.onBinaryExpression(e, lhsStat, assignOp)
	case *ir.ShiftExpression:
		return s.onShiftExpression(e)
	default:
		s.fail(errUnsupportedExpression(expr))
		return nil, false
	}
}

func (s *Synth) onShiftExpression(e *ir.ShiftExpression) ([]gate.Line, bool) {
	lhs, ok := s.onExpression(e.LHS, nil, 0)
	if !ok {
		return nil, false
	}
	amount := e.RHS.Evaluate(s.loopMap)
	dest := s.getConstantLines(e.BitWidth, 0)
	var okShift bool
	switch e.Op {
	case ir.Left:
		okShift = s.leftShift(dest, lhs, amount)
	default:
		okShift = s.rightShift(dest, lhs, amount)
	}
	return dest, okShift
}

func (s *Synth) onBinaryExpression(e *ir.BinaryExpression, lhsStat []gate.Line, assignOp ir.BinaryOp) ([]gate.Line, bool) {
	// A node whose own operator matches the enclosing assignment's
	// operator would have already been consumed by the backend's
	// chainFolder, if it has one - processStatement tries TryFold before
	// ever descending into onAssign/onExpression. Reaching this point
	// means no fold applies, so every binary node synthesizes the same
	// way regardless of assignOp.
	lhs, ok := s.onExpression(e.LHS, lhsStat, assignOp)
	if !ok {
		return nil, false
	}
	rhs, ok := s.onExpression(e.RHS, lhsStat, assignOp)
	if !ok {
		return nil, false
	}

	switch e.Op {
	case ir.Add:
		return s.backend.ExpAdd(s, e.BitWidth, lhs, rhs)
	case ir.Subtract:
		return s.backend.ExpSubtract(s, e.BitWidth, lhs, rhs)
	case ir.Exor:
		return s.backend.ExpExor(s, e.BitWidth, lhs, rhs)
	case ir.Multiply:
		dest := s.getConstantLines(e.BitWidth, 0)
		return dest, s.multiplication(dest, lhs, rhs)
	case ir.Divide:
		dest := s.getConstantLines(e.BitWidth, 0)
		return dest, s.division(dest, lhs, rhs)
	case ir.Modulo:
		dest := s.getConstantLines(e.BitWidth, 0)
		quot := s.getConstantLines(e.BitWidth, 0)
		if !s.bitwiseCnot(dest, lhs) {
			return nil, false
		}
		return dest, s.modulo(quot, dest, rhs)
	case ir.BitwiseAnd:
		dest := s.getConstantLines(e.BitWidth, 0)
		return dest, s.bitwiseAnd(dest, lhs, rhs)
	case ir.BitwiseOr:
		dest := s.getConstantLines(e.BitWidth, 0)
		return dest, s.bitwiseOr(dest, lhs, rhs)
	case ir.LogicalAnd:
		dest := s.getConstantLine(false)
		return []gate.Line{dest}, s.conjunction(dest, lhs[0], rhs[0])
	case ir.LogicalOr:
		dest := s.getConstantLine(false)
		return []gate.Line{dest}, s.disjunction(dest, lhs[0], rhs[0])
	case ir.LessThan:
		dest := s.getConstantLine(false)
		return []gate.Line{dest}, s.lessThan(dest, lhs, rhs)
	case ir.GreaterThan:
		dest := s.getConstantLine(false)
		return []gate.Line{dest}, s.greaterThan(dest, lhs, rhs)
	case ir.LessEquals:
		dest := s.getConstantLine(false)
		return []gate.Line{dest}, s.lessEquals(dest, lhs, rhs)
	case ir.GreaterEquals:
		dest := s.getConstantLine(false)
		return []gate.Line{dest}, s.greaterEquals(dest, lhs, rhs)
	case ir.Equals:
		dest := s.getConstantLine(false)
		return []gate.Line{dest}, s.equals(dest, lhs, rhs)
	case ir.NotEquals:
		dest := s.getConstantLine(false)
		return []gate.Line{dest}, s.notEquals(dest, lhs, rhs)
	default:
		s.fail(errUnsupportedOp(e.Op))
		return nil, false
	}
}
