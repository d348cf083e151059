package synth

import (
	"github.com/kegliz/syrecgo/gate"
	"github.com/kegliz/syrecgo/syrec/ir"
)

// LineAwareSynthesis saves lines relative to CostAwareSynthesis by never
// allocating a fresh destination for a +,-,^ node: ExpAdd/ExpSubtract
// compute their result directly into the rhs operand's own lines and
// hand those back, and an assignment whose rhs is a chain of the
// statement's own operator folds every term straight into the
// assignment's lhs instead of materialising each interior node first.
//
// TryFold replaces the original project's scratch-stack bookkeeping
// (parallel vectors of partial operators/operands threaded through
// opRhsLhsExpression/flow/solver, with a checkRepeats precondition
// gating whether any of it was even safe to use) with a single
// explicit walk: flattenChain reads the postfix term list for a
// same-operator chain once, and the loop below consumes it once. Unlike
// the original, it never attempts a cancellation it can't see through
// to completion - flattenChain only widens the chain along the tree's
// left spine, which is always a semantically valid regrouping of + and
// ^ (both associative); for - the loop subtracts the first term from
// lhs and adds every later one back (lhs -= a - b is lhs - a + b), so
// every prefix it commits is
// correct and there is nothing to undo if a later term's width turns
// out to mismatch: that is treated as the same hard error any other
// width mismatch in this package is.
type LineAwareSynthesis struct{}

var _ Backend = LineAwareSynthesis{}
var _ chainFolder = LineAwareSynthesis{}

func (LineAwareSynthesis) ExpAdd(s *Synth, _ int, lhs, rhs []gate.Line) ([]gate.Line, bool) {
	return rhs, s.increase(rhs, lhs)
}

func (LineAwareSynthesis) ExpSubtract(s *Synth, _ int, lhs, rhs []gate.Line) ([]gate.Line, bool) {
	return rhs, s.decreaseNewAssign(rhs, lhs)
}

func (LineAwareSynthesis) ExpExor(s *Synth, _ int, lhs, rhs []gate.Line) ([]gate.Line, bool) {
	return rhs, s.bitwiseCnot(rhs, lhs)
}

func (LineAwareSynthesis) AssignAdd(s *Synth, lhs, rhs []gate.Line) bool {
	return s.increase(lhs, rhs)
}

func (LineAwareSynthesis) AssignSubtract(s *Synth, lhs, rhs []gate.Line) bool {
	return s.decrease(lhs, rhs)
}

func (LineAwareSynthesis) AssignExor(s *Synth, lhs, rhs []gate.Line) bool {
	return s.bitwiseCnot(lhs, rhs)
}

// TryFold recognises `lhs op= term1 op term2 op ... op termN` where op
// is stmt.Op's own operator and every termK is a self-contained
// sub-expression (not necessarily a bare variable), and applies each
// term directly against lhs in turn instead of building the whole rhs
// tree first. handled is false whenever the rhs isn't shaped like such
// a chain (fewer than two terms), in which case Synth falls through to
// the ordinary onExpression + Assign{Add,Subtract,Exor} path.
func (LineAwareSynthesis) TryFold(s *Synth, stmt *ir.AssignStatement, lhs []gate.Line) (handled, ok bool) {
	op := binaryOpOf(stmt.Op)
	terms := flattenChain(op, stmt.RHS)
	if len(terms) < 2 {
		return false, false
	}

	for i, term := range terms {
		lines, okTerm := s.onExpression(term, nil, 0)
		if !okTerm {
			return true, false
		}
		if len(lines) != len(lhs) {
			s.fail(errWidthMismatch("fold", len(lhs), len(lines)))
			return true, false
		}
		switch stmt.Op {
		case ir.AssignAdd:
			if !s.increase(lhs, lines) {
				return true, false
			}
		case ir.AssignSubtract:
			// lhs -= t1 - t2 - ... - tN is lhs - t1 + t2 + ... + tN.
			apply := s.decrease
			if i > 0 {
				apply = s.increase
			}
			if !apply(lhs, lines) {
				return true, false
			}
		default:
			if !s.bitwiseCnot(lhs, lines) {
				return true, false
			}
		}
	}
	return true, true
}

// flattenChain returns expr's terms in left-to-right evaluation order
// when expr is a (possibly nested) BinaryExpression built entirely out
// of matchOp nodes along its left spine, or the single-element
// []Expression{expr} otherwise.
func flattenChain(matchOp ir.BinaryOp, expr ir.Expression) []ir.Expression {
	be, ok := expr.(*ir.BinaryExpression)
	if !ok || be.Op != matchOp {
		return []ir.Expression{expr}
	}
	return append(flattenChain(matchOp, be.LHS), be.RHS)
}

// decreaseNewAssign computes rhs = lhs - rhs in place: it negates lhs,
// adds it into rhs with the same ripple-carry adder as increase,
// restores lhs and negates rhs on the way out (~(rhs + ~lhs) is
// lhs - rhs) - the shape needed when the node's own result
// lines are the rhs operand's lines rather than a fresh destination
// (subtraction doesn't commute, so simply reusing increase's lines
// would leave the wrong operand's complement in place).
func (s *Synth) decreaseNewAssign(rhs, lhs []gate.Line) bool {
	if len(lhs) != len(rhs) {
		return false
	}
	for _, l := range lhs {
		s.Circuit.CreateAndAddNot(l)
	}
	if !s.increase(rhs, lhs) {
		return false
	}
	for _, l := range lhs {
		s.Circuit.CreateAndAddNot(l)
	}
	for _, l := range rhs {
		s.Circuit.CreateAndAddNot(l)
	}
	return true
}
