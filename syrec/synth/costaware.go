package synth

import "github.com/kegliz/syrecgo/gate"

// CostAwareSynthesis is the simplest correct Backend: every binary +,-,^
// node materialises onto its own fresh constant-zero lines, and an
// assignment applies its operator directly against the lhs. It never
// tries to recognise a repeated operand, so it costs more ancillae and
// gates than LineAwareSynthesis on expressions that reuse the
// assignment's own lhs, but every step is trivially reversible on its
// own - there is no chainFolder to get wrong.
type CostAwareSynthesis struct{}

var _ Backend = CostAwareSynthesis{}

func (CostAwareSynthesis) ExpAdd(s *Synth, bitwidth int, lhs, rhs []gate.Line) ([]gate.Line, bool) {
	dest := s.getConstantLines(bitwidth, 0)
	ok := s.bitwiseCnot(dest, lhs)
	ok = ok && s.increase(dest, rhs)
	return dest, ok
}

func (CostAwareSynthesis) ExpSubtract(s *Synth, bitwidth int, lhs, rhs []gate.Line) ([]gate.Line, bool) {
	dest := s.getConstantLines(bitwidth, 0)
	ok := s.bitwiseCnot(dest, lhs)
	ok = ok && s.decrease(dest, rhs)
	return dest, ok
}

func (CostAwareSynthesis) ExpExor(s *Synth, bitwidth int, lhs, rhs []gate.Line) ([]gate.Line, bool) {
	dest := s.getConstantLines(bitwidth, 0)
	ok := s.bitwiseCnot(dest, lhs)
	ok = ok && s.bitwiseCnot(dest, rhs)
	return dest, ok
}

func (CostAwareSynthesis) AssignAdd(s *Synth, lhs, rhs []gate.Line) bool {
	return s.increase(lhs, rhs)
}

func (CostAwareSynthesis) AssignSubtract(s *Synth, lhs, rhs []gate.Line) bool {
	return s.decrease(lhs, rhs)
}

func (CostAwareSynthesis) AssignExor(s *Synth, lhs, rhs []gate.Line) bool {
	return s.bitwiseCnot(lhs, rhs)
}
