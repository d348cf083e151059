package synth

import (
	"github.com/kegliz/syrecgo/gate"
	"github.com/kegliz/syrecgo/syrec/ir"
)

// processBlock synthesizes stmts in order, stopping at the first
// failure.
func (s *Synth) processBlock(stmts []ir.Statement) bool {
	for _, stmt := range stmts {
		if !s.processStatement(stmt) {
			return false
		}
	}
	return true
}

// processStatement dispatches on stmt's concrete type. Assign
// statements first give the backend a chance to fold the whole
// assignment (the line-aware backend's repeated-operand optimisation);
// every other statement kind has exactly one synthesis.
func (s *Synth) processStatement(stmt ir.Statement) bool {
	if assign, ok := stmt.(*ir.AssignStatement); ok {
		if folder, ok := s.backend.(chainFolder); ok {
			lhs := s.getVariables(assign.LHS)
			if handled, ok := folder.TryFold(s, assign, lhs); handled {
				return ok
			}
		}
		return s.onAssign(assign)
	}

	switch st := stmt.(type) {
	case *ir.UnaryStatement:
		return s.onUnary(st)
	case *ir.SwapStatement:
		return s.onSwap(st)
	case *ir.IfStatement:
		return s.onIf(st)
	case *ir.ForStatement:
		return s.onFor(st)
	case *ir.CallStatement:
		return s.onCall(st)
	case *ir.UncallStatement:
		return s.onUncall(st)
	case *ir.SkipStatement:
		return true
	default:
		s.fail(errUnsupportedStatement(stmt))
		return false
	}
}

func (s *Synth) onAssign(stmt *ir.AssignStatement) bool {
	lhs := s.getVariables(stmt.LHS)
	rhs, ok := s.onExpression(stmt.RHS, lhs, binaryOpOf(stmt.Op))
	if !ok {
		return false
	}
	switch stmt.Op {
	case ir.AssignAdd:
		return s.backend.AssignAdd(s, lhs, rhs)
	case ir.AssignSubtract:
		return s.backend.AssignSubtract(s, lhs, rhs)
	default:
		return s.backend.AssignExor(s, lhs, rhs)
	}
}

func binaryOpOf(op ir.AssignOp) ir.BinaryOp {
	switch op {
	case ir.AssignAdd:
		return ir.Add
	case ir.AssignSubtract:
		return ir.Subtract
	default:
		return ir.Exor
	}
}

func (s *Synth) onUnary(stmt *ir.UnaryStatement) bool {
	lines := s.getVariables(stmt.Var)
	switch stmt.Op {
	case ir.Invert:
		return s.bitwiseNegation(lines)
	case ir.Increment:
		return s.increment(lines)
	default:
		return s.decrement(lines)
	}
}

func (s *Synth) onSwap(stmt *ir.SwapStatement) bool {
	lhs := s.getVariables(stmt.LHS)
	rhs := s.getVariables(stmt.RHS)
	if len(lhs) != len(rhs) {
		s.fail(errWidthMismatch("swap", len(lhs), len(rhs)))
		return false
	}
	for i := range lhs {
		if _, ok := s.Circuit.CreateAndAddFredkin(lhs[i], rhs[i]); !ok {
			return false
		}
	}
	return true
}

// onIf synthesizes the condition onto a single helper line, registers
// it as a control for the then-branch, flips it, runs the else-branch
// under that flipped control, then flips it back - leaving the helper
// line's value unconditionally restored once the construct completes,
// which is what keeps the whole thing reversible.
//
// Flipping helper can't happen while it's registered in the same
// scope frame: a gate may never target a line that is one of its own
// (even implicitly propagated) controls, and deregistering a control
// from the very frame that registered it doesn't un-propagate it -
// masking only ever applies to an enclosing frame. withoutControl
// gets the right effect by pushing a throwaway frame just for the
// flip, registered nowhere, so helper briefly isn't a control at all.
func (s *Synth) onIf(stmt *ir.IfStatement) bool {
	cond, ok := s.onExpression(stmt.Cond, nil, 0)
	if !ok {
		return false
	}
	helper, ok := s.reduceToSingleLine(cond)
	if !ok {
		return false
	}

	s.Circuit.ActivateScope()
	s.Circuit.RegisterControl(helper)

	flip := func() bool {
		_, flipped := s.Circuit.CreateAndAddNot(helper)
		return flipped
	}

	ok = s.processBlock(stmt.Then)
	ok = ok && s.withoutControl(helper, flip)
	ok = ok && s.processBlock(stmt.Else)
	ok = ok && s.withoutControl(helper, flip)

	s.Circuit.DeactivateScope()
	return ok
}

// reduceToSingleLine returns lines[0] unchanged when the condition
// already collapsed to one bit (the common case - every comparator
// template produces exactly one result line); a wider condition (a
// bare multi-bit variable used as a truth value) is OR-reduced onto a
// fresh ancilla.
func (s *Synth) reduceToSingleLine(lines []gate.Line) (gate.Line, bool) {
	if len(lines) == 1 {
		return lines[0], true
	}
	if len(lines) == 0 {
		s.fail(errEmptyCondition())
		return 0, false
	}
	acc := s.getConstantLine(false)
	for _, l := range lines {
		if !s.disjunction(acc, acc, l) {
			return 0, false
		}
	}
	return acc, true
}

func (s *Synth) onFor(stmt *ir.ForStatement) bool {
	from := 1
	if stmt.Range.From != nil {
		from = stmt.Range.From.Evaluate(s.loopMap)
	}
	to := stmt.Range.To.Evaluate(s.loopMap)
	step := 1
	if stmt.Step != nil {
		step = stmt.Step.Evaluate(s.loopMap)
	}
	if step <= 0 {
		step = 1
	}

	if stmt.LoopVariable != "" {
		defer delete(s.loopMap, stmt.LoopVariable)
	}

	if from <= to {
		for i := from; i <= to; i += step {
			if stmt.LoopVariable != "" {
				s.loopMap[stmt.LoopVariable] = i
			}
			if !s.processBlock(stmt.Statements) {
				return false
			}
		}
		return true
	}
	for i := from; i >= to; i -= step {
		if stmt.LoopVariable != "" {
			s.loopMap[stmt.LoopVariable] = i
		}
		if !s.processBlock(stmt.Statements) {
			return false
		}
	}
	return true
}

func (s *Synth) onCall(stmt *ir.CallStatement) bool {
	frame, ok := s.bindParameters(stmt.Target, stmt.Args)
	if !ok {
		return false
	}
	s.addVariables(stmt.Target.Locals)

	s.bindStack = append(s.bindStack, frame)
	s.moduleStack = append(s.moduleStack, stmt.Target)
	ok = s.processBlock(stmt.Target.Statements)
	s.moduleStack = s.moduleStack[:len(s.moduleStack)-1]
	s.bindStack = s.bindStack[:len(s.bindStack)-1]
	return ok
}

func (s *Synth) onUncall(stmt *ir.UncallStatement) bool {
	frame, ok := s.bindParameters(stmt.Target, stmt.Args)
	if !ok {
		return false
	}
	s.addVariables(stmt.Target.Locals)

	s.bindStack = append(s.bindStack, frame)
	s.moduleStack = append(s.moduleStack, stmt.Target)
	ok = s.processBlock(reverseBlock(stmt.Target.Statements))
	s.moduleStack = s.moduleStack[:len(s.moduleStack)-1]
	s.bindStack = s.bindStack[:len(s.bindStack)-1]
	return ok
}

func reverseBlock(stmts []ir.Statement) []ir.Statement {
	out := make([]ir.Statement, len(stmts))
	for i, st := range stmts {
		out[len(stmts)-1-i] = st.Reverse()
	}
	return out
}

// bindParameters resolves each of callerArgs in the current frame and
// builds the callee's parameter-name -> actual-access environment,
// without mutating the callee's own Variable objects.
func (s *Synth) bindParameters(target *ir.Module, callerArgs []string) (map[string]*ir.VariableAccess, bool) {
	if len(callerArgs) != len(target.Parameters) {
		s.fail(errArgCountMismatch(target.Name, len(target.Parameters), len(callerArgs)))
		return nil, false
	}
	frame := make(map[string]*ir.VariableAccess, len(callerArgs))
	for i, name := range callerArgs {
		actual := s.resolveName(name)
		if actual == nil {
			return nil, false
		}
		frame[target.Parameters[i].Name] = actual
	}
	return frame, true
}
