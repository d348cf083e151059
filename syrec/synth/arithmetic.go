package synth

import "github.com/kegliz/syrecgo/gate"

// Unary operations.

func (s *Synth) bitwiseNegation(dest []gate.Line) bool {
	for _, l := range dest {
		s.Circuit.CreateAndAddNot(l)
	}
	return true
}

// decrement flips dest bottom-up; bit i's flip is controlled by
// dest[0:i], which by the time i is reached already hold their new
// (post-flip) values, so bit i only actually borrows once every lower
// bit has rolled over to 1.
func (s *Synth) decrement(dest []gate.Line) bool {
	ok := true
	for i := 0; i < len(dest) && ok; i++ {
		_, ok = s.Circuit.CreateAndAddMultiControlToffoli(dest[:i], dest[i])
	}
	return ok
}

// increment flips dest top-down; bit i's flip is controlled by
// dest[0:i] read at their original (pre-flip) values, since lower
// bits haven't been touched yet at that point - standard ripple
// carry-out propagation for +1.
func (s *Synth) increment(dest []gate.Line) bool {
	ok := true
	for i := len(dest) - 1; i >= 0 && ok; i-- {
		_, ok = s.Circuit.CreateAndAddMultiControlToffoli(dest[:i], dest[i])
	}
	return ok
}

// Binary operations.

func (s *Synth) bitwiseAnd(dest, src1, src2 []gate.Line) bool {
	ok := len(src1) >= len(dest) && len(src2) >= len(dest)
	for i := 0; i < len(dest) && ok; i++ {
		ok = s.conjunction(dest[i], src1[i], src2[i])
	}
	return ok
}

func (s *Synth) bitwiseCnot(dest, src []gate.Line) bool {
	for i := range src {
		s.Circuit.CreateAndAddCnot(src[i], dest[i])
	}
	return len(dest) >= len(src)
}

func (s *Synth) bitwiseOr(dest, src1, src2 []gate.Line) bool {
	ok := len(src1) >= len(dest) && len(src2) >= len(dest)
	for i := 0; i < len(dest) && ok; i++ {
		ok = s.disjunction(dest[i], src1[i], src2[i])
	}
	return ok
}

func (s *Synth) conjunction(dest, src1, src2 gate.Line) bool {
	s.Circuit.CreateAndAddToffoli(src1, src2, dest)
	return true
}

func (s *Synth) decreaseWithCarry(dest, src []gate.Line, carry gate.Line) bool {
	ok := len(dest) >= len(src)
	for i := 0; i < len(src) && ok; i++ {
		s.Circuit.CreateAndAddNot(dest[i])
	}
	ok = ok && s.increaseWithCarry(dest, src, carry)
	for i := 0; i < len(src) && ok; i++ {
		s.Circuit.CreateAndAddNot(dest[i])
	}
	return ok
}

func (s *Synth) disjunction(dest, src1, src2 gate.Line) bool {
	s.Circuit.CreateAndAddCnot(src1, dest)
	s.Circuit.CreateAndAddCnot(src2, dest)
	s.Circuit.CreateAndAddToffoli(src1, src2, dest)
	return true
}

// division synthesizes dest = src1 / src2 by running modulo first and
// then, for each digit of src1 from the top down, adding back the
// matching window of src2 under a control set that shrinks by one
// helper line per digit - the same windowing scheme modulo uses, just
// ending on the add instead of the subtract-then-restore.
func (s *Synth) division(dest, src1, src2 []gate.Line) bool {
	if !s.modulo(dest, src1, src2) {
		return false
	}
	if len(src2) < len(src1) || len(dest) < len(src1) {
		return false
	}

	for i := 1; i < len(src1); i++ {
		s.Circuit.CreateAndAddNot(src2[i])
	}

	// active holds whichever of src2[1:] still act as controls; each
	// helper line drops out once its digit has been consumed.
	active := append([]gate.Line(nil), src2[1:len(src1)]...)

	var sum, partial []gate.Line
	helperIndex := 0
	ok := true
	for i := len(src1) - 1; i >= 0 && ok; i-- {
		partial = append(partial, src2[helperIndex])
		helperIndex++
		sum = append([]gate.Line{src1[i]}, sum...)

		controls := append(append([]gate.Line(nil), active...), dest[i])
		ok = s.withControls(controls, func() bool { return s.increase(sum, partial) })
		if i == 0 {
			continue
		}

		s.Circuit.CreateAndAddNot(src2[helperIndex])
		if len(active) > 0 {
			active = active[1:]
		}
	}
	return ok
}

func (s *Synth) equals(dest gate.Line, src1, src2 []gate.Line) bool {
	if len(src2) < len(src1) {
		return false
	}
	for i := range src1 {
		s.Circuit.CreateAndAddCnot(src2[i], src1[i])
		s.Circuit.CreateAndAddNot(src1[i])
	}
	s.Circuit.CreateAndAddMultiControlToffoli(src1, dest)
	for i := range src1 {
		s.Circuit.CreateAndAddCnot(src2[i], src1[i])
		s.Circuit.CreateAndAddNot(src1[i])
	}
	return true
}

func (s *Synth) greaterEquals(dest gate.Line, srcTwo, srcOne []gate.Line) bool {
	if !s.greaterThan(dest, srcOne, srcTwo) {
		return false
	}
	s.Circuit.CreateAndAddNot(dest)
	return true
}

func (s *Synth) greaterThan(dest gate.Line, src2, src1 []gate.Line) bool {
	return s.lessThan(dest, src1, src2)
}

// increase computes rhs += lhs in place using the Cuccaro ripple-carry
// adder (no ancilla, linear gate count). lhs and rhs must be the same
// width.
func (s *Synth) increase(rhs, lhs []gate.Line) bool {
	if len(lhs) != len(rhs) {
		return false
	}
	if len(rhs) == 0 {
		return true
	}
	if len(rhs) == 1 {
		s.Circuit.CreateAndAddCnot(lhs[0], rhs[0])
		return true
	}

	n := len(rhs)
	for i := 1; i <= n-1; i++ {
		s.Circuit.CreateAndAddCnot(lhs[i], rhs[i])
	}
	for i := n - 2; i >= 1; i-- {
		s.Circuit.CreateAndAddCnot(lhs[i], lhs[i+1])
	}
	for i := 0; i <= n-2; i++ {
		s.Circuit.CreateAndAddToffoli(rhs[i], lhs[i], lhs[i+1])
	}
	s.Circuit.CreateAndAddCnot(lhs[n-1], rhs[n-1])
	for i := n - 2; i >= 1; i-- {
		s.Circuit.CreateAndAddToffoli(lhs[i], rhs[i], lhs[i+1])
		s.Circuit.CreateAndAddCnot(lhs[i], rhs[i])
	}
	s.Circuit.CreateAndAddToffoli(lhs[0], rhs[0], lhs[1])
	s.Circuit.CreateAndAddCnot(lhs[0], rhs[0])
	for i := 1; i <= n-2; i++ {
		s.Circuit.CreateAndAddCnot(lhs[i], lhs[i+1])
	}
	for i := 1; i <= n-1; i++ {
		s.Circuit.CreateAndAddCnot(lhs[i], rhs[i])
	}
	return true
}

func (s *Synth) decrease(rhs, lhs []gate.Line) bool {
	for _, l := range rhs {
		s.Circuit.CreateAndAddNot(l)
	}
	if !s.increase(rhs, lhs) {
		return false
	}
	for _, l := range rhs {
		s.Circuit.CreateAndAddNot(l)
	}
	return true
}

func (s *Synth) increaseWithCarry(dest, src []gate.Line, carry gate.Line) bool {
	n := len(src)
	if n == 0 {
		return true
	}
	if len(src) != len(dest) {
		return false
	}

	for i := 1; i < n; i++ {
		s.Circuit.CreateAndAddCnot(src[i], dest[i])
	}
	if n > 1 {
		s.Circuit.CreateAndAddCnot(src[n-1], carry)
	}
	for i := n - 2; i > 0; i-- {
		s.Circuit.CreateAndAddCnot(src[i], src[i+1])
	}
	for i := 0; i < n-1; i++ {
		s.Circuit.CreateAndAddToffoli(src[i], dest[i], src[i+1])
	}
	s.Circuit.CreateAndAddToffoli(src[n-1], dest[n-1], carry)
	for i := n - 1; i > 0; i-- {
		s.Circuit.CreateAndAddCnot(src[i], dest[i])
		s.Circuit.CreateAndAddToffoli(dest[i-1], src[i-1], src[i])
	}
	for i := 1; i < n-1; i++ {
		s.Circuit.CreateAndAddCnot(src[i], src[i+1])
	}
	for i := 0; i < n; i++ {
		s.Circuit.CreateAndAddCnot(src[i], dest[i])
	}
	return true
}

func (s *Synth) lessEquals(dest gate.Line, src2, src1 []gate.Line) bool {
	if !s.lessThan(dest, src1, src2) {
		return false
	}
	s.Circuit.CreateAndAddNot(dest)
	return true
}

func (s *Synth) lessThan(dest gate.Line, src1, src2 []gate.Line) bool {
	return s.decreaseWithCarry(src1, src2, dest) && s.increase(src1, src2)
}

// modulo synthesizes dest = src1 % src2 one digit at a time, top down:
// each digit first tries a borrow (decreaseWithCarry) to see whether
// the matching window of src2 still fits, restores it with a
// carry-controlled add when it didn't, and records the borrow outcome
// into dest[i] as it goes.
func (s *Synth) modulo(dest, src1, src2 []gate.Line) bool {
	if len(src2) < len(src1) || len(dest) < len(src1) {
		return false
	}

	for i := 1; i < len(src1); i++ {
		s.Circuit.CreateAndAddNot(src2[i])
	}

	active := append([]gate.Line(nil), src2[1:len(src1)]...)

	var sum, partial []gate.Line
	helperIndex := 0
	ok := true
	for i := len(src1) - 1; i >= 0 && ok; i-- {
		partial = append(partial, src2[helperIndex])
		helperIndex++
		sum = append([]gate.Line{src1[i]}, sum...)

		ok = s.decreaseWithCarry(sum, partial, dest[i])

		controls := append(append([]gate.Line(nil), active...), dest[i])
		ok = ok && s.withControls(controls, func() bool { return s.increase(sum, partial) })

		s.Circuit.CreateAndAddNot(dest[i])
		if i == 0 {
			continue
		}

		s.Circuit.CreateAndAddNot(src2[helperIndex])
		if len(active) > 0 {
			active = active[1:]
		}
	}
	return ok
}

func (s *Synth) multiplication(dest, src1, src2 []gate.Line) bool {
	if len(src1) == 0 || len(dest) == 0 {
		return true
	}
	if len(src1) < len(dest) || len(src2) < len(dest) {
		return false
	}

	sum := append([]gate.Line(nil), dest...)
	partial := append([]gate.Line(nil), src2...)

	ok := s.withControl(src1[0], func() bool { return s.bitwiseCnot(sum, partial) })

	for i := 1; i < len(dest) && ok; i++ {
		sum = sum[1:]
		partial = partial[:len(partial)-1]
		ok = s.withControl(src1[i], func() bool { return s.increase(sum, partial) })
	}
	return ok
}

func (s *Synth) notEquals(dest gate.Line, src1, src2 []gate.Line) bool {
	if !s.equals(dest, src1, src2) {
		return false
	}
	s.Circuit.CreateAndAddNot(dest)
	return true
}

// Shift operations.

func (s *Synth) leftShift(dest, src1 []gate.Line, amount int) bool {
	if amount > len(dest) {
		return false
	}
	shifted := len(dest) - amount
	if len(src1) < shifted {
		return false
	}
	for i := 0; i < shifted; i++ {
		s.Circuit.CreateAndAddCnot(src1[i], dest[amount+i])
	}
	return true
}

func (s *Synth) rightShift(dest, src1 []gate.Line, amount int) bool {
	if len(dest) < amount {
		return false
	}
	shifted := len(dest) - amount
	if len(src1) < amount+shifted {
		return false
	}
	for i := 0; i < shifted; i++ {
		s.Circuit.CreateAndAddCnot(src1[amount+i], dest[i])
	}
	return true
}
