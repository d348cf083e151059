package synth

import (
	"fmt"

	"github.com/kegliz/syrecgo/gate"
	"github.com/kegliz/syrecgo/syrec/ir"
)

// addVariables allocates one circuit line per bit of every variable in
// vars, flattened row-major across any array dimensions, LSB-first
// within each scalar element. In/Wire variables are marked garbage
// (their value at the circuit's output is not a result); Out/Wire variables
// start constant-zero.
func (s *Synth) addVariables(vars []*ir.Variable) {
	for _, v := range vars {
		s.varLines[v] = gate.Line(s.Circuit.NumLines())
		constZero := false
		var constant *bool
		if v.Type == ir.Out || v.Type == ir.Wire {
			constant = &constZero
		}
		garbage := v.Type == ir.In || v.Type == ir.Wire
		s.addVariableLines(v, v.Dimensions, constant, garbage, "")
	}
}

func (s *Synth) addVariableLines(v *ir.Variable, dims []int, constant *bool, garbage bool, arraySuffix string) {
	if len(dims) == 0 {
		for i := 0; i < v.Bitwidth; i++ {
			name := fmt.Sprintf(s.nameFormat(), v.Name, arraySuffix, i)
			s.Circuit.AddLine(name, name, constant, garbage)
		}
		return
	}
	for i := 0; i < dims[0]; i++ {
		s.addVariableLines(v, dims[1:], constant, garbage, fmt.Sprintf("%s[%d]", arraySuffix, i))
	}
}

func (s *Synth) nameFormat() string {
	if s.Settings.VariableNameFormat != "" {
		return s.Settings.VariableNameFormat
	}
	return "%s%s.%d"
}

// bitwidth returns v's declared bitwidth, falling back to the run's
// default when it is unset.
func (s *Synth) bitwidth(v *ir.Variable) int {
	if v.Bitwidth > 0 {
		return v.Bitwidth
	}
	if s.Settings.DefaultBitwidth > 0 {
		return s.Settings.DefaultBitwidth
	}
	return 32
}

// resolveName looks up a variable by name in the current call frame:
// first in the top of the binding stack (an already-resolved actual
// passed down from an enclosing Call/Uncall), then in the current
// module's own parameters and locals.
func (s *Synth) resolveName(name string) *ir.VariableAccess {
	if len(s.bindStack) > 0 {
		top := s.bindStack[len(s.bindStack)-1]
		if access, ok := top[name]; ok {
			return access
		}
	}
	current := s.moduleStack[len(s.moduleStack)-1]
	v := current.FindVariable(name)
	if v == nil {
		s.fail(fmt.Errorf("synth: undefined variable %q in module %q", name, current.Name))
		return nil
	}
	return &ir.VariableAccess{Var: v}
}

// getVariables resolves a VariableAccess down to its concrete circuit
// lines: Var's own base offset, shifted by any array indexes, then
// narrowed to Range if present (otherwise every bit of the element).
func (s *Synth) getVariables(access *ir.VariableAccess) []gate.Line {
	access = s.resolveThroughBinding(access)
	if access == nil {
		return nil
	}

	base, ok := s.varLines[access.Var]
	if !ok {
		s.fail(fmt.Errorf("synth: variable %q has no allocated lines", access.Var.Name))
		return nil
	}
	offset := int(base) + s.indexOffset(access)

	var lines []gate.Line
	if access.Range != nil {
		first := access.Range.First.Evaluate(s.loopMap)
		second := access.Range.Second.Evaluate(s.loopMap)
		if first <= second {
			for i := first; i <= second; i++ {
				lines = append(lines, gate.Line(offset+i))
			}
		} else {
			for i := first; i >= second; i-- {
				lines = append(lines, gate.Line(offset+i))
			}
		}
		return lines
	}
	for i := 0; i < access.Var.Bitwidth; i++ {
		lines = append(lines, gate.Line(offset+i))
	}
	return lines
}

// resolveThroughBinding substitutes access.Var for whatever it is
// currently bound to by an enclosing Call/Uncall's parameter passing,
// without mutating access or the IR it came from.
func (s *Synth) resolveThroughBinding(access *ir.VariableAccess) *ir.VariableAccess {
	if len(s.bindStack) == 0 {
		return access
	}
	top := s.bindStack[len(s.bindStack)-1]
	bound, ok := top[access.Var.Name]
	if !ok {
		return access
	}
	return &ir.VariableAccess{Var: bound.Var, Indexes: access.Indexes, Range: access.Range}
}

func (s *Synth) indexOffset(access *ir.VariableAccess) int {
	if len(access.Indexes) == 0 {
		return 0
	}
	v := access.Var
	offset := 0
	for i, idxExpr := range access.Indexes {
		idx := s.evalConstExpression(idxExpr)
		stride := v.Bitwidth
		for _, d := range v.Dimensions[i+1:] {
			stride *= d
		}
		offset += idx * stride
	}
	return offset
}

// evalConstExpression evaluates an array-index expression, which is
// always a compile-time constant in SyReC (a NumericExpression).
func (s *Synth) evalConstExpression(e ir.Expression) int {
	if n, ok := e.(*ir.NumericExpression); ok {
		return n.Value.Evaluate(s.loopMap)
	}
	s.fail(fmt.Errorf("synth: array index must be a constant expression"))
	return 0
}

// getConstantLine returns a line initialised to value, reusing a freed
// constant line if one of the right polarity (or, failing that, the
// wrong polarity plus a NOT) is available, and only allocating a new
// garbage line as a last resort.
func (s *Synth) getConstantLine(value bool) gate.Line {
	if free := s.freeConstLines[value]; len(free) > 0 {
		line := free[len(free)-1]
		s.freeConstLines[value] = free[:len(free)-1]
		return line
	}
	if free := s.freeConstLines[!value]; len(free) > 0 {
		line := free[len(free)-1]
		s.freeConstLines[!value] = free[:len(free)-1]
		s.Circuit.CreateAndAddNot(line)
		return line
	}
	v := value
	name := fmt.Sprintf("const_%d", boolToInt(value))
	return s.Circuit.AddLine(name, "garbage", &v, true)
}

// getConstantLines returns bitwidth constant lines encoding value,
// LSB-first.
func (s *Synth) getConstantLines(bitwidth int, value uint64) []gate.Line {
	lines := make([]gate.Line, bitwidth)
	for i := 0; i < bitwidth; i++ {
		lines[i] = s.getConstantLine(value&(1<<uint(i)) != 0)
	}
	return lines
}

// freeConstantLines returns freshly-finished working lines to the free
// pool keyed by their current value, so a later getConstantLine can
// reuse them instead of growing the circuit.
func (s *Synth) freeConstantLines(lines []gate.Line, value bool) {
	s.freeConstLines[value] = append(s.freeConstLines[value], lines...)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (s *Synth) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}
