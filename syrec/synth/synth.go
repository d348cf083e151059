// Package synth walks a syrec/ir program and emits the equivalent
// reversible gate stream onto a circuit.Circuit. The walk itself
// (module/statement/expression dispatch, the arithmetic templates, and
// constant-line reuse) is shared; only the three reversible binary
// operators (+, -, ^) and their fold into an enclosing assignment
// differ between the cost-aware and line-aware backends, so those six
// methods are pulled out into a Backend interface rather than
// duplicated.
package synth

import (
	"fmt"

	"github.com/kegliz/syrecgo/circuit"
	"github.com/kegliz/syrecgo/gate"
	"github.com/kegliz/syrecgo/syrec/ir"
)

// Settings mirrors the handful of key/value options the CLI/service
// layer accepts (spec'd settings surface): the bitwidth assumed for a
// variable declared without one, which module to enter first, and the
// line-naming format used when adding variable lines.
type Settings struct {
	DefaultBitwidth    int
	MainModule         string
	VariableNameFormat string
}

// DefaultSettings returns the documented defaults.
func DefaultSettings() Settings {
	return Settings{
		DefaultBitwidth:    32,
		VariableNameFormat: "%s%s.%d",
	}
}

// Backend supplies the operator-specific half of assignment and
// expression synthesis. ExpAdd/ExpSubtract/ExpExor synthesize a binary
// +,-,^ node that was NOT folded into its enclosing assignment (either
// because it sits under a different top-level operator, or the backend
// doesn't fold at all); AssignAdd/AssignSubtract/AssignExor apply the
// final `lhs op= rhs` once rhs has been computed.
type Backend interface {
	ExpAdd(s *Synth, bitwidth int, lhs, rhs []gate.Line) ([]gate.Line, bool)
	ExpSubtract(s *Synth, bitwidth int, lhs, rhs []gate.Line) ([]gate.Line, bool)
	ExpExor(s *Synth, bitwidth int, lhs, rhs []gate.Line) ([]gate.Line, bool)

	AssignAdd(s *Synth, lhs, rhs []gate.Line) bool
	AssignSubtract(s *Synth, lhs, rhs []gate.Line) bool
	AssignExor(s *Synth, lhs, rhs []gate.Line) bool
}

// chainFolder is implemented only by backends that can fold a run of
// same-operator binary nodes directly into the enclosing assignment's
// lhs lines instead of materialising every interior node (the
// line-aware backend). TryFold reports handled=false when the rhs
// shape doesn't qualify, in which case Synth falls through to the
// normal onExpression + Assign{Add,Subtract,Exor} path.
type chainFolder interface {
	TryFold(s *Synth, stmt *ir.AssignStatement, lhs []gate.Line) (handled, ok bool)
}

// Synth holds one synthesis run's mutable state. It is not reentrant
// across goroutines - create one per circuit being built.
type Synth struct {
	Circuit  *circuit.Circuit
	Settings Settings
	backend  Backend

	varLines       map[*ir.Variable]gate.Line
	freeConstLines map[bool][]gate.Line
	loopMap        map[string]int
	moduleStack    []*ir.Module
	bindStack      []map[string]*ir.VariableAccess

	err error
}

func newSynth(c *circuit.Circuit, settings Settings, backend Backend) *Synth {
	return &Synth{
		Circuit:        c,
		Settings:       settings,
		backend:        backend,
		varLines:       make(map[*ir.Variable]gate.Line),
		freeConstLines: map[bool][]gate.Line{false: nil, true: nil},
		loopMap:        make(map[string]int),
	}
}

// Synthesize finds the entry module (Settings.MainModule, falling back
// to a module literally named "main", falling back to the first
// declared module), allocates lines for its parameters and locals, and
// walks its body onto c. It returns false without further mutating c
// past the point of failure if any statement fails to synthesize.
func Synthesize(backend Backend, c *circuit.Circuit, program *ir.Program, settings Settings) (bool, error) {
	main, err := entryModule(program, settings.MainModule)
	if err != nil {
		return false, err
	}

	s := newSynth(c, settings, backend)
	s.moduleStack = append(s.moduleStack, main)
	s.addVariables(main.Parameters)
	s.addVariables(main.Locals)

	ok := s.processBlock(main.Statements)
	if !ok && s.err == nil {
		s.err = fmt.Errorf("synth: synthesis of module %q failed", main.Name)
	}
	return ok, s.err
}

func entryModule(program *ir.Program, name string) (*ir.Module, error) {
	if name != "" {
		m := program.FindModule(name)
		if m == nil {
			return nil, fmt.Errorf("synth: no module named %q", name)
		}
		return m, nil
	}
	if m := program.FindModule("main"); m != nil {
		return m, nil
	}
	if len(program.Modules) == 0 {
		return nil, fmt.Errorf("synth: program has no modules")
	}
	return program.Modules[0], nil
}
