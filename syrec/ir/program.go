// Package ir defines the SyReC program representation the synthesis
// core consumes read-only: modules, variables, statements and
// expressions. Nothing in this package parses SyReC source text -
// programs arrive already built, typically by a front end external to
// this module, or by direct construction (as the synth package's own
// tests do).
//
// Statement and Expression are open sum types. Rather than model them
// as an inheritance hierarchy, each is a marker interface implemented
// by a fixed set of concrete struct variants; synth dispatches on the
// concrete type with a type switch.
package ir

// VarType classifies how a variable's storage is shared with its
// module's caller.
type VarType int

const (
	In VarType = iota
	Out
	Inout
	Wire
	State
)

func (t VarType) String() string {
	switch t {
	case In:
		return "in"
	case Out:
		return "out"
	case Inout:
		return "inout"
	case Wire:
		return "wire"
	case State:
		return "state"
	default:
		return "unknown"
	}
}

// Variable is a declared name: a parameter, a module-local, or a
// wire/state. Dimensions is empty for a scalar; a non-empty Dimensions
// declares a (possibly multi-dimensional) array, flattened row-major
// with Bitwidth bits per scalar element.
type Variable struct {
	Type       VarType
	Name       string
	Dimensions []int
	Bitwidth   int
}

// Module is one SyReC procedure: its formal parameters, its locals
// (wires and state variables private to the module), and its body.
type Module struct {
	Name       string
	Parameters []*Variable
	Locals     []*Variable
	Statements []Statement
}

// Variables returns every variable the module declares, parameters
// first, in declaration order.
func (m *Module) Variables() []*Variable {
	all := make([]*Variable, 0, len(m.Parameters)+len(m.Locals))
	all = append(all, m.Parameters...)
	all = append(all, m.Locals...)
	return all
}

// FindVariable looks up a parameter or local by name.
func (m *Module) FindVariable(name string) *Variable {
	for _, v := range m.Parameters {
		if v.Name == name {
			return v
		}
	}
	for _, v := range m.Locals {
		if v.Name == name {
			return v
		}
	}
	return nil
}

// Program is the root: an ordered set of modules.
type Program struct {
	Modules []*Module
}

// FindModule returns the module named name, or nil.
func (p *Program) FindModule(name string) *Module {
	for _, m := range p.Modules {
		if m.Name == name {
			return m
		}
	}
	return nil
}
