package circuit

import "errors"

// These sentinels name the emission-contract violations. The emission
// methods do not return them: they report a rejected gate through their
// boolean result, and the circuit stays unmutated in that case.
var (
	ErrLineOutOfRange             = errors.New("circuit: line index out of range")
	ErrSelfReferential            = errors.New("circuit: target overlaps an effective control")
	ErrControlTargetOverlap       = errors.New("circuit: caller-supplied control overlaps a target")
	ErrFredkinSameTarget          = errors.New("circuit: fredkin targets must differ")
	ErrFredkinCrossesOuterControl = errors.New("circuit: fredkin target crosses an outer-scope control line")
)
