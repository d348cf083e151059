package circuit

import "github.com/kegliz/syrecgo/gate"

// QuantumCost sums the NCV (NOT/CNOT/controlled-V) decomposition cost of
// every gate, the classic Toffoli-quantum-cost table keyed by control
// count and number of unused ("empty") lines available for
// decomposition ancillas. A Fredkin is costed as a Toffoli with one
// extra control.
func (c *Circuit) QuantumCost() uint64 {
	var total uint64
	for _, g := range c.gates {
		total += singleGateQuantumCost(g, c.numLines)
	}
	return total
}

// TransistorCost sums 8 transistors per control line across all gates.
func (c *Circuit) TransistorCost() uint64 {
	var total uint64
	for _, g := range c.gates {
		total += 8 * uint64(g.NumControls())
	}
	return total
}

func singleGateQuantumCost(g gate.Gate, lines int) uint64 {
	n := uint64(lines)
	ctrl := int64(g.NumControls())
	if g.Type() == gate.Fredkin {
		ctrl++
	}
	if ctrl < 0 {
		ctrl = 0
	}
	c := uint64(ctrl)
	if c > n-1 {
		c = n - 1
	}
	e := n - c - 1 // number of empty (unused) lines

	switch c {
	case 0, 1:
		return 1
	case 2:
		return 5
	case 3:
		return 13
	case 4:
		if e >= 2 {
			return 26
		}
		return 29
	case 5:
		switch {
		case e >= 3:
			return 38
		case e >= 1:
			return 52
		default:
			return 61
		}
	case 6:
		switch {
		case e >= 4:
			return 50
		case e >= 1:
			return 80
		default:
			return 125
		}
	case 7:
		switch {
		case e >= 5:
			return 62
		case e >= 1:
			return 100
		default:
			return 253
		}
	case 8:
		switch {
		case e >= 6:
			return 74
		case e >= 1:
			return 128
		default:
			return 509
		}
	case 9:
		switch {
		case e >= 7:
			return 86
		case e >= 1:
			return 152
		default:
			return 1021
		}
	default:
		switch {
		case e >= c-2:
			return 12*c - 33
		case e >= 1:
			return 24*c - 87
		default:
			return (uint64(1) << (c + 1)) - 3
		}
	}
}
