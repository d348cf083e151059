// Package qmc implements Quine-McCluskey ESOP minimisation: given an
// unordered set of on-minterms over n variables, it produces a small
// set of prime cubes (with don't-cares) whose disjunction covers
// exactly the on-set.
package qmc

import "math/bits"

// minterm is a concrete or partially-specified term: value holds the
// concrete bits, dash marks which bit positions are don't-cares (and
// therefore ignored in value).
type minterm struct {
	value uint64
	dash  uint64
	n     int
}

func newMinterm(value uint64, n int) minterm {
	return minterm{value: value, n: n}
}

// popcount counts the set bits outside the don't-care mask.
func (m minterm) popcount() int {
	return bits.OnesCount64(m.value &^ m.dash)
}

// combinable reports whether m and other differ in exactly one
// non-dashed bit and share the same dash mask, the classical
// adjacency condition for combining two terms into one with an
// additional don't-care.
func (m minterm) combinable(other minterm) (combined minterm, ok bool) {
	if m.dash != other.dash {
		return minterm{}, false
	}
	diff := m.value ^ other.value
	diff &^= m.dash
	if diff == 0 || diff&(diff-1) != 0 {
		return minterm{}, false
	}
	return minterm{value: m.value &^ diff, dash: m.dash | diff, n: m.n}, true
}

// key identifies a minterm for deduplication: dashed positions don't
// matter for equality against the dash mask, so both fields matter.
func (m minterm) key() uint64 {
	return m.value<<32 | m.dash
}

// covers enumerates the concrete minterm values this term matches by
// expanding its dash positions.
func (m minterm) covers() []uint64 {
	var dashPositions []int
	for i := 0; i < m.n; i++ {
		if m.dash&(1<<uint(i)) != 0 {
			dashPositions = append(dashPositions, i)
		}
	}
	count := 1 << len(dashPositions)
	out := make([]uint64, 0, count)
	for mask := 0; mask < count; mask++ {
		v := m.value
		for bit, pos := range dashPositions {
			if mask&(1<<bit) != 0 {
				v |= 1 << uint(pos)
			} else {
				v &^= 1 << uint(pos)
			}
		}
		out = append(out, v)
	}
	return out
}

// bitAt returns 1, 0 or -1 (don't-care) for the i-th variable (bit i,
// LSB-indexed as in the combination algorithm).
func (m minterm) bitAt(i int) int {
	if m.dash&(1<<uint(i)) != 0 {
		return -1
	}
	if m.value&(1<<uint(i)) != 0 {
		return 1
	}
	return 0
}

// dedupMinterms removes duplicate terms by (value, dash) pair,
// preserving first-seen order.
func dedupMinterms(terms []minterm) []minterm {
	seen := make(map[uint64]struct{}, len(terms))
	out := terms[:0:0]
	for _, t := range terms {
		k := t.key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, t)
	}
	return out
}
