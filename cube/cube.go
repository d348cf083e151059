// Package cube implements ternary cubes and the truth-table container
// used to describe a partially-specified, possibly non-reversible
// Boolean function before it reaches decision-diagram or ESOP synthesis.
package cube

import "strings"

// Value is one ternary cube position: a concrete 0, a concrete 1, or a
// don't-care.
type Value int

const (
	Zero Value = iota
	One
	DontCare
)

func (v Value) String() string {
	switch v {
	case Zero:
		return "0"
	case One:
		return "1"
	default:
		return "-"
	}
}

// Cube is an immutable ternary vector, most-significant position first.
type Cube struct {
	values []Value
}

// New copies vs into a new Cube.
func New(vs ...Value) Cube {
	c := make([]Value, len(vs))
	copy(c, vs)
	return Cube{values: c}
}

// FromInteger builds a fully-concrete width-w cube from v, MSB first.
func FromInteger(v uint64, w int) Cube {
	out := make([]Value, w)
	for i := 0; i < w; i++ {
		bit := (v >> uint(w-1-i)) & 1
		if bit == 1 {
			out[i] = One
		} else {
			out[i] = Zero
		}
	}
	return Cube{values: out}
}

// Width returns the number of positions in the cube.
func (c Cube) Width() int { return len(c.values) }

// At returns the value at position i.
func (c Cube) At(i int) Value { return c.values[i] }

// Values returns a defensive copy of the underlying ternary vector.
func (c Cube) Values() []Value {
	out := make([]Value, len(c.values))
	copy(out, c.values)
	return out
}

// HasDontCare reports whether any position is a wildcard.
func (c Cube) HasDontCare() bool {
	for _, v := range c.values {
		if v == DontCare {
			return true
		}
	}
	return false
}

// ToInteger packs a fully-concrete cube into an unsigned integer, MSB
// first. The second return value is false if the cube contains a
// don't-care, since those have no single integer value.
func (c Cube) ToInteger() (uint64, bool) {
	var v uint64
	for _, x := range c.values {
		v <<= 1
		switch x {
		case One:
			v |= 1
		case DontCare:
			return 0, false
		}
	}
	return v, true
}

// String renders the cube as a sequence of '0'/'1'/'-' characters.
func (c Cube) String() string {
	var b strings.Builder
	for _, v := range c.values {
		b.WriteString(v.String())
	}
	return b.String()
}

// Equal reports structural equality against another cube, including
// don't-care positions (a don't-care equals only another don't-care).
func (c Cube) Equal(other Cube) bool {
	if len(c.values) != len(other.values) {
		return false
	}
	for i, v := range c.values {
		if v != other.values[i] {
			return false
		}
	}
	return true
}

// Matches reports whether c, used as a pattern, matches a fully-concrete
// cube: a don't-care position in c matches either concrete value, and a
// concrete position in c must match exactly.
func (c Cube) Matches(concrete Cube) bool {
	if len(c.values) != len(concrete.values) {
		return false
	}
	for i, v := range c.values {
		if v == DontCare {
			continue
		}
		if v != concrete.values[i] {
			return false
		}
	}
	return true
}

// CompleteCubes enumerates every fully-concrete cube covered by c,
// expanding don't-cares in position order.
func (c Cube) CompleteCubes() []Cube {
	dcPositions := make([]int, 0)
	for i, v := range c.values {
		if v == DontCare {
			dcPositions = append(dcPositions, i)
		}
	}
	if len(dcPositions) == 0 {
		return []Cube{c}
	}
	n := 1 << len(dcPositions)
	out := make([]Cube, 0, n)
	for mask := 0; mask < n; mask++ {
		vals := c.Values()
		for bit, pos := range dcPositions {
			if mask&(1<<bit) != 0 {
				vals[pos] = One
			} else {
				vals[pos] = Zero
			}
		}
		out = append(out, Cube{values: vals})
	}
	return out
}

// InsertZero returns a copy of c with a concrete 0 inserted at the
// front (MSB side).
func (c Cube) InsertZero() Cube {
	out := make([]Value, 0, len(c.values)+1)
	out = append(out, Zero)
	out = append(out, c.values...)
	return Cube{values: out}
}

// AppendZero returns a copy of c with a concrete 0 appended at the
// back (LSB side).
func (c Cube) AppendZero() Cube {
	out := make([]Value, len(c.values)+1)
	copy(out, c.values)
	out[len(out)-1] = Zero
	return Cube{values: out}
}

// AppendOne returns a copy of c with a concrete 1 appended at the
// back (LSB side).
func (c Cube) AppendOne() Cube {
	out := make([]Value, len(c.values)+1)
	copy(out, c.values)
	out[len(out)-1] = One
	return Cube{values: out}
}

// FindMissingCube returns a fully-concrete cube of the given width that
// is not equal (under Equal, not Matches) to any cube in present, or
// false if every concrete cube of that width is present.
func FindMissingCube(width int, present []Cube) (Cube, bool) {
	seen := make(map[string]struct{}, len(present))
	for _, c := range present {
		seen[c.String()] = struct{}{}
	}
	n := uint64(1) << uint(width)
	for v := uint64(0); v < n; v++ {
		candidate := FromInteger(v, width)
		if _, ok := seen[candidate.String()]; !ok {
			return candidate, true
		}
	}
	return Cube{}, false
}
