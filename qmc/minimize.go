package qmc

import "github.com/kegliz/syrecgo/cube"

// Minimize runs Quine-McCluskey prime-implicant generation followed by
// cover reduction over onSet, an unordered set of concrete minterm
// values over n variables, and returns a set of cubes (with
// don't-cares) whose coverage is exactly onSet. The result is not
// checked here; CheckSolution checks a result against its onSet.
//
// Cover reduction: repeatedly extract essential primes (columns with a
// single covering row), then simplify by dropping dominated rows and
// dominating columns, falling back to a greedy most-columns-covered
// pick only when neither step makes progress.
func Minimize(onSet []uint64, n int) []cube.Cube {
	if len(onSet) <= 1 {
		return mintermsToCubes(toMinterms(onSet, n), n)
	}

	unique := make(map[uint64]struct{}, len(onSet))
	for _, v := range onSet {
		unique[v] = struct{}{}
	}

	init := make([]minterm, 0, len(unique))
	for v := range unique {
		init = append(init, newMinterm(v, n))
	}

	primes := primeImplicants(init, n)
	chart := newPrimeChart(primes, n)

	var solution []minterm
	for chart.size() > 0 {
		changed := chart.removeEssentials(&solution)
		if chart.simplify() {
			changed = true
		}
		if !changed && chart.size() > 0 {
			chart.removeHeuristic(&solution)
		}
	}

	return mintermsToCubes(solution, n)
}

// EvalCovers evaluates solution (an ESOP-style sum where each cube
// contributes its AND-of-literals) at v and reports whether any cube
// fires.
func EvalCovers(solution []cube.Cube, v uint64, n int) bool {
	for _, c := range solution {
		if cubeMatches(c, v, n) {
			return true
		}
	}
	return false
}

// CheckSolution verifies that solution covers exactly onSet over n
// variables: every on-value evaluates true and every off-value
// evaluates false.
func CheckSolution(solution []cube.Cube, onSet []uint64, n int) bool {
	on := make(map[uint64]struct{}, len(onSet))
	for _, v := range onSet {
		on[v] = struct{}{}
	}
	total := uint64(1) << uint(n)
	for v := uint64(0); v < total; v++ {
		_, isOn := on[v]
		if EvalCovers(solution, v, n) != isOn {
			return false
		}
	}
	return true
}

func cubeMatches(c cube.Cube, v uint64, n int) bool {
	for i := 0; i < n; i++ {
		// cube positions are MSB-first; variable i here is LSB-indexed
		// to match minterm.bitAt, so read from the back of the cube.
		pos := c.Width() - 1 - i
		bit := (v >> uint(i)) & 1
		switch c.At(pos) {
		case cube.Zero:
			if bit != 0 {
				return false
			}
		case cube.One:
			if bit != 1 {
				return false
			}
		}
	}
	return true
}

func toMinterms(onSet []uint64, n int) []minterm {
	out := make([]minterm, len(onSet))
	for i, v := range onSet {
		out[i] = newMinterm(v, n)
	}
	return out
}

func mintermsToCubes(terms []minterm, n int) []cube.Cube {
	out := make([]cube.Cube, len(terms))
	for i, t := range terms {
		vals := make([]cube.Value, n)
		for pos := 0; pos < n; pos++ {
			// minterm bits are LSB-indexed; cube positions are MSB-first.
			switch t.bitAt(pos) {
			case 1:
				vals[n-1-pos] = cube.One
			case 0:
				vals[n-1-pos] = cube.Zero
			default:
				vals[n-1-pos] = cube.DontCare
			}
		}
		out[i] = cube.New(vals...)
	}
	return out
}
