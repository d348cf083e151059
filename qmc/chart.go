package qmc

// primeChart maps each concrete minterm value ("column") to the list
// of prime terms ("rows") that cover it.
type primeChart struct {
	columns map[uint64][]minterm
	n       int
}

func newPrimeChart(primes []minterm, n int) *primeChart {
	c := &primeChart{columns: make(map[uint64][]minterm), n: n}
	for _, p := range primes {
		for _, v := range p.covers() {
			c.columns[v] = append(c.columns[v], p)
		}
	}
	for v := range c.columns {
		sortMinterms(c.columns[v])
	}
	return c
}

func (c *primeChart) size() int { return len(c.columns) }

// removeEssentials finds every column with exactly one covering row,
// adds that row to the solution once, and removes every column it
// covers. Reports whether any essential prime was found this call.
func (c *primeChart) removeEssentials(solution *[]minterm) bool {
	added := make(map[uint64]minterm)
	for _, rows := range c.columns {
		if len(rows) == 1 {
			added[rows[0].key()] = rows[0]
		}
	}
	if len(added) == 0 {
		return false
	}
	for _, term := range added {
		*solution = append(*solution, term)
		for _, v := range term.covers() {
			delete(c.columns, v)
		}
	}
	return true
}

// simplify applies row-dominance and column-dominance reduction once,
// reporting whether anything changed.
func (c *primeChart) simplify() bool {
	changed := false

	// Dominating columns: a column whose covering-row-set is a strict
	// superset of another column's is redundant and can be dropped.
	for colA, rowsA := range c.columns {
		for colB, rowsB := range c.columns {
			if colA == colB {
				continue
			}
			if includesRows(rowsB, rowsA) && !includesRows(rowsA, rowsB) {
				delete(c.columns, colB)
				changed = true
			}
		}
	}

	// Transpose to rows: a prime whose covered-column-set is a subset
	// of another prime's is dominated and can be dropped.
	rows := make(map[uint64][]uint64) // prime.key() -> covered columns
	terms := make(map[uint64]minterm)
	for col, primesHere := range c.columns {
		for _, p := range primesHere {
			rows[p.key()] = append(rows[p.key()], col)
			terms[p.key()] = p
		}
	}
	dominated := make(map[uint64]bool)
	for ka, colsA := range rows {
		for kb, colsB := range rows {
			if ka == kb || dominated[ka] {
				continue
			}
			if includesUint64(colsB, colsA) && !includesUint64(colsA, colsB) {
				dominated[ka] = true
				changed = true
			}
		}
	}
	if len(dominated) > 0 {
		for col, primesHere := range c.columns {
			kept := primesHere[:0:0]
			for _, p := range primesHere {
				if !dominated[p.key()] {
					kept = append(kept, p)
				}
			}
			c.columns[col] = kept
		}
	}

	return changed
}

// removeHeuristic picks the prime covering the most remaining columns,
// adds it to the solution, and removes every column it covers.
func (c *primeChart) removeHeuristic(solution *[]minterm) {
	covers := make(map[uint64]int)
	terms := make(map[uint64]minterm)
	for _, rows := range c.columns {
		for _, p := range rows {
			covers[p.key()]++
			terms[p.key()] = p
		}
	}
	var best minterm
	bestCount := -1
	for k, n := range covers {
		if n > bestCount {
			bestCount = n
			best = terms[k]
		}
	}
	*solution = append(*solution, best)
	for _, v := range best.covers() {
		delete(c.columns, v)
	}
}

func includesRows(a, b []minterm) bool {
	set := make(map[uint64]struct{}, len(a))
	for _, m := range a {
		set[m.key()] = struct{}{}
	}
	for _, m := range b {
		if _, ok := set[m.key()]; !ok {
			return false
		}
	}
	return true
}

func includesUint64(a, b []uint64) bool {
	set := make(map[uint64]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}
	for _, v := range b {
		if _, ok := set[v]; !ok {
			return false
		}
	}
	return true
}
