package qmc

import "sort"

// primeImplicants repeatedly combines adjacent terms (grouped by
// popcount, differing in exactly one non-dashed bit, matching dash
// masks) until no combination applies. Terms that were never combined
// in a round survive as prime implicants.
func primeImplicants(terms []minterm, n int) []minterm {
	var primes []minterm
	for len(terms) > 0 {
		groups := groupByPopcount(terms, n)
		marked := make(map[uint64]bool, len(terms))
		var next []minterm

		for g := 0; g < n; g++ {
			for _, a := range groups[g] {
				for _, b := range groups[g+1] {
					if combined, ok := a.combinable(b); ok {
						marked[a.key()] = true
						marked[b.key()] = true
						next = append(next, combined)
					}
				}
			}
		}

		for _, t := range terms {
			if !marked[t.key()] {
				primes = append(primes, t)
			}
		}
		terms = dedupMinterms(next)
	}
	return dedupMinterms(primes)
}

// groupByPopcount buckets terms by the number of set bits outside
// their dash mask, for the classical adjacency pass: only terms in
// neighbouring popcount groups can combine.
func groupByPopcount(terms []minterm, n int) [][]minterm {
	groups := make([][]minterm, n+2)
	for _, t := range terms {
		p := t.popcount()
		groups[p] = append(groups[p], t)
	}
	return groups
}

func sortMinterms(terms []minterm) {
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].value != terms[j].value {
			return terms[i].value < terms[j].value
		}
		return terms[i].dash < terms[j].dash
	})
}
