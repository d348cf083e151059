package encoding

import (
	"math/bits"
	"sort"

	"github.com/kegliz/syrecgo/cube"
)

// bucket is one power-of-two-sized slice of an output's occurrences,
// the phantom output a non-power-of-two frequency is split into
// before packing.
type bucket struct {
	outputKey string
	size      int
}

// EncodeWithoutAdditionalLines assigns every entry of tt a distinct
// fixed-width code of log2(entry count) bits, by splitting
// each colliding output's occurrence count into power-of-two buckets
// and packing those buckets, largest first, into contiguous ranges of
// a code space sized to the table's entry count. tt must already be
// fully defined (every concrete input present, e.g. via
// TruthTable.Extend) so that its entry count is a power of two and
// the packing tiles exactly.
//
// This produces the same result a Huffman tree built directly over
// the power-of-two buckets would: every leaf in such a tree sits at
// depth log2(totalEntries) - log2(bucketSize) + log2(bucketSize) =
// log2(totalEntries), a constant, so no additional garbage bits are
// ever required - only the bucket assignment below, in which each
// entry takes the next unused code of its output's buckets in order.
func EncodeWithoutAdditionalLines(tt *cube.TruthTable) *cube.TruthTable {
	entries := tt.Entries()
	total := len(entries)
	if total == 0 {
		return tt
	}
	codeWidth := bits.Len(uint(total - 1))
	if total&(total-1) != 0 {
		codeWidth = bits.Len(uint(total))
	}

	freq := make(map[string]int)
	order := make([]string, 0)
	for _, e := range entries {
		key := e.Output.String()
		if _, seen := freq[key]; !seen {
			order = append(order, key)
		}
		freq[key]++
	}

	var buckets []bucket
	for _, key := range order {
		remaining := freq[key]
		for remaining > 0 {
			p := 1 << (bits.Len(uint(remaining)) - 1)
			buckets = append(buckets, bucket{outputKey: key, size: p})
			remaining -= p
		}
	}
	sort.SliceStable(buckets, func(i, j int) bool { return buckets[i].size > buckets[j].size })

	type codeQueue struct {
		codes []int
	}
	queues := make(map[string]*codeQueue)
	ptr := 0
	for _, b := range buckets {
		q, ok := queues[b.outputKey]
		if !ok {
			q = &codeQueue{}
			queues[b.outputKey] = q
		}
		for i := 0; i < b.size; i++ {
			q.codes = append(q.codes, ptr+i)
		}
		ptr += b.size
	}

	cursor := make(map[string]int)
	out := cube.New()
	for _, e := range entries {
		key := e.Output.String()
		q := queues[key]
		idx := cursor[key]
		cursor[key] = idx + 1
		code := cube.FromInteger(uint64(q.codes[idx]), codeWidth)
		out.Insert(e.Input, code)
	}
	return out
}
