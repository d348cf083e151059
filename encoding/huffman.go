// Package encoding turns a non-reversible truth table (one whose output
// values repeat) into a reversible one by assigning each output
// pattern a distinct code, either by growing the output width with
// extra ("garbage") bits or by giving every entry a code of
// log2(entry count) bits, which for a fully-defined table is the input
// width.
package encoding

import (
	"container/heap"
	"math/bits"

	"github.com/kegliz/syrecgo/cube"
)

// huffmanNode is either a leaf (carrying one distinct output pattern)
// or an internal node built by combining two others. freq follows the
// classic max-plus-one rule: a leaf's freq is the number of garbage
// bits needed to disambiguate its occurrences (⌈log2(count)⌉), and an
// internal node's freq is one more than the larger of its children -
// this tracks tree depth, not a frequency sum.
type huffmanNode struct {
	output cube.Cube
	isLeaf bool
	freq   int
	left   *huffmanNode
	right  *huffmanNode
}

type nodeHeap []*huffmanNode

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].freq < h[j].freq }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*huffmanNode)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// EncodeWithAdditionalLines replaces every output in tt with a
// prefix-free Huffman path over its distinct output values, followed
// by enough further bits to index the occurrences that share one
// value apart, don't-care-padded to a common width. Two entries with
// different original outputs can never collide (Huffman paths are
// prefix-free); two entries with the same original output collide in
// their shared path but differ in the index suffix. If tt is already
// reversible (every output pattern occurs exactly once), it is
// returned unchanged.
func EncodeWithAdditionalLines(tt *cube.TruthTable) *cube.TruthTable {
	entries := tt.Entries()
	freq := make(map[string]int)
	outputs := make(map[string]cube.Cube)
	for _, e := range entries {
		key := e.Output.String()
		freq[key]++
		outputs[key] = e.Output
	}
	if len(freq) == len(entries) {
		return tt
	}

	h := &nodeHeap{}
	heap.Init(h)
	for key, count := range freq {
		heap.Push(h, &huffmanNode{output: outputs[key], isLeaf: true, freq: requiredGarbageBits(count)})
	}

	for h.Len() > 1 {
		left := heap.Pop(h).(*huffmanNode)
		right := heap.Pop(h).(*huffmanNode)
		parentFreq := left.freq
		if right.freq > parentFreq {
			parentFreq = right.freq
		}
		heap.Push(h, &huffmanNode{freq: parentFreq + 1, left: left, right: right})
	}

	// codes holds each distinct output value's Huffman path: a
	// prefix-free bit sequence across leaves, so two entries whose
	// output values differ can never collide no matter what follows
	// the path. Entries that share one output value still collide with
	// each other at this point - groupBits reserves enough further
	// bits per leaf to index those occurrences apart.
	codes := make(map[string][]cube.Value)
	var assign func(n *huffmanNode, path []cube.Value)
	assign = func(n *huffmanNode, path []cube.Value) {
		if n == nil {
			return
		}
		if n.isLeaf {
			codes[n.output.String()] = append([]cube.Value(nil), path...)
			return
		}
		assign(n.left, append(path, cube.Zero))
		assign(n.right, append(path, cube.One))
	}
	if h.Len() == 1 {
		assign((*h)[0], nil)
	}

	groupBits := make(map[string]int, len(freq))
	maxLen := 0
	for key, count := range freq {
		total := len(codes[key]) + requiredGarbageBits(count)
		groupBits[key] = requiredGarbageBits(count)
		if total > maxLen {
			maxLen = total
		}
	}

	out := cube.New()
	occurrence := make(map[string]int, len(freq))
	for _, e := range entries {
		key := e.Output.String()
		idx := occurrence[key]
		occurrence[key] = idx + 1

		full := append([]cube.Value(nil), codes[key]...)
		full = append(full, indexBits(idx, groupBits[key])...)
		for len(full) < maxLen {
			full = append(full, cube.DontCare)
		}
		out.Insert(e.Input, cube.New(full...))
	}
	return out
}

// indexBits renders idx as a fixed-width binary value, MSB first.
func indexBits(idx, width int) []cube.Value {
	out := make([]cube.Value, width)
	for i := 0; i < width; i++ {
		bit := (idx >> uint(width-1-i)) & 1
		if bit == 1 {
			out[i] = cube.One
		} else {
			out[i] = cube.Zero
		}
	}
	return out
}

// requiredGarbageBits returns the number of additional output bits
// needed to disambiguate count colliding occurrences of the same
// output pattern.
func requiredGarbageBits(count int) int {
	if count <= 1 {
		return 0
	}
	return bits.Len(uint(count - 1))
}
