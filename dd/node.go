// Package dd implements a shared, reduced, ordered matrix decision
// diagram: the representation Algorithm Q reshapes into the identity
// while emitting a gate sequence (see package ddsynth).
package dd

// Node is one level of the diagram: a variable index (0 is the leaf
// level) and four child edges, indexed 2*out+in as the rest of this
// core encodes a cube's (output, input) bit pair.
type Node struct {
	variable int
	children [4]Edge
	refCount int
}

// Variable returns the node's level; 0 marks the terminal.
func (n *Node) Variable() int { return n.variable }

// Child returns the edge at index i (0..3, 2*out+in).
func (n *Node) Child(i int) Edge { return n.children[i] }

// Edge is a pointer to a node plus a 0/1 weight. This core's diagrams
// carry only Boolean weights - no complex factoring - since synthesis
// only needs the Boolean skeleton of the represented relation.
type Edge struct {
	Target *Node
	Weight uint8
}

// IsTerminal reports whether e points at the terminal node.
func (e Edge) IsTerminal() bool { return e.Target == terminalNode }

// IsZeroTerminal reports whether e is the terminal edge with weight 0.
func (e Edge) IsZeroTerminal() bool { return e.IsTerminal() && e.Weight == 0 }

// IsOneTerminal reports whether e is the terminal edge with weight 1.
func (e Edge) IsOneTerminal() bool { return e.IsTerminal() && e.Weight == 1 }

// Equal reports whether two edges point at the same node with the
// same weight.
func (e Edge) Equal(other Edge) bool { return e.Target == other.Target && e.Weight == other.Weight }
