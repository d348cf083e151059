package dd

// terminalNode is the single shared leaf; it carries no children and
// is never garbage collected.
var terminalNode = &Node{variable: 0}

// ZeroTerminal and OneTerminal are the two possible terminal edges.
var (
	ZeroTerminal = Edge{Target: terminalNode, Weight: 0}
	OneTerminal  = Edge{Target: terminalNode, Weight: 1}
)

// childKey identifies a node for hash-consing: same variable, same
// four child edges.
type childKey struct {
	variable int
	children [4]Edge
}

// Manager owns the unique table and compute caches for one family of
// diagrams built and reshaped together.
type Manager struct {
	unique  map[childKey]*Node
	compute map[computeKey]Edge
}

// New returns an empty Manager.
func New() *Manager {
	return &Manager{
		unique:  make(map[childKey]*Node),
		compute: make(map[computeKey]Edge),
	}
}

// MakeNode returns the canonical edge for a node at level variable
// with the given four children. If all four children are identical,
// the node is redundant (don't-care elimination) and that shared edge
// is returned directly instead of allocating a new node.
func (m *Manager) MakeNode(variable int, children [4]Edge) Edge {
	if children[0].Equal(children[1]) && children[0].Equal(children[2]) && children[0].Equal(children[3]) {
		return children[0]
	}
	key := childKey{variable: variable, children: children}
	if n, ok := m.unique[key]; ok {
		return Edge{Target: n, Weight: 1}
	}
	n := &Node{variable: variable, children: children}
	m.unique[key] = n
	return Edge{Target: n, Weight: 1}
}

// IncRef increases the reference count of e's target node (terminal
// edges are not tracked).
func (m *Manager) IncRef(e Edge) {
	if e.IsTerminal() {
		return
	}
	e.Target.refCount++
	for _, c := range e.Target.children {
		m.IncRef(c)
	}
}

// DecRef decreases the reference count of e's target node, recursing
// into its children. It does not reclaim memory itself; call
// GarbageCollect to do that.
func (m *Manager) DecRef(e Edge) {
	if e.IsTerminal() {
		return
	}
	if e.Target.refCount > 0 {
		e.Target.refCount--
	}
	for _, c := range e.Target.children {
		m.DecRef(c)
	}
}

// GarbageCollect removes every node with a zero reference count from
// the unique table and clears the compute cache, since cached results
// may reference reclaimed nodes.
func (m *Manager) GarbageCollect() {
	for k, n := range m.unique {
		if n.refCount == 0 {
			delete(m.unique, k)
		}
	}
	m.compute = make(map[computeKey]Edge)
}

// IsIdentity reports whether e is the identity diagram of its own
// height: at every level down to the terminal, edges 0 and 3 (the
// "same value in, same value out" diagonal) are the one-terminal
// (recursively the identity of level-1), and edges 1 and 2
// (off-diagonal) are the zero-terminal.
func (m *Manager) IsIdentity(e Edge) bool {
	if e.IsTerminal() {
		return e.Weight == 1
	}
	n := e.Target
	return m.IsIdentity(n.children[0]) &&
		n.children[1].IsZeroTerminal() &&
		n.children[2].IsZeroTerminal() &&
		m.IsIdentity(n.children[3])
}

// IsDontCare reports whether e's target node has all four children
// identical - the condition MakeNode itself eliminates, but a caller
// may still hold an edge built before a later GarbageCollect pass, so
// the predicate is exposed for Algorithm Q's traversal.
func IsDontCare(e Edge) bool {
	if e.IsTerminal() {
		return false
	}
	c := e.Target.children
	return c[0].Equal(c[1]) && c[0].Equal(c[2]) && c[0].Equal(c[3])
}

// Height returns the diagram's variable count (the root's variable
// level).
func Height(e Edge) int {
	if e.IsTerminal() {
		return 0
	}
	return e.Target.variable
}
