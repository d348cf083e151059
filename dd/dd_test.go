package dd

import (
	"testing"

	"github.com/kegliz/syrecgo/cube"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityTable(t *testing.T, width int) *cube.TruthTable {
	t.Helper()
	tt := cube.New()
	total := uint64(1) << uint(width)
	for v := uint64(0); v < total; v++ {
		c := cube.FromInteger(v, width)
		require.True(t, tt.Insert(c, c))
	}
	return tt
}

func TestBuildFromTruthTableEmptyIsZero(t *testing.T) {
	m := New()
	tt := cube.New()
	e := m.BuildFromTruthTable(tt)
	assert.True(t, e.IsZeroTerminal())
}

func TestBuildFromTruthTableSingleBitIdentity(t *testing.T) {
	m := New()
	tt := identityTable(t, 1)
	e := m.BuildFromTruthTable(tt)
	assert.True(t, m.IsIdentity(e))
}

func TestBuildFromTruthTableMultiBitIdentity(t *testing.T) {
	m := New()
	tt := identityTable(t, 3)
	e := m.BuildFromTruthTable(tt)
	assert.True(t, m.IsIdentity(e))
	assert.Equal(t, 3, Height(e))
}

func TestMakeNodeEliminatesDontCareNode(t *testing.T) {
	m := New()
	children := [4]Edge{OneTerminal, OneTerminal, OneTerminal, OneTerminal}
	e := m.MakeNode(1, children)
	assert.True(t, e.IsOneTerminal())
}

func TestMakeNodeHashConsesIdenticalNodes(t *testing.T) {
	m := New()
	children := [4]Edge{OneTerminal, ZeroTerminal, ZeroTerminal, OneTerminal}
	a := m.MakeNode(1, children)
	b := m.MakeNode(1, children)
	assert.Equal(t, a.Target, b.Target)
}

func TestRefCountingAndGarbageCollect(t *testing.T) {
	m := New()
	children := [4]Edge{OneTerminal, ZeroTerminal, ZeroTerminal, OneTerminal}
	e := m.MakeNode(1, children)
	m.IncRef(e)
	m.IncRef(e)
	assert.Equal(t, 2, e.Target.refCount)

	m.DecRef(e)
	m.GarbageCollect()
	assert.Len(t, m.unique, 1, "node with refcount 1 must survive garbage collection")

	m.DecRef(e)
	m.GarbageCollect()
	assert.Len(t, m.unique, 0)
}

func TestMultiplyIdentityIsIdentity(t *testing.T) {
	m := New()
	tt := identityTable(t, 2)
	id := m.BuildFromTruthTable(tt)
	m.IncRef(id)
	m.IncRef(id)
	product := m.Multiply(id, id)
	assert.True(t, m.IsIdentity(product))
}
