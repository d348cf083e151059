package cube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertFixesWidthsAndDedupsFirstWins(t *testing.T) {
	tt := New()
	require.True(t, tt.Insert(FromInteger(0, 2), FromInteger(1, 1)))
	assert.Equal(t, 2, tt.NInputs())
	assert.Equal(t, 1, tt.NOutputs())

	// duplicate input cube: the first output wins, the second insert is rejected
	ok := tt.Insert(FromInteger(0, 2), FromInteger(0, 1))
	assert.False(t, ok)
	out, found := tt.Find(0, 2)
	require.True(t, found)
	assert.Equal(t, "1", out.String())
}

func TestInsertRejectsMismatchedWidth(t *testing.T) {
	tt := New()
	require.True(t, tt.Insert(FromInteger(0, 2), FromInteger(0, 1)))
	ok := tt.Insert(FromInteger(0, 3), FromInteger(0, 1))
	assert.False(t, ok)
	assert.Equal(t, 1, tt.Size())
}

func TestFindMatchesDontCareInputs(t *testing.T) {
	tt := New()
	in := New(DontCare, One)
	out := New(One)
	require.True(t, tt.Insert(in, out))

	found, ok := tt.Find(1, 2) // 01
	require.True(t, ok)
	assert.Equal(t, "1", found.String())

	found, ok = tt.Find(3, 2) // 11
	require.True(t, ok)
	assert.Equal(t, "1", found.String())

	_, ok = tt.Find(0, 2) // 00, doesn't match "-1"
	assert.False(t, ok)
}

func TestExtendFillsMissingConcreteInputsWithZero(t *testing.T) {
	tt := New()
	require.True(t, tt.Insert(FromInteger(0, 2), New(One)))
	tt.Extend()

	assert.Equal(t, 4, tt.Size())
	out, ok := tt.Find(3, 2)
	require.True(t, ok)
	assert.Equal(t, "0", out.String())
}

func TestExtendExpandsDontCareInputCubes(t *testing.T) {
	tt := New()
	require.True(t, tt.Insert(New(DontCare, One), New(One)))
	tt.Extend()

	assert.Equal(t, 4, tt.Size())
	for _, v := range []uint64{1, 3} {
		out, ok := tt.Find(v, 2)
		require.True(t, ok)
		assert.Equal(t, "1", out.String())
	}
	for _, v := range []uint64{0, 2} {
		out, ok := tt.Find(v, 2)
		require.True(t, ok)
		assert.Equal(t, "0", out.String())
	}
}

func TestConstantAndGarbageMetadata(t *testing.T) {
	tt := New()
	tt.SetConstant(0, boolPtr(true))
	tt.SetGarbage(2, true)

	assert.Equal(t, true, *tt.Constant(0))
	assert.Nil(t, tt.Constant(1))
	assert.True(t, tt.Garbage(2))
	assert.False(t, tt.Garbage(0))
}

func boolPtr(b bool) *bool { return &b }
