package pla

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadParsesCNOTTable(t *testing.T) {
	src := `# cnot.pla
.i 2
.o 2
.p 2
.type fd
10 11
01 01
.e
`
	res, err := Read(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Table.NInputs())
	assert.Equal(t, 2, res.Table.NOutputs())
	assert.Equal(t, 2, res.Table.Size())
	assert.Equal(t, "fd", res.Type)

	entries := res.Table.Entries()
	assert.Equal(t, "10", entries[0].Input.String())
	assert.Equal(t, "11", entries[0].Output.String())
}

func TestReadAcceptsTildeAsDontCare(t *testing.T) {
	src := ".i 1\n.o 1\n~ 1\n.e\n"
	res, err := Read(strings.NewReader(src))
	require.NoError(t, err)
	entries := res.Table.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "-", entries[0].Input.String())
}

func TestReadCapturesLabelsAndType(t *testing.T) {
	src := ".i 2\n.o 1\n.ilb a b\n.ob y\n.type fr\n00 0\n.e\n"
	res, err := Read(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, res.InputLabels)
	assert.Equal(t, []string{"y"}, res.OutputLabels)
	assert.Equal(t, "fr", res.Type)
}

func TestReadRejectsRowWidthMismatch(t *testing.T) {
	src := ".i 2\n.o 1\n1 0\n.e\n"
	_, err := Read(strings.NewReader(src))
	assert.Error(t, err)
}

func TestReadRejectsDeclaredRowCountMismatch(t *testing.T) {
	src := ".i 1\n.o 1\n.p 2\n0 0\n.e\n"
	_, err := Read(strings.NewReader(src))
	assert.Error(t, err)
}

func TestReadRejectsUnknownDirective(t *testing.T) {
	src := ".i 1\n.o 1\n.bogus x\n0 0\n.e\n"
	_, err := Read(strings.NewReader(src))
	assert.Error(t, err)
}

func TestReadRejectsRowBeforeHeader(t *testing.T) {
	src := "00 0\n.i 2\n.o 1\n.e\n"
	_, err := Read(strings.NewReader(src))
	assert.Error(t, err)
}

func TestReadIgnoresCommentsAndBlankLines(t *testing.T) {
	src := "# a comment\n\n.i 1\n\n.o 1\n# another\n0 1\n.e\n"
	res, err := Read(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Table.Size())
}
