package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kegliz/syrecgo/circuit"
)

func newCirc(lines int) *circuit.Circuit {
	c := circuit.New()
	c.SetLines(lines)
	return c
}

func TestRenderSizesCanvasToLineCountAndColumnCount(t *testing.T) {
	c := newCirc(3)
	_, ok := c.CreateAndAddCnot(0, 1)
	require.True(t, ok)
	_, ok = c.CreateAndAddCnot(1, 2)
	require.True(t, ok)

	img, err := NewPNG(20).Render(c)
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 3*20, bounds.Dy())
	// the two CNOTs share line 1, so they can't share a column.
	assert.Equal(t, 2*20, bounds.Dx())
}

func TestRenderPacksIndependentGatesIntoTheSameColumn(t *testing.T) {
	c := newCirc(4)
	_, ok := c.CreateAndAddCnot(0, 1)
	require.True(t, ok)
	_, ok = c.CreateAndAddCnot(2, 3)
	require.True(t, ok)

	img, err := NewPNG(20).Render(c)
	require.NoError(t, err)

	assert.Equal(t, 1*20, img.Bounds().Dx())
}

func TestRenderEmptyCircuitProducesOneColumnCanvas(t *testing.T) {
	c := newCirc(2)

	img, err := NewPNG(20).Render(c)
	require.NoError(t, err)

	assert.Equal(t, 1*20, img.Bounds().Dx())
	assert.Equal(t, 2*20, img.Bounds().Dy())
}
