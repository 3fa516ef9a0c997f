package render_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/flowfield/costfield"
	"github.com/katalvlaran/flowfield/flowfield"
	"github.com/katalvlaran/flowfield/grid"
	"github.com/katalvlaran/flowfield/integration"
	"github.com/katalvlaran/flowfield/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrow(t *testing.T) {
	want := "↑↗→↘↓↙←↖"
	var got strings.Builder
	for _, d := range grid.Directions {
		got.WriteRune(render.Arrow(d))
	}
	assert.Equal(t, want, got.String())
	assert.Equal(t, render.TargetRune, render.Arrow(grid.DirTarget))
	assert.Equal(t, render.NoneRune, render.Arrow(grid.DirNone))
	assert.Equal(t, render.NoneRune, render.Arrow(grid.Direction(42)))
}

func TestFlow(t *testing.T) {
	g := grid.MustGeometry(3, 3)
	costs := costfield.Uniform(g, 0)
	require.NoError(t, costs.Set(g, grid.Coord{X: 1, Y: 0}, costfield.Impassable))
	integ, err := integration.Build(g, grid.Coord{X: 1, Y: 1}, costs)
	require.NoError(t, err)
	f, err := flowfield.Build(g, integ)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, render.Flow(&sb, f))
	assert.Equal(t, "↓·↓\n→●←\n↗↑↖\n", sb.String())
}

func TestCosts(t *testing.T) {
	g := grid.MustGeometry(4, 1)
	costs, err := costfield.FromWeights(g, []float64{0, 3.7, 12, 1}, []bool{false, false, false, true})
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, render.Costs(&sb, g, costs))
	assert.Equal(t, "03+#\n", sb.String())

	assert.ErrorIs(t, render.Costs(&sb, grid.MustGeometry(2, 1), costs), grid.ErrSizeMismatch)
}

func TestDistances(t *testing.T) {
	g := grid.MustGeometry(3, 1)
	costs := costfield.Uniform(g, 0)
	require.NoError(t, costs.Set(g, grid.Coord{X: 2, Y: 0}, costfield.Impassable))
	integ, err := integration.Build(g, grid.Coord{X: 0, Y: 0}, costs)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, render.Distances(&sb, integ))
	assert.Equal(t, "  0.00  1.00     -\n", sb.String())
}

func TestGradient(t *testing.T) {
	r, g, b := render.Gradient(0, 10)
	assert.Equal(t, [3]uint8{100, 255, 255}, [3]uint8{r, g, b})

	r, g, b = render.Gradient(10, 10)
	assert.Equal(t, [3]uint8{40, 80, 120}, [3]uint8{r, g, b})

	r2, g2, b2 := render.Gradient(25, 10)
	assert.Equal(t, [3]uint8{r, g, b}, [3]uint8{r2, g2, b2}, "clamped beyond maxDist")

	r, g, b = render.Gradient(0, 0)
	assert.Equal(t, [3]uint8{100, 255, 255}, [3]uint8{r, g, b})
}
