package flowfield_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/flowfield/costfield"
	"github.com/katalvlaran/flowfield/flowfield"
	"github.com/katalvlaran/flowfield/grid"
	"github.com/katalvlaran/flowfield/integration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// build runs the full pipeline toward dest.
func build(t *testing.T, g grid.Geometry, dest grid.Coord, costs costfield.Field) *flowfield.Field {
	t.Helper()
	integ, err := integration.Build(g, dest, costs)
	require.NoError(t, err)
	f, err := flowfield.Build(g, integ)
	require.NoError(t, err)
	return f
}

// TestBuild_Uniform3x3 checks the reference scenario around a center destination.
func TestBuild_Uniform3x3(t *testing.T) {
	g := grid.MustGeometry(3, 3)
	f := build(t, g, grid.Coord{X: 1, Y: 1}, costfield.Uniform(g, 0))

	assert.Equal(t, []grid.Direction{
		grid.DirSE, grid.DirS, grid.DirSW,
		grid.DirE, grid.DirTarget, grid.DirW,
		grid.DirNE, grid.DirN, grid.DirNW,
	}, f.Directions())

	v, err := f.Flow(grid.Coord{X: 1, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, grid.Vector{}, v, "destination has no movement")

	v, err = f.Flow(grid.Coord{X: 1, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, grid.Vector{X: 0, Y: 1}, v)

	v, err = f.Flow(grid.Coord{X: 2, Y: 2})
	require.NoError(t, err)
	assert.InDelta(t, -1/math.Sqrt2, v.X, 1e-12)
	assert.InDelta(t, -1/math.Sqrt2, v.Y, 1e-12)

	dest, ok := f.Destination()
	require.True(t, ok)
	assert.Equal(t, grid.Coord{X: 1, Y: 1}, dest)
	assert.Equal(t, 9, f.Reachable())
}

// TestBuild_CornerSuppression blocks north of center: the top corners have the
// center as their lowest neighbor, yet must walk down first instead of cutting
// the blocked corner.
func TestBuild_CornerSuppression(t *testing.T) {
	g := grid.MustGeometry(3, 3)
	costs := costfield.Uniform(g, 0)
	costs[g.Index(1, 0)] = costfield.Impassable
	f := build(t, g, grid.Coord{X: 1, Y: 1}, costs)

	assert.Equal(t, []grid.Direction{
		grid.DirS, grid.DirNone, grid.DirS,
		grid.DirE, grid.DirTarget, grid.DirW,
		grid.DirNE, grid.DirN, grid.DirNW,
	}, f.Directions())

	v, err := f.Flow(grid.Coord{X: 0, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, grid.Vector{X: 0, Y: 1}, v, "cardinal, not diagonal")
}

// TestBuild_TieBreakAndRing uses a ring around a blocked center, producing an
// exact tie (N vs W) and suppression toward either flank.
func TestBuild_TieBreakAndRing(t *testing.T) {
	g := grid.MustGeometry(3, 3)
	costs := costfield.Uniform(g, 0)
	costs[g.Index(1, 1)] = costfield.Impassable
	f := build(t, g, grid.Coord{X: 0, Y: 0}, costs)

	assert.Equal(t, []grid.Direction{
		grid.DirTarget, grid.DirW, grid.DirW,
		grid.DirN, grid.DirNone, grid.DirN,
		grid.DirN, grid.DirW, grid.DirN,
	}, f.Directions())
}

// TestBuild_OpenDiagonal keeps diagonals when both flanks are reached.
func TestBuild_OpenDiagonal(t *testing.T) {
	g := grid.MustGeometry(3, 2)
	f := build(t, g, grid.Coord{X: 1, Y: 0}, costfield.Uniform(g, 0))
	d, err := f.Direction(grid.Coord{X: 0, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, grid.DirNE, d)
	d, err = f.Direction(grid.Coord{X: 2, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, grid.DirNW, d)
}

// TestBuild_Errors covers missing and mismatched integration fields.
func TestBuild_Errors(t *testing.T) {
	g := grid.MustGeometry(3, 3)
	_, err := flowfield.Build(g, nil)
	assert.ErrorIs(t, err, grid.ErrSizeMismatch)

	other := grid.MustGeometry(9, 1)
	integ, err := integration.Build(other, grid.Coord{X: 0, Y: 0}, costfield.Uniform(other, 1))
	require.NoError(t, err)
	_, err = flowfield.Build(g, integ)
	assert.ErrorIs(t, err, grid.ErrSizeMismatch, "same cell count, different shape")

	small := grid.MustGeometry(2, 2)
	_, err = flowfield.Build(g, integration.Blank(small))
	assert.ErrorIs(t, err, grid.ErrSizeMismatch)
}

// TestBuild_BlankField: an impassable destination leaves every cell unreachable,
// the destination included.
func TestBuild_BlankField(t *testing.T) {
	g := grid.MustGeometry(3, 3)
	costs := costfield.Uniform(g, 1)
	costs[4] = costfield.Impassable
	_, err := integration.Build(g, grid.Coord{X: 1, Y: 1}, costs)
	require.ErrorIs(t, err, integration.ErrNoField)

	f, err := flowfield.Build(g, integration.Blank(g))
	require.NoError(t, err)
	for i := 0; i < g.CellCount(); i++ {
		c := g.Coordinate(i)
		assert.False(t, f.CanFlow(c))
		_, err := f.Flow(c)
		assert.ErrorIs(t, err, flowfield.ErrUnreachable, "cell %v", c)
	}
	_, ok := f.Destination()
	assert.False(t, ok)
}

// TestBuild_AbsenceMatchesIntegration checks on random maps that directions
// are absent exactly where distances are, and only point at reached cells.
func TestBuild_AbsenceMatchesIntegration(t *testing.T) {
	g := grid.MustGeometry(11, 7)
	for seed := int64(1); seed <= 25; seed++ {
		rng := rand.New(rand.NewSource(seed))
		costs := costfield.New(g)
		for i := range costs {
			if rng.Intn(4) != 0 {
				costs[i] = costfield.Passable(rng.Float64() * 3)
			}
		}
		dest := g.Coordinate(rng.Intn(g.CellCount()))
		costs[g.Index(dest.X, dest.Y)] = costfield.Passable(0)

		integ, err := integration.Build(g, dest, costs)
		require.NoError(t, err)
		f, err := flowfield.Build(g, integ)
		require.NoError(t, err)

		for i := 0; i < g.CellCount(); i++ {
			_, hasDist := integ.At(i)
			d := f.At(i)
			assert.Equal(t, hasDist, d != grid.DirNone, "seed %d cell %v", seed, g.Coordinate(i))
			if !costs[i].IsPassable() {
				assert.Equal(t, grid.DirNone, d)
			}
			if d.Valid() {
				n, ok := g.Neighbor(i, d)
				require.True(t, ok)
				_, reached := integ.At(n)
				assert.True(t, reached, "seed %d: %v points %s at an unreached cell", seed, g.Coordinate(i), d)
			}
		}
	}
}

// TestBuild_Idempotent rebuilds from the same integration field.
func TestBuild_Idempotent(t *testing.T) {
	g := grid.MustGeometry(6, 5)
	costs := costfield.Uniform(g, 0.5)
	costs[g.Index(2, 2)] = costfield.Impassable
	costs[g.Index(3, 1)] = costfield.Impassable
	integ, err := integration.Build(g, grid.Coord{X: 5, Y: 4}, costs)
	require.NoError(t, err)

	a, err := flowfield.Build(g, integ)
	require.NoError(t, err)
	b, err := flowfield.Build(g, integ)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestFromDirections validates decoded direction slices.
func TestFromDirections(t *testing.T) {
	g := grid.MustGeometry(2, 1)
	f, err := flowfield.FromDirections(g, []grid.Direction{grid.DirTarget, grid.DirW})
	require.NoError(t, err)
	dest, ok := f.Destination()
	require.True(t, ok)
	assert.Equal(t, grid.Coord{X: 0, Y: 0}, dest)

	_, err = flowfield.FromDirections(g, []grid.Direction{grid.DirTarget})
	assert.ErrorIs(t, err, grid.ErrSizeMismatch)
	_, err = flowfield.FromDirections(g, []grid.Direction{grid.DirTarget, grid.DirTarget})
	assert.ErrorIs(t, err, flowfield.ErrBadDirection)
	_, err = flowfield.FromDirections(g, []grid.Direction{grid.DirNone, grid.Direction(12)})
	assert.ErrorIs(t, err, flowfield.ErrBadDirection)
}
