package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/shapeswap/internal/games/shapes/core"
)

func TestCollapseWorkedExample(t *testing.T) {
	// Column top to bottom: X, matched, Y, matched.
	g := core.MustParseGrid("A", "D", "C", "D")
	matches := core.NewMatchSet(core.C(1, 0), core.C(3, 0))
	rng := &seqRNG{values: []int{1, 2}}

	falls := core.Collapse(g, matches, 4, rng)

	// Y drops to the bottom, X lands on it, two fresh tiles on top.
	// The first draw fills the lower of the two refilled cells.
	assert.Equal(t, "C\nB\nA\nC", g.String())
	assert.Equal(t, 2, rng.draws)
	assert.Equal(t, []core.Fall{
		{Col: 0, FromRow: 2, ToRow: 3, Tile: core.Square},
		{Col: 0, FromRow: 0, ToRow: 2, Tile: core.Circle},
		{Col: 0, FromRow: -1, ToRow: 1, Tile: core.Triangle, Refill: true},
		{Col: 0, FromRow: -2, ToRow: 0, Tile: core.Square, Refill: true},
	}, falls)
}

func TestCollapseNoMatchesIsNoop(t *testing.T) {
	g := randomGrid(3, 6, 6, 4)
	before := g.Clone()
	rng := &seqRNG{values: []int{0}}

	falls := core.Collapse(g, core.NewMatchSet(), 4, rng)

	assert.Empty(t, falls)
	assert.Zero(t, rng.draws)
	assert.True(t, g.Equal(before))
}

func TestCollapseIgnoresOutOfBoundsCoords(t *testing.T) {
	g := core.MustParseGrid("AB", "CD")
	before := g.Clone()

	core.Collapse(g, core.NewMatchSet(core.C(-1, 0), core.C(5, 5)), 4, &seqRNG{})

	assert.True(t, g.Equal(before))
}

func TestCollapseColumnIndependence(t *testing.T) {
	g := randomGrid(11, 8, 8, 4)
	before := g.Clone()
	matches := core.NewMatchSet(core.C(2, 3), core.C(3, 3), core.C(7, 3))

	core.Collapse(g, matches, 4, rand.New(rand.NewSource(5)))

	for col := range g.Cols() {
		if col == 3 {
			continue
		}
		assert.Equal(t, before.Column(col), g.Column(col), "column %d changed", col)
	}
	assert.Zero(t, g.CountEmpty())
}

func TestCollapseKeepsSurvivorOrder(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g := randomGrid(seed, 10, 10, 4)
		before := g.Clone()

		matches := core.NewMatchSet()
		for range 15 {
			matches.Add(core.C(rng.Intn(10), rng.Intn(10)))
		}

		core.Collapse(g, matches, 4, rng)
		require.Zero(t, g.CountEmpty(), "seed %d left empty cells", seed)

		for col := range g.Cols() {
			var survivors []core.Tile
			for row, tile := range before.Column(col) {
				if !matches.Has(core.C(row, col)) {
					survivors = append(survivors, tile)
				}
			}

			after := g.Column(col)
			bottom := after[len(after)-len(survivors):]
			assert.Equal(t, survivors, bottom, "seed %d column %d", seed, col)
			for _, tile := range after {
				assert.True(t, tile.Valid(4))
			}
		}
	}
}

func TestCollapseWholeColumn(t *testing.T) {
	g := core.MustParseGrid("A", "A", "A", "A")
	rng := &seqRNG{values: []int{1, 2, 3, 0}}

	falls := core.Collapse(g, core.DetectMatches(g, 4), 4, rng)

	assert.Equal(t, "A\nD\nC\nB", g.String())
	assert.Len(t, falls, 4)
	for _, f := range falls {
		assert.True(t, f.Refill)
	}
}

func TestCollapseZeroKindsUsesDefault(t *testing.T) {
	g := core.MustParseGrid("A", "A", "A", "A")
	matches := core.NewMatchSet(core.C(0, 0), core.C(1, 0), core.C(2, 0), core.C(3, 0))

	core.Collapse(g, matches, 0, &seqRNG{values: []int{1, 2, 3, 0}})

	// Same draws as with four kinds, not a board of circles.
	assert.Equal(t, "A\nD\nC\nB", g.String())
}
