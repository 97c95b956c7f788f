package core_test

import (
	"math/rand"

	"github.com/vovakirdan/shapeswap/internal/games/shapes/core"
)

// seqRNG returns the queued values in order, wrapping around, and counts draws.
type seqRNG struct {
	values []int
	next   int
	draws  int
}

func (r *seqRNG) Intn(n int) int {
	r.draws++
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.next%len(r.values)]
	r.next++
	return v % n
}

func randomGrid(seed int64, rows, cols, kinds int) *core.Grid {
	g, err := core.NewRandomGrid(rows, cols, kinds, rand.New(rand.NewSource(seed)))
	if err != nil {
		panic(err)
	}
	return g
}

func mustAt(g *core.Grid, c core.Coord) core.Tile {
	t, err := g.At(c)
	if err != nil {
		panic(err)
	}
	return t
}

// inLongRun is a brute-force oracle: the cell belongs to a horizontal or
// vertical line of equal tiles at least threshold long.
func inLongRun(g *core.Grid, c core.Coord, threshold int) bool {
	t := mustAt(g, c)
	span := func(dr, dc int) int {
		n := 0
		for p := core.C(c.Row+dr, c.Col+dc); g.InBounds(p) && mustAt(g, p) == t; p = core.C(p.Row+dr, p.Col+dc) {
			n++
		}
		return n
	}
	return 1+span(0, -1)+span(0, 1) >= threshold || 1+span(-1, 0)+span(1, 0) >= threshold
}
