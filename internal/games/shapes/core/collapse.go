package core

// Fall records one tile landing in a cell during a collapse.
// Refilled tiles enter from virtual rows above the board, so their FromRow
// is negative.
type Fall struct {
	Col     int
	FromRow int
	ToRow   int
	Tile    Tile
	Refill  bool
}

// Collapse removes the matched cells, lets the remaining tiles of each column
// fall to the bottom keeping their order, and fills the cells left empty at
// the top with fresh random tiles. Columns are independent: a column without
// matches is never touched and consumes no random draws.
// The grid holds no Empty cell when Collapse returns. kinds below 1 means
// DefaultKinds; rng must not be nil when any cell is cleared.
func Collapse(g *Grid, matches MatchSet, kinds int, rng RNG) []Fall {
	var falls []Fall
	for col := range g.cols {
		falls = collapseColumn(g, col, matches, kinds, rng, falls)
	}
	return falls
}

func collapseColumn(g *Grid, col int, matches MatchSet, kinds int, rng RNG, falls []Fall) []Fall {
	cleared := false
	for row := range g.rows {
		if matches.Has(C(row, col)) {
			g.set(row, col, Empty)
			cleared = true
		}
	}
	if !cleared {
		return falls
	}

	refills := 0
	for row := g.rows - 1; row >= 0; row-- {
		if g.get(row, col) != Empty {
			continue
		}

		above := row - 1
		for above >= 0 && g.get(above, col) == Empty {
			above--
		}

		if above >= 0 {
			t := g.get(above, col)
			g.set(row, col, t)
			g.set(above, col, Empty)
			falls = append(falls, Fall{Col: col, FromRow: above, ToRow: row, Tile: t})
			continue
		}

		// Nothing left above: every cell from here to the top gets a new tile.
		refills++
		t := RandomTile(rng, kinds)
		g.set(row, col, t)
		falls = append(falls, Fall{Col: col, FromRow: -refills, ToRow: row, Tile: t, Refill: true})
	}
	return falls
}
