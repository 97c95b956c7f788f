package core

import "fmt"

// checkSwap validates a swap without touching the grid.
func checkSwap(g *Grid, a, b Coord) error {
	if !g.InBounds(a) {
		return fmt.Errorf("swap %v: %w", a, ErrOutOfBounds)
	}
	if !g.InBounds(b) {
		return fmt.Errorf("swap %v: %w", b, ErrOutOfBounds)
	}
	if !IsAdjacent(a, b) {
		return fmt.Errorf("swap %v with %v: %w", a, b, ErrNotAdjacent)
	}
	return nil
}

// TrySwap exchanges the tiles at a and b and keeps the exchange only if the
// board then holds at least one match. On a false result the grid is exactly
// as it was before the call. Invalid coordinates are rejected before any
// mutation with ErrOutOfBounds or ErrNotAdjacent.
func TrySwap(g *Grid, a, b Coord, threshold int) (bool, error) {
	if err := checkSwap(g, a, b); err != nil {
		return false, err
	}

	g.swap(a, b)
	if !DetectMatches(g, threshold).Empty() {
		return true, nil
	}
	g.swap(a, b)
	return false, nil
}

// ValidSwaps lists every adjacent swap TrySwap would accept, scanning cells
// row-major and trying the right then the lower neighbour of each.
// The grid is left unchanged.
func ValidSwaps(g *Grid, threshold int) []Swap {
	d := Detector{Threshold: threshold}
	var swaps []Swap

	try := func(a, b Coord) {
		g.swap(a, b)
		if !d.Detect(g).Empty() {
			swaps = append(swaps, Swap{A: a, B: b})
		}
		g.swap(a, b)
	}

	for r := range g.rows {
		for c := range g.cols {
			here := C(r, c)
			if c+1 < g.cols {
				try(here, C(r, c+1))
			}
			if r+1 < g.rows {
				try(here, C(r+1, c))
			}
		}
	}
	return swaps
}
