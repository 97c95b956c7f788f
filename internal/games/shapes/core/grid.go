package core

import (
	"fmt"
	"strings"
)

// Grid is the game board. Cells are stored in row-major order:
// index = row*cols + col.
type Grid struct {
	rows  int
	cols  int
	cells []Tile
}

func newGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, rows, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Tile, rows*cols),
	}, nil
}

// NewRandomGrid creates a rows×cols grid where every cell is an independent
// uniform draw from the first kinds tiles. The board may contain matches.
// rng must not be nil.
func NewRandomGrid(rows, cols, kinds int, rng RNG) (*Grid, error) {
	g, err := newGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range g.cells {
		g.cells[i] = RandomTile(rng, kinds)
	}
	return g, nil
}

// InitGrid creates a square n×n random grid.
func InitGrid(n, kinds int, rng RNG) (*Grid, error) {
	return NewRandomGrid(n, n, kinds, rng)
}

// ParseGrid builds a grid from rows of tile letters ("AABC", ...).
// Every row must have the same length. Empty cells ('.') are rejected
// because a committed board never holds them.
func ParseGrid(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedGrid)
	}
	g, err := newGrid(len(rows), len(rows[0]))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedGrid, err)
	}
	for r, line := range rows {
		if len(line) != g.cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, r, len(line), g.cols)
		}
		for c := 0; c < len(line); c++ {
			t, ok := TileFromLetter(line[c])
			if !ok || t == Empty {
				return nil, fmt.Errorf("%w: bad tile %q at %v", ErrMalformedGrid, line[c], C(r, c))
			}
			g.cells[g.index(r, c)] = t
		}
	}
	return g, nil
}

// MustParseGrid is like ParseGrid but panics on error. Intended for tests
// and fixed fixtures.
func MustParseGrid(rows ...string) *Grid {
	g, err := ParseGrid(rows...)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// Dimension returns N for an N×N grid, or the larger side otherwise.
func (g *Grid) Dimension() int {
	if g.rows > g.cols {
		return g.rows
	}
	return g.cols
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the tile at c.
func (g *Grid) At(c Coord) (Tile, error) {
	if !g.InBounds(c) {
		return Empty, fmt.Errorf("get %v on %dx%d grid: %w", c, g.rows, g.cols, ErrOutOfBounds)
	}
	return g.cells[g.index(c.Row, c.Col)], nil
}

// Set stores t at c.
func (g *Grid) Set(c Coord, t Tile) error {
	if !g.InBounds(c) {
		return fmt.Errorf("set %v on %dx%d grid: %w", c, g.rows, g.cols, ErrOutOfBounds)
	}
	g.cells[g.index(c.Row, c.Col)] = t
	return nil
}

// get and set skip bounds checks; callers iterate within the grid.
func (g *Grid) get(row, col int) Tile {
	return g.cells[g.index(row, col)]
}

func (g *Grid) set(row, col int, t Tile) {
	g.cells[g.index(row, col)] = t
}

func (g *Grid) swap(a, b Coord) {
	ia, ib := g.index(a.Row, a.Col), g.index(b.Row, b.Col)
	g.cells[ia], g.cells[ib] = g.cells[ib], g.cells[ia]
}

// Row returns a copy of the given row, or nil if out of range.
func (g *Grid) Row(row int) []Tile {
	if row < 0 || row >= g.rows {
		return nil
	}
	out := make([]Tile, g.cols)
	copy(out, g.cells[g.index(row, 0):g.index(row, 0)+g.cols])
	return out
}

// Column returns a copy of the given column top to bottom, or nil if out of range.
func (g *Grid) Column(col int) []Tile {
	if col < 0 || col >= g.cols {
		return nil
	}
	out := make([]Tile, g.rows)
	for r := range g.rows {
		out[r] = g.get(r, col)
	}
	return out
}

// CountEmpty returns the number of Empty cells. Zero on every committed board.
func (g *Grid) CountEmpty() int {
	n := 0
	for _, t := range g.cells {
		if t == Empty {
			n++
		}
	}
	return n
}

// CheckKinds reports the first cell whose tile is not among the first kinds.
func (g *Grid) CheckKinds(kinds int) error {
	for i, t := range g.cells {
		if !t.Valid(kinds) {
			return fmt.Errorf("%w: tile %q at %v exceeds %d kinds", ErrMalformedGrid, t.Letter(), C(i/g.cols, i%g.cols), kinds)
		}
	}
	return nil
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Tile, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		rows:  g.rows,
		cols:  g.cols,
		cells: cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, t := range g.cells {
		if t != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid as newline-separated rows of tile letters.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := range g.rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range g.cols {
			sb.WriteByte(g.get(r, c).Letter())
		}
	}
	return sb.String()
}
