// Package core provides the match-resolution engine for the Shape Swap puzzle.
// It owns the grid, detects runs, validates swaps, collapses matched cells
// and resolves cascades. This package is UI-agnostic and deterministic for a
// given RNG.
package core

import (
	"fmt"
	"math/rand"
)

// Tile is the kind of shape occupying a cell.
// Empty is only ever seen inside a collapse pass.
type Tile uint8

const (
	Empty Tile = iota
	Circle
	Triangle
	Square
	Pentagon
	Hexagon
	Star
	Diamond
	Cross
)

// MaxKinds is the number of playable tile kinds.
const MaxKinds = 8

// DefaultKinds matches the four shapes of the classic board.
const DefaultKinds = 4

var tileNames = [...]string{
	Empty:    "empty",
	Circle:   "circle",
	Triangle: "triangle",
	Square:   "square",
	Pentagon: "pentagon",
	Hexagon:  "hexagon",
	Star:     "star",
	Diamond:  "diamond",
	Cross:    "cross",
}

// String returns the shape name.
func (t Tile) String() string {
	if int(t) < len(tileNames) {
		return tileNames[t]
	}
	return fmt.Sprintf("tile(%d)", uint8(t))
}

// Letter returns the single-letter form used by Grid.String and ParseGrid:
// '.' for Empty, 'A' for the first kind, 'B' for the second and so on.
func (t Tile) Letter() byte {
	if t == Empty {
		return '.'
	}
	return 'A' + byte(t) - 1
}

// TileFromLetter is the inverse of Letter.
func TileFromLetter(b byte) (Tile, bool) {
	switch {
	case b == '.':
		return Empty, true
	case b >= 'A' && b < 'A'+MaxKinds:
		return Tile(b-'A') + 1, true
	default:
		return Empty, false
	}
}

// Valid reports whether t is one of the first kinds playable tiles.
func (t Tile) Valid(kinds int) bool {
	return t != Empty && int(t) <= kinds
}

// RNG is the randomness capability the engine needs.
// *rand.Rand satisfies it.
type RNG interface {
	Intn(n int) int
}

// NewRNG returns a seeded source suitable for the engine.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandomTile draws a uniformly random playable tile from the first kinds.
// kinds below 1 means DefaultKinds. rng must not be nil.
func RandomTile(rng RNG, kinds int) Tile {
	return Tile(rng.Intn(clampKinds(kinds)) + 1)
}

func clampKinds(kinds int) int {
	if kinds < 1 {
		return DefaultKinds
	}
	if kinds > MaxKinds {
		return MaxKinds
	}
	return kinds
}

// Coord addresses a cell by row and column, both 0-indexed from the top-left.
type Coord struct {
	Row int
	Col int
}

// C is shorthand for creating a Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Less orders coordinates row-major.
func (c Coord) Less(other Coord) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

// Swap is a pair of cells the player wants to exchange.
type Swap struct {
	A Coord
	B Coord
}

// String returns "(r,c)<->(r,c)".
func (s Swap) String() string {
	return s.A.String() + "<->" + s.B.String()
}

// IsAdjacent reports whether a and b differ by exactly 1 along exactly one axis.
// Diagonal neighbours and identical coordinates are not adjacent.
func IsAdjacent(a, b Coord) bool {
	return abs(a.Row-b.Row)+abs(a.Col-b.Col) == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
