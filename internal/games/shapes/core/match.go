package core

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// DefaultThreshold is the minimum run length that counts as a match.
const DefaultThreshold = 4

// MinThreshold is the smallest usable run length.
const MinThreshold = 2

// MatchSet is the set of coordinates cleared by one detection pass.
// A cell that belongs to both a horizontal and a vertical run appears once.
type MatchSet struct {
	set *mapset.Set[Coord]
}

// NewMatchSet returns a set holding the given coordinates.
func NewMatchSet(coords ...Coord) MatchSet {
	s := mapset.New[Coord]()
	for _, c := range coords {
		s.Put(c)
	}
	return MatchSet{set: &s}
}

// Add inserts c.
func (m *MatchSet) Add(c Coord) {
	if m.set == nil {
		*m = NewMatchSet()
	}
	m.set.Put(c)
}

// Has reports whether c is in the set.
func (m MatchSet) Has(c Coord) bool {
	return m.set != nil && m.set.Has(c)
}

// Len returns the number of distinct coordinates.
func (m MatchSet) Len() int {
	if m.set == nil {
		return 0
	}
	return m.set.Size()
}

// Empty reports whether no cell matched.
func (m MatchSet) Empty() bool {
	return m.Len() == 0
}

// Each calls fn for every coordinate in unspecified order.
func (m MatchSet) Each(fn func(c Coord)) {
	if m.set == nil {
		return
	}
	m.set.Each(fn)
}

// Sorted returns the coordinates in row-major order.
func (m MatchSet) Sorted() []Coord {
	out := make([]Coord, 0, m.Len())
	m.Each(func(c Coord) {
		out = append(out, c)
	})
	sort.Slice(out, func(i, j int) bool {
		return out[i].Less(out[j])
	})
	return out
}

// Orientation is the axis a run extends along.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns the orientation name.
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Run is a maximal line of identical tiles at least as long as the threshold.
type Run struct {
	Start       Coord
	Length      int
	Orientation Orientation
	Tile        Tile
}

// Coords returns every cell of the run from its start outward.
func (r Run) Coords() []Coord {
	out := make([]Coord, r.Length)
	for i := range r.Length {
		if r.Orientation == Horizontal {
			out[i] = C(r.Start.Row, r.Start.Col+i)
		} else {
			out[i] = C(r.Start.Row+i, r.Start.Col)
		}
	}
	return out
}

// Detector finds runs of at least Threshold identical tiles.
// The zero value uses DefaultThreshold.
type Detector struct {
	Threshold int
}

func (d Detector) threshold() int {
	switch {
	case d.Threshold == 0:
		return DefaultThreshold
	case d.Threshold < MinThreshold:
		return MinThreshold
	default:
		return d.Threshold
	}
}

// Runs returns every qualifying run, rows first (top to bottom, each scanned
// left to right) then columns (left to right, each scanned top to bottom).
// There is no upper bound on run length.
func (d Detector) Runs(g *Grid) []Run {
	th := d.threshold()
	var runs []Run

	for r := range g.rows {
		start := 0
		for c := 1; c <= g.cols; c++ {
			if c < g.cols && g.get(r, c) == g.get(r, start) {
				continue
			}
			if t := g.get(r, start); t != Empty && c-start >= th {
				runs = append(runs, Run{Start: C(r, start), Length: c - start, Orientation: Horizontal, Tile: t})
			}
			start = c
		}
	}

	for c := range g.cols {
		start := 0
		for r := 1; r <= g.rows; r++ {
			if r < g.rows && g.get(r, c) == g.get(start, c) {
				continue
			}
			if t := g.get(start, c); t != Empty && r-start >= th {
				runs = append(runs, Run{Start: C(start, c), Length: r - start, Orientation: Vertical, Tile: t})
			}
			start = r
		}
	}

	return runs
}

// Detect returns the union of all run cells. It does not mutate the grid.
func (d Detector) Detect(g *Grid) MatchSet {
	m := NewMatchSet()
	for _, run := range d.Runs(g) {
		for _, c := range run.Coords() {
			m.Add(c)
		}
	}
	return m
}

// DetectMatches runs a detector with the given threshold.
func DetectMatches(g *Grid, threshold int) MatchSet {
	return Detector{Threshold: threshold}.Detect(g)
}
