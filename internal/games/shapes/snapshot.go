package shapes

import "github.com/vovakirdan/shapeswap/internal/games/shapes/core"

// Snapshot captures the game state for determinism testing and headless output.
type Snapshot struct {
	Tick         uint64
	Board        string // Grid letters, one row per line
	Phase        Phase
	Cursor       core.Coord
	Selected     *core.Coord
	Pending      []core.Coord // Cells highlighted for the next collapse
	Moves        int
	Rejected     int
	CascadeSteps int
	TotalSteps   int
	Message      string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:         g.tick,
		Phase:        g.phase,
		Cursor:       g.cursor,
		Pending:      g.pending.Sorted(),
		Moves:        g.moves,
		Rejected:     g.rejected,
		CascadeSteps: g.cascadeSteps,
		TotalSteps:   g.totalSteps,
		Message:      g.message,
	}
	if g.grid != nil {
		s.Board = g.grid.String()
	}
	if g.hasSel {
		sel := g.selected
		s.Selected = &sel
	}
	return s
}
