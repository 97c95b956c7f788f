// Package shapes provides the Shape Swap tile-matching game for the terminal.
// The match, collapse and cascade rules live in the core subpackage; this
// package adds the cursor, the two-step selection and the tick-paced
// cascade playback the platform drives.
package shapes

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shapeswap/internal/config"
	platformcore "github.com/vovakirdan/shapeswap/internal/core"
	"github.com/vovakirdan/shapeswap/internal/games/shapes/core"
	"github.com/vovakirdan/shapeswap/internal/logging"
	"github.com/vovakirdan/shapeswap/internal/registry"
)

// GameID is the registry identifier.
const GameID = "shapes"

// Phase is what the game is doing between ticks.
type Phase int

const (
	PhaseIdle      Phase = iota // Waiting for the player
	PhaseCascading              // Playing back a cascade; swaps are ignored
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PhaseCascading {
		return "cascading"
	}
	return "idle"
}

// flashTicks is how long an invalid pick stays highlighted (~200ms at 60fps).
const flashTicks = 12

// Game implements the Shape Swap puzzle.
type Game struct {
	cfg    config.ShapesConfig
	loaded bool
	logger *log.Logger

	rng  *rand.Rand
	grid *core.Grid

	phase   Phase
	cascade *core.Cascade
	pending core.MatchSet // Cells about to be cleared
	wait    int           // Ticks until the next cascade step

	cursor    core.Coord
	selected  core.Coord
	hasSel    bool
	paused    bool
	flash     int // Ticks left on the invalid-pick highlight
	flashCell core.Coord
	message   string

	clicked  bool // A pointer click is queued for the next Step
	clickPos core.Coord

	// Counters
	tick         uint64
	moves        int // Committed swaps
	rejected     int // Swaps reverted for lack of a match
	cascadeSteps int // Steps in the current or last cascade
	totalSteps   int

	// Screen
	screenW  int
	screenH  int
	tooSmall bool
	originX  int
	originY  int
}

// Package-level settings applied by the CLI before a game is created.
var (
	configPath string
	preset     config.Preset
	logger     = logging.Discard()
)

// SetConfigPath sets the config file path used by LoadConfig.
func SetConfigPath(path string) {
	configPath = path
}

// SetPreset selects a board preset applied over the loaded config.
// An empty preset keeps the file values.
func SetPreset(p config.Preset) {
	preset = p
}

// SetLogger sets the logger used by new games.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = logging.Discard()
	}
	logger = l
}

// LoadConfig loads and validates the config with the selected preset applied.
func LoadConfig() (config.ShapesConfig, error) {
	cfg, err := config.LoadShapes(configPath)
	if err != nil {
		return cfg, err
	}
	if preset != "" {
		config.ApplyShapesPreset(&cfg, preset)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// New creates a game that loads its config on the first Reset.
func New() *Game {
	return &Game{logger: logger}
}

// NewWithConfig creates a game with an explicit config.
func NewWithConfig(cfg config.ShapesConfig) *Game {
	return &Game{cfg: cfg, loaded: true, logger: logger}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Shape Swap"
}

// Grid returns a copy of the board.
func (g *Game) Grid() *core.Grid {
	if g.grid == nil {
		return nil
	}
	return g.grid.Clone()
}

// Reset starts a new board.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	if !g.loaded {
		c, err := LoadConfig()
		if err != nil {
			g.logger.Warn("using default config", "err", err)
			c = config.DefaultShapesConfig()
		}
		g.cfg = c
		g.loaded = true
	}

	g.rng = core.NewRNG(cfg.Seed)
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.moves = 0
	g.rejected = 0
	g.cascadeSteps = 0
	g.totalSteps = 0
	g.phase = PhaseIdle
	g.cascade = nil
	g.pending = core.MatchSet{}
	g.wait = 0
	g.hasSel = false
	g.flash = 0
	g.paused = false
	g.clicked = false
	g.message = ""

	g.grid = g.newBoard()
	g.cursor = core.C(g.grid.Rows()/2, g.grid.Cols()/2)
	g.calculateLayout()

	// A random start may already hold matches; they play back like any cascade.
	if !core.DetectMatches(g.grid, g.cfg.Board.Threshold).Empty() {
		g.startCascade()
	}

	g.logger.Debug("new board",
		"size", g.cfg.Board.Size,
		"kinds", g.cfg.Board.Kinds,
		"threshold", g.cfg.Board.Threshold,
		"seed", cfg.Seed)
}

// newBoard creates the starting grid.
func (g *Game) newBoard() *core.Grid {
	n := g.cfg.Board.Size
	if g.cfg.Board.StableStart {
		grid, err := core.GenerateStable(n, n, g.cascadeOptions())
		if err == nil {
			return grid
		}
		g.logger.Warn("stable start gave up", "err", err)
	}
	grid, err := core.InitGrid(n, g.cfg.Board.Kinds, g.rng)
	if err != nil {
		// Validate keeps the size positive; this only guards a bad NewWithConfig.
		g.logger.Error("invalid board size, falling back", "size", n, "err", err)
		grid, _ = core.InitGrid(config.DefaultShapesConfig().Board.Size, g.cfg.Board.Kinds, g.rng)
	}
	return grid
}

func (g *Game) cascadeOptions() core.CascadeOptions {
	return core.CascadeOptions{
		Threshold: g.cfg.Board.Threshold,
		Kinds:     g.cfg.Board.Kinds,
		RNG:       g.rng,
		MaxSteps:  g.cfg.Cascade.MaxSteps,
	}
}

// calculateLayout centers the board below the HUD.
func (g *Game) calculateLayout() {
	boardW := g.grid.Cols()*cellWidth + 2
	boardH := g.grid.Rows() + 2

	if g.screenW < boardW || g.screenH < boardH+hudHeight {
		g.tooSmall = true
		return
	}
	g.tooSmall = false
	g.originX = (g.screenW - boardW) / 2
	g.originY = hudHeight + (g.screenH-hudHeight-boardH)/2
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if input.Has(platformcore.ActionRestart) {
		g.Reset(platformcore.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return platformcore.StepResult{State: g.State()}
	}

	if input.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	if g.flash > 0 {
		g.flash--
	}

	g.moveCursor(input)

	switch g.phase {
	case PhaseCascading:
		g.clicked = false
		g.advanceCascade()
	case PhaseIdle:
		if input.Has(platformcore.ActionBack) && g.hasSel {
			g.hasSel = false
			g.message = ""
		}
		if g.clicked {
			g.clicked = false
			g.cursor = g.clickPos
			g.pick(g.cursor)
		} else if input.Has(platformcore.ActionConfirm) {
			g.pick(g.cursor)
		}
	}

	return platformcore.StepResult{State: g.State()}
}

func (g *Game) moveCursor(input platformcore.InputFrame) {
	row, col := g.cursor.Row, g.cursor.Col
	if input.Has(platformcore.ActionUp) {
		row--
	}
	if input.Has(platformcore.ActionDown) {
		row++
	}
	if input.Has(platformcore.ActionLeft) {
		col--
	}
	if input.Has(platformcore.ActionRight) {
		col++
	}
	g.cursor = core.C(
		platformcore.Clamp(row, 0, g.grid.Rows()-1),
		platformcore.Clamp(col, 0, g.grid.Cols()-1),
	)
}

// pick handles a selection at c: the first pick marks a cell, the second
// attempts the swap. Picking the marked cell again does nothing. A second
// pick that is not orthogonally adjacent flashes and keeps the first.
func (g *Game) pick(c core.Coord) {
	if !g.hasSel {
		g.selected = c
		g.hasSel = true
		g.message = ""
		return
	}
	if c == g.selected {
		return
	}
	if !core.IsAdjacent(g.selected, c) {
		g.flash = flashTicks
		g.flashCell = c
		g.message = "Pick a neighbouring tile"
		return
	}

	from := g.selected
	g.hasSel = false
	ok, err := core.TrySwap(g.grid, from, c, g.cfg.Board.Threshold)
	if err != nil {
		g.logger.Error("swap rejected", "from", from, "to", c, "err", err)
		return
	}
	g.logger.Debug("swap", "from", from, "to", c, "matched", ok)
	if !ok {
		g.rejected++
		g.flash = flashTicks
		g.flashCell = c
		g.message = "No match, swap undone"
		return
	}

	g.moves++
	g.message = ""
	g.startCascade()
}

// startCascade begins playback on the current grid. The first matches are
// shown for one step interval before they are cleared.
func (g *Game) startCascade() {
	g.phase = PhaseCascading
	g.cascadeSteps = 0
	g.cascade = core.NewCascade(g.grid, g.cascadeOptions())
	g.pending = g.cascade.Peek()
	g.wait = g.cfg.Cascade.StepTicks
}

// advanceCascade counts down and applies one detect+collapse cycle. With a
// step interval of zero the whole cascade resolves in one tick.
func (g *Game) advanceCascade() {
	if g.wait > 0 {
		g.wait--
		return
	}

	for {
		step, ok := g.cascade.Next()
		if !ok {
			g.finishCascade()
			return
		}
		g.cascadeSteps = step.Index
		g.totalSteps++
		g.pending = g.cascade.Peek()
		if g.pending.Empty() {
			g.finishCascade()
			return
		}
		if g.cfg.Cascade.StepTicks > 0 {
			g.wait = g.cfg.Cascade.StepTicks
			return
		}
	}
}

func (g *Game) finishCascade() {
	if err := g.cascade.Err(); err != nil {
		g.logger.Warn("cascade stopped", "err", err)
		g.message = "Cascade limit reached"
	}
	g.logger.Debug("cascade settled", "steps", g.cascadeSteps)
	g.phase = PhaseIdle
	g.cascade = nil
	g.pending = core.MatchSet{}
	g.wait = 0
}

// Click queues a pick at screen position (x, y). Clicks outside the board
// are dropped.
func (g *Game) Click(x, y int) {
	c, ok := g.cellAt(x, y)
	if !ok {
		return
	}
	g.clicked = true
	g.clickPos = c
}

func (g *Game) cellAt(x, y int) (core.Coord, bool) {
	if g.grid == nil || g.tooSmall {
		return core.Coord{}, false
	}
	col := x - g.originX - 1
	row := y - g.originY - 1
	if col < 0 || row < 0 {
		return core.Coord{}, false
	}
	c := core.C(row, col/cellWidth)
	return c, g.grid.InBounds(c)
}

// State returns the platform-visible state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Busy:   g.phase == PhaseCascading,
		Paused: g.paused,
	}
}

// Resize adapts the layout to a new screen size and keeps the board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	if g.grid != nil {
		g.calculateLayout()
	}
}
