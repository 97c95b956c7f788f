package shapes

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/shapeswap/internal/config"
	platformcore "github.com/vovakirdan/shapeswap/internal/core"
	"github.com/vovakirdan/shapeswap/internal/games/shapes/core"
)

func testConfig() config.ShapesConfig {
	cfg := config.DefaultShapesConfig()
	cfg.Cascade.StepTicks = 2
	return cfg
}

func newTestGame(t *testing.T, cfg config.ShapesConfig, seed int64) *Game {
	t.Helper()
	g := NewWithConfig(cfg)
	g.Reset(platformcore.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24})
	require.False(t, g.tooSmall)
	return g
}

// settle ticks until the game leaves the cascading phase.
func settle(t *testing.T, g *Game) {
	t.Helper()
	frame := platformcore.NewInputFrame()
	for i := 0; i < 10000 && g.phase == PhaseCascading; i++ {
		g.Step(frame)
	}
	require.Equal(t, PhaseIdle, g.phase, "cascade did not settle")
}

func press(g *Game, actions ...platformcore.Action) {
	frame := platformcore.NewInputFrame()
	for _, a := range actions {
		frame.Set(a)
	}
	g.Step(frame)
}

// loadBoard replaces the board with a fixture and puts the cursor at (0,0).
func loadBoard(g *Game, rows ...string) {
	g.grid = core.MustParseGrid(rows...)
	g.cursor = core.C(0, 0)
	g.hasSel = false
	g.phase = PhaseIdle
	g.calculateLayout()
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, testConfig(), 12345)
	g2 := newTestGame(t, testConfig(), 12345)

	script := []platformcore.Action{
		platformcore.ActionConfirm, platformcore.ActionRight, platformcore.ActionConfirm,
		platformcore.ActionDown, platformcore.ActionConfirm, platformcore.ActionUp,
		platformcore.ActionConfirm, platformcore.ActionLeft, platformcore.ActionConfirm,
	}
	for i := 0; i < 300; i++ {
		a := script[i%len(script)]
		press(g1, a)
		press(g2, a)
	}

	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
}

func TestResetStartsWithFullBoard(t *testing.T) {
	g := newTestGame(t, testConfig(), 7)
	settle(t, g)

	grid := g.Grid()
	assert.Equal(t, 16, grid.Rows())
	assert.Equal(t, 16, grid.Cols())
	assert.Zero(t, grid.CountEmpty())
	assert.True(t, core.DetectMatches(grid, 4).Empty(), "idle board must be stable")
	assert.Equal(t, core.C(8, 8), g.cursor)
}

func TestStableStart(t *testing.T) {
	cfg := testConfig()
	cfg.Board.StableStart = true
	g := newTestGame(t, cfg, 99)

	assert.Equal(t, PhaseIdle, g.phase)
	assert.True(t, core.DetectMatches(g.grid, cfg.Board.Threshold).Empty())
}

func TestCursorClamped(t *testing.T) {
	g := newTestGame(t, testConfig(), 1)
	settle(t, g)
	loadBoard(g, "ABAB", "BABA", "ABAB", "BABA")

	press(g, platformcore.ActionUp, platformcore.ActionLeft)
	assert.Equal(t, core.C(0, 0), g.cursor)

	for range 10 {
		press(g, platformcore.ActionDown, platformcore.ActionRight)
	}
	assert.Equal(t, core.C(3, 3), g.cursor)
}

func TestSwapCommitStartsCascade(t *testing.T) {
	cfg := testConfig()
	g := newTestGame(t, cfg, 3)
	settle(t, g)
	loadBoard(g,
		"AAAB",
		"CDCA",
		"DCDC",
		"CDCD",
	)

	// Select (0,3), then (1,3) below it.
	for range 3 {
		press(g, platformcore.ActionRight)
	}
	press(g, platformcore.ActionConfirm)
	require.True(t, g.hasSel)
	press(g, platformcore.ActionDown)
	press(g, platformcore.ActionConfirm)

	assert.False(t, g.hasSel)
	assert.Equal(t, 1, g.moves)
	assert.Equal(t, PhaseCascading, g.phase)
	assert.True(t, g.State().Busy)

	snap := g.Snapshot()
	assert.Equal(t, []core.Coord{core.C(0, 0), core.C(0, 1), core.C(0, 2), core.C(0, 3)}, snap.Pending)

	settle(t, g)
	assert.GreaterOrEqual(t, g.cascadeSteps, 1)
	assert.Zero(t, g.grid.CountEmpty())
	assert.True(t, core.DetectMatches(g.grid, cfg.Board.Threshold).Empty())
}

func TestSwapWithoutMatchIsUndone(t *testing.T) {
	g := newTestGame(t, testConfig(), 3)
	settle(t, g)
	loadBoard(g, "ABAB", "BABA", "ABAB", "BABA")
	before := g.grid.String()

	press(g, platformcore.ActionConfirm)
	press(g, platformcore.ActionRight)
	press(g, platformcore.ActionConfirm)

	assert.Equal(t, before, g.grid.String())
	assert.Equal(t, PhaseIdle, g.phase)
	assert.Zero(t, g.moves)
	assert.Equal(t, 1, g.rejected)
	assert.NotEmpty(t, g.message)
}

func TestNonAdjacentPickKeepsSelection(t *testing.T) {
	g := newTestGame(t, testConfig(), 3)
	settle(t, g)
	loadBoard(g, "ABAB", "BABA", "ABAB", "BABA")

	press(g, platformcore.ActionConfirm)
	press(g, platformcore.ActionRight, platformcore.ActionDown)
	press(g, platformcore.ActionConfirm)

	require.True(t, g.hasSel)
	assert.Equal(t, core.C(0, 0), g.selected)
	assert.Positive(t, g.flash)
	assert.Equal(t, core.C(1, 1), g.flashCell)

	for range flashTicks {
		press(g)
	}
	assert.Zero(t, g.flash)
}

func TestSamePickIgnoredAndBackClears(t *testing.T) {
	g := newTestGame(t, testConfig(), 3)
	settle(t, g)
	loadBoard(g, "ABAB", "BABA", "ABAB", "BABA")

	press(g, platformcore.ActionConfirm)
	press(g, platformcore.ActionConfirm)
	require.True(t, g.hasSel)
	assert.Equal(t, core.C(0, 0), g.selected)

	press(g, platformcore.ActionBack)
	assert.False(t, g.hasSel)
}

func TestInputIgnoredWhileCascading(t *testing.T) {
	g := newTestGame(t, testConfig(), 3)
	settle(t, g)
	loadBoard(g, "AAAB", "CDCA", "DCDC", "CDCD")
	g.cursor = core.C(0, 3)
	press(g, platformcore.ActionConfirm)
	press(g, platformcore.ActionDown)
	press(g, platformcore.ActionConfirm)
	require.Equal(t, PhaseCascading, g.phase)

	press(g, platformcore.ActionConfirm)
	assert.False(t, g.hasSel, "selection is not allowed during playback")
}

func TestZeroStepTicksResolvesInOneTick(t *testing.T) {
	cfg := testConfig()
	cfg.Cascade.StepTicks = 0
	g := newTestGame(t, cfg, 3)
	press(g)
	require.Equal(t, PhaseIdle, g.phase)

	loadBoard(g, "AAAB", "CDCA", "DCDC", "CDCD")
	g.cursor = core.C(0, 3)
	press(g, platformcore.ActionConfirm)
	press(g, platformcore.ActionDown)
	press(g, platformcore.ActionConfirm)
	require.Equal(t, PhaseCascading, g.phase)

	press(g)
	assert.Equal(t, PhaseIdle, g.phase)
	assert.True(t, core.DetectMatches(g.grid, cfg.Board.Threshold).Empty())
}

func TestClickSelectsCell(t *testing.T) {
	g := newTestGame(t, testConfig(), 3)
	settle(t, g)
	loadBoard(g, "ABAB", "BABA", "ABAB", "BABA")

	g.Click(g.originX+1+2*cellWidth, g.originY+1+1)
	press(g)
	require.True(t, g.hasSel)
	assert.Equal(t, core.C(1, 2), g.selected)
	assert.Equal(t, core.C(1, 2), g.cursor)

	g.Click(0, 0)
	assert.False(t, g.clicked, "clicks outside the board are dropped")
}

func TestPauseStopsPlayback(t *testing.T) {
	g := newTestGame(t, testConfig(), 3)
	settle(t, g)
	loadBoard(g, "AAAB", "CDCA", "DCDC", "CDCD")
	g.cursor = core.C(0, 3)
	press(g, platformcore.ActionConfirm)
	press(g, platformcore.ActionDown)
	press(g, platformcore.ActionConfirm)

	press(g, platformcore.ActionPause)
	board := g.grid.String()
	for range 20 {
		press(g)
	}
	assert.True(t, g.State().Paused)
	assert.Equal(t, board, g.grid.String())
}

func TestTooSmall(t *testing.T) {
	g := NewWithConfig(testConfig())
	g.Reset(platformcore.RuntimeConfig{Seed: 1, ScreenW: 20, ScreenH: 10})
	assert.True(t, g.tooSmall)

	screen := platformcore.NewScreen(20, 10)
	g.Render(screen)
	assert.Contains(t, screen.String(), "too small")
}

func TestRenderShowsBoardAndCursor(t *testing.T) {
	g := newTestGame(t, testConfig(), 3)
	settle(t, g)
	loadBoard(g, "ABAB", "BABA", "ABAB", "BABA")

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "Shape Swap")
	assert.Contains(t, out, "[●]")
	assert.Contains(t, screen.Row(g.originY+1), "[●] ▲  ●  ▲ ")
}

func TestRestartGivesNewBoard(t *testing.T) {
	g := newTestGame(t, testConfig(), 5)
	settle(t, g)
	before := g.grid.String()

	press(g, platformcore.ActionRestart)
	settle(t, g)
	assert.NotEqual(t, before, g.grid.String())
	assert.Zero(t, g.moves)
}

func TestLoadConfigAppliesPreset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	SetConfigPath("")
	SetPreset(config.PresetMini)
	t.Cleanup(func() { SetPreset("") })

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Board.Size)
	assert.Equal(t, 3, cfg.Board.Threshold)

	g := New()
	g.Reset(platformcore.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24})
	assert.Equal(t, 8, g.grid.Rows())
}

func TestLoadConfigBadPath(t *testing.T) {
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	t.Cleanup(func() { SetConfigPath("") })

	_, err := LoadConfig()
	require.Error(t, err)

	// A game falls back to defaults instead of failing.
	g := New()
	g.Reset(platformcore.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24})
	assert.Equal(t, 16, g.grid.Rows())
}

func TestResizeKeepsBoard(t *testing.T) {
	g := newTestGame(t, testConfig(), 11)
	settle(t, g)
	board := g.grid.String()

	g.Resize(30, 10)
	assert.True(t, g.tooSmall)
	g.Resize(120, 40)
	assert.False(t, g.tooSmall)
	assert.Equal(t, board, g.grid.String())
}
