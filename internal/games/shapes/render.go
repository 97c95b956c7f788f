package shapes

import (
	"strconv"

	platformcore "github.com/vovakirdan/shapeswap/internal/core"
	"github.com/vovakirdan/shapeswap/internal/games/shapes/core"
)

const (
	cellWidth = 3 // "[x]": bracket, glyph, bracket
	hudHeight = 3
)

// tileColors is indexed by tile kind.
var tileColors = [core.MaxKinds + 1]platformcore.Color{
	platformcore.ColorDefault,
	platformcore.ColorRed,
	platformcore.ColorYellow,
	platformcore.ColorBlue,
	platformcore.ColorGreen,
	platformcore.ColorMagenta,
	platformcore.ColorCyan,
	platformcore.ColorOrange,
	platformcore.ColorWhite,
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}
	if g.grid == nil {
		return
	}

	g.renderBoard(dst)

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := " Shape Swap | Moves: " + strconv.Itoa(g.moves)
	if g.grid != nil {
		hud += " | " + strconv.Itoa(g.grid.Rows()) + "x" + strconv.Itoa(g.grid.Cols()) +
			" | Runs of " + strconv.Itoa(g.cfg.Board.Threshold)
	}
	if g.phase == PhaseCascading {
		hud += " | Cascade " + strconv.Itoa(g.cascadeSteps+1)
	}
	dst.DrawTextColor(0, 0, hud, platformcore.ColorCyan)

	if g.message != "" {
		color := platformcore.ColorYellow
		if g.flash > 0 {
			color = platformcore.ColorRed
		}
		dst.DrawTextColor(1, 1, g.message, color)
	}

	for x := 0; x < dst.Width(); x++ {
		dst.SetColor(x, 2, '─', platformcore.ColorGray)
	}
}

func (g *Game) renderBoard(dst *platformcore.Screen) {
	rows, cols := g.grid.Rows(), g.grid.Cols()
	dst.DrawBox(platformcore.NewRect(g.originX, g.originY, cols*cellWidth+2, rows+2), platformcore.ColorGray)

	for r := range rows {
		for c := range cols {
			g.renderCell(dst, core.C(r, c))
		}
	}
}

func (g *Game) renderCell(dst *platformcore.Screen, at core.Coord) {
	x := g.originX + 1 + at.Col*cellWidth
	y := g.originY + 1 + at.Row

	t, err := g.grid.At(at)
	if err != nil {
		return
	}

	glyph := []rune(g.cfg.Symbol(int(t)))
	r := rune(t.Letter())
	if len(glyph) == 1 {
		r = glyph[0]
	}

	color := tileColors[t]
	if g.pending.Has(at) {
		color = platformcore.ColorBrightWhite
		dst.SetColor(x, y, '·', platformcore.ColorGray)
		dst.SetColor(x+2, y, '·', platformcore.ColorGray)
	}
	dst.SetColor(x+1, y, r, color)

	left, right, bc := g.brackets(at)
	if left != 0 {
		dst.SetColor(x, y, left, bc)
		dst.SetColor(x+2, y, right, bc)
	}
}

// brackets returns the frame drawn around a cell, or zero runes for none.
func (g *Game) brackets(at core.Coord) (left, right rune, c platformcore.Color) {
	switch {
	case g.flash > 0 && at == g.flashCell:
		return '<', '>', platformcore.ColorRed
	case g.hasSel && at == g.selected && at == g.cursor:
		return '[', ']', platformcore.ColorYellow
	case g.hasSel && at == g.selected:
		return '<', '>', platformcore.ColorYellow
	case at == g.cursor:
		return '[', ']', platformcore.ColorBrightWhite
	}
	return 0, 0, platformcore.ColorDefault
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, title, subtitle string) {
	centerY := dst.Height() / 2
	w := max(len([]rune(title)), len([]rune(subtitle))) + 6
	x := (dst.Width() - w) / 2
	box := platformcore.NewRect(x, centerY-2, w, 5)

	for yy := box.Y + 1; yy < box.Bottom()-1; yy++ {
		for xx := box.X + 1; xx < box.Right()-1; xx++ {
			dst.Set(xx, yy, ' ')
		}
	}
	dst.DrawBox(box, platformcore.ColorWhite)
	dst.DrawTextCentered(centerY-1, title, platformcore.ColorBrightWhite)
	dst.DrawTextCentered(centerY+1, subtitle, platformcore.ColorGray)
}
