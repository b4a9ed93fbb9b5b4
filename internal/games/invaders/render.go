package invaders

import (
	"fmt"

	"github.com/vovakirdan/space-station/internal/core"
)

// Glyphs used by the terminal renderer.
const (
	PlayerGlyph      = '▲'
	AlienGlyph       = 'Ж'
	ExtraGlyph       = '◆'
	PlayerLaserGlyph = '│'
	AlienLaserGlyph  = '¦'
	BlockGlyph       = '█'
)

// Minimum terminal size for a readable playfield.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// hudRows is reserved at the top of the screen for score and lives.
const hudRows = 1

var alienColors = map[AlienColor]core.Color{
	AlienYellow: core.ColorBrightYellow,
	AlienGreen:  core.ColorBrightGreen,
	AlienRed:    core.ColorBrightRed,
}

// Render draws the round scaled onto dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	g.renderHUD(dst)

	w, h := g.WorldSize()
	vp := core.NewViewport(w, h, dst.Width(), dst.Height()-hudRows)

	g.renderBlocks(dst, vp)
	g.renderAliens(dst, vp)
	g.renderExtra(dst, vp)
	g.renderLasers(dst, vp)
	g.renderPlayer(dst, vp)
	g.renderOverlay(dst)
}

// Viewport returns the mapping Render uses for a screen of the given size,
// so hosts can turn cell clicks into world taps.
func (g *Game) Viewport(screenW, screenH int) core.Viewport {
	w, h := g.WorldSize()
	return core.NewViewport(w, h, screenW, screenH-hudRows)
}

// ScreenToWorld converts a cell of a screen of the given size to world
// coordinates, accounting for the HUD row.
func (g *Game) ScreenToWorld(cx, cy, screenW, screenH int) (float64, float64) {
	return g.Viewport(screenW, screenH).ToWorld(cx, cy-hudRows)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorWhite)

	lives := fmt.Sprintf("Lives: %d", g.lives)
	dst.DrawTextColored(dst.Width()-len(lives)-1, 0, lives, core.ColorBrightRed)

	if g.extra != nil {
		dst.DrawTextCentered(0, "BONUS!")
	}
}

// fillBox paints the cells covered by a world box, shifted below the HUD.
func fillBox(dst *core.Screen, vp core.Viewport, b core.Box, glyph rune, c core.Color) {
	r := vp.BoxToRect(b)
	r.Y += hudRows
	dst.DrawRect(r, glyph, c)
}

func (g *Game) renderBlocks(dst *core.Screen, vp core.Viewport) {
	for _, b := range g.blocks {
		fillBox(dst, vp, b.Box(), BlockGlyph, core.ColorGreen)
	}
}

func (g *Game) renderAliens(dst *core.Screen, vp core.Viewport) {
	for _, a := range g.formation.Aliens {
		x, y := vp.ToScreen(a.X, a.Y)
		dst.SetColored(x, y+hudRows, AlienGlyph, alienColors[a.Color])
	}
}

func (g *Game) renderExtra(dst *core.Screen, vp core.Viewport) {
	if g.extra == nil {
		return
	}
	x, y := vp.ToScreen(g.extra.X, g.extra.Y)
	dst.SetColored(x-1, y+hudRows, '<', core.ColorMagenta)
	dst.SetColored(x, y+hudRows, ExtraGlyph, core.ColorMagenta)
	dst.SetColored(x+1, y+hudRows, '>', core.ColorMagenta)
}

func (g *Game) renderLasers(dst *core.Screen, vp core.Viewport) {
	for _, l := range g.lasers {
		x, y := vp.ToScreen(l.X, l.Y)
		if l.Dir == DirUp {
			dst.SetColored(x, y+hudRows, PlayerLaserGlyph, core.ColorCyan)
		} else {
			dst.SetColored(x, y+hudRows, AlienLaserGlyph, core.ColorOrange)
		}
	}
}

func (g *Game) renderPlayer(dst *core.Screen, vp core.Viewport) {
	if g.player == nil {
		return
	}
	r := vp.BoxToRect(g.player.Box())
	x, y := vp.ToScreen(g.player.X, g.player.Y)
	y += hudRows
	for cx := r.X; cx < r.Right(); cx++ {
		dst.SetColored(cx, y, '▀', core.ColorBrightGreen)
	}
	dst.SetColored(x, y, PlayerGlyph, core.ColorBrightGreen)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.phase == PhaseHome:
		drawCenteredBox(dst, "SPACE STATION", "Press SPACE or click to start")
	case g.phase == PhaseGameOver:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  SPACE or click to play again", g.score))
	case g.phase == PhaseWon:
		drawCenteredBox(dst, "YOU WIN!", fmt.Sprintf("Final Score: %d  |  SPACE or click to play again", g.score))
	case g.paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := min(max(len([]rune(title)), len([]rune(subtitle)))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	rect := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(rect, ' ', core.ColorDefault)
	dst.DrawBox(rect, core.ColorWhite)

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
