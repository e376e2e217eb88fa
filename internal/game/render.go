package game

import (
	"fmt"
	"strings"

	"github.com/maksdenisov/skystrike/internal/core"
)

// Glyphs for game elements.
const (
	playerBody   = '▲'
	playerWingL  = '◢'
	playerWingR  = '◣'
	enemyChar    = '▼'
	playerShotCh = '╹'
	enemyShotCh  = '╻'
	explosionHot = '✦'
	explosionDim = '·'
)

// Render draws the current frame into the screen buffer. Row 0 is the HUD;
// the rest of the buffer maps the world bounds.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.round.Phase == PhaseReady {
		g.drawReady(dst)
		return
	}

	w := g.world
	if w != nil {
		for _, e := range w.Enemies {
			x, y := g.project(dst, e.Pos)
			dst.SetCell(x, y, enemyChar, core.ColorBrightRed)
		}
		for _, s := range w.PlayerShots {
			x, y := g.project(dst, s.Pos)
			dst.SetCell(x, y, playerShotCh, core.ColorBrightYellow)
		}
		for _, s := range w.EnemyShots {
			x, y := g.project(dst, s.Pos)
			dst.SetCell(x, y, enemyShotCh, core.ColorOrange)
		}
		for _, e := range w.Explosions {
			x, y := g.project(dst, e.Pos)
			ch := explosionHot
			if e.Fraction() < 0.4 {
				ch = explosionDim
			}
			dst.SetCell(x, y, ch, core.ColorBrightYellow)
		}

		px, py := g.project(dst, w.Player.Pos)
		dst.SetCell(px-1, py, playerWingL, core.ColorCyan)
		dst.SetCell(px, py, playerBody, core.ColorBrightCyan)
		dst.SetCell(px+1, py, playerWingR, core.ColorCyan)
	}

	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.round.Phase == PhaseGameOver {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", g.round.Score))
	}
}

// project maps a world position to screen cell coordinates.
// World y grows upward, screen y grows downward; row 0 is reserved for HUD.
func (g *Game) project(dst *core.Screen, p core.Vec2) (int, int) {
	b := core.BoundsFor(g.cfg.World.Height, g.cfg.World.Aspect)
	if g.world != nil {
		b = g.world.Bounds
	}
	// Degenerate viewports (a one or two row terminal) still map sanely.
	fieldH := core.Max(dst.Height()-1, 2)
	x := int((p.X - b.Left) / b.Width() * float64(core.Max(dst.Width()-1, 1)))
	y := 1 + int((b.Top-p.Y)/b.Height()*float64(fieldH-1))
	return x, y
}

func (g *Game) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" SCORE %04d   HI %04d   LIVES %s",
		g.round.Score, g.round.HighScore,
		strings.Repeat("♥", core.Max(g.round.Lives, 0)))
	dst.DrawTextColored(1, 0, hud, core.ColorBrightWhite)
}

func (g *Game) drawReady(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-2, "S K Y   S T R I K E")
	dst.DrawTextCentered(mid, "Press SPACE to start")
	if g.round.HighScore > 0 {
		dst.DrawTextCentered(mid+2, fmt.Sprintf("High score: %d", g.round.HighScore))
	}
}

// drawCenteredMessage draws a bordered message box in the screen center.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	wBox := core.Max(len(title), len(subtitle)) + 4
	hBox := 5
	x := (dst.Width() - wBox) / 2
	y := (dst.Height() - hBox) / 2

	dst.FillRect(x, y, wBox, hBox, ' ')
	dst.DrawBox(x, y, wBox, hBox)
	dst.DrawText(x+(wBox-len(title))/2, y+1, title)
	dst.DrawText(x+(wBox-len(subtitle))/2, y+3, subtitle)
}
