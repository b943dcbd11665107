package retris

import (
	"fmt"

	"github.com/mkruglov/retris/internal/core"
)

// sidebarWidth is the space reserved right of the board for the HUD.
const sidebarWidth = 16

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)
	g.renderSidebar(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.inTransition:
		g.renderOverlay(dst, fmt.Sprintf("Level %d", g.score.level), "Get ready")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderBoard draws the border, the locked cells and the active piece.
// Only the visible rows are shown; the hidden spawn rows stay off screen.
func (g *Game) renderBoard(dst *core.Screen) {
	w := g.grid.Width()
	h := g.grid.VisibleHeight()
	top := g.grid.SpawnRows()

	dst.DrawBox(core.NewRect(g.boardX, g.boardY, w*2+2, h+2))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			color := g.grid.Cell(x, top+y)
			if color == core.ColorDefault {
				continue
			}
			g.drawCell(dst, x, y, color)
		}
	}

	if g.falling {
		color := g.active.Shape.Color()
		for _, c := range g.active.Cells() {
			vy := c.Y - top
			if vy < 0 {
				continue
			}
			g.drawCell(dst, c.X, vy, color)
		}
	}
}

// drawCell paints one grid cell as two screen characters.
func (g *Game) drawCell(dst *core.Screen, x, y int, color core.Color) {
	sx := g.boardX + 1 + x*2
	sy := g.boardY + 1 + y
	dst.SetCell(sx, sy, '█', color)
	dst.SetCell(sx+1, sy, '█', color)
}

// renderSidebar draws the score panel and the next piece preview.
func (g *Game) renderSidebar(dst *core.Screen) {
	x := g.boardX + g.grid.Width()*2 + 3
	y := g.boardY

	dst.DrawText(x, y, g.Title())
	dst.DrawText(x, y+2, fmt.Sprintf("Score %d", g.score.score))
	dst.DrawText(x, y+3, fmt.Sprintf("Lines %d", g.score.lines))
	if g.mode == ModeMarathon {
		dst.DrawText(x, y+4, fmt.Sprintf("Level %d", g.score.level))
	}
	if g.score.combo > 1 {
		dst.DrawTextColored(x, y+5, fmt.Sprintf("Combo x%d", g.score.combo), core.ColorYellow)
	}

	dst.DrawText(x, y+7, "Next")
	g.renderPreview(dst, x, y+8)
}

// renderPreview draws the pending shape in a small box.
func (g *Game) renderPreview(dst *core.Screen, x, y int) {
	dst.DrawBox(core.NewRect(x, y, 10, 6))
	color := g.next.Color()
	for _, o := range g.next.Cells(0) {
		// Offsets are centered around the anchor; shift into the box.
		sx := x + 4 + o.X*2
		sy := y + 2 + o.Y
		dst.SetCell(sx, sy, '█', color)
		dst.SetCell(sx+1, sy, '█', color)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
