package breakout

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/super-breakout/internal/core"
)

// Visual characters for rendering
const (
	WallChar   = '█'
	BrickChar  = '█'
	PaddleChar = '▀'
	BallChar   = '●'
)

// Minimum surface that still shows every lattice column.
const (
	MinScreenW = FieldColumns * 2
	MinScreenH = 12
)

// Render draws the current game state to a character screen.
func (g *Game) Render(dst *core.Screen) {
	snap := g.Snapshot()
	RenderSnapshot(dst, &snap)
}

// RenderSnapshot draws a snapshot to a character screen. The top
// ScoreMargin of the screen holds the score; the field fills the rest.
func RenderSnapshot(dst *core.Screen, snap *Snapshot) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorWhite)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorWhite)
		return
	}

	hud := core.Max(1, int(math.Round(ScoreMargin*float64(dst.Height()))))
	field := core.NewRect(0, hud, dst.Width(), dst.Height()-hud)

	renderHUD(dst, snap, hud)
	renderField(dst, snap, field)
	renderPaddle(dst, snap, field)
	renderBall(dst, snap, field)
	renderOverlay(dst, snap)
}

// renderHUD draws the five score digits and the lives digit.
func renderHUD(dst *core.Screen, snap *Snapshot, rows int) {
	var digits strings.Builder
	for _, d := range snap.ScoreDigits {
		fmt.Fprintf(&digits, "%d", d)
	}
	text := fmt.Sprintf("%s   %d", digits.String(), snap.Lives)
	dst.DrawText(1, rows/2, text, core.ColorWhite)
}

// renderField samples the lattice at the centre of every screen cell, so
// walls and bricks stay aligned however coarse the screen is.
func renderField(dst *core.Screen, snap *Snapshot, field core.Rect) {
	for sy := range field.H {
		row := int((float64(sy) + 0.5) / float64(field.H) * FieldRows)
		for sx := range field.W {
			col := int((float64(sx) + 0.5) / float64(field.W) * FieldColumns)
			x, y := field.X+sx, field.Y+sy

			switch {
			case col == 0 || col == FieldColumns-1 || row == 0:
				dst.SetCell(x, y, WallChar, core.ColorGray)
			case row-1 < Rows && snap.Bricks[col-1][row-1]:
				dst.SetCell(x, y, BrickChar, BrickColor(row-1))
			}
		}
	}
}

// renderPaddle draws the player's paddle.
func renderPaddle(dst *core.Screen, snap *Snapshot, field core.Rect) {
	r := core.CenteredRect(snap.PaddleX, snap.PaddleY, snap.PaddleWidth, snap.PaddleHeight).
		Scale(field.W, field.H)
	if r.Empty() {
		return
	}
	r.X += field.X
	r.Y += field.Y
	dst.DrawRect(r, PaddleChar, core.ColorOlive)
}

// renderBall draws the ball while it is inside the field.
func renderBall(dst *core.Screen, snap *Snapshot, field core.Rect) {
	if snap.BallY < 0 || snap.BallY >= 1 || snap.BallX < 0 || snap.BallX >= 1 {
		return
	}
	x := field.X + int(snap.BallX*float64(field.W))
	y := field.Y + int(snap.BallY*float64(field.H))
	dst.SetCell(x, y, BallChar, core.ColorWhite)
}

// renderOverlay draws pause and game over messages.
func renderOverlay(dst *core.Screen, snap *Snapshot) {
	switch {
	case snap.Paused:
		drawCenteredBox(dst, "PAUSED", "P to resume  R to restart")
	case snap.Phase == PhaseGameOver && snap.ScoreQueue == 0:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R to restart", snap.Score))
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Min(core.Max(len([]rune(title)), len([]rune(subtitle)))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorWhite)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle, core.ColorWhite)
}
