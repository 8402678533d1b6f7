package window

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/super-breakout/internal/breakout"
	"github.com/vovakirdan/super-breakout/internal/core"
)

// debugGlyphH is the line height of ebitenutil's debug font.
const debugGlyphH = 16

// rect is a pixel rectangle.
type rect struct {
	X, Y, W, H float32
}

// fieldRect returns the area below the score margin.
func fieldRect(w, h int) rect {
	hud := float32(math.Round(breakout.ScoreMargin * float64(h)))
	return rect{X: 0, Y: hud, W: float32(w), H: float32(h) - hud}
}

// project maps a field-fraction rectangle centred on (cx, cy) to pixels.
func (f rect) project(cx, cy, w, h float64) rect {
	return rect{
		X: f.X + float32(cx-w/2)*f.W,
		Y: f.Y + float32(cy-h/2)*f.H,
		W: float32(w) * f.W,
		H: float32(h) * f.H,
	}
}

// pointerMotion converts a pointer delta in pixels into reference pixels.
func pointerMotion(dx, width int) float64 {
	if width <= 0 {
		return 0
	}
	return float64(dx) * core.ReferenceWidth / float64(width)
}

// Draw renders a snapshot of the game.
func (a *app) Draw(screen *ebiten.Image) {
	snap := a.game.Snapshot()
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	field := fieldRect(w, h)

	fill := func(r rect, c color.Color) {
		vector.DrawFilledRect(screen, r.X, r.Y, r.W, r.H, c, false)
	}

	// Walls: left and right columns and the top row.
	cell := field.project(0.5*breakout.CellWidth, 0.5*breakout.CellHeight, breakout.CellWidth, breakout.CellHeight)
	fill(rect{X: field.X, Y: field.Y, W: cell.W, H: field.H}, breakout.WallRGB)
	fill(rect{X: field.X + field.W - cell.W, Y: field.Y, W: cell.W, H: field.H}, breakout.WallRGB)
	fill(rect{X: field.X, Y: field.Y, W: field.W, H: cell.H}, breakout.WallRGB)

	for col := range breakout.Columns {
		for row := range breakout.Rows {
			if !snap.Bricks[col][row] {
				continue
			}
			cx, cy := breakout.BrickCenter(col, row)
			r := field.project(cx, cy, breakout.CellWidth, breakout.CellHeight)
			// One pixel gap between bricks.
			fill(rect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: r.H - 2}, breakout.BrickRGB(row))
		}
	}

	fill(field.project(snap.PaddleX, snap.PaddleY, snap.PaddleWidth, snap.PaddleHeight), breakout.PaddleRGB)

	if snap.BallY < 1 {
		ballW := snap.BallSize * float64(field.H) / float64(field.W)
		fill(field.project(snap.BallX, snap.BallY, ballW, snap.BallSize), breakout.BallRGB)
	}

	var digits string
	for _, d := range snap.ScoreDigits {
		digits += fmt.Sprint(d)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s   %d", digits, snap.Lives), 8, int(field.Y)/2-debugGlyphH/2)

	switch {
	case snap.Paused:
		drawMessage(screen, "PAUSED", "P to resume  R to restart")
	case snap.Phase == breakout.PhaseGameOver && snap.ScoreQueue == 0:
		drawMessage(screen, "GAME OVER", fmt.Sprintf("Score: %d  R to restart", snap.Score))
	}
}

// drawMessage prints two centred lines over the field.
func drawMessage(screen *ebiten.Image, title, subtitle string) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	const glyphW = 6
	ebitenutil.DebugPrintAt(screen, title, (w-len(title)*glyphW)/2, h/2-debugGlyphH)
	ebitenutil.DebugPrintAt(screen, subtitle, (w-len(subtitle)*glyphW)/2, h/2+debugGlyphH/2)
}
