package breakout

import (
	"image/color"

	"github.com/vovakirdan/super-breakout/internal/core"
)

// Colours shared by the frontends.
var (
	WallRGB   = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	PaddleRGB = color.RGBA{R: 150, G: 170, B: 0, A: 255}
	BallRGB   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// BrickRGB returns the colour of a lattice row. Each band has its own hue
// and gets brighter toward the paddle.
func BrickRGB(row int) color.RGBA {
	j := row + 1 // Field row, counting the top wall
	shade := func(base, ref int) uint8 {
		return uint8(core.Clamp(base+(j-ref)*20, 0, 255)) //#nosec G115 -- clamped
	}
	switch {
	case j < 5:
		return color.RGBA{R: shade(220, 4), A: 255}
	case j < 9:
		return color.RGBA{B: shade(230, 8), A: 255}
	case j < 13:
		return color.RGBA{R: shade(200, 12), B: shade(140, 12), A: 255}
	case j < 17:
		return color.RGBA{G: shade(220, 16), A: 255}
	default:
		return color.RGBA{G: shade(220, 20), A: 255}
	}
}

// BrickColor returns the terminal colour of a lattice row.
func BrickColor(row int) core.Color {
	bright := row%4 >= 2
	switch {
	case row < 4:
		return pick(bright, core.ColorBrightRed, core.ColorRed)
	case row < 8:
		return pick(bright, core.ColorBrightBlue, core.ColorBlue)
	case row < 12:
		return pick(bright, core.ColorBrightMagenta, core.ColorMagenta)
	default:
		return pick(bright, core.ColorBrightGreen, core.ColorGreen)
	}
}

func pick(cond bool, a, b core.Color) core.Color {
	if cond {
		return a
	}
	return b
}
