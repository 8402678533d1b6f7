package breakout

import (
	"strings"
	"testing"

	"github.com/vovakirdan/super-breakout/internal/core"
)

func TestRenderLayout(t *testing.T) {
	g := newTestGame(t)
	g.match.Score = 420
	dst := core.NewScreen(80, 24)
	g.Render(dst)

	if !strings.Contains(dst.Row(1), "00420   5") {
		t.Errorf("HUD row = %q, expected score and lives", dst.Row(1))
	}

	// Top wall spans the first field row, side walls every row below it.
	if c := dst.GetCell(40, 3); c.Rune != WallChar || c.Color != core.ColorGray {
		t.Errorf("top wall cell = %+v", c)
	}
	if c := dst.GetCell(0, 20); c.Rune != WallChar || c.Color != core.ColorGray {
		t.Errorf("left wall cell = %+v", c)
	}
	if c := dst.GetCell(79, 20); c.Rune != WallChar {
		t.Errorf("right wall cell = %+v", c)
	}

	if c := dst.GetCell(10, 4); c.Rune != BrickChar || c.Color != core.ColorRed {
		t.Errorf("top brick cell = %+v, expected red brick", c)
	}

	if dst.Get(40, 17) != BallChar {
		t.Errorf("ball not drawn at (40, 17): %q", dst.Row(17))
	}

	olive := 0
	for y := range dst.Height() {
		for x := range dst.Width() {
			if dst.GetCell(x, y).Color == core.ColorOlive {
				olive++
			}
		}
	}
	if olive < 8 {
		t.Errorf("paddle covers %d cells, expected at least 8", olive)
	}
}

func TestRenderBrokenBrickIsBlank(t *testing.T) {
	g := newTestGame(t)
	for row := range Rows {
		g.grid.Kill(0, row)
	}
	dst := core.NewScreen(80, 24)
	g.Render(dst)

	if c := dst.GetCell(10, 4); c.Rune != ' ' {
		t.Errorf("cleared column still drawn: %+v", c)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t)
	dst := core.NewScreen(20, 8)
	g.Render(dst)

	if !strings.Contains(dst.String(), "Window too small") {
		t.Errorf("expected size warning, got:\n%s", dst.String())
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t)
	g.paused = true
	dst := core.NewScreen(80, 24)
	g.Render(dst)
	if !strings.Contains(dst.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}

	g.paused = false
	g.phase = PhaseGameOver
	g.Render(dst)
	if !strings.Contains(dst.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}

	g.match.ScoreQueue = 5
	g.Render(dst)
	if strings.Contains(dst.String(), "GAME OVER") {
		t.Error("game over overlay waits for the score to finish counting")
	}
}

func TestBrickColours(t *testing.T) {
	tests := []struct {
		row  int
		want core.Color
	}{
		{0, core.ColorRed},
		{3, core.ColorBrightRed},
		{4, core.ColorBlue},
		{9, core.ColorMagenta},
		{14, core.ColorBrightGreen},
		{20, core.ColorGreen},
	}
	for _, tt := range tests {
		if got := BrickColor(tt.row); got != tt.want {
			t.Errorf("BrickColor(%d) = %d, expected %d", tt.row, got, tt.want)
		}
	}

	if c := BrickRGB(3); c.R != 220 || c.G != 0 || c.B != 0 {
		t.Errorf("BrickRGB(3) = %+v, expected bright red", c)
	}
	if c := BrickRGB(0); c.R != 160 {
		t.Errorf("BrickRGB(0) = %+v, expected darker red", c)
	}
	if c := BrickRGB(20); c.G != 240 {
		t.Errorf("BrickRGB(20) = %+v, expected green 240", c)
	}
}
