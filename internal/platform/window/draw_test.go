package window

import (
	"math"
	"testing"

	"github.com/vovakirdan/super-breakout/internal/breakout"
)

func TestFieldRect(t *testing.T) {
	f := fieldRect(600, 700)
	if f.Y != 84 || f.H != 616 || f.W != 600 {
		t.Errorf("fieldRect = %+v, expected 84px score margin", f)
	}
}

func TestProject(t *testing.T) {
	f := rect{X: 0, Y: 100, W: 600, H: 720}

	cx, cy := breakout.BrickCenter(0, 0)
	r := f.project(cx, cy, breakout.CellWidth, breakout.CellHeight)

	if math.Abs(float64(r.X)-40) > 1e-3 || math.Abs(float64(r.W)-40) > 1e-3 {
		t.Errorf("first brick x = %f w = %f, expected one cell in from the wall", r.X, r.W)
	}
	if math.Abs(float64(r.Y)-120) > 1e-3 || math.Abs(float64(r.H)-20) > 1e-3 {
		t.Errorf("first brick y = %f h = %f, expected one row below the top wall", r.Y, r.H)
	}
}

func TestPointerMotion(t *testing.T) {
	tests := []struct {
		dx, width int
		want      float64
	}{
		{60, 600, 100},
		{-300, 600, -500},
		{10, 0, 0},
	}
	for _, tt := range tests {
		if got := pointerMotion(tt.dx, tt.width); got != tt.want {
			t.Errorf("pointerMotion(%d, %d) = %f, expected %f", tt.dx, tt.width, got, tt.want)
		}
	}
}

func TestRepeatFires(t *testing.T) {
	var fired []int
	for d := range 25 {
		if repeatFires(d) {
			fired = append(fired, d)
		}
	}
	want := []int{1, 15, 18, 21, 24}
	if len(fired) != len(want) {
		t.Fatalf("fired on %v, expected %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Errorf("fired on %v, expected %v", fired, want)
			break
		}
	}
}
