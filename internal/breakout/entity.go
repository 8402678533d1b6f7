package breakout

import (
	"math"

	"github.com/vovakirdan/super-breakout/internal/core"
)

// Direction is the sign of a quantity, with a dead zone around zero.
type Direction int8

const (
	Negative Direction = -1
	Zero     Direction = 0
	Positive Direction = 1
)

// directionEpsilon is the magnitude below which a value has no direction.
const directionEpsilon = 1e-9

// DirectionOf returns the sign of v. Values within directionEpsilon of zero
// are Zero, so callers never divide by a vanishing magnitude.
func DirectionOf(v float64) Direction {
	switch {
	case v > directionEpsilon:
		return Positive
	case v < -directionEpsilon:
		return Negative
	default:
		return Zero
	}
}

// Ball is the single ball in play. Position and velocity are field
// fractions; Speed is the budget that velocity is derived from.
type Ball struct {
	X, Y   float64
	VX, VY float64
	Speed  float64
}

// Rect returns the ball's bounding box in field coordinates.
func (b Ball) Rect() core.RectF {
	return core.CenteredRect(b.X, b.Y, BallSize, BallSize)
}

// launch places the ball at (x, y) moving straight down at half the budget.
func (b *Ball) launch(x, y, speed float64) {
	b.X, b.Y = x, y
	b.Speed = speed
	b.VX = 0
	b.VY = speed / 2
}

// stop zeroes the velocity and keeps the budget.
func (b *Ball) stop() {
	b.VX, b.VY = 0, 0
}

// rescale raises the speed budget to speed, keeping the velocity ratio and
// reversing the vertical direction.
func (b *Ball) rescale(speed float64) {
	ratio := speed / b.Speed
	b.Speed = speed
	b.VX *= ratio
	b.VY *= -ratio
}

// Paddle is the player's bat. X is its centre; it always sits at PaddleY.
type Paddle struct {
	X     float64
	Width float64
}

// Rect returns the paddle's bounding box in field coordinates.
func (p Paddle) Rect() core.RectF {
	return core.CenteredRect(p.X, PaddleY, p.Width, PaddleHeight)
}

// move shifts the paddle by dx and keeps both edges inside the side walls.
func (p *Paddle) move(dx float64) {
	p.X = core.ClampF(p.X+dx, p.Width/2+CellWidth, 1-p.Width/2-CellWidth)
}

// Match holds the counters and timers of one game.
type Match struct {
	Lives      int
	Score      int
	ScoreQueue int // Points earned but not yet counted into Score
	PaddleHits int
	Lines      int // Line descents so far

	cueIndex     int     // Next slot in the brick sound sequence
	scoreTimer   float64 // Countdown until the next queued point is counted
	respawnTimer float64

	// Simulated timestamps of the last rate-limited events.
	lastBreak     float64
	lastPaddleHit float64
	lastLine      float64
	lastLineHits  int // PaddleHits value that caused the last descent
}

func newMatch(lives int) Match {
	return Match{
		Lives:         lives,
		lastBreak:     math.Inf(-1),
		lastPaddleHit: math.Inf(-1),
		lastLine:      math.Inf(-1),
		lastLineHits:  -1,
	}
}
