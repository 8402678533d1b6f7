package breakout

import "math"

// Snapshot is a read-only copy of everything a frontend draws.
// Positions are field fractions.
type Snapshot struct {
	Tick  uint64
	Clock float64

	Bricks [Columns][Rows]bool

	BallX, BallY   float64
	BallVX, BallVY float64
	BallSize       float64
	BallSpeed      float64

	PaddleX      float64
	PaddleY      float64
	PaddleWidth  float64
	PaddleHeight float64

	Score       int
	ScoreDigits [ScoreDigits]int // Most significant first, wraps at 99999
	ScoreQueue  int
	Lives       int // Never negative
	PaddleHits  int
	Lines       int

	Phase  Phase
	Paused bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:         g.ticks,
		Clock:        g.clock,
		Bricks:       g.grid.Cells(),
		BallX:        g.ball.X,
		BallY:        g.ball.Y,
		BallVX:       g.ball.VX,
		BallVY:       g.ball.VY,
		BallSize:     BallSize,
		BallSpeed:    g.ball.Speed,
		PaddleX:      g.paddle.X,
		PaddleY:      PaddleY,
		PaddleWidth:  g.paddle.Width,
		PaddleHeight: PaddleHeight,
		Score:        g.match.Score,
		ScoreDigits:  scoreDigits(g.match.Score),
		ScoreQueue:   g.match.ScoreQueue,
		Lives:        max(g.match.Lives, 0),
		PaddleHits:   g.match.PaddleHits,
		Lines:        g.match.Lines,
		Phase:        g.phase,
		Paused:       g.paused,
	}
}

// scoreDigits splits a score into fixed-width decimal digits.
func scoreDigits(score int) [ScoreDigits]int {
	var d [ScoreDigits]int
	score %= 100000
	for i := ScoreDigits - 1; i >= 0; i-- {
		d[i] = score % 10
		score /= 10
	}
	return d
}

// BricksAlive returns the number of standing bricks in the snapshot.
func (snap *Snapshot) BricksAlive() int {
	n := 0
	for col := range Columns {
		for row := range Rows {
			if snap.Bricks[col][row] {
				n++
			}
		}
	}
	return n
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + math.Float64bits(snap.Clock)
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallVX)
	h = h*31 + math.Float64bits(snap.BallVY)
	h = h*31 + math.Float64bits(snap.BallSpeed)
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.PaddleWidth)
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ScoreQueue) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleHits) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lines)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)      //#nosec G115 -- hash computation

	for col := range Columns {
		for row := range Rows {
			h *= 31
			if snap.Bricks[col][row] {
				h++
			}
		}
	}

	if snap.Paused {
		h = h*31 + 1
	}
	return h
}
