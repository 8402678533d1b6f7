package breakout

import "math"

// Brick hit extents: the ball centre must be within half a cell plus the
// ball radius of a brick centre on both axes.
const (
	brickReachX = (BallSize + CellWidth) / 2
	brickReachY = (BallSize + CellHeight) / 2
)

// collideBricks breaks at most one brick per tick. Columns are scanned left
// to right and rows top to bottom within each column; the first brick the
// ball overlaps while moving toward it wins.
func (g *Game) collideBricks(res *StepResult) {
	m := &g.match
	if g.clock-m.lastBreak <= g.cfg.Ball.BreakCooldown {
		return
	}

	b := &g.ball
	vertical := DirectionOf(b.VY)
	if vertical == Zero {
		return
	}

	for col := range Columns {
		for row := range Rows {
			if !g.grid.IsAlive(col, row) {
				continue
			}
			bx, by := BrickCenter(col, row)
			if math.Abs(b.X-bx) > brickReachX || math.Abs(b.Y-by) > brickReachY {
				continue
			}
			// The ball must still be heading toward the brick's centre line.
			if toward := DirectionOf(by - b.Y); toward == Zero || toward != vertical {
				continue
			}

			g.breakBrick(col, row)
			res.BricksBroken++
			return
		}
	}
}

// breakBrick removes a brick, queues its points and bounces the ball,
// raising its speed when the brick's band allows it.
func (g *Game) breakBrick(col, row int) {
	g.grid.Kill(col, row)

	band := bandFor(row)
	g.match.ScoreQueue += band.points
	g.match.lastBreak = g.clock

	if target := g.speedTarget(band); band.speedUp > 0 && g.ball.Speed < target {
		g.ball.rescale(target)
	} else {
		g.ball.VY = -g.ball.VY
	}
}

// collidePaddle redirects the ball off the paddle. The further from the
// centre it strikes, the more of the speed budget goes sideways.
func (g *Game) collidePaddle(res *StepResult) {
	b := &g.ball
	p := &g.paddle
	offset := b.X - p.X
	if math.Abs(offset) > (p.Width+BallSize)/2 || math.Abs(b.Y-PaddleY) > BallSize {
		return
	}

	share := math.Abs(offset) / p.Width
	share = math.Max(g.cfg.Paddle.MinDeflect, math.Min(g.cfg.Paddle.MaxDeflect, share))
	b.VX = share * b.Speed
	if DirectionOf(offset) == Negative {
		b.VX = -b.VX
	}
	b.VY = -math.Abs(b.Speed - math.Abs(b.VX))

	m := &g.match
	if g.clock-m.lastPaddleHit > g.cfg.Paddle.HitCooldown {
		m.PaddleHits++
		m.lastPaddleHit = g.clock
		res.Cues = append(res.Cues, Cue{Kind: CuePaddleHit})
	}

	if g.clock-m.lastLine > g.cfg.Gameplay.LineCooldown &&
		m.PaddleHits != m.lastLineHits && descentDue(m.PaddleHits) {
		g.descend(res)
	}
}

// descend brings every brick row one step closer and may narrow the paddle.
func (g *Game) descend(res *StepResult) {
	m := &g.match
	g.grid.DescendLines(m.Lines%8 > 3)
	m.Lines++
	m.lastLine = g.clock
	m.lastLineHits = m.PaddleHits

	g.paddle.Width = shrinkPaddle(g.paddle.Width, m.Lines)

	res.Cues = append(res.Cues, Cue{Kind: CueLineDescend})
	res.LinesDescended++
}

// collideWalls turns the ball back inside the left, right and top walls.
// A cue is emitted only when a velocity component actually reverses.
func (g *Game) collideWalls(res *StepResult) {
	b := &g.ball
	switch {
	case b.X <= leftWall:
		if b.VX < 0 {
			b.VX = -b.VX
			res.Cues = append(res.Cues, Cue{Kind: CueWallBounce})
		}
	case b.X >= rightWall:
		if b.VX > 0 {
			b.VX = -b.VX
			res.Cues = append(res.Cues, Cue{Kind: CueWallBounce})
		}
	}
	if b.Y <= topWall && b.VY < 0 {
		b.VY = -b.VY
		res.Cues = append(res.Cues, Cue{Kind: CueWallBounce})
	}
}

// integrate advances the ball by one explicit Euler step.
func (g *Game) integrate(delta float64) {
	g.ball.X += g.ball.VX * delta
	g.ball.Y += g.ball.VY * delta
}
