package breakout

// rowBand groups brick rows that share a reward and a speed-up.
type rowBand struct {
	lastRow int     // Last row in the band, inclusive
	points  int     // Points queued per brick
	speedUp float64 // Multiplier on the speed baseline, 0 for none
}

// rowBands is ordered from the top of the lattice down. Rows past the last
// band are worth one point and never speed the ball up.
var rowBands = [...]rowBand{
	{lastRow: 3, points: 7, speedUp: 1.3},
	{lastRow: 7, points: 5, speedUp: 1.1},
	{lastRow: 11, points: 3, speedUp: 0.8},
	{lastRow: 15, points: 1, speedUp: 0.8},
}

var lowRowBand = rowBand{lastRow: Rows - 1, points: 1}

// bandFor returns the band a brick row belongs to.
func bandFor(row int) rowBand {
	for _, b := range rowBands {
		if row <= b.lastRow {
			return b
		}
	}
	return lowRowBand
}

// shrinkStep narrows the paddle once enough lines have descended.
type shrinkStep struct {
	lines  int
	factor float64 // Share of PaddleStartWidth
}

var shrinkSteps = [...]shrinkStep{
	{lines: 100, factor: 0.85},
	{lines: 200, factor: 0.75},
	{lines: 300, factor: 0.5},
}

// shrinkPaddle applies the first step that is due and would make the paddle
// narrower. It never widens it.
func shrinkPaddle(width float64, lines int) float64 {
	for _, s := range shrinkSteps {
		if lines >= s.lines && width > s.factor*PaddleStartWidth {
			return s.factor * PaddleStartWidth
		}
	}
	return width
}

// descentHits lists the paddle hit counts that bring the bricks down.
// Past lastScheduledHit every even count does.
var descentHits = [...]int{9, 14, 17, 20, 22, 24}

const lastScheduledHit = 25

// descentDue reports whether the paddle hit count schedules a line descent.
func descentDue(hits int) bool {
	if hits > lastScheduledHit {
		return hits%2 == 0
	}
	for _, h := range descentHits {
		if hits == h {
			return true
		}
	}
	return false
}

// drainScore counts one queued point into the score when its timer has run
// out, returning the brick cue to play. The interval speeds up once the
// game is lost.
func (g *Game) drainScore(delta float64) (Cue, bool) {
	m := &g.match
	if m.scoreTimer > 0 {
		m.scoreTimer -= delta
	}
	if m.ScoreQueue <= 0 || m.scoreTimer > 0 {
		return Cue{}, false
	}

	cue := Cue{Kind: CueBrickBreak, Index: m.cueIndex}
	m.cueIndex = (m.cueIndex + 1) % brickCueCount
	m.Score++
	m.ScoreQueue--

	interval := g.cfg.Gameplay.ScoreInterval
	if m.Lives <= 0 {
		interval *= g.cfg.Gameplay.GameOverDrainFactor
	}
	m.scoreTimer = interval
	return cue, true
}

// speedTarget returns the speed budget a brick in the band pushes the ball to.
func (g *Game) speedTarget(b rowBand) float64 {
	return b.speedUp * g.difficulty.Baseline(g.match.Score)
}
