package breakout

import (
	"math"
	"time"

	"github.com/vovakirdan/super-breakout/internal/config"
	"github.com/vovakirdan/super-breakout/internal/core"
)

// Phase is where the ball is in its life cycle. Pause is tracked
// separately and can overlay any phase.
type Phase int

const (
	PhasePlaying    Phase = iota // Ball in play
	PhaseBallMissed              // Waiting to respawn the ball
	PhaseGameOver                // No lives left; the score keeps draining
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseBallMissed:
		return "ball_missed"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// StepResult reports what one tick did.
type StepResult struct {
	State core.GameState
	Phase Phase

	// Cues are the sounds to play, in the order they happened.
	Cues []Cue

	BricksBroken   int
	LinesDescended int
	BallMissed     bool
	Respawned      bool
	WasReset       bool

	// Skipped is set when the tick had no time to advance. The input was
	// not consumed and should be offered again on the next tick.
	Skipped bool

	// Quit is set when the player asked to leave. The tick still ran.
	Quit bool
}

// Game owns all mutable simulation state. It is not safe for concurrent
// use; one goroutine drives it.
type Game struct {
	cfg        config.BreakoutConfig
	difficulty *config.DifficultyManager

	grid   Grid
	ball   Ball
	paddle Paddle
	match  Match
	phase  Phase
	paused bool

	clock float64 // Simulated seconds since the last reset, frozen while paused
	ticks uint64

	lastNow   time.Duration // Wall-clock reading of the last advancing Tick
	hasLastTS bool
}

// New creates a game using the given configuration. The configuration is
// expected to be valid; see config.BreakoutConfig.Validate.
func New(cfg config.BreakoutConfig) *Game {
	g := &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	g.Reset()
	return g
}

// Reset starts a new game: fresh lattice, full lives, ball over the centre.
// It also clears pause.
func (g *Game) Reset() {
	g.grid.Reset()
	g.paddle = Paddle{X: 0.5, Width: PaddleStartWidth}
	g.ball.launch(0.5, g.cfg.Ball.StartY, g.cfg.Ball.StartSpeed)
	g.match = newMatch(g.cfg.Gameplay.Lives)
	g.phase = PhasePlaying
	g.paused = false
	g.clock = 0
	g.ticks = 0
}

// Tick advances the game to the wall-clock reading now, which must come
// from a monotonic source. The first call only records the reading.
func (g *Game) Tick(now time.Duration, in core.InputFrame) StepResult {
	if !g.hasLastTS {
		g.lastNow = now
		g.hasLastTS = true
		return g.skipped()
	}
	res := g.Step((now - g.lastNow).Seconds(), in)
	if !res.Skipped {
		g.lastNow = now
	}
	return res
}

// Step advances the game by delta seconds, clamped to the configured
// maximum. A non-positive delta skips the tick entirely.
//
// Order within a tick: input, pause and reset, score drain, miss and
// respawn, collisions (bricks, paddle, walls), integration.
func (g *Game) Step(delta float64, in core.InputFrame) StepResult {
	delta = math.Min(delta, g.cfg.Gameplay.MaxDelta)
	if !(delta > 0) {
		return g.skipped()
	}

	var res StepResult
	res.Quit = in.Has(core.ActionQuit)

	if in.Count(core.ActionTogglePause)%2 == 1 {
		g.paused = !g.paused
	}
	if in.Has(core.ActionReset) {
		g.Reset()
		res.WasReset = true
	}
	if g.paused {
		return g.finish(res)
	}

	// Pointer motion scales with the frame time; key steps do not.
	g.paddle.move(in.MotionX*delta*g.cfg.Input.Sensitivity + in.StepX/core.ReferenceWidth)

	g.ticks++
	g.clock += delta

	if cue, ok := g.drainScore(delta); ok {
		res.Cues = append(res.Cues, cue)
	}

	g.updateLife(delta, &res)

	if g.phase == PhasePlaying {
		g.collideBricks(&res)
		g.collidePaddle(&res)
		g.collideWalls(&res)
	}

	g.integrate(delta)
	return g.finish(res)
}

// updateLife handles the ball falling past the bottom and the respawn
// countdown that follows.
func (g *Game) updateLife(delta float64, res *StepResult) {
	m := &g.match
	switch g.phase {
	case PhaseBallMissed:
		m.respawnTimer += delta
		if m.respawnTimer >= g.cfg.Gameplay.RespawnTime {
			g.ball.launch(g.paddle.X, g.cfg.Ball.StartY, g.cfg.Ball.StartSpeed)
			g.phase = PhasePlaying
			res.Respawned = true
		}
	case PhasePlaying:
		if g.ball.Y <= 1 || m.Lives <= 0 {
			return
		}
		m.Lives--
		g.ball.stop()
		m.respawnTimer = 0
		res.BallMissed = true
		if m.Lives > 0 {
			g.phase = PhaseBallMissed
		} else {
			g.phase = PhaseGameOver
		}
	}
}

func (g *Game) skipped() StepResult {
	return StepResult{State: g.State(), Phase: g.phase, Skipped: true}
}

func (g *Game) finish(res StepResult) StepResult {
	res.State = g.State()
	res.Phase = g.phase
	return res
}

// State returns the summary the platform shows outside the field.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.match.Score,
		Lives:    max(g.match.Lives, 0),
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Paused reports whether the simulation is frozen.
func (g *Game) Paused() bool {
	return g.paused
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.BreakoutConfig {
	return g.cfg
}
