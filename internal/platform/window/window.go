// Package window runs the game in a desktop window with Ebitengine.
// The pointer is captured so its relative motion drives the paddle.
package window

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/super-breakout/internal/breakout"
	"github.com/vovakirdan/super-breakout/internal/core"
	"github.com/vovakirdan/super-breakout/internal/platform/audio"
	"github.com/vovakirdan/super-breakout/internal/registry"
)

// Default window size in pixels when the session does not set one.
const (
	defaultWidth  = 600
	defaultHeight = 720
)

func init() {
	registry.Register("window", func() registry.Frontend { return Frontend{} })
}

// Frontend runs the game in an Ebitengine window.
type Frontend struct{}

func (Frontend) ID() string    { return "window" }
func (Frontend) Title() string { return "Window (Ebitengine)" }

// Run opens the window and blocks until the player quits or ctx is done.
func (Frontend) Run(ctx context.Context, s registry.Session) error {
	w, h := s.Runtime.ScreenW, s.Runtime.ScreenH
	if w < breakout.MinScreenW*10 || h < breakout.MinScreenH*10 {
		w, h = defaultWidth, defaultHeight
	}

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Super Breakout")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	if s.Runtime.TickRate > 0 {
		ebiten.SetTPS(s.Runtime.TickRate)
	}

	err := ebiten.RunGame(newApp(ctx, s))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// app adapts a breakout game to ebiten.Game.
type app struct {
	ctx    context.Context
	game   *breakout.Game
	audio  audio.Player
	logger *log.Logger
	frame  core.InputFrame
	start  time.Time
	phase  breakout.Phase

	width, height int
	cursorX       int
	hasCursor     bool
}

func newApp(ctx context.Context, s registry.Session) *app {
	player := s.Audio
	if player == nil {
		player = audio.Nop{}
	}
	logger := s.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &app{
		ctx:    ctx,
		game:   s.Game,
		audio:  player,
		logger: logger,
		frame:  core.NewInputFrame(),
		start:  time.Now(),
		phase:  s.Game.Phase(),
		width:  defaultWidth,
		height: defaultHeight,
	}
}

// Update polls input and advances the game to the current time.
func (a *app) Update() error {
	if a.ctx.Err() != nil {
		return ebiten.Termination
	}

	a.pollKeys()
	a.pollCursor()

	res := a.game.Tick(time.Since(a.start), a.frame)
	if res.Quit {
		return ebiten.Termination
	}
	if res.Skipped {
		return nil
	}

	for _, c := range res.Cues {
		a.audio.Play(c)
	}
	if res.WasReset {
		a.logger.Info("game reset")
	}
	if res.Phase != a.phase {
		a.logger.Info("phase changed", "from", a.phase, "to", res.Phase, "score", res.State.Score, "lives", res.State.Lives)
		a.phase = res.Phase
	}

	a.frame.Clear()
	return nil
}

func (a *app) pollKeys() {
	justPressed := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k) {
				return true
			}
		}
		return false
	}

	if justPressed(ebiten.KeyEscape, ebiten.KeyQ) {
		a.frame.Set(core.ActionQuit)
	}
	if justPressed(ebiten.KeyP, ebiten.KeyF, ebiten.KeySpace) {
		a.frame.Set(core.ActionTogglePause)
	}
	if justPressed(ebiten.KeyR) {
		a.frame.Set(core.ActionReset)
	}

	step := a.game.Config().Input.KeyStep
	if repeating(ebiten.KeyArrowLeft, ebiten.KeyA) {
		a.frame.Nudge(-step)
	}
	if repeating(ebiten.KeyArrowRight, ebiten.KeyD) {
		a.frame.Nudge(step)
	}
}

// Key repeat timing in ticks, close to a terminal's auto-repeat.
const (
	repeatDelay    = 15
	repeatInterval = 3
)

// repeating reports whether any of keys fires this tick: on the press,
// then every repeatInterval ticks once held for repeatDelay.
func repeating(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if repeatFires(inpututil.KeyPressDuration(k)) {
			return true
		}
	}
	return false
}

// repeatFires applies the repeat schedule to a key held for d ticks.
func repeatFires(d int) bool {
	return d == 1 || (d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0)
}

// pollCursor accumulates captured pointer motion in reference pixels.
func (a *app) pollCursor() {
	x, _ := ebiten.CursorPosition()
	if a.hasCursor {
		a.frame.MoveRelative(pointerMotion(x-a.cursorX, a.width))
	}
	a.cursorX = x
	a.hasCursor = true
}

// Layout follows the window size so the field always fills it.
func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width {
		a.hasCursor = false
	}
	a.width, a.height = max(outsideWidth, 1), max(outsideHeight, 1)
	return a.width, a.height
}
