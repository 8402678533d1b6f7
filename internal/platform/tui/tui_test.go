package tui

import (
	"bytes"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/super-breakout/internal/breakout"
	"github.com/vovakirdan/super-breakout/internal/config"
	"github.com/vovakirdan/super-breakout/internal/core"
	"github.com/vovakirdan/super-breakout/internal/platform/audio"
	"github.com/vovakirdan/super-breakout/internal/registry"
)

func newTestModel(t *testing.T, rec *audio.Recorder) Model {
	t.Helper()
	return NewModel(registry.Session{
		Game:    breakout.New(config.DefaultBreakoutConfig()),
		Audio:   rec,
		Logger:  log.New(io.Discard),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60},
	})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapToFrame(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		motion float64
	}{
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit, 0},
		{"q quits", runes("q"), core.ActionQuit, 0},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, 0},
		{"p pauses", runes("p"), core.ActionTogglePause, 0},
		{"f pauses", runes("f"), core.ActionTogglePause, 0},
		{"space pauses", tea.KeyMsg{Type: tea.KeySpace}, core.ActionTogglePause, 0},
		{"r resets", runes("r"), core.ActionReset, 0},
		{"left moves", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionNone, -40},
		{"l moves", runes("l"), core.ActionNone, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := core.NewInputFrame()
			if !keys.MapKeyToFrame(tt.msg, 40, &f) {
				t.Fatalf("%q not bound", tt.msg.String())
			}
			if tt.action != core.ActionNone && !f.Has(tt.action) {
				t.Errorf("expected %v in frame", tt.action)
			}
			if f.StepX != tt.motion || f.MotionX != 0 {
				t.Errorf("StepX = %f MotionX = %f, expected %f and 0", f.StepX, f.MotionX, tt.motion)
			}
		})
	}

	f := core.NewInputFrame()
	if keys.MapKeyToFrame(runes("z"), 40, &f) {
		t.Error("z should not be bound")
	}
}

func TestModelFirstTickOnlyStartsClock(t *testing.T) {
	m := newTestModel(t, &audio.Recorder{})
	start := time.Now()

	next, _ := m.Update(TickMsg(start))
	m = next.(Model)
	if got := m.game.Snapshot().Tick; got != 0 {
		t.Fatalf("first tick advanced the game to tick %d", got)
	}

	next, _ = m.Update(TickMsg(start.Add(16 * time.Millisecond)))
	m = next.(Model)
	if got := m.game.Snapshot().Tick; got != 1 {
		t.Errorf("second tick left the game at tick %d, expected 1", got)
	}
}

func TestModelKeepsInputUntilStep(t *testing.T) {
	m := newTestModel(t, &audio.Recorder{})
	start := time.Now()

	next, _ := m.Update(runes("p"))
	m = next.(Model)
	next, _ = m.Update(TickMsg(start))
	m = next.(Model)
	if m.game.Paused() {
		t.Fatal("skipped tick should not apply input")
	}

	next, _ = m.Update(TickMsg(start.Add(16 * time.Millisecond)))
	m = next.(Model)
	if !m.game.Paused() {
		t.Error("queued pause should apply on the first real step")
	}
	if m.inputFrame.Has(core.ActionTogglePause) {
		t.Error("input frame should be cleared after a step")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, &audio.Recorder{})
	start := time.Now()

	next, _ := m.Update(TickMsg(start))
	m = next.(Model)
	next, _ = m.Update(runes("q"))
	m = next.(Model)
	next, cmd := m.Update(TickMsg(start.Add(16 * time.Millisecond)))
	m = next.(Model)

	if !m.IsQuitting() || cmd == nil {
		t.Fatal("quit key should stop the program")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit command")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelMouseMotion(t *testing.T) {
	m := newTestModel(t, &audio.Recorder{})

	next, _ := m.Update(tea.MouseMsg{X: 40, Y: 10, Action: tea.MouseActionMotion})
	m = next.(Model)
	if m.inputFrame.MotionX != 0 {
		t.Fatal("first mouse event should only record the position")
	}

	next, _ = m.Update(tea.MouseMsg{X: 48, Y: 10, Action: tea.MouseActionMotion})
	m = next.(Model)
	// 8 of 80 cells is a tenth of the field.
	if m.inputFrame.MotionX != 100 {
		t.Errorf("MotionX = %f, expected 100 reference pixels", m.inputFrame.MotionX)
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, &audio.Recorder{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 31})
	m = next.(Model)

	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30 with a footer row", m.screen.Width(), m.screen.Height())
	}
}

func TestModelPlaysCues(t *testing.T) {
	rec := &audio.Recorder{}
	m := newTestModel(t, rec)
	start := time.Now()

	// The ball starts falling straight onto the paddle.
	for i := range 200 {
		next, _ := m.Update(TickMsg(start.Add(time.Duration(i) * 16 * time.Millisecond)))
		m = next.(Model)
	}

	found := false
	for _, s := range rec.Sounds() {
		if s == audio.SoundBoop {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a paddle boop, got %v", rec.Sounds())
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, &audio.Recorder{})
	view := m.View()

	lines := strings.Split(view, "\n")
	if len(lines) != 25 {
		t.Fatalf("view has %d lines, expected 25", len(lines))
	}
	if !strings.Contains(view, "00000") {
		t.Error("view should show the score")
	}
	if !strings.Contains(lines[len(lines)-1], "quit") {
		t.Errorf("footer = %q, expected key help", lines[len(lines)-1])
	}
}

func TestPainterGroupsRuns(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab", core.ColorOlive)
	s.DrawText(2, 0, "cd", core.ColorOlive)
	s.DrawText(0, 1, "ef", core.ColorGray)
	s.DrawText(2, 1, "gh", core.ColorRed)

	// A renderer on a plain buffer has no colour profile, so only text remains.
	p := newPainter(lipgloss.NewRenderer(&bytes.Buffer{}))
	if got := p.paint(s); got != "abcd\nefgh" {
		t.Errorf("paint() = %q, expected %q", got, "abcd\nefgh")
	}
}

func TestPainterUnknownColour(t *testing.T) {
	p := newPainter(lipgloss.NewRenderer(&bytes.Buffer{}))
	if got := p.style(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("unknown colour rendered %q, expected plain text", got)
	}
}

func TestModelKeyStepMovesPaddle(t *testing.T) {
	m := newTestModel(t, &audio.Recorder{})
	start := time.Now()

	next, _ := m.Update(TickMsg(start))
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)
	next, _ = m.Update(TickMsg(start.Add(16 * time.Millisecond)))
	m = next.(Model)

	moved := m.game.Snapshot().PaddleX - 0.5
	want := m.game.Config().Input.KeyStep / core.ReferenceWidth
	if math.Abs(moved-want) > 1e-9 {
		t.Errorf("one right press moved the paddle %v, expected %v", moved, want)
	}
	if moved >= breakout.PaddleStartWidth {
		t.Errorf("one press moved %v, more than a paddle width", moved)
	}
}

func TestFrontendRegistered(t *testing.T) {
	if !registry.Exists("terminal") {
		t.Fatal("terminal frontend not registered")
	}
	f, err := registry.Create("terminal")
	if err != nil {
		t.Fatal(err)
	}
	if f.ID() != "terminal" {
		t.Errorf("ID() = %q", f.ID())
	}
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address != ":23234" || cfg.TickRate != 60 || cfg.IdleTimeout != 30*time.Minute {
		t.Errorf("DefaultSSHServerConfig() = %+v", cfg)
	}
	if err := cfg.Game.Validate(); err != nil {
		t.Errorf("default game config invalid: %v", err)
	}
}

func TestNewSSHServer(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")

	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() error = %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
	if _, err := os.Stat(filepath.Dir(cfg.HostKeyPath)); err != nil {
		t.Errorf("host key directory not created: %v", err)
	}
}
