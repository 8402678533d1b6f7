package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/super-breakout/internal/breakout"
	"github.com/vovakirdan/super-breakout/internal/core"
	"github.com/vovakirdan/super-breakout/internal/platform/audio"
	"github.com/vovakirdan/super-breakout/internal/registry"
)

// helpRows is the height of the key help footer below the field.
const helpRows = 1

func init() {
	registry.Register("terminal", func() registry.Frontend { return Frontend{} })
}

// Frontend runs the game in the current terminal.
type Frontend struct{}

func (Frontend) ID() string    { return "terminal" }
func (Frontend) Title() string { return "Terminal (Bubble Tea)" }

// Run starts a Bubble Tea program for the session and blocks until it exits.
func (Frontend) Run(ctx context.Context, s registry.Session) error {
	p := tea.NewProgram(NewModel(s),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

// Model is the Bubble Tea model for one game of breakout.
type Model struct {
	game       *breakout.Game
	audio      audio.Player
	logger     *log.Logger
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	painter    painter
	inputFrame core.InputFrame
	start      time.Time
	phase      breakout.Phase
	mouseX     int
	hasMouse   bool
	quitting   bool
}

// NewModel creates a model around the session's game.
func NewModel(s registry.Session) Model {
	player := s.Audio
	if player == nil {
		player = audio.Nop{}
	}
	logger := s.Logger
	if logger == nil {
		logger = log.Default()
	}

	return Model{
		game:       s.Game,
		audio:      player,
		logger:     logger,
		screen:     core.NewScreen(s.Runtime.ScreenW, fieldHeight(s.Runtime.ScreenH)),
		config:     s.Runtime,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		painter:    newPainter(nil),
		inputFrame: core.NewInputFrame(),
		phase:      s.Game.Phase(),
	}
}

// fieldHeight is the screen height left for the game after the footer.
func fieldHeight(h int) int {
	return core.Max(h-helpRows, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records key presses in the input frame. Quitting goes through
// the game so the final tick still runs.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.keys.MapKeyToFrame(msg, m.game.Config().Input.KeyStep, &m.inputFrame)
	return m, nil
}

// handleMouse turns pointer motion in cells into reference pixels.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionMotion && msg.Action != tea.MouseActionPress {
		return m, nil
	}
	if m.hasMouse && m.screen.Width() > 0 {
		dx := msg.X - m.mouseX
		m.inputFrame.MoveRelative(float64(dx) * core.ReferenceWidth / float64(m.screen.Width()))
	}
	m.mouseX = msg.X
	m.hasMouse = true
	return m, nil
}

// handleResize adapts the screen buffer to the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, fieldHeight(msg.Height))
	m.help.Width = msg.Width
	m.hasMouse = false
	return m, nil
}

// handleTick advances the game to the tick's wall clock time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.start.IsZero() {
		m.start = now
	}

	res := m.game.Tick(now.Sub(m.start), m.inputFrame)
	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	if res.Skipped {
		// Input stays queued for the next real step.
		return m, tickCmd(m.config.TickRate)
	}

	for _, c := range res.Cues {
		m.audio.Play(c)
	}
	m.logTransition(res)

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// logTransition reports resets, descents and phase changes.
func (m *Model) logTransition(res breakout.StepResult) {
	if res.WasReset {
		m.logger.Info("game reset")
	}
	if res.LinesDescended > 0 {
		m.logger.Debug("line descended", "lines", m.game.Snapshot().Lines)
	}
	if res.Phase == m.phase {
		return
	}
	switch res.Phase {
	case breakout.PhaseBallMissed:
		m.logger.Info("ball missed", "lives", res.State.Lives, "score", res.State.Score)
	case breakout.PhaseGameOver:
		m.logger.Info("game over", "score", res.State.Score)
	case breakout.PhasePlaying:
		m.logger.Debug("ball in play", "lives", res.State.Lives)
	}
	m.phase = res.Phase
}

// View renders the field and the key help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.painter.paint(m.screen) + "\n" + m.help.View(m.keys)
}

// WithRenderer styles output for a specific terminal, such as an SSH
// client, instead of the local stdout.
func (m Model) WithRenderer(r *lipgloss.Renderer) Model {
	m.painter = newPainter(r)
	return m
}

// IsQuitting returns true once the player has quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}
