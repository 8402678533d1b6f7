package core

// ReferenceWidth is the pixel width pointer motion is normalised to before it
// reaches the game. Frontends scale their native units (terminal cells,
// window pixels) so that moving across the whole field is ReferenceWidth.
const ReferenceWidth = 1000

// RuntimeConfig contains frontend settings passed to a session.
type RuntimeConfig struct {
	ScreenW  int // Surface width (cells for the terminal, pixels for the window)
	ScreenH  int // Surface height
	TickRate int // Frontend ticks per second
	Muted    bool
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the summary a frontend shows outside the playing field.
type GameState struct {
	Score    int  // Counted score
	Lives    int  // Lives remaining, never negative
	GameOver bool // No lives left
	Paused   bool // Simulation frozen
}
