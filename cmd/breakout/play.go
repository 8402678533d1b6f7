package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/super-breakout/internal/breakout"
	"github.com/vovakirdan/super-breakout/internal/core"
	"github.com/vovakirdan/super-breakout/internal/platform/audio"
	"github.com/vovakirdan/super-breakout/internal/registry"
)

var (
	flagFrontend string
	flagWidth    int
	flagHeight   int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Super Breakout.

Controls:
  Mouse        - Move the paddle
  Left/Right   - Move the paddle
  P/F/Space    - Pause
  R            - Restart
  Esc/Q        - Quit

Difficulty options:
  easy   - Slower ball, gentler speed-up
  normal - Configured values
  hard   - Three lives, faster ball
  fixed  - No score-driven speed-up

Examples:
  breakout play
  breakout play --difficulty easy
  breakout play --frontend window --width 600 --height 720
  breakout play --config ./my-breakout.yaml --log-file breakout.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "terminal", "Frontend to play in (see 'breakout frontends')")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Surface width (0 = terminal size or window default)")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Surface height (0 = terminal size or window default)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	frontend, err := registry.Create(flagFrontend)
	if err != nil {
		return fmt.Errorf("%w (run 'breakout frontends' to list them)", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal frontend owns the screen, so logs only go to --log-file.
	var fallback io.Writer = os.Stderr
	if frontend.ID() == "terminal" {
		fallback = io.Discard
	}
	logger, closeLog, err := newLogger(fallback, "breakout")
	if err != nil {
		return err
	}
	defer closeLog()

	runtime := core.RuntimeConfig{
		ScreenW:  flagWidth,
		ScreenH:  flagHeight,
		TickRate: flagFPS,
		Muted:    flagMute,
	}
	if frontend.ID() == "terminal" && (runtime.ScreenW == 0 || runtime.ScreenH == 0) {
		def := core.DefaultConfig()
		runtime.ScreenW, runtime.ScreenH = def.ScreenW, def.ScreenH
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			runtime.ScreenW, runtime.ScreenH = w, h
		}
	}

	player := audio.Open(cfg.Audio, flagMute, logger)
	defer player.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
	defer stop()

	logger.Info("starting game",
		"frontend", frontend.ID(),
		"difficulty", flagDifficulty,
		"lives", cfg.Gameplay.Lives,
		"size", fmt.Sprintf("%dx%d", runtime.ScreenW, runtime.ScreenH),
	)

	game := breakout.New(cfg)
	err = frontend.Run(ctx, registry.Session{
		Game:    game,
		Audio:   player,
		Logger:  logger,
		Runtime: runtime,
	})
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("running %s frontend: %w", frontend.ID(), err)
	}

	state := game.State()
	logger.Info("game finished", "score", state.Score, "lives", state.Lives, "game_over", state.GameOver)
	return nil
}
