// breakout is a Super Breakout clone for the terminal and the desktop.
//
// Usage:
//
//	breakout play             - Play in the terminal (or --frontend window)
//	breakout serve            - Start SSH server for remote play
//	breakout frontends        - List available frontends
//	breakout config           - Print the resolved configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--config <path>       - Use a custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
//	--mute                - Disable sound
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/super-breakout/internal/config"

	// Import frontends to register them
	_ "github.com/vovakirdan/super-breakout/internal/platform/tui"
	_ "github.com/vovakirdan/super-breakout/internal/platform/window"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Super Breakout - break bricks in your terminal or a window",
	Long: `Super Breakout is a clone of the arcade classic. Rows of bricks
descend as you keep the ball in play, the paddle shrinks as the
rows pile up, and the ball speeds up with every coloured band you reach.

Available commands:
  play       - Play a game
  serve      - Start SSH server for remote play
  frontends  - Show available frontends
  config     - Print the resolved configuration

Examples:
  breakout play
  breakout play --frontend window --difficulty hard
  breakout serve --ssh :2222
  breakout config --difficulty easy`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(frontendsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the game configuration from the global flags.
func loadConfig() (config.BreakoutConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.BreakoutConfig{}, err
	}
	return config.Load(flagConfig, preset)
}

// newLogger builds the process logger. fallback receives logs when no
// --log-file is given. The returned close function is always non-nil.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closeFn := fallback, func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closeFn = f, f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}
