package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/super-breakout/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	Long: `Prints the configuration a game would start with, after the config
file search and the difficulty preset are applied. Redirect it to a
file to get a starting point for --config.

Examples:
  breakout config > my-breakout.yaml
  breakout config --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
