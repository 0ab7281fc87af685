package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bubblepop/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the game config as YAML after the search path and the
--difficulty preset are applied. Save it as
~/.bubblepop/configs/bubblepop.yaml to customize.

Config search order:
  1. --config <path>
  2. ~/.bubblepop/configs/bubblepop.yaml
  3. ./configs/bubblepop.yaml
  4. built-in defaults

Examples:
  bubblepop config
  bubblepop config --difficulty hard > hard.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadGameConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
	return err
}
