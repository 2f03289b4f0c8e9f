package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in configuration as YAML. Save it to
~/.breakout/breakout.yaml or ./configs/breakout.yaml and edit it to
customize the game.

With --resolved, prints the configuration that would be used, after the
config file search and the difficulty preset.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective configuration instead of the defaults")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if !flagResolved {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

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
