package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-collector/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in configuration as YAML.

Save it as ~/.collector/configs/collector.yaml or ./configs/collector.yaml
and edit the values you want to change, or pass any file with --config.

Example:
  collector config > ~/.collector/configs/collector.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
