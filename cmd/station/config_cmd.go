package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-station/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the game configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Prints the configuration a game would start with after --config and
--difficulty are applied. The output can be saved and edited as a custom config.

Examples:
  station config show > ~/.station/configs/invaders.yaml
  station config show --difficulty hard --format toml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg, flagFormat)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := config.Schema()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	configShowCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml, toml, json")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
}
