// station runs the Space Station invaders game in the terminal or headless.
//
// Usage:
//
//	station list              - List available games
//	station play              - Play a round in the terminal
//	station simulate          - Run a scripted round without a terminal
//	station config show       - Print the effective configuration
//	station config schema     - Print the configuration JSON Schema
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load a custom config (yaml, toml or json)
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write the log to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-station/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "station",
	Short: "Space Station - defend the station from the alien grid",
	Long: `Space Station is a terminal invaders game built on a deterministic,
tick-stepped simulation. The same seed and input always play out the same way.

Available commands:
  list      - Show all available games
  play      - Play in the terminal
  simulate  - Run a scripted round headless and print a summary
  config    - Show the effective configuration or its schema

Examples:
  station play
  station play --difficulty hard --seed 42
  station simulate --ticks 3600 --script autopilot
  station config show --format toml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config (yaml, toml or json)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write the log to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger. Without --log-file it writes to
// fallback, which is io.Discard for the interactive game.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "station",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig resolves --config and --difficulty into a validated config.
func loadConfig() (config.InvadersConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.InvadersConfig{}, "", err
	}
	cfg, err := config.LoadInvaders(flagConfig)
	if err != nil {
		return config.InvadersConfig{}, "", err
	}
	config.ApplyInvadersPreset(&cfg, preset)
	return cfg, preset, nil
}
