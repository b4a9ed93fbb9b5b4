package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-station/internal/core"
	"github.com/vovakirdan/space-station/internal/games/invaders"
)

var (
	flagTicks  int
	flagScript string
	flagReplay bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a scripted game without a terminal",
	Long: `Drives the simulation with a built-in input script for a number of ticks
and prints a summary. Runs are reproducible: the same seed, config and script
always give the same result.

Scripts:
  autopilot - Chases the nearest column and fires constantly
  idle      - Starts the round and never moves

Examples:
  station simulate --seed 7
  station simulate --ticks 36000 --replay
  station simulate --script idle --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of ticks to simulate")
	simulateCmd.Flags().StringVar(&flagScript, "script", "autopilot", "Input script: autopilot, idle")
	simulateCmd.Flags().BoolVar(&flagReplay, "replay", false, "Start a new round whenever one ends")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	script, err := invaders.ScriptByName(flagScript)
	if err != nil {
		return err
	}
	if ap, ok := script.(invaders.Autopilot); ok {
		ap.Replay = flagReplay
		script = ap
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	game := invaders.NewWithConfig(cfg)
	game.Reset(core.RuntimeConfig{
		ScreenW:  core.DefaultConfig().ScreenW,
		ScreenH:  core.DefaultConfig().ScreenH,
		TickRate: flagFPS,
		Seed:     flagSeed,
	})
	logger.Info("simulating", "ticks", flagTicks, "script", flagScript, "seed", flagSeed)

	stats := simulate(game, script, flagTicks, flagReplay, logger)
	printSummary(cmd.OutOrStdout(), game, stats)
	return nil
}

// simulate steps game with script for up to ticks ticks. Without replay it
// stops as soon as the first round is decided.
func simulate(game *invaders.Game, script invaders.Script, ticks int, replay bool, logger *log.Logger) invaders.Stats {
	var stats invaders.Stats
	for range ticks {
		game.Step(script.Next(game.Snapshot()))
		stats.Ticks++

		events := game.LastEvents()
		stats.Record(events)
		for _, ev := range events {
			switch e := ev.(type) {
			case invaders.RoundWon:
				logger.Info("round won", "tick", game.TickCount(), "score", e.Score)
			case invaders.RoundOver:
				logger.Info("round over", "tick", game.TickCount(), "score", e.Score, "invaded", e.Invaded)
			case invaders.LifeLost:
				logger.Debug("life lost", "tick", game.TickCount(), "remaining", e.Remaining)
			case invaders.EntityDestroyed:
				logger.Debug("destroyed", "tick", game.TickCount(), "id", e.ID, "category", e.Category, "cause", e.Cause)
			}
		}

		if !replay && (game.Phase() == invaders.PhaseWon || game.Phase() == invaders.PhaseGameOver) {
			break
		}
	}
	return stats
}

func printSummary(w io.Writer, game *invaders.Game, s invaders.Stats) {
	fmt.Fprintf(w, "Ticks:         %d\n", s.Ticks)
	fmt.Fprintf(w, "Phase:         %s\n", game.Phase())
	fmt.Fprintf(w, "Rounds:        %d (won %d, lost %d, invaded %d)\n", s.Rounds, s.Won, s.Lost, s.Invaded)
	fmt.Fprintf(w, "Score:         %d (best %d)\n", s.Score, s.BestScore)
	fmt.Fprintf(w, "Lives left:    %d (lost %d)\n", game.Lives(), s.LivesLost)
	fmt.Fprintf(w, "Aliens killed: %d (%d left)\n", s.AliensKilled, game.AlienCount())
	fmt.Fprintf(w, "Extras:        %d hit, %d missed\n", s.ExtrasKilled, s.ExtrasMissed)
	fmt.Fprintf(w, "Shots:         %d fired, %d incoming\n", s.ShotsFired, s.AlienShots)
	fmt.Fprintf(w, "Blocks lost:   %d\n", s.BlocksLost)
}
