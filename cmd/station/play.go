package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-station/internal/audio"
	"github.com/vovakirdan/space-station/internal/core"
	"github.com/vovakirdan/space-station/internal/games/invaders"
	"github.com/vovakirdan/space-station/internal/platform/tui"
	"github.com/vovakirdan/space-station/internal/registry"
)

var (
	flagMute   bool
	flagVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal. The game opens on its home screen.

Controls:
  Left/A, Right/D  - Move (Down/S stops)
  Space/Up         - Fire, or start a round
  Click            - Bottom of the field fires, left or right half moves
  P                - Pause
  R                - Restart the round
  Esc              - Back to the home screen
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, slower grid, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at the config's values

Examples:
  station play
  station play --difficulty easy
  station play --config ./my-invaders.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume between 0 and 1")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "invaders"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'station list' to see available games)", gameID)
	}

	// Fail on a bad config before the screen switches to the alternate buffer.
	_, preset, err := loadConfig()
	if err != nil {
		return err
	}
	invaders.SetConfigPath(flagConfig)
	invaders.SetDifficultyPreset(preset)

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	player := audio.Open(!flagMute, flagVolume, logger)
	defer player.Close()

	if err := tui.Run(game, tui.Options{Config: cfg, Audio: player, Logger: logger}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
