package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (default: breakout).

Controls:
  Left/Right, A/D  - Move paddle (breakout)
  Mouse            - Steer from the touchpad strip (breakout_touch)
  Space/Enter      - Start a round
  Click            - Start a round
  Esc/B            - Leave after a round
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower ball, faster paddle
  normal - As configured
  hard   - Faster ball, slower paddle

Examples:
  breakout play
  breakout play breakout_touch
  breakout play --difficulty easy
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "breakout"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'breakout list' to see available variants", gameID)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	sound := audio.Open(soundConfig(logger), os.Stdout, logger)

	if err := tui.Run(game, runtimeConfig(), sound, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
