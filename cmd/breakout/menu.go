package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant interactively",
	Long: `Start with a variant picker.

Use arrow keys or j/k to navigate, Enter to select a variant.
Esc after a round returns to the picker.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select variant
  Q/Esc        - Quit

Examples:
  breakout menu
  breakout menu --fps 30`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	sound := audio.Open(soundConfig(logger), os.Stdout, logger)

	if err := tui.RunSession(runtimeConfig(), sound, logger); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
