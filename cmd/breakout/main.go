// breakout is a terminal Breakout game with keyboard and touchpad controls.
//
// Usage:
//
//	breakout list              - List available variants
//	breakout play [variant]    - Play a variant (default: breakout)
//	breakout menu              - Pick variants interactively
//	breakout serve             - Start SSH server for remote play
//	breakout config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--config <path>        - Custom config YAML
//	--difficulty <preset>  - easy, normal or hard
//	--log-file <path>      - Write logs to a file (default: discard)
//	--log-level <level>    - debug, info, warn or error
//	--sound-dir <dir>      - Directory with sound files
//	--no-sound             - Disable all sound
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
	flagSoundDir   string
	flagNoSound    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - bounce a ball, clear the wall",
	Long: `Breakout is the classic brick-breaking game for your terminal.

Two variants are available:
  breakout        - steer the paddle with the arrow keys
  breakout_touch  - steer the paddle with the mouse in the touchpad strip

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  breakout play
  breakout play breakout_touch --difficulty hard
  breakout menu --no-sound
  breakout serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
			return err
		}
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		breakout.SetConfigPath(flagConfig)
		breakout.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: no logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagSoundDir, "sound-dir", "", "Directory with ball/block/lost/won sound files")
	rootCmd.PersistentFlags().BoolVar(&flagNoSound, "no-sound", false, "Disable all sound")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. The TUI owns the terminal, so logs
// only go to a file when one is given.
func newLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("--log-level: %w", err)
	}

	var out io.Writer = io.Discard
	closeFn := func() {}
	if flagLogFile != "" {
		path, err := config.ExpandHome(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "breakout",
	})
	return logger, closeFn, nil
}

// soundConfig loads the sound section and applies the CLI overrides.
func soundConfig(logger *log.Logger) config.SoundConfig {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		logger.Warn("config load failed, using defaults", "err", err)
	}
	sound := cfg.Sound
	if flagSoundDir != "" {
		sound.Dir = flagSoundDir
	}
	if flagNoSound {
		sound.Enabled = false
	}
	return sound
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil { //#nosec G115 -- file descriptors fit in int
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
}
