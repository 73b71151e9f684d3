package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.breakout/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default.
// Files are decoded over the defaults, so a file may set only the keys it cares about.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultBreakoutConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decodeBreakout(data)
		if err != nil {
			return DefaultBreakoutConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("breakout.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decodeBreakout(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "breakout.yaml")); err == nil {
		if cfg, err := decodeBreakout(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decodeBreakout(defaultBreakoutYAML)
	if err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeBreakout parses YAML over the hardcoded defaults and validates the result.
func decodeBreakout(data []byte) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values the physics cannot work with.
func (c BreakoutConfig) Validate() error {
	var errs []error
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, fmt.Errorf("playfield must be positive, got %dx%d", c.Playfield.Width, c.Playfield.Height))
	} else {
		// Narrower playfields give zero-width bricks that can never be hit.
		if c.Playfield.Width < WallCols {
			errs = append(errs, fmt.Errorf("playfield.width must be at least %d, got %d", WallCols, c.Playfield.Width))
		}
		// The paddle row sits two paddle heights above the bottom and must
		// clear the wall.
		wallBottom := WallRows * BrickHeight
		if paddleTop := c.Playfield.Height - 2*c.Paddle.Height; paddleTop <= wallBottom {
			errs = append(errs, fmt.Errorf("playfield.height %d puts the paddle (top %d) inside the wall (bottom %d)",
				c.Playfield.Height, paddleTop, wallBottom))
		}
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, fmt.Errorf("ball.radius must be positive, got %d", c.Ball.Radius))
	}
	if c.Ball.SpeedMax <= 0 {
		errs = append(errs, fmt.Errorf("ball.speed_max must be positive, got %d", c.Ball.SpeedMax))
	}
	if c.Paddle.Height <= 0 {
		errs = append(errs, fmt.Errorf("paddle.height must be positive, got %d", c.Paddle.Height))
	}
	if c.Paddle.Smoothing <= 0 || c.Paddle.Smoothing > 1 {
		errs = append(errs, fmt.Errorf("paddle.smoothing must be in (0, 1], got %g", c.Paddle.Smoothing))
	}
	if c.Physics.CollisionThreshold <= 0 {
		errs = append(errs, fmt.Errorf("physics.collision_threshold must be positive, got %d", c.Physics.CollisionThreshold))
	}
	for _, name := range c.Sound.BellCues {
		if _, ok := core.ParseCue(name); !ok {
			errs = append(errs, fmt.Errorf("sound.bell_cues: unknown cue %q", name))
		}
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout", "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
