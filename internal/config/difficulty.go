package config

import "fmt"

// ParseDifficulty converts a CLI value to a preset.
// The empty string means "no preset" and is not an error.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
// Normal keeps whatever the loaded config says.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ball.SpeedX = 3
		cfg.Ball.SpeedY = -3
		cfg.Ball.SpeedMax = 4
		cfg.Paddle.Speed = 12
	case DifficultyHard:
		cfg.Ball.SpeedX = 5
		cfg.Ball.SpeedY = -5
		cfg.Ball.SpeedMax = 6
		cfg.Paddle.Speed = 9
		// Penetration per frame can reach the speed, so the edge test must
		// stay wider than the fastest axis.
		if cfg.Physics.CollisionThreshold <= cfg.Ball.SpeedMax {
			cfg.Physics.CollisionThreshold = cfg.Ball.SpeedMax + 1
		}
	}
}
