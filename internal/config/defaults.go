package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
// These are the classic 650x650 arcade values.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Playfield: BreakoutPlayfield{
			Width:  650,
			Height: 650,
		},
		Ball: BreakoutBall{
			Radius:   10,
			SpeedX:   4,
			SpeedY:   -4,
			SpeedMax: 5,
		},
		Paddle: BreakoutPaddle{
			Height:    20,
			Speed:     10,
			Smoothing: 0.2,
		},
		Physics: BreakoutPhysics{
			CollisionThreshold: 5,
		},
		Sound: SoundConfig{
			Enabled:  true,
			Dir:      "sounds",
			BellCues: []string{"won", "lost"},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
