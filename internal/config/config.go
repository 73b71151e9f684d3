// Package config provides YAML-based game configuration loading and
// difficulty presets for the breakout game.
package config

// BreakoutConfig contains all configuration for the Breakout game.
// Distances and speeds are in playfield units; the renderer scales the
// playfield to the terminal.
type BreakoutConfig struct {
	Playfield BreakoutPlayfield `yaml:"playfield"`
	Ball      BreakoutBall      `yaml:"ball"`
	Paddle    BreakoutPaddle    `yaml:"paddle"`
	Physics   BreakoutPhysics   `yaml:"physics"`
	Sound     SoundConfig       `yaml:"sound"`
}

// BreakoutPlayfield defines the logical playfield size.
type BreakoutPlayfield struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BreakoutBall defines the ball's size and launch velocity.
type BreakoutBall struct {
	Radius   int `yaml:"radius"`
	SpeedX   int `yaml:"speed_x"`
	SpeedY   int `yaml:"speed_y"`   // Negative is upward
	SpeedMax int `yaml:"speed_max"` // Cap on |speed_x| after paddle spin
}

// BreakoutPaddle defines paddle size and control parameters.
type BreakoutPaddle struct {
	Height    int     `yaml:"height"`
	Speed     int     `yaml:"speed"`     // Units per frame for keyed movement
	Smoothing float64 `yaml:"smoothing"` // Fraction of the distance to the pointer covered per frame
}

// BreakoutPhysics defines collision parameters.
type BreakoutPhysics struct {
	CollisionThreshold int `yaml:"collision_threshold"`
}

// SoundConfig controls the audio collaborator.
type SoundConfig struct {
	Enabled  bool     `yaml:"enabled"`
	Dir      string   `yaml:"dir"`       // Directory with ball/block/lost/won sound files
	Player   []string `yaml:"player"`    // Command and args used to play a file; empty = autodetect
	BellCues []string `yaml:"bell_cues"` // Cues that ring the terminal bell when no player is available
}

// Wall layout. The grid is fixed; only the playfield it spans varies.
const (
	WallRows    = 6
	WallCols    = 6
	BrickHeight = 50
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
