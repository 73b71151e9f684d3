package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decodeBreakout(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultBreakoutConfig(), cfg)
}

func TestLoadBreakoutCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ball:\n  speed_max: 8\nsound:\n  enabled: false\n"), 0o600))

	cfg, err := LoadBreakout(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Ball.SpeedMax)
	assert.False(t, cfg.Sound.Enabled)
	// Keys the file does not mention keep their defaults.
	assert.Equal(t, 650, cfg.Playfield.Width)
	assert.Equal(t, 4, cfg.Ball.SpeedX)
	assert.Equal(t, 5, cfg.Physics.CollisionThreshold)
}

func TestLoadBreakoutMissingFile(t *testing.T) {
	cfg, err := LoadBreakout(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
	assert.Equal(t, DefaultBreakoutConfig(), cfg, "failed loads still hand back usable defaults")
}

func TestLoadBreakoutInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("paddle:\n  smoothing: 3\nball:\n  radius: 0\n"), 0o600))

	_, err := LoadBreakout(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "paddle.smoothing")
	assert.Contains(t, err.Error(), "ball.radius")
}

func TestValidateBellCues(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	cfg.Sound.BellCues = []string{"block", "paddle", "won", "lost"}
	assert.NoError(t, cfg.Validate())

	cfg.Sound.BellCues = []string{"won", "boom"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"boom"`)
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", "", false},
		{"easy", DifficultyEasy, false},
		{"normal", DifficultyNormal, false},
		{"hard", DifficultyHard, false},
		{"fixed", "", true},
	}
	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestApplyBreakoutPreset(t *testing.T) {
	normal := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&normal, DifficultyNormal)
	assert.Equal(t, DefaultBreakoutConfig(), normal)

	easy := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&easy, DifficultyEasy)
	assert.Less(t, easy.Ball.SpeedMax, normal.Ball.SpeedMax)
	assert.Greater(t, easy.Paddle.Speed, normal.Paddle.Speed)

	hard := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&hard, DifficultyHard)
	assert.Greater(t, hard.Ball.SpeedMax, normal.Ball.SpeedMax)
	assert.Greater(t, hard.Physics.CollisionThreshold, hard.Ball.SpeedMax)
	assert.NoError(t, hard.Validate())
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("/abs/path")
	require.NoError(t, err)
	assert.Equal(t, "/abs/path", got)

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err = ExpandHome("~/sounds")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "sounds"), got)
}

func TestValidatePlayfieldFitsWall(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	cfg.Playfield.Width = WallCols - 1
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "playfield.width")

	cfg.Playfield.Width = WallCols
	assert.NoError(t, cfg.Validate())
}

func TestValidatePaddleClearsWall(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	wallBottom := WallRows * BrickHeight

	cfg.Playfield.Height = wallBottom + 2*cfg.Paddle.Height
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "playfield.height")

	cfg.Playfield.Height++
	assert.NoError(t, cfg.Validate())
}

func TestLoadBreakoutRejectsTinyPlayfield(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	require.NoError(t, os.WriteFile(path, []byte("playfield:\n  width: 5\n  height: 100\n"), 0o600))

	cfg, err := LoadBreakout(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "playfield.width")
	assert.Contains(t, err.Error(), "playfield.height")
	assert.Equal(t, DefaultBreakoutConfig(), cfg, "a rejected file falls back to defaults")
}
