package audio

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("RIFF"), 0o600))
	}
}

type call struct {
	name string
	args []string
}

type recorder struct {
	mu    sync.Mutex
	calls []call
	err   error
}

func (r *recorder) start(name string, args ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call{name: name, args: args})
	return r.err
}

func lookPathOnly(found ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, f := range found {
			if f == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func TestFindSoundsPrefersWav(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "ball.aif", "ball.wav", "block.caf", "lost.aif")

	files, err := FindSounds(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "ball.wav"), files[core.CuePaddleHit])
	assert.Equal(t, filepath.Join(dir, "block.caf"), files[core.CueBlockHit])
	assert.Equal(t, filepath.Join(dir, "lost.aif"), files[core.CueRoundLost])
	assert.NotContains(t, files, core.CueRoundWon)
}

func TestFindSoundsEmptyDir(t *testing.T) {
	_, err := FindSounds(t.TempDir())
	assert.Error(t, err)
}

func TestDetectPlayer(t *testing.T) {
	cmd, err := DetectPlayer(lookPathOnly("afplay", "play"))
	require.NoError(t, err)
	assert.Equal(t, []string{"afplay"}, cmd)

	cmd, err = DetectPlayer(lookPathOnly("aplay"))
	require.NoError(t, err)
	assert.Equal(t, []string{"aplay", "-q"}, cmd)

	_, err = DetectPlayer(lookPathOnly())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "paplay")
}

func TestExecPlay(t *testing.T) {
	rec := &recorder{}
	files := map[core.Cue]string{core.CueBlockHit: "/snd/block.wav"}
	p := NewExec([]string{"aplay", "-q"}, files, rec.start, quietLogger())

	p.Play(core.CueBlockHit)
	p.Play(core.CueRoundWon) // no file, ignored

	require.Len(t, rec.calls, 1)
	assert.Equal(t, "aplay", rec.calls[0].name)
	assert.Equal(t, []string{"-q", "/snd/block.wav"}, rec.calls[0].args)

	// Repeated plays must not grow the shared command slice.
	p.Play(core.CueBlockHit)
	assert.Equal(t, []string{"-q", "/snd/block.wav"}, rec.calls[1].args)
}

func TestExecPlayErrorIsLogged(t *testing.T) {
	var buf bytes.Buffer
	rec := &recorder{err: errors.New("boom")}
	p := NewExec([]string{"paplay"}, map[core.Cue]string{core.CueRoundLost: "lost.wav"}, rec.start, log.New(&buf))

	p.Play(core.CueRoundLost)

	assert.Contains(t, buf.String(), "sound playback failed")
	assert.Contains(t, buf.String(), "boom")
}

func TestBellRingsOnlyForConfiguredCues(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf, []core.Cue{core.CueRoundWon, core.CueRoundLost})

	b.Play(core.CueBlockHit)
	b.Play(core.CuePaddleHit)
	assert.Empty(t, buf.String())

	b.Play(core.CueRoundWon)
	b.Play(core.CueRoundLost)
	assert.Equal(t, "\a\a", buf.String())
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
	assert.True(t, IsTerminal(TTY{Writer: &bytes.Buffer{}}))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTerminal(f), "regular files are not terminals")
}

func TestOpenDisabled(t *testing.T) {
	cfg := config.DefaultBreakoutConfig().Sound
	cfg.Enabled = false

	p := open(cfg, TTY{Writer: &bytes.Buffer{}}, quietLogger(), lookPathOnly("paplay"), nil)
	assert.IsType(t, Nop{}, p)
}

func TestOpenPrefersExec(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "won.wav")
	cfg := config.DefaultBreakoutConfig().Sound
	cfg.Dir = dir

	rec := &recorder{}
	p := open(cfg, TTY{Writer: &bytes.Buffer{}}, quietLogger(), lookPathOnly("paplay"), rec.start)
	require.IsType(t, &Exec{}, p)

	p.Play(core.CueRoundWon)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, "paplay", rec.calls[0].name)
}

func TestOpenConfiguredPlayerSkipsDetection(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "block.wav")
	cfg := config.DefaultBreakoutConfig().Sound
	cfg.Dir = dir
	cfg.Player = []string{"mpv", "--really-quiet"}

	rec := &recorder{}
	p := open(cfg, nil, quietLogger(), lookPathOnly(), rec.start)
	p.Play(core.CueBlockHit)

	require.Len(t, rec.calls, 1)
	assert.Equal(t, "mpv", rec.calls[0].name)
	assert.Equal(t, []string{"--really-quiet", filepath.Join(dir, "block.wav")}, rec.calls[0].args)
}

func TestOpenFallsBackToBell(t *testing.T) {
	cfg := config.DefaultBreakoutConfig().Sound
	cfg.Dir = t.TempDir() // no files

	var buf bytes.Buffer
	p := open(cfg, TTY{Writer: &buf}, quietLogger(), lookPathOnly("paplay"), nil)
	require.IsType(t, &Bell{}, p)

	p.Play(core.CueRoundLost)
	assert.Equal(t, "\a", buf.String())
}

func TestOpenFallsBackToSilence(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "ball.wav")
	cfg := config.DefaultBreakoutConfig().Sound
	cfg.Dir = dir

	// Files but no player, and output is not a terminal.
	p := open(cfg, &bytes.Buffer{}, quietLogger(), lookPathOnly(), nil)
	assert.IsType(t, Nop{}, p)

	cfg.BellCues = nil
	p = open(cfg, TTY{Writer: &bytes.Buffer{}}, quietLogger(), lookPathOnly(), nil)
	assert.IsType(t, Nop{}, p)
}

func TestOpenBell(t *testing.T) {
	cfg := config.DefaultBreakoutConfig().Sound

	var buf bytes.Buffer
	p := OpenBell(cfg, TTY{Writer: &buf}, quietLogger())
	require.IsType(t, &Bell{}, p)
	p.Play(core.CueRoundWon)
	p.Play(core.CueBlockHit)
	assert.Equal(t, "\a", buf.String())

	cfg.Enabled = false
	assert.IsType(t, Nop{}, OpenBell(cfg, TTY{Writer: &buf}, quietLogger()))
}
