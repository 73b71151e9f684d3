// Package audio turns game cues into sound. Games only emit cues; the
// platform hands them to a Player, which may run an external sound player,
// ring the terminal bell, or do nothing at all.
package audio

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Player plays the sound for a cue. Play must not block the frame loop.
type Player interface {
	Play(cue core.Cue)
}

// Nop discards every cue.
type Nop struct{}

// Play does nothing.
func (Nop) Play(core.Cue) {}

// Sound file base names per cue, looked up in the configured directory.
var cueFiles = map[core.Cue]string{
	core.CueBlockHit:  "block",
	core.CuePaddleHit: "ball",
	core.CueRoundWon:  "won",
	core.CueRoundLost: "lost",
}

// soundExtensions in order of preference.
var soundExtensions = []string{".wav", ".aif", ".aiff", ".caf"}

// Candidate players, tried in order when none is configured.
var knownPlayers = [][]string{
	{"paplay"},
	{"aplay", "-q"},
	{"afplay"},
	{"play", "-q"},
}

// FindSounds maps each cue to the first matching file in dir.
// Cues without a file are left out. It fails only when no file is found.
func FindSounds(dir string) (map[core.Cue]string, error) {
	files := make(map[core.Cue]string, len(cueFiles))
	for cue, base := range cueFiles {
		for _, ext := range soundExtensions {
			path := filepath.Join(dir, base+ext)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				files[cue] = path
				break
			}
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("audio: no sound files in %s", dir)
	}
	return files, nil
}

// DetectPlayer returns the first known player command found by lookPath.
func DetectPlayer(lookPath func(string) (string, error)) ([]string, error) {
	for _, cmd := range knownPlayers {
		if _, err := lookPath(cmd[0]); err == nil {
			return cmd, nil
		}
	}
	names := make([]string, len(knownPlayers))
	for i, cmd := range knownPlayers {
		names[i] = cmd[0]
	}
	return nil, fmt.Errorf("audio: no sound player found (tried %s)", strings.Join(names, ", "))
}

// StartFunc launches a command without waiting for it to finish.
type StartFunc func(name string, args ...string) error

// startDetached starts the command and reaps it in the background.
func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...) //#nosec G204 -- player command comes from the user's own config
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// Exec plays sound files through an external player command.
type Exec struct {
	command []string
	files   map[core.Cue]string
	start   StartFunc
	logger  *log.Logger
}

// NewExec creates an Exec player. A nil start uses os/exec.
func NewExec(command []string, files map[core.Cue]string, start StartFunc, logger *log.Logger) *Exec {
	if start == nil {
		start = startDetached
	}
	return &Exec{
		command: command,
		files:   files,
		start:   start,
		logger:  logger,
	}
}

// Play launches the player for the cue's file, if there is one.
func (e *Exec) Play(cue core.Cue) {
	path, ok := e.files[cue]
	if !ok || len(e.command) == 0 {
		return
	}
	args := append(append([]string{}, e.command[1:]...), path)
	if err := e.start(e.command[0], args...); err != nil {
		e.logger.Warn("sound playback failed", "cue", cue, "player", e.command[0], "err", err)
	}
}

// Bell rings the terminal bell for a subset of cues.
type Bell struct {
	mu   sync.Mutex
	out  io.Writer
	cues map[core.Cue]bool
}

// NewBell creates a Bell writing to out for the given cues.
func NewBell(out io.Writer, cues []core.Cue) *Bell {
	set := make(map[core.Cue]bool, len(cues))
	for _, c := range cues {
		set[c] = true
	}
	return &Bell{out: out, cues: set}
}

// Play writes BEL when the cue is one of the bell cues.
func (b *Bell) Play(cue core.Cue) {
	if !b.cues[cue] {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = io.WriteString(b.out, "\a")
}

// TTY marks a writer as an interactive terminal, for outputs such as SSH
// sessions that have no file descriptor to inspect.
type TTY struct {
	io.Writer
}

// IsTerminal always reports true.
func (TTY) IsTerminal() bool { return true }

// IsTerminal reports whether out is an interactive terminal.
func IsTerminal(out io.Writer) bool {
	switch w := out.(type) {
	case interface{ IsTerminal() bool }:
		return w.IsTerminal()
	case interface{ Fd() uintptr }:
		return term.IsTerminal(int(w.Fd())) //#nosec G115 -- file descriptors fit in int
	default:
		return false
	}
}

// Open builds the best available player for cfg. It prefers sound files
// played by an external command, then the terminal bell on out, then
// silence. Fallbacks are logged as warnings and never fail the game.
func Open(cfg config.SoundConfig, out io.Writer, logger *log.Logger) Player {
	return open(cfg, out, logger, exec.LookPath, nil)
}

func open(cfg config.SoundConfig, out io.Writer, logger *log.Logger, lookPath func(string) (string, error), start StartFunc) Player {
	if !cfg.Enabled {
		logger.Debug("sound disabled")
		return Nop{}
	}

	p, err := openExec(cfg, lookPath, start, logger)
	if err == nil {
		return p
	}
	logger.Warn("sound files unavailable", "err", err)

	return OpenBell(cfg, out, logger)
}

// OpenBell builds a player that only rings the terminal bell on out. It is
// used directly for remote sessions, where files would play on the wrong
// machine.
func OpenBell(cfg config.SoundConfig, out io.Writer, logger *log.Logger) Player {
	cues := make([]core.Cue, 0, len(cfg.BellCues))
	for _, name := range cfg.BellCues {
		if c, ok := core.ParseCue(name); ok {
			cues = append(cues, c)
		}
	}
	if !cfg.Enabled || len(cues) == 0 || out == nil || !IsTerminal(out) {
		logger.Info("sound muted")
		return Nop{}
	}

	logger.Info("using terminal bell", "cues", cfg.BellCues)
	return NewBell(out, cues)
}

func openExec(cfg config.SoundConfig, lookPath func(string) (string, error), start StartFunc, logger *log.Logger) (*Exec, error) {
	dir, err := config.ExpandHome(cfg.Dir)
	if err != nil {
		return nil, err
	}
	files, err := FindSounds(dir)
	if err != nil {
		return nil, err
	}

	command := cfg.Player
	if len(command) == 0 {
		command, err = DetectPlayer(lookPath)
		if err != nil {
			return nil, err
		}
	}

	logger.Info("sound enabled", "dir", dir, "player", command[0], "files", len(files))
	return NewExec(command, files, start, logger), nil
}
