package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// configErrorer is implemented by games that load a config file on Reset.
type configErrorer interface {
	ConfigErr() error
}

// GameModel is the Bubble Tea model for running a single game variant.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       GameKeyMap
	help       help.Model
	holdTicks  int
	sound      audio.Player
	logger     *log.Logger
	inputFrame core.InputFrame
	held       map[core.Action]int // Direction keys and ticks left before release
	gameState  core.GameState
	exitOnBack bool // Back quits the program instead of returning to a picker
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a new Bubble Tea model for the given game.
// A nil sound player or logger is replaced by a silent one.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, sound audio.Player, logger *log.Logger) GameModel {
	if sound == nil {
		sound = audio.Nop{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.Width = cfg.ScreenW
	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       DefaultGameKeyMap(),
		help:       h,
		holdTicks:  holdTicks(cfg.TickRate),
		sound:      sound,
		logger:     logger.With("game", game.ID()),
		inputFrame: core.NewInputFrame(),
		held:       make(map[core.Action]int),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	if ce, ok := m.game.(configErrorer); ok && ce.ConfigErr() != nil {
		m.logger.Warn("config load failed, using defaults", "err", ce.ConfigErr())
	}
	m.logger.Debug("game ready", "width", m.config.ScreenW, "height", m.config.ScreenH, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		// Leaving mid-round would throw the round away.
		if m.gameState.Live {
			return m, nil
		}
		m.backToMenu = true
		if m.exitOnBack {
			m.quitting = true
			return m, tea.Quit
		}

	case core.ActionLeft, core.ActionRight:
		m.held[action] = m.holdTicks

	case core.ActionConfirm:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse turns pointer events into frame input. Only the left button
// counts as a press; wheel events are ignored.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.inputFrame.PressPointer(msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		m.inputFrame.MovePointer(msg.X, msg.Y)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	for action, ticks := range m.held {
		m.inputFrame.Set(action)
		if ticks <= 1 {
			delete(m.held, action)
		} else {
			m.held[action] = ticks - 1
		}
	}

	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, cue := range result.Cues {
		m.sound.Play(cue)
	}
	if result.State.Phase != prev.Phase {
		m.logPhase(result.State)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m GameModel) logPhase(state core.GameState) {
	switch {
	case state.Live:
		m.logger.Info("round started")
	case state.Won:
		m.logger.Info("round won")
	case state.GameOver:
		m.logger.Info("round lost")
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".breakout", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	view := RenderScreen(m.screen)

	// Games leave the bottom row to the key help footer.
	footer := lipgloss.PlaceHorizontal(m.screen.Width(), lipgloss.Center, m.help.View(m.footerKeys()))
	if i := strings.LastIndexByte(view, '\n'); i >= 0 {
		return view[:i+1] + footer
	}
	return footer
}

// footerKeys hides bindings that do nothing in the current phase.
func (m GameModel) footerKeys() GameKeyMap {
	keys := m.keys
	idle := !m.gameState.Live
	keys.Start.SetEnabled(idle)
	keys.Back.SetEnabled(idle)
	keys.Left.SetEnabled(!idle)
	keys.Right.SetEnabled(!idle)
	return keys
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the picker.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Run starts a Bubble Tea program for a single game. Back leaves the program.
func Run(game registry.Game, cfg core.RuntimeConfig, sound audio.Player, logger *log.Logger) error {
	model := NewGameModel(game, cfg, sound, logger)
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
