package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Visual characters for rendering
const (
	BrickChar  = '█'
	PaddleChar = '▀'
	BallChar   = '●'
	PadChar    = '░'
)

// Overlay texts
const (
	TextStart = "CLICK ANYWHERE TO START"
	TextWon   = "YOU WON!"
	TextLost  = "YOU LOST!"
)

// Minimum terminal size the layout can fit into.
const (
	MinScreenW = 30
	MinScreenH = 15
)

// touchpadRows is the height of the control strip, borders included.
const touchpadRows = 4

// Variant selects how the paddle is controlled.
type Variant int

const (
	VariantClassic  Variant = iota // Keyboard moves the paddle directly
	VariantTouchpad                // Pointer in the control strip steers the paddle
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown values clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game implements the Breakout game logic for both control variants.
type Game struct {
	variant Variant

	// Game objects
	ball    Ball
	wall    *Wall
	paddle  Paddle
	round   Round
	physics Physics

	// Touchpad target in playfield units
	target    int
	hasTarget bool

	tickCount int

	// Configuration
	runtime core.RuntimeConfig
	cfg     config.BreakoutConfig
	cfgErr  error

	// Layout (computed from screen size)
	field          core.Rect // Playfield box, border included
	pad            core.Rect // Touchpad box, border included (touchpad variant only)
	screenTooSmall bool
}

// New creates a Breakout game with keyboard control.
func New() *Game {
	return &Game{variant: VariantClassic}
}

// NewTouchpad creates a Breakout game steered from the touchpad strip.
func NewTouchpad() *Game {
	return &Game{variant: VariantTouchpad}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == VariantTouchpad {
		return "breakout_touch"
	}
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == VariantTouchpad {
		return "Breakout (Touchpad)"
	}
	return "Breakout"
}

// Controls returns a one-line description of the paddle controls.
func (g *Game) Controls() string {
	if g.variant == VariantTouchpad {
		return "mouse/touch in the pad strip"
	}
	return "left/right arrows"
}

// ConfigErr returns the error from the last config load, if any.
// The game runs on defaults when loading fails.
func (g *Game) ConfigErr() error {
	return g.cfgErr
}

// Reset initializes the game: a fresh wall, a centred paddle and a ball
// waiting for the start trigger.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadBreakout(configPath)
	g.cfgErr = err
	if difficultyPreset != "" {
		config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.physics = NewPhysics(Bounds{
		Width:  cfg.Playfield.Width,
		Bottom: cfg.Playfield.Height,
	}, cfg.Physics.CollisionThreshold)

	g.wall = NewWall(cfg.Playfield.Width)
	g.resetPaddleAndBall()
	g.round = Round{}
	g.hasTarget = false
	g.tickCount = 0

	g.runtime = runtime
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize recomputes the terminal layout. Physics state is unaffected since
// it lives in playfield units.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < MinScreenW || h < MinScreenH

	padH := 0
	if g.variant == VariantTouchpad {
		padH = touchpadRows
	}
	// Row 0 is the HUD; the last row is left to the platform's key help.
	g.field = core.NewRect(0, 1, w, h-2-padH)
	g.pad = core.NewRect(0, g.field.Bottom(), w, padH)
}

// resetPaddleAndBall centres the paddle and sits the ball on top of it.
func (g *Game) resetPaddleAndBall() {
	cfg := g.cfg
	g.paddle.Reset(cfg.Playfield.Width, cfg.Playfield.Height, cfg.Paddle.Height, cfg.Paddle.Speed)
	g.ball.Reset(
		g.paddle.CenterX(),
		g.paddle.Rect.Y-g.paddle.Rect.H,
		cfg.Ball.Radius,
		cfg.Ball.SpeedX,
		cfg.Ball.SpeedY,
		cfg.Ball.SpeedMax,
	)
}

// startRound re-initialises the entities and makes the round live.
func (g *Game) startRound() {
	if !g.round.Start() {
		return
	}
	g.resetPaddleAndBall()
	g.wall.Rebuild(g.cfg.Playfield.Width)
	g.hasTarget = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	if !g.round.Live() {
		if in.Pointer.Pressed || in.Has(core.ActionConfirm) {
			g.startRound()
		}
		g.trackPointer(in)
		return core.StepResult{State: g.State()}
	}

	g.trackPointer(in)
	g.updatePaddle(in)

	ev := g.physics.Step(&g.ball, g.wall, &g.paddle)
	cues := ev.Cues()
	if cue, ok := g.round.Finish(ev.Outcome); ok {
		cues = append(cues, cue)
	}

	return core.StepResult{State: g.State(), Cues: cues}
}

// updatePaddle applies this frame's control input.
func (g *Game) updatePaddle(in core.InputFrame) {
	playW := g.cfg.Playfield.Width
	switch g.variant {
	case VariantTouchpad:
		if g.hasTarget {
			g.paddle.SeekTarget(g.target, g.cfg.Paddle.Smoothing, playW)
		} else {
			g.paddle.Direction = 0
		}
	default:
		g.paddle.MoveKeyed(in.Has(core.ActionLeft), in.Has(core.ActionRight), playW)
	}
}

// trackPointer updates the touchpad target from this frame's pointer.
func (g *Game) trackPointer(in core.InputFrame) {
	if g.variant != VariantTouchpad || !in.Pointer.Moved {
		return
	}
	if x, ok := g.padTarget(in.Pointer.X, in.Pointer.Y); ok {
		g.target = x
		g.hasTarget = true
	}
}

// padTarget converts a pointer cell to a playfield x when the pointer is
// inside the touchpad strip.
func (g *Game) padTarget(x, y int) (int, bool) {
	if g.pad.Empty() || !g.pad.Contains(x, y) {
		return 0, false
	}
	inner := inset(g.pad)
	if inner.W <= 0 {
		return 0, false
	}
	cx := core.Clamp(x-inner.X, 0, inner.W-1)
	// Aim at the middle of the cell.
	ux := (cx*2 + 1) * g.cfg.Playfield.Width / (inner.W * 2)
	return ux, true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	phase := g.round.Phase()
	return core.GameState{
		Phase:    phase.String(),
		Live:     phase == PhaseLive,
		GameOver: phase == PhaseWon || phase == PhaseLost,
		Won:      phase == PhaseWon,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorText)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorText)
		return
	}

	g.renderHUD(dst)
	dst.DrawBox(g.field, core.ColorGray)
	g.renderBricks(dst)
	g.renderPaddle(dst)
	g.renderBall(dst)
	if g.variant == VariantTouchpad {
		g.renderTouchpad(dst)
	}
	g.renderOverlay(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, g.Title(), core.ColorText)
	bricks := fmt.Sprintf("Bricks: %d/%d", g.wall.CountAlive(), WallRows*WallCols)
	dst.DrawText(dst.Width()-len(bricks)-1, 0, bricks)
}

// renderBricks draws every live brick in its tier colour. Bricks wider than
// two cells keep a one-cell gap on the right so neighbours stay distinct.
func (g *Game) renderBricks(dst *core.Screen) {
	for _, row := range g.wall.Bricks {
		for _, brick := range row {
			if !brick.Alive() {
				continue
			}
			r := g.project(brick.Rect)
			if r.W > 2 {
				r.W--
			}
			dst.DrawRect(r, BrickChar, brick.Color())
		}
	}
}

func (g *Game) renderPaddle(dst *core.Screen) {
	r := g.project(g.paddle.Rect)
	r.H = 1
	dst.DrawRect(r, PaddleChar, core.ColorPaddle)
}

func (g *Game) renderBall(dst *core.Screen) {
	cx, cy := g.ball.Rect.Center()
	x, y := g.projectPoint(cx, cy)
	inner := inset(g.field)
	if !inner.Contains(x, y) {
		return
	}
	dst.SetColored(x, y, BallChar, core.ColorPaddle)
}

func (g *Game) renderTouchpad(dst *core.Screen) {
	dst.DrawBox(g.pad, core.ColorGray)
	inner := inset(g.pad)
	dst.DrawRect(inner, PadChar, core.ColorGray)
	label := " touchpad "
	dst.DrawTextColored(g.pad.X+(g.pad.W-len(label))/2, g.pad.Y, label, core.ColorGray)

	if g.hasTarget {
		x := inner.X + g.target*inner.W/g.cfg.Playfield.Width
		for y := inner.Y; y < inner.Bottom(); y++ {
			dst.SetColored(x, y, '│', core.ColorPaddle)
		}
	}
}

// renderOverlay draws the start prompt and the result of the last round
// while no round is live.
func (g *Game) renderOverlay(dst *core.Screen) {
	if g.round.Live() {
		return
	}
	inner := inset(g.field)
	_, midY := g.projectPoint(0, g.cfg.Playfield.Height/2)
	promptY := min(midY+3, inner.Bottom()-1)

	switch g.round.Phase() {
	case PhaseWon:
		dst.DrawTextCentered(promptY-2, TextWon, core.ColorText)
	case PhaseLost:
		dst.DrawTextCentered(promptY-2, TextLost, core.ColorText)
	}
	dst.DrawTextCentered(promptY, TextStart, core.ColorText)
}

// project maps a playfield rectangle to screen cells inside the field box.
// Non-empty rectangles always cover at least one cell.
func (g *Game) project(r core.Rect) core.Rect {
	x0, y0 := g.projectPoint(r.X, r.Y)
	x1, y1 := g.projectPoint(r.Right(), r.Bottom())
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// projectPoint maps a playfield point to a screen cell.
func (g *Game) projectPoint(ux, uy int) (int, int) {
	inner := inset(g.field)
	x := inner.X + ux*inner.W/g.cfg.Playfield.Width
	y := inner.Y + uy*inner.H/g.cfg.Playfield.Height
	return x, y
}

// inset returns the rectangle inside a one-cell border.
func inset(r core.Rect) core.Rect {
	return core.NewRect(r.X+1, r.Y+1, r.W-2, r.H-2)
}

// Register the variants with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
	registry.Register("breakout_touch", func() registry.Game {
		return NewTouchpad()
	})
}
