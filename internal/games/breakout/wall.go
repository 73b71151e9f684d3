// Package breakout implements a single-screen brick breaker: a paddle
// deflects a ball into a 6x6 wall of tiered bricks until the wall is cleared
// or the ball drops past the paddle.
package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Wall layout. Config validation checks playfields against the same numbers.
const (
	WallRows    = config.WallRows
	WallCols    = config.WallCols
	BrickHeight = config.BrickHeight
	MaxStrength = 3
)

// rowStrength is the starting strength of each row, top to bottom.
var rowStrength = [WallRows]int{3, 3, 2, 2, 1, 1}

// Brick is one destructible block. Strength is its remaining hit points;
// a destroyed brick has strength 0 and a zero rectangle.
type Brick struct {
	Rect     core.Rect
	Strength int
}

// Alive reports whether the brick can still be hit.
func (b Brick) Alive() bool {
	return b.Strength > 0
}

// Hit applies one point of damage. The last point destroys the brick.
func (b *Brick) Hit() {
	if b.Strength > 1 {
		b.Strength--
		return
	}
	b.Rect = core.Rect{}
	b.Strength = 0
}

// Color returns the tier colour for the brick's strength.
func (b Brick) Color() core.Color {
	switch b.Strength {
	case 3:
		return core.ColorBrickStrong
	case 2:
		return core.ColorBrickMedium
	case 1:
		return core.ColorBrickWeak
	default:
		return core.ColorDefault
	}
}

// Wall is the brick grid, indexed [row][col].
type Wall struct {
	Bricks     [][]Brick
	BrickWidth int
}

// NewWall builds a full wall across a playfield of the given width.
func NewWall(playfieldWidth int) *Wall {
	w := &Wall{}
	w.Rebuild(playfieldWidth)
	return w
}

// Rebuild restores every brick to its starting strength.
func (w *Wall) Rebuild(playfieldWidth int) {
	w.BrickWidth = playfieldWidth / WallCols
	w.Bricks = make([][]Brick, WallRows)
	for row := 0; row < WallRows; row++ {
		w.Bricks[row] = make([]Brick, WallCols)
		for col := 0; col < WallCols; col++ {
			w.Bricks[row][col] = Brick{
				Rect:     core.NewRect(col*w.BrickWidth, row*BrickHeight, w.BrickWidth, BrickHeight),
				Strength: rowStrength[row],
			}
		}
	}
}

// CountAlive returns the number of bricks with strength left.
func (w *Wall) CountAlive() int {
	count := 0
	for _, row := range w.Bricks {
		for _, b := range row {
			if b.Alive() {
				count++
			}
		}
	}
	return count
}

// Cleared reports whether every brick has been destroyed.
func (w *Wall) Cleared() bool {
	return w.CountAlive() == 0
}
