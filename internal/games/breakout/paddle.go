package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Paddle is the player's bat. Direction is the sign of the last movement
// and is added to the ball's horizontal speed on a top hit.
type Paddle struct {
	Rect      core.Rect
	Speed     int
	Direction int
}

// Reset centres the paddle horizontally, two paddle-heights above the
// bottom of the playfield, and clears its direction.
func (p *Paddle) Reset(playW, playH, height, speed int) {
	width := playW / WallCols
	p.Rect = core.NewRect(playW/2-width/2, playH-height*2, width, height)
	p.Speed = speed
	p.Direction = 0
}

// CenterX returns the horizontal centre in playfield units.
func (p *Paddle) CenterX() int {
	return p.Rect.X + p.Rect.W/2
}

// MoveKeyed applies one frame of keyboard movement. A key only moves the
// paddle while the paddle's leading edge is still inside the playfield; the
// result is then clamped so the paddle never leaves it.
func (p *Paddle) MoveKeyed(left, right bool, playW int) {
	p.Direction = 0
	if left && p.Rect.X > 0 {
		p.Rect.X -= p.Speed
		p.Direction = -1
	}
	if right && p.Rect.Right() < playW {
		p.Rect.X += p.Speed
		p.Direction = 1
	}
	p.clamp(playW)
}

// SeekTarget moves the paddle centre a fraction of the way toward targetX.
// Direction follows the sign of the remaining distance.
func (p *Paddle) SeekTarget(targetX int, smoothing float64, playW int) {
	dist := targetX - p.CenterX()
	p.Direction = core.Sign(dist)
	step := int(math.Round(float64(dist) * smoothing))
	if step == 0 && dist != 0 {
		step = p.Direction
	}
	p.Rect.X += step
	p.clamp(playW)
}

func (p *Paddle) clamp(playW int) {
	p.Rect.X = core.Clamp(p.Rect.X, 0, playW-p.Rect.W)
}
