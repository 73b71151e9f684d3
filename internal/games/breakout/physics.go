package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// DefaultCollisionThreshold is the distance, in playfield units, within which
// a ball edge counts as having struck the facing edge of a brick or paddle.
const DefaultCollisionThreshold = 5

// Outcome is the ball's terminal state for the current round.
type Outcome int

const (
	OutcomePlaying Outcome = iota
	OutcomeWon
	OutcomeLost
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomePlaying:
		return "playing"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Ball is the ball's bounding square and velocity.
type Ball struct {
	Rect     core.Rect
	Radius   int
	SpeedX   int
	SpeedY   int // Positive is downward
	SpeedMax int // Cap on |SpeedX| after paddle spin
	Outcome  Outcome
}

// Reset places the ball so that its centre column is x and its top edge is y,
// with the launch velocity from the given ball parameters.
func (b *Ball) Reset(x, y, radius, speedX, speedY, speedMax int) {
	b.Radius = radius
	b.Rect = core.NewRect(x-radius, y, radius*2, radius*2)
	b.SpeedX = speedX
	b.SpeedY = speedY
	b.SpeedMax = speedMax
	b.Outcome = OutcomePlaying
}

// Bounds is the playfield: x in [0, Width], y from 0 down to Bottom.
type Bounds struct {
	Width  int
	Bottom int
}

// Events reports what happened during one physics step.
type Events struct {
	BlockHit  bool
	PaddleHit bool
	Outcome   Outcome
}

// Cues converts the hit events into sound cues. Terminal cues are owned by
// the round, which fires them at most once.
func (e Events) Cues() []core.Cue {
	var cues []core.Cue
	if e.BlockHit {
		cues = append(cues, core.CueBlockHit)
	}
	if e.PaddleHit {
		cues = append(cues, core.CuePaddleHit)
	}
	return cues
}

// Physics advances the ball one frame against the wall, the playfield edges
// and the paddle.
type Physics struct {
	Bounds    Bounds
	Threshold int
}

// NewPhysics returns a Physics for the given playfield.
func NewPhysics(bounds Bounds, threshold int) Physics {
	if threshold <= 0 {
		threshold = DefaultCollisionThreshold
	}
	return Physics{Bounds: bounds, Threshold: threshold}
}

// Step runs one simulation frame. It mutates the ball and the wall in place
// and returns the events that fired. A ball that already has a terminal
// outcome is left untouched.
//
// Order: brick pass, playfield edges, paddle, integration, loss check.
func (p Physics) Step(ball *Ball, wall *Wall, paddle *Paddle) Events {
	if ball.Outcome != OutcomePlaying {
		return Events{Outcome: ball.Outcome}
	}

	var ev Events

	if p.collideWall(ball, wall) {
		ev.BlockHit = true
	}
	if wall.Cleared() {
		ball.Outcome = OutcomeWon
	}

	p.collideEdges(ball)

	if ball.Rect.Intersects(paddle.Rect) {
		ev.PaddleHit = ball.SpeedY > 0
		p.collidePaddle(ball, paddle)
	}

	ball.Rect = ball.Rect.Translate(ball.SpeedX, ball.SpeedY)

	if ball.Outcome == OutcomePlaying && ball.Rect.Bottom() > p.Bounds.Bottom {
		ball.Outcome = OutcomeLost
	}

	ev.Outcome = ball.Outcome
	return ev
}

// collideWall resolves the first brick, in row-major order, that the ball
// overlaps. Each edge test is independent, so a corner hit can reverse both
// axes in the same frame.
func (p Physics) collideWall(ball *Ball, wall *Wall) bool {
	for row := range wall.Bricks {
		for col := range wall.Bricks[row] {
			brick := &wall.Bricks[row][col]
			if !ball.Rect.Intersects(brick.Rect) {
				continue
			}

			if core.Abs(ball.Rect.Bottom()-brick.Rect.Y) < p.Threshold && ball.SpeedY > 0 {
				ball.SpeedY = -ball.SpeedY
			}
			if core.Abs(ball.Rect.Y-brick.Rect.Bottom()) < p.Threshold && ball.SpeedY < 0 {
				ball.SpeedY = -ball.SpeedY
			}
			if core.Abs(ball.Rect.Right()-brick.Rect.X) < p.Threshold && ball.SpeedX > 0 {
				ball.SpeedX = -ball.SpeedX
			}
			if core.Abs(ball.Rect.X-brick.Rect.Right()) < p.Threshold && ball.SpeedX < 0 {
				ball.SpeedX = -ball.SpeedX
			}

			brick.Hit()
			return true
		}
	}
	return false
}

// collideEdges bounces off the left, right and top of the playfield.
// The bottom is open.
func (p Physics) collideEdges(ball *Ball) {
	if ball.Rect.X < 0 || ball.Rect.Right() > p.Bounds.Width {
		ball.SpeedX = -ball.SpeedX
	}
	if ball.Rect.Y < 0 {
		ball.SpeedY = -ball.SpeedY
	}
}

// collidePaddle handles an overlap with the paddle. A hit on the top face
// sends the ball back up and adds the paddle's direction as spin; any other
// contact only reverses the horizontal direction.
func (p Physics) collidePaddle(ball *Ball, paddle *Paddle) {
	if core.Abs(ball.Rect.Bottom()-paddle.Rect.Y) < p.Threshold && ball.SpeedY > 0 {
		ball.SpeedY = -ball.SpeedY
		ball.SpeedX = core.Clamp(ball.SpeedX+paddle.Direction, -ball.SpeedMax, ball.SpeedMax)
		return
	}
	ball.SpeedX = -ball.SpeedX
}
