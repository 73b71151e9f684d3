package breakout

// Snapshot contains the complete game state in primitive types, for
// debugging dumps and determinism tests.
type Snapshot struct {
	Tick      uint64
	Phase     string
	PaddleX   int
	PaddleDir int
	Target    int
	HasTarget bool

	BallX, BallY   int
	BallVX, BallVY int
	Outcome        string

	// Brick strengths, flattened row*WallCols + col
	BrickData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	brickData := make([]int, 0, WallRows*WallCols)
	for _, row := range g.wall.Bricks {
		for _, b := range row {
			brickData = append(brickData, b.Strength)
		}
	}

	return Snapshot{
		Tick:      uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Phase:     g.round.Phase().String(),
		PaddleX:   g.paddle.Rect.X,
		PaddleDir: g.paddle.Direction,
		Target:    g.target,
		HasTarget: g.hasTarget,
		BallX:     g.ball.Rect.X,
		BallY:     g.ball.Rect.Y,
		BallVX:    g.ball.SpeedX,
		BallVY:    g.ball.SpeedY,
		Outcome:   g.ball.Outcome.String(),
		BrickData: brickData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, r := range snap.Phase + "/" + snap.Outcome {
		h = h*31 + uint64(r)
	}
	h = h*31 + uint64(snap.PaddleX)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleDir) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Target)    //#nosec G115 -- hash computation
	if snap.HasTarget {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.BallX)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVX) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVY) //#nosec G115 -- hash computation

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
