package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase    string // Round phase name, for logs and the HUD
	Live     bool   // Whether physics is running
	GameOver bool   // Whether the last round ended (won or lost)
	Won      bool   // Whether the last round was won
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any sound cues that fired.
type StepResult struct {
	State GameState
	Cues  []Cue
}
