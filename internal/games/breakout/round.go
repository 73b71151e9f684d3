package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Phase is the round's position in its lifecycle.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseLive
	PhaseWon
	PhaseLost
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseLive:
		return "live"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Round gates physics and owns the one-shot terminal cue.
//
//	NotStarted -> Live -> Won | Lost
//	Won | Lost -> Live (start)
type Round struct {
	phase       Phase
	soundPlayed bool
}

// Phase returns the current phase.
func (r *Round) Phase() Phase {
	return r.phase
}

// Live reports whether physics should run this frame.
func (r *Round) Live() bool {
	return r.phase == PhaseLive
}

// Start begins a new round. It returns false if a round is already live.
func (r *Round) Start() bool {
	if r.phase == PhaseLive {
		return false
	}
	r.phase = PhaseLive
	r.soundPlayed = false
	return true
}

// Finish records a terminal outcome. It returns the cue to play, and false
// when there is nothing to play: the outcome is not terminal, the round is
// not live, or the cue has already fired.
func (r *Round) Finish(o Outcome) (core.Cue, bool) {
	if r.phase != PhaseLive {
		return 0, false
	}

	var cue core.Cue
	switch o {
	case OutcomeWon:
		r.phase = PhaseWon
		cue = core.CueRoundWon
	case OutcomeLost:
		r.phase = PhaseLost
		cue = core.CueRoundLost
	default:
		return 0, false
	}

	if r.soundPlayed {
		return 0, false
	}
	r.soundPlayed = true
	return cue, true
}
