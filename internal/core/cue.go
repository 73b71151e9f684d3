package core

// Cue is a discrete sound event emitted by a game step.
// The platform forwards cues to the audio collaborator; games never play
// sound themselves.
type Cue int

const (
	CueBlockHit Cue = iota
	CuePaddleHit
	CueRoundWon
	CueRoundLost
)

// String returns the short name used in config files and logs.
func (c Cue) String() string {
	switch c {
	case CueBlockHit:
		return "block"
	case CuePaddleHit:
		return "paddle"
	case CueRoundWon:
		return "won"
	case CueRoundLost:
		return "lost"
	default:
		return "unknown"
	}
}

// ParseCue is the inverse of Cue.String.
func ParseCue(name string) (Cue, bool) {
	for _, c := range AllCues() {
		if c.String() == name {
			return c, true
		}
	}
	return 0, false
}

// AllCues lists every cue in declaration order.
func AllCues() []Cue {
	return []Cue{CueBlockHit, CuePaddleHit, CueRoundWon, CueRoundLost}
}
