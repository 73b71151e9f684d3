package breakout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestRoundLifecycle(t *testing.T) {
	var r Round
	assert.Equal(t, PhaseNotStarted, r.Phase())
	assert.False(t, r.Live())

	_, ok := r.Finish(OutcomeLost)
	assert.False(t, ok, "a round that never started cannot finish")

	assert.True(t, r.Start())
	assert.True(t, r.Live())
	assert.False(t, r.Start(), "start while live is ignored")

	_, ok = r.Finish(OutcomePlaying)
	assert.False(t, ok)
	assert.True(t, r.Live())

	cue, ok := r.Finish(OutcomeWon)
	assert.True(t, ok)
	assert.Equal(t, core.CueRoundWon, cue)
	assert.Equal(t, PhaseWon, r.Phase())

	_, ok = r.Finish(OutcomeWon)
	assert.False(t, ok, "terminal cue fires once")
	_, ok = r.Finish(OutcomeLost)
	assert.False(t, ok)
	assert.Equal(t, PhaseWon, r.Phase())
}

func TestRoundRestartRearmsCue(t *testing.T) {
	var r Round
	r.Start()
	cue, ok := r.Finish(OutcomeLost)
	assert.True(t, ok)
	assert.Equal(t, core.CueRoundLost, cue)
	assert.Equal(t, PhaseLost, r.Phase())

	assert.True(t, r.Start())
	cue, ok = r.Finish(OutcomeLost)
	assert.True(t, ok)
	assert.Equal(t, core.CueRoundLost, cue)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "not_started", PhaseNotStarted.String())
	assert.Equal(t, "live", PhaseLive.String())
	assert.Equal(t, "won", PhaseWon.String())
	assert.Equal(t, "lost", PhaseLost.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
