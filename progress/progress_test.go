package progress

import (
	"testing"

	"github.com/hupe1980/dialogmesh/core"
	"github.com/stretchr/testify/assert"
)

func TestShouldProgress_BelowGate(t *testing.T) {
	m := NewMachine()

	assert.False(t, m.ShouldProgress(core.StageIntroduction, 2, "tell me more about that"))
	assert.False(t, m.ShouldProgress(core.StageDifferentiation, 7, "that makes sense"))
}

func TestShouldProgress_GateMetWithIndicator(t *testing.T) {
	m := NewMachine()

	assert.True(t, m.ShouldProgress(core.StageIntroduction, 3, "Tell me MORE about icons"))
	assert.True(t, m.ShouldProgress(core.StageDifferentiation, 8, "huh, that makes sense actually"))
	assert.True(t, m.ShouldProgress(core.StageExploration, 15, "can I visit a service sometime?"))
}

func TestShouldProgress_GateMetWithoutIndicator(t *testing.T) {
	m := NewMachine()

	assert.False(t, m.ShouldProgress(core.StageIntroduction, 50, "the weather is nice today"))
}

func TestShouldProgress_TerminalStage(t *testing.T) {
	m := NewMachine()

	// The final stage has no successor, no amount of traffic advances it.
	assert.False(t, m.ShouldProgress(core.StageCommitment, 1000, "tell me more, explain, what is, i want to"))
}

func TestShouldProgress_CustomRules(t *testing.T) {
	m := NewMachine(func(o *MachineOptions) {
		o.Rules = Rules{
			Gates:      map[core.Stage]int{core.StageIntroduction: 1},
			Indicators: map[core.Stage][]string{core.StageIntroduction: {"go on"}},
		}
	})

	assert.True(t, m.ShouldProgress(core.StageIntroduction, 1, "go on then"))
	assert.False(t, m.ShouldProgress(core.StageIntroduction, 1, "tell me more"))
}
