package goal

import (
	"testing"
	"time"

	"github.com/hupe1980/dialogmesh/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_AchievesVisitCommitment(t *testing.T) {
	tracker := NewTracker()
	state := core.NewMemoryState("conv-1", time.Now())

	achieved := tracker.Evaluate(state, "Yes, I will visit this Sunday", time.Now())

	require.Contains(t, achieved, core.GoalCommitVisitChurch)

	g, ok := state.Goal(core.GoalCommitVisitChurch)
	require.True(t, ok)
	assert.True(t, g.Achieved)
	assert.NotNil(t, g.AchievedAt)
}

func TestEvaluate_AchievementIsIrreversible(t *testing.T) {
	tracker := NewTracker()
	state := core.NewMemoryState("conv-1", time.Now())

	first := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tracker.Evaluate(state, "I'll attend next week", first)

	// A retraction must not reset the goal.
	achieved := tracker.Evaluate(state, "actually never mind", time.Now())
	assert.Empty(t, achieved)

	g, _ := state.Goal(core.GoalCommitVisitChurch)
	assert.True(t, g.Achieved)
	assert.Equal(t, first, *g.AchievedAt)
}

func TestEvaluate_MatchesPerGoalPatterns(t *testing.T) {
	tracker := NewTracker()

	cases := []struct {
		text string
		want core.GoalType
	}{
		{"huh, that makes sense", core.GoalAcknowledgeOrthodox},
		{"I'm not so sure anymore", core.GoalExpressDoubt},
		{"ok, I'll read that passage tonight", core.GoalAcceptScripture},
		{"any books you can recommend?", core.GoalRequestResources},
		{"yes, please pray for me", core.GoalAcceptPrayer},
	}

	for _, tc := range cases {
		state := core.NewMemoryState("conv", time.Now())
		achieved := tracker.Evaluate(state, tc.text, time.Now())
		assert.Contains(t, achieved, tc.want, "text: %s", tc.text)
	}
}

func TestEvaluate_NoMatchLeavesGoalsOpen(t *testing.T) {
	tracker := NewTracker()
	state := core.NewMemoryState("conv", time.Now())

	achieved := tracker.Evaluate(state, "the weather is nice", time.Now())
	assert.Empty(t, achieved)

	for _, g := range state.Goals {
		assert.False(t, g.Achieved)
	}
}

func TestNewTracker_SkipsInvalidPatterns(t *testing.T) {
	tracker := NewTracker(func(o *TrackerOptions) {
		o.Rules = Rules{
			core.GoalAcceptPrayer:      `pray`,
			core.GoalCommitVisitChurch: `([unclosed`,
		}
	})

	state := core.NewMemoryState("conv", time.Now())

	achieved := tracker.Evaluate(state, "pray, i will visit", time.Now())
	assert.Equal(t, []core.GoalType{core.GoalAcceptPrayer}, achieved)
}
