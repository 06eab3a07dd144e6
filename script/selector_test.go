package script

import (
	"testing"

	"github.com/hupe1980/dialogmesh/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestSelector_FirstTurnReturnsLowestOrderOnboarding(t *testing.T) {
	bank := NewBank()
	sel := NewSelector(bank)

	q := sel.SelectNext(Selection{
		Stage:        core.StageIntroduction,
		Audience:     core.AudienceCatholic,
		MessageCount: 0,
	})

	require.NotNil(t, q)
	assert.Equal(t, "intro_background", q.ID)
	assert.True(t, q.AppliesTo(core.AudienceCatholic))
}

func TestSelector_RepeatsQuestionUntilUnderstood(t *testing.T) {
	bank := NewBank(func(o *Options) {
		o.Catalog = []core.QuestionScript{
			{ID: "q5", Stage: core.StageDifferentiation, Audiences: []core.Audience{core.AudienceAll}, Order: 10},
			{ID: "q6", Stage: core.StageDifferentiation, Audiences: []core.Audience{core.AudienceAll}, Order: 20},
		}
	})
	sel := NewSelector(bank)

	q := sel.SelectNext(Selection{
		Stage:             core.StageDifferentiation,
		Audience:          core.AudienceBaptist,
		QuestionsAsked:    []string{},
		CurrentQuestionID: "q5",
		LastUnderstanding: intPtr(4),
		MessageCount:      12,
	})

	require.NotNil(t, q)
	assert.Equal(t, "q5", q.ID, "a poorly understood question is repeated")
}

func TestSelector_DoesNotRepeatOnceAsked(t *testing.T) {
	bank := NewBank(func(o *Options) {
		o.Catalog = []core.QuestionScript{
			{ID: "q5", Stage: core.StageDifferentiation, Audiences: []core.Audience{core.AudienceAll}, Order: 10},
			{ID: "q6", Stage: core.StageDifferentiation, Audiences: []core.Audience{core.AudienceAll}, Order: 20},
		}
	})
	sel := NewSelector(bank)

	q := sel.SelectNext(Selection{
		Stage:             core.StageDifferentiation,
		Audience:          core.AudienceBaptist,
		QuestionsAsked:    []string{"q5"},
		CurrentQuestionID: "q5",
		LastUnderstanding: intPtr(4),
		MessageCount:      12,
	})

	require.NotNil(t, q)
	assert.Equal(t, "q6", q.ID)
}

func TestSelector_NeverReturnsAskedQuestion(t *testing.T) {
	bank := NewBank()
	sel := NewSelector(bank)

	asked := []string{}
	for messageCount := 0; messageCount < 60; messageCount += 2 {
		for _, stage := range core.Stages {
			q := sel.SelectNext(Selection{
				Stage:          stage,
				Audience:       core.AudienceProtestant,
				QuestionsAsked: asked,
				MessageCount:   messageCount,
			})
			if q == nil {
				continue
			}
			for _, id := range asked {
				assert.NotEqual(t, id, q.ID)
			}
			asked = append(asked, q.ID)
		}
	}
}

func TestSelector_ExhaustedScriptYieldsNil(t *testing.T) {
	bank := NewBank(func(o *Options) {
		o.Catalog = []core.QuestionScript{
			{ID: "only", Stage: core.StageCommitment, Audiences: []core.Audience{core.AudienceAll}, Order: 10},
		}
	})
	sel := NewSelector(bank)

	q := sel.SelectNext(Selection{
		Stage:          core.StageCommitment,
		Audience:       core.AudienceSeeker,
		QuestionsAsked: []string{"only"},
		MessageCount:   50,
	})
	assert.Nil(t, q, "free-flow mode once the script is exhausted")
}

func TestSelector_PacingHoldsQuestionsBack(t *testing.T) {
	bank := NewBank(func(o *Options) {
		o.Catalog = []core.QuestionScript{
			{ID: "a", Stage: core.StageCommitment, Audiences: []core.Audience{core.AudienceAll}, Order: 10},
			{ID: "b", Stage: core.StageCommitment, Audiences: []core.Audience{core.AudienceAll}, Order: 20},
		}
	})
	sel := NewSelector(bank)

	// Commitment pacing is 3: with 1 question asked and 4 messages the
	// elapsed count is 4-2*1 = 2, so the selector stays quiet.
	q := sel.SelectNext(Selection{
		Stage:          core.StageCommitment,
		Audience:       core.AudienceSeeker,
		QuestionsAsked: []string{"a"},
		MessageCount:   4,
	})
	assert.Nil(t, q)

	// One more exchange and the next script comes due.
	q = sel.SelectNext(Selection{
		Stage:          core.StageCommitment,
		Audience:       core.AudienceSeeker,
		QuestionsAsked: []string{"a"},
		MessageCount:   5,
	})
	require.NotNil(t, q)
	assert.Equal(t, "b", q.ID)
}

func TestSelector_EarlyConversationForcesScript(t *testing.T) {
	bank := NewBank()
	sel := NewSelector(bank)

	q := sel.SelectNext(Selection{
		Stage:        core.StageIntroduction,
		Audience:     core.AudienceAtheist,
		MessageCount: 2,
	})
	require.NotNil(t, q, "fewer than three messages always surfaces a script")
}
