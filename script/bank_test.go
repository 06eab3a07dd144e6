package script

import (
	"strings"
	"testing"

	"github.com/hupe1980/dialogmesh/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBank_QuerySortsByOrder(t *testing.T) {
	bank := NewBank()

	result := bank.Query(core.StageIntroduction, core.AudienceAtheist)
	require.NotEmpty(t, result)
	for i := 1; i < len(result); i++ {
		assert.LessOrEqual(t, result[i-1].Order, result[i].Order)
	}
}

func TestBank_WildcardAndTargetedTags(t *testing.T) {
	bank := NewBank()

	atheist := bank.Query(core.StageIntroduction, core.AudienceAtheist)
	catholic := bank.Query(core.StageIntroduction, core.AudienceCatholic)

	// The atheist-specific onboarding question only shows for atheists/agnostics.
	assert.True(t, containsID(atheist, "intro_atheist_meaning"))
	assert.False(t, containsID(catholic, "intro_atheist_meaning"))
	// Wildcard scripts show for everyone.
	assert.True(t, containsID(atheist, "intro_background"))
	assert.True(t, containsID(catholic, "intro_background"))
}

func TestBank_DuplicateIDsKeepFirst(t *testing.T) {
	bank := NewBank(func(o *Options) {
		o.Catalog = []core.QuestionScript{
			{ID: "dup", Stage: core.StageIntroduction, Audiences: []core.Audience{core.AudienceAll}, Question: "first", Order: 10},
			{ID: "dup", Stage: core.StageIntroduction, Audiences: []core.Audience{core.AudienceAll}, Question: "second", Order: 20},
		}
	})
	assert.Equal(t, 1, bank.Size())
	q, ok := bank.Get("dup")
	require.True(t, ok)
	assert.Equal(t, "first", q.Question)
}

func TestFormatQuestionContext_PredefinedAnswersWin(t *testing.T) {
	bank := NewBank()
	q, ok := bank.Get("intro_background")
	require.True(t, ok)

	block := bank.FormatQuestionContext(&q, nil, core.StageIntroduction, core.AudienceBaptist)

	assert.Contains(t, block, q.Question)
	assert.Contains(t, block, "SUGGESTED REPLY OPTIONS")
	// Seven predefined answers are capped at five.
	assert.Equal(t, 5, strings.Count(block, "\n- "))
}

func TestFormatQuestionContext_FallsBackToTalkingPoints(t *testing.T) {
	bank := NewBank()
	q, ok := bank.Get("intro_drew_you") // no predefined answers
	require.True(t, ok)

	block := bank.FormatQuestionContext(&q, nil, core.StageIntroduction, core.AudienceCatholic)

	assert.Contains(t, block, "UPCOMING TALKING POINTS")
	assert.NotContains(t, block, q.Question+"\n- ", "the selected question is not its own talking point")
}

func TestFormatQuestionContext_ExhaustedScriptSaysImprovise(t *testing.T) {
	bank := NewBank(func(o *Options) {
		o.Catalog = []core.QuestionScript{
			{ID: "only", Stage: core.StageCommitment, Audiences: []core.Audience{core.AudienceAll}, Question: "last one", Order: 10},
		}
	})

	block := bank.FormatQuestionContext(nil, []string{"only"}, core.StageCommitment, core.AudienceSeeker)

	assert.Contains(t, block, "exhausted")
	assert.Contains(t, block, "Improvise")
}

func containsID(scripts []core.QuestionScript, id string) bool {
	for _, q := range scripts {
		if q.ID == id {
			return true
		}
	}
	return false
}
