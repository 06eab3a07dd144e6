package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryState_Defaults(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewMemoryState("conv-1", created)

	assert.Equal(t, "conv-1", s.ConversationID)
	assert.Equal(t, created, s.Created)
	assert.Equal(t, created, s.Updated)
	assert.Equal(t, ScoreDefault, s.ResistanceLevel)
	assert.Equal(t, ScoreDefault, s.OpennessScore)
	assert.Equal(t, StageIntroduction, s.Stage)
	assert.Empty(t, s.History)
	assert.Empty(t, s.QuestionsAsked)
	assert.Len(t, s.Goals, len(GoalTypes))
	for _, g := range s.Goals {
		assert.False(t, g.Achieved)
	}
}

func TestMemoryState_ScoresAlwaysClamped(t *testing.T) {
	s := NewMemoryState("conv-1", time.Now())

	updates := [][2]int{{0, 0}, {-5, 99}, {11, 10}, {3, -1}, {10, 11}, {7, 4}}
	for _, u := range updates {
		s.SetScores(u[0], u[1])
		assert.GreaterOrEqual(t, s.ResistanceLevel, ScoreMin)
		assert.LessOrEqual(t, s.ResistanceLevel, ScoreMax)
		assert.GreaterOrEqual(t, s.OpennessScore, ScoreMin)
		assert.LessOrEqual(t, s.OpennessScore, ScoreMax)
	}
	assert.Equal(t, 7, s.ResistanceLevel)
	assert.Equal(t, 4, s.OpennessScore)
}

func TestMemoryState_GoalAchievementIsMonotonic(t *testing.T) {
	s := NewMemoryState("conv-1", time.Now())
	first := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, s.AchieveGoal(GoalCommitVisitChurch, first))
	g, ok := s.Goal(GoalCommitVisitChurch)
	assert.True(t, ok)
	assert.True(t, g.Achieved)
	assert.Equal(t, first, *g.AchievedAt)

	// A second attempt neither flips the flag back nor moves the timestamp.
	assert.False(t, s.AchieveGoal(GoalCommitVisitChurch, first.Add(time.Hour)))
	g, _ = s.Goal(GoalCommitVisitChurch)
	assert.True(t, g.Achieved)
	assert.Equal(t, first, *g.AchievedAt)
}

func TestMemoryState_SetGoalKeepsOnePerType(t *testing.T) {
	s := NewMemoryState("conv-1", time.Now())
	s.SetGoal(GoalExpressDoubt, "updated description")

	count := 0
	for _, g := range s.Goals {
		if g.Type == GoalExpressDoubt {
			count++
			assert.Equal(t, "updated description", g.Description)
		}
	}
	assert.Equal(t, 1, count)
}

func TestMemoryState_QuestionsAskedNeverDuplicates(t *testing.T) {
	s := NewMemoryState("conv-1", time.Now())

	assert.True(t, s.MarkQuestionAsked("q1"))
	assert.True(t, s.MarkQuestionAsked("q2"))
	assert.False(t, s.MarkQuestionAsked("q1"))
	assert.Equal(t, []string{"q1", "q2"}, s.QuestionsAsked)
}

func TestMemoryState_StageNeverRegressesOrSkips(t *testing.T) {
	s := NewMemoryState("conv-1", time.Now())

	assert.False(t, s.AdvanceStage(StageExploration), "skipping a stage must be impossible")
	assert.Equal(t, StageIntroduction, s.Stage)

	assert.True(t, s.AdvanceStage(StageDifferentiation))
	assert.False(t, s.AdvanceStage(StageIntroduction), "regression must be impossible")
	assert.Equal(t, StageDifferentiation, s.Stage)

	assert.True(t, s.AdvanceStage(StageExploration))
	assert.True(t, s.AdvanceStage(StageCommitment))
	assert.False(t, s.AdvanceStage(StageCommitment))
	_, ok := s.Stage.Next()
	assert.False(t, ok, "commitment is terminal")
}

func TestMemoryState_ObjectionsDeduplicated(t *testing.T) {
	s := NewMemoryState("conv-1", time.Now())
	s.AddObjection("but my pastor says otherwise")
	s.AddObjection("but my pastor says otherwise")
	s.AddObjection("I disagree")

	assert.Equal(t, []string{"but my pastor says otherwise", "I disagree"}, s.Objections)
}

func TestMemoryState_RecordQuestionResponseClampsLevel(t *testing.T) {
	s := NewMemoryState("conv-1", time.Now())
	now := time.Now()

	s.RecordQuestionResponse("q1", "some answer", 42, now)
	assert.Equal(t, ScoreMax, s.QuestionResponses["q1"].UnderstandingLevel)

	s.RecordQuestionResponse("q1", "another answer", -3, now)
	assert.Equal(t, ScoreMin, s.QuestionResponses["q1"].UnderstandingLevel)
}

func TestMemoryState_CloneIsIndependent(t *testing.T) {
	s := NewMemoryState("conv-1", time.Now())
	s.AppendMessage("user", "hello", time.Now())
	s.TrackPosition("icons", Position{Belief: "icons are idolatry"}, time.Now())

	clone := s.Clone()
	clone.AppendMessage("assistant", "hi", time.Now())
	clone.TrackPosition("mary", Position{Belief: "veneration is wrong"}, time.Now())
	clone.MarkQuestionAsked("q1")

	assert.Len(t, s.History, 1)
	assert.Len(t, s.Positions, 1)
	assert.Empty(t, s.QuestionsAsked)
}

func TestMemoryState_NormalizeRepairsMalformedRecord(t *testing.T) {
	s := &MemoryState{ConversationID: "conv-1", ResistanceLevel: 99, Stage: Stage("bogus")}
	s.Normalize()

	assert.Equal(t, ScoreMax, s.ResistanceLevel)
	assert.Equal(t, ScoreMin, s.OpennessScore)
	assert.Equal(t, StageIntroduction, s.Stage)
	assert.NotNil(t, s.Positions)
	assert.NotNil(t, s.QuestionResponses)
	assert.Len(t, s.Goals, len(GoalTypes))
}

func TestStage_Ordering(t *testing.T) {
	for i, stage := range Stages {
		assert.Equal(t, i, stage.Index())
	}
	next, ok := StageIntroduction.Next()
	assert.True(t, ok)
	assert.Equal(t, StageDifferentiation, next)
}
