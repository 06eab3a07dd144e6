package command

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/hupe1980/dialogmesh/core"
	"github.com/hupe1980/dialogmesh/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toolCall(name, args string) model.ToolCall {
	return model.ToolCall{
		ID:   "call-1",
		Type: "function",
		Function: model.ToolCallFunction{
			Name:      name,
			Arguments: json.RawMessage(args),
		},
	}
}

func TestParse_TrackPosition(t *testing.T) {
	cmd, err := Parse(toolCall(NameTrackPosition, `{"topic":"icons","belief":"icons are idolatry","challenged":true}`))
	require.NoError(t, err)

	tp, ok := cmd.(TrackPosition)
	require.True(t, ok)
	assert.Equal(t, "icons", tp.Topic)
	assert.True(t, tp.Challenged)
	assert.False(t, tp.Conceded)
}

func TestParse_UnknownTool(t *testing.T) {
	_, err := Parse(toolCall("delete_everything", `{}`))
	assert.Error(t, err)
}

func TestParse_MalformedArguments(t *testing.T) {
	_, err := Parse(toolCall(NameAssessReadiness, `{"level":`))
	assert.Error(t, err)
}

func TestParse_MissingRequiredField(t *testing.T) {
	_, err := Parse(toolCall(NameAssessReadiness, `{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required field is missing")

	_, err = Parse(toolCall(NameTrackPosition, `{"topic":"icons"}`))
	assert.Error(t, err, "belief carries no omitempty and is required")

	// Optional fields may stay absent.
	_, err = Parse(toolCall(NameSetGoal, `{"type":"accept_prayer"}`))
	assert.NoError(t, err)
}

func TestParse_WrongArgumentType(t *testing.T) {
	_, err := Parse(toolCall(NameAssessReadiness, `{"level":"very high"}`))
	assert.Error(t, err)
}

func TestApply_TrackPosition(t *testing.T) {
	state := core.NewMemoryState("conv", time.Now())
	d := NewDispatcher()

	now := time.Now()
	err := d.Apply(state, TrackPosition{Topic: "mary", Belief: "veneration is worship", Challenged: true}, now)
	require.NoError(t, err)

	p, ok := state.Positions["mary"]
	require.True(t, ok)
	assert.Equal(t, "veneration is worship", p.Belief)
	assert.NotNil(t, p.LastChallengedAt)
}

func TestApply_TrackPositionRequiresTopic(t *testing.T) {
	state := core.NewMemoryState("conv", time.Now())
	err := NewDispatcher().Apply(state, TrackPosition{Belief: "stray"}, time.Now())
	assert.Error(t, err)
}

func TestApply_AssessReadinessClampsOpenness(t *testing.T) {
	state := core.NewMemoryState("conv", time.Now())
	d := NewDispatcher()

	require.NoError(t, d.Apply(state, AssessReadiness{Level: 42}, time.Now()))
	assert.Equal(t, core.ScoreMax, state.OpennessScore)

	require.NoError(t, d.Apply(state, AssessReadiness{Level: -3}, time.Now()))
	assert.Equal(t, core.ScoreMin, state.OpennessScore)
}

func TestApply_SetGoal(t *testing.T) {
	state := core.NewMemoryState("conv", time.Now())
	d := NewDispatcher()

	err := d.Apply(state, SetGoal{Type: "accept_prayer", Description: "offer to pray together"}, time.Now())
	require.NoError(t, err)

	g, ok := state.Goal(core.GoalAcceptPrayer)
	require.True(t, ok)
	assert.Equal(t, "offer to pray together", g.Description)
	assert.NotNil(t, g.AttemptedAt)
	assert.False(t, g.Achieved)
}

func TestApply_SetGoalRejectsUnknownType(t *testing.T) {
	state := core.NewMemoryState("conv", time.Now())
	err := NewDispatcher().Apply(state, SetGoal{Type: "world_domination"}, time.Now())
	assert.Error(t, err)
}

func TestDefinitions_CoverAllTools(t *testing.T) {
	defs := Definitions()
	require.Len(t, defs, 3)

	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, def.Function.Name)
		assert.Equal(t, "function", def.Type)
		assert.NotEmpty(t, def.Function.Parameters["properties"])
	}

	assert.ElementsMatch(t, []string{NameTrackPosition, NameAssessReadiness, NameSetGoal}, names)
}
