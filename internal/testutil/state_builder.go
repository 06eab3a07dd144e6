package testutil

import (
	"time"

	"github.com/hupe1980/dialogmesh/core"
)

// StateBuilder helps construct memory states with fluent chaining for tests.
// Example:
//
//	state := NewStateBuilder("conv-1").Scores(2, 9).Stage(core.StageExploration).Build()
type StateBuilder struct {
	state *core.MemoryState
}

// NewStateBuilder creates a new builder seeded with a default state for
// the given conversation id. Use chainable methods then call Build.
func NewStateBuilder(conversationID string) *StateBuilder {
	return &StateBuilder{state: core.NewMemoryState(conversationID, time.Now())}
}

// Scores sets resistance and openness (chainable).
func (b *StateBuilder) Scores(resistance, openness int) *StateBuilder {
	b.state.SetScores(resistance, openness)
	return b
}

// Stage forces the conversation stage without going through progression (chainable).
func (b *StateBuilder) Stage(stage core.Stage) *StateBuilder {
	b.state.Stage = stage
	return b
}

// Message appends a history entry (chainable).
func (b *StateBuilder) Message(role, text string) *StateBuilder {
	b.state.AppendMessage(role, text, time.Now())
	return b
}

// Asked marks question ids as already asked (chainable).
func (b *StateBuilder) Asked(ids ...string) *StateBuilder {
	for _, id := range ids {
		b.state.MarkQuestionAsked(id)
	}

	return b
}

// CurrentQuestion sets the question currently awaiting understanding (chainable).
func (b *StateBuilder) CurrentQuestion(id string) *StateBuilder {
	b.state.SetCurrentQuestion(id, time.Now())
	return b
}

// Response records an understanding score for a question (chainable).
func (b *StateBuilder) Response(questionID, text string, level int) *StateBuilder {
	b.state.RecordQuestionResponse(questionID, text, level, time.Now())
	return b
}

// Build returns the assembled *core.MemoryState.
func (b *StateBuilder) Build() *core.MemoryState {
	return b.state
}
