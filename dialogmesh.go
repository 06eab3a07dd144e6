// Package dialogmesh provides a high-level façade over the turn engine
// and its collaborators (state stores, question bank, tactical analyzer &
// logging) enabling rapid construction of guided dialogue applications.
// Most applications interact with this package by:
//  1. Creating a DialogMesh via New() with a text-generation model
//     (optionally overriding the default in-memory state store)
//  2. Calling Chat per incoming user message, or ChatStream for
//     chunk-by-chunk delivery
//
// The façade delegates orchestration to engine.Engine while keeping setup
// and usage ergonomics concise. All defaults are safe for local
// development and testing; production deployments typically supply a
// durable state store and a structured logger.
package dialogmesh

import (
	"context"

	"github.com/hupe1980/dialogmesh/core"
	"github.com/hupe1980/dialogmesh/engine"
	"github.com/hupe1980/dialogmesh/logging"
	"github.com/hupe1980/dialogmesh/model"
	"github.com/hupe1980/dialogmesh/script"
	"github.com/hupe1980/dialogmesh/state"
	"github.com/hupe1980/dialogmesh/understanding"
)

// Options configures the DialogMesh instance.
type Options struct {
	// StateStore persists conversation memory. Defaults to an in-memory
	// implementation if not provided.
	StateStore core.StateStore

	// Bank is the scripted question catalog. Defaults to the built-in catalog.
	Bank *script.Bank

	// Evaluator scores understanding of scripted questions. Defaults to
	// a model-backed evaluator on the same model used for replies.
	Evaluator understanding.Evaluator

	// Persona overrides the leading system directive template.
	Persona string

	// Logger (defaults to a JSON slog logger if nil).
	Logger *logging.DialogLogger

	// Hooks are optional turn lifecycle callbacks.
	Hooks engine.Hooks
}

// DialogMesh is the high-level façade aggregating the underlying engine
// and its collaborators.
type DialogMesh struct {
	opts   Options
	engine *engine.Engine
}

// New creates a new DialogMesh instance around the given model with
// optional overrides. Any unset collaborator is initialized with its
// built-in default.
func New(m model.Model, optFns ...func(o *Options)) *DialogMesh {
	opts := Options{
		StateStore: state.NewInMemoryStore(),
		Bank:       script.NewBank(),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	eng := engine.New(m, func(o *engine.Options) {
		o.Store = opts.StateStore
		o.Bank = opts.Bank
		o.Evaluator = opts.Evaluator
		o.Hooks = opts.Hooks

		if opts.Persona != "" {
			o.Persona = opts.Persona
		}

		if opts.Logger != nil {
			o.Logger = opts.Logger
		}
	})

	return &DialogMesh{opts: opts, engine: eng}
}

// Chat processes one user message for a conversation and returns the
// reply plus the updated public conversation view. The audience tag is
// parsed leniently; unknown values fall back to the generic seeker
// profile.
func (m *DialogMesh) Chat(ctx context.Context, conversationID, audience, userText string) (*engine.TurnResult, error) {
	return m.engine.ProcessTurn(ctx, conversationID, core.ParseAudience(audience), userText)
}

// ChatStream behaves like Chat but forwards reply chunks to onChunk as
// they arrive from the model.
func (m *DialogMesh) ChatStream(ctx context.Context, conversationID, audience, userText string, onChunk func(string)) (*engine.TurnResult, error) {
	return m.engine.ProcessTurnStream(ctx, conversationID, core.ParseAudience(audience), userText, onChunk)
}

// State returns the current persisted memory record for a conversation,
// or a fresh default record when none exists yet.
func (m *DialogMesh) State(ctx context.Context, conversationID string) (*core.MemoryState, error) {
	return m.opts.StateStore.Load(ctx, conversationID)
}
