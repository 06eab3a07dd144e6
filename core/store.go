package core

import "context"

// StateStore persists conversation records as a whole. Implementations must
// provide whole-record semantics only: Load returns the full record (or a
// fresh default when nothing usable is stored) and Save replaces it
// atomically. No partial-field writes are ever visible to subsequent turns.
type StateStore interface {
	// Load returns the state for the conversation. A missing or malformed
	// record yields a fresh default state, never an error.
	Load(ctx context.Context, conversationID string) (*MemoryState, error)
	// Save replaces the stored record with the given state.
	Save(ctx context.Context, state *MemoryState) error
}
