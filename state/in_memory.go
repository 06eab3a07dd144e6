package state

import (
	"context"
	"sync"
	"time"

	"github.com/hupe1980/dialogmesh/core"
)

// InMemoryStore is a volatile StateStore implementation holding memory
// records in a process local map. It is safe for concurrent access and
// best suited for tests or ephemeral demo servers. Records are cloned on
// both Load and Save so callers never share mutable state with the store.
type InMemoryStore struct {
	mu     sync.RWMutex
	states map[string]*core.MemoryState
}

// NewInMemoryStore constructs an empty in-memory state store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{states: make(map[string]*core.MemoryState)}
}

// Load returns a clone of the stored record, or a fresh default record
// when the conversation is unknown. The fresh record is not stored until
// the first Save commits it.
func (s *InMemoryStore) Load(_ context.Context, conversationID string) (*core.MemoryState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if state, ok := s.states[conversationID]; ok {
		return state.Clone(), nil
	}

	return core.NewMemoryState(conversationID, time.Now()), nil
}

// Save stores a clone of the full record, replacing any previous version.
func (s *InMemoryStore) Save(_ context.Context, state *core.MemoryState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.states[state.ConversationID] = state.Clone()

	return nil
}
