// Package redis provides a Redis-backed StateStore. Each conversation is
// persisted as one JSON document under a prefixed key, so a Save is a
// single SET and commits the whole record atomically.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/dialogmesh/core"
	"github.com/redis/go-redis/v9"
)

// Store persists memory records in Redis.
type Store struct {
	client *redis.Client
	opts   Options
}

// Options configure a Store.
type Options struct {
	// KeyPrefix is prepended to every conversation id. Defaults to "dialogmesh:state:".
	KeyPrefix string

	// TTL expires idle conversations. Zero means no expiry.
	TTL time.Duration
}

// NewStore creates a Redis-backed state store on an existing client.
func NewStore(client *redis.Client, optFns ...func(o *Options)) *Store {
	opts := Options{
		KeyPrefix: "dialogmesh:state:",
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Store{client: client, opts: opts}
}

// Load fetches and decodes the record. A missing key or an undecodable
// payload yields a fresh default record; only transport errors propagate.
func (s *Store) Load(ctx context.Context, conversationID string) (*core.MemoryState, error) {
	payload, err := s.client.Get(ctx, s.key(conversationID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return core.NewMemoryState(conversationID, time.Now()), nil
		}

		return nil, fmt.Errorf("redis get: %w", err)
	}

	var state core.MemoryState
	if err := json.Unmarshal(payload, &state); err != nil {
		// Corrupt payload, start over rather than poisoning the turn.
		return core.NewMemoryState(conversationID, time.Now()), nil
	}

	state.ConversationID = conversationID
	state.Normalize()

	return &state, nil
}

// Save serializes the full record and overwrites the previous version.
func (s *Store) Save(ctx context.Context, state *core.MemoryState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	if err := s.client.Set(ctx, s.key(state.ConversationID), payload, s.opts.TTL).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}

func (s *Store) key(conversationID string) string {
	return s.opts.KeyPrefix + conversationID
}
