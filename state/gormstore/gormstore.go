// Package gormstore provides a SQL-backed StateStore built on GORM. The
// full memory record is stored as one JSON column per conversation and
// written with an upsert, so each Save commits the whole record in a
// single statement. Works with any GORM dialect; SQLite and Postgres are
// the tested ones.
package gormstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/dialogmesh/core"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// record is the persisted row shape.
type record struct {
	ConversationID string         `gorm:"primaryKey;column:conversation_id"`
	State          datatypes.JSON `gorm:"column:state"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`
}

func (record) TableName() string { return "conversation_states" }

// Store persists memory records in a relational database via GORM.
type Store struct {
	db *gorm.DB
}

// NewStore creates the store and migrates its table.
func NewStore(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, fmt.Errorf("migrate conversation_states: %w", err)
	}

	return &Store{db: db}, nil
}

// Load fetches and decodes the record. A missing row or an undecodable
// payload yields a fresh default record; only database errors propagate.
func (s *Store) Load(ctx context.Context, conversationID string) (*core.MemoryState, error) {
	var row record

	err := s.db.WithContext(ctx).First(&row, "conversation_id = ?", conversationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.NewMemoryState(conversationID, time.Now()), nil
		}

		return nil, fmt.Errorf("load state: %w", err)
	}

	var state core.MemoryState
	if err := json.Unmarshal(row.State, &state); err != nil {
		return core.NewMemoryState(conversationID, time.Now()), nil
	}

	state.ConversationID = conversationID
	state.Normalize()

	return &state, nil
}

// Save serializes the full record and upserts it.
func (s *Store) Save(ctx context.Context, state *core.MemoryState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	row := record{
		ConversationID: state.ConversationID,
		State:          datatypes.JSON(payload),
		UpdatedAt:      time.Now(),
	}

	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "conversation_id"}},
			UpdateAll: true,
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}

	return nil
}
