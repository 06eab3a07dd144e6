package gormstore

import (
	"context"
	"testing"
	"time"

	"github.com/hupe1980/dialogmesh/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ core.StateStore = (*Store)(nil)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	store, err := NewStore(db)
	require.NoError(t, err)

	return store
}

func TestStore_LoadUnknownReturnsDefault(t *testing.T) {
	store := newTestStore(t)

	state, err := store.Load(context.Background(), "conv-1")
	require.NoError(t, err)
	assert.Equal(t, "conv-1", state.ConversationID)
	assert.Equal(t, core.StageIntroduction, state.Stage)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	state := core.NewMemoryState("conv-2", time.Now())
	state.SetScores(2, 9)
	state.AppendMessage("user", "hello", time.Now())
	state.MarkQuestionAsked("intro_background")
	require.NoError(t, store.Save(context.Background(), state))

	loaded, err := store.Load(context.Background(), "conv-2")
	require.NoError(t, err)
	assert.Equal(t, 9, loaded.OpennessScore)
	assert.Equal(t, 1, loaded.MessageCount())
	assert.True(t, loaded.HasAskedQuestion("intro_background"))
}

func TestStore_SaveOverwritesPreviousVersion(t *testing.T) {
	store := newTestStore(t)

	state := core.NewMemoryState("conv-3", time.Now())
	require.NoError(t, store.Save(context.Background(), state))

	state.SetScores(1, 10)
	require.NoError(t, store.Save(context.Background(), state))

	loaded, err := store.Load(context.Background(), "conv-3")
	require.NoError(t, err)
	assert.Equal(t, 10, loaded.OpennessScore)
}
