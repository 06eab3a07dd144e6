package redis

import (
	"testing"

	"github.com/hupe1980/dialogmesh/core"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

var _ core.StateStore = (*Store)(nil)

func TestNewStore_Defaults(t *testing.T) {
	store := NewStore(goredis.NewClient(&goredis.Options{}))

	assert.Equal(t, "dialogmesh:state:conv-1", store.key("conv-1"))
	assert.Zero(t, store.opts.TTL)
}

func TestNewStore_CustomPrefix(t *testing.T) {
	store := NewStore(goredis.NewClient(&goredis.Options{}), func(o *Options) {
		o.KeyPrefix = "dlg:"
	})

	assert.Equal(t, "dlg:conv-1", store.key("conv-1"))
}
