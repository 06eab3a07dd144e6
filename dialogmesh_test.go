package dialogmesh

import (
	"context"
	"testing"

	"github.com/hupe1980/dialogmesh/core"
	"github.com/hupe1980/dialogmesh/model"
	"github.com/hupe1980/dialogmesh/understanding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChat_RoundTrip(t *testing.T) {
	mesh := New(model.NewMockModel("mock", "test"), func(o *Options) {
		o.Evaluator = understanding.EvaluatorFunc(func(context.Context, string, string, string) (int, error) {
			return 8, nil
		})
	})

	result, err := mesh.Chat(context.Background(), "conv-1", "catholic", "hello")
	require.NoError(t, err)
	assert.Equal(t, "Mock response to: hello", result.Reply)
	assert.Equal(t, core.StageIntroduction, result.Stage)

	st, err := mesh.State(context.Background(), "conv-1")
	require.NoError(t, err)
	assert.Equal(t, 2, st.MessageCount())
}

func TestChat_UnknownAudienceFallsBack(t *testing.T) {
	mesh := New(model.NewMockModel("mock", "test"), func(o *Options) {
		o.Evaluator = understanding.EvaluatorFunc(func(context.Context, string, string, string) (int, error) {
			return 5, nil
		})
	})

	result, err := mesh.Chat(context.Background(), "conv-1", "martian", "hello")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Reply)
}
