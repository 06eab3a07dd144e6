package understanding

import (
	"context"
	"errors"
	"testing"

	"github.com/hupe1980/dialogmesh/core"
	"github.com/hupe1980/dialogmesh/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// replyModel always answers with a fixed text.
type replyModel struct{ text string }

func (m *replyModel) Generate(_ context.Context, _ model.Request) (<-chan model.Response, <-chan error) {
	respCh := make(chan model.Response, 1)
	errCh := make(chan error, 1)
	respCh <- model.Response{Text: m.text, FinishReason: "stop"}
	close(respCh)
	close(errCh)
	return respCh, errCh
}

func (m *replyModel) Info() model.Info { return model.Info{Name: "reply", Provider: "test"} }

func TestModelEvaluator_ParsesInteger(t *testing.T) {
	ev := NewModelEvaluator(&replyModel{text: "8"})

	level, err := ev.Evaluate(context.Background(), "q", "a", "r")
	require.NoError(t, err)
	assert.Equal(t, 8, level)
}

func TestModelEvaluator_ClampsOutOfRange(t *testing.T) {
	ev := NewModelEvaluator(&replyModel{text: "I'd say 15 out of 10"})

	level, err := ev.Evaluate(context.Background(), "q", "a", "r")
	require.NoError(t, err)
	assert.Equal(t, core.ScoreMax, level)
}

func TestModelEvaluator_NoNumberIsAnError(t *testing.T) {
	ev := NewModelEvaluator(&replyModel{text: "they engaged thoughtfully"})

	_, err := ev.Evaluate(context.Background(), "q", "a", "r")
	assert.Error(t, err)
}

func TestScore_DefaultsOnFailure(t *testing.T) {
	failing := EvaluatorFunc(func(context.Context, string, string, string) (int, error) {
		return 0, errors.New("collaborator down")
	})
	assert.Equal(t, core.ScoreDefault, Score(context.Background(), failing, "q", "a", "r"))
	assert.Equal(t, core.ScoreDefault, Score(context.Background(), nil, "q", "a", "r"))
}

func TestScore_ClampsSuccessValues(t *testing.T) {
	tooHigh := EvaluatorFunc(func(context.Context, string, string, string) (int, error) {
		return 42, nil
	})
	assert.Equal(t, core.ScoreMax, Score(context.Background(), tooHigh, "q", "a", "r"))
}

func TestIsReady(t *testing.T) {
	// Below three questions asked the bar is 8.
	assert.False(t, IsReady(7, 0))
	assert.True(t, IsReady(8, 2))
	// From three on the bar drops to 7.
	assert.True(t, IsReady(7, 3))
	assert.False(t, IsReady(6, 9))
}
