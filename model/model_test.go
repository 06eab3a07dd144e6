package model

import (
	"context"
	"testing"

	"github.com/hupe1980/dialogmesh/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockModel_CannedResponse(t *testing.T) {
	m := NewMockModel("test-model", "mock")
	m.AddResponse("hello", "hi there")

	respCh, errCh := m.Generate(context.Background(), Request{
		Messages: []core.Message{{Role: "user", Text: "hello"}},
	})
	final, err := Collect(context.Background(), respCh, errCh, nil)
	require.NoError(t, err)
	assert.Equal(t, "hi there", final.Text)
	assert.Equal(t, "stop", final.FinishReason)
}

func TestMockModel_StreamingEmitsChunks(t *testing.T) {
	m := NewMockModel("test-model", "mock")
	m.AddResponse("hello", "hi")

	respCh, errCh := m.Generate(context.Background(), Request{
		Messages: []core.Message{{Role: "user", Text: "hello"}},
		Stream:   true,
	})

	var chunks []string
	final, err := Collect(context.Background(), respCh, errCh, func(chunk string) {
		chunks = append(chunks, chunk)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"h", "i"}, chunks)
	assert.Equal(t, "hi", final.Text)
}

func TestMockModel_EmptyRequestFails(t *testing.T) {
	m := NewMockModel("test-model", "mock")

	respCh, errCh := m.Generate(context.Background(), Request{})
	_, err := Collect(context.Background(), respCh, errCh, nil)
	assert.Error(t, err)
}
