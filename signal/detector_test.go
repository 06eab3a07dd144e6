package signal

import (
	"testing"
	"time"

	"github.com/hupe1980/dialogmesh/core"
	"github.com/stretchr/testify/assert"
)

func TestDetector_ObjectionsRecordRawText(t *testing.T) {
	d := NewDetector()
	s := core.NewMemoryState("conv-1", time.Now())

	d.DetectObjections("But my pastor says the saints cannot hear us", s)
	assert.Equal(t, []string{"But my pastor says the saints cannot hear us"}, s.Objections)

	// Same text again is not duplicated.
	d.DetectObjections("But my pastor says the saints cannot hear us", s)
	assert.Len(t, s.Objections, 1)
}

func TestDetector_NoMatchIsNotAnError(t *testing.T) {
	d := NewDetector()
	s := core.NewMemoryState("conv-1", time.Now())

	d.DetectObjections("that sounds lovely, tell me more", s)
	assert.Empty(t, s.Objections)
}

func TestDetector_SensitivityRequiresPrecedingTopic(t *testing.T) {
	d := NewDetector()
	s := core.NewMemoryState("conv-1", time.Now())

	d.DetectSensitivity("I find that quite judgmental", "", s)
	assert.Empty(t, s.SensitiveTopics)

	d.DetectSensitivity("I find that quite judgmental", "mary", s)
	assert.Equal(t, []string{"mary"}, s.SensitiveTopics)

	d.DetectSensitivity("honestly this feels pushy", "mary", s)
	assert.Len(t, s.SensitiveTopics, 1, "topic is recorded once")
}

func TestDetector_CustomRules(t *testing.T) {
	d := NewDetector(func(o *Options) {
		o.Rules = Rules{ObjectionPatterns: []string{`\bnein\b`}}
	})
	s := core.NewMemoryState("conv-1", time.Now())

	d.DetectObjections("Nein, das stimmt nicht", s)
	assert.Len(t, s.Objections, 1)
}
