package progress

import (
	"strings"

	"github.com/hupe1980/dialogmesh/core"
)

// Rules hold the per-stage transition criteria. A stage absent from both
// maps never progresses, which is how the terminal stage is expressed.
type Rules struct {
	// Gates is the minimum message count before a stage may advance.
	Gates map[core.Stage]int

	// Indicators are lower-cased substrings that signal readiness to move
	// on. At least one must appear in the user's message.
	Indicators map[core.Stage][]string
}

// DefaultRules returns the built-in gates and indicator phrases.
func DefaultRules() Rules {
	return Rules{
		Gates: map[core.Stage]int{
			core.StageIntroduction:    3,
			core.StageDifferentiation: 8,
			core.StageExploration:     15,
		},
		Indicators: map[core.Stage][]string{
			core.StageIntroduction: {
				"tell me more",
				"explain",
				"what is",
				"difference",
				"compare",
			},
			core.StageDifferentiation: {
				"makes sense",
				"i see",
				"interesting",
				"never knew",
				"go deeper",
				"why do you",
			},
			core.StageExploration: {
				"what should i",
				"how do i",
				"can i visit",
				"where is",
				"i want to",
				"convinced",
			},
		},
	}
}

// Machine evaluates forward-only stage transitions.
type Machine struct {
	rules Rules
}

// MachineOptions configure a Machine.
type MachineOptions struct {
	Rules Rules
}

// NewMachine creates a stage progression machine.
func NewMachine(optFns ...func(o *MachineOptions)) *Machine {
	opts := MachineOptions{
		Rules: DefaultRules(),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Machine{rules: opts.Rules}
}

// ShouldProgress reports whether the conversation is ready to leave the
// given stage. The message-count gate must be met and the user's text must
// contain at least one progression indicator. The terminal stage always
// returns false.
func (m *Machine) ShouldProgress(stage core.Stage, messageCount int, messageText string) bool {
	gate, ok := m.rules.Gates[stage]
	if !ok {
		return false
	}

	if messageCount < gate {
		return false
	}

	lowered := strings.ToLower(messageText)

	for _, indicator := range m.rules.Indicators[stage] {
		if strings.Contains(lowered, indicator) {
			return true
		}
	}

	return false
}
