package script

import "github.com/hupe1980/dialogmesh/core"

// understoodThreshold is the understanding level below which the current
// question is repeated instead of advancing the script.
const understoodThreshold = 7

// defaultPacing maps each stage to the minimum number of free-flowing turns
// required between scripted questions, measured as
// messageCount - 2*len(questionsAsked).
var defaultPacing = map[core.Stage]int{
	core.StageIntroduction:    1,
	core.StageDifferentiation: 2,
	core.StageExploration:     2,
	core.StageCommitment:      3,
}

// Selection carries the per-turn inputs to SelectNext.
type Selection struct {
	Stage    core.Stage
	Audience core.Audience
	// QuestionsAsked is the conversation's asked-and-understood script IDs.
	QuestionsAsked []string
	// CurrentQuestionID is the script awaiting a response, empty when none.
	CurrentQuestionID string
	// LastUnderstanding is the previous turn's understanding score for the
	// current question; nil when no response has been scored yet.
	LastUnderstanding *int
	// MessageCount is the number of history messages before this turn.
	MessageCount int
}

// SelectorOptions configures a Selector.
type SelectorOptions struct {
	// Pacing overrides the per-stage spacing thresholds.
	Pacing map[core.Stage]int
}

// Selector picks the next scripted question for a turn. It is stateless
// beyond its immutable configuration and safe for concurrent use.
type Selector struct {
	bank   *Bank
	pacing map[core.Stage]int
}

// NewSelector creates a Selector over the given bank.
func NewSelector(bank *Bank, optFns ...func(o *SelectorOptions)) *Selector {
	opts := SelectorOptions{Pacing: defaultPacing}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Selector{bank: bank, pacing: opts.Pacing}
}

// SelectNext returns the script to surface this turn, or nil when the
// conversation should flow freely. The returned script's ID is never already
// in QuestionsAsked. Rules are evaluated in order; the first match wins:
//
//  1. No unasked scripts remain for (stage, audience): nil (script exhausted).
//  2. The current question scored below the understood threshold and is still
//     unasked: repeat it.
//  3. Stage introduction on the very first turn, or fewer than three messages
//     so far: force the first onboarding question.
//  4. Not enough free turns have elapsed since the last scripted question:
//     nil for this turn.
//  5. Otherwise: the next script in order.
func (s *Selector) SelectNext(sel Selection) *core.QuestionScript {
	available := s.bank.Available(sel.Stage, sel.Audience, sel.QuestionsAsked)
	if len(available) == 0 {
		return nil
	}

	if sel.CurrentQuestionID != "" && sel.LastUnderstanding != nil && *sel.LastUnderstanding < understoodThreshold {
		if !contains(sel.QuestionsAsked, sel.CurrentQuestionID) {
			if current, ok := s.bank.Get(sel.CurrentQuestionID); ok {
				return &current
			}
		}
	}

	if (sel.Stage == core.StageIntroduction && sel.MessageCount == 0) || sel.MessageCount < 3 {
		return &available[0]
	}

	elapsed := sel.MessageCount - 2*len(sel.QuestionsAsked)
	if elapsed < s.pacing[sel.Stage] {
		return nil
	}

	return &available[0]
}

func contains(ids []string, id string) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}
