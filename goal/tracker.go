package goal

import (
	"regexp"
	"time"

	"github.com/hupe1980/dialogmesh/core"
)

// Rules map each goal type to a regular expression matched against the
// user's message (case-insensitively).
type Rules map[core.GoalType]string

// DefaultRules returns the built-in achievement patterns.
func DefaultRules() Rules {
	return Rules{
		core.GoalAcknowledgeOrthodox: `makes sense|good point|i see what you mean|that('s| is) (true|fair|right)|never thought (of|about) it that way`,
		core.GoalExpressDoubt:        `(not|never been|no longer) (so )?sure|start(ing)? to (doubt|question|wonder)|maybe (i was|we were|i('ve| have) been) wrong|what if (i|we)('m| am| are)? wrong`,
		core.GoalAcceptScripture:     `i('ll| will) read (it|that|the)|send me (the|that) (passage|verse|reading)|where (is|can i find) that (verse|passage)|i('d| would) like to read`,
		core.GoalRequestResources:    `send me|can you recommend|any (books|links|resources|videos)|where (can|do) i learn more|reading list`,
		core.GoalAcceptPrayer:        `pray for me|i('ll| will) pray|please pray|yes,? pray|would you pray`,
		core.GoalCommitVisitChurch:   `i('ll| will) (visit|come|attend|go)|see you (on )?sunday|i('m| am) coming (to|this)|count me in`,
	}
}

// Tracker evaluates goal achievement for a conversation.
type Tracker struct {
	patterns map[core.GoalType]*regexp.Regexp
}

// TrackerOptions configure a Tracker.
type TrackerOptions struct {
	Rules Rules
}

// NewTracker compiles the rule set. Patterns that fail to compile are
// skipped so a single bad rule never disables the rest.
func NewTracker(optFns ...func(o *TrackerOptions)) *Tracker {
	opts := TrackerOptions{
		Rules: DefaultRules(),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	patterns := make(map[core.GoalType]*regexp.Regexp, len(opts.Rules))

	for goalType, source := range opts.Rules {
		re, err := regexp.Compile(`(?i)` + source)
		if err != nil {
			continue
		}

		patterns[goalType] = re
	}

	return &Tracker{patterns: patterns}
}

// Evaluate tests the user's message against every goal that is still
// open and marks matches achieved on the state. It returns the goal
// types newly achieved this turn.
func (t *Tracker) Evaluate(state *core.MemoryState, userText string, now time.Time) []core.GoalType {
	var achieved []core.GoalType

	for _, g := range state.Goals {
		if g.Achieved {
			continue
		}

		re, ok := t.patterns[g.Type]
		if !ok {
			continue
		}

		if !re.MatchString(userText) {
			continue
		}

		if state.AchieveGoal(g.Type, now) {
			achieved = append(achieved, g.Type)
		}
	}

	return achieved
}
