package tactic

import (
	"regexp"
	"sort"

	"github.com/hupe1980/dialogmesh/core"
)

// escalationChain orders the tactics doubt escalates through; attack sits
// outside the chain and is left untouched by the doubt override.
var escalationChain = []core.Tactic{core.TacticSoften, core.TacticProbe, core.TacticPresent, core.TacticPressure}

// classification is the per-message signal set feeding tactic selection.
type classification struct {
	IsQuestioning bool
	IsDefensive   bool
	ShowsDoubt    bool
	ShowsInterest bool
	Topics        []string
}

// Options configures an Analyzer.
type Options struct {
	Rules Rules
}

// Analyzer computes tactical recommendations. It carries only compiled,
// immutable rule tables and is safe for concurrent use across conversations.
type Analyzer struct {
	rules       Rules
	questioning []*regexp.Regexp
	defensive   []*regexp.Regexp
	doubt       []*regexp.Regexp
	interest    []*regexp.Regexp
	topicOrder  []string
	topics      map[string][]*regexp.Regexp
}

// NewAnalyzer compiles the rule tables into an Analyzer. Invalid patterns in
// custom rule sets are skipped rather than failing construction.
func NewAnalyzer(optFns ...func(o *Options)) *Analyzer {
	opts := Options{Rules: DefaultRules()}
	for _, fn := range optFns {
		fn(&opts)
	}

	a := &Analyzer{
		rules:       opts.Rules,
		questioning: compile(opts.Rules.QuestioningPatterns),
		defensive:   compile(opts.Rules.DefensivePatterns),
		doubt:       compile(opts.Rules.DoubtPatterns),
		interest:    compile(opts.Rules.InterestPatterns),
		topics:      map[string][]*regexp.Regexp{},
	}
	for topic, patterns := range opts.Rules.TopicPatterns {
		a.topicOrder = append(a.topicOrder, topic)
		a.topics[topic] = compile(patterns)
	}
	// Stable topic iteration keeps Analyze deterministic.
	sort.Strings(a.topicOrder)
	return a
}

// Analyze derives a Recommendation from the user text, current memory and
// audience. It is a pure function of its inputs: identical arguments always
// yield the identical Recommendation.
func (a *Analyzer) Analyze(userText string, state *core.MemoryState, audience core.Audience) core.Recommendation {
	c := a.classify(userText)

	rec := a.baseCase(c, state)
	a.escalate(&rec, c)

	rec.TopicsToAddress = a.buildTopics(c, audience)
	rec.QuestionsToAsk = a.buildQuestions(audience, rec.Tactic)
	rec.Reasoning = a.rules.Reasonings[rec.Tactic]
	rec.SuggestedApproach = a.buildApproach(rec.Tactic, audience)

	return rec
}

// classify runs the independent pattern lists over the message. Matching is
// order-independent; a message may trigger several booleans at once.
func (a *Analyzer) classify(text string) classification {
	c := classification{
		IsQuestioning: matchAny(a.questioning, text),
		IsDefensive:   matchAny(a.defensive, text),
		ShowsDoubt:    matchAny(a.doubt, text),
		ShowsInterest: matchAny(a.interest, text),
	}
	for _, topic := range a.topicOrder {
		if matchAny(a.topics[topic], text) {
			c.Topics = append(c.Topics, topic)
		}
	}
	return c
}

// baseCase picks the initial tactic from the persuasion scores. The rules are
// evaluated in priority order; the first match wins.
func (a *Analyzer) baseCase(c classification, state *core.MemoryState) core.Recommendation {
	switch {
	case state.OpennessScore >= 8:
		return core.Recommendation{Tactic: core.TacticPressure, Intensity: 9}
	case state.OpennessScore >= 6:
		return core.Recommendation{Tactic: core.TacticPresent, Intensity: 7}
	case c.IsQuestioning && state.ResistanceLevel < 7:
		return core.Recommendation{Tactic: core.TacticProbe, Intensity: 6}
	case state.ResistanceLevel >= 8 || c.IsDefensive:
		return core.Recommendation{Tactic: core.TacticSoften, Intensity: 3}
	case state.ResistanceLevel >= 6:
		return core.Recommendation{Tactic: core.TacticAttack, Intensity: 8}
	default:
		return core.Recommendation{Tactic: core.TacticProbe, Intensity: 5}
	}
}

// escalate applies the overrides after the base case, each independently and
// in order. Interest deliberately forces present even over pressure or
// soften; that asymmetry is part of the heuristic.
func (a *Analyzer) escalate(rec *core.Recommendation, c classification) {
	if c.ShowsDoubt {
		rec.Tactic = stepUp(rec.Tactic)
		rec.Intensity = capScore(rec.Intensity + 2)
	}
	if c.ShowsInterest {
		if rec.Tactic == core.TacticAttack {
			rec.Tactic = core.TacticProbe
		}
		rec.Tactic = core.TacticPresent
		rec.Intensity = capScore(rec.Intensity + 1)
	}
}

// stepUp moves one step along the escalation chain; tactics outside the
// chain and the chain's end are returned unchanged.
func stepUp(t core.Tactic) core.Tactic {
	for i, link := range escalationChain {
		if link == t {
			if i == len(escalationChain)-1 {
				return t
			}
			return escalationChain[i+1]
		}
	}
	return t
}

// buildTopics starts from the audience's priority list and moves any topics
// mentioned in the message to the front, deduplicated and truncated to three.
// An audience absent from the priority table gets no topics at all, mentioned
// or not, matching the question table's behavior for unknown audiences.
func (a *Analyzer) buildTopics(c classification, audience core.Audience) []string {
	priorities, ok := a.rules.TopicPriorities[audience]
	if !ok {
		return nil
	}

	seen := map[string]bool{}
	topics := make([]string, 0, 3)
	for _, t := range c.Topics {
		if !seen[t] {
			seen[t] = true
			topics = append(topics, t)
		}
	}
	for _, t := range priorities {
		if !seen[t] {
			seen[t] = true
			topics = append(topics, t)
		}
	}
	if len(topics) > 3 {
		topics = topics[:3]
	}
	return topics
}

// buildQuestions looks up the canned question table; an unknown audience or
// tactic combination yields an empty list, never an error.
func (a *Analyzer) buildQuestions(audience core.Audience, tactic core.Tactic) []string {
	byTactic, ok := a.rules.Questions[audience]
	if !ok {
		return nil
	}
	questions := byTactic[tactic]
	if len(questions) > 3 {
		questions = questions[:3]
	}
	return questions
}

func (a *Analyzer) buildApproach(tactic core.Tactic, audience core.Audience) string {
	approach := a.rules.Approaches[tactic]
	if refinement, ok := a.rules.Refinements[audience]; ok && refinement != "" {
		if approach != "" {
			approach += " "
		}
		approach += refinement
	}
	return approach
}

func capScore(v int) int {
	if v > core.ScoreMax {
		return core.ScoreMax
	}
	return v
}

func compile(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(`(?i)` + p)
		if err != nil {
			continue
		}
		compiled = append(compiled, re)
	}
	return compiled
}

func matchAny(patterns []*regexp.Regexp, text string) bool {
	for _, re := range patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
