package signal

import (
	"regexp"

	"github.com/hupe1980/dialogmesh/core"
)

// Rules holds the pattern tables the detector matches against. Patterns are
// regular expression sources, compiled case-insensitively at construction.
type Rules struct {
	// ObjectionPatterns mark a message as an objection: contrast markers,
	// disagreement markers and appeals to a counter-authority.
	ObjectionPatterns []string
	// NegativeReactionPatterns mark the preceding topic as sensitive.
	NegativeReactionPatterns []string
}

// DefaultRules returns the built-in English pattern tables.
func DefaultRules() Rules {
	return Rules{
		ObjectionPatterns: []string{
			`\bbut\b`,
			`\bhowever\b`,
			`\bactually\b`,
			`i disagree`,
			`that'?s (not true|wrong|false)`,
			`i don'?t (think|believe|agree)`,
			`not sure i agree`,
			`my (pastor|priest|minister|church) (says|teaches|taught)`,
			`the bible (says|teaches)`,
			`we believe`,
		},
		NegativeReactionPatterns: []string{
			`offensive`,
			`offended`,
			`judgmental`,
			`judging me`,
			`pushy`,
			`uncomfortable`,
			`disrespectful`,
			`\brude\b`,
			`attacking`,
			`insulting`,
		},
	}
}

// Options configures a Detector.
type Options struct {
	Rules Rules
}

// Detector applies the signal rules to incoming messages. It has no internal
// mutable state after construction and is safe for concurrent use across
// conversations.
type Detector struct {
	objections []*regexp.Regexp
	reactions  []*regexp.Regexp
}

// NewDetector compiles the rule tables into a Detector. Invalid patterns in
// custom rule sets are skipped rather than failing construction.
func NewDetector(optFns ...func(o *Options)) *Detector {
	opts := Options{Rules: DefaultRules()}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Detector{
		objections: compile(opts.Rules.ObjectionPatterns),
		reactions:  compile(opts.Rules.NegativeReactionPatterns),
	}
}

// DetectObjections records the raw user text as an objection when any
// objection pattern matches. Duplicate texts are ignored.
func (d *Detector) DetectObjections(text string, state *core.MemoryState) {
	if matchAny(d.objections, text) {
		state.AddObjection(text)
	}
}

// DetectSensitivity marks the preceding topic as sensitive when the text
// contains a negative reaction. Without a known preceding topic nothing is
// recorded.
func (d *Detector) DetectSensitivity(text, precedingTopic string, state *core.MemoryState) {
	if precedingTopic == "" {
		return
	}
	if matchAny(d.reactions, text) {
		state.AddSensitiveTopic(precedingTopic)
	}
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
