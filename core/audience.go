package core

import "strings"

// Audience is the declared background/tradition of the conversation's
// counterpart. It selects topic priorities and scripted questions. The set is
// closed; unknown inputs resolve to the explicit fallback AudienceSeeker so
// that new or misspelled segments cannot silently fall through to empty
// behavior.
type Audience string

const (
	// AudienceAll is the wildcard tag used in the question catalog only; a
	// script tagged "all" applies to every audience. It is never the resolved
	// audience of a conversation.
	AudienceAll Audience = "all"

	// AudienceCatholic is a Roman Catholic counterpart.
	AudienceCatholic Audience = "catholic"
	// AudienceProtestant is a mainline Protestant counterpart.
	AudienceProtestant Audience = "protestant"
	// AudienceBaptist is a Baptist counterpart.
	AudienceBaptist Audience = "baptist"
	// AudienceEvangelical is a non-denominational evangelical counterpart.
	AudienceEvangelical Audience = "evangelical"
	// AudienceAtheist is a counterpart who rejects theism.
	AudienceAtheist Audience = "atheist"
	// AudienceAgnostic is a counterpart undecided about theism.
	AudienceAgnostic Audience = "agnostic"
	// AudienceSeeker is the fallback segment for unknown or undeclared
	// backgrounds.
	AudienceSeeker Audience = "seeker"
)

// Audiences lists every resolvable audience segment (excludes the wildcard).
var Audiences = []Audience{
	AudienceCatholic,
	AudienceProtestant,
	AudienceBaptist,
	AudienceEvangelical,
	AudienceAtheist,
	AudienceAgnostic,
	AudienceSeeker,
}

// Valid reports whether the audience is a resolvable segment (the wildcard is
// not considered valid here; it only appears on catalog entries).
func (a Audience) Valid() bool {
	for _, known := range Audiences {
		if known == a {
			return true
		}
	}
	return false
}

// String returns the string representation of the audience.
func (a Audience) String() string { return string(a) }

// ParseAudience normalizes a free-form background string into an Audience.
// Unknown values map to AudienceSeeker.
func ParseAudience(s string) Audience {
	a := Audience(strings.ToLower(strings.TrimSpace(s)))
	if a.Valid() {
		return a
	}
	return AudienceSeeker
}
