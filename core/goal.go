package core

import "time"

// GoalType names a target behavior the orchestration tracks across a
// conversation. The set is fixed; a conversation holds at most one Goal per
// type.
type GoalType string

const (
	// GoalAcknowledgeOrthodox tracks the counterpart conceding that an
	// Orthodox point is reasonable.
	GoalAcknowledgeOrthodox GoalType = "acknowledge_orthodox"
	// GoalExpressDoubt tracks the counterpart voicing doubt about their own
	// position.
	GoalExpressDoubt GoalType = "express_doubt"
	// GoalAcceptScripture tracks the counterpart agreeing to read a suggested
	// passage.
	GoalAcceptScripture GoalType = "accept_scripture"
	// GoalRequestResources tracks the counterpart asking for books, links or
	// other material.
	GoalRequestResources GoalType = "request_resources"
	// GoalAcceptPrayer tracks the counterpart accepting an offer of prayer.
	GoalAcceptPrayer GoalType = "accept_prayer"
	// GoalCommitVisitChurch tracks the counterpart committing to attend a
	// service in person.
	GoalCommitVisitChurch GoalType = "commit_visit_church"
)

// GoalTypes lists all goal types in presentation order.
var GoalTypes = []GoalType{
	GoalAcknowledgeOrthodox,
	GoalExpressDoubt,
	GoalAcceptScripture,
	GoalRequestResources,
	GoalAcceptPrayer,
	GoalCommitVisitChurch,
}

// Valid reports whether the goal type is one of the fixed values.
func (g GoalType) Valid() bool {
	for _, known := range GoalTypes {
		if known == g {
			return true
		}
	}
	return false
}

// String returns the string representation of the goal type.
func (g GoalType) String() string { return string(g) }

// Goal is a tracked target behavior. Achievement is monotonic: once Achieved
// flips to true it never resets, regardless of later messages.
type Goal struct {
	Type        GoalType   `json:"type"`
	Description string     `json:"description"`
	Achieved    bool       `json:"achieved"`
	AttemptedAt *time.Time `json:"attempted_at,omitempty"`
	AchievedAt  *time.Time `json:"achieved_at,omitempty"`
}

// DefaultGoals returns the full seeded goal list a fresh conversation starts
// with, all unachieved.
func DefaultGoals() []Goal {
	return []Goal{
		{Type: GoalAcknowledgeOrthodox, Description: "Counterpart acknowledges an Orthodox point as reasonable"},
		{Type: GoalExpressDoubt, Description: "Counterpart expresses doubt about their own tradition"},
		{Type: GoalAcceptScripture, Description: "Counterpart agrees to read a suggested scripture passage"},
		{Type: GoalRequestResources, Description: "Counterpart asks for books, articles or other resources"},
		{Type: GoalAcceptPrayer, Description: "Counterpart accepts an offer of prayer"},
		{Type: GoalCommitVisitChurch, Description: "Counterpart commits to visiting an Orthodox service"},
	}
}
