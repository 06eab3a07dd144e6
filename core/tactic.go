package core

// Tactic is the recommended conversational posture for the next reply.
type Tactic string

const (
	// TacticAttack directly challenges the counterpart's stated position.
	TacticAttack Tactic = "attack"
	// TacticProbe asks exploratory questions to surface beliefs.
	TacticProbe Tactic = "probe"
	// TacticPresent lays out teaching affirmatively.
	TacticPresent Tactic = "present"
	// TacticPressure pushes toward a concrete commitment.
	TacticPressure Tactic = "pressure"
	// TacticSoften backs off and rebuilds rapport.
	TacticSoften Tactic = "soften"
)

// Tactics lists all known tactics.
var Tactics = []Tactic{TacticAttack, TacticProbe, TacticPresent, TacticPressure, TacticSoften}

// Valid reports whether the tactic is one of the known values.
func (t Tactic) Valid() bool {
	for _, known := range Tactics {
		if known == t {
			return true
		}
	}
	return false
}

// String returns the string representation of the tactic.
func (t Tactic) String() string { return string(t) }

// Recommendation is the ephemeral output of tactical analysis for a single
// turn. It is computed fresh per incoming message and never persisted.
type Recommendation struct {
	// Tactic is the resolved posture for the next reply.
	Tactic Tactic `json:"tactic"`
	// Intensity in [1,10] drives how forcefully the tactic is applied.
	Intensity int `json:"intensity"`
	// Reasoning is a fixed narrative describing why the tactic was chosen.
	Reasoning string `json:"reasoning"`
	// SuggestedApproach is guidance text for executing the tactic.
	SuggestedApproach string `json:"suggested_approach"`
	// TopicsToAddress holds at most three topic tags, mentioned topics first.
	TopicsToAddress []string `json:"topics_to_address"`
	// QuestionsToAsk holds at most three canned questions for the tactic.
	QuestionsToAsk []string `json:"questions_to_ask"`
}
