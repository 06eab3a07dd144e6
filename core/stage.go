package core

// Stage identifies the phase a conversation is in. Stages are strictly
// ordered and a conversation only ever moves forward through them, one step
// at a time: introduction -> differentiation -> exploration -> commitment.
type Stage string

const (
	// StageIntroduction is the opening phase: rapport building and surfacing
	// the counterpart's background.
	StageIntroduction Stage = "introduction"
	// StageDifferentiation contrasts the counterpart's tradition with the
	// position being presented.
	StageDifferentiation Stage = "differentiation"
	// StageExploration goes deep on doctrine and practice.
	StageExploration Stage = "exploration"
	// StageCommitment is the terminal call-to-action phase.
	StageCommitment Stage = "commitment"
)

// Stages lists all stages in progression order.
var Stages = []Stage{StageIntroduction, StageDifferentiation, StageExploration, StageCommitment}

// Index returns the position of the stage in the progression order, or -1 for
// an unknown value.
func (s Stage) Index() int {
	for i, stage := range Stages {
		if stage == s {
			return i
		}
	}
	return -1
}

// Valid reports whether the stage is one of the known ordered values.
func (s Stage) Valid() bool { return s.Index() >= 0 }

// Next returns the following stage and true, or the receiver and false when
// the stage is terminal or unknown.
func (s Stage) Next() (Stage, bool) {
	idx := s.Index()
	if idx < 0 || idx >= len(Stages)-1 {
		return s, false
	}
	return Stages[idx+1], true
}

// String returns the string representation of the stage.
func (s Stage) String() string { return string(s) }
