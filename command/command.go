package command

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hupe1980/dialogmesh/core"
	"github.com/hupe1980/dialogmesh/internal/util"
	"github.com/hupe1980/dialogmesh/model"
)

// Tool names the collaborator may call.
const (
	NameTrackPosition   = "track_position"
	NameAssessReadiness = "assess_readiness"
	NameSetGoal         = "set_goal"
)

// Command is the closed set of state mutations a tool call can request.
type Command interface {
	isCommand()
}

// TrackPosition records or updates a stated position on a topic.
type TrackPosition struct {
	Topic      string `json:"topic" description:"Topic the position is about, e.g. icons or scripture"`
	Belief     string `json:"belief" description:"The position as stated by the counterpart"`
	Challenged bool   `json:"challenged,omitempty" description:"Whether the position was challenged this turn"`
	Conceded   bool   `json:"conceded,omitempty" description:"Whether the counterpart conceded the point"`
}

func (TrackPosition) isCommand() {}

// AssessReadiness reports the collaborator's read of how open the
// counterpart currently is, on the shared 1-10 scale.
type AssessReadiness struct {
	Level     int    `json:"level" description:"Openness assessment from 1 (closed) to 10 (fully receptive)"`
	Rationale string `json:"rationale,omitempty" description:"Short justification for the assessment"`
}

func (AssessReadiness) isCommand() {}

// SetGoal marks a conversion goal as actively pursued this turn.
type SetGoal struct {
	Type        string `json:"type" description:"Goal type identifier, e.g. commit_visit_church"`
	Description string `json:"description,omitempty" description:"Optional refined description of the goal"`
}

func (SetGoal) isCommand() {}

var schemas = map[string]map[string]any{
	NameTrackPosition:   util.CreateSchema(TrackPosition{}),
	NameAssessReadiness: util.CreateSchema(AssessReadiness{}),
	NameSetGoal:         util.CreateSchema(SetGoal{}),
}

// Definitions returns the tool definitions advertised to the
// text-generation collaborator.
func Definitions() []model.ToolDefinition {
	return []model.ToolDefinition{
		{
			Type: "function",
			Function: model.FunctionDefinition{
				Name:        NameTrackPosition,
				Description: "Record a position the counterpart has stated on a topic, and whether it was challenged or conceded.",
				Parameters:  schemas[NameTrackPosition],
			},
		},
		{
			Type: "function",
			Function: model.FunctionDefinition{
				Name:        NameAssessReadiness,
				Description: "Report how receptive the counterpart currently seems, from 1 to 10.",
				Parameters:  schemas[NameAssessReadiness],
			},
		},
		{
			Type: "function",
			Function: model.FunctionDefinition{
				Name:        NameSetGoal,
				Description: "Flag a conversion goal as the one being pursued this turn.",
				Parameters:  schemas[NameSetGoal],
			},
		},
	}
}

// Parse converts a raw tool call into a typed command. Unknown tool
// names and malformed arguments are errors; the caller decides whether
// to skip or abort.
func Parse(call model.ToolCall) (Command, error) {
	schema, ok := schemas[call.Function.Name]
	if !ok {
		return nil, fmt.Errorf("unknown tool %q", call.Function.Name)
	}

	args := call.Function.Arguments
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	var raw map[string]any
	if err := json.Unmarshal(args, &raw); err != nil {
		return nil, fmt.Errorf("parse %s arguments: %w", call.Function.Name, err)
	}

	if err := util.ValidateParameters(raw, schema); err != nil {
		return nil, fmt.Errorf("validate %s arguments: %w", call.Function.Name, err)
	}

	switch call.Function.Name {
	case NameTrackPosition:
		var cmd TrackPosition
		if err := json.Unmarshal(args, &cmd); err != nil {
			return nil, fmt.Errorf("parse %s arguments: %w", call.Function.Name, err)
		}

		return cmd, nil
	case NameAssessReadiness:
		var cmd AssessReadiness
		if err := json.Unmarshal(args, &cmd); err != nil {
			return nil, fmt.Errorf("parse %s arguments: %w", call.Function.Name, err)
		}

		return cmd, nil
	default:
		var cmd SetGoal
		if err := json.Unmarshal(args, &cmd); err != nil {
			return nil, fmt.Errorf("parse %s arguments: %w", call.Function.Name, err)
		}

		return cmd, nil
	}
}

// Dispatcher applies parsed commands to a conversation's state.
type Dispatcher struct{}

// NewDispatcher creates a Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Apply mutates state according to the command. It is the single place
// where tool output touches MemoryState.
func (d *Dispatcher) Apply(state *core.MemoryState, cmd Command, now time.Time) error {
	switch c := cmd.(type) {
	case TrackPosition:
		if c.Topic == "" {
			return fmt.Errorf("track_position: topic must not be empty")
		}

		state.TrackPosition(c.Topic, core.Position{
			Belief:     c.Belief,
			Challenged: c.Challenged,
			Conceded:   c.Conceded,
		}, now)

		return nil
	case AssessReadiness:
		state.SetScores(state.ResistanceLevel, core.ClampScore(c.Level))
		return nil
	case SetGoal:
		goalType := core.GoalType(c.Type)
		if !goalType.Valid() {
			return fmt.Errorf("set_goal: unknown goal type %q", c.Type)
		}

		if c.Description != "" {
			state.SetGoal(goalType, c.Description)
		}

		state.MarkGoalAttempted(goalType, now)

		return nil
	default:
		return fmt.Errorf("unsupported command type %T", cmd)
	}
}
