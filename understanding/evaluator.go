package understanding

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/hupe1980/dialogmesh/core"
	"github.com/hupe1980/dialogmesh/model"
)

// Evaluator turns a (question, user answer, agent answer) triple into an
// integer understanding score in [1,10].
type Evaluator interface {
	Evaluate(ctx context.Context, question, userResponse, agentResponse string) (int, error)
}

// EvaluatorFunc adapts a plain function to the Evaluator interface.
type EvaluatorFunc func(ctx context.Context, question, userResponse, agentResponse string) (int, error)

// Evaluate implements Evaluator.
func (f EvaluatorFunc) Evaluate(ctx context.Context, question, userResponse, agentResponse string) (int, error) {
	return f(ctx, question, userResponse, agentResponse)
}

// firstInteger extracts the leading integer from a model reply that should be
// numeric-only but in practice may carry stray prose.
var firstInteger = regexp.MustCompile(`-?\d+`)

const scoringInstructions = `You are scoring reading comprehension in a dialogue.
Given a question, the person's answer and the guide's follow-up, rate from 1 to 10
how well the person understood and engaged with the question.
1 means they ignored or completely missed it; 10 means they engaged deeply and accurately.
Reply with a single integer and nothing else.`

// ModelEvaluatorOptions configures a ModelEvaluator.
type ModelEvaluatorOptions struct {
	// Instructions overrides the scoring prompt.
	Instructions string
}

// ModelEvaluator scores understanding with a text-generation call. It is a
// distinct logical collaborator from reply generation: same transport,
// different prompt, numeric-only expected output.
type ModelEvaluator struct {
	model model.Model
	opts  ModelEvaluatorOptions
}

// NewModelEvaluator creates an Evaluator backed by the given model.
func NewModelEvaluator(m model.Model, optFns ...func(o *ModelEvaluatorOptions)) *ModelEvaluator {
	opts := ModelEvaluatorOptions{Instructions: scoringInstructions}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &ModelEvaluator{model: m, opts: opts}
}

// Evaluate implements Evaluator. The returned score is already clamped into
// [1,10]; an unparsable reply is an error (callers go through Score for the
// default-on-failure behavior).
func (e *ModelEvaluator) Evaluate(ctx context.Context, question, userResponse, agentResponse string) (int, error) {
	prompt := fmt.Sprintf("QUESTION: %s\n\nTHEIR ANSWER: %s\n\nGUIDE'S FOLLOW-UP: %s\n\nScore (1-10):",
		question, userResponse, agentResponse)

	respCh, errCh := e.model.Generate(ctx, model.Request{
		Instructions: e.opts.Instructions,
		Messages:     []core.Message{{Role: "user", Text: prompt}},
	})
	final, err := model.Collect(ctx, respCh, errCh, nil)
	if err != nil {
		return 0, fmt.Errorf("understanding call failed: %w", err)
	}

	match := firstInteger.FindString(final.Text)
	if match == "" {
		return 0, fmt.Errorf("no score in reply %q", final.Text)
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0, fmt.Errorf("unparsable score %q: %w", match, err)
	}
	return core.ClampScore(n), nil
}

// Score runs the evaluator and absorbs every failure mode: errors and
// unparsable replies become the neutral default, out-of-range values are
// clamped. It never fails.
func Score(ctx context.Context, ev Evaluator, question, userResponse, agentResponse string) int {
	if ev == nil {
		return core.ScoreDefault
	}
	level, err := ev.Evaluate(ctx, question, userResponse, agentResponse)
	if err != nil {
		return core.ScoreDefault
	}
	return core.ClampScore(level)
}

// IsReady reports whether the understanding level clears the readiness bar.
// Early in the script the bar is higher: before three questions have been
// asked a level of 8 is required, afterwards 7 suffices. This is advisory
// only; the repeat-vs-advance decision belongs to the selector.
func IsReady(level, questionsAskedCount int) bool {
	if questionsAskedCount < 3 {
		return level >= 8
	}
	return level >= 7
}
