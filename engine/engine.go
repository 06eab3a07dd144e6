package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hupe1980/dialogmesh/command"
	"github.com/hupe1980/dialogmesh/core"
	"github.com/hupe1980/dialogmesh/goal"
	"github.com/hupe1980/dialogmesh/internal/util"
	"github.com/hupe1980/dialogmesh/logging"
	"github.com/hupe1980/dialogmesh/model"
	"github.com/hupe1980/dialogmesh/progress"
	"github.com/hupe1980/dialogmesh/script"
	"github.com/hupe1980/dialogmesh/signal"
	"github.com/hupe1980/dialogmesh/state"
	"github.com/hupe1980/dialogmesh/tactic"
	"github.com/hupe1980/dialogmesh/understanding"
)

// Hooks are optional callbacks fired synchronously during a turn. They run
// while the conversation lock is held, so they must be fast and must not
// call back into the engine for the same conversation.
type Hooks struct {
	// OnStageTransition fires after the conversation advances a stage.
	OnStageTransition func(conversationID string, from, to core.Stage)

	// OnGoalAchieved fires once per newly achieved goal.
	OnGoalAchieved func(conversationID string, goalType core.GoalType)

	// OnTurnComplete fires after the turn has been persisted.
	OnTurnComplete func(conversationID string, result *TurnResult)
}

// Options configures an Engine instance using the functional options pattern.
// Every collaborator has a working default so a bare New(model) is usable
// for development and tests.
type Options struct {
	// Store persists memory records. Defaults to an in-memory store.
	Store core.StateStore

	// Evaluator scores how well the counterpart understood the current
	// scripted question. Defaults to a ModelEvaluator on the engine's model.
	Evaluator understanding.Evaluator

	// Bank is the scripted question catalog. Defaults to the built-in catalog.
	Bank *script.Bank

	// Selector picks the next scripted question. Defaults to a selector over Bank.
	Selector *script.Selector

	// Detector runs the objection and sensitivity rules. Defaults to the built-in rules.
	Detector *signal.Detector

	// Analyzer produces the per-turn tactical recommendation. Defaults to the built-in rules.
	Analyzer *tactic.Analyzer

	// Tracker evaluates goal achievement. Defaults to the built-in patterns.
	Tracker *goal.Tracker

	// Progress decides stage transitions. Defaults to the built-in gates.
	Progress *progress.Machine

	// Dispatcher applies tool commands to state.
	Dispatcher *command.Dispatcher

	// Persona is the template for the leading system directive. It may
	// reference {{.Audience}} and {{.Stage}}.
	Persona string

	// Logger provides structured logging. Defaults to a JSON slog logger.
	Logger *logging.DialogLogger

	// Hooks are the optional turn lifecycle callbacks.
	Hooks Hooks
}

// Engine drives dialogue turns against a text-generation model.
type Engine struct {
	model      model.Model
	store      core.StateStore
	evaluator  understanding.Evaluator
	bank       *script.Bank
	selector   *script.Selector
	detector   *signal.Detector
	analyzer   *tactic.Analyzer
	tracker    *goal.Tracker
	progress   *progress.Machine
	dispatcher *command.Dispatcher
	persona    string
	logger     *logging.DialogLogger
	hooks      Hooks

	// Per-conversation locks serialize turns on the same conversation.
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// TurnResult is the outcome of one processed turn, exposed to the caller
// or UI layer.
type TurnResult struct {
	ConversationID string               `json:"conversation_id"`
	TurnID         string               `json:"turn_id"`
	Reply          string               `json:"reply"`
	Stage          core.Stage           `json:"stage"`
	StageAdvanced  bool                 `json:"stage_advanced"`
	Resistance     int                  `json:"resistance_level"`
	Openness       int                  `json:"openness_score"`
	Goals          []core.Goal          `json:"goals"`
	GoalsAchieved  []core.GoalType      `json:"goals_achieved,omitempty"`
	Question       *core.QuestionScript `json:"question,omitempty"`
	Recommendation core.Recommendation  `json:"recommendation"`
}

// New creates an Engine around the given model with sensible defaults.
func New(m model.Model, optFns ...func(o *Options)) *Engine {
	opts := Options{
		Store:      state.NewInMemoryStore(),
		Bank:       script.NewBank(),
		Detector:   signal.NewDetector(),
		Analyzer:   tactic.NewAnalyzer(),
		Tracker:    goal.NewTracker(),
		Progress:   progress.NewMachine(),
		Dispatcher: command.NewDispatcher(),
		Persona:    defaultPersona,
		Logger:     logging.NewLogger(logging.DefaultLoggerConfig()),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Evaluator == nil {
		opts.Evaluator = understanding.NewModelEvaluator(m)
	}

	if opts.Selector == nil {
		opts.Selector = script.NewSelector(opts.Bank)
	}

	return &Engine{
		model:      m,
		store:      opts.Store,
		evaluator:  opts.Evaluator,
		bank:       opts.Bank,
		selector:   opts.Selector,
		detector:   opts.Detector,
		analyzer:   opts.Analyzer,
		tracker:    opts.Tracker,
		progress:   opts.Progress,
		dispatcher: opts.Dispatcher,
		persona:    opts.Persona,
		logger:     opts.Logger,
		hooks:      opts.Hooks,
		locks:      make(map[string]*sync.Mutex),
	}
}

// ProcessTurn handles one incoming user message and returns the reply plus
// the updated public view of the conversation.
func (e *Engine) ProcessTurn(ctx context.Context, conversationID string, audience core.Audience, userText string) (*TurnResult, error) {
	return e.processTurn(ctx, conversationID, audience, userText, nil)
}

// ProcessTurnStream behaves like ProcessTurn but forwards reply chunks to
// onChunk as they arrive from the model.
func (e *Engine) ProcessTurnStream(ctx context.Context, conversationID string, audience core.Audience, userText string, onChunk func(string)) (*TurnResult, error) {
	return e.processTurn(ctx, conversationID, audience, userText, onChunk)
}

func (e *Engine) processTurn(ctx context.Context, conversationID string, audience core.Audience, userText string, onChunk func(string)) (*TurnResult, error) {
	lock := e.lockFor(conversationID)
	lock.Lock()
	defer lock.Unlock()

	turnID := util.NewID()
	logger := e.logger.WithConversation(conversationID, turnID)
	start := time.Now()

	st, err := e.store.Load(ctx, conversationID)
	if err != nil {
		logger.Warn("state load failed, starting from defaults", "error", err)
		st = core.NewMemoryState(conversationID, time.Now())
	}

	// Detector signals are facts about the user message, recorded before
	// anything that can fail.
	e.detector.DetectObjections(userText, st)
	e.detector.DetectSensitivity(userText, e.precedingTopic(st), st)

	rec := e.analyzer.Analyze(userText, st, audience)

	var lastUnderstanding *int
	if lu, ok := st.LastUnderstanding(); ok {
		lastUnderstanding = &lu
	}

	next := e.selector.SelectNext(script.Selection{
		Stage:             st.Stage,
		Audience:          audience,
		QuestionsAsked:    st.QuestionsAsked,
		CurrentQuestionID: st.CurrentQuestionID,
		LastUnderstanding: lastUnderstanding,
		MessageCount:      st.MessageCount(),
	})

	instructions, err := e.buildDirectives(st, audience, rec, next)
	if err != nil {
		return nil, fmt.Errorf("assemble directives: %w", err)
	}

	now := time.Now()

	messages := make([]core.Message, 0, len(st.History)+1)
	messages = append(messages, st.History...)
	messages = append(messages, core.Message{Role: "user", Text: userText, Timestamp: now})

	respCh, errCh := e.model.Generate(ctx, model.Request{
		Instructions: instructions,
		Messages:     messages,
		Tools:        command.Definitions(),
		Stream:       onChunk != nil,
	})

	resp, err := model.Collect(ctx, respCh, errCh, onChunk)
	logger.LogModelCall(e.model.Info().Name, tokenCount(resp), time.Since(start), err == nil, err)

	if err != nil {
		if ctx.Err() != nil {
			// Cancelled turns persist nothing.
			return nil, fmt.Errorf("turn cancelled: %w", ctx.Err())
		}

		// Keep the detector findings, drop everything that depended on
		// the reply.
		if saveErr := e.store.Save(ctx, st); saveErr != nil {
			logger.Warn("state save failed after generation error", "error", saveErr)
		}

		logger.LogTurn(st.Stage.String(), rec.Tactic.String(), rec.Intensity, time.Since(start), false, err)

		return nil, fmt.Errorf("generate reply: %w", err)
	}

	reply := resp.Text

	var achieved []core.GoalType
	for _, goalType := range e.tracker.Evaluate(st, userText, now) {
		achieved = append(achieved, goalType)
		logger.LogGoalAchieved(goalType.String())

		if e.hooks.OnGoalAchieved != nil {
			e.hooks.OnGoalAchieved(conversationID, goalType)
		}
	}

	st.SetScores(core.ScoreMax+1-rec.Intensity, rec.Intensity)
	st.RecordTactic(rec.Tactic)

	// Tool commands run after the heuristic score update so an explicit
	// readiness assessment wins over the derived one.
	for _, call := range resp.ToolCalls {
		cmd, err := command.Parse(call)
		if err != nil {
			logger.Warn("skipping tool call", "tool", call.Function.Name, "error", err)
			continue
		}

		if err := e.dispatcher.Apply(st, cmd, now); err != nil {
			logger.Warn("tool command rejected", "tool", call.Function.Name, "error", err)
		}
	}

	// Score the response to the question that was pending before this turn.
	// A question already marked asked is settled: re-scoring it on free-flow
	// turns would burn an evaluator call and overwrite its recorded response.
	if st.CurrentQuestionID != "" && !st.HasAskedQuestion(st.CurrentQuestionID) {
		if q, ok := e.bank.Get(st.CurrentQuestionID); ok {
			level := understanding.Score(ctx, e.evaluator, q.Question, userText, reply)
			st.RecordQuestionResponse(q.ID, userText, level, now)

			logger.Debug("understanding scored",
				"question", q.ID,
				"level", level,
				"ready", understanding.IsReady(level, len(st.QuestionsAsked)),
			)

			if level >= understoodLevel {
				st.MarkQuestionAsked(q.ID)
			}
		}
	}

	if next != nil {
		st.SetCurrentQuestion(next.ID, now)
	}

	st.AppendMessage("user", userText, now)
	st.AppendMessage("assistant", reply, now)

	stageAdvanced := false

	if e.progress.ShouldProgress(st.Stage, st.MessageCount(), userText) {
		if to, ok := st.Stage.Next(); ok {
			from := st.Stage

			if st.AdvanceStage(to) {
				stageAdvanced = true
				logger.LogStageTransition(from.String(), to.String(), st.MessageCount())

				if e.hooks.OnStageTransition != nil {
					e.hooks.OnStageTransition(conversationID, from, to)
				}
			}
		}
	}

	if err := e.store.Save(ctx, st); err != nil {
		logger.Warn("state save failed", "error", err)
	}

	result := &TurnResult{
		ConversationID: conversationID,
		TurnID:         turnID,
		Reply:          reply,
		Stage:          st.Stage,
		StageAdvanced:  stageAdvanced,
		Resistance:     st.ResistanceLevel,
		Openness:       st.OpennessScore,
		Goals:          append([]core.Goal(nil), st.Goals...),
		GoalsAchieved:  achieved,
		Question:       next,
		Recommendation: rec,
	}

	logger.LogTurn(st.Stage.String(), rec.Tactic.String(), rec.Intensity, time.Since(start), true, nil)

	if e.hooks.OnTurnComplete != nil {
		e.hooks.OnTurnComplete(conversationID, result)
	}

	return result, nil
}

// understoodLevel mirrors the selector's repeat-until-understood bar.
const understoodLevel = 7

// precedingTopic derives the topic the user is reacting to from the
// question currently awaiting a response.
func (e *Engine) precedingTopic(st *core.MemoryState) string {
	if st.CurrentQuestionID == "" {
		return ""
	}

	q, ok := e.bank.Get(st.CurrentQuestionID)
	if !ok || len(q.FollowUpTopics) == 0 {
		return ""
	}

	return q.FollowUpTopics[0]
}

func (e *Engine) lockFor(conversationID string) *sync.Mutex {
	e.locksMu.Lock()
	defer e.locksMu.Unlock()

	lock, ok := e.locks[conversationID]
	if !ok {
		lock = &sync.Mutex{}
		e.locks[conversationID] = lock
	}

	return lock
}

func tokenCount(resp model.Response) int {
	if resp.Usage == nil {
		return 0
	}

	return resp.Usage.TotalTokens
}
