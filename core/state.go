package core

import "time"

// ScoreMin and ScoreMax bound every persuasion score. Writes outside the
// range are clamped, never rejected.
const (
	ScoreMin = 1
	ScoreMax = 10
	// ScoreDefault seeds fresh conversations and stands in for unparsable
	// understanding results.
	ScoreDefault = 5
)

// ClampScore forces v into the [ScoreMin, ScoreMax] range.
func ClampScore(v int) int {
	if v < ScoreMin {
		return ScoreMin
	}
	if v > ScoreMax {
		return ScoreMax
	}
	return v
}

// Message is a single turn of the conversation history.
type Message struct {
	Role      string    `json:"role"` // "user" or "assistant"
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Position is a tracked belief of the counterpart on a single topic. Topics
// key the position map uniquely; the last write per topic wins.
type Position struct {
	Belief           string     `json:"belief"`
	Challenged       bool       `json:"challenged"`
	Conceded         bool       `json:"conceded"`
	LastChallengedAt *time.Time `json:"last_challenged_at,omitempty"`
}

// QuestionResponse records the counterpart's answer to a scripted question
// together with the externally produced understanding level.
type QuestionResponse struct {
	UserResponse       string    `json:"user_response"`
	UnderstandingLevel int       `json:"understanding_level"`
	Timestamp          time.Time `json:"timestamp"`
}

// MemoryState is the single mutable record tracked per conversation. It is
// owned exclusively by that conversation's turn pipeline: turns for the same
// conversation must be serialized by the caller (the engine keys a mutex per
// conversation), so the struct itself carries no lock. All transition methods
// clamp and deduplicate at the point of write; none of them can fail.
type MemoryState struct {
	ConversationID string `json:"conversation_id"`

	// Persuasion metrics, always within [1,10].
	ResistanceLevel int `json:"resistance_level"`
	OpennessScore   int `json:"openness_score"`

	// Positions tracks the counterpart's beliefs keyed by topic.
	Positions map[string]Position `json:"positions"`

	// Goals holds at most one entry per GoalType; achievement is monotonic.
	Goals []Goal `json:"goals"`

	// LastTactic is the tactic recommended on the previous turn, empty when
	// no turn has completed yet.
	LastTactic Tactic `json:"last_tactic,omitempty"`

	// Deduplicated string sets (insertion order preserved for readability).
	Contradictions  []string `json:"contradictions"`
	Objections      []string `json:"objections"`
	SensitiveTopics []string `json:"sensitive_topics"`

	// History is the append-only, unbounded message log.
	History []Message `json:"history"`

	// QuestionsAsked is the append-only ordered set of script IDs that were
	// asked and understood; an ID appears at most once for the lifetime of
	// the conversation.
	QuestionsAsked []string `json:"questions_asked"`

	// CurrentQuestionID is the script currently awaiting a response.
	CurrentQuestionID   string     `json:"current_question_id,omitempty"`
	LastQuestionAskedAt *time.Time `json:"last_question_asked_at,omitempty"`

	// QuestionResponses records the latest response per script ID.
	QuestionResponses map[string]QuestionResponse `json:"question_responses"`

	// Stage is monotonically non-decreasing over the conversation lifetime.
	Stage Stage `json:"stage"`

	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

// NewMemoryState creates the default state a conversation starts with:
// midpoint scores, empty collections, the full unachieved goal set and the
// introduction stage. The caller supplies the creation time so construction
// stays deterministic.
func NewMemoryState(conversationID string, now time.Time) *MemoryState {
	return &MemoryState{
		ConversationID:    conversationID,
		ResistanceLevel:   ScoreDefault,
		OpennessScore:     ScoreDefault,
		Positions:         map[string]Position{},
		Goals:             DefaultGoals(),
		Contradictions:    []string{},
		Objections:        []string{},
		SensitiveTopics:   []string{},
		History:           []Message{},
		QuestionsAsked:    []string{},
		QuestionResponses: map[string]QuestionResponse{},
		Stage:             StageIntroduction,
		Created:           now,
		Updated:           now,
	}
}

// Normalize repairs a state loaded from an external store: nil collections
// become empty, scores are clamped, missing goals are seeded and an unknown
// stage falls back to the introduction. Malformed persisted data therefore
// degrades to defaults instead of surfacing errors.
func (s *MemoryState) Normalize() {
	s.ResistanceLevel = ClampScore(s.ResistanceLevel)
	s.OpennessScore = ClampScore(s.OpennessScore)
	if s.Positions == nil {
		s.Positions = map[string]Position{}
	}
	if s.QuestionResponses == nil {
		s.QuestionResponses = map[string]QuestionResponse{}
	}
	if s.Contradictions == nil {
		s.Contradictions = []string{}
	}
	if s.Objections == nil {
		s.Objections = []string{}
	}
	if s.SensitiveTopics == nil {
		s.SensitiveTopics = []string{}
	}
	if s.History == nil {
		s.History = []Message{}
	}
	if s.QuestionsAsked == nil {
		s.QuestionsAsked = []string{}
	}
	if len(s.Goals) == 0 {
		s.Goals = DefaultGoals()
	}
	if !s.Stage.Valid() {
		s.Stage = StageIntroduction
	}
}

// SetScores writes both persuasion metrics, clamped into [1,10].
func (s *MemoryState) SetScores(resistance, openness int) {
	s.ResistanceLevel = ClampScore(resistance)
	s.OpennessScore = ClampScore(openness)
	s.touch()
}

// RecordTactic remembers the tactic recommended this turn.
func (s *MemoryState) RecordTactic(t Tactic) {
	s.LastTactic = t
	s.touch()
}

// AddObjection appends the raw user text to the objection set unless an exact
// duplicate is already present.
func (s *MemoryState) AddObjection(text string) {
	s.Objections = appendUnique(s.Objections, text)
	s.touch()
}

// AddContradiction records an identified contradiction, deduplicated.
func (s *MemoryState) AddContradiction(text string) {
	s.Contradictions = appendUnique(s.Contradictions, text)
	s.touch()
}

// AddSensitiveTopic marks a topic as sensitive, deduplicated.
func (s *MemoryState) AddSensitiveTopic(topic string) {
	s.SensitiveTopics = appendUnique(s.SensitiveTopics, topic)
	s.touch()
}

// TrackPosition stores the counterpart's position on a topic. The last write
// per topic wins. When the position transitions to challenged the timestamp
// is recorded.
func (s *MemoryState) TrackPosition(topic string, p Position, now time.Time) {
	if p.Challenged && p.LastChallengedAt == nil {
		at := now
		p.LastChallengedAt = &at
	}
	s.Positions[topic] = p
	s.touch()
}

// SetGoal creates or updates the goal for the given type. The at-most-one-
// per-type invariant is enforced here; an existing achieved goal keeps its
// achieved flag regardless of the incoming value.
func (s *MemoryState) SetGoal(t GoalType, description string) {
	for i := range s.Goals {
		if s.Goals[i].Type == t {
			if description != "" {
				s.Goals[i].Description = description
			}
			s.touch()
			return
		}
	}
	s.Goals = append(s.Goals, Goal{Type: t, Description: description})
	s.touch()
}

// MarkGoalAttempted stamps the goal's attempt time.
func (s *MemoryState) MarkGoalAttempted(t GoalType, now time.Time) {
	for i := range s.Goals {
		if s.Goals[i].Type == t {
			at := now
			s.Goals[i].AttemptedAt = &at
			s.touch()
			return
		}
	}
}

// AchieveGoal marks the goal achieved and returns true when this call flipped
// it. Achievement is monotonic: a goal already achieved stays achieved and
// keeps its original timestamp.
func (s *MemoryState) AchieveGoal(t GoalType, now time.Time) bool {
	for i := range s.Goals {
		if s.Goals[i].Type != t {
			continue
		}
		if s.Goals[i].Achieved {
			return false
		}
		at := now
		s.Goals[i].Achieved = true
		s.Goals[i].AchievedAt = &at
		s.touch()
		return true
	}
	return false
}

// Goal returns the goal for the given type, if tracked.
func (s *MemoryState) Goal(t GoalType) (Goal, bool) {
	for _, g := range s.Goals {
		if g.Type == t {
			return g, true
		}
	}
	return Goal{}, false
}

// AppendMessage appends one turn to the history.
func (s *MemoryState) AppendMessage(role, text string, now time.Time) {
	s.History = append(s.History, Message{Role: role, Text: text, Timestamp: now})
	s.touch()
}

// MessageCount returns the number of messages exchanged so far.
func (s *MemoryState) MessageCount() int { return len(s.History) }

// HasAskedQuestion reports whether the script ID is already in the asked set.
func (s *MemoryState) HasAskedQuestion(id string) bool {
	for _, asked := range s.QuestionsAsked {
		if asked == id {
			return true
		}
	}
	return false
}

// MarkQuestionAsked appends the script ID to the asked set, returning false
// if it was already present. The set never shrinks.
func (s *MemoryState) MarkQuestionAsked(id string) bool {
	if s.HasAskedQuestion(id) {
		return false
	}
	s.QuestionsAsked = append(s.QuestionsAsked, id)
	s.touch()
	return true
}

// SetCurrentQuestion records the script now awaiting a response.
func (s *MemoryState) SetCurrentQuestion(id string, now time.Time) {
	s.CurrentQuestionID = id
	at := now
	s.LastQuestionAskedAt = &at
	s.touch()
}

// RecordQuestionResponse stores the counterpart's response to a script along
// with the clamped understanding level.
func (s *MemoryState) RecordQuestionResponse(id, response string, level int, now time.Time) {
	s.QuestionResponses[id] = QuestionResponse{
		UserResponse:       response,
		UnderstandingLevel: ClampScore(level),
		Timestamp:          now,
	}
	s.touch()
}

// LastUnderstanding returns the recorded understanding level for the current
// question, if a response has been scored.
func (s *MemoryState) LastUnderstanding() (int, bool) {
	if s.CurrentQuestionID == "" {
		return 0, false
	}
	qr, ok := s.QuestionResponses[s.CurrentQuestionID]
	if !ok {
		return 0, false
	}
	return qr.UnderstandingLevel, true
}

// AdvanceStage moves the conversation to the given stage only when it is the
// immediate successor of the current one. Regressions and skips are ignored;
// the return value reports whether a transition happened.
func (s *MemoryState) AdvanceStage(to Stage) bool {
	next, ok := s.Stage.Next()
	if !ok || to != next {
		return false
	}
	s.Stage = to
	s.touch()
	return true
}

// Clone returns a deep copy of the state safe for independent mutation.
func (s *MemoryState) Clone() *MemoryState {
	clone := *s
	clone.Positions = make(map[string]Position, len(s.Positions))
	for k, v := range s.Positions {
		clone.Positions[k] = v
	}
	clone.Goals = append([]Goal(nil), s.Goals...)
	clone.Contradictions = append([]string(nil), s.Contradictions...)
	clone.Objections = append([]string(nil), s.Objections...)
	clone.SensitiveTopics = append([]string(nil), s.SensitiveTopics...)
	clone.History = append([]Message(nil), s.History...)
	clone.QuestionsAsked = append([]string(nil), s.QuestionsAsked...)
	clone.QuestionResponses = make(map[string]QuestionResponse, len(s.QuestionResponses))
	for k, v := range s.QuestionResponses {
		clone.QuestionResponses[k] = v
	}
	return &clone
}

func (s *MemoryState) touch() { s.Updated = time.Now() }

func appendUnique(set []string, v string) []string {
	for _, existing := range set {
		if existing == v {
			return set
		}
	}
	return append(set, v)
}
