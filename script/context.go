package script

import (
	"fmt"
	"strings"

	"github.com/hupe1980/dialogmesh/core"
)

const (
	maxAnswerOptions    = 5
	maxTalkingPoints    = 4
	improviseDirective  = "The scripted questions for this stage are exhausted. Improvise: continue the conversation naturally toward the stage's purpose."
	noQuestionDirective = "Do not force a scripted question this turn; let the conversation flow and respond to what they actually said."
)

// FormatQuestionContext renders the question-context block handed to the
// text-generation collaborator. When a script was selected it carries the
// question plus suggested next replies; otherwise it instructs the model to
// flow freely. Suggested replies are chosen by priority: the script's own
// predefined answers (capped at 5), else the next unasked questions as
// talking points (capped at 4), else an improvise instruction.
func (b *Bank) FormatQuestionContext(q *core.QuestionScript, asked []string, stage core.Stage, audience core.Audience) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "CONVERSATION STAGE: %s (audience: %s)\n", stage, audience)
	fmt.Fprintf(&sb, "Scripted questions already covered: %d\n", len(asked))

	if q != nil {
		sb.WriteString("\nASK THIS QUESTION (work it into your reply naturally):\n")
		fmt.Fprintf(&sb, "%s\n", q.Question)
		if q.Rationale != "" {
			fmt.Fprintf(&sb, "Why: %s\n", q.Rationale)
		}
		if q.Criteria != "" {
			fmt.Fprintf(&sb, "A good answer: %s\n", q.Criteria)
		}
		if len(q.FollowUpTopics) > 0 {
			fmt.Fprintf(&sb, "Follow-up topics: %s\n", strings.Join(q.FollowUpTopics, ", "))
		}
	} else {
		sb.WriteString("\n" + noQuestionDirective + "\n")
	}

	sb.WriteString("\n" + b.suggestedReplies(q, asked, stage, audience))
	return sb.String()
}

// suggestedReplies builds the "suggested next replies" section by priority.
func (b *Bank) suggestedReplies(q *core.QuestionScript, asked []string, stage core.Stage, audience core.Audience) string {
	if q != nil && len(q.Answers) > 0 {
		answers := q.Answers
		if len(answers) > maxAnswerOptions {
			answers = answers[:maxAnswerOptions]
		}
		var sb strings.Builder
		sb.WriteString("SUGGESTED REPLY OPTIONS (offer these as choices):\n")
		for _, a := range answers {
			fmt.Fprintf(&sb, "- %s\n", a)
		}
		return sb.String()
	}

	upcoming := b.Available(stage, audience, asked)
	// The selected question is not a talking point for itself.
	if q != nil {
		filtered := upcoming[:0]
		for _, u := range upcoming {
			if u.ID != q.ID {
				filtered = append(filtered, u)
			}
		}
		upcoming = filtered
	}
	if len(upcoming) > 0 {
		if len(upcoming) > maxTalkingPoints {
			upcoming = upcoming[:maxTalkingPoints]
		}
		var sb strings.Builder
		sb.WriteString("UPCOMING TALKING POINTS (steer toward these):\n")
		for _, u := range upcoming {
			fmt.Fprintf(&sb, "- %s\n", u.Question)
		}
		return sb.String()
	}

	return improviseDirective + "\n"
}
