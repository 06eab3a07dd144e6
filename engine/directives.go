package engine

import (
	"fmt"
	"strings"

	"github.com/hupe1980/dialogmesh/core"
	"github.com/hupe1980/dialogmesh/internal/util"
)

// defaultPersona is the leading system directive. It is rendered as a
// template with the current audience and stage.
const defaultPersona = `You are an Orthodox Christian street evangelist having a one-on-one conversation.
Your counterpart's background: {{.Audience}}.
Current conversation phase: {{.Stage}}.
Stay warm, curious and respectful. Never lecture; respond to what was actually said.
Use the track_position, assess_readiness and set_goal tools to report what you learn.`

// buildDirectives assembles the full system directive bundle for one turn:
// the rendered persona, the tactical guidance block and the scripted
// question context.
func (e *Engine) buildDirectives(st *core.MemoryState, audience core.Audience, rec core.Recommendation, next *core.QuestionScript) (string, error) {
	persona, err := util.RenderTemplate(e.persona, map[string]any{
		"Audience": audience.String(),
		"Stage":    st.Stage.String(),
	})
	if err != nil {
		return "", fmt.Errorf("render persona: %w", err)
	}

	var b strings.Builder

	b.WriteString(persona)
	b.WriteString("\n\n")
	b.WriteString(tacticalBlock(st, rec))
	b.WriteString("\n\n")
	b.WriteString(e.bank.FormatQuestionContext(next, st.QuestionsAsked, st.Stage, audience))

	return b.String(), nil
}

func tacticalBlock(st *core.MemoryState, rec core.Recommendation) string {
	var b strings.Builder

	b.WriteString("TACTICAL GUIDANCE\n")
	fmt.Fprintf(&b, "Tactic: %s (intensity %d/10)\n", rec.Tactic, rec.Intensity)
	fmt.Fprintf(&b, "Why: %s\n", rec.Reasoning)
	fmt.Fprintf(&b, "Approach: %s\n", rec.SuggestedApproach)

	if len(rec.TopicsToAddress) > 0 {
		fmt.Fprintf(&b, "Topics to address: %s\n", strings.Join(rec.TopicsToAddress, ", "))
	}

	if len(rec.QuestionsToAsk) > 0 {
		b.WriteString("Questions you could ask:\n")

		for _, q := range rec.QuestionsToAsk {
			fmt.Fprintf(&b, "- %s\n", q)
		}
	}

	if len(st.SensitiveTopics) > 0 {
		fmt.Fprintf(&b, "Tread carefully around: %s\n", strings.Join(st.SensitiveTopics, ", "))
	}

	if len(st.Objections) > 0 {
		fmt.Fprintf(&b, "Standing objections so far: %d\n", len(st.Objections))
	}

	return strings.TrimRight(b.String(), "\n")
}
