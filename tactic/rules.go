package tactic

import "github.com/hupe1980/dialogmesh/core"

// Rules bundles every table the analyzer consults. All entries are plain
// data; construct a custom value (or start from DefaultRules) to localize or
// retune the heuristics.
type Rules struct {
	// Classification pattern lists, matched case-insensitively and
	// independently of each other; one message may trigger several.
	QuestioningPatterns []string
	DefensivePatterns   []string
	DoubtPatterns       []string
	InterestPatterns    []string

	// TopicPatterns maps a topic tag to the patterns that mention it.
	TopicPatterns map[string][]string

	// TopicPriorities lists each audience's priority topics in order.
	TopicPriorities map[core.Audience][]string

	// Questions maps (audience, tactic) to canned candidate questions.
	Questions map[core.Audience]map[core.Tactic][]string

	// Reasonings and Approaches carry the fixed narrative per tactic.
	Reasonings map[core.Tactic]string
	Approaches map[core.Tactic]string

	// Refinements optionally append audience-specific guidance to the
	// suggested approach.
	Refinements map[core.Audience]string
}

// DefaultRules returns the built-in English rule tables.
func DefaultRules() Rules {
	return Rules{
		QuestioningPatterns: []string{
			`\?`,
			`what (is|are|do|does)`,
			`why (do|does|is|are)`,
			`how (do|does|did|can)`,
			`can you explain`,
			`i('?m| am) curious`,
			`wondering`,
		},
		DefensivePatterns: []string{
			`stop`,
			`leave me alone`,
			`i'?m not interested`,
			`don'?t push`,
			`you'?re wrong`,
			`back off`,
			`none of your business`,
			`whatever`,
		},
		DoubtPatterns: []string{
			`never thought`,
			`makes sense`,
			`good point`,
			`maybe you'?re right`,
			`hadn'?t considered`,
			`i wonder if`,
			`starting to question`,
			`not so sure anymore`,
		},
		InterestPatterns: []string{
			`sounds interesting`,
			`i'?d (like|love) to (know|hear|learn)`,
			`where can i learn`,
			`fascinating`,
			`intriguing`,
		},
		TopicPatterns: map[string][]string{
			"icons":            {`\bicons?\b`, `images in (church|worship)`},
			"mary":             {`\bmary\b`, `theotokos`, `mother of god`},
			"saints":           {`\bsaints?\b`, `intercession`},
			"tradition":        {`\btradition\b`, `church fathers`},
			"scripture":        {`\bbible\b`, `\bscripture\b`, `sola scriptura`},
			"liturgy":          {`\bliturgy\b`, `\bworship\b`, `\bmass\b`, `\bservice\b`},
			"salvation":        {`\bsalvation\b`, `\bsaved\b`, `theosis`},
			"church_authority": {`\bpope\b`, `\bauthority\b`, `papacy`, `magisterium`},
		},
		TopicPriorities: map[core.Audience][]string{
			core.AudienceCatholic:    {"church_authority", "tradition", "liturgy"},
			core.AudienceProtestant:  {"tradition", "scripture", "liturgy"},
			core.AudienceBaptist:     {"tradition", "scripture", "salvation"},
			core.AudienceEvangelical: {"liturgy", "tradition", "salvation"},
			core.AudienceAtheist:     {"salvation", "liturgy", "tradition"},
			core.AudienceAgnostic:    {"salvation", "liturgy", "icons"},
			core.AudienceSeeker:      {"liturgy", "salvation", "icons"},
		},
		Questions: defaultQuestionTable(),
		Reasonings: map[core.Tactic]string{
			core.TacticAttack:   "Resistance is high but not defensive; a direct challenge to a weak point can dislodge a settled assumption.",
			core.TacticProbe:    "The counterpart is engaged enough to explore; open questions will surface the beliefs worth addressing.",
			core.TacticPresent:  "Openness is moderate to high; affirmative teaching will land better than confrontation right now.",
			core.TacticPressure: "Openness is very high; this is the moment to push toward a concrete next step.",
			core.TacticSoften:   "Resistance or defensiveness is high; easing off preserves the relationship and keeps the conversation alive.",
		},
		Approaches: map[core.Tactic]string{
			core.TacticAttack:   "Name the tension in their position plainly, then ask them to resolve it. Stay courteous; challenge the idea, not the person.",
			core.TacticProbe:    "Ask one open question at a time and let their answers steer which topic to deepen.",
			core.TacticPresent:  "Teach positively from the shared ground you have established; use concrete imagery over abstraction.",
			core.TacticPressure: "Make a specific, time-bound invitation and ask for a yes or no.",
			core.TacticSoften:   "Acknowledge their feelings, concede what can honestly be conceded, and lower the stakes of the exchange.",
		},
		Refinements: map[core.Audience]string{
			core.AudienceCatholic:    "Lean on the shared first millennium; avoid framing this as Rome versus everyone.",
			core.AudienceProtestant:  "Ground every claim in scripture first, then show the tradition carrying it.",
			core.AudienceBaptist:     "Expect sola scriptura pushback; answer from the canon's own history.",
			core.AudienceEvangelical: "Emphasize encounter and worship over institutional argument.",
			core.AudienceAtheist:     "Skip appeals to authority entirely; argue from beauty, history and lived practice.",
			core.AudienceAgnostic:    "Keep claims modest and experiential; invite rather than assert.",
		},
	}
}

func defaultQuestionTable() map[core.Audience]map[core.Tactic][]string {
	return map[core.Audience]map[core.Tactic][]string{
		core.AudienceCatholic: {
			core.TacticAttack:   {"If papal supremacy is essential, why did the first millennium church function without it?", "How do you reconcile Vatican I with the councils' conciliar model?"},
			core.TacticProbe:    {"What does the papacy mean to you personally?", "Which parts of the Mass feel most ancient to you?"},
			core.TacticPresent:  {"May I describe how the Orthodox kept the liturgy you almost recognize?", "Can I show you what the undivided church believed about authority?"},
			core.TacticPressure: {"Would you come to a Divine Liturgy this Sunday and compare for yourself?"},
			core.TacticSoften:   {"What do you love most about your parish?"},
		},
		core.AudienceProtestant: {
			core.TacticAttack:   {"Where does scripture itself list the books of scripture?", "Who decided your canon, and by what authority?"},
			core.TacticProbe:    {"How does your congregation decide disputed interpretations?", "What does worship look like for you on an ordinary Sunday?"},
			core.TacticPresent:  {"May I walk you through how the early church read these same passages?"},
			core.TacticPressure: {"Would you visit a vespers service this week and tell me what you notice?"},
			core.TacticSoften:   {"What first drew you to your church?"},
		},
		core.AudienceBaptist: {
			core.TacticAttack:   {"If the church fell into error for 1500 years, what happens to the gates-of-hell promise?", "Where was your church before 1609?"},
			core.TacticProbe:    {"What does baptism accomplish, in your understanding?", "How do you read John 6 in your tradition?"},
			core.TacticPresent:  {"May I share how the earliest Christians described the Eucharist?"},
			core.TacticPressure: {"Would you read the Didache this week? It is shorter than one sermon."},
			core.TacticSoften:   {"Tell me about the community at your church."},
		},
		core.AudienceEvangelical: {
			core.TacticAttack:   {"If worship style is neutral, why did every ancient church worship liturgically?"},
			core.TacticProbe:    {"What does a powerful worship experience feel like for you?", "Where do you go when faith feels dry?"},
			core.TacticPresent:  {"May I describe what the liturgy does that a concert cannot?"},
			core.TacticPressure: {"Come stand through one liturgy — would Saturday evening work?"},
			core.TacticSoften:   {"What has God been doing in your life lately?"},
		},
		core.AudienceAtheist: {
			core.TacticAttack:   {"If beauty and meaning are illusions, why do they bind every human culture?"},
			core.TacticProbe:    {"What would count as evidence for you?", "Was there ever a moment the world felt charged with meaning?"},
			core.TacticPresent:  {"May I explain why Orthodoxy starts from practice rather than propositions?"},
			core.TacticPressure: {"Would you visit one service purely as an observer?"},
			core.TacticSoften:   {"What do you value most about the life you have built?"},
		},
		core.AudienceAgnostic: {
			core.TacticAttack:   {"Is permanent suspension of judgment livable, or just deferred?"},
			core.TacticProbe:    {"What keeps you from ruling faith out entirely?"},
			core.TacticPresent:  {"May I describe a tradition that welcomes doubt inside the practice?"},
			core.TacticPressure: {"Would you try standing in one vespers service this month?"},
			core.TacticSoften:   {"What questions matter most to you right now?"},
		},
		core.AudienceSeeker: {
			core.TacticAttack:   {"You have sampled many traditions — what disqualified the oldest one?"},
			core.TacticProbe:    {"What are you actually looking for in a faith community?"},
			core.TacticPresent:  {"May I sketch what makes Orthodox worship unlike anything you have tried?"},
			core.TacticPressure: {"Pick a Sunday this month and come see it; which one works?"},
			core.TacticSoften:   {"What has your search taught you so far?"},
		},
	}
}
