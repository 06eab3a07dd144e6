package script

import "github.com/hupe1980/dialogmesh/core"

// DefaultCatalog returns the built-in scripted-question catalog covering all
// four stages. Order values are spaced by tens so custom catalogs can splice
// entries in between without renumbering.
func DefaultCatalog() []core.QuestionScript {
	return []core.QuestionScript{
		// Introduction: onboarding and background surfacing, mostly wildcard.
		{
			ID:        "intro_background",
			Stage:     core.StageIntroduction,
			Audiences: []core.Audience{core.AudienceAll},
			Question:  "Before we go further, what faith background are you coming from, if any?",
			Rationale: "Surfaces the audience segment everything downstream is tailored to.",
			FollowUpTopics: []string{
				"tradition", "scripture",
			},
			Criteria: "Counterpart names a tradition or explicitly says none.",
			Order:    10,
			Answers: []string{
				"Catholic",
				"Protestant",
				"Baptist",
				"Evangelical",
				"Atheist",
				"Agnostic",
				"Still figuring it out",
			},
		},
		{
			ID:             "intro_first_contact",
			Stage:          core.StageIntroduction,
			Audiences:      []core.Audience{core.AudienceAll},
			Question:       "Have you ever been inside an Orthodox church, or is this all new territory?",
			Rationale:      "Calibrates how much context the conversation needs to build.",
			FollowUpTopics: []string{"liturgy", "icons"},
			Criteria:       "Counterpart describes any prior exposure, even secondhand.",
			Order:          20,
			Answers:        []string{"Yes, once or twice", "Only pictures and videos", "Never"},
		},
		{
			ID:             "intro_drew_you",
			Stage:          core.StageIntroduction,
			Audiences:      []core.Audience{core.AudienceAll},
			Question:       "What made you curious enough to have this conversation?",
			Rationale:      "Names the felt need; later invitations should answer it.",
			FollowUpTopics: []string{"salvation"},
			Criteria:       "Counterpart states a motive beyond politeness.",
			Order:          30,
		},
		{
			ID:             "intro_atheist_meaning",
			Stage:          core.StageIntroduction,
			Audiences:      []core.Audience{core.AudienceAtheist, core.AudienceAgnostic},
			Question:       "Setting religion aside entirely — where do you currently look for meaning?",
			Rationale:      "Opens the conversation on their terms rather than doctrinal ones.",
			FollowUpTopics: []string{"salvation"},
			Criteria:       "Counterpart gives a substantive answer about meaning or values.",
			Order:          40,
		},

		// Differentiation: contrast with the counterpart's own tradition.
		{
			ID:             "diff_authority",
			Stage:          core.StageDifferentiation,
			Audiences:      []core.Audience{core.AudienceCatholic},
			Question:       "When East and West disagreed in the first millennium, how were disputes actually settled — by one bishop, or by councils?",
			Rationale:      "Moves the authority question from assertion to history.",
			FollowUpTopics: []string{"church_authority", "tradition"},
			Criteria:       "Counterpart engages with the conciliar model rather than restating papal primacy.",
			Order:          10,
		},
		{
			ID:             "diff_canon",
			Stage:          core.StageDifferentiation,
			Audiences:      []core.Audience{core.AudienceProtestant, core.AudienceBaptist, core.AudienceEvangelical},
			Question:       "The table of contents in your Bible isn't itself scripture — who do you trust to have gotten that list right?",
			Rationale:      "Shows sola scriptura presupposing the very tradition it discounts.",
			FollowUpTopics: []string{"scripture", "tradition"},
			Criteria:       "Counterpart wrestles with the canon's origin instead of deflecting.",
			Order:          10,
		},
		{
			ID:             "diff_worship_shape",
			Stage:          core.StageDifferentiation,
			Audiences:      []core.Audience{core.AudienceAll},
			Question:       "If you could watch Christians worship in the year 200, what do you imagine it looked like?",
			Rationale:      "Invites the historical comparison the liturgy wins.",
			FollowUpTopics: []string{"liturgy", "tradition"},
			Criteria:       "Counterpart ventures a concrete picture that can be compared to the sources.",
			Order:          20,
		},
		{
			ID:             "diff_atheist_practice",
			Stage:          core.StageDifferentiation,
			Audiences:      []core.Audience{core.AudienceAtheist, core.AudienceAgnostic},
			Question:       "Most arguments you've rejected treat faith as a set of claims. What if it's primarily a practice — does that change what kind of evidence counts?",
			Rationale:      "Reframes the epistemics before any doctrinal content.",
			FollowUpTopics: []string{"liturgy", "salvation"},
			Criteria:       "Counterpart distinguishes evaluating claims from evaluating practices.",
			Order:          30,
		},

		// Exploration: deep doctrine and practice.
		{
			ID:             "explore_icons",
			Stage:          core.StageExploration,
			Audiences:      []core.Audience{core.AudienceAll},
			Question:       "When you see an Orthodox icon, what's your honest gut reaction — and do you know why the seventh council said images belong in worship?",
			Rationale:      "Confronts the most visible difference head-on with its theology.",
			FollowUpTopics: []string{"icons", "tradition"},
			Criteria:       "Counterpart engages the incarnational argument, agree or not.",
			Order:          10,
		},
		{
			ID:             "explore_theosis",
			Stage:          core.StageExploration,
			Audiences:      []core.Audience{core.AudienceAll},
			Question:       "Orthodoxy says the goal of salvation is becoming by grace what Christ is by nature. How does that sit next to the version of salvation you grew up with?",
			Rationale:      "Theosis is the doctrinal center of gravity; everything else hangs off it.",
			FollowUpTopics: []string{"salvation"},
			Criteria:       "Counterpart compares theosis with their own soteriology in their own words.",
			Order:          20,
		},
		{
			ID:             "explore_eucharist",
			Stage:          core.StageExploration,
			Audiences:      []core.Audience{core.AudienceProtestant, core.AudienceBaptist, core.AudienceEvangelical},
			Question:       "Ignatius of Antioch, a disciple of the apostle John, called the Eucharist 'the medicine of immortality'. Was he already wrong, that early?",
			Rationale:      "Forces a date onto the claimed corruption of the church.",
			FollowUpTopics: []string{"tradition", "liturgy"},
			Criteria:       "Counterpart commits to a position on when the church allegedly erred.",
			Order:          30,
		},
		{
			ID:             "explore_mary",
			Stage:          core.StageExploration,
			Audiences:      []core.Audience{core.AudienceCatholic},
			Question:       "Where do you feel Rome's Marian dogmas went beyond what the early church actually prayed and taught?",
			Rationale:      "Uses shared veneration as the wedge for development-of-doctrine questions.",
			FollowUpTopics: []string{"mary", "tradition"},
			Criteria:       "Counterpart distinguishes ancient veneration from later dogmatic definitions.",
			Order:          40,
		},

		// Commitment: concrete invitations.
		{
			ID:             "commit_visit",
			Stage:          core.StageCommitment,
			Audiences:      []core.Audience{core.AudienceAll},
			Question:       "Words only go so far with something this embodied. Would you come stand through one Divine Liturgy — this Sunday, even?",
			Rationale:      "The single most predictive step toward conversion is attendance.",
			FollowUpTopics: []string{"liturgy"},
			Criteria:       "Counterpart gives a committed yes with a date, not a vague maybe.",
			Order:          10,
			Answers:        []string{"Yes, this Sunday", "Yes, but another week", "I need to think about it", "No"},
		},
		{
			ID:             "commit_reading",
			Stage:          core.StageCommitment,
			Audiences:      []core.Audience{core.AudienceAll},
			Question:       "Can I send you one short thing to read this week — your pick: the Didache, or 'For the Life of the World'?",
			Rationale:      "A small completed commitment makes the larger one easier.",
			FollowUpTopics: []string{"tradition", "scripture"},
			Criteria:       "Counterpart picks one and agrees to a follow-up conversation.",
			Order:          20,
			Answers:        []string{"The Didache", "For the Life of the World", "Something else", "Not right now"},
		},
		{
			ID:             "commit_priest",
			Stage:          core.StageCommitment,
			Audiences:      []core.Audience{core.AudienceAll},
			Question:       "Would you be open to meeting a priest for coffee — no commitment, just your questions and his answers?",
			Rationale:      "Transfers the relationship from the chat to a human community.",
			FollowUpTopics: []string{"church_authority"},
			Criteria:       "Counterpart agrees to be introduced.",
			Order:          30,
		},
	}
}
