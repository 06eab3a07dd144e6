package core

// QuestionScript is a single immutable entry of the scripted-question catalog.
// Scripts are defined statically, tagged by stage and audience, and carry an
// integer Order that defines their sequence within a (stage, audience) pair.
type QuestionScript struct {
	// ID uniquely identifies the script across the whole catalog.
	ID string `json:"id"`
	// Stage the script belongs to.
	Stage Stage `json:"stage"`
	// Audiences the script targets; may include the wildcard AudienceAll.
	Audiences []Audience `json:"audiences"`
	// Question is the prompt text handed to the text-generation collaborator.
	Question string `json:"question"`
	// Rationale explains what the question is meant to surface.
	Rationale string `json:"rationale"`
	// FollowUpTopics tags topics a reply to this question should open up.
	FollowUpTopics []string `json:"follow_up_topics,omitempty"`
	// Criteria describes how engagement with the question is judged.
	Criteria string `json:"criteria,omitempty"`
	// Order defines the sequence within a stage+audience; lower comes first.
	Order int `json:"order"`
	// Answers optionally lists predefined answer options for the counterpart.
	Answers []string `json:"answers,omitempty"`
}

// AppliesTo reports whether the script targets the given audience, either
// directly or via the wildcard tag.
func (q QuestionScript) AppliesTo(audience Audience) bool {
	for _, tag := range q.Audiences {
		if tag == AudienceAll || tag == audience {
			return true
		}
	}
	return false
}
