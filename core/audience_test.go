package core

import "testing"

func TestParseAudience(t *testing.T) {
	cases := map[string]Audience{
		"catholic":    AudienceCatholic,
		"  Baptist  ": AudienceBaptist,
		"ATHEIST":     AudienceAtheist,
		"":            AudienceSeeker,
		"martian":     AudienceSeeker,
		"all":         AudienceSeeker, // wildcard is a catalog tag, not a segment
	}
	for input, want := range cases {
		if got := ParseAudience(input); got != want {
			t.Errorf("ParseAudience(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestQuestionScript_AppliesTo(t *testing.T) {
	wildcard := QuestionScript{ID: "q1", Audiences: []Audience{AudienceAll}}
	targeted := QuestionScript{ID: "q2", Audiences: []Audience{AudienceCatholic, AudienceBaptist}}

	if !wildcard.AppliesTo(AudienceAtheist) {
		t.Error("wildcard script should apply to every audience")
	}
	if !targeted.AppliesTo(AudienceBaptist) {
		t.Error("targeted script should apply to a tagged audience")
	}
	if targeted.AppliesTo(AudienceSeeker) {
		t.Error("targeted script should not apply to an untagged audience")
	}
}
