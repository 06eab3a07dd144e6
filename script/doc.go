// Package script holds the scripted-question catalog and the selection logic
// that advances a conversation through it.
//
// The Bank is a static, immutable catalog of QuestionScripts tagged by stage
// and audience. The Selector picks the next unasked script for a turn,
// repeating the current one until the counterpart's understanding score
// clears the bar, forcing an onboarding question at the very start, and
// spacing scripted questions out with per-stage pacing thresholds. Once the
// stage/audience script is exhausted selection yields nil and the
// conversation flows freely.
package script
