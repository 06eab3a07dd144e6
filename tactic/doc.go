// Package tactic implements the tactical analyzer: a pure, deterministic
// function from (user text, conversation memory, audience) to a
// Recommendation carrying the posture, intensity, topics and candidate
// questions for the next reply.
//
// The analyzer is heuristic by design. It classifies the message with fixed
// phrase-pattern lists, picks a base tactic from the persuasion scores in a
// fixed priority order, then applies escalation overrides for doubt and
// interest. All tables live in an injected Rules value so the behavior is
// swappable per locale or audience without code changes.
package tactic
