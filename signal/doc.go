// Package signal classifies a single user message into memory updates: it
// detects objections (contrast markers, disagreement, appeals to a counter
// authority) and negative reactions that mark the preceding topic as
// sensitive. Detection is deliberately simple, rule based and explainable;
// the pattern tables are injected data, not hard-coded behavior, so they can
// be swapped per locale or audience without code changes.
//
// Detectors mutate the conversation's MemoryState in place and have no other
// side effects. The absence of a match is not an error.
package signal
