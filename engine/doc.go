// Package engine orchestrates a full dialogue turn: it runs the signal
// detectors and tactical analyzer over the incoming user message, selects
// the next scripted question, assembles the directive bundle for the
// text-generation collaborator, applies the collaborator's tool commands,
// updates goals, scores and history, evaluates stage progression and
// persists the resulting memory record.
//
// Turns for the same conversation are serialized with a per-conversation
// mutex; turns for different conversations run independently. A turn that
// is cancelled mid-generation persists nothing.
package engine
