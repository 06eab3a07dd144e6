// Package understanding scores how well the counterpart engaged with the
// last scripted question. The score itself is produced by the external
// text-generation collaborator; this package owns the consumer side only:
// building the scoring request, parsing a 1-10 integer out of the reply,
// clamping out-of-range values and substituting the neutral default when the
// call fails. A scoring failure never propagates to the turn.
package understanding
