// Package progress decides when a conversation is ready to move to the
// next stage. Progression is forward-only: the machine only ever proposes
// the immediate successor of the current stage, and the final stage has
// no successor.
package progress
