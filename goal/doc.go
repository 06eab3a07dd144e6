// Package goal checks incoming user messages against per-goal phrase
// patterns and marks conversion goals achieved. Achievement is
// irreversible: once a goal matches, later messages never reset it.
package goal
