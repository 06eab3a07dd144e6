// Package state provides storage backends for conversation memory
// records. All implementations follow whole-record commit semantics: a
// Save persists the complete MemoryState or nothing, and a Load for an
// unknown or unreadable conversation returns a fresh default record
// rather than an error. Durable backends live in subpackages so their
// driver dependencies stay optional for callers that only need the
// in-memory store.
package state
