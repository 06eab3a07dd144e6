// Package core provides the foundational domain types and interfaces used by
// DialogMesh. It defines the core abstractions for:
//
//   - MemoryState (the single mutable record tracked per conversation)
//   - Stages (the ordered, forward-only phases of a conversation)
//   - Tactics and Recommendations (the posture suggested for the next reply)
//   - Audiences (the declared background of the counterpart)
//   - Goals (target behaviors tracked as achieved / not achieved)
//   - QuestionScripts (the static scripted-question catalog entries)
//   - Pluggable whole-record persistence via StateStore
//
// The package intentionally keeps implementation concerns (persistence
// backends, engine orchestration, rule tables) out of scope, exposing small
// types and interfaces to enable custom backends and extensions. All state
// transitions clamp and deduplicate at the point of write so that invariants
// hold regardless of caller discipline.
package core
