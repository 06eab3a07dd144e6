// Package command converts tool calls emitted by the text-generation
// collaborator into typed commands and applies them to conversation
// state. Each tool call is parsed into exactly one command value; a
// single dispatcher owns all state mutation, so there is no stringly
// typed tool output anywhere downstream.
package command
