package util

import "github.com/google/uuid"

// NewID returns a new random identifier string.
func NewID() string {
	return uuid.NewString()
}
