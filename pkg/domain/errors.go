package domain

import "errors"

// sentinel errors shared across the store and clients
var (
	// ErrNotFound indicates a missing profile or roadmap topic
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a channel identity already bound to a different email
	ErrConflict = errors.New("channel identity already linked")
)
