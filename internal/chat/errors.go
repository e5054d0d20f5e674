package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrEmptyUtterance  = errors.New("utterance is empty")
	ErrSessionRequired = errors.New("session id is required")
	ErrSessionNotFound = errors.New("session not found")
)
