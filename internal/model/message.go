package model

import "time"

// Role identifies the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single utterance in a conversation. Immutable once created.
type Message struct {
	Role      Role
	Text      string
	Timestamp time.Time
}

// NewUserMessage builds a user message stamped with the current time.
func NewUserMessage(text string) Message {
	return Message{Role: RoleUser, Text: text, Timestamp: time.Now()}
}

// NewAssistantMessage builds an assistant message stamped with the current time.
func NewAssistantMessage(text string) Message {
	return Message{Role: RoleAssistant, Text: text, Timestamp: time.Now()}
}
