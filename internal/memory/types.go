package memory

import (
	"customer-service-chatbot/internal/classifier"
	"customer-service-chatbot/internal/model"
)

// Turn is one complete user/assistant exchange plus its routing metadata.
// It is created atomically after a request fully completes; a partially
// answered request never produces a turn.
type Turn struct {
	UserMessage      model.Message
	AssistantMessage model.Message
	Intent           classifier.Intent
	SourceContext    []string
}
