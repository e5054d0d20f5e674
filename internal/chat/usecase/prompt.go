package usecase

import (
	"fmt"
	"strings"

	"customer-service-chatbot/internal/memory"
	"customer-service-chatbot/pkg/llmprovider"
)

// AnswerTemperature keeps answers grounded in the provided context while
// leaving room for natural phrasing.
const AnswerTemperature = 0.3

// buildRequest assembles the generation request: system prompt, recent
// history as alternating messages, and the current utterance with its
// retrieved context inlined.
func (uc *implUseCase) buildRequest(utterance string, history []memory.Turn, sourceContext []string) *llmprovider.Request {
	messages := make([]llmprovider.Message, 0, len(history)*2+1)
	for _, turn := range history {
		messages = append(messages,
			llmprovider.Message{Role: string(turn.UserMessage.Role), Text: turn.UserMessage.Text},
			llmprovider.Message{Role: string(turn.AssistantMessage.Role), Text: turn.AssistantMessage.Text},
		)
	}
	messages = append(messages, llmprovider.Message{Role: "user", Text: composeUserPrompt(utterance, sourceContext)})

	return &llmprovider.Request{
		SystemInstruction: uc.cfg.SystemPrompt,
		Messages:          messages,
		Temperature:       AnswerTemperature,
	}
}

// composeUserPrompt inlines retrieved context above the question. With no
// context the utterance passes through untouched.
func composeUserPrompt(utterance string, sourceContext []string) string {
	if len(sourceContext) == 0 {
		return utterance
	}

	var b strings.Builder
	b.WriteString("Use the following context to answer. If the context does not contain the answer, say so.\n\n")
	for _, block := range sourceContext {
		b.WriteString(block)
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "Question: %s", utterance)
	return b.String()
}
