package chat

import (
	"context"

	"customer-service-chatbot/internal/model"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Handle runs one request/response cycle: classify the utterance,
	// route to the matching retrieval backend, generate an answer, and
	// record the turn. It never fails because a collaborator failed;
	// the result always carries a non-empty answer.
	Handle(ctx context.Context, sc model.Scope, input HandleInput) (QueryResult, error)

	// History returns the conversation history for a session.
	History(ctx context.Context, sc model.Scope) (HistoryOutput, error)

	// ClearHistory resets one session's conversation. Other sessions are
	// unaffected.
	ClearHistory(ctx context.Context, sc model.Scope) error

	// Status reports per-component health.
	Status(ctx context.Context) StatusOutput
}
