package usecase

import (
	"context"

	"customer-service-chatbot/internal/chat"
	"customer-service-chatbot/internal/model"
)

// History returns the full recorded conversation for a session, oldest
// message first.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope) (chat.HistoryOutput, error) {
	if sc.SessionID == "" {
		return chat.HistoryOutput{}, chat.ErrSessionRequired
	}

	conv, ok := uc.sessions.Peek(sc.SessionID)
	if !ok {
		return chat.HistoryOutput{}, chat.ErrSessionNotFound
	}

	turns := conv.Recent(conv.Len())
	entries := make([]chat.HistoryEntry, 0, len(turns)*2)
	for _, turn := range turns {
		entries = append(entries,
			chat.HistoryEntry{
				Role:      string(turn.UserMessage.Role),
				Text:      turn.UserMessage.Text,
				Intent:    string(turn.Intent),
				Timestamp: turn.UserMessage.Timestamp,
			},
			chat.HistoryEntry{
				Role:      string(turn.AssistantMessage.Role),
				Text:      turn.AssistantMessage.Text,
				Timestamp: turn.AssistantMessage.Timestamp,
			},
		)
	}

	return chat.HistoryOutput{Entries: entries, Count: len(entries)}, nil
}

// ClearHistory wipes one session's conversation. The session itself stays
// live so a follow-up request reuses it.
func (uc *implUseCase) ClearHistory(ctx context.Context, sc model.Scope) error {
	if sc.SessionID == "" {
		return chat.ErrSessionRequired
	}

	conv, ok := uc.sessions.Peek(sc.SessionID)
	if !ok {
		return chat.ErrSessionNotFound
	}

	conv.Clear()
	uc.l.Infof(ctx, "internal.chat.usecase.ClearHistory: session=%s cleared", sc.SessionID)
	return nil
}
