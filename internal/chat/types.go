package chat

import (
	"time"

	"customer-service-chatbot/internal/classifier"
)

// HandleInput is the input for one chat request.
type HandleInput struct {
	Utterance string
	Mode      classifier.Mode
}

// QueryResult is the outcome of one chat request. It is returned to the
// caller and not stored beyond the turn it produced.
type QueryResult struct {
	Intent classifier.Intent
	// Answer is always non-empty, even on full backend failure.
	Answer string
	// SourceContext holds the retrieved context the answer drew on:
	// guide snippets or serialized contract rows.
	SourceContext []string
	// GeneratedSQL is the statement produced on the contract path,
	// whether or not the validator accepted it. Empty otherwise.
	GeneratedSQL string
	// Diagnostics carries collaborator failure reasons. Degradations are
	// never silently swallowed.
	Diagnostics []string
	// ClassifierFallback is true when model classification failed and
	// the keyword classifier answered instead.
	ClassifierFallback bool
}

// HistoryEntry is one message in a session's history.
type HistoryEntry struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Intent    string    `json:"intent,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryOutput is the ordered history of a session, oldest first.
type HistoryOutput struct {
	Entries []HistoryEntry `json:"entries"`
	Count   int            `json:"count"`
}

// ComponentStatus is the health of one component.
type ComponentStatus struct {
	Healthy bool   `json:"healthy"`
	Detail  string `json:"detail,omitempty"`
}

// StatusOutput maps component name to health.
type StatusOutput map[string]ComponentStatus
