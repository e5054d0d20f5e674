package model

// Scope carries per-request identity through use cases.
type Scope struct {
	SessionID string
	RequestID string
}
