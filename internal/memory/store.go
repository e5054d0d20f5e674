package memory

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Store holds one Conversation per session. Sessions are created on first
// use and torn down by TTL expiry or capacity eviction, so idle sessions
// do not accumulate. Conversations are never shared across sessions.
type Store struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, *Conversation]
	maxTurns int
}

// StoreConfig configures the session store.
type StoreConfig struct {
	MaxSessions int
	MaxTurns    int
	SessionTTL  time.Duration
}

// NewStore creates a session store.
func NewStore(cfg StoreConfig) *Store {
	maxSessions := cfg.MaxSessions
	if maxSessions <= 0 {
		maxSessions = 1000
	}
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}

	return &Store{
		sessions: expirable.NewLRU[string, *Conversation](maxSessions, nil, ttl),
		maxTurns: cfg.MaxTurns,
	}
}

// Get returns the conversation for a session, creating it on first use.
// The create-or-get is guarded so concurrent first requests for the same
// session share one conversation.
func (s *Store) Get(sessionID string) *Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	if conv, ok := s.sessions.Get(sessionID); ok {
		return conv
	}

	conv := NewConversation(s.maxTurns)
	s.sessions.Add(sessionID, conv)
	return conv
}

// Peek returns the conversation for a session without creating one.
func (s *Store) Peek(sessionID string) (*Conversation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions.Get(sessionID)
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions.Len()
}
