package memory

import "sync"

// Conversation is an append-only, bounded log of turns for one session.
// When the turn count exceeds maxTurns the oldest turns are dropped first;
// eviction never reorders the remaining turns.
type Conversation struct {
	mu       sync.Mutex
	turns    []Turn
	maxTurns int

	// reqMu serializes whole requests for this session. Concurrent
	// requests for distinct sessions never contend.
	reqMu sync.Mutex
}

// NewConversation creates a conversation bounded to maxTurns.
func NewConversation(maxTurns int) *Conversation {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	return &Conversation{maxTurns: maxTurns}
}

// DefaultMaxTurns bounds a conversation when no limit is configured.
const DefaultMaxTurns = 50

// Acquire takes the exclusive per-session request lock.
func (c *Conversation) Acquire() {
	c.reqMu.Lock()
}

// Release releases the per-session request lock.
func (c *Conversation) Release() {
	c.reqMu.Unlock()
}

// Append adds a completed turn, evicting the oldest turn when full.
// It is the only mutator besides Clear.
func (c *Conversation) Append(turn Turn) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.turns = append(c.turns, turn)
	if len(c.turns) > c.maxTurns {
		overflow := len(c.turns) - c.maxTurns
		c.turns = append([]Turn(nil), c.turns[overflow:]...)
	}
}

// Recent returns the last n turns in chronological order (oldest first).
// The ordering is load-bearing: it becomes prompt history for the response
// generator. The returned slice is a copy.
func (c *Conversation) Recent(n int) []Turn {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n <= 0 || len(c.turns) == 0 {
		return nil
	}
	if n > len(c.turns) {
		n = len(c.turns)
	}

	out := make([]Turn, n)
	copy(out, c.turns[len(c.turns)-n:])
	return out
}

// Len returns the current turn count.
func (c *Conversation) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.turns)
}

// Clear resets the conversation to empty. Other sessions are unaffected.
func (c *Conversation) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.turns = nil
}
