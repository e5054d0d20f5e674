package memory_test

import (
	"fmt"
	"sync"
	"testing"

	"customer-service-chatbot/internal/classifier"
	"customer-service-chatbot/internal/memory"
	"customer-service-chatbot/internal/model"
)

func newTurn(text string) memory.Turn {
	return memory.Turn{
		UserMessage:      model.NewUserMessage(text),
		AssistantMessage: model.NewAssistantMessage("re: " + text),
		Intent:           classifier.IntentGeneral,
	}
}

func TestConversation(t *testing.T) {
	t.Run("Append And Recent Chronological", func(t *testing.T) {
		conv := memory.NewConversation(10)
		conv.Append(newTurn("first"))
		conv.Append(newTurn("second"))
		conv.Append(newTurn("third"))

		recent := conv.Recent(2)
		if len(recent) != 2 {
			t.Fatalf("expected 2 turns, got %d", len(recent))
		}
		if recent[0].UserMessage.Text != "second" || recent[1].UserMessage.Text != "third" {
			t.Errorf("expected oldest-first ordering, got [%s, %s]",
				recent[0].UserMessage.Text, recent[1].UserMessage.Text)
		}
	})

	t.Run("Recent Larger Than Log", func(t *testing.T) {
		conv := memory.NewConversation(10)
		conv.Append(newTurn("only"))

		recent := conv.Recent(5)
		if len(recent) != 1 {
			t.Errorf("expected 1 turn, got %d", len(recent))
		}
	})

	t.Run("Recent Zero Is Empty", func(t *testing.T) {
		conv := memory.NewConversation(10)
		conv.Append(newTurn("x"))
		if got := conv.Recent(0); got != nil {
			t.Errorf("expected nil, got %d turns", len(got))
		}
	})

	t.Run("Eviction Drops Oldest First", func(t *testing.T) {
		conv := memory.NewConversation(3)
		for i := 1; i <= 5; i++ {
			conv.Append(newTurn(fmt.Sprintf("turn-%d", i)))
		}

		if conv.Len() != 3 {
			t.Fatalf("expected 3 turns after eviction, got %d", conv.Len())
		}
		recent := conv.Recent(3)
		want := []string{"turn-3", "turn-4", "turn-5"}
		for i, w := range want {
			if recent[i].UserMessage.Text != w {
				t.Errorf("position %d: expected %s, got %s", i, w, recent[i].UserMessage.Text)
			}
		}
	})

	t.Run("Clear Empties The Log", func(t *testing.T) {
		conv := memory.NewConversation(10)
		conv.Append(newTurn("x"))
		conv.Clear()
		if conv.Len() != 0 {
			t.Errorf("expected empty conversation, got %d turns", conv.Len())
		}
	})

	t.Run("Concurrent Appends Are Safe", func(t *testing.T) {
		conv := memory.NewConversation(1000)
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				conv.Append(newTurn(fmt.Sprintf("turn-%d", n)))
			}(i)
		}
		wg.Wait()
		if conv.Len() != 50 {
			t.Errorf("expected 50 turns, got %d", conv.Len())
		}
	})
}

func TestStore(t *testing.T) {
	t.Run("Get Creates On First Use", func(t *testing.T) {
		store := memory.NewStore(memory.StoreConfig{MaxSessions: 10, MaxTurns: 5})
		conv := store.Get("session-a")
		if conv == nil {
			t.Fatal("expected conversation")
		}
		if store.Len() != 1 {
			t.Errorf("expected 1 session, got %d", store.Len())
		}
	})

	t.Run("Get Returns Same Conversation", func(t *testing.T) {
		store := memory.NewStore(memory.StoreConfig{MaxSessions: 10, MaxTurns: 5})
		a := store.Get("session-a")
		a.Append(newTurn("hello"))

		again := store.Get("session-a")
		if again.Len() != 1 {
			t.Error("expected the same conversation on repeated Get")
		}
	})

	t.Run("Sessions Are Isolated", func(t *testing.T) {
		store := memory.NewStore(memory.StoreConfig{MaxSessions: 10, MaxTurns: 5})
		store.Get("session-a").Append(newTurn("hello"))

		if store.Get("session-b").Len() != 0 {
			t.Error("session-b must not see session-a turns")
		}

		store.Get("session-a").Clear()
		store.Get("session-b").Append(newTurn("b-only"))
		if store.Get("session-b").Len() != 1 {
			t.Error("clearing session-a must not touch session-b")
		}
	})

	t.Run("Peek Does Not Create", func(t *testing.T) {
		store := memory.NewStore(memory.StoreConfig{MaxSessions: 10, MaxTurns: 5})
		if _, ok := store.Peek("missing"); ok {
			t.Error("expected no conversation for unknown session")
		}
		if store.Len() != 0 {
			t.Errorf("Peek must not create sessions, got %d", store.Len())
		}
	})

	t.Run("Capacity Evicts Least Recently Used", func(t *testing.T) {
		store := memory.NewStore(memory.StoreConfig{MaxSessions: 2, MaxTurns: 5})
		store.Get("a")
		store.Get("b")
		store.Get("c")

		if store.Len() != 2 {
			t.Fatalf("expected 2 sessions after eviction, got %d", store.Len())
		}
		if _, ok := store.Peek("a"); ok {
			t.Error("expected oldest session to be evicted")
		}
	})

	t.Run("Concurrent Get Shares One Conversation", func(t *testing.T) {
		store := memory.NewStore(memory.StoreConfig{MaxSessions: 10, MaxTurns: 100})
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				store.Get("shared").Append(newTurn("x"))
			}()
		}
		wg.Wait()
		if got := store.Get("shared").Len(); got != 20 {
			t.Errorf("expected 20 turns in the shared session, got %d", got)
		}
	})
}
