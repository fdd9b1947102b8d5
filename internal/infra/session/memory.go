package session

import (
	"context"
	"sync"
	"time"

	"loyaltybot/internal/pkg/clock"
)

// MemoryStore keeps session state in-process. Eviction is lazy: an expired
// record stays in the map until the next Get for its identity.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[int64]State
	ttl   time.Duration
	clock clock.Clock
}

func NewMemoryStore(ttl time.Duration, clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		items: make(map[int64]State),
		ttl:   ttl,
		clock: clk,
	}
}

func (s *MemoryStore) Get(_ context.Context, identity int64) (State, bool) {
	s.mu.RLock()
	state, ok := s.items[identity]
	s.mu.RUnlock()
	if !ok {
		return State{}, false
	}

	if s.clock.Now().Sub(state.LastUpdated) > s.ttl {
		s.mu.Lock()
		// Re-check under the write lock; a concurrent Put may have refreshed it.
		if cur, still := s.items[identity]; still && s.clock.Now().Sub(cur.LastUpdated) > s.ttl {
			delete(s.items, identity)
		}
		s.mu.Unlock()
		return State{}, false
	}
	return state, true
}

func (s *MemoryStore) Put(_ context.Context, identity int64, state State) {
	state.LastUpdated = s.clock.Now()
	s.mu.Lock()
	s.items[identity] = state
	s.mu.Unlock()
}

func (s *MemoryStore) Clear(_ context.Context, identity int64) {
	s.mu.Lock()
	delete(s.items, identity)
	s.mu.Unlock()
}
