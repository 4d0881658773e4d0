package dashboard

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps session state in memory and is safe for concurrent use.
// Entries expire after the configured TTL; expired entries are dropped
// lazily on access and opportunistically on writes.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

type memoryEntry struct {
	state     State
	expiresAt time.Time
}

// NewMemoryStore constructs a MemoryStore with the given TTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the state stored for sessionID, or ErrNotFound.
func (m *MemoryStore) Get(ctx context.Context, sessionID string) (State, error) {
	if err := ctx.Err(); err != nil {
		return State{}, err
	}
	m.mu.RLock()
	entry, ok := m.entries[sessionID]
	m.mu.RUnlock()
	if !ok {
		return State{}, ErrNotFound
	}
	if m.now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.entries, sessionID)
		m.mu.Unlock()
		return State{}, ErrNotFound
	}
	return entry.state, nil
}

// Put stores the state for sessionID, refreshing its TTL.
func (m *MemoryStore) Put(ctx context.Context, sessionID string, state State) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, entry := range m.entries {
		if now.After(entry.expiresAt) {
			delete(m.entries, id)
		}
	}
	m.entries[sessionID] = memoryEntry{
		state:     state,
		expiresAt: now.Add(m.ttl),
	}
	return nil
}

var _ Store = (*MemoryStore)(nil)
