package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Store persists carts keyed by a session identifier.
type Store interface {
	// Load returns the session's cart, or an empty cart if none is stored.
	Load(ctx context.Context, sessionID string) (*Cart, error)

	// Save replaces the session's cart.
	Save(ctx context.Context, sessionID string, c *Cart) error

	// Delete removes the session's cart.
	Delete(ctx context.Context, sessionID string) error
}

// memoryStore keeps carts in process memory. Carts are stored encoded so
// callers never share a mutable cart with the store.
type memoryStore struct {
	mu    sync.Mutex
	carts map[string][]byte
}

// NewMemoryStore creates an in-process cart store.
func NewMemoryStore() Store {
	return &memoryStore{carts: make(map[string][]byte)}
}

func (s *memoryStore) Load(_ context.Context, sessionID string) (*Cart, error) {
	s.mu.Lock()
	raw, ok := s.carts[sessionID]
	s.mu.Unlock()

	if !ok {
		return New(), nil
	}
	return decode(raw)
}

func (s *memoryStore) Save(_ context.Context, sessionID string, c *Cart) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	s.mu.Lock()
	s.carts[sessionID] = raw
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.carts, sessionID)
	s.mu.Unlock()
	return nil
}

func decode(raw []byte) (*Cart, error) {
	c := New()
	if err := json.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	if c.Items == nil {
		c.Items = []LineItem{}
	}
	return c, nil
}
