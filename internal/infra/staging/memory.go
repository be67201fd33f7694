package staging

import (
	"context"
	"sync"
	"time"

	"gift-commerce/internal/domain/payment"
	"gift-commerce/internal/pkg/clock"
	"gift-commerce/internal/usecase/shared"
)

type memoryEntry struct {
	raw       []byte
	expiresAt time.Time
}

// MemoryStore is a single-process store for development and tests.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	clock   clock.Clock
}

func NewMemoryStore(clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		clock:   clk,
	}
}

func (s *MemoryStore) Put(_ context.Context, token string, batch *payment.StagedBatch, ttl time.Duration) error {
	raw, err := encode(token, batch, ttl)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	if e, ok := s.entries[token]; ok && now.Before(e.expiresAt) {
		return shared.ErrStagingKeyExists
	}
	s.entries[token] = memoryEntry{raw: raw, expiresAt: now.Add(ttl)}
	return nil
}

func (s *MemoryStore) TakeIfPresent(_ context.Context, token string) (*payment.StagedBatch, bool, error) {
	s.mu.Lock()
	e, ok := s.entries[token]
	if ok {
		delete(s.entries, token)
	}
	s.mu.Unlock()

	if !ok || !s.clock.Now().Before(e.expiresAt) {
		return nil, false, nil
	}

	batch, err := decode(e.raw)
	if err != nil {
		return nil, false, err
	}
	return batch, true, nil
}

// Len counts live and expired entries; expired ones are dropped lazily.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
