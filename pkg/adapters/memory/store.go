package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/aretw0/fabricmock/pkg/domain"
)

// Store implements ports.SnapshotStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[domain.RootTag][]byte
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[domain.RootTag][]byte),
	}
}

// Save persists the snapshot in memory.
func (s *Store) Save(ctx context.Context, snap *domain.TreeSnapshot) error {
	// Stored encoded so callers can't mutate store state through shared maps,
	// and so values round-trip the same way they do through Redis.
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[snap.RootTag] = data
	return nil
}

// Load retrieves the snapshot from memory.
func (s *Store) Load(ctx context.Context, root domain.RootTag) (*domain.TreeSnapshot, error) {
	s.mu.RLock()
	data, ok := s.data[root]
	s.mu.RUnlock()

	if !ok {
		return nil, domain.ErrSnapshotNotFound
	}

	var snap domain.TreeSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &snap, nil
}

// Delete removes the snapshot.
func (s *Store) Delete(ctx context.Context, root domain.RootTag) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, root)
	return nil
}

// List returns all stored root tags.
func (s *Store) List(ctx context.Context) ([]domain.RootTag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	roots := make([]domain.RootTag, 0, len(s.data))
	for root := range s.data {
		roots = append(roots, root)
	}
	slices.Sort(roots)
	return roots, nil
}
