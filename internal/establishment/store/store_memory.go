// Package store persists establishments for the Establishment bounded context.
//
// Implementations return sentinel errors for infrastructure facts (missing,
// duplicate); the service layer translates those into coded domain errors.
package store

import (
	"context"
	"sort"
	"sync"

	"edubase/internal/establishment/domain"
	"edubase/pkg/platform/sentinel"
)

// InMemoryStore keeps the initial implementation lightweight and testable.
// It intentionally favors clarity over performance.
type InMemoryStore struct {
	mu             sync.RWMutex
	establishments map[domain.URN]domain.Establishment
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{establishments: make(map[domain.URN]domain.Establishment)}
}

// Save stores an establishment under its URN. Registering the same URN twice
// returns sentinel.ErrConflict; records are immutable once written.
func (s *InMemoryStore) Save(_ context.Context, est domain.Establishment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.establishments[est.ID()]; exists {
		return sentinel.ErrConflict
	}
	s.establishments[est.ID()] = est
	return nil
}

func (s *InMemoryStore) FindByURN(_ context.Context, urn domain.URN) (domain.Establishment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if est, ok := s.establishments[urn]; ok {
		return est, nil
	}
	return domain.Establishment{}, sentinel.ErrNotFound
}

// List returns all establishments ordered by URN.
func (s *InMemoryStore) List(_ context.Context) ([]domain.Establishment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Establishment, 0, len(s.establishments))
	for _, est := range s.establishments {
		out = append(out, est)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID().Value() < out[j].ID().Value()
	})
	return out, nil
}
