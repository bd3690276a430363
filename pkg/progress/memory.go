package progress

import (
	"context"
	"slices"
	"sync"

	"github.com/matzehuels/careermap/pkg/roadmap"
)

// MemoryStore keeps snapshots in a map.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]roadmap.Progress
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string]roadmap.Progress{}}
}

func (s *MemoryStore) Load(_ context.Context, id string) (*roadmap.Progress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.data[id]
	if !ok {
		return nil, nil
	}
	p.Skills = slices.Clone(p.Skills)
	return &p, nil
}

func (s *MemoryStore) Save(_ context.Context, p roadmap.Progress) error {
	p.Skills = slices.Clone(p.Skills)
	s.mu.Lock()
	s.data[p.ID] = p
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.data, id)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
