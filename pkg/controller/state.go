package controller

import (
	"sync"

	"github.com/matzehuels/careermap/pkg/roadmap"
)

// State is the owned container for the current roadmap. Readers get a copy;
// writers replace the whole value.
type State struct {
	mu      sync.RWMutex
	current *roadmap.Roadmap
}

// Current returns a copy of the current roadmap and whether one is set.
func (s *State) Current() (roadmap.Roadmap, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return roadmap.Roadmap{}, false
	}
	return s.current.Clone(), true
}

// Replace swaps in r.
func (s *State) Replace(r roadmap.Roadmap) {
	c := r.Clone()
	s.mu.Lock()
	s.current = &c
	s.mu.Unlock()
}

// Clear drops the current roadmap.
func (s *State) Clear() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}
