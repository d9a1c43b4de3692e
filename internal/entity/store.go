package entity

import "sync"

// ContextStore holds at most one selected entity. Every mutation bumps the
// generation counter; consumers capture the generation before issuing an
// asynchronous AI call and drop the response if the generation has moved on.
type ContextStore struct {
	mu         sync.RWMutex
	selected   Entity
	generation uint64
}

// NewContextStore returns an empty store.
func NewContextStore() *ContextStore {
	return &ContextStore{}
}

// SelectCandidate replaces the current selection unconditionally.
func (s *ContextStore) SelectCandidate(c Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = c
	s.generation++
}

// SelectCompany replaces the current selection unconditionally.
func (s *ContextStore) SelectCompany(c Company) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = c
	s.generation++
}

// Clear empties the selection. A pending command referencing the old entity
// becomes orphaned; the Command Processor treats that as a cancellation.
func (s *ContextStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
	s.generation++
}

// Selected returns the current entity, or nil when nothing is selected.
func (s *ContextStore) Selected() Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// Generation returns the current mutation count.
func (s *ContextStore) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}
