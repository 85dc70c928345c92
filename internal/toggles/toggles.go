// Package toggles holds the process-scoped enable/disable state for
// announced events. State is deliberately not persisted: a restart
// resets every event to enabled.
package toggles

import (
	"sync"

	"github.com/nerlpattackers/ymir-discord-bot-clean/internal/domain/entity"
)

// Store is a mutex-guarded mapping from event id to enabled state.
// The command handler is the only writer and the scheduler reads once
// per tick, so a plain mutex is all the coordination needed.
type Store struct {
	mu      sync.Mutex
	enabled map[entity.EventID]bool
}

// New creates a store with every given event enabled.
func New(ids ...entity.EventID) *Store {
	s := &Store{enabled: make(map[entity.EventID]bool, len(ids))}
	for _, id := range ids {
		s.enabled[id] = true
	}
	return s
}

// Get returns the current enabled state. Events never explicitly set
// default to enabled.
func (s *Store) Get(id entity.EventID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.enabled[id]; ok {
		return v
	}
	return true
}

// Set overwrites the enabled state for an event. Validation of the id
// against the known event set is the caller's job.
func (s *Store) Set(id entity.EventID, enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enabled[id] = enabled
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() map[entity.EventID]bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[entity.EventID]bool, len(s.enabled))
	for id, v := range s.enabled {
		out[id] = v
	}
	return out
}
