package store

import (
	"context"
	"sync"
)

// MemoryStore keeps the snapshot in memory. It backs unit tests and lets
// them inject persistence failures to exercise rollback paths.
type MemoryStore struct {
	mu          sync.Mutex
	snap        Snapshot
	written     bool
	quarantined bool

	// LoadErr and SaveErr, when set, are returned by the corresponding
	// operation instead of touching the stored snapshot.
	LoadErr error
	SaveErr error
}

// NewMemoryStore builds an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the last saved snapshot, or ErrNotExist before any Save.
func (s *MemoryStore) Load(_ context.Context) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return Snapshot{}, s.LoadErr
	}
	if !s.written {
		return Snapshot{}, ErrNotExist
	}
	return s.snap, nil
}

// Save replaces the stored snapshot.
func (s *MemoryStore) Save(_ context.Context, snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.snap = snap
	s.written = true
	return nil
}

// Quarantine sets the stored snapshot aside: the store reads as empty
// until the next Save, and the quarantine is observable via Quarantined.
func (s *MemoryStore) Quarantine(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.written = false
	s.quarantined = true
	return nil
}

// Saves reports whether at least one snapshot has been written.
func (s *MemoryStore) Saves() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.written
}

// Quarantined reports whether Quarantine has been called.
func (s *MemoryStore) Quarantined() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quarantined
}
