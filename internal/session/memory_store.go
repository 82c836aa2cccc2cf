package session

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu   sync.RWMutex
	runs map[string]Run
}

// NewMemoryStore is the single-process store used when REDIS_ADDR is not
// set, and in tests. Runs are stored by value; mutations only take effect
// through a later Save, matching the Redis store's semantics.
func NewMemoryStore() Store {
	return &memoryStore{runs: make(map[string]Run)}
}

func (s *memoryStore) Save(_ context.Context, run *Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.Token] = *run
	return nil
}

func (s *memoryStore) Get(_ context.Context, token string) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[token]
	if !ok {
		return nil, ErrNotFound
	}
	return &run, nil
}

func (s *memoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.runs, token)
	return nil
}
