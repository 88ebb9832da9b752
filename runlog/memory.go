package runlog

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-memory Store, useful for tests and one-shot CLI runs.
type MemoryStore struct {
	mu   sync.RWMutex
	runs []*Run
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Record(ctx context.Context, run *Run) error {
	prepare(run)
	s.mu.Lock()
	defer s.mu.Unlock()
	saved := *run
	s.runs = append(s.runs, &saved)
	return nil
}

func (s *MemoryStore) List(ctx context.Context, docHash string) ([]*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Run
	for _, r := range s.runs {
		if docHash == "" || r.DocHash == docHash {
			saved := *r
			out = append(out, &saved)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *MemoryStore) Close() error { return nil }
