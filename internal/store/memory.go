// internal/store/memory.go
//
// In-memory implementation of the Store interface.
//
// Characteristics:
//   - Keeps results in insertion order in a slice.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package store

import (
	"context"
	"sync"
)

// memory is an in-memory slice-based Store implementation.
type memory struct {
	mu      sync.RWMutex // guards results
	results []Result
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{}
}

// Record appends the result.
func (m *memory) Record(ctx context.Context, r Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, r)
	return nil
}

// Tally walks the results oldest first.
func (m *memory) Tally(ctx context.Context) (Tally, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var t Tally
	for _, r := range m.results {
		t = t.add(r.Outcome)
	}
	return t, nil
}

func (m *memory) Close() error { return nil }

// add folds one outcome (in chronological order) into the tally.
func (t Tally) add(o Outcome) Tally {
	switch o {
	case OutcomeWon:
		t.Played++
		t.Won++
		t.Streak++
	case OutcomeLost:
		t.Played++
		t.Lost++
		t.Streak = 0
	}
	return t
}
