package store

import (
	"sync"
	"time"
)

// Memory is an in-memory store for testing.
type Memory struct {
	mu   sync.RWMutex
	runs []Run
}

// NewMemory creates a new in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Record appends a run.
func (m *Memory) Record(n int, primes string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = append(m.runs, Run{
		ID:     int64(len(m.runs) + 1),
		N:      n,
		Primes: primes,
		Ts:     time.Now().UTC().Format(tsLayout),
	})
	return nil
}

// History returns up to limit runs, newest first.
func (m *Memory) History(limit int) ([]Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Run
	for i := len(m.runs) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, m.runs[i])
	}
	return out, nil
}

// Close is a no-op for memory store.
func (m *Memory) Close() error {
	return nil
}

