// Package store provides persistence for prime enumeration runs.
package store

// Run is a single successful enumeration.
type Run struct {
	ID     int64
	N      int
	Primes string // space-separated, as printed
	Ts     string
}

// Store is the interface for run history persistence.
type Store interface {
	// Record appends a run for the given N and its printed primes.
	Record(n int, primes string) error
	// History returns up to limit runs, newest first. A limit <= 0 returns all runs.
	History(limit int) ([]Run, error)
	// Close releases resources.
	Close() error
}

const tsLayout = "2006-01-02 15:04:05"
