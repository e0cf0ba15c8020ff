package primes

import (
	"fmt"
	"io"

	"nickandperla.net/primes/internal/store"
)

// Option configures a Runtime.
type Option func(*Runtime) error

// Store interface for custom stores.
type Store = store.Store

// Run is a recorded enumeration.
type Run = store.Run

// WithInput sets the reader N is read from.
func WithInput(r io.Reader) Option {
	return func(rt *Runtime) error {
		rt.input = r
		return nil
	}
}

// WithOutput sets the io.Writer for the prompt, messages and primes.
func WithOutput(w io.Writer) Option {
	return func(rt *Runtime) error {
		rt.output = w
		return nil
	}
}

// WithPromptMode controls when the input prompt is printed.
func WithPromptMode(mode PromptMode) Option {
	return func(rt *Runtime) error {
		rt.promptMode = mode
		return nil
	}
}

// WithSQLiteStore records runs in a SQLite database at the given path.
func WithSQLiteStore(path string) Option {
	return func(rt *Runtime) error {
		s, err := store.NewSQLite(path)
		if err != nil {
			return fmt.Errorf("open history database %s: %w", path, err)
		}
		rt.store = s
		return nil
	}
}

// WithMemoryStore records runs in memory (for testing).
func WithMemoryStore() Option {
	return func(rt *Runtime) error {
		rt.store = store.NewMemory()
		return nil
	}
}

// WithStore records runs in a custom store. The Runtime closes it on Close.
func WithStore(s Store) Option {
	return func(rt *Runtime) error {
		rt.store = s
		return nil
	}
}

// PromptMode controls when the input prompt is printed.
type PromptMode int

// Prompt mode constants.
const (
	PromptAlways PromptMode = iota
	PromptAuto              // only when input is a terminal
	PromptNever
)

// ParsePromptMode parses a string into a PromptMode.
func ParsePromptMode(s string) (PromptMode, bool) {
	switch s {
	case "always":
		return PromptAlways, true
	case "auto":
		return PromptAuto, true
	case "never":
		return PromptNever, true
	}
	return PromptAlways, false
}

func (m PromptMode) String() string {
	switch m {
	case PromptAuto:
		return "auto"
	case PromptNever:
		return "never"
	default:
		return "always"
	}
}
