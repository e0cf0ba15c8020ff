// Package primes provides the public API for listing the first N primes.
package primes

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
	"nickandperla.net/primes/internal/prime"
)

// Prompt is printed before N is read.
const Prompt = "Enter the value of N (the number of first prime numbers to display): "

// InvalidInputError reports an N that is not a positive integer.
type InvalidInputError struct {
	Input string // offending token, empty when no input was given
}

func (e *InvalidInputError) Error() string {
	return "N must be a positive integer."
}

// Runtime reads N, enumerates primes and optionally records each run.
type Runtime struct {
	input      io.Reader
	output     io.Writer
	promptMode PromptMode
	store      Store
}

// New creates a runtime with the given options. Input and output default to
// os.Stdin and os.Stdout.
func New(opts ...Option) (*Runtime, error) {
	r := &Runtime{
		input:  os.Stdin,
		output: os.Stdout,
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			r.Close()
			return nil, err
		}
	}
	return r, nil
}

// ReadN prints the prompt (per prompt mode) and reads the first
// whitespace-delimited token as N. Missing, malformed and out-of-range tokens
// are reported as *InvalidInputError.
func (r *Runtime) ReadN() (int, error) {
	if r.shouldPrompt() {
		if _, err := io.WriteString(r.output, Prompt); err != nil {
			return 0, err
		}
	}

	scanner := bufio.NewScanner(r.input)
	scanner.Split(bufio.ScanWords)
	if !scanner.Scan() {
		err := scanner.Err()
		if err == nil || errors.Is(err, bufio.ErrTooLong) {
			return 0, &InvalidInputError{}
		}
		return 0, fmt.Errorf("read N: %w", err)
	}

	tok := scanner.Text()
	n, err := strconv.Atoi(tok)
	if err != nil || n <= 0 {
		return 0, &InvalidInputError{Input: tok}
	}
	return n, nil
}

// Enumerate returns the first n primes and records the run when a store is
// configured.
func (r *Runtime) Enumerate(n int) ([]int, error) {
	ps := make([]int, 0, min(max(n, 0), 1024))
	line, err := r.generate(n, func(p int) error {
		ps = append(ps, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := r.record(n, line); err != nil {
		return nil, err
	}
	return ps, nil
}

// Run reads N and prints the header line followed by the primes, each prime
// written as it is found.
// On invalid input it prints the error message and returns *InvalidInputError.
func (r *Runtime) Run() error {
	n, err := r.ReadN()
	if err != nil {
		var invalid *InvalidInputError
		if errors.As(err, &invalid) {
			if _, werr := fmt.Fprintln(r.output, invalid.Error()); werr != nil {
				return werr
			}
		}
		return err
	}

	w := bufio.NewWriter(r.output)
	if _, err := fmt.Fprintf(w, "The first %d prime numbers are:\n", n); err != nil {
		return err
	}
	count := 0
	line, err := r.generate(n, func(p int) error {
		if count > 0 {
			w.WriteByte(' ')
		}
		count++
		// bufio.Writer errors are sticky; this stops generation once output fails.
		_, err := w.WriteString(strconv.Itoa(p))
		return err
	})
	if err != nil {
		w.Flush()
		return err
	}
	w.WriteByte('\n')
	if err := w.Flush(); err != nil {
		return err
	}
	return r.record(n, line)
}

// History returns up to limit recorded runs, newest first.
func (r *Runtime) History(limit int) ([]Run, error) {
	if r.store == nil {
		return nil, errors.New("no history store configured")
	}
	return r.store.History(limit)
}

// Close releases resources.
func (r *Runtime) Close() error {
	if r.store != nil {
		return r.store.Close()
	}
	return nil
}

// generate validates n and passes the first n primes to yield in order,
// stopping at the first yield error. When a store is configured it also
// returns the primes in their printed form.
func (r *Runtime) generate(n int, yield func(int) error) (string, error) {
	if n <= 0 {
		return "", &InvalidInputError{Input: strconv.Itoa(n)}
	}
	var line strings.Builder
	found := 0
	for p := range prime.All() {
		if err := yield(p); err != nil {
			return "", err
		}
		if r.store != nil {
			if found > 0 {
				line.WriteByte(' ')
			}
			line.WriteString(strconv.Itoa(p))
		}
		found++
		if found == n {
			break
		}
	}
	return line.String(), nil
}

func (r *Runtime) record(n int, line string) error {
	if r.store == nil {
		return nil
	}
	if err := r.store.Record(n, line); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

func (r *Runtime) shouldPrompt() bool {
	switch r.promptMode {
	case PromptNever:
		return false
	case PromptAuto:
		f, ok := r.input.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	default:
		return true
	}
}
