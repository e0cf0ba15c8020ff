// Command primes prints the first N prime numbers, N read from standard input.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"nickandperla.net/primes/pkg/primes"
)

func main() {
	var (
		promptF = flag.String("prompt", "always", "Prompt mode: always, auto, or never")
		dbPath  = flag.String("db", "", "SQLite database path for run history (empty disables history)")
		history = flag.Int("history", 0, "List the last N recorded runs and exit (requires -db)")
	)

	flag.Parse()

	mode, ok := primes.ParsePromptMode(*promptF)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown prompt mode: %s (use always, auto, or never)\n", *promptF)
		os.Exit(1)
	}

	opts := []primes.Option{primes.WithPromptMode(mode)}
	if *dbPath != "" {
		opts = append(opts, primes.WithSQLiteStore(*dbPath))
	} else if *history > 0 {
		fmt.Fprintln(os.Stderr, "-history requires -db")
		os.Exit(1)
	}

	runtime, err := primes.New(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *history > 0 {
		err = printHistory(runtime, *history)
	} else {
		err = runtime.Run()
	}
	runtime.Close()

	if err != nil {
		// The invalid-input message has already been written to stdout.
		var invalid *primes.InvalidInputError
		if !errors.As(err, &invalid) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func printHistory(runtime *primes.Runtime, limit int) error {
	runs, err := runtime.History(limit)
	if err != nil {
		return err
	}
	for _, r := range runs {
		fmt.Printf("%d\t%s\tN=%d\t%s\n", r.ID, r.Ts, r.N, r.Primes)
	}
	return nil
}
