// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package prime implements trial-division primality testing and prime enumeration.
package prime

import "iter"

// IsPrime reports whether n is prime by trial division up to its square root.
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	// i <= n/i is i*i <= n without overflowing near the int maximum.
	for i := 2; i <= n/i; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// All yields the primes in increasing order, starting at 2.
// The sequence is unbounded; callers stop it by breaking out of the range.
func All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for candidate := 2; ; candidate++ {
			if IsPrime(candidate) && !yield(candidate) {
				return
			}
		}
	}
}

// First returns the first n primes. It returns nil when n <= 0.
func First(n int) []int {
	if n <= 0 {
		return nil
	}
	primes := make([]int, 0, min(n, 1024))
	for p := range All() {
		primes = append(primes, p)
		if len(primes) == n {
			break
		}
	}
	return primes
}
