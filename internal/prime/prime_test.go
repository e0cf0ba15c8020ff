package prime

import (
	"math"
	"slices"
	"testing"
)

func TestIsPrime(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{math.MinInt, false},
		{-7, false},
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{9, false},
		{25, false},
		{97, true},
		{7919, true},
		{7921, false}, // 89*89
		{2147483647, true},
	}

	for _, tt := range tests {
		if got := IsPrime(tt.n); got != tt.want {
			t.Errorf("IsPrime(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestFirst(t *testing.T) {
	got := First(5)
	want := []int{2, 3, 5, 7, 11}
	if len(got) != len(want) {
		t.Fatalf("First(5) returned %d values, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("First(5)[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestFirstNonPositive(t *testing.T) {
	for _, n := range []int{0, -1, math.MinInt} {
		if got := First(n); got != nil {
			t.Errorf("First(%d) = %v, want nil", n, got)
		}
	}
}

func TestFirstProperties(t *testing.T) {
	const n = 500
	primes := First(n)
	if len(primes) != n {
		t.Fatalf("expected %d primes, got %d", n, len(primes))
	}
	if primes[0] != 2 {
		t.Errorf("expected first prime 2, got %d", primes[0])
	}
	for i, p := range primes {
		if !IsPrime(p) {
			t.Errorf("primes[%d] = %d is not prime", i, p)
		}
		if i > 0 && p <= primes[i-1] {
			t.Errorf("primes not strictly increasing at %d: %d after %d", i, p, primes[i-1])
		}
	}
	// No prime is skipped between consecutive results.
	for c := 2; c < primes[n-1]; c++ {
		if IsPrime(c) && !slices.Contains(primes, c) {
			t.Errorf("prime %d missing from First(%d)", c, n)
		}
	}
	if primes[n-1] != 3571 {
		t.Errorf("expected 500th prime 3571, got %d", primes[n-1])
	}
}

func TestAllStopsWhenConsumerBreaks(t *testing.T) {
	count := 0
	for p := range All() {
		count++
		if p > 100 {
			break
		}
	}
	// 25 primes below 100, plus 101.
	if count != 26 {
		t.Errorf("expected 26 values before break, got %d", count)
	}
}
