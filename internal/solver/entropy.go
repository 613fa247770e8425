// apps/go-solver/internal/solver/entropy.go
//
// Expected information gain of a candidate guess over a candidate pool.

package solver

import "math"

// Entropy returns the expected information, in bits, revealed by playing
// candidate against a pool of equally likely answers.
//
// The pool is bucketed by the feedback pattern candidate would receive
// from each answer; the result is -sum(p*log2(p)) over the non-empty
// buckets. A pool of size zero or one carries no information and yields
// 0. The maximum possible value is log2(len(pool)), reached when every
// answer produces a distinct pattern.
func Entropy(candidate string, pool []string) float64 {
	if len(pool) < 2 {
		return 0
	}

	var buckets [PatternCount]int
	for _, w := range pool {
		buckets[Score(candidate, w).Index()]++
	}

	total := float64(len(pool))
	bits := 0.0
	for _, n := range buckets {
		if n == 0 {
			continue
		}
		p := float64(n) / total
		bits -= p * math.Log2(p)
	}
	return bits
}
