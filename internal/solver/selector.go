// apps/go-solver/internal/solver/selector.go
//
// Best-guess selection: scores the entropy of every word in the guess
// universe against the surviving candidate pool, in parallel chunks, and
// picks a deterministic winner.

package solver

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Search evaluates guesses over a fixed word list.
//
// List is the full guess universe and its order is part of the contract:
// earlier words win entropy ties. Opener is the precomputed best first
// guess, returned for an empty history without any evaluation. Workers
// bounds the parallel chunks; zero or negative means half the CPUs.
type Search struct {
	List    []string
	Opener  string
	Workers int
}

// scored carries one candidate plus everything the tie-break needs.
type scored struct {
	word    string
	entropy float64
	inPool  bool
	index   int
}

// better reports whether a beats b: higher entropy first, then pool
// membership, then the earlier list position.
func better(a, b scored) bool {
	if a.entropy != b.entropy {
		return a.entropy > b.entropy
	}
	if a.inPool != b.inPool {
		return a.inPool
	}
	return a.index < b.index
}

// BestGuess returns the word with the highest expected information gain
// given the steps played so far.
//
// The guess universe is always the full list, not the surviving pool: a
// word that can no longer be the answer may still split the pool better
// than any candidate that can. Steps are validated before any work; a
// history no dictionary word can explain reports ErrEmptyPool.
func (s Search) BestGuess(steps []Step) (string, error) {
	pool, err := Reduce(s.List, steps)
	if err != nil {
		return "", err
	}
	if len(pool) == 0 {
		return "", fmt.Errorf("%w after %d steps", ErrEmptyPool, len(steps))
	}
	if len(steps) == 0 {
		return s.Opener, nil
	}

	members := make(map[string]struct{}, len(pool))
	for _, w := range pool {
		members[w] = struct{}{}
	}

	workers := s.Workers
	if workers <= 0 {
		workers = runtime.NumCPU() / 2
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(s.List) {
		workers = len(s.List)
	}

	// Each worker owns one chunk of the list and reports its local best;
	// the merge applies the same ordering, so the worker count never
	// changes the outcome.
	bests := make([]scored, workers)
	var g errgroup.Group
	for c := 0; c < workers; c++ {
		c := c
		lo, hi := chunkBounds(len(s.List), workers, c)
		g.Go(func() error {
			best := scored{index: -1}
			for i := lo; i < hi; i++ {
				w := s.List[i]
				_, in := members[w]
				cand := scored{word: w, entropy: Entropy(w, pool), inPool: in, index: i}
				if best.index < 0 || better(cand, best) {
					best = cand
				}
			}
			bests[c] = best
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	best := bests[0]
	for _, b := range bests[1:] {
		if b.index >= 0 && (best.index < 0 || better(b, best)) {
			best = b
		}
	}
	return best.word, nil
}

// PossibleWords returns the candidates that survive the steps played so
// far, in list order. An inconsistent history returns an empty pool, not
// an error; malformed steps fail validation.
func (s Search) PossibleWords(steps []Step) ([]string, error) {
	return Reduce(s.List, steps)
}

// chunkBounds splits n items into near-even chunks and returns the
// half-open range covered by chunk c.
func chunkBounds(n, chunks, c int) (lo, hi int) {
	size := n / chunks
	rem := n % chunks
	lo = c*size + min(c, rem)
	hi = lo + size
	if c < rem {
		hi++
	}
	return lo, hi
}
