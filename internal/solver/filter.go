// apps/go-solver/internal/solver/filter.go
//
// Candidate pool filtering against observed feedback.

package solver

// Filter returns the words in pool that would have produced pattern p if
// guess had been scored against them. The input slice is never mutated;
// result order follows pool order.
func Filter(pool []string, guess string, p Pattern) []string {
	out := make([]string, 0, len(pool))
	for _, w := range pool {
		if Score(guess, w) == p {
			out = append(out, w)
		}
	}
	return out
}

// Reduce applies a played history to the full word list and returns the
// candidates consistent with every step, in list order.
//
// Every step is validated before any filtering happens; a malformed guess
// or feedback string fails the whole call. A history that no word can
// explain reduces to an empty pool, which is returned as such rather than
// as an error.
func Reduce(list []string, steps []Step) ([]string, error) {
	patterns := make([]Pattern, len(steps))
	for i, st := range steps {
		if err := ValidateWord(st.Guess); err != nil {
			return nil, err
		}
		p, err := ParsePattern(st.Answer)
		if err != nil {
			return nil, err
		}
		patterns[i] = p
	}

	pool := list
	for i, st := range steps {
		pool = Filter(pool, st.Guess, patterns[i])
	}
	return pool, nil
}
