// apps/go-solver/internal/solver/pattern.go
//
// Feedback computation for a guess against a known answer.

package solver

// Score compares guess vs. answer and returns the feedback pattern.
//
// Implements the standard two-pass Wordle scoring:
//
//	Pass 1: mark exact matches (Correct) and count remaining answer letters.
//	Pass 2: for non-matches, mark Present while unused letters remain.
//
// A repeated guess letter never earns more marks than the answer has
// copies: Correct positions consume a copy first, then Present marks are
// granted left to right until the copies run out.
//
// Both arguments must be five lowercase ASCII letters; callers validate
// at the boundary before scoring.
func Score(guess, answer string) Pattern {
	var p Pattern

	// Pass 1: exact matches and frequency counts
	var counts [26]int
	for i := 0; i < WordLength; i++ {
		if guess[i] == answer[i] {
			p[i] = Correct
		} else {
			counts[answer[i]-'a']++
		}
	}

	// Pass 2: mark presents where copies remain
	for i := 0; i < WordLength; i++ {
		if p[i] == Correct {
			continue
		}
		c := guess[i] - 'a'
		if counts[c] > 0 {
			p[i] = Present
			counts[c]--
		}
	}
	return p
}
