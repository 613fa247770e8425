// apps/go-solver/internal/solver/types.go
//
// Core type definitions for the solver.
// Defines:
//   - Feedback: per-letter result of a guess (absent/present/correct).
//   - Pattern: the five Feedback marks one guess earns, with a canonical
//     digit-string form ("00210") and a base-3 index used for bucketing.
//   - Step: one played guess together with the feedback it received.

package solver

import (
	"errors"
	"fmt"
)

// WordLength is the number of letters in every word and pattern.
const WordLength = 5

// PatternCount is the number of distinct patterns (3^WordLength).
const PatternCount = 243

// Feedback represents the evaluation result for a single letter in a guess.
// Possible values:
//   - Absent:  letter does not exist in the answer at all (digit '0').
//   - Present: letter exists in the answer but in a different position (digit '1').
//   - Correct: letter is correct and in the correct position (digit '2').
type Feedback uint8

const (
	Absent Feedback = iota
	Present
	Correct
)

// Pattern holds the feedback for one full guess, index 0 = first letter.
type Pattern [WordLength]Feedback

// Step is one entry of a played history: the guess and the digit-encoded
// feedback it received ("00210").
type Step struct {
	Guess  string
	Answer string
}

var (
	// ErrInvalidWord marks words that are not exactly five lowercase
	// ASCII letters.
	ErrInvalidWord = errors.New("solver: invalid word")
	// ErrInvalidPattern marks feedback strings that are not exactly five
	// digits in 0..2.
	ErrInvalidPattern = errors.New("solver: invalid pattern")
	// ErrEmptyPool is reported when a played history is inconsistent with
	// every word in the list.
	ErrEmptyPool = errors.New("solver: no candidates remain")
)

// ParsePattern decodes a digit-encoded feedback string into a Pattern.
func ParsePattern(s string) (Pattern, error) {
	var p Pattern
	if len(s) != WordLength {
		return p, fmt.Errorf("%w: %q is not %d digits", ErrInvalidPattern, s, WordLength)
	}
	for i := 0; i < WordLength; i++ {
		c := s[i]
		if c < '0' || c > '2' {
			return p, fmt.Errorf("%w: %q contains %q", ErrInvalidPattern, s, c)
		}
		p[i] = Feedback(c - '0')
	}
	return p, nil
}

// String renders the pattern in its canonical digit form.
func (p Pattern) String() string {
	b := make([]byte, WordLength)
	for i, f := range p {
		b[i] = '0' + byte(f)
	}
	return string(b)
}

// Index returns the base-3 value of the pattern, in [0, PatternCount).
// The first letter is the most significant digit.
func (p Pattern) Index() int {
	idx := 0
	for _, f := range p {
		idx = idx*3 + int(f)
	}
	return idx
}

// AllCorrect reports whether every letter was marked Correct.
func (p Pattern) AllCorrect() bool {
	for _, f := range p {
		if f != Correct {
			return false
		}
	}
	return true
}

// ValidWord reports whether w is exactly five lowercase ASCII letters.
func ValidWord(w string) bool {
	if len(w) != WordLength {
		return false
	}
	for i := 0; i < WordLength; i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

// ValidateWord is the boundary form of ValidWord: it wraps ErrInvalidWord
// with the offending value.
func ValidateWord(w string) error {
	if !ValidWord(w) {
		return fmt.Errorf("%w: %q", ErrInvalidWord, w)
	}
	return nil
}
