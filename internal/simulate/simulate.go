// apps/go-solver/internal/simulate/simulate.go
//
// Self-play: runs the solver against hidden answers to measure how many
// rounds it needs.
//
// Responsibilities:
//   - Play one game: suggest, score, filter, repeat until solved or the
//     round cap runs out.
//   - Run batches with an optional terminal progress bar and aggregate a
//     rounds histogram plus the solve rate.

package simulate

import (
	"context"
	"errors"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// DefaultMaxRounds caps a game at the classic six guesses.
const DefaultMaxRounds = 6

// Runner plays solver games for one language.
type Runner struct {
	Lang      words.Language
	MaxRounds int  // round cap per game; <= 0 means DefaultMaxRounds
	Workers   int  // entropy search workers; 0 means half the CPUs
	Progress  bool // render a progress bar during Batch
}

// Result is the outcome of one self-played game.
type Result struct {
	Answer  string
	Guesses []string
	Rounds  int
	Solved  bool
}

// Summary aggregates a batch of self-played games.
type Summary struct {
	Games     int
	Solved    int
	Histogram map[int]int // rounds -> games solved in that many rounds
	Failures  []string    // answers not solved within the cap
}

// SolveRate returns the fraction of games solved, 0 for an empty batch.
func (s Summary) SolveRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Solved) / float64(s.Games)
}

// Play runs the solver against a hidden answer until the answer is hit
// or the round cap runs out.
//
// The answer does not have to be a dictionary word: feedback the list
// cannot explain simply leaves the game unsolved within the cap.
func (r Runner) Play(answer string) (Result, error) {
	answer = strings.ToLower(answer)
	if err := solver.ValidateWord(answer); err != nil {
		return Result{}, err
	}

	maxRounds := r.MaxRounds
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	search := r.Lang.Search(r.Workers)

	res := Result{Answer: answer}
	var steps []solver.Step
	for round := 0; round < maxRounds; round++ {
		guess, err := nextGuess(search, steps)
		if err != nil {
			if errors.Is(err, solver.ErrEmptyPool) {
				// The list cannot explain the feedback seen so far, so
				// the answer is out of reach. The game counts as lost.
				break
			}
			return res, err
		}

		p := solver.Score(guess, answer)
		steps = append(steps, solver.Step{Guess: guess, Answer: p.String()})
		res.Guesses = append(res.Guesses, guess)
		res.Rounds++
		if p.AllCorrect() {
			res.Solved = true
			break
		}
	}
	return res, nil
}

// nextGuess asks the search for a suggestion. A pool of exactly one word
// skips the entropy scan: that word is the only possible answer.
func nextGuess(search solver.Search, steps []solver.Step) (string, error) {
	pool, err := search.PossibleWords(steps)
	if err != nil {
		return "", err
	}
	if len(pool) == 1 {
		return pool[0], nil
	}
	return search.BestGuess(steps)
}

// Batch plays every answer in turn and aggregates the outcomes. The
// context aborts long runs between games.
func (r Runner) Batch(ctx context.Context, answers []string) (Summary, error) {
	sum := Summary{Histogram: make(map[int]int)}

	var bar *progressbar.ProgressBar
	if r.Progress {
		bar = progressbar.Default(int64(len(answers)))
	}

	for _, answer := range answers {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		res, err := r.Play(answer)
		if err != nil {
			return sum, err
		}
		sum.Games++
		if res.Solved {
			sum.Solved++
			sum.Histogram[res.Rounds]++
		} else {
			sum.Failures = append(sum.Failures, res.Answer)
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}
	return sum, nil
}
