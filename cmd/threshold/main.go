// apps/go-solver/cmd/threshold/main.go
//
// Prints the worst case for a language's opening guess: the largest
// number of candidates that can remain after the opener's feedback,
// taken over all 243 feedback patterns.
//
// Usage: threshold [language-code]
// The code defaults to SOLVER_LANG. Unknown codes exit non-zero.

package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Parse()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	code := cfg.Lang
	if len(os.Args) > 1 {
		code = os.Args[1]
	}

	reg, err := words.Load(cfg.WordsDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	lang, err := reg.Lookup(code)
	if err != nil {
		log.Fatal().Err(err).Strs("known", reg.Codes()).Msg("unknown language")
	}

	worst := threshold(lang)
	fmt.Printf("The maximum number of words after filtering with initial word %q is %d\n",
		lang.Opener, worst)
}

// threshold buckets the full list by the feedback each word would give
// the opener; the biggest bucket is the worst case the opener leaves.
func threshold(lang words.Language) int {
	var buckets [solver.PatternCount]int
	for _, w := range lang.Words {
		buckets[solver.Score(lang.Opener, w).Index()]++
	}

	worst := 0
	for _, n := range buckets {
		if n > worst {
			worst = n
		}
	}
	return worst
}
