// apps/go-solver/cmd/simulate/main.go
//
// Batch solve-efficiency benchmark. Plays the solver against a random
// sample of secrets from the language's list and prints how many rounds
// each game needed, with a trailing 6+ row for games that never
// converged.

package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/simulate"
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

	langFlag := flag.String("lang", cfg.Lang, "language code to benchmark")
	sampleFlag := flag.Int("sample", 100, "number of secrets to sample; 0 plays the whole list")
	roundsFlag := flag.Int("rounds", simulate.DefaultMaxRounds, "round cap per game")
	workersFlag := flag.Int("workers", cfg.Workers, "entropy search workers; 0 means half the CPUs")
	seedFlag := flag.Int64("seed", 0, "sample seed; 0 seeds from the clock")
	flag.Parse()

	reg, err := words.Load(cfg.WordsDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	lang, err := reg.Lookup(*langFlag)
	if err != nil {
		log.Fatal().Err(err).Strs("known", reg.Codes()).Msg("unknown language")
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	secrets := sampleSecrets(lang.Words, *sampleFlag, seed)

	log.Info().
		Str("language", lang.Code).
		Int("secrets", len(secrets)).
		Int("rounds", *roundsFlag).
		Int64("seed", seed).
		Msg("starting simulation")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := simulate.Runner{
		Lang:      lang,
		MaxRounds: *roundsFlag,
		Workers:   *workersFlag,
		Progress:  true,
	}
	sum, err := runner.Batch(ctx, secrets)
	if err != nil {
		log.Fatal().Err(err).Msg("simulation aborted")
	}

	report(sum, *roundsFlag)
}

// sampleSecrets picks n distinct words; n <= 0 or n >= len plays them all.
func sampleSecrets(list []string, n int, seed int64) []string {
	if n <= 0 || n >= len(list) {
		return list
	}
	rng := rand.New(rand.NewSource(seed))
	out := make([]string, 0, n)
	for _, i := range rng.Perm(len(list))[:n] {
		out = append(out, list[i])
	}
	return out
}

// report prints the rounds distribution, one row per bucket, then the
// solve rate.
func report(sum simulate.Summary, maxRounds int) {
	fmt.Println("rounds  games   share")
	for rounds := 1; rounds <= maxRounds; rounds++ {
		n := sum.Histogram[rounds]
		if n == 0 {
			continue
		}
		fmt.Printf("%6d %6d %6.1f%%\n", rounds, n, percent(n, sum.Games))
	}
	if failed := len(sum.Failures); failed > 0 {
		fmt.Printf("%6s %6d %6.1f%%\n", fmt.Sprintf("%d+", maxRounds), failed, percent(failed, sum.Games))
	}
	fmt.Printf("\nsolved %d/%d (%.1f%%)\n", sum.Solved, sum.Games, 100*sum.SolveRate())
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(part) / float64(total)
}
