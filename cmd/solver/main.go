// apps/go-solver/cmd/solver/main.go
//
// Interactive solving loop. Each round prints the suggested guess, reads
// the guess actually played and the 5-digit feedback it earned (0 absent,
// 1 present, 2 correct), then narrows the candidates until only one word
// can be the secret.

package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// previewSize is how many surviving candidates are shown after each round.
const previewSize = 5

func main() {
	_ = godotenv.Load()
	cfg, err := config.Parse()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	langFlag := flag.String("lang", cfg.Lang, "language code of the puzzle")
	flag.Parse()

	reg, err := words.Load(cfg.WordsDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	lang, err := reg.Lookup(*langFlag)
	if err != nil {
		log.Fatal().Err(err).Strs("known", reg.Codes()).Msg("unknown language")
	}

	log.Info().Str("language", lang.Code).Int("words", len(lang.Words)).Msg("starting solver")
	if err := run(lang, cfg.Workers, bufio.NewReader(os.Stdin), os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("solver exited")
	}
}

// run drives the suggest/read/filter loop until one candidate remains,
// the feedback becomes impossible, or the input ends.
func run(lang words.Language, workers int, in *bufio.Reader, out io.Writer) error {
	search := lang.Search(workers)
	inList := make(map[string]struct{}, len(lang.Words))
	for _, w := range lang.Words {
		inList[w] = struct{}{}
	}

	suggested := lang.Opener
	var steps []solver.Step
	for {
		fmt.Fprintf(out, "Suggested guess: %s\n", suggested)

		guess, err := readGuess(in, out, inList)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		answer, err := readAnswer(in, out)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		steps = append(steps, solver.Step{Guess: guess, Answer: answer})

		pool, err := search.PossibleWords(steps)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "There are %d possible words\n", len(pool))
		preview := pool
		if len(preview) > previewSize {
			preview = preview[:previewSize]
		}
		for _, w := range preview {
			fmt.Fprintf(out, "  %s\n", w)
		}

		switch len(pool) {
		case 0:
			return fmt.Errorf("%w: check the feedback you entered", solver.ErrEmptyPool)
		case 1:
			fmt.Fprintf(out, "The only word left is: %s\n", pool[0])
			return nil
		}

		suggested, err = search.BestGuess(steps)
		if err != nil {
			return err
		}
	}
}

// readLine prompts for and reads one lowercased, trimmed line.
func readLine(in *bufio.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	line, err := in.ReadString('\n')
	line = strings.ToLower(strings.TrimSpace(line))
	if err != nil {
		// A final line without a newline is still a line.
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}

// readGuess re-prompts until it gets a word from the language's list.
func readGuess(in *bufio.Reader, out io.Writer, inList map[string]struct{}) (string, error) {
	for {
		guess, err := readLine(in, out, "Guess: ")
		if err != nil {
			return "", err
		}
		if err := solver.ValidateWord(guess); err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		if _, ok := inList[guess]; !ok {
			fmt.Fprintf(out, "%q is not in the word list\n", guess)
			continue
		}
		return guess, nil
	}
}

// readAnswer re-prompts until it gets a well-formed feedback string.
func readAnswer(in *bufio.Reader, out io.Writer) (string, error) {
	for {
		answer, err := readLine(in, out, "Answer: ")
		if err != nil {
			return "", err
		}
		if _, err := solver.ParsePattern(answer); err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		return answer, nil
	}
}
