// apps/go-solver/internal/words/words.go
//
// Provides word list management for the solver.
//
// Responsibilities:
//   - Represent one playable language: its code, ordered word list, and
//     precomputed opening guess.
//   - Load lists from override files or fall back to embedded defaults.
//   - Enforce the list invariants at construction time.
//
// Constraints:
//   • Words must be 5 alphabetic letters (a–z).
//   • Lists are normalized to lowercase and keep their file order; that
//     order breaks entropy ties, so it is part of the contract.
//   • Every word is unique and the opener is a member of the list.

package words

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// Language is one playable language: an ordered word list plus the
// precomputed best opening guess for it. Immutable once constructed.
type Language struct {
	Code   string       // canonical base code ("en", "es")
	Tag    language.Tag // parsed BCP 47 tag for Code
	Words  []string     // full list, file order preserved
	Opener string       // best first guess, always a member of Words
}

// NewLanguage validates and builds a Language. The code must parse as a
// BCP 47 tag; the list must be non-empty, all valid unique words; the
// opener must be one of them.
func NewLanguage(code string, list []string, opener string) (Language, error) {
	tag, err := language.Parse(code)
	if err != nil {
		return Language{}, fmt.Errorf("words: language code %q: %w", code, err)
	}
	base, _ := tag.Base()

	if len(list) == 0 {
		return Language{}, fmt.Errorf("words: %s list is empty", code)
	}
	seen := make(map[string]struct{}, len(list))
	for _, w := range list {
		if err := solver.ValidateWord(w); err != nil {
			return Language{}, fmt.Errorf("words: %s list: %w", code, err)
		}
		if _, dup := seen[w]; dup {
			return Language{}, fmt.Errorf("words: %s list: duplicate word %q", code, w)
		}
		seen[w] = struct{}{}
	}
	if _, ok := seen[opener]; !ok {
		return Language{}, fmt.Errorf("words: %s opener %q is not in the list", code, opener)
	}

	return Language{Code: base.String(), Tag: tag, Words: list, Opener: opener}, nil
}

// Search returns a solver search over this language's full list.
func (l Language) Search(workers int) solver.Search {
	return solver.Search{List: l.Words, Opener: l.Opener, Workers: workers}
}

// readWordFile loads one word per line from a file, lowercased and
// trimmed, skipping blank lines and # comments. Validation is left to
// NewLanguage so malformed files fail loudly instead of shrinking.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}
