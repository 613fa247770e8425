// apps/go-solver/internal/words/registry.go
//
// The language registry: lookup from a language code to its Language.
//
// Lookup accepts any spelling that resolves to a registered base
// language ("EN", "en", "en-US" all find "en"). Built-in languages load
// from the embedded lists; a WORDS_DIR directory with <code>.txt files
// overrides them per language.

package words

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
)

// ErrUnknownLanguage is reported for codes no registered language matches.
var ErrUnknownLanguage = errors.New("words: unknown language")

// Registry is a read-only lookup from canonical language code to Language.
type Registry struct {
	byCode map[string]Language
}

// NewRegistry builds a registry from already-validated languages.
// Codes must be unique.
func NewRegistry(langs ...Language) (*Registry, error) {
	byCode := make(map[string]Language, len(langs))
	for _, l := range langs {
		if _, dup := byCode[l.Code]; dup {
			return nil, fmt.Errorf("words: duplicate language %q", l.Code)
		}
		byCode[l.Code] = l
	}
	return &Registry{byCode: byCode}, nil
}

// Lookup resolves a language code to its registered Language. The code
// is canonicalized first, so case and region variants resolve to the
// registered base language.
func (r *Registry) Lookup(code string) (Language, error) {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return Language{}, fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
	}
	base, _ := tag.Base()
	lang, ok := r.byCode[base.String()]
	if !ok {
		return Language{}, fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
	}
	return lang, nil
}

// Codes returns the registered canonical codes in sorted order.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.byCode))
	for c := range r.byCode {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// builtin describes one embedded language. Opening guesses are fixed
// constants from offline analysis; they are not recomputed when the
// list changes.
type builtin struct {
	code   string
	opener string
}

var builtins = []builtin{
	{code: "en", opener: "tares"},
	{code: "es", opener: "careo"},
}

// Load builds the registry of built-in languages. When dir is not empty
// and <dir>/<code>.txt exists, that file replaces the embedded list for
// the language (one word per line, blank lines and # comments ignored);
// languages without an override keep their embedded list.
func Load(dir string) (*Registry, error) {
	langs := make([]Language, 0, len(builtins))
	for _, b := range builtins {
		list, err := loadList(dir, b.code)
		if err != nil {
			return nil, fmt.Errorf("words: load %s list: %w", b.code, err)
		}
		lang, err := NewLanguage(b.code, list, b.opener)
		if err != nil {
			return nil, err
		}
		langs = append(langs, lang)
	}
	return NewRegistry(langs...)
}

func loadList(dir, code string) ([]string, error) {
	if dir != "" {
		path := filepath.Join(dir, code+".txt")
		if _, err := os.Stat(path); err == nil {
			return readWordFile(path)
		}
	}
	return assets.WordList(code)
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
	defaultErr  error
)

// Default returns the built-in registry, honoring the WORDS_DIR override
// directory. Loading runs exactly once.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultReg, defaultErr = Load(os.Getenv("WORDS_DIR"))
	})
	return defaultReg, defaultErr
}
