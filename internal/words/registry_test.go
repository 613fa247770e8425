package words

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

func mustLanguage(t *testing.T, code string, list []string, opener string) Language {
	t.Helper()
	lang, err := NewLanguage(code, list, opener)
	if err != nil {
		t.Fatalf("NewLanguage(%q): %v", code, err)
	}
	return lang
}

func TestNewLanguage(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		list    []string
		opener  string
		wantErr error // nil means any error is acceptable when wantOK is false
		wantOK  bool
	}{
		{name: "valid", code: "en", list: []string{"tares", "chime"}, opener: "tares", wantOK: true},
		{name: "short word", code: "en", list: []string{"tares", "chi"}, opener: "tares", wantErr: solver.ErrInvalidWord},
		{name: "uppercase word", code: "en", list: []string{"Tares"}, opener: "tares", wantErr: solver.ErrInvalidWord},
		{name: "duplicate word", code: "en", list: []string{"tares", "tares"}, opener: "tares"},
		{name: "opener not in list", code: "en", list: []string{"tares", "chime"}, opener: "slope"},
		{name: "empty list", code: "en", list: nil, opener: "tares"},
		{name: "bad code", code: "not a code", list: []string{"tares"}, opener: "tares"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang, err := NewLanguage(tt.code, tt.list, tt.opener)
			if tt.wantOK {
				if err != nil {
					t.Fatalf("NewLanguage: %v", err)
				}
				if lang.Code != tt.code {
					t.Errorf("Code = %q, want %q", lang.Code, tt.code)
				}
				return
			}
			if err == nil {
				t.Fatal("NewLanguage succeeded, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewLanguage error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegistryLookup(t *testing.T) {
	reg, err := NewRegistry(
		mustLanguage(t, "en", []string{"tares", "chime"}, "tares"),
		mustLanguage(t, "es", []string{"careo", "carta"}, "careo"),
	)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	tests := []struct {
		code string
		want string
	}{
		{"en", "en"},
		{"EN", "en"},
		{" en ", "en"},
		{"en-US", "en"},
		{"es", "es"},
		{"es-MX", "es"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			lang, err := reg.Lookup(tt.code)
			if err != nil {
				t.Fatalf("Lookup(%q): %v", tt.code, err)
			}
			if lang.Code != tt.want {
				t.Errorf("Lookup(%q).Code = %q, want %q", tt.code, lang.Code, tt.want)
			}
		})
	}

	for _, code := range []string{"fr", "pt-BR", "gibberish words", ""} {
		t.Run("unknown "+code, func(t *testing.T) {
			if _, err := reg.Lookup(code); !errors.Is(err, ErrUnknownLanguage) {
				t.Errorf("Lookup(%q) error = %v, want ErrUnknownLanguage", code, err)
			}
		})
	}
}

func TestNewRegistryRejectsDuplicateCodes(t *testing.T) {
	_, err := NewRegistry(
		mustLanguage(t, "en", []string{"tares"}, "tares"),
		mustLanguage(t, "en", []string{"chime"}, "chime"),
	)
	if err == nil {
		t.Fatal("NewRegistry succeeded, want duplicate code error")
	}
}

func TestRegistryCodes(t *testing.T) {
	reg, err := NewRegistry(
		mustLanguage(t, "es", []string{"careo"}, "careo"),
		mustLanguage(t, "en", []string{"tares"}, "tares"),
	)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if got, want := reg.Codes(), []string{"en", "es"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Codes = %v, want %v", got, want)
	}
}

func TestLoadEmbeddedLists(t *testing.T) {
	reg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tests := []struct {
		code   string
		opener string
	}{
		{"en", "tares"},
		{"es", "careo"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			lang, err := reg.Lookup(tt.code)
			if err != nil {
				t.Fatalf("Lookup(%q): %v", tt.code, err)
			}
			if lang.Opener != tt.opener {
				t.Errorf("Opener = %q, want %q", lang.Opener, tt.opener)
			}
			if len(lang.Words) == 0 {
				t.Fatal("embedded list is empty")
			}
			for _, w := range lang.Words {
				if !solver.ValidWord(w) {
					t.Fatalf("embedded list contains invalid word %q", w)
				}
			}
		})
	}
}

func TestLoadOverrideDirectory(t *testing.T) {
	dir := t.TempDir()
	override := "# test override\ntares\nchime\nslope\n"
	if err := os.WriteFile(filepath.Join(dir, "en.txt"), []byte(override), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}

	reg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	en, err := reg.Lookup("en")
	if err != nil {
		t.Fatalf("Lookup(en): %v", err)
	}
	if want := []string{"tares", "chime", "slope"}; !reflect.DeepEqual(en.Words, want) {
		t.Fatalf("en.Words = %v, want %v", en.Words, want)
	}

	// Languages without an override keep their embedded list.
	es, err := reg.Lookup("es")
	if err != nil {
		t.Fatalf("Lookup(es): %v", err)
	}
	if len(es.Words) < len(en.Words) {
		t.Fatalf("es list looks overridden: %d words", len(es.Words))
	}
}

func TestLoadOverrideValidation(t *testing.T) {
	t.Run("invalid word", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "en.txt"), []byte("tares\nnope\n"), 0o644); err != nil {
			t.Fatalf("write override: %v", err)
		}
		if _, err := Load(dir); !errors.Is(err, solver.ErrInvalidWord) {
			t.Fatalf("Load error = %v, want ErrInvalidWord", err)
		}
	})

	t.Run("missing opener", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "en.txt"), []byte("chime\nslope\n"), 0o644); err != nil {
			t.Fatalf("write override: %v", err)
		}
		if _, err := Load(dir); err == nil {
			t.Fatal("Load succeeded, want missing opener error")
		}
	})
}

func TestDefaultLoadsOnce(t *testing.T) {
	// Keep the surrounding environment from redirecting the first load.
	t.Setenv("WORDS_DIR", "")

	r1, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	r2, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if r1 != r2 {
		t.Fatal("Default returned different registries")
	}
	if _, err := r1.Lookup("en"); err != nil {
		t.Fatalf("Lookup(en): %v", err)
	}
}
