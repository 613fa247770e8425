// apps/go-solver/internal/config/config.go
//
// Typed environment configuration shared by the solver binaries.
//
// Environment variables:
//   LOG_LEVEL       zerolog level name (default "info")
//   WORDS_DIR       directory of per-language word list overrides (<code>.txt)
//   SOLVER_LANG     default language code (default "en")
//   SOLVER_WORKERS  workers for the entropy search; 0 means half the CPUs

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the environment-driven settings for all binaries.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	WordsDir string `env:"WORDS_DIR"`
	Lang     string `env:"SOLVER_LANG" envDefault:"en"`
	Workers  int    `env:"SOLVER_WORKERS" envDefault:"0"`
}

// Parse loads Config from the environment.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
