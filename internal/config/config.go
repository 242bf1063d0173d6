// Package config loads run configuration from the environment. Flags on
// the CLI take precedence over anything loaded here.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the tunable settings for one batch run
type Config struct {
	// Permutations is the number of null-distribution draws per species.
	Permutations int
	// PermutationWorkers share the draws for a single species.
	PermutationWorkers int
	// MaxConcurrentSpecies bounds species analyzed in parallel.
	MaxConcurrentSpecies int64
	// Seed drives all permutation RNG streams.
	Seed int64
}

// Defaults mirrors the reference analysis: 10,000 draws per species
func Defaults() *Config {
	return &Config{
		Permutations:         10000,
		PermutationWorkers:   4,
		MaxConcurrentSpecies: 4,
		Seed:                 42,
	}
}

// Load reads configuration from a .env file (if present) and the
// environment, falling back to Defaults for anything unset
func Load() (*Config, error) {
	// Missing .env is fine; the environment alone is a valid source.
	_ = godotenv.Load()

	cfg := Defaults()
	if v, ok := intEnv("SSDI_PERMUTATIONS"); ok {
		cfg.Permutations = v
	}
	if v, ok := intEnv("SSDI_PERMUTATION_WORKERS"); ok {
		cfg.PermutationWorkers = v
	}
	if v, ok := intEnv("SSDI_MAX_CONCURRENT_SPECIES"); ok {
		cfg.MaxConcurrentSpecies = int64(v)
	}
	if v, ok := intEnv("SSDI_SEED"); ok {
		cfg.Seed = int64(v)
	}
	return cfg, nil
}

func intEnv(key string) (int, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
