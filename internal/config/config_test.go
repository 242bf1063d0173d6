package config

import "testing"

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.Permutations != 10000 {
		t.Errorf("default permutations = %d, want 10000", cfg.Permutations)
	}
	if cfg.Seed != 42 {
		t.Errorf("default seed = %d, want 42", cfg.Seed)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SSDI_PERMUTATIONS", "500")
	t.Setenv("SSDI_SEED", "7")
	t.Setenv("SSDI_PERMUTATION_WORKERS", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Permutations != 500 {
		t.Errorf("permutations = %d, want 500", cfg.Permutations)
	}
	if cfg.Seed != 7 {
		t.Errorf("seed = %d, want 7", cfg.Seed)
	}
	// Unparseable values fall back to the default
	if cfg.PermutationWorkers != 4 {
		t.Errorf("workers = %d, want default 4", cfg.PermutationWorkers)
	}
}
