package ports

import (
	"context"
	"math/rand"
)

// RNGPort provides seeded random number generation for deterministic operations
type RNGPort interface {
	// SeededStream creates a deterministic random number generator for a named operation
	SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error)

	// Stream creates a deterministic RNG stream for a specific run/species/worker.
	// This ensures permutation draws produce identical results for the same
	// run and seed regardless of goroutine scheduling.
	Stream(ctx context.Context, runID, speciesKey, streamKey string, baseSeed int64) (*rand.Rand, error)
}
