// Package rng provides the seeded random stream adapter used by the
// permutation tester.
package rng

import (
	"context"
	"math/rand"
)

// Adapter implements ports.RNGPort with deterministic seed derivation
type Adapter struct{}

// NewAdapter creates a new RNG adapter
func NewAdapter() *Adapter {
	return &Adapter{}
}

// SeededStream creates a deterministic random number generator for a named operation
func (a *Adapter) SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error) {
	return rand.New(rand.NewSource(seed + int64(hashString(name)))), nil
}

// Stream creates a deterministic RNG stream for a specific run/species/worker.
// The derived seed hashes all identifying keys so identical inputs always
// replay the same draws.
func (a *Adapter) Stream(ctx context.Context, runID, speciesKey, streamKey string, baseSeed int64) (*rand.Rand, error) {
	seed := baseSeed
	if runID != "" {
		seed += int64(hashString(runID))
	}
	if speciesKey != "" {
		seed += int64(hashString(speciesKey))
	}
	if streamKey != "" {
		seed += int64(hashString(streamKey))
	}
	return rand.New(rand.NewSource(seed)), nil
}

// hashString creates a simple hash for deterministic seeding
func hashString(s string) uint32 {
	var hash uint32 = 5381
	for _, c := range s {
		hash = ((hash << 5) + hash) + uint32(c) // djb2 algorithm
	}
	return hash
}
