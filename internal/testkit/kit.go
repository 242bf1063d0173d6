// Package testkit provides shared fixtures for engine tests: an in-memory
// record source, a collecting diagnostic sink, and a fixed-seed RNG
// adapter.
package testkit

import (
	"context"
	"math/rand"
	"sync"

	"gossdi/ports"
)

// SliceSource serves pre-tokenized records from memory
type SliceSource struct {
	records [][]string
	idx     int
}

// NewSliceSource builds a record source from rows of fields. The header is
// assumed to be already stripped, matching the file source contract.
func NewSliceSource(records [][]string) *SliceSource {
	return &SliceSource{records: records}
}

func (s *SliceSource) Next() (ports.RawRecord, bool, error) {
	if s.idx >= len(s.records) {
		return ports.RawRecord{}, false, nil
	}
	rec := ports.RawRecord{Line: s.idx + 2, Fields: s.records[s.idx]}
	s.idx++
	return rec, true, nil
}

func (s *SliceSource) Close() error { return nil }

// CollectingDiagnostics records every diagnostic for later assertions
type CollectingDiagnostics struct {
	mu     sync.Mutex
	Events []ports.Diagnostic
}

func NewCollectingDiagnostics() *CollectingDiagnostics {
	return &CollectingDiagnostics{}
}

func (c *CollectingDiagnostics) Record(d ports.Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Events = append(c.Events, d)
}

// CountKind returns how many recorded events have the given kind
func (c *CollectingDiagnostics) CountKind(kind ports.DiagnosticKind) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, d := range c.Events {
		if d.Kind == kind {
			n++
		}
	}
	return n
}

// FixedRNGAdapter implements ports.RNGPort with a single fixed seed so
// tests replay identical draws regardless of stream keys
type FixedRNGAdapter struct {
	Seed int64
}

func (r *FixedRNGAdapter) SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error) {
	return rand.New(rand.NewSource(r.Seed)), nil
}

func (r *FixedRNGAdapter) Stream(ctx context.Context, runID, speciesKey, streamKey string, baseSeed int64) (*rand.Rand, error) {
	return rand.New(rand.NewSource(r.Seed)), nil
}
