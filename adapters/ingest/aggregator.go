package ingest

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gossdi/domain/core"
	"gossdi/domain/morph"
	"gossdi/ports"
)

// RecordAggregator groups raw records into per-species cohorts. Malformed
// records are skipped with a diagnostic, never a fatal error.
type RecordAggregator struct {
	diag ports.DiagnosticPort
}

// NewRecordAggregator creates an aggregator reporting through diag
func NewRecordAggregator(diag ports.DiagnosticPort) *RecordAggregator {
	return &RecordAggregator{diag: diag}
}

// Aggregate consumes src to exhaustion and returns the cohorts keyed by
// species, plus the species keys in alphabetical order for deterministic
// downstream iteration. Only source read failures are returned as errors.
func (a *RecordAggregator) Aggregate(src ports.RecordSourcePort) (map[core.SpeciesKey]*morph.SpeciesCohort, []core.SpeciesKey, error) {
	cohorts := make(map[core.SpeciesKey]*morph.SpeciesCohort)

	for {
		rec, ok, err := src.Next()
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			break
		}

		if len(rec.Fields) < 3 {
			a.skip(rec, core.ErrTooFewFields)
			continue
		}

		species, err := core.ParseSpeciesKey(rec.Fields[0])
		if err != nil {
			a.skip(rec, fmt.Errorf("%w: %v", core.ErrMalformedRecord, err))
			continue
		}

		sex, err := morph.ParseSex(rec.Fields[1])
		if err != nil {
			a.skip(rec, err)
			continue
		}

		size, err := strconv.ParseFloat(strings.TrimSpace(rec.Fields[2]), 64)
		if err != nil {
			a.skip(rec, fmt.Errorf("%w: %q", core.ErrUnparseableSize, rec.Fields[2]))
			continue
		}

		cohort, exists := cohorts[species]
		if !exists {
			cohort = morph.NewSpeciesCohort(species)
			cohorts[species] = cohort
		}
		cohort.Add(sex, size)
	}

	keys := make([]core.SpeciesKey, 0, len(cohorts))
	for k := range cohorts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	a.census(cohorts, keys)
	return cohorts, keys, nil
}

func (a *RecordAggregator) skip(rec ports.RawRecord, reason error) {
	a.diag.Record(ports.Diagnostic{
		Kind:    ports.DiagMalformedRecord,
		Line:    rec.Line,
		Message: fmt.Sprintf("skipping record %v", rec.Fields),
		Err:     core.NewMalformedRecordError(rec.Line, reason),
	})
}

// census reports how many species clear successive per-sex sample-size
// thresholds, a quick read on how much of the data supports pairwise tests
func (a *RecordAggregator) census(cohorts map[core.SpeciesKey]*morph.SpeciesCohort, keys []core.SpeciesKey) {
	var counts [3]int
	for _, k := range keys {
		c := cohorts[k]
		for i, threshold := range []int{1, 2, 3} {
			if len(c.Males) > threshold && len(c.Females) > threshold {
				counts[i]++
			}
		}
	}
	for i, threshold := range []int{1, 2, 3} {
		a.diag.Record(ports.Diagnostic{
			Kind:    ports.DiagSampleCensus,
			Message: fmt.Sprintf("species with > %d M and > %d F: %d", threshold, threshold, counts[i]),
		})
	}
}
