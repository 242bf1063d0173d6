// Package app orchestrates per-species analysis over aggregated cohorts.
package app

import (
	"context"
	"fmt"
	"math"
	"sync"

	mstats "github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"gossdi/adapters/stats"
	"gossdi/domain/core"
	"gossdi/domain/morph"
	"gossdi/ports"
)

const defaultMaxConcurrent = 4

// AnalyzerService runs the full statistical battery for every complete
// species cohort. Per-species analyses are independent, so they run
// concurrently under a weighted semaphore; the permutation test dominates
// the per-species cost.
type AnalyzerService struct {
	pairwise *stats.PairwiseEstimator
	perm     *stats.PermutationTester
	diag     ports.DiagnosticPort

	sem *semaphore.Weighted
}

// NewAnalyzerService creates an analyzer with default concurrency
func NewAnalyzerService(pairwise *stats.PairwiseEstimator, perm *stats.PermutationTester, diag ports.DiagnosticPort) *AnalyzerService {
	return &AnalyzerService{
		pairwise: pairwise,
		perm:     perm,
		diag:     diag,
		sem:      semaphore.NewWeighted(defaultMaxConcurrent),
	}
}

// SetMaxConcurrent bounds how many species are analyzed at once
func (s *AnalyzerService) SetMaxConcurrent(n int64) {
	if n < 1 {
		n = 1
	}
	s.sem = semaphore.NewWeighted(n)
}

// Analyze produces one result per complete cohort. Cohorts missing either
// sex are excluded with an incomplete-species diagnostic. keys fixes the
// iteration order; results carry their own alphabetical ordering.
func (s *AnalyzerService) Analyze(ctx context.Context, cohorts map[core.SpeciesKey]*morph.SpeciesCohort, keys []core.SpeciesKey) (morph.ResultSet, error) {
	results := make(morph.ResultSet, len(cohorts))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, key := range keys {
		cohort := cohorts[key]
		if cohort.Class() == morph.ClassIncomplete {
			s.diag.Record(ports.Diagnostic{
				Kind:    ports.DiagIncompleteSpecies,
				Species: key,
				Message: fmt.Sprintf("species %s does not have at least 1 M and 1 F, skipping calculations", key),
				Err:     core.NewIncompleteSpeciesError(key.String()),
			})
			continue
		}

		g.Go(func() error {
			if err := s.sem.Acquire(gctx, 1); err != nil {
				return err
			}
			defer s.sem.Release(1)

			res, err := s.analyzeCohort(gctx, cohort)
			if err != nil {
				return err
			}
			mu.Lock()
			results[cohort.Species] = res
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// analyzeCohort dispatches on the cohort's sample-size class. The standard
// index always uses 1-decimal-rounded means wherever a sex has more than
// one measurement; only the both-single class skips the pairwise and
// permutation tests entirely.
func (s *AnalyzerService) analyzeCohort(ctx context.Context, cohort *morph.SpeciesCohort) (morph.SpeciesResult, error) {
	res := morph.SpeciesResult{
		Species:     cohort.Species,
		MaleCount:   len(cohort.Males),
		FemaleCount: len(cohort.Females),
		TTestPValue: morph.PValueNA,
		PermPValue:  morph.PValueNA,
	}

	var femaleIn, maleIn float64
	switch cohort.Class() {
	case morph.ClassBothSingle:
		femaleIn, maleIn = cohort.Females[0], cohort.Males[0]
	case morph.ClassFemalesMultiple:
		femaleIn = roundedMean(cohort.Females)
		maleIn = cohort.Males[0]
		res.AvgFemale = morph.SomeMetric(femaleIn)
	case morph.ClassMalesMultiple:
		femaleIn = cohort.Females[0]
		maleIn = roundedMean(cohort.Males)
		res.AvgMale = morph.SomeMetric(maleIn)
	case morph.ClassBothMultiple:
		femaleIn = roundedMean(cohort.Females)
		maleIn = roundedMean(cohort.Males)
		res.AvgFemale = morph.SomeMetric(femaleIn)
		res.AvgMale = morph.SomeMetric(maleIn)
	}
	res.StandardSSDi = stats.Index(femaleIn, maleIn)

	if cohort.Class() == morph.ClassBothSingle {
		// A single pair admits no pairwise comparisons.
		return res, nil
	}

	avg, pT := s.pairwise.Estimate(cohort.Species, cohort.Females, cohort.Males, true)
	res.AvgPairwiseSSDi = morph.SomeMetric(avg)
	res.TTestPValue = pT
	res.AbsDifference = morph.SomeMetric(math.Abs(res.StandardSSDi - avg))

	low, high, pPerm, err := s.perm.Test(ctx, cohort.Species, cohort.Females, cohort.Males, avg)
	if err != nil {
		return morph.SpeciesResult{}, err
	}
	res.PermLow = morph.SomeMetric(low)
	res.PermHigh = morph.SomeMetric(high)
	res.PermPValue = pPerm

	return res, nil
}

// roundedMean is the 1-decimal mean used both for display and as the
// dimorphism index input; the rounding feeds the index value itself.
func roundedMean(sizes []float64) float64 {
	mean, _ := mstats.Mean(sizes)
	rounded, _ := mstats.Round(mean, 1)
	return rounded
}
