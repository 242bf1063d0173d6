package stats

import (
	"context"
	"fmt"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"gossdi/domain/core"
	"gossdi/domain/morph"
	"gossdi/ports"
)

const (
	defaultNumDraws   = 10000
	defaultNumWorkers = 4
)

// PermutationTester builds an empirical null distribution of the average
// pairwise dimorphism index by repeatedly shuffling sex labels across the
// pooled sizes, then derives a two-tailed p-value and the 95% critical
// interval from the distribution
type PermutationTester struct {
	pairwise *PairwiseEstimator
	rng      ports.RNGPort
	diag     ports.DiagnosticPort
	seed     int64
	numDraws int
	workers  int
}

// NewPermutationTester creates a permutation tester with 10,000 draws.
// Draws are deterministic for a fixed seed and worker count.
func NewPermutationTester(pairwise *PairwiseEstimator, rng ports.RNGPort, diag ports.DiagnosticPort, seed int64) *PermutationTester {
	return &PermutationTester{
		pairwise: pairwise,
		rng:      rng,
		diag:     diag,
		seed:     seed,
		numDraws: defaultNumDraws,
		workers:  defaultNumWorkers,
	}
}

// SetNumDraws configures the number of permutation draws
func (pt *PermutationTester) SetNumDraws(n int) {
	if n < 1 {
		n = defaultNumDraws
	}
	pt.numDraws = n
}

// SetWorkers configures how many goroutines share the draws
func (pt *PermutationTester) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	pt.workers = n
}

// Test runs the permutation test for one species. empirical is the observed
// average pairwise index. Returns the 2.5th and 97.5th percentiles of the
// null distribution (rounded to 3 decimals) and the formatted two-tailed
// p-value.
func (pt *PermutationTester) Test(ctx context.Context, species core.SpeciesKey, females, males []float64, empirical float64) (low, high float64, p morph.PValue, err error) {
	pooled := make([]float64, 0, len(females)+len(males))
	pooled = append(pooled, females...)
	pooled = append(pooled, males...)
	nf := len(females)

	null := make([]float64, pt.numDraws)

	// Each worker owns a contiguous segment of the null distribution and a
	// private deterministic RNG stream, so the combined result does not
	// depend on goroutine scheduling.
	g, gctx := errgroup.WithContext(ctx)
	per := pt.numDraws / pt.workers
	for w := 0; w < pt.workers; w++ {
		start := w * per
		end := start + per
		if w == pt.workers-1 {
			end = pt.numDraws
		}
		streamKey := fmt.Sprintf("perm-worker-%d", w)
		g.Go(func() error {
			// Streams are keyed by species and worker only, so a fixed seed
			// replays the same draws across runs.
			rng, err := pt.rng.Stream(gctx, "", species.String(), streamKey, pt.seed)
			if err != nil {
				return fmt.Errorf("permutation stream for %s: %w", species, err)
			}
			shuffled := make([]float64, len(pooled))
			for i := start; i < end; i++ {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				copy(shuffled, pooled)
				for j := len(shuffled) - 1; j > 0; j-- {
					k := rng.Intn(j + 1)
					shuffled[j], shuffled[k] = shuffled[k], shuffled[j]
				}
				avg, _ := pt.pairwise.Estimate(species, shuffled[:nf], shuffled[nf:], false)
				null[i] = avg
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, 0, morph.PValueNA, err
	}

	sort.Float64s(null)
	low = roundTo(percentile(null, 2.5), 3)
	high = roundTo(percentile(null, 97.5), 3)

	extreme := 0
	for _, v := range null {
		if math.Abs(v) > math.Abs(empirical) {
			extreme++
		}
	}
	raw := roundTo(float64(extreme+1)/float64(pt.numDraws+1), 5)
	p = FormatPValue(raw)

	pt.diag.Record(ports.Diagnostic{
		Kind:    ports.DiagPermutationSummary,
		Species: species,
		Message: pt.summarize(empirical, low, high, p),
	})

	return low, high, p, nil
}

// summarize describes where the empirical value falls in the null interval
func (pt *PermutationTester) summarize(empirical, low, high float64, p morph.PValue) string {
	var position string
	switch {
	case empirical <= low:
		position = "lies outside the 2.5 percentile"
	case empirical >= high:
		position = "lies outside the 97.5 percentile"
	default:
		position = "within the 2.5 and 97.5 percentiles"
	}
	return fmt.Sprintf("empirical value %v %s [%v, %v], p-value %s", empirical, position, low, high, p)
}

// percentile computes the pth percentile of sorted data with linear
// interpolation between closest ranks
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}

	index := (p / 100.0) * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}
