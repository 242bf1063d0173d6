package stats

import (
	"fmt"
	"math"
	"strconv"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"gossdi/domain/core"
	"gossdi/domain/morph"
	"gossdi/ports"
)

// PairwiseEstimator computes the average dimorphism index over every
// (female, male) size pair and optionally a one-sample t-test of those
// pairwise values against a hypothesized mean of 0
type PairwiseEstimator struct {
	diag ports.DiagnosticPort
}

// NewPairwiseEstimator creates a pairwise estimator reporting through diag
func NewPairwiseEstimator(diag ports.DiagnosticPort) *PairwiseEstimator {
	return &PairwiseEstimator{diag: diag}
}

// Values returns the full cross product of Index over every (female, male)
// pair, in female-major order. Length is |females| x |males|.
func (e *PairwiseEstimator) Values(females, males []float64) []float64 {
	vals := make([]float64, 0, len(females)*len(males))
	for _, f := range females {
		for _, m := range males {
			vals = append(vals, Index(f, m))
		}
	}
	return vals
}

// Estimate returns the mean pairwise index rounded to 3 decimals. When
// withSignificance is set it also runs the one-sample two-tailed t-test
// against 0; otherwise the p-value is "NA". A zero-variance pairwise
// sample makes the t statistic undefined: the p-value is "NA" and a
// degenerate-statistic diagnostic is recorded, but the mean is still valid.
func (e *PairwiseEstimator) Estimate(species core.SpeciesKey, females, males []float64, withSignificance bool) (float64, morph.PValue) {
	vals := e.Values(females, males)

	mean, _ := mstats.Mean(vals)
	avg := roundTo(mean, 3)

	if !withSignificance {
		return avg, morph.PValueNA
	}

	p, err := oneSampleTTest(vals)
	if err != nil {
		e.diag.Record(ports.Diagnostic{
			Kind:    ports.DiagDegenerateStatistic,
			Species: species,
			Message: fmt.Sprintf("one-sample t-test undefined for %d pairwise values", len(vals)),
			Err:     err,
		})
		return avg, morph.PValueNA
	}
	return avg, FormatPValue(p)
}

// oneSampleTTest computes the two-tailed p-value of a one-sample t-test of
// vals against a hypothesized population mean of 0
func oneSampleTTest(vals []float64) (float64, error) {
	n := len(vals)
	if n < 2 {
		return 0, fmt.Errorf("%w: need at least 2 values, got %d", core.ErrDegenerateStatistic, n)
	}

	mean, _ := mstats.Mean(vals)
	sd, _ := mstats.StandardDeviationSample(vals)
	if sd == 0 {
		return 0, fmt.Errorf("%w: zero variance in pairwise sample", core.ErrDegenerateStatistic)
	}

	t := mean / (sd / math.Sqrt(float64(n)))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
	return 2 * dist.CDF(-math.Abs(t)), nil
}

// FormatPValue renders a p-value the way the results table expects:
// "<0.001" when at or below 0.001, otherwise rounded to 3 decimals
func FormatPValue(p float64) morph.PValue {
	if p <= 0.001 {
		return "<0.001"
	}
	return morph.PValue(strconv.FormatFloat(roundTo(p, 3), 'g', -1, 64))
}
