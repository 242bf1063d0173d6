// Package morph holds the domain model for sexual size dimorphism analysis:
// raw size records, per-species cohorts, and per-species result rows.
package morph

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gossdi/domain/core"
)

// Sex is one of the two recognized sex categories
type Sex int

const (
	SexMale Sex = iota
	SexFemale
)

func (s Sex) String() string {
	if s == SexMale {
		return "M"
	}
	return "F"
}

// ParseSex parses a raw sex field. Accepts "M"/"m" and "F"/"f" only.
func ParseSex(token string) (Sex, error) {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case "M":
		return SexMale, nil
	case "F":
		return SexFemale, nil
	default:
		return 0, fmt.Errorf("%w: %q", core.ErrUnknownSexToken, token)
	}
}

// SizeRecord is a single (species, sex, size) measurement from the input file
type SizeRecord struct {
	Species core.SpeciesKey
	Sex     Sex
	Size    float64
}

// SpeciesCohort accumulates per-sex size measurements for one species.
// Insertion order of sizes is preserved but carries no meaning.
type SpeciesCohort struct {
	Species core.SpeciesKey
	Males   []float64
	Females []float64
}

// NewSpeciesCohort creates an empty cohort for a species
func NewSpeciesCohort(species core.SpeciesKey) *SpeciesCohort {
	return &SpeciesCohort{Species: species}
}

// Add appends a measurement to the matching sex sequence
func (c *SpeciesCohort) Add(sex Sex, size float64) {
	if sex == SexMale {
		c.Males = append(c.Males, size)
	} else {
		c.Females = append(c.Females, size)
	}
}

// Pooled returns all sizes, females first then males
func (c *SpeciesCohort) Pooled() []float64 {
	pooled := make([]float64, 0, len(c.Females)+len(c.Males))
	pooled = append(pooled, c.Females...)
	pooled = append(pooled, c.Males...)
	return pooled
}

// CohortClass classifies a cohort by its per-sex sample sizes
type CohortClass int

const (
	// ClassIncomplete marks cohorts with zero of either sex; excluded from output.
	ClassIncomplete CohortClass = iota
	// ClassBothSingle: one female and one male, point estimates only.
	ClassBothSingle
	// ClassFemalesMultiple: several females, a single male.
	ClassFemalesMultiple
	// ClassMalesMultiple: a single female, several males.
	ClassMalesMultiple
	// ClassBothMultiple: several of each sex.
	ClassBothMultiple
)

func (cc CohortClass) String() string {
	switch cc {
	case ClassBothSingle:
		return "both_single"
	case ClassFemalesMultiple:
		return "females_multiple"
	case ClassMalesMultiple:
		return "males_multiple"
	case ClassBothMultiple:
		return "both_multiple"
	default:
		return "incomplete"
	}
}

// Class returns the sample-size classification for this cohort
func (c *SpeciesCohort) Class() CohortClass {
	nf, nm := len(c.Females), len(c.Males)
	switch {
	case nf == 0 || nm == 0:
		return ClassIncomplete
	case nf == 1 && nm == 1:
		return ClassBothSingle
	case nf > 1 && nm == 1:
		return ClassFemalesMultiple
	case nf == 1 && nm > 1:
		return ClassMalesMultiple
	default:
		return ClassBothMultiple
	}
}

// Metric is an optional float64 rendered as "NA" when absent
type Metric struct {
	Value float64
	Valid bool
}

// SomeMetric wraps a present value
func SomeMetric(v float64) Metric {
	return Metric{Value: v, Valid: true}
}

// NoMetric is the absent value
func NoMetric() Metric {
	return Metric{}
}

// Format renders the metric the way the flat-file writers expect
func (m Metric) Format() string {
	if !m.Valid {
		return "NA"
	}
	return strconv.FormatFloat(m.Value, 'g', -1, 64)
}

// PValue is a pre-formatted significance token: "<0.001", a rounded
// number, or "NA"
type PValue string

// PValueNA marks an inapplicable or degenerate test
const PValueNA PValue = "NA"

func (p PValue) String() string { return string(p) }

// SpeciesResult is the immutable per-species output row
type SpeciesResult struct {
	Species         core.SpeciesKey
	MaleCount       int
	FemaleCount     int
	AvgMale         Metric
	AvgFemale       Metric
	StandardSSDi    float64
	AvgPairwiseSSDi Metric
	AbsDifference   Metric
	TTestPValue     PValue
	PermPValue      PValue
	PermLow         Metric
	PermHigh        Metric
}

// ResultSet maps species to their result rows
type ResultSet map[core.SpeciesKey]SpeciesResult

// SortedKeys returns the species keys in alphabetical order
func (rs ResultSet) SortedKeys() []core.SpeciesKey {
	keys := make([]core.SpeciesKey, 0, len(rs))
	for k := range rs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
