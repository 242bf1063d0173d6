// Package stats implements the statistical engine: the dimorphism index
// formula, the pairwise estimator with its one-sample t-test, and the
// permutation significance test.
package stats

import "math"

// Index computes the Lovich & Gibbons (1992) sexual size dimorphism index
// from one female and one male size: (larger sex / smaller sex) - 1, set
// negative when males are larger and positive when females are larger, and
// exactly 0 when the sizes are equal. Both sizes must be strictly positive.
// The result is rounded to 3 decimal places.
func Index(female, male float64) float64 {
	switch {
	case male > female:
		return roundTo(-((male / female) - 1), 3)
	case female > male:
		return roundTo((female/male)-1, 3)
	default:
		return 0.0
	}
}

// roundTo rounds half away from zero to the given number of decimal places
func roundTo(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
