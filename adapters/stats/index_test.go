package stats

import (
	"math"
	"testing"
)

func TestIndex_SignConvention(t *testing.T) {
	// Males larger: negative
	if got := Index(8.0, 10.0); got != -0.25 {
		t.Errorf("Index(8, 10) = %v, want -0.25", got)
	}

	// Females larger: positive
	if got := Index(10.0, 8.0); got != 0.25 {
		t.Errorf("Index(10, 8) = %v, want 0.25", got)
	}

	// Equal sizes: exactly zero
	if got := Index(5.0, 5.0); got != 0.0 {
		t.Errorf("Index(5, 5) = %v, want exactly 0", got)
	}
}

func TestIndex_RoundsToThreeDecimals(t *testing.T) {
	// 12.5/10.5 - 1 = 0.190476..., rounded to 0.19
	got := Index(12.5, 10.5)
	if got != 0.19 {
		t.Errorf("Index(12.5, 10.5) = %v, want 0.19", got)
	}

	// Same magnitude, males larger
	if got := Index(10.5, 12.5); got != -0.19 {
		t.Errorf("Index(10.5, 12.5) = %v, want -0.19", got)
	}
}

func TestIndex_OppositeBranchesMirror(t *testing.T) {
	for _, sizes := range [][2]float64{{10, 8}, {13, 11}, {100.5, 99.9}} {
		larger, smaller := sizes[0], sizes[1]
		pos := Index(larger, smaller)
		neg := Index(smaller, larger)
		if pos <= 0 {
			t.Errorf("Index(%v, %v) = %v, want positive", larger, smaller, pos)
		}
		if neg >= 0 {
			t.Errorf("Index(%v, %v) = %v, want negative", smaller, larger, neg)
		}
		if math.Abs(pos+neg) > 1e-12 {
			t.Errorf("magnitudes differ: %v vs %v", pos, neg)
		}
	}
}

func TestRoundTo(t *testing.T) {
	cases := []struct {
		in     float64
		places int
		want   float64
	}{
		{0.190476, 3, 0.19},
		{0.0005, 3, 0.001},
		{-0.0005, 3, -0.001},
		{10.45, 1, 10.5},
		{0.000099, 5, 0.0001},
	}
	for _, c := range cases {
		if got := roundTo(c.in, c.places); got != c.want {
			t.Errorf("roundTo(%v, %d) = %v, want %v", c.in, c.places, got, c.want)
		}
	}
}
