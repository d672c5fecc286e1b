// Package analytics derives streaks, aggregate statistics, and pairwise
// correlations from the habit and completion collections. Everything here is
// a pure function over its inputs; callers hand in the current snapshot.
package analytics

import (
	"fmt"
	"math"

	"github.com/tallyhq/tally/internal/constants"
)

// Strength classifies the magnitude of a correlation coefficient.
type Strength string

const (
	StrengthStrong   Strength = "strong"
	StrengthModerate Strength = "moderate"
	StrengthWeak     Strength = "weak"
)

// Pearson computes the Pearson correlation coefficient between two
// equal-length 0/1 completion series. The series must already be aligned to
// the days where both habits were active; inactive days are dropped by the
// caller, never encoded as zeros.
//
// A zero denominator (no variance in one or both series) is a defined 0
// result. Mismatched or empty inputs are a programmer error and panic.
func Pearson(a, b []float64) float64 {
	n := len(a)
	if n == 0 {
		panic("analytics: Pearson called with empty series")
	}
	if n != len(b) {
		panic(fmt.Sprintf("analytics: Pearson series length mismatch: %d vs %d", n, len(b)))
	}

	var sumA, sumB, sumAB, sumA2, sumB2 float64
	for i := 0; i < n; i++ {
		sumA += a[i]
		sumB += b[i]
		sumAB += a[i] * b[i]
		sumA2 += a[i] * a[i]
		sumB2 += b[i] * b[i]
	}

	fn := float64(n)
	denom := math.Sqrt((fn*sumA2 - sumA*sumA) * (fn*sumB2 - sumB*sumB))
	if denom == 0 {
		return 0
	}

	r := (fn*sumAB - sumA*sumB) / denom

	// Clamp to absorb floating-point overshoot.
	return math.Max(-1, math.Min(1, r))
}

// Classify maps a correlation coefficient onto a reported strength band.
func Classify(r float64) Strength {
	abs := math.Abs(r)
	switch {
	case abs >= constants.CorrelationStrongThreshold:
		return StrengthStrong
	case abs >= constants.CorrelationModerateThreshold:
		return StrengthModerate
	default:
		return StrengthWeak
	}
}
