package opt

import (
	"math"
	"math/rand"

	"golang.org/x/exp/constraints"
)

//////
// Helper functions.
//////

// normalCDF computes the cumulative distribution function of the standard
// normal distribution. Used by the PI and EI acquisition functions.
func normalCDF(x float64) float64 {
	return 0.5 * (1.0 + math.Erf(x/math.Sqrt2))
}

// normalPDF computes the probability density function of the standard
// normal distribution. Used by the EI acquisition function.
func normalPDF(x float64) float64 {
	return math.Exp(-x*x/2.0) / math.Sqrt(2.0*math.Pi)
}

// clamp projects v onto the closed interval [lo, hi].
func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampVector returns a copy of x with every component projected onto its
// box bounds. The input is not modified.
func clampVector(x, lower, upper []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = clamp(v, lower[i], upper[i])
	}
	return out
}

// cloneVector returns an independent copy of x.
func cloneVector(x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)
	return out
}

// randomPoint draws a uniform sample from the box [lower, upper].
func randomPoint(rng *rand.Rand, lower, upper []float64) []float64 {
	x := make([]float64, len(lower))
	for i := range x {
		x[i] = lower[i] + rng.Float64()*(upper[i]-lower[i])
	}
	return x
}
