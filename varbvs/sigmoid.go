package varbvs

import "math"

// Sigmoid returns the logistic function 1/(1+exp(-x)).
//
// The two branches never evaluate exp of a positive argument, so large
// magnitudes saturate to exactly 0 or 1 instead of overflowing to Inf/NaN.
// Sigmoid(0) == 0.5 and Sigmoid(x)+Sigmoid(-x) == 1 up to rounding.
func Sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)

	return e / (1 + e)
}

// SlabVariance returns s = sa·sigma/(sa·d+1), the variational posterior
// variance of a coefficient whose column has sum of squares d, given inclusion.
// For d == 0 the result is exactly sa·sigma.
func SlabVariance(sigma, sa, d float64) float64 {
	return sa * sigma / (sa*d + 1)
}
