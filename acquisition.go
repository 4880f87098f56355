package opt

import "math"

//////
// Built-in acquisition functions.
// Each one ranks a candidate from the surrogate's (mean, variance)
// prediction; lower values mark more promising points.
//////

// UCB implements the Upper Confidence Bound acquisition function.
//
// How it works:
// - Subtracts a Beta-weighted uncertainty bonus from the predicted mean
// - Lower values are better (the solver is minimizing)
// - Beta controls the trade-off between exploration and exploitation
//
// Parameters:
// - mean: Predicted fitness at this point
// - variance: Uncertainty in the prediction
// - params.Beta: Exploration weight (higher = more exploration)
//
// When to use:
// - General purpose, works well in most cases
// - When you want direct control over the exploration-exploitation
//   trade-off
// - The default choice
func UCB(mean, variance float64, params AcquisitionParams) float64 {
	return mean - params.Beta*math.Sqrt(variance)
}

// ProbabilityOfImprovement (PI) scores a candidate by the probability of
// improving on the best observed fitness by at least params.Xi, under a
// normal assumption.
//
// Parameters:
// - mean: Predicted fitness at this point
// - variance: Uncertainty in the prediction
// - params.BestSoFar: Best fitness observed so far
// - params.Xi: Minimum improvement desired
//
// When to use:
// - When you want conservative exploration
// - When small, reliable improvements are acceptable
// - When "probably better" matters more than "how much better"
func ProbabilityOfImprovement(mean, variance float64, params AcquisitionParams) float64 {
	z := (mean - params.BestSoFar - params.Xi) / math.Sqrt(variance)

	return normalCDF(z)
}

// ExpectedImprovement (EI) scores a candidate by the expected magnitude
// of the improvement over the best observed fitness.
//
// How it works:
// - Combines the probability of improvement with its magnitude
// - Balances how likely and how large the improvement might be
//
// Parameters:
// - mean: Predicted fitness at this point
// - variance: Uncertainty in the prediction
// - params.BestSoFar: Best fitness observed so far
// - params.Xi: Minimum improvement desired
//
// When to use:
// - The most commonly used acquisition function in practice
// - When the magnitude of improvement matters, not just its probability
func ExpectedImprovement(mean, variance float64, params AcquisitionParams) float64 {
	sigma := math.Sqrt(variance)

	z := (mean - params.BestSoFar - params.Xi) / sigma

	return (mean-params.BestSoFar-params.Xi)*normalCDF(z) + sigma*normalPDF(z)
}

// ThompsonSampling scores a candidate by drawing a random sample from the
// surrogate's posterior at that point.
//
// Parameters:
// - mean: Predicted fitness at this point
// - variance: Uncertainty in the prediction
// - params.RandomState: Random source (seeded by the solver from
//   Config.Seed)
//
// When to use:
// - When you want a simple approach with no Beta or Xi tuning
// - When random exploration is acceptable
//
// The solver guards the shared RandomState with a lock during parallel
// candidate scoring; custom callers must do the same.
func ThompsonSampling(mean, variance float64, params AcquisitionParams) float64 {
	return mean + math.Sqrt(variance)*params.RandomState.NormFloat64()
}
