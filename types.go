package opt

import "math/rand"

// ProgressUpdate represents the current state of a Minimize run. Updates
// are sent over Config.ProgressChan with a non-blocking send, so a slow
// consumer loses updates instead of stalling the solver.
type ProgressUpdate struct {
	// Phase indicates whether the solver is in the initial sampling or
	// the surrogate-guided optimization phase.
	Phase string

	// Iteration is the current iteration number within the phase.
	Iteration int

	// Total is the total number of iterations in the phase.
	Total int

	// X holds the decision vector evaluated in this iteration.
	X []float64

	// LastF holds the fitness value of X.
	LastF float64

	// BestX holds the best decision vector found so far.
	BestX []float64

	// BestF holds the best fitness value found so far.
	BestF float64
}

// AcquisitionFunc scores a candidate point from the surrogate model's
// prediction. Lower values indicate more promising points; the solver
// evaluates the candidate with the lowest acquisition value each
// iteration.
//
// Built-in acquisition functions: UCB, ProbabilityOfImprovement,
// ExpectedImprovement and ThompsonSampling. Custom implementations must
// be deterministic given params (ThompsonSampling draws from
// params.RandomState, which is guarded by the solver) and must handle
// extreme means and near-zero variances.
type AcquisitionFunc func(mean, variance float64, params AcquisitionParams) float64

// AcquisitionParams holds the knobs shared by the built-in acquisition
// functions. Each function reads only the fields it needs.
type AcquisitionParams struct {
	// Beta controls the exploration-exploitation trade-off in UCB.
	// Higher values explore uncertain regions more aggressively.
	// Typical values range from 0.1 to 5.0; 2.0 is a good default.
	Beta float64

	// Xi is the minimum-improvement margin used by
	// ProbabilityOfImprovement and ExpectedImprovement. Typical values
	// range from 0.01 to 0.1.
	Xi float64

	// BestSoFar is the best (lowest) fitness observed so far. It is
	// maintained by the solver; callers only need to seed it (use
	// math.MaxFloat64, as DefaultConfig does).
	BestSoFar float64

	// RandomState is the random source used by ThompsonSampling. It is
	// seeded by the solver from Config.Seed and must not be shared
	// between runs.
	RandomState *rand.Rand
}

// Config controls a Minimize run.
//
// Usage:
//
//	config := opt.DefaultConfig()
//	config.Iterations = 100
//	result, err := opt.Minimize(config, p)
type Config struct {
	// Iterations is the number of surrogate-guided optimization steps
	// performed after the initial sampling phase. Each iteration
	// evaluates exactly one point. Recommended range: 20-200.
	Iterations int

	// InitialSamples is the number of uniform random points evaluated
	// before optimization starts, used to seed the surrogate model.
	// Recommended range: 5-20.
	InitialSamples int

	// NumCandidates is the number of random candidates scored against
	// the surrogate model in each iteration. Higher values search more
	// thoroughly per iteration at higher cost. Recommended range:
	// 50-500.
	NumCandidates int

	// Parallelism bounds the number of goroutines scoring candidates
	// concurrently. Values below 2 keep scoring sequential, which also
	// makes runs reproducible for a fixed Seed.
	Parallelism int

	// Seed seeds the solver's random source. Zero selects a time-based
	// seed.
	Seed int64

	// Acquisition selects the strategy for choosing the next point to
	// evaluate. See AcquisitionFunc for the built-in options.
	Acquisition AcquisitionFunc

	// AcqParams holds the parameters for the acquisition function.
	AcqParams AcquisitionParams

	// ProgressChan receives progress updates during the run. If nil, no
	// updates are sent.
	ProgressChan chan<- ProgressUpdate
}
