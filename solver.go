package opt

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

//////
// Exported functionalities.
//////

// DefaultConfig returns a default solver configuration.
func DefaultConfig() Config {
	return Config{
		Iterations:     50,
		InitialSamples: 10,
		NumCandidates:  50,
		Parallelism:    1,
		Acquisition:    UCB,
		AcqParams: AcquisitionParams{
			BestSoFar: math.MaxFloat64,
			Beta:      2.0,
			Xi:        0.01,
		},
		ProgressChan: nil, // Default to no progress updates.
	}
}

// Result holds the outcome of a Minimize run.
type Result struct {
	// X is the best decision vector found.
	X []float64

	// F is the fitness value at X.
	F float64

	// Iterations is the number of optimization iterations performed
	// after the initial sampling phase.
	Iterations int

	// Evaluations is the number of fitness evaluations the run consumed
	// through the problem container.
	Evaluations int64
}

// Minimize searches the box bounds of a single-objective problem for a
// low fitness value using surrogate-guided random search.
//
// How it works:
// 1. Takes InitialSamples uniform random points to seed the surrogate
// 2. For each iteration:
//   - Generates NumCandidates random candidate points within bounds
//   - Uses the surrogate to predict fitness and uncertainty at each
//   - Uses the acquisition function to select the most promising point
//   - Spends one real evaluation on it and updates the model
//
// 3. Returns the best point found
//
// Parameters:
// - config: Config controlling the run; zero-valued knobs fall back to
//   the defaults
// - p: A wrapped single-objective problem
//
// Returns:
// - *Result: Best point, its fitness and the evaluation cost
// - error: ErrNotSingleObjective for multi-objective problems, or any
//   error from the wrapped objective
//
// Usage:
//
//	p, err := opt.New(opt.Quadratic{})
//	if err != nil {
//		return err
//	}
//
//	result, err := opt.Minimize(opt.DefaultConfig(), p)
//	if err != nil {
//		return err
//	}
//	fmt.Println(result.X, result.F)
//
// Important notes:
// - Candidate scoring runs on up to Config.Parallelism goroutines
// - All candidates stay inside the problem's bounds, so the container's
//   bounds policy never triggers
// - The problem's evaluation counters record the cost of the run;
//   Minimize itself keeps no state between calls
// - Runs with Parallelism <= 1 and a fixed Seed are reproducible
func Minimize(config Config, p *Problem) (*Result, error) {
	if p.FitnessDimension() != 1 {
		return nil, ErrNotSingleObjective
	}

	// Normalize the configuration so a zero value for any knob falls
	// back to the default.
	defaults := DefaultConfig()
	if config.Iterations <= 0 {
		config.Iterations = defaults.Iterations
	}
	if config.InitialSamples <= 0 {
		config.InitialSamples = defaults.InitialSamples
	}
	if config.NumCandidates <= 0 {
		config.NumCandidates = defaults.NumCandidates
	}
	if config.Acquisition == nil {
		config.Acquisition = defaults.Acquisition
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewSource(seed))
	var rngMu sync.Mutex

	if config.AcqParams.RandomState == nil {
		config.AcqParams.RandomState = rand.New(rand.NewSource(seed + 1))
	}

	lower, upper := p.Bounds()

	// samplePoint draws a uniform point from the feasible box in a
	// thread-safe manner.
	samplePoint := func() []float64 {
		rngMu.Lock()
		defer rngMu.Unlock()

		return randomPoint(rng, lower, upper)
	}

	// Scale the kernel width to the search box so the surrogate
	// generalizes over a meaningful fraction of the domain.
	var span float64
	for i := range lower {
		span += upper[i] - lower[i]
	}
	model := newSurrogate(span / float64(len(lower)) / 4)

	bestX := make([]float64, p.Dimension())
	bestF := math.MaxFloat64

	updateBest := func(x []float64, f float64) {
		if f < bestF {
			bestF = f
			copy(bestX, x)
		}
	}

	sendProgress := func(phase string, iteration, total int, x []float64, f float64) {
		if config.ProgressChan == nil {
			return
		}

		update := ProgressUpdate{
			Phase:     phase,
			Iteration: iteration,
			Total:     total,
			X:         cloneVector(x),
			LastF:     f,
			BestX:     cloneVector(bestX),
			BestF:     bestF,
		}

		select {
		case config.ProgressChan <- update:
		default:
			// Skip update if channel is full.
		}
	}

	startEvals := p.Evaluations()

	evaluate := func(x []float64) (float64, error) {
		f, err := p.Fitness(x)
		if err != nil {
			return 0, err
		}
		return f[0], nil
	}

	// Phase 1: initial uniform sampling to seed the surrogate.
	for i := 0; i < config.InitialSamples; i++ {
		x := samplePoint()

		f, err := evaluate(x)
		if err != nil {
			return nil, err
		}

		model.Update(x, f)
		updateBest(x, f)
		sendProgress("InitialSampling", i+1, config.InitialSamples, x, f)
	}

	// Phase 2: surrogate-guided search. Each iteration scores a batch
	// of random candidates against the model and evaluates only the
	// most promising one.
	for i := 0; i < config.Iterations; i++ {
		config.AcqParams.BestSoFar = bestF

		var (
			next    []float64
			bestAcq = math.MaxFloat64
			scoreMu sync.Mutex
		)

		// score folds one candidate into the running minimum. The
		// acquisition call is kept under the lock because
		// ThompsonSampling draws from the shared RandomState.
		score := func(x []float64, mean, variance float64) {
			scoreMu.Lock()
			defer scoreMu.Unlock()

			acq := config.Acquisition(mean, variance, config.AcqParams)
			if acq < bestAcq {
				bestAcq = acq
				next = x
			}
		}

		if config.Parallelism >= 2 {
			var g errgroup.Group
			g.SetLimit(config.Parallelism)

			for j := 0; j < config.NumCandidates; j++ {
				g.Go(func() error {
					x := samplePoint()
					mean, variance := model.Predict(x)
					score(x, mean, variance)
					return nil
				})
			}

			// Scoring goroutines never fail; Wait is for joining only.
			_ = g.Wait()
		} else {
			for j := 0; j < config.NumCandidates; j++ {
				x := samplePoint()
				mean, variance := model.Predict(x)
				score(x, mean, variance)
			}
		}

		// A custom acquisition function that returns NaN for every
		// candidate leaves no winner; spend the evaluation on a random
		// point rather than aborting the run.
		if next == nil {
			next = samplePoint()
		}

		f, err := evaluate(next)
		if err != nil {
			return nil, err
		}

		model.Update(next, f)
		updateBest(next, f)
		sendProgress("Optimization", i+1, config.Iterations, next, f)
	}

	return &Result{
		X:           bestX,
		F:           bestF,
		Iterations:  config.Iterations,
		Evaluations: p.Evaluations() - startEvals,
	}, nil
}
