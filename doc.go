// Package opt provides a small framework for defining box-bounded
// numerical optimization problems and a surrogate-guided solver to
// consume them.
//
// # Features
//
// The package includes the following key features:
//
//   - Problem contract: user-defined problems implement the minimal
//     Objective interface; analytic gradients, sparsity patterns, names,
//     descriptions and known optima are optional capabilities discovered
//     via interface queries
//   - Problem container: wraps any Objective behind a validated surface
//     with distinguished dimension and bounds errors, a configurable
//     out-of-bounds policy (reject or clamp), atomic evaluation counters
//     and a finite-difference gradient fallback
//   - Typed extraction: Extract recovers the wrapped objective as its
//     concrete type, keeping problem-specific data reachable after
//     wrapping
//   - Solver: Minimize performs surrogate-guided random search over the
//     problem's box bounds with UCB, Probability of Improvement, Expected
//     Improvement or Thompson Sampling acquisition
//   - Progress monitoring: real-time updates on solver progress via
//     channels
//   - Problem catalog: ready-made Quadratic and Rosenbrock test problems
//
// # Defining a problem
//
// A problem is any type with a fitness function and a fixed shape:
//
//	type sphere struct{}
//
//	func (sphere) Fitness(x []float64) []float64 {
//		return []float64{x[0]*x[0] + x[1]*x[1]}
//	}
//	func (sphere) Dimension() int        { return 2 }
//	func (sphere) FitnessDimension() int { return 1 }
//	func (sphere) Bounds() (lo, hi []float64) {
//		return []float64{-1, -1}, []float64{1, 1}
//	}
//
// Wrap it in a container to get validation and evaluation counting:
//
//	p, err := opt.New(sphere{})
//	if err != nil {
//		return err
//	}
//
//	f, err := p.Fitness([]float64{0.5, 0.5})
//	fmt.Println(f, p.Evaluations())
//
// # Minimizing
//
//	result, err := opt.Minimize(opt.DefaultConfig(), p)
//	if err != nil {
//		return err
//	}
//	fmt.Println(result.X, result.F)
//
// # Thread safety
//
// Objectives are required to be pure, the container's counters are
// atomic, and the surrogate model is guarded by a RWMutex, so a single
// Problem may be shared by concurrent callers and candidate scoring may
// run in parallel (Config.Parallelism).
package opt
