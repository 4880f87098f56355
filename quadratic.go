package opt

// Quadratic implements the 4-dimensional separable sphere problem
//
//	f(x) = x0^2 + x1^2 + x2^2 + x3^2, -10 <= xi <= 10,
//
// with an analytic gradient, a known global minimizer at the origin and a
// fully dense single-row sparsity pattern. It is the canonical "hello
// world" of problem definitions: every optional capability (Grader,
// Sparser, Namer, Describer, BestKnower) is implemented.
//
// The raw methods trust their input; wrap the value in a Problem container
// to get dimension and bounds validation with distinguished errors.
type Quadratic struct{}

var (
	_ Objective  = Quadratic{}
	_ Grader     = Quadratic{}
	_ Sparser    = Quadratic{}
	_ Namer      = Quadratic{}
	_ Describer  = Quadratic{}
	_ BestKnower = Quadratic{}
)

// Fitness returns the single objective value at x.
func (Quadratic) Fitness(x []float64) []float64 {
	if len(x) != 4 {
		panic("opt: dimension of the problem must be 4")
	}
	return []float64{x[0]*x[0] + x[1]*x[1] + x[2]*x[2] + x[3]*x[3]}
}

// Gradient returns the analytic partial derivatives df/dxi = 2*xi.
func (Quadratic) Gradient(x []float64) []float64 {
	if len(x) != 4 {
		panic("opt: dimension of the problem must be 4")
	}
	return []float64{2 * x[0], 2 * x[1], 2 * x[2], 2 * x[3]}
}

// Sparsity reports that the single objective depends on all four
// variables.
func (Quadratic) Sparsity() []SparsityEntry {
	pattern := make([]SparsityEntry, 0, 4)
	for i := 0; i < 4; i++ {
		pattern = append(pattern, SparsityEntry{Row: 0, Col: i})
	}
	return pattern
}

// Dimension returns the fixed decision-vector length.
func (Quadratic) Dimension() int { return 4 }

// FitnessDimension returns 1: a single objective.
func (Quadratic) FitnessDimension() int { return 1 }

// Bounds returns the box bounds [-10, 10] for every variable.
func (Quadratic) Bounds() (lower, upper []float64) {
	return []float64{-10, -10, -10, -10}, []float64{10, 10, 10, 10}
}

// Name returns the display name of the problem.
func (Quadratic) Name() string { return "My Problem" }

// Description returns extra human-readable information appended to the
// container summary.
func (Quadratic) Description() string {
	return "This is a simple toy problem with one fitness,\n" +
		"no constraint and a fixed dimension of 4.\n" +
		"The fitness function gradients are also implemented.\n"
}

// BestKnown returns the global minimizer set: the origin.
func (Quadratic) BestKnown() [][]float64 {
	return [][]float64{{0, 0, 0, 0}}
}
