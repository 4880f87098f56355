package opt

// Objective is the minimal contract a user-defined problem must satisfy to
// be wrapped in a Problem container and handed to a solver.
//
// Implementations must be pure: Fitness must not mutate x, must not keep a
// reference to it, and must return the same value for the same input. The
// container relies on this to allow concurrent evaluation without
// coordination.
//
// The remaining methods describe the fixed shape of the problem and must be
// constant across calls.
type Objective interface {
	// Fitness evaluates the objective(s) at x. The returned slice has
	// FitnessDimension elements and is owned by the caller.
	Fitness(x []float64) []float64

	// Dimension returns the length of a valid decision vector.
	Dimension() int

	// FitnessDimension returns the number of objectives.
	FitnessDimension() int

	// Bounds returns the per-variable box bounds, both of length
	// Dimension. A decision vector x is feasible when
	// lower[i] <= x[i] <= upper[i] for every i.
	Bounds() (lower, upper []float64)
}

// Grader is implemented by objectives that provide an analytic gradient.
// When absent, the container falls back to central finite differences.
type Grader interface {
	// Gradient returns the partial derivatives of the objective with
	// respect to each decision variable, in decision-vector order.
	Gradient(x []float64) []float64
}

// Sparser is implemented by objectives whose gradient is structurally
// sparse. When absent, the container reports a dense pattern.
type Sparser interface {
	Sparsity() []SparsityEntry
}

// Namer is implemented by objectives that carry a display name.
type Namer interface {
	Name() string
}

// Describer is implemented by objectives that carry extra human-readable
// information, appended to the container's summary.
type Describer interface {
	Description() string
}

// BestKnower is implemented by objectives with known optima, typically
// test problems. The returned vectors are reference data, not derived by
// search.
type BestKnower interface {
	BestKnown() [][]float64
}

// SparsityEntry identifies one structurally non-zero gradient entry:
// objective Row depends on decision variable Col.
type SparsityEntry struct {
	Row int
	Col int
}

// DensePattern returns the sparsity pattern of a problem whose every
// objective depends on every variable.
func DensePattern(fitnessDim, dim int) []SparsityEntry {
	pattern := make([]SparsityEntry, 0, fitnessDim*dim)
	for r := 0; r < fitnessDim; r++ {
		for c := 0; c < dim; c++ {
			pattern = append(pattern, SparsityEntry{Row: r, Col: c})
		}
	}
	return pattern
}
