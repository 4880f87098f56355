package opt

// Rosenbrock implements the 2-dimensional Rosenbrock valley
//
//	f(x) = 100*(x1 - x0^2)^2 + (1 - x0)^2, -5 <= xi <= 10.
//
// The global minimum sits at [1, 1] inside a long, flat, curved valley,
// which makes it a useful stress test for solvers that converge easily on
// the sphere.
//
// Reference:
//
//	Rosenbrock, H.H.: An automatic method for finding the greatest or
//	least value of a function. Comput J 3 (1960), 175-184
type Rosenbrock struct{}

var (
	_ Objective  = Rosenbrock{}
	_ Grader     = Rosenbrock{}
	_ Namer      = Rosenbrock{}
	_ BestKnower = Rosenbrock{}
)

func (Rosenbrock) Fitness(x []float64) []float64 {
	if len(x) != 2 {
		panic("opt: dimension of the problem must be 2")
	}
	a := x[1] - x[0]*x[0]
	b := 1 - x[0]
	return []float64{100*a*a + b*b}
}

func (Rosenbrock) Gradient(x []float64) []float64 {
	if len(x) != 2 {
		panic("opt: dimension of the problem must be 2")
	}
	a := x[1] - x[0]*x[0]
	return []float64{
		-400*a*x[0] - 2*(1-x[0]),
		200 * a,
	}
}

func (Rosenbrock) Dimension() int { return 2 }

func (Rosenbrock) FitnessDimension() int { return 1 }

func (Rosenbrock) Bounds() (lower, upper []float64) {
	return []float64{-5, -5}, []float64{10, 10}
}

func (Rosenbrock) Name() string { return "Rosenbrock" }

func (Rosenbrock) BestKnown() [][]float64 {
	return [][]float64{{1, 1}}
}
