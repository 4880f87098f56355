package opt

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
)

// defaultGradientStep is the step size of the central finite-difference
// gradient fallback, chosen for roughly cube-root-of-epsilon accuracy on
// unit-scale variables.
const defaultGradientStep = 1e-6

// Problem wraps a user-defined Objective behind a uniform, validated
// surface. It is the Go rendition of a type-erased problem container:
// optional capabilities of the wrapped value (analytic gradient, sparsity,
// name, description, best known set) are discovered via interface queries
// and filled in with sensible fallbacks when absent.
//
// The container owns what the raw objective deliberately does not:
// dimension and bounds validation with distinguished errors, evaluation
// counting, and human-readable summaries. Counters are atomic, and the
// wrapped objective is required to be pure, so a single Problem may be
// shared by concurrent callers without coordination.
type Problem struct {
	obj Objective

	dim   int
	fdim  int
	lower []float64
	upper []float64

	boundsPolicy BoundsPolicy
	gradStep     float64
	logger       *slog.Logger

	fevals atomic.Int64
	gevals atomic.Int64
}

// New wraps obj in a Problem container. It fails with a wrapped
// ErrInvalidProblem when the objective reports an inconsistent shape:
// non-positive dimensions, bound slices whose length differs from the
// dimension, or a lower bound above its upper bound.
func New(obj Objective, opts ...Option) (*Problem, error) {
	dim := obj.Dimension()
	if dim <= 0 {
		return nil, fmt.Errorf("%w: dimension %d", ErrInvalidProblem, dim)
	}

	fdim := obj.FitnessDimension()
	if fdim <= 0 {
		return nil, fmt.Errorf("%w: fitness dimension %d", ErrInvalidProblem, fdim)
	}

	lower, upper := obj.Bounds()
	if len(lower) != dim || len(upper) != dim {
		return nil, fmt.Errorf("%w: bounds of length %d/%d, want %d",
			ErrInvalidProblem, len(lower), len(upper), dim)
	}
	for i := range lower {
		if lower[i] > upper[i] {
			return nil, fmt.Errorf("%w: lower bound %g above upper bound %g at component %d",
				ErrInvalidProblem, lower[i], upper[i], i)
		}
	}

	p := &Problem{
		obj:          obj,
		dim:          dim,
		fdim:         fdim,
		lower:        cloneVector(lower),
		upper:        cloneVector(upper),
		boundsPolicy: RejectOutOfBounds,
		gradStep:     defaultGradientStep,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// checkPoint validates x against the problem shape and bounds policy. The
// returned vector is x itself under RejectOutOfBounds and a clamped copy
// under ClampToBounds.
func (p *Problem) checkPoint(x []float64) ([]float64, error) {
	if len(x) != p.dim {
		return nil, &ErrDimensionMismatch{Expected: p.dim, Actual: len(x)}
	}

	switch p.boundsPolicy {
	case ClampToBounds:
		return clampVector(x, p.lower, p.upper), nil
	default:
		for i, v := range x {
			if v < p.lower[i] || v > p.upper[i] {
				return nil, &ErrOutOfBounds{
					Index: i,
					Value: v,
					Lower: p.lower[i],
					Upper: p.upper[i],
				}
			}
		}
		return x, nil
	}
}

// Fitness evaluates the wrapped objective at x and increments the fitness
// evaluation counter. The decision vector is validated against the
// problem dimension and, depending on the bounds policy, either rejected
// or clamped when infeasible.
func (p *Problem) Fitness(x []float64) ([]float64, error) {
	x, err := p.checkPoint(x)
	if err != nil {
		return nil, err
	}

	f := p.evalFitness(x)
	if len(f) != p.fdim {
		return nil, &ErrFitnessDimension{Expected: p.fdim, Actual: len(f)}
	}

	p.logger.Debug("fitness evaluated", "x", x, "f", f, "fevals", p.Evaluations())

	return f, nil
}

// evalFitness calls the raw objective and counts the evaluation.
func (p *Problem) evalFitness(x []float64) []float64 {
	p.fevals.Add(1)
	return p.obj.Fitness(x)
}

// Gradient returns the gradient of the objective at x, using the analytic
// gradient when the wrapped value implements Grader and central finite
// differences otherwise. Each finite-difference probe counts as a fitness
// evaluation; either way the gradient evaluation counter is incremented.
//
// The finite-difference fallback is only defined for single-objective
// problems, matching the gradient layout of Grader.
func (p *Problem) Gradient(x []float64) ([]float64, error) {
	x, err := p.checkPoint(x)
	if err != nil {
		return nil, err
	}

	if g, ok := p.obj.(Grader); ok {
		p.gevals.Add(1)
		grad := g.Gradient(x)
		p.logger.Debug("gradient evaluated", "x", x, "analytic", true)
		return grad, nil
	}

	if p.fdim != 1 {
		return nil, fmt.Errorf("%w: finite-difference gradient", ErrNotSingleObjective)
	}

	p.gevals.Add(1)

	grad := make([]float64, p.dim)
	probe := cloneVector(x)
	for i := range probe {
		orig := probe[i]

		// Clip the probe points to the box; near a bound this degrades
		// gracefully from a central to a one-sided difference.
		xp := clamp(orig+p.gradStep, p.lower[i], p.upper[i])
		xm := clamp(orig-p.gradStep, p.lower[i], p.upper[i])
		if xp == xm {
			// Degenerate interval, the variable is fixed.
			continue
		}

		probe[i] = xp
		fp := p.evalFitness(probe)[0]
		probe[i] = xm
		fm := p.evalFitness(probe)[0]
		probe[i] = orig

		grad[i] = (fp - fm) / (xp - xm)
	}

	p.logger.Debug("gradient evaluated", "x", x, "analytic", false)

	return grad, nil
}

// Sparsity returns the gradient sparsity pattern of the wrapped objective,
// or a dense pattern when the objective does not declare one.
func (p *Problem) Sparsity() []SparsityEntry {
	if s, ok := p.obj.(Sparser); ok {
		return s.Sparsity()
	}
	return DensePattern(p.fdim, p.dim)
}

// Dimension returns the decision-vector length.
func (p *Problem) Dimension() int { return p.dim }

// FitnessDimension returns the number of objectives.
func (p *Problem) FitnessDimension() int { return p.fdim }

// Bounds returns copies of the problem's box bounds.
func (p *Problem) Bounds() (lower, upper []float64) {
	return cloneVector(p.lower), cloneVector(p.upper)
}

// HasGradient reports whether the wrapped objective provides an analytic
// gradient.
func (p *Problem) HasGradient() bool {
	_, ok := p.obj.(Grader)
	return ok
}

// Name returns the display name of the wrapped objective, or a generic
// fallback when the objective is not a Namer.
func (p *Problem) Name() string {
	if n, ok := p.obj.(Namer); ok {
		return n.Name()
	}
	return fmt.Sprintf("unnamed problem (%T)", p.obj)
}

// Description returns the extra information of the wrapped objective, or
// the empty string when absent.
func (p *Problem) Description() string {
	if d, ok := p.obj.(Describer); ok {
		return d.Description()
	}
	return ""
}

// BestKnown returns copies of the objective's known optima, or nil when
// none are declared.
func (p *Problem) BestKnown() [][]float64 {
	b, ok := p.obj.(BestKnower)
	if !ok {
		return nil
	}
	known := b.BestKnown()
	out := make([][]float64, len(known))
	for i, v := range known {
		out[i] = cloneVector(v)
	}
	return out
}

// Evaluations returns the number of fitness evaluations performed through
// the container, including finite-difference probes.
func (p *Problem) Evaluations() int64 { return p.fevals.Load() }

// GradientEvaluations returns the number of gradient evaluations
// performed through the container.
func (p *Problem) GradientEvaluations() int64 { return p.gevals.Load() }

// String renders a multi-line human-readable summary of the problem.
func (p *Problem) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Problem name: %s\n", p.Name())
	fmt.Fprintf(&b, "\tGlobal dimension: %d\n", p.dim)
	fmt.Fprintf(&b, "\tFitness dimension: %d\n", p.fdim)
	fmt.Fprintf(&b, "\tLower bounds: %v\n", p.lower)
	fmt.Fprintf(&b, "\tUpper bounds: %v\n", p.upper)
	fmt.Fprintf(&b, "\tHas gradient: %t\n", p.HasGradient())
	fmt.Fprintf(&b, "\tBounds policy: %s\n", p.boundsPolicy)
	fmt.Fprintf(&b, "\tFitness evaluations: %d\n", p.Evaluations())

	if desc := p.Description(); desc != "" {
		b.WriteString("Extra info:\n")
		b.WriteString(desc)
	}

	return b.String()
}
