package opt

import "log/slog"

// BoundsPolicy controls how the container treats decision vectors with
// components outside the problem's box bounds.
type BoundsPolicy int

const (
	// RejectOutOfBounds makes Fitness and Gradient fail with an
	// *ErrOutOfBounds. This is the default.
	RejectOutOfBounds BoundsPolicy = iota

	// ClampToBounds projects offending components onto the nearest
	// bound before evaluating. The objective never sees an infeasible
	// point.
	ClampToBounds
)

// String implements fmt.Stringer.
func (p BoundsPolicy) String() string {
	switch p {
	case RejectOutOfBounds:
		return "reject"
	case ClampToBounds:
		return "clamp"
	default:
		return "unknown"
	}
}

// Option configures a Problem container at construction time.
type Option func(*Problem)

// WithBoundsPolicy sets the out-of-bounds handling policy.
func WithBoundsPolicy(policy BoundsPolicy) Option {
	return func(p *Problem) {
		p.boundsPolicy = policy
	}
}

// WithGradientStep sets the step size used by the central finite-difference
// gradient fallback. It has no effect on objectives that implement Grader.
// Non-positive values are ignored.
func WithGradientStep(h float64) Option {
	return func(p *Problem) {
		if h > 0 {
			p.gradStep = h
		}
	}
}

// WithLogger attaches a structured logger to the container. Evaluations
// are logged at debug level. By default log output is discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Problem) {
		if logger != nil {
			p.logger = logger
		}
	}
}
