package opt

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidProblem is returned by New when the wrapped objective
	// reports an inconsistent shape (non-positive dimensions, bound
	// slices of the wrong length, or a lower bound above its upper
	// bound).
	ErrInvalidProblem = errors.New("opt: invalid problem definition")

	// ErrNotSingleObjective is returned by Minimize when the problem has
	// more than one objective.
	ErrNotSingleObjective = errors.New("opt: problem must have a single objective")
)

// ErrDimensionMismatch indicates a decision vector whose length does not
// match the problem dimension.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("opt: dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrOutOfBounds indicates a decision-vector component outside the
// problem's box bounds. It is only returned under the RejectOutOfBounds
// policy; ClampToBounds silently projects the component instead.
type ErrOutOfBounds struct {
	Index int
	Value float64
	Lower float64
	Upper float64
}

func (e *ErrOutOfBounds) Error() string {
	return fmt.Sprintf("opt: component %d out of bounds: %g not in [%g, %g]",
		e.Index, e.Value, e.Lower, e.Upper)
}

// ErrFitnessDimension indicates an objective that returned a fitness
// vector of the wrong length, a contract violation in the user-defined
// problem.
type ErrFitnessDimension struct {
	Expected int
	Actual   int
}

func (e *ErrFitnessDimension) Error() string {
	return fmt.Sprintf("opt: objective returned %d fitness values, want %d", e.Actual, e.Expected)
}
