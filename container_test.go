package opt

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plainSphere is a bare-bones objective: no gradient, no sparsity, no
// name. Exercises every container fallback.
type plainSphere struct{}

func (plainSphere) Fitness(x []float64) []float64 {
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	return []float64{sum}
}

func (plainSphere) Dimension() int        { return 3 }
func (plainSphere) FitnessDimension() int { return 1 }

func (plainSphere) Bounds() (lower, upper []float64) {
	return []float64{-1, -1, -1}, []float64{1, 1, 1}
}

// brokenObjective reports a fitness dimension it does not honor.
type brokenObjective struct{ plainSphere }

func (brokenObjective) FitnessDimension() int { return 2 }

// badBounds reports bounds of the wrong length.
type badBounds struct{ plainSphere }

func (badBounds) Bounds() (lower, upper []float64) {
	return []float64{-1}, []float64{1}
}

// invertedBounds reports a lower bound above its upper bound.
type invertedBounds struct{ plainSphere }

func (invertedBounds) Bounds() (lower, upper []float64) {
	return []float64{1, -1, -1}, []float64{-1, 1, 1}
}

func TestNewValidation(t *testing.T) {
	_, err := New(Quadratic{})
	assert.NoError(t, err)

	_, err = New(badBounds{})
	assert.ErrorIs(t, err, ErrInvalidProblem)

	_, err = New(invertedBounds{})
	assert.ErrorIs(t, err, ErrInvalidProblem)
}

func TestProblemFitnessAndCounting(t *testing.T) {
	p, err := New(Quadratic{})
	require.NoError(t, err)

	assert.EqualValues(t, 0, p.Evaluations())

	f, err := p.Fitness([]float64{2, 2, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{16}, f)
	assert.EqualValues(t, 1, p.Evaluations())

	_, err = p.Fitness([]float64{0, 0, 0, 0})
	require.NoError(t, err)
	assert.EqualValues(t, 2, p.Evaluations())
}

func TestProblemDimensionMismatch(t *testing.T) {
	p, err := New(Quadratic{})
	require.NoError(t, err)

	_, err = p.Fitness([]float64{1, 2})
	require.Error(t, err)

	var dm *ErrDimensionMismatch
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, 4, dm.Expected)
	assert.Equal(t, 2, dm.Actual)

	// A rejected evaluation must not count.
	assert.EqualValues(t, 0, p.Evaluations())

	_, err = p.Gradient([]float64{1, 2, 3, 4, 5})
	assert.ErrorAs(t, err, &dm)
}

func TestProblemRejectsOutOfBounds(t *testing.T) {
	p, err := New(Quadratic{})
	require.NoError(t, err)

	_, err = p.Fitness([]float64{0, 11, 0, 0})
	require.Error(t, err)

	var oob *ErrOutOfBounds
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, 1, oob.Index)
	assert.Equal(t, 11.0, oob.Value)
	assert.Equal(t, -10.0, oob.Lower)
	assert.Equal(t, 10.0, oob.Upper)

	assert.EqualValues(t, 0, p.Evaluations())
}

func TestProblemClampsToBounds(t *testing.T) {
	p, err := New(Quadratic{}, WithBoundsPolicy(ClampToBounds))
	require.NoError(t, err)

	x := []float64{20, -20, 0, 0}
	f, err := p.Fitness(x)
	require.NoError(t, err)

	// [20, -20, 0, 0] projects onto [10, -10, 0, 0].
	assert.Equal(t, []float64{200}, f)

	// Clamping must not touch the caller's vector.
	assert.Equal(t, []float64{20, -20, 0, 0}, x)
}

func TestProblemAnalyticGradient(t *testing.T) {
	p, err := New(Quadratic{})
	require.NoError(t, err)

	assert.True(t, p.HasGradient())

	grad, err := p.Gradient([]float64{2, 2, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 4, 4, 4}, grad)

	assert.EqualValues(t, 1, p.GradientEvaluations())
	assert.EqualValues(t, 0, p.Evaluations())
}

func TestProblemFiniteDifferenceGradient(t *testing.T) {
	p, err := New(plainSphere{})
	require.NoError(t, err)

	assert.False(t, p.HasGradient())

	grad, err := p.Gradient([]float64{0.5, -0.25, 0})
	require.NoError(t, err)

	require.Len(t, grad, 3)
	assert.InDelta(t, 1.0, grad[0], 1e-4)
	assert.InDelta(t, -0.5, grad[1], 1e-4)
	assert.InDelta(t, 0.0, grad[2], 1e-4)

	// Central differences probe twice per variable, and the probes go
	// through the fitness counter.
	assert.EqualValues(t, 1, p.GradientEvaluations())
	assert.EqualValues(t, 6, p.Evaluations())
}

func TestProblemFiniteDifferenceGradientAtBounds(t *testing.T) {
	p, err := New(plainSphere{})
	require.NoError(t, err)

	// Probe points must stay feasible even when x sits on a bound.
	grad, err := p.Gradient([]float64{1, -1, 0})
	require.NoError(t, err)

	assert.InDelta(t, 2.0, grad[0], 1e-4)
	assert.InDelta(t, -2.0, grad[1], 1e-4)
}

func TestProblemSparsityFallback(t *testing.T) {
	p, err := New(Quadratic{})
	require.NoError(t, err)

	assert.Equal(t, []SparsityEntry{{0, 0}, {0, 1}, {0, 2}, {0, 3}}, p.Sparsity())

	plain, err := New(plainSphere{})
	require.NoError(t, err)

	// No Sparser capability: dense 1x3 pattern.
	assert.Equal(t, []SparsityEntry{{0, 0}, {0, 1}, {0, 2}}, plain.Sparsity())
}

func TestProblemMetadataFallbacks(t *testing.T) {
	p, err := New(plainSphere{})
	require.NoError(t, err)

	assert.Contains(t, p.Name(), "unnamed problem")
	assert.Empty(t, p.Description())
	assert.Nil(t, p.BestKnown())
}

func TestProblemFitnessDimensionGuard(t *testing.T) {
	p, err := New(brokenObjective{})
	require.NoError(t, err)

	_, err = p.Fitness([]float64{0, 0, 0})
	require.Error(t, err)

	var fd *ErrFitnessDimension
	require.ErrorAs(t, err, &fd)
	assert.Equal(t, 2, fd.Expected)
	assert.Equal(t, 1, fd.Actual)
}

func TestProblemString(t *testing.T) {
	p, err := New(Quadratic{})
	require.NoError(t, err)

	s := p.String()
	assert.Contains(t, s, "Problem name: My Problem")
	assert.Contains(t, s, "Global dimension: 4")
	assert.Contains(t, s, "Fitness dimension: 1")
	assert.Contains(t, s, "Has gradient: true")
	assert.Contains(t, s, "simple toy problem")
}

func TestExtract(t *testing.T) {
	p, err := New(Quadratic{})
	require.NoError(t, err)

	q, ok := Extract[Quadratic](p)
	require.True(t, ok)
	assert.Equal(t, [][]float64{{0, 0, 0, 0}}, q.BestKnown())

	_, ok = Extract[Rosenbrock](p)
	assert.False(t, ok)
}

func TestProblemConcurrentEvaluation(t *testing.T) {
	p, err := New(Quadratic{})
	require.NoError(t, err)

	const (
		workers = 8
		each    = 100
	)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < each; i++ {
				f, err := p.Fitness([]float64{2, 2, 2, 2})
				assert.NoError(t, err)
				assert.Equal(t, []float64{16}, f)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, workers*each, p.Evaluations())
}

func TestBoundsReturnsCopies(t *testing.T) {
	p, err := New(Quadratic{})
	require.NoError(t, err)

	lower, _ := p.Bounds()
	lower[0] = -999

	fresh, _ := p.Bounds()
	assert.Equal(t, -10.0, fresh[0])
}

func TestErrorMessages(t *testing.T) {
	dm := &ErrDimensionMismatch{Expected: 4, Actual: 2}
	assert.Contains(t, dm.Error(), "expected 4")

	oob := &ErrOutOfBounds{Index: 1, Value: 11, Lower: -10, Upper: 10}
	assert.Contains(t, oob.Error(), "component 1")

	assert.True(t, errors.Is(ErrNotSingleObjective, ErrNotSingleObjective))
}
