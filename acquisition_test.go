package opt

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUCB(t *testing.T) {
	params := AcquisitionParams{Beta: 2.0}

	assert.Equal(t, 10.0-2.0*2.0, UCB(10, 4, params))

	// Zero variance degenerates to the mean.
	assert.Equal(t, 10.0, UCB(10, 0, params))

	// Higher uncertainty must score as more promising (lower).
	assert.Less(t, UCB(10, 9, params), UCB(10, 1, params))
}

func TestProbabilityOfImprovement(t *testing.T) {
	params := AcquisitionParams{BestSoFar: 10, Xi: 0}

	// A mean matching the best so far has even odds.
	assert.InDelta(t, 0.5, ProbabilityOfImprovement(10, 1, params), 1e-12)

	// A mean far below the best is nearly certain to improve (scores
	// near 0, i.e. promising).
	assert.Less(t, ProbabilityOfImprovement(0, 1, params), 1e-6)

	// A mean far above is nearly certain not to.
	assert.Greater(t, ProbabilityOfImprovement(20, 1, params), 1.0-1e-6)
}

func TestExpectedImprovement(t *testing.T) {
	params := AcquisitionParams{BestSoFar: 10, Xi: 0}

	// A near-certain improvement scores close to zero.
	assert.InDelta(t, 0.0, ExpectedImprovement(0, 1e-9, params), 1e-3)

	// The lower mean must rank as more promising for equal variance.
	assert.Less(t,
		ExpectedImprovement(5, 1, params),
		ExpectedImprovement(9, 1, params),
	)

	// A certainly-worse candidate scores its full deficit.
	assert.Greater(t, ExpectedImprovement(20, 1e-9, params), 9.0)
}

func TestThompsonSampling(t *testing.T) {
	a := ThompsonSampling(0, 1, AcquisitionParams{RandomState: rand.New(rand.NewSource(1))})
	b := ThompsonSampling(0, 1, AcquisitionParams{RandomState: rand.New(rand.NewSource(1))})

	// Identical generator state draws identical samples.
	assert.Equal(t, a, b)

	// Zero variance is deterministic regardless of the source.
	assert.Equal(t, 5.0,
		ThompsonSampling(5, 0, AcquisitionParams{RandomState: rand.New(rand.NewSource(2))}))
}

func TestNormalHelpers(t *testing.T) {
	assert.InDelta(t, 0.5, normalCDF(0), 1e-12)
	assert.InDelta(t, 1.0, normalCDF(10), 1e-12)
	assert.InDelta(t, 0.0, normalCDF(-10), 1e-12)

	assert.InDelta(t, 1/math.Sqrt(2*math.Pi), normalPDF(0), 1e-12)
	assert.InDelta(t, normalPDF(2), normalPDF(-2), 1e-15)
}

func TestClampVector(t *testing.T) {
	lower := []float64{-1, -1}
	upper := []float64{1, 1}

	assert.Equal(t, []float64{1, -1}, clampVector([]float64{2, -3}, lower, upper))
	assert.Equal(t, []float64{0.5, 0}, clampVector([]float64{0.5, 0}, lower, upper))
}

func TestRandomPointInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	lower := []float64{-10, 0, 5}
	upper := []float64{10, 1, 5}

	for i := 0; i < 100; i++ {
		x := randomPoint(rng, lower, upper)
		for j := range x {
			assert.GreaterOrEqual(t, x[j], lower[j])
			assert.LessOrEqual(t, x[j], upper[j])
		}
	}
}

func TestDensePattern(t *testing.T) {
	pattern := DensePattern(2, 3)

	assert.Len(t, pattern, 6)
	assert.Equal(t, SparsityEntry{Row: 0, Col: 0}, pattern[0])
	assert.Equal(t, SparsityEntry{Row: 1, Col: 2}, pattern[5])
}

func TestSurrogate(t *testing.T) {
	s := newSurrogate(1)

	// No observations: maximal uncertainty.
	mean, variance := s.Predict([]float64{0, 0})
	assert.Equal(t, 0.0, mean)
	assert.Equal(t, 1.0, variance)

	s.Update([]float64{0, 0}, 5)

	// At an observed point the prediction reproduces the observation
	// with low uncertainty.
	mean, variance = s.Predict([]float64{0, 0})
	assert.InDelta(t, 5.0, mean, 1e-12)
	assert.InDelta(t, 0.0, variance, 1e-12)

	// Far away the model decays to the prior.
	mean, variance = s.Predict([]float64{100, 100})
	assert.InDelta(t, 0.0, mean, 1e-12)
	assert.InDelta(t, 1.0, variance, 1e-12)
}

func TestSurrogateVarianceStaysNonNegative(t *testing.T) {
	// Many observations packed tightly relative to the kernel width
	// drive the raw variance term far below zero; Predict must clamp it
	// so acquisition functions never take the square root of a negative
	// number.
	s := newSurrogate(5)

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 60; i++ {
		s.Update([]float64{rng.Float64(), rng.Float64()}, 1)
	}

	mean, variance := s.Predict([]float64{0.5, 0.5})
	assert.GreaterOrEqual(t, variance, 0.0)
	assert.False(t, math.IsNaN(mean))

	for _, acquisition := range []AcquisitionFunc{UCB, ProbabilityOfImprovement, ExpectedImprovement} {
		acq := acquisition(mean, variance, AcquisitionParams{
			Beta:      2.0,
			Xi:        0.01,
			BestSoFar: 1,
		})
		assert.False(t, math.IsNaN(acq))
	}
}
