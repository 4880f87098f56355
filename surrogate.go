package opt

import (
	"math"
	"sync"
)

// surrogate is a lightweight RBF-kernel regression model over observed
// (point, fitness) pairs. The solver uses it to predict the fitness and
// uncertainty of unevaluated candidates so that the acquisition function
// can rank them without spending real evaluations.
//
// All observations are kept; memory and prediction cost grow with the
// number of evaluated points, which is acceptable for the evaluation
// budgets Minimize is built for. A RWMutex guards the observation set so
// candidate scoring can run concurrently with the read lock held.
type surrogate struct {
	mu sync.RWMutex

	// x holds the observed decision vectors, y the fitness value at
	// each. Both grow in lockstep.
	x [][]float64
	y []float64

	// sigma is the RBF kernel width. Larger values smooth the model
	// over larger distances.
	sigma float64
}

func newSurrogate(sigma float64) *surrogate {
	return &surrogate{sigma: sigma}
}

// rbf computes exp(-|a-b|^2 / (2*sigma^2)), the similarity of two points.
// Caller must hold at least the read lock.
func (s *surrogate) rbf(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Exp(-sum / (2 * s.sigma * s.sigma))
}

// Predict estimates the fitness at x together with an uncertainty
// measure.
//
// Returns:
// - mean: Expected fitness at x, a kernel-weighted average of the
//   observations
// - variance: Uncertainty of the prediction, in [0, 1]; 1 with no
//   observations, approaching 0 near well-observed points
func (s *surrogate) Predict(x []float64) (mean, variance float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.x)
	if n == 0 {
		return 0, 1
	}

	k := make([]float64, n)
	for i := range s.x {
		k[i] = s.rbf(x, s.x[i])
	}

	var sum float64
	for i := range k {
		sum += k[i] * s.y[i]
	}
	mean = sum / float64(n)

	variance = 1.0
	for i := range k {
		for j := range k {
			variance -= k[i] * k[j] / float64(n)
		}
	}

	// The subtraction drifts negative once observations cluster relative
	// to the kernel width. Clamp at zero so acquisition functions can
	// take square roots.
	if variance < 0 {
		variance = 0
	}

	return mean, variance
}

// Update records one observation. The decision vector is copied, so the
// caller may reuse its slice.
func (s *surrogate) Update(x []float64, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.x = append(s.x, cloneVector(x))
	s.y = append(s.y, y)
}
