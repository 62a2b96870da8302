package prediction

import (
	"math/rand"
	"sync"
	"time"
)

// RandomSource supplies the draws used by the possession estimator and the
// score predictor. Tests substitute a scripted source.
type RandomSource interface {
	// Uniform returns a value in [lo, hi).
	Uniform(lo, hi float64) float64
	// Normal returns a draw from N(mean, stdev).
	Normal(mean, stdev float64) float64
}

// MathSource is a RandomSource over math/rand, safe for concurrent use.
type MathSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewMathSource(seed int64) *MathSource {
	return &MathSource{rng: rand.New(rand.NewSource(seed))}
}

func NewTimeSeededSource() *MathSource {
	return NewMathSource(time.Now().UnixNano())
}

func (s *MathSource) Uniform(lo, hi float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *MathSource) Normal(mean, stdev float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return mean + s.rng.NormFloat64()*stdev
}

// pick chooses one option uniformly.
func pick(rnd RandomSource, options ...int) int {
	idx := int(rnd.Uniform(0, float64(len(options))))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(options) {
		idx = len(options) - 1
	}
	return options[idx]
}
