package prediction

import "testing"

// scriptedSource replays fixed draws in order and fails the test when the
// script runs out.
type scriptedSource struct {
	t        *testing.T
	uniforms []float64
	normals  []float64
}

func (s *scriptedSource) Uniform(lo, hi float64) float64 {
	s.t.Helper()
	if len(s.uniforms) == 0 {
		s.t.Fatalf("unexpected uniform draw in [%v, %v)", lo, hi)
	}
	v := s.uniforms[0]
	s.uniforms = s.uniforms[1:]
	return v
}

func (s *scriptedSource) Normal(mean, _ float64) float64 {
	s.t.Helper()
	if len(s.normals) == 0 {
		return mean
	}
	v := s.normals[0]
	s.normals = s.normals[1:]
	return v
}

// meanSource returns the midpoint of uniforms and the mean of normals.
type meanSource struct{ blowout bool }

func (m meanSource) Uniform(lo, hi float64) float64 {
	if lo == 0 && hi == 1 {
		if m.blowout {
			return 0
		}
		return 0.99
	}
	return (lo + hi) / 2
}

func (meanSource) Normal(mean, _ float64) float64 { return mean }
