package random

import "fmt"

// Script is a Source that replays fixed values in order.
// Floats and ints are consumed from separate queues. Running out of values
// panics, which in tests means the code made a draw nobody expected.
type Script struct {
	Floats []float64
	Ints   []int
}

// Float64 returns the next scripted float.
func (s *Script) Float64() float64 {
	if len(s.Floats) == 0 {
		panic("random: script ran out of floats")
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}

// Intn returns the next scripted int. The value must lie in [0, n).
func (s *Script) Intn(n int) int {
	if len(s.Ints) == 0 {
		panic("random: script ran out of ints")
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("random: scripted int %d outside [0, %d)", v, n))
	}
	return v
}

// Drained reports whether every scripted value has been consumed.
func (s *Script) Drained() bool {
	return len(s.Floats) == 0 && len(s.Ints) == 0
}
