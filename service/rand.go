package service

import "math/rand"

// Rand is the source of randomness for candidate generation and power
// jitter. Injected so tests can fix a seed.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

type systemRand struct{}

func (systemRand) IntN(n int) int   { return rand.Intn(n) }
func (systemRand) Float64() float64 { return rand.Float64() }

// SystemRand returns the process-wide entropy source. Safe for concurrent
// use.
func SystemRand() Rand {
	return systemRand{}
}
