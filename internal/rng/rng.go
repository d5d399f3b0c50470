// Package rng provides the single pseudo-random source threaded through the simulation.
package rng

import (
	"math/rand"
	"time"
)

// Source is the randomness the simulation consumes: salary draws, attrition
// draws and building name picks.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// New returns a seeded source. A zero seed derives one from the clock.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Fixed replays scripted draws, cycling when exhausted. Used to pin random
// branches in tests.
type Fixed struct {
	Floats []float64
	Ints   []int

	fi, ii int
}

// Float64 returns the next scripted float, cycling; 0 when none are set
func (f *Fixed) Float64() float64 {
	if len(f.Floats) == 0 {
		return 0
	}
	v := f.Floats[f.fi%len(f.Floats)]
	f.fi++
	return v
}

// Intn returns the next scripted int folded into [0, n)
func (f *Fixed) Intn(n int) int {
	if len(f.Ints) == 0 || n <= 0 {
		return 0
	}
	v := f.Ints[f.ii%len(f.Ints)]
	f.ii++
	if v < 0 {
		v = -v
	}
	return v % n
}
