// Package randutil provides bounded pseudo-random numbers.
// The generators are not cryptographically secure.
package randutil

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

// Rand is a pseudo-random generator that is safe for concurrent use.
type Rand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// New returns a Rand drawing from src.
func New(src rand.Source) *Rand {
	return &Rand{r: rand.New(src)}
}

// NewSeeded returns a deterministic Rand for the given seed.
func NewSeeded(seed uint64) *Rand {
	return New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Default returns the process-wide generator, creating it on first use.
// It is seeded from the wall clock.
var Default = sync.OnceValue(func() *Rand {
	return NewSeeded(uint64(time.Now().UnixNano())) //nolint:gosec // bit pattern only
})

// Int returns a uniform integer in [bottom, top). It panics if top <= bottom.
func (r *Rand) Int(bottom, top int) int {
	return int(r.Int64(int64(bottom), int64(top)))
}

// Int64 returns a uniform integer in [bottom, top). It panics if top <= bottom.
// Any width up to the full int64 range is supported.
func (r *Rand) Int64(bottom, top int64) int64 {
	if top <= bottom {
		panic(fmt.Sprintf("randutil: invalid range [%d, %d)", bottom, top))
	}
	// The difference is computed unsigned so it cannot overflow
	width := uint64(top) - uint64(bottom)

	r.mu.Lock()
	n := r.r.Uint64N(width)
	r.mu.Unlock()

	return int64(uint64(bottom) + n) //nolint:gosec // wraps back into [bottom, top)
}

// Int returns a uniform integer in [bottom, top) from the default generator.
func Int(bottom, top int) int {
	return Default().Int(bottom, top)
}

// Int64 returns a uniform integer in [bottom, top) from the default generator.
func Int64(bottom, top int64) int64 {
	return Default().Int64(bottom, top)
}
