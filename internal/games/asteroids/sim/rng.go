package sim

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// SimpleRNG is a deterministic pseudo-random number generator.
// A (seed, input script) pair always replays the same game.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64 (64-bit LCG).
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	// High bits have a longer period than low bits in an LCG
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// Range returns a random float64 in [lo, hi).
func (r *SimpleRNG) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Direction returns a random unit vector.
func (r *SimpleRNG) Direction() core.Vec2 {
	a := r.Float64() * 2 * math.Pi
	return core.V(math.Cos(a), math.Sin(a))
}

// State exposes the generator state for snapshots.
func (r *SimpleRNG) State() uint64 {
	return r.state
}
