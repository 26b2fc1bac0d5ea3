package core

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// TickSource supplies the monotonically increasing value whose parity breaks
// left/right ties during a step. Tick is sampled once per decision.
type TickSource interface {
	Tick() uint64
}

// Tick source kinds accepted by NewTickSource.
const (
	TicksClock  = "clock"
	TicksSeeded = "seeded"
)

// NewTickSource builds the named tick source. Seed only applies to the seeded
// kind.
func NewTickSource(kind string, seed int64) (TickSource, error) {
	switch kind {
	case "", TicksClock:
		return NewClockTicks(), nil
	case TicksSeeded:
		return NewRNG(seed), nil
	default:
		return nil, fmt.Errorf("unknown tick source %q", kind)
	}
}

// ClockTicks reports milliseconds elapsed on the monotonic clock since it was
// created.
type ClockTicks struct {
	start time.Time
}

// NewClockTicks starts a clock-driven tick source.
func NewClockTicks() *ClockTicks { return &ClockTicks{start: time.Now()} }

// Tick returns the elapsed milliseconds.
func (c *ClockTicks) Tick() uint64 {
	return uint64(time.Since(c.start).Milliseconds())
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	seed int64
	r    *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{seed: seed, r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Reseed restarts the sequence from seed.
func (r *RNG) Reseed(seed int64) {
	r.seed = seed
	r.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

// Seed reports the seed the sequence was last started from.
func (r *RNG) Seed() int64 { return r.seed }

// Tick returns the next pseudo-random value.
func (r *RNG) Tick() uint64 { return r.r.Uint64() }

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// IntN returns a random int in [0, n). Zero or negative n yields 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// SequenceTicks replays a fixed list of values, wrapping around at the end.
type SequenceTicks struct {
	values []uint64
	next   int
	draws  int
}

// NewSequenceTicks returns a source cycling over values. An empty list always
// yields zero.
func NewSequenceTicks(values ...uint64) *SequenceTicks {
	return &SequenceTicks{values: append([]uint64(nil), values...)}
}

// Tick returns the next value in the sequence.
func (s *SequenceTicks) Tick() uint64 {
	s.draws++
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}

// Draws reports how many times Tick has been called.
func (s *SequenceTicks) Draws() int { return s.draws }

// FixedTick always returns the same value.
type FixedTick uint64

// Tick returns the fixed value.
func (f FixedTick) Tick() uint64 { return uint64(f) }
