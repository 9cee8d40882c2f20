// SPDX-License-Identifier: MIT

// File: options.go
// Role: functional options for Sample.
//
// Contract:
//   - Option constructors panic on meaningless input (nil rng, negative caps).
//   - Later options override earlier ones.
//   - Sample itself never panics.
package placement

import "math/rand"

const (
	// DefaultMinCount and DefaultMaxCount bound the drawn landmark count.
	DefaultMinCount = 20
	DefaultMaxCount = 28

	// drawsPerCell scales the default draw budget with grid area.
	drawsPerCell = 64
)

// Option customizes Sample.
type Option func(*config)

type config struct {
	rng         *rand.Rand
	minCount    int
	maxCount    int
	maxAttempts int // 0 means width*height*drawsPerCell
}

func newConfig(opts ...Option) config {
	cfg := config{
		minCount: DefaultMinCount,
		maxCount: DefaultMaxCount,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand supplies the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("placement: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed seeds a fresh random source.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCountRange sets the inclusive landmark count range. Validation happens
// in Sample, which reports ErrBadCountRange.
func WithCountRange(min, max int) Option {
	return func(c *config) {
		c.minCount, c.maxCount = min, max
	}
}

// WithMaxAttempts caps the number of candidate draws. Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("placement: WithMaxAttempts(n<1)")
	}
	return func(c *config) {
		c.maxAttempts = n
	}
}
