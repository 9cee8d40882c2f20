// SPDX-License-Identifier: MIT

// File: options.go
// Role: functional options for Generate.
//
// Contract:
//   - Option constructors validate and panic on meaningless input.
//   - Later options override earlier ones.
//   - Generate never panics; it reports errors.
package level

import (
	"io"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/cryptgraph/core"
	"github.com/katalvlaran/cryptgraph/corridor"
	"github.com/katalvlaran/cryptgraph/placement"
)

// DefaultColumns and DefaultRows are the grid size used by the reference
// tile map.
const (
	DefaultColumns = 35
	DefaultRows    = 25
)

// StageHook observes a snapshot of the graph after each stage. A non-nil
// error aborts generation.
type StageHook func(Stage, *core.Graph) error

// Option customizes Generate.
type Option func(*config)

type config struct {
	rng               *rand.Rand
	minLandmarks      int
	maxLandmarks      int
	placementAttempts int // 0 lets placement derive it from the grid size
	repairPasses      int
	mergePasses       int
	logger            *slog.Logger
	onStage           StageHook
}

func newConfig(opts ...Option) config {
	cfg := config{
		minLandmarks: placement.DefaultMinCount,
		maxLandmarks: placement.DefaultMaxCount,
		repairPasses: corridor.DefaultMaxPasses,
		mergePasses:  corridor.DefaultMaxPasses,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(defaultRNGSeed)
	}

	return cfg
}

// WithSeed seeds the random source; zero selects the default seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand supplies the random source directly. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("level: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithLandmarkRange sets the inclusive range the landmark count is drawn
// from. One fewer landmark than the drawn count is placed. An invalid range
// makes Generate fail with placement.ErrBadCountRange.
func WithLandmarkRange(min, max int) Option {
	return func(c *config) {
		c.minLandmarks, c.maxLandmarks = min, max
	}
}

// WithPlacementAttempts caps candidate draws during placement. Panics if n < 1.
func WithPlacementAttempts(n int) Option {
	if n < 1 {
		panic("level: WithPlacementAttempts(n<1)")
	}
	return func(c *config) {
		c.placementAttempts = n
	}
}

// WithRepairPasses caps the connectivity repair loop. Panics if n < 1.
func WithRepairPasses(n int) Option {
	if n < 1 {
		panic("level: WithRepairPasses(n<1)")
	}
	return func(c *config) {
		c.repairPasses = n
	}
}

// WithMergePasses caps the component merge loop. Panics if n < 1.
func WithMergePasses(n int) Option {
	if n < 1 {
		panic("level: WithMergePasses(n<1)")
	}
	return func(c *config) {
		c.mergePasses = n
	}
}

// WithLogger routes stage and pass records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("level: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithOnStage registers a hook called after every stage. Panics on nil.
func WithOnStage(fn StageHook) Option {
	if fn == nil {
		panic("level: WithOnStage(nil)")
	}
	return func(c *config) {
		c.onStage = fn
	}
}
