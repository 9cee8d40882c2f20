// SPDX-License-Identifier: MIT

package corridor

import (
	"io"
	"log/slog"
)

// DefaultMaxPasses caps the Repair and Merge loops.
const DefaultMaxPasses = 10

// Option customizes a corridor stage.
type Option func(*config)

type config struct {
	maxPasses int
	logger    *slog.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		maxPasses: DefaultMaxPasses,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithMaxPasses caps the number of Repair or Merge passes. Panics if n < 1.
func WithMaxPasses(n int) Option {
	if n < 1 {
		panic("corridor: WithMaxPasses(n<1)")
	}
	return func(c *config) {
		c.maxPasses = n
	}
}

// WithLogger routes per-pass debug records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("corridor: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
