// SPDX-License-Identifier: MIT

// File: sample.go
// Role: spaced random landmark sampling and classification.
package placement

import (
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/cryptgraph/grid"
)

// Kind is the category a sampled index was classified into.
type Kind int

const (
	// KindRoom is an ordinary room.
	KindRoom Kind = iota
	// KindStore is the optional store; only ever the first accepted index.
	KindStore
	// KindStairUp is the first stair placed near the center.
	KindStairUp
	// KindStairDown is the second stair placed near the center.
	KindStairDown
	// KindFountain is the single fountain placed near the center.
	KindFountain
)

// String returns a lower-case label for k.
func (k Kind) String() string {
	switch k {
	case KindStore:
		return "store"
	case KindStairUp:
		return "stair-up"
	case KindStairDown:
		return "stair-down"
	case KindFountain:
		return "fountain"
	default:
		return "room"
	}
}

// Landmark is one accepted index with its category.
type Landmark struct {
	Index int
	Point grid.Point
	Kind  Kind
}

// Result holds the accepted indices.
//
// Store, Stairs, Fountain and Rooms are disjoint; Used lists every accepted
// landmark in acceptance order.
type Result struct {
	Dims grid.Dims

	Store    []int
	Stairs   []int // [up, down]
	Fountain []int
	Rooms    []int

	Used []Landmark

	// Target is the number of landmarks requested (the drawn count minus one).
	Target int

	// Attempts is the number of candidate indices drawn.
	Attempts int
}

// Sample places landmarks on a width×height grid.
//
// Returns:
//   - grid.ErrBadDimensions for a non-positive size.
//   - ErrBadCountRange for min < 1 or max < min.
//   - ErrNeedRandSource when no rng was configured.
//   - ErrCannotPlace when the draw budget runs out.
//
// Complexity: O(A·L) for A draws and L accepted landmarks.
func Sample(width, height int, opts ...Option) (*Result, error) {
	dims, err := grid.NewDims(width, height)
	if err != nil {
		return nil, fmt.Errorf("Sample: %w", err)
	}
	cfg := newConfig(opts...)
	if cfg.minCount < 1 || cfg.maxCount < cfg.minCount {
		return nil, fmt.Errorf("Sample: [%d,%d]: %w", cfg.minCount, cfg.maxCount, ErrBadCountRange)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("Sample: %w", ErrNeedRandSource)
	}
	budget := cfg.maxAttempts
	if budget == 0 {
		budget = dims.Cells() * drawsPerCell
	}

	r := cfg.rng
	count := cfg.minCount + r.Intn(cfg.maxCount-cfg.minCount+1)
	s := &sampler{
		res:  &Result{Dims: dims, Target: count - 1},
		used: mapset.New[int](),
	}
	cx, cy := dims.Center()
	s.cx, s.cy = cx, cy
	s.maxDist = float64(min(width, height)) * 0.25

	for len(s.res.Used) < s.res.Target {
		if s.res.Attempts >= budget {
			return nil, fmt.Errorf("Sample: placed %d of %d after %d draws: %w",
				len(s.res.Used), s.res.Target, s.res.Attempts, ErrCannotPlace)
		}
		s.res.Attempts++

		idx := r.Intn(dims.Cells())
		if s.used.Has(idx) || grid.IsBorderIndex(idx, width, height) || s.crowded(idx) {
			continue
		}
		if len(s.res.Used) == 0 && r.Intn(2) == 1 {
			s.accept(idx, KindStore)
			continue
		}
		if kind, ok := s.classify(idx); ok {
			s.accept(idx, kind)
		}
	}

	return s.res, nil
}

// Counts returns how many landmarks of each kind were accepted.
func (r *Result) Counts() map[Kind]int {
	out := make(map[Kind]int, 5)
	for _, l := range r.Used {
		out[l.Kind]++
	}

	return out
}

type sampler struct {
	res     *Result
	used    mapset.Set[int]
	cx, cy  float64
	maxDist float64
}

// crowded reports whether an accepted index lies within two rows and two
// columns of idx.
func (s *sampler) crowded(idx int) bool {
	w := s.res.Dims.Width
	x, y := grid.IndexToCoords(idx, w)
	for _, l := range s.res.Used {
		if abs(l.Point.X-x) <= 2 && abs(l.Point.Y-y) <= 2 {
			return true
		}
	}

	return false
}

// classify applies the stair, fountain and room rules. ok=false means the
// candidate was rejected and the slot stays open.
func (s *sampler) classify(idx int) (Kind, bool) {
	x, y := grid.IndexToCoords(idx, s.res.Dims.Width)
	near := math.Hypot(float64(x)-s.cx, float64(y)-s.cy) < s.maxDist

	switch {
	case len(s.res.Stairs) < 2:
		if !near {
			return 0, false
		}
		if len(s.res.Stairs) == 0 {
			return KindStairUp, true
		}
		return KindStairDown, true
	case len(s.res.Fountain) < 1:
		return KindFountain, near
	default:
		return KindRoom, true
	}
}

func (s *sampler) accept(idx int, kind Kind) {
	x, y := grid.IndexToCoords(idx, s.res.Dims.Width)
	s.used.Put(idx)
	s.res.Used = append(s.res.Used, Landmark{Index: idx, Point: grid.Point{X: x, Y: y}, Kind: kind})

	switch kind {
	case KindStore:
		s.res.Store = append(s.res.Store, idx)
	case KindStairUp, KindStairDown:
		s.res.Stairs = append(s.res.Stairs, idx)
	case KindFountain:
		s.res.Fountain = append(s.res.Fountain, idx)
	default:
		s.res.Rooms = append(s.res.Rooms, idx)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
