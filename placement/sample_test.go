// SPDX-License-Identifier: MIT

package placement_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cryptgraph/grid"
	"github.com/katalvlaran/cryptgraph/placement"
)

func TestSample_Errors(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		opts []placement.Option
		want error
	}{
		{"zero width", 0, 10, []placement.Option{placement.WithSeed(1)}, grid.ErrBadDimensions},
		{"negative height", 10, -1, []placement.Option{placement.WithSeed(1)}, grid.ErrBadDimensions},
		{"min below one", 20, 20, []placement.Option{placement.WithSeed(1), placement.WithCountRange(0, 3)}, placement.ErrBadCountRange},
		{"max below min", 20, 20, []placement.Option{placement.WithSeed(1), placement.WithCountRange(5, 4)}, placement.ErrBadCountRange},
		{"no rng", 20, 20, nil, placement.ErrNeedRandSource},
		{"grid too small", 5, 5, []placement.Option{
			placement.WithSeed(1), placement.WithCountRange(5, 5), placement.WithMaxAttempts(500),
		}, placement.ErrCannotPlace},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := placement.Sample(tc.w, tc.h, tc.opts...)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, res)
		})
	}
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { placement.WithRand(nil) })
	assert.Panics(t, func() { placement.WithMaxAttempts(0) })
}

// TestSample_Properties checks every placement rule over many seeds on the
// default 35×25 grid.
func TestSample_Properties(t *testing.T) {
	const w, h = 35, 25
	maxDist := float64(min(w, h)) * 0.25
	cx, cy := float64(w)/2, float64(h)/2

	for seed := int64(1); seed <= 200; seed++ {
		res, err := placement.Sample(w, h, placement.WithSeed(seed))
		require.NoError(t, err, "seed %d", seed)

		require.GreaterOrEqual(t, res.Target, placement.DefaultMinCount-1)
		require.LessOrEqual(t, res.Target, placement.DefaultMaxCount-1)
		require.Len(t, res.Used, res.Target)
		require.Equal(t, res.Target, len(res.Store)+len(res.Stairs)+len(res.Fountain)+len(res.Rooms))
		require.GreaterOrEqual(t, res.Attempts, res.Target)

		require.Len(t, res.Stairs, 2, "seed %d", seed)
		require.Len(t, res.Fountain, 1, "seed %d", seed)
		require.LessOrEqual(t, len(res.Store), 1)
		if len(res.Store) == 1 {
			assert.Equal(t, placement.KindStore, res.Used[0].Kind)
		}

		seen := make(map[int]bool)
		for i, l := range res.Used {
			require.False(t, seen[l.Index], "duplicate index %d", l.Index)
			seen[l.Index] = true
			require.False(t, grid.IsBorderIndex(l.Index, w, h), "border index %d", l.Index)
			for _, o := range res.Used[:i] {
				crowd := absInt(o.Point.X-l.Point.X) <= 2 && absInt(o.Point.Y-l.Point.Y) <= 2
				require.False(t, crowd, "seed %d: %v crowds %v", seed, l.Point, o.Point)
			}
			switch l.Kind {
			case placement.KindStairUp, placement.KindStairDown, placement.KindFountain:
				d := math.Hypot(float64(l.Point.X)-cx, float64(l.Point.Y)-cy)
				require.Less(t, d, maxDist)
			}
		}

		counts := res.Counts()
		assert.Equal(t, 1, counts[placement.KindStairUp])
		assert.Equal(t, 1, counts[placement.KindStairDown])
	}
}

func TestSample_Deterministic(t *testing.T) {
	a, err := placement.Sample(35, 25, placement.WithSeed(42))
	require.NoError(t, err)
	b, err := placement.Sample(35, 25, placement.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestSample_StoreFrequency verifies the store coin flip fires on some seeds
// and not on others.
func TestSample_StoreFrequency(t *testing.T) {
	var with, without int
	for seed := int64(1); seed <= 64; seed++ {
		res, err := placement.Sample(35, 25, placement.WithSeed(seed))
		require.NoError(t, err)
		if len(res.Store) == 1 {
			with++
		} else {
			without++
		}
	}
	assert.Positive(t, with)
	assert.Positive(t, without)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "room", placement.KindRoom.String())
	assert.Equal(t, "store", placement.KindStore.String())
	assert.Equal(t, "stair-up", placement.KindStairUp.String())
	assert.Equal(t, "stair-down", placement.KindStairDown.String())
	assert.Equal(t, "fountain", placement.KindFountain.String())
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
