// SPDX-License-Identifier: MIT

package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cryptgraph/grid"
)

// TestNewDims_Errors verifies that NewDims rejects non-positive sizes.
func TestNewDims_Errors(t *testing.T) {
	cases := []struct {
		name string
		w, h int
		err  error
	}{
		{"ZeroWidth", 0, 5, grid.ErrBadDimensions},
		{"ZeroHeight", 5, 0, grid.ErrBadDimensions},
		{"Negative", -1, -1, grid.ErrBadDimensions},
		{"Valid", 3, 2, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.NewDims(tc.w, tc.h)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewDims(%d,%d) error = %v; want %v", tc.w, tc.h, err, tc.err)
			}
		})
	}
}

func TestIndexRoundTrip(t *testing.T) {
	d, err := grid.NewDims(7, 4)
	require.NoError(t, err)

	for idx := 0; idx < d.Cells(); idx++ {
		x, y := d.Coordinate(idx)
		require.True(t, d.InBounds(x, y), "index %d", idx)
		require.Equal(t, idx, d.Index(x, y))
	}
	x, y := grid.IndexToCoords(15, 7)
	assert.Equal(t, 1, x)
	assert.Equal(t, 2, y)
}

// TestIsBorderIndex checks every cell of a 5×4 grid against the coordinate form.
func TestIsBorderIndex(t *testing.T) {
	const w, h = 5, 4
	d, _ := grid.NewDims(w, h)
	for idx := 0; idx < w*h; idx++ {
		x, y := d.Coordinate(idx)
		want := x == 0 || y == 0 || x == w-1 || y == h-1
		assert.Equal(t, want, grid.IsBorderIndex(idx, w, h), "index %d (%d,%d)", idx, x, y)
		assert.Equal(t, want, d.IsBorder(x, y), "(%d,%d)", x, y)
	}
}

func TestCardinals(t *testing.T) {
	want := []grid.Cardinal{grid.Up, grid.Down, grid.Left, grid.Right}
	assert.Equal(t, want, grid.Cardinals[:])

	for _, c := range grid.Cardinals {
		dx, dy := c.Offset()
		ox, oy := c.Opposite().Offset()
		assert.Equal(t, -dx, ox, c.String())
		assert.Equal(t, -dy, oy, c.String())
	}
	assert.True(t, grid.Up.Vertical())
	assert.False(t, grid.Left.Vertical())

	p := grid.Point{X: 3, Y: 3}
	assert.Equal(t, grid.Point{X: 3, Y: 2}, p.Step(grid.Up))
	assert.Equal(t, grid.Point{X: 4, Y: 3}, p.Step(grid.Right))
	assert.True(t, grid.Adjacent(p, p.Step(grid.Down)))
	assert.False(t, grid.Adjacent(p, grid.Point{X: 4, Y: 4}))
	assert.False(t, grid.Adjacent(p, p))
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, grid.Distance(grid.Point{}, grid.Point{X: 3, Y: 4}), 1e-12)
	assert.InDelta(t, 0.0, grid.Distance(grid.Point{X: 2, Y: 2}, grid.Point{X: 2, Y: 2}), 1e-12)
}
