// SPDX-License-Identifier: MIT

package grid

import "math"

// NewDims validates width and height and returns the grid size.
// Returns ErrBadDimensions if either is not positive.
func NewDims(width, height int) (Dims, error) {
	if width <= 0 || height <= 0 {
		return Dims{}, ErrBadDimensions
	}

	return Dims{Width: width, Height: height}, nil
}

// Cells returns the number of cells in the grid.
func (d Dims) Cells() int { return d.Width * d.Height }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (d Dims) InBounds(x, y int) bool {
	return x >= 0 && x < d.Width && y >= 0 && y < d.Height
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (d Dims) Index(x, y int) int {
	return CoordsToIndex(x, y, d.Width)
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (d Dims) Coordinate(idx int) (x, y int) {
	return IndexToCoords(idx, d.Width)
}

// IsBorder reports whether (x,y) is a perimeter cell.
func (d Dims) IsBorder(x, y int) bool {
	return x == 0 || y == 0 || x == d.Width-1 || y == d.Height-1
}

// Center returns the geometric center of the grid as reals.
func (d Dims) Center() (cx, cy float64) {
	return float64(d.Width) / 2, float64(d.Height) / 2
}

// IndexToCoords converts a row-major index to (x,y) for a grid of the given width.
func IndexToCoords(index, width int) (x, y int) {
	return index % width, index / width
}

// CoordsToIndex converts (x,y) to a row-major index for a grid of the given width.
func CoordsToIndex(x, y, width int) int {
	return y*width + x
}

// IsBorderIndex reports whether index is a perimeter cell of a width×height grid.
func IsBorderIndex(index, width, height int) bool {
	return index < width || // top row
		index >= width*(height-1) || // bottom row
		index%width == 0 || // left column
		index%width == width-1 // right column
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)

	return math.Sqrt(dx*dx + dy*dy)
}

// Step returns p moved one cell along c.
func (p Point) Step(c Cardinal) Point {
	dx, dy := c.Offset()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Adjacent reports whether a and b are 4-neighbors.
func Adjacent(a, b Point) bool {
	dx, dy := b.X-a.X, b.Y-a.Y
	return (dx == 0 && (dy == 1 || dy == -1)) || (dy == 0 && (dx == 1 || dx == -1))
}
