// SPDX-License-Identifier: MIT

package grid

import "errors"

// ErrBadDimensions indicates a grid with a non-positive width or height.
var ErrBadDimensions = errors.New("grid: width and height must be positive")

// Point is an integer grid cell.
type Point struct {
	X, Y int
}

// Run classifies the shape of a rasterized path.
type Run int

const (
	// RunNone marks a path of fewer than two cells.
	RunNone Run = iota
	// RunHorizontal marks a path whose cells all share Y.
	RunHorizontal
	// RunVertical marks a path whose cells all share X.
	RunVertical
	// RunMixed marks any other path.
	RunMixed
)

// String returns a lower-case label for r.
func (r Run) String() string {
	switch r {
	case RunHorizontal:
		return "horizontal"
	case RunVertical:
		return "vertical"
	case RunMixed:
		return "mixed"
	default:
		return "none"
	}
}

// Cardinal is one of the four marching headings.
type Cardinal int

const (
	// Up decreases Y.
	Up Cardinal = iota
	// Down increases Y.
	Down
	// Left decreases X.
	Left
	// Right increases X.
	Right
)

// Cardinals lists the headings in tie-break order.
var Cardinals = [4]Cardinal{Up, Down, Left, Right}

// cardinalOffsets is indexed by Cardinal.
var cardinalOffsets = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Offset returns the unit step (dx,dy) for c.
func (c Cardinal) Offset() (dx, dy int) {
	o := cardinalOffsets[c]
	return o[0], o[1]
}

// Opposite returns the heading pointing back along c.
func (c Cardinal) Opposite() Cardinal {
	switch c {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Vertical reports whether c moves along the Y axis.
func (c Cardinal) Vertical() bool { return c == Up || c == Down }

// String returns a lower-case label for c.
func (c Cardinal) String() string {
	switch c {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "right"
	}
}

// Dims is a validated grid size. It is immutable once built.
type Dims struct {
	Width, Height int
}
