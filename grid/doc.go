// SPDX-License-Identifier: MIT

// Package grid holds the pure geometry shared by every generation stage:
// flat-index/coordinate conversion, border tests, cardinal marching offsets
// and a Bresenham line rasterizer that materializes corridor footprints.
//
// What:
//
//   - Dims wraps a validated width/height pair (row-major, index = y*Width + x).
//   - RasterizeLine returns every integer cell between two points, inclusive,
//     in traversal order.
//   - ClassifyRun tags a rasterized path as Horizontal, Vertical, Mixed or None.
//   - Cardinal enumerates the four marching headings in their fixed tie-break
//     order: Up, Down, Left, Right.
//
// Complexity:
//
//   - Index/Coordinate/IsBorder: O(1).
//   - RasterizeLine:             O(max(|dx|,|dy|)) time and memory.
//   - ClassifyRun:               O(len(path)).
//
// Errors:
//
//   - ErrBadDimensions: width or height is not positive.
package grid
