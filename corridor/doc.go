// SPDX-License-Identifier: MIT

// Package corridor turns a set of placed landmark nodes into a connected
// corridor network on a core.Graph.
//
// The stages run in this order:
//
//   - BuildChains links nodes sharing a column, then nodes sharing a row,
//     each chain ordered along its varying coordinate.
//   - Repair marches from every edgeless node in the four cardinal
//     directions looking for a perpendicular corridor, then splices a
//     T-junction into the closest one.
//   - ResolveIntersections replaces every pair of corridors crossing on a
//     free tile with a CrossHallway junction joined to all four endpoints.
//   - Merge prunes isolated nodes, then bridges the first two remaining
//     components by marching from their closest node pair toward a corridor
//     of another component.
//
// Every loop is bounded. Residual problems (lost nodes, unmerged
// components) are returned in report structs, never as errors; an error
// from this package means a core invariant was violated.
//
// Marching tie-breaks are fixed: headings are tried Up, Down, Left, Right
// and the first strictly closer hit wins; among edges covering the same
// tile the lowest EdgeID wins.
package corridor
