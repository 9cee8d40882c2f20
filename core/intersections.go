// SPDX-License-Identifier: MIT

package core

import "github.com/katalvlaran/cryptgraph/grid"

// Intersection records two edges crossing on a tile that hosts no node.
type Intersection struct {
	A, B *Edge
	Tile grid.Point
}

// EdgeIntersections reports, for every unordered edge pair sharing a footprint
// tile that does not host a node, one Intersection at the first such tile
// along A's footprint. Pairs are enumerated by ascending (A.ID, B.ID).
//
// Tiles hosting a node are legitimate junctions (shared endpoints, splices)
// and never count as crossings.
//
// Complexity: O(E²·L) where L is the longest footprint.
func (g *Graph) EdgeIntersections() []Intersection {
	edges := g.Edges()

	var out []Intersection
	for i := 0; i < len(edges); i++ {
		a := edges[i]
		for j := i + 1; j < len(edges); j++ {
			b := edges[j]
			if !a.IntersectsWith(b) {
				continue
			}
			for _, p := range a.Tiles {
				if b.cover.Has(p) && !g.HasNodeAt(p) {
					out = append(out, Intersection{A: a, B: b, Tile: p})
					break
				}
			}
		}
	}

	return out
}
