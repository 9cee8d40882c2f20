// SPDX-License-Identifier: MIT

package corridor

import (
	"fmt"

	"github.com/katalvlaran/cryptgraph/core"
)

// ResolveReport summarises a ResolveIntersections run.
type ResolveReport struct {
	// Junctions lists the CrossHallway nodes created, in creation order.
	Junctions []core.NodeID

	// Remaining is the number of crossings left when the run stopped.
	Remaining int
}

// ResolveIntersections replaces crossing corridors with CrossHallway junctions.
//
// Crossings are recomputed after every replacement, so an edge crossing
// several others is never resolved from a stale record. For the first
// crossing (A, B, tile) a CrossHallway is added on tile, A and B are deleted
// and the junction is linked to each distinct endpoint of A and B.
//
// Every replacement occupies a free tile, so the loop is capped by the grid
// cell count and always ends with Remaining == 0 unless the graph is corrupt.
func ResolveIntersections(g *core.Graph, opts ...Option) (ResolveReport, error) {
	cfg := newConfig(opts...)

	var rep ResolveReport
	for limit := g.Dims().Cells(); len(rep.Junctions) < limit; {
		xs := g.EdgeIntersections()
		if len(xs) == 0 {
			break
		}
		x := xs[0]

		j, err := g.AddNode(core.NodeConfig{Type: core.CrossHallway, X: x.Tile.X, Y: x.Tile.Y})
		if err != nil {
			return rep, fmt.Errorf("ResolveIntersections: %s×%s: %w", x.A.ID, x.B.ID, err)
		}
		ends := [4]core.NodeID{x.A.Source, x.A.Target, x.B.Source, x.B.Target}
		g.DeleteEdge(x.A.ID)
		g.DeleteEdge(x.B.ID)
		for i, id := range ends {
			if g.Adjacent(j.ID, id) {
				continue
			}
			src, dst := id, j.ID
			if i%2 == 1 {
				src, dst = j.ID, id
			}
			if _, err = g.AddEdge(src, dst); err != nil {
				return rep, fmt.Errorf("ResolveIntersections: %s-%s: %w", src, dst, err)
			}
		}
		rep.Junctions = append(rep.Junctions, j.ID)
		cfg.logger.Debug("crossing resolved",
			"a", x.A.ID.String(),
			"b", x.B.ID.String(),
			"x", x.Tile.X,
			"y", x.Tile.Y,
			"junction", j.ID.String())
	}
	rep.Remaining = len(g.EdgeIntersections())

	return rep, nil
}
