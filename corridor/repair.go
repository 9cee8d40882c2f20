// SPDX-License-Identifier: MIT

package corridor

import (
	"fmt"

	"github.com/katalvlaran/cryptgraph/core"
	"github.com/katalvlaran/cryptgraph/grid"
)

// RepairReport summarises a Repair run.
type RepairReport struct {
	// Passes is the number of passes that found at least one edgeless node.
	Passes int

	// Junctions lists the nodes edgeless nodes were linked to, in splice order.
	Junctions []core.NodeID

	// Lost lists the nodes still edgeless when Repair returned.
	Lost []core.NodeID
}

// Repair connects edgeless nodes to the nearest perpendicular corridor.
//
// Each pass collects the nodes with an empty adjacency set and, for every one
// of them, marches in all four headings. Vertical headings only stop on
// Horizontal edges and horizontal headings only on Vertical edges, so a
// corridor is always entered across its run. The closest hit is spliced.
//
// The loop ends when no edgeless node remains, when a pass changes nothing,
// or after the configured number of passes. Nodes that could not be reached
// are reported in Lost; that is not an error.
func Repair(g *core.Graph, opts ...Option) (RepairReport, error) {
	cfg := newConfig(opts...)

	var rep RepairReport
	for rep.Passes < cfg.maxPasses {
		pending := g.Unconnected()
		if len(pending) == 0 {
			break
		}
		rep.Passes++

		lost := 0
		for _, n := range pending {
			if g.Degree(n.ID) > 0 {
				continue
			}
			h, ok := closest(g, n, perpendicular)
			if !ok {
				lost++
				continue
			}
			j, err := splice(g, n, h)
			if err != nil {
				return rep, fmt.Errorf("Repair: %s: %w", n.ID, err)
			}
			rep.Junctions = append(rep.Junctions, j.ID)
		}
		cfg.logger.Debug("repair pass",
			"pass", rep.Passes,
			"pending", len(pending),
			"lost", lost)

		if lost == len(pending) {
			break
		}
	}

	for _, n := range g.Unconnected() {
		rep.Lost = append(rep.Lost, n.ID)
	}

	return rep, nil
}

// perpendicular accepts edges running across heading c.
func perpendicular(c grid.Cardinal, e *core.Edge) bool {
	if c.Vertical() {
		return e.Direction == grid.RunHorizontal
	}
	return e.Direction == grid.RunVertical
}
