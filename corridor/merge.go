// SPDX-License-Identifier: MIT

package corridor

import (
	"fmt"

	"github.com/katalvlaran/cryptgraph/core"
	"github.com/katalvlaran/cryptgraph/grid"
)

// MergeReport summarises a Merge run.
type MergeReport struct {
	// Pruned lists the isolated nodes deleted before merging.
	Pruned []core.NodeID

	// Passes is the number of merge attempts made.
	Passes int

	// Junctions lists the nodes a bridge was spliced into, in splice order.
	Junctions []core.NodeID

	// Unresolved counts the passes where neither side found a foreign corridor.
	Unresolved int

	// Components is the component count when Merge returned.
	Components int
}

// Merge deletes single-node components and then bridges the rest.
//
// While more than one component remains and the pass cap is not reached,
// the closest node pair (a, b) between the first two components is found.
// From a and from b independently, Merge marches in all four headings for a
// tile covered by an edge whose endpoints are not reachable from the
// marching node, stepping over the node's own corridors. When both sides hit,
// a is spliced only if its hit is strictly closer; otherwise b is.
//
// Components left over at the cap are reported, not returned as an error.
func Merge(g *core.Graph, opts ...Option) (MergeReport, error) {
	cfg := newConfig(opts...)

	var rep MergeReport
	for _, comp := range g.ConnectedComponents() {
		if len(comp) == 1 {
			rep.Pruned = append(rep.Pruned, comp[0].ID)
			g.DeleteNode(comp[0].ID)
		}
	}

	comps := g.ConnectedComponents()
	for len(comps) > 1 && rep.Passes < cfg.maxPasses {
		rep.Passes++
		a, b := closestPair(comps[0], comps[1])
		ha, okA := closest(g, a, foreign(g, a))
		hb, okB := closest(g, b, foreign(g, b))

		var (
			origin *core.Node
			h      hit
		)
		switch {
		case okA && (!okB || ha.dist < hb.dist):
			origin, h = a, ha
		case okB:
			origin, h = b, hb
		default:
			rep.Unresolved++
			cfg.logger.Debug("merge pass unresolved",
				"pass", rep.Passes,
				"a", a.ID.String(),
				"b", b.ID.String())
		}
		if origin != nil {
			j, err := splice(g, origin, h)
			if err != nil {
				return rep, fmt.Errorf("Merge: %s: %w", origin.ID, err)
			}
			rep.Junctions = append(rep.Junctions, j.ID)
			cfg.logger.Debug("merge pass",
				"pass", rep.Passes,
				"origin", origin.ID.String(),
				"heading", h.heading.String(),
				"junction", j.ID.String())
		}

		comps = g.ConnectedComponents()
	}
	rep.Components = len(comps)

	return rep, nil
}

// foreign accepts edges in a component other than origin's.
func foreign(g *core.Graph, origin *core.Node) func(grid.Cardinal, *core.Edge) bool {
	return func(_ grid.Cardinal, e *core.Edge) bool {
		return !g.IsReachable(origin.ID, e.Source) && !g.IsReachable(origin.ID, e.Target)
	}
}

// closestPair returns the Euclidean-closest (a, b) with a in as and b in bs.
// The first pair found at the minimal distance wins.
func closestPair(as, bs []*core.Node) (*core.Node, *core.Node) {
	a, b := as[0], bs[0]
	best := grid.Distance(a.Position(), b.Position())
	for _, x := range as {
		for _, y := range bs {
			if d := grid.Distance(x.Position(), y.Position()); d < best {
				a, b, best = x, y, d
			}
		}
	}

	return a, b
}
