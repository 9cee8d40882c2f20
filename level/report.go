// SPDX-License-Identifier: MIT

package level

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/cryptgraph/core"
	"github.com/katalvlaran/cryptgraph/corridor"
)

// Report records what each stage did.
type Report struct {
	// Landmark node ids by category, as placed.
	Store    []core.NodeID
	Stairs   []core.NodeID // [up, down]
	Fountain []core.NodeID
	Rooms    []core.NodeID

	// PlacementAttempts is the number of candidate indices drawn.
	PlacementAttempts int

	// ChainEdges is the number of edges BuildChains added.
	ChainEdges int

	Repair        corridor.RepairReport
	Intersections corridor.ResolveReport
	Merge         corridor.MergeReport
	Sweep         corridor.ResolveReport

	// Components is the final component count.
	Components int

	placed      []core.NodeID
	unreachable []core.NodeID
}

// Landmarks returns every placed landmark id in acceptance order, including
// any pruned later.
func (r *Report) Landmarks() []core.NodeID { return r.placed }

// Unreachable returns, in acceptance order, every placed landmark that is
// not in the largest final component. Landmarks pruned during merge are
// included. An empty result means every landmark is mutually reachable.
func (r *Report) Unreachable() []core.NodeID { return r.unreachable }

// Connected reports whether every landmark ended in one component.
func (r *Report) Connected() bool { return len(r.unreachable) == 0 }

// finish records the final component count and unreachable landmarks.
func (r *Report) finish(g *core.Graph) {
	comps := g.ConnectedComponents()
	r.Components = len(comps)

	var main []*core.Node
	for _, c := range comps {
		if len(c) > len(main) {
			main = c
		}
	}
	in := mapset.New[core.NodeID]()
	for _, n := range main {
		in.Put(n.ID)
	}

	r.unreachable = nil
	for _, id := range r.placed {
		if !in.Has(id) {
			r.unreachable = append(r.unreachable, id)
		}
	}
}
