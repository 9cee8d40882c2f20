// SPDX-License-Identifier: MIT

// File: traversal.go
// Role: depth-first component enumeration and reachability over the adjacency map.
//
// Determinism:
//   - Roots are taken in node insertion order; neighbors are expanded in
//     ascending id order, so component membership order is reproducible.
package core

import "github.com/zyedidia/generic/mapset"

// componentWalker carries state for one ConnectedComponents call.
type componentWalker struct {
	graph   *Graph
	visited mapset.Set[NodeID]
}

// ConnectedComponents partitions the nodes into maximal mutually reachable groups.
//
// Implementation:
//   - Stage 1: Iterate nodes in insertion order.
//   - Stage 2: For every unvisited node, run a depth-first walk collecting the
//     pre-order sequence as one component.
//
// Returns:
//   - [][]*Node: one slice per component, in discovery order. An empty graph
//     yields nil.
//
// Complexity:
//   - Time O(V + E·log d), Space O(V).
func (g *Graph) ConnectedComponents() [][]*Node {
	w := &componentWalker{graph: g, visited: mapset.New[NodeID]()}

	var comps [][]*Node
	for _, id := range g.order {
		if w.visited.Has(id) {
			continue
		}
		comps = append(comps, w.walk(id, nil))
	}

	return comps
}

// walk visits id and its unvisited descendants, appending each in pre-order.
func (w *componentWalker) walk(id NodeID, comp []*Node) []*Node {
	w.visited.Put(id)
	comp = append(comp, w.graph.nodes[id])
	for _, nid := range w.graph.Neighbors(id) {
		if !w.visited.Has(nid) {
			comp = w.walk(nid, comp)
		}
	}

	return comp
}

// IsReachable reports whether b can be reached from a along edges.
// A node is reachable from itself. Unknown ids report false.
//
// Implementation: explicit-stack depth-first search that stops as soon as b is popped.
//
// Complexity: O(V + E) worst case.
func (g *Graph) IsReachable(a, b NodeID) bool {
	if _, ok := g.adjacency[a]; !ok {
		return false
	}
	if _, ok := g.adjacency[b]; !ok {
		return false
	}

	visited := mapset.New[NodeID]()
	stack := []NodeID{a}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == b {
			return true
		}
		if visited.Has(cur) {
			continue
		}
		visited.Put(cur)
		g.adjacency[cur].Each(func(n NodeID) {
			if !visited.Has(n) {
				stack = append(stack, n)
			}
		})
	}

	return false
}

// ComponentOf returns the ids reachable from id (including id) as a set.
// Unknown id yields an empty set.
func (g *Graph) ComponentOf(id NodeID) mapset.Set[NodeID] {
	seen := mapset.New[NodeID]()
	if _, ok := g.adjacency[id]; !ok {
		return seen
	}
	stack := []NodeID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen.Has(cur) {
			continue
		}
		seen.Put(cur)
		g.adjacency[cur].Each(func(n NodeID) {
			if !seen.Has(n) {
				stack = append(stack, n)
			}
		})
	}

	return seen
}
