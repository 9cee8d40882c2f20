// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/cryptgraph/core"
)

// ExampleGraph shows two corridors crossing without a junction.
//
//	    C
//	    │
//	A───┼───B
//	    │
//	    D
func ExampleGraph() {
	g, _ := core.NewGraph(10, 10)
	a, _ := g.AddNode(core.NodeConfig{Type: core.Room, X: 1, Y: 4})
	b, _ := g.AddNode(core.NodeConfig{Type: core.Room, X: 7, Y: 4})
	c, _ := g.AddNode(core.NodeConfig{Type: core.StairUp, X: 4, Y: 1})
	d, _ := g.AddNode(core.NodeConfig{Type: core.Fountain, X: 4, Y: 8})
	h, _ := g.AddEdge(a.ID, b.ID)
	v, _ := g.AddEdge(c.ID, d.ID)

	fmt.Println(h.ID, h.Direction, len(h.Tiles))
	fmt.Println(v.ID, v.Direction, len(v.Tiles))
	fmt.Println("components:", len(g.ConnectedComponents()))
	for _, x := range g.EdgeIntersections() {
		fmt.Printf("%s × %s at (%d,%d)\n", x.A.ID, x.B.ID, x.Tile.X, x.Tile.Y)
	}
	// Output:
	// e1 horizontal 7
	// e2 vertical 8
	// components: 2
	// e1 × e2 at (4,4)
}
