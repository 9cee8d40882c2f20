// SPDX-License-Identifier: MIT

package level_test

import (
	"fmt"

	"github.com/katalvlaran/cryptgraph/level"
)

// ExampleGenerate builds the default-size level for seed 3 and reports a few
// facts that hold for every seed.
func ExampleGenerate() {
	lvl, err := level.Generate(level.DefaultColumns, level.DefaultRows, level.WithSeed(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	rep := lvl.Report()
	_, ok := lvl.Spawn()

	fmt.Println("grid:", lvl.Columns(), "x", lvl.Rows())
	fmt.Println("stairs:", len(rep.Stairs), "fountains:", len(rep.Fountain))
	fmt.Println("crossings left:", len(lvl.Graph().EdgeIntersections()))
	fmt.Println("spawn found:", ok)
	fmt.Println("invariants:", lvl.Graph().Validate() == nil)
	// Output:
	// grid: 35 x 25
	// stairs: 2 fountains: 1
	// crossings left: 0
	// spawn found: true
	// invariants: true
}
