// SPDX-License-Identifier: MIT

package level

import "strconv"

// Stage names one step of the generation pipeline.
type Stage int

const (
	// StagePlacement samples landmarks and adds their nodes.
	StagePlacement Stage = iota
	// StageChains links nodes sharing a row or column.
	StageChains
	// StageRepair splices edgeless nodes into corridors.
	StageRepair
	// StageIntersections replaces crossings with junctions.
	StageIntersections
	// StageMerge prunes isolated nodes and bridges components.
	StageMerge
	// StageSweep resolves crossings introduced by merging.
	StageSweep
)

var stageNames = [...]string{
	StagePlacement:     "placement",
	StageChains:        "chains",
	StageRepair:        "repair",
	StageIntersections: "intersections",
	StageMerge:         "merge",
	StageSweep:         "sweep",
}

// String returns the stage name.
func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "Stage(" + strconv.Itoa(int(s)) + ")"
	}
	return stageNames[s]
}
