// SPDX-License-Identifier: MIT

package level

import (
	"fmt"

	"github.com/katalvlaran/cryptgraph/core"
	"github.com/katalvlaran/cryptgraph/corridor"
	"github.com/katalvlaran/cryptgraph/placement"
)

// Generate builds a level on a columns×rows grid.
//
// Steps:
//  1. placement: sample landmarks and add one node each.
//  2. chains: link nodes sharing a column, then a row.
//  3. repair: splice edgeless nodes into perpendicular corridors.
//  4. intersections: replace crossing corridors with junctions.
//  5. merge: prune isolated nodes, bridge remaining components.
//  6. sweep: resolve crossings the merge bridges introduced.
//
// After each step the WithOnStage hook, if any, receives a clone of the
// graph, so a hook can inspect or mutate it without affecting generation.
//
// Returns:
//   - grid.ErrBadDimensions for a non-positive grid.
//   - placement.ErrCannotPlace / placement.ErrBadCountRange from placement.
//   - ErrStageAborted (plus the hook's error) when a hook fails.
//
// Unresolved connectivity is reported in Level.Report, not as an error.
func Generate(columns, rows int, opts ...Option) (*Level, error) {
	cfg := newConfig(opts...)
	g, err := core.NewGraph(columns, rows)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	p := &pipeline{cfg: cfg, graph: g, report: &Report{}}
	stages := []struct {
		stage Stage
		run   func() error
	}{
		{StagePlacement, func() error { return p.place(columns, rows) }},
		{StageChains, p.chain},
		{StageRepair, p.repair},
		{StageIntersections, func() error { return p.resolve(&p.report.Intersections) }},
		{StageMerge, p.merge},
		{StageSweep, func() error { return p.resolve(&p.report.Sweep) }},
	}
	for _, s := range stages {
		if err = s.run(); err != nil {
			return nil, fmt.Errorf("Generate: %s: %w", s.stage, err)
		}
		cfg.logger.Debug("stage done",
			"stage", s.stage.String(),
			"nodes", g.NodeCount(),
			"edges", g.EdgeCount())
		if cfg.onStage != nil {
			if err = cfg.onStage(s.stage, g.Clone()); err != nil {
				return nil, fmt.Errorf("Generate: %s: %w: %w", s.stage, ErrStageAborted, err)
			}
		}
	}

	p.report.finish(g)
	cfg.logger.Info("level generated",
		"columns", columns,
		"rows", rows,
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"components", p.report.Components,
		"lost", len(p.report.Repair.Lost),
		"unreachable", len(p.report.Unreachable()))

	return &Level{graph: g, report: p.report}, nil
}

// pipeline carries the state shared by the stage functions of one Generate call.
type pipeline struct {
	cfg    config
	graph  *core.Graph
	report *Report
	order  []core.NodeID
}

func (p *pipeline) place(columns, rows int) error {
	opts := []placement.Option{
		placement.WithRand(p.cfg.rng),
		placement.WithCountRange(p.cfg.minLandmarks, p.cfg.maxLandmarks),
	}
	if p.cfg.placementAttempts > 0 {
		opts = append(opts, placement.WithMaxAttempts(p.cfg.placementAttempts))
	}
	res, err := placement.Sample(columns, rows, opts...)
	if err != nil {
		return err
	}
	ids, err := placement.Populate(p.graph, res)
	if err != nil {
		return err
	}

	p.order = ids
	p.report.placed = ids
	p.report.PlacementAttempts = res.Attempts
	for i, l := range res.Used {
		switch l.Kind {
		case placement.KindStore:
			p.report.Store = append(p.report.Store, ids[i])
		case placement.KindStairUp, placement.KindStairDown:
			p.report.Stairs = append(p.report.Stairs, ids[i])
		case placement.KindFountain:
			p.report.Fountain = append(p.report.Fountain, ids[i])
		default:
			p.report.Rooms = append(p.report.Rooms, ids[i])
		}
	}

	return nil
}

func (p *pipeline) chain() error {
	n, err := corridor.BuildChains(p.graph, p.order)
	p.report.ChainEdges = n
	return err
}

func (p *pipeline) repair() error {
	rep, err := corridor.Repair(p.graph,
		corridor.WithMaxPasses(p.cfg.repairPasses),
		corridor.WithLogger(p.cfg.logger))
	p.report.Repair = rep
	return err
}

func (p *pipeline) resolve(dst *corridor.ResolveReport) error {
	rep, err := corridor.ResolveIntersections(p.graph, corridor.WithLogger(p.cfg.logger))
	*dst = rep
	return err
}

func (p *pipeline) merge() error {
	rep, err := corridor.Merge(p.graph,
		corridor.WithMaxPasses(p.cfg.mergePasses),
		corridor.WithLogger(p.cfg.logger))
	p.report.Merge = rep
	return err
}
