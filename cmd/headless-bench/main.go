// Command headless-bench exercises the warm-path geometry workloads
// without a window: viewport culling plus vertex generation for every
// visible cell, and a burst of size-aware snaps. It reports per-topology
// timings against the frame budgets the renderer relies on.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"battlemat/internal/grid"
	"github.com/atotto/clipboard"
)

// Frame budgets for a full culling + vertex pass over the benchmark
// viewport. Square grids are pure integer iteration; hex and iso pay for
// the corner mapping and center filtering.
const (
	squareBudget = 100 * time.Millisecond
	otherBudget  = 200 * time.Millisecond
)

type benchResult struct {
	topology string
	cells    int
	cullTime time.Duration // VisibleCells, averaged over runs
	vertTime time.Duration // CellVertices over every visible cell
	snapTime time.Duration // size-aware snap burst
	budget   time.Duration
	pass     bool
}

// budgetFor returns the per-frame budget for a topology.
func budgetFor(tag grid.Type) time.Duration {
	switch tag {
	case grid.TypeHexagonal, grid.TypeIsometric:
		return otherBudget
	default:
		return squareBudget
	}
}

// runTopology measures one topology over a square viewport of the given
// pixel extent.
func runTopology(tag grid.Type, gridSize, viewport float64, runs, snapCount int) (benchResult, error) {
	g, err := grid.New(tag, gridSize)
	if err != nil {
		return benchResult{}, err
	}
	bounds := grid.Bounds{Width: viewport, Height: viewport}

	var cells []grid.Cell
	var cullTotal, vertTotal time.Duration
	for i := 0; i < runs; i++ {
		start := time.Now()
		cells = g.VisibleCells(bounds)
		cullTotal += time.Since(start)

		start = time.Now()
		for _, c := range cells {
			g.CellVertices(c)
		}
		vertTotal += time.Since(start)
	}

	start := time.Now()
	for i := 0; i < snapCount; i++ {
		x := float64(i%977) * 3.1
		y := float64(i%769) * 2.7
		g.SnapPointSized(x, y, 2*gridSize, 2*gridSize)
	}
	snapTime := time.Since(start)

	res := benchResult{
		topology: tag.String(),
		cells:    len(cells),
		cullTime: cullTotal / time.Duration(runs),
		vertTime: vertTotal / time.Duration(runs),
		snapTime: snapTime,
		budget:   budgetFor(tag),
	}
	res.pass = res.cullTime+res.vertTime <= res.budget
	return res, nil
}

// formatReport renders results as an aligned text table.
func formatReport(viewport, gridSize float64, runs int, results []benchResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "battlemat geometry bench: %gx%g px viewport, grid size %g, %d runs\n",
		viewport, viewport, gridSize, runs)
	fmt.Fprintf(&b, "%-12s %8s %12s %12s %12s %10s %s\n",
		"topology", "cells", "cull", "vertices", "snap burst", "budget", "result")
	for _, r := range results {
		verdict := "ok"
		if !r.pass {
			verdict = "OVER BUDGET"
		}
		fmt.Fprintf(&b, "%-12s %8d %12s %12s %12s %10s %s\n",
			r.topology, r.cells, r.cullTime, r.vertTime, r.snapTime, r.budget, verdict)
	}
	return b.String()
}

func main() {
	var viewport float64
	var gridSize float64
	var runs int
	var snaps int
	var toClipboard bool

	flag.Float64Var(&viewport, "viewport", 5000, "viewport extent in pixels (square)")
	flag.Float64Var(&gridSize, "grid-size", grid.DefaultSize, "grid cell size in pixels")
	flag.IntVar(&runs, "runs", 5, "culling passes to average")
	flag.IntVar(&snaps, "snaps", 100000, "snap calls in the snap burst")
	flag.BoolVar(&toClipboard, "clip", false, "copy the report to the clipboard")
	flag.Parse()

	if viewport <= 0 || gridSize <= 0 || runs <= 0 {
		fmt.Println("error: -viewport, -grid-size and -runs must be > 0")
		os.Exit(2)
	}

	tags := []grid.Type{grid.TypeLines, grid.TypeHexagonal, grid.TypeIsometric}
	results := make([]benchResult, 0, len(tags))
	failed := false
	for _, tag := range tags {
		res, err := runTopology(tag, gridSize, viewport, runs, snaps)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(2)
		}
		if !res.pass {
			failed = true
		}
		results = append(results, res)
	}

	report := formatReport(viewport, gridSize, runs, results)
	fmt.Print(report)

	if toClipboard {
		if err := clipboard.WriteAll(report); err != nil {
			fmt.Printf("clipboard copy failed: %v\n", err)
		} else {
			fmt.Println("report copied to clipboard")
		}
	}

	if failed {
		os.Exit(1)
	}
}
