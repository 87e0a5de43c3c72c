package main

import (
	"strings"
	"testing"
	"time"

	"battlemat/internal/grid"
)

func TestBudgetFor(t *testing.T) {
	if got := budgetFor(grid.TypeLines); got != 100*time.Millisecond {
		t.Fatalf("square budget = %v, want 100ms", got)
	}
	if got := budgetFor(grid.TypeHexagonal); got != 200*time.Millisecond {
		t.Fatalf("hex budget = %v, want 200ms", got)
	}
	if got := budgetFor(grid.TypeIsometric); got != 200*time.Millisecond {
		t.Fatalf("iso budget = %v, want 200ms", got)
	}
}

func TestRunTopology_CellCounts(t *testing.T) {
	// A 500x500 viewport at grid size 50 holds a 10x10 block of squares
	// plus the padding ring.
	res, err := runTopology(grid.TypeLines, 50, 500, 1, 10)
	if err != nil {
		t.Fatalf("runTopology: %v", err)
	}
	if res.cells < 100 {
		t.Fatalf("expected at least 100 visible square cells, got %d", res.cells)
	}
	if res.topology != "LINES" {
		t.Fatalf("topology label = %q, want LINES", res.topology)
	}

	hexRes, err := runTopology(grid.TypeHexagonal, 50, 500, 1, 10)
	if err != nil {
		t.Fatalf("runTopology hex: %v", err)
	}
	if hexRes.cells == 0 {
		t.Fatal("hex culling returned no cells")
	}
}

func TestRunTopology_RejectsBadConfig(t *testing.T) {
	if _, err := runTopology(grid.Type(99), 50, 500, 1, 10); err == nil {
		t.Fatal("expected error for unknown grid type")
	}
	if _, err := runTopology(grid.TypeLines, -1, 500, 1, 10); err == nil {
		t.Fatal("expected error for negative grid size")
	}
}

func TestFormatReport(t *testing.T) {
	results := []benchResult{
		{topology: "LINES", cells: 10816, cullTime: time.Millisecond, vertTime: 2 * time.Millisecond,
			snapTime: 3 * time.Millisecond, budget: 100 * time.Millisecond, pass: true},
		{topology: "HEXAGONAL", cells: 9021, cullTime: 300 * time.Millisecond, vertTime: time.Millisecond,
			snapTime: time.Millisecond, budget: 200 * time.Millisecond, pass: false},
	}
	report := formatReport(5000, 50, 5, results)

	if !strings.Contains(report, "LINES") || !strings.Contains(report, "HEXAGONAL") {
		t.Fatalf("report missing topology rows:\n%s", report)
	}
	if !strings.Contains(report, "ok") {
		t.Fatalf("report missing pass verdict:\n%s", report)
	}
	if !strings.Contains(report, "OVER BUDGET") {
		t.Fatalf("report missing failure verdict:\n%s", report)
	}
}
