package editor

import (
	"testing"

	"battlemat/internal/config"
	"battlemat/internal/grid"
	"battlemat/internal/logger"
)

func newEditorT(t *testing.T) *Editor {
	t.Helper()
	if err := logger.Init(logger.Options{}); err != nil {
		t.Fatalf("logger init: %v", err)
	}
	e, err := New(config.Default())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestNew_SeedsTokensOnCellSpans(t *testing.T) {
	e := newEditorT(t)
	if len(e.tokens) != 3 {
		t.Fatalf("expected 3 starter tokens, got %d", len(e.tokens))
	}
	for _, tok := range e.tokens {
		if tok.Width < e.gridSize || tok.Height < e.gridSize {
			t.Errorf("token %s footprint %gx%g smaller than one cell", tok.Label, tok.Width, tok.Height)
		}
	}
}

func TestSetGridType_SwapsGeometry(t *testing.T) {
	e := newEditorT(t)
	if n := len(e.geom.CellVertices(grid.Cell{})); n != 4 {
		t.Fatalf("default geometry should be square (4 vertices), got %d", n)
	}
	e.setGridType(grid.TypeHexagonal)
	if e.gridType != grid.TypeHexagonal {
		t.Fatalf("grid type = %v, want TypeHexagonal", e.gridType)
	}
	if n := len(e.geom.CellVertices(grid.Cell{})); n != 6 {
		t.Fatalf("hexagonal geometry should have 6 vertices, got %d", n)
	}
	// Switching to the same type is a no-op.
	before := e.geom
	e.setGridType(grid.TypeHexagonal)
	if e.geom != before {
		t.Fatal("re-selecting the active type should keep the same instance")
	}
}

func TestDragCommit_MatchesPreview(t *testing.T) {
	e := newEditorT(t)
	tok := e.tokens[0]
	tok.X, tok.Y = 127, 83
	e.drag = dragState{token: tok, active: true}

	preview, ok := e.dragPreview()
	if !ok {
		t.Fatal("expected a live drag preview")
	}
	e.commitDrag()

	if tok.X != preview.X || tok.Y != preview.Y {
		t.Fatalf("commit (%g,%g) disagrees with preview (%g,%g)", tok.X, tok.Y, preview.X, preview.Y)
	}
	// 1x1 token at default size snaps onto a cell centre.
	if tok.X != 150 || tok.Y != 100 {
		t.Fatalf("1x1 token at (127,83) should snap to (150,100), got (%g,%g)", tok.X, tok.Y)
	}
	if e.drag.active {
		t.Fatal("drag should end after commit")
	}
}

func TestCommitDrag_IsIdempotent(t *testing.T) {
	e := newEditorT(t)
	tok := e.tokens[2] // 3x3
	tok.X, tok.Y = 180, 120
	e.drag = dragState{token: tok, active: true}
	e.commitDrag()
	x1, y1 := tok.X, tok.Y

	e.drag = dragState{token: tok, active: true}
	e.commitDrag()
	if tok.X != x1 || tok.Y != y1 {
		t.Fatalf("second snap moved the token: (%g,%g) -> (%g,%g)", x1, y1, tok.X, tok.Y)
	}
}

func TestTokenContains(t *testing.T) {
	tok := &Token{X: 100, Y: 100, Width: 50, Height: 50}
	if !tok.Contains(100, 100) || !tok.Contains(149.9, 149.9) {
		t.Fatal("interior points should be inside")
	}
	if tok.Contains(150, 150) || tok.Contains(99.9, 120) {
		t.Fatal("exterior points should be outside")
	}
}
