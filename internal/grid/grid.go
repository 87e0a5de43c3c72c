// Package grid is the tactical-grid geometry engine: it converts between
// pixel coordinates and abstract cell coordinates, computes snapped drop
// positions for dragged objects, produces cell outlines for rendering, and
// culls cells against a scrollable viewport. Square, hexagonal (axial) and
// isometric (diamond) topologies share one contract so the renderer and
// drag-interaction layers work identically regardless of the active grid.
package grid

import "fmt"

// DefaultSize is the application-wide default cell size in pixels.
const DefaultSize = 50

// Point is a location in continuous pixel space.
type Point struct {
	X, Y float64
}

// Bounds is a non-rotated viewport rectangle in pixel space.
type Bounds struct {
	X, Y          float64
	Width, Height float64
}

// Cell is an abstract, topology-relative cell address. Q is the column and
// R the row for square and isometric grids; for hexagonal grids (Q, R) are
// axial coordinates with the implicit third cube axis s = -Q-R.
type Cell struct {
	Q, R int
}

// Type identifies the configured grid style. Lines, dots and hidden grids
// share square geometry; they differ only in how the renderer draws them.
type Type uint8

const (
	TypeLines Type = iota
	TypeDots
	TypeHidden
	TypeHexagonal
	TypeIsometric
)

// String returns the configuration tag for the type.
func (t Type) String() string {
	switch t {
	case TypeLines:
		return "LINES"
	case TypeDots:
		return "DOTS"
	case TypeHidden:
		return "HIDDEN"
	case TypeHexagonal:
		return "HEXAGONAL"
	case TypeIsometric:
		return "ISOMETRIC"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// ParseType maps a configuration tag to a Type.
func ParseType(s string) (Type, error) {
	switch s {
	case "LINES":
		return TypeLines, nil
	case "DOTS":
		return TypeDots, nil
	case "HIDDEN":
		return TypeHidden, nil
	case "HEXAGONAL":
		return TypeHexagonal, nil
	case "ISOMETRIC":
		return TypeIsometric, nil
	default:
		return 0, fmt.Errorf("grid: unknown grid type %q", s)
	}
}

// Geometry is the capability contract every topology implements.
// Implementations are stateless beyond constants derived from the cell
// size at construction; every method is a pure function of its arguments,
// and identical calls return identical results.
type Geometry interface {
	// PixelToGrid maps a pixel location to the cell containing it.
	// Called on every pointer-move event during a drag; implementations
	// keep it allocation-free.
	PixelToGrid(x, y float64) Cell

	// GridToPixel returns the pixel location of the cell's center.
	GridToPixel(c Cell) Point

	// SnapPoint snaps a raw top-left position using the topology's
	// simplest rounding, ignoring object size.
	SnapPoint(x, y float64) Point

	// SnapPointSized snaps an object given its top-left position and
	// pixel footprint, working from the object's center. A zero or
	// negative width/height is treated as a 1x1-cell footprint.
	SnapPointSized(x, y, width, height float64) Point

	// CellVertices returns the ordered boundary vertices of one cell:
	// 4 for square and isometric grids, 6 for hexagonal.
	CellVertices(c Cell) []Point

	// VisibleCells returns every cell intersecting the viewport,
	// including partially visible boundary cells. Extra cells just
	// outside the viewport are acceptable; missing cells are not.
	// Zero-area bounds yield no cells.
	VisibleCells(b Bounds) []Cell
}

// New builds the geometry for a grid type. Size is the cell size in
// pixels and must be positive; an unknown type or non-positive size is a
// configuration error.
func New(t Type, size float64) (Geometry, error) {
	if size <= 0 {
		return nil, fmt.Errorf("grid: size must be positive, got %g", size)
	}
	switch t {
	case TypeLines, TypeDots, TypeHidden:
		return newSquare(size), nil
	case TypeHexagonal:
		return newHex(size), nil
	case TypeIsometric:
		return newIso(size), nil
	default:
		return nil, fmt.Errorf("grid: unknown grid type %d", uint8(t))
	}
}
