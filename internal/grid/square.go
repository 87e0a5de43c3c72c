package grid

import "math"

// squareGeometry is the classic axis-aligned grid. Cell (q, r) covers the
// pixel rectangle [q*size, (q+1)*size) x [r*size, (r+1)*size).
type squareGeometry struct {
	size float64
}

func newSquare(size float64) *squareGeometry {
	return &squareGeometry{size: size}
}

func (g *squareGeometry) PixelToGrid(x, y float64) Cell {
	return Cell{
		Q: int(math.Floor(x / g.size)),
		R: int(math.Floor(y / g.size)),
	}
}

func (g *squareGeometry) GridToPixel(c Cell) Point {
	return Point{
		X: (float64(c.Q) + 0.5) * g.size,
		Y: (float64(c.R) + 0.5) * g.size,
	}
}

func (g *squareGeometry) SnapPoint(x, y float64) Point {
	// Round each axis independently to the nearest grid line.
	return Point{
		X: math.Round(x/g.size) * g.size,
		Y: math.Round(y/g.size) * g.size,
	}
}

func (g *squareGeometry) SnapPointSized(x, y, width, height float64) Point {
	cx := x + width/2
	cy := y + height/2

	// Cell span along each axis decides the parity rule: odd spans snap
	// the center to a cell center so the object sits centered in its
	// cells; even spans snap to a grid intersection so the corners land
	// on grid lines. Degenerate footprints count as a single cell.
	spanQ := int(math.Round(width / g.size))
	spanR := int(math.Round(height / g.size))
	if spanQ < 1 {
		spanQ = 1
	}
	if spanR < 1 {
		spanR = 1
	}

	sx := g.snapAxis(cx, spanQ)
	sy := g.snapAxis(cy, spanR)
	return Point{X: sx - width/2, Y: sy - height/2}
}

// snapAxis snaps a center coordinate along one axis for a given cell span.
func (g *squareGeometry) snapAxis(c float64, span int) float64 {
	if span%2 == 1 {
		// Nearest cell center: offset by half a cell, round, offset back.
		return math.Round(c/g.size-0.5)*g.size + g.size/2
	}
	// Nearest intersection.
	return math.Round(c/g.size) * g.size
}

func (g *squareGeometry) CellVertices(c Cell) []Point {
	x := float64(c.Q) * g.size
	y := float64(c.R) * g.size
	// Clockwise from the top-left corner.
	return []Point{
		{X: x, Y: y},
		{X: x + g.size, Y: y},
		{X: x + g.size, Y: y + g.size},
		{X: x, Y: y + g.size},
	}
}

func (g *squareGeometry) VisibleCells(b Bounds) []Cell {
	if b.Width <= 0 || b.Height <= 0 {
		return nil
	}
	// One extra cell of padding on every side so boundary cells are
	// never lost to floating-point rounding.
	q0 := int(math.Floor(b.X/g.size)) - 1
	q1 := int(math.Ceil((b.X+b.Width)/g.size)) + 1
	r0 := int(math.Floor(b.Y/g.size)) - 1
	r1 := int(math.Ceil((b.Y+b.Height)/g.size)) + 1

	cells := make([]Cell, 0, (q1-q0+1)*(r1-r0+1))
	for r := r0; r <= r1; r++ {
		for q := q0; q <= q1; q++ {
			cells = append(cells, Cell{Q: q, R: r})
		}
	}
	return cells
}
