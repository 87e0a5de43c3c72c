package grid

import "math"

// isoGeometry is a 2:1 diamond projection: cell (q, r) projects to a
// diamond twice as wide as it is tall. The forward map is linear and
// exactly invertible, so there is no rounding ambiguity.
type isoGeometry struct {
	size       float64
	halfWidth  float64
	halfHeight float64
}

func newIso(size float64) *isoGeometry {
	return &isoGeometry{
		size:       size,
		halfWidth:  size,
		halfHeight: size / 2,
	}
}

func (g *isoGeometry) GridToPixel(c Cell) Point {
	q := float64(c.Q)
	r := float64(c.R)
	return Point{
		X: (q - r) * g.halfWidth,
		Y: (q + r) * g.halfHeight,
	}
}

// fractionalCell inverts the diamond projection without rounding.
func (g *isoGeometry) fractionalCell(x, y float64) (qf, rf float64) {
	u := x / g.halfWidth
	v := y / g.halfHeight
	return (u + v) / 2, (v - u) / 2
}

func (g *isoGeometry) PixelToGrid(x, y float64) Cell {
	qf, rf := g.fractionalCell(x, y)
	return Cell{
		Q: int(math.Round(qf)),
		R: int(math.Round(rf)),
	}
}

func (g *isoGeometry) SnapPoint(x, y float64) Point {
	return g.GridToPixel(g.PixelToGrid(x, y))
}

// SnapPointSized snaps the object's center to the nearest diamond center.
// Like hex, the diamond grid has no parity distinction.
func (g *isoGeometry) SnapPointSized(x, y, width, height float64) Point {
	center := g.SnapPoint(x+width/2, y+height/2)
	return Point{X: center.X - width/2, Y: center.Y - height/2}
}

func (g *isoGeometry) CellVertices(c Cell) []Point {
	center := g.GridToPixel(c)
	// Top, right, bottom, left.
	return []Point{
		{X: center.X, Y: center.Y - g.halfHeight},
		{X: center.X + g.halfWidth, Y: center.Y},
		{X: center.X, Y: center.Y + g.halfHeight},
		{X: center.X - g.halfWidth, Y: center.Y},
	}
}

func (g *isoGeometry) VisibleCells(b Bounds) []Cell {
	if b.Width <= 0 || b.Height <= 0 {
		return nil
	}

	// The 45-degree rotation turns the pixel rectangle into a rotated
	// parallelogram in (q, r) space: each corner maps to a different
	// extreme, so all four must contribute to the iterated box, padded
	// by one cell against rotation skew at the edges.
	x0, y0 := b.X, b.Y
	x1, y1 := b.X+b.Width, b.Y+b.Height
	corners := [4][2]float64{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y1}}

	qMin, qMax := math.Inf(1), math.Inf(-1)
	rMin, rMax := math.Inf(1), math.Inf(-1)
	for _, corner := range corners {
		qf, rf := g.fractionalCell(corner[0], corner[1])
		qMin = math.Min(qMin, qf)
		qMax = math.Max(qMax, qf)
		rMin = math.Min(rMin, rf)
		rMax = math.Max(rMax, rf)
	}

	lowQ, highQ := int(math.Floor(qMin))-1, int(math.Ceil(qMax))+1
	lowR, highR := int(math.Floor(rMin))-1, int(math.Ceil(rMax))+1

	cells := make([]Cell, 0, (highQ-lowQ+1)*(highR-lowR+1))
	for r := lowR; r <= highR; r++ {
		for q := lowQ; q <= highQ; q++ {
			cells = append(cells, Cell{Q: q, R: r})
		}
	}
	return cells
}
