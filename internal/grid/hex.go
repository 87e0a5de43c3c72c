package grid

import "math"

// hexGeometry is a pointy-top hexagonal grid addressed with axial
// coordinates. Size is the hex circumradius (center to corner). The
// forward and inverse transform constants are precomputed once so the
// pointer-move path does no repeated division.
type hexGeometry struct {
	size float64

	// Forward transform: pixel = size * M * (q, r).
	xq, xr float64 // x = xq*q + xr*r
	yr     float64 // y = yr*r

	// Inverse transform: fractional axial = Minv * pixel / size.
	qx, qy float64 // qf = qx*x + qy*y
	ry     float64 // rf = ry*y
}

func newHex(size float64) *hexGeometry {
	sqrt3 := math.Sqrt(3)
	return &hexGeometry{
		size: size,
		xq:   sqrt3 * size,
		xr:   sqrt3 / 2 * size,
		yr:   1.5 * size,
		qx:   sqrt3 / 3 / size,
		qy:   -1.0 / 3 / size,
		ry:   2.0 / 3 / size,
	}
}

func (g *hexGeometry) GridToPixel(c Cell) Point {
	q := float64(c.Q)
	r := float64(c.R)
	return Point{
		X: g.xq*q + g.xr*r,
		Y: g.yr * r,
	}
}

// fractionalAxial inverts the pointy-top transform without rounding.
func (g *hexGeometry) fractionalAxial(x, y float64) (qf, rf float64) {
	return g.qx*x + g.qy*y, g.ry * y
}

func (g *hexGeometry) PixelToGrid(x, y float64) Cell {
	qf, rf := g.fractionalAxial(x, y)
	return cubeRound(qf, rf)
}

// cubeRound converts fractional axial coordinates to the nearest integer
// cell. Each of the three cube axes is rounded independently, then the
// axis with the largest rounding error is recomputed from the other two
// so q+r+s stays exactly zero. Rounding the two axial components alone
// produces visible seams along cell boundaries.
func cubeRound(qf, rf float64) Cell {
	sf := -qf - rf
	q := math.Round(qf)
	r := math.Round(rf)
	s := math.Round(sf)

	dq := math.Abs(q - qf)
	dr := math.Abs(r - rf)
	ds := math.Abs(s - sf)

	if dq > dr && dq > ds {
		q = -r - s
	} else if dr > ds {
		r = -q - s
	}
	return Cell{Q: int(q), R: int(r)}
}

func (g *hexGeometry) SnapPoint(x, y float64) Point {
	return g.GridToPixel(g.PixelToGrid(x, y))
}

// SnapPointSized snaps the object's center to the nearest hex center.
// Hexes have no intersection concept analogous to square grids, so there
// is no parity rule: every footprint snaps the same way.
func (g *hexGeometry) SnapPointSized(x, y, width, height float64) Point {
	center := g.SnapPoint(x+width/2, y+height/2)
	return Point{X: center.X - width/2, Y: center.Y - height/2}
}

func (g *hexGeometry) CellVertices(c Cell) []Point {
	center := g.GridToPixel(c)
	verts := make([]Point, 6)
	for i := 0; i < 6; i++ {
		// Pointy-top corners sit at -90, -30, 30, ... degrees; screen
		// y grows downward, so this winds clockwise from the top.
		angle := math.Pi / 180 * (60*float64(i) - 90)
		verts[i] = Point{
			X: center.X + g.size*math.Cos(angle),
			Y: center.Y + g.size*math.Sin(angle),
		}
	}
	return verts
}

func (g *hexGeometry) VisibleCells(b Bounds) []Cell {
	if b.Width <= 0 || b.Height <= 0 {
		return nil
	}

	// Pad by a full hex so cells whose centers sit just outside the
	// viewport but whose bodies overlap it are still emitted.
	pad := 2 * g.size
	x0 := b.X - pad
	y0 := b.Y - pad
	x1 := b.X + b.Width + pad
	y1 := b.Y + b.Height + pad

	// The rectangle maps to a sheared region in axial space, so the q
	// and r extremes come from different corners (top-right drives r
	// negative, bottom-left drives it positive). Take the axial image
	// of all four corners; spanning only two opposite corners yields a
	// narrow diagonal band that misses the other two regions.
	corners := [4][2]float64{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y1}}
	qMin, qMax := math.Inf(1), math.Inf(-1)
	rMin, rMax := math.Inf(1), math.Inf(-1)
	for _, corner := range corners {
		qf, rf := g.fractionalAxial(corner[0], corner[1])
		qMin = math.Min(qMin, qf)
		qMax = math.Max(qMax, qf)
		rMin = math.Min(rMin, rf)
		rMax = math.Max(rMax, rf)
	}

	lowQ, highQ := int(math.Floor(qMin))-1, int(math.Ceil(qMax))+1
	lowR, highR := int(math.Floor(rMin))-1, int(math.Ceil(rMax))+1

	cells := make([]Cell, 0, (highQ-lowQ+1)*(highR-lowR+1)/2)
	for r := lowR; r <= highR; r++ {
		for q := lowQ; q <= highQ; q++ {
			// The q/r box covers a parallelogram wider than the
			// viewport; keep only cells whose centers fall inside
			// the padded rectangle.
			center := g.GridToPixel(Cell{Q: q, R: r})
			if center.X >= x0 && center.X <= x1 && center.Y >= y0 && center.Y <= y1 {
				cells = append(cells, Cell{Q: q, R: r})
			}
		}
	}
	return cells
}
