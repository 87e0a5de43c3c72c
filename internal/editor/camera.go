package editor

import "battlemat/internal/grid"

// Camera is a pan + zoom view over the world plane. X/Y are the
// world-space coordinates at the viewport centre; Zoom of 1.0 is native
// scale, larger values zoom in.
type Camera struct {
	X, Y float64
	Zoom float64
}

// NewCamera returns a camera centred on the origin at native zoom.
func NewCamera() Camera {
	return Camera{Zoom: 1.0}
}

// WorldToScreen maps world coordinates to screen pixels for a viewport of
// vw x vh pixels.
func (c Camera) WorldToScreen(wx, wy float64, vw, vh int) (float64, float64) {
	sx := (wx-c.X)*c.Zoom + float64(vw)/2
	sy := (wy-c.Y)*c.Zoom + float64(vh)/2
	return sx, sy
}

// ScreenToWorld maps screen pixels back to world coordinates.
func (c Camera) ScreenToWorld(sx, sy float64, vw, vh int) (float64, float64) {
	wx := (sx-float64(vw)/2)/c.Zoom + c.X
	wy := (sy-float64(vh)/2)/c.Zoom + c.Y
	return wx, wy
}

// VisibleBounds returns the world-space rectangle covered by the viewport.
// This is the rectangle handed to Geometry.VisibleCells each frame.
func (c Camera) VisibleBounds(vw, vh int) grid.Bounds {
	w := float64(vw) / c.Zoom
	h := float64(vh) / c.Zoom
	return grid.Bounds{
		X:      c.X - w/2,
		Y:      c.Y - h/2,
		Width:  w,
		Height: h,
	}
}

// clampZoom keeps the zoom factor inside a usable range.
func clampZoom(z float64) float64 {
	if z < 0.2 {
		return 0.2
	}
	if z > 5.0 {
		return 5.0
	}
	return z
}
