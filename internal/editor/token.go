package editor

import "image/color"

// Token is a placeable map object with a pixel footprint. Footprints are
// whole cell spans (1x1, 2x2, 3x3) so square-grid snapping exercises the
// odd/even parity rule.
type Token struct {
	X, Y          float64 // top-left corner, world pixels
	Width, Height float64
	Color         color.RGBA
	Label         string
}

// Contains reports whether a world-space point falls inside the token.
func (t *Token) Contains(wx, wy float64) bool {
	return wx >= t.X && wx < t.X+t.Width && wy >= t.Y && wy < t.Y+t.Height
}

// starterTokens seeds the map with one token per footprint size.
func starterTokens(gridSize float64) []*Token {
	return []*Token{
		{
			X: gridSize, Y: gridSize,
			Width: gridSize, Height: gridSize,
			Color: color.RGBA{R: 200, G: 70, B: 70, A: 255},
			Label: "1x1",
		},
		{
			X: 4 * gridSize, Y: gridSize,
			Width: 2 * gridSize, Height: 2 * gridSize,
			Color: color.RGBA{R: 70, G: 130, B: 220, A: 255},
			Label: "2x2",
		},
		{
			X: 8 * gridSize, Y: gridSize,
			Width: 3 * gridSize, Height: 3 * gridSize,
			Color: color.RGBA{R: 90, G: 180, B: 90, A: 255},
			Label: "3x3",
		},
	}
}
